package overtime

import (
	"sort"
	"time"
)

// DayCell aggregates the overtime of one employee on one day of the month.
// Periods and order references are deduplicated and kept sorted so that
// rendering is deterministic.
type DayCell struct {
	periods []Period
	orders  []string
}

func (c *DayCell) addPeriod(p Period) {
	at := sort.Search(len(c.periods), func(i int) bool {
		return !c.periods[i].Less(p)
	})
	if at < len(c.periods) && c.periods[at] == p {
		return
	}
	c.periods = append(c.periods, Period{})
	copy(c.periods[at+1:], c.periods[at:])
	c.periods[at] = p
}

func (c *DayCell) addOrder(order string) {
	at := sort.SearchStrings(c.orders, order)
	if at < len(c.orders) && c.orders[at] == order {
		return
	}
	c.orders = append(c.orders, "")
	copy(c.orders[at+1:], c.orders[at:])
	c.orders[at] = order
}

// Periods returns the deduplicated periods sorted by (start, stop).
func (c *DayCell) Periods() []Period {
	return c.periods
}

// Orders returns the deduplicated order references in lexicographic order.
func (c *DayCell) Orders() []string {
	return c.orders
}

// HasOvertime reports whether any period landed in this cell.
func (c *DayCell) HasOvertime() bool {
	return len(c.periods) > 0
}

// Month is the aggregate of one calendar month: for every employee seen in
// that month, one DayCell per day.
type Month struct {
	First time.Time
	Table map[string][]DayCell
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	// Day zero of the next month is the last day of this month.
	return time.Date(m.First.Year(), m.First.Month()+1, 0, 0, 0, 0, 0, m.First.Location()).Day()
}

// Names returns the employee names in lexicographic order.
func (m Month) Names() []string {
	names := make([]string, 0, len(m.Table))
	for name := range m.Table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Months sorts the accumulated events by date and partitions them into
// contiguous calendar months. Events are only read; calling Months twice
// yields identical tables.
func (m *Manager) Months() []Month {
	if len(m.events) == 0 {
		return nil
	}

	sorted := make([]Event, len(m.events))
	copy(sorted, m.events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	months := make([]Month, 0, 4)
	for begin := 0; begin < len(sorted); {
		end := monthEnd(sorted, begin)
		months = append(months, buildMonth(sorted[begin:end]))
		begin = end
	}
	return months
}

// monthEnd finds the first event past begin whose calendar month exceeds the
// month at begin. The events are globally sorted, so months never repeat
// once passed.
func monthEnd(events []Event, begin int) int {
	year, month, _ := events[begin].Date.Date()
	for i := begin + 1; i < len(events); i++ {
		y, m, _ := events[i].Date.Date()
		if y > year || (y == year && m > month) {
			return i
		}
	}
	return len(events)
}

func buildMonth(events []Event) Month {
	year, month, _ := events[0].Date.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, events[0].Date.Location())
	daysInMonth := Month{First: first}.Days()

	table := make(map[string][]DayCell, 8)
	for _, event := range events {
		row, ok := table[event.Name]
		if !ok {
			row = make([]DayCell, daysInMonth)
			table[event.Name] = row
		}
		cell := &row[event.Date.Day()-1]
		cell.addPeriod(event.Period)
		if event.Order != "" {
			cell.addOrder(event.Order)
		}
	}

	return Month{First: first, Table: table}
}
