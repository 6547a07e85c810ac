// Package duty translates duty-type labels into the raw same-day intervals
// an overtime manager can process. A multi-day shift is expanded into one
// interval per calendar day; schedule-dependent bounds are resolved against
// the workday calendar at expansion time.
package duty

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/galushin/overtime/internal/clock"
	"github.com/galushin/overtime/schedule"
)

// ErrUnknownDutyType marks duty-type labels with no registered template.
var ErrUnknownDutyType = errors.New("unknown duty type")

// Shift is one raw same-day interval produced by expanding a duty type.
type Shift struct {
	Date  time.Time
	Start clock.Time
	Stop  clock.Time
}

// Interval is one template entry: a fixed or schedule-dependent interval at
// an offset in days from the duty start date.
type Interval struct {
	DayOffset int
	Start     clock.Time
	Stop      clock.Time

	// resolve overrides Start/Stop for schedule-dependent duty categories.
	resolve func(date time.Time) (clock.Time, clock.Time)
}

// Table maps normalized duty-type labels to interval templates.
type Table struct {
	types map[string][]Interval
}

// NewTable returns a table with the built-in duty categories registered.
func NewTable() *Table {
	table := &Table{types: make(map[string][]Interval, 8)}

	// A duty officer's assistant works the evening, the small hours of the
	// next day, and then stays through the next working day.
	overnight := []Interval{
		{DayOffset: 0, Start: clock.New(17, 30), Stop: clock.EndOfDay},
		{DayOffset: 1, Start: clock.Midnight, Stop: clock.New(2, 0)},
		{DayOffset: 1, Start: clock.New(6, 0), Stop: clock.New(17, 30)},
	}
	table.register("duty-assistant", overnight, "Помощник дежурного")
	table.register("fpp-duty-officer", overnight, "Дежурный ФПП")

	// The KPIS shift starts earlier on rest days.
	table.register("kpis-duty-officer", []Interval{
		{DayOffset: 0, resolve: func(date time.Time) (clock.Time, clock.Time) {
			if schedule.IsRestDay(date) {
				return clock.New(18, 0), clock.EndOfDay
			}
			return clock.New(20, 0), clock.EndOfDay
		}},
		{DayOffset: 1, Start: clock.Midnight, Stop: clock.New(7, 30)},
	}, "Дежурный КПИС")

	// The responsible officer covers reveille to all-clear on one day.
	table.register("responsible", []Interval{
		{DayOffset: 0, resolve: func(date time.Time) (clock.Time, clock.Time) {
			return schedule.Rise(date), schedule.AllClear(date)
		}},
	}, "Ответственный")

	return table
}

func (t *Table) register(name string, intervals []Interval, aliases ...string) {
	t.types[normalizeType(name)] = intervals
	for _, alias := range aliases {
		t.types[normalizeType(alias)] = intervals
	}
}

// Register adds or replaces a duty type with fixed intervals.
func (t *Table) Register(name string, intervals []Interval) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("duty type name must not be empty")
	}
	if len(intervals) == 0 {
		return fmt.Errorf("duty type %s needs at least one interval", name)
	}
	for _, interval := range intervals {
		if interval.DayOffset < 0 {
			return fmt.Errorf("duty type %s: day offset must not be negative", name)
		}
		if interval.resolve == nil && interval.Start >= interval.Stop {
			return fmt.Errorf("duty type %s: interval start must precede stop", name)
		}
	}
	t.types[normalizeType(name)] = intervals
	return nil
}

// Known reports whether the label resolves to a registered duty type.
func (t *Table) Known(dutyType string) bool {
	_, ok := t.types[normalizeType(dutyType)]
	return ok
}

// Expand resolves a duty-type label and a start date into raw same-day
// shifts, ready for overtime extraction.
func (t *Table) Expand(dutyType string, date time.Time) ([]Shift, error) {
	intervals, ok := t.types[normalizeType(dutyType)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDutyType, dutyType)
	}

	shifts := make([]Shift, 0, len(intervals))
	for _, interval := range intervals {
		day := date.AddDate(0, 0, interval.DayOffset)
		start, stop := interval.Start, interval.Stop
		if interval.resolve != nil {
			start, stop = interval.resolve(day)
		}
		shifts = append(shifts, Shift{Date: day, Start: start, Stop: stop})
	}
	return shifts, nil
}

func normalizeType(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
