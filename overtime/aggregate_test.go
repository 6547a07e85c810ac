package overtime

import (
	"testing"
	"time"

	"github.com/galushin/overtime/internal/clock"
)

func TestMonths_EmptyManager(t *testing.T) {
	t.Parallel()

	if months := NewManager().Months(); months != nil {
		t.Fatalf("expected no months, got %d", len(months))
	}
}

func TestMonths_BuildsFullRowPerEmployee(t *testing.T) {
	t.Parallel()

	manager := NewManager()
	mustProcess(t, manager, "Ivanov", tuesday, clock.New(18, 0), clock.New(20, 0), "12")
	mustProcess(t, manager, "Petrov", saturday, clock.New(9, 0), clock.New(12, 0), "13")

	months := manager.Months()
	if len(months) != 1 {
		t.Fatalf("expected 1 month, got %d", len(months))
	}

	month := months[0]
	if !month.First.Equal(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected month first 2026-01-01, got %v", month.First)
	}
	if month.Days() != 31 {
		t.Fatalf("expected 31 days, got %d", month.Days())
	}

	for _, name := range []string{"Ivanov", "Petrov"} {
		row, ok := month.Table[name]
		if !ok {
			t.Fatalf("missing row for %s", name)
		}
		if len(row) != 31 {
			t.Fatalf("expected 31 cells for %s, got %d", name, len(row))
		}
	}

	cell := month.Table["Ivanov"][tuesday.Day()-1]
	if len(cell.Periods()) != 1 || cell.Periods()[0] != (Period{Start: clock.New(18, 0), Stop: clock.New(20, 0)}) {
		t.Fatalf("unexpected periods for Ivanov: %v", cell.Periods())
	}
	if len(cell.Orders()) != 1 || cell.Orders()[0] != "12" {
		t.Fatalf("unexpected orders for Ivanov: %v", cell.Orders())
	}
}

func TestMonths_DeduplicatesPeriodsAndOrders(t *testing.T) {
	t.Parallel()

	manager := NewManager()
	mustProcess(t, manager, "Ivanov", tuesday, clock.New(18, 0), clock.New(20, 0), "12")
	mustProcess(t, manager, "Ivanov", tuesday, clock.New(18, 0), clock.New(20, 0), "12")

	months := manager.Months()
	if len(months) != 1 {
		t.Fatalf("expected 1 month, got %d", len(months))
	}

	cell := months[0].Table["Ivanov"][tuesday.Day()-1]
	if len(cell.Periods()) != 1 {
		t.Fatalf("expected deduplicated period, got %v", cell.Periods())
	}
	if len(cell.Orders()) != 1 {
		t.Fatalf("expected deduplicated order, got %v", cell.Orders())
	}
}

func TestMonths_SortsPeriodsAndOrdersWithinCell(t *testing.T) {
	t.Parallel()

	manager := NewManager()
	mustProcess(t, manager, "Ivanov", tuesday, clock.New(20, 0), clock.New(22, 0), "9")
	mustProcess(t, manager, "Ivanov", tuesday, clock.New(5, 0), clock.New(7, 0), "10")

	cell := manager.Months()[0].Table["Ivanov"][tuesday.Day()-1]

	periods := cell.Periods()
	if len(periods) != 2 || !periods[0].Less(periods[1]) {
		t.Fatalf("expected periods sorted by start, got %v", periods)
	}

	orders := cell.Orders()
	if len(orders) != 2 || orders[0] != "10" || orders[1] != "9" {
		t.Fatalf("expected lexicographically sorted orders, got %v", orders)
	}
}

func TestMonths_PartitionsContiguousMonths(t *testing.T) {
	t.Parallel()

	february := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)

	manager := NewManager()
	mustProcess(t, manager, "Ivanov", february, clock.New(18, 0), clock.New(20, 0), "20")
	mustProcess(t, manager, "Ivanov", tuesday, clock.New(18, 0), clock.New(20, 0), "12")

	months := manager.Months()
	if len(months) != 2 {
		t.Fatalf("expected 2 months, got %d", len(months))
	}
	if months[0].First.Month() != time.January || months[1].First.Month() != time.February {
		t.Fatalf("expected January then February, got %v and %v", months[0].First, months[1].First)
	}
	if months[1].Days() != 28 {
		t.Fatalf("expected 28 days in February 2026, got %d", months[1].Days())
	}
}

func TestMonths_SplitsAcrossYearBoundary(t *testing.T) {
	t.Parallel()

	december := time.Date(2025, time.December, 30, 0, 0, 0, 0, time.UTC)

	manager := NewManager()
	mustProcess(t, manager, "Ivanov", december, clock.New(18, 0), clock.New(20, 0), "11")
	mustProcess(t, manager, "Ivanov", tuesday, clock.New(18, 0), clock.New(20, 0), "12")

	months := manager.Months()
	if len(months) != 2 {
		t.Fatalf("expected 2 months across year boundary, got %d", len(months))
	}
	if months[0].First.Year() != 2025 || months[1].First.Year() != 2026 {
		t.Fatalf("expected 2025 then 2026, got %v and %v", months[0].First, months[1].First)
	}
}

func TestMonths_Idempotent(t *testing.T) {
	t.Parallel()

	manager := NewManager()
	mustProcess(t, manager, "Ivanov", tuesday, clock.New(18, 0), clock.New(20, 0), "12")
	mustProcess(t, manager, "Petrov", saturday, clock.New(9, 0), clock.New(12, 0), "13")

	first := manager.Months()
	second := manager.Months()

	if len(first) != len(second) {
		t.Fatalf("expected identical month counts, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].First.Equal(second[i].First) {
			t.Fatalf("month %d first date differs", i)
		}
		for name, row := range first[i].Table {
			other, ok := second[i].Table[name]
			if !ok || len(other) != len(row) {
				t.Fatalf("row for %s differs between runs", name)
			}
			for day := range row {
				if len(row[day].Periods()) != len(other[day].Periods()) {
					t.Fatalf("cell %s/%d differs between runs", name, day+1)
				}
			}
		}
	}
}

func TestMonths_NamesSorted(t *testing.T) {
	t.Parallel()

	manager := NewManager()
	mustProcess(t, manager, "Sidorov", tuesday, clock.New(18, 0), clock.New(19, 0), "1")
	mustProcess(t, manager, "Ivanov", tuesday, clock.New(18, 0), clock.New(19, 0), "2")
	mustProcess(t, manager, "Petrov", tuesday, clock.New(18, 0), clock.New(19, 0), "3")

	names := manager.Months()[0].Names()
	expected := []string{"Ivanov", "Petrov", "Sidorov"}
	for i := range expected {
		if names[i] != expected[i] {
			t.Fatalf("expected names %v, got %v", expected, names)
		}
	}
}

func mustProcess(t *testing.T, manager *Manager, name string, date time.Time, start, stop clock.Time, order string) {
	t.Helper()
	if err := manager.Process(name, date, start, stop, order); err != nil {
		t.Fatalf("process %s %v: %v", name, date, err)
	}
}
