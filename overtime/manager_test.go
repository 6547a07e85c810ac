package overtime

import (
	"errors"
	"testing"
	"time"

	"github.com/galushin/overtime/internal/clock"
)

var (
	monday   = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	tuesday  = monday.AddDate(0, 0, 1)
	friday   = monday.AddDate(0, 0, 4)
	saturday = monday.AddDate(0, 0, 5)
)

func TestProcess_RejectsInvalidIntervals(t *testing.T) {
	t.Parallel()

	manager := NewManager()

	tests := []struct {
		start clock.Time
		stop  clock.Time
	}{
		{clock.New(10, 0), clock.New(10, 0)},
		{clock.New(12, 0), clock.New(10, 0)},
		{clock.Time(-30), clock.New(10, 0)},
		{clock.New(10, 0), clock.EndOfDay + 1},
	}

	for _, tt := range tests {
		err := manager.Process("Ivanov", tuesday, tt.start, tt.stop, "12")
		if !errors.Is(err, ErrInvalidInterval) {
			t.Fatalf("expected ErrInvalidInterval for %s-%s, got %v", tt.start, tt.stop, err)
		}
	}
	if len(manager.Events()) != 0 {
		t.Fatalf("invalid intervals must not produce events, got %d", len(manager.Events()))
	}
}

func TestProcess_InsideWorkWindowEmitsNothing(t *testing.T) {
	t.Parallel()

	manager := NewManager()
	if err := manager.Process("Ivanov", tuesday, clock.New(8, 30), clock.New(17, 30), "12"); err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(manager.Events()) != 0 {
		t.Fatalf("expected no events for pure scheduled work, got %d", len(manager.Events()))
	}
}

func TestProcess_EveningExcessOnFriday(t *testing.T) {
	t.Parallel()

	manager := NewManager()
	if err := manager.Process("Ivanov", friday, clock.New(17, 30), clock.EndOfDay, "12"); err != nil {
		t.Fatalf("process: %v", err)
	}

	events := manager.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	expected := Period{Start: clock.New(17, 30), Stop: clock.EndOfDay}
	if events[0].Period != expected {
		t.Fatalf("expected period %s, got %s", expected, events[0].Period)
	}
}

func TestProcess_MorningExcessClippedAtWorkStart(t *testing.T) {
	t.Parallel()

	manager := NewManager()
	if err := manager.Process("Ivanov", tuesday, clock.New(6, 0), clock.New(10, 0), "12"); err != nil {
		t.Fatalf("process: %v", err)
	}

	events := manager.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	expected := Period{Start: clock.New(6, 0), Stop: clock.New(8, 30)}
	if events[0].Period != expected {
		t.Fatalf("expected period %s, got %s", expected, events[0].Period)
	}
}

func TestProcess_ExcessOnBothSidesEmitsTwoEvents(t *testing.T) {
	t.Parallel()

	manager := NewManager()
	if err := manager.Process("Ivanov", monday, clock.New(6, 0), clock.New(20, 0), "12"); err != nil {
		t.Fatalf("process: %v", err)
	}

	events := manager.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	morning := Period{Start: clock.New(6, 0), Stop: clock.New(8, 0)}
	evening := Period{Start: clock.New(17, 30), Stop: clock.New(20, 0)}
	if events[0].Period != morning {
		t.Fatalf("expected morning period %s, got %s", morning, events[0].Period)
	}
	if events[1].Period != evening {
		t.Fatalf("expected evening period %s, got %s", evening, events[1].Period)
	}
}

func TestProcess_RestDayIntervalIsWhollyOvertime(t *testing.T) {
	t.Parallel()

	manager := NewManager()
	if err := manager.Process("Ivanov", saturday, clock.Midnight, clock.New(7, 30), "12"); err != nil {
		t.Fatalf("process: %v", err)
	}

	events := manager.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event on rest day, got %d", len(events))
	}
	expected := Period{Start: clock.Midnight, Stop: clock.New(7, 30)}
	if events[0].Period != expected {
		t.Fatalf("expected period %s, got %s", expected, events[0].Period)
	}
}

func TestProcess_KeepsNameDateAndOrder(t *testing.T) {
	t.Parallel()

	manager := NewManager()
	if err := manager.Process("Petrov", friday, clock.New(20, 0), clock.New(22, 0), "order 7"); err != nil {
		t.Fatalf("process: %v", err)
	}

	events := manager.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	event := events[0]
	if event.Name != "Petrov" || !event.Date.Equal(friday) || event.Order != "order 7" {
		t.Fatalf("event fields not preserved: %+v", event)
	}
}
