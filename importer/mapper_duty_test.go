package importer

import (
	"testing"
	"time"

	"github.com/galushin/overtime/duty"
	"github.com/galushin/overtime/internal/clock"
)

func dutyRecord(fields ...string) Record {
	return Record{RowNumber: 2, Fields: fields}
}

func TestDutyMapper_ExpandsDutyType(t *testing.T) {
	t.Parallel()

	mapper := &DutyMapper{Types: duty.NewTable()}
	record := dutyRecord("Ivanov", "2026-01-05", "duty-assistant", "12")

	shifts, ok, err := mapper.Map(record, "tsv", "duties.txt")
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if !ok {
		t.Fatalf("expected record to map")
	}
	if len(shifts) != 3 {
		t.Fatalf("expected 3 shifts for duty-assistant, got %d", len(shifts))
	}

	first := shifts[0]
	if first.Name != "Ivanov" || first.Order != "12" || first.DutyType != "duty-assistant" {
		t.Fatalf("unexpected shift fields: %+v", first)
	}
	if !first.Date.Equal(time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected shift date: %v", first.Date)
	}
	if first.Start != clock.New(17, 30) || first.Stop != clock.EndOfDay {
		t.Fatalf("unexpected first interval: %s-%s", first.Start, first.Stop)
	}
	if shifts[1].Date.Day() != 6 || shifts[2].Date.Day() != 6 {
		t.Fatalf("expected continuation shifts on the next day")
	}
	if first.SourceFormat != "tsv" || first.SourceFile != "duties.txt" {
		t.Fatalf("source metadata not preserved: %+v", first)
	}
}

func TestDutyMapper_HeaderedRecord(t *testing.T) {
	t.Parallel()

	mapper := &DutyMapper{Types: duty.NewTable()}
	record := Record{
		RowNumber: 3,
		Values: map[string]string{
			"name":  "Petrov",
			"date":  "2026-01-10",
			"type":  "responsible",
			"order": "7",
		},
	}

	shifts, ok, err := mapper.Map(record, "csv", "duties.csv")
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if !ok || len(shifts) != 1 {
		t.Fatalf("expected 1 shift, got ok=%v len=%d", ok, len(shifts))
	}
	// 2026-01-10 is a Saturday: rise 06:30, all clear 23:30.
	if shifts[0].Start != clock.New(6, 30) || shifts[0].Stop != clock.New(23, 30) {
		t.Fatalf("unexpected responsible bounds: %s-%s", shifts[0].Start, shifts[0].Stop)
	}
}

func TestDutyMapper_SkipsUnknownDutyType(t *testing.T) {
	t.Parallel()

	mapper := &DutyMapper{Types: duty.NewTable()}
	record := dutyRecord("Ivanov", "2026-01-05", "night-watchman", "12")

	shifts, ok, err := mapper.Map(record, "tsv", "duties.txt")
	if err != nil {
		t.Fatalf("unknown duty type must not be fatal: %v", err)
	}
	if ok || shifts != nil {
		t.Fatalf("expected record to be skipped")
	}
}

func TestDutyMapper_SkipsBlankRecord(t *testing.T) {
	t.Parallel()

	mapper := &DutyMapper{Types: duty.NewTable()}
	_, ok, err := mapper.Map(dutyRecord(), "tsv", "duties.txt")
	if err != nil {
		t.Fatalf("blank record must not be fatal: %v", err)
	}
	if ok {
		t.Fatalf("expected blank record to be skipped")
	}
}

func TestDutyMapper_IncompleteRecordFails(t *testing.T) {
	t.Parallel()

	mapper := &DutyMapper{Types: duty.NewTable()}
	if _, _, err := mapper.Map(dutyRecord("Ivanov", "2026-01-05", "responsible"), "tsv", "duties.txt"); err == nil {
		t.Fatalf("expected error for missing order reference")
	}
}

func TestDutyMapper_BadDateFails(t *testing.T) {
	t.Parallel()

	mapper := &DutyMapper{Types: duty.NewTable()}
	if _, _, err := mapper.Map(dutyRecord("Ivanov", "someday", "responsible", "12"), "tsv", "duties.txt"); err == nil {
		t.Fatalf("expected error for unparseable date")
	}
}
