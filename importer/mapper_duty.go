package importer

import (
	"errors"
	"fmt"
	"os"

	"github.com/galushin/overtime/duty"
	"github.com/galushin/overtime/roster"
)

// DutyMapper maps duty-ledger rows (employee, start date, duty type, order
// reference) and expands the duty type into same-day shifts. Unknown duty
// types are reported and skipped rather than failing the whole import.
type DutyMapper struct {
	Types *duty.Table
}

func (m *DutyMapper) Name() string {
	return "duty"
}

func (m *DutyMapper) Map(record Record, sourceFormat, sourceFile string) ([]roster.Shift, bool, error) {
	var name, dateRaw, dutyType, order string
	if record.Headered() {
		name = record.Get("name", "employee", "фио")
		dateRaw = record.Get("date", "дата")
		dutyType = record.Get("type", "dutytype", "duty", "наряд")
		order = record.Get("order", "orderref", "приказ")
	} else {
		name = record.Field(0)
		dateRaw = record.Field(1)
		dutyType = record.Field(2)
		order = record.Field(3)
	}

	if name == "" && dateRaw == "" {
		return nil, false, nil
	}
	if name == "" || dateRaw == "" || dutyType == "" || order == "" {
		return nil, false, fmt.Errorf("row %d: duty record needs name, date, type and order", record.RowNumber)
	}

	date, err := parseDate(dateRaw)
	if err != nil {
		return nil, false, fmt.Errorf("row %d: parse date: %w", record.RowNumber, err)
	}

	expanded, err := m.Types.Expand(dutyType, date)
	if err != nil {
		if errors.Is(err, duty.ErrUnknownDutyType) {
			fmt.Fprintf(os.Stderr, "row %d: unknown duty type %q, skipping\n", record.RowNumber, dutyType)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("row %d: %w", record.RowNumber, err)
	}

	shifts := make([]roster.Shift, 0, len(expanded))
	for _, shift := range expanded {
		shifts = append(shifts, roster.Shift{
			Name:         name,
			Date:         shift.Date,
			Start:        shift.Start,
			Stop:         shift.Stop,
			DutyType:     dutyType,
			Order:        order,
			SourceFormat: sourceFormat,
			SourceFile:   sourceFile,
		})
	}

	return shifts, true, nil
}
