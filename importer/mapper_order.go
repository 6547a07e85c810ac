package importer

import (
	"fmt"

	"github.com/galushin/overtime/internal/clock"
	"github.com/galushin/overtime/roster"
)

// OrderMapper maps explicit overtime orders: employee, date, start, stop and
// the order reference. The interval is taken as-is, no duty-type expansion.
type OrderMapper struct{}

func (m *OrderMapper) Name() string {
	return "order"
}

func (m *OrderMapper) Map(record Record, sourceFormat, sourceFile string) ([]roster.Shift, bool, error) {
	var name, dateRaw, startRaw, stopRaw, order string
	if record.Headered() {
		name = record.Get("name", "employee", "фио")
		dateRaw = record.Get("date", "дата")
		startRaw = record.Get("start", "from", "начало")
		stopRaw = record.Get("stop", "end", "to", "конец")
		order = record.Get("order", "orderref", "приказ")
	} else {
		name = record.Field(0)
		dateRaw = record.Field(1)
		startRaw = record.Field(2)
		stopRaw = record.Field(3)
		order = record.Field(4)
	}

	if name == "" && dateRaw == "" {
		return nil, false, nil
	}
	if name == "" || dateRaw == "" || startRaw == "" || stopRaw == "" || order == "" {
		return nil, false, fmt.Errorf("row %d: order record needs name, date, start, stop and order", record.RowNumber)
	}

	date, err := parseDate(dateRaw)
	if err != nil {
		return nil, false, fmt.Errorf("row %d: parse date: %w", record.RowNumber, err)
	}

	start, err := clock.Parse(startRaw)
	if err != nil {
		return nil, false, fmt.Errorf("row %d: parse start time: %w", record.RowNumber, err)
	}

	stop, err := clock.Parse(stopRaw)
	if err != nil {
		return nil, false, fmt.Errorf("row %d: parse stop time: %w", record.RowNumber, err)
	}

	if start >= stop {
		return nil, false, fmt.Errorf("row %d: start time must precede stop time", record.RowNumber)
	}

	shift := roster.Shift{
		Name:         name,
		Date:         date,
		Start:        start,
		Stop:         stop,
		Order:        order,
		SourceFormat: sourceFormat,
		SourceFile:   sourceFile,
	}

	return []roster.Shift{shift}, true, nil
}
