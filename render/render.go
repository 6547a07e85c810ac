// Package render turns aggregated overtime months into timesheet documents.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/galushin/overtime/overtime"
	"github.com/galushin/overtime/schedule"
)

type Renderer interface {
	Render(w io.Writer, months []overtime.Month) error
}

func RendererForFormat(format string, decimalComma bool) (Renderer, error) {
	switch strings.TrimSpace(strings.ToLower(format)) {
	case "html":
		return &HTMLRenderer{DecimalComma: decimalComma}, nil
	case "excel", "xlsx":
		return &ExcelRenderer{DecimalComma: decimalComma}, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// DetectFormat infers the report format from the output file extension,
// defaulting to html.
func DetectFormat(path string) string {
	switch strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".") {
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "html"
	}
}

// WriteReport renders all months into the given file.
func WriteReport(path, format string, decimalComma bool, months []overtime.Month) error {
	renderer, err := RendererForFormat(format, decimalComma)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	defer file.Close()

	if err := renderer.Render(file, months); err != nil {
		return fmt.Errorf("render report %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close report %s: %w", path, err)
	}
	return nil
}

// rowTotals carries the per-employee monthly summary columns.
type rowTotals struct {
	Night    time.Duration
	Holiday  time.Duration
	Total    time.Duration
	RestDays int
}

// Extra is the overtime attributable to neither night nor holiday hours.
func (t rowTotals) Extra() time.Duration {
	return t.Total - t.Night - t.Holiday
}

func totalsFor(month overtime.Month, row []overtime.DayCell) rowTotals {
	var totals rowTotals
	for day := range row {
		date := month.First.AddDate(0, 0, day)
		cell := &row[day]
		for _, p := range cell.Periods() {
			totals.Night += overtime.NightTime(date, p)
			totals.Holiday += overtime.HolidayTime(date, p)
			totals.Total += p.Duration()
		}
		if cell.HasOvertime() && schedule.IsRestDay(date) {
			totals.RestDays++
		}
	}
	return totals
}

func dayTotal(cell *overtime.DayCell) time.Duration {
	var total time.Duration
	for _, p := range cell.Periods() {
		total += p.Duration()
	}
	return total
}

// formatHours writes a duration as shortest-form fractional hours, with an
// optional decimal comma for locales that use one.
func formatHours(d time.Duration, decimalComma bool) string {
	formatted := strconv.FormatFloat(d.Hours(), 'g', -1, 64)
	if decimalComma {
		formatted = strings.Replace(formatted, ".", ",", 1)
	}
	return formatted
}
