package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/galushin/overtime/overtime"
)

// ExcelRenderer writes one worksheet per month with the same grid as the
// HTML table: three rows per employee plus the monthly summary columns.
type ExcelRenderer struct {
	DecimalComma bool
}

func (r *ExcelRenderer) Render(w io.Writer, months []overtime.Month) error {
	file := excelize.NewFile()
	defer file.Close()

	for i, month := range months {
		sheet := fmt.Sprintf("%s %d", month.First.Month(), month.First.Year())
		if i == 0 {
			if err := file.SetSheetName(file.GetSheetName(0), sheet); err != nil {
				return fmt.Errorf("rename sheet %s: %w", sheet, err)
			}
		} else {
			if _, err := file.NewSheet(sheet); err != nil {
				return fmt.Errorf("create sheet %s: %w", sheet, err)
			}
		}

		if err := r.renderMonth(file, sheet, month); err != nil {
			return err
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write excel report: %w", err)
	}
	return nil
}

func (r *ExcelRenderer) renderMonth(file *excelize.File, sheet string, month overtime.Month) error {
	days := month.Days()

	headers := make([]string, 0, days+5)
	headers = append(headers, "Name")
	for day := 1; day <= days; day++ {
		headers = append(headers, fmt.Sprintf("%d", day))
	}
	headers = append(headers, "Night", "Holiday", "Extra", "Rest days")

	for col, header := range headers {
		if err := setCell(file, sheet, col+1, 1, header); err != nil {
			return err
		}
	}

	rowIndex := 2
	for _, name := range month.Names() {
		row := month.Table[name]
		totals := totalsFor(month, row)

		// Period row with name and summary columns.
		if err := setCell(file, sheet, 1, rowIndex, name); err != nil {
			return err
		}
		for day := range row {
			periods := ""
			for i, p := range row[day].Periods() {
				if i > 0 {
					periods += ", "
				}
				periods += p.String()
			}
			if err := setCell(file, sheet, day+2, rowIndex, periods); err != nil {
				return err
			}
		}
		summary := []string{
			formatHours(totals.Night, r.DecimalComma),
			formatHours(totals.Holiday, r.DecimalComma),
			formatHours(totals.Extra(), r.DecimalComma),
			fmt.Sprintf("%d", totals.RestDays),
		}
		for i, value := range summary {
			if err := setCell(file, sheet, days+2+i, rowIndex, value); err != nil {
				return err
			}
		}

		// Day total row.
		for day := range row {
			value := ""
			if total := dayTotal(&row[day]); total > 0 {
				value = formatHours(total, r.DecimalComma)
			}
			if err := setCell(file, sheet, day+2, rowIndex+1, value); err != nil {
				return err
			}
		}

		// Order reference row.
		for day := range row {
			orders := ""
			for i, order := range row[day].Orders() {
				if i > 0 {
					orders += ", "
				}
				orders += order
			}
			if err := setCell(file, sheet, day+2, rowIndex+2, orders); err != nil {
				return err
			}
		}

		rowIndex += 3
	}

	return nil
}

func setCell(file *excelize.File, sheet string, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name for %d,%d: %w", col, row, err)
	}
	if err := file.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("set excel value %s: %w", cell, err)
	}
	return nil
}
