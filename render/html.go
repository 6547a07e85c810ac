package render

import (
	"fmt"
	"html"
	"io"

	"github.com/galushin/overtime/overtime"
	"github.com/galushin/overtime/schedule"
)

// HTMLRenderer writes one bordered table per month: a column per day, three
// rows per employee (periods, day totals, order references) and summary
// columns for night, holiday and plain extra hours plus worked rest days.
type HTMLRenderer struct {
	DecimalComma bool
}

const restDayBg = " bgcolor='#00FF00'"

func (r *HTMLRenderer) Render(w io.Writer, months []overtime.Month) error {
	if _, err := fmt.Fprint(w, "<html><head>\n<title>Timesheets</title>\n</head>\n<body>\n"); err != nil {
		return err
	}

	for _, month := range months {
		if err := r.renderMonth(w, month); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "</body>\n</html>\n")
	return err
}

func (r *HTMLRenderer) renderMonth(w io.Writer, month overtime.Month) error {
	days := month.Days()

	fmt.Fprint(w, "<table border=\"1\">\n")
	fmt.Fprintf(w, "<caption>%s %d</caption>\n", month.First.Month(), month.First.Year())

	fmt.Fprint(w, "<tr>\n")
	fmt.Fprintf(w, "<th rowspan='2'>Name</th><th colspan='%d'>Days of month</th><th colspan='3'>Total hours</th><th rowspan='2'>Rest days</th>", days)
	fmt.Fprint(w, "</tr>\n")

	fmt.Fprint(w, "<tr>\n")
	for day := 0; day < days; day++ {
		fmt.Fprintf(w, "<th%s>%d</th>", r.cellBg(month, day), day+1)
	}
	fmt.Fprint(w, "<th>Night</th><th>Holiday</th><th>Extra</th>")
	fmt.Fprint(w, "</tr>\n")

	for _, name := range month.Names() {
		row := month.Table[name]
		totals := totalsFor(month, row)

		// Period row, with the name and summary cells spanning all three.
		fmt.Fprint(w, "<tr>\n")
		fmt.Fprintf(w, "<td rowspan='3'>%s</td>\n", html.EscapeString(name))
		for day := range row {
			fmt.Fprintf(w, "<td%s>\n", r.cellBg(month, day))
			for i, p := range row[day].Periods() {
				if i > 0 {
					fmt.Fprint(w, ", <br>\n")
				}
				fmt.Fprint(w, p.String())
			}
			fmt.Fprint(w, "</td>\n")
		}
		fmt.Fprintf(w, "<td rowspan='3'>%s</td>", formatHours(totals.Night, r.DecimalComma))
		fmt.Fprintf(w, "<td rowspan='3'>%s</td>", formatHours(totals.Holiday, r.DecimalComma))
		fmt.Fprintf(w, "<td rowspan='3'>%s</td>", formatHours(totals.Extra(), r.DecimalComma))
		fmt.Fprintf(w, "<td rowspan='3'>%d</td>", totals.RestDays)
		fmt.Fprint(w, "</tr>\n")

		// Day total row; zero totals stay blank.
		fmt.Fprint(w, "<tr>\n")
		for day := range row {
			fmt.Fprintf(w, "<td%s>\n", r.cellBg(month, day))
			if total := dayTotal(&row[day]); total > 0 {
				fmt.Fprint(w, formatHours(total, r.DecimalComma))
			}
			fmt.Fprint(w, "</td>\n")
		}
		fmt.Fprint(w, "</tr>\n")

		// Order reference row.
		fmt.Fprint(w, "<tr>\n")
		for day := range row {
			fmt.Fprintf(w, "<td%s>\n", r.cellBg(month, day))
			for i, order := range row[day].Orders() {
				if i > 0 {
					fmt.Fprint(w, ", ")
				}
				fmt.Fprint(w, html.EscapeString(order))
			}
			fmt.Fprint(w, "</td>\n")
		}
		fmt.Fprint(w, "</tr>\n")
	}

	_, err := fmt.Fprint(w, "</table>\n<br>\n")
	return err
}

func (r *HTMLRenderer) cellBg(month overtime.Month, day int) string {
	if schedule.IsRestDay(month.First.AddDate(0, 0, day)) {
		return restDayBg
	}
	return ""
}
