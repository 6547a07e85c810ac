package cmd

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/galushin/overtime/config"
	"github.com/galushin/overtime/importer"
	"github.com/galushin/overtime/overtime"
	"github.com/galushin/overtime/render"
	"github.com/galushin/overtime/roster"
	"github.com/galushin/overtime/storage"
)

var (
	reportDuties []string
	reportOrders []string
	reportDBPath string
	reportOutput string
	reportFormat string
	reportOpen   bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the monthly overtime timesheet report",
	Long: `Feed the stored shifts through overtime extraction and write one table per
month: a column per day, three rows per employee (periods, day totals, order
references) and summary columns with night, holiday and plain overtime hours
plus the number of worked rest days.

By default shifts are read from the local database. With --duties or
--orders, ledger files are processed directly instead.

Output format can be selected explicitly via --format or inferred from the
output extension.`,
	Example: `
  # Report from the local database
  overtime report --db ./overtime.db -o timesheet.html

  # Report straight from ledger files and open the result
  overtime report --duties duties.txt --orders orders.txt -o timesheet.html --open

  # Excel output
  overtime report -o timesheet.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		shifts, err := collectShifts(cfg)
		if err != nil {
			return err
		}

		manager := overtime.NewManager()
		for _, shift := range shifts {
			if err := manager.Process(shift.Name, shift.Date, shift.Start, shift.Stop, shift.Order); err != nil {
				return fmt.Errorf("%s on %s: %w", shift.Name, shift.Date.Format("2006-01-02"), err)
			}
		}

		months := manager.Months()

		output := reportOutput
		if output == "" {
			output = cfg.Report.Output
		}
		format := reportFormat
		if strings.TrimSpace(format) == "" {
			format = render.DetectFormat(output)
		}

		if err := render.WriteReport(output, format, cfg.Report.DecimalComma, months); err != nil {
			return err
		}

		fmt.Printf("Report completed. Shifts: %d, Months: %d, Format: %s, File: %s\n",
			len(shifts), len(months), format, output)

		if reportOpen {
			if err := openFileInViewer(output); err != nil {
				return fmt.Errorf("open report: %w", err)
			}
		}
		return nil
	},
}

// collectShifts loads shifts from the ledger files given on the command
// line, or from the local database when no files are named.
func collectShifts(cfg *config.Config) ([]roster.Shift, error) {
	if len(reportDuties) == 0 && len(reportOrders) == 0 {
		dbPath := reportDBPath
		if dbPath == "" {
			dbPath = cfg.Import.DB
		}
		store, err := storage.OpenSQLite(dbPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.ListShifts()
	}

	types, err := cfg.DutyTable()
	if err != nil {
		return nil, err
	}

	shifts := make([]roster.Shift, 0, 256)
	if len(reportDuties) > 0 {
		result, err := importer.Run(reportDuties, "", &importer.DutyMapper{Types: types})
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, result.Shifts...)
	}
	if len(reportOrders) > 0 {
		result, err := importer.Run(reportOrders, "", &importer.OrderMapper{})
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, result.Shifts...)
	}
	return shifts, nil
}

func openFileInViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringArrayVar(&reportDuties, "duties", nil, "Duty ledger file to report from directly (repeatable)")
	reportCmd.Flags().StringArrayVar(&reportOrders, "orders", nil, "Overtime order file to report from directly (repeatable)")
	reportCmd.Flags().StringVar(&reportDBPath, "db", "", "Path to local SQLite database (default from config import.db)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Output file path (default from config report.output)")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "Output format: html|excel (optional, inferred from output extension)")
	reportCmd.Flags().BoolVar(&reportOpen, "open", false, "Open the generated report in the default viewer")
}
