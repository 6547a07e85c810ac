package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/galushin/overtime/config"
	"github.com/galushin/overtime/importer"
	"github.com/galushin/overtime/storage"
)

var (
	importInputs  []string
	importFormat  string
	importMapper  string
	importDBPath  string
	importReplace bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import duty ledgers or overtime orders into a local SQLite database",
	Long: `Read source files, normalize each row via the selected mapper, and persist
the resulting same-day shifts in SQLite.

Use mapper "duty" for duty ledgers (employee, date, duty type, order); the
duty type is expanded into one or more shifts, splitting overnight duties at
midnight. Use mapper "order" for explicit overtime orders carrying their own
start and stop times.

When --format is omitted, format is inferred from each input file extension.
Rows with an unknown duty type are reported and skipped.`,
	Example: `
  # Import a tab-delimited duty ledger
  overtime import -i duties.txt --mapper duty --db ./overtime.db

  # Import explicit overtime orders
  overtime import -i orders.txt --mapper order --db ./overtime.db

  # Import a headered CSV export
  overtime import -i duties.csv --format csv --mapper duty
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		types, err := cfg.DutyTable()
		if err != nil {
			return err
		}

		mapper, err := importer.MapperByName(importMapper, types)
		if err != nil {
			return err
		}

		result, err := importer.Run(importInputs, importFormat, mapper)
		if err != nil {
			return err
		}

		dbPath := importDBPath
		if dbPath == "" {
			dbPath = cfg.Import.DB
		}
		store, err := storage.OpenSQLite(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if importReplace {
			deleted, err := store.DeleteAllShifts()
			if err != nil {
				return err
			}
			fmt.Printf("Replaced existing data: %d shifts removed\n", deleted)
		}

		inserted, err := store.InsertShifts(result.Shifts)
		if err != nil {
			return err
		}

		fmt.Printf("Import completed. Files: %d, Rows read: %d, Rows mapped: %d, Rows skipped: %d, Shifts persisted: %d\n",
			result.FilesProcessed,
			result.RowsRead,
			result.RowsMapped,
			result.RowsSkipped,
			inserted,
		)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringArrayVarP(&importInputs, "input", "i", nil, "Input file path (repeatable)")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Input format: tsv|csv|excel (optional, inferred from extension when omitted)")
	importCmd.Flags().StringVarP(&importMapper, "mapper", "m", "duty", "Mapper to normalize input data: duty|order")
	importCmd.Flags().StringVar(&importDBPath, "db", "", "Path to local SQLite database (default from config import.db)")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "Delete all stored shifts before importing")

	_ = importCmd.MarkFlagRequired("input")
}
