package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/galushin/overtime/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "overtime",
	Short: "Turn duty rosters and overtime orders into monthly timesheet reports.",
	Long: `Read duty ledgers and explicit overtime orders, extract the time worked
outside the normal work window, and aggregate it into per-employee monthly
timesheet tables with night, holiday and plain overtime totals.

Supported input formats:
- Tab-delimited ledgers: .txt, .tsv (UTF-8 or UTF-16 with BOM)
- CSV: .csv
- Excel: .xlsx, .xlsm, .xls
`,
	Example: `
  # Create configuration file
  overtime config create

  # Import a duty ledger into the local database
  overtime import -i duties.txt --mapper duty

  # Import explicit overtime orders
  overtime import -i orders.txt --mapper order

  # Generate the monthly report from the database
  overtime report -o timesheet.html

  # Generate straight from ledger files, skipping the database
  overtime report --duties duties.txt --orders orders.txt -o timesheet.xlsx
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.overtime.yaml, then ./.overtime.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".overtime")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found, using defaults. Create one with: overtime config create")
	}
}
