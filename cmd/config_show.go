package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/galushin/overtime/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  overtime config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		}
		fmt.Println("Configuration:")
		fmt.Printf("report.output: %s\n", cfg.Report.Output)
		fmt.Printf("report.decimal_comma: %t\n", cfg.Report.DecimalComma)
		fmt.Printf("import.db: %s\n", cfg.Import.DB)
		fmt.Printf("duty_types: %d\n", len(cfg.DutyTypes))
		for i, dutyType := range cfg.DutyTypes {
			fmt.Printf("duty_types[%d].name: %s\n", i, dutyType.Name)
			for j, interval := range dutyType.Intervals {
				fmt.Printf("duty_types[%d].intervals[%d]: day_offset=%d %s-%s\n",
					i, j, interval.DayOffset, interval.Start, interval.Stop)
			}
		}
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
