package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage overtime configuration file values.",
	Long: `Create and display the overtime configuration file.

The configuration stores application-wide values and custom duty types:
- report.output / report.decimal_comma
- import.db
- duty_types[].name / intervals[].day_offset+start+stop`,
	Example: `
  # Create default config in $HOME/.overtime.yaml
  overtime config create

  # Show active config and source file
  overtime config show
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
