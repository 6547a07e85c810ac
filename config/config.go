package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/galushin/overtime/duty"
	"github.com/galushin/overtime/internal/clock"
)

const (
	KeyReportOutput       = "report.output"
	KeyReportDecimalComma = "report.decimal_comma"
	KeyImportDB           = "import.db"
	KeyDutyTypes          = "duty_types"
)

type Config struct {
	Report    ReportConfig     `mapstructure:"report" validate:"required"`
	Import    ImportConfig     `mapstructure:"import"`
	DutyTypes []DutyTypeConfig `mapstructure:"duty_types"`
}

type ReportConfig struct {
	Output       string `mapstructure:"output" validate:"required"`
	DecimalComma bool   `mapstructure:"decimal_comma"`
}

type ImportConfig struct {
	DB string `mapstructure:"db"`
}

// DutyTypeConfig declares a custom duty type as fixed interval templates.
// Schedule-dependent bounds are only available to the built-in types.
type DutyTypeConfig struct {
	Name      string           `mapstructure:"name"`
	Intervals []IntervalConfig `mapstructure:"intervals"`
}

type IntervalConfig struct {
	DayOffset int    `mapstructure:"day_offset"`
	Start     string `mapstructure:"start"`
	Stop      string `mapstructure:"stop"`
}

// SetDefaults sets default values if not provided.
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it.
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# overtime configuration
report:
  output: "./timesheet.html"
  decimal_comma: false

import:
  db: "./overtime.db"

# Custom duty types expand a duty record into fixed intervals.
# duty_types:
#   - name: "gate-guard"
#     intervals:
#       - day_offset: 0
#         start: "19:00"
#         stop: "23:00"
duty_types: []
`
}

// DutyTable builds the duty-type table: built-in categories plus the custom
// types declared in the configuration.
func (c *Config) DutyTable() (*duty.Table, error) {
	table := duty.NewTable()
	for _, dutyType := range c.DutyTypes {
		intervals := make([]duty.Interval, 0, len(dutyType.Intervals))
		for _, interval := range dutyType.Intervals {
			start, err := clock.Parse(interval.Start)
			if err != nil {
				return nil, fmt.Errorf("duty type %s: %w", dutyType.Name, err)
			}
			stop, err := clock.Parse(interval.Stop)
			if err != nil {
				return nil, fmt.Errorf("duty type %s: %w", dutyType.Name, err)
			}
			intervals = append(intervals, duty.Interval{
				DayOffset: interval.DayOffset,
				Start:     start,
				Stop:      stop,
			})
		}
		if err := table.Register(dutyType.Name, intervals); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateDutyTypes(cfg.DutyTypes); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyReportOutput, "./timesheet.html")
	v.SetDefault(KeyReportDecimalComma, false)
	v.SetDefault(KeyImportDB, "./overtime.db")
	v.SetDefault(KeyDutyTypes, []map[string]any{})
}

func validateDutyTypes(dutyTypes []DutyTypeConfig) error {
	seen := make(map[string]struct{}, len(dutyTypes))
	for i, dutyType := range dutyTypes {
		name := strings.TrimSpace(dutyType.Name)
		if name == "" {
			return fmt.Errorf("validation failed: duty_types[%d].name is required", i)
		}
		key := strings.ToLower(name)
		if _, exists := seen[key]; exists {
			return fmt.Errorf("validation failed: duplicate duty type %q", name)
		}
		seen[key] = struct{}{}

		if len(dutyType.Intervals) == 0 {
			return fmt.Errorf("validation failed: duty_types[%d].intervals must not be empty", i)
		}
		for j, interval := range dutyType.Intervals {
			if interval.DayOffset < 0 {
				return fmt.Errorf("validation failed: duty_types[%d].intervals[%d].day_offset must not be negative", i, j)
			}
			start, err := clock.Parse(interval.Start)
			if err != nil {
				return fmt.Errorf("validation failed: duty_types[%d].intervals[%d].start: %v", i, j, err)
			}
			stop, err := clock.Parse(interval.Stop)
			if err != nil {
				return fmt.Errorf("validation failed: duty_types[%d].intervals[%d].stop: %v", i, j, err)
			}
			if start >= stop {
				return fmt.Errorf("validation failed: duty_types[%d].intervals[%d] start must precede stop", i, j)
			}
		}
	}
	return nil
}
