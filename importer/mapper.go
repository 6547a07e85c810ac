package importer

import (
	"fmt"
	"strings"

	"github.com/galushin/overtime/duty"
	"github.com/galushin/overtime/roster"
)

// Mapper normalizes one raw record into zero or more duty shifts. A nil
// slice with ok=false means the record was skipped (counted, not fatal).
type Mapper interface {
	Name() string
	Map(record Record, sourceFormat, sourceFile string) ([]roster.Shift, bool, error)
}

func SupportedMapperNames() []string {
	return []string{"duty", "order"}
}

func MapperByName(name string, types *duty.Table) (Mapper, error) {
	switch normalizeHeader(name) {
	case "duty":
		return &DutyMapper{Types: types}, nil
	case "order":
		return &OrderMapper{}, nil
	default:
		return nil, fmt.Errorf("unsupported mapper: %s (supported: %s)", name, strings.Join(SupportedMapperNames(), ", "))
	}
}
