package importer

import (
	"strings"
)

// Record is one raw input row. Headered sources (CSV, Excel) fill Values
// with normalized column keys; the bare tab-delimited duty ledgers carry
// positional Fields only.
type Record struct {
	RowNumber int
	Fields    []string
	Values    map[string]string
}

func (r Record) Get(keys ...string) string {
	for _, key := range keys {
		normalized := normalizeHeader(key)
		if value, ok := r.Values[normalized]; ok {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// Field returns the trimmed positional field, or "" when out of range.
func (r Record) Field(index int) string {
	if index < 0 || index >= len(r.Fields) {
		return ""
	}
	return strings.TrimSpace(r.Fields[index])
}

// Headered reports whether the record came from a source with a header row.
func (r Record) Headered() bool {
	return r.Values != nil
}

func normalizeHeader(input string) string {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	trimmed = strings.ReplaceAll(trimmed, "_", "")
	trimmed = strings.ReplaceAll(trimmed, "-", "")
	trimmed = strings.ReplaceAll(trimmed, " ", "")
	return trimmed
}
