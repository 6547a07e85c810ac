package importer

import (
	"fmt"
	"strings"
	"time"
)

// parseDate accepts the date forms found in duty ledgers: ISO, the
// month-name form written by older exports, and the dotted European form.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	layouts := []string{
		"2006-01-02",
		"2006-Jan-02",
		"2006-Jan-2",
		"02.01.2006",
	}

	for _, layout := range layouts {
		if parsed, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported date format: %q", value)
}
