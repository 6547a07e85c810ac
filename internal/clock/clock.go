// Package clock models time-of-day values with minute resolution.
package clock

import (
	"fmt"
	"strconv"
	"strings"
)

// Time is an offset from midnight in minutes. Valid report inputs lie in
// [Midnight, EndOfDay]; EndOfDay (24:00) is a legal interval bound.
type Time int

const (
	Midnight Time = 0
	EndOfDay Time = 24 * 60
)

func New(hours, minutes int) Time {
	return Time(hours*60 + minutes)
}

// Parse reads "HH:MM" or "HH:MM:SS"; seconds are accepted and discarded.
func Parse(value string) (Time, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time of day %q", value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hours in %q", value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in %q", value)
	}
	if len(parts) == 3 {
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return 0, fmt.Errorf("invalid seconds in %q", value)
		}
	}

	if hours < 0 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time of day %q out of range", value)
	}

	parsed := New(hours, minutes)
	if parsed > EndOfDay {
		return 0, fmt.Errorf("time of day %q exceeds 24:00", value)
	}
	return parsed, nil
}

func (t Time) Hour() int {
	return int(t) / 60
}

func (t Time) Minute() int {
	return int(t) % 60
}

// Hours converts to fractional hours (17:45 -> 17.75).
func (t Time) Hours() float64 {
	return float64(t.Hour()) + float64(t.Minute())/60.0
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func Min(a, b Time) Time {
	if a < b {
		return a
	}
	return b
}

func Max(a, b Time) Time {
	if a > b {
		return a
	}
	return b
}
