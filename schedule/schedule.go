// Package schedule holds the workday calendar rules: rest days, normal work
// windows, and the boundary times used by schedule-dependent duty categories.
package schedule

import (
	"time"

	"github.com/galushin/overtime/internal/clock"
)

// IsRestDay reports whether the date falls on a weekend. Public holidays
// beyond weekends are not modelled.
func IsRestDay(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// WorkStart returns the start of the normal work window. On rest days it
// returns 24:00, which makes the whole day count as time before work start
// during overtime extraction.
func WorkStart(date time.Time) clock.Time {
	if IsRestDay(date) {
		return clock.EndOfDay
	}
	if date.Weekday() == time.Monday {
		return clock.New(8, 0)
	}
	return clock.New(8, 30)
}

// WorkStop returns the end of the normal work window; 24:00 on rest days,
// shortened on Fridays.
func WorkStop(date time.Time) clock.Time {
	if IsRestDay(date) {
		return clock.EndOfDay
	}
	if date.Weekday() == time.Friday {
		return clock.New(15, 45)
	}
	return clock.New(17, 30)
}

// Rise is the morning boundary of the responsible-officer on-call shift.
func Rise(date time.Time) clock.Time {
	if date.Weekday() == time.Sunday {
		return clock.New(7, 30)
	}
	return clock.New(6, 30)
}

// AllClear is the evening boundary of the responsible-officer on-call shift.
func AllClear(date time.Time) clock.Time {
	if date.Weekday() == time.Saturday {
		return clock.New(23, 30)
	}
	return clock.New(22, 30)
}
