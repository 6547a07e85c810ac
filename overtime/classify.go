package overtime

import (
	"time"

	"github.com/galushin/overtime/internal/clock"
	"github.com/galushin/overtime/schedule"
)

// Daytime reference window; overtime outside it counts as night hours.
var (
	dayWindowStart = clock.New(6, 0)
	dayWindowStop  = clock.New(22, 0)
)

// HolidayTime returns the full period duration on rest days, zero otherwise.
func HolidayTime(date time.Time, p Period) time.Duration {
	if schedule.IsRestDay(date) {
		return p.Duration()
	}
	return 0
}

// NightTime returns the part of the period outside the 06:00-22:00 daytime
// window. Rest-day periods yield zero: that time is already counted in full
// as holiday time, the categories never overlap.
func NightTime(date time.Time, p Period) time.Duration {
	if schedule.IsRestDay(date) {
		return 0
	}

	atDay := clock.Min(p.Stop, dayWindowStop) - clock.Max(p.Start, dayWindowStart)
	if atDay < 0 {
		atDay = 0
	}

	return p.Duration() - time.Duration(atDay)*time.Minute
}
