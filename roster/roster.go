package roster

import (
	"time"

	"github.com/galushin/overtime/internal/clock"
)

// Shift is the normalized duty record used across importers, storage and
// report generation. Start and Stop bound one same-day interval; a duty
// spanning midnight is stored as several shifts.
type Shift struct {
	ID           int64
	Name         string
	Date         time.Time
	Start        clock.Time
	Stop         clock.Time
	DutyType     string
	Order        string
	SourceFormat string
	SourceMapper string
	SourceFile   string
}
