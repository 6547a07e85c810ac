// Package overtime turns duty intervals into classified overtime events and
// aggregates them into per-month, per-employee timesheet tables.
package overtime

import (
	"errors"
	"fmt"
	"time"

	"github.com/galushin/overtime/internal/clock"
)

// ErrInvalidInterval marks duty intervals that violate the input contract
// 00:00 <= start < stop <= 24:00.
var ErrInvalidInterval = errors.New("invalid duty interval")

// Period is an excess interval within one calendar day. Invariant:
// Start < Stop, both within [00:00, 24:00].
type Period struct {
	Start clock.Time
	Stop  clock.Time
}

func (p Period) Duration() time.Duration {
	return time.Duration(p.Stop-p.Start) * time.Minute
}

func (p Period) String() string {
	return p.Start.String() + "-" + p.Stop.String()
}

// Less orders periods by (Start, Stop).
func (p Period) Less(other Period) bool {
	if p.Start != other.Start {
		return p.Start < other.Start
	}
	return p.Stop < other.Stop
}

// Event is one extracted fact: an employee worked an excess period on a date,
// authorized by an order reference.
type Event struct {
	Name   string
	Date   time.Time
	Period Period
	Order  string
}

func validateInterval(start, stop clock.Time) error {
	if start < clock.Midnight || stop > clock.EndOfDay || start >= stop {
		return fmt.Errorf("%w: %s-%s", ErrInvalidInterval, start, stop)
	}
	return nil
}
