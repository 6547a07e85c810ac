package overtime

import (
	"time"

	"github.com/galushin/overtime/internal/clock"
	"github.com/galushin/overtime/schedule"
)

// Manager accumulates overtime events extracted from duty intervals. It is
// not safe for concurrent use; one Manager serves one report run.
type Manager struct {
	events []Event
}

func NewManager() *Manager {
	return &Manager{events: make([]Event, 0, 256)}
}

// Process validates one duty interval and appends the portions lying outside
// the normal work window of the date. A rest day has its work window encoded
// as 24:00-24:00, so the whole interval lands before work start. An interval
// spanning the workday on both sides yields two events. The date must carry
// the whole interval; midnight-crossing duties are split by the caller.
func (m *Manager) Process(name string, date time.Time, start, stop clock.Time, order string) error {
	if err := validateInterval(start, stop); err != nil {
		return err
	}

	workStart := schedule.WorkStart(date)
	workStop := schedule.WorkStop(date)

	if start < workStart {
		m.events = append(m.events, Event{
			Name:   name,
			Date:   date,
			Period: Period{Start: start, Stop: clock.Min(stop, workStart)},
			Order:  order,
		})
	}

	if stop > workStop {
		m.events = append(m.events, Event{
			Name:   name,
			Date:   date,
			Period: Period{Start: clock.Max(start, workStop), Stop: stop},
			Order:  order,
		})
	}

	return nil
}

// Events returns the accumulated events in insertion order.
func (m *Manager) Events() []Event {
	return m.events
}
