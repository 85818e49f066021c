package eventsched

import (
	"github.com/joeycumines/go-eventsched/fixtime"
)

// Capability is the narrow scheduling surface handed to producer subsystems.
// Components that only need to read the clock, schedule, and cancel should
// depend on this rather than on *Manager, which also carries the processing
// and lifecycle API.
type Capability struct {
	// Now reads the scheduler's clock.
	Now func() fixtime.Time
	// Schedule behaves as Manager.Schedule.
	Schedule func(when fixtime.Time, cb Callback, data any) ID
	// Cancel behaves as Manager.Cancel.
	Cancel func(id ID) bool
}

// Valid reports whether every field is populated. The zero Capability is
// invalid.
func (x Capability) Valid() bool {
	return x.Now != nil && x.Schedule != nil && x.Cancel != nil
}

// Capability returns the Manager's scheduling surface, bound to the Manager.
func (x *Manager) Capability() Capability {
	return Capability{
		Now:      x.Now,
		Schedule: x.Schedule,
		Cancel:   x.Cancel,
	}
}
