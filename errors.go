package eventsched

import (
	"errors"
)

var (
	// ErrNilManager is returned by NewPump when no Manager is provided.
	ErrNilManager = errors.New(`eventsched: manager must not be nil`)

	// ErrManagerClosed is returned by Pump.Run when the Manager has been
	// closed. Manager methods themselves do not return it; after Close they
	// degrade to benign no-op statuses (0, false, the fixtime.Min sentinel).
	ErrManagerClosed = errors.New(`eventsched: manager is closed`)

	// ErrPumpRunning is returned by Pump.Run when the pump is already
	// running on another goroutine.
	ErrPumpRunning = errors.New(`eventsched: pump already running`)

	// ErrPumpTerminated is returned by Pump.Run after a previous Run has
	// returned. A Pump runs at most once.
	ErrPumpTerminated = errors.New(`eventsched: pump terminated`)
)
