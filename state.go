package eventsched

import (
	"sync/atomic"
)

// PumpState represents the current state of a Pump.
//
// State machine:
//
//	PumpIdle (0) -> PumpRunning (1)        [Run]
//	PumpRunning (1) -> PumpSleeping (2)    [waiting for the next deadline]
//	PumpSleeping (2) -> PumpRunning (1)    [deadline, wake, or poll interval]
//	PumpRunning (1) -> PumpTerminated (3)  [Run returned]
//
// Reversible transitions use CAS; PumpTerminated is stored unconditionally
// when Run exits and is terminal.
type PumpState uint32

const (
	// PumpIdle indicates the pump has been created but not started.
	PumpIdle PumpState = iota
	// PumpRunning indicates the pump is processing due events.
	PumpRunning
	// PumpSleeping indicates the pump is blocked waiting for the next
	// deadline, a wake, or its poll interval.
	PumpSleeping
	// PumpTerminated indicates Run has returned. Terminal.
	PumpTerminated
)

// String returns a human-readable representation of the state.
func (s PumpState) String() string {
	switch s {
	case PumpIdle:
		return "Idle"
	case PumpRunning:
		return "Running"
	case PumpSleeping:
		return "Sleeping"
	case PumpTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// pumpState is a lock-free state holder. No transition validation; callers
// use tryTransition for the reversible states and store for the terminal
// one.
type pumpState struct {
	v atomic.Uint32
}

func (x *pumpState) load() PumpState {
	return PumpState(x.v.Load())
}

func (x *pumpState) store(s PumpState) {
	x.v.Store(uint32(s))
}

func (x *pumpState) tryTransition(from, to PumpState) bool {
	return x.v.CompareAndSwap(uint32(from), uint32(to))
}
