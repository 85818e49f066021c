// Package eventsched implements a small, allocation-conscious scheduler for
// time-ordered callback events.
//
// Callers schedule callbacks against absolute fixed-point timestamps (see the
// fixtime subpackage), and a single designated processing context repeatedly
// asks what is due and fires due callbacks in time order. Three cooperating
// parts make that up:
//
//   - an event record pool, recycling records through a free list so steady
//     state operation does not allocate
//   - a pending queue ordered by timestamp, stable for equal timestamps, with
//     O(1) peek of the earliest deadline
//   - the Manager facade, exposing Schedule, Cancel, NextTime, UntilNext, and
//     Process
//
// Event identifiers are positive and never reused; 0 is the null identifier.
// An event is pending from Schedule until it is fired by Process or removed
// by Cancel, after which its record returns to the free list.
//
// # Threading model
//
// A Manager is single-threaded by default. Configure WithLocker to share one
// between goroutines; Process releases the locker around every callback
// invocation, so callbacks may call Schedule and Cancel on the same Manager
// without deadlocking. Process itself must only be called from one designated
// processing context, such as Pump.
//
// Pump is an optional driver that owns that processing context: it sleeps
// until the next deadline (capped by a poll interval), fires due events, and
// can be woken early when something earlier is scheduled.
package eventsched
