// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package eventsched

import (
	"log"
	"sync"

	"github.com/joeycumines/go-eventsched/fixtime"
	"github.com/joeycumines/logiface"
)

type (
	// ID identifies a scheduled event. Ids are positive, assigned in
	// ascending order starting at 1, and never reused by a Manager. 0 is the
	// null identifier, returned by Schedule when nothing was scheduled.
	ID int32

	// Callback is invoked by Process when an event matures, with the opaque
	// data supplied to Schedule and the event's id. Callbacks run on the
	// processing goroutine with the Manager's locker released, so they may
	// call Schedule and Cancel. They must not block.
	Callback func(data any, id ID)

	// Manager schedules callbacks against absolute fixed-point timestamps
	// and fires them, in time order, from Process.
	//
	// Without a locker (the default) a Manager is single-threaded. With
	// WithLocker all methods are safe for concurrent use, except that
	// Process must still only be called from one designated processing
	// context at a time.
	Manager struct {
		clock   fixtime.Clock
		locker  sync.Locker
		logger  *logiface.Logger[logiface.Event]
		hook    func(fixtime.Time)
		metrics *Metrics
		pool    pool
		queue   *pending
		closed  bool
	}
)

// New creates a Manager. See the Option constructors for configuration; the
// zero configuration uses the fixtime.Mono clock, no locker, and no logger.
func New(opts ...Option) (*Manager, error) {
	cfg, err := resolveManagerOptions(opts)
	if err != nil {
		return nil, err
	}
	m := &Manager{
		clock:  cfg.clock,
		locker: cfg.locker,
		logger: cfg.logger,
		hook:   cfg.hook,
		queue:  newPending(),
	}
	if cfg.metrics {
		m.metrics = new(Metrics)
	}
	return m, nil
}

func (x *Manager) lock() {
	if x.locker != nil {
		x.locker.Lock()
	}
}

func (x *Manager) unlock() {
	if x.locker != nil {
		x.locker.Unlock()
	}
}

// Now returns the current time per the configured clock.
func (x *Manager) Now() fixtime.Time {
	return x.clock()
}

// Schedule registers cb to fire once when the clock reaches when, and
// returns the event's id. Timestamps must be positive; zero or negative
// timestamps, or a nil cb, schedule nothing and return 0. Scheduling in the
// past is legal, and fires on the next Process.
func (x *Manager) Schedule(when fixtime.Time, cb Callback, data any) ID {
	if when <= 0 || cb == nil {
		return 0
	}
	x.lock()
	if x.closed {
		x.unlock()
		return 0
	}
	r := x.pool.acquire()
	r.when = when
	r.cb = cb
	r.data = data
	x.queue.insert(r)
	id := r.id
	newHead := x.queue.head() == r
	pending := x.queue.len()
	hook := x.hook
	x.unlock()
	x.metrics.recordScheduled(pending)
	x.logger.Debug().
		Int(`id`, int(id)).
		Stringer(`when`, when).
		Int(`pending`, pending).
		Log(`event scheduled`)
	if newHead && hook != nil {
		hook(when)
	}
	return id
}

// Cancel removes a pending event. It reports whether the event was pending;
// false for ids that are unknown, already fired, already cancelled, or 0.
// Failure is informational only.
func (x *Manager) Cancel(id ID) bool {
	if id == 0 {
		return false
	}
	x.lock()
	if x.closed {
		x.unlock()
		return false
	}
	r := x.queue.removeByID(id)
	if r != nil {
		x.pool.release(r)
	}
	x.unlock()
	x.metrics.recordCancelled(r != nil)
	if r != nil {
		x.logger.Debug().Int(`id`, int(id)).Log(`event cancelled`)
		return true
	}
	return false
}

// NextTime returns the earliest pending timestamp, or fixtime.Min when
// nothing is pending.
func (x *Manager) NextTime() fixtime.Time {
	x.lock()
	defer x.unlock()
	if x.closed || x.queue.head() == nil {
		return fixtime.Min
	}
	return x.queue.head().when
}

// UntilNext returns the interval from now until the earliest pending event:
// -1 when nothing is pending, 0 when the earliest event is due (its
// timestamp is at or before now), and the positive delta otherwise.
func (x *Manager) UntilNext(now fixtime.Time) fixtime.Time {
	x.lock()
	defer x.unlock()
	if x.closed {
		return -1
	}
	r := x.queue.head()
	switch {
	case r == nil:
		return -1
	case r.when <= now:
		return 0
	default:
		return r.when - now
	}
}

// Process fires every pending event whose timestamp is at or before now, in
// timestamp order (schedule order for equal timestamps), and returns the
// number fired. The head is re-checked after every callback, so events that
// a callback schedules at or before now fire during the same call, and
// events it cancels do not fire. Returns at the first event strictly in the
// future.
//
// Each record is recycled before its callback runs, and the locker is not
// held across the invocation.
func (x *Manager) Process(now fixtime.Time) int {
	var n int
	for {
		x.lock()
		if x.closed {
			x.unlock()
			break
		}
		r := x.queue.head()
		if r == nil || r.when > now {
			x.unlock()
			break
		}
		x.queue.removeHead()
		cb, data, id, when := r.cb, r.data, r.id, r.when
		x.pool.release(r)
		pending := x.queue.len()
		x.unlock()
		x.metrics.recordFired(now - when)
		x.logger.Debug().
			Int(`id`, int(id)).
			Stringer(`when`, when).
			Stringer(`late`, now-when).
			Int(`pending`, pending).
			Log(`event fired`)
		x.invoke(cb, data, id)
		n++
	}
	return n
}

// invoke runs a callback with panic recovery, so one misbehaving event
// cannot abort the processing pass.
func (x *Manager) invoke(cb Callback, data any, id ID) {
	defer func() {
		if r := recover(); r != nil {
			if x.logger != nil {
				x.logger.Err().
					Int(`id`, int(id)).
					Interface(`panic`, r).
					Log(`event callback panicked`)
			} else {
				log.Printf("ERROR: eventsched: event callback panicked: %v", r)
			}
		}
	}()
	cb(data, id)
}

// trySetScheduleHook installs hook if no hook is configured, reporting
// success. Used by NewPump to wire its wake channel.
func (x *Manager) trySetScheduleHook(hook func(fixtime.Time)) bool {
	x.lock()
	defer x.unlock()
	if x.closed || x.hook != nil {
		return false
	}
	x.hook = hook
	return true
}

// Len returns the number of pending events.
func (x *Manager) Len() int {
	x.lock()
	defer x.unlock()
	if x.closed {
		return 0
	}
	return x.queue.len()
}

// Closed reports whether Close has been called.
func (x *Manager) Closed() bool {
	x.lock()
	defer x.unlock()
	return x.closed
}

// Metrics returns a snapshot of the Manager's counters. The zero snapshot is
// returned when metrics were not enabled.
func (x *Manager) Metrics() MetricsSnapshot {
	return x.metrics.Snapshot()
}

// Close releases every pending and free record and marks the Manager closed.
// Subsequent Schedule calls return 0, Cancel returns false, NextTime returns
// fixtime.Min, UntilNext returns -1, and Process returns 0. Close is
// idempotent. The locker, if any, is acquired and released; it remains owned
// by the caller.
func (x *Manager) Close() error {
	x.lock()
	if !x.closed {
		x.closed = true
		x.queue = nil
		x.pool.free = nil
	}
	x.unlock()
	return nil
}
