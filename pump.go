// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package eventsched

import (
	"context"
	"time"

	"github.com/joeycumines/go-eventsched/fixtime"
	"github.com/joeycumines/logiface"
)

// Pump drives a Manager's processing from a single goroutine: it fires due
// events, sleeps until the next deadline (capped by the poll interval), and
// repeats until its context is cancelled. It is the designated processing
// context described by Manager's threading model.
//
// NewPump installs a schedule hook on the Manager, unless one is already
// configured, so that scheduling an event earlier than the current deadline
// wakes the pump immediately. Producers whose Manager carries a custom hook
// can call Wake themselves; without either, latency is bounded by the poll
// interval.
type Pump struct {
	manager      *Manager
	logger       *logiface.Logger[logiface.Event]
	warn         *warnLimiter
	wake         chan struct{}
	pollInterval time.Duration
	state        pumpState
}

// NewPump creates a Pump for m. The Manager should be configured with a
// locker if anything other than the pump goroutine will touch it.
func NewPump(m *Manager, opts ...PumpOption) (*Pump, error) {
	if m == nil {
		return nil, ErrNilManager
	}
	cfg, err := resolvePumpOptions(opts)
	if err != nil {
		return nil, err
	}
	x := &Pump{
		manager:      m,
		logger:       cfg.logger,
		warn:         newWarnLimiter(time.Minute),
		wake:         make(chan struct{}, 1),
		pollInterval: cfg.pollInterval,
	}
	m.trySetScheduleHook(func(fixtime.Time) { x.Wake() })
	return x, nil
}

// State returns the pump's current state.
func (x *Pump) State() PumpState {
	return x.state.load()
}

// Wake nudges the pump out of its sleep so it re-evaluates the next deadline.
// It never blocks; a wake delivered while the pump is processing is absorbed
// by the next sleep. Waking an idle or terminated pump has no effect.
func (x *Pump) Wake() {
	if x.state.load() == PumpTerminated {
		return
	}
	select {
	case x.wake <- struct{}{}:
	default:
	}
}

// Run processes due events until ctx is cancelled, then performs one final
// drain pass and returns ctx.Err(). A Pump runs at most once: a concurrent
// call returns ErrPumpRunning, and a call after Run has returned returns
// ErrPumpTerminated. Run returns ErrManagerClosed if the Manager is closed
// while running.
func (x *Pump) Run(ctx context.Context) error {
	if !x.state.tryTransition(PumpIdle, PumpRunning) {
		if x.state.load() == PumpTerminated {
			return ErrPumpTerminated
		}
		return ErrPumpRunning
	}
	defer x.state.store(PumpTerminated)

	x.logger.Info().
		Dur(`pollInterval`, x.pollInterval).
		Log(`pump started`)

	for {
		select {
		case <-ctx.Done():
			return x.stop(ctx)
		default:
		}

		now := x.manager.Now()
		x.checkBacklog(now)
		x.manager.Process(now)

		if x.manager.Closed() {
			x.logger.Info().Log(`pump stopped: manager closed`)
			return ErrManagerClosed
		}

		d, immediate := x.calculateWait(now)
		if immediate {
			continue
		}

		x.state.tryTransition(PumpRunning, PumpSleeping)
		t := time.NewTimer(d)
		select {
		case <-ctx.Done():
			t.Stop()
			x.state.tryTransition(PumpSleeping, PumpRunning)
			return x.stop(ctx)
		case <-t.C:
		case <-x.wake:
			t.Stop()
		}
		x.state.tryTransition(PumpSleeping, PumpRunning)
	}
}

// stop performs the final drain pass and surfaces the cancellation cause.
func (x *Pump) stop(ctx context.Context) error {
	n := x.manager.Process(x.manager.Now())
	x.logger.Info().
		Int(`drained`, n).
		Log(`pump stopped`)
	return ctx.Err()
}

// calculateWait determines how long to sleep before the next processing pass.
// immediate is set when more work is already due, which happens when a
// callback schedules at or before the pass's own timestamp.
func (x *Pump) calculateWait(now fixtime.Time) (d time.Duration, immediate bool) {
	switch until := x.manager.UntilNext(now); {
	case until == 0:
		return 0, true
	case until < 0:
		return x.pollInterval, false
	default:
		d = until.AsDuration()
		// ceiling to 1ms; overdue events are caught by the processing pass
		if d < time.Millisecond {
			d = time.Millisecond
		}
		if d > x.pollInterval {
			d = x.pollInterval
		}
		return d, false
	}
}

// checkBacklog warns, rate limited, when the earliest deadline is further in
// the past than one poll interval, which means processing is not keeping up.
func (x *Pump) checkBacklog(now fixtime.Time) {
	if x.logger == nil {
		return
	}
	next := x.manager.NextTime()
	if next == fixtime.Min {
		return
	}
	if behind := now - next; behind > fixtime.FromDuration(x.pollInterval) && x.warn.allow() {
		x.logger.Warning().
			Stringer(`behind`, behind).
			Int(`pending`, x.manager.Len()).
			Log(`pump running behind`)
	}
}
