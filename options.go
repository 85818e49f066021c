// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package eventsched

import (
	"errors"
	"sync"
	"time"

	"github.com/joeycumines/go-eventsched/fixtime"
	"github.com/joeycumines/logiface"
)

// managerOptions holds configuration options for Manager creation.
type managerOptions struct {
	clock   fixtime.Clock
	locker  sync.Locker
	logger  *logiface.Logger[logiface.Event]
	hook    func(fixtime.Time)
	metrics bool
}

// pumpOptions holds configuration options for Pump creation.
type pumpOptions struct {
	pollInterval time.Duration
	logger       *logiface.Logger[logiface.Event]
}

// --- Manager Options ---

// Option configures a Manager instance.
type Option interface {
	applyManager(*managerOptions) error
}

// optionImpl implements Option.
type optionImpl struct {
	applyManagerFunc func(*managerOptions) error
}

func (x *optionImpl) applyManager(opts *managerOptions) error {
	return x.applyManagerFunc(opts)
}

// WithClock sets the timestamp source used by Manager.Now. The default is
// fixtime.Mono. Tests typically substitute a closure over a variable.
func WithClock(clock fixtime.Clock) Option {
	return &optionImpl{func(opts *managerOptions) error {
		if clock == nil {
			return errors.New(`eventsched: clock must not be nil`)
		}
		opts.clock = clock
		return nil
	}}
}

// WithLocker sets the locker guarding Manager state, enabling use from
// multiple goroutines. By default there is no locking and the Manager is
// single-threaded. The locker is released around every callback invocation
// during Process. Ownership of the locker stays with the caller; Close
// releases it but does not destroy it.
func WithLocker(locker sync.Locker) Option {
	return &optionImpl{func(opts *managerOptions) error {
		opts.locker = locker
		return nil
	}}
}

// WithLogger attaches a logger to the Manager. Schedule, cancel, and fire
// activity is logged at debug level. A nil logger (the default) disables
// logging.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &optionImpl{func(opts *managerOptions) error {
		opts.logger = logger
		return nil
	}}
}

// WithScheduleHook registers a function invoked after Schedule whenever the
// new event became the earliest pending deadline. It is called with the new
// deadline, outside the locker, on the scheduling goroutine. NewPump installs
// its wake channel here when no hook is configured.
func WithScheduleHook(hook func(next fixtime.Time)) Option {
	return &optionImpl{func(opts *managerOptions) error {
		opts.hook = hook
		return nil
	}}
}

// WithMetrics enables counter collection on the Manager, accessible via
// Manager.Metrics(). Counters are atomics and add negligible overhead.
func WithMetrics(enabled bool) Option {
	return &optionImpl{func(opts *managerOptions) error {
		opts.metrics = enabled
		return nil
	}}
}

// resolveManagerOptions applies Option instances to managerOptions.
func resolveManagerOptions(opts []Option) (*managerOptions, error) {
	cfg := &managerOptions{
		clock: fixtime.Mono, // default
	}
	for _, opt := range opts {
		if opt == nil {
			continue // Skip nil options gracefully
		}
		if err := opt.applyManager(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// --- Pump Options ---

// PumpOption configures a Pump instance.
type PumpOption interface {
	applyPump(*pumpOptions) error
}

// pumpOptionImpl implements PumpOption.
type pumpOptionImpl struct {
	applyPumpFunc func(*pumpOptions) error
}

func (x *pumpOptionImpl) applyPump(opts *pumpOptions) error {
	return x.applyPumpFunc(opts)
}

// WithPollInterval caps how long the pump sleeps between processing passes,
// bounding the staleness of out-of-band schedules that bypass Wake. The
// default is 100ms.
func WithPollInterval(d time.Duration) PumpOption {
	return &pumpOptionImpl{func(opts *pumpOptions) error {
		if d <= 0 {
			return errors.New(`eventsched: poll interval must be positive`)
		}
		opts.pollInterval = d
		return nil
	}}
}

// WithPumpLogger attaches a logger to the Pump. Lifecycle transitions are
// logged at info level, and running-behind conditions at warn level (rate
// limited).
func WithPumpLogger(logger *logiface.Logger[logiface.Event]) PumpOption {
	return &pumpOptionImpl{func(opts *pumpOptions) error {
		opts.logger = logger
		return nil
	}}
}

// resolvePumpOptions applies PumpOption instances to pumpOptions.
func resolvePumpOptions(opts []PumpOption) (*pumpOptions, error) {
	cfg := &pumpOptions{
		pollInterval: 100 * time.Millisecond, // default
	}
	for _, opt := range opts {
		if opt == nil {
			continue // Skip nil options gracefully
		}
		if err := opt.applyPump(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
