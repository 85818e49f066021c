package eventsched

import (
	"time"
)

// TimeoutLocker is a sync.Locker whose Lock gives up after a bounded wait.
// It models watchdog-style acquisition: a Manager shared between goroutines
// should never hold its locker for long (callbacks run unlocked), so a
// timeout indicates a stuck or misbehaving participant and is treated as
// fatal. Lock calls the optional handler and then panics; Unlock of an
// unheld locker panics.
//
// The zero value is not usable; use NewTimeoutLocker.
type TimeoutLocker struct {
	c         chan struct{}
	timeout   time.Duration
	onTimeout func()
}

// NewTimeoutLocker creates a TimeoutLocker. timeout must be positive.
// onTimeout, if non-nil, runs before the Lock timeout panic, for logging or
// terminating the process on the host's terms.
func NewTimeoutLocker(timeout time.Duration, onTimeout func()) *TimeoutLocker {
	if timeout <= 0 {
		panic(`eventsched: timeout locker: timeout must be positive`)
	}
	x := &TimeoutLocker{
		c:         make(chan struct{}, 1),
		timeout:   timeout,
		onTimeout: onTimeout,
	}
	x.c <- struct{}{} // token present means unlocked
	return x
}

func (x *TimeoutLocker) Lock() {
	select {
	case <-x.c:
		return
	default:
	}
	t := time.NewTimer(x.timeout)
	defer t.Stop()
	select {
	case <-x.c:
	case <-t.C:
		if x.onTimeout != nil {
			x.onTimeout()
		}
		panic(`eventsched: timeout locker: lock acquisition timed out`)
	}
}

func (x *TimeoutLocker) Unlock() {
	select {
	case x.c <- struct{}{}:
	default:
		panic(`eventsched: timeout locker: unlock of unlocked locker`)
	}
}
