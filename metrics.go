package eventsched

import (
	"sync/atomic"

	"github.com/joeycumines/go-eventsched/fixtime"
)

// Metrics tracks scheduler counters. All updates are atomic, adding
// negligible overhead to the scheduling hot path; enable via WithMetrics and
// read via Manager.Metrics.
type Metrics struct {
	scheduled        atomic.Int64
	cancelled        atomic.Int64
	cancelMisses     atomic.Int64
	fired            atomic.Int64
	pendingHighWater atomic.Int64
	maxLateness      atomic.Int64
}

// MetricsSnapshot is a point-in-time copy of a Manager's counters, safe to
// retain and compare.
type MetricsSnapshot struct {
	// Scheduled is the number of successful Schedule calls.
	Scheduled int64
	// Cancelled is the number of Cancel calls that removed a pending event.
	Cancelled int64
	// CancelMisses is the number of Cancel calls that found nothing.
	CancelMisses int64
	// Fired is the number of callbacks invoked by Process.
	Fired int64
	// PendingHighWater is the largest observed pending queue length.
	PendingHighWater int64
	// MaxLateness is the largest observed delta between an event's deadline
	// and the processing time that fired it. Zero when every event fired on
	// an exact deadline or nothing fired.
	MaxLateness fixtime.Time
}

// Snapshot returns a copy of the counters. A nil receiver yields the zero
// snapshot.
func (x *Metrics) Snapshot() MetricsSnapshot {
	if x == nil {
		return MetricsSnapshot{}
	}
	return MetricsSnapshot{
		Scheduled:        x.scheduled.Load(),
		Cancelled:        x.cancelled.Load(),
		CancelMisses:     x.cancelMisses.Load(),
		Fired:            x.fired.Load(),
		PendingHighWater: x.pendingHighWater.Load(),
		MaxLateness:      fixtime.Time(x.maxLateness.Load()),
	}
}

func (x *Metrics) recordScheduled(pending int) {
	if x == nil {
		return
	}
	x.scheduled.Add(1)
	for {
		cur := x.pendingHighWater.Load()
		if int64(pending) <= cur || x.pendingHighWater.CompareAndSwap(cur, int64(pending)) {
			return
		}
	}
}

func (x *Metrics) recordCancelled(hit bool) {
	if x == nil {
		return
	}
	if hit {
		x.cancelled.Add(1)
	} else {
		x.cancelMisses.Add(1)
	}
}

func (x *Metrics) recordFired(late fixtime.Time) {
	if x == nil {
		return
	}
	x.fired.Add(1)
	if late <= 0 {
		return
	}
	for {
		cur := x.maxLateness.Load()
		if int64(late) <= cur || x.maxLateness.CompareAndSwap(cur, int64(late)) {
			return
		}
	}
}
