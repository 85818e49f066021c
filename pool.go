package eventsched

import (
	"github.com/joeycumines/go-eventsched/fixtime"
)

type (
	// record is a single schedulable event. Records cycle between the pool's
	// free list and the pending queue for the life of the Manager, and are
	// never handed back to the allocator individually.
	record struct {
		when fixtime.Time
		cb   Callback
		data any
		id   ID
		// seq is the pending queue's insertion sequence, for stable ordering
		// of equal timestamps. Owned by pending.
		seq uint64
	}

	// pool recycles records through a LIFO free list. Released records keep
	// stale field values; acquire assigns a fresh id and the caller must
	// populate everything else.
	pool struct {
		free []*record
		// last issued id; pre-incremented so ids start at 1, leaving 0 as
		// the null identifier
		lastID int32
	}
)

func (x *pool) acquire() *record {
	x.lastID++
	if n := len(x.free); n > 0 {
		r := x.free[n-1]
		x.free[n-1] = nil
		x.free = x.free[:n-1]
		r.id = ID(x.lastID)
		return r
	}
	return &record{id: ID(x.lastID)}
}

func (x *pool) release(r *record) {
	x.free = append(x.free, r)
}
