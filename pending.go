package eventsched

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/joeycumines/go-eventsched/fixtime"
)

type (
	// pendingKey orders the queue: ascending timestamp, then insertion
	// sequence, so equal timestamps fire in schedule order.
	pendingKey struct {
		when fixtime.Time
		seq  uint64
	}

	// pending is the set of scheduled events, ordered by pendingKey, with
	// cancellation by id and an O(1) peek of the earliest record.
	pending struct {
		tree *redblacktree.Tree // pendingKey -> *record
		byID map[ID]*record
		// cached minimum, kept in sync by every mutation
		min *record
		seq uint64
	}
)

func newPending() *pending {
	return &pending{
		tree: redblacktree.NewWith(comparePendingKeys),
		byID: make(map[ID]*record),
	}
}

func comparePendingKeys(a, b any) int {
	ka, kb := a.(pendingKey), b.(pendingKey)
	switch {
	case ka.when < kb.when:
		return -1
	case ka.when > kb.when:
		return 1
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	default:
		return 0
	}
}

func (x *pending) len() int {
	return len(x.byID)
}

// head returns the earliest record without removing it, or nil when empty.
func (x *pending) head() *record {
	return x.min
}

func (x *pending) insert(r *record) {
	x.seq++
	r.seq = x.seq
	x.tree.Put(pendingKey{when: r.when, seq: r.seq}, r)
	x.byID[r.id] = r
	// seq is monotonic, so a new record only displaces the minimum when it
	// is strictly earlier
	if x.min == nil || r.when < x.min.when {
		x.min = r
	}
}

// removeHead detaches and returns the earliest record, or nil when empty.
func (x *pending) removeHead() *record {
	r := x.min
	if r == nil {
		return nil
	}
	x.unlink(r)
	return r
}

// removeByID detaches and returns the record for id, or nil if it is not
// pending.
func (x *pending) removeByID(id ID) *record {
	r := x.byID[id]
	if r == nil {
		return nil
	}
	x.unlink(r)
	return r
}

func (x *pending) unlink(r *record) {
	x.tree.Remove(pendingKey{when: r.when, seq: r.seq})
	delete(x.byID, r.id)
	if x.min == r {
		if node := x.tree.Left(); node != nil {
			x.min = node.Value.(*record)
		} else {
			x.min = nil
		}
	}
}
