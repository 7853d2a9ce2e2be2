package voronoi

import (
	"github.com/google/btree"
)

type eventKind uint8

// Circle events sort before site events at the same position.
const (
	circleEvent eventKind = iota
	siteEvent
)

type event struct {
	kind eventKind
	x    float64
	y    float64
	seq  uint64

	// site events
	site int

	// circle events
	arc    arcID
	gen    uint32
	center Vertex
}

// Less orders events along the sweep: ascending y, then x, then kind, then
// insertion order.
func (e *event) Less(than btree.Item) bool {
	o := than.(*event)
	if e.y != o.y {
		return e.y < o.y
	}
	if e.x != o.x {
		return e.x < o.x
	}
	if e.kind != o.kind {
		return e.kind < o.kind
	}
	return e.seq < o.seq
}

type eventQueue struct {
	bt  *btree.BTree
	seq uint64
}

func newEventQueue() *eventQueue {
	return &eventQueue{bt: btree.New(8)}
}

func (q *eventQueue) insert(e *event) {
	e.seq = q.seq
	q.seq++
	q.bt.ReplaceOrInsert(e)
}

// removeIfPresent drops e from the queue, reporting whether it was queued.
func (q *eventQueue) removeIfPresent(e *event) bool {
	return q.bt.Delete(e) != nil
}

func (q *eventQueue) popMin() *event {
	item := q.bt.DeleteMin()
	if item == nil {
		return nil
	}
	return item.(*event)
}

func (q *eventQueue) len() int {
	return q.bt.Len()
}
