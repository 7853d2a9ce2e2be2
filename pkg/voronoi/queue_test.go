package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueueOrder(t *testing.T) {
	q := newEventQueue()
	siteA := &event{kind: siteEvent, x: 5, y: 10, site: 0}
	siteB := &event{kind: siteEvent, x: 1, y: 10, site: 1}
	siteC := &event{kind: siteEvent, x: 9, y: 2, site: 2}
	circle := &event{kind: circleEvent, x: 5, y: 10}
	siteD := &event{kind: siteEvent, x: 5, y: 10, site: 3}
	for _, e := range []*event{siteA, siteB, siteC, circle, siteD} {
		q.insert(e)
	}
	require.Equal(t, 5, q.len())

	var got []*event
	for e := q.popMin(); e != nil; e = q.popMin() {
		got = append(got, e)
	}
	// y, then x, then circle before site, then insertion order
	assert.Equal(t, []*event{siteC, siteB, circle, siteA, siteD}, got)
	assert.Zero(t, q.len())
	assert.Nil(t, q.popMin())
}

func TestEventQueueRemove(t *testing.T) {
	q := newEventQueue()
	a := &event{kind: circleEvent, x: 1, y: 1}
	b := &event{kind: circleEvent, x: 1, y: 1}
	q.insert(a)
	q.insert(b)

	assert.True(t, q.removeIfPresent(a))
	assert.False(t, q.removeIfPresent(a))
	assert.Equal(t, 1, q.len())
	assert.Same(t, b, q.popMin())
	assert.False(t, q.removeIfPresent(b))
}
