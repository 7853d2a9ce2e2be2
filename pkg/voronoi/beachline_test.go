package voronoi

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkTree verifies the red-black properties and that the prev/next chain
// matches the in-order walk. It returns the arcs left to right.
func checkTree(t *testing.T, tr *rbt) []arcID {
	t.Helper()
	if tr.root == nilArc {
		return nil
	}
	require.False(t, tr.at(tr.root).red, "red root")
	require.Equal(t, nilArc, tr.at(tr.root).parent)

	var order []arcID
	var walk func(n arcID) int
	walk = func(n arcID) int {
		if n == nilArc {
			return 1
		}
		a := tr.at(n)
		if a.left != nilArc {
			require.Equal(t, n, tr.at(a.left).parent)
		}
		if a.right != nilArc {
			require.Equal(t, n, tr.at(a.right).parent)
		}
		if a.red {
			require.False(t, tr.isRed(a.left) || tr.isRed(a.right), "red node %d with red child", n)
		}
		lh := walk(a.left)
		order = append(order, n)
		rh := walk(a.right)
		require.Equal(t, lh, rh, "black height differs under %d", n)
		if a.red {
			return lh
		}
		return lh + 1
	}
	walk(tr.root)

	for i, n := range order {
		prev, next := nilArc, nilArc
		if i > 0 {
			prev = order[i-1]
		}
		if i < len(order)-1 {
			next = order[i+1]
		}
		assert.Equal(t, prev, tr.at(n).prev)
		assert.Equal(t, next, tr.at(n).next)
	}
	return order
}

func TestRBTInsertRemove(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tr := &rbt{root: nilArc}

	// the model keeps the expected left to right order
	var model []arcID
	for i := 0; i < 300; i++ {
		if len(model) > 0 && rng.Intn(3) == 0 {
			k := rng.Intn(len(model))
			tr.removeNode(model[k])
			model = append(model[:k], model[k+1:]...)
		} else {
			id := tr.newArc(i)
			if len(model) == 0 || rng.Intn(5) == 0 {
				tr.insertSuccessor(nilArc, id)
				model = append([]arcID{id}, model...)
			} else {
				k := rng.Intn(len(model))
				tr.insertSuccessor(model[k], id)
				model = append(model[:k+1], append([]arcID{id}, model[k+1:]...)...)
			}
		}
		require.Equal(t, model, checkTree(t, tr), "step %d", i)
	}

	for len(model) > 0 {
		tr.removeNode(model[0])
		model = model[1:]
		require.Equal(t, model, checkTree(t, tr))
	}
	assert.Equal(t, nilArc, tr.root)
}

func TestArcAtX(t *testing.T) {
	sites := []Vertex{{500, 100}, {200, 400}}
	f := newFortune(sites, buildOptions(nil).log)

	f.insertSite(0)
	l, r := f.beach.arcAtX(123, 400)
	assert.Equal(t, l, r)
	assert.Equal(t, 0, f.beach.at(l).site)

	f.insertSite(1)
	order := checkTree(t, &f.beach.rbt)
	require.Len(t, order, 3)
	var got []int
	for _, id := range order {
		got = append(got, f.beach.at(id).site)
	}
	assert.Equal(t, []int{0, 1, 0}, got)

	// right above the new site its own arc is found
	l, r = f.beach.arcAtX(200, 400+1e-6)
	assert.Equal(t, l, r)
	assert.Equal(t, 1, f.beach.at(l).site)

	// far to the right the split arc is found
	l, _ = f.beach.arcAtX(900, 400+1e-6)
	assert.Equal(t, 0, f.beach.at(l).site)
	assert.Equal(t, order[2], l)

	prev, next := f.beach.neighborsOf(order[1])
	assert.Equal(t, order[0], prev)
	assert.Equal(t, order[2], next)
}

func TestSweepDrainsEvents(t *testing.T) {
	sites := []Vertex{{300, 500}, {500, 300}, {700, 500}, {500, 450}, {510, 900}, {90, 880}}
	f := newFortune(sites, buildOptions(nil).log)
	f.sweep()

	// every arc left at the end is alive and has no pending event
	order := checkTree(t, &f.beach.rbt)
	for _, id := range order {
		a := f.beach.at(id)
		assert.True(t, a.alive)
		assert.Nil(t, a.event)
	}
	assert.Zero(t, f.queue.len())
}

func TestLiveEvent(t *testing.T) {
	b := newBeachline(nil)
	id := b.newArc(0)
	ev := &event{kind: circleEvent, arc: id, gen: 0}
	b.at(id).event = ev
	assert.True(t, b.live(ev))

	b.at(id).gen++
	assert.False(t, b.live(ev))

	b.at(id).gen--
	b.at(id).alive = false
	assert.False(t, b.live(ev))

	assert.False(t, b.live(&event{kind: circleEvent, arc: 7}))
}
