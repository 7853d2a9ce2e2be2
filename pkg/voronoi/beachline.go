package voronoi

import (
	"math"

	"go.uber.org/zap"
)

type beachline struct {
	rbt
	sites []Vertex
}

func newBeachline(sites []Vertex) *beachline {
	return &beachline{rbt: rbt{root: nilArc}, sites: sites}
}

func (b *beachline) neighborsOf(id arcID) (prev, next arcID) {
	a := b.at(id)
	return a.prev, a.next
}

// leftBreakPoint is the x coordinate where the arc meets its left neighbour
// for the given sweep position.
func (b *beachline) leftBreakPoint(id arcID, directrix float64) float64 {
	site := b.sites[b.at(id).site]
	rfocx := site.X
	rfocy := site.Y
	pby2 := rfocy - directrix
	if pby2 == 0 {
		return rfocx
	}

	lArc := b.at(id).prev
	if lArc == nilArc {
		return math.Inf(-1)
	}
	site = b.sites[b.at(lArc).site]
	lfocx := site.X
	lfocy := site.Y
	plby2 := lfocy - directrix
	if plby2 == 0 {
		return lfocx
	}
	hl := lfocx - rfocx
	aby2 := 1/pby2 - 1/plby2
	bb := hl / plby2
	if aby2 != 0 {
		return (-bb+math.Sqrt(bb*bb-2*aby2*(hl*hl/(-2*plby2)-lfocy+plby2/2+rfocy-pby2/2)))/aby2 + rfocx
	}
	return (rfocx + lfocx) / 2
}

func (b *beachline) rightBreakPoint(id arcID, directrix float64) float64 {
	if rArc := b.at(id).next; rArc != nilArc {
		return b.leftBreakPoint(rArc, directrix)
	}
	site := b.sites[b.at(id).site]
	if site.Y == directrix {
		return site.X
	}
	return math.Inf(1)
}

// arcAtX finds the arc above x for the given sweep position. When x falls on
// a breakpoint both arcs meeting there are returned; when it lies right of
// everything (sites sharing the directrix) only left is set; otherwise
// left == right.
func (b *beachline) arcAtX(x, directrix float64) (left, right arcID) {
	left, right = nilArc, nilArc
	node := b.root
	for node != nilArc {
		dxl := b.leftBreakPoint(node, directrix) - x
		if dxl > Epsilon {
			node = b.at(node).left
			continue
		}
		dxr := x - b.rightBreakPoint(node, directrix)
		if dxr > Epsilon {
			if b.at(node).right == nilArc {
				return node, nilArc
			}
			node = b.at(node).right
			continue
		}
		switch {
		case dxl > -Epsilon:
			return b.at(node).prev, node
		case dxr > -Epsilon:
			return node, b.at(node).next
		default:
			return node, node
		}
	}
	return left, right
}

// insertSite adds the arc of a new site to the beachline, opening the edge it
// starts to trace and rescheduling circle events around it.
func (f *fortune) insertSite(site int) {
	p := f.sites[site]
	lArc, rArc := f.beach.arcAtX(p.X, p.Y)

	newArc := f.beach.newArc(site)
	f.beach.insertSuccessor(lArc, newArc)

	f.log.Debug("[beach] site inserted",
		zap.Int("site", site), zap.Float64("x", p.X), zap.Float64("y", p.Y),
		zap.Int32("left", int32(lArc)), zap.Int32("right", int32(rArc)))

	switch {
	case lArc == nilArc && rArc == nilArc:
		return

	case lArc != nilArc && rArc == nilArc:
		// the site sits on the directrix right of every arc
		lSite := f.beach.at(lArc).site
		f.beach.at(newArc).edge = f.build.createEdge(lSite, site, noVertex, noVertex)
		return

	case lArc == nilArc:
		// mirror of the case above; the breakpoint search never produces it
		// for well-formed input, but an open edge is still the right answer
		rSite := f.beach.at(rArc).site
		f.beach.at(rArc).edge = f.build.createEdge(site, rSite, noVertex, noVertex)
		return
	}

	if lArc != rArc {
		lSite := f.beach.at(lArc).site
		rSite := f.beach.at(rArc).site
		if center, ok := Circumcenter(f.sites[lSite], p, f.sites[rSite]); ok {
			// the site falls exactly on a breakpoint: the breakpoint becomes a
			// vertex immediately
			f.detachCircleEvent(lArc)
			f.detachCircleEvent(rArc)

			v := f.build.addVertex(center)
			f.build.setEdgeStartpoint(f.beach.at(rArc).edge, lSite, rSite, v)

			f.beach.at(newArc).edge = f.build.createEdge(lSite, site, noVertex, v)
			f.beach.at(rArc).edge = f.build.createEdge(site, rSite, noVertex, v)

			f.attachCircleEvent(lArc)
			f.attachCircleEvent(rArc)
			return
		}
		f.log.Debug("[beach] collinear breakpoint, splitting left arc", zap.Int("site", site))
	}

	// split lArc in two around the new arc
	f.detachCircleEvent(lArc)

	lSite := f.beach.at(lArc).site
	rArc = f.beach.newArc(lSite)
	f.beach.insertSuccessor(newArc, rArc)

	e := f.build.createEdge(lSite, site, noVertex, noVertex)
	f.beach.at(newArc).edge = e
	f.beach.at(rArc).edge = e

	f.attachCircleEvent(lArc)
	f.attachCircleEvent(rArc)
}

// removeArc collapses the arc squeezed by its circle event, together with any
// neighbour whose pending circle shares the same centre.
func (f *fortune) removeArc(id arcID) {
	circle := f.beach.at(id).event
	x := circle.center.X
	y := circle.center.Y
	vertex := f.build.addVertex(circle.center)

	previous, next := f.beach.neighborsOf(id)
	disappearing := []arcID{id}

	f.detachArc(id)

	lArc := previous
	for f.sameCircle(lArc, x, y) {
		previous = f.beach.at(lArc).prev
		disappearing = append([]arcID{lArc}, disappearing...)
		f.detachArc(lArc)
		lArc = previous
	}
	disappearing = append([]arcID{lArc}, disappearing...)
	f.detachCircleEvent(lArc)

	rArc := next
	for f.sameCircle(rArc, x, y) {
		next = f.beach.at(rArc).next
		disappearing = append(disappearing, rArc)
		f.detachArc(rArc)
		rArc = next
	}
	disappearing = append(disappearing, rArc)
	f.detachCircleEvent(rArc)

	for i := 1; i < len(disappearing); i++ {
		l := f.beach.at(disappearing[i-1])
		r := f.beach.at(disappearing[i])
		f.build.setEdgeStartpoint(r.edge, l.site, r.site, vertex)
	}

	lArc = disappearing[0]
	rArc = disappearing[len(disappearing)-1]
	lSite := f.beach.at(lArc).site
	rSite := f.beach.at(rArc).site
	f.beach.at(rArc).edge = f.build.createEdge(lSite, rSite, noVertex, vertex)

	f.log.Debug("[beach] vertex", zap.Float64("x", x), zap.Float64("y", y),
		zap.Int("collapsed", len(disappearing)-2))

	f.attachCircleEvent(lArc)
	f.attachCircleEvent(rArc)
}

func (f *fortune) sameCircle(id arcID, x, y float64) bool {
	if id == nilArc {
		return false
	}
	ev := f.beach.at(id).event
	return ev != nil && math.Abs(x-ev.center.X) < Epsilon && math.Abs(y-ev.center.Y) < Epsilon
}

func (f *fortune) detachArc(id arcID) {
	f.detachCircleEvent(id)
	f.beach.removeNode(id)
	f.beach.at(id).alive = false
}

func (f *fortune) attachCircleEvent(id arcID) {
	a := f.beach.at(id)
	if a.prev == nilArc || a.next == nilArc {
		return
	}
	lSite := f.beach.at(a.prev).site
	rSite := f.beach.at(a.next).site
	if lSite == rSite {
		return
	}

	center, bottom, ok := circleBottom(f.sites[lSite], f.sites[a.site], f.sites[rSite])
	if !ok {
		return
	}

	ev := &event{
		kind:   circleEvent,
		x:      center.X,
		y:      bottom,
		arc:    id,
		gen:    a.gen,
		center: center,
	}
	a.event = ev
	f.queue.insert(ev)
}

func (f *fortune) detachCircleEvent(id arcID) {
	a := f.beach.at(id)
	if a.event == nil {
		return
	}
	f.queue.removeIfPresent(a.event)
	a.event = nil
	a.gen++
}

// live reports whether a popped circle event still describes the beachline.
func (b *beachline) live(ev *event) bool {
	if int(ev.arc) < 0 || int(ev.arc) >= len(b.arcs) {
		return false
	}
	a := b.at(ev.arc)
	return a.alive && a.gen == ev.gen && a.event == ev
}
