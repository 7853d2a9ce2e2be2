package voronoi

import (
	"math"
	"sort"

	"go.uber.org/zap"
)

// halfEdge is an edge seen from one of its sites, oriented so that walking
// start -> end keeps the site on the left.
type halfEdge struct {
	edge  int
	start int
	end   int
	// angle of the outward normal, used to order the half-edges around the site
	angle float64
}

type halfEdges []halfEdge

func (s halfEdges) Len() int      { return len(s) }
func (s halfEdges) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

type halfEdgesByAngle struct{ halfEdges }

func (s halfEdgesByAngle) Less(i, j int) bool { return s.halfEdges[i].angle < s.halfEdges[j].angle }

// halfEdges collects the usable half-edges of a site in counter-clockwise
// order.
func (b *builder) halfEdges(site int, sites []Vertex) halfEdges {
	var out halfEdges
	for _, id := range b.cellEdges[site] {
		e := &b.edges[id]
		if e.dropped || e.open() {
			continue
		}
		h := halfEdge{edge: id}
		other := e.left
		if e.left == site {
			other = e.right
			h.start, h.end = e.vb, e.va
		} else {
			h.start, h.end = e.va, e.vb
		}
		n := sites[other].Sub(sites[site])
		h.angle = math.Atan2(n.Y, n.X)
		out = append(out, h)
	}
	sort.Sort(halfEdgesByAngle{out})
	return out
}

func (b *builder) same(u, v int) bool {
	return u == v || b.vertices[u].Equal(b.vertices[v])
}

// assembleCell walks the boundary of a site's cell counter-clockwise and
// returns its ring of vertex ids. Gaps where the cell meets the rectangle are
// closed according to policy.
func (b *builder) assembleCell(site int, sites []Vertex, bounds BoundingBox, policy BorderPolicy) []int {
	hs := b.halfEdges(site, sites)
	n := len(hs)

	if n == 0 {
		if nearestSite(sites, bounds.center()) != site {
			return nil
		}
		// nothing cuts the rectangle and the site is closest to it: the cell
		// is all of it
		corners := bounds.Corners()
		var ring []int
		for i := range corners {
			if policy == OmitBorderEdges {
				break
			}
			va := b.internVertex(corners[i])
			vb := b.internVertex(corners[(i+1)%len(corners)])
			b.createBorderEdge(site, va, vb)
			if policy == AddBorderAndCornerEdges {
				ring = append(ring, va)
			}
		}
		return ring
	}

	// start right after a gap so open rings read from boundary to boundary
	startAt := 0
	for i := 0; i < n; i++ {
		if !b.same(hs[(i+n-1)%n].end, hs[i].start) {
			startAt = i
			break
		}
	}

	var ring []int
	push := func(v int) {
		if len(ring) > 0 && b.same(ring[len(ring)-1], v) {
			return
		}
		ring = append(ring, v)
	}
	for k := 0; k < n; k++ {
		h := hs[(startAt+k)%n]
		next := hs[(startAt+k+1)%n]
		push(h.start)
		push(h.end)
		if !b.same(h.end, next.start) {
			b.closeGap(site, h.end, next.start, bounds, policy, push)
		}
	}
	if len(ring) > 1 && b.same(ring[0], ring[len(ring)-1]) {
		ring = ring[:len(ring)-1]
	}
	return ring
}

// closeGap joins from and to along the rectangle, counter-clockwise.
func (b *builder) closeGap(site, from, to int, bounds BoundingBox, policy BorderPolicy, push func(int)) {
	if policy == OmitBorderEdges {
		return
	}

	tFrom, okFrom := bounds.perimeter(b.vertices[from])
	tTo, okTo := bounds.perimeter(b.vertices[to])
	if !okFrom || !okTo {
		b.log.Debug("[cell] gap off the boundary", zap.Int("site", site),
			zap.Float64("fromX", b.vertices[from].X), zap.Float64("fromY", b.vertices[from].Y),
			zap.Float64("toX", b.vertices[to].X), zap.Float64("toY", b.vertices[to].Y))
		b.createBorderEdge(site, from, to)
		return
	}

	perimeter := 2 * (bounds.Width() + bounds.Height())
	span := math.Mod(tTo-tFrom+perimeter, perimeter)

	type corner struct {
		at Vertex
		d  float64
	}
	var crossed []corner
	var t float64
	for i, c := range bounds.Corners() {
		switch i {
		case 1:
			t = bounds.Width()
		case 2:
			t = bounds.Width() + bounds.Height()
		case 3:
			t = 2*bounds.Width() + bounds.Height()
		}
		d := math.Mod(t-tFrom+perimeter, perimeter)
		if d > Epsilon && d < span-Epsilon {
			crossed = append(crossed, corner{at: c, d: d})
		}
	}
	sort.Slice(crossed, func(i, j int) bool { return crossed[i].d < crossed[j].d })

	prev := from
	for _, c := range crossed {
		v := b.internVertex(c.at)
		b.createBorderEdge(site, prev, v)
		if policy == AddBorderAndCornerEdges {
			push(v)
		}
		prev = v
	}
	b.createBorderEdge(site, prev, to)
}

// nearestSite returns the lowest index among the sites closest to p.
func nearestSite(sites []Vertex, p Vertex) int {
	best := noSite
	var bestDist float64
	for i, s := range sites {
		d := s.Sub(p).Len()
		if best == noSite || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
