package voronoi

import (
	"go.uber.org/zap"

	"github.com/0x0FACED/go-tessellate/pkg/logger"
)

const (
	noVertex = -1
	noEdge   = -1
	noSite   = -1
)

// Edge is a Voronoi edge or a synthetic border edge. Va and Vb index
// Diagram.Vertices. RightSite is -1 for border edges.
type Edge struct {
	Va        int
	Vb        int
	LeftSite  int
	RightSite int
}

// Border reports whether the edge runs along the rectangle with a single
// adjacent site.
func (e Edge) Border() bool {
	return e.RightSite == noSite
}

type edge struct {
	left, right int
	va, vb      int
	dropped     bool
}

func (e *edge) open() bool {
	return e.va == noVertex || e.vb == noVertex
}

// builder owns the vertex pool and the edges while the diagram is built.
type builder struct {
	vertices []Vertex
	edges    []edge
	// cellEdges lists, per site, the edges that site is adjacent to.
	cellEdges [][]int
	// interned shares vertices created on the rectangle boundary.
	interned map[Vertex]int
	boundary []int

	log *logger.ZapLogger
}

func newBuilder(nSites int, log *logger.ZapLogger) *builder {
	return &builder{
		cellEdges: make([][]int, nSites),
		interned:  make(map[Vertex]int),
		log:       log,
	}
}

func (b *builder) addVertex(v Vertex) int {
	b.vertices = append(b.vertices, v)
	return len(b.vertices) - 1
}

// internVertex returns the id of an interned vertex equal to v, creating it
// when needed. Used for boundary points, which several cells share.
func (b *builder) internVertex(v Vertex) int {
	if id, ok := b.interned[v]; ok {
		return id
	}
	for _, id := range b.boundary {
		if b.vertices[id].Equal(v) {
			b.interned[v] = id
			return id
		}
	}
	id := b.addVertex(v)
	b.interned[v] = id
	b.boundary = append(b.boundary, id)
	return id
}

func (b *builder) createEdge(lSite, rSite, va, vb int) int {
	b.edges = append(b.edges, edge{left: lSite, right: rSite, va: noVertex, vb: noVertex})
	id := len(b.edges) - 1
	if va != noVertex {
		b.setEdgeStartpoint(id, lSite, rSite, va)
	}
	if vb != noVertex {
		b.setEdgeEndpoint(id, lSite, rSite, vb)
	}
	b.cellEdges[lSite] = append(b.cellEdges[lSite], id)
	b.cellEdges[rSite] = append(b.cellEdges[rSite], id)
	return id
}

func (b *builder) createBorderEdge(site, va, vb int) int {
	b.edges = append(b.edges, edge{left: site, right: noSite, va: va, vb: vb})
	return len(b.edges) - 1
}

// setEdgeStartpoint fixes one end of an edge. The first vertex an edge
// receives orients it: seen from va towards vb, the left site lies on the
// left in a y-down frame.
func (b *builder) setEdgeStartpoint(id, lSite, rSite, v int) {
	e := &b.edges[id]
	switch {
	case e.va == noVertex && e.vb == noVertex:
		e.va = v
		e.left = lSite
		e.right = rSite
	case e.left == rSite:
		e.vb = v
	default:
		e.va = v
	}
}

func (b *builder) setEdgeEndpoint(id, lSite, rSite, v int) {
	b.setEdgeStartpoint(id, rSite, lSite, v)
}

// closeOpenEdges gives every edge still open at the end of the sweep a far
// end along its bisector, beyond the rectangle, so clipping always works on
// finite segments.
func (b *builder) closeOpenEdges(bounds BoundingBox, sites []Vertex) {
	closed := 0
	for i := range b.edges {
		e := &b.edges[i]
		if !e.open() {
			continue
		}
		l, r := sites[e.left], sites[e.right]
		dir := Vertex{r.Y - l.Y, l.X - r.X}
		n := dir.Len()
		if n == 0 {
			e.dropped = true
			continue
		}
		dir = dir.Scale(1 / n)

		switch {
		case e.va == noVertex && e.vb == noVertex:
			mid := midpoint(l, r)
			reach := bounds.reach(mid)
			e.va = b.addVertex(mid.Sub(dir.Scale(reach)))
			e.vb = b.addVertex(mid.Add(dir.Scale(reach)))
		case e.vb == noVertex:
			from := b.vertices[e.va]
			e.vb = b.addVertex(from.Add(dir.Scale(bounds.reach(from))))
		default:
			from := b.vertices[e.vb]
			e.va = b.addVertex(from.Sub(dir.Scale(bounds.reach(from))))
		}
		closed++
	}
	b.log.Debug("[edges] open edges closed", zap.Int("closed", closed), zap.Int("edges", len(b.edges)))
}

// clipEdges trims every edge to the rectangle, dropping the ones that end up
// outside or collapse to a point.
func (b *builder) clipEdges(bounds BoundingBox) {
	var dropped int
	for i := range b.edges {
		e := &b.edges[i]
		if e.dropped {
			continue
		}
		res := clipSegment(b.vertices[e.va], b.vertices[e.vb], bounds)
		switch res.class {
		case clipOutside, clipDegenerate:
			e.dropped = true
			dropped++
			continue
		}
		if res.aMoved {
			e.va = b.internVertex(res.a)
		}
		if res.bMoved {
			e.vb = b.internVertex(res.b)
		}
	}
	b.log.Debug("[clip] edges clipped", zap.Int("dropped", dropped), zap.Int("edges", len(b.edges)))
}

// export compacts the vertex pool to the vertices referenced by kept edges
// and by rings, rewriting rings in place.
func (b *builder) export(rings [][]int) ([]Vertex, []Edge) {
	remap := make(map[int]int)
	var vertices []Vertex
	use := func(id int) int {
		if nid, ok := remap[id]; ok {
			return nid
		}
		vertices = append(vertices, b.vertices[id])
		remap[id] = len(vertices) - 1
		return len(vertices) - 1
	}

	var edges []Edge
	for _, e := range b.edges {
		if e.dropped || e.open() {
			continue
		}
		edges = append(edges, Edge{
			Va:        use(e.va),
			Vb:        use(e.vb),
			LeftSite:  e.left,
			RightSite: e.right,
		})
	}
	for _, ring := range rings {
		for i, id := range ring {
			ring[i] = use(id)
		}
	}
	return vertices, edges
}
