package voronoi

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-tessellate/pkg/logger"
)

// Site is one input point together with its cell.
type Site struct {
	Index int
	Point Vertex
	// Vertices indexes Diagram.Vertices in walk order (counter-clockwise).
	Vertices []int
	Polygon  []Vertex
	Centroid Vertex
	// DuplicateOf is the index of the earlier site with the same coordinates,
	// or -1.
	DuplicateOf int
}

// Diagram is a Voronoi tessellation clipped to Bounds.
type Diagram struct {
	Bounds   BoundingBox
	Policy   BorderPolicy
	Sites    []Site
	Edges    []Edge
	Vertices []Vertex
}

// Segment resolves the endpoints of e.
func (d *Diagram) Segment(e Edge) (Vertex, Vertex) {
	return d.Vertices[e.Va], d.Vertices[e.Vb]
}

type phase uint8

const (
	phaseIdle phase = iota
	phaseSweeping
	phaseClosing
	phaseClipping
	phaseAssembling
	phaseDone
)

func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseSweeping:
		return "sweeping"
	case phaseClosing:
		return "closing"
	case phaseClipping:
		return "clipping"
	case phaseAssembling:
		return "assembling"
	case phaseDone:
		return "done"
	}
	return "unknown"
}

type options struct {
	log *logger.ZapLogger
}

// Option configures a tessellation.
type Option func(*options)

// WithLogger sends sweep diagnostics to log.
func WithLogger(log *logger.ZapLogger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{log: logger.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// fortune holds the state of one sweep.
type fortune struct {
	sites []Vertex
	// duplicateOf maps a site to the first site with the same coordinates.
	duplicateOf []int

	beach *beachline
	build *builder
	queue *eventQueue
	phase phase

	log *logger.ZapLogger
}

func newFortune(sites []Vertex, log *logger.ZapLogger) *fortune {
	f := &fortune{
		sites:       sites,
		duplicateOf: make([]int, len(sites)),
		beach:       newBeachline(sites),
		build:       newBuilder(len(sites), log),
		queue:       newEventQueue(),
		log:         log,
	}
	first := make(map[Vertex]int, len(sites))
	for i, s := range sites {
		f.duplicateOf[i] = noSite
		if j, ok := first[s]; ok {
			f.duplicateOf[i] = j
			continue
		}
		first[s] = i
	}
	return f
}

func (f *fortune) enter(p phase) {
	f.log.Debug("[sweep] phase", zap.Stringer("from", f.phase), zap.Stringer("to", p))
	f.phase = p
}

// sweep processes every event in order.
func (f *fortune) sweep() {
	f.enter(phaseSweeping)

	for i, s := range f.sites {
		if f.duplicateOf[i] != noSite {
			f.log.Debug("[sweep] duplicate site skipped", zap.Int("site", i), zap.Int("of", f.duplicateOf[i]))
			continue
		}
		f.queue.insert(&event{kind: siteEvent, x: s.X, y: s.Y, site: i})
	}

	var sites, circles, stale int
	for ev := f.queue.popMin(); ev != nil; ev = f.queue.popMin() {
		switch ev.kind {
		case siteEvent:
			f.insertSite(ev.site)
			sites++
		case circleEvent:
			if !f.beach.live(ev) {
				stale++
				continue
			}
			f.removeArc(ev.arc)
			circles++
		}
	}
	f.log.Debug("[sweep] events processed",
		zap.Int("sites", sites), zap.Int("circles", circles), zap.Int("stale", stale))
}

// Tessellate computes the Voronoi diagram of sites clipped to bounds and
// assembles every site's cell under policy.
func Tessellate(sites []Vertex, bounds BoundingBox, policy BorderPolicy, opts ...Option) (*Diagram, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	if err := policy.validate(); err != nil {
		return nil, err
	}
	for i, s := range sites {
		if !s.IsFinite() {
			return nil, errors.Wrapf(ErrInvalidSite, "site %d at (%g, %g)", i, s.X, s.Y)
		}
	}

	o := buildOptions(opts)
	o.log.Info("[sweep] tessellation started",
		zap.Int("sites", len(sites)), zap.Stringer("bounds", bounds), zap.Stringer("policy", policy))

	points := make([]Vertex, len(sites))
	copy(points, sites)
	f := newFortune(points, o.log)

	f.sweep()

	f.enter(phaseClosing)
	f.build.closeOpenEdges(bounds, points)

	f.enter(phaseClipping)
	f.build.clipEdges(bounds)

	f.enter(phaseAssembling)
	rings := make([][]int, len(points))
	for i := range points {
		if f.duplicateOf[i] != noSite {
			continue
		}
		rings[i] = f.build.assembleCell(i, points, bounds, policy)
	}
	vertices, edges := f.build.export(rings)

	d := &Diagram{
		Bounds:   bounds,
		Policy:   policy,
		Sites:    make([]Site, len(points)),
		Edges:    edges,
		Vertices: vertices,
	}
	for i, p := range points {
		s := Site{
			Index:       i,
			Point:       p,
			Vertices:    rings[i],
			Polygon:     make([]Vertex, len(rings[i])),
			DuplicateOf: f.duplicateOf[i],
		}
		for k, id := range rings[i] {
			s.Polygon[k] = vertices[id]
		}
		s.Centroid = siteCentroid(p, s.Polygon)
		d.Sites[i] = s
	}

	f.enter(phaseDone)
	o.log.Info("[sweep] tessellation finished",
		zap.Int("edges", len(edges)), zap.Int("vertices", len(vertices)))
	return d, nil
}
