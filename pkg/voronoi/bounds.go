package voronoi

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r2"
)

var (
	// ErrInvalidBounds is returned for empty, inverted or non-finite rectangles.
	ErrInvalidBounds = errors.New("invalid bounding box")
	// ErrInvalidSite is returned for sites with NaN or infinite coordinates.
	ErrInvalidSite = errors.New("invalid site")
	// ErrInvalidPolicy is returned for border policies outside the known set.
	ErrInvalidPolicy = errors.New("invalid border policy")
)

// BoundingBox is the rectangular domain the diagram is clipped to.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

func NewBoundingBox(minX, minY, maxX, maxY float64) BoundingBox {
	return BoundingBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("[%g,%g]-[%g,%g]", b.MinX, b.MinY, b.MaxX, b.MaxY)
}

// Validate rejects rectangles that cannot bound a diagram.
func (b BoundingBox) Validate() error {
	for _, v := range [...]float64{b.MinX, b.MinY, b.MaxX, b.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidBounds, "non-finite coordinate in %s", b)
		}
	}
	if b.MinX >= b.MaxX || b.MinY >= b.MaxY {
		return errors.Wrapf(ErrInvalidBounds, "min must be strictly below max in %s", b)
	}
	return nil
}

func (b BoundingBox) Width() float64  { return b.MaxX - b.MinX }
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }
func (b BoundingBox) Area() float64   { return b.Width() * b.Height() }

func (b BoundingBox) Rect() r2.Rect {
	return r2.RectFromPoints(r2.Point{X: b.MinX, Y: b.MinY}, r2.Point{X: b.MaxX, Y: b.MaxY})
}

// Corners lists the rectangle corners counter-clockwise from (MinX, MinY).
func (b BoundingBox) Corners() [4]Vertex {
	var out [4]Vertex
	for i, p := range b.Rect().Vertices() {
		out[i] = Vertex{p.X, p.Y}
	}
	return out
}

// Contains reports whether v is inside the rectangle or on its boundary.
func (b BoundingBox) Contains(v Vertex) bool {
	return b.Rect().ContainsPoint(r2.Point{X: v.X, Y: v.Y})
}

// OnBoundary reports whether v lies on one of the rectangle sides.
func (b BoundingBox) OnBoundary(v Vertex) bool {
	_, ok := b.perimeter(v)
	return ok
}

func (b BoundingBox) center() Vertex {
	return Vertex{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}

func (b BoundingBox) diagonal() float64 {
	return math.Hypot(b.Width(), b.Height())
}

// reach is a distance that takes a ray starting at from past every point of
// the rectangle.
func (b BoundingBox) reach(from Vertex) float64 {
	return 2*(from.Sub(b.center()).Len()+b.diagonal()) + 1
}

// perimeter returns the counter-clockwise distance along the boundary from
// the (MinX, MinY) corner to v. ok is false when v is not on the boundary.
func (b BoundingBox) perimeter(v Vertex) (float64, bool) {
	w, h := b.Width(), b.Height()
	inX := !lessThanWithEpsilon(v.X, b.MinX) && !greaterThanWithEpsilon(v.X, b.MaxX)
	inY := !lessThanWithEpsilon(v.Y, b.MinY) && !greaterThanWithEpsilon(v.Y, b.MaxY)
	switch {
	case equalWithEpsilon(v.Y, b.MinY) && inX:
		return v.X - b.MinX, true
	case equalWithEpsilon(v.X, b.MaxX) && inY:
		return w + v.Y - b.MinY, true
	case equalWithEpsilon(v.Y, b.MaxY) && inX:
		return w + h + b.MaxX - v.X, true
	case equalWithEpsilon(v.X, b.MinX) && inY:
		return 2*w + h + b.MaxY - v.Y, true
	}
	return 0, false
}

// snap moves coordinates lying within Epsilon of a side exactly onto it and
// clamps the rest into the rectangle.
func (b BoundingBox) snap(v Vertex) Vertex {
	switch {
	case equalWithEpsilon(v.X, b.MinX) || v.X < b.MinX:
		v.X = b.MinX
	case equalWithEpsilon(v.X, b.MaxX) || v.X > b.MaxX:
		v.X = b.MaxX
	}
	switch {
	case equalWithEpsilon(v.Y, b.MinY) || v.Y < b.MinY:
		v.Y = b.MinY
	case equalWithEpsilon(v.Y, b.MaxY) || v.Y > b.MaxY:
		v.Y = b.MaxY
	}
	return v
}
