package voronoi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpsilonComparisons(t *testing.T) {
	assert.True(t, equalWithEpsilon(1, 1+Epsilon/2))
	assert.False(t, equalWithEpsilon(1, 1+2*Epsilon))
	assert.True(t, lessThanWithEpsilon(1, 1+2*Epsilon))
	assert.False(t, lessThanWithEpsilon(1, 1+Epsilon/2))
	assert.True(t, greaterThanWithEpsilon(1+2*Epsilon, 1))
	assert.False(t, greaterThanWithEpsilon(1+Epsilon/2, 1))

	assert.True(t, Vertex{1, 2}.Equal(Vertex{1 + Epsilon/2, 2 - Epsilon/2}))
	assert.False(t, Vertex{1, 2}.Equal(Vertex{1, 2.001}))
	assert.False(t, NoVertex.IsFinite())
	assert.False(t, Vertex{math.NaN(), 0}.IsFinite())
	assert.True(t, Vertex{-3, 4}.IsFinite())
	assert.Equal(t, 5.0, Vertex{-3, 4}.Len())
}

func TestCircumcenter(t *testing.T) {
	c, ok := Circumcenter(Vertex{500, 300}, Vertex{700, 500}, Vertex{300, 500})
	require.True(t, ok)
	assert.InDelta(t, 500, c.X, 1e-9)
	assert.InDelta(t, 500, c.Y, 1e-9)

	_, ok = Circumcenter(Vertex{0, 0}, Vertex{1, 1}, Vertex{2, 2})
	assert.False(t, ok)
	_, ok = Circumcenter(Vertex{0, 0}, Vertex{0, 0}, Vertex{2, 5})
	assert.False(t, ok)
}

func TestCircleBottom(t *testing.T) {
	// l, c, r converging from left to right under a sweep moving up in y
	l, c, r := Vertex{300, 500}, Vertex{500, 300}, Vertex{700, 500}
	center, y, ok := circleBottom(l, c, r)
	require.True(t, ok)
	assert.InDelta(t, 500, center.X, 1e-9)
	assert.InDelta(t, 500, center.Y, 1e-9)
	assert.InDelta(t, 700, y, 1e-9)

	// the reversed triple diverges
	_, _, ok = circleBottom(r, c, l)
	assert.False(t, ok)

	// collinear
	_, _, ok = circleBottom(Vertex{0, 0}, Vertex{1, 0}, Vertex{2, 0})
	assert.False(t, ok)
}

func TestOnSegment(t *testing.T) {
	a, b := Vertex{0, 0}, Vertex{10, 10}
	assert.True(t, OnSegment(Vertex{5, 5}, a, b))
	assert.True(t, OnSegment(a, a, b))
	assert.True(t, OnSegment(b, a, b))
	assert.False(t, OnSegment(Vertex{11, 11}, a, b))
	assert.False(t, OnSegment(Vertex{5, 6}, a, b))
	assert.True(t, OnSegment(a, a, a))
	assert.False(t, OnSegment(b, a, a))
}

func TestSegmentIntersection(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d Vertex
		want       Vertex
		ok         bool
	}{
		{"cross", Vertex{0, 0}, Vertex{10, 10}, Vertex{0, 10}, Vertex{10, 0}, Vertex{5, 5}, true},
		{"touch at end", Vertex{0, 0}, Vertex{10, 0}, Vertex{10, 0}, Vertex{10, 10}, Vertex{10, 0}, true},
		{"t junction", Vertex{0, 0}, Vertex{10, 0}, Vertex{5, 0}, Vertex{5, 5}, Vertex{5, 0}, true},
		{"apart", Vertex{0, 0}, Vertex{1, 1}, Vertex{5, 0}, Vertex{6, -1}, NoVertex, false},
		{"parallel", Vertex{0, 0}, Vertex{10, 0}, Vertex{0, 1}, Vertex{10, 1}, NoVertex, false},
		{"overlap", Vertex{0, 0}, Vertex{10, 0}, Vertex{5, 0}, Vertex{15, 0}, Vertex{5, 0}, true},
		{"collinear apart", Vertex{0, 0}, Vertex{1, 0}, Vertex{2, 0}, Vertex{3, 0}, NoVertex, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := SegmentIntersection(tt.a, tt.b, tt.c, tt.d)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.True(t, p.Equal(tt.want), "%v", p)
			}
		})
	}
}

func TestSignedArea(t *testing.T) {
	ccw := []Vertex{{0, 0}, {4, 0}, {4, 3}, {0, 3}}
	assert.Equal(t, 12.0, SignedArea(ccw))

	cw := []Vertex{{0, 3}, {4, 3}, {4, 0}, {0, 0}}
	assert.Equal(t, -12.0, SignedArea(cw))

	assert.Zero(t, SignedArea(nil))
	assert.Zero(t, SignedArea([]Vertex{{1, 1}, {2, 2}}))
	assert.Zero(t, SignedArea([]Vertex{{0, 0}, {1, 1}, {2, 2}}))
}

func TestIsSimple(t *testing.T) {
	assert.True(t, IsSimple([]Vertex{{0, 0}, {4, 0}, {4, 3}, {0, 3}}))
	assert.True(t, IsSimple([]Vertex{{0, 0}, {4, 0}, {2, 2}}))
	assert.True(t, IsSimple(nil))
	// bow tie
	assert.False(t, IsSimple([]Vertex{{0, 0}, {4, 3}, {4, 0}, {0, 3}}))
	// repeated point
	assert.False(t, IsSimple([]Vertex{{0, 0}, {4, 0}, {4, 4}, {4, 0}, {0, 4}}))
}
