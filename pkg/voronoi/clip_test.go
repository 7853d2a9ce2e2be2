package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClipSegment(t *testing.T) {
	box := NewBoundingBox(0, 0, 100, 100)
	tests := []struct {
		name   string
		a, b   Vertex
		class  clipClass
		wantA  Vertex
		wantB  Vertex
		aMoved bool
		bMoved bool
	}{
		{
			name: "inside", a: Vertex{10, 10}, b: Vertex{90, 50},
			class: clipInside, wantA: Vertex{10, 10}, wantB: Vertex{90, 50},
		},
		{
			name: "outside", a: Vertex{-10, -10}, b: Vertex{-5, 200},
			class: clipOutside,
		},
		{
			name: "outside beyond corner", a: Vertex{90, 120}, b: Vertex{120, 90},
			class: clipOutside,
		},
		{
			name: "crossing one side", a: Vertex{50, 50}, b: Vertex{150, 50},
			class: clipCrossing, wantA: Vertex{50, 50}, wantB: Vertex{100, 50}, bMoved: true,
		},
		{
			name: "crossing both", a: Vertex{-50, 20}, b: Vertex{150, 20},
			class: clipCrossing, wantA: Vertex{0, 20}, wantB: Vertex{100, 20}, aMoved: true, bMoved: true,
		},
		{
			name: "through corners", a: Vertex{-1e6, -1e6}, b: Vertex{1e6, 1e6},
			class: clipCrossing, wantA: Vertex{0, 0}, wantB: Vertex{100, 100}, aMoved: true, bMoved: true,
		},
		{
			name: "on a side", a: Vertex{-20, 0}, b: Vertex{50, 0},
			class: clipCrossing, wantA: Vertex{0, 0}, wantB: Vertex{50, 0}, aMoved: true,
		},
		{
			name: "touching a corner", a: Vertex{-10, 110}, b: Vertex{10, 90},
			class: clipCrossing, wantA: Vertex{0, 100}, wantB: Vertex{10, 90}, aMoved: true,
		},
		{
			name: "grazing a corner", a: Vertex{90, 110}, b: Vertex{110, 90},
			class: clipDegenerate, wantA: Vertex{100, 100}, wantB: Vertex{100, 100}, aMoved: true, bMoved: true,
		},
		{
			name: "zero length", a: Vertex{10, 10}, b: Vertex{10, 10},
			class: clipDegenerate, wantA: Vertex{10, 10}, wantB: Vertex{10, 10},
		},
		{
			name: "ends on the boundary", a: Vertex{0, 30}, b: Vertex{100, 70},
			class: clipInside, wantA: Vertex{0, 30}, wantB: Vertex{100, 70},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := clipSegment(tt.a, tt.b, box)
			assert.Equal(t, tt.class, res.class, res.class.String())
			if tt.class == clipOutside {
				return
			}
			assert.True(t, res.a.Equal(tt.wantA), "a = %v", res.a)
			assert.True(t, res.b.Equal(tt.wantB), "b = %v", res.b)
			assert.Equal(t, tt.aMoved, res.aMoved)
			assert.Equal(t, tt.bMoved, res.bMoved)
			if res.aMoved {
				assert.True(t, box.OnBoundary(res.a))
			}
			if res.bMoved {
				assert.True(t, box.OnBoundary(res.b))
			}
		})
	}
}

func TestClipSnapsExactly(t *testing.T) {
	box := NewBoundingBox(0, 0, 1000, 1000)
	// a long bisector whose crossing point picks up rounding error
	res := clipSegment(Vertex{333.3333333, 500}, Vertex{333.3333333 + 3e7, 500 - 1e7}, box)
	assert.Equal(t, clipCrossing, res.class)
	assert.Equal(t, 1000.0, res.b.X)
	assert.Equal(t, Vertex{333.3333333, 500}, res.a)
}

func TestClipClassString(t *testing.T) {
	assert.Equal(t, "inside", clipInside.String())
	assert.Equal(t, "crossing", clipCrossing.String())
	assert.Equal(t, "outside", clipOutside.String())
	assert.Equal(t, "degenerate", clipDegenerate.String())
	assert.Equal(t, "unknown", clipClass(9).String())
}
