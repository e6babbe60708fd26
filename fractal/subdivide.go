// Package fractal draws a Sierpinski triangle by midpoint subdivision.
//
// Each call splits its triangle into the three half scale corner triangles
// bounded by the edge midpoints and recurses into each of them. When the depth
// reaches 1, a leaf triangle is filled with the scanline rasterizer.
package fractal

import (
	"github.com/osuushi/sierpinski/raster"
)

// Depths beyond this produce 3^9 leaves or more, none of which are visible on
// a 65x33 grid anyway.
const MaxDepth = 10

// The constant leaf triangle. It spans the whole grid.
var FixedTriangle = raster.Triangle{
	A: raster.Point{X: 0, Y: 0},
	B: raster.Point{X: 32, Y: 32},
	C: raster.Point{X: 64, Y: 0},
}

type LeafMode int

const (
	// Every leaf draws FixedTriangle, whatever the recursion handed it
	LeafFixed LeafMode = iota
	// Every leaf draws its own sub-triangle, which gives the familiar gasket
	LeafSubtriangle
)

var leafModeNames = []string{"fixed", "subtriangle"}

func (m LeafMode) String() string {
	if m < 0 || int(m) >= len(leafModeNames) {
		return "unknown"
	}
	return leafModeNames[m]
}

func ParseLeafMode(s string) (LeafMode, bool) {
	for i, name := range leafModeNames {
		if name == s {
			return LeafMode(i), true
		}
	}
	return LeafFixed, false
}

type Subdivider struct {
	Leaf LeafMode
	// Called with the triangle handed to each depth 1 call, before it is drawn
	OnLeaf func(t raster.Triangle)
}

// Subdivide draws the fractal for triangle (p1, p2, p3) using the default
// fixed leaf.
func Subdivide(grid *raster.Grid, p1, p2, p3 raster.Point, depth int, pixel byte) {
	var s Subdivider
	s.Subdivide(grid, p1, p2, p3, depth, pixel)
}

func (s *Subdivider) Subdivide(grid *raster.Grid, p1, p2, p3 raster.Point, depth int, pixel byte) {
	// Nothing left to draw below the leaves
	if depth <= 0 {
		return
	}

	if depth == 1 {
		s.drawLeaf(grid, raster.Triangle{A: p1, B: p2, C: p3}, pixel)
	}

	m12 := raster.Midpoint(p1, p2)
	m23 := raster.Midpoint(p2, p3)
	m31 := raster.Midpoint(p3, p1)

	s.Subdivide(grid, p1, m12, m31, depth-1, pixel)
	s.Subdivide(grid, m12, p2, m23, depth-1, pixel)
	s.Subdivide(grid, m31, m23, p3, depth-1, pixel)
}

func (s *Subdivider) drawLeaf(grid *raster.Grid, t raster.Triangle, pixel byte) {
	if s.OnLeaf != nil {
		s.OnLeaf(t)
	}
	if s.Leaf == LeafSubtriangle {
		raster.FillTriangle(grid, t, pixel)
		return
	}
	raster.FillTriangle(grid, FixedTriangle, pixel)
}

// Number of leaves drawn for a given starting depth
func LeafCount(depth int) int {
	if depth < 1 {
		return 0
	}
	n := 1
	for i := 1; i < depth; i++ {
		n *= 3
	}
	return n
}
