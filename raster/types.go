package raster

type Point struct {
	X float64
	Y float64
}

// Triangles are closed polygons of three points. They are passed around by
// value, since the subdivision never needs to share or mutate them.
type Triangle struct {
	A, B, C Point
}

type Polygon struct {
	Points []Point
}

func (t Triangle) Vertices() []Point {
	return []Point{t.A, t.B, t.C}
}

func (t Triangle) Polygon() Polygon {
	return Polygon{Points: t.Vertices()}
}
