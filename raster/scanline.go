package raster

// A single vertical line can cross a simple polygon at most once per edge, so
// this leaves plenty of headroom.
const intersectionsPerVertex = 4

// Scanner computes where a polygon boundary crosses vertical scanlines. The
// scratch buffer is sized once for the polygon and reused for every column.
type Scanner struct {
	vertices []Point
	rows     []float64
}

func NewScanner(vertices []Point) *Scanner {
	return &Scanner{
		vertices: vertices,
		rows:     make([]float64, intersectionsPerVertex*len(vertices)),
	}
}

// Intersections returns the sorted rows where the boundary crosses x = column.
// The result aliases the scanner's buffer, so it is only valid until the next
// call.
//
// Each edge runs from vertex i to vertex i-1. An edge crosses the column when
// the column lies in [minX, maxX), which keeps a vertex shared by two edges
// from being counted twice. Vertical edges never pass that test; their
// neighbors already cover them.
func (s *Scanner) Intersections(column int) []float64 {
	x := float64(column)
	n := len(s.vertices)
	count := 0
	for i, pi := range s.vertices {
		pj := s.vertices[CircularIndex(i-1, n)]
		if crosses(pi.X, pj.X, x) {
			y := pi.Y + (x-pi.X)*(pj.Y-pi.Y)/(pj.X-pi.X)
			count = InsertSorted(s.rows, count, y)
		}
	}
	return s.rows[:count]
}

// Half open crossing test
func crosses(xi, xj, x float64) bool {
	if xi <= xj {
		return xi <= x && x < xj
	}
	return xj <= x && x < xi
}

// Convenience for one-off queries. The returned slice is not shared.
func Intersections(vertices []Point, column int) []float64 {
	return NewScanner(vertices).Intersections(column)
}
