package raster

// FillPolygon sweeps every column of the grid and fills the spans inside the
// polygon. Every vertex must lie on the grid. A vertex off the grid would
// otherwise be clipped silently, hiding the geometry bug.
func FillPolygon(grid *Grid, vertices []Point, pixel byte) {
	for _, v := range vertices {
		if v.X < 0 || v.X > Width-1 || v.Y < 0 || v.Y > Height-1 {
			fatalCoordinates(v.X, v.Y)
		}
	}

	scanner := NewScanner(vertices)
	for x := 0; x < Width; x++ {
		FillSpans(grid, x, scanner.Intersections(x), pixel)
	}
}

func FillTriangle(grid *Grid, t Triangle, pixel byte) {
	FillPolygon(grid, t.Vertices(), pixel)
}
