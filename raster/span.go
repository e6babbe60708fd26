package raster

// FillSpans paints column between each pair of sorted rows: (0,1), (2,3) and
// so on. A closed boundary always crosses a column an even number of times;
// if it doesn't, the unpaired last row is dropped.
func FillSpans(grid *Grid, column int, rows []float64, pixel byte) {
	for i := 0; i+1 < len(rows); i += 2 {
		PlotVLine(grid, column, rows[i], rows[i+1], pixel)
	}
}

// PlotVLine paints the inclusive run of cells in column x between two
// fractional rows.
func PlotVLine(grid *Grid, x int, y0, y1 float64, pixel byte) {
	start, end := spanStart(y0), spanEnd(y1)
	for y := start; y <= end; y++ {
		grid.Plot(x, y, pixel)
	}
}

// The start of a span rounds to nearest, except that an exact half value
// rounds down instead of up.
func spanStart(v float64) int {
	y := roundHalfUp(v)
	if float64(y)-0.5 == v {
		y--
	}
	return y
}

func spanEnd(v float64) int {
	return roundHalfUp(v)
}
