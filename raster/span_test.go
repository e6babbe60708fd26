package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanRounding(t *testing.T) {
	cases := []struct {
		v          float64
		start, end int
	}{
		{0, 0, 0},
		{1.2, 1, 1},
		{1.7, 2, 2},
		{2.5, 2, 3},
		{0.5, 0, 1},
		{31.5, 31, 32},
	}
	for _, c := range cases {
		assert.Equal(t, c.start, spanStart(c.v), "start of %v", c.v)
		assert.Equal(t, c.end, spanEnd(c.v), "end of %v", c.v)
	}
}

func TestPlotVLine(t *testing.T) {
	g := NewGrid('.')
	PlotVLine(g, 3, 1.5, 4.2, '#')
	for y := 0; y < Height; y++ {
		expected := byte('.')
		if y >= 1 && y <= 4 {
			expected = '#'
		}
		assert.Equal(t, expected, g.At(3, y), "row %d", y)
	}
	assert.Equal(t, 4, g.Count('#'))
}

func TestFillSpans_Pairs(t *testing.T) {
	g := NewGrid('.')
	FillSpans(g, 0, []float64{1, 2, 5, 6}, '#')
	assert.Equal(t, 4, g.Count('#'))
	assert.Equal(t, byte('.'), g.At(0, 3))
	assert.Equal(t, byte('.'), g.At(0, 4))
	assert.Equal(t, byte('#'), g.At(0, 5))
}

func TestFillSpans_OddCountDropsLast(t *testing.T) {
	g := NewGrid('.')
	FillSpans(g, 7, []float64{1, 2, 10}, '#')
	assert.Equal(t, 2, g.Count('#'))
	assert.Equal(t, byte('.'), g.At(7, 10))

	g = NewGrid('.')
	FillSpans(g, 7, []float64{10}, '#')
	assert.Equal(t, 0, g.Count('#'))
}

func TestPlotVLine_OutOfBounds(t *testing.T) {
	g := NewGrid('.')
	assert.Panics(t, func() {
		PlotVLine(g, 0, 30, 33, '#')
	})
}
