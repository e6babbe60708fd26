package raster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid(' ')
	assert.Equal(t, Width*Height, g.Count(' '))
}

func TestGrid_OriginIsBottomLeft(t *testing.T) {
	g := NewGrid('.')
	g.Plot(0, 0, 'a')
	g.Plot(Width-1, Height-1, 'b')
	assert.Equal(t, byte('a'), g.Row(Height - 1)[0])
	assert.Equal(t, byte('b'), g.Row(0)[Width-1])
	assert.Equal(t, byte('a'), g.At(0, 0))
}

func TestGrid_PlotOutOfBounds(t *testing.T) {
	g := NewGrid('.')
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {Width, 0}, {0, Height}} {
		assert.Panics(t, func() { g.Plot(c[0], c[1], '#') }, "%v", c)
	}
	assert.Equal(t, Width*Height, g.Count('.'))
}

func TestGrid_WriteTo(t *testing.T) {
	g := NewGrid('.')
	g.Plot(1, Height-1, '#')
	out := g.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, Height)
	assert.Equal(t, ". # "+strings.Repeat(". ", Width-2), lines[0])
	for _, line := range lines[1:] {
		assert.Equal(t, strings.Repeat(". ", Width), line)
	}

	var sb strings.Builder
	n, err := g.WriteTo(&sb)
	assert.NoError(t, err)
	assert.Equal(t, int64(len(out)), n)
}

func TestGrid_CloneAndEqual(t *testing.T) {
	g := NewGrid('.')
	c := g.Clone()
	assert.True(t, g.Equal(c))
	c.Plot(4, 4, '#')
	assert.False(t, g.Equal(c))
	assert.Equal(t, byte('.'), g.At(4, 4))

	c.Reset('.')
	assert.True(t, g.Equal(c))
}
