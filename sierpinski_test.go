package sierpinski

import (
	"testing"

	"github.com/osuushi/sierpinski/fractal"
	"github.com/osuushi/sierpinski/raster"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestRender(t *testing.T) {
	grid, err := Render(DefaultOuter, 6, '-', ' ')
	require.NoError(t, err)
	assert.Equal(t, 1088, grid.Count('-'))
}

func TestDrawFractal_OutOfBounds(t *testing.T) {
	grid := NewGrid(' ')
	// Subtriangle leaves hand the bad vertex straight to the rasterizer
	outer := Triangle{A: Point{X: 0, Y: 0}, B: Point{X: 32, Y: 40}, C: Point{X: 64, Y: 0}}
	err := DrawFractalWith(fractal.Subdivider{Leaf: fractal.LeafSubtriangle}, grid, outer, 1, '-')
	require.Error(t, err)
	var coordErr *raster.CoordinateError
	assert.True(t, errors.As(err, &coordErr))
	assert.Equal(t, 40.0, coordErr.Y)
	assert.Equal(t, 0, grid.Count('-'))

	_, err = Render(outer, 1, '-', ' ')
	// The fixed leaf never looks at the outer triangle
	assert.NoError(t, err)
}

func TestDrawFractalWith_Leaves(t *testing.T) {
	count := 0
	s := fractal.Subdivider{
		Leaf:   fractal.LeafSubtriangle,
		OnLeaf: func(Triangle) { count++ },
	}
	require.NoError(t, DrawFractalWith(s, NewGrid(' '), DefaultOuter, 4, '#'))
	assert.Equal(t, 27, count)
}
