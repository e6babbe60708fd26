// Draw Sierpinski triangles on a character grid.
//
// The fractal is built by midpoint subdivision of an outer triangle. Each leaf
// of the recursion is filled with a column sweeping scanline rasterizer on a
// fixed 65x33 grid, whose origin is at the bottom left.
package sierpinski

import (
	"github.com/osuushi/sierpinski/fractal"
	"github.com/osuushi/sierpinski/raster"
)

type Point = raster.Point
type Triangle = raster.Triangle
type Grid = raster.Grid

// The largest triangle that fits the grid, base 64 and height 32
var DefaultOuter = fractal.FixedTriangle

func NewGrid(background byte) *Grid {
	return raster.NewGrid(background)
}

// DrawFractal subdivides outer down to depth and draws every leaf onto grid.
//
// Geometry that would paint outside the grid is a bug in the caller, and it
// comes back as a *raster.CoordinateError. The grid may be partially drawn in
// that case.
func DrawFractal(grid *Grid, outer Triangle, depth int, pixel byte) error {
	return DrawFractalWith(fractal.Subdivider{}, grid, outer, depth, pixel)
}

// Same as DrawFractal, with control over the leaf mode and leaf hook.
func DrawFractalWith(s fractal.Subdivider, grid *Grid, outer Triangle, depth int, pixel byte) (err error) {
	defer func() {
		recoveredErr := raster.HandlePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	s.Subdivide(grid, outer.A, outer.B, outer.C, depth, pixel)
	return nil
}

// Render draws the fractal onto a fresh grid.
func Render(outer Triangle, depth int, pixel, background byte) (*Grid, error) {
	grid := NewGrid(background)
	if err := DrawFractal(grid, outer, depth, pixel); err != nil {
		return nil, err
	}
	return grid, nil
}
