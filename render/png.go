package render

import (
	"bytes"
	"image"
	"io"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/sierpinski/raster"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

const (
	DefaultScale  = 8
	captionHeight = 20
)

type PNGOptions struct {
	// Pixels per cell side. Zero means DefaultScale.
	Scale      int
	Background byte
	// Drawn under the grid when not empty
	Caption string
}

func (o PNGOptions) scale() int {
	if o.Scale <= 0 {
		return DefaultScale
	}
	return o.Scale
}

// Each cell becomes a square. Painted cells are cyan on black.
func draw(grid *raster.Grid, opts PNGOptions) *gg.Context {
	scale := opts.scale()
	width := raster.Width * scale
	gridHeight := raster.Height * scale
	height := gridHeight
	if opts.Caption != "" {
		height += captionHeight
	}

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Storage rows already run top to bottom, same as image space, so no flip
	for r := 0; r < raster.Height; r++ {
		for x, cell := range grid.Row(r) {
			if cell == opts.Background {
				continue
			}
			c.DrawRectangle(float64(x*scale), float64(r*scale), float64(scale), float64(scale))
		}
	}
	c.SetRGB(0, 1, 1)
	c.Fill()

	if opts.Caption != "" {
		c.SetFontFace(basicfont.Face7x13)
		c.SetRGB(1, 1, 1)
		c.DrawStringAnchored(opts.Caption, float64(width)/2, float64(gridHeight)+captionHeight/2, 0.5, 0.5)
	}
	return c
}

func PNG(grid *raster.Grid, opts PNGOptions) image.Image {
	return draw(grid, opts).Image()
}

func EncodePNG(w io.Writer, grid *raster.Grid, opts PNGOptions) error {
	return errors.Wrap(draw(grid, opts).EncodePNG(w), "encoding png")
}

func SavePNG(path string, grid *raster.Grid, opts PNGOptions) error {
	return errors.Wrapf(draw(grid, opts).SavePNG(path), "saving png to %s", path)
}

// Imgcat prints the picture inline, for terminals that speak the iTerm image
// protocol.
func Imgcat(w io.Writer, grid *raster.Grid, opts PNGOptions) error {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, grid, opts); err != nil {
		return err
	}
	return errors.Wrap(imgcat.Cat(&buf, w), "imgcat")
}
