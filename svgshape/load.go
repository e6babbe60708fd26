// Package svgshape reads an outer triangle out of an SVG document.
//
// This is not a full (or even correct) svg reader. It finds the first polygon
// in the document and takes its points attribute, which must hold exactly
// three "x,y" pairs. SVG y grows downward, so points are flipped into grid
// coordinates, where y grows upward from the bottom row.
package svgshape

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/sierpinski/raster"
	"github.com/pkg/errors"
)

func LoadFile(path string) (raster.Triangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return raster.Triangle{}, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	return Load(f)
}

func Load(r io.Reader) (raster.Triangle, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return raster.Triangle{}, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return raster.Triangle{}, errors.New("no polygon found")
	}

	points, err := parsePoints(polygons[0].Attributes["points"])
	if err != nil {
		return raster.Triangle{}, err
	}
	if len(points) != 3 {
		return raster.Triangle{}, errors.Errorf("polygon has %d points, want 3", len(points))
	}
	return raster.Triangle{A: points[0], B: points[1], C: points[2]}, nil
}

func parsePoints(s string) ([]raster.Point, error) {
	var points []raster.Point
	for _, pointString := range strings.Fields(s) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			return nil, errors.Errorf("invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", coords[0])
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", coords[1])
		}
		points = append(points, raster.Point{X: x, Y: raster.Height - 1 - y})
	}
	return points, nil
}
