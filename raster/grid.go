package raster

import (
	"bufio"
	"bytes"
	"io"
)

// The grid is fixed at 65x33, so a triangle with a base of 64 and a height of
// 32 fits with an integer midline.
const (
	Width  = 65
	Height = 33
)

// Grid is a character canvas. Logical coordinates have their origin at the
// bottom left, but cells are stored row-major starting from the top row, which
// is the order they get printed in.
type Grid struct {
	cells [Width * Height]byte
}

func NewGrid(background byte) *Grid {
	g := &Grid{}
	g.Reset(background)
	return g
}

// Set every cell to the background character.
func (g *Grid) Reset(background byte) {
	for i := range g.cells {
		g.cells[i] = background
	}
}

func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

func index(x, y int) int {
	return (Height-y-1)*Width + x
}

// Plot paints one cell. Out of range coordinates panic with a
// CoordinateError.
func (g *Grid) Plot(x, y int, pixel byte) {
	if !InBounds(x, y) {
		fatalCoordinates(float64(x), float64(y))
	}
	g.cells[index(x, y)] = pixel
}

func (g *Grid) At(x, y int) byte {
	if !InBounds(x, y) {
		fatalCoordinates(float64(x), float64(y))
	}
	return g.cells[index(x, y)]
}

// Row returns storage row r (0 is the top of the picture). The slice aliases
// the grid.
func (g *Grid) Row(r int) []byte {
	return g.cells[r*Width : (r+1)*Width]
}

// Count the cells holding pixel
func (g *Grid) Count(pixel byte) int {
	return bytes.Count(g.cells[:], []byte{pixel})
}

func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

func (g *Grid) Equal(other *Grid) bool {
	return g.cells == other.cells
}

// WriteTo prints the grid top row first, each cell followed by a space, with
// a newline after every row.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for r := 0; r < Height; r++ {
		for _, c := range g.Row(r) {
			bw.WriteByte(c)
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
		n += 2*Width + 1
	}
	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return n, nil
}

func (g *Grid) String() string {
	var buf bytes.Buffer
	g.WriteTo(&buf)
	return buf.String()
}
