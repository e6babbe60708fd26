// Package view is an interactive terminal viewer for the fractal. The depth
// and leaf mode can be changed while it runs, and the grid is redrawn after
// every change.
package view

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/osuushi/sierpinski/fractal"
	"github.com/osuushi/sierpinski/raster"
)

type Model struct {
	Outer      raster.Triangle
	Depth      int
	Leaf       fractal.LeafMode
	Pixel      byte
	Background byte

	grid *raster.Grid
}

func NewModel(outer raster.Triangle, depth int, leaf fractal.LeafMode, pixel, background byte) *Model {
	m := &Model{
		Outer:      outer,
		Depth:      clampDepth(depth),
		Leaf:       leaf,
		Pixel:      pixel,
		Background: background,
	}
	m.Redraw()
	return m
}

func clampDepth(depth int) int {
	if depth < 1 {
		return 1
	}
	if depth > fractal.MaxDepth {
		return fractal.MaxDepth
	}
	return depth
}

// Redraw rebuilds the grid from scratch
func (m *Model) Redraw() {
	if m.grid == nil {
		m.grid = raster.NewGrid(m.Background)
	} else {
		m.grid.Reset(m.Background)
	}
	s := fractal.Subdivider{Leaf: m.Leaf}
	s.Subdivide(m.grid, m.Outer.A, m.Outer.B, m.Outer.C, m.Depth, m.Pixel)
}

func (m *Model) Grid() *raster.Grid {
	return m.grid
}

// HandleRune applies a key press and reports whether the viewer should keep
// running.
func (m *Model) HandleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case '+', '=':
		m.setDepth(m.Depth + 1)
	case '-', '_':
		m.setDepth(m.Depth - 1)
	case 'l':
		if m.Leaf == fractal.LeafFixed {
			m.Leaf = fractal.LeafSubtriangle
		} else {
			m.Leaf = fractal.LeafFixed
		}
		m.Redraw()
	}
	return true
}

func (m *Model) setDepth(depth int) {
	depth = clampDepth(depth)
	if depth == m.Depth {
		return
	}
	m.Depth = depth
	m.Redraw()
}

func (m *Model) Status() string {
	return fmt.Sprintf("depth %d  leaf %s  leaves %d   [+/-] depth  [l] leaf  [q] quit",
		m.Depth, m.Leaf, fractal.LeafCount(m.Depth))
}

// Anything we can put a cell on. tcell.Screen satisfies this.
type cellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var (
	pixelStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// Draw puts the grid at the top left, two screen columns per cell so the
// picture keeps its proportions, with the status line under it.
func (m *Model) Draw(screen cellSetter) {
	for r := 0; r < raster.Height; r++ {
		for x, c := range m.grid.Row(r) {
			style := tcell.StyleDefault
			if c != m.Background {
				style = pixelStyle
			}
			screen.SetContent(2*x, r, rune(c), nil, style)
			screen.SetContent(2*x+1, r, ' ', nil, tcell.StyleDefault)
		}
	}
	for i, ch := range m.Status() {
		screen.SetContent(i, raster.Height+1, ch, nil, statusStyle)
	}
}

// Run takes over the screen until the user quits. The screen must already be
// initialized; Run does not Fini it.
func Run(screen tcell.Screen, m *Model) {
	for {
		screen.Clear()
		m.Draw(screen)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case nil:
			// Screen was finalized
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return
			}
			if ev.Key() == tcell.KeyRune && !m.HandleRune(ev.Rune()) {
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
