// Package render turns a finished grid into something to look at: plain or
// colored text for a terminal, or a PNG.
package render

import (
	"bufio"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/sierpinski/raster"
)

type TextOptions struct {
	// Cells holding this character are left uncolored
	Background byte
	Color      bool
}

// Text prints the grid in the same layout as Grid.WriteTo, optionally coloring
// every painted cell.
func Text(w io.Writer, grid *raster.Grid, opts TextOptions) error {
	if !opts.Color {
		_, err := grid.WriteTo(w)
		return err
	}

	au := aurora.NewAurora(true)
	bw := bufio.NewWriter(w)
	for r := 0; r < raster.Height; r++ {
		for _, c := range grid.Row(r) {
			if c == opts.Background {
				bw.WriteByte(c)
			} else {
				bw.WriteString(au.Green(string(c)).String())
			}
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
