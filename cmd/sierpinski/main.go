package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/osuushi/sierpinski"
	"github.com/osuushi/sierpinski/dbg"
	"github.com/osuushi/sierpinski/fractal"
	"github.com/osuushi/sierpinski/render"
	"github.com/osuushi/sierpinski/svgshape"
	"github.com/osuushi/sierpinski/view"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Draws a Sierpinski triangle on a 65x33 character grid and prints it. The
// outer triangle defaults to the largest one that fits, and can be read from
// the first polygon of an SVG file instead.
//
// Geometry that falls off the grid is fatal: the program prints the bad
// coordinates and exits with status 1.
func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

type options struct {
	depth      int
	pixel      string
	background string
	leaf       string
	svg        string
	trace      bool

	png    string
	scale  int
	imgcat bool
	color  bool
}

type geometry struct {
	outer      sierpinski.Triangle
	pixel      byte
	background byte
	leaf       fractal.LeafMode
}

func run(args []string, stdout io.Writer) error {
	var o options
	app := kingpin.New("sierpinski", "Draw a Sierpinski triangle on a character grid.")
	app.Flag("depth", "Recursion depth.").Short('d').Envar("SIERPINSKI_DEPTH").Default("6").IntVar(&o.depth)
	app.Flag("pixel", "Character for painted cells.").Envar("SIERPINSKI_PIXEL").Default("-").StringVar(&o.pixel)
	app.Flag("background", "Character for empty cells.").Default(" ").StringVar(&o.background)
	app.Flag("leaf", "What each leaf draws: the fixed full triangle, or its own subtriangle.").
		Default(fractal.LeafFixed.String()).EnumVar(&o.leaf, fractal.LeafFixed.String(), fractal.LeafSubtriangle.String())
	app.Flag("svg", "Read the outer triangle from the first polygon in this SVG file.").ExistingFileVar(&o.svg)
	app.Flag("trace", "Log every leaf triangle.").BoolVar(&o.trace)

	renderCmd := app.Command("render", "Print the grid.").Default()
	renderCmd.Flag("png", "Also save the grid as a PNG here.").StringVar(&o.png)
	renderCmd.Flag("scale", "PNG pixels per cell.").Default("8").IntVar(&o.scale)
	renderCmd.Flag("imgcat", "Print the PNG inline instead of text (iTerm).").BoolVar(&o.imgcat)
	renderCmd.Flag("color", "Color painted cells.").BoolVar(&o.color)

	viewCmd := app.Command("view", "Explore depths interactively.")

	command, err := app.Parse(args)
	if err != nil {
		return err
	}
	if o.depth < 1 || o.depth > fractal.MaxDepth {
		return errors.Errorf("depth must be between 1 and %d, got %d", fractal.MaxDepth, o.depth)
	}
	geom, err := o.geometry()
	if err != nil {
		return err
	}

	switch command {
	case renderCmd.FullCommand():
		return renderGrid(stdout, o, geom)
	case viewCmd.FullCommand():
		return viewGrid(o, geom)
	}
	return errors.Errorf("unknown command %q", command)
}

func (o options) geometry() (geometry, error) {
	geom := geometry{outer: sierpinski.DefaultOuter}
	var err error
	if geom.pixel, err = singleChar("pixel", o.pixel); err != nil {
		return geom, err
	}
	if geom.background, err = singleChar("background", o.background); err != nil {
		return geom, err
	}
	geom.leaf, _ = fractal.ParseLeafMode(o.leaf)
	if o.svg != "" {
		if geom.outer, err = svgshape.LoadFile(o.svg); err != nil {
			return geom, err
		}
	}
	return geom, nil
}

func singleChar(name, s string) (byte, error) {
	if len(s) != 1 {
		return 0, errors.Errorf("%s must be a single character, got %q", name, s)
	}
	return s[0], nil
}

func renderGrid(stdout io.Writer, o options, geom geometry) error {
	s := fractal.Subdivider{Leaf: geom.leaf}
	if o.trace {
		s.OnLeaf = func(t sierpinski.Triangle) {
			log.Printf("leaf %s: %v", dbg.Name(t), t)
		}
	}

	grid := sierpinski.NewGrid(geom.background)
	if err := sierpinski.DrawFractalWith(s, grid, geom.outer, o.depth, geom.pixel); err != nil {
		return err
	}

	pngOpts := render.PNGOptions{
		Scale:      o.scale,
		Background: geom.background,
		Caption:    fmt.Sprintf("depth %d, %s leaves", o.depth, geom.leaf),
	}
	if o.png != "" {
		if err := render.SavePNG(o.png, grid, pngOpts); err != nil {
			return err
		}
		log.Printf("Saved %s", o.png)
	}
	if o.imgcat {
		return render.Imgcat(stdout, grid, pngOpts)
	}
	return render.Text(stdout, grid, render.TextOptions{Background: geom.background, Color: o.color})
}

func viewGrid(o options, geom geometry) error {
	// The viewer can switch to subtriangle leaves at any time, so bad geometry
	// has to be caught before the screen is taken over
	check := fractal.Subdivider{Leaf: fractal.LeafSubtriangle}
	if err := sierpinski.DrawFractalWith(check, sierpinski.NewGrid(geom.background), geom.outer, 1, geom.pixel); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "creating screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initializing screen")
	}
	defer screen.Fini()

	model := view.NewModel(geom.outer, o.depth, geom.leaf, geom.pixel, geom.background)
	view.Run(screen, model)
	return nil
}
