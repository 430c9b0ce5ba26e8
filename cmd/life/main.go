package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golife/internal/view"
	"golife/pkg/grid"
	"golife/pkg/life"
	"golife/pkg/zoo"

	"github.com/integrii/flaggy"
)

type options struct {
	width    int
	height   int
	steps    int
	toroidal bool
	pattern  string
	random   bool
	seed     int
	in       string
	out      string
	quiet    bool
}

func main() {
	opts := parseFlags()

	w, err := buildWorld(opts)
	if err != nil {
		log.Fatal(err)
	}

	console := view.NewConsole(os.Stdout)
	if !opts.quiet {
		console.PrintConfig(w, opts.steps, opts.toroidal)
	}

	start := time.Now()
	if err := w.Advance(opts.steps, opts.toroidal); err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	if !opts.quiet {
		console.RenderField(w.State())
		console.PrintSummary(w, elapsed)
	}
	if opts.out != "" {
		if err := save(opts.out, w.State()); err != nil {
			log.Fatal(err)
		}
	}
}

func parseFlags() *options {
	opts := &options{width: 40, height: 20, steps: 100, pattern: "glider", seed: 42}
	flaggy.SetDescription("Conway's Game of Life over a bounded or toroidal grid")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&opts.width, "x", "width", "Width of the world")
	flaggy.Int(&opts.height, "y", "height", "Height of the world")
	flaggy.Int(&opts.steps, "s", "steps", "Number of generations to advance")
	flaggy.Bool(&opts.toroidal, "t", "toroidal", "Wrap the edges of the world")
	flaggy.String(&opts.pattern, "p", "pattern", "Seed pattern ["+strings.Join(zoo.Names(), "|")+"]")
	flaggy.Bool(&opts.random, "r", "random", "Seed with random data instead of a pattern")
	flaggy.Int(&opts.seed, "d", "seed", "Seed for random fills")
	flaggy.String(&opts.in, "f", "file", "Load the initial state from a .gol or .bgol file")
	flaggy.String(&opts.out, "o", "out", "Save the final state to a .gol or .bgol file")
	flaggy.Bool(&opts.quiet, "q", "quiet", "Suppress field and summary output")
	flaggy.Parse()
	return opts
}

func buildWorld(opts *options) (*life.World, error) {
	if opts.in != "" {
		g, err := load(opts.in)
		if err != nil {
			return nil, err
		}
		return life.FromGrid(g), nil
	}

	g, err := grid.New(opts.width, opts.height)
	if err != nil {
		return nil, err
	}
	if opts.random {
		w := life.FromGrid(g)
		w.Randomize(int64(opts.seed))
		return w, nil
	}

	p, ok := zoo.ByName(opts.pattern)
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q, want one of %v", opts.pattern, zoo.Names())
	}
	x0 := (opts.width - p.Width()) / 2
	y0 := (opts.height - p.Height()) / 2
	if err := g.Merge(p, x0, y0, true); err != nil {
		return nil, fmt.Errorf("world too small for pattern %q: %w", opts.pattern, err)
	}
	return life.FromGrid(g), nil
}

func load(path string) (*grid.Grid, error) {
	if filepath.Ext(path) == ".bgol" {
		return zoo.LoadBinary(path)
	}
	return zoo.LoadASCII(path)
}

func save(path string, g *grid.Grid) error {
	if filepath.Ext(path) == ".bgol" {
		return zoo.SaveBinary(path, g)
	}
	return zoo.SaveASCII(path, g)
}
