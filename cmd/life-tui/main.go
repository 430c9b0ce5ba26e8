package main

import (
	"log"
	"strings"
	"time"

	"golife/internal/view"
	"golife/pkg/grid"
	"golife/pkg/life"
	"golife/pkg/zoo"

	"github.com/integrii/flaggy"
)

func main() {
	width, height := 60, 24
	interval := 100 * time.Millisecond
	toroidal := false
	pattern := "glider"
	random := false
	seed := 42

	flaggy.SetDescription("Interactive terminal frontend for the Game of Life")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&width, "x", "width", "Width of the world")
	flaggy.Int(&height, "y", "height", "Height of the world")
	flaggy.Duration(&interval, "i", "interval", "Delay between steps while running, for example 150ms")
	flaggy.Bool(&toroidal, "t", "toroidal", "Wrap the edges of the world")
	flaggy.String(&pattern, "p", "pattern", "Seed pattern ["+strings.Join(zoo.Names(), "|")+"]")
	flaggy.Bool(&random, "r", "random", "Seed with random data instead of a pattern")
	flaggy.Int(&seed, "d", "seed", "Seed for random fills")
	flaggy.Parse()

	g, err := grid.New(width, height)
	if err != nil {
		log.Fatal(err)
	}
	if !random {
		p, ok := zoo.ByName(pattern)
		if !ok {
			log.Fatalf("unknown pattern %q, want one of %v", pattern, zoo.Names())
		}
		if err := g.Merge(p, (width-p.Width())/2, (height-p.Height())/2, true); err != nil {
			log.Fatalf("world too small for pattern %q: %v", pattern, err)
		}
	}
	w := life.FromGrid(g)
	if random {
		w.Randomize(int64(seed))
	}

	t, err := view.NewTUI(w, view.TUIOptions{Interval: interval, Toroidal: toroidal})
	if err != nil {
		log.Fatal(err)
	}
	if err := t.Run(); err != nil {
		log.Fatal(err)
	}
}
