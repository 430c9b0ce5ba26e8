//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"golife/internal/app"
	"golife/pkg/grid"
	"golife/pkg/life"
	"golife/pkg/zoo"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	world, err := buildWorld(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(world, cfg)

	ebiten.SetWindowTitle("golife")
	ebiten.SetWindowSize(world.Width()*cfg.Scale, world.Height()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func buildWorld(cfg *app.Config) (*life.World, error) {
	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if cfg.Random {
		w := life.FromGrid(g)
		w.Randomize(cfg.Seed)
		return w, nil
	}

	p, ok := zoo.ByName(cfg.Pattern)
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q, want one of %v", cfg.Pattern, zoo.Names())
	}
	if err := g.Merge(p, (cfg.Width-p.Width())/2, (cfg.Height-p.Height())/2, true); err != nil {
		return nil, fmt.Errorf("world too small for pattern %q: %w", cfg.Pattern, err)
	}
	return life.FromGrid(g), nil
}
