//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"golife/internal/core"
	"golife/internal/render"
	"golife/pkg/grid"
	"golife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life.World to the ebiten.Game interface.
type Game struct {
	world   *life.World
	initial *grid.Grid
	painter *render.GridPainter
	stepper *core.FixedStep

	onColor  color.Color
	offColor color.Color

	toroidal bool
	random   bool
	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided world.
func New(world *life.World, cfg *Config) *Game {
	return &Game{
		world:    world,
		initial:  world.State().Clone(),
		painter:  render.NewGridPainter(world.Width(), world.Height()),
		stepper:  core.NewFixedRate(cfg.SPS),
		onColor:  color.White,
		offColor: color.Black,
		toroidal: cfg.Toroidal,
		random:   cfg.Random,
		scale:    cfg.Scale,
		seed:     cfg.Seed,
	}
}

// Update handles input and advances the world at the configured step rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.reset(time.Now().UnixNano())
	}

	if (g.stepper.ShouldStep() && !g.paused) || g.tickOnce {
		g.world.Step(g.toroidal)
		g.tickOnce = false
	}
	return nil
}

func (g *Game) reset(seed int64) {
	if g.random {
		g.seed = seed
		g.world.Randomize(seed)
		return
	}
	g.world = life.FromGrid(g.initial)
}

// Draw renders the current world state with a generation counter on top.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.State().Cells(), g.onColor, g.offColor, g.scale)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("gen %d  alive %d/%d",
		g.world.Generation(), g.world.AliveCells(), g.world.TotalCells()))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.Width() * g.scale, g.world.Height() * g.scale
}
