// Package view renders world state for the terminal frontends.
package view

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golife/pkg/grid"
	"golife/pkg/life"

	"github.com/logrusorgru/aurora"
)

// Console renders world state as colored text for non-interactive runs.
type Console struct {
	out        io.Writer
	liveFiller string
	deadFiller string
}

// NewConsole returns a console renderer writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{
		out:        out,
		liveFiller: aurora.Green("█").String(),
		deadFiller: "░",
	}
}

// PrintConfig writes the run configuration before a simulation starts.
func (c *Console) PrintConfig(w *life.World, steps int, toroidal bool) {
	fmt.Fprintln(c.out, "Running configuration:")
	fmt.Fprintf(c.out, "  Dimension: %v x %v\n", w.Width(), w.Height())
	fmt.Fprintf(c.out, "  Steps: %v\n", steps)
	fmt.Fprintf(c.out, "  Toroidal: %v\n", toroidal)
}

// RenderField writes the colored cell field, one row per line.
func (c *Console) RenderField(g *grid.Grid) {
	var b strings.Builder
	cells := g.Cells()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if cells[y*g.Width()+x] == grid.Alive {
				b.WriteString(c.liveFiller)
			} else {
				b.WriteString(c.deadFiller)
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(c.out, b.String())
}

// PrintSummary writes the run counters after a simulation finishes.
func (c *Console) PrintSummary(w *life.World, elapsed time.Duration) {
	fmt.Fprintf(c.out, "%s: %v\n", aurora.Green("Generations"), w.Generation())
	fmt.Fprintf(c.out, "%s: %v of %v alive\n", aurora.Green("Cells"), w.AliveCells(), w.TotalCells())
	fmt.Fprintf(c.out, "%s: %v\n", aurora.Green("Total time"), elapsed.Round(time.Millisecond))
}
