// Package life implements Conway's Game of Life over a double-buffered pair
// of grids.
package life

import (
	"fmt"

	"golife/pkg/core"
	"golife/pkg/grid"
)

// World owns the current and next generation buffers and drives the
// transition rule. Both grids always share the same dimensions. A step reads
// only from current and writes only to next, then the buffers exchange roles
// without copying.
type World struct {
	current    *grid.Grid
	next       *grid.Grid
	generation int
}

// New returns a world of the given dimensions with every cell dead.
func New(width, height int) (*World, error) {
	cur, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	nxt, _ := grid.New(width, height)
	return &World{current: cur, next: nxt}, nil
}

// NewSquare returns a square world with the given edge size.
func NewSquare(size int) (*World, error) {
	return New(size, size)
}

// FromGrid returns a world whose starting state is a copy of initial.
func FromGrid(initial *grid.Grid) *World {
	nxt, _ := grid.New(initial.Width(), initial.Height())
	return &World{current: initial.Clone(), next: nxt}
}

// Width returns the width of the world.
func (w *World) Width() int { return w.current.Width() }

// Height returns the height of the world.
func (w *World) Height() int { return w.current.Height() }

// TotalCells returns the number of cells in the world.
func (w *World) TotalCells() int { return w.current.TotalCells() }

// AliveCells counts the alive cells in the current state.
func (w *World) AliveCells() int { return w.current.AliveCells() }

// DeadCells counts the dead cells in the current state.
func (w *World) DeadCells() int { return w.current.DeadCells() }

// Generation returns how many steps the world has taken.
func (w *World) Generation() int { return w.generation }

// State returns the current generation without copying. Callers must treat
// the returned grid as read-only.
func (w *World) State() *grid.Grid { return w.current }

// Resize resizes the current state per the grid resize contract. The next
// buffer is reallocated empty since every step overwrites it in full.
func (w *World) Resize(newWidth, newHeight int) error {
	if err := w.current.Resize(newWidth, newHeight); err != nil {
		return err
	}
	w.next, _ = grid.New(newWidth, newHeight)
	return nil
}

// ResizeSquare resizes both dimensions to the given edge size.
func (w *World) ResizeSquare(size int) error {
	return w.Resize(size, size)
}

// countNeighbours counts the alive cells among the 8 surrounding (x, y) in
// the current state. Outside coordinates count as dead unless toroidal is
// set, in which case they wrap to the opposite edge.
func (w *World) countNeighbours(x, y int, toroidal bool) int {
	width, height := w.current.Width(), w.current.Height()
	cells := w.current.Cells()
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if toroidal {
				nx = (nx%width + width) % width
				ny = (ny%height + height) % height
			} else if nx < 0 || ny < 0 || nx >= width || ny >= height {
				continue
			}
			if cells[ny*width+nx] == grid.Alive {
				count++
			}
		}
	}
	return count
}

// Step advances the world by one generation. An alive cell survives with 2
// or 3 alive neighbours, a dead cell is born with exactly 3; everything else
// dies. The whole next buffer is written before the two buffers swap roles
// in O(1).
func (w *World) Step(toroidal bool) {
	width, height := w.current.Width(), w.current.Height()
	cur := w.current.Cells()
	nxt := w.next.Cells()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := w.countNeighbours(x, y, toroidal)
			idx := y*width + x
			alive := cur[idx] == grid.Alive
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				nxt[idx] = grid.Alive
			} else {
				nxt[idx] = grid.Dead
			}
		}
	}
	w.current, w.next = w.next, w.current
	w.generation++
}

// Advance runs the given number of steps in order. Zero steps is a no-op.
func (w *World) Advance(steps int, toroidal bool) error {
	if steps < 0 {
		return fmt.Errorf("%w: %d steps", grid.ErrInvalidArgument, steps)
	}
	for i := 0; i < steps; i++ {
		w.Step(toroidal)
	}
	return nil
}

// Toggle inverts the cell at (x, y) in the current state.
func (w *World) Toggle(x, y int) error {
	cell, err := w.current.At(x, y)
	if err != nil {
		return err
	}
	if *cell == grid.Alive {
		*cell = grid.Dead
	} else {
		*cell = grid.Alive
	}
	return nil
}

// Randomize repopulates the current state from the provided seed and resets
// the generation counter.
func (w *World) Randomize(seed int64) {
	rng := core.NewRNG(seed)
	cells := w.current.Cells()
	for i := range cells {
		if rng.Bool() {
			cells[i] = grid.Alive
		} else {
			cells[i] = grid.Dead
		}
	}
	w.generation = 0
}

// Clear kills every cell and resets the generation counter.
func (w *World) Clear() {
	cells := w.current.Cells()
	for i := range cells {
		cells[i] = grid.Dead
	}
	w.generation = 0
}
