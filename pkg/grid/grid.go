// Package grid provides bounds-checked storage and geometric manipulation of
// a rectangular field of binary cells.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the binary state of a single grid slot.
type Cell uint8

const (
	// Dead marks an empty cell.
	Dead Cell = 0
	// Alive marks a populated cell.
	Alive Cell = 1
)

// String returns the serialization symbol for the cell.
func (c Cell) String() string {
	if c == Alive {
		return "#"
	}
	return " "
}

var (
	// ErrOutOfBounds reports a coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrInvalidArgument reports a negative size, an inverted window, or a
	// placement that cannot fit.
	ErrInvalidArgument = errors.New("grid: invalid argument")
)

// Grid stores a 2D field of cells in row-major order. Every operation maps
// coordinates through the same index = y*width + x rule. The zero value is a
// usable 0x0 grid.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// New allocates a grid with the given dimensions, every cell Dead.
func New(width, height int) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidArgument, width, height)
	}
	return &Grid{width: width, height: height, cells: make([]Cell, width*height)}, nil
}

// NewSquare allocates a grid with the given edge size for both dimensions.
func NewSquare(size int) (*Grid, error) {
	return New(size, size)
}

// Width returns the width of the grid.
func (g *Grid) Width() int { return g.width }

// Height returns the height of the grid.
func (g *Grid) Height() int { return g.height }

// TotalCells returns the number of cells in the grid.
func (g *Grid) TotalCells() int { return g.width * g.height }

// AliveCells counts the cells holding Alive.
func (g *Grid) AliveCells() int {
	count := 0
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return count
}

// DeadCells counts the cells holding Dead.
func (g *Grid) DeadCells() int {
	return g.TotalCells() - g.AliveCells()
}

// Cells exposes the backing slice in row-major order so renderers can read
// values directly. The slice is invalidated by Resize.
func (g *Grid) Cells() []Cell { return g.cells }

// index returns the linear slice index for coordinates (x, y).
func (g *Grid) index(x, y int) int { return y*g.width + x }

func (g *Grid) checkBounds(x, y int) error {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return nil
}

// Get returns the value of the cell at (x, y).
func (g *Grid) Get(x, y int) (Cell, error) {
	if err := g.checkBounds(x, y); err != nil {
		return Dead, err
	}
	return g.cells[g.index(x, y)], nil
}

// Set overwrites the cell at (x, y).
func (g *Grid) Set(x, y int, value Cell) error {
	if err := g.checkBounds(x, y); err != nil {
		return err
	}
	g.cells[g.index(x, y)] = value
	return nil
}

// At returns a mutable handle into the backing storage for the cell at
// (x, y). The handle is invalidated by Resize.
func (g *Grid) At(x, y int) (*Cell, error) {
	if err := g.checkBounds(x, y); err != nil {
		return nil, err
	}
	return &g.cells[g.index(x, y)], nil
}

// Resize replaces the buffer with a fresh all-Dead one of the target size,
// copying every cell that lies within both the old and new bounds.
func (g *Grid) Resize(newWidth, newHeight int) error {
	if newWidth < 0 || newHeight < 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidArgument, newWidth, newHeight)
	}
	cells := make([]Cell, newWidth*newHeight)
	for y := 0; y < newHeight && y < g.height; y++ {
		for x := 0; x < newWidth && x < g.width; x++ {
			cells[y*newWidth+x] = g.cells[g.index(x, y)]
		}
	}
	g.width, g.height, g.cells = newWidth, newHeight, cells
	return nil
}

// ResizeSquare resizes both dimensions to the given edge size.
func (g *Grid) ResizeSquare(size int) error {
	return g.Resize(size, size)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether both grids have identical dimensions and cell values.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid framed by '+', '-', and '|' characters, one row per
// line, '#' for alive cells and ' ' for dead ones.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 3) * (g.height + 2))
	border := "+" + strings.Repeat("-", g.width) + "+\n"
	b.WriteString(border)
	for y := 0; y < g.height; y++ {
		b.WriteByte('|')
		for x := 0; x < g.width; x++ {
			if g.cells[g.index(x, y)] == Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String()
}
