package grid

import "fmt"

// Crop extracts the half-open window [x0,x1) by [y0,y1) into a new grid
// re-indexed to originate at (0,0). The right and bottom edges may equal the
// grid dimensions.
func (g *Grid) Crop(x0, y0, x1, y1 int) (*Grid, error) {
	if x1 < x0 || y1 < y0 {
		return nil, fmt.Errorf("%w: crop window (%d,%d)-(%d,%d)", ErrInvalidArgument, x0, y0, x1, y1)
	}
	if x0 < 0 || y0 < 0 || x1 > g.width || y1 > g.height {
		return nil, fmt.Errorf("%w: crop window (%d,%d)-(%d,%d) in %dx%d",
			ErrOutOfBounds, x0, y0, x1, y1, g.width, g.height)
	}
	out := &Grid{width: x1 - x0, height: y1 - y0}
	out.cells = make([]Cell, out.width*out.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			out.cells[out.index(x-x0, y-y0)] = g.cells[g.index(x, y)]
		}
	}
	return out, nil
}

// Merge overlays other onto the grid with its top-left corner at (x0, y0).
// Alive cells of other always win; dead cells of other clear the target
// unless aliveOnly is set, in which case the target value persists. The grid
// is left untouched when the placement does not fit.
func (g *Grid) Merge(other *Grid, x0, y0 int, aliveOnly bool) error {
	if other == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidArgument)
	}
	if x0 < 0 || y0 < 0 {
		return fmt.Errorf("%w: placement (%d,%d)", ErrOutOfBounds, x0, y0)
	}
	if x0+other.width > g.width || y0+other.height > g.height {
		return fmt.Errorf("%w: %dx%d grid at (%d,%d) does not fit in %dx%d",
			ErrInvalidArgument, other.width, other.height, x0, y0, g.width, g.height)
	}
	if other == g {
		// a shifted self-merge would read cells already overwritten
		other = g.Clone()
	}
	for y := 0; y < other.height; y++ {
		for x := 0; x < other.width; x++ {
			switch {
			case other.cells[other.index(x, y)] == Alive:
				g.cells[g.index(x0+x, y0+y)] = Alive
			case !aliveOnly:
				g.cells[g.index(x0+x, y0+y)] = Dead
			}
		}
	}
	return nil
}

// Rotate returns a copy of the grid rotated clockwise by rotation*90 degrees.
// Any integer is accepted; only rotation mod 4 is significant, so the cost is
// proportional to the cell count regardless of magnitude. Odd turn counts
// swap width and height.
func (g *Grid) Rotate(rotation int) *Grid {
	turns := ((rotation % 4) + 4) % 4
	out := &Grid{width: g.width, height: g.height}
	if turns%2 == 1 {
		out.width, out.height = g.height, g.width
	}
	out.cells = make([]Cell, len(g.cells))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			var dx, dy int
			switch turns {
			case 1:
				dx, dy = g.height-1-y, x
			case 2:
				dx, dy = g.width-1-x, g.height-1-y
			case 3:
				dx, dy = y, g.width-1-x
			default:
				dx, dy = x, y
			}
			out.cells[out.index(dx, dy)] = g.cells[g.index(x, y)]
		}
	}
	return out
}
