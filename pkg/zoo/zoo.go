// Package zoo constructs grids containing well-known Game of Life creatures
// and persists grids in the text (.gol) and packed binary (.bgol) formats.
package zoo

import (
	"sort"

	"golife/pkg/grid"
)

// Glider returns a 3x3 grid containing a glider.
// https://www.conwaylife.com/wiki/Glider
func Glider() *grid.Grid {
	return fromCoordinates(3, 3, [][2]int{
		{1, 0},
		{2, 1},
		{0, 2}, {1, 2}, {2, 2},
	})
}

// RPentomino returns a 3x3 grid containing an r-pentomino.
// https://www.conwaylife.com/wiki/R-pentomino
func RPentomino() *grid.Grid {
	return fromCoordinates(3, 3, [][2]int{
		{1, 0}, {2, 0},
		{0, 1}, {1, 1},
		{1, 2},
	})
}

// LightWeightSpaceship returns a 5x4 grid containing a lightweight spaceship.
// https://www.conwaylife.com/wiki/Lightweight_spaceship
func LightWeightSpaceship() *grid.Grid {
	return fromCoordinates(5, 4, [][2]int{
		{1, 0}, {4, 0},
		{0, 1},
		{0, 2}, {4, 2},
		{0, 3}, {1, 3}, {2, 3}, {3, 3},
	})
}

// patterns maps the catalog names used by the frontends.
var patterns = map[string]func() *grid.Grid{
	"glider":     Glider,
	"rpentomino": RPentomino,
	"lwss":       LightWeightSpaceship,
}

// ByName looks up a catalog pattern by its frontend name.
func ByName(name string) (*grid.Grid, bool) {
	factory, ok := patterns[name]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// Names returns the catalog pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fromCoordinates draws alive cells on a grid the size of their bounding box.
func fromCoordinates(width, height int, coords [][2]int) *grid.Grid {
	g, _ := grid.New(width, height)
	for _, c := range coords {
		g.Set(c[0], c[1], grid.Alive)
	}
	return g
}
