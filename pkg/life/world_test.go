package life

import (
	"errors"
	"testing"

	"golife/pkg/grid"
)

func mustWorld(t *testing.T, w, h int) *World {
	t.Helper()
	world, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return world
}

func seed(t *testing.T, w *World, coords [][2]int) {
	t.Helper()
	for _, c := range coords {
		if err := w.current.Set(c[0], c[1], grid.Alive); err != nil {
			t.Fatalf("Set(%d, %d): %v", c[0], c[1], err)
		}
	}
}

func checkCells(t *testing.T, w *World, want map[[2]int]bool) {
	t.Helper()
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			c, err := w.State().Get(x, y)
			if err != nil {
				t.Fatalf("Get(%d, %d): %v", x, y, err)
			}
			if (c == grid.Alive) != want[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, c == grid.Alive, want[[2]int{x, y}])
			}
		}
	}
}

func TestGliderStep(t *testing.T) {
	w := mustWorld(t, 3, 3)
	seed(t, w, [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}})

	w.Step(false)

	// the in-bounds subset of the canonical next glider phase
	checkCells(t, w, map[[2]int]bool{
		{0, 1}: true,
		{2, 1}: true,
		{1, 2}: true,
		{2, 2}: true,
	})
}

func TestBlockStillLife(t *testing.T) {
	w := mustWorld(t, 2, 2)
	seed(t, w, [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}})

	for i := 0; i < 3; i++ {
		if err := w.Advance(4, false); err != nil {
			t.Fatalf("Advance: %v", err)
		}
		if w.AliveCells() != 4 {
			t.Fatalf("block decayed to %d cells after %d generations", w.AliveCells(), w.Generation())
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	w := mustWorld(t, 5, 5)
	seed(t, w, [][2]int{{2, 1}, {2, 2}, {2, 3}})

	w.Step(false)
	checkCells(t, w, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})

	w.Step(false)
	checkCells(t, w, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})
}

func TestNeighbourCountWrapping(t *testing.T) {
	w := mustWorld(t, 3, 3)
	seed(t, w, [][2]int{{0, 0}})

	cases := []struct {
		x, y     int
		toroidal bool
		want     int
	}{
		{1, 1, false, 1},
		{1, 1, true, 1},
		{2, 2, false, 0},
		{2, 2, true, 1}, // wraps diagonally onto (0,0)
		{2, 0, false, 0},
		{2, 0, true, 1},
		{0, 2, false, 0},
		{0, 2, true, 1},
		{0, 0, false, 0},
		{0, 0, true, 0}, // a cell is not its own neighbour
	}
	for _, c := range cases {
		if got := w.countNeighbours(c.x, c.y, c.toroidal); got != c.want {
			t.Fatalf("countNeighbours(%d, %d, %v) = %d, want %d", c.x, c.y, c.toroidal, got, c.want)
		}
	}
}

func TestToroidalLoneCellDies(t *testing.T) {
	w := mustWorld(t, 3, 3)
	seed(t, w, [][2]int{{0, 0}})
	w.Step(true)
	if w.AliveCells() != 0 {
		t.Fatalf("lone cell survived with %d alive", w.AliveCells())
	}
}

func TestToroidalBlinkerAcrossEdge(t *testing.T) {
	// horizontal blinker crossing the right edge of a 5x5 torus
	w := mustWorld(t, 5, 5)
	seed(t, w, [][2]int{{4, 2}, {0, 2}, {1, 2}})

	w.Step(true)
	checkCells(t, w, map[[2]int]bool{
		{0, 1}: true,
		{0, 2}: true,
		{0, 3}: true,
	})

	w.Step(true)
	checkCells(t, w, map[[2]int]bool{
		{4, 2}: true,
		{0, 2}: true,
		{1, 2}: true,
	})
}

func TestStepSwapsBuffers(t *testing.T) {
	w := mustWorld(t, 4, 4)
	scratch := w.next
	w.Step(false)
	if w.current != scratch {
		t.Fatal("step copied instead of swapping the buffers")
	}
	if w.current.Width() != w.next.Width() || w.current.Height() != w.next.Height() {
		t.Fatal("buffers differ in size after step")
	}
}

func TestAdvanceValidation(t *testing.T) {
	w := mustWorld(t, 3, 3)
	seed(t, w, [][2]int{{1, 1}})

	if err := w.Advance(-1, false); !errors.Is(err, grid.ErrInvalidArgument) {
		t.Fatalf("Advance(-1) err = %v, want ErrInvalidArgument", err)
	}
	if w.Generation() != 0 || w.AliveCells() != 1 {
		t.Fatal("failed advance mutated the world")
	}
	if err := w.Advance(0, false); err != nil {
		t.Fatalf("Advance(0): %v", err)
	}
	if w.Generation() != 0 {
		t.Fatal("zero-step advance stepped the world")
	}
}

func TestFromGridCopies(t *testing.T) {
	g, _ := grid.New(3, 3)
	g.Set(1, 1, grid.Alive)
	w := FromGrid(g)

	g.Set(0, 0, grid.Alive)
	if w.AliveCells() != 1 {
		t.Fatal("world aliases the initial grid")
	}
	if c, _ := w.State().Get(1, 1); c != grid.Alive {
		t.Fatal("initial state not copied")
	}
}

func TestResizeKeepsCurrentState(t *testing.T) {
	w := mustWorld(t, 3, 3)
	seed(t, w, [][2]int{{1, 1}, {2, 2}})

	if err := w.Resize(5, 4); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if w.Width() != 5 || w.Height() != 4 {
		t.Fatalf("world is %dx%d, want 5x4", w.Width(), w.Height())
	}
	if w.next.Width() != 5 || w.next.Height() != 4 {
		t.Fatal("scratch buffer size does not match current")
	}
	if c, _ := w.State().Get(1, 1); c != grid.Alive {
		t.Fatal("resize lost the current state")
	}

	if err := w.Resize(-1, 4); !errors.Is(err, grid.ErrInvalidArgument) {
		t.Fatalf("Resize(-1, 4) err = %v, want ErrInvalidArgument", err)
	}
}

func TestToggle(t *testing.T) {
	w := mustWorld(t, 2, 2)
	if err := w.Toggle(1, 1); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if c, _ := w.State().Get(1, 1); c != grid.Alive {
		t.Fatal("toggle did not raise the cell")
	}
	if err := w.Toggle(1, 1); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if c, _ := w.State().Get(1, 1); c != grid.Dead {
		t.Fatal("toggle did not clear the cell")
	}
	if err := w.Toggle(5, 5); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Fatalf("Toggle(5, 5) err = %v, want ErrOutOfBounds", err)
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := mustWorld(t, 8, 8)
	b := mustWorld(t, 8, 8)
	a.Randomize(7)
	b.Randomize(7)
	if !a.State().Equal(b.State()) {
		t.Fatal("same seed produced different boards")
	}
	a.Step(false)
	a.Randomize(7)
	if a.Generation() != 0 {
		t.Fatal("randomize did not reset the generation counter")
	}
}

func TestClear(t *testing.T) {
	w := mustWorld(t, 4, 4)
	w.Randomize(3)
	w.Step(false)
	w.Clear()
	if w.AliveCells() != 0 || w.Generation() != 0 {
		t.Fatalf("clear left %d alive at generation %d", w.AliveCells(), w.Generation())
	}
}
