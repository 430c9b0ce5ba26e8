package grid

import (
	"errors"
	"testing"
)

// fill sets the listed coordinates alive.
func fill(t *testing.T, g *Grid, coords [][2]int) {
	t.Helper()
	for _, c := range coords {
		if err := g.Set(c[0], c[1], Alive); err != nil {
			t.Fatalf("Set(%d, %d): %v", c[0], c[1], err)
		}
	}
}

func TestCropWindow(t *testing.T) {
	g := mustNew(t, 4, 4)
	fill(t, g, [][2]int{{1, 1}, {2, 2}, {0, 0}, {3, 3}})

	c, err := g.Crop(1, 1, 3, 3)
	if err != nil {
		t.Fatalf("Crop(1,1,3,3): %v", err)
	}
	if c.Width() != 2 || c.Height() != 2 {
		t.Fatalf("crop is %dx%d, want 2x2", c.Width(), c.Height())
	}
	if v, _ := c.Get(0, 0); v != Alive {
		t.Fatal("(1,1) did not land at (0,0)")
	}
	if v, _ := c.Get(1, 1); v != Alive {
		t.Fatal("(2,2) did not land at (1,1)")
	}
	if c.AliveCells() != 2 {
		t.Fatalf("crop has %d alive, want 2", c.AliveCells())
	}
}

func TestCropFullAndEmpty(t *testing.T) {
	g := mustNew(t, 3, 2)
	fill(t, g, [][2]int{{2, 1}})

	full, err := g.Crop(0, 0, 3, 2)
	if err != nil {
		t.Fatalf("full crop: %v", err)
	}
	if !full.Equal(g) {
		t.Fatal("full-extent crop differs from the source")
	}

	empty, err := g.Crop(2, 1, 2, 1)
	if err != nil {
		t.Fatalf("empty crop: %v", err)
	}
	if empty.TotalCells() != 0 {
		t.Fatalf("empty window has %d cells", empty.TotalCells())
	}
}

func TestCropErrors(t *testing.T) {
	g := mustNew(t, 4, 4)
	if _, err := g.Crop(3, 0, 1, 2); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("inverted window err = %v, want ErrInvalidArgument", err)
	}
	if _, err := g.Crop(0, 0, 5, 2); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("x1 past width err = %v, want ErrOutOfBounds", err)
	}
	if _, err := g.Crop(-1, 0, 2, 2); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("negative x0 err = %v, want ErrOutOfBounds", err)
	}
}

func TestMergeOverlay(t *testing.T) {
	target := mustNew(t, 4, 4)
	fill(t, target, [][2]int{{1, 1}, {2, 2}})
	patch := mustNew(t, 2, 2)
	fill(t, patch, [][2]int{{0, 0}})

	// default merge: dead patch cells clear the target
	if err := target.Merge(patch, 1, 1, false); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if v, _ := target.Get(1, 1); v != Alive {
		t.Fatal("alive patch cell not copied")
	}
	if v, _ := target.Get(2, 2); v != Dead {
		t.Fatal("dead patch cell did not clear the target")
	}
}

func TestMergeAliveOnly(t *testing.T) {
	target := mustNew(t, 4, 4)
	fill(t, target, [][2]int{{2, 2}})
	patch := mustNew(t, 2, 2)
	fill(t, patch, [][2]int{{0, 0}})

	if err := target.Merge(patch, 1, 1, true); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if v, _ := target.Get(1, 1); v != Alive {
		t.Fatal("alive patch cell not copied")
	}
	if v, _ := target.Get(2, 2); v != Alive {
		t.Fatal("aliveOnly merge retracted an alive target cell")
	}
}

func TestMergeBounds(t *testing.T) {
	target := mustNew(t, 4, 4)
	patch := mustNew(t, 3, 3)
	fill(t, patch, [][2]int{{0, 0}})

	if err := target.Merge(patch, 2, 2, false); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("overflowing placement err = %v, want ErrInvalidArgument", err)
	}
	if err := target.Merge(patch, -1, 0, false); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("negative placement err = %v, want ErrOutOfBounds", err)
	}
	if target.AliveCells() != 0 {
		t.Fatal("failed merge mutated the target")
	}
}

func TestCropMergeRoundTrip(t *testing.T) {
	src := mustNew(t, 5, 5)
	fill(t, src, [][2]int{{1, 1}, {2, 1}, {3, 2}, {1, 3}})

	region, err := src.Crop(1, 1, 4, 4)
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	dst := src.Clone()
	if err := dst.Merge(region, 1, 1, false); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if !dst.Equal(src) {
		t.Fatalf("crop+merge changed the region:\n%v\nwant:\n%v", dst, src)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	// 2x3 with an L shape
	g := mustNew(t, 2, 3)
	fill(t, g, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 2}})

	r := g.Rotate(1)
	if r.Width() != 3 || r.Height() != 2 {
		t.Fatalf("rotate(1) is %dx%d, want 3x2", r.Width(), r.Height())
	}
	// clockwise: (x,y) -> (height-1-y, x)
	want := map[[2]int]bool{{2, 0}: true, {1, 0}: true, {0, 0}: true, {0, 1}: true}
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			v, _ := r.Get(x, y)
			if (v == Alive) != want[[2]int{x, y}] {
				t.Fatalf("rotated cell (%d,%d) = %v", x, y, v)
			}
		}
	}
}

func TestRotateIdentities(t *testing.T) {
	g := mustNew(t, 3, 2)
	fill(t, g, [][2]int{{0, 0}, {2, 1}, {1, 0}})

	if !g.Rotate(0).Equal(g) || !g.Rotate(4).Equal(g) || !g.Rotate(-4).Equal(g) {
		t.Fatal("full-turn rotation is not the identity")
	}
	for k := -3; k <= 3; k++ {
		if !g.Rotate(k).Equal(g.Rotate(k + 4)) {
			t.Fatalf("rotate(%d) != rotate(%d)", k, k+4)
		}
	}
	quad := g.Rotate(1).Rotate(1).Rotate(1).Rotate(1)
	if !quad.Equal(g) {
		t.Fatal("four quarter turns are not the identity")
	}
	if !g.Rotate(-1).Equal(g.Rotate(3)) {
		t.Fatal("rotate(-1) != rotate(3)")
	}
}

func TestRotateLine(t *testing.T) {
	g := mustNew(t, 1, 3)
	fill(t, g, [][2]int{{0, 0}})
	r := g.Rotate(1)
	if r.Width() != 3 || r.Height() != 1 {
		t.Fatalf("rotated 1x3 is %dx%d, want 3x1", r.Width(), r.Height())
	}
	if v, _ := r.Get(2, 0); v != Alive {
		t.Fatal("top of the column did not rotate to the right end")
	}
}
