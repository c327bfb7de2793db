package universe

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewGrid_InvalidDimension(t *testing.T) {
	for _, d := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -3}} {
		if _, err := NewGrid(d[0], d[1]); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("NewGrid(%v, %v) err = %v, expected ErrInvalidArgument", d[0], d[1], err)
		}
	}
}

func TestGrid_OutOfRange(t *testing.T) {
	g, err := NewGrid(7, 4)
	if err != nil {
		t.Fatalf("NewGrid: %+v", err)
	}
	probes := [][2]int{
		{-1, 0}, {7, 0}, {8, 0},
		{0, -1}, {0, 4}, {0, 5},
		{-1, -1}, {7, 4},
	}
	for _, p := range probes {
		if _, err := g.Get(p[0], p[1]); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Get(%v, %v) err = %v, expected ErrOutOfRange", p[0], p[1], err)
		}
		if err := g.Set(p[0], p[1], true); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Set(%v, %v) err = %v, expected ErrOutOfRange", p[0], p[1], err)
		}
	}
	if n := g.CountAlive(); n != 0 {
		t.Fatalf("failed Set changed the grid, alive = %v", n)
	}
	for _, p := range [][2]int{{0, 0}, {6, 0}, {0, 3}, {6, 3}} {
		if _, err := g.Get(p[0], p[1]); err != nil {
			t.Fatalf("Get(%v, %v): %+v", p[0], p[1], err)
		}
	}
}

func TestGrid_SetGetCountClear(t *testing.T) {
	g, _ := NewGrid(5, 3)
	if g.Width() != 5 || g.Height() != 3 {
		t.Fatalf("dimension %v x %v, expected 5 x 3", g.Width(), g.Height())
	}
	cells := [][2]int{{0, 0}, {4, 2}, {2, 1}}
	for _, c := range cells {
		if err := g.Set(c[0], c[1], true); err != nil {
			t.Fatalf("Set: %+v", err)
		}
	}
	if n := g.CountAlive(); n != len(cells) {
		t.Fatalf("alive = %v, expected %v", n, len(cells))
	}
	alive, _ := g.Get(2, 1)
	if !alive {
		t.Fatalf("cell (2,1) is dead, expected alive")
	}
	_ = g.Set(2, 1, false)
	if alive, _ = g.Get(2, 1); alive {
		t.Fatalf("cell (2,1) is alive, expected dead")
	}
	g.Clear()
	if n := g.CountAlive(); n != 0 {
		t.Fatalf("alive after Clear = %v", n)
	}
}

func TestGrid_CloneEqualString(t *testing.T) {
	g, _ := NewGrid(3, 2)
	_ = g.Set(1, 0, true)
	_ = g.Set(2, 1, true)

	c := g.Clone()
	if !c.Equal(g) {
		t.Fatalf("clone differs:\n%v\n---\n%v", c, g)
	}
	_ = c.Set(0, 0, true)
	if c.Equal(g) {
		t.Fatalf("clone shares the cells with the original")
	}
	if s := g.String(); s != ".#.\n..#" {
		t.Fatalf("String() = %q", s)
	}
	other, _ := NewGrid(2, 3)
	if g.Equal(other) || g.Equal(nil) {
		t.Fatalf("grids of different shape are equal")
	}
	live := g.LiveCells()
	if len(live) != 2 || live[0][0] != 1 || live[0][1] != 0 || live[1][0] != 2 || live[1][1] != 1 {
		t.Fatalf("LiveCells() = %v", live)
	}
}
