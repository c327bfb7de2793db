package universe

import (
	"strings"

	"github.com/pkg/errors"
)

type Cell bool

//Grid is the fixed size field where cells are living
//cells outside the grid don't exist, every in-range coordinate holds exactly one state
type Grid struct {
	width    int
	height   int
	entities [][]Cell
}

//NewGrid allocates the grid with all cells dead
func NewGrid(width int, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "[NewGrid] dimension %v x %v", width, height)
	}
	return createGrid(width, height), nil
}

//createGrid allocates one backing slice and cuts it into rows
func createGrid(width int, height int) *Grid {
	g := Grid{width: width, height: height, entities: make([][]Cell, height)}
	b := make([]Cell, width*height)
	for i := range g.entities {
		start := width * i
		g.entities[i] = b[start : start+width : start+width]
	}
	return &g
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

//Get returns the state of the cell at x, y
func (g *Grid) Get(x int, y int) (bool, error) {
	if !g.inRange(x, y) {
		return false, errors.Wrapf(ErrOutOfRange, "[Grid.Get] (%v, %v) outside %v x %v", x, y, g.width, g.height)
	}
	return bool(g.entities[y][x]), nil
}

//Set overwrites the state of the cell at x, y
func (g *Grid) Set(x int, y int, alive bool) error {
	if !g.inRange(x, y) {
		return errors.Wrapf(ErrOutOfRange, "[Grid.Set] (%v, %v) outside %v x %v", x, y, g.width, g.height)
	}
	g.entities[y][x] = Cell(alive)
	return nil
}

//CountAlive calculates the count of live cells
func (g *Grid) CountAlive() int {
	liveCells := 0
	g.walk(func(_ int, _ int, c Cell) {
		if c {
			liveCells++
		}
	})
	return liveCells
}

//Clear kills all cells
func (g *Grid) Clear() {
	for y := range g.entities {
		clear(g.entities[y])
	}
}

//Clone returns the deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := createGrid(g.width, g.height)
	c.copyFrom(g)
	return c
}

//Equal reports whether both grids have the same shape and the same live cells
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || !g.sameShape(o) {
		return false
	}
	for y := range g.entities {
		for x := range g.entities[y] {
			if g.entities[y][x] != o.entities[y][x] {
				return false
			}
		}
	}
	return true
}

//LiveCells returns [x, y] pairs of the live cells in row-major order
func (g *Grid) LiveCells() [][]int {
	var cells [][]int
	g.walk(func(x int, y int, c Cell) {
		if c {
			cells = append(cells, []int{x, y})
		}
	})
	return cells
}

//String draws the grid with '#' for live and '.' for dead cells, one line per row
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y, row := range g.entities {
		if y != 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			if c {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

func (g *Grid) sameShape(o *Grid) bool {
	return g.width == o.width && g.height == o.height
}

func (g *Grid) inRange(x int, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

//copyFrom copies the state of the same shaped grid
func (g *Grid) copyFrom(src *Grid) {
	for y := range g.entities {
		copy(g.entities[y], src.entities[y])
	}
}

//walk walks the entire grid and calls the cb function for each cell
func (g *Grid) walk(cb func(x int, y int, c Cell)) {
	for y := range g.entities {
		for x := range g.entities[y] {
			cb(x, y, g.entities[y][x])
		}
	}
}
