package universe

/*
	Engine with buffers optimization
	Next uses small buffer to store the current and previous lines only.
	the previous line is copied back to the grid once the line below it is calculated,
	so every neighbours lookup still sees the previous generation
*/
type smallBuffEngine struct {
	tmpBuff [2][]Cell
}

func newSmallBuffEngine(o *Options) Engine {
	return &smallBuffEngine{tmpBuff: [2][]Cell{make([]Cell, o.Width), make([]Cell, o.Width)}}
}

func (e *smallBuffEngine) Name() string {
	return "smallBuff"
}

func (e *smallBuffEngine) Next(g *Grid) (liveCells int, changed bool) {
	if len(e.tmpBuff[0]) != g.width {
		e.tmpBuff = [2][]Cell{make([]Cell, g.width), make([]Cell, g.width)}
	}
	for y := range g.entities {
		for x := range g.entities[y] {
			nextState := NextState(bool(g.entities[y][x]), LiveNeighbours(g, x, y))
			if nextState {
				liveCells++
			}
			changed = changed || nextState != bool(g.entities[y][x])
			e.tmpBuff[1][x] = Cell(nextState)
		}
		if y-1 >= 0 {
			copy(g.entities[y-1], e.tmpBuff[0])
		}
		e.tmpBuff[0], e.tmpBuff[1] = e.tmpBuff[1], e.tmpBuff[0]
	}
	copy(g.entities[g.height-1], e.tmpBuff[0])
	return
}
