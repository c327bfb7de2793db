package universe

//NextState applies Conway's rule to the cell state and its live neighbours count
func NextState(alive bool, neighbours int) bool {
	switch {
	case alive && neighbours < 2:
		//underpopulation
		return false
	case alive && neighbours > 3:
		//overpopulation
		return false
	case !alive && neighbours == 3:
		//birth
		return true
	}
	return alive
}

//LiveNeighbours counts live cells around x, y
//positions outside the grid are dead, the topology is not wrapped
func LiveNeighbours(g *Grid, x int, y int) int {
	liveNeighbours := 0
	for dy := -1; dy < 2; dy++ {
		for dx := -1; dx < 2; dx++ {
			//skip my position
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			ny := y + dy
			if !g.inRange(nx, ny) {
				continue
			}
			if g.entities[ny][nx] {
				liveNeighbours++
			}
		}
	}
	return liveNeighbours
}

//ComputeNext returns the next generation of cur, cur is not modified
func ComputeNext(cur *Grid) *Grid {
	next := createGrid(cur.width, cur.height)
	sweepRows(cur, next, 0, cur.height)
	return next
}

//sweepRows calculates rows [y1, y2) of the next generation
//reads only cur and writes only the same rows of next
func sweepRows(cur *Grid, next *Grid, y1 int, y2 int) (liveCells int, changed bool) {
	for y := y1; y < y2; y++ {
		row := cur.entities[y]
		for x := range row {
			nextState := NextState(bool(row[x]), LiveNeighbours(cur, x, y))
			if nextState {
				liveCells++
			}
			changed = changed || nextState != bool(row[x])
			next.entities[y][x] = Cell(nextState)
		}
	}
	return
}
