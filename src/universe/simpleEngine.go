package universe

/*
	Simple engine with two buffers
	All cells state is calculated to the back buffer and then the buffers are swapped
*/
type simpleEngine struct {
	back *Grid
}

func newSimpleEngine(o *Options) Engine {
	return &simpleEngine{back: createGrid(o.Width, o.Height)}
}

func (e *simpleEngine) Name() string {
	return "simple"
}

func (e *simpleEngine) Next(g *Grid) (liveCells int, changed bool) {
	if !e.back.sameShape(g) {
		e.back = createGrid(g.width, g.height)
	}
	liveCells, changed = sweepRows(g, e.back, 0, g.height)
	g.entities, e.back.entities = e.back.entities, g.entities
	return
}
