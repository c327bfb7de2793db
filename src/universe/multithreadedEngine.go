package universe

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

/*
	Engine with multithreaded computation algorithm
	the field is split into the row bands each of which is computed by individual goroutine
*/

const (
	DefMinRowsPerWorker = 3 //minimum rows for one worker
)

type multithreadedEngine struct {
	workers   int
	back      *Grid
	workAreas []workArea
}

//workArea describes the rows [y1, y2) calculated by one worker
type workArea struct {
	y1        int
	y2        int
	liveCells int
	changed   bool
}

func newMultithreadedEngine(o *Options) Engine {
	workers := o.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	e := multithreadedEngine{workers: workers}
	e.resize(o.Width, o.Height)
	return &e
}

//resize allocates the back buffer and splits the rows between the workers
func (e *multithreadedEngine) resize(width int, height int) {
	linesPerWorker := height / e.workers
	if linesPerWorker < DefMinRowsPerWorker {
		linesPerWorker = DefMinRowsPerWorker
	} else if linesPerWorker*e.workers < height {
		linesPerWorker++
	}
	e.back = createGrid(width, height)
	e.workAreas = e.workAreas[:0]
	for y1 := 0; y1 < height; y1 += linesPerWorker {
		e.workAreas = append(e.workAreas, workArea{y1: y1, y2: min(y1+linesPerWorker, height)})
	}
}

func (e *multithreadedEngine) Name() string {
	return "multithreaded"
}

//Next starts goroutines, waits for all of them and swaps the buffers
func (e *multithreadedEngine) Next(g *Grid) (liveCells int, changed bool) {
	if !e.back.sameShape(g) {
		e.resize(g.width, g.height)
	}
	var eg errgroup.Group
	for i := range e.workAreas {
		wa := &e.workAreas[i]
		eg.Go(func() error {
			wa.liveCells, wa.changed = sweepRows(g, e.back, wa.y1, wa.y2)
			return nil
		})
	}
	//workers never fail
	_ = eg.Wait()
	for _, wa := range e.workAreas {
		liveCells += wa.liveCells
		changed = changed || wa.changed
	}
	g.entities, e.back.entities = e.back.entities, g.entities
	return
}
