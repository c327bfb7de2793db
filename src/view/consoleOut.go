package view

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/logrusorgru/aurora"

	"simlife/src/universe"
)

//ConsoleOut is the headless viewer, it prints the configuration, the progress and the summary
type ConsoleOut struct {
	w         io.Writer
	au        aurora.Aurora
	every     int
	mu        sync.Mutex
	u         universe.Universe
	startTime time.Time
	last      universe.Status
	done      chan struct{}
	finished  bool
}

//NewConsoleOut creates the viewer writing to w
//the progress is printed every `every` generations
func NewConsoleOut(w io.Writer, colors bool, every int) *ConsoleOut {
	if every <= 0 {
		every = 10
	}
	return &ConsoleOut{w: w, au: aurora.NewAurora(colors), every: every, done: make(chan struct{})}
}

//Done is closed when the universe reports the finished state
func (c *ConsoleOut) Done() <-chan struct{} {
	return c.done
}

func (c *ConsoleOut) Refresh(st universe.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = st
	if c.finished {
		return
	}
	switch st.RunningMode {
	case universe.RunningStateFinished:
		c.summary("Finished:")
		c.finished = true
		close(c.done)
	case universe.RunningStateRun:
		if st.Generation != 0 && st.Generation%c.every == 0 {
			_, _ = fmt.Fprintf(c.w, "  Iterations done: %v, live cells: %v\n", st.Generation, st.LiveCells)
		}
	}
}

//Interrupted prints the summary when the run is stopped before finishing
func (c *ConsoleOut) Interrupted() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.finished {
		c.summary("Interrupted:")
	}
}

func (c *ConsoleOut) Register(u universe.Universe) {
	c.u = u
	o := c.u.Options()
	_, _ = fmt.Fprintln(c.w, c.au.Bold("Running configuration:"))
	c.printHashData(map[string]interface{}{
		"Dimension":      fmt.Sprintf("%v x %v", o.Width, o.Height),
		"Interval":       o.Interval,
		"Max iterations": o.MaxSteps,
		"Engine":         o.Engine,
		"Halt on stable": o.HaltOnStable,
	})
}

func (c *ConsoleOut) Start() {
	c.mu.Lock()
	c.startTime = time.Now()
	c.mu.Unlock()
	_, _ = fmt.Fprintln(c.w, c.au.Green("\nSimulation started..."))
}

//summary prints the last status, c.mu must be held
func (c *ConsoleOut) summary(title string) {
	totalTime := time.Since(c.startTime).Round(time.Millisecond)
	_, _ = fmt.Fprintln(c.w, c.au.Cyan("\n"+title))
	c.printHashData(map[string]interface{}{
		"Last iteration": c.last.Generation,
		"Total time":     totalTime,
		"Live cells":     c.last.LiveCells,
	})
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}
