package universe

import (
	"sort"

	"github.com/pkg/errors"
)

//Engine calculates the next generation of the grid
//the grid is updated as a whole: every cell's new state depends on the previous generation only
type Engine interface {
	Name() string
	Next(g *Grid) (liveCells int, changed bool)
}

const DefEngine = "simple"

var engines = map[string]func(o *Options) Engine{
	"simple":        newSimpleEngine,
	"smallBuff":     newSmallBuffEngine,
	"multithreaded": newMultithreadedEngine,
}

//Engines returns the sorted names of the available engines
func Engines() (names []string) {
	names = make([]string, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	sort.Strings(names)
	return
}

//NewEngine creates the engine configured by o.Engine for the grid of o.Width x o.Height
func NewEngine(o *Options) (Engine, error) {
	name := o.Engine
	if name == "" {
		name = DefEngine
	}
	f, ok := engines[name]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "[NewEngine] unknown engine %q", name)
	}
	return f(o), nil
}
