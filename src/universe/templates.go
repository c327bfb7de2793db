package universe

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/pkg/errors"
)

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [x,y] coordinates relative to the template origin
}

//Builtins are the templates every Session knows
var Builtins = []Template{
	{"block", "still life, 2x2 square", [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	{"blinker", "oscillator with period 2", [][]int{{0, 0}, {1, 0}, {2, 0}}},
	{"toad", "oscillator with period 2", [][]int{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}}},
	{"beacon", "oscillator with period 2", [][]int{{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}}},
	{"glider", "spaceship moving to the bottom right", [][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}},
	{"sample", "the test sample with 3 stable patterns", [][]int{
		{1, 1}, {1, 2},
		{2, 1}, {2, 2},
		{3, 3},
		{4, 2},
		{4, 3},
		{5, 3},
	}},
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by call SettleTemplate
func (s *Session) AddTemplate(tmpl Template) {
	s.mu.Lock()
	s.templates[tmpl.Name] = tmpl
	s.mu.Unlock()
}

//Templates returns the known templates sorted by name
func (s *Session) Templates() []Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	tt := make([]Template, 0, len(s.templates))
	for _, tmpl := range s.templates {
		tt = append(tt, tmpl)
	}
	sort.Slice(tt, func(i, j int) bool { return tt[i].Name < tt[j].Name })
	return tt
}

//SettleTemplate populates the universe with the seeding template placed at x, y
//nothing is changed if any cell of the template falls outside the grid
func (s *Session) SettleTemplate(name string, x int, y int) error {
	s.mu.Lock()
	tmpl, ok := s.templates[name]
	s.mu.Unlock()
	if !ok {
		return errors.Wrapf(ErrUnknownTemplate, "[Session.SettleTemplate] %q", name)
	}
	vc := make([][]int, 0, len(tmpl.Coordinates))
	for _, v := range tmpl.Coordinates {
		if len(v) != 2 {
			return errors.Wrapf(ErrInvalidArgument, "[Session.SettleTemplate] %q has malformed coordinate %v", name, v)
		}
		vc = append(vc, []int{x + v[0], y + v[1]})
	}
	return s.Settle(vc)
}

//Settle makes alive the cells at [x, y] coordinates
//nothing is changed if any coordinate is malformed or outside the grid
func (s *Session) Settle(vc [][]int) error {
	s.mu.Lock()
	for _, v := range vc {
		if len(v) != 2 {
			s.mu.Unlock()
			return errors.Wrapf(ErrInvalidArgument, "[Session.Settle] malformed coordinate %v", v)
		}
		if !s.grid.inRange(v[0], v[1]) {
			s.mu.Unlock()
			return errors.Wrapf(ErrOutOfRange, "[Session.Settle] (%v, %v) outside %v x %v", v[0], v[1], s.grid.width, s.grid.height)
		}
	}
	for _, v := range vc {
		s.grid.entities[v[1]][v[0]] = true
	}
	st := s.status()
	s.mu.Unlock()
	s.publish(st)
	return nil
}

//SettleRandom clears the universe and populates it with random data
//each cell is alive with the given probability, the same seed gives the same grid
func (s *Session) SettleRandom(seed int64, density float64) error {
	if math.IsNaN(density) || density < 0 || density > 1 {
		return errors.Wrapf(ErrInvalidArgument, "[Session.SettleRandom] density %v outside [0, 1]", density)
	}
	r := rand.New(rand.NewPCG(uint64(seed), 0))
	s.mu.Lock()
	s.clear()
	for y := range s.grid.entities {
		for x := range s.grid.entities[y] {
			s.grid.entities[y][x] = Cell(r.Float64() < density)
		}
	}
	st := s.status()
	s.mu.Unlock()
	s.publish(st)
	return nil
}
