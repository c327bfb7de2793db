package universe

import (
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

//Session is the universe's engine: the grid, the generation counter and the run loop
//implements Universe interface
//all grid access goes through mu, a sweep holds it from the first to the last cell
type Session struct {
	options Options
	engine  Engine
	logger  log.Logger

	mu            sync.Mutex
	grid          *Grid
	generation    int
	mode          RunningState
	delay         time.Duration
	iterationTime time.Duration
	stopCh        chan struct{}
	doneCh        chan struct{}
	views         []Viewer
	templates     map[string]Template
}

//New creates the Session with all cells dead
func New(o *Options) (*Session, error) {
	if o == nil {
		o = &DefaultUniverseOptions
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	e, err := NewEngine(o)
	if err != nil {
		return nil, err
	}
	logger := o.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	s := Session{
		options:   *o,
		engine:    e,
		logger:    log.With(logger, "component", "universe"),
		grid:      createGrid(o.Width, o.Height),
		delay:     o.Interval,
		templates: map[string]Template{},
	}
	s.options.Engine = e.Name()
	for _, tmpl := range Builtins {
		s.templates[tmpl.Name] = tmpl
	}
	return &s, nil
}

func (s *Session) Width() int {
	return s.options.Width
}

func (s *Session) Height() int {
	return s.options.Height
}

//Options returns current universe configuration represented by Options struct
func (s *Session) Options() Options {
	return s.options
}

func (s *Session) Get(x int, y int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Get(x, y)
}

func (s *Session) CountAlive() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.CountAlive()
}

func (s *Session) Generation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

func (s *Session) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode == RunningStateRun
}

func (s *Session) Delay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delay
}

//Status returns current universe status represented by Status struct
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status()
}

//Snapshot returns the copy of the current grid
func (s *Session) Snapshot() *Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone()
}

//RegisterViewer registers the viewer - the universe will call the viewer when the state is changed
func (s *Session) RegisterViewer(v Viewer) {
	s.mu.Lock()
	s.views = append(s.views, v)
	s.mu.Unlock()
	v.Register(s)
}

//Toggle sets the cell at x, y alive or dead, the rule is not applied
func (s *Session) Toggle(x int, y int, alive bool) error {
	s.mu.Lock()
	if err := s.grid.Set(x, y, alive); err != nil {
		s.mu.Unlock()
		return err
	}
	st := s.status()
	s.mu.Unlock()
	s.publish(st)
	return nil
}

//Invert inverses the cell state at x, y
func (s *Session) Invert(x int, y int) error {
	s.mu.Lock()
	alive, err := s.grid.Get(x, y)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	_ = s.grid.Set(x, y, !alive)
	st := s.status()
	s.mu.Unlock()
	s.publish(st)
	return nil
}

//Advance calculates one generation
//returns the copy of the new grid and the generation number
func (s *Session) Advance() (*Grid, int) {
	s.mu.Lock()
	s.advance()
	g, gen := s.grid.Clone(), s.generation
	st := s.status()
	s.mu.Unlock()
	s.publish(st)
	return g, gen
}

//Reset kills all cells and resets the generation counter
//the run loop, if any, keeps running from the empty grid
func (s *Session) Reset() {
	s.mu.Lock()
	s.clear()
	st := s.status()
	s.mu.Unlock()
	_ = level.Info(s.logger).Log("msg", "reset")
	s.publish(st)
}

//SetDelay changes the delay between the generations of the run loop
//the new value is used starting from the next suspension
func (s *Session) SetDelay(d time.Duration) error {
	if d < 0 {
		return errors.Wrapf(ErrInvalidArgument, "[Session.SetDelay] negative delay %v", d)
	}
	s.mu.Lock()
	s.delay = d
	st := s.status()
	s.mu.Unlock()
	_ = level.Info(s.logger).Log("msg", "delay changed", "delay", d)
	s.publish(st)
	return nil
}

//Run starts the universe simulation, returns immediately
//simulation will stop on Stop() calling or when the boundary conditions from Options are reached
func (s *Session) Run(delay time.Duration) error {
	if delay < 0 {
		return errors.Wrapf(ErrInvalidArgument, "[Session.Run] negative delay %v", delay)
	}
	s.mu.Lock()
	if s.mode == RunningStateRun {
		s.mu.Unlock()
		return errors.Wrap(ErrAlreadyRunning, "[Session.Run]")
	}
	s.delay = delay
	s.mode = RunningStateRun
	stop, done := make(chan struct{}), make(chan struct{})
	s.stopCh, s.doneCh = stop, done
	st := s.status()
	s.mu.Unlock()

	_ = level.Info(s.logger).Log("msg", "run started", "delay", delay, "engine", s.engine.Name(), "gen", st.Generation)
	s.publish(st)
	go s.loop(stop, done)
	return nil
}

//Stop requests the run loop to stop and waits for it
//a sweep in progress is completed, the next one is never started
func (s *Session) Stop() {
	s.mu.Lock()
	if s.stopCh != nil {
		close(s.stopCh)
		s.stopCh = nil
	}
	done := s.doneCh
	stopped := s.mode == RunningStateRun
	if stopped {
		s.mode = RunningStateManual
	}
	st := s.status()
	s.mu.Unlock()

	if done != nil {
		<-done
	}
	if stopped {
		_ = level.Info(s.logger).Log("msg", "run stopped", "gen", st.Generation)
		s.publish(st)
	}
}

//loop is the run mode cycle, should start as a goroutine
//the stop request is checked under the lock right before each sweep and during the suspension
func (s *Session) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		s.mu.Lock()
		select {
		case <-stop:
			s.mu.Unlock()
			return
		default:
		}
		finished := s.limitReached()
		if !finished {
			liveCells, changed := s.advance()
			finished = s.limitReached() || (s.options.HaltOnStable && (liveCells == 0 || !changed))
		}
		if finished {
			s.mode = RunningStateFinished
		}
		delay := s.delay
		st := s.status()
		s.mu.Unlock()

		s.publish(st)
		if finished {
			_ = level.Info(s.logger).Log("msg", "run finished", "gen", st.Generation, "live", st.LiveCells)
			return
		}

		t := time.NewTimer(delay)
		select {
		case <-stop:
			t.Stop()
			return
		case <-t.C:
		}
	}
}

//limitReached reports whether the generation reached MaxSteps, s.mu must be held
func (s *Session) limitReached() bool {
	return s.options.MaxSteps > 0 && s.generation >= s.options.MaxSteps
}

//advance does the new one state calculation for entire universe, s.mu must be held
func (s *Session) advance() (liveCells int, changed bool) {
	start := time.Now()
	liveCells, changed = s.engine.Next(s.grid)
	s.iterationTime = time.Since(start)
	s.generation++
	_ = level.Debug(s.logger).Log("msg", "generation", "gen", s.generation, "live", liveCells, "took", s.iterationTime)
	return
}

//clear kills all cells and resets the counters, s.mu must be held
func (s *Session) clear() {
	s.grid.Clear()
	s.generation = 0
	s.iterationTime = 0
	if s.mode == RunningStateFinished {
		s.mode = RunningStateManual
	}
}

//status builds the Status, s.mu must be held
func (s *Session) status() Status {
	return Status{
		Generation:    s.generation,
		RunningMode:   s.mode,
		LiveCells:     s.grid.CountAlive(),
		IterationTime: s.iterationTime,
		Delay:         s.delay,
	}
}

//publish calls Refresh for all registered views
func (s *Session) publish(st Status) {
	s.mu.Lock()
	views := s.views
	s.mu.Unlock()
	for _, v := range views {
		v.Refresh(st)
	}
}
