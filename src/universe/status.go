package universe

import "time"

//The universe running status at the concrete moment
type RunningState int

const (
	RunningStateManual   RunningState = 0x0
	RunningStateRun      RunningState = 0x1
	RunningStateFinished RunningState = 0x2
)

func (r RunningState) String() string {
	switch r {
	case RunningStateManual:
		return "manual"
	case RunningStateRun:
		return "run"
	case RunningStateFinished:
		return "finished"
	}
	return "unknown"
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	Generation    int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration //duration of the last sweep
	Delay         time.Duration
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
//Refresh is called after every change of the universe, it must not call Stop
type Viewer interface {
	Refresh(st Status)
	Register(u Universe)
	Start()
}
