package universe

import (
	"time"

	"github.com/go-kit/log"
	"github.com/pkg/errors"
)

//Options represents the Universe's configurable options
type Options struct {
	Width        int
	Height       int
	Interval     time.Duration //delay between the generations in the run mode
	MaxSteps     int           //the run loop finishes on this generation, 0 means no limit
	HaltOnStable bool          //the run loop finishes when nothing is alive or nothing changed
	Engine       string
	Workers      int //multithreaded engine only, 0 means runtime.NumCPU()
	Logger       log.Logger
}

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefWidth              = 60
	DefHeight             = 60
)

var DefaultUniverseOptions = Options{
	Width:    DefWidth,
	Height:   DefHeight,
	Interval: DefSimulationInterval,
	Engine:   DefEngine,
}

//Validate checks the options which can't be fixed by defaults
func (o *Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "[Options.Validate] dimension %v x %v", o.Width, o.Height)
	}
	if o.Interval < 0 {
		return errors.Wrapf(ErrInvalidArgument, "[Options.Validate] negative interval %v", o.Interval)
	}
	if o.MaxSteps < 0 {
		return errors.Wrapf(ErrInvalidArgument, "[Options.Validate] negative max steps %v", o.MaxSteps)
	}
	if o.Workers < 0 {
		return errors.Wrapf(ErrInvalidArgument, "[Options.Validate] negative workers %v", o.Workers)
	}
	return nil
}
