package universe

import "github.com/pkg/errors"

var (
	//ErrOutOfRange is returned when a coordinate lies outside the grid
	ErrOutOfRange = errors.New("coordinate out of range")
	//ErrInvalidArgument is returned for bad dimensions, delays, densities and engine names
	ErrInvalidArgument = errors.New("invalid argument")
	//ErrAlreadyRunning is returned by Run when the loop is active
	ErrAlreadyRunning = errors.New("universe is already running")
	//ErrUnknownTemplate is returned by SettleTemplate for a name which was never added
	ErrUnknownTemplate = errors.New("unknown template")
)
