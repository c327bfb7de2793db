package universe

import "time"

//Universe is the surface used by the presentation layer
type Universe interface {
	Width() int
	Height() int
	Get(x int, y int) (bool, error)
	CountAlive() int
	Generation() int
	IsRunning() bool
	Delay() time.Duration
	Status() Status
	Options() Options
	Snapshot() *Grid

	Toggle(x int, y int, alive bool) error
	Invert(x int, y int) error
	Advance() (*Grid, int)
	Run(delay time.Duration) error
	Stop()
	SetDelay(d time.Duration) error
	Reset()

	AddTemplate(tmpl Template)
	Templates() []Template
	SettleTemplate(name string, x int, y int) error
	Settle(vc [][]int) error
	SettleRandom(seed int64, density float64) error
	RegisterViewer(v Viewer)
}
