package universe

import (
	"testing"
)

var (
	testTemplate = Template{"ts1", "", [][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}}}
)

const (
	width  = 200
	height = 200
)

//finishWaiter signals when the run loop reports the Finished state
type finishWaiter chan struct{}

func (f finishWaiter) Refresh(st Status) {
	if st.RunningMode == RunningStateFinished {
		f <- struct{}{}
	}
}

func (f finishWaiter) Register(Universe) {}

func (f finishWaiter) Start() {}

func newUniverseOptions(engine string) *Options {
	o := DefaultUniverseOptions
	o.Interval = 0
	o.Width = width
	o.Height = height
	o.Engine = engine
	o.MaxSteps = 100
	return &o
}

func newSession(tb testing.TB, o *Options) *Session {
	tb.Helper()
	s, err := New(o)
	if err != nil {
		tb.Fatalf("New: %+v", err)
	}
	return s
}

func universeStep(u Universe, b *testing.B) {
	u.AddTemplate(testTemplate)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		u.Reset()
		if err := u.SettleTemplate("ts1", 0, 0); err != nil {
			b.Fatalf("SettleTemplate: %+v", err)
		}
		b.StartTimer()
		u.Advance()
	}
}

func universeRun(u Universe, b *testing.B) {
	u.AddTemplate(testTemplate)
	done := make(finishWaiter, 1)
	u.RegisterViewer(done)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		u.Reset()
		if err := u.SettleTemplate("ts1", 0, 0); err != nil {
			b.Fatalf("SettleTemplate: %+v", err)
		}
		b.StartTimer()
		if err := u.Run(0); err != nil {
			b.Fatalf("Run: %+v", err)
		}
		<-done
	}
	u.Stop()
}

func Benchmark_Step(b *testing.B) {
	for _, e := range Engines() {
		b.Run(e, func(b *testing.B) {
			universeStep(newSession(b, newUniverseOptions(e)), b)
		})
	}
}

func Benchmark_Universe(b *testing.B) {
	for _, e := range Engines() {
		b.Run(e, func(b *testing.B) {
			universeRun(newSession(b, newUniverseOptions(e)), b)
		})
	}
}
