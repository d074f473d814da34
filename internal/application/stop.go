package application

import "sync/atomic"

// StopSignal asks a running session to stop before its next problem. The
// problem in flight is finished first. A nil *StopSignal never fires.
type StopSignal struct {
	stopped atomic.Bool
}

func NewStopSignal() *StopSignal {
	return &StopSignal{}
}

func (s *StopSignal) Stop() {
	if s != nil {
		s.stopped.Store(true)
	}
}

func (s *StopSignal) Stopped() bool {
	return s != nil && s.stopped.Load()
}
