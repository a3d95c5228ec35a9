package issue

import "time"

// Timer is a cancellable scheduled callback. Stop is idempotent and safe to
// call after the callback has fired.
type Timer interface {
	Stop()
}

// Scheduler schedules callbacks. The production implementation wraps
// time.AfterFunc; tests substitute a manual clock.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type realScheduler struct{}

// NewScheduler returns the wall-clock scheduler.
func NewScheduler() Scheduler { return realScheduler{} }

func (realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return realTimer{time.AfterFunc(d, fn)}
}

type realTimer struct{ t *time.Timer }

func (r realTimer) Stop() { r.t.Stop() }
