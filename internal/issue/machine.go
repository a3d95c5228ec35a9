// Package issue simulates the backend job that turns a paid request into a
// viewable report: a small timed state machine standing in for a real
// asynchronous issuance service.
package issue

import (
	"sync"
	"time"
)

// State of one issuance attempt.
type State string

const (
	StateInProgress State = "in_progress"
	StateSlow       State = "slow" // still running, past the slow threshold
	StateDone       State = "done"
	StateFailed     State = "failed"
)

// Terminal reports whether no further transition can occur.
func (s State) Terminal() bool { return s == StateDone || s == StateFailed }

// Event is one observed transition. Gen identifies the attempt that produced
// it; consumers drop events from superseded attempts.
type Event struct {
	State State
	Gen   int
}

// Machine drives one issuance session. Two timers run per attempt: the slow
// timer flips in_progress to slow, the done timer completes the attempt.
// Failure only ever comes from an explicit Fail call, never from a timer.
// Retry starts a new attempt with both timers from zero.
//
// Every scheduled callback checks the attempt generation under the lock, so
// a timer from a cancelled or superseded attempt can never change state or
// emit an event. Close cancels outstanding timers and is idempotent; no
// event is delivered after Close returns a closed machine to rest.
type Machine struct {
	mu     sync.Mutex
	sched  Scheduler
	slowAt time.Duration
	doneAt time.Duration

	state  State
	gen    int
	timers []Timer
	closed bool
	events chan Event
}

// NewMachine creates a machine and starts the first attempt.
func NewMachine(sched Scheduler, slowAfter, doneAfter time.Duration) *Machine {
	m := &Machine{
		sched:  sched,
		slowAt: slowAfter,
		doneAt: doneAfter,
		events: make(chan Event, 8),
	}
	m.mu.Lock()
	m.startAttemptLocked()
	m.mu.Unlock()
	return m
}

// Events delivers transitions as they happen; the channel is closed by
// Close. The channel is buffered; consumers that fall far behind lose the
// oldest pending event, which is acceptable because only the latest state
// matters to the screen.
func (m *Machine) Events() <-chan Event { return m.events }

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Gen returns the current attempt generation, starting at 1.
func (m *Machine) Gen() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gen
}

// Fail moves a non-terminal attempt to failed and cancels its timers.
// Calling Fail on a terminal attempt is a no-op.
func (m *Machine) Fail() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || m.state.Terminal() {
		return
	}
	m.cancelTimersLocked()
	m.setStateLocked(StateFailed)
}

// Complete moves a non-terminal attempt straight to done, as the real
// backend would when it finishes early.
func (m *Machine) Complete() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || m.state.Terminal() {
		return
	}
	m.cancelTimersLocked()
	m.setStateLocked(StateDone)
}

// Retry restarts after a failure: new generation, both timers from zero.
// Only legal from failed.
func (m *Machine) Retry() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || m.state != StateFailed {
		return
	}
	m.startAttemptLocked()
}

// Close cancels all outstanding timers and closes the event channel, so a
// consumer parked on Events is released. After Close no callback fires and
// no event is emitted. Idempotent.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	m.cancelTimersLocked()
	// every sender holds the lock and checks closed first, so closing here
	// cannot race a send
	close(m.events)
}

func (m *Machine) startAttemptLocked() {
	m.gen++
	gen := m.gen
	m.setStateLocked(StateInProgress)
	m.timers = []Timer{
		m.sched.AfterFunc(m.slowAt, func() { m.onSlow(gen) }),
		m.sched.AfterFunc(m.doneAt, func() { m.onDone(gen) }),
	}
}

func (m *Machine) onSlow(gen int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || gen != m.gen || m.state != StateInProgress {
		return
	}
	m.setStateLocked(StateSlow)
}

func (m *Machine) onDone(gen int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || gen != m.gen || m.state.Terminal() {
		return
	}
	m.setStateLocked(StateDone)
}

func (m *Machine) setStateLocked(s State) {
	m.state = s
	ev := Event{State: s, Gen: m.gen}
	select {
	case m.events <- ev:
	default:
		// drop the oldest pending event to make room for the newest
		select {
		case <-m.events:
		default:
		}
		select {
		case m.events <- ev:
		default:
		}
	}
}

func (m *Machine) cancelTimersLocked() {
	for _, t := range m.timers {
		t.Stop()
	}
	m.timers = nil
}
