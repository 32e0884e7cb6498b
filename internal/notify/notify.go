// Package notify shows one short-lived status message at a time.
package notify

import (
	"sync"
	"time"

	"github.com/five82/fuelcalc/internal/clock"
)

// DefaultDuration is how long a message stays visible.
const DefaultDuration = 3 * time.Second

// State is the visible notification, if any.
type State struct {
	Message string
	Visible bool
}

// Notifier holds at most one message and clears it after a fixed duration.
// A newer Notify cancels the older expiry and starts a fresh countdown.
type Notifier struct {
	mu       sync.Mutex
	clock    clock.Clock
	duration time.Duration
	state    State
	seq      uint64
	timer    clock.Timer
	stopped  bool
	onChange func(State)
}

// New returns an idle notifier. onChange runs after every transition,
// outside the notifier lock.
func New(c clock.Clock, duration time.Duration, onChange func(State)) *Notifier {
	if c == nil {
		c = clock.Real()
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Notifier{clock: c, duration: duration, onChange: onChange}
}

// Notify shows msg and arms its expiry.
func (n *Notifier) Notify(msg string) {
	n.mu.Lock()
	if n.stopped {
		n.mu.Unlock()
		return
	}
	n.cancelLocked()
	n.seq++
	token := n.seq
	n.state = State{Message: msg, Visible: true}
	n.timer = n.clock.AfterFunc(n.duration, func() { n.expire(token) })
	st := n.state
	n.mu.Unlock()

	n.emit(st)
}

func (n *Notifier) expire(token uint64) {
	n.mu.Lock()
	if n.stopped || token != n.seq {
		n.mu.Unlock()
		return
	}
	n.timer = nil
	n.state = State{}
	n.mu.Unlock()

	n.emit(State{})
}

// Dismiss hides the current message immediately.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	if n.stopped || !n.state.Visible {
		n.mu.Unlock()
		return
	}
	n.cancelLocked()
	n.seq++
	n.state = State{}
	n.mu.Unlock()

	n.emit(State{})
}

// Current returns the notification state.
func (n *Notifier) Current() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Stop cancels the pending expiry. No callbacks run after Stop.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopped = true
	n.seq++
	n.cancelLocked()
}

func (n *Notifier) cancelLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

func (n *Notifier) emit(st State) {
	if n.onChange != nil {
		n.onChange(st)
	}
}
