// Package debounce delays propagation of rapidly changing values until they
// have settled for a fixed window.
package debounce

import (
	"sync"
	"time"

	"github.com/five82/fuelcalc/internal/clock"
)

// Gate holds a debounced copy of a source value. The latest Set wins; values
// superseded inside the window are never observed.
type Gate[T any] struct {
	mu       sync.Mutex
	clock    clock.Clock
	window   time.Duration
	value    T
	pending  T
	hasNext  bool
	seq      uint64
	timer    clock.Timer
	stopped  bool
	onUpdate func(T)
}

// New returns a gate seeded with initial. onUpdate, when non-nil, runs after
// each debounced update and never while the gate lock is held.
func New[T any](c clock.Clock, window time.Duration, initial T, onUpdate func(T)) *Gate[T] {
	if c == nil {
		c = clock.Real()
	}
	return &Gate[T]{clock: c, window: window, value: initial, onUpdate: onUpdate}
}

// Set schedules v to become the debounced value one window from now,
// replacing any pending value.
func (g *Gate[T]) Set(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stopped {
		return
	}
	if g.timer != nil {
		g.timer.Stop()
	}
	g.seq++
	token := g.seq
	g.pending = v
	g.hasNext = true
	g.timer = g.clock.AfterFunc(g.window, func() { g.fire(token) })
}

func (g *Gate[T]) fire(token uint64) {
	g.mu.Lock()
	if g.stopped || token != g.seq || !g.hasNext {
		g.mu.Unlock()
		return
	}
	v := g.apply()
	g.mu.Unlock()

	if g.onUpdate != nil {
		g.onUpdate(v)
	}
}

// apply promotes the pending value. Caller holds g.mu.
func (g *Gate[T]) apply() T {
	g.value = g.pending
	g.hasNext = false
	g.timer = nil
	var zero T
	g.pending = zero
	return g.value
}

// Value returns the current debounced value.
func (g *Gate[T]) Value() T {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.value
}

// Pending reports whether an update is scheduled.
func (g *Gate[T]) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hasNext
}

// Flush applies any pending value immediately. It reports whether an
// update happened.
func (g *Gate[T]) Flush() bool {
	g.mu.Lock()
	if g.stopped || !g.hasNext {
		g.mu.Unlock()
		return false
	}
	if g.timer != nil {
		g.timer.Stop()
	}
	// Invalidate the in-flight firing in case Stop lost the race.
	g.seq++
	v := g.apply()
	g.mu.Unlock()

	if g.onUpdate != nil {
		g.onUpdate(v)
	}
	return true
}

// Stop cancels any pending update. The gate ignores Set afterwards.
func (g *Gate[T]) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.stopped = true
	g.seq++
	g.hasNext = false
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}
