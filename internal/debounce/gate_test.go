package debounce

import (
	"testing"
	"time"

	"github.com/five82/fuelcalc/internal/clock"
)

const window = 250 * time.Millisecond

func newTestGate(initial float64) (*Gate[float64], *clock.Fake, *[]float64) {
	fake := clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	var updates []float64
	g := New(fake, window, initial, func(v float64) { updates = append(updates, v) })
	return g, fake, &updates
}

func TestGate_InitialValue(t *testing.T) {
	g, _, _ := newTestGate(105)
	if got := g.Value(); got != 105 {
		t.Fatalf("Value = %v, want 105", got)
	}
	if g.Pending() {
		t.Fatalf("Pending = true on a fresh gate")
	}
}

func TestGate_LatestWins(t *testing.T) {
	g, fake, updates := newTestGate(0)

	// Writes at t, t+50ms, t+100ms; only the last survives at t+350ms.
	g.Set(1)
	fake.Advance(50 * time.Millisecond)
	g.Set(2)
	fake.Advance(50 * time.Millisecond)
	g.Set(3)

	fake.Advance(249 * time.Millisecond)
	if got := g.Value(); got != 0 {
		t.Fatalf("Value at t+349ms = %v, want 0", got)
	}
	if len(*updates) != 0 {
		t.Fatalf("updates at t+349ms = %v, want none", *updates)
	}

	fake.Advance(time.Millisecond)
	if got := g.Value(); got != 3 {
		t.Fatalf("Value at t+350ms = %v, want 3", got)
	}
	if len(*updates) != 1 || (*updates)[0] != 3 {
		t.Fatalf("updates = %v, want [3]", *updates)
	}
	if g.Pending() {
		t.Fatalf("Pending = true after firing")
	}
}

func TestGate_SeparatedWritesBothPropagate(t *testing.T) {
	g, fake, updates := newTestGate(0)

	g.Set(10)
	fake.Advance(window)
	g.Set(20)
	fake.Advance(window)

	if len(*updates) != 2 || (*updates)[0] != 10 || (*updates)[1] != 20 {
		t.Fatalf("updates = %v, want [10 20]", *updates)
	}
}

func TestGate_StopCancelsPending(t *testing.T) {
	g, fake, updates := newTestGate(5)

	g.Set(7)
	g.Stop()
	fake.Advance(time.Second)
	g.Set(9)
	fake.Advance(time.Second)

	if got := g.Value(); got != 5 {
		t.Fatalf("Value after Stop = %v, want 5", got)
	}
	if len(*updates) != 0 {
		t.Fatalf("updates after Stop = %v, want none", *updates)
	}
}

func TestGate_StaleFiringIgnored(t *testing.T) {
	g, _, updates := newTestGate(0)

	g.Set(1)
	stale := g.seq
	g.Set(2)

	// Simulate a callback whose timer Stop lost the race.
	g.fire(stale)
	if got := g.Value(); got != 0 {
		t.Fatalf("Value after stale fire = %v, want 0", got)
	}
	if len(*updates) != 0 {
		t.Fatalf("updates after stale fire = %v, want none", *updates)
	}
}

func TestGate_Flush(t *testing.T) {
	g, fake, updates := newTestGate(0)

	if g.Flush() {
		t.Fatalf("Flush with nothing pending returned true")
	}

	g.Set(42)
	if !g.Flush() {
		t.Fatalf("Flush returned false with a pending value")
	}
	if got := g.Value(); got != 42 {
		t.Fatalf("Value after Flush = %v, want 42", got)
	}

	fake.Advance(time.Second)
	if len(*updates) != 1 {
		t.Fatalf("updates = %v, want exactly one", *updates)
	}
	if fake.Pending() != 0 {
		t.Fatalf("fake.Pending = %d, want 0", fake.Pending())
	}
}

func TestGate_OnUpdateMayReadGate(t *testing.T) {
	fake := clock.NewFake(time.Unix(0, 0))
	var seen string
	var g *Gate[string]
	g = New(fake, window, "", func(v string) {
		// Must not deadlock: callback runs outside the lock.
		seen = g.Value()
	})

	g.Set("ocean")
	fake.Advance(window)
	if seen != "ocean" {
		t.Fatalf("seen = %q, want ocean", seen)
	}
}
