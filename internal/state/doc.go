// Package state provides the reactive engine behind fuelcalc.
//
// # Overview
//
// The Engine owns the four user inputs (petrol price, mileage, daily
// distance, refill amount) together with every figure derived from them.
// The TUI and CLI read a Snapshot and call back into the engine when the
// user edits something.
//
// # Data Flow
//
//	Set(id, v)
//	    ↓
//	prefs.Cell.Set      (persist immediately, best effort)
//	    ↓
//	debounce.Gate.Set   (price, mileage, distance: 250ms window)
//	    ↓
//	calc.Derive         (metrics)
//	calc.NewMatrix      (only when the settled price changed)
//	    ↓
//	onChange()          → UI re-renders from Snapshot()
//
// The refill amount skips the gate; its metrics are recomputed inside Set.
//
// # Side Channels
//
// Theme selection and notifications run alongside the input pipeline:
//
//   - AdvanceTheme/SelectTheme update the theme.Resolver and persist the
//     selection under the "theme" key
//   - Notify shows one message for three seconds; a newer message restarts
//     the countdown
//   - Share and Export call the export.Exporter and report the outcome
//     through Notify
//
// # Concurrency Model
//
// Timer callbacks can fire on any goroutine. The engine guards its state
// with a single mutex and never holds it while calling onChange or the
// exporter. Gate and notifier callbacks always release their own locks
// before re-entering the engine, so lock order is engine → gate/notifier
// and never the reverse.
//
// Close stops every timer; no onChange call happens after Close returns.
package state
