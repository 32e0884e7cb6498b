package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/five82/fuelcalc/internal/calc"
	"github.com/five82/fuelcalc/internal/clock"
	"github.com/five82/fuelcalc/internal/debounce"
	"github.com/five82/fuelcalc/internal/export"
	"github.com/five82/fuelcalc/internal/format"
	"github.com/five82/fuelcalc/internal/logging"
	"github.com/five82/fuelcalc/internal/notify"
	"github.com/five82/fuelcalc/internal/prefs"
	"github.com/five82/fuelcalc/internal/theme"
)

// DebounceWindow is the quiet period before an input change is derived.
const DebounceWindow = 250 * time.Millisecond

// Notification messages.
const (
	MsgReset         = "Inputs reset to default values."
	MsgCopied        = "Results copied to clipboard!"
	MsgCopyFailed    = "Failed to copy results."
	MsgShareMissing  = "Sharing is not available."
	MsgExportFailed  = "Failed to export report."
	msgExportedTempl = "Report saved to %s"
)

// Options wires an Engine to its collaborators. Every field is optional.
type Options struct {
	Store     prefs.Store
	Clock     clock.Clock
	Signal    theme.Signal
	Exporter  export.Exporter
	Formatter format.Formatter
	Logger    *logging.Logger
}

// Snapshot is a copy of everything the rendering layer needs.
type Snapshot struct {
	Inputs         calc.Inputs
	Debounced      calc.Inputs
	Metrics        calc.Metrics
	Matrix         calc.Matrix
	Theme          theme.Palette
	ThemeSelection string
	Notification   notify.State
	Pending        bool
}

// Input returns the raw value of field id.
func (s Snapshot) Input(id FieldID) float64 {
	return getInput(s.Inputs, id)
}

// Engine holds the user's inputs and keeps every derived figure current.
type Engine struct {
	mu        sync.Mutex
	clock     clock.Clock
	cells     map[FieldID]*prefs.Cell[float64]
	themeCell *prefs.Cell[string]
	gates     map[FieldID]*debounce.Gate[float64]
	inputs    calc.Inputs
	debounced calc.Inputs
	metrics   calc.Metrics
	matrix    calc.Matrix
	resolver  *theme.Resolver
	notifier  *notify.Notifier
	exporter  export.Exporter
	formatter format.Formatter
	log       *logging.Logger
	onChange  func()
	closed    bool
}

// New loads persisted inputs and derives the initial state. Gates start at
// the loaded values so nothing is pending at startup.
func New(opts Options) *Engine {
	c := opts.Clock
	if c == nil {
		c = clock.Real()
	}

	e := &Engine{
		clock:     c,
		cells:     make(map[FieldID]*prefs.Cell[float64], len(fields)),
		gates:     make(map[FieldID]*debounce.Gate[float64], 3),
		exporter:  opts.Exporter,
		formatter: opts.Formatter,
		log:       opts.Logger,
	}

	onErr := prefs.WithErrorHandler(e.persistFailed)
	for _, f := range fields {
		e.cells[f.ID] = prefs.NewFloatCell(opts.Store, f.Key, f.Default, onErr)
	}
	e.themeCell = prefs.NewStringCell(opts.Store, ThemeKey, theme.Default, onErr)

	e.inputs = calc.Inputs{
		PetrolPrice: e.cells[Price].Get(),
		Mileage:     e.cells[Mileage].Get(),
		Distance:    e.cells[Distance].Get(),
		Amount:      e.cells[Amount].Get(),
	}
	e.debounced = e.inputs

	for _, id := range []FieldID{Price, Mileage, Distance} {
		id := id
		e.gates[id] = debounce.New(c, DebounceWindow, getInput(e.inputs, id), func(v float64) {
			e.settled(id, v)
		})
	}

	e.metrics = calc.Derive(e.debounced)
	e.matrix = calc.NewMatrix(e.debounced.PetrolPrice)
	e.resolver = theme.NewResolver(e.themeCell.Get(), opts.Signal)
	e.notifier = notify.New(c, notify.DefaultDuration, func(notify.State) { e.emit() })

	e.log.WithFields(map[string]any{
		"petrolPrice": e.inputs.PetrolPrice,
		"mileage":     e.inputs.Mileage,
		"distance":    e.inputs.Distance,
		"amount":      e.inputs.Amount,
		"theme":       e.resolver.Selection(),
	}).Debug("engine initialised")
	return e
}

// SetOnChange registers fn to run after every state change, including
// timer firings. fn runs without any engine lock held.
func (e *Engine) SetOnChange(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onChange = fn
}

// Fields returns the input descriptors.
func (e *Engine) Fields() []Field {
	return Fields()
}

// Value returns the live (undebounced) value of id.
func (e *Engine) Value(id FieldID) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return getInput(e.inputs, id)
}

// Set persists v for id and schedules recomputation. The refill amount is
// applied immediately.
func (e *Engine) Set(id FieldID, v float64) error {
	cell, ok := e.cells[id]
	if !ok {
		return fmt.Errorf("unknown field %q", id)
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	cell.Set(v)
	setInput(&e.inputs, id, v)
	gate := e.gates[id]
	if gate == nil {
		setInput(&e.debounced, id, v)
		e.metrics = calc.Derive(e.debounced)
	}
	e.mu.Unlock()

	if gate != nil {
		gate.Set(v)
	}
	e.emit()
	return nil
}

// Step moves id by n widget steps.
func (e *Engine) Step(id FieldID, n int) error {
	f, ok := Lookup(id)
	if !ok {
		return fmt.Errorf("unknown field %q", id)
	}
	return e.Set(id, f.Stepped(e.Value(id), n))
}

// Reset restores every input to its default and announces it.
func (e *Engine) Reset() {
	for _, f := range fields {
		_ = e.Set(f.ID, f.Default)
	}
	e.log.Info("inputs reset to defaults")
	e.Notify(MsgReset)
}

func (e *Engine) settled(id FieldID, v float64) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	setInput(&e.debounced, id, v)
	e.metrics = calc.Derive(e.debounced)
	if id == Price && v != e.matrix.Price {
		e.matrix = calc.NewMatrix(v)
	}
	e.mu.Unlock()

	e.emit()
}

// Flush applies every pending input change now.
func (e *Engine) Flush() {
	for _, id := range []FieldID{Price, Mileage, Distance} {
		e.gates[id].Flush()
	}
}

// AdvanceTheme cycles to the next theme and persists it.
func (e *Engine) AdvanceTheme() string {
	next := e.resolver.Advance()
	e.themeCell.Set(next)
	e.log.WithFields(map[string]any{"theme": next}).Debug("theme advanced")
	e.emit()
	return next
}

// SelectTheme switches to name and persists it.
func (e *Engine) SelectTheme(name string) error {
	if !e.resolver.Select(name) {
		return fmt.Errorf("unknown theme %q", name)
	}
	e.themeCell.Set(name)
	e.emit()
	return nil
}

// RefreshTheme re-reads the OS colour-scheme signal. Listeners are only
// notified when the active palette changes.
func (e *Engine) RefreshTheme() theme.Palette {
	before := e.resolver.Active().Name
	p := e.resolver.Resolve()
	if p.Name != before {
		e.emit()
	}
	return p
}

// Palette returns the active palette.
func (e *Engine) Palette() theme.Palette {
	return e.resolver.Active()
}

// Notify shows msg for three seconds.
func (e *Engine) Notify(msg string) {
	e.notifier.Notify(msg)
}

// DismissNotification hides the current message.
func (e *Engine) DismissNotification() {
	e.notifier.Dismiss()
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	pending := false
	for _, g := range e.gates {
		if g.Pending() {
			pending = true
			break
		}
	}

	active := e.resolver.Active()
	return Snapshot{
		Inputs:         e.inputs,
		Debounced:      e.debounced,
		Metrics:        e.metrics,
		Matrix:         e.matrix.Clone(),
		Theme:          active,
		ThemeSelection: active.Selection,
		Notification:   e.notifier.Current(),
		Pending:        pending,
	}
}

// Summary returns the settled inputs and their metrics.
func (e *Engine) Summary() format.Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return format.NewSummary(e.debounced, e.metrics)
}

// Report returns the summary plus the scenario grid.
func (e *Engine) Report() format.Report {
	e.mu.Lock()
	defer e.mu.Unlock()
	return format.Report{
		GeneratedAt: e.clock.Now(),
		Summary:     format.NewSummary(e.debounced, e.metrics),
		Scenarios:   e.matrix.Clone(),
	}
}

// Share hands the summary to the exporter and reports the outcome as a
// notification.
func (e *Engine) Share(ctx context.Context) error {
	if e.exporter == nil {
		e.Notify(MsgShareMissing)
		return export.ErrUnsupported
	}
	if err := e.exporter.Share(ctx, e.Summary()); err != nil {
		e.log.Error(err, "share failed")
		e.Notify(MsgCopyFailed)
		return err
	}
	e.Notify(MsgCopied)
	return nil
}

// Export writes a report of what is currently on screen.
func (e *Engine) Export(ctx context.Context) (string, error) {
	if e.exporter == nil {
		e.Notify(MsgExportFailed)
		return "", fmt.Errorf("no exporter configured")
	}
	e.Flush()
	path, err := e.exporter.Export(ctx, e.Report())
	if err != nil {
		e.log.Error(err, "export failed")
		e.Notify(MsgExportFailed)
		return "", err
	}
	e.Notify(fmt.Sprintf(msgExportedTempl, path))
	return path, nil
}

// Close stops all timers. The store stays open; closing it is the
// caller's job.
func (e *Engine) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()

	for _, g := range e.gates {
		g.Stop()
	}
	e.notifier.Stop()
}

func (e *Engine) emit() {
	e.mu.Lock()
	fn := e.onChange
	closed := e.closed
	e.mu.Unlock()

	if fn != nil && !closed {
		fn()
	}
}

func (e *Engine) persistFailed(key string, err error) {
	e.log.WithFields(map[string]any{"key": key, "error": err.Error()}).Warn("persist value failed")
}

func getInput(in calc.Inputs, id FieldID) float64 {
	switch id {
	case Price:
		return in.PetrolPrice
	case Mileage:
		return in.Mileage
	case Distance:
		return in.Distance
	case Amount:
		return in.Amount
	}
	return 0
}

func setInput(in *calc.Inputs, id FieldID, v float64) {
	switch id {
	case Price:
		in.PetrolPrice = v
	case Mileage:
		in.Mileage = v
	case Distance:
		in.Distance = v
	case Amount:
		in.Amount = v
	}
}
