package state

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/five82/fuelcalc/internal/clock"
	"github.com/five82/fuelcalc/internal/format"
	"github.com/five82/fuelcalc/internal/prefs"
	"github.com/five82/fuelcalc/internal/theme"
)

type fakeExporter struct {
	shareErr  error
	exportErr error
	shared    []format.Summary
	reports   []format.Report
}

func (f *fakeExporter) Share(ctx context.Context, s format.Summary) error {
	if f.shareErr != nil {
		return f.shareErr
	}
	f.shared = append(f.shared, s)
	return nil
}

func (f *fakeExporter) Export(ctx context.Context, r format.Report) (string, error) {
	if f.exportErr != nil {
		return "", f.exportErr
	}
	f.reports = append(f.reports, r)
	return "/tmp/fuel-report.txt", nil
}

type harness struct {
	engine   *Engine
	clock    *clock.Fake
	store    *prefs.Memory
	exporter *fakeExporter
	changes  *atomic.Int32
}

func newHarness(t *testing.T, store *prefs.Memory) harness {
	t.Helper()
	if store == nil {
		store = prefs.NewMemory()
	}
	fake := clock.NewFake(time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC))
	exp := &fakeExporter{}
	e := New(Options{Store: store, Clock: fake, Exporter: exp, Formatter: format.Default()})
	var changes atomic.Int32
	e.SetOnChange(func() { changes.Add(1) })
	t.Cleanup(e.Close)
	return harness{engine: e, clock: fake, store: store, exporter: exp, changes: &changes}
}

func TestNew_Defaults(t *testing.T) {
	h := newHarness(t, nil)
	snap := h.engine.Snapshot()

	if snap.Inputs.PetrolPrice != 105 || snap.Inputs.Mileage != 50 || snap.Inputs.Distance != 100 || snap.Inputs.Amount != 500 {
		t.Fatalf("Inputs = %+v, want defaults", snap.Inputs)
	}
	if snap.Debounced != snap.Inputs {
		t.Fatalf("Debounced = %+v, want seeded from inputs", snap.Debounced)
	}
	if snap.Pending {
		t.Fatalf("Pending = true at startup")
	}
	if snap.Metrics.DailyCost != 210 {
		t.Fatalf("DailyCost = %v, want 210", snap.Metrics.DailyCost)
	}
	if snap.ThemeSelection != theme.Default {
		t.Fatalf("ThemeSelection = %q, want default", snap.ThemeSelection)
	}
	if snap.Matrix.Price != 105 {
		t.Fatalf("Matrix.Price = %v, want 105", snap.Matrix.Price)
	}
}

func TestNew_LoadsPersistedValues(t *testing.T) {
	store := prefs.NewMemory()
	_ = store.Set("petrolPrice", "100")
	_ = store.Set("mileage", "50")
	_ = store.Set("distance", "100")
	_ = store.Set("amount", "garbage")
	_ = store.Set("theme", "forest")

	h := newHarness(t, store)
	snap := h.engine.Snapshot()

	if snap.Metrics.CostPerDistance != 2 || snap.Metrics.DailyCost != 200 || snap.Metrics.MonthlyCost != 6000 {
		t.Fatalf("Metrics = %+v, want 2/200/6000", snap.Metrics)
	}
	if snap.Inputs.Amount != DefaultAmount {
		t.Fatalf("Amount = %v, want default for corrupt value", snap.Inputs.Amount)
	}
	if snap.ThemeSelection != theme.Forest {
		t.Fatalf("ThemeSelection = %q, want forest", snap.ThemeSelection)
	}
}

func TestSet_DebouncesDerivation(t *testing.T) {
	h := newHarness(t, nil)
	e := h.engine

	_ = e.Set(Mileage, 40)
	h.clock.Advance(50 * time.Millisecond)
	_ = e.Set(Mileage, 45)
	h.clock.Advance(50 * time.Millisecond)
	_ = e.Set(Mileage, 60)

	if raw, _ := h.store.Get("mileage"); raw != "60" {
		t.Fatalf("persisted mileage = %q, want 60 immediately", raw)
	}
	if got := e.Value(Mileage); got != 60 {
		t.Fatalf("Value = %v, want 60", got)
	}

	h.clock.Advance(249 * time.Millisecond)
	snap := e.Snapshot()
	if snap.Debounced.Mileage != 50 {
		t.Fatalf("Debounced.Mileage before window = %v, want 50", snap.Debounced.Mileage)
	}
	if !snap.Pending {
		t.Fatalf("Pending = false inside window")
	}

	h.clock.Advance(time.Millisecond)
	snap = e.Snapshot()
	if snap.Debounced.Mileage != 60 {
		t.Fatalf("Debounced.Mileage after window = %v, want 60", snap.Debounced.Mileage)
	}
	if snap.Metrics.CostPerDistance != 105.0/60 {
		t.Fatalf("CostPerDistance = %v, want %v", snap.Metrics.CostPerDistance, 105.0/60)
	}
	if snap.Pending {
		t.Fatalf("Pending = true after settling")
	}
}

func TestSet_AmountIsImmediate(t *testing.T) {
	h := newHarness(t, nil)

	_ = h.engine.Set(Amount, 1050)
	snap := h.engine.Snapshot()
	if snap.Debounced.Amount != 1050 {
		t.Fatalf("Debounced.Amount = %v, want 1050", snap.Debounced.Amount)
	}
	if snap.Metrics.LitresForAmount != 10 {
		t.Fatalf("LitresForAmount = %v, want 10", snap.Metrics.LitresForAmount)
	}
}

func TestSet_OutOfBoundsAccepted(t *testing.T) {
	h := newHarness(t, nil)

	_ = h.engine.Set(Distance, 10000)
	h.clock.Advance(DebounceWindow)
	if got := h.engine.Snapshot().Debounced.Distance; got != 10000 {
		t.Fatalf("Distance = %v, want 10000", got)
	}
}

func TestSet_UnknownField(t *testing.T) {
	h := newHarness(t, nil)
	if err := h.engine.Set("speed", 1); err == nil {
		t.Fatalf("Set(unknown) returned nil error")
	}
}

func TestMatrix_OnlyPriceRebuilds(t *testing.T) {
	h := newHarness(t, nil)
	e := h.engine

	_ = e.Set(Mileage, 70)
	_ = e.Set(Distance, 20)
	h.clock.Advance(DebounceWindow)
	if got := e.Snapshot().Matrix.Price; got != 105 {
		t.Fatalf("Matrix.Price = %v, want 105", got)
	}

	_ = e.Set(Price, 100)
	h.clock.Advance(DebounceWindow)
	m := e.Snapshot().Matrix
	cell, ok := m.At(50, 100)
	if !ok || !cell.OK || cell.Cost != 200 {
		t.Fatalf("At(50, 100) = %+v, %v; want 200", cell, ok)
	}
}

func TestStep(t *testing.T) {
	h := newHarness(t, nil)
	e := h.engine

	_ = e.Step(Price, 1)
	if got := e.Value(Price); got != 105.01 {
		t.Fatalf("price after +1 step = %v, want 105.01", got)
	}
	_ = e.Step(Price, -10)
	if got := e.Value(Price); got != 104.91 {
		t.Fatalf("price after -10 steps = %v, want 104.91", got)
	}
	_ = e.Step(Amount, 2)
	if got := e.Value(Amount); got != 600 {
		t.Fatalf("amount after +2 steps = %v, want 600", got)
	}
}

func TestReset(t *testing.T) {
	h := newHarness(t, nil)
	e := h.engine

	_ = e.Set(Price, 90)
	_ = e.Set(Amount, 50)
	h.clock.Advance(DebounceWindow)
	e.Reset()

	snap := e.Snapshot()
	if snap.Inputs.PetrolPrice != DefaultPrice || snap.Inputs.Amount != DefaultAmount {
		t.Fatalf("Inputs after reset = %+v", snap.Inputs)
	}
	if snap.Notification.Message != MsgReset || !snap.Notification.Visible {
		t.Fatalf("Notification = %+v, want reset message", snap.Notification)
	}
	if raw, _ := h.store.Get("petrolPrice"); raw != "105" {
		t.Fatalf("persisted price = %q, want 105", raw)
	}

	h.clock.Advance(notifyDuration)
	if e.Snapshot().Notification.Visible {
		t.Fatalf("reset notification still visible after 3s")
	}
}

const notifyDuration = 3 * time.Second

func TestAdvanceTheme_CyclesAndPersists(t *testing.T) {
	h := newHarness(t, nil)
	e := h.engine

	if got := e.AdvanceTheme(); got != theme.Ocean {
		t.Fatalf("AdvanceTheme = %q, want ocean", got)
	}
	if raw, _ := h.store.Get(ThemeKey); raw != theme.Ocean {
		t.Fatalf("persisted theme = %q, want ocean", raw)
	}
	for i := 1; i < len(theme.Names()); i++ {
		e.AdvanceTheme()
	}
	if got := e.Snapshot().ThemeSelection; got != theme.Default {
		t.Fatalf("after %d advances = %q, want default", len(theme.Names()), got)
	}
	if raw, _ := h.store.Get(ThemeKey); raw != theme.Default {
		t.Fatalf("persisted theme after full cycle = %q, want default", raw)
	}
}

func TestSelectTheme(t *testing.T) {
	h := newHarness(t, nil)
	if err := h.engine.SelectTheme("neon"); err == nil {
		t.Fatalf("SelectTheme(neon) returned nil error")
	}
	if err := h.engine.SelectTheme(theme.Dark); err != nil {
		t.Fatalf("SelectTheme(dark) returned error: %v", err)
	}
	if !h.engine.Snapshot().Theme.IsDark {
		t.Fatalf("dark theme not applied")
	}
}

func TestRefreshTheme_FollowsSignal(t *testing.T) {
	dark := false
	store := prefs.NewMemory()
	_ = store.Set(ThemeKey, theme.System)
	e := New(Options{Store: store, Clock: clock.NewFake(time.Unix(0, 0)), Signal: func() bool { return dark }})
	defer e.Close()

	if e.Palette().IsDark {
		t.Fatalf("system resolved dark with light signal")
	}
	dark = true
	if p := e.RefreshTheme(); !p.IsDark || p.Name != theme.Dark {
		t.Fatalf("RefreshTheme = %q (dark=%v), want dark", p.Name, p.IsDark)
	}
}

func TestShare(t *testing.T) {
	h := newHarness(t, nil)

	if err := h.engine.Share(context.Background()); err != nil {
		t.Fatalf("Share returned error: %v", err)
	}
	if len(h.exporter.shared) != 1 || h.exporter.shared[0].DerivedMetrics.DailyCost != 210 {
		t.Fatalf("shared = %+v", h.exporter.shared)
	}
	if got := h.engine.Snapshot().Notification.Message; got != MsgCopied {
		t.Fatalf("Notification = %q, want %q", got, MsgCopied)
	}

	h.exporter.shareErr = errors.New("denied")
	if err := h.engine.Share(context.Background()); err == nil {
		t.Fatalf("Share returned nil error on failure")
	}
	if got := h.engine.Snapshot().Notification.Message; got != MsgCopyFailed {
		t.Fatalf("Notification = %q, want %q", got, MsgCopyFailed)
	}
}

func TestShare_NoExporter(t *testing.T) {
	e := New(Options{Clock: clock.NewFake(time.Unix(0, 0))})
	defer e.Close()

	if err := e.Share(context.Background()); err == nil {
		t.Fatalf("Share without exporter returned nil error")
	}
	if got := e.Snapshot().Notification.Message; got != MsgShareMissing {
		t.Fatalf("Notification = %q, want %q", got, MsgShareMissing)
	}
}

func TestExport_FlushesPendingInputs(t *testing.T) {
	h := newHarness(t, nil)
	e := h.engine

	_ = e.Set(Price, 100)
	path, err := e.Export(context.Background())
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if len(h.exporter.reports) != 1 {
		t.Fatalf("reports = %d, want 1", len(h.exporter.reports))
	}
	r := h.exporter.reports[0]
	if r.Summary.Inputs.PetrolPrice != 100 || r.Scenarios.Price != 100 {
		t.Fatalf("report price = %v / %v, want flushed 100", r.Summary.Inputs.PetrolPrice, r.Scenarios.Price)
	}
	if !r.GeneratedAt.Equal(h.clock.Now()) {
		t.Fatalf("GeneratedAt = %v, want clock now", r.GeneratedAt)
	}
	if got := e.Snapshot().Notification.Message; !strings.Contains(got, path) {
		t.Fatalf("Notification = %q, want path %q", got, path)
	}

	h.exporter.exportErr = errors.New("read-only")
	if _, err := e.Export(context.Background()); err == nil {
		t.Fatalf("Export returned nil error on failure")
	}
	if got := e.Snapshot().Notification.Message; got != MsgExportFailed {
		t.Fatalf("Notification = %q, want %q", got, MsgExportFailed)
	}
}

func TestClose_NoLateUpdates(t *testing.T) {
	h := newHarness(t, nil)
	e := h.engine

	_ = e.Set(Price, 90)
	e.Notify("bye")
	before := h.changes.Load()
	e.Close()
	h.clock.Advance(10 * time.Second)

	if got := h.changes.Load(); got != before {
		t.Fatalf("onChange called %d times after Close", got-before)
	}
	if got := e.Snapshot().Debounced.PetrolPrice; got != DefaultPrice {
		t.Fatalf("Debounced price = %v after Close, want %v", got, DefaultPrice)
	}
}

func TestOnChange_CalledForTimerFirings(t *testing.T) {
	h := newHarness(t, nil)

	_ = h.engine.Set(Distance, 120)
	before := h.changes.Load()
	h.clock.Advance(DebounceWindow)
	if h.changes.Load() <= before {
		t.Fatalf("onChange not called for debounce firing")
	}
}

func TestOnChange_MayReadSnapshot(t *testing.T) {
	fake := clock.NewFake(time.Unix(0, 0))
	e := New(Options{Clock: fake})
	defer e.Close()

	var daily float64
	e.SetOnChange(func() { daily = e.Snapshot().Metrics.DailyCost })
	_ = e.Set(Distance, 200)
	fake.Advance(DebounceWindow)

	if daily != 420 {
		t.Fatalf("daily seen in onChange = %v, want 420", daily)
	}
}

func TestParseField(t *testing.T) {
	if id, err := ParseField("price"); err != nil || id != Price {
		t.Fatalf("ParseField(price) = %q, %v", id, err)
	}
	if _, err := ParseField("speed"); err == nil {
		t.Fatalf("ParseField(speed) returned nil error")
	}
}

func TestSnapshot_PaletteIsACopy(t *testing.T) {
	h := newHarness(t, nil)
	want := h.engine.Palette().Color(theme.Primary)

	snap := h.engine.Snapshot()
	snap.Theme.Colors[theme.Primary] = "#000000"

	if got := h.engine.Snapshot().Theme.Color(theme.Primary); got != want {
		t.Fatalf("Primary = %q after mutating a snapshot, want %q", got, want)
	}
}
