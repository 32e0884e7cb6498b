package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/fuelcalc/internal/clock"
	"github.com/five82/fuelcalc/internal/config"
	"github.com/five82/fuelcalc/internal/export"
	"github.com/five82/fuelcalc/internal/format"
	"github.com/five82/fuelcalc/internal/logging"
	"github.com/five82/fuelcalc/internal/prefs"
	"github.com/five82/fuelcalc/internal/state"
	"github.com/five82/fuelcalc/internal/theme"
	"github.com/five82/fuelcalc/internal/ui"
)

// Options configure the fuelcalc application.
type Options struct {
	ConfigPath string
	Verbose    bool
	// LogWriter receives human-readable logs. Nil sends JSON logs to the
	// configured log file, which is what the TUI needs.
	LogWriter io.Writer
	// Clock drives debounce and notification timers. Nil uses the real clock.
	Clock clock.Clock
}

// Env is a fully wired engine and its collaborators.
type Env struct {
	Config    config.Config
	Logger    *logging.Logger
	Store     prefs.Store
	Formatter format.Formatter
	Exporter  *export.Adapter
	Engine    *state.Engine

	closers []io.Closer
}

// Bootstrap loads configuration and builds the engine. Callers must Close
// the returned Env.
func Bootstrap(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	env := &Env{Config: cfg}

	level := cfg.Log.Level
	if opts.Verbose {
		level = "debug"
	}
	logOpts := logging.Options{Level: level, Writer: opts.LogWriter, HumanReadable: opts.LogWriter != nil}
	if opts.LogWriter == nil {
		file, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return nil, err
		}
		env.closers = append(env.closers, file)
		logOpts.Writer = file
	}
	env.Logger, err = logging.New(logOpts)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("init logger: %w", err)
	}

	store, err := prefs.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		env.Logger.WithFields(map[string]any{
			"backend": cfg.Storage.Backend,
			"error":   err.Error(),
		}).Warn("storage unavailable, values will not persist")
		store = prefs.NewMemory()
	}
	env.Store = store
	env.closers = append(env.closers, store)

	env.Formatter = format.New(cfg.Display.Locale, cfg.Display.CurrencySymbol)
	env.Exporter = export.New(export.Options{
		Dir:       cfg.Export.Dir,
		Format:    export.Format(cfg.Export.Format),
		Formatter: env.Formatter,
		Logger:    env.Logger,
	})
	env.Engine = state.New(state.Options{
		Store:     store,
		Clock:     opts.Clock,
		Signal:    Signal(cfg.Display.Appearance),
		Exporter:  env.Exporter,
		Formatter: env.Formatter,
		Logger:    env.Logger,
	})
	return env, nil
}

// Close stops the engine and releases the store and log file.
func (e *Env) Close() error {
	if e.Engine != nil {
		e.Engine.Close()
	}
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}

// detectDark queries the terminal background. It must not run once the TUI
// owns stdin, since the reply would be read as key presses.
var detectDark = lipgloss.HasDarkBackground

// Signal returns the dark-preference signal for an appearance setting.
// "auto" asks the terminal once, now; later theme changes to "system"
// reuse that answer.
func Signal(appearance string) theme.Signal {
	switch appearance {
	case "dark":
		return func() bool { return true }
	case "light":
		return func() bool { return false }
	default:
		dark := detectDark()
		return func() bool { return dark }
	}
}

// Run boots the fuelcalc TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Bootstrap(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	env.Logger.Info("fuelcalc starting")

	return ui.Run(ui.Options{
		Context:   ctx,
		Engine:    env.Engine,
		Formatter: env.Formatter,
		Logger:    env.Logger,
	})
}
