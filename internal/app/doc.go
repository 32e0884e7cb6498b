// Package app is the composition root for fuelcalc.
//
// Bootstrap loads configuration, opens the log and the value store, and
// builds a state.Engine with its exporter and formatter. Run hands the
// engine to the TUI.
//
// The terminal background is queried once during Bootstrap, before the TUI
// takes over stdin. "system" resolves against that answer at start-up and
// whenever the theme selection changes.
//
//	Run()
//	 ├─> config.Load()         Read ~/.config/fuelcalc/config.toml
//	 ├─> logging.New()         JSON log file (TUI) or stderr (CLI)
//	 ├─> prefs.Open()          file, sqlite or memory store
//	 ├─> state.New()           Engine with exporter and formatter
//	 └─> ui.Run()              Start TUI (blocks)
//
// A store that cannot be opened is replaced by an in-memory one with a
// warning; the session works but nothing persists.
package app
