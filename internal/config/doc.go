// Package config loads fuelcalc's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/fuelcalc/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. FUELCALC_* environment variables override file values
//  5. Blank fields are filled with defaults, paths are tilde-expanded
//  6. The result is validated; an invalid value is an error
//
// # Default Values
//
//   - Storage: file backend at ~/.local/share/fuelcalc/state.toml
//   - Log: info level, ~/.local/state/fuelcalc/fuelcalc.log
//   - Display: auto appearance, en-IN locale, ₹ symbol
//   - Export: txt reports in the working directory
//
// # TOML Format
//
//	[storage]
//	backend = "sqlite"          # file | sqlite | memory
//	path = "~/fuel/state.db"
//
//	[log]
//	level = "debug"             # debug | info | warn | error
//	file = "~/.local/state/fuelcalc/fuelcalc.log"
//
//	[display]
//	appearance = "dark"         # auto | light | dark
//	locale = "en-IN"
//	currency_symbol = "₹"
//
//	[export]
//	dir = "~/Documents"
//	format = "json"             # txt | yaml | json
//
// # Error Handling
//
// A missing file yields defaults. An unreadable file, invalid TOML or a
// value outside its allowed set is returned as an error so the CLI can
// report it instead of silently running with surprising settings.
package config
