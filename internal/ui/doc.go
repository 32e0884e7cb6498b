// Package ui provides the terminal calculator for fuelcalc.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program that renders a state.Engine. It holds no
// figures of its own: every frame is drawn from the latest engine Snapshot.
//
// # Package Structure
//
//   - app.go: Model, key handling, input editing and the Run function
//   - render.go: Header, input cards, result cards and the scenario table
//   - help.go: Keyboard shortcut overlay
//   - keys.go: Key bindings
//   - style_helpers.go: Background-safe rendering and the slider track
//
// # Event Flow
//
//  1. Run() builds the Model, which subscribes to engine changes
//  2. Key presses call engine operations and pull a fresh snapshot
//  3. Timer-driven engine changes (debounce, notification expiry) arrive as
//     changedMsg through a one-slot channel read by a tea.Cmd
//  4. Context cancellation cleanly shuts down the UI
//
// # Key Bindings
//
//   - Tab/Shift+Tab, Up/Down: Move between inputs
//   - Left/Right: Step the focused input (Shift for x10)
//   - Digits, '.', Backspace: Edit the focused input
//   - T: Cycle theme
//   - r: Reset inputs
//   - s: Copy summary to the clipboard
//   - x: Export report
//   - Esc: Dismiss message
//   - ?: Toggle help
//   - q or Ctrl+C: Quit
package ui
