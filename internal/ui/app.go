package ui

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/fuelcalc/internal/format"
	"github.com/five82/fuelcalc/internal/logging"
	"github.com/five82/fuelcalc/internal/state"
	"github.com/five82/fuelcalc/internal/theme"
)

// Engine is the part of *state.Engine the UI drives.
type Engine interface {
	Fields() []state.Field
	Snapshot() state.Snapshot
	Set(id state.FieldID, v float64) error
	Step(id state.FieldID, n int) error
	Reset()
	AdvanceTheme() string
	DismissNotification()
	Share(ctx context.Context) error
	Export(ctx context.Context) (string, error)
	SetOnChange(fn func())
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Engine    Engine
	Formatter format.Formatter
	Logger    *logging.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	engine    Engine
	formatter format.Formatter
	log       *logging.Logger
	changes   chan struct{}

	// UI state
	keys        keyMap
	help        help.Model
	styles      theme.Styles
	paletteName string
	width       int
	height      int
	ready       bool
	showHelp    bool
	title       string

	// Inputs
	fields []state.Field
	inputs []textinput.Model
	focus  int

	// Data state
	snapshot state.Snapshot
}

// New creates a new Bubble Tea model and subscribes it to engine changes.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := Model{
		ctx:       ctx,
		engine:    opts.Engine,
		formatter: opts.Formatter,
		log:       opts.Logger,
		changes:   make(chan struct{}, 1),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		fields:    opts.Engine.Fields(),
	}

	changes := m.changes
	opts.Engine.SetOnChange(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	m.inputs = make([]textinput.Model, len(m.fields))
	for i := range m.fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = inputCharLimit
		ti.Width = InputCardWidth - 4
		m.inputs[i] = ti
	}
	m.refresh()
	m.syncAll()
	m.inputs[0].Focus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForChange(m.changes),
		tea.SetWindowTitle(m.title),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case changedMsg:
		cmds := []tea.Cmd{waitForChange(m.changes)}
		if m.refresh() {
			cmds = append(cmds, tea.SetWindowTitle(m.title))
		}
		return m, tea.Batch(cmds...)

	case actionDoneMsg:
		if msg.err != nil {
			m.log.WithFields(map[string]any{"action": msg.action}).Debug("action finished with error")
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle help overlay
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.engine.AdvanceTheme()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.engine.Reset()
		m.refresh()
		m.syncAll()
		return m, nil

	case key.Matches(msg, m.keys.Share):
		return m, actionCmd("share", func() error { return m.engine.Share(m.ctx) })

	case key.Matches(msg, m.keys.Export):
		return m, actionCmd("export", func() error {
			_, err := m.engine.Export(m.ctx)
			return err
		})

	case key.Matches(msg, m.keys.Dismiss):
		m.engine.DismissNotification()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.setFocus(m.focus + 1)
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.setFocus(m.focus - 1)
		return m, nil

	case key.Matches(msg, m.keys.Increase):
		return m.step(1)
	case key.Matches(msg, m.keys.Decrease):
		return m.step(-1)
	case key.Matches(msg, m.keys.IncBig):
		return m.step(10)
	case key.Matches(msg, m.keys.DecBig):
		return m.step(-10)
	}

	if isEditKey(msg) {
		return m.edit(msg)
	}
	return m, nil
}

// step moves the focused input by n widget steps.
func (m Model) step(n int) (tea.Model, tea.Cmd) {
	id := m.fields[m.focus].ID
	if err := m.engine.Step(id, n); err != nil {
		m.log.Error(err, "step input")
		return m, nil
	}
	m.refresh()
	m.syncInput(m.focus)
	return m, nil
}

// edit forwards a digit, '.' or backspace to the focused input and pushes
// the parsed value to the engine. Unparseable text (empty, ".") is kept on
// screen without changing the engine.
func (m Model) edit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	text := strings.TrimSpace(m.inputs[m.focus].Value())
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		if err := m.engine.Set(m.fields[m.focus].ID, v); err != nil {
			m.log.Error(err, "set input")
		}
		m.refresh()
	}
	return m, cmd
}

func isEditKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace:
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if (r < '0' || r > '9') && r != '.' {
				return false
			}
		}
		return len(msg.Runes) > 0
	}
	return false
}

func (m *Model) setFocus(i int) {
	n := len(m.inputs)
	i = ((i % n) + n) % n
	m.syncInput(m.focus)
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// refresh pulls a fresh snapshot. It reports whether the window title
// changed.
func (m *Model) refresh() bool {
	m.snapshot = m.engine.Snapshot()
	if m.snapshot.Theme.Name != m.paletteName || m.paletteName == "" {
		m.paletteName = m.snapshot.Theme.Name
		m.styles = m.snapshot.Theme.Styles()
	}
	for i := range m.inputs {
		if i != m.focus {
			m.syncInput(i)
		}
	}

	title := m.formatter.WindowTitle(m.snapshot.Metrics.DailyCost)
	changed := title != m.title
	m.title = title
	return changed
}

func (m *Model) syncAll() {
	for i := range m.inputs {
		m.syncInput(i)
	}
}

func (m *Model) syncInput(i int) {
	v := m.snapshot.Input(m.fields[i].ID)
	text := strconv.FormatFloat(v, 'f', -1, 64)
	if m.inputs[i].Value() == text {
		return
	}
	m.inputs[i].SetValue(text)
	m.inputs[i].CursorEnd()
}

// Messages

type changedMsg struct{}

type actionDoneMsg struct {
	action string
	err    error
}

// Commands

// waitForChange blocks until the engine reports a change.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return changedMsg{}
	}
}

func actionCmd(action string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{action: action, err: fn()}
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
