package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/fuelcalc/internal/theme"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.styles
	palette := m.snapshot.Theme

	sections := []helpSection{
		{title: "Inputs", bindings: m.keys.FullHelp()[0]},
		{title: "Actions", bindings: m.keys.FullHelp()[1]},
		{title: "General", bindings: m.keys.FullHelp()[2]},
	}

	var b strings.Builder

	// Title
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(palette.Color(theme.Secondary))).
		Width(12)

	for i, section := range sections {
		b.WriteString(styles.Accent.Render(section.title))
		b.WriteString("\n")

		for _, binding := range section.bindings {
			h := binding.Help()
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(styles.Text.Render(h.Desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(palette.Color(theme.Primary))).
		Padding(1, 2).
		Width(HelpModalWidth)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(palette.Color(theme.Background))),
	)
}

type helpSection struct {
	title    string
	bindings []key.Binding
}
