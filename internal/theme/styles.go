package theme

import "github.com/charmbracelet/lipgloss"

// Styles contains pre-built Lipgloss styles for a palette.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style
	Variant    lipgloss.Style

	// Text
	Text      lipgloss.Style
	MutedText lipgloss.Style
	Accent    lipgloss.Style
	Heading   lipgloss.Style

	// Components
	Header    lipgloss.Style
	Footer    lipgloss.Style
	Card      lipgloss.Style
	CardFocus lipgloss.Style
	StatValue lipgloss.Style
	Selected  lipgloss.Style
	TableHead lipgloss.Style
	Snackbar  lipgloss.Style
}

// Styles returns Lipgloss styles for this palette.
func (p Palette) Styles() Styles {
	c := func(r Role) lipgloss.Color { return lipgloss.Color(p.Color(r)) }

	return Styles{
		Background: lipgloss.NewStyle().
			Background(c(Background)).
			Foreground(c(OnBackground)),

		Surface: lipgloss.NewStyle().
			Background(c(Surface)).
			Foreground(c(OnSurface)),

		Variant: lipgloss.NewStyle().
			Background(c(SurfaceVariant)).
			Foreground(c(OnSurfaceVariant)),

		Text: lipgloss.NewStyle().
			Foreground(c(OnSurface)),

		MutedText: lipgloss.NewStyle().
			Foreground(c(OnSurfaceVariant)),

		Accent: lipgloss.NewStyle().
			Foreground(c(Primary)).
			Bold(true),

		Heading: lipgloss.NewStyle().
			Foreground(c(OnSurfaceVariant)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(c(Primary)).
			Foreground(c(OnPrimary)).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(c(Surface)).
			Foreground(c(OnSurfaceVariant)).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(Outline)).
			Padding(0, 1),

		CardFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(Primary)).
			Padding(0, 1),

		StatValue: lipgloss.NewStyle().
			Foreground(c(Primary)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(c(PrimaryContainer)).
			Foreground(c(OnPrimaryContainer)),

		TableHead: lipgloss.NewStyle().
			Background(c(OnPrimaryContainer)).
			Foreground(c(PrimaryContainer)).
			Bold(true).
			Padding(0, 1),

		Snackbar: lipgloss.NewStyle().
			Background(c(InverseSurface)).
			Foreground(c(InverseOnSurface)).
			Padding(0, 2),
	}
}
