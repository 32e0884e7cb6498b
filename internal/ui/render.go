package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/fuelcalc/internal/state"
	"github.com/five82/fuelcalc/internal/theme"
)

var titleCase = cases.Title(language.English)

// renderMain lays out the calculator screen.
func (m Model) renderMain() string {
	parts := []string{
		m.renderHeader(),
		m.renderInputs(),
		m.renderResults(),
		m.renderRefill(),
		m.renderScenarios(),
	}
	if n := m.snapshot.Notification; n.Visible {
		parts = append(parts, m.styles.Snackbar.Render(n.Message))
	}
	parts = append(parts, m.renderFooter())

	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return m.styles.Background.Width(m.width).Height(m.height).Render(body)
}

// renderHeader shows the app name and the theme in use.
func (m Model) renderHeader() string {
	palette := m.snapshot.Theme
	bg := NewBgStyle(palette.Color(theme.Primary))
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Color(theme.OnPrimary)))

	label := titleCase.String(palette.Selection)
	if palette.Selection != palette.Name {
		label += " (" + titleCase.String(palette.Name) + ")"
	}

	left := bg.Render("Fuel Calc", style.Bold(true))
	right := bg.Render("Theme: "+label, style)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return m.styles.Header.Width(m.width).Render(left + bg.Spaces(gap) + right)
}

// renderInputs draws one card per input, side by side on wide terminals.
func (m Model) renderInputs() string {
	cards := make([]string, len(m.fields))
	for i, f := range m.fields {
		cards[i] = m.renderInputCard(i, f)
	}
	return m.arrange(cards)
}

func (m Model) renderInputCard(i int, f state.Field) string {
	palette := m.snapshot.Theme
	card := m.styles.Card
	if i == m.focus {
		card = m.styles.CardFocus
	}

	label := m.styles.Heading.Render(f.Label)
	unit := m.styles.MutedText.Render(f.Unit)
	value := m.inputs[i].View()

	filled := lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Color(theme.Primary)))
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Color(theme.Outline)))
	track := slider(m.snapshot.Input(f.ID), f.Bounds.Min, f.Bounds.Max, SliderWidth, filled, empty)

	return card.Width(InputCardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, label+" "+unit, value, track),
	)
}

// renderResults shows the running-cost figures.
func (m Model) renderResults() string {
	f := m.formatter
	metrics := m.snapshot.Metrics

	title := "Results"
	if m.snapshot.Pending {
		title += m.styles.MutedText.Render(" (updating...)")
	}

	cards := []string{
		m.statCard("Daily Cost", f.Currency(metrics.DailyCost)),
		m.statCard("Monthly Cost", f.Currency(metrics.MonthlyCost)),
		m.statCard("Cost per km", f.Currency(metrics.CostPerDistance)),
		m.statCard("Full Tank", f.Currency(metrics.TankCost)+" / "+f.Number(metrics.TankRange, 0)+" km"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.styles.Accent.Render(title), m.arrange(cards))
}

// renderRefill shows what the refill amount buys.
func (m Model) renderRefill() string {
	f := m.formatter
	metrics := m.snapshot.Metrics

	cards := []string{
		m.statCard("Litres", f.Number(metrics.LitresForAmount, 2)+" L"),
		m.statCard("Range", f.Number(metrics.RangeForAmount, 0)+" km"),
	}
	title := "Quick Refill Check: " + f.Currency(m.snapshot.Inputs.Amount)
	return lipgloss.JoinVertical(lipgloss.Left, m.styles.Accent.Render(title), m.arrange(cards))
}

func (m Model) statCard(label, value string) string {
	return m.styles.Card.Width(StatCardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.styles.MutedText.Render(label),
			m.styles.StatValue.Render(value),
		),
	)
}

// renderScenarios draws the mileage by distance grid, highlighting the cell
// that matches the settled inputs.
func (m Model) renderScenarios() string {
	matrix := m.snapshot.Matrix
	row, col := -1, -1
	for i, v := range matrix.Mileages {
		if v == m.snapshot.Debounced.Mileage {
			row = i
		}
	}
	for j, v := range matrix.Distances {
		if v == m.snapshot.Debounced.Distance {
			col = j + 1
		}
	}

	palette := m.snapshot.Theme
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := m.formatter.ScenarioTable(matrix).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Color(theme.Outline)))).
		StyleFunc(func(r, c int) lipgloss.Style {
			switch {
			case r == table.HeaderRow:
				return m.styles.TableHead
			case r == row && c == col:
				return m.styles.Selected.Padding(0, 1)
			case c == 0:
				return m.styles.Heading.Padding(0, 1)
			}
			return cell.Inherit(m.styles.Text)
		})

	title := "Scenario Analysis at " + m.formatter.Currency(matrix.Price) + " / L"
	return lipgloss.JoinVertical(lipgloss.Left, m.styles.Accent.Render(title), t.String())
}

// renderFooter shows the short key help.
func (m Model) renderFooter() string {
	return m.styles.Footer.Width(m.width).Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// arrange places cards in a row, or a column on narrow terminals.
func (m Model) arrange(cards []string) string {
	if m.width < LayoutCompactWidth {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
