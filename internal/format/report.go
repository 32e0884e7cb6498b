package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/fuelcalc/internal/calc"
)

const reportTitle = "Fuel Cost & Scenario Analysis"

// RenderReport writes r as a plain-text document.
func (f Formatter) RenderReport(w io.Writer, r Report) error {
	var b strings.Builder
	b.WriteString(reportTitle + "\n")
	fmt.Fprintf(&b, "Report generated on: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04"))

	f.writeSummary(&b, r.Summary)

	section(&b, "Scenario Analysis")
	b.WriteString(f.ScenarioTable(r.Scenarios).String())
	b.WriteString("\n\n")

	b.WriteString("Generated by fuelcalc\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderSummary writes the Summary and Quick Refill Check sections of s.
func (f Formatter) RenderSummary(w io.Writer, s Summary) error {
	var b strings.Builder
	f.writeSummary(&b, s)
	_, err := io.WriteString(w, b.String())
	return err
}

func (f Formatter) writeSummary(b *strings.Builder, s Summary) {
	in := s.Inputs
	m := s.DerivedMetrics

	section(b, "Summary")
	b.WriteString(keyValues([][2]string{
		{"Petrol Price:", f.Currency(in.PetrolPrice) + " / L"},
		{"Bike Mileage:", f.Number(in.Mileage, 0) + " km/L"},
		{"Daily Distance:", f.Number(in.Distance, 0) + " km"},
	}))
	b.WriteString("\n")
	b.WriteString(keyValues([][2]string{
		{"Daily Fuel Cost:", f.Currency(m.DailyCost)},
		{"Monthly Fuel Cost:", f.Currency(m.MonthlyCost)},
		{"Cost per Kilometer:", f.Currency(m.CostPerDistance)},
		{"Full Tank Cost:", f.Currency(m.TankCost)},
		{"Full Tank Range:", f.Number(m.TankRange, 0) + " km"},
	}))
	b.WriteString("\n")

	section(b, "Quick Refill Check")
	b.WriteString(keyValues([][2]string{
		{"Refill Amount:", f.Currency(in.Amount)},
		{"Litres for Amount:", f.Number(m.LitresForAmount, 2) + " L"},
		{"Range for Amount:", f.Number(m.RangeForAmount, 0) + " km"},
	}))
	b.WriteString("\n")
}

// ScenarioTable builds an unstyled table of m. Callers may restyle it.
func (f Formatter) ScenarioTable(m calc.Matrix) *table.Table {
	headers := make([]string, 0, len(m.Distances)+1)
	headers = append(headers, "Mileage")
	for _, d := range m.Distances {
		headers = append(headers, f.Number(d, 0)+" km")
	}

	rows := make([][]string, 0, len(m.Mileages))
	for i, mileage := range m.Mileages {
		row := make([]string, 0, len(m.Distances)+1)
		row = append(row, f.Number(mileage, 0)+" km/L")
		for j := range m.Distances {
			row = append(row, f.Cell(m.Cells[i][j]))
		}
		rows = append(rows, row)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
}

// Cell renders one scenario cell, "N/A" when it has no value.
func (f Formatter) Cell(c calc.Cell) string {
	if !c.OK {
		return "N/A"
	}
	return f.Currency(c.Cost)
}

func section(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", lipgloss.Width(title)) + "\n")
}

func keyValues(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		if w := lipgloss.Width(p[0]); w > width {
			width = w
		}
	}
	label := lipgloss.NewStyle().Width(width + 1)
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(label.Render(p[0]) + p[1] + "\n")
	}
	return b.String()
}
