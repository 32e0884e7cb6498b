package format

import (
	"fmt"
	"strconv"
	"time"

	"github.com/five82/fuelcalc/internal/calc"
)

// Summary is the flat record handed to share and export. Field names are a
// stable contract with report consumers.
type Summary struct {
	Inputs         calc.Inputs  `json:"inputs" yaml:"inputs"`
	DerivedMetrics calc.Metrics `json:"derivedMetrics" yaml:"derivedMetrics"`
}

// Report is a Summary plus the scenario grid.
type Report struct {
	GeneratedAt time.Time   `json:"generatedAt" yaml:"generatedAt"`
	Summary     Summary     `json:"summary" yaml:"summary"`
	Scenarios   calc.Matrix `json:"scenarios" yaml:"scenarios"`
}

// NewSummary pairs inputs with their derived metrics.
func NewSummary(in calc.Inputs, m calc.Metrics) Summary {
	return Summary{Inputs: in, DerivedMetrics: m}
}

// ShareText is the one-line message copied when sharing.
func (f Formatter) ShareText(s Summary) string {
	return fmt.Sprintf(
		"My daily fuel cost is %s, with my bike's mileage of %s km/l at a petrol price of %s/litre. Calculated with Rapido Fuel Calculator.",
		f.Currency(s.DerivedMetrics.DailyCost),
		strconv.FormatFloat(s.Inputs.Mileage, 'f', -1, 64),
		f.Currency(s.Inputs.PetrolPrice),
	)
}

// WindowTitle is the terminal title, e.g. "₹210.00/day | Fuel Calc".
func (f Formatter) WindowTitle(dailyCost float64) string {
	return f.Currency(dailyCost) + "/day | Fuel Calc"
}
