package format

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/five82/fuelcalc/internal/calc"
)

func TestCurrency(t *testing.T) {
	f := Default()
	tests := []struct {
		in   float64
		want string
	}{
		{200, "₹200.00"},
		{2, "₹2.00"},
		{6000, "₹6,000.00"},
		{1234.5, "₹1,234.50"},
		{0.126, "₹0.13"},
		{-42, "-₹42.00"},
		{math.NaN(), "₹0.00"},
		{math.Inf(1), "₹0.00"},
		{math.Inf(-1), "₹0.00"},
	}
	for _, tt := range tests {
		if got := f.Currency(tt.in); got != tt.want {
			t.Fatalf("Currency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNumber(t *testing.T) {
	f := Default()
	tests := []struct {
		in     float64
		digits int
		want   string
	}{
		{500, 0, "500"},
		{2500, 0, "2,500"},
		{4.7619, 2, "4.76"},
		{5, 2, "5"},
		{12.5, 1, "12.5"},
		{math.NaN(), 0, "—"},
		{math.Inf(1), 2, "—"},
	}
	for _, tt := range tests {
		if got := f.Number(tt.in, tt.digits); got != tt.want {
			t.Fatalf("Number(%v, %d) = %q, want %q", tt.in, tt.digits, got, tt.want)
		}
	}
}

func TestNew_Fallbacks(t *testing.T) {
	f := New("!!not a locale!!", "")
	if f.Locale() != DefaultLocale {
		t.Fatalf("Locale = %q, want %q", f.Locale(), DefaultLocale)
	}
	if f.Symbol() != DefaultSymbol {
		t.Fatalf("Symbol = %q, want %q", f.Symbol(), DefaultSymbol)
	}

	var zero Formatter
	if got := zero.Currency(1); got != "₹1.00" {
		t.Fatalf("zero Formatter Currency = %q, want ₹1.00", got)
	}

	usd := New("en-US", "$")
	if got := usd.Currency(1500); got != "$1,500.00" {
		t.Fatalf("en-US Currency = %q, want $1,500.00", got)
	}
}

func TestShareText(t *testing.T) {
	in := calc.Inputs{PetrolPrice: 105, Mileage: 50, Distance: 100, Amount: 500}
	s := NewSummary(in, calc.Derive(in))

	want := "My daily fuel cost is ₹210.00, with my bike's mileage of 50 km/l at a petrol price of ₹105.00/litre. Calculated with Rapido Fuel Calculator."
	if got := Default().ShareText(s); got != want {
		t.Fatalf("ShareText =\n%q\nwant\n%q", got, want)
	}
}

func TestWindowTitle(t *testing.T) {
	if got := Default().WindowTitle(210); got != "₹210.00/day | Fuel Calc" {
		t.Fatalf("WindowTitle = %q", got)
	}
}

func TestRenderReport(t *testing.T) {
	in := calc.Inputs{PetrolPrice: 100, Mileage: 50, Distance: 100, Amount: 500}
	r := Report{
		GeneratedAt: time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC),
		Summary:     NewSummary(in, calc.Derive(in)),
		Scenarios:   calc.NewMatrix(100),
	}

	var buf bytes.Buffer
	if err := Default().RenderReport(&buf, r); err != nil {
		t.Fatalf("RenderReport returned error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		reportTitle,
		"Report generated on: 2024-03-09 14:30",
		"Summary",
		"₹100.00 / L",
		"50 km/L",
		"₹200.00",
		"₹6,000.00",
		"Quick Refill Check",
		"5 L",
		"250 km",
		"Scenario Analysis",
		"Mileage",
		"200 km",
		"65 km/L",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestCell_NA(t *testing.T) {
	if got := Default().Cell(calc.Cell{}); got != "N/A" {
		t.Fatalf("Cell(N/A) = %q", got)
	}
	m := calc.NewMatrix(0)
	if got := Default().ScenarioTable(m).String(); !strings.Contains(got, "N/A") {
		t.Fatalf("zero-price table has no N/A:\n%s", got)
	}
}
