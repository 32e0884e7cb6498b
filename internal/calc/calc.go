// Package calc derives fuel cost figures from the user's inputs.
//
// Every function here is pure and total: degenerate inputs produce finite,
// zero-ish results instead of errors.
package calc

import "math"

const (
	// TankCapacity is the nominal tank size in litres.
	TankCapacity = 10.0
	// DaysPerMonth multiplies a daily cost into a monthly one.
	DaysPerMonth = 30.0
)

// Inputs is one complete input tuple.
type Inputs struct {
	PetrolPrice float64 `json:"petrolPrice" yaml:"petrolPrice"`
	Mileage     float64 `json:"mileage" yaml:"mileage"`
	Distance    float64 `json:"distance" yaml:"distance"`
	Amount      float64 `json:"amount" yaml:"amount"`
}

// Metrics holds every figure derived from Inputs.
type Metrics struct {
	CostPerDistance float64 `json:"costPerDistance" yaml:"costPerDistance"`
	DailyCost       float64 `json:"dailyCost" yaml:"dailyCost"`
	MonthlyCost     float64 `json:"monthlyCost" yaml:"monthlyCost"`
	TankRange       float64 `json:"tankRange" yaml:"tankRange"`
	TankCost        float64 `json:"tankCost" yaml:"tankCost"`
	LitresForAmount float64 `json:"litresForAmount" yaml:"litresForAmount"`
	RangeForAmount  float64 `json:"rangeForAmount" yaml:"rangeForAmount"`
}

// EffectiveMileage returns m, or 1 when m is non-positive or not finite.
func EffectiveMileage(m float64) float64 {
	if !isFinite(m) || m <= 0 {
		return 1
	}
	return m
}

// CostPerDistance is price per kilometre. Zero when either side is
// non-positive or not finite.
func CostPerDistance(price, mileage float64) float64 {
	if !isFinite(price) || !isFinite(mileage) || price <= 0 || mileage <= 0 {
		return 0
	}
	return clampFinite(price / mileage)
}

// Derive computes all metrics for in.
func Derive(in Inputs) Metrics {
	mileage := EffectiveMileage(in.Mileage)
	perKm := CostPerDistance(in.PetrolPrice, in.Mileage)
	daily := clampFinite(perKm * in.Distance)

	var litres float64
	if in.PetrolPrice > 0 {
		litres = clampFinite(in.Amount / in.PetrolPrice)
	}

	return Metrics{
		CostPerDistance: perKm,
		DailyCost:       daily,
		MonthlyCost:     clampFinite(daily * DaysPerMonth),
		TankRange:       clampFinite(mileage * TankCapacity),
		TankCost:        clampFinite(in.PetrolPrice * TankCapacity),
		LitresForAmount: litres,
		RangeForAmount:  clampFinite(litres * mileage),
	}
}

func clampFinite(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
