package state

import (
	"fmt"
	"math"
)

// FieldID names one user input. The ID doubles as its persistence key.
type FieldID string

const (
	Price    FieldID = "petrolPrice"
	Mileage  FieldID = "mileage"
	Distance FieldID = "distance"
	Amount   FieldID = "amount"
)

// Default input values.
const (
	DefaultPrice    = 105.0
	DefaultMileage  = 50.0
	DefaultDistance = 100.0
	DefaultAmount   = 500.0
)

// ThemeKey is the persistence key for the theme selection.
const ThemeKey = "theme"

// Bounds configures input widgets. The engine never enforces them.
type Bounds struct {
	Min  float64
	Max  float64
	Step float64
}

// Field describes one input for the rendering layer.
type Field struct {
	ID      FieldID
	Key     string
	Label   string
	Unit    string
	Bounds  Bounds
	Default float64
	// Digits is the number of decimals a Step result is rounded to.
	Digits int
}

var fields = []Field{
	{ID: Price, Key: string(Price), Label: "Petrol Price", Unit: "₹/L", Bounds: Bounds{Min: 80, Max: 130, Step: 0.01}, Default: DefaultPrice, Digits: 2},
	{ID: Mileage, Key: string(Mileage), Label: "Bike Mileage", Unit: "km/L", Bounds: Bounds{Min: 30, Max: 80, Step: 1}, Default: DefaultMileage},
	{ID: Distance, Key: string(Distance), Label: "Daily Distance", Unit: "km", Bounds: Bounds{Min: 10, Max: 300, Step: 1}, Default: DefaultDistance},
	{ID: Amount, Key: string(Amount), Label: "Refill Amount", Unit: "₹", Bounds: Bounds{Min: 50, Max: 5000, Step: 50}, Default: DefaultAmount},
}

// Fields returns every input in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Lookup returns the field with id.
func Lookup(id FieldID) (Field, bool) {
	for _, f := range fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// ParseField accepts a field ID or a short alias such as "price".
func ParseField(s string) (FieldID, error) {
	switch s {
	case string(Price), "price":
		return Price, nil
	case string(Mileage):
		return Mileage, nil
	case string(Distance):
		return Distance, nil
	case string(Amount):
		return Amount, nil
	}
	return "", fmt.Errorf("unknown field %q", s)
}

// Stepped returns v moved by n steps, rounded to the field's precision.
func (f Field) Stepped(v float64, n int) float64 {
	next := v + float64(n)*f.Bounds.Step
	scale := math.Pow(10, float64(f.Digits))
	return math.Round(next*scale) / scale
}
