package calc

// Scenario axes, ascending. Row and column order is part of the display
// contract.
var (
	ScenarioMileages  = []float64{45, 50, 55, 60, 65}
	ScenarioDistances = []float64{80, 100, 120, 150, 200}
)

// Cell is one scenario cost. OK is false for the "N/A" case.
type Cell struct {
	Cost float64 `json:"cost" yaml:"cost"`
	OK   bool    `json:"ok" yaml:"ok"`
}

// Matrix is the daily cost at Price for each scenario mileage (rows) and
// distance (columns).
type Matrix struct {
	Price     float64   `json:"price" yaml:"price"`
	Mileages  []float64 `json:"mileages" yaml:"mileages"`
	Distances []float64 `json:"distances" yaml:"distances"`
	Cells     [][]Cell  `json:"cells" yaml:"cells"`
}

// NewMatrix evaluates the scenario grid at price.
func NewMatrix(price float64) Matrix {
	m := Matrix{
		Price:     price,
		Mileages:  append([]float64(nil), ScenarioMileages...),
		Distances: append([]float64(nil), ScenarioDistances...),
		Cells:     make([][]Cell, len(ScenarioMileages)),
	}
	for i, mileage := range m.Mileages {
		row := make([]Cell, len(m.Distances))
		ok := isFinite(price) && isFinite(mileage) && price > 0 && mileage > 0
		for j, distance := range m.Distances {
			if !ok {
				continue
			}
			row[j] = Cell{Cost: clampFinite(price / mileage * distance), OK: true}
		}
		m.Cells[i] = row
	}
	return m
}

// At returns the cell for the given header values.
func (m Matrix) At(mileage, distance float64) (Cell, bool) {
	for i, rm := range m.Mileages {
		if rm != mileage {
			continue
		}
		for j, cd := range m.Distances {
			if cd == distance {
				return m.Cells[i][j], true
			}
		}
	}
	return Cell{}, false
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := Matrix{
		Price:     m.Price,
		Mileages:  append([]float64(nil), m.Mileages...),
		Distances: append([]float64(nil), m.Distances...),
		Cells:     make([][]Cell, len(m.Cells)),
	}
	for i, row := range m.Cells {
		out.Cells[i] = append([]Cell(nil), row...)
	}
	return out
}
