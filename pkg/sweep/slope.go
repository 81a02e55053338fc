package sweep

import "math"

// Slope scales for x values given in SI units.
const (
	PerHertz     = 1.0
	PerKilohertz = 1e3   // x in Hz -> per kHz
	PerPicofarad = 1e-12 // x in F  -> per pF
	PerNanofarad = 1e-9  // x in F  -> per nF
)

// Sensitivity holds the secant slopes of one series.
type Sensitivity struct {
	Power       float64 // W per display unit
	Temperature float64 // °C per display unit
}

// Slope returns the secant slope between the first and last samples,
// multiplied by scale:
//
//	(ys[last] - ys[first]) / (xs[last] - xs[first]) * scale
//
// It is a single global secant, not a fit. A zero-width x range yields NaN
// or ±Inf. Empty or mismatched inputs yield NaN.
func Slope(xs, ys []float64, scale float64) float64 {
	n := len(xs)
	if n == 0 || n != len(ys) {
		return math.NaN()
	}
	return (ys[n-1] - ys[0]) / (xs[n-1] - xs[0]) * scale
}

// Slopes returns the total-loss and junction-temperature slopes of s.
func (s Series) Slopes(scale float64) Sensitivity {
	xs := s.X()
	return Sensitivity{
		Power:       Slope(xs, s.PTotal(), scale),
		Temperature: Slope(xs, s.Tj(), scale),
	}
}

// Slopes returns one Sensitivity per series, in series order.
func (r Result) Slopes(scale float64) []Sensitivity {
	out := make([]Sensitivity, len(r.Series))
	for i, s := range r.Series {
		out[i] = s.Slopes(scale)
	}
	return out
}
