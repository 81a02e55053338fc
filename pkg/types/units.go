package types

import (
	"fmt"
	"math"
)

// Milliohms is a resistance as entered by a user (mΩ).
type Milliohms float64

// Picofarads is a capacitance as entered by a user (pF).
type Picofarads float64

// Kilohertz is a frequency as entered by a user (kHz).
type Kilohertz float64

// SI returns the resistance in Ohms.
func (r Milliohms) SI() float64 { return float64(r) / 1000 }

// SI returns the capacitance in Farads.
func (c Picofarads) SI() float64 { return float64(c) * 1e-12 }

// Humanized returns the capacitance with an automatic SI prefix.
func (c Picofarads) Humanized() string { return Humanize(c.SI(), "F") }

// SI returns the frequency in Hertz.
func (f Kilohertz) SI() float64 { return float64(f) * 1000 }

// Humanized returns the frequency with an automatic SI prefix.
func (f Kilohertz) Humanized() string { return Humanize(f.SI(), "Hz") }

// Humanize formats an SI value with the closest engineering prefix
// (M, k, none, m, µ, n, p). Non-finite values are printed as-is.
func Humanize(v float64, unit string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%v %s", v, unit)
	}
	a := math.Abs(v)
	switch {
	case a == 0:
		return fmt.Sprintf("0.00 %s", unit)
	case a >= 1e6:
		return fmt.Sprintf("%.2f M%s", v/1e6, unit)
	case a >= 1e3:
		return fmt.Sprintf("%.2f k%s", v/1e3, unit)
	case a >= 1:
		return fmt.Sprintf("%.2f %s", v, unit)
	case a >= 1e-3:
		return fmt.Sprintf("%.2f m%s", v*1e3, unit)
	case a >= 1e-6:
		return fmt.Sprintf("%.2f µ%s", v*1e6, unit)
	case a >= 1e-9:
		return fmt.Sprintf("%.2f n%s", v*1e9, unit)
	default:
		return fmt.Sprintf("%.2f p%s", v*1e12, unit)
	}
}
