package loss

import "math"

// Evaluate runs the loss model on a single operating point and returns the
// power split and junction temperature:
//
//	D      = Vout / Vin
//	PCond  = D * Iout² * Rdson
//	TSw    = Ciss * Vdrive / Idriver
//	PSw    = 0.5 * Vin * Iout * TSw * Fsw
//	PGate  = Ciss * Vdrive² * Fsw
//	PTotal = PCond + PSw [+ PGate]
//	Tj     = Tamb + PTotal * RthJA
//
// Degenerate inputs are not guarded. Vin == 0 or Idriver == 0 yield Inf/NaN
// which propagate into the returned Result.
func Evaluate(op OperatingPoint, p Policy) Result {
	d := op.Duty()

	pcond := d * op.Iout * op.Iout * op.Rdson

	tsw := (op.Ciss * op.Vdrive) / op.Idriver
	psw := 0.5 * op.Vin * op.Iout * tsw * op.Fsw

	pgate := op.Ciss * op.Vdrive * op.Vdrive * op.Fsw

	ptot := pcond + psw
	if p.IncludeGate {
		ptot += pgate
	}

	return Result{
		Duty:   d,
		PCond:  pcond,
		TSw:    tsw,
		PSw:    psw,
		PGate:  pgate,
		PTotal: ptot,
		Tj:     op.Tamb + ptot*op.RthJA,
	}
}

// Finite reports whether every field of r is a finite number.
func (r Result) Finite() bool {
	for _, v := range [...]float64{r.Duty, r.PCond, r.TSw, r.PSw, r.PGate, r.PTotal, r.Tj} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Margin returns the thermal headroom tjMax - Tj in °C. Negative means the
// junction runs above its rating.
func (r Result) Margin(tjMax float64) float64 { return tjMax - r.Tj }
