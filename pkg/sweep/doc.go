// Package sweep evaluates the loss model over a one-dimensional grid for a
// handful of comparison scenarios and derives secant sensitivities.
//
// Overview
//
//   - Spec: the swept axis (a Field such as Ciss or Fsw) with its [Start, End]
//     bounds and Samples, plus the scenario Field and its ordered values.
//     CissSweep and FreqSweep build the two usual specs.
//
//   - Run(fixed, spec) (Result, error): one Series per scenario, each with
//     one Point per grid value. Order of scenarios and grid is preserved.
//
//   - Slope(xs, ys, scale): endpoint secant rescaled to a display unit.
//     Series.Slopes applies it to total loss and junction temperature.
//
//   - Tabulate / Spec.Snapshot: one Row per scenario at a single axis value.
//
// # Units
//
// All values handed to this package are SI. Scale constants convert slopes:
//
//	Ciss axis in F, PerNanofarad -> W/nF and °C/nF
//	Fsw axis in Hz, PerKilohertz -> W/kHz and °C/kHz
//
// # Degenerate numbers
//
// Nothing is clamped. Vin == 0, Idriver == 0 or a zero-width sweep produce
// Inf/NaN in the returned values; callers decide how to show them.
//
// Example
//
//	fixed := loss.OperatingPoint{Vin: 24, Vout: 12, Vdrive: 10, Idriver: 1,
//	    Iout: 10, Rdson: 0.01, RthJA: 40, Tamb: 25}
//	spec := sweep.CissSweep(500e-12, 5000e-12, 100, []float64{100e3, 200e3, 300e3})
//	res, err := sweep.Run(fixed, spec)
//	if err != nil { log.Fatal(err) }
//	for _, s := range res.Series {
//	    m := s.Slopes(sweep.PerNanofarad)
//	    fmt.Printf("%g Hz: %.2f W/nF %.1f °C/nF\n", s.Scenario, m.Power, m.Temperature)
//	}
package sweep
