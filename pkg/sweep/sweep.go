package sweep

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/ja7ad/buckloss/pkg/loss"
)

// DefaultSamples is the grid resolution used when none is given.
const DefaultSamples = 100

// Spec describes one sweep: the axis field and its bounds, the grid
// resolution and the scenario field with its ordered override values.
// Start/End and Scenarios are SI values.
type Spec struct {
	Axis      Field
	Start     float64
	End       float64
	Samples   int
	Scenario  Field
	Scenarios []float64
	Policy    loss.Policy
}

// Point is one evaluated grid point.
type Point struct {
	X float64
	loss.Result
}

// Series is the ordered output of one scenario.
type Series struct {
	Scenario float64
	Points   []Point
}

// Result holds the shared grid and one Series per scenario, both in the
// order given by the Spec. Fixed is the template every point started from.
type Result struct {
	Spec   Spec
	Fixed  loss.OperatingPoint
	Grid   []float64
	Series []Series
}

// CissSweep sweeps input capacitance (F) with one series per switching
// frequency (Hz). Gate-drive loss is part of the total.
func CissSweep(start, end float64, samples int, freqs []float64) Spec {
	return Spec{
		Axis: Ciss, Start: start, End: end, Samples: samples,
		Scenario: Fsw, Scenarios: freqs,
		Policy: loss.CondSwitchGate,
	}
}

// FreqSweep sweeps switching frequency (Hz) with one series per load
// current (A). Gate-drive loss is computed but left out of the total.
func FreqSweep(start, end float64, samples int, currents []float64) Spec {
	return Spec{
		Axis: Fsw, Start: start, End: end, Samples: samples,
		Scenario: Iout, Scenarios: currents,
		Policy: loss.CondSwitch,
	}
}

// Validate checks the shape of s. Bounds are not checked: a zero-width or
// reversed sweep is evaluated as given.
func (s Spec) Validate() error {
	if !s.Axis.Valid() {
		return fmt.Errorf("%w: axis %d", ErrUnknownField, int(s.Axis))
	}
	if !s.Scenario.Valid() {
		return fmt.Errorf("%w: scenario %d", ErrUnknownField, int(s.Scenario))
	}
	if s.Axis == s.Scenario {
		return fmt.Errorf("%w: both are %s", ErrSameField, s.Axis)
	}
	if s.Samples < 2 {
		return fmt.Errorf("%w: got %d", ErrSampleCount, s.Samples)
	}
	if len(s.Scenarios) == 0 {
		return ErrNoScenarios
	}
	return nil
}

// Grid returns n evenly spaced values from start to end inclusive.
// n must be at least 2.
func Grid(start, end float64, n int) []float64 {
	g := floats.Span(make([]float64, n), start, end)
	g[0], g[n-1] = start, end
	return g
}

// Run evaluates the loss model on every (scenario, grid value) pair.
//
// Each point is independent, so scenarios are evaluated concurrently; every
// goroutine writes only its own slot and the output is the same as a
// sequential run.
func Run(fixed loss.OperatingPoint, s Spec) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}

	grid := Grid(s.Start, s.End, s.Samples)
	scenarios := append([]float64(nil), s.Scenarios...)
	s.Scenarios = scenarios

	out := Result{
		Spec:   s,
		Fixed:  fixed,
		Grid:   grid,
		Series: make([]Series, len(scenarios)),
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, sc := range scenarios {
		g.Go(func() error {
			out.Series[i] = evalSeries(fixed, s, grid, sc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return out, nil
}

func evalSeries(fixed loss.OperatingPoint, s Spec, grid []float64, scenario float64) Series {
	op := s.Scenario.Set(fixed, scenario)
	pts := make([]Point, len(grid))
	for j, x := range grid {
		pts[j] = Point{X: x, Result: loss.Evaluate(s.Axis.Set(op, x), s.Policy)}
	}
	return Series{Scenario: scenario, Points: pts}
}

// X returns the axis values of the series.
func (s Series) X() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.X
	}
	return out
}

// PTotal returns the total loss of every point, in grid order.
func (s Series) PTotal() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.PTotal
	}
	return out
}

// Tj returns the junction temperature of every point, in grid order.
func (s Series) Tj() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Tj
	}
	return out
}
