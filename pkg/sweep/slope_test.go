package sweep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlope_Secant(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{10, 100, -5, 16} // interior samples must not matter
	assert.InDelta(t, 2.0, Slope(xs, ys, 1), 0)
	assert.InDelta(t, 2000.0, Slope(xs, ys, 1000), 0)
}

func TestSlope_ScaleLinear(t *testing.T) {
	xs := Grid(500e-12, 5000e-12, 17)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 0.3 + 1.3e8*x + 4e16*x*x
	}
	for _, scale := range []float64{PerPicofarad, PerNanofarad, 1, 1000} {
		base := Slope(xs, ys, scale)
		assert.InDelta(t, 2*base, Slope(xs, ys, 2*scale), math.Abs(base)*1e-12, "scale=%g", scale)
	}
}

func TestSlope_SampleCountInvariant(t *testing.T) {
	spec := CissSweep(500e-12, 5000e-12, DefaultSamples, []float64{100e3, 300e3})
	many, err := Run(fixedPoint(), spec)
	require.NoError(t, err)

	spec.Samples = 2
	two, err := Run(fixedPoint(), spec)
	require.NoError(t, err)

	for i := range many.Series {
		m, s := many.Series[i], two.Series[i]
		require.Len(t, s.Points, 2)

		assert.Equal(t, s.Slopes(PerNanofarad), m.Slopes(PerNanofarad))

		// restrict the long sequence to its endpoints by hand
		ends := []Point{m.Points[0], m.Points[len(m.Points)-1]}
		assert.Equal(t, Series{Scenario: m.Scenario, Points: ends}.Slopes(PerNanofarad), m.Slopes(PerNanofarad))
	}
}

func TestSlope_ZeroWidth(t *testing.T) {
	t.Run("flat_sweep_is_nan", func(t *testing.T) {
		res, err := Run(fixedPoint(), CissSweep(1e-9, 1e-9, DefaultSamples, []float64{100e3}))
		require.NoError(t, err)
		m := res.Series[0].Slopes(PerNanofarad)
		assert.True(t, math.IsNaN(m.Power))
		assert.True(t, math.IsNaN(m.Temperature))
	})
	t.Run("distinct_y_is_inf", func(t *testing.T) {
		assert.True(t, math.IsInf(Slope([]float64{1, 1}, []float64{0, 1}, 1), 1))
		assert.True(t, math.IsInf(Slope([]float64{1, 1}, []float64{1, 0}, 1), -1))
	})
}

func TestSlope_BadInput(t *testing.T) {
	assert.True(t, math.IsNaN(Slope(nil, nil, 1)))
	assert.True(t, math.IsNaN(Slope([]float64{1, 2}, []float64{1}, 1)))
}

func TestResult_Slopes(t *testing.T) {
	res, err := Run(fixedPoint(), FreqSweep(50e3, 500e3, 20, []float64{5, 10, 15}))
	require.NoError(t, err)

	all := res.Slopes(PerKilohertz)
	require.Len(t, all, 3)
	for i, s := range res.Series {
		assert.Equal(t, s.Slopes(PerKilohertz), all[i])
	}
	// switching loss grows with load current, so does the frequency slope
	assert.Less(t, all[0].Power, all[1].Power)
	assert.Less(t, all[1].Power, all[2].Power)
	assert.InDelta(t, all[1].Power*40, all[1].Temperature, 1e-12)
}
