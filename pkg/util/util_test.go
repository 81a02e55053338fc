package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloats(t *testing.T) {
	t.Run("spaces_and_decimals", func(t *testing.T) {
		got, err := ParseFloats("100, 200 ,300.5")
		require.NoError(t, err)
		assert.Equal(t, []float64{100, 200, 300.5}, got)
	})
	t.Run("single_value", func(t *testing.T) {
		got, err := ParseFloats(" 42 ")
		require.NoError(t, err)
		assert.Equal(t, []float64{42}, got)
	})
	t.Run("scientific", func(t *testing.T) {
		got, err := ParseFloats("1e3,2.5e-1")
		require.NoError(t, err)
		assert.Equal(t, []float64{1000, 0.25}, got)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := ParseFloats("   ")
		assert.ErrorIs(t, err, ErrEmptyList)
	})
	t.Run("garbage_item", func(t *testing.T) {
		_, err := ParseFloats("100, abc, 300")
		assert.ErrorIs(t, err, ErrBadNumber)
		assert.Contains(t, err.Error(), `"abc"`)
	})
	t.Run("blank_item", func(t *testing.T) {
		_, err := ParseFloats("100,,300")
		assert.ErrorIs(t, err, ErrBadNumber)
	})
}

func TestParseFloatsOr_Fallback(t *testing.T) {
	def := []float64{100, 200, 300}

	got, err := ParseFloatsOr("100; 200", def)
	assert.Error(t, err)
	assert.Equal(t, def, got)

	// fallback is copied, not aliased
	got[0] = 1
	assert.Equal(t, 100.0, def[0])

	got, err = ParseFloatsOr("50,75", def)
	require.NoError(t, err)
	assert.Equal(t, []float64{50, 75}, got)
}

func TestScale(t *testing.T) {
	in := []float64{100, 200, 300}
	out := Scale(in, 1000)
	assert.Equal(t, []float64{100e3, 200e3, 300e3}, out)
	assert.Equal(t, []float64{100, 200, 300}, in)
}

func TestFmtFloat(t *testing.T) {
	assert.Equal(t, "0.565", FmtFloat(0.565))
	assert.Equal(t, "1e-09", FmtFloat(1e-9))
	assert.Equal(t, "+Inf", FmtFloat(math.Inf(1)))
	assert.Equal(t, "NaN", FmtFloat(math.NaN()))
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite(0))
	assert.True(t, Finite(-math.MaxFloat64))
	assert.False(t, Finite(math.NaN()))
	assert.False(t, Finite(math.Inf(1)))
	assert.False(t, Finite(math.Inf(-1)))
}

func TestJoinFloats(t *testing.T) {
	assert.Equal(t, "100, 200, 300", JoinFloats([]float64{100, 200, 300}))
	assert.Equal(t, "", JoinFloats(nil))
}
