package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/buckloss/pkg/loss"
)

func TestField_SetGet(t *testing.T) {
	for f := Vin; f <= Tamb; f++ {
		t.Run(f.String(), func(t *testing.T) {
			base := fixedPoint()
			got := f.Set(base, 123.5)
			assert.Equal(t, 123.5, f.Get(got))
			assert.NotEqual(t, base, got)

			// every other field is untouched
			for g := Vin; g <= Tamb; g++ {
				if g != f {
					assert.Equal(t, g.Get(base), g.Get(got), "field %s", g)
				}
			}
		})
	}
}

func TestField_Unknown(t *testing.T) {
	op := fixedPoint()
	assert.Equal(t, op, Unknown.Set(op, 1))
	assert.Equal(t, 0.0, Field(42).Get(op))
	assert.Equal(t, "unknown", Field(42).String())
	assert.False(t, Unknown.Valid())
}

func TestParseField(t *testing.T) {
	for f := Vin; f <= Tamb; f++ {
		got, err := ParseField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseField("  CISS ")
	require.NoError(t, err)
	assert.Equal(t, Ciss, got)

	_, err = ParseField("gate")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestField_SetReturnsCopy(t *testing.T) {
	op := loss.OperatingPoint{Fsw: 1}
	_ = Fsw.Set(op, 2)
	assert.Equal(t, 1.0, op.Fsw)
}
