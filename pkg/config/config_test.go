package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_OperatingPoint(t *testing.T) {
	cfg := Defaults()
	op := cfg.OperatingPoint()

	assert.Equal(t, 24.0, op.Vin)
	assert.Equal(t, 12.0, op.Vout)
	assert.Equal(t, 10.0, op.Vdrive)
	assert.Equal(t, 1.0, op.Idriver)
	assert.Equal(t, 10.0, op.Iout)
	assert.Equal(t, 0.01, op.Rdson)
	assert.InDelta(t, 2200e-12, op.Ciss, 1e-24)
	assert.Equal(t, 100e3, op.Fsw)
	assert.Equal(t, 40.0, op.RthJA)
	assert.Equal(t, 25.0, op.Tamb)

	assert.Equal(t, 150.0, cfg.TjMax)
	assert.Equal(t, 100, cfg.Samples)
	assert.Equal(t, []float64{100, 200, 300}, cfg.Freqs)
	assert.Equal(t, []float64{5, 10, 15}, cfg.Loads)

	// defaults must not share the package-level slices
	cfg.Freqs[0] = 1
	assert.Equal(t, 100.0, DefaultFreqs[0])
}

func TestSet_Scalars(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Set("vin", "48"))
	require.NoError(t, cfg.Set("rdson", " 4.5 "))
	require.NoError(t, cfg.Set("ciss-end", "8000"))
	require.NoError(t, cfg.Set("tamb", "-20"))
	require.NoError(t, cfg.Set("samples", "250"))

	assert.Equal(t, 48.0, cfg.Vin)
	assert.Equal(t, 4.5, float64(cfg.Rdson))
	assert.Equal(t, 8000.0, float64(cfg.CissEnd))
	assert.Equal(t, -20.0, cfg.Tamb)
	assert.Equal(t, 250, cfg.Samples)
}

func TestSet_BadScalarKeepsValue(t *testing.T) {
	cfg := Defaults()
	err := cfg.Set("vout", "twelve")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrFallback)
	assert.Equal(t, 12.0, cfg.Vout)

	require.Error(t, cfg.Set("samples", "1.5"))
	assert.Equal(t, 100, cfg.Samples)
}

func TestSet_ListFallback(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Set("freqs", "50, 150"))
	assert.Equal(t, []float64{50, 150}, cfg.Freqs)

	err := cfg.Set("freqs", "50 kHz, 150 kHz")
	assert.ErrorIs(t, err, ErrFallback)
	assert.Equal(t, DefaultFreqs, cfg.Freqs)

	err = cfg.Set("loads", "")
	assert.ErrorIs(t, err, ErrFallback)
	assert.Equal(t, DefaultLoads, cfg.Loads)
}

func TestSet_UnknownKey(t *testing.T) {
	assert.ErrorIs(t, Defaults().Set("color", "red"), ErrUnknownKey)
}

func TestKeys_AllSettable(t *testing.T) {
	for _, k := range Keys {
		cfg := Defaults()
		err := cfg.Set(k, "7")
		assert.NoError(t, err, "key %s", k)
	}
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "BUCKLOSS_VIN", EnvName("vin"))
	assert.Equal(t, "BUCKLOSS_TJ_MAX", EnvName("tj-max"))
	assert.Equal(t, "BUCKLOSS_CISS_START", EnvName("ciss-start"))
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("BUCKLOSS_VIN", "36")
	t.Setenv("BUCKLOSS_FREQS", "250,500")
	t.Setenv("BUCKLOSS_IOUT", "lots") // malformed, keeps default

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 36.0, cfg.Vin)
	assert.Equal(t, []float64{250, 500}, cfg.Freqs)
	assert.Equal(t, 10.0, cfg.Iout)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.env")
	require.NoError(t, os.WriteFile(path, []byte("BUCKLOSS_VDRIVE=12\nBUCKLOSS_LOADS=1,2,3\n"), 0o644))
	t.Cleanup(func() {
		_ = os.Unsetenv("BUCKLOSS_VDRIVE")
		_ = os.Unsetenv("BUCKLOSS_LOADS")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12.0, cfg.Vdrive)
	assert.Equal(t, []float64{1, 2, 3}, cfg.Loads)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}
