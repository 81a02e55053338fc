package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ja7ad/buckloss/pkg/loss"
	"github.com/ja7ad/buckloss/pkg/types"
	"github.com/ja7ad/buckloss/pkg/util"
)

// EnvPrefix prefixes every environment key, e.g. BUCKLOSS_VIN.
const EnvPrefix = "BUCKLOSS_"

var (
	// ErrUnknownKey indicates a key with no matching Config field.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrFallback indicates a malformed list that was replaced by its default.
	ErrFallback = errors.New("config: list replaced by default")
)

var (
	DefaultFreqs = []float64{100, 200, 300} // kHz
	DefaultLoads = []float64{5, 10, 15}     // A
)

// Config holds user-facing parameters in display units.
// Units:
//   - Vin/Vout/Vdrive: Volts
//   - Idriver/Iout: Amps
//   - Rdson: mΩ
//   - Ciss, CissStart, CissEnd: pF
//   - Fsw, FswStart, FswEnd: kHz
//   - RthJA: °C/W
//   - Tamb, TjMax: °C
//   - Freqs: kHz, Loads: A (comparison scenarios)
type Config struct {
	Vin     float64
	Vout    float64
	Vdrive  float64
	Idriver float64
	Iout    float64
	Rdson   types.Milliohms
	Ciss    types.Picofarads
	Fsw     types.Kilohertz
	RthJA   float64
	Tamb    float64
	TjMax   float64

	CissStart types.Picofarads
	CissEnd   types.Picofarads
	FswStart  types.Kilohertz
	FswEnd    types.Kilohertz
	Samples   int

	Freqs []float64
	Loads []float64
}

// Defaults returns the reference 24V -> 12V buck stage.
func Defaults() *Config {
	return &Config{
		Vin:     24.0, // V
		Vout:    12.0, // V
		Vdrive:  10.0, // V gate drive
		Idriver: 1.0,  // A driver capability
		Iout:    10.0, // A load
		Rdson:   10,   // mΩ
		Ciss:    2200, // pF, fixed value for frequency sweeps
		Fsw:     100,  // kHz, fixed value for capacitance sweeps
		RthJA:   40.0, // °C/W
		Tamb:    25.0, // °C
		TjMax:   150,  // °C rated junction temperature

		CissStart: 500,
		CissEnd:   5000,
		FswStart:  50,
		FswEnd:    500,
		Samples:   100,

		Freqs: append([]float64(nil), DefaultFreqs...),
		Loads: append([]float64(nil), DefaultLoads...),
	}
}

// OperatingPoint converts the fixed parameters to SI units.
func (c *Config) OperatingPoint() loss.OperatingPoint {
	return loss.OperatingPoint{
		Vin:     c.Vin,
		Vout:    c.Vout,
		Vdrive:  c.Vdrive,
		Idriver: c.Idriver,
		Iout:    c.Iout,
		Rdson:   c.Rdson.SI(),
		Ciss:    c.Ciss.SI(),
		Fsw:     c.Fsw.SI(),
		RthJA:   c.RthJA,
		Tamb:    c.Tamb,
	}
}

// Keys lists every key accepted by Set, in a stable order.
var Keys = []string{
	"vin", "vout", "vdrive", "idriver", "iout", "rdson", "ciss", "fsw",
	"rth", "tamb", "tj-max",
	"ciss-start", "ciss-end", "fsw-start", "fsw-end", "samples",
	"freqs", "loads",
}

// EnvName maps a key such as "tj-max" to BUCKLOSS_TJ_MAX.
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// Set assigns a textual value to the field named by key.
//
// Scalars that fail to parse leave the field unchanged and return the error.
// Lists that fail to parse are replaced by their default and the returned
// error wraps ErrFallback.
func (c *Config) Set(key, value string) error {
	switch key {
	case "freqs":
		v, err := util.ParseFloatsOr(value, DefaultFreqs)
		c.Freqs = v
		if err != nil {
			return fmt.Errorf("%w: freqs: %w", ErrFallback, err)
		}
		return nil
	case "loads":
		v, err := util.ParseFloatsOr(value, DefaultLoads)
		c.Loads = v
		if err != nil {
			return fmt.Errorf("%w: loads: %w", ErrFallback, err)
		}
		return nil
	case "samples":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("config: samples: %w", err)
		}
		c.Samples = n
		return nil
	}

	dst := c.float(key)
	if dst == nil {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = v
	return nil
}

func (c *Config) float(key string) *float64 {
	switch key {
	case "vin":
		return &c.Vin
	case "vout":
		return &c.Vout
	case "vdrive":
		return &c.Vdrive
	case "idriver":
		return &c.Idriver
	case "iout":
		return &c.Iout
	case "rdson":
		return (*float64)(&c.Rdson)
	case "ciss":
		return (*float64)(&c.Ciss)
	case "fsw":
		return (*float64)(&c.Fsw)
	case "rth":
		return &c.RthJA
	case "tamb":
		return &c.Tamb
	case "tj-max":
		return &c.TjMax
	case "ciss-start":
		return (*float64)(&c.CissStart)
	case "ciss-end":
		return (*float64)(&c.CissEnd)
	case "fsw-start":
		return (*float64)(&c.FswStart)
	case "fsw-end":
		return (*float64)(&c.FswEnd)
	default:
		return nil
	}
}

// Load returns Defaults overridden by BUCKLOSS_* environment variables.
// The given .env files are read first with godotenv; with no files a ./.env
// is used when present. Malformed values keep their default and are logged.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	cfg := Defaults()
	for _, key := range Keys {
		name := EnvName(key)
		value, ok := os.LookupEnv(name)
		if !ok || value == "" {
			continue
		}
		if err := cfg.Set(key, value); err != nil {
			slog.Warn("ignoring malformed environment value", "env", name, "value", value, "err", err)
		}
	}
	return cfg, nil
}
