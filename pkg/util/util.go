package util

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrEmptyList indicates a scenario list with no values.
	ErrEmptyList = errors.New("util: empty list")

	// ErrBadNumber indicates a list item that is not a number.
	ErrBadNumber = errors.New("util: bad number")
)

// ParseFloats parses a comma separated list such as "100, 200, 300".
// Blank items are an error, as is an empty list.
func ParseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyList
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadNumber, strings.TrimSpace(p))
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseFloatsOr parses s like ParseFloats and returns a copy of fallback
// instead when s is malformed. The parse error is returned alongside so the
// caller can report it.
func ParseFloatsOr(s string, fallback []float64) ([]float64, error) {
	v, err := ParseFloats(s)
	if err != nil {
		return append([]float64(nil), fallback...), err
	}
	return v, nil
}

// Scale multiplies every value by k into a new slice.
func Scale(vs []float64, k float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v * k
	}
	return out
}

// FmtFloat formats v compactly for CSV cells.
func FmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Finite reports whether v is neither NaN nor ±Inf.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// JoinFloats renders vs as "a, b, c" using FmtFloat.
func JoinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = FmtFloat(v)
	}
	return strings.Join(parts, ", ")
}
