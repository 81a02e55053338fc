package sweep

import (
	"fmt"
	"strings"

	"github.com/ja7ad/buckloss/pkg/loss"
)

// Field names one parameter of a loss.OperatingPoint.
type Field int

const (
	Unknown Field = iota
	Vin
	Vout
	Vdrive
	Idriver
	Iout
	Rdson
	Ciss
	Fsw
	RthJA
	Tamb
)

var fieldNames = [...]string{
	Unknown: "unknown",
	Vin:     "vin",
	Vout:    "vout",
	Vdrive:  "vdrive",
	Idriver: "idriver",
	Iout:    "iout",
	Rdson:   "rdson",
	Ciss:    "ciss",
	Fsw:     "fsw",
	RthJA:   "rth",
	Tamb:    "tamb",
}

func (f Field) String() string {
	if f.Valid() {
		return fieldNames[f]
	}
	return fieldNames[Unknown]
}

// Valid reports whether f names a real OperatingPoint field.
func (f Field) Valid() bool { return f > Unknown && f <= Tamb }

// ParseField maps a name as printed by String back to a Field.
func ParseField(s string) (Field, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := Vin; i <= Tamb; i++ {
		if fieldNames[i] == s {
			return i, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Set returns a copy of op with field f replaced by v.
// Unknown fields leave op untouched.
func (f Field) Set(op loss.OperatingPoint, v float64) loss.OperatingPoint {
	switch f {
	case Vin:
		op.Vin = v
	case Vout:
		op.Vout = v
	case Vdrive:
		op.Vdrive = v
	case Idriver:
		op.Idriver = v
	case Iout:
		op.Iout = v
	case Rdson:
		op.Rdson = v
	case Ciss:
		op.Ciss = v
	case Fsw:
		op.Fsw = v
	case RthJA:
		op.RthJA = v
	case Tamb:
		op.Tamb = v
	}
	return op
}

// Get reads field f from op. Unknown fields read as zero.
func (f Field) Get(op loss.OperatingPoint) float64 {
	switch f {
	case Vin:
		return op.Vin
	case Vout:
		return op.Vout
	case Vdrive:
		return op.Vdrive
	case Idriver:
		return op.Idriver
	case Iout:
		return op.Iout
	case Rdson:
		return op.Rdson
	case Ciss:
		return op.Ciss
	case Fsw:
		return op.Fsw
	case RthJA:
		return op.RthJA
	case Tamb:
		return op.Tamb
	default:
		return 0
	}
}
