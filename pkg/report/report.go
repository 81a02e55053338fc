package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ja7ad/buckloss/pkg/loss"
	"github.com/ja7ad/buckloss/pkg/sweep"
	"github.com/ja7ad/buckloss/pkg/util"
)

// Unit describes how a field is shown: its name, display symbol, the size of
// one display unit in SI (1e-12 for pF, 1e3 for kHz) and the bare SI symbol.
type Unit struct {
	Name   string
	Symbol string
	Per    float64
	Base   string
}

// Label returns e.g. "Ciss [pF]".
func (u Unit) Label() string { return fmt.Sprintf("%s [%s]", u.Name, u.Symbol) }

// Of converts an SI value to the display unit.
func (u Unit) Of(si float64) float64 { return si / u.Per }

// Format renders a display value with its symbol, e.g. "100 kHz".
func (u Unit) Format(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64) + " " + u.Symbol
}

// AxisUnit is the Unit of a swept axis plus the unit its slopes are quoted in.
type AxisUnit struct {
	Unit
	SlopeScale float64 // multiplies an SI secant slope
	SlopeUnit  string  // "nF", "kHz", ...
}

var units = map[sweep.Field]Unit{
	sweep.Vin:     {Name: "Vin", Symbol: "V", Per: 1, Base: "V"},
	sweep.Vout:    {Name: "Vout", Symbol: "V", Per: 1, Base: "V"},
	sweep.Vdrive:  {Name: "Vdrive", Symbol: "V", Per: 1, Base: "V"},
	sweep.Idriver: {Name: "Idriver", Symbol: "A", Per: 1, Base: "A"},
	sweep.Iout:    {Name: "Iout", Symbol: "A", Per: 1, Base: "A"},
	sweep.Rdson:   {Name: "Rdson", Symbol: "mΩ", Per: 1e-3, Base: "Ω"},
	sweep.Ciss:    {Name: "Ciss", Symbol: "pF", Per: 1e-12, Base: "F"},
	sweep.Fsw:     {Name: "f", Symbol: "kHz", Per: 1e3, Base: "Hz"},
	sweep.RthJA:   {Name: "Rth", Symbol: "°C/W", Per: 1, Base: "°C/W"},
	sweep.Tamb:    {Name: "Tamb", Symbol: "°C", Per: 1, Base: "°C"},
}

// UnitFor returns the display unit of a field.
func UnitFor(f sweep.Field) Unit {
	if u, ok := units[f]; ok {
		return u
	}
	return Unit{Name: f.String(), Symbol: "SI", Per: 1, Base: "SI"}
}

// AxisFor returns the axis unit of a field. Capacitance slopes are quoted per
// nF; every other field per its display unit.
func AxisFor(f sweep.Field) AxisUnit {
	u := UnitFor(f)
	switch f {
	case sweep.Ciss:
		return AxisUnit{Unit: u, SlopeScale: sweep.PerNanofarad, SlopeUnit: "nF"}
	case sweep.Fsw:
		return AxisUnit{Unit: u, SlopeScale: sweep.PerKilohertz, SlopeUnit: "kHz"}
	default:
		return AxisUnit{Unit: u, SlopeScale: u.Per, SlopeUnit: u.Symbol}
	}
}

// Num is a float that marshals NaN and ±Inf as JSON null.
type Num float64

func (n Num) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if !util.Finite(f) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// Row is one grid point in display units.
type Row struct {
	X      Num `json:"x"`
	PCond  Num `json:"p_cond_w"`
	PSw    Num `json:"p_sw_w"`
	PGate  Num `json:"p_gate_w"`
	PTotal Num `json:"p_total_w"`
	Tj     Num `json:"tj_c"`
}

// Series is one scenario: its rows and slopes.
type Series struct {
	Name       string `json:"name"`
	Scenario   Num    `json:"scenario"`
	SlopePower Num    `json:"slope_power"`
	SlopeTemp  Num    `json:"slope_temp"`
	MaxTj      Num    `json:"max_tj_c"`
	Hot        bool   `json:"hot"` // MaxTj above the rated maximum
	Rows       []Row  `json:"rows"`
}

// Report is everything a renderer needs from one sweep.
type Report struct {
	Title    string   `json:"title"`
	Context  string   `json:"context"`
	Policy   string   `json:"policy"`
	Axis     AxisUnit `json:"-"`
	AxisName string   `json:"axis"`
	Scenario Unit     `json:"-"`
	TjMax    Num      `json:"tj_max_c"`
	Series   []Series `json:"series"`
}

// PowerSlopeUnit returns e.g. "W/nF".
func (r Report) PowerSlopeUnit() string { return "W/" + r.Axis.SlopeUnit }

// TempSlopeUnit returns e.g. "°C/nF".
func (r Report) TempSlopeUnit() string { return "°C/" + r.Axis.SlopeUnit }

// Build converts a sweep result into display units and computes slopes.
func Build(res sweep.Result, tjMax float64) Report {
	axis := AxisFor(res.Spec.Axis)
	scen := UnitFor(res.Spec.Scenario)

	rep := Report{
		Title:    fmt.Sprintf("%s sweep", axis.Name),
		Context:  describe(res.Fixed, res.Spec.Axis, res.Spec.Scenario),
		Policy:   res.Spec.Policy.String(),
		Axis:     axis,
		AxisName: axis.Label(),
		Scenario: scen,
		TjMax:    Num(tjMax),
		Series:   make([]Series, len(res.Series)),
	}

	for i, s := range res.Series {
		m := s.Slopes(axis.SlopeScale)
		sv := scen.Of(s.Scenario)
		peak := maxOf(s.Tj())
		out := Series{
			Name:       scen.Format(sv),
			Scenario:   Num(sv),
			SlopePower: Num(m.Power),
			SlopeTemp:  Num(m.Temperature),
			MaxTj:      Num(peak),
			Hot:        peak > tjMax,
			Rows:       make([]Row, len(s.Points)),
		}
		for j, p := range s.Points {
			out.Rows[j] = Row{
				X:      Num(axis.Of(p.X)),
				PCond:  Num(p.PCond),
				PSw:    Num(p.PSw),
				PGate:  Num(p.PGate),
				PTotal: Num(p.PTotal),
				Tj:     Num(p.Tj),
			}
		}
		rep.Series[i] = out
	}
	return rep
}

// NonFinite counts the points whose total loss or Tj is NaN or ±Inf.
func (r Report) NonFinite() int {
	n := 0
	for _, s := range r.Series {
		for _, row := range s.Rows {
			if !util.Finite(float64(row.PTotal)) || !util.Finite(float64(row.Tj)) {
				n++
			}
		}
	}
	return n
}

// Hot returns the names of the series whose peak Tj exceeds TjMax.
func (r Report) Hot() []string {
	var out []string
	for _, s := range r.Series {
		if s.Hot {
			out = append(out, s.Name)
		}
	}
	return out
}

// maxOf ignores NaN; it returns NaN only when every value is NaN.
func maxOf(vs []float64) float64 {
	m := math.NaN()
	for _, v := range vs {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(m) || v > m {
			m = v
		}
	}
	return m
}

var contextOrder = []sweep.Field{
	sweep.Vin, sweep.Vout, sweep.Vdrive, sweep.Idriver, sweep.Iout,
	sweep.Rdson, sweep.Ciss, sweep.Fsw, sweep.RthJA, sweep.Tamb,
}

// describe lists the fixed parameters, leaving out the swept ones.
func describe(op loss.OperatingPoint, skip ...sweep.Field) string {
	parts := make([]string, 0, len(contextOrder))
next:
	for _, f := range contextOrder {
		for _, s := range skip {
			if f == s {
				continue next
			}
		}
		u := UnitFor(f)
		parts = append(parts, u.Name+"="+u.Format(u.Of(f.Get(op))))
	}
	return strings.Join(parts, ", ")
}
