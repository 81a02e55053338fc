package loss

// OperatingPoint holds the electrical and thermal parameters of one
// evaluation. All fields are SI base units:
//   - Vin/Vout/Vdrive: Volts
//   - Idriver: Amps the gate driver can source/sink
//   - Iout: Amps of load current
//   - Rdson: Ohms
//   - Ciss: Farads
//   - Fsw: Hertz
//   - RthJA: °C per Watt, junction to ambient
//   - Tamb: °C
type OperatingPoint struct {
	Vin     float64
	Vout    float64
	Vdrive  float64
	Idriver float64
	Iout    float64
	Rdson   float64
	Ciss    float64
	Fsw     float64
	RthJA   float64
	Tamb    float64
}

// Duty returns Vout/Vin. It is not clamped to [0,1].
func (op OperatingPoint) Duty() float64 { return op.Vout / op.Vin }

// Policy selects which loss terms add up to PTotal.
// PGate is always computed; IncludeGate only decides whether it is summed.
type Policy struct {
	IncludeGate bool
}

var (
	// CondSwitch sums conduction and switching loss (frequency sweeps).
	CondSwitch = Policy{IncludeGate: false}
	// CondSwitchGate also adds gate-drive loss (capacitance sweeps).
	CondSwitchGate = Policy{IncludeGate: true}
)

func (p Policy) String() string {
	if p.IncludeGate {
		return "cond+sw+gate"
	}
	return "cond+sw"
}

// Result is the power breakdown and junction temperature for one
// operating point.
type Result struct {
	Duty   float64 // dimensionless
	PCond  float64 // W
	TSw    float64 // s, estimated switching transition time
	PSw    float64 // W
	PGate  float64 // W
	PTotal float64 // W
	Tj     float64 // °C
}
