package sweep

import "github.com/ja7ad/buckloss/pkg/loss"

// Row is the loss breakdown of one scenario at a fixed axis value.
type Row struct {
	Scenario float64
	loss.Result
}

// Tabulate evaluates the loss model once per scenario with the axis field
// held at the given value. Rows follow the scenario order.
func Tabulate(fixed loss.OperatingPoint, axis Field, at float64, scenario Field, scenarios []float64, p loss.Policy) []Row {
	op := axis.Set(fixed, at)
	rows := make([]Row, len(scenarios))
	for i, sc := range scenarios {
		rows[i] = Row{Scenario: sc, Result: loss.Evaluate(scenario.Set(op, sc), p)}
	}
	return rows
}

// Snapshot tabulates s.Scenarios at one axis value using s.Policy.
func (s Spec) Snapshot(fixed loss.OperatingPoint, at float64) []Row {
	return Tabulate(fixed, s.Axis, at, s.Scenario, s.Scenarios, s.Policy)
}
