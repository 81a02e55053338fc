package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ja7ad/buckloss/pkg/loss"
	"github.com/ja7ad/buckloss/pkg/sweep"
	"github.com/ja7ad/buckloss/pkg/types"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// WriteSummary prints one line per scenario: endpoint values and slopes.
func WriteSummary(w io.Writer, r Report) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "%s (%s)\n%s\n\n", r.Title, r.Policy, r.Context)
	fmt.Fprintf(tw, "SCENARIO\tP_total start (W)\tP_total end (W)\tTj start (°C)\tTj end (°C)\tm_P (%s)\tm_T (%s)\tmargin (°C)\n",
		r.PowerSlopeUnit(), r.TempSlopeUnit())
	fmt.Fprintln(tw, "--------\t-----------------\t---------------\t-------------\t-----------\t--------\t--------\t-----------")
	for _, s := range r.Series {
		first, last := endpoints(s.Rows)
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.2f\t%.2f\t%.3f\t%.2f\t%.2f\n",
			s.Name, first.PTotal, last.PTotal, first.Tj, last.Tj,
			s.SlopePower, s.SlopeTemp, float64(r.TjMax)-float64(s.MaxTj))
	}
	return tw.Flush()
}

// WriteTable prints every grid point of every scenario.
func WriteTable(w io.Writer, r Report) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "SCENARIO\t%s\tP_cond (W)\tP_sw (W)\tP_gate (W)\tP_total (W)\tTj (°C)\n", r.AxisName)
	fmt.Fprintln(tw, "--------\t----\t----------\t--------\t----------\t-----------\t-------")
	for _, s := range r.Series {
		for _, row := range s.Rows {
			fmt.Fprintf(tw, "%s\t%.6g\t%.4f\t%.4f\t%.4f\t%.4f\t%.2f\n",
				s.Name, row.X, row.PCond, row.PSw, row.PGate, row.PTotal, row.Tj)
		}
	}
	return tw.Flush()
}

// Snapshot is the tabulated loss breakdown at one axis value.
type Snapshot struct {
	Axis     Unit
	At       float64 // display unit
	Scenario Unit
	Policy   loss.Policy
	TjMax    float64
	Rows     []sweep.Row
}

// WriteSnapshot prints the snapshot with a thermal margin column.
func WriteSnapshot(w io.Writer, s Snapshot) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "%s = %s (%s)\n\n", s.Axis.Name, types.Humanize(s.At*s.Axis.Per, s.Axis.Base), s.Policy)
	fmt.Fprintf(tw, "%s\tD\tt_sw (ns)\tP_cond (W)\tP_sw (W)\tP_gate (W)\tP_total (W)\tTj (°C)\tmargin (°C)\n", s.Scenario.Label())
	fmt.Fprintln(tw, "----\t-\t---------\t----------\t--------\t----------\t-----------\t-------\t-----------")
	for _, r := range s.Rows {
		fmt.Fprintf(tw, "%s\t%.3f\t%.2f\t%.4f\t%.4f\t%.4f\t%.4f\t%.2f\t%.2f\n",
			s.Scenario.Format(s.Scenario.Of(r.Scenario)), r.Duty, r.TSw*1e9,
			r.PCond, r.PSw, r.PGate, r.PTotal, r.Tj, r.Margin(s.TjMax))
	}
	return tw.Flush()
}

func endpoints(rows []Row) (Row, Row) {
	if len(rows) == 0 {
		return Row{}, Row{}
	}
	return rows[0], rows[len(rows)-1]
}
