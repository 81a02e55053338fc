package report

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/ja7ad/buckloss/pkg/util"
)

var csvHeader = []string{"scenario", "x", "p_cond_w", "p_sw_w", "p_gate_w", "p_total_w", "tj_c"}

// WriteCSV writes one line per grid point. The scenario and x columns are
// in display units.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range r.Series {
		for _, row := range s.Rows {
			err := cw.Write([]string{
				util.FmtFloat(float64(s.Scenario)),
				util.FmtFloat(float64(row.X)),
				util.FmtFloat(float64(row.PCond)),
				util.FmtFloat(float64(row.PSw)),
				util.FmtFloat(float64(row.PGate)),
				util.FmtFloat(float64(row.PTotal)),
				util.FmtFloat(float64(row.Tj)),
			})
			if err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the whole report. NaN and ±Inf become null.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
