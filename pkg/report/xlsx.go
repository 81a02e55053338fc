package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ja7ad/buckloss/pkg/util"
)

// maximum sheet name length accepted by Excel
const maxSheetName = 31

// WriteXLSX writes a workbook with a Summary sheet (one row per scenario,
// slopes included) and one sheet per scenario holding every grid point.
// Values are stored in display units; non-finite cells are written as text.
func WriteXLSX(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	summary := "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return err
	}

	head := []any{
		"Scenario",
		"m_P (" + r.PowerSlopeUnit() + ")",
		"m_T (" + r.TempSlopeUnit() + ")",
		"Peak Tj (°C)",
		"Margin (°C)",
	}
	if err := f.SetSheetRow(summary, "A1", &head); err != nil {
		return err
	}
	for i, s := range r.Series {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{
			s.Name,
			cellValue(float64(s.SlopePower)),
			cellValue(float64(s.SlopeTemp)),
			cellValue(float64(s.MaxTj)),
			cellValue(float64(r.TjMax) - float64(s.MaxTj)),
		}
		if err := f.SetSheetRow(summary, cell, &row); err != nil {
			return err
		}
	}
	note, _ := excelize.CoordinatesToCellName(1, len(r.Series)+3)
	if err := f.SetCellValue(summary, note, r.Context+" | total: "+r.Policy); err != nil {
		return err
	}

	for i, s := range r.Series {
		sheet := sheetName(i, s.Name)
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		head := []any{r.AxisName, "P_cond (W)", "P_sw (W)", "P_gate (W)", "P_total (W)", "Tj (°C)"}
		if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
			return err
		}
		for j, row := range s.Rows {
			cell, _ := excelize.CoordinatesToCellName(1, j+2)
			vals := []any{
				cellValue(float64(row.X)),
				cellValue(float64(row.PCond)),
				cellValue(float64(row.PSw)),
				cellValue(float64(row.PGate)),
				cellValue(float64(row.PTotal)),
				cellValue(float64(row.Tj)),
			}
			if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

// sheetName builds a unique, Excel-safe name such as "1. 100 kHz".
func sheetName(i int, name string) string {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, name)
	s := fmt.Sprintf("%d. %s", i+1, clean)
	if r := []rune(s); len(r) > maxSheetName {
		s = string(r[:maxSheetName])
	}
	return s
}

func cellValue(v float64) any {
	if !util.Finite(v) {
		return util.FmtFloat(v)
	}
	return v
}
