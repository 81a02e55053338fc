package report

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/ja7ad/buckloss/pkg/util"
)

const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 10 * vg.Inch

	// room on the right of the x axis for the slope labels
	labelPad = 0.25
)

var tjMaxColor = color.RGBA{R: 220, A: 255}

// WritePNG renders two stacked panels, total loss and junction temperature
// against the swept axis, one line per scenario. Each line ends with its
// slope label; the temperature panel has a dashed line at TjMax.
// Non-finite points are left out of the lines.
func WritePNG(w io.Writer, r Report) error {
	power, err := panel(r,
		fmt.Sprintf("Total Power Loss (slope in %s)", r.PowerSlopeUnit()),
		"Power Loss (W)",
		func(row Row) float64 { return float64(row.PTotal) },
		func(s Series) string { return fmt.Sprintf("m=%.2f %s", s.SlopePower, r.PowerSlopeUnit()) },
	)
	if err != nil {
		return fmt.Errorf("power panel: %w", err)
	}

	temp, err := panel(r,
		fmt.Sprintf("Junction Temperature (slope in %s)", r.TempSlopeUnit()),
		"Temperature (°C)",
		func(row Row) float64 { return float64(row.Tj) },
		func(s Series) string { return fmt.Sprintf("m=%.1f %s", s.SlopeTemp, r.TempSlopeUnit()) },
	)
	if err != nil {
		return fmt.Errorf("temperature panel: %w", err)
	}

	tjMax := float64(r.TjMax)
	ref := plotter.NewFunction(func(float64) float64 { return tjMax })
	ref.Color = tjMaxColor
	ref.Width = vg.Points(1)
	ref.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	temp.Add(ref)
	temp.Legend.Add(fmt.Sprintf("Max Tj (%.0f°C)", tjMax), ref)
	includeLevel(&temp.Y, tjMax)

	img := vgimg.New(chartWidth, chartHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2, Cols: 1,
		PadTop: vg.Millimeter * 4, PadBottom: vg.Millimeter * 4,
		PadLeft: vg.Millimeter * 4, PadRight: vg.Millimeter * 4,
		PadY: vg.Millimeter * 8,
	}
	plots := [][]*plot.Plot{{power}, {temp}}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	_, err = vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	return err
}

func panel(r Report, title, ylabel string, y func(Row) float64, label func(Series) string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title + " @ " + r.Context
	p.X.Label.Text = r.AxisName
	p.Y.Label.Text = ylabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	xmin, xmax := math.Inf(1), math.Inf(-1)
	for i, s := range r.Series {
		xys := make(plotter.XYs, 0, len(s.Rows))
		for _, row := range s.Rows {
			v := y(row)
			x := float64(row.X)
			if !util.Finite(v) || !util.Finite(x) {
				continue
			}
			xys = append(xys, plotter.XY{X: x, Y: v})
		}
		if len(xys) == 0 {
			continue
		}
		xmin = math.Min(xmin, xys[0].X)
		xmax = math.Max(xmax, xys[len(xys)-1].X)

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.Name, line)

		end := xys[len(xys)-1]
		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{end},
			Labels: []string{" " + label(s)},
		})
		if err != nil {
			return nil, err
		}
		for k := range lbl.TextStyle {
			lbl.TextStyle[k].Color = plotutil.Color(i)
			lbl.TextStyle[k].YAlign = draw.YCenter
		}
		p.Add(lbl)
	}

	if span := xmax - xmin; span > 0 {
		p.X.Min = xmin
		p.X.Max = xmax + span*labelPad
	}
	return p, nil
}

// includeLevel widens ax so a horizontal line at v stays 5% inside the
// plotted range, whether the data lies above or below it.
func includeLevel(ax *plot.Axis, v float64) {
	if !util.Finite(v) {
		return
	}
	pad := math.Abs(v) * 0.05
	if !(ax.Max >= v+pad) {
		ax.Max = v + pad
	}
	if !(ax.Min <= v-pad) {
		ax.Min = v - pad
	}
}
