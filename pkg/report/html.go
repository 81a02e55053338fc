package report

import (
	"bytes"
	"html/template"
	"io"
)

// WriteHTML renders a standalone HTML page with the slope summary and the
// per-point tables.
func WriteHTML(w io.Writer, r Report) error {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, r); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

var tpl = template.Must(template.New("rep").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px;margin-bottom:18px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
ul{margin:6px 0 14px;padding-left:20px}
.small{color:#555}
.hot{color:#b00}
.note{background:#eef8ee;border:1px solid #cdc;padding:8px 12px;border-radius:6px}
</style>

<h1>{{.Title}}</h1>

<p class="small">
{{.Context}} &nbsp;|&nbsp;
Total: {{.Policy}} &nbsp;|&nbsp;
Max Tj: {{printf "%.0f" .TjMax}} °C
</p>

<h2>Slopes</h2>
<table>
<thead>
<tr><th>scenario</th><th>m ({{.PowerSlopeUnit}})</th><th>m ({{.TempSlopeUnit}})</th><th>peak Tj (°C)</th></tr>
</thead>
<tbody>
{{range .Series}}
<tr>
<td>{{.Name}}</td>
<td>{{printf "%.3f" .SlopePower}}</td>
<td>{{printf "%.2f" .SlopeTemp}}</td>
<td{{if .Hot}} class="hot"{{end}}>{{printf "%.2f" .MaxTj}}</td>
</tr>
{{end}}
</tbody>
</table>

<div class="note">
<b>Slope interpretation (m):</b>
<ul>
<li><b>{{.PowerSlopeUnit}}</b>: increase in power loss (W) for every 1 {{.Axis.SlopeUnit}} increase of {{.Axis.Name}}, taken between the first and last sweep points.</li>
<li>A steeper slope means the device choice along this axis matters more for that scenario.</li>
</ul>
</div>

{{range .Series}}
<h2>{{.Name}}</h2>
<table>
<thead>
<tr><th>{{$.AxisName}}</th><th>P_cond (W)</th><th>P_sw (W)</th><th>P_gate (W)</th><th>P_total (W)</th><th>Tj (°C)</th></tr>
</thead>
<tbody>
{{range .Rows}}
<tr>
<td>{{printf "%.6g" .X}}</td>
<td>{{printf "%.4f" .PCond}}</td>
<td>{{printf "%.4f" .PSw}}</td>
<td>{{printf "%.4f" .PGate}}</td>
<td>{{printf "%.4f" .PTotal}}</td>
<td>{{printf "%.2f" .Tj}}</td>
</tr>
{{end}}
</tbody>
</table>
{{end}}
</html>`))
