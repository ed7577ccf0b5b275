package export

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/de-tools/report-forge/pkg/models/domain"
)

// exportPrintHTML builds a complete standalone HTML document with the
// print stylesheet inlined; loading it triggers the browser print dialog
// and closes the window. Section boundaries become page breaks, widgets
// inside a section flow together.

type printWidget struct {
	Kind      string
	Title     string
	Value     string
	Unit      string
	Trend     string
	Content   template.HTML
	Headers   []string
	Rows      [][]string
	ChartType string
}

type printSection struct {
	Title   string
	Widgets []printWidget
}

type printData struct {
	Name      string
	DateRange string
	Sections  []printSection
}

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Name}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; margin: 40px; color: #111; }
  h1 { font-size: 24px; margin-bottom: 4px; }
  h2 { font-size: 18px; border-bottom: 1px solid #ccc; padding-bottom: 4px; }
  .date-range { color: #555; font-size: 12px; margin-bottom: 24px; }
  .section { page-break-after: always; }
  .section:last-of-type { page-break-after: auto; }
  .widget { margin: 16px 0; }
  .kpi-value { font-size: 28px; font-weight: bold; }
  .kpi-title, .chart-placeholder { color: #555; font-size: 12px; }
  table { border-collapse: collapse; width: 100%; }
  th, td { border: 1px solid #ccc; padding: 6px 8px; text-align: left; font-size: 12px; }
  th { background: #f3f4f6; }
</style>
</head>
<body onload="window.print(); window.close();">
<h1>{{.Name}}</h1>
{{if .DateRange}}<div class="date-range">{{.DateRange}}</div>{{end}}
{{range .Sections}}
<div class="section">
<h2>{{.Title}}</h2>
{{range .Widgets}}
<div class="widget">
{{if eq .Kind "kpi"}}
  <div class="kpi-title">{{.Title}}</div>
  <div class="kpi-value">{{.Value}}{{if .Unit}} {{.Unit}}{{end}}</div>
  {{if .Trend}}<div class="kpi-title">{{.Trend}}</div>{{end}}
{{else if eq .Kind "text"}}
  <div>{{.Content}}</div>
{{else if eq .Kind "table"}}
  {{if .Title}}<h3>{{.Title}}</h3>{{end}}
  <table>
    <tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
    {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}
  </table>
{{else if eq .Kind "chart"}}
  <h3>{{.Title}}</h3>
  <div class="chart-placeholder">{{.ChartType}} visualization placeholder</div>
{{end}}
</div>
{{end}}
</div>
{{end}}
</body>
</html>
`))

func (e *Exporter) exportPrintHTML(ctx context.Context, doc *domain.ReportDocument) ([]byte, error) {
	name := doc.Name
	if name == "" {
		name = "Report"
	}
	data := printData{Name: name, DateRange: doc.DateRange}

	for _, section := range doc.Sections {
		ps := printSection{Title: section.Title}
		for _, w := range section.Widgets {
			rec := e.extract(ctx, w)
			if rec == nil {
				continue
			}
			pw := printWidget{
				Kind:      string(rec.Type),
				Title:     rec.Title,
				Value:     rec.Value,
				Unit:      rec.Unit,
				Content:   template.HTML(rec.Content),
				ChartType: rec.ChartType,
			}
			if rec.TrendValue != "" {
				pw.Trend = rec.Trend + " " + rec.TrendValue
			}
			if rec.Table != nil {
				pw.Headers = rec.Table.Headers
				pw.Rows = rec.Table.Rows
			}
			ps.Widgets = append(ps.Widgets, pw)
		}
		data.Sections = append(data.Sections, ps)
	}

	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute print template: %w", err)
	}
	return buf.Bytes(), nil
}
