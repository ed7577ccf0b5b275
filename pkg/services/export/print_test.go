package export

import (
	"context"
	"testing"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportPrintHTML(t *testing.T) {
	e := newTestExporter()
	doc := &domain.ReportDocument{
		ID:        "r1",
		Name:      "Quarterly Review",
		DateRange: "2026-07-01 to 2026-09-30",
		Sections: []domain.Section{
			{
				ID:    "s1",
				Title: "Overview",
				Widgets: []domain.Widget{
					kpiWidget("w1", "Revenue", 1200, "up", "8%"),
					{ID: "w2", Type: domain.WidgetText, Config: map[string]any{
						"content": "<b>Strong</b> quarter",
					}},
					{ID: "w3", Type: domain.WidgetChart, Config: map[string]any{
						"title": "Trend", "chartType": "line",
					}},
				},
			},
			{
				ID:    "s2",
				Title: "Breakdown",
				Widgets: []domain.Widget{
					tableWidget("w4", "Regions",
						[]string{"Region", "Total"},
						[][]string{{"EMEA", "700"}}),
				},
			},
		},
	}

	data, err := e.exportPrintHTML(context.Background(), doc)
	require.NoError(t, err)
	html := string(data)

	// Loading the page triggers the print dialog.
	assert.Contains(t, html, `onload="window.print(); window.close();"`)

	// Sections paginate; the last one must not force a trailing blank page.
	assert.Contains(t, html, "page-break-after: always;")
	assert.Contains(t, html, ".section:last-of-type { page-break-after: auto; }")

	assert.Contains(t, html, "<title>Quarterly Review</title>")
	assert.Contains(t, html, "2026-07-01 to 2026-09-30")
	assert.Contains(t, html, "<h2>Overview</h2>")
	assert.Contains(t, html, "<h2>Breakdown</h2>")

	assert.Contains(t, html, `<div class="kpi-value">1200</div>`)
	assert.Contains(t, html, "up 8%")

	// Rich text passes through unescaped.
	assert.Contains(t, html, "<b>Strong</b> quarter")

	assert.Contains(t, html, "line visualization placeholder")

	assert.Contains(t, html, "<th>Region</th>")
	assert.Contains(t, html, "<td>EMEA</td>")
}

func TestExportPrintHTML_EscapesDocumentName(t *testing.T) {
	e := newTestExporter()
	doc := &domain.ReportDocument{
		ID:   "r1",
		Name: "Q3 <draft>",
	}

	data, err := e.exportPrintHTML(context.Background(), doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Q3 &lt;draft&gt;")
	assert.NotContains(t, string(data), "<h1>Q3 <draft></h1>")
}

func TestExportPrintHTML_SkipsUnextractableWidgets(t *testing.T) {
	e := newTestExporter()
	doc := &domain.ReportDocument{
		ID:   "r1",
		Name: "Mixed",
		Sections: []domain.Section{
			{
				ID:    "s1",
				Title: "Only Supported Kinds",
				Widgets: []domain.Widget{
					{ID: "w1", Type: domain.WidgetDivider},
					{ID: "w2", Type: domain.WidgetImage},
					kpiWidget("w3", "Kept", 1, "neutral", ""),
				},
			},
		},
	}

	data, err := e.exportPrintHTML(context.Background(), doc)
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "Kept")
	assert.NotContains(t, html, "divider")
	assert.NotContains(t, html, "image")
}
