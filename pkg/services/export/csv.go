package export

import (
	"context"
	"strings"
	"time"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/de-tools/report-forge/pkg/services/catalog"
)

// CSV emission rules, kept byte-compatible with the original exports:
// header rows are bare comma-joined, data rows have every field wrapped
// in double quotes regardless of content.

const kpiListingHeader = "KPI,Value,Trend,Change"

// exportCSV emits only the first table widget found across all sections
// in document order. When no table widget exists anywhere it falls back
// to a flat KPI listing instead. Known under-scoping, preserved as a
// defined behavior.
func (e *Exporter) exportCSV(ctx context.Context, doc *domain.ReportDocument) []byte {
	var b strings.Builder

	if table := e.firstTable(ctx, doc); table != nil {
		b.WriteString(strings.Join(table.Headers, ","))
		b.WriteString("\n")
		for _, row := range table.Rows {
			b.WriteString(quoteRow(row))
			b.WriteString("\n")
		}
		return []byte(b.String())
	}

	b.WriteString(kpiListingHeader)
	b.WriteString("\n")
	for _, rec := range e.collectKPIs(ctx, doc) {
		b.WriteString(quoteRow([]string{rec.Title, rec.Value, rec.Trend, rec.TrendValue}))
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// exportExcel emits a structured multi-section CSV: report metadata,
// then per section a KPI table if any KPI widgets exist, then one CSV
// table per table widget. The file keeps a .csv payload on purpose; no
// real XLSX binary is produced, spreadsheet tools open it via CSV
// import.
func (e *Exporter) exportExcel(ctx context.Context, doc *domain.ReportDocument) []byte {
	var b strings.Builder

	name := doc.Name
	if name == "" {
		name = "report"
	}
	b.WriteString(quoteRow([]string{"Report", name}))
	b.WriteString("\n")
	if doc.Description != "" {
		b.WriteString(quoteRow([]string{"Description", doc.Description}))
		b.WriteString("\n")
	}
	b.WriteString(quoteRow([]string{"Generated", time.Now().Format("2006-01-02")}))
	b.WriteString("\n\n")

	for _, section := range doc.Sections {
		b.WriteString(quoteRow([]string{"Section", section.Title}))
		b.WriteString("\n")

		var kpis []*catalog.Extract
		var tables []*catalog.Extract
		for _, w := range section.Widgets {
			rec := e.extract(ctx, w)
			if rec == nil {
				continue
			}
			switch rec.Type {
			case domain.WidgetKPI:
				kpis = append(kpis, rec)
			case domain.WidgetTable:
				if rec.Table != nil {
					tables = append(tables, rec)
				}
			}
		}

		if len(kpis) > 0 {
			b.WriteString(kpiListingHeader)
			b.WriteString("\n")
			for _, rec := range kpis {
				b.WriteString(quoteRow([]string{rec.Title, rec.Value, rec.Trend, rec.TrendValue}))
				b.WriteString("\n")
			}
		}
		for _, rec := range tables {
			b.WriteString(quoteRow([]string{"Table", rec.Title}))
			b.WriteString("\n")
			b.WriteString(strings.Join(rec.Table.Headers, ","))
			b.WriteString("\n")
			for _, row := range rec.Table.Rows {
				b.WriteString(quoteRow(row))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	return []byte(b.String())
}

func (e *Exporter) firstTable(ctx context.Context, doc *domain.ReportDocument) *catalog.TableData {
	for _, section := range doc.Sections {
		for _, w := range section.Widgets {
			if w.Type != domain.WidgetTable {
				continue
			}
			rec := e.extract(ctx, w)
			if rec == nil || rec.Table == nil {
				continue
			}
			return rec.Table
		}
	}
	return nil
}

func (e *Exporter) collectKPIs(ctx context.Context, doc *domain.ReportDocument) []*catalog.Extract {
	var out []*catalog.Extract
	for _, section := range doc.Sections {
		for _, w := range section.Widgets {
			if w.Type != domain.WidgetKPI {
				continue
			}
			if rec := e.extract(ctx, w); rec != nil {
				out = append(out, rec)
			}
		}
	}
	return out
}

func quoteRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
