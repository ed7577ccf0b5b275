package export

import (
	"context"
	"strings"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/de-tools/report-forge/pkg/services/catalog"
)

// Per-block page-break safety margins, in points. KPI and table blocks
// draw multi-line groups that must not straddle a page boundary, so they
// break earlier than plain text.
const (
	pdfBreakMarginLarge = 60 // kpi, table
	pdfBreakMarginSmall = 30 // text, chart
)

type pdfLayout struct {
	doc    *pdfDoc
	setup  PageSetup
	cursor float64
}

func (e *Exporter) exportPDF(ctx context.Context, doc *domain.ReportDocument) []byte {
	l := &pdfLayout{
		doc:    newPDFDoc(e.setup.Width, e.setup.Height),
		setup:  e.setup,
		cursor: e.setup.Margin,
	}

	name := doc.Name
	if name == "" {
		name = "Report"
	}
	l.line(18, true, name, 24)
	if doc.Description != "" {
		l.writeWrapped(doc.Description, 11, pdfBreakMarginSmall)
		l.cursor += 6
	}
	if doc.DateRange != "" {
		l.line(10, false, "Date range: "+doc.DateRange, 14)
	}
	l.cursor += 10

	for _, section := range doc.Sections {
		l.ensure(30, pdfBreakMarginSmall)
		l.line(14, true, section.Title, 18)
		l.doc.rule(l.setup.Margin, l.setup.Width-l.setup.Margin, l.cursor-12)

		for _, w := range section.Widgets {
			rec := e.extract(ctx, w)
			if rec == nil {
				continue
			}
			switch rec.Type {
			case domain.WidgetKPI:
				l.writeKPI(rec)
			case domain.WidgetText:
				l.writeWrapped(stripTags(rec.Content), 11, pdfBreakMarginSmall)
				l.cursor += 8
			case domain.WidgetTable:
				l.writeTable(rec)
			case domain.WidgetChart:
				l.writeChart(rec)
			}
		}
		l.cursor += 12
	}

	return l.doc.render()
}

// ensure starts a new page when the next block of the given height would
// cross into the block's safety margin above the bottom of the page.
func (l *pdfLayout) ensure(needed, safety float64) {
	if l.cursor+needed > l.setup.Height-l.setup.Margin-safety {
		l.doc.addPage()
		l.cursor = l.setup.Margin
	}
}

func (l *pdfLayout) line(size float64, bold bool, text string, advance float64) {
	l.doc.text(l.setup.Margin, l.cursor+size, size, bold, text)
	l.cursor += advance
}

func (l *pdfLayout) writeKPI(rec *catalog.Extract) {
	l.ensure(48, pdfBreakMarginLarge)
	l.line(10, false, rec.Title, 14)
	value := rec.Value
	if rec.Unit != "" {
		value += " " + rec.Unit
	}
	l.line(16, true, value, 20)
	if rec.TrendValue != "" {
		glyph := ""
		switch rec.Trend {
		case "up":
			glyph = "+ "
		case "down":
			glyph = "- "
		}
		l.line(9, false, glyph+rec.TrendValue, 12)
	}
	l.cursor += 6
}

func (l *pdfLayout) writeTable(rec *catalog.Extract) {
	if rec.Table == nil || len(rec.Table.Headers) == 0 {
		return
	}
	usable := l.setup.Width - 2*l.setup.Margin
	colWidth := usable / float64(len(rec.Table.Headers))

	l.ensure(36, pdfBreakMarginLarge)
	if rec.Title != "" {
		l.line(11, true, rec.Title, 16)
	}

	writeRow := func(cells []string, bold bool) {
		l.ensure(14, pdfBreakMarginLarge)
		for i, cell := range cells {
			x := l.setup.Margin + float64(i)*colWidth
			l.doc.text(x, l.cursor+9, 9, bold, truncate(cell, int(colWidth/5)))
		}
		l.cursor += 14
	}

	writeRow(rec.Table.Headers, true)
	for _, row := range rec.Table.Rows {
		writeRow(row, false)
	}
	l.cursor += 8
}

func (l *pdfLayout) writeChart(rec *catalog.Extract) {
	l.ensure(30, pdfBreakMarginSmall)
	l.line(11, true, rec.Title+" ("+rec.ChartType+")", 14)
	l.line(9, false, "visualization placeholder", 14)
	l.cursor += 6
}

func (l *pdfLayout) writeWrapped(text string, size, safety float64) {
	usable := l.setup.Width - 2*l.setup.Margin
	maxChars := int(usable / (size * 0.5))
	for _, line := range wrapText(text, maxChars) {
		l.ensure(size+4, safety)
		l.line(size, false, line, size+4)
	}
}

func wrapText(s string, max int) []string {
	if max < 1 {
		max = 1
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > max {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}

func truncate(s string, max int) string {
	if max < 4 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// stripTags removes HTML tags and unescapes the entities rich-text
// content commonly carries.
func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	out := b.String()
	r := strings.NewReplacer("&nbsp;", " ", "&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&#39;", "'")
	return strings.TrimSpace(r.Replace(out))
}
