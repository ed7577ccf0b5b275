package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/de-tools/report-forge/pkg/services/catalog"
	"github.com/rs/zerolog"
)

// Format names an export target.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "excel"
	FormatCSV   Format = "csv"
	FormatPrint Format = "print"
)

// ErrUnsupportedFormat is returned for format strings outside the table
// above. Unlike per-widget extraction failures, this is a hard error the
// caller must surface.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Artifact is a generated export file.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PageSetup is the PDF page geometry in points.
type PageSetup struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	Margin float64 `mapstructure:"margin"`
}

// DefaultPageSetup is US Letter with 50pt margins.
func DefaultPageSetup() PageSetup {
	return PageSetup{Width: 612, Height: 792, Margin: 50}
}

// Exporter turns report documents into files. Widgets whose extraction
// fails are skipped individually; the rest of the document still
// exports.
type Exporter struct {
	cat   *catalog.Registry
	setup PageSetup
}

func NewExporter(cat *catalog.Registry, setup PageSetup) *Exporter {
	if setup.Width <= 0 || setup.Height <= 0 {
		setup = DefaultPageSetup()
	}
	return &Exporter{cat: cat, setup: setup}
}

// Export renders the document in the requested format.
func (e *Exporter) Export(ctx context.Context, doc *domain.ReportDocument, format Format) (Artifact, error) {
	if doc == nil {
		return Artifact{}, fmt.Errorf("export: document is nil")
	}
	switch format {
	case FormatPDF:
		return Artifact{
			Filename:    exportFilename(doc, "pdf"),
			ContentType: "application/pdf",
			Data:        e.exportPDF(ctx, doc),
		}, nil
	case FormatExcel:
		return Artifact{
			Filename:    exportFilename(doc, "csv"),
			ContentType: "text/csv; charset=utf-8",
			Data:        e.exportExcel(ctx, doc),
		}, nil
	case FormatCSV:
		return Artifact{
			Filename:    exportFilename(doc, "csv"),
			ContentType: "text/csv; charset=utf-8",
			Data:        e.exportCSV(ctx, doc),
		}, nil
	case FormatPrint:
		data, err := e.exportPrintHTML(ctx, doc)
		if err != nil {
			return Artifact{}, fmt.Errorf("render print document: %w", err)
		}
		return Artifact{
			Filename:    exportFilename(doc, "html"),
			ContentType: "text/html; charset=utf-8",
			Data:        data,
		}, nil
	default:
		return Artifact{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// extract flattens one widget, swallowing failures at widget
// granularity. A nil result means skip.
func (e *Exporter) extract(ctx context.Context, w domain.Widget) *catalog.Extract {
	rec, err := e.cat.Extract(w)
	if err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Str("widget_id", w.ID).
			Str("widget_type", string(w.Type)).
			Msg("skipping widget during export")
		return nil
	}
	return rec
}

func exportFilename(doc *domain.ReportDocument, ext string) string {
	name := doc.Name
	if name == "" {
		name = "report"
	}
	return fmt.Sprintf("%s_%s.%s", name, time.Now().Format("2006-01-02"), ext)
}
