package report

import (
	"context"
	"errors"

	"github.com/de-tools/report-forge/pkg/models/domain"
)

// ErrNotFound is returned when a report or template id is unknown.
var ErrNotFound = errors.New("not found")

// Repository persists whole-document snapshots. Section and widget
// ordering lives inside the snapshot; there are no per-item position
// columns anywhere.
type Repository interface {
	ListReports(ctx context.Context) ([]domain.ReportSummary, error)
	GetReport(ctx context.Context, id string) (*domain.ReportDocument, error)
	SaveReport(ctx context.Context, doc *domain.ReportDocument) error
	DeleteReport(ctx context.Context, id string) error

	SaveTemplate(ctx context.Context, t domain.Template) error
	ListTemplates(ctx context.Context) ([]domain.Template, error)
	GetTemplate(ctx context.Context, id string) (domain.Template, error)
}
