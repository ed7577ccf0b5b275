package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/report-forge/pkg/adapters"
	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/de-tools/report-forge/pkg/models/store"
	reportstore "github.com/de-tools/report-forge/pkg/store/report"
)

type reportStore struct {
	db *sql.DB
}

// NewStore returns a DuckDB-backed report repository. Documents are
// stored as whole JSON snapshots keyed by id.
func NewStore(db *sql.DB) (reportstore.Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &reportStore{db: db}, nil
}

func (s *reportStore) ListReports(ctx context.Context) ([]domain.ReportSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, updated_at FROM reports ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var out []domain.ReportSummary
	for rows.Next() {
		var summary domain.ReportSummary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan report summary: %w", err)
		}
		out = append(out, summary)
	}
	return out, rows.Err()
}

func (s *reportStore) GetReport(ctx context.Context, id string) (*domain.ReportDocument, error) {
	var rec store.ReportRecord
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, document, updated_at FROM reports WHERE id = ?`, id).
		Scan(&rec.ID, &rec.Name, &rec.Document, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, reportstore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get report %s: %w", id, err)
	}
	return adapters.MapStoreRecordToDomainReport(rec)
}

func (s *reportStore) SaveReport(ctx context.Context, doc *domain.ReportDocument) error {
	snapshot := domain.CloneDocument(doc)
	snapshot.UpdatedAt = time.Now()
	rec, err := adapters.MapDomainReportToStoreRecord(snapshot)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO reports (id, name, document, updated_at) VALUES (?, ?, ?, ?)`,
		rec.ID, rec.Name, rec.Document, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save report %s: %w", rec.ID, err)
	}
	return nil
}

func (s *reportStore) DeleteReport(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete report %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete report %s: %w", id, err)
	}
	if affected == 0 {
		return reportstore.ErrNotFound
	}
	return nil
}

func (s *reportStore) SaveTemplate(ctx context.Context, t domain.Template) error {
	rec, err := adapters.MapDomainTemplateToStoreRecord(t)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO templates (id, name, description, snapshot, created_at) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Name, rec.Description, rec.Snapshot, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("save template %s: %w", rec.ID, err)
	}
	return nil
}

func (s *reportStore) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, snapshot, created_at FROM templates ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var out []domain.Template
	for rows.Next() {
		var rec store.TemplateRecord
		var description sql.NullString
		if err := rows.Scan(&rec.ID, &rec.Name, &description, &rec.Snapshot, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		rec.Description = description.String
		t, err := adapters.MapStoreRecordToDomainTemplate(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *reportStore) GetTemplate(ctx context.Context, id string) (domain.Template, error) {
	var rec store.TemplateRecord
	var description sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, snapshot, created_at FROM templates WHERE id = ?`, id).
		Scan(&rec.ID, &rec.Name, &description, &rec.Snapshot, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Template{}, reportstore.ErrNotFound
	}
	if err != nil {
		return domain.Template{}, fmt.Errorf("get template %s: %w", id, err)
	}
	rec.Description = description.String
	return adapters.MapStoreRecordToDomainTemplate(rec)
}
