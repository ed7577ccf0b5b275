package report

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/de-tools/report-forge/pkg/adapters"
	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/de-tools/report-forge/pkg/models/store"
)

// memoryRepository is the in-memory Repository used by tests and by
// callers that need a store without a database file. It goes through the
// same JSON snapshot round-trip as the DuckDB store so both behave
// identically.
type memoryRepository struct {
	mu        sync.RWMutex
	reports   map[string]store.ReportRecord
	templates map[string]store.TemplateRecord
	now       func() time.Time
}

func NewMemory() Repository {
	return &memoryRepository{
		reports:   map[string]store.ReportRecord{},
		templates: map[string]store.TemplateRecord{},
		now:       time.Now,
	}
}

func (m *memoryRepository) ListReports(_ context.Context) ([]domain.ReportSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.ReportSummary, 0, len(m.reports))
	for _, rec := range m.reports {
		out = append(out, domain.ReportSummary{ID: rec.ID, Name: rec.Name, UpdatedAt: rec.UpdatedAt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (m *memoryRepository) GetReport(_ context.Context, id string) (*domain.ReportDocument, error) {
	m.mu.RLock()
	rec, ok := m.reports[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return adapters.MapStoreRecordToDomainReport(rec)
}

func (m *memoryRepository) SaveReport(_ context.Context, doc *domain.ReportDocument) error {
	snapshot := domain.CloneDocument(doc)
	snapshot.UpdatedAt = m.now()
	rec, err := adapters.MapDomainReportToStoreRecord(snapshot)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.reports[rec.ID] = rec
	m.mu.Unlock()
	return nil
}

func (m *memoryRepository) DeleteReport(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reports[id]; !ok {
		return ErrNotFound
	}
	delete(m.reports, id)
	return nil
}

func (m *memoryRepository) SaveTemplate(_ context.Context, t domain.Template) error {
	rec, err := adapters.MapDomainTemplateToStoreRecord(t)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.templates[rec.ID] = rec
	m.mu.Unlock()
	return nil
}

func (m *memoryRepository) ListTemplates(_ context.Context) ([]domain.Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Template, 0, len(m.templates))
	for _, rec := range m.templates {
		t, err := adapters.MapStoreRecordToDomainTemplate(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memoryRepository) GetTemplate(_ context.Context, id string) (domain.Template, error) {
	m.mu.RLock()
	rec, ok := m.templates[id]
	m.mu.RUnlock()
	if !ok {
		return domain.Template{}, ErrNotFound
	}
	return adapters.MapStoreRecordToDomainTemplate(rec)
}
