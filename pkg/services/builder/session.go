package builder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/de-tools/report-forge/pkg/services/composer"
	"github.com/de-tools/report-forge/pkg/services/export"
)

// Store is the persistence contract the builder depends on: whole
// document snapshot writes and reads.
type Store interface {
	SaveReport(ctx context.Context, doc *domain.ReportDocument) error
	GetReport(ctx context.Context, id string) (*domain.ReportDocument, error)
	SaveTemplate(ctx context.Context, t domain.Template) error
}

// Notifier carries user-visible feedback out of the session. Persistence
// and export failures are surfaced here, never fatal.
type Notifier interface {
	Info(msg string)
	Error(msg string)
}

// NopNotifier discards all feedback.
type NopNotifier struct{}

func (NopNotifier) Info(string)  {}
func (NopNotifier) Error(string) {}

const DefaultAutosaveInterval = 30 * time.Second

// Session owns one open report document. Every structural edit goes
// through the composition engine, and every edit resets the autosave
// timer: the pending timer is debounced, only the latest state is ever
// autosaved, and two timers never overlap.
type Session struct {
	mu       sync.Mutex
	doc      *domain.ReportDocument
	engine   *composer.Engine
	store    Store
	exporter *export.Exporter
	notifier Notifier

	interval time.Duration
	autosave *time.Timer
}

type SessionOption func(*Session)

func WithAutosaveInterval(d time.Duration) SessionOption {
	return func(s *Session) { s.interval = d }
}

func WithNotifier(n Notifier) SessionOption {
	return func(s *Session) { s.notifier = n }
}

func NewSession(engine *composer.Engine, store Store, exporter *export.Exporter, opts ...SessionOption) *Session {
	s := &Session{
		engine:   engine,
		store:    store,
		exporter: exporter,
		notifier: NopNotifier{},
		interval: DefaultAutosaveInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the document with the given id from the store.
func (s *Session) Open(ctx context.Context, id string) error {
	doc, err := s.store.GetReport(ctx, id)
	if err != nil {
		return fmt.Errorf("open report %s: %w", id, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	return nil
}

// New starts a fresh empty document.
func (s *Session) New(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = &domain.ReportDocument{
		ID:         id,
		Name:       "Untitled Report",
		LayoutMode: domain.LayoutModeSingle,
	}
}

// FromTemplate seeds the document from a template snapshot. Every
// section and widget in the copy gets a fresh id.
func (s *Session) FromTemplate(id string, t domain.Template) {
	doc := domain.CloneDocument(&t.Snapshot)
	doc.ID = id
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	s.edit(func(e *composer.Engine, d *domain.ReportDocument) {
		e.Rekey(d)
	})
}

// Document returns a deep copy of the current document.
func (s *Session) Document() *domain.ReportDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneDocument(s.doc)
}

// Edit runs one mutation against the document through the composition
// engine, then reschedules autosave. This is the session's single
// mutation path.
func (s *Session) Edit(fn func(e *composer.Engine, doc *domain.ReportDocument)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edit(fn)
}

func (s *Session) edit(fn func(e *composer.Engine, doc *domain.ReportDocument)) {
	if s.doc == nil {
		return
	}
	fn(s.engine, s.doc)
	s.rescheduleAutosaveLocked()
}

// Save writes the current snapshot explicitly.
func (s *Session) Save(ctx context.Context) error {
	snapshot := s.Document()
	if snapshot == nil {
		return fmt.Errorf("save: no open document")
	}
	if err := s.store.SaveReport(ctx, snapshot); err != nil {
		s.notifier.Error("failed to save report")
		return fmt.Errorf("save report %s: %w", snapshot.ID, err)
	}
	s.notifier.Info("report saved")
	return nil
}

// SaveAsTemplate persists the current document as a template with every
// widget's transient data cleared. This is the only place data is
// stripped before handing off to persistence.
func (s *Session) SaveAsTemplate(ctx context.Context, templateID, name string) error {
	snapshot := s.Document()
	if snapshot == nil {
		return fmt.Errorf("save template: no open document")
	}
	for i := range snapshot.Sections {
		for j := range snapshot.Sections[i].Widgets {
			snapshot.Sections[i].Widgets[j].Data = nil
		}
	}
	t := domain.Template{
		ID:          templateID,
		Name:        name,
		Description: snapshot.Description,
		Snapshot:    *snapshot,
		CreatedAt:   time.Now(),
	}
	if err := s.store.SaveTemplate(ctx, t); err != nil {
		s.notifier.Error("failed to save template")
		return fmt.Errorf("save template %s: %w", templateID, err)
	}
	s.notifier.Info("template saved")
	return nil
}

// Export renders the current snapshot in the requested format.
func (s *Session) Export(ctx context.Context, format export.Format) (export.Artifact, error) {
	snapshot := s.Document()
	if snapshot == nil {
		return export.Artifact{}, fmt.Errorf("export: no open document")
	}
	artifact, err := s.exporter.Export(ctx, snapshot, format)
	if err != nil {
		s.notifier.Error(fmt.Sprintf("export failed: %v", err))
		return export.Artifact{}, err
	}
	return artifact, nil
}

// Close stops any pending autosave.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.autosave != nil {
		s.autosave.Stop()
		s.autosave = nil
	}
}

// rescheduleAutosaveLocked resets the debounce timer. The timer is only
// armed while the document has at least one section.
func (s *Session) rescheduleAutosaveLocked() {
	if s.autosave != nil {
		s.autosave.Stop()
		s.autosave = nil
	}
	if s.doc == nil || len(s.doc.Sections) == 0 {
		return
	}
	s.autosave = time.AfterFunc(s.interval, s.autosaveFire)
}

// autosaveFire saves a snapshot taken at fire time. Failures are
// surfaced and forgotten; the next edit arms the timer again.
func (s *Session) autosaveFire() {
	snapshot := s.Document()
	if snapshot == nil {
		return
	}
	if err := s.store.SaveReport(context.Background(), snapshot); err != nil {
		s.notifier.Error("autosave failed")
	}
}
