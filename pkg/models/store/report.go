package store

import "time"

// ReportRecord is the persisted shape of a report: the document tree is
// stored as a single JSON snapshot, ordering included. No per-item
// position columns exist; the snapshot is the source of truth.
type ReportRecord struct {
	ID        string
	Name      string
	Document  []byte
	UpdatedAt time.Time
}

// TemplateRecord is the persisted shape of a template snapshot.
type TemplateRecord struct {
	ID          string
	Name        string
	Description string
	Snapshot    []byte
	CreatedAt   time.Time
}
