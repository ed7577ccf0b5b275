package domain

import "time"

// Template is a document snapshot with widget data stripped, usable to
// seed new documents.
type Template struct {
	ID          string
	Name        string
	Description string
	Snapshot    ReportDocument
	CreatedAt   time.Time
}
