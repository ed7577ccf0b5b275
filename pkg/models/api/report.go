package api

import "time"

type Widget struct {
	Id         string         `json:"id"`
	Type       string         `json:"type"`
	Config     map[string]any `json:"config"`
	DataSource string         `json:"data_source,omitempty"`
}

type Section struct {
	Id      string   `json:"id"`
	Title   string   `json:"title"`
	Layout  string   `json:"layout"`
	Widgets []Widget `json:"widgets"`
}

type Report struct {
	Id          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Sections    []Section         `json:"sections"`
	DataSources []string          `json:"data_sources,omitempty"`
	DateRange   string            `json:"date_range,omitempty"`
	Filters     map[string]string `json:"filters,omitempty"`
	LayoutMode  string            `json:"layout_mode,omitempty"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// WidgetDefinition describes one catalog entry: the kind a drop request
// may name and the config a fresh widget of that kind starts with.
type WidgetDefinition struct {
	Type          string         `json:"type"`
	Name          string         `json:"name"`
	DefaultConfig map[string]any `json:"default_config"`
}

type ReportSummary struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Template struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Snapshot    Report    `json:"snapshot"`
	CreatedAt   time.Time `json:"created_at"`
}

// DropPosition locates one end of a drag gesture. ZoneId is a section id,
// or one of the reserved zones ("catalog", "sections").
type DropPosition struct {
	ZoneId string `json:"zone_id"`
	Index  int    `json:"index"`
}

// DropRequest carries a completed drag gesture. A nil destination means
// the drag was cancelled.
type DropRequest struct {
	Kind        string        `json:"kind"` // "section" or "widget"
	WidgetType  string        `json:"widget_type,omitempty"`
	Source      DropPosition  `json:"source"`
	Destination *DropPosition `json:"destination"`
}

type Error struct {
	Message string `json:"message"`
}
