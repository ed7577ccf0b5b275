package domain

import "time"

// LayoutMode controls the overall arrangement of the builder canvas.
type LayoutMode string

const (
	LayoutModeSingle    LayoutMode = "single"
	LayoutModeTwoColumn LayoutMode = "two-column"
	LayoutModeGrid      LayoutMode = "grid"
)

// SectionLayout determines how a section arranges its widgets.
type SectionLayout string

const (
	SectionLayoutSingle    SectionLayout = "single-column"
	SectionLayoutTwoColumn SectionLayout = "two-column"
	SectionLayoutGrid      SectionLayout = "grid"
)

// WidgetType identifies a kind of visual element in the catalog.
type WidgetType string

const (
	WidgetChart    WidgetType = "chart"
	WidgetKPI      WidgetType = "kpi"
	WidgetTable    WidgetType = "table"
	WidgetText     WidgetType = "text"
	WidgetImage    WidgetType = "image"
	WidgetDivider  WidgetType = "divider"
	WidgetTimeline WidgetType = "timeline"
	WidgetCalendar WidgetType = "calendar"
	WidgetProgress WidgetType = "progress"
	WidgetMatrix   WidgetType = "matrix"
)

// Widget is a single visual element with type-specific configuration.
// Config keys depend on Type; defaults come from the widget catalog at
// creation time. Data holds transient feed data and is stripped when the
// document is persisted as a template.
type Widget struct {
	ID         string
	Type       WidgetType
	Config     map[string]any
	DataSource string
	Data       any
}

// Section is an ordered container of widgets with a layout hint.
// A section belongs to exactly one document; it keeps no back-reference.
type Section struct {
	ID      string
	Title   string
	Layout  SectionLayout
	Widgets []Widget
}

// ReportDocument is the full tree of sections and widgets representing
// one report being authored. Section order is the sole source of truth
// for render and export order.
type ReportDocument struct {
	ID          string
	Name        string
	Description string
	Sections    []Section
	DataSources []string
	DateRange   string
	Filters     map[string]string
	LayoutMode  LayoutMode
	UpdatedAt   time.Time
}

// ReportSummary is the listing shape for stored reports.
type ReportSummary struct {
	ID        string
	Name      string
	UpdatedAt time.Time
}

// Section returns the section with the given id, or nil.
func (d *ReportDocument) Section(id string) *Section {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return &d.Sections[i]
		}
	}
	return nil
}

// SectionIndex returns the position of the section with the given id, or -1.
func (d *ReportDocument) SectionIndex(id string) int {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return i
		}
	}
	return -1
}

// Widget returns the widget with the given id inside the given section, or nil.
func (d *ReportDocument) Widget(sectionID, widgetID string) *Widget {
	s := d.Section(sectionID)
	if s == nil {
		return nil
	}
	for i := range s.Widgets {
		if s.Widgets[i].ID == widgetID {
			return &s.Widgets[i]
		}
	}
	return nil
}

// WidgetIndex returns the position of the widget inside the section, or -1.
func (s *Section) WidgetIndex(widgetID string) int {
	for i := range s.Widgets {
		if s.Widgets[i].ID == widgetID {
			return i
		}
	}
	return -1
}
