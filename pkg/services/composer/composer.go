package composer

import (
	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/de-tools/report-forge/pkg/services/catalog"
)

// Reserved drop zones. Every other zone id is a section id.
const (
	ZoneCatalog  = "catalog"
	ZoneSections = "sections"
)

// DropKind discriminates what was dragged.
type DropKind string

const (
	DropSection DropKind = "section"
	DropWidget  DropKind = "widget"
)

// Position locates one end of a drag gesture.
type Position struct {
	ZoneID string
	Index  int
}

// DropResult is the outcome of a completed drag gesture. A nil
// Destination means the drag was cancelled and nothing changes.
// WidgetType is only meaningful when the source zone is the catalog.
type DropResult struct {
	Kind        DropKind
	WidgetType  domain.WidgetType
	Source      Position
	Destination *Position
}

// Engine applies drag-and-drop driven structural edits to a report
// document. All operations mutate the document in place, are the only
// mutation path for the tree, and treat stale ids and out-of-range
// indices as no-ops rather than errors: drop targets come from live
// render state, so a mismatch only means the state moved underneath
// the gesture.
type Engine struct {
	ids IDGenerator
	cat *catalog.Registry
}

func NewEngine(ids IDGenerator, cat *catalog.Registry) *Engine {
	return &Engine{ids: ids, cat: cat}
}

// ApplyDrop interprets a gesture result and applies the matching
// transformation.
func (e *Engine) ApplyDrop(doc *domain.ReportDocument, drop DropResult) {
	if doc == nil || drop.Destination == nil {
		return
	}
	dest := *drop.Destination

	switch drop.Kind {
	case DropSection:
		e.ReorderSections(doc, drop.Source.Index, dest.Index)
	case DropWidget:
		switch {
		case drop.Source.ZoneID == ZoneCatalog:
			e.InsertWidget(doc, dest.ZoneID, drop.WidgetType, dest.Index)
		case drop.Source.ZoneID == dest.ZoneID:
			e.ReorderWidgets(doc, dest.ZoneID, drop.Source.Index, dest.Index)
		default:
			e.MoveWidget(doc, drop.Source.ZoneID, drop.Source.Index, dest.ZoneID, dest.Index)
		}
	}
}

// AddSection appends a new empty section and returns it so the caller
// can select it as the active section.
func (e *Engine) AddSection(doc *domain.ReportDocument) *domain.Section {
	if doc == nil {
		return nil
	}
	doc.Sections = append(doc.Sections, domain.Section{
		ID:     "section-" + e.ids.Next(),
		Title:  "New Section",
		Layout: domain.SectionLayoutSingle,
	})
	return &doc.Sections[len(doc.Sections)-1]
}

// RemoveSection deletes the section with the given id.
func (e *Engine) RemoveSection(doc *domain.ReportDocument, sectionID string) {
	if doc == nil {
		return
	}
	idx := doc.SectionIndex(sectionID)
	if idx < 0 {
		return
	}
	doc.Sections = append(doc.Sections[:idx], doc.Sections[idx+1:]...)
}

// DuplicateSection clones the section directly after the original. The
// clone and every widget in it get fresh ids: downstream code keys
// render targets by id, so a reused id corrupts drag bookkeeping.
func (e *Engine) DuplicateSection(doc *domain.ReportDocument, sectionID string) *domain.Section {
	if doc == nil {
		return nil
	}
	idx := doc.SectionIndex(sectionID)
	if idx < 0 {
		return nil
	}

	clone := domain.CloneSection(doc.Sections[idx])
	clone.ID = "section-" + e.ids.Next()
	for i := range clone.Widgets {
		clone.Widgets[i].ID = "widget-" + e.ids.Next()
	}

	doc.Sections = append(doc.Sections, domain.Section{})
	copy(doc.Sections[idx+2:], doc.Sections[idx+1:])
	doc.Sections[idx+1] = clone
	return &doc.Sections[idx+1]
}

// InsertWidget creates a widget of the given kind with its catalog
// default config and splices it into the section at the given index.
// The catalog is not depleted by use.
func (e *Engine) InsertWidget(doc *domain.ReportDocument, sectionID string, t domain.WidgetType, index int) *domain.Widget {
	if doc == nil {
		return nil
	}
	section := doc.Section(sectionID)
	if section == nil {
		return nil
	}

	w := domain.Widget{
		ID:     "widget-" + e.ids.Next(),
		Type:   t,
		Config: e.cat.NewConfig(t),
	}
	index = clamp(index, len(section.Widgets))

	section.Widgets = append(section.Widgets, domain.Widget{})
	copy(section.Widgets[index+1:], section.Widgets[index:])
	section.Widgets[index] = w
	return &section.Widgets[index]
}

// RemoveWidget deletes the widget from its section.
func (e *Engine) RemoveWidget(doc *domain.ReportDocument, sectionID, widgetID string) {
	if doc == nil {
		return
	}
	section := doc.Section(sectionID)
	if section == nil {
		return
	}
	idx := section.WidgetIndex(widgetID)
	if idx < 0 {
		return
	}
	section.Widgets = append(section.Widgets[:idx], section.Widgets[idx+1:]...)
}

// ReorderSections removes the section at from and reinserts it at to.
// Remove-then-insert, not a swap: moving index 2 to index 0 shifts the
// items in between by one.
func (e *Engine) ReorderSections(doc *domain.ReportDocument, from, to int) {
	if doc == nil {
		return
	}
	if from < 0 || from >= len(doc.Sections) || to < 0 || to >= len(doc.Sections) || from == to {
		return
	}
	moved := doc.Sections[from]
	doc.Sections = append(doc.Sections[:from], doc.Sections[from+1:]...)
	doc.Sections = append(doc.Sections, domain.Section{})
	copy(doc.Sections[to+1:], doc.Sections[to:])
	doc.Sections[to] = moved
}

// ReorderWidgets applies the same remove-then-insert rule inside one
// section's widget list.
func (e *Engine) ReorderWidgets(doc *domain.ReportDocument, sectionID string, from, to int) {
	if doc == nil {
		return
	}
	section := doc.Section(sectionID)
	if section == nil {
		return
	}
	if from < 0 || from >= len(section.Widgets) || to < 0 || to >= len(section.Widgets) || from == to {
		return
	}
	moved := section.Widgets[from]
	section.Widgets = append(section.Widgets[:from], section.Widgets[from+1:]...)
	section.Widgets = append(section.Widgets, domain.Widget{})
	copy(section.Widgets[to+1:], section.Widgets[to:])
	section.Widgets[to] = moved
}

// MoveWidget removes the widget at fromIndex in the source section and
// inserts it at toIndex in the destination section. Both lists change in
// the same call; the widget is never observable in neither or both.
func (e *Engine) MoveWidget(doc *domain.ReportDocument, fromSectionID string, fromIndex int, toSectionID string, toIndex int) {
	if doc == nil {
		return
	}
	src := doc.Section(fromSectionID)
	dst := doc.Section(toSectionID)
	if src == nil || dst == nil {
		return
	}
	if fromIndex < 0 || fromIndex >= len(src.Widgets) {
		return
	}

	moved := src.Widgets[fromIndex]
	src.Widgets = append(src.Widgets[:fromIndex], src.Widgets[fromIndex+1:]...)

	toIndex = clamp(toIndex, len(dst.Widgets))
	dst.Widgets = append(dst.Widgets, domain.Widget{})
	copy(dst.Widgets[toIndex+1:], dst.Widgets[toIndex:])
	dst.Widgets[toIndex] = moved
}

// Rekey assigns fresh ids to every section and widget. Used when a
// template snapshot is instantiated into a new document so the copy
// never shares ids with other documents.
func (e *Engine) Rekey(doc *domain.ReportDocument) {
	if doc == nil {
		return
	}
	for i := range doc.Sections {
		doc.Sections[i].ID = "section-" + e.ids.Next()
		for j := range doc.Sections[i].Widgets {
			doc.Sections[i].Widgets[j].ID = "widget-" + e.ids.Next()
		}
	}
}

// SetWidgetConfig updates a single config key on a widget.
func (e *Engine) SetWidgetConfig(doc *domain.ReportDocument, sectionID, widgetID, key string, value any) {
	w := docWidget(doc, sectionID, widgetID)
	if w == nil {
		return
	}
	if w.Config == nil {
		w.Config = map[string]any{}
	}
	w.Config[key] = value
}

// RenameSection updates a section title.
func (e *Engine) RenameSection(doc *domain.ReportDocument, sectionID, title string) {
	if doc == nil {
		return
	}
	if s := doc.Section(sectionID); s != nil {
		s.Title = title
	}
}

// SetSectionLayout updates a section layout hint.
func (e *Engine) SetSectionLayout(doc *domain.ReportDocument, sectionID string, layout domain.SectionLayout) {
	if doc == nil {
		return
	}
	if s := doc.Section(sectionID); s != nil {
		s.Layout = layout
	}
}

func docWidget(doc *domain.ReportDocument, sectionID, widgetID string) *domain.Widget {
	if doc == nil {
		return nil
	}
	return doc.Widget(sectionID, widgetID)
}

func clamp(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}
