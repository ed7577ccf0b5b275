package preview

import (
	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/de-tools/report-forge/pkg/services/catalog"
)

// LayoutClass is the CSS-independent layout descriptor the front end
// maps onto its own grid classes.
type LayoutClass string

const (
	LayoutSingleColumn LayoutClass = "single-column"
	LayoutGridOfTwo    LayoutClass = "grid-of-2"
	LayoutGridOfThree  LayoutClass = "grid-of-3"
)

// EmptyState markers for documents without sections and sections
// without widgets.
const (
	EmptyDocument = "no-sections"
	EmptySection  = "no-widgets"
)

type WidgetView struct {
	ID          string
	Type        domain.WidgetType
	Placeholder catalog.Placeholder
}

type SectionView struct {
	ID      string
	Title   string
	Layout  LayoutClass
	Widgets []WidgetView
	// Empty names the empty-state marker when the section has no
	// widgets, and is "" otherwise.
	Empty string
}

type DocumentView struct {
	Name     string
	Sections []SectionView
	Empty    string
}

// Renderer maps a report document to a read-only renderable tree. It is
// a pure projection with no side effects, safe to call on every edit.
type Renderer struct {
	cat *catalog.Registry
}

func NewRenderer(cat *catalog.Registry) *Renderer {
	return &Renderer{cat: cat}
}

func (r *Renderer) Render(doc *domain.ReportDocument) DocumentView {
	view := DocumentView{}
	if doc == nil {
		view.Empty = EmptyDocument
		return view
	}
	view.Name = doc.Name
	if len(doc.Sections) == 0 {
		view.Empty = EmptyDocument
		return view
	}

	for _, s := range doc.Sections {
		sv := SectionView{
			ID:     s.ID,
			Title:  s.Title,
			Layout: layoutClass(s.Layout),
		}
		if len(s.Widgets) == 0 {
			sv.Empty = EmptySection
		}
		for _, w := range s.Widgets {
			sv.Widgets = append(sv.Widgets, WidgetView{
				ID:          w.ID,
				Type:        w.Type,
				Placeholder: r.cat.Preview(w),
			})
		}
		view.Sections = append(view.Sections, sv)
	}
	return view
}

func layoutClass(l domain.SectionLayout) LayoutClass {
	switch l {
	case domain.SectionLayoutTwoColumn:
		return LayoutGridOfTwo
	case domain.SectionLayoutGrid:
		return LayoutGridOfThree
	default:
		return LayoutSingleColumn
	}
}
