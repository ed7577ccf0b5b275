package composer

import (
	"testing"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/de-tools/report-forge/pkg/services/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(NewSequenceGenerator("id"), catalog.NewRegistry())
}

func testDocument() *domain.ReportDocument {
	return &domain.ReportDocument{
		ID:   "report-1",
		Name: "Quarterly Review",
		Sections: []domain.Section{
			{
				ID:     "section-a",
				Title:  "Overview",
				Layout: domain.SectionLayoutSingle,
				Widgets: []domain.Widget{
					{ID: "widget-a1", Type: domain.WidgetKPI, Config: map[string]any{"title": "Users"}},
					{ID: "widget-a2", Type: domain.WidgetText, Config: map[string]any{"content": "hello"}},
				},
			},
			{
				ID:     "section-b",
				Title:  "Details",
				Layout: domain.SectionLayoutTwoColumn,
				Widgets: []domain.Widget{
					{ID: "widget-b1", Type: domain.WidgetTable},
				},
			},
			{
				ID:     "section-c",
				Title:  "Appendix",
				Layout: domain.SectionLayoutGrid,
			},
		},
	}
}

func sectionIDs(doc *domain.ReportDocument) []string {
	out := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		out = append(out, s.ID)
	}
	return out
}

func widgetIDs(s *domain.Section) []string {
	out := make([]string, 0, len(s.Widgets))
	for _, w := range s.Widgets {
		out = append(out, w.ID)
	}
	return out
}

func allIDs(doc *domain.ReportDocument) map[string]bool {
	ids := map[string]bool{}
	for _, s := range doc.Sections {
		ids[s.ID] = true
		for _, w := range s.Widgets {
			ids[w.ID] = true
		}
	}
	return ids
}

func TestEngine_AddSection(t *testing.T) {
	e := newTestEngine()
	doc := testDocument()

	section := e.AddSection(doc)
	require.NotNil(t, section)

	assert.Len(t, doc.Sections, 4)
	assert.Equal(t, "section-id-1", section.ID)
	assert.Equal(t, "New Section", section.Title)
	assert.Equal(t, domain.SectionLayoutSingle, section.Layout)
	assert.Empty(t, section.Widgets)
}

func TestEngine_RemoveSection(t *testing.T) {
	e := newTestEngine()

	t.Run("removes by id", func(t *testing.T) {
		doc := testDocument()
		e.RemoveSection(doc, "section-b")
		assert.Equal(t, []string{"section-a", "section-c"}, sectionIDs(doc))
	})

	t.Run("stale id is a no-op", func(t *testing.T) {
		doc := testDocument()
		e.RemoveSection(doc, "section-gone")
		assert.Len(t, doc.Sections, 3)
	})
}

func TestEngine_DuplicateSection(t *testing.T) {
	e := newTestEngine()
	doc := testDocument()
	before := allIDs(doc)

	clone := e.DuplicateSection(doc, "section-a")
	require.NotNil(t, clone)

	// Clone sits directly after the original.
	assert.Equal(t, []string{"section-a", clone.ID, "section-b", "section-c"}, sectionIDs(doc))
	assert.Equal(t, "Overview", clone.Title)
	require.Len(t, clone.Widgets, 2)
	assert.Equal(t, map[string]any{"title": "Users"}, clone.Widgets[0].Config)

	// Every id in the clone is fresh.
	assert.False(t, before[clone.ID])
	for _, w := range clone.Widgets {
		assert.False(t, before[w.ID])
	}

	// Configs are deep-copied, not shared.
	clone.Widgets[0].Config["title"] = "changed"
	assert.Equal(t, "Users", doc.Sections[0].Widgets[0].Config["title"])
}

func TestEngine_DuplicateSection_UnknownID(t *testing.T) {
	e := newTestEngine()
	doc := testDocument()

	assert.Nil(t, e.DuplicateSection(doc, "section-gone"))
	assert.Len(t, doc.Sections, 3)
}

func TestEngine_InsertWidget(t *testing.T) {
	e := newTestEngine()

	t.Run("inserts at index with default config", func(t *testing.T) {
		doc := testDocument()
		w := e.InsertWidget(doc, "section-a", domain.WidgetChart, 1)
		require.NotNil(t, w)

		section := doc.Section("section-a")
		assert.Equal(t, []string{"widget-a1", w.ID, "widget-a2"}, widgetIDs(section))
		assert.Equal(t, domain.WidgetChart, w.Type)
		assert.NotEmpty(t, w.Config)
		assert.Equal(t, "bar", w.Config["chartType"])
	})

	t.Run("clamps out-of-range index", func(t *testing.T) {
		doc := testDocument()
		w := e.InsertWidget(doc, "section-a", domain.WidgetText, 99)
		require.NotNil(t, w)
		section := doc.Section("section-a")
		assert.Equal(t, w.ID, section.Widgets[len(section.Widgets)-1].ID)
	})

	t.Run("stale section id is a no-op", func(t *testing.T) {
		doc := testDocument()
		assert.Nil(t, e.InsertWidget(doc, "section-gone", domain.WidgetText, 0))
	})
}

func TestEngine_RemoveWidget(t *testing.T) {
	e := newTestEngine()
	doc := testDocument()

	e.RemoveWidget(doc, "section-a", "widget-a1")
	assert.Equal(t, []string{"widget-a2"}, widgetIDs(doc.Section("section-a")))

	e.RemoveWidget(doc, "section-a", "widget-gone")
	assert.Len(t, doc.Section("section-a").Widgets, 1)
}

func TestEngine_ReorderSections(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name string
		from int
		to   int
		want []string
	}{
		{name: "move last to front", from: 2, to: 0, want: []string{"section-c", "section-a", "section-b"}},
		{name: "move front to last", from: 0, to: 2, want: []string{"section-b", "section-c", "section-a"}},
		{name: "same index is a no-op", from: 1, to: 1, want: []string{"section-a", "section-b", "section-c"}},
		{name: "out of range is a no-op", from: 0, to: 5, want: []string{"section-a", "section-b", "section-c"}},
		{name: "negative from is a no-op", from: -1, to: 0, want: []string{"section-a", "section-b", "section-c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDocument()
			e.ReorderSections(doc, tt.from, tt.to)
			assert.Equal(t, tt.want, sectionIDs(doc))
		})
	}
}

func TestEngine_ReorderWidgets(t *testing.T) {
	e := newTestEngine()
	doc := testDocument()

	e.ReorderWidgets(doc, "section-a", 1, 0)
	assert.Equal(t, []string{"widget-a2", "widget-a1"}, widgetIDs(doc.Section("section-a")))

	e.ReorderWidgets(doc, "section-a", 0, 5)
	assert.Equal(t, []string{"widget-a2", "widget-a1"}, widgetIDs(doc.Section("section-a")))
}

func TestEngine_MoveWidget(t *testing.T) {
	e := newTestEngine()

	t.Run("moves across sections", func(t *testing.T) {
		doc := testDocument()
		e.MoveWidget(doc, "section-a", 0, "section-b", 0)

		assert.Equal(t, []string{"widget-a2"}, widgetIDs(doc.Section("section-a")))
		assert.Equal(t, []string{"widget-a1", "widget-b1"}, widgetIDs(doc.Section("section-b")))
	})

	t.Run("destination index clamped", func(t *testing.T) {
		doc := testDocument()
		e.MoveWidget(doc, "section-a", 0, "section-b", 99)
		assert.Equal(t, []string{"widget-b1", "widget-a1"}, widgetIDs(doc.Section("section-b")))
	})

	t.Run("stale destination leaves source untouched", func(t *testing.T) {
		doc := testDocument()
		e.MoveWidget(doc, "section-a", 0, "section-gone", 0)
		assert.Equal(t, []string{"widget-a1", "widget-a2"}, widgetIDs(doc.Section("section-a")))
	})
}

func TestEngine_ApplyDrop(t *testing.T) {
	e := newTestEngine()

	t.Run("cancelled drop changes nothing", func(t *testing.T) {
		doc := testDocument()
		e.ApplyDrop(doc, DropResult{
			Kind:        DropWidget,
			Source:      Position{ZoneID: "section-a", Index: 0},
			Destination: nil,
		})
		assert.Equal(t, []string{"widget-a1", "widget-a2"}, widgetIDs(doc.Section("section-a")))
	})

	t.Run("section drop reorders sections", func(t *testing.T) {
		doc := testDocument()
		e.ApplyDrop(doc, DropResult{
			Kind:        DropSection,
			Source:      Position{ZoneID: ZoneSections, Index: 2},
			Destination: &Position{ZoneID: ZoneSections, Index: 0},
		})
		assert.Equal(t, []string{"section-c", "section-a", "section-b"}, sectionIDs(doc))
	})

	t.Run("catalog drop inserts a new widget", func(t *testing.T) {
		doc := testDocument()
		e.ApplyDrop(doc, DropResult{
			Kind:        DropWidget,
			WidgetType:  domain.WidgetKPI,
			Source:      Position{ZoneID: ZoneCatalog, Index: 0},
			Destination: &Position{ZoneID: "section-c", Index: 0},
		})

		section := doc.Section("section-c")
		require.Len(t, section.Widgets, 1)
		assert.Equal(t, domain.WidgetKPI, section.Widgets[0].Type)
		assert.NotEmpty(t, section.Widgets[0].Config)
	})

	t.Run("same-zone drop reorders in place", func(t *testing.T) {
		doc := testDocument()
		e.ApplyDrop(doc, DropResult{
			Kind:        DropWidget,
			Source:      Position{ZoneID: "section-a", Index: 0},
			Destination: &Position{ZoneID: "section-a", Index: 1},
		})
		assert.Equal(t, []string{"widget-a2", "widget-a1"}, widgetIDs(doc.Section("section-a")))
	})

	t.Run("cross-zone drop moves the widget", func(t *testing.T) {
		doc := testDocument()
		e.ApplyDrop(doc, DropResult{
			Kind:        DropWidget,
			Source:      Position{ZoneID: "section-b", Index: 0},
			Destination: &Position{ZoneID: "section-c", Index: 0},
		})
		assert.Empty(t, doc.Section("section-b").Widgets)
		assert.Equal(t, []string{"widget-b1"}, widgetIDs(doc.Section("section-c")))
	})
}

func TestEngine_Rekey(t *testing.T) {
	e := newTestEngine()
	doc := testDocument()
	before := allIDs(doc)

	e.Rekey(doc)

	for id := range allIDs(doc) {
		assert.False(t, before[id], "id %s survived rekey", id)
	}
	assert.Len(t, doc.Sections, 3)
	assert.Len(t, doc.Sections[0].Widgets, 2)
}

func TestEngine_SetWidgetConfig(t *testing.T) {
	e := newTestEngine()
	doc := testDocument()

	e.SetWidgetConfig(doc, "section-a", "widget-a1", "title", "Revenue")
	assert.Equal(t, "Revenue", doc.Sections[0].Widgets[0].Config["title"])

	// Nil config map is initialized on first write.
	e.SetWidgetConfig(doc, "section-b", "widget-b1", "title", "Breakdown")
	assert.Equal(t, "Breakdown", doc.Sections[1].Widgets[0].Config["title"])

	e.SetWidgetConfig(doc, "section-a", "widget-gone", "title", "x")
}

func TestEngine_SectionEdits(t *testing.T) {
	e := newTestEngine()
	doc := testDocument()

	e.RenameSection(doc, "section-a", "Summary")
	assert.Equal(t, "Summary", doc.Sections[0].Title)

	e.SetSectionLayout(doc, "section-a", domain.SectionLayoutGrid)
	assert.Equal(t, domain.SectionLayoutGrid, doc.Sections[0].Layout)

	e.RenameSection(doc, "section-gone", "x")
}
