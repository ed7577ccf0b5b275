package console

import (
	"bytes"
	"testing"

	"github.com/de-tools/report-forge/pkg/services/catalog"
	"github.com/de-tools/report-forge/pkg/services/preview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	view := preview.DocumentView{
		Name: "Quarterly Review",
		Sections: []preview.SectionView{
			{
				ID:     "s1",
				Title:  "Overview",
				Layout: preview.LayoutGridOfTwo,
				Widgets: []preview.WidgetView{
					{
						ID: "w1",
						Placeholder: catalog.Placeholder{
							Kind:  "kpi",
							Title: "Users",
							Lines: []string{"42"},
						},
					},
				},
			},
			{
				ID:     "s2",
				Title:  "Notes",
				Layout: preview.LayoutSingleColumn,
				Empty:  preview.EmptySection,
			},
		},
	}

	require.NoError(t, reporter.Handle(view))
	out := buf.String()

	assert.Contains(t, out, "Quarterly Review")
	assert.Contains(t, out, "=== Overview (grid-of-2) ===")
	assert.Contains(t, out, "kpi")
	assert.Contains(t, out, "Users")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "=== Notes (single-column) ===")
	assert.Contains(t, out, "(empty section, no widgets)")
}

func TestReporter_HandleEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	err := reporter.Handle(preview.DocumentView{Name: "Blank", Empty: preview.EmptyDocument})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "(empty document, no sections)")
}
