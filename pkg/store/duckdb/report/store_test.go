package report

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/de-tools/report-forge/pkg/store/duckdb"
	reportstore "github.com/de-tools/report-forge/pkg/store/report"
	_ "github.com/marcboeker/go-duckdb/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store reportstore.Repository
}

func setupTestDB(t *testing.T) *sql.DB {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	return db
}

func setupFixture(t *testing.T) *fixture {
	db := setupTestDB(t)
	store, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{
		db:    db,
		store: store,
	}
}

func sampleDocument(id, name string) *domain.ReportDocument {
	return &domain.ReportDocument{
		ID:   id,
		Name: name,
		Sections: []domain.Section{
			{
				ID:     "s1",
				Title:  "Overview",
				Layout: domain.SectionLayoutSingle,
				Widgets: []domain.Widget{
					{ID: "w1", Type: domain.WidgetKPI, Config: map[string]any{"title": "Users"}},
				},
			},
		},
		LayoutMode: domain.LayoutModeSingle,
	}
}

func TestReportStore_NewStore(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}

func TestReportStore_SaveAndGet(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	t.Run("round-trips the document", func(t *testing.T) {
		require.NoError(t, f.store.SaveReport(ctx, sampleDocument("r1", "First")))

		doc, err := f.store.GetReport(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, "First", doc.Name)
		require.Len(t, doc.Sections, 1)
		assert.Equal(t, "Overview", doc.Sections[0].Title)
		assert.Equal(t, "Users", doc.Sections[0].Widgets[0].Config["title"])
		assert.False(t, doc.UpdatedAt.IsZero())
	})

	t.Run("save replaces the existing snapshot", func(t *testing.T) {
		updated := sampleDocument("r1", "Renamed")
		require.NoError(t, f.store.SaveReport(ctx, updated))

		doc, err := f.store.GetReport(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", doc.Name)

		var count int
		err = f.db.QueryRow("SELECT COUNT(*) FROM reports WHERE id = ?", "r1").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := f.store.GetReport(ctx, "missing")
		assert.ErrorIs(t, err, reportstore.ErrNotFound)
	})
}

func TestReportStore_List(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.SaveReport(ctx, sampleDocument("r1", "Older")))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, f.store.SaveReport(ctx, sampleDocument("r2", "Newer")))

	summaries, err := f.store.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "r2", summaries[0].ID)
	assert.Equal(t, "r1", summaries[1].ID)
}

func TestReportStore_Delete(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.SaveReport(ctx, sampleDocument("r1", "First")))
	require.NoError(t, f.store.DeleteReport(ctx, "r1"))

	_, err := f.store.GetReport(ctx, "r1")
	assert.ErrorIs(t, err, reportstore.ErrNotFound)

	assert.ErrorIs(t, f.store.DeleteReport(ctx, "r1"), reportstore.ErrNotFound)
}

func TestReportStore_Templates(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	template := domain.Template{
		ID:          "t1",
		Name:        "Starter",
		Description: "Seed layout",
		Snapshot:    *sampleDocument("snapshot", "Starter"),
		CreatedAt:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("save and get", func(t *testing.T) {
		require.NoError(t, f.store.SaveTemplate(ctx, template))

		loaded, err := f.store.GetTemplate(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, "Starter", loaded.Name)
		assert.Equal(t, "Seed layout", loaded.Description)
		require.Len(t, loaded.Snapshot.Sections, 1)
	})

	t.Run("list ordered by name", func(t *testing.T) {
		require.NoError(t, f.store.SaveTemplate(ctx, domain.Template{
			ID:        "t2",
			Name:      "Alpha",
			Snapshot:  domain.ReportDocument{Name: "Alpha"},
			CreatedAt: time.Now(),
		}))

		templates, err := f.store.ListTemplates(ctx)
		require.NoError(t, err)
		require.Len(t, templates, 2)
		assert.Equal(t, "Alpha", templates[0].Name)
		assert.Equal(t, "Starter", templates[1].Name)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := f.store.GetTemplate(ctx, "missing")
		assert.ErrorIs(t, err, reportstore.ErrNotFound)
	})
}
