package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/de-tools/report-forge/pkg/adapters"
	"github.com/de-tools/report-forge/pkg/models/api"
	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/de-tools/report-forge/pkg/services/catalog"
	"github.com/de-tools/report-forge/pkg/services/composer"
	"github.com/de-tools/report-forge/pkg/services/export"
	"github.com/de-tools/report-forge/pkg/services/preview"
	reportstore "github.com/de-tools/report-forge/pkg/store/report"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	repo     reportstore.Repository
	engine   *composer.Engine
	renderer *preview.Renderer
	exporter *export.Exporter
	catalog  *catalog.Registry
	ids      composer.IDGenerator
}

func NewHandler(
	repo reportstore.Repository,
	engine *composer.Engine,
	renderer *preview.Renderer,
	exporter *export.Exporter,
	cat *catalog.Registry,
	ids composer.IDGenerator,
) *Handler {
	return &Handler{
		repo:     repo,
		engine:   engine,
		renderer: renderer,
		exporter: exporter,
		catalog:  cat,
		ids:      ids,
	}
}

// ListWidgets returns the widget catalog, in registration order, so the
// builder UI can render its palette from the same registry the drop
// endpoint resolves types against.
func (h *Handler) ListWidgets(w http.ResponseWriter, r *http.Request) {
	response := []api.WidgetDefinition{}
	for _, t := range h.catalog.Types() {
		def, ok := h.catalog.Lookup(t)
		if !ok {
			continue
		}
		response = append(response, api.WidgetDefinition{
			Type:          string(def.Type),
			Name:          def.Name,
			DefaultConfig: h.catalog.NewConfig(def.Type),
		})
	}
	h.writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summaries, err := h.repo.ListReports(ctx)
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	response := []api.ReportSummary{}
	for _, s := range summaries {
		response = append(response, api.ReportSummary{Id: s.ID, Name: s.Name, UpdatedAt: s.UpdatedAt})
	}
	h.writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body api.Report
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, r, http.StatusBadRequest, fmt.Errorf("decode report: %w", err))
		return
	}

	doc := adapters.MapApiReportToDomain(body)
	if doc.ID == "" {
		doc.ID = "report-" + h.ids.Next()
	}
	if doc.Name == "" {
		doc.Name = "Untitled Report"
	}
	if doc.LayoutMode == "" {
		doc.LayoutMode = domain.LayoutModeSingle
	}

	if err := h.repo.SaveReport(ctx, doc); err != nil {
		h.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	h.respondWithReport(w, r, doc.ID, http.StatusCreated)
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.loadReport(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, r, http.StatusOK, adapters.MapDomainReportToApi(doc))
}

func (h *Handler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "report")

	if _, ok := h.loadReport(w, r); !ok {
		return
	}

	var body api.Report
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, r, http.StatusBadRequest, fmt.Errorf("decode report: %w", err))
		return
	}

	doc := adapters.MapApiReportToDomain(body)
	doc.ID = id
	if err := h.repo.SaveReport(ctx, doc); err != nil {
		h.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	h.respondWithReport(w, r, id, http.StatusOK)
}

func (h *Handler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "report")

	err := h.repo.DeleteReport(ctx, id)
	if errors.Is(err, reportstore.ErrNotFound) {
		h.writeError(w, r, http.StatusNotFound, err)
		return
	}
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ApplyDrop applies a completed drag gesture to the stored document and
// writes the updated snapshot back. A cancelled drop still returns 200
// with the unchanged document.
func (h *Handler) ApplyDrop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, ok := h.loadReport(w, r)
	if !ok {
		return
	}

	var body api.DropRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, r, http.StatusBadRequest, fmt.Errorf("decode drop: %w", err))
		return
	}

	drop := composer.DropResult{
		Kind:       composer.DropKind(body.Kind),
		WidgetType: domain.WidgetType(body.WidgetType),
		Source:     composer.Position{ZoneID: body.Source.ZoneId, Index: body.Source.Index},
	}
	if body.Destination != nil {
		drop.Destination = &composer.Position{ZoneID: body.Destination.ZoneId, Index: body.Destination.Index}
	}

	h.engine.ApplyDrop(doc, drop)
	if err := h.repo.SaveReport(ctx, doc); err != nil {
		h.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	h.respondWithReport(w, r, doc.ID, http.StatusOK)
}

func (h *Handler) AddSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, ok := h.loadReport(w, r)
	if !ok {
		return
	}

	section := h.engine.AddSection(doc)
	if err := h.repo.SaveReport(ctx, doc); err != nil {
		h.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, adapters.MapDomainSectionToApi(*section))
}

func (h *Handler) DuplicateSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sectionID := chi.URLParam(r, "section")

	doc, ok := h.loadReport(w, r)
	if !ok {
		return
	}

	clone := h.engine.DuplicateSection(doc, sectionID)
	if clone == nil {
		h.writeError(w, r, http.StatusNotFound, fmt.Errorf("section %s not found", sectionID))
		return
	}
	if err := h.repo.SaveReport(ctx, doc); err != nil {
		h.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, adapters.MapDomainSectionToApi(*clone))
}

func (h *Handler) PreviewReport(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.loadReport(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, r, http.StatusOK, h.renderer.Render(doc))
}

// ExportReport streams the export artifact. An unsupported format is a
// visible failure naming the requested format, not a silent skip.
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	format := r.URL.Query().Get("format")

	doc, ok := h.loadReport(w, r)
	if !ok {
		return
	}

	artifact, err := h.exporter.Export(ctx, doc, export.Format(format))
	if errors.Is(err, export.ErrUnsupportedFormat) {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	if _, err := w.Write(artifact.Data); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("report", doc.ID).Msg("failed to write export artifact")
	}
}

func (h *Handler) SaveAsTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, ok := h.loadReport(w, r)
	if !ok {
		return
	}

	// The only place widget data is stripped before persistence.
	for i := range doc.Sections {
		for j := range doc.Sections[i].Widgets {
			doc.Sections[i].Widgets[j].Data = nil
		}
	}

	t := domain.Template{
		ID:          "template-" + h.ids.Next(),
		Name:        doc.Name,
		Description: doc.Description,
		Snapshot:    *doc,
	}
	if err := h.repo.SaveTemplate(ctx, t); err != nil {
		h.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, adapters.MapDomainTemplateToApi(t))
}

func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	templates, err := h.repo.ListTemplates(ctx)
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	response := []api.Template{}
	for _, t := range templates {
		response = append(response, adapters.MapDomainTemplateToApi(t))
	}
	h.writeJSON(w, r, http.StatusOK, response)
}

// InstantiateTemplate clones a template snapshot into a fresh report.
// Every section and widget in the clone gets a new id.
func (h *Handler) InstantiateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	templateID := chi.URLParam(r, "template")

	t, err := h.repo.GetTemplate(ctx, templateID)
	if errors.Is(err, reportstore.ErrNotFound) {
		h.writeError(w, r, http.StatusNotFound, err)
		return
	}
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	doc := domain.CloneDocument(&t.Snapshot)
	doc.ID = "report-" + h.ids.Next()
	h.engine.Rekey(doc)

	if err := h.repo.SaveReport(ctx, doc); err != nil {
		h.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	h.respondWithReport(w, r, doc.ID, http.StatusCreated)
}

func (h *Handler) loadReport(w http.ResponseWriter, r *http.Request) (*domain.ReportDocument, bool) {
	ctx := r.Context()
	id := chi.URLParam(r, "report")

	doc, err := h.repo.GetReport(ctx, id)
	if errors.Is(err, reportstore.ErrNotFound) {
		h.writeError(w, r, http.StatusNotFound, err)
		return nil, false
	}
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, err)
		return nil, false
	}
	return doc, true
}

func (h *Handler) respondWithReport(w http.ResponseWriter, r *http.Request, id string, status int) {
	doc, err := h.repo.GetReport(r.Context(), id)
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, r, status, adapters.MapDomainReportToApi(doc))
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Int("status", status).Msg("request failed")
	h.writeJSON(w, r, status, api.Error{Message: err.Error()})
}
