package adapters

import (
	"encoding/json"
	"fmt"
	"maps"

	"github.com/de-tools/report-forge/pkg/models/api"
	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/de-tools/report-forge/pkg/models/store"
)

func MapDomainReportToApi(d *domain.ReportDocument) api.Report {
	out := api.Report{
		Id:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Sections:    []api.Section{},
		DataSources: append([]string(nil), d.DataSources...),
		DateRange:   d.DateRange,
		Filters:     maps.Clone(d.Filters),
		LayoutMode:  string(d.LayoutMode),
		UpdatedAt:   d.UpdatedAt,
	}
	for _, s := range d.Sections {
		out.Sections = append(out.Sections, MapDomainSectionToApi(s))
	}
	return out
}

func MapDomainSectionToApi(s domain.Section) api.Section {
	out := api.Section{
		Id:      s.ID,
		Title:   s.Title,
		Layout:  string(s.Layout),
		Widgets: []api.Widget{},
	}
	for _, w := range s.Widgets {
		out.Widgets = append(out.Widgets, api.Widget{
			Id:         w.ID,
			Type:       string(w.Type),
			Config:     maps.Clone(w.Config),
			DataSource: w.DataSource,
		})
	}
	return out
}

func MapApiReportToDomain(r api.Report) *domain.ReportDocument {
	out := &domain.ReportDocument{
		ID:          r.Id,
		Name:        r.Name,
		Description: r.Description,
		DataSources: append([]string(nil), r.DataSources...),
		DateRange:   r.DateRange,
		Filters:     maps.Clone(r.Filters),
		LayoutMode:  domain.LayoutMode(r.LayoutMode),
		UpdatedAt:   r.UpdatedAt,
	}
	for _, s := range r.Sections {
		section := domain.Section{
			ID:     s.Id,
			Title:  s.Title,
			Layout: domain.SectionLayout(s.Layout),
		}
		for _, w := range s.Widgets {
			section.Widgets = append(section.Widgets, domain.Widget{
				ID:         w.Id,
				Type:       domain.WidgetType(w.Type),
				Config:     maps.Clone(w.Config),
				DataSource: w.DataSource,
			})
		}
		out.Sections = append(out.Sections, section)
	}
	return out
}

func MapDomainReportToStoreRecord(d *domain.ReportDocument) (store.ReportRecord, error) {
	doc, err := json.Marshal(d)
	if err != nil {
		return store.ReportRecord{}, fmt.Errorf("marshal document: %w", err)
	}
	return store.ReportRecord{
		ID:        d.ID,
		Name:      d.Name,
		Document:  doc,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

func MapStoreRecordToDomainReport(rec store.ReportRecord) (*domain.ReportDocument, error) {
	var doc domain.ReportDocument
	if err := json.Unmarshal(rec.Document, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document %s: %w", rec.ID, err)
	}
	doc.ID = rec.ID
	doc.UpdatedAt = rec.UpdatedAt
	return &doc, nil
}

func MapDomainTemplateToStoreRecord(t domain.Template) (store.TemplateRecord, error) {
	snapshot, err := json.Marshal(t.Snapshot)
	if err != nil {
		return store.TemplateRecord{}, fmt.Errorf("marshal template snapshot: %w", err)
	}
	return store.TemplateRecord{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Snapshot:    snapshot,
		CreatedAt:   t.CreatedAt,
	}, nil
}

func MapStoreRecordToDomainTemplate(rec store.TemplateRecord) (domain.Template, error) {
	var snapshot domain.ReportDocument
	if err := json.Unmarshal(rec.Snapshot, &snapshot); err != nil {
		return domain.Template{}, fmt.Errorf("unmarshal template %s: %w", rec.ID, err)
	}
	return domain.Template{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Snapshot:    snapshot,
		CreatedAt:   rec.CreatedAt,
	}, nil
}

func MapDomainTemplateToApi(t domain.Template) api.Template {
	return api.Template{
		Id:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Snapshot:    MapDomainReportToApi(&t.Snapshot),
		CreatedAt:   t.CreatedAt,
	}
}
