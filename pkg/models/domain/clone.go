package domain

import "maps"

// CloneDocument returns a deep copy of the document. Identifiers are kept
// as-is; the composition engine is responsible for re-keying copies that
// live alongside the original.
func CloneDocument(d *ReportDocument) *ReportDocument {
	if d == nil {
		return nil
	}
	out := *d
	out.Filters = maps.Clone(d.Filters)
	out.DataSources = append([]string(nil), d.DataSources...)
	out.Sections = make([]Section, len(d.Sections))
	for i := range d.Sections {
		out.Sections[i] = CloneSection(d.Sections[i])
	}
	return &out
}

// CloneSection returns a deep copy of the section, ids included.
func CloneSection(s Section) Section {
	out := s
	out.Widgets = make([]Widget, len(s.Widgets))
	for i := range s.Widgets {
		out.Widgets[i] = CloneWidget(s.Widgets[i])
	}
	return out
}

// CloneWidget returns a copy of the widget with its own config map.
func CloneWidget(w Widget) Widget {
	out := w
	out.Config = maps.Clone(w.Config)
	return out
}
