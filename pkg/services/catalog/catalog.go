package catalog

import (
	"github.com/de-tools/report-forge/pkg/models/domain"
)

// Placeholder is the read-only visual stand-in for a widget in the
// preview: a heading plus a few supporting lines.
type Placeholder struct {
	Kind  string
	Title string
	Lines []string
}

// TableData is a flattened table widget: one header row plus data rows.
type TableData struct {
	Headers []string
	Rows    [][]string
}

// Extract is the normalized record exporters work from. Which fields are
// populated depends on Type.
type Extract struct {
	Type       domain.WidgetType
	Title      string
	Value      string
	Unit       string
	Trend      string
	TrendValue string
	Content    string
	ChartType  string
	Table      *TableData
}

// Definition binds everything kind-specific in one place: the default
// config factory, the preview projection and the export extractor.
// Adding a widget kind means registering one Definition, not editing
// three switch statements.
type Definition struct {
	Type          domain.WidgetType
	Name          string
	DefaultConfig func() map[string]any
	Preview       func(w domain.Widget) Placeholder
	// Extract returns (nil, nil) for kinds the exporters do not flatten.
	Extract func(w domain.Widget) (*Extract, error)
}

// Registry is the widget catalog. It is safe for concurrent reads after
// construction; Register is not meant to be called once serving starts.
type Registry struct {
	defs  map[domain.WidgetType]Definition
	order []domain.WidgetType
}

// NewRegistry returns a catalog with all built-in widget kinds registered.
func NewRegistry() *Registry {
	r := &Registry{defs: map[domain.WidgetType]Definition{}}
	for _, def := range builtinDefinitions() {
		r.Register(def)
	}
	return r
}

func (r *Registry) Register(def Definition) {
	if _, exists := r.defs[def.Type]; !exists {
		r.order = append(r.order, def.Type)
	}
	r.defs[def.Type] = def
}

func (r *Registry) Lookup(t domain.WidgetType) (Definition, bool) {
	def, ok := r.defs[t]
	return def, ok
}

// Types returns the registered kinds in registration order.
func (r *Registry) Types() []domain.WidgetType {
	return append([]domain.WidgetType(nil), r.order...)
}

// NewConfig returns a fresh default config for the given kind. Unknown
// kinds get an empty config; downstream consumers fall back to their own
// built-in defaults rather than treating this as an error.
func (r *Registry) NewConfig(t domain.WidgetType) map[string]any {
	def, ok := r.defs[t]
	if !ok || def.DefaultConfig == nil {
		return map[string]any{}
	}
	return def.DefaultConfig()
}

// Preview returns the placeholder visual for the widget. Unrecognized
// kinds render a generic "{type} widget" placeholder.
func (r *Registry) Preview(w domain.Widget) Placeholder {
	def, ok := r.defs[w.Type]
	if !ok || def.Preview == nil {
		return Placeholder{Kind: "generic", Title: string(w.Type) + " widget"}
	}
	return def.Preview(w)
}

// Extract flattens the widget for export. Kinds without an extractor
// return (nil, nil) and are silently skipped by the exporters.
func (r *Registry) Extract(w domain.Widget) (*Extract, error) {
	def, ok := r.defs[w.Type]
	if !ok || def.Extract == nil {
		return nil, nil
	}
	return def.Extract(w)
}
