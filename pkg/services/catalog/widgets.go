package catalog

import (
	"fmt"

	"github.com/de-tools/report-forge/pkg/models/domain"
)

func builtinDefinitions() []Definition {
	return []Definition{
		chartDefinition(),
		kpiDefinition(),
		tableDefinition(),
		textDefinition(),
		imageDefinition(),
		dividerDefinition(),
		timelineDefinition(),
		calendarDefinition(),
		progressDefinition(),
		matrixDefinition(),
	}
}

func chartDefinition() Definition {
	return Definition{
		Type: domain.WidgetChart,
		Name: "Chart",
		DefaultConfig: func() map[string]any {
			return map[string]any{
				"chartType":  "bar",
				"title":      "Chart Title",
				"colors":     []string{"#2563eb", "#16a34a", "#dc2626", "#f59e0b"},
				"showLegend": true,
			}
		},
		Preview: func(w domain.Widget) Placeholder {
			return Placeholder{
				Kind:  "chart",
				Title: cfgString(w.Config, "title", "Chart"),
				Lines: []string{cfgString(w.Config, "chartType", "bar") + " chart"},
			}
		},
		Extract: func(w domain.Widget) (*Extract, error) {
			return &Extract{
				Type:      domain.WidgetChart,
				Title:     cfgString(w.Config, "title", "Chart"),
				ChartType: cfgString(w.Config, "chartType", "bar"),
			}, nil
		},
	}
}

func kpiDefinition() Definition {
	return Definition{
		Type: domain.WidgetKPI,
		Name: "KPI",
		DefaultConfig: func() map[string]any {
			return map[string]any{
				"title":      "KPI Title",
				"value":      0,
				"unit":       "",
				"trend":      "neutral",
				"trendValue": "",
			}
		},
		Preview: func(w domain.Widget) Placeholder {
			value := cfgString(w.Config, "value", "0")
			if unit := cfgString(w.Config, "unit", ""); unit != "" {
				value += " " + unit
			}
			return Placeholder{
				Kind:  "kpi",
				Title: cfgString(w.Config, "title", "KPI"),
				Lines: []string{value},
			}
		},
		Extract: func(w domain.Widget) (*Extract, error) {
			return &Extract{
				Type:       domain.WidgetKPI,
				Title:      cfgString(w.Config, "title", "KPI"),
				Value:      cfgString(w.Config, "value", "0"),
				Unit:       cfgString(w.Config, "unit", ""),
				Trend:      cfgString(w.Config, "trend", "neutral"),
				TrendValue: cfgString(w.Config, "trendValue", ""),
			}, nil
		},
	}
}

func tableDefinition() Definition {
	return Definition{
		Type: domain.WidgetTable,
		Name: "Table",
		DefaultConfig: func() map[string]any {
			return map[string]any{
				"title":   "Table",
				"headers": []string{"Column 1", "Column 2", "Column 3"},
				"rows":    [][]string{},
			}
		},
		Preview: func(w domain.Widget) Placeholder {
			return Placeholder{
				Kind:  "table",
				Title: cfgString(w.Config, "title", "Table"),
				Lines: []string{fmt.Sprintf("%d columns", len(cfgStrings(w.Config, "headers")))},
			}
		},
		Extract: func(w domain.Widget) (*Extract, error) {
			headers := cfgStrings(w.Config, "headers")
			rows := cfgRows(w.Config, "rows")
			for i, row := range rows {
				if len(row) != len(headers) {
					return nil, fmt.Errorf("table row %d has %d cells, want %d", i, len(row), len(headers))
				}
			}
			return &Extract{
				Type:  domain.WidgetTable,
				Title: cfgString(w.Config, "title", "Table"),
				Table: &TableData{Headers: headers, Rows: rows},
			}, nil
		},
	}
}

func textDefinition() Definition {
	return Definition{
		Type: domain.WidgetText,
		Name: "Text",
		DefaultConfig: func() map[string]any {
			return map[string]any{
				"content":   "Enter text here...",
				"fontSize":  14,
				"alignment": "left",
			}
		},
		Preview: func(w domain.Widget) Placeholder {
			return Placeholder{
				Kind:  "text",
				Lines: []string{cfgString(w.Config, "content", "")},
			}
		},
		Extract: func(w domain.Widget) (*Extract, error) {
			return &Extract{
				Type:    domain.WidgetText,
				Content: cfgString(w.Config, "content", ""),
			}, nil
		},
	}
}

func imageDefinition() Definition {
	return Definition{
		Type: domain.WidgetImage,
		Name: "Image",
		DefaultConfig: func() map[string]any {
			return map[string]any{
				"url":     "",
				"alt":     "Image",
				"caption": "",
			}
		},
		Preview: func(w domain.Widget) Placeholder {
			return Placeholder{
				Kind:  "image",
				Title: cfgString(w.Config, "alt", "Image"),
			}
		},
	}
}

func dividerDefinition() Definition {
	return Definition{
		Type: domain.WidgetDivider,
		Name: "Divider",
		DefaultConfig: func() map[string]any {
			return map[string]any{
				"style":   "solid",
				"spacing": 16,
			}
		},
		Preview: func(w domain.Widget) Placeholder {
			return Placeholder{Kind: "divider"}
		},
	}
}

func timelineDefinition() Definition {
	return Definition{
		Type: domain.WidgetTimeline,
		Name: "Timeline",
		DefaultConfig: func() map[string]any {
			return map[string]any{
				"title":   "Timeline",
				"entries": []string{},
			}
		},
		Preview: func(w domain.Widget) Placeholder {
			return Placeholder{
				Kind:  "timeline",
				Title: cfgString(w.Config, "title", "Timeline"),
			}
		},
	}
}

func calendarDefinition() Definition {
	return Definition{
		Type: domain.WidgetCalendar,
		Name: "Calendar",
		DefaultConfig: func() map[string]any {
			return map[string]any{
				"title": "Calendar",
				"month": "",
			}
		},
		Preview: func(w domain.Widget) Placeholder {
			return Placeholder{
				Kind:  "calendar",
				Title: cfgString(w.Config, "title", "Calendar"),
			}
		},
	}
}

func progressDefinition() Definition {
	return Definition{
		Type: domain.WidgetProgress,
		Name: "Progress",
		DefaultConfig: func() map[string]any {
			return map[string]any{
				"title":  "Progress",
				"value":  0,
				"target": 100,
				"unit":   "%",
			}
		},
		Preview: func(w domain.Widget) Placeholder {
			return Placeholder{
				Kind:  "progress",
				Title: cfgString(w.Config, "title", "Progress"),
				Lines: []string{cfgString(w.Config, "value", "0") + " / " + cfgString(w.Config, "target", "100")},
			}
		},
	}
}

func matrixDefinition() Definition {
	return Definition{
		Type: domain.WidgetMatrix,
		Name: "Matrix",
		DefaultConfig: func() map[string]any {
			return map[string]any{
				"title":   "Matrix",
				"rows":    3,
				"columns": 3,
			}
		},
		Preview: func(w domain.Widget) Placeholder {
			return Placeholder{
				Kind:  "matrix",
				Title: cfgString(w.Config, "title", "Matrix"),
				Lines: []string{cfgString(w.Config, "rows", "3") + " x " + cfgString(w.Config, "columns", "3")},
			}
		},
	}
}
