package catalog

import (
	"fmt"
	"strconv"
)

// Config values round-trip through JSON, so a key written as []string
// comes back as []any and numbers come back as float64. The helpers
// below coerce tolerantly; a missing or malformed key yields the
// caller's fallback, never an error.

func cfgString(cfg map[string]any, key, fallback string) string {
	if cfg == nil {
		return fallback
	}
	switch v := cfg[key].(type) {
	case string:
		return v
	case float64:
		return formatNumber(v)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fallback
	}
}

func cfgStrings(cfg map[string]any, key string) []string {
	if cfg == nil {
		return nil
	}
	switch v := cfg[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, anyToString(item))
		}
		return out
	default:
		return nil
	}
}

func cfgRows(cfg map[string]any, key string) [][]string {
	if cfg == nil {
		return nil
	}
	switch v := cfg[key].(type) {
	case [][]string:
		out := make([][]string, len(v))
		for i, row := range v {
			out[i] = append([]string(nil), row...)
		}
		return out
	case []any:
		out := make([][]string, 0, len(v))
		for _, item := range v {
			switch row := item.(type) {
			case []string:
				out = append(out, append([]string(nil), row...))
			case []any:
				cells := make([]string, 0, len(row))
				for _, cell := range row {
					cells = append(cells, anyToString(cell))
				}
				out = append(out, cells)
			}
		}
		return out
	default:
		return nil
	}
}

func anyToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return formatNumber(val)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
