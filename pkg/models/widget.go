// Package models contains shared data structures used across services,
// the executor, and API handlers.
package models

import "encoding/json"

// QueryConfig is the declarative per-widget query configuration.
// It is stored as an opaque JSON blob on the widget and parsed leniently:
// configs are semi-trusted (user- or AI-authored), so unknown keys are
// ignored and missing keys fall back to zero values.
type QueryConfig struct {
	EntityType string         `json:"entity_type"`
	FacetTypes []string       `json:"facet_types,omitempty"`
	Filters    map[string]any `json:"filters,omitempty"`
	SortField  string         `json:"sort_field,omitempty"`
	SortOrder  string         `json:"sort_order,omitempty"`
	Limit      int            `json:"limit,omitempty"`
	Aggregate  string         `json:"aggregate,omitempty"`
}

// ParseQueryConfig decodes a stored query_config blob into a QueryConfig.
// Unknown keys are dropped silently; a nil map yields a zero config.
func ParseQueryConfig(raw map[string]any) (QueryConfig, error) {
	var cfg QueryConfig
	if len(raw) == 0 {
		return cfg, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// WidgetResult is the uniform per-widget result shape. A widget query
// always produces one of these, even on failure or timeout: one widget's
// failure never aborts the whole summary.
type WidgetResult struct {
	Data        []map[string]any `json:"data"`
	Total       int              `json:"total"`
	QueryTimeMs int64            `json:"query_time_ms,omitempty"`
	Error       string           `json:"error,omitempty"`
	Timeout     bool             `json:"timeout,omitempty"`
}

// ExpansionSuggestion is one proposed widget produced by the auto-expand
// analyzer after a changed execution.
type ExpansionSuggestion struct {
	Title       string         `json:"title"`
	Reason      string         `json:"reason"`
	QueryConfig map[string]any `json:"query_config"`
}
