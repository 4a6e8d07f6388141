package models

import "time"

// SummaryContext carries the semantic context of a summary into the
// relevance check: what the user asked for, not the widget mechanics.
type SummaryContext struct {
	SummaryID string
	Name      string
	Prompt    string
	Theme     string
}

// RelevanceResult is the outcome of a relevance check over changed data.
type RelevanceResult struct {
	Score        float64 `json:"score"`
	Reason       string  `json:"reason"`
	ShouldUpdate bool    `json:"should_update"`
}

// CreateSummaryRequest contains fields for creating a new summary.
type CreateSummaryRequest struct {
	OwnerID               string   `json:"owner_id" binding:"required"`
	Name                  string   `json:"name" binding:"required"`
	Prompt                string   `json:"prompt,omitempty"`
	Theme                 string   `json:"theme,omitempty"`
	TriggerType           string   `json:"trigger_type,omitempty"`
	CronExpression        string   `json:"cron_expression,omitempty"`
	RelevanceCheckEnabled bool     `json:"relevance_check_enabled,omitempty"`
	RelevanceThreshold    *float64 `json:"relevance_threshold,omitempty"`
	AutoExpandEnabled     bool     `json:"auto_expand_enabled,omitempty"`
}

// UpdateSummaryRequest contains optional fields for updating a summary.
// Nil pointers mean "leave unchanged".
type UpdateSummaryRequest struct {
	Name                  *string  `json:"name,omitempty"`
	Theme                 *string  `json:"theme,omitempty"`
	TriggerType           *string  `json:"trigger_type,omitempty"`
	CronExpression        *string  `json:"cron_expression,omitempty"`
	RelevanceCheckEnabled *bool    `json:"relevance_check_enabled,omitempty"`
	RelevanceThreshold    *float64 `json:"relevance_threshold,omitempty"`
	AutoExpandEnabled     *bool    `json:"auto_expand_enabled,omitempty"`
}

// CreateWidgetRequest contains fields for adding a widget to a summary.
type CreateWidgetRequest struct {
	Title               string         `json:"title" binding:"required"`
	DisplayOrder        int            `json:"display_order"`
	QueryConfig         map[string]any `json:"query_config" binding:"required"`
	VisualizationConfig map[string]any `json:"visualization_config,omitempty"`
}

// ExecutionFilters narrows execution listings.
type ExecutionFilters struct {
	Status string
	Limit  int
	Offset int
}

// ExecutionListResponse is a paginated execution listing.
type ExecutionListResponse struct {
	Executions []ExecutionSummary `json:"executions"`
	TotalCount int                `json:"total_count"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}

// ExecutionSummary is the list-view projection of an execution: trigger and
// outcome metadata without the cached snapshot payload.
type ExecutionSummary struct {
	ID          string     `json:"id"`
	SummaryID   string     `json:"summary_id"`
	Status      string     `json:"status"`
	TriggeredBy string     `json:"triggered_by"`
	HasChanges  bool       `json:"has_changes"`
	SkipReason  string     `json:"skip_reason,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	DurationMs  *int       `json:"duration_ms,omitempty"`
}

// EntityFilters narrows entity listings on the read-only browse surface.
type EntityFilters struct {
	EntityType string
	RegionCode string
	Country    string
	Search     string
	Limit      int
	Offset     int
}
