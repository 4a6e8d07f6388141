// Package summaries implements custom summary execution: widget query
// evaluation against the entity/facet store, change detection, snapshot
// caching, and the at-most-one-per-summary concurrency gate.
package summaries

import (
	"context"

	"github.com/muniscope/muniscope/ent"
	"github.com/muniscope/muniscope/pkg/models"
)

// Skip reasons recorded on skipped executions.
const (
	SkipReasonAlreadyRunning = "another execution is already running"
	SkipReasonLocked         = "summary is locked by another transaction"
	SkipReasonNotRelevant    = "no relevant changes detected"
)

// widgetKeyPrefix namespaces cached_data keys: "widget_<id>".
const widgetKeyPrefix = "widget_"

// WidgetRunner executes a single widget's declarative query. It never
// returns an error: failures are folded into the result shape so one bad
// widget cannot abort a summary.
type WidgetRunner interface {
	RunWidgetQuery(ctx context.Context, w *ent.Widget) *models.WidgetResult
}

// RelevanceChecker judges whether changed data is worth surfacing. It is
// only consulted when the data hash differs from the last persisted run.
type RelevanceChecker interface {
	Check(ctx context.Context, summaryCtx models.SummaryContext, oldData, newData map[string]any, threshold float64) (models.RelevanceResult, error)
}

// ExpansionAnalyzer proposes new widgets based on a changed execution's
// snapshot. Failures are logged and swallowed by the executor: expansion
// is a nice-to-have, not a correctness requirement.
type ExpansionAnalyzer interface {
	AnalyzeForExpansion(ctx context.Context, sum *ent.Summary, snapshot map[string]map[string]any) ([]models.ExpansionSuggestion, error)
}
