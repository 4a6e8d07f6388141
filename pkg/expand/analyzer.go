// Package expand proposes follow-up widgets for a summary based on what
// the latest snapshot actually contains. Suggestions are advisory and
// never create widgets on their own.
package expand

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/muniscope/muniscope/ent"
	"github.com/muniscope/muniscope/pkg/models"
	"github.com/muniscope/muniscope/pkg/services"
)

// maxSuggestions bounds how many proposals one analysis may return.
const maxSuggestions = 5

// Analyzer is the LLM call surface the expansion stage needs. *llm.Client
// satisfies it.
type Analyzer interface {
	Analyze(ctx context.Context, task string, payload map[string]any) (map[string]any, error)
}

// Expander turns a summary's fresh snapshot into widget suggestions via
// the LLM sidecar.
type Expander struct {
	analyzer Analyzer
}

// NewExpander creates an expansion analyzer backed by the given LLM
// surface.
func NewExpander(analyzer Analyzer) *Expander {
	return &Expander{analyzer: analyzer}
}

// AnalyzeForExpansion asks the sidecar for follow-up widget proposals.
// Proposals with query configs that fail the widget schema are dropped,
// so stored suggestions are always directly usable as widgets.
func (e *Expander) AnalyzeForExpansion(ctx context.Context, sum *ent.Summary, snapshot map[string]map[string]any) ([]models.ExpansionSuggestion, error) {
	payload := map[string]any{
		"summary": map[string]any{
			"name":   sum.Name,
			"prompt": sum.Prompt,
			"theme":  sum.Theme,
		},
		"snapshot": snapshotToAny(snapshot),
	}

	result, err := e.analyzer.Analyze(ctx, "expansion", payload)
	if err != nil {
		return nil, err
	}

	raw, ok := result["suggestions"].([]any)
	if !ok {
		return nil, fmt.Errorf("expansion response missing suggestions list")
	}

	suggestions := make([]models.ExpansionSuggestion, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		s := models.ExpansionSuggestion{}
		s.Title, _ = entry["title"].(string)
		s.Reason, _ = entry["reason"].(string)
		s.QueryConfig, _ = entry["query_config"].(map[string]any)
		if s.Title == "" || s.QueryConfig == nil {
			continue
		}
		if err := services.ValidateQueryConfig(s.QueryConfig); err != nil {
			slog.Debug("Dropping expansion suggestion with invalid query config",
				"summary_id", sum.ID, "title", s.Title, "error", err)
			continue
		}
		suggestions = append(suggestions, s)
		if len(suggestions) == maxSuggestions {
			break
		}
	}

	return suggestions, nil
}

func snapshotToAny(snapshot map[string]map[string]any) map[string]any {
	out := make(map[string]any, len(snapshot))
	for k, v := range snapshot {
		out[k] = v
	}
	return out
}
