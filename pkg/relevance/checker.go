// Package relevance decides whether a detected data change is worth
// publishing to the summary owner. Scoring is either heuristic
// (structural diff) or delegated to the LLM sidecar with the heuristic
// as fallback.
package relevance

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/muniscope/muniscope/pkg/models"
)

// Analyzer is the LLM call surface the checker needs. *llm.Client
// satisfies it.
type Analyzer interface {
	Analyze(ctx context.Context, task string, payload map[string]any) (map[string]any, error)
}

// Checker scores changes between two execution snapshots against a
// summary's semantic intent.
type Checker struct {
	analyzer Analyzer
}

// NewChecker creates a relevance checker. analyzer may be nil, in which
// case every check uses the structural heuristic.
func NewChecker(analyzer Analyzer) *Checker {
	return &Checker{analyzer: analyzer}
}

// Check scores the change from oldData to newData. A score at or above
// threshold means the change should be published. The error return is
// reserved for total scoring failure; LLM failures degrade to the
// heuristic instead.
func (c *Checker) Check(ctx context.Context, sum models.SummaryContext, oldData, newData map[string]any, threshold float64) (models.RelevanceResult, error) {
	if c.analyzer != nil {
		res, err := c.checkWithLLM(ctx, sum, oldData, newData, threshold)
		if err == nil {
			return res, nil
		}
		slog.Warn("LLM relevance check failed, falling back to heuristic",
			"summary_id", sum.SummaryID, "error", err)
	}
	return c.checkHeuristic(oldData, newData, threshold), nil
}

// checkWithLLM asks the sidecar for a semantic verdict. The prompt and
// theme give the model the summary's intent; the raw snapshots give it
// the delta to judge.
func (c *Checker) checkWithLLM(ctx context.Context, sum models.SummaryContext, oldData, newData map[string]any, threshold float64) (models.RelevanceResult, error) {
	payload := map[string]any{
		"summary": map[string]any{
			"name":   sum.Name,
			"prompt": sum.Prompt,
			"theme":  sum.Theme,
		},
		"threshold": threshold,
		"old_data":  oldData,
		"new_data":  newData,
	}

	result, err := c.analyzer.Analyze(ctx, "relevance", payload)
	if err != nil {
		return models.RelevanceResult{}, err
	}

	score, ok := result["score"].(float64)
	if !ok {
		return models.RelevanceResult{}, fmt.Errorf("relevance response missing numeric score")
	}
	reason, _ := result["reason"].(string)
	if reason == "" {
		reason = "no reason given"
	}

	return models.RelevanceResult{
		Score:        score,
		Reason:       reason,
		ShouldUpdate: score >= threshold,
	}, nil
}

// checkHeuristic scores the change by the fraction of widgets whose
// serialized content differs. It cannot judge semantics, so it leans
// towards publishing: any structural change in a majority-free tie still
// produces a nonzero score.
func (c *Checker) checkHeuristic(oldData, newData map[string]any, threshold float64) models.RelevanceResult {
	keys := make(map[string]struct{}, len(newData))
	for k := range oldData {
		keys[k] = struct{}{}
	}
	for k := range newData {
		keys[k] = struct{}{}
	}

	if len(keys) == 0 {
		return models.RelevanceResult{
			Score:        0,
			Reason:       "both snapshots are empty",
			ShouldUpdate: false,
		}
	}

	changed := 0
	for k := range keys {
		if !sameValue(oldData[k], newData[k]) {
			changed++
		}
	}

	score := float64(changed) / float64(len(keys))
	return models.RelevanceResult{
		Score:        score,
		Reason:       fmt.Sprintf("%d of %d widgets changed", changed, len(keys)),
		ShouldUpdate: score >= threshold,
	}
}

// sameValue compares two snapshot entries by canonical JSON form.
// encoding/json sorts map keys, so key order never produces a spurious
// difference.
func sameValue(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	aj, errA := json.Marshal(a)
	bj, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return string(aj) == string(bj)
}
