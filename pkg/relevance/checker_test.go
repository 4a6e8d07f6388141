package relevance

import (
	"context"
	"errors"
	"testing"

	"github.com/muniscope/muniscope/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	result map[string]any
	err    error
	called bool
}

func (a *stubAnalyzer) Analyze(_ context.Context, _ string, _ map[string]any) (map[string]any, error) {
	a.called = true
	return a.result, a.err
}

func summaryCtx() models.SummaryContext {
	return models.SummaryContext{
		SummaryID: "s1",
		Name:      "Bavarian municipalities",
		Prompt:    "Track digitization projects",
	}
}

func TestHeuristic_NoChange(t *testing.T) {
	checker := NewChecker(nil)
	data := map[string]any{
		"widget_a": map[string]any{"data": []any{"x"}},
	}

	res, err := checker.Check(context.Background(), summaryCtx(), data, data, 0.3)
	require.NoError(t, err)

	assert.Zero(t, res.Score)
	assert.False(t, res.ShouldUpdate)
}

func TestHeuristic_AllWidgetsChanged(t *testing.T) {
	checker := NewChecker(nil)
	oldData := map[string]any{"widget_a": map[string]any{"data": []any{"x"}}}
	newData := map[string]any{"widget_a": map[string]any{"data": []any{"y"}}}

	res, err := checker.Check(context.Background(), summaryCtx(), oldData, newData, 0.5)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.Score, 1e-9)
	assert.True(t, res.ShouldUpdate)
	assert.Contains(t, res.Reason, "1 of 1")
}

func TestHeuristic_PartialChange(t *testing.T) {
	checker := NewChecker(nil)
	oldData := map[string]any{
		"widget_a": map[string]any{"data": []any{"x"}},
		"widget_b": map[string]any{"data": []any{"y"}},
		"widget_c": map[string]any{"data": []any{"z"}},
		"widget_d": map[string]any{"data": []any{"w"}},
	}
	newData := map[string]any{
		"widget_a": map[string]any{"data": []any{"changed"}},
		"widget_b": map[string]any{"data": []any{"y"}},
		"widget_c": map[string]any{"data": []any{"z"}},
		"widget_d": map[string]any{"data": []any{"w"}},
	}

	res, err := checker.Check(context.Background(), summaryCtx(), oldData, newData, 0.5)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, res.Score, 1e-9)
	assert.False(t, res.ShouldUpdate, "one of four widgets is below the 0.5 threshold")
}

func TestHeuristic_AddedAndRemovedWidgetsCount(t *testing.T) {
	checker := NewChecker(nil)
	oldData := map[string]any{"widget_a": map[string]any{"data": []any{"x"}}}
	newData := map[string]any{
		"widget_a": map[string]any{"data": []any{"x"}},
		"widget_b": map[string]any{"data": []any{"new"}},
	}

	res, err := checker.Check(context.Background(), summaryCtx(), oldData, newData, 0.5)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, res.Score, 1e-9)
	assert.True(t, res.ShouldUpdate)
}

func TestHeuristic_EmptySnapshots(t *testing.T) {
	checker := NewChecker(nil)

	res, err := checker.Check(context.Background(), summaryCtx(), nil, map[string]any{}, 0.1)
	require.NoError(t, err)

	assert.False(t, res.ShouldUpdate)
}

func TestLLM_VerdictUsed(t *testing.T) {
	analyzer := &stubAnalyzer{result: map[string]any{
		"score":  0.85,
		"reason": "new council decision on broadband funding",
	}}
	checker := NewChecker(analyzer)

	res, err := checker.Check(context.Background(), summaryCtx(),
		map[string]any{"widget_a": "x"}, map[string]any{"widget_a": "y"}, 0.5)
	require.NoError(t, err)

	assert.True(t, analyzer.called)
	assert.InDelta(t, 0.85, res.Score, 1e-9)
	assert.True(t, res.ShouldUpdate)
	assert.Equal(t, "new council decision on broadband funding", res.Reason)
}

func TestLLM_ScoreBelowThreshold(t *testing.T) {
	analyzer := &stubAnalyzer{result: map[string]any{"score": 0.2, "reason": "noise"}}
	checker := NewChecker(analyzer)

	res, err := checker.Check(context.Background(), summaryCtx(),
		map[string]any{"widget_a": "x"}, map[string]any{"widget_a": "y"}, 0.5)
	require.NoError(t, err)

	assert.False(t, res.ShouldUpdate)
}

func TestLLM_FailureFallsBackToHeuristic(t *testing.T) {
	analyzer := &stubAnalyzer{err: errors.New("sidecar down")}
	checker := NewChecker(analyzer)

	res, err := checker.Check(context.Background(), summaryCtx(),
		map[string]any{"widget_a": "x"}, map[string]any{"widget_a": "y"}, 0.5)
	require.NoError(t, err)

	assert.True(t, analyzer.called)
	assert.InDelta(t, 1.0, res.Score, 1e-9, "heuristic fallback scores the structural change")
	assert.True(t, res.ShouldUpdate)
}

func TestLLM_MalformedResponseFallsBack(t *testing.T) {
	analyzer := &stubAnalyzer{result: map[string]any{"verdict": "sure"}}
	checker := NewChecker(analyzer)

	res, err := checker.Check(context.Background(), summaryCtx(),
		map[string]any{"widget_a": "x"}, map[string]any{"widget_a": "x"}, 0.5)
	require.NoError(t, err)

	assert.False(t, res.ShouldUpdate, "identical data scores zero under the heuristic")
}
