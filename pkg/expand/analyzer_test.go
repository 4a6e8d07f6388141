package expand

import (
	"context"
	"errors"
	"testing"

	"github.com/muniscope/muniscope/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	result map[string]any
	err    error
}

func (a *stubAnalyzer) Analyze(_ context.Context, _ string, _ map[string]any) (map[string]any, error) {
	return a.result, a.err
}

func testSummary() *ent.Summary {
	return &ent.Summary{
		ID:     "s1",
		Name:   "Bavarian municipalities",
		Prompt: "Track digitization projects",
	}
}

func suggestion(title string, queryConfig map[string]any) map[string]any {
	return map[string]any{
		"title":        title,
		"reason":       "related data is available",
		"query_config": queryConfig,
	}
}

func TestAnalyzeForExpansion_ValidSuggestions(t *testing.T) {
	analyzer := &stubAnalyzer{result: map[string]any{
		"suggestions": []any{
			suggestion("Population trend", map[string]any{"entity_type": "municipality", "facet_types": []any{"population"}}),
			suggestion("Contacts", map[string]any{"entity_type": "person"}),
		},
	}}
	expander := NewExpander(analyzer)

	got, err := expander.AnalyzeForExpansion(context.Background(), testSummary(), nil)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Population trend", got[0].Title)
	assert.Equal(t, "municipality", got[0].QueryConfig["entity_type"])
}

func TestAnalyzeForExpansion_DropsInvalidQueryConfigs(t *testing.T) {
	analyzer := &stubAnalyzer{result: map[string]any{
		"suggestions": []any{
			suggestion("missing type", map[string]any{"limit": float64(5)}),
			suggestion("bad sort", map[string]any{"entity_type": "municipality", "sort_order": "sideways"}),
			suggestion("ok", map[string]any{"entity_type": "municipality"}),
			map[string]any{"title": "no config at all"},
			"not even an object",
		},
	}}
	expander := NewExpander(analyzer)

	got, err := expander.AnalyzeForExpansion(context.Background(), testSummary(), nil)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].Title)
}

func TestAnalyzeForExpansion_CapsSuggestionCount(t *testing.T) {
	many := make([]any, 10)
	for i := range many {
		many[i] = suggestion("s", map[string]any{"entity_type": "municipality"})
	}
	analyzer := &stubAnalyzer{result: map[string]any{"suggestions": many}}
	expander := NewExpander(analyzer)

	got, err := expander.AnalyzeForExpansion(context.Background(), testSummary(), nil)
	require.NoError(t, err)

	assert.Len(t, got, maxSuggestions)
}

func TestAnalyzeForExpansion_ErrorsPropagate(t *testing.T) {
	expander := NewExpander(&stubAnalyzer{err: errors.New("sidecar down")})

	_, err := expander.AnalyzeForExpansion(context.Background(), testSummary(), nil)
	assert.Error(t, err)

	expander = NewExpander(&stubAnalyzer{result: map[string]any{"text": "no suggestions key"}})
	_, err = expander.AnalyzeForExpansion(context.Background(), testSummary(), nil)
	assert.Error(t, err)
}
