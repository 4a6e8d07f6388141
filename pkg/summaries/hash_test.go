package summaries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDataHash_Deterministic(t *testing.T) {
	snapshot := map[string]map[string]any{
		"widget_a": {
			"data":  []any{map[string]any{"name": "Springfield", "population": float64(61000)}},
			"total": float64(1),
		},
	}

	h1, err := computeDataHash(snapshot)
	require.NoError(t, err)
	h2, err := computeDataHash(snapshot)
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
}

func TestComputeDataHash_IgnoresVolatileFields(t *testing.T) {
	base := map[string]map[string]any{
		"widget_a": {
			"data":          []any{map[string]any{"name": "Springfield"}},
			"total":         float64(1),
			"query_time_ms": float64(12),
		},
	}
	other := map[string]map[string]any{
		"widget_a": {
			"data":          []any{map[string]any{"name": "Springfield"}},
			"total":         float64(1),
			"query_time_ms": float64(9800),
			"executed_at":   "2026-08-31T10:00:00Z",
		},
	}

	h1, err := computeDataHash(base)
	require.NoError(t, err)
	h2, err := computeDataHash(other)
	require.NoError(t, err)

	assert.Equal(t, h1, h2, "volatile fields must not affect the hash")
}

func TestComputeDataHash_IgnoresNestedVolatileFields(t *testing.T) {
	base := map[string]map[string]any{
		"widget_a": {
			"data": []any{map[string]any{"name": "Springfield", "cached_at": "then"}},
		},
	}
	other := map[string]map[string]any{
		"widget_a": {
			"data": []any{map[string]any{"name": "Springfield", "cached_at": "now"}},
		},
	}

	h1, err := computeDataHash(base)
	require.NoError(t, err)
	h2, err := computeDataHash(other)
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
}

func TestComputeDataHash_DetectsRealChanges(t *testing.T) {
	base := map[string]map[string]any{
		"widget_a": {"data": []any{map[string]any{"name": "Springfield"}}},
	}
	changed := map[string]map[string]any{
		"widget_a": {"data": []any{map[string]any{"name": "Shelbyville"}}},
	}

	h1, err := computeDataHash(base)
	require.NoError(t, err)
	h2, err := computeDataHash(changed)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestComputeDataHash_EmptySnapshot(t *testing.T) {
	h1, err := computeDataHash(map[string]map[string]any{})
	require.NoError(t, err)
	h2, err := computeDataHash(nil)
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
}

func TestStripVolatile_DoesNotMutateInput(t *testing.T) {
	in := map[string]any{
		"query_time_ms": float64(5),
		"data":          []any{map[string]any{"executed_at": "x", "name": "a"}},
	}

	out := stripVolatile(in).(map[string]any)

	assert.NotContains(t, out, "query_time_ms")
	assert.Contains(t, in, "query_time_ms", "input must be left intact")
	row := in["data"].([]any)[0].(map[string]any)
	assert.Contains(t, row, "executed_at")
}
