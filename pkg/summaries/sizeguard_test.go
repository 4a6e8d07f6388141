package summaries

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildWidget creates a widget result with rows of roughly rowBytes each.
func buildWidget(rowCount, rowBytes int) map[string]any {
	data := make([]any, rowCount)
	for i := range data {
		data[i] = map[string]any{
			"name":    fmt.Sprintf("entity-%d", i),
			"payload": strings.Repeat("x", rowBytes),
		}
	}
	return map[string]any{"data": data, "total": rowCount}
}

func TestTruncateSnapshot_UnderLimitIsUntouched(t *testing.T) {
	snapshot := map[string]map[string]any{
		"widget_a": buildWidget(10, 50),
	}

	out := truncateSnapshot(snapshot, 1_000_000, 10)

	assert.Equal(t, snapshot, out)
	assert.NotContains(t, out["widget_a"], "truncated")
}

func TestTruncateSnapshot_HalvesLargestWidgetFirst(t *testing.T) {
	snapshot := map[string]map[string]any{
		"widget_big":   buildWidget(400, 200),
		"widget_small": buildWidget(20, 50),
	}
	limit := serializedSize(snapshot) / 2

	out := truncateSnapshot(snapshot, limit, 10)

	require.LessOrEqual(t, serializedSize(out), limit)

	big := out["widget_big"]
	assert.Equal(t, true, big["truncated"])
	assert.Equal(t, 400, big["truncated_from"])
	assert.Less(t, len(widgetData(big)), 400)

	// The small widget was never the largest, so it survives whole.
	small := out["widget_small"]
	assert.NotContains(t, small, "truncated")
	assert.Len(t, widgetData(small), 20)
}

func TestTruncateSnapshot_TruncatedFromKeepsOriginalLength(t *testing.T) {
	snapshot := map[string]map[string]any{
		"widget_a": buildWidget(800, 500),
	}

	// Tight enough to force multiple halving rounds.
	out := truncateSnapshot(snapshot, 40_000, 10)

	a := out["widget_a"]
	assert.Equal(t, 800, a["truncated_from"], "must record the pre-truncation length, not an intermediate one")
	assert.Less(t, len(widgetData(a)), 400)
}

func TestTruncateSnapshot_NeverBelowFloor(t *testing.T) {
	snapshot := map[string]map[string]any{
		"widget_a": buildWidget(100, 10_000),
	}

	// Impossible limit: even the floor cannot fit.
	out := truncateSnapshot(snapshot, 100, 10)

	assert.Len(t, widgetData(out["widget_a"]), 10)
}

func TestTruncateSnapshot_DoesNotMutateInput(t *testing.T) {
	snapshot := map[string]map[string]any{
		"widget_a": buildWidget(200, 500),
	}
	limit := serializedSize(snapshot) / 4

	_ = truncateSnapshot(snapshot, limit, 10)

	assert.Len(t, widgetData(snapshot["widget_a"]), 200)
	assert.NotContains(t, snapshot["widget_a"], "truncated")
}

func TestTruncateSnapshot_ToleratesWidgetsWithoutData(t *testing.T) {
	snapshot := map[string]map[string]any{
		"widget_err": {"error": "unknown entity type", "payload": strings.Repeat("x", 5000)},
		"widget_a":   buildWidget(50, 200),
	}

	out := truncateSnapshot(snapshot, 6000, 10)

	// The error widget has no data array to shrink, so only widget_a gives.
	assert.Contains(t, out["widget_err"], "error")
	assert.Len(t, widgetData(out["widget_a"]), 10)
}
