package summaries

import (
	"encoding/json"
	"log/slog"
	"sort"
)

// truncateSnapshot enforces the snapshot byte ceiling by progressively
// halving the data array of the largest widget, never below floor items.
// If halving alone cannot reach the target, every widget is forced down to
// the floor as a final pass. Truncated widgets are marked with
// truncated=true and truncated_from=<original length>.
//
// The input is not modified; a lossy best-effort copy is returned. The
// routine never fails: a snapshot that cannot fit even at the floor is
// returned at the floor.
func truncateSnapshot(snapshot map[string]map[string]any, maxBytes, floor int) map[string]map[string]any {
	if serializedSize(snapshot) <= maxBytes {
		return snapshot
	}

	out := make(map[string]map[string]any, len(snapshot))
	for key, result := range snapshot {
		copied := make(map[string]any, len(result))
		for k, v := range result {
			copied[k] = v
		}
		out[key] = copied
	}

	// Halve the largest widget until the snapshot fits or nothing is left
	// to shrink.
	for serializedSize(out) > maxBytes {
		key, ok := largestShrinkableWidget(out, floor)
		if !ok {
			break
		}
		data := widgetData(out[key])
		halveWidget(out[key], data, len(data)/2, floor)
	}

	// Pathological case: force everything to the floor.
	if serializedSize(out) > maxBytes {
		for key := range out {
			data := widgetData(out[key])
			if len(data) > floor {
				halveWidget(out[key], data, floor, floor)
			}
		}
		slog.Warn("Snapshot still over size ceiling after truncating all widgets to floor",
			"size_bytes", serializedSize(out), "max_bytes", maxBytes)
	}

	return out
}

// largestShrinkableWidget returns the key of the widget with the largest
// serialized payload whose data can still be shrunk.
func largestShrinkableWidget(snapshot map[string]map[string]any, floor int) (string, bool) {
	type ranked struct {
		key  string
		size int
	}
	candidates := make([]ranked, 0, len(snapshot))
	for key, result := range snapshot {
		if len(widgetData(result)) > floor {
			candidates = append(candidates, ranked{key: key, size: serializedSize(result)})
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].size != candidates[j].size {
			return candidates[i].size > candidates[j].size
		}
		return candidates[i].key < candidates[j].key
	})
	return candidates[0].key, true
}

// halveWidget shrinks a widget's data to target items (clamped to floor)
// and records the truncation markers. truncated_from keeps the length the
// widget had before its first truncation.
func halveWidget(result map[string]any, data []any, target, floor int) {
	if target < floor {
		target = floor
	}
	if target >= len(data) {
		return
	}
	if _, already := result["truncated_from"]; !already {
		result["truncated_from"] = len(data)
	}
	result["truncated"] = true
	result["data"] = data[:target]
}

// widgetData extracts the data array from a widget result, tolerating both
// decoded ([]any) and freshly assembled ([]map[string]any) shapes.
func widgetData(result map[string]any) []any {
	switch data := result["data"].(type) {
	case []any:
		return data
	case []map[string]any:
		out := make([]any, len(data))
		for i, row := range data {
			out[i] = row
		}
		return out
	default:
		return nil
	}
}

func serializedSize(v any) int {
	data, err := json.Marshal(v)
	if err != nil {
		// Snapshots are built from JSON-decoded values; a marshal failure
		// here means a programming error upstream.
		return 0
	}
	return len(data)
}
