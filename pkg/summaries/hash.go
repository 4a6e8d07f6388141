package summaries

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// volatileKeys are per-run fields excluded from change detection. They
// differ on every execution even when the underlying data is identical.
var volatileKeys = map[string]struct{}{
	"query_time_ms": {},
	"executed_at":   {},
	"cached_at":     {},
}

// stripVolatile returns a copy of v with volatile keys removed at every
// nesting level. Inputs are not modified.
func stripVolatile(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			if _, volatile := volatileKeys[k]; volatile {
				continue
			}
			out[k] = stripVolatile(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = stripVolatile(inner)
		}
		return out
	case []map[string]any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = stripVolatile(inner)
		}
		return out
	default:
		return v
	}
}

// computeDataHash produces a deterministic SHA-256 over the snapshot with
// volatile fields removed. encoding/json sorts map keys, which gives a
// canonical serialization without a custom encoder.
func computeDataHash(snapshot map[string]map[string]any) (string, error) {
	stable := make(map[string]any, len(snapshot))
	for key, result := range snapshot {
		stable[key] = stripVolatile(result)
	}

	data, err := json.Marshal(stable)
	if err != nil {
		return "", fmt.Errorf("failed to serialize snapshot for hashing: %w", err)
	}

	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:]), nil
}
