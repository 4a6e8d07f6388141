package services

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// widgetQuerySchema constrains stored widget query configs at write time.
// Configs may originate from AI-generated content, so the executor treats
// them as semi-trusted regardless; this schema just rejects the obviously
// malformed ones before they are persisted.
var widgetQuerySchema = map[string]any{
	"type":     "object",
	"required": []any{"entity_type"},
	"properties": map[string]any{
		"entity_type": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"facet_types": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"filters": map[string]any{
			"type": "object",
		},
		"sort_field": map[string]any{
			"type": "string",
		},
		"sort_order": map[string]any{
			"type": "string",
			"enum": []any{"asc", "desc"},
		},
		"limit": map[string]any{
			"type":    "integer",
			"minimum": 1,
		},
		"aggregate": map[string]any{
			"type": "string",
			"enum": []any{"count"},
		},
	},
}

// ValidateQueryConfig validates a widget query_config blob against the
// widget query schema. Returns a ValidationError listing the first failure.
func ValidateQueryConfig(queryConfig map[string]any) error {
	schemaLoader := gojsonschema.NewGoLoader(widgetQuerySchema)
	dataLoader := gojsonschema.NewGoLoader(queryConfig)

	result, err := gojsonschema.Validate(schemaLoader, dataLoader)
	if err != nil {
		return fmt.Errorf("failed to validate query_config: %w", err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return NewValidationError("query_config", first.String())
	}
	return nil
}
