// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/muniscope/muniscope/ent/entity"
	"github.com/muniscope/muniscope/ent/execution"
	"github.com/muniscope/muniscope/ent/facetvalue"
	"github.com/muniscope/muniscope/ent/schema"
	"github.com/muniscope/muniscope/ent/summary"
	"github.com/muniscope/muniscope/ent/widget"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	entityFields := schema.Entity{}.Fields()
	_ = entityFields
	// entityDescActive is the schema descriptor for active field.
	entityDescActive := entityFields[10].Descriptor()
	// entity.DefaultActive holds the default value on creation for the active field.
	entity.DefaultActive = entityDescActive.Default.(bool)
	// entityDescCreatedAt is the schema descriptor for created_at field.
	entityDescCreatedAt := entityFields[11].Descriptor()
	// entity.DefaultCreatedAt holds the default value on creation for the created_at field.
	entity.DefaultCreatedAt = entityDescCreatedAt.Default.(func() time.Time)
	// entityDescUpdatedAt is the schema descriptor for updated_at field.
	entityDescUpdatedAt := entityFields[12].Descriptor()
	// entity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	entity.DefaultUpdatedAt = entityDescUpdatedAt.Default.(func() time.Time)
	// entity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	entity.UpdateDefaultUpdatedAt = entityDescUpdatedAt.UpdateDefault.(func() time.Time)
	executionFields := schema.Execution{}.Fields()
	_ = executionFields
	// executionDescHasChanges is the schema descriptor for has_changes field.
	executionDescHasChanges := executionFields[7].Descriptor()
	// execution.DefaultHasChanges holds the default value on creation for the has_changes field.
	execution.DefaultHasChanges = executionDescHasChanges.Default.(bool)
	// executionDescStartedAt is the schema descriptor for started_at field.
	executionDescStartedAt := executionFields[13].Descriptor()
	// execution.DefaultStartedAt holds the default value on creation for the started_at field.
	execution.DefaultStartedAt = executionDescStartedAt.Default.(func() time.Time)
	facettypeFields := schema.FacetType{}.Fields()
	_ = facettypeFields
	facetvalueFields := schema.FacetValue{}.Fields()
	_ = facetvalueFields
	// facetvalueDescConfidence is the schema descriptor for confidence field.
	facetvalueDescConfidence := facetvalueFields[4].Descriptor()
	// facetvalue.DefaultConfidence holds the default value on creation for the confidence field.
	facetvalue.DefaultConfidence = facetvalueDescConfidence.Default.(float64)
	// facetvalueDescExtractedAt is the schema descriptor for extracted_at field.
	facetvalueDescExtractedAt := facetvalueFields[6].Descriptor()
	// facetvalue.DefaultExtractedAt holds the default value on creation for the extracted_at field.
	facetvalue.DefaultExtractedAt = facetvalueDescExtractedAt.Default.(func() time.Time)
	summaryFields := schema.Summary{}.Fields()
	_ = summaryFields
	// summaryDescRelevanceCheckEnabled is the schema descriptor for relevance_check_enabled field.
	summaryDescRelevanceCheckEnabled := summaryFields[8].Descriptor()
	// summary.DefaultRelevanceCheckEnabled holds the default value on creation for the relevance_check_enabled field.
	summary.DefaultRelevanceCheckEnabled = summaryDescRelevanceCheckEnabled.Default.(bool)
	// summaryDescRelevanceThreshold is the schema descriptor for relevance_threshold field.
	summaryDescRelevanceThreshold := summaryFields[9].Descriptor()
	// summary.DefaultRelevanceThreshold holds the default value on creation for the relevance_threshold field.
	summary.DefaultRelevanceThreshold = summaryDescRelevanceThreshold.Default.(float64)
	// summaryDescAutoExpandEnabled is the schema descriptor for auto_expand_enabled field.
	summaryDescAutoExpandEnabled := summaryFields[10].Descriptor()
	// summary.DefaultAutoExpandEnabled holds the default value on creation for the auto_expand_enabled field.
	summary.DefaultAutoExpandEnabled = summaryDescAutoExpandEnabled.Default.(bool)
	// summaryDescExecutionCount is the schema descriptor for execution_count field.
	summaryDescExecutionCount := summaryFields[13].Descriptor()
	// summary.DefaultExecutionCount holds the default value on creation for the execution_count field.
	summary.DefaultExecutionCount = summaryDescExecutionCount.Default.(int)
	// summaryDescCreatedAt is the schema descriptor for created_at field.
	summaryDescCreatedAt := summaryFields[14].Descriptor()
	// summary.DefaultCreatedAt holds the default value on creation for the created_at field.
	summary.DefaultCreatedAt = summaryDescCreatedAt.Default.(func() time.Time)
	// summaryDescUpdatedAt is the schema descriptor for updated_at field.
	summaryDescUpdatedAt := summaryFields[15].Descriptor()
	// summary.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	summary.DefaultUpdatedAt = summaryDescUpdatedAt.Default.(func() time.Time)
	// summary.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	summary.UpdateDefaultUpdatedAt = summaryDescUpdatedAt.UpdateDefault.(func() time.Time)
	widgetFields := schema.Widget{}.Fields()
	_ = widgetFields
	// widgetDescDisplayOrder is the schema descriptor for display_order field.
	widgetDescDisplayOrder := widgetFields[3].Descriptor()
	// widget.DefaultDisplayOrder holds the default value on creation for the display_order field.
	widget.DefaultDisplayOrder = widgetDescDisplayOrder.Default.(int)
	// widgetDescCreatedAt is the schema descriptor for created_at field.
	widgetDescCreatedAt := widgetFields[6].Descriptor()
	// widget.DefaultCreatedAt holds the default value on creation for the created_at field.
	widget.DefaultCreatedAt = widgetDescCreatedAt.Default.(func() time.Time)
	// widgetDescUpdatedAt is the schema descriptor for updated_at field.
	widgetDescUpdatedAt := widgetFields[7].Descriptor()
	// widget.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	widget.DefaultUpdatedAt = widgetDescUpdatedAt.Default.(func() time.Time)
	// widget.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	widget.UpdateDefaultUpdatedAt = widgetDescUpdatedAt.UpdateDefault.(func() time.Time)
}
