package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Execution holds the schema definition for the Execution entity.
// An immutable audit record of one run attempt. Rows are append-only per
// summary: once status reaches a terminal value (completed, failed, skipped)
// the record is never mutated again.
type Execution struct {
	ent.Schema
}

// Fields of the Execution.
func (Execution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("summary_id").
			Immutable(),
		field.Enum("status").
			Values("running", "completed", "failed", "skipped").
			Default("running"),

		// Trigger metadata
		field.String("triggered_by").
			Comment("e.g. 'manual', 'cron', 'crawl'"),
		field.JSON("trigger_details", map[string]any{}).
			Optional(),

		// Result snapshot
		field.JSON("cached_data", map[string]any{}).
			Optional().
			Comment("widget_<id> -> result payload; size-guarded before persist"),
		field.String("data_hash").
			Optional().
			Nillable(),
		field.Bool("has_changes").
			Default(false),

		// Relevance outcome
		field.Float("relevance_score").
			Optional().
			Nillable(),
		field.String("relevance_reason").
			Optional().
			Nillable(),
		field.String("skip_reason").
			Optional().
			Nillable().
			Comment("Set for skipped executions: concurrency conflict or not-relevant"),

		field.JSON("expansion_suggestions", []map[string]any{}).
			Optional(),

		field.Text("error_message").
			Optional().
			Nillable(),

		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
	}
}

// Edges of the Execution.
func (Execution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("summary", Summary.Type).
			Ref("executions").
			Field("summary_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Execution.
func (Execution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("summary_id", "started_at"),
		index.Fields("summary_id", "status"),
	}
}
