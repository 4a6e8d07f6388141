package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Summary holds the schema definition for the Summary entity.
// A summary is a user-owned dashboard configuration: a set of widgets
// plus trigger and relevance settings. Execution statistics on this row
// (execution_count, last_executed_at, last_data_hash) are only mutated
// through the executor's atomic completion update.
type Summary struct {
	ent.Schema
}

// Fields of the Summary.
func (Summary) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("summary_id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Comment("User that owns this summary"),
		field.String("name"),
		field.Text("prompt").
			Optional().
			Comment("Original natural-language prompt the summary was created from"),
		field.String("theme").
			Optional().
			Comment("Interpreted theme, used as semantic context for relevance checks"),

		// Trigger configuration
		field.Enum("trigger_type").
			Values("manual", "cron", "crawl").
			Default("manual"),
		field.String("cron_expression").
			Optional().
			Nillable().
			Comment("5-field cron expression, required when trigger_type=cron"),
		field.Time("next_run_at").
			Optional().
			Nillable().
			Comment("Precomputed next due time for cron-triggered summaries"),

		// Relevance / expansion settings
		field.Bool("relevance_check_enabled").
			Default(false),
		field.Float("relevance_threshold").
			Default(0.5),
		field.Bool("auto_expand_enabled").
			Default(false),

		// Execution statistics (atomic update path only)
		field.String("last_data_hash").
			Optional().
			Nillable().
			Comment("SHA-256 of the last persisted snapshot, volatile fields excluded"),
		field.Time("last_executed_at").
			Optional().
			Nillable(),
		field.Int("execution_count").
			Default(0).
			Comment("Monotonic counter, incremented atomically on completion"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete timestamp"),
	}
}

// Edges of the Summary.
func (Summary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("widgets", Widget.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("executions", Execution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Summary.
func (Summary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("trigger_type", "next_run_at"),
	}
}
