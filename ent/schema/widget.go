package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Widget holds the schema definition for the Widget entity.
// One query+visualization unit within a summary. The executor only reads
// widget configuration; both config blobs are semi-trusted (user- or
// AI-authored) and are validated at write time, never trusted at read time.
type Widget struct {
	ent.Schema
}

// Fields of the Widget.
func (Widget) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("widget_id").
			Unique().
			Immutable(),
		field.String("summary_id").
			Immutable(),
		field.String("title"),
		field.Int("display_order").
			Default(0).
			Comment("Position within the summary"),
		field.JSON("query_config", map[string]any{}).
			Comment("Declarative query: entity_type, facet_types, filters, sort, limit, aggregate"),
		field.JSON("visualization_config", map[string]any{}).
			Optional().
			Comment("Opaque to the executor, rendered client-side"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Widget.
func (Widget) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("summary", Summary.Type).
			Ref("widgets").
			Field("summary_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Widget.
func (Widget) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("summary_id", "display_order"),
	}
}
