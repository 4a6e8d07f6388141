package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FacetType holds the schema definition for the FacetType entity.
// A class of extracted fact (e.g. "pain_point", "contact", "budget").
type FacetType struct {
	ent.Schema
}

// Fields of the FacetType.
func (FacetType) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("facet_type_id").
			Unique().
			Immutable(),
		field.String("slug").
			Unique().
			Comment("Stable identifier used by widget query configs"),
		field.String("name"),
		field.Enum("value_kind").
			Values("text", "list", "structured").
			Default("text").
			Comment("Shape hint for consumers; value payloads are not schema-enforced"),
	}
}

// Edges of the FacetType.
func (FacetType) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("values", FacetValue.Type),
	}
}

// FacetValue holds the schema definition for the FacetValue entity.
// A typed fact attached to an entity, written by the extraction pipeline
// and read in bulk by the widget query engine.
type FacetValue struct {
	ent.Schema
}

// Fields of the FacetValue.
func (FacetValue) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("facet_value_id").
			Unique().
			Immutable(),
		field.String("entity_id"),
		field.String("facet_type_id"),
		field.JSON("value", map[string]any{}).
			Comment("Opaque value payload, schema-on-read"),
		field.Float("confidence").
			Default(0),
		field.String("source_url").
			Optional().
			Nillable(),
		field.Time("extracted_at").
			Default(time.Now),
	}
}

// Edges of the FacetValue.
func (FacetValue) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("entity", Entity.Type).
			Ref("facet_values").
			Field("entity_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.From("facet_type", FacetType.Type).
			Ref("values").
			Field("facet_type_id").
			Unique().
			Required(),
	}
}

// Indexes of the FacetValue.
func (FacetValue) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_id", "facet_type_id"),
		index.Fields("facet_type_id"),
	}
}
