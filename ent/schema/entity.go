package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntityType holds the schema definition for the EntityType entity.
// A typed class of domain records (municipality, person, organization, event).
type EntityType struct {
	ent.Schema
}

// Fields of the EntityType.
func (EntityType) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entity_type_id").
			Unique().
			Immutable(),
		field.String("slug").
			Unique().
			Comment("Stable identifier used by widget query configs"),
		field.String("name"),
	}
}

// Edges of the EntityType.
func (EntityType) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("entities", Entity.Type),
	}
}

// Entity holds the schema definition for the Entity entity.
// A typed domain record that facets attach to. The executor treats this
// table as a read-only relational source.
type Entity struct {
	ent.Schema
}

// Fields of the Entity.
func (Entity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entity_id").
			Unique().
			Immutable(),
		field.String("entity_type_id"),
		field.String("name"),
		field.String("region_code").
			Optional().
			Comment("e.g. NUTS/AGS region code"),
		field.String("country").
			Optional(),
		field.JSON("tags", []string{}).
			Optional(),
		field.JSON("attributes", map[string]any{}).
			Optional().
			Comment("Schema-on-read attribute bag populated by extraction"),
		field.Float("latitude").
			Optional().
			Nillable(),
		field.Float("longitude").
			Optional().
			Nillable(),
		field.String("parent_id").
			Optional().
			Nillable().
			Comment("Parent entity for coordinate inheritance (e.g. municipality for a person)"),
		field.Bool("active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Entity.
func (Entity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("entity_type", EntityType.Type).
			Ref("entities").
			Field("entity_type_id").
			Unique().
			Required(),
		edge.To("children", Entity.Type).
			From("parent").
			Field("parent_id").
			Unique(),
		edge.To("facet_values", FacetValue.Type),
	}
}

// Indexes of the Entity.
func (Entity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type_id", "active"),
		index.Fields("region_code"),
	}
}
