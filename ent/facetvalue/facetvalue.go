// Code generated by ent, DO NOT EDIT.

package facetvalue

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the facetvalue type in the database.
	Label = "facet_value"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "facet_value_id"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldFacetTypeID holds the string denoting the facet_type_id field in the database.
	FieldFacetTypeID = "facet_type_id"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// FieldExtractedAt holds the string denoting the extracted_at field in the database.
	FieldExtractedAt = "extracted_at"
	// EdgeEntity holds the string denoting the entity edge name in mutations.
	EdgeEntity = "entity"
	// EdgeFacetType holds the string denoting the facet_type edge name in mutations.
	EdgeFacetType = "facet_type"
	// EntityFieldID holds the string denoting the ID field of the Entity.
	EntityFieldID = "entity_id"
	// FacetTypeFieldID holds the string denoting the ID field of the FacetType.
	FacetTypeFieldID = "facet_type_id"
	// Table holds the table name of the facetvalue in the database.
	Table = "facet_values"
	// EntityTable is the table that holds the entity relation/edge.
	EntityTable = "facet_values"
	// EntityInverseTable is the table name for the Entity entity.
	// It exists in this package in order to avoid circular dependency with the "entity" package.
	EntityInverseTable = "entities"
	// EntityColumn is the table column denoting the entity relation/edge.
	EntityColumn = "entity_id"
	// FacetTypeTable is the table that holds the facet_type relation/edge.
	FacetTypeTable = "facet_values"
	// FacetTypeInverseTable is the table name for the FacetType entity.
	// It exists in this package in order to avoid circular dependency with the "facettype" package.
	FacetTypeInverseTable = "facet_types"
	// FacetTypeColumn is the table column denoting the facet_type relation/edge.
	FacetTypeColumn = "facet_type_id"
)

// Columns holds all SQL columns for facetvalue fields.
var Columns = []string{
	FieldID,
	FieldEntityID,
	FieldFacetTypeID,
	FieldValue,
	FieldConfidence,
	FieldSourceURL,
	FieldExtractedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultExtractedAt holds the default value on creation for the "extracted_at" field.
	DefaultExtractedAt func() time.Time
)

// OrderOption defines the ordering options for the FacetValue queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// ByFacetTypeID orders the results by the facet_type_id field.
func ByFacetTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacetTypeID, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// ByExtractedAt orders the results by the extracted_at field.
func ByExtractedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedAt, opts...).ToFunc()
}

// ByEntityField orders the results by entity field.
func ByEntityField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEntityStep(), sql.OrderByField(field, opts...))
	}
}

// ByFacetTypeField orders the results by facet_type field.
func ByFacetTypeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFacetTypeStep(), sql.OrderByField(field, opts...))
	}
}
func newEntityStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EntityInverseTable, EntityFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EntityTable, EntityColumn),
	)
}
func newFacetTypeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FacetTypeInverseTable, FacetTypeFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FacetTypeTable, FacetTypeColumn),
	)
}
