// Code generated by ent, DO NOT EDIT.

package facettype

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the facettype type in the database.
	Label = "facet_type"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "facet_type_id"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldValueKind holds the string denoting the value_kind field in the database.
	FieldValueKind = "value_kind"
	// EdgeValues holds the string denoting the values edge name in mutations.
	EdgeValues = "values"
	// FacetValueFieldID holds the string denoting the ID field of the FacetValue.
	FacetValueFieldID = "facet_value_id"
	// Table holds the table name of the facettype in the database.
	Table = "facet_types"
	// ValuesTable is the table that holds the values relation/edge.
	ValuesTable = "facet_values"
	// ValuesInverseTable is the table name for the FacetValue entity.
	// It exists in this package in order to avoid circular dependency with the "facetvalue" package.
	ValuesInverseTable = "facet_values"
	// ValuesColumn is the table column denoting the values relation/edge.
	ValuesColumn = "facet_type_id"
)

// Columns holds all SQL columns for facettype fields.
var Columns = []string{
	FieldID,
	FieldSlug,
	FieldName,
	FieldValueKind,
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

// ValueKind defines the type for the "value_kind" enum field.
type ValueKind string

// ValueKindText is the default value of the ValueKind enum.
const DefaultValueKind = ValueKindText

// ValueKind values.
const (
	ValueKindText       ValueKind = "text"
	ValueKindList       ValueKind = "list"
	ValueKindStructured ValueKind = "structured"
)

func (vk ValueKind) String() string {
	return string(vk)
}

// ValueKindValidator is a validator for the "value_kind" field enum values. It is called by the builders before save.
func ValueKindValidator(vk ValueKind) error {
	switch vk {
	case ValueKindText, ValueKindList, ValueKindStructured:
		return nil
	default:
		return fmt.Errorf("facettype: invalid enum value for value_kind field: %q", vk)
	}
}

// OrderOption defines the ordering options for the FacetType queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByValueKind orders the results by the value_kind field.
func ByValueKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueKind, opts...).ToFunc()
}

// ByValuesCount orders the results by values count.
func ByValuesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newValuesStep(), opts...)
	}
}

// ByValues orders the results by values terms.
func ByValues(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newValuesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newValuesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ValuesInverseTable, FacetValueFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ValuesTable, ValuesColumn),
	)
}
