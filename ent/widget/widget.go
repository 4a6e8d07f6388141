// Code generated by ent, DO NOT EDIT.

package widget

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the widget type in the database.
	Label = "widget"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "widget_id"
	// FieldSummaryID holds the string denoting the summary_id field in the database.
	FieldSummaryID = "summary_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDisplayOrder holds the string denoting the display_order field in the database.
	FieldDisplayOrder = "display_order"
	// FieldQueryConfig holds the string denoting the query_config field in the database.
	FieldQueryConfig = "query_config"
	// FieldVisualizationConfig holds the string denoting the visualization_config field in the database.
	FieldVisualizationConfig = "visualization_config"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSummary holds the string denoting the summary edge name in mutations.
	EdgeSummary = "summary"
	// SummaryFieldID holds the string denoting the ID field of the Summary.
	SummaryFieldID = "summary_id"
	// Table holds the table name of the widget in the database.
	Table = "widgets"
	// SummaryTable is the table that holds the summary relation/edge.
	SummaryTable = "widgets"
	// SummaryInverseTable is the table name for the Summary entity.
	// It exists in this package in order to avoid circular dependency with the "summary" package.
	SummaryInverseTable = "summaries"
	// SummaryColumn is the table column denoting the summary relation/edge.
	SummaryColumn = "summary_id"
)

// Columns holds all SQL columns for widget fields.
var Columns = []string{
	FieldID,
	FieldSummaryID,
	FieldTitle,
	FieldDisplayOrder,
	FieldQueryConfig,
	FieldVisualizationConfig,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultDisplayOrder holds the default value on creation for the "display_order" field.
	DefaultDisplayOrder int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Widget queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySummaryID orders the results by the summary_id field.
func BySummaryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDisplayOrder orders the results by the display_order field.
func ByDisplayOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayOrder, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySummaryField orders the results by summary field.
func BySummaryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSummaryStep(), sql.OrderByField(field, opts...))
	}
}
func newSummaryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SummaryInverseTable, SummaryFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SummaryTable, SummaryColumn),
	)
}
