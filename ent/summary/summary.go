// Code generated by ent, DO NOT EDIT.

package summary

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the summary type in the database.
	Label = "summary"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "summary_id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldTheme holds the string denoting the theme field in the database.
	FieldTheme = "theme"
	// FieldTriggerType holds the string denoting the trigger_type field in the database.
	FieldTriggerType = "trigger_type"
	// FieldCronExpression holds the string denoting the cron_expression field in the database.
	FieldCronExpression = "cron_expression"
	// FieldNextRunAt holds the string denoting the next_run_at field in the database.
	FieldNextRunAt = "next_run_at"
	// FieldRelevanceCheckEnabled holds the string denoting the relevance_check_enabled field in the database.
	FieldRelevanceCheckEnabled = "relevance_check_enabled"
	// FieldRelevanceThreshold holds the string denoting the relevance_threshold field in the database.
	FieldRelevanceThreshold = "relevance_threshold"
	// FieldAutoExpandEnabled holds the string denoting the auto_expand_enabled field in the database.
	FieldAutoExpandEnabled = "auto_expand_enabled"
	// FieldLastDataHash holds the string denoting the last_data_hash field in the database.
	FieldLastDataHash = "last_data_hash"
	// FieldLastExecutedAt holds the string denoting the last_executed_at field in the database.
	FieldLastExecutedAt = "last_executed_at"
	// FieldExecutionCount holds the string denoting the execution_count field in the database.
	FieldExecutionCount = "execution_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeWidgets holds the string denoting the widgets edge name in mutations.
	EdgeWidgets = "widgets"
	// EdgeExecutions holds the string denoting the executions edge name in mutations.
	EdgeExecutions = "executions"
	// WidgetFieldID holds the string denoting the ID field of the Widget.
	WidgetFieldID = "widget_id"
	// ExecutionFieldID holds the string denoting the ID field of the Execution.
	ExecutionFieldID = "execution_id"
	// Table holds the table name of the summary in the database.
	Table = "summaries"
	// WidgetsTable is the table that holds the widgets relation/edge.
	WidgetsTable = "widgets"
	// WidgetsInverseTable is the table name for the Widget entity.
	// It exists in this package in order to avoid circular dependency with the "widget" package.
	WidgetsInverseTable = "widgets"
	// WidgetsColumn is the table column denoting the widgets relation/edge.
	WidgetsColumn = "summary_id"
	// ExecutionsTable is the table that holds the executions relation/edge.
	ExecutionsTable = "executions"
	// ExecutionsInverseTable is the table name for the Execution entity.
	// It exists in this package in order to avoid circular dependency with the "execution" package.
	ExecutionsInverseTable = "executions"
	// ExecutionsColumn is the table column denoting the executions relation/edge.
	ExecutionsColumn = "summary_id"
)

// Columns holds all SQL columns for summary fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldName,
	FieldPrompt,
	FieldTheme,
	FieldTriggerType,
	FieldCronExpression,
	FieldNextRunAt,
	FieldRelevanceCheckEnabled,
	FieldRelevanceThreshold,
	FieldAutoExpandEnabled,
	FieldLastDataHash,
	FieldLastExecutedAt,
	FieldExecutionCount,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
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
	// DefaultRelevanceCheckEnabled holds the default value on creation for the "relevance_check_enabled" field.
	DefaultRelevanceCheckEnabled bool
	// DefaultRelevanceThreshold holds the default value on creation for the "relevance_threshold" field.
	DefaultRelevanceThreshold float64
	// DefaultAutoExpandEnabled holds the default value on creation for the "auto_expand_enabled" field.
	DefaultAutoExpandEnabled bool
	// DefaultExecutionCount holds the default value on creation for the "execution_count" field.
	DefaultExecutionCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// TriggerType defines the type for the "trigger_type" enum field.
type TriggerType string

// TriggerTypeManual is the default value of the TriggerType enum.
const DefaultTriggerType = TriggerTypeManual

// TriggerType values.
const (
	TriggerTypeManual TriggerType = "manual"
	TriggerTypeCron   TriggerType = "cron"
	TriggerTypeCrawl  TriggerType = "crawl"
)

func (tt TriggerType) String() string {
	return string(tt)
}

// TriggerTypeValidator is a validator for the "trigger_type" field enum values. It is called by the builders before save.
func TriggerTypeValidator(tt TriggerType) error {
	switch tt {
	case TriggerTypeManual, TriggerTypeCron, TriggerTypeCrawl:
		return nil
	default:
		return fmt.Errorf("summary: invalid enum value for trigger_type field: %q", tt)
	}
}

// OrderOption defines the ordering options for the Summary queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByTheme orders the results by the theme field.
func ByTheme(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheme, opts...).ToFunc()
}

// ByTriggerType orders the results by the trigger_type field.
func ByTriggerType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerType, opts...).ToFunc()
}

// ByCronExpression orders the results by the cron_expression field.
func ByCronExpression(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCronExpression, opts...).ToFunc()
}

// ByNextRunAt orders the results by the next_run_at field.
func ByNextRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextRunAt, opts...).ToFunc()
}

// ByRelevanceCheckEnabled orders the results by the relevance_check_enabled field.
func ByRelevanceCheckEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelevanceCheckEnabled, opts...).ToFunc()
}

// ByRelevanceThreshold orders the results by the relevance_threshold field.
func ByRelevanceThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelevanceThreshold, opts...).ToFunc()
}

// ByAutoExpandEnabled orders the results by the auto_expand_enabled field.
func ByAutoExpandEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoExpandEnabled, opts...).ToFunc()
}

// ByLastDataHash orders the results by the last_data_hash field.
func ByLastDataHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastDataHash, opts...).ToFunc()
}

// ByLastExecutedAt orders the results by the last_executed_at field.
func ByLastExecutedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastExecutedAt, opts...).ToFunc()
}

// ByExecutionCount orders the results by the execution_count field.
func ByExecutionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByWidgetsCount orders the results by widgets count.
func ByWidgetsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWidgetsStep(), opts...)
	}
}

// ByWidgets orders the results by widgets terms.
func ByWidgets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWidgetsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByExecutionsCount orders the results by executions count.
func ByExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExecutionsStep(), opts...)
	}
}

// ByExecutions orders the results by executions terms.
func ByExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newWidgetsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WidgetsInverseTable, WidgetFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WidgetsTable, WidgetsColumn),
	)
}
func newExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionsInverseTable, ExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
	)
}
