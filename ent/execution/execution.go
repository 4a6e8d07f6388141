// Code generated by ent, DO NOT EDIT.

package execution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the execution type in the database.
	Label = "execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldSummaryID holds the string denoting the summary_id field in the database.
	FieldSummaryID = "summary_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTriggeredBy holds the string denoting the triggered_by field in the database.
	FieldTriggeredBy = "triggered_by"
	// FieldTriggerDetails holds the string denoting the trigger_details field in the database.
	FieldTriggerDetails = "trigger_details"
	// FieldCachedData holds the string denoting the cached_data field in the database.
	FieldCachedData = "cached_data"
	// FieldDataHash holds the string denoting the data_hash field in the database.
	FieldDataHash = "data_hash"
	// FieldHasChanges holds the string denoting the has_changes field in the database.
	FieldHasChanges = "has_changes"
	// FieldRelevanceScore holds the string denoting the relevance_score field in the database.
	FieldRelevanceScore = "relevance_score"
	// FieldRelevanceReason holds the string denoting the relevance_reason field in the database.
	FieldRelevanceReason = "relevance_reason"
	// FieldSkipReason holds the string denoting the skip_reason field in the database.
	FieldSkipReason = "skip_reason"
	// FieldExpansionSuggestions holds the string denoting the expansion_suggestions field in the database.
	FieldExpansionSuggestions = "expansion_suggestions"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// EdgeSummary holds the string denoting the summary edge name in mutations.
	EdgeSummary = "summary"
	// SummaryFieldID holds the string denoting the ID field of the Summary.
	SummaryFieldID = "summary_id"
	// Table holds the table name of the execution in the database.
	Table = "executions"
	// SummaryTable is the table that holds the summary relation/edge.
	SummaryTable = "executions"
	// SummaryInverseTable is the table name for the Summary entity.
	// It exists in this package in order to avoid circular dependency with the "summary" package.
	SummaryInverseTable = "summaries"
	// SummaryColumn is the table column denoting the summary relation/edge.
	SummaryColumn = "summary_id"
)

// Columns holds all SQL columns for execution fields.
var Columns = []string{
	FieldID,
	FieldSummaryID,
	FieldStatus,
	FieldTriggeredBy,
	FieldTriggerDetails,
	FieldCachedData,
	FieldDataHash,
	FieldHasChanges,
	FieldRelevanceScore,
	FieldRelevanceReason,
	FieldSkipReason,
	FieldExpansionSuggestions,
	FieldErrorMessage,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationMs,
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
	// DefaultHasChanges holds the default value on creation for the "has_changes" field.
	DefaultHasChanges bool
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusFailed, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("execution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Execution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySummaryID orders the results by the summary_id field.
func BySummaryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTriggeredBy orders the results by the triggered_by field.
func ByTriggeredBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggeredBy, opts...).ToFunc()
}

// ByDataHash orders the results by the data_hash field.
func ByDataHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataHash, opts...).ToFunc()
}

// ByHasChanges orders the results by the has_changes field.
func ByHasChanges(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasChanges, opts...).ToFunc()
}

// ByRelevanceScore orders the results by the relevance_score field.
func ByRelevanceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelevanceScore, opts...).ToFunc()
}

// ByRelevanceReason orders the results by the relevance_reason field.
func ByRelevanceReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelevanceReason, opts...).ToFunc()
}

// BySkipReason orders the results by the skip_reason field.
func BySkipReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipReason, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
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
