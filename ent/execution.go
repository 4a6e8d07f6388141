// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/muniscope/muniscope/ent/execution"
	"github.com/muniscope/muniscope/ent/summary"
)

// Execution is the model entity for the Execution schema.
type Execution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SummaryID holds the value of the "summary_id" field.
	SummaryID string `json:"summary_id,omitempty"`
	// Status holds the value of the "status" field.
	Status execution.Status `json:"status,omitempty"`
	// e.g. 'manual', 'cron', 'crawl'
	TriggeredBy string `json:"triggered_by,omitempty"`
	// TriggerDetails holds the value of the "trigger_details" field.
	TriggerDetails map[string]interface{} `json:"trigger_details,omitempty"`
	// widget_<id> -> result payload; size-guarded before persist
	CachedData map[string]interface{} `json:"cached_data,omitempty"`
	// DataHash holds the value of the "data_hash" field.
	DataHash *string `json:"data_hash,omitempty"`
	// HasChanges holds the value of the "has_changes" field.
	HasChanges bool `json:"has_changes,omitempty"`
	// RelevanceScore holds the value of the "relevance_score" field.
	RelevanceScore *float64 `json:"relevance_score,omitempty"`
	// RelevanceReason holds the value of the "relevance_reason" field.
	RelevanceReason *string `json:"relevance_reason,omitempty"`
	// Set for skipped executions: concurrency conflict or not-relevant
	SkipReason *string `json:"skip_reason,omitempty"`
	// ExpansionSuggestions holds the value of the "expansion_suggestions" field.
	ExpansionSuggestions []map[string]interface{} `json:"expansion_suggestions,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int `json:"duration_ms,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExecutionQuery when eager-loading is set.
	Edges        ExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExecutionEdges holds the relations/edges for other nodes in the graph.
type ExecutionEdges struct {
	// Summary holds the value of the summary edge.
	Summary *Summary `json:"summary,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SummaryOrErr returns the Summary value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExecutionEdges) SummaryOrErr() (*Summary, error) {
	if e.Summary != nil {
		return e.Summary, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: summary.Label}
	}
	return nil, &NotLoadedError{edge: "summary"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Execution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case execution.FieldTriggerDetails, execution.FieldCachedData, execution.FieldExpansionSuggestions:
			values[i] = new([]byte)
		case execution.FieldHasChanges:
			values[i] = new(sql.NullBool)
		case execution.FieldRelevanceScore:
			values[i] = new(sql.NullFloat64)
		case execution.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case execution.FieldID, execution.FieldSummaryID, execution.FieldStatus, execution.FieldTriggeredBy, execution.FieldDataHash, execution.FieldRelevanceReason, execution.FieldSkipReason, execution.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case execution.FieldStartedAt, execution.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Execution fields.
func (_m *Execution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case execution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case execution.FieldSummaryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary_id", values[i])
			} else if value.Valid {
				_m.SummaryID = value.String
			}
		case execution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = execution.Status(value.String)
			}
		case execution.FieldTriggeredBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_by", values[i])
			} else if value.Valid {
				_m.TriggeredBy = value.String
			}
		case execution.FieldTriggerDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TriggerDetails); err != nil {
					return fmt.Errorf("unmarshal field trigger_details: %w", err)
				}
			}
		case execution.FieldCachedData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cached_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CachedData); err != nil {
					return fmt.Errorf("unmarshal field cached_data: %w", err)
				}
			}
		case execution.FieldDataHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data_hash", values[i])
			} else if value.Valid {
				_m.DataHash = new(string)
				*_m.DataHash = value.String
			}
		case execution.FieldHasChanges:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_changes", values[i])
			} else if value.Valid {
				_m.HasChanges = value.Bool
			}
		case execution.FieldRelevanceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field relevance_score", values[i])
			} else if value.Valid {
				_m.RelevanceScore = new(float64)
				*_m.RelevanceScore = value.Float64
			}
		case execution.FieldRelevanceReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relevance_reason", values[i])
			} else if value.Valid {
				_m.RelevanceReason = new(string)
				*_m.RelevanceReason = value.String
			}
		case execution.FieldSkipReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skip_reason", values[i])
			} else if value.Valid {
				_m.SkipReason = new(string)
				*_m.SkipReason = value.String
			}
		case execution.FieldExpansionSuggestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field expansion_suggestions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExpansionSuggestions); err != nil {
					return fmt.Errorf("unmarshal field expansion_suggestions: %w", err)
				}
			}
		case execution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case execution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case execution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case execution.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int)
				*_m.DurationMs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Execution.
// This includes values selected through modifiers, order, etc.
func (_m *Execution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySummary queries the "summary" edge of the Execution entity.
func (_m *Execution) QuerySummary() *SummaryQuery {
	return NewExecutionClient(_m.config).QuerySummary(_m)
}

// Update returns a builder for updating this Execution.
// Note that you need to call Execution.Unwrap() before calling this method if this Execution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Execution) Update() *ExecutionUpdateOne {
	return NewExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Execution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Execution) Unwrap() *Execution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Execution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Execution) String() string {
	var builder strings.Builder
	builder.WriteString("Execution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("summary_id=")
	builder.WriteString(_m.SummaryID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("triggered_by=")
	builder.WriteString(_m.TriggeredBy)
	builder.WriteString(", ")
	builder.WriteString("trigger_details=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggerDetails))
	builder.WriteString(", ")
	builder.WriteString("cached_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.CachedData))
	builder.WriteString(", ")
	if v := _m.DataHash; v != nil {
		builder.WriteString("data_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("has_changes=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasChanges))
	builder.WriteString(", ")
	if v := _m.RelevanceScore; v != nil {
		builder.WriteString("relevance_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RelevanceReason; v != nil {
		builder.WriteString("relevance_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SkipReason; v != nil {
		builder.WriteString("skip_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("expansion_suggestions=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpansionSuggestions))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Executions is a parsable slice of Execution.
type Executions []*Execution
