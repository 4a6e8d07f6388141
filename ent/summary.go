// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/muniscope/muniscope/ent/summary"
)

// Summary is the model entity for the Summary schema.
type Summary struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// User that owns this summary
	OwnerID string `json:"owner_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Original natural-language prompt the summary was created from
	Prompt string `json:"prompt,omitempty"`
	// Interpreted theme, used as semantic context for relevance checks
	Theme string `json:"theme,omitempty"`
	// TriggerType holds the value of the "trigger_type" field.
	TriggerType summary.TriggerType `json:"trigger_type,omitempty"`
	// 5-field cron expression, required when trigger_type=cron
	CronExpression *string `json:"cron_expression,omitempty"`
	// Precomputed next due time for cron-triggered summaries
	NextRunAt *time.Time `json:"next_run_at,omitempty"`
	// RelevanceCheckEnabled holds the value of the "relevance_check_enabled" field.
	RelevanceCheckEnabled bool `json:"relevance_check_enabled,omitempty"`
	// RelevanceThreshold holds the value of the "relevance_threshold" field.
	RelevanceThreshold float64 `json:"relevance_threshold,omitempty"`
	// AutoExpandEnabled holds the value of the "auto_expand_enabled" field.
	AutoExpandEnabled bool `json:"auto_expand_enabled,omitempty"`
	// SHA-256 of the last persisted snapshot, volatile fields excluded
	LastDataHash *string `json:"last_data_hash,omitempty"`
	// LastExecutedAt holds the value of the "last_executed_at" field.
	LastExecutedAt *time.Time `json:"last_executed_at,omitempty"`
	// Monotonic counter, incremented atomically on completion
	ExecutionCount int `json:"execution_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Soft delete timestamp
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SummaryQuery when eager-loading is set.
	Edges        SummaryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SummaryEdges holds the relations/edges for other nodes in the graph.
type SummaryEdges struct {
	// Widgets holds the value of the widgets edge.
	Widgets []*Widget `json:"widgets,omitempty"`
	// Executions holds the value of the executions edge.
	Executions []*Execution `json:"executions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// WidgetsOrErr returns the Widgets value or an error if the edge
// was not loaded in eager-loading.
func (e SummaryEdges) WidgetsOrErr() ([]*Widget, error) {
	if e.loadedTypes[0] {
		return e.Widgets, nil
	}
	return nil, &NotLoadedError{edge: "widgets"}
}

// ExecutionsOrErr returns the Executions value or an error if the edge
// was not loaded in eager-loading.
func (e SummaryEdges) ExecutionsOrErr() ([]*Execution, error) {
	if e.loadedTypes[1] {
		return e.Executions, nil
	}
	return nil, &NotLoadedError{edge: "executions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Summary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case summary.FieldRelevanceCheckEnabled, summary.FieldAutoExpandEnabled:
			values[i] = new(sql.NullBool)
		case summary.FieldRelevanceThreshold:
			values[i] = new(sql.NullFloat64)
		case summary.FieldExecutionCount:
			values[i] = new(sql.NullInt64)
		case summary.FieldID, summary.FieldOwnerID, summary.FieldName, summary.FieldPrompt, summary.FieldTheme, summary.FieldTriggerType, summary.FieldCronExpression, summary.FieldLastDataHash:
			values[i] = new(sql.NullString)
		case summary.FieldNextRunAt, summary.FieldLastExecutedAt, summary.FieldCreatedAt, summary.FieldUpdatedAt, summary.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Summary fields.
func (_m *Summary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case summary.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case summary.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case summary.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case summary.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case summary.FieldTheme:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field theme", values[i])
			} else if value.Valid {
				_m.Theme = value.String
			}
		case summary.FieldTriggerType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_type", values[i])
			} else if value.Valid {
				_m.TriggerType = summary.TriggerType(value.String)
			}
		case summary.FieldCronExpression:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cron_expression", values[i])
			} else if value.Valid {
				_m.CronExpression = new(string)
				*_m.CronExpression = value.String
			}
		case summary.FieldNextRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_run_at", values[i])
			} else if value.Valid {
				_m.NextRunAt = new(time.Time)
				*_m.NextRunAt = value.Time
			}
		case summary.FieldRelevanceCheckEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field relevance_check_enabled", values[i])
			} else if value.Valid {
				_m.RelevanceCheckEnabled = value.Bool
			}
		case summary.FieldRelevanceThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field relevance_threshold", values[i])
			} else if value.Valid {
				_m.RelevanceThreshold = value.Float64
			}
		case summary.FieldAutoExpandEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_expand_enabled", values[i])
			} else if value.Valid {
				_m.AutoExpandEnabled = value.Bool
			}
		case summary.FieldLastDataHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_data_hash", values[i])
			} else if value.Valid {
				_m.LastDataHash = new(string)
				*_m.LastDataHash = value.String
			}
		case summary.FieldLastExecutedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_executed_at", values[i])
			} else if value.Valid {
				_m.LastExecutedAt = new(time.Time)
				*_m.LastExecutedAt = value.Time
			}
		case summary.FieldExecutionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_count", values[i])
			} else if value.Valid {
				_m.ExecutionCount = int(value.Int64)
			}
		case summary.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case summary.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case summary.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Summary.
// This includes values selected through modifiers, order, etc.
func (_m *Summary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWidgets queries the "widgets" edge of the Summary entity.
func (_m *Summary) QueryWidgets() *WidgetQuery {
	return NewSummaryClient(_m.config).QueryWidgets(_m)
}

// QueryExecutions queries the "executions" edge of the Summary entity.
func (_m *Summary) QueryExecutions() *ExecutionQuery {
	return NewSummaryClient(_m.config).QueryExecutions(_m)
}

// Update returns a builder for updating this Summary.
// Note that you need to call Summary.Unwrap() before calling this method if this Summary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Summary) Update() *SummaryUpdateOne {
	return NewSummaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Summary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Summary) Unwrap() *Summary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Summary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Summary) String() string {
	var builder strings.Builder
	builder.WriteString("Summary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("theme=")
	builder.WriteString(_m.Theme)
	builder.WriteString(", ")
	builder.WriteString("trigger_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggerType))
	builder.WriteString(", ")
	if v := _m.CronExpression; v != nil {
		builder.WriteString("cron_expression=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NextRunAt; v != nil {
		builder.WriteString("next_run_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("relevance_check_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelevanceCheckEnabled))
	builder.WriteString(", ")
	builder.WriteString("relevance_threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelevanceThreshold))
	builder.WriteString(", ")
	builder.WriteString("auto_expand_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoExpandEnabled))
	builder.WriteString(", ")
	if v := _m.LastDataHash; v != nil {
		builder.WriteString("last_data_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastExecutedAt; v != nil {
		builder.WriteString("last_executed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("execution_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Summaries is a parsable slice of Summary.
type Summaries []*Summary
