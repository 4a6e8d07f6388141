// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/muniscope/muniscope/ent/summary"
	"github.com/muniscope/muniscope/ent/widget"
)

// Widget is the model entity for the Widget schema.
type Widget struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SummaryID holds the value of the "summary_id" field.
	SummaryID string `json:"summary_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Position within the summary
	DisplayOrder int `json:"display_order,omitempty"`
	// Declarative query: entity_type, facet_types, filters, sort, limit, aggregate
	QueryConfig map[string]interface{} `json:"query_config,omitempty"`
	// Opaque to the executor, rendered client-side
	VisualizationConfig map[string]interface{} `json:"visualization_config,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WidgetQuery when eager-loading is set.
	Edges        WidgetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WidgetEdges holds the relations/edges for other nodes in the graph.
type WidgetEdges struct {
	// Summary holds the value of the summary edge.
	Summary *Summary `json:"summary,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SummaryOrErr returns the Summary value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WidgetEdges) SummaryOrErr() (*Summary, error) {
	if e.Summary != nil {
		return e.Summary, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: summary.Label}
	}
	return nil, &NotLoadedError{edge: "summary"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Widget) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case widget.FieldQueryConfig, widget.FieldVisualizationConfig:
			values[i] = new([]byte)
		case widget.FieldDisplayOrder:
			values[i] = new(sql.NullInt64)
		case widget.FieldID, widget.FieldSummaryID, widget.FieldTitle:
			values[i] = new(sql.NullString)
		case widget.FieldCreatedAt, widget.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Widget fields.
func (_m *Widget) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case widget.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case widget.FieldSummaryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary_id", values[i])
			} else if value.Valid {
				_m.SummaryID = value.String
			}
		case widget.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case widget.FieldDisplayOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field display_order", values[i])
			} else if value.Valid {
				_m.DisplayOrder = int(value.Int64)
			}
		case widget.FieldQueryConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field query_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QueryConfig); err != nil {
					return fmt.Errorf("unmarshal field query_config: %w", err)
				}
			}
		case widget.FieldVisualizationConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field visualization_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.VisualizationConfig); err != nil {
					return fmt.Errorf("unmarshal field visualization_config: %w", err)
				}
			}
		case widget.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case widget.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Widget.
// This includes values selected through modifiers, order, etc.
func (_m *Widget) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySummary queries the "summary" edge of the Widget entity.
func (_m *Widget) QuerySummary() *SummaryQuery {
	return NewWidgetClient(_m.config).QuerySummary(_m)
}

// Update returns a builder for updating this Widget.
// Note that you need to call Widget.Unwrap() before calling this method if this Widget
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Widget) Update() *WidgetUpdateOne {
	return NewWidgetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Widget entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Widget) Unwrap() *Widget {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Widget is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Widget) String() string {
	var builder strings.Builder
	builder.WriteString("Widget(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("summary_id=")
	builder.WriteString(_m.SummaryID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("display_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.DisplayOrder))
	builder.WriteString(", ")
	builder.WriteString("query_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.QueryConfig))
	builder.WriteString(", ")
	builder.WriteString("visualization_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.VisualizationConfig))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Widgets is a parsable slice of Widget.
type Widgets []*Widget
