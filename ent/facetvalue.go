// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/muniscope/muniscope/ent/entity"
	"github.com/muniscope/muniscope/ent/facettype"
	"github.com/muniscope/muniscope/ent/facetvalue"
)

// FacetValue is the model entity for the FacetValue schema.
type FacetValue struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID string `json:"entity_id,omitempty"`
	// FacetTypeID holds the value of the "facet_type_id" field.
	FacetTypeID string `json:"facet_type_id,omitempty"`
	// Opaque value payload, schema-on-read
	Value map[string]interface{} `json:"value,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// SourceURL holds the value of the "source_url" field.
	SourceURL *string `json:"source_url,omitempty"`
	// ExtractedAt holds the value of the "extracted_at" field.
	ExtractedAt time.Time `json:"extracted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FacetValueQuery when eager-loading is set.
	Edges        FacetValueEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FacetValueEdges holds the relations/edges for other nodes in the graph.
type FacetValueEdges struct {
	// Entity holds the value of the entity edge.
	Entity *Entity `json:"entity,omitempty"`
	// FacetType holds the value of the facet_type edge.
	FacetType *FacetType `json:"facet_type,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// EntityOrErr returns the Entity value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FacetValueEdges) EntityOrErr() (*Entity, error) {
	if e.Entity != nil {
		return e.Entity, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: entity.Label}
	}
	return nil, &NotLoadedError{edge: "entity"}
}

// FacetTypeOrErr returns the FacetType value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FacetValueEdges) FacetTypeOrErr() (*FacetType, error) {
	if e.FacetType != nil {
		return e.FacetType, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: facettype.Label}
	}
	return nil, &NotLoadedError{edge: "facet_type"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FacetValue) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case facetvalue.FieldValue:
			values[i] = new([]byte)
		case facetvalue.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case facetvalue.FieldID, facetvalue.FieldEntityID, facetvalue.FieldFacetTypeID, facetvalue.FieldSourceURL:
			values[i] = new(sql.NullString)
		case facetvalue.FieldExtractedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FacetValue fields.
func (_m *FacetValue) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case facetvalue.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case facetvalue.FieldEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = value.String
			}
		case facetvalue.FieldFacetTypeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field facet_type_id", values[i])
			} else if value.Valid {
				_m.FacetTypeID = value.String
			}
		case facetvalue.FieldValue:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Value); err != nil {
					return fmt.Errorf("unmarshal field value: %w", err)
				}
			}
		case facetvalue.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case facetvalue.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				_m.SourceURL = new(string)
				*_m.SourceURL = value.String
			}
		case facetvalue.FieldExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_at", values[i])
			} else if value.Valid {
				_m.ExtractedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the FacetValue.
// This includes values selected through modifiers, order, etc.
func (_m *FacetValue) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEntity queries the "entity" edge of the FacetValue entity.
func (_m *FacetValue) QueryEntity() *EntityQuery {
	return NewFacetValueClient(_m.config).QueryEntity(_m)
}

// QueryFacetType queries the "facet_type" edge of the FacetValue entity.
func (_m *FacetValue) QueryFacetType() *FacetTypeQuery {
	return NewFacetValueClient(_m.config).QueryFacetType(_m)
}

// Update returns a builder for updating this FacetValue.
// Note that you need to call FacetValue.Unwrap() before calling this method if this FacetValue
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FacetValue) Update() *FacetValueUpdateOne {
	return NewFacetValueClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FacetValue entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FacetValue) Unwrap() *FacetValue {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FacetValue is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FacetValue) String() string {
	var builder strings.Builder
	builder.WriteString("FacetValue(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("entity_id=")
	builder.WriteString(_m.EntityID)
	builder.WriteString(", ")
	builder.WriteString("facet_type_id=")
	builder.WriteString(_m.FacetTypeID)
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(fmt.Sprintf("%v", _m.Value))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	if v := _m.SourceURL; v != nil {
		builder.WriteString("source_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("extracted_at=")
	builder.WriteString(_m.ExtractedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FacetValues is a parsable slice of FacetValue.
type FacetValues []*FacetValue
