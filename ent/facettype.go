// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/muniscope/muniscope/ent/facettype"
)

// FacetType is the model entity for the FacetType schema.
type FacetType struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Stable identifier used by widget query configs
	Slug string `json:"slug,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Shape hint for consumers; value payloads are not schema-enforced
	ValueKind facettype.ValueKind `json:"value_kind,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FacetTypeQuery when eager-loading is set.
	Edges        FacetTypeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FacetTypeEdges holds the relations/edges for other nodes in the graph.
type FacetTypeEdges struct {
	// Values holds the value of the values edge.
	Values []*FacetValue `json:"values,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ValuesOrErr returns the Values value or an error if the edge
// was not loaded in eager-loading.
func (e FacetTypeEdges) ValuesOrErr() ([]*FacetValue, error) {
	if e.loadedTypes[0] {
		return e.Values, nil
	}
	return nil, &NotLoadedError{edge: "values"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FacetType) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case facettype.FieldID, facettype.FieldSlug, facettype.FieldName, facettype.FieldValueKind:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FacetType fields.
func (_m *FacetType) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case facettype.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case facettype.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case facettype.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case facettype.FieldValueKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value_kind", values[i])
			} else if value.Valid {
				_m.ValueKind = facettype.ValueKind(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FacetType.
// This includes values selected through modifiers, order, etc.
func (_m *FacetType) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryValues queries the "values" edge of the FacetType entity.
func (_m *FacetType) QueryValues() *FacetValueQuery {
	return NewFacetTypeClient(_m.config).QueryValues(_m)
}

// Update returns a builder for updating this FacetType.
// Note that you need to call FacetType.Unwrap() before calling this method if this FacetType
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FacetType) Update() *FacetTypeUpdateOne {
	return NewFacetTypeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FacetType entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FacetType) Unwrap() *FacetType {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FacetType is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FacetType) String() string {
	var builder strings.Builder
	builder.WriteString("FacetType(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("value_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValueKind))
	builder.WriteByte(')')
	return builder.String()
}

// FacetTypes is a parsable slice of FacetType.
type FacetTypes []*FacetType
