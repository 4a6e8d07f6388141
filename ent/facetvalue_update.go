// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muniscope/muniscope/ent/entity"
	"github.com/muniscope/muniscope/ent/facettype"
	"github.com/muniscope/muniscope/ent/facetvalue"
	"github.com/muniscope/muniscope/ent/predicate"
)

// FacetValueUpdate is the builder for updating FacetValue entities.
type FacetValueUpdate struct {
	config
	hooks    []Hook
	mutation *FacetValueMutation
}

// Where appends a list predicates to the FacetValueUpdate builder.
func (_u *FacetValueUpdate) Where(ps ...predicate.FacetValue) *FacetValueUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *FacetValueUpdate) SetEntityID(v string) *FacetValueUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *FacetValueUpdate) SetNillableEntityID(v *string) *FacetValueUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetFacetTypeID sets the "facet_type_id" field.
func (_u *FacetValueUpdate) SetFacetTypeID(v string) *FacetValueUpdate {
	_u.mutation.SetFacetTypeID(v)
	return _u
}

// SetNillableFacetTypeID sets the "facet_type_id" field if the given value is not nil.
func (_u *FacetValueUpdate) SetNillableFacetTypeID(v *string) *FacetValueUpdate {
	if v != nil {
		_u.SetFacetTypeID(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *FacetValueUpdate) SetValue(v map[string]interface{}) *FacetValueUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *FacetValueUpdate) SetConfidence(v float64) *FacetValueUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *FacetValueUpdate) SetNillableConfidence(v *float64) *FacetValueUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *FacetValueUpdate) AddConfidence(v float64) *FacetValueUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *FacetValueUpdate) SetSourceURL(v string) *FacetValueUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *FacetValueUpdate) SetNillableSourceURL(v *string) *FacetValueUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *FacetValueUpdate) ClearSourceURL() *FacetValueUpdate {
	_u.mutation.ClearSourceURL()
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *FacetValueUpdate) SetExtractedAt(v time.Time) *FacetValueUpdate {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *FacetValueUpdate) SetNillableExtractedAt(v *time.Time) *FacetValueUpdate {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// SetEntity sets the "entity" edge to the Entity entity.
func (_u *FacetValueUpdate) SetEntity(v *Entity) *FacetValueUpdate {
	return _u.SetEntityID(v.ID)
}

// SetFacetType sets the "facet_type" edge to the FacetType entity.
func (_u *FacetValueUpdate) SetFacetType(v *FacetType) *FacetValueUpdate {
	return _u.SetFacetTypeID(v.ID)
}

// Mutation returns the FacetValueMutation object of the builder.
func (_u *FacetValueUpdate) Mutation() *FacetValueMutation {
	return _u.mutation
}

// ClearEntity clears the "entity" edge to the Entity entity.
func (_u *FacetValueUpdate) ClearEntity() *FacetValueUpdate {
	_u.mutation.ClearEntity()
	return _u
}

// ClearFacetType clears the "facet_type" edge to the FacetType entity.
func (_u *FacetValueUpdate) ClearFacetType() *FacetValueUpdate {
	_u.mutation.ClearFacetType()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FacetValueUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FacetValueUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FacetValueUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FacetValueUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FacetValueUpdate) check() error {
	if _u.mutation.EntityCleared() && len(_u.mutation.EntityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FacetValue.entity"`)
	}
	if _u.mutation.FacetTypeCleared() && len(_u.mutation.FacetTypeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FacetValue.facet_type"`)
	}
	return nil
}

func (_u *FacetValueUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(facetvalue.Table, facetvalue.Columns, sqlgraph.NewFieldSpec(facetvalue.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(facetvalue.FieldValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(facetvalue.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(facetvalue.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(facetvalue.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(facetvalue.FieldSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(facetvalue.FieldExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.EntityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   facetvalue.EntityTable,
			Columns: []string{facetvalue.EntityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   facetvalue.EntityTable,
			Columns: []string{facetvalue.EntityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FacetTypeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   facetvalue.FacetTypeTable,
			Columns: []string{facetvalue.FacetTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facettype.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FacetTypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   facetvalue.FacetTypeTable,
			Columns: []string{facetvalue.FacetTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facettype.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{facetvalue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FacetValueUpdateOne is the builder for updating a single FacetValue entity.
type FacetValueUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FacetValueMutation
}

// SetEntityID sets the "entity_id" field.
func (_u *FacetValueUpdateOne) SetEntityID(v string) *FacetValueUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *FacetValueUpdateOne) SetNillableEntityID(v *string) *FacetValueUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetFacetTypeID sets the "facet_type_id" field.
func (_u *FacetValueUpdateOne) SetFacetTypeID(v string) *FacetValueUpdateOne {
	_u.mutation.SetFacetTypeID(v)
	return _u
}

// SetNillableFacetTypeID sets the "facet_type_id" field if the given value is not nil.
func (_u *FacetValueUpdateOne) SetNillableFacetTypeID(v *string) *FacetValueUpdateOne {
	if v != nil {
		_u.SetFacetTypeID(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *FacetValueUpdateOne) SetValue(v map[string]interface{}) *FacetValueUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *FacetValueUpdateOne) SetConfidence(v float64) *FacetValueUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *FacetValueUpdateOne) SetNillableConfidence(v *float64) *FacetValueUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *FacetValueUpdateOne) AddConfidence(v float64) *FacetValueUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *FacetValueUpdateOne) SetSourceURL(v string) *FacetValueUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *FacetValueUpdateOne) SetNillableSourceURL(v *string) *FacetValueUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *FacetValueUpdateOne) ClearSourceURL() *FacetValueUpdateOne {
	_u.mutation.ClearSourceURL()
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *FacetValueUpdateOne) SetExtractedAt(v time.Time) *FacetValueUpdateOne {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *FacetValueUpdateOne) SetNillableExtractedAt(v *time.Time) *FacetValueUpdateOne {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// SetEntity sets the "entity" edge to the Entity entity.
func (_u *FacetValueUpdateOne) SetEntity(v *Entity) *FacetValueUpdateOne {
	return _u.SetEntityID(v.ID)
}

// SetFacetType sets the "facet_type" edge to the FacetType entity.
func (_u *FacetValueUpdateOne) SetFacetType(v *FacetType) *FacetValueUpdateOne {
	return _u.SetFacetTypeID(v.ID)
}

// Mutation returns the FacetValueMutation object of the builder.
func (_u *FacetValueUpdateOne) Mutation() *FacetValueMutation {
	return _u.mutation
}

// ClearEntity clears the "entity" edge to the Entity entity.
func (_u *FacetValueUpdateOne) ClearEntity() *FacetValueUpdateOne {
	_u.mutation.ClearEntity()
	return _u
}

// ClearFacetType clears the "facet_type" edge to the FacetType entity.
func (_u *FacetValueUpdateOne) ClearFacetType() *FacetValueUpdateOne {
	_u.mutation.ClearFacetType()
	return _u
}

// Where appends a list predicates to the FacetValueUpdate builder.
func (_u *FacetValueUpdateOne) Where(ps ...predicate.FacetValue) *FacetValueUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FacetValueUpdateOne) Select(field string, fields ...string) *FacetValueUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FacetValue entity.
func (_u *FacetValueUpdateOne) Save(ctx context.Context) (*FacetValue, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FacetValueUpdateOne) SaveX(ctx context.Context) *FacetValue {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FacetValueUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FacetValueUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FacetValueUpdateOne) check() error {
	if _u.mutation.EntityCleared() && len(_u.mutation.EntityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FacetValue.entity"`)
	}
	if _u.mutation.FacetTypeCleared() && len(_u.mutation.FacetTypeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FacetValue.facet_type"`)
	}
	return nil
}

func (_u *FacetValueUpdateOne) sqlSave(ctx context.Context) (_node *FacetValue, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(facetvalue.Table, facetvalue.Columns, sqlgraph.NewFieldSpec(facetvalue.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FacetValue.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, facetvalue.FieldID)
		for _, f := range fields {
			if !facetvalue.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != facetvalue.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(facetvalue.FieldValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(facetvalue.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(facetvalue.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(facetvalue.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(facetvalue.FieldSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(facetvalue.FieldExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.EntityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   facetvalue.EntityTable,
			Columns: []string{facetvalue.EntityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   facetvalue.EntityTable,
			Columns: []string{facetvalue.EntityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FacetTypeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   facetvalue.FacetTypeTable,
			Columns: []string{facetvalue.FacetTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facettype.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FacetTypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   facetvalue.FacetTypeTable,
			Columns: []string{facetvalue.FacetTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facettype.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FacetValue{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{facetvalue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
