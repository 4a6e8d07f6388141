// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muniscope/muniscope/ent/facettype"
	"github.com/muniscope/muniscope/ent/facetvalue"
	"github.com/muniscope/muniscope/ent/predicate"
)

// FacetTypeUpdate is the builder for updating FacetType entities.
type FacetTypeUpdate struct {
	config
	hooks    []Hook
	mutation *FacetTypeMutation
}

// Where appends a list predicates to the FacetTypeUpdate builder.
func (_u *FacetTypeUpdate) Where(ps ...predicate.FacetType) *FacetTypeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *FacetTypeUpdate) SetSlug(v string) *FacetTypeUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *FacetTypeUpdate) SetNillableSlug(v *string) *FacetTypeUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *FacetTypeUpdate) SetName(v string) *FacetTypeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FacetTypeUpdate) SetNillableName(v *string) *FacetTypeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValueKind sets the "value_kind" field.
func (_u *FacetTypeUpdate) SetValueKind(v facettype.ValueKind) *FacetTypeUpdate {
	_u.mutation.SetValueKind(v)
	return _u
}

// SetNillableValueKind sets the "value_kind" field if the given value is not nil.
func (_u *FacetTypeUpdate) SetNillableValueKind(v *facettype.ValueKind) *FacetTypeUpdate {
	if v != nil {
		_u.SetValueKind(*v)
	}
	return _u
}

// AddValueIDs adds the "values" edge to the FacetValue entity by IDs.
func (_u *FacetTypeUpdate) AddValueIDs(ids ...string) *FacetTypeUpdate {
	_u.mutation.AddValueIDs(ids...)
	return _u
}

// AddValues adds the "values" edges to the FacetValue entity.
func (_u *FacetTypeUpdate) AddValues(v ...*FacetValue) *FacetTypeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValueIDs(ids...)
}

// Mutation returns the FacetTypeMutation object of the builder.
func (_u *FacetTypeUpdate) Mutation() *FacetTypeMutation {
	return _u.mutation
}

// ClearValues clears all "values" edges to the FacetValue entity.
func (_u *FacetTypeUpdate) ClearValues() *FacetTypeUpdate {
	_u.mutation.ClearValues()
	return _u
}

// RemoveValueIDs removes the "values" edge to FacetValue entities by IDs.
func (_u *FacetTypeUpdate) RemoveValueIDs(ids ...string) *FacetTypeUpdate {
	_u.mutation.RemoveValueIDs(ids...)
	return _u
}

// RemoveValues removes "values" edges to FacetValue entities.
func (_u *FacetTypeUpdate) RemoveValues(v ...*FacetValue) *FacetTypeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValueIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FacetTypeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FacetTypeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FacetTypeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FacetTypeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FacetTypeUpdate) check() error {
	if v, ok := _u.mutation.ValueKind(); ok {
		if err := facettype.ValueKindValidator(v); err != nil {
			return &ValidationError{Name: "value_kind", err: fmt.Errorf(`ent: validator failed for field "FacetType.value_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *FacetTypeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(facettype.Table, facettype.Columns, sqlgraph.NewFieldSpec(facettype.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(facettype.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(facettype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValueKind(); ok {
		_spec.SetField(facettype.FieldValueKind, field.TypeEnum, value)
	}
	if _u.mutation.ValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facettype.ValuesTable,
			Columns: []string{facettype.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facetvalue.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValuesIDs(); len(nodes) > 0 && !_u.mutation.ValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facettype.ValuesTable,
			Columns: []string{facettype.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facetvalue.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facettype.ValuesTable,
			Columns: []string{facettype.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facetvalue.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{facettype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FacetTypeUpdateOne is the builder for updating a single FacetType entity.
type FacetTypeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FacetTypeMutation
}

// SetSlug sets the "slug" field.
func (_u *FacetTypeUpdateOne) SetSlug(v string) *FacetTypeUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *FacetTypeUpdateOne) SetNillableSlug(v *string) *FacetTypeUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *FacetTypeUpdateOne) SetName(v string) *FacetTypeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FacetTypeUpdateOne) SetNillableName(v *string) *FacetTypeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValueKind sets the "value_kind" field.
func (_u *FacetTypeUpdateOne) SetValueKind(v facettype.ValueKind) *FacetTypeUpdateOne {
	_u.mutation.SetValueKind(v)
	return _u
}

// SetNillableValueKind sets the "value_kind" field if the given value is not nil.
func (_u *FacetTypeUpdateOne) SetNillableValueKind(v *facettype.ValueKind) *FacetTypeUpdateOne {
	if v != nil {
		_u.SetValueKind(*v)
	}
	return _u
}

// AddValueIDs adds the "values" edge to the FacetValue entity by IDs.
func (_u *FacetTypeUpdateOne) AddValueIDs(ids ...string) *FacetTypeUpdateOne {
	_u.mutation.AddValueIDs(ids...)
	return _u
}

// AddValues adds the "values" edges to the FacetValue entity.
func (_u *FacetTypeUpdateOne) AddValues(v ...*FacetValue) *FacetTypeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValueIDs(ids...)
}

// Mutation returns the FacetTypeMutation object of the builder.
func (_u *FacetTypeUpdateOne) Mutation() *FacetTypeMutation {
	return _u.mutation
}

// ClearValues clears all "values" edges to the FacetValue entity.
func (_u *FacetTypeUpdateOne) ClearValues() *FacetTypeUpdateOne {
	_u.mutation.ClearValues()
	return _u
}

// RemoveValueIDs removes the "values" edge to FacetValue entities by IDs.
func (_u *FacetTypeUpdateOne) RemoveValueIDs(ids ...string) *FacetTypeUpdateOne {
	_u.mutation.RemoveValueIDs(ids...)
	return _u
}

// RemoveValues removes "values" edges to FacetValue entities.
func (_u *FacetTypeUpdateOne) RemoveValues(v ...*FacetValue) *FacetTypeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValueIDs(ids...)
}

// Where appends a list predicates to the FacetTypeUpdate builder.
func (_u *FacetTypeUpdateOne) Where(ps ...predicate.FacetType) *FacetTypeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FacetTypeUpdateOne) Select(field string, fields ...string) *FacetTypeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FacetType entity.
func (_u *FacetTypeUpdateOne) Save(ctx context.Context) (*FacetType, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FacetTypeUpdateOne) SaveX(ctx context.Context) *FacetType {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FacetTypeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FacetTypeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FacetTypeUpdateOne) check() error {
	if v, ok := _u.mutation.ValueKind(); ok {
		if err := facettype.ValueKindValidator(v); err != nil {
			return &ValidationError{Name: "value_kind", err: fmt.Errorf(`ent: validator failed for field "FacetType.value_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *FacetTypeUpdateOne) sqlSave(ctx context.Context) (_node *FacetType, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(facettype.Table, facettype.Columns, sqlgraph.NewFieldSpec(facettype.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FacetType.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, facettype.FieldID)
		for _, f := range fields {
			if !facettype.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != facettype.FieldID {
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
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(facettype.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(facettype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValueKind(); ok {
		_spec.SetField(facettype.FieldValueKind, field.TypeEnum, value)
	}
	if _u.mutation.ValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facettype.ValuesTable,
			Columns: []string{facettype.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facetvalue.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValuesIDs(); len(nodes) > 0 && !_u.mutation.ValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facettype.ValuesTable,
			Columns: []string{facettype.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facetvalue.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facettype.ValuesTable,
			Columns: []string{facettype.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facetvalue.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FacetType{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{facettype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
