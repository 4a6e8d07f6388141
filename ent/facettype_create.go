// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muniscope/muniscope/ent/facettype"
	"github.com/muniscope/muniscope/ent/facetvalue"
)

// FacetTypeCreate is the builder for creating a FacetType entity.
type FacetTypeCreate struct {
	config
	mutation *FacetTypeMutation
	hooks    []Hook
}

// SetSlug sets the "slug" field.
func (_c *FacetTypeCreate) SetSlug(v string) *FacetTypeCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetName sets the "name" field.
func (_c *FacetTypeCreate) SetName(v string) *FacetTypeCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetValueKind sets the "value_kind" field.
func (_c *FacetTypeCreate) SetValueKind(v facettype.ValueKind) *FacetTypeCreate {
	_c.mutation.SetValueKind(v)
	return _c
}

// SetNillableValueKind sets the "value_kind" field if the given value is not nil.
func (_c *FacetTypeCreate) SetNillableValueKind(v *facettype.ValueKind) *FacetTypeCreate {
	if v != nil {
		_c.SetValueKind(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FacetTypeCreate) SetID(v string) *FacetTypeCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddValueIDs adds the "values" edge to the FacetValue entity by IDs.
func (_c *FacetTypeCreate) AddValueIDs(ids ...string) *FacetTypeCreate {
	_c.mutation.AddValueIDs(ids...)
	return _c
}

// AddValues adds the "values" edges to the FacetValue entity.
func (_c *FacetTypeCreate) AddValues(v ...*FacetValue) *FacetTypeCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddValueIDs(ids...)
}

// Mutation returns the FacetTypeMutation object of the builder.
func (_c *FacetTypeCreate) Mutation() *FacetTypeMutation {
	return _c.mutation
}

// Save creates the FacetType in the database.
func (_c *FacetTypeCreate) Save(ctx context.Context) (*FacetType, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FacetTypeCreate) SaveX(ctx context.Context) *FacetType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FacetTypeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FacetTypeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FacetTypeCreate) defaults() {
	if _, ok := _c.mutation.ValueKind(); !ok {
		v := facettype.DefaultValueKind
		_c.mutation.SetValueKind(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FacetTypeCreate) check() error {
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "FacetType.slug"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "FacetType.name"`)}
	}
	if _, ok := _c.mutation.ValueKind(); !ok {
		return &ValidationError{Name: "value_kind", err: errors.New(`ent: missing required field "FacetType.value_kind"`)}
	}
	if v, ok := _c.mutation.ValueKind(); ok {
		if err := facettype.ValueKindValidator(v); err != nil {
			return &ValidationError{Name: "value_kind", err: fmt.Errorf(`ent: validator failed for field "FacetType.value_kind": %w`, err)}
		}
	}
	return nil
}

func (_c *FacetTypeCreate) sqlSave(ctx context.Context) (*FacetType, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected FacetType.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FacetTypeCreate) createSpec() (*FacetType, *sqlgraph.CreateSpec) {
	var (
		_node = &FacetType{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(facettype.Table, sqlgraph.NewFieldSpec(facettype.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(facettype.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(facettype.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ValueKind(); ok {
		_spec.SetField(facettype.FieldValueKind, field.TypeEnum, value)
		_node.ValueKind = value
	}
	if nodes := _c.mutation.ValuesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FacetTypeCreateBulk is the builder for creating many FacetType entities in bulk.
type FacetTypeCreateBulk struct {
	config
	err      error
	builders []*FacetTypeCreate
}

// Save creates the FacetType entities in the database.
func (_c *FacetTypeCreateBulk) Save(ctx context.Context) ([]*FacetType, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FacetType, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FacetTypeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FacetTypeCreateBulk) SaveX(ctx context.Context) []*FacetType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FacetTypeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FacetTypeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
