// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muniscope/muniscope/ent/entity"
	"github.com/muniscope/muniscope/ent/facettype"
	"github.com/muniscope/muniscope/ent/facetvalue"
)

// FacetValueCreate is the builder for creating a FacetValue entity.
type FacetValueCreate struct {
	config
	mutation *FacetValueMutation
	hooks    []Hook
}

// SetEntityID sets the "entity_id" field.
func (_c *FacetValueCreate) SetEntityID(v string) *FacetValueCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetFacetTypeID sets the "facet_type_id" field.
func (_c *FacetValueCreate) SetFacetTypeID(v string) *FacetValueCreate {
	_c.mutation.SetFacetTypeID(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *FacetValueCreate) SetValue(v map[string]interface{}) *FacetValueCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *FacetValueCreate) SetConfidence(v float64) *FacetValueCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *FacetValueCreate) SetNillableConfidence(v *float64) *FacetValueCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *FacetValueCreate) SetSourceURL(v string) *FacetValueCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_c *FacetValueCreate) SetNillableSourceURL(v *string) *FacetValueCreate {
	if v != nil {
		_c.SetSourceURL(*v)
	}
	return _c
}

// SetExtractedAt sets the "extracted_at" field.
func (_c *FacetValueCreate) SetExtractedAt(v time.Time) *FacetValueCreate {
	_c.mutation.SetExtractedAt(v)
	return _c
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_c *FacetValueCreate) SetNillableExtractedAt(v *time.Time) *FacetValueCreate {
	if v != nil {
		_c.SetExtractedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FacetValueCreate) SetID(v string) *FacetValueCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEntity sets the "entity" edge to the Entity entity.
func (_c *FacetValueCreate) SetEntity(v *Entity) *FacetValueCreate {
	return _c.SetEntityID(v.ID)
}

// SetFacetType sets the "facet_type" edge to the FacetType entity.
func (_c *FacetValueCreate) SetFacetType(v *FacetType) *FacetValueCreate {
	return _c.SetFacetTypeID(v.ID)
}

// Mutation returns the FacetValueMutation object of the builder.
func (_c *FacetValueCreate) Mutation() *FacetValueMutation {
	return _c.mutation
}

// Save creates the FacetValue in the database.
func (_c *FacetValueCreate) Save(ctx context.Context) (*FacetValue, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FacetValueCreate) SaveX(ctx context.Context) *FacetValue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FacetValueCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FacetValueCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FacetValueCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := facetvalue.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		v := facetvalue.DefaultExtractedAt()
		_c.mutation.SetExtractedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FacetValueCreate) check() error {
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "FacetValue.entity_id"`)}
	}
	if _, ok := _c.mutation.FacetTypeID(); !ok {
		return &ValidationError{Name: "facet_type_id", err: errors.New(`ent: missing required field "FacetValue.facet_type_id"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "FacetValue.value"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "FacetValue.confidence"`)}
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		return &ValidationError{Name: "extracted_at", err: errors.New(`ent: missing required field "FacetValue.extracted_at"`)}
	}
	if len(_c.mutation.EntityIDs()) == 0 {
		return &ValidationError{Name: "entity", err: errors.New(`ent: missing required edge "FacetValue.entity"`)}
	}
	if len(_c.mutation.FacetTypeIDs()) == 0 {
		return &ValidationError{Name: "facet_type", err: errors.New(`ent: missing required edge "FacetValue.facet_type"`)}
	}
	return nil
}

func (_c *FacetValueCreate) sqlSave(ctx context.Context) (*FacetValue, error) {
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
			return nil, fmt.Errorf("unexpected FacetValue.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FacetValueCreate) createSpec() (*FacetValue, *sqlgraph.CreateSpec) {
	var (
		_node = &FacetValue{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(facetvalue.Table, sqlgraph.NewFieldSpec(facetvalue.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(facetvalue.FieldValue, field.TypeJSON, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(facetvalue.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(facetvalue.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = &value
	}
	if value, ok := _c.mutation.ExtractedAt(); ok {
		_spec.SetField(facetvalue.FieldExtractedAt, field.TypeTime, value)
		_node.ExtractedAt = value
	}
	if nodes := _c.mutation.EntityIDs(); len(nodes) > 0 {
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
		_node.EntityID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FacetTypeIDs(); len(nodes) > 0 {
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
		_node.FacetTypeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FacetValueCreateBulk is the builder for creating many FacetValue entities in bulk.
type FacetValueCreateBulk struct {
	config
	err      error
	builders []*FacetValueCreate
}

// Save creates the FacetValue entities in the database.
func (_c *FacetValueCreateBulk) Save(ctx context.Context) ([]*FacetValue, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FacetValue, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FacetValueMutation)
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
func (_c *FacetValueCreateBulk) SaveX(ctx context.Context) []*FacetValue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FacetValueCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FacetValueCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
