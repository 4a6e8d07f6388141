// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muniscope/muniscope/ent/summary"
	"github.com/muniscope/muniscope/ent/widget"
)

// WidgetCreate is the builder for creating a Widget entity.
type WidgetCreate struct {
	config
	mutation *WidgetMutation
	hooks    []Hook
}

// SetSummaryID sets the "summary_id" field.
func (_c *WidgetCreate) SetSummaryID(v string) *WidgetCreate {
	_c.mutation.SetSummaryID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *WidgetCreate) SetTitle(v string) *WidgetCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDisplayOrder sets the "display_order" field.
func (_c *WidgetCreate) SetDisplayOrder(v int) *WidgetCreate {
	_c.mutation.SetDisplayOrder(v)
	return _c
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_c *WidgetCreate) SetNillableDisplayOrder(v *int) *WidgetCreate {
	if v != nil {
		_c.SetDisplayOrder(*v)
	}
	return _c
}

// SetQueryConfig sets the "query_config" field.
func (_c *WidgetCreate) SetQueryConfig(v map[string]interface{}) *WidgetCreate {
	_c.mutation.SetQueryConfig(v)
	return _c
}

// SetVisualizationConfig sets the "visualization_config" field.
func (_c *WidgetCreate) SetVisualizationConfig(v map[string]interface{}) *WidgetCreate {
	_c.mutation.SetVisualizationConfig(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WidgetCreate) SetCreatedAt(v time.Time) *WidgetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WidgetCreate) SetNillableCreatedAt(v *time.Time) *WidgetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WidgetCreate) SetUpdatedAt(v time.Time) *WidgetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WidgetCreate) SetNillableUpdatedAt(v *time.Time) *WidgetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WidgetCreate) SetID(v string) *WidgetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSummary sets the "summary" edge to the Summary entity.
func (_c *WidgetCreate) SetSummary(v *Summary) *WidgetCreate {
	return _c.SetSummaryID(v.ID)
}

// Mutation returns the WidgetMutation object of the builder.
func (_c *WidgetCreate) Mutation() *WidgetMutation {
	return _c.mutation
}

// Save creates the Widget in the database.
func (_c *WidgetCreate) Save(ctx context.Context) (*Widget, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WidgetCreate) SaveX(ctx context.Context) *Widget {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WidgetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WidgetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WidgetCreate) defaults() {
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		v := widget.DefaultDisplayOrder
		_c.mutation.SetDisplayOrder(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := widget.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := widget.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WidgetCreate) check() error {
	if _, ok := _c.mutation.SummaryID(); !ok {
		return &ValidationError{Name: "summary_id", err: errors.New(`ent: missing required field "Widget.summary_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Widget.title"`)}
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		return &ValidationError{Name: "display_order", err: errors.New(`ent: missing required field "Widget.display_order"`)}
	}
	if _, ok := _c.mutation.QueryConfig(); !ok {
		return &ValidationError{Name: "query_config", err: errors.New(`ent: missing required field "Widget.query_config"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Widget.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Widget.updated_at"`)}
	}
	if len(_c.mutation.SummaryIDs()) == 0 {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required edge "Widget.summary"`)}
	}
	return nil
}

func (_c *WidgetCreate) sqlSave(ctx context.Context) (*Widget, error) {
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
			return nil, fmt.Errorf("unexpected Widget.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WidgetCreate) createSpec() (*Widget, *sqlgraph.CreateSpec) {
	var (
		_node = &Widget{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(widget.Table, sqlgraph.NewFieldSpec(widget.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(widget.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.DisplayOrder(); ok {
		_spec.SetField(widget.FieldDisplayOrder, field.TypeInt, value)
		_node.DisplayOrder = value
	}
	if value, ok := _c.mutation.QueryConfig(); ok {
		_spec.SetField(widget.FieldQueryConfig, field.TypeJSON, value)
		_node.QueryConfig = value
	}
	if value, ok := _c.mutation.VisualizationConfig(); ok {
		_spec.SetField(widget.FieldVisualizationConfig, field.TypeJSON, value)
		_node.VisualizationConfig = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(widget.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(widget.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SummaryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   widget.SummaryTable,
			Columns: []string{widget.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SummaryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WidgetCreateBulk is the builder for creating many Widget entities in bulk.
type WidgetCreateBulk struct {
	config
	err      error
	builders []*WidgetCreate
}

// Save creates the Widget entities in the database.
func (_c *WidgetCreateBulk) Save(ctx context.Context) ([]*Widget, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Widget, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WidgetMutation)
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
func (_c *WidgetCreateBulk) SaveX(ctx context.Context) []*Widget {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WidgetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WidgetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
