// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muniscope/muniscope/ent/execution"
	"github.com/muniscope/muniscope/ent/summary"
	"github.com/muniscope/muniscope/ent/widget"
)

// SummaryCreate is the builder for creating a Summary entity.
type SummaryCreate struct {
	config
	mutation *SummaryMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *SummaryCreate) SetOwnerID(v string) *SummaryCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SummaryCreate) SetName(v string) *SummaryCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *SummaryCreate) SetPrompt(v string) *SummaryCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_c *SummaryCreate) SetNillablePrompt(v *string) *SummaryCreate {
	if v != nil {
		_c.SetPrompt(*v)
	}
	return _c
}

// SetTheme sets the "theme" field.
func (_c *SummaryCreate) SetTheme(v string) *SummaryCreate {
	_c.mutation.SetTheme(v)
	return _c
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableTheme(v *string) *SummaryCreate {
	if v != nil {
		_c.SetTheme(*v)
	}
	return _c
}

// SetTriggerType sets the "trigger_type" field.
func (_c *SummaryCreate) SetTriggerType(v summary.TriggerType) *SummaryCreate {
	_c.mutation.SetTriggerType(v)
	return _c
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableTriggerType(v *summary.TriggerType) *SummaryCreate {
	if v != nil {
		_c.SetTriggerType(*v)
	}
	return _c
}

// SetCronExpression sets the "cron_expression" field.
func (_c *SummaryCreate) SetCronExpression(v string) *SummaryCreate {
	_c.mutation.SetCronExpression(v)
	return _c
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableCronExpression(v *string) *SummaryCreate {
	if v != nil {
		_c.SetCronExpression(*v)
	}
	return _c
}

// SetNextRunAt sets the "next_run_at" field.
func (_c *SummaryCreate) SetNextRunAt(v time.Time) *SummaryCreate {
	_c.mutation.SetNextRunAt(v)
	return _c
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableNextRunAt(v *time.Time) *SummaryCreate {
	if v != nil {
		_c.SetNextRunAt(*v)
	}
	return _c
}

// SetRelevanceCheckEnabled sets the "relevance_check_enabled" field.
func (_c *SummaryCreate) SetRelevanceCheckEnabled(v bool) *SummaryCreate {
	_c.mutation.SetRelevanceCheckEnabled(v)
	return _c
}

// SetNillableRelevanceCheckEnabled sets the "relevance_check_enabled" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableRelevanceCheckEnabled(v *bool) *SummaryCreate {
	if v != nil {
		_c.SetRelevanceCheckEnabled(*v)
	}
	return _c
}

// SetRelevanceThreshold sets the "relevance_threshold" field.
func (_c *SummaryCreate) SetRelevanceThreshold(v float64) *SummaryCreate {
	_c.mutation.SetRelevanceThreshold(v)
	return _c
}

// SetNillableRelevanceThreshold sets the "relevance_threshold" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableRelevanceThreshold(v *float64) *SummaryCreate {
	if v != nil {
		_c.SetRelevanceThreshold(*v)
	}
	return _c
}

// SetAutoExpandEnabled sets the "auto_expand_enabled" field.
func (_c *SummaryCreate) SetAutoExpandEnabled(v bool) *SummaryCreate {
	_c.mutation.SetAutoExpandEnabled(v)
	return _c
}

// SetNillableAutoExpandEnabled sets the "auto_expand_enabled" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableAutoExpandEnabled(v *bool) *SummaryCreate {
	if v != nil {
		_c.SetAutoExpandEnabled(*v)
	}
	return _c
}

// SetLastDataHash sets the "last_data_hash" field.
func (_c *SummaryCreate) SetLastDataHash(v string) *SummaryCreate {
	_c.mutation.SetLastDataHash(v)
	return _c
}

// SetNillableLastDataHash sets the "last_data_hash" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableLastDataHash(v *string) *SummaryCreate {
	if v != nil {
		_c.SetLastDataHash(*v)
	}
	return _c
}

// SetLastExecutedAt sets the "last_executed_at" field.
func (_c *SummaryCreate) SetLastExecutedAt(v time.Time) *SummaryCreate {
	_c.mutation.SetLastExecutedAt(v)
	return _c
}

// SetNillableLastExecutedAt sets the "last_executed_at" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableLastExecutedAt(v *time.Time) *SummaryCreate {
	if v != nil {
		_c.SetLastExecutedAt(*v)
	}
	return _c
}

// SetExecutionCount sets the "execution_count" field.
func (_c *SummaryCreate) SetExecutionCount(v int) *SummaryCreate {
	_c.mutation.SetExecutionCount(v)
	return _c
}

// SetNillableExecutionCount sets the "execution_count" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableExecutionCount(v *int) *SummaryCreate {
	if v != nil {
		_c.SetExecutionCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SummaryCreate) SetCreatedAt(v time.Time) *SummaryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableCreatedAt(v *time.Time) *SummaryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SummaryCreate) SetUpdatedAt(v time.Time) *SummaryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableUpdatedAt(v *time.Time) *SummaryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *SummaryCreate) SetDeletedAt(v time.Time) *SummaryCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableDeletedAt(v *time.Time) *SummaryCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SummaryCreate) SetID(v string) *SummaryCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddWidgetIDs adds the "widgets" edge to the Widget entity by IDs.
func (_c *SummaryCreate) AddWidgetIDs(ids ...string) *SummaryCreate {
	_c.mutation.AddWidgetIDs(ids...)
	return _c
}

// AddWidgets adds the "widgets" edges to the Widget entity.
func (_c *SummaryCreate) AddWidgets(v ...*Widget) *SummaryCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWidgetIDs(ids...)
}

// AddExecutionIDs adds the "executions" edge to the Execution entity by IDs.
func (_c *SummaryCreate) AddExecutionIDs(ids ...string) *SummaryCreate {
	_c.mutation.AddExecutionIDs(ids...)
	return _c
}

// AddExecutions adds the "executions" edges to the Execution entity.
func (_c *SummaryCreate) AddExecutions(v ...*Execution) *SummaryCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExecutionIDs(ids...)
}

// Mutation returns the SummaryMutation object of the builder.
func (_c *SummaryCreate) Mutation() *SummaryMutation {
	return _c.mutation
}

// Save creates the Summary in the database.
func (_c *SummaryCreate) Save(ctx context.Context) (*Summary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SummaryCreate) SaveX(ctx context.Context) *Summary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SummaryCreate) defaults() {
	if _, ok := _c.mutation.TriggerType(); !ok {
		v := summary.DefaultTriggerType
		_c.mutation.SetTriggerType(v)
	}
	if _, ok := _c.mutation.RelevanceCheckEnabled(); !ok {
		v := summary.DefaultRelevanceCheckEnabled
		_c.mutation.SetRelevanceCheckEnabled(v)
	}
	if _, ok := _c.mutation.RelevanceThreshold(); !ok {
		v := summary.DefaultRelevanceThreshold
		_c.mutation.SetRelevanceThreshold(v)
	}
	if _, ok := _c.mutation.AutoExpandEnabled(); !ok {
		v := summary.DefaultAutoExpandEnabled
		_c.mutation.SetAutoExpandEnabled(v)
	}
	if _, ok := _c.mutation.ExecutionCount(); !ok {
		v := summary.DefaultExecutionCount
		_c.mutation.SetExecutionCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := summary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := summary.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SummaryCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Summary.owner_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Summary.name"`)}
	}
	if _, ok := _c.mutation.TriggerType(); !ok {
		return &ValidationError{Name: "trigger_type", err: errors.New(`ent: missing required field "Summary.trigger_type"`)}
	}
	if v, ok := _c.mutation.TriggerType(); ok {
		if err := summary.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "Summary.trigger_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RelevanceCheckEnabled(); !ok {
		return &ValidationError{Name: "relevance_check_enabled", err: errors.New(`ent: missing required field "Summary.relevance_check_enabled"`)}
	}
	if _, ok := _c.mutation.RelevanceThreshold(); !ok {
		return &ValidationError{Name: "relevance_threshold", err: errors.New(`ent: missing required field "Summary.relevance_threshold"`)}
	}
	if _, ok := _c.mutation.AutoExpandEnabled(); !ok {
		return &ValidationError{Name: "auto_expand_enabled", err: errors.New(`ent: missing required field "Summary.auto_expand_enabled"`)}
	}
	if _, ok := _c.mutation.ExecutionCount(); !ok {
		return &ValidationError{Name: "execution_count", err: errors.New(`ent: missing required field "Summary.execution_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Summary.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Summary.updated_at"`)}
	}
	return nil
}

func (_c *SummaryCreate) sqlSave(ctx context.Context) (*Summary, error) {
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
			return nil, fmt.Errorf("unexpected Summary.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SummaryCreate) createSpec() (*Summary, *sqlgraph.CreateSpec) {
	var (
		_node = &Summary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(summary.Table, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(summary.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(summary.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(summary.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Theme(); ok {
		_spec.SetField(summary.FieldTheme, field.TypeString, value)
		_node.Theme = value
	}
	if value, ok := _c.mutation.TriggerType(); ok {
		_spec.SetField(summary.FieldTriggerType, field.TypeEnum, value)
		_node.TriggerType = value
	}
	if value, ok := _c.mutation.CronExpression(); ok {
		_spec.SetField(summary.FieldCronExpression, field.TypeString, value)
		_node.CronExpression = &value
	}
	if value, ok := _c.mutation.NextRunAt(); ok {
		_spec.SetField(summary.FieldNextRunAt, field.TypeTime, value)
		_node.NextRunAt = &value
	}
	if value, ok := _c.mutation.RelevanceCheckEnabled(); ok {
		_spec.SetField(summary.FieldRelevanceCheckEnabled, field.TypeBool, value)
		_node.RelevanceCheckEnabled = value
	}
	if value, ok := _c.mutation.RelevanceThreshold(); ok {
		_spec.SetField(summary.FieldRelevanceThreshold, field.TypeFloat64, value)
		_node.RelevanceThreshold = value
	}
	if value, ok := _c.mutation.AutoExpandEnabled(); ok {
		_spec.SetField(summary.FieldAutoExpandEnabled, field.TypeBool, value)
		_node.AutoExpandEnabled = value
	}
	if value, ok := _c.mutation.LastDataHash(); ok {
		_spec.SetField(summary.FieldLastDataHash, field.TypeString, value)
		_node.LastDataHash = &value
	}
	if value, ok := _c.mutation.LastExecutedAt(); ok {
		_spec.SetField(summary.FieldLastExecutedAt, field.TypeTime, value)
		_node.LastExecutedAt = &value
	}
	if value, ok := _c.mutation.ExecutionCount(); ok {
		_spec.SetField(summary.FieldExecutionCount, field.TypeInt, value)
		_node.ExecutionCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(summary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(summary.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(summary.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.WidgetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   summary.WidgetsTable,
			Columns: []string{summary.WidgetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(widget.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   summary.ExecutionsTable,
			Columns: []string{summary.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SummaryCreateBulk is the builder for creating many Summary entities in bulk.
type SummaryCreateBulk struct {
	config
	err      error
	builders []*SummaryCreate
}

// Save creates the Summary entities in the database.
func (_c *SummaryCreateBulk) Save(ctx context.Context) ([]*Summary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Summary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SummaryMutation)
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
func (_c *SummaryCreateBulk) SaveX(ctx context.Context) []*Summary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
