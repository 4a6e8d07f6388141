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
)

// ExecutionCreate is the builder for creating a Execution entity.
type ExecutionCreate struct {
	config
	mutation *ExecutionMutation
	hooks    []Hook
}

// SetSummaryID sets the "summary_id" field.
func (_c *ExecutionCreate) SetSummaryID(v string) *ExecutionCreate {
	_c.mutation.SetSummaryID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExecutionCreate) SetStatus(v execution.Status) *ExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableStatus(v *execution.Status) *ExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTriggeredBy sets the "triggered_by" field.
func (_c *ExecutionCreate) SetTriggeredBy(v string) *ExecutionCreate {
	_c.mutation.SetTriggeredBy(v)
	return _c
}

// SetTriggerDetails sets the "trigger_details" field.
func (_c *ExecutionCreate) SetTriggerDetails(v map[string]interface{}) *ExecutionCreate {
	_c.mutation.SetTriggerDetails(v)
	return _c
}

// SetCachedData sets the "cached_data" field.
func (_c *ExecutionCreate) SetCachedData(v map[string]interface{}) *ExecutionCreate {
	_c.mutation.SetCachedData(v)
	return _c
}

// SetDataHash sets the "data_hash" field.
func (_c *ExecutionCreate) SetDataHash(v string) *ExecutionCreate {
	_c.mutation.SetDataHash(v)
	return _c
}

// SetNillableDataHash sets the "data_hash" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableDataHash(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetDataHash(*v)
	}
	return _c
}

// SetHasChanges sets the "has_changes" field.
func (_c *ExecutionCreate) SetHasChanges(v bool) *ExecutionCreate {
	_c.mutation.SetHasChanges(v)
	return _c
}

// SetNillableHasChanges sets the "has_changes" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableHasChanges(v *bool) *ExecutionCreate {
	if v != nil {
		_c.SetHasChanges(*v)
	}
	return _c
}

// SetRelevanceScore sets the "relevance_score" field.
func (_c *ExecutionCreate) SetRelevanceScore(v float64) *ExecutionCreate {
	_c.mutation.SetRelevanceScore(v)
	return _c
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableRelevanceScore(v *float64) *ExecutionCreate {
	if v != nil {
		_c.SetRelevanceScore(*v)
	}
	return _c
}

// SetRelevanceReason sets the "relevance_reason" field.
func (_c *ExecutionCreate) SetRelevanceReason(v string) *ExecutionCreate {
	_c.mutation.SetRelevanceReason(v)
	return _c
}

// SetNillableRelevanceReason sets the "relevance_reason" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableRelevanceReason(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetRelevanceReason(*v)
	}
	return _c
}

// SetSkipReason sets the "skip_reason" field.
func (_c *ExecutionCreate) SetSkipReason(v string) *ExecutionCreate {
	_c.mutation.SetSkipReason(v)
	return _c
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableSkipReason(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetSkipReason(*v)
	}
	return _c
}

// SetExpansionSuggestions sets the "expansion_suggestions" field.
func (_c *ExecutionCreate) SetExpansionSuggestions(v []map[string]interface{}) *ExecutionCreate {
	_c.mutation.SetExpansionSuggestions(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExecutionCreate) SetErrorMessage(v string) *ExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableErrorMessage(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExecutionCreate) SetStartedAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableStartedAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ExecutionCreate) SetCompletedAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableCompletedAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ExecutionCreate) SetDurationMs(v int) *ExecutionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableDurationMs(v *int) *ExecutionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionCreate) SetID(v string) *ExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSummary sets the "summary" edge to the Summary entity.
func (_c *ExecutionCreate) SetSummary(v *Summary) *ExecutionCreate {
	return _c.SetSummaryID(v.ID)
}

// Mutation returns the ExecutionMutation object of the builder.
func (_c *ExecutionCreate) Mutation() *ExecutionMutation {
	return _c.mutation
}

// Save creates the Execution in the database.
func (_c *ExecutionCreate) Save(ctx context.Context) (*Execution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionCreate) SaveX(ctx context.Context) *Execution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := execution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.HasChanges(); !ok {
		v := execution.DefaultHasChanges
		_c.mutation.SetHasChanges(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := execution.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionCreate) check() error {
	if _, ok := _c.mutation.SummaryID(); !ok {
		return &ValidationError{Name: "summary_id", err: errors.New(`ent: missing required field "Execution.summary_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Execution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggeredBy(); !ok {
		return &ValidationError{Name: "triggered_by", err: errors.New(`ent: missing required field "Execution.triggered_by"`)}
	}
	if _, ok := _c.mutation.HasChanges(); !ok {
		return &ValidationError{Name: "has_changes", err: errors.New(`ent: missing required field "Execution.has_changes"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Execution.started_at"`)}
	}
	if len(_c.mutation.SummaryIDs()) == 0 {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required edge "Execution.summary"`)}
	}
	return nil
}

func (_c *ExecutionCreate) sqlSave(ctx context.Context) (*Execution, error) {
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
			return nil, fmt.Errorf("unexpected Execution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionCreate) createSpec() (*Execution, *sqlgraph.CreateSpec) {
	var (
		_node = &Execution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(execution.Table, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TriggeredBy(); ok {
		_spec.SetField(execution.FieldTriggeredBy, field.TypeString, value)
		_node.TriggeredBy = value
	}
	if value, ok := _c.mutation.TriggerDetails(); ok {
		_spec.SetField(execution.FieldTriggerDetails, field.TypeJSON, value)
		_node.TriggerDetails = value
	}
	if value, ok := _c.mutation.CachedData(); ok {
		_spec.SetField(execution.FieldCachedData, field.TypeJSON, value)
		_node.CachedData = value
	}
	if value, ok := _c.mutation.DataHash(); ok {
		_spec.SetField(execution.FieldDataHash, field.TypeString, value)
		_node.DataHash = &value
	}
	if value, ok := _c.mutation.HasChanges(); ok {
		_spec.SetField(execution.FieldHasChanges, field.TypeBool, value)
		_node.HasChanges = value
	}
	if value, ok := _c.mutation.RelevanceScore(); ok {
		_spec.SetField(execution.FieldRelevanceScore, field.TypeFloat64, value)
		_node.RelevanceScore = &value
	}
	if value, ok := _c.mutation.RelevanceReason(); ok {
		_spec.SetField(execution.FieldRelevanceReason, field.TypeString, value)
		_node.RelevanceReason = &value
	}
	if value, ok := _c.mutation.SkipReason(); ok {
		_spec.SetField(execution.FieldSkipReason, field.TypeString, value)
		_node.SkipReason = &value
	}
	if value, ok := _c.mutation.ExpansionSuggestions(); ok {
		_spec.SetField(execution.FieldExpansionSuggestions, field.TypeJSON, value)
		_node.ExpansionSuggestions = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(execution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(execution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(execution.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if nodes := _c.mutation.SummaryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   execution.SummaryTable,
			Columns: []string{execution.SummaryColumn},
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

// ExecutionCreateBulk is the builder for creating many Execution entities in bulk.
type ExecutionCreateBulk struct {
	config
	err      error
	builders []*ExecutionCreate
}

// Save creates the Execution entities in the database.
func (_c *ExecutionCreateBulk) Save(ctx context.Context) ([]*Execution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Execution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionMutation)
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
func (_c *ExecutionCreateBulk) SaveX(ctx context.Context) []*Execution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
