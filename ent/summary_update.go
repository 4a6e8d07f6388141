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
	"github.com/muniscope/muniscope/ent/execution"
	"github.com/muniscope/muniscope/ent/predicate"
	"github.com/muniscope/muniscope/ent/summary"
	"github.com/muniscope/muniscope/ent/widget"
)

// SummaryUpdate is the builder for updating Summary entities.
type SummaryUpdate struct {
	config
	hooks    []Hook
	mutation *SummaryMutation
}

// Where appends a list predicates to the SummaryUpdate builder.
func (_u *SummaryUpdate) Where(ps ...predicate.Summary) *SummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *SummaryUpdate) SetOwnerID(v string) *SummaryUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableOwnerID(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SummaryUpdate) SetName(v string) *SummaryUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableName(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *SummaryUpdate) SetPrompt(v string) *SummaryUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillablePrompt(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *SummaryUpdate) ClearPrompt() *SummaryUpdate {
	_u.mutation.ClearPrompt()
	return _u
}

// SetTheme sets the "theme" field.
func (_u *SummaryUpdate) SetTheme(v string) *SummaryUpdate {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableTheme(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// ClearTheme clears the value of the "theme" field.
func (_u *SummaryUpdate) ClearTheme() *SummaryUpdate {
	_u.mutation.ClearTheme()
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *SummaryUpdate) SetTriggerType(v summary.TriggerType) *SummaryUpdate {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableTriggerType(v *summary.TriggerType) *SummaryUpdate {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetCronExpression sets the "cron_expression" field.
func (_u *SummaryUpdate) SetCronExpression(v string) *SummaryUpdate {
	_u.mutation.SetCronExpression(v)
	return _u
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableCronExpression(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetCronExpression(*v)
	}
	return _u
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (_u *SummaryUpdate) ClearCronExpression() *SummaryUpdate {
	_u.mutation.ClearCronExpression()
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *SummaryUpdate) SetNextRunAt(v time.Time) *SummaryUpdate {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableNextRunAt(v *time.Time) *SummaryUpdate {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *SummaryUpdate) ClearNextRunAt() *SummaryUpdate {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetRelevanceCheckEnabled sets the "relevance_check_enabled" field.
func (_u *SummaryUpdate) SetRelevanceCheckEnabled(v bool) *SummaryUpdate {
	_u.mutation.SetRelevanceCheckEnabled(v)
	return _u
}

// SetNillableRelevanceCheckEnabled sets the "relevance_check_enabled" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableRelevanceCheckEnabled(v *bool) *SummaryUpdate {
	if v != nil {
		_u.SetRelevanceCheckEnabled(*v)
	}
	return _u
}

// SetRelevanceThreshold sets the "relevance_threshold" field.
func (_u *SummaryUpdate) SetRelevanceThreshold(v float64) *SummaryUpdate {
	_u.mutation.ResetRelevanceThreshold()
	_u.mutation.SetRelevanceThreshold(v)
	return _u
}

// SetNillableRelevanceThreshold sets the "relevance_threshold" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableRelevanceThreshold(v *float64) *SummaryUpdate {
	if v != nil {
		_u.SetRelevanceThreshold(*v)
	}
	return _u
}

// AddRelevanceThreshold adds value to the "relevance_threshold" field.
func (_u *SummaryUpdate) AddRelevanceThreshold(v float64) *SummaryUpdate {
	_u.mutation.AddRelevanceThreshold(v)
	return _u
}

// SetAutoExpandEnabled sets the "auto_expand_enabled" field.
func (_u *SummaryUpdate) SetAutoExpandEnabled(v bool) *SummaryUpdate {
	_u.mutation.SetAutoExpandEnabled(v)
	return _u
}

// SetNillableAutoExpandEnabled sets the "auto_expand_enabled" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableAutoExpandEnabled(v *bool) *SummaryUpdate {
	if v != nil {
		_u.SetAutoExpandEnabled(*v)
	}
	return _u
}

// SetLastDataHash sets the "last_data_hash" field.
func (_u *SummaryUpdate) SetLastDataHash(v string) *SummaryUpdate {
	_u.mutation.SetLastDataHash(v)
	return _u
}

// SetNillableLastDataHash sets the "last_data_hash" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableLastDataHash(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetLastDataHash(*v)
	}
	return _u
}

// ClearLastDataHash clears the value of the "last_data_hash" field.
func (_u *SummaryUpdate) ClearLastDataHash() *SummaryUpdate {
	_u.mutation.ClearLastDataHash()
	return _u
}

// SetLastExecutedAt sets the "last_executed_at" field.
func (_u *SummaryUpdate) SetLastExecutedAt(v time.Time) *SummaryUpdate {
	_u.mutation.SetLastExecutedAt(v)
	return _u
}

// SetNillableLastExecutedAt sets the "last_executed_at" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableLastExecutedAt(v *time.Time) *SummaryUpdate {
	if v != nil {
		_u.SetLastExecutedAt(*v)
	}
	return _u
}

// ClearLastExecutedAt clears the value of the "last_executed_at" field.
func (_u *SummaryUpdate) ClearLastExecutedAt() *SummaryUpdate {
	_u.mutation.ClearLastExecutedAt()
	return _u
}

// SetExecutionCount sets the "execution_count" field.
func (_u *SummaryUpdate) SetExecutionCount(v int) *SummaryUpdate {
	_u.mutation.ResetExecutionCount()
	_u.mutation.SetExecutionCount(v)
	return _u
}

// SetNillableExecutionCount sets the "execution_count" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableExecutionCount(v *int) *SummaryUpdate {
	if v != nil {
		_u.SetExecutionCount(*v)
	}
	return _u
}

// AddExecutionCount adds value to the "execution_count" field.
func (_u *SummaryUpdate) AddExecutionCount(v int) *SummaryUpdate {
	_u.mutation.AddExecutionCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SummaryUpdate) SetUpdatedAt(v time.Time) *SummaryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SummaryUpdate) SetDeletedAt(v time.Time) *SummaryUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableDeletedAt(v *time.Time) *SummaryUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SummaryUpdate) ClearDeletedAt() *SummaryUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddWidgetIDs adds the "widgets" edge to the Widget entity by IDs.
func (_u *SummaryUpdate) AddWidgetIDs(ids ...string) *SummaryUpdate {
	_u.mutation.AddWidgetIDs(ids...)
	return _u
}

// AddWidgets adds the "widgets" edges to the Widget entity.
func (_u *SummaryUpdate) AddWidgets(v ...*Widget) *SummaryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWidgetIDs(ids...)
}

// AddExecutionIDs adds the "executions" edge to the Execution entity by IDs.
func (_u *SummaryUpdate) AddExecutionIDs(ids ...string) *SummaryUpdate {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the Execution entity.
func (_u *SummaryUpdate) AddExecutions(v ...*Execution) *SummaryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// Mutation returns the SummaryMutation object of the builder.
func (_u *SummaryUpdate) Mutation() *SummaryMutation {
	return _u.mutation
}

// ClearWidgets clears all "widgets" edges to the Widget entity.
func (_u *SummaryUpdate) ClearWidgets() *SummaryUpdate {
	_u.mutation.ClearWidgets()
	return _u
}

// RemoveWidgetIDs removes the "widgets" edge to Widget entities by IDs.
func (_u *SummaryUpdate) RemoveWidgetIDs(ids ...string) *SummaryUpdate {
	_u.mutation.RemoveWidgetIDs(ids...)
	return _u
}

// RemoveWidgets removes "widgets" edges to Widget entities.
func (_u *SummaryUpdate) RemoveWidgets(v ...*Widget) *SummaryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWidgetIDs(ids...)
}

// ClearExecutions clears all "executions" edges to the Execution entity.
func (_u *SummaryUpdate) ClearExecutions() *SummaryUpdate {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to Execution entities by IDs.
func (_u *SummaryUpdate) RemoveExecutionIDs(ids ...string) *SummaryUpdate {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to Execution entities.
func (_u *SummaryUpdate) RemoveExecutions(v ...*Execution) *SummaryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SummaryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SummaryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := summary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummaryUpdate) check() error {
	if v, ok := _u.mutation.TriggerType(); ok {
		if err := summary.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "Summary.trigger_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summary.Table, summary.Columns, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(summary.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(summary.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(summary.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(summary.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(summary.FieldTheme, field.TypeString, value)
	}
	if _u.mutation.ThemeCleared() {
		_spec.ClearField(summary.FieldTheme, field.TypeString)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(summary.FieldTriggerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CronExpression(); ok {
		_spec.SetField(summary.FieldCronExpression, field.TypeString, value)
	}
	if _u.mutation.CronExpressionCleared() {
		_spec.ClearField(summary.FieldCronExpression, field.TypeString)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(summary.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(summary.FieldNextRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RelevanceCheckEnabled(); ok {
		_spec.SetField(summary.FieldRelevanceCheckEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RelevanceThreshold(); ok {
		_spec.SetField(summary.FieldRelevanceThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceThreshold(); ok {
		_spec.AddField(summary.FieldRelevanceThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AutoExpandEnabled(); ok {
		_spec.SetField(summary.FieldAutoExpandEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastDataHash(); ok {
		_spec.SetField(summary.FieldLastDataHash, field.TypeString, value)
	}
	if _u.mutation.LastDataHashCleared() {
		_spec.ClearField(summary.FieldLastDataHash, field.TypeString)
	}
	if value, ok := _u.mutation.LastExecutedAt(); ok {
		_spec.SetField(summary.FieldLastExecutedAt, field.TypeTime, value)
	}
	if _u.mutation.LastExecutedAtCleared() {
		_spec.ClearField(summary.FieldLastExecutedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExecutionCount(); ok {
		_spec.SetField(summary.FieldExecutionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionCount(); ok {
		_spec.AddField(summary.FieldExecutionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(summary.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(summary.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(summary.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.WidgetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWidgetsIDs(); len(nodes) > 0 && !_u.mutation.WidgetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WidgetsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SummaryUpdateOne is the builder for updating a single Summary entity.
type SummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SummaryMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *SummaryUpdateOne) SetOwnerID(v string) *SummaryUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableOwnerID(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SummaryUpdateOne) SetName(v string) *SummaryUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableName(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *SummaryUpdateOne) SetPrompt(v string) *SummaryUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillablePrompt(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *SummaryUpdateOne) ClearPrompt() *SummaryUpdateOne {
	_u.mutation.ClearPrompt()
	return _u
}

// SetTheme sets the "theme" field.
func (_u *SummaryUpdateOne) SetTheme(v string) *SummaryUpdateOne {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableTheme(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// ClearTheme clears the value of the "theme" field.
func (_u *SummaryUpdateOne) ClearTheme() *SummaryUpdateOne {
	_u.mutation.ClearTheme()
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *SummaryUpdateOne) SetTriggerType(v summary.TriggerType) *SummaryUpdateOne {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableTriggerType(v *summary.TriggerType) *SummaryUpdateOne {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetCronExpression sets the "cron_expression" field.
func (_u *SummaryUpdateOne) SetCronExpression(v string) *SummaryUpdateOne {
	_u.mutation.SetCronExpression(v)
	return _u
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableCronExpression(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetCronExpression(*v)
	}
	return _u
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (_u *SummaryUpdateOne) ClearCronExpression() *SummaryUpdateOne {
	_u.mutation.ClearCronExpression()
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *SummaryUpdateOne) SetNextRunAt(v time.Time) *SummaryUpdateOne {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableNextRunAt(v *time.Time) *SummaryUpdateOne {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *SummaryUpdateOne) ClearNextRunAt() *SummaryUpdateOne {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetRelevanceCheckEnabled sets the "relevance_check_enabled" field.
func (_u *SummaryUpdateOne) SetRelevanceCheckEnabled(v bool) *SummaryUpdateOne {
	_u.mutation.SetRelevanceCheckEnabled(v)
	return _u
}

// SetNillableRelevanceCheckEnabled sets the "relevance_check_enabled" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableRelevanceCheckEnabled(v *bool) *SummaryUpdateOne {
	if v != nil {
		_u.SetRelevanceCheckEnabled(*v)
	}
	return _u
}

// SetRelevanceThreshold sets the "relevance_threshold" field.
func (_u *SummaryUpdateOne) SetRelevanceThreshold(v float64) *SummaryUpdateOne {
	_u.mutation.ResetRelevanceThreshold()
	_u.mutation.SetRelevanceThreshold(v)
	return _u
}

// SetNillableRelevanceThreshold sets the "relevance_threshold" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableRelevanceThreshold(v *float64) *SummaryUpdateOne {
	if v != nil {
		_u.SetRelevanceThreshold(*v)
	}
	return _u
}

// AddRelevanceThreshold adds value to the "relevance_threshold" field.
func (_u *SummaryUpdateOne) AddRelevanceThreshold(v float64) *SummaryUpdateOne {
	_u.mutation.AddRelevanceThreshold(v)
	return _u
}

// SetAutoExpandEnabled sets the "auto_expand_enabled" field.
func (_u *SummaryUpdateOne) SetAutoExpandEnabled(v bool) *SummaryUpdateOne {
	_u.mutation.SetAutoExpandEnabled(v)
	return _u
}

// SetNillableAutoExpandEnabled sets the "auto_expand_enabled" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableAutoExpandEnabled(v *bool) *SummaryUpdateOne {
	if v != nil {
		_u.SetAutoExpandEnabled(*v)
	}
	return _u
}

// SetLastDataHash sets the "last_data_hash" field.
func (_u *SummaryUpdateOne) SetLastDataHash(v string) *SummaryUpdateOne {
	_u.mutation.SetLastDataHash(v)
	return _u
}

// SetNillableLastDataHash sets the "last_data_hash" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableLastDataHash(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetLastDataHash(*v)
	}
	return _u
}

// ClearLastDataHash clears the value of the "last_data_hash" field.
func (_u *SummaryUpdateOne) ClearLastDataHash() *SummaryUpdateOne {
	_u.mutation.ClearLastDataHash()
	return _u
}

// SetLastExecutedAt sets the "last_executed_at" field.
func (_u *SummaryUpdateOne) SetLastExecutedAt(v time.Time) *SummaryUpdateOne {
	_u.mutation.SetLastExecutedAt(v)
	return _u
}

// SetNillableLastExecutedAt sets the "last_executed_at" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableLastExecutedAt(v *time.Time) *SummaryUpdateOne {
	if v != nil {
		_u.SetLastExecutedAt(*v)
	}
	return _u
}

// ClearLastExecutedAt clears the value of the "last_executed_at" field.
func (_u *SummaryUpdateOne) ClearLastExecutedAt() *SummaryUpdateOne {
	_u.mutation.ClearLastExecutedAt()
	return _u
}

// SetExecutionCount sets the "execution_count" field.
func (_u *SummaryUpdateOne) SetExecutionCount(v int) *SummaryUpdateOne {
	_u.mutation.ResetExecutionCount()
	_u.mutation.SetExecutionCount(v)
	return _u
}

// SetNillableExecutionCount sets the "execution_count" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableExecutionCount(v *int) *SummaryUpdateOne {
	if v != nil {
		_u.SetExecutionCount(*v)
	}
	return _u
}

// AddExecutionCount adds value to the "execution_count" field.
func (_u *SummaryUpdateOne) AddExecutionCount(v int) *SummaryUpdateOne {
	_u.mutation.AddExecutionCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SummaryUpdateOne) SetUpdatedAt(v time.Time) *SummaryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SummaryUpdateOne) SetDeletedAt(v time.Time) *SummaryUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableDeletedAt(v *time.Time) *SummaryUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SummaryUpdateOne) ClearDeletedAt() *SummaryUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddWidgetIDs adds the "widgets" edge to the Widget entity by IDs.
func (_u *SummaryUpdateOne) AddWidgetIDs(ids ...string) *SummaryUpdateOne {
	_u.mutation.AddWidgetIDs(ids...)
	return _u
}

// AddWidgets adds the "widgets" edges to the Widget entity.
func (_u *SummaryUpdateOne) AddWidgets(v ...*Widget) *SummaryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWidgetIDs(ids...)
}

// AddExecutionIDs adds the "executions" edge to the Execution entity by IDs.
func (_u *SummaryUpdateOne) AddExecutionIDs(ids ...string) *SummaryUpdateOne {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the Execution entity.
func (_u *SummaryUpdateOne) AddExecutions(v ...*Execution) *SummaryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// Mutation returns the SummaryMutation object of the builder.
func (_u *SummaryUpdateOne) Mutation() *SummaryMutation {
	return _u.mutation
}

// ClearWidgets clears all "widgets" edges to the Widget entity.
func (_u *SummaryUpdateOne) ClearWidgets() *SummaryUpdateOne {
	_u.mutation.ClearWidgets()
	return _u
}

// RemoveWidgetIDs removes the "widgets" edge to Widget entities by IDs.
func (_u *SummaryUpdateOne) RemoveWidgetIDs(ids ...string) *SummaryUpdateOne {
	_u.mutation.RemoveWidgetIDs(ids...)
	return _u
}

// RemoveWidgets removes "widgets" edges to Widget entities.
func (_u *SummaryUpdateOne) RemoveWidgets(v ...*Widget) *SummaryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWidgetIDs(ids...)
}

// ClearExecutions clears all "executions" edges to the Execution entity.
func (_u *SummaryUpdateOne) ClearExecutions() *SummaryUpdateOne {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to Execution entities by IDs.
func (_u *SummaryUpdateOne) RemoveExecutionIDs(ids ...string) *SummaryUpdateOne {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to Execution entities.
func (_u *SummaryUpdateOne) RemoveExecutions(v ...*Execution) *SummaryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// Where appends a list predicates to the SummaryUpdate builder.
func (_u *SummaryUpdateOne) Where(ps ...predicate.Summary) *SummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SummaryUpdateOne) Select(field string, fields ...string) *SummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Summary entity.
func (_u *SummaryUpdateOne) Save(ctx context.Context) (*Summary, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryUpdateOne) SaveX(ctx context.Context) *Summary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SummaryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := summary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummaryUpdateOne) check() error {
	if v, ok := _u.mutation.TriggerType(); ok {
		if err := summary.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "Summary.trigger_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SummaryUpdateOne) sqlSave(ctx context.Context) (_node *Summary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summary.Table, summary.Columns, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Summary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summary.FieldID)
		for _, f := range fields {
			if !summary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != summary.FieldID {
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
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(summary.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(summary.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(summary.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(summary.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(summary.FieldTheme, field.TypeString, value)
	}
	if _u.mutation.ThemeCleared() {
		_spec.ClearField(summary.FieldTheme, field.TypeString)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(summary.FieldTriggerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CronExpression(); ok {
		_spec.SetField(summary.FieldCronExpression, field.TypeString, value)
	}
	if _u.mutation.CronExpressionCleared() {
		_spec.ClearField(summary.FieldCronExpression, field.TypeString)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(summary.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(summary.FieldNextRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RelevanceCheckEnabled(); ok {
		_spec.SetField(summary.FieldRelevanceCheckEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RelevanceThreshold(); ok {
		_spec.SetField(summary.FieldRelevanceThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceThreshold(); ok {
		_spec.AddField(summary.FieldRelevanceThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AutoExpandEnabled(); ok {
		_spec.SetField(summary.FieldAutoExpandEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastDataHash(); ok {
		_spec.SetField(summary.FieldLastDataHash, field.TypeString, value)
	}
	if _u.mutation.LastDataHashCleared() {
		_spec.ClearField(summary.FieldLastDataHash, field.TypeString)
	}
	if value, ok := _u.mutation.LastExecutedAt(); ok {
		_spec.SetField(summary.FieldLastExecutedAt, field.TypeTime, value)
	}
	if _u.mutation.LastExecutedAtCleared() {
		_spec.ClearField(summary.FieldLastExecutedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExecutionCount(); ok {
		_spec.SetField(summary.FieldExecutionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionCount(); ok {
		_spec.AddField(summary.FieldExecutionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(summary.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(summary.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(summary.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.WidgetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWidgetsIDs(); len(nodes) > 0 && !_u.mutation.WidgetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WidgetsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Summary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
