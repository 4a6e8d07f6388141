// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/muniscope/muniscope/ent/execution"
	"github.com/muniscope/muniscope/ent/predicate"
)

// ExecutionUpdate is the builder for updating Execution entities.
type ExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionMutation
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (_u *ExecutionUpdate) Where(ps ...predicate.Execution) *ExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionUpdate) SetStatus(v execution.Status) *ExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableStatus(v *execution.Status) *ExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *ExecutionUpdate) SetTriggeredBy(v string) *ExecutionUpdate {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableTriggeredBy(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetTriggerDetails sets the "trigger_details" field.
func (_u *ExecutionUpdate) SetTriggerDetails(v map[string]interface{}) *ExecutionUpdate {
	_u.mutation.SetTriggerDetails(v)
	return _u
}

// ClearTriggerDetails clears the value of the "trigger_details" field.
func (_u *ExecutionUpdate) ClearTriggerDetails() *ExecutionUpdate {
	_u.mutation.ClearTriggerDetails()
	return _u
}

// SetCachedData sets the "cached_data" field.
func (_u *ExecutionUpdate) SetCachedData(v map[string]interface{}) *ExecutionUpdate {
	_u.mutation.SetCachedData(v)
	return _u
}

// ClearCachedData clears the value of the "cached_data" field.
func (_u *ExecutionUpdate) ClearCachedData() *ExecutionUpdate {
	_u.mutation.ClearCachedData()
	return _u
}

// SetDataHash sets the "data_hash" field.
func (_u *ExecutionUpdate) SetDataHash(v string) *ExecutionUpdate {
	_u.mutation.SetDataHash(v)
	return _u
}

// SetNillableDataHash sets the "data_hash" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableDataHash(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetDataHash(*v)
	}
	return _u
}

// ClearDataHash clears the value of the "data_hash" field.
func (_u *ExecutionUpdate) ClearDataHash() *ExecutionUpdate {
	_u.mutation.ClearDataHash()
	return _u
}

// SetHasChanges sets the "has_changes" field.
func (_u *ExecutionUpdate) SetHasChanges(v bool) *ExecutionUpdate {
	_u.mutation.SetHasChanges(v)
	return _u
}

// SetNillableHasChanges sets the "has_changes" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableHasChanges(v *bool) *ExecutionUpdate {
	if v != nil {
		_u.SetHasChanges(*v)
	}
	return _u
}

// SetRelevanceScore sets the "relevance_score" field.
func (_u *ExecutionUpdate) SetRelevanceScore(v float64) *ExecutionUpdate {
	_u.mutation.ResetRelevanceScore()
	_u.mutation.SetRelevanceScore(v)
	return _u
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableRelevanceScore(v *float64) *ExecutionUpdate {
	if v != nil {
		_u.SetRelevanceScore(*v)
	}
	return _u
}

// AddRelevanceScore adds value to the "relevance_score" field.
func (_u *ExecutionUpdate) AddRelevanceScore(v float64) *ExecutionUpdate {
	_u.mutation.AddRelevanceScore(v)
	return _u
}

// ClearRelevanceScore clears the value of the "relevance_score" field.
func (_u *ExecutionUpdate) ClearRelevanceScore() *ExecutionUpdate {
	_u.mutation.ClearRelevanceScore()
	return _u
}

// SetRelevanceReason sets the "relevance_reason" field.
func (_u *ExecutionUpdate) SetRelevanceReason(v string) *ExecutionUpdate {
	_u.mutation.SetRelevanceReason(v)
	return _u
}

// SetNillableRelevanceReason sets the "relevance_reason" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableRelevanceReason(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetRelevanceReason(*v)
	}
	return _u
}

// ClearRelevanceReason clears the value of the "relevance_reason" field.
func (_u *ExecutionUpdate) ClearRelevanceReason() *ExecutionUpdate {
	_u.mutation.ClearRelevanceReason()
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *ExecutionUpdate) SetSkipReason(v string) *ExecutionUpdate {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableSkipReason(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *ExecutionUpdate) ClearSkipReason() *ExecutionUpdate {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetExpansionSuggestions sets the "expansion_suggestions" field.
func (_u *ExecutionUpdate) SetExpansionSuggestions(v []map[string]interface{}) *ExecutionUpdate {
	_u.mutation.SetExpansionSuggestions(v)
	return _u
}

// AppendExpansionSuggestions appends value to the "expansion_suggestions" field.
func (_u *ExecutionUpdate) AppendExpansionSuggestions(v []map[string]interface{}) *ExecutionUpdate {
	_u.mutation.AppendExpansionSuggestions(v)
	return _u
}

// ClearExpansionSuggestions clears the value of the "expansion_suggestions" field.
func (_u *ExecutionUpdate) ClearExpansionSuggestions() *ExecutionUpdate {
	_u.mutation.ClearExpansionSuggestions()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExecutionUpdate) SetErrorMessage(v string) *ExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableErrorMessage(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExecutionUpdate) ClearErrorMessage() *ExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionUpdate) SetCompletedAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableCompletedAt(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionUpdate) ClearCompletedAt() *ExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionUpdate) SetDurationMs(v int) *ExecutionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableDurationMs(v *int) *ExecutionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionUpdate) AddDurationMs(v int) *ExecutionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ExecutionUpdate) ClearDurationMs() *ExecutionUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the ExecutionMutation object of the builder.
func (_u *ExecutionUpdate) Mutation() *ExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	if _u.mutation.SummaryCleared() && len(_u.mutation.SummaryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Execution.summary"`)
	}
	return nil
}

func (_u *ExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(execution.FieldTriggeredBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerDetails(); ok {
		_spec.SetField(execution.FieldTriggerDetails, field.TypeJSON, value)
	}
	if _u.mutation.TriggerDetailsCleared() {
		_spec.ClearField(execution.FieldTriggerDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.CachedData(); ok {
		_spec.SetField(execution.FieldCachedData, field.TypeJSON, value)
	}
	if _u.mutation.CachedDataCleared() {
		_spec.ClearField(execution.FieldCachedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.DataHash(); ok {
		_spec.SetField(execution.FieldDataHash, field.TypeString, value)
	}
	if _u.mutation.DataHashCleared() {
		_spec.ClearField(execution.FieldDataHash, field.TypeString)
	}
	if value, ok := _u.mutation.HasChanges(); ok {
		_spec.SetField(execution.FieldHasChanges, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RelevanceScore(); ok {
		_spec.SetField(execution.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(execution.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if _u.mutation.RelevanceScoreCleared() {
		_spec.ClearField(execution.FieldRelevanceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RelevanceReason(); ok {
		_spec.SetField(execution.FieldRelevanceReason, field.TypeString, value)
	}
	if _u.mutation.RelevanceReasonCleared() {
		_spec.ClearField(execution.FieldRelevanceReason, field.TypeString)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(execution.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(execution.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.ExpansionSuggestions(); ok {
		_spec.SetField(execution.FieldExpansionSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExpansionSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, execution.FieldExpansionSuggestions, value)
		})
	}
	if _u.mutation.ExpansionSuggestionsCleared() {
		_spec.ClearField(execution.FieldExpansionSuggestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(execution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(execution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(execution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(execution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(execution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(execution.FieldDurationMs, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionUpdateOne is the builder for updating a single Execution entity.
type ExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionMutation
}

// SetStatus sets the "status" field.
func (_u *ExecutionUpdateOne) SetStatus(v execution.Status) *ExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableStatus(v *execution.Status) *ExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *ExecutionUpdateOne) SetTriggeredBy(v string) *ExecutionUpdateOne {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableTriggeredBy(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetTriggerDetails sets the "trigger_details" field.
func (_u *ExecutionUpdateOne) SetTriggerDetails(v map[string]interface{}) *ExecutionUpdateOne {
	_u.mutation.SetTriggerDetails(v)
	return _u
}

// ClearTriggerDetails clears the value of the "trigger_details" field.
func (_u *ExecutionUpdateOne) ClearTriggerDetails() *ExecutionUpdateOne {
	_u.mutation.ClearTriggerDetails()
	return _u
}

// SetCachedData sets the "cached_data" field.
func (_u *ExecutionUpdateOne) SetCachedData(v map[string]interface{}) *ExecutionUpdateOne {
	_u.mutation.SetCachedData(v)
	return _u
}

// ClearCachedData clears the value of the "cached_data" field.
func (_u *ExecutionUpdateOne) ClearCachedData() *ExecutionUpdateOne {
	_u.mutation.ClearCachedData()
	return _u
}

// SetDataHash sets the "data_hash" field.
func (_u *ExecutionUpdateOne) SetDataHash(v string) *ExecutionUpdateOne {
	_u.mutation.SetDataHash(v)
	return _u
}

// SetNillableDataHash sets the "data_hash" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableDataHash(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetDataHash(*v)
	}
	return _u
}

// ClearDataHash clears the value of the "data_hash" field.
func (_u *ExecutionUpdateOne) ClearDataHash() *ExecutionUpdateOne {
	_u.mutation.ClearDataHash()
	return _u
}

// SetHasChanges sets the "has_changes" field.
func (_u *ExecutionUpdateOne) SetHasChanges(v bool) *ExecutionUpdateOne {
	_u.mutation.SetHasChanges(v)
	return _u
}

// SetNillableHasChanges sets the "has_changes" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableHasChanges(v *bool) *ExecutionUpdateOne {
	if v != nil {
		_u.SetHasChanges(*v)
	}
	return _u
}

// SetRelevanceScore sets the "relevance_score" field.
func (_u *ExecutionUpdateOne) SetRelevanceScore(v float64) *ExecutionUpdateOne {
	_u.mutation.ResetRelevanceScore()
	_u.mutation.SetRelevanceScore(v)
	return _u
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableRelevanceScore(v *float64) *ExecutionUpdateOne {
	if v != nil {
		_u.SetRelevanceScore(*v)
	}
	return _u
}

// AddRelevanceScore adds value to the "relevance_score" field.
func (_u *ExecutionUpdateOne) AddRelevanceScore(v float64) *ExecutionUpdateOne {
	_u.mutation.AddRelevanceScore(v)
	return _u
}

// ClearRelevanceScore clears the value of the "relevance_score" field.
func (_u *ExecutionUpdateOne) ClearRelevanceScore() *ExecutionUpdateOne {
	_u.mutation.ClearRelevanceScore()
	return _u
}

// SetRelevanceReason sets the "relevance_reason" field.
func (_u *ExecutionUpdateOne) SetRelevanceReason(v string) *ExecutionUpdateOne {
	_u.mutation.SetRelevanceReason(v)
	return _u
}

// SetNillableRelevanceReason sets the "relevance_reason" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableRelevanceReason(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetRelevanceReason(*v)
	}
	return _u
}

// ClearRelevanceReason clears the value of the "relevance_reason" field.
func (_u *ExecutionUpdateOne) ClearRelevanceReason() *ExecutionUpdateOne {
	_u.mutation.ClearRelevanceReason()
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *ExecutionUpdateOne) SetSkipReason(v string) *ExecutionUpdateOne {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableSkipReason(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *ExecutionUpdateOne) ClearSkipReason() *ExecutionUpdateOne {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetExpansionSuggestions sets the "expansion_suggestions" field.
func (_u *ExecutionUpdateOne) SetExpansionSuggestions(v []map[string]interface{}) *ExecutionUpdateOne {
	_u.mutation.SetExpansionSuggestions(v)
	return _u
}

// AppendExpansionSuggestions appends value to the "expansion_suggestions" field.
func (_u *ExecutionUpdateOne) AppendExpansionSuggestions(v []map[string]interface{}) *ExecutionUpdateOne {
	_u.mutation.AppendExpansionSuggestions(v)
	return _u
}

// ClearExpansionSuggestions clears the value of the "expansion_suggestions" field.
func (_u *ExecutionUpdateOne) ClearExpansionSuggestions() *ExecutionUpdateOne {
	_u.mutation.ClearExpansionSuggestions()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExecutionUpdateOne) SetErrorMessage(v string) *ExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableErrorMessage(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExecutionUpdateOne) ClearErrorMessage() *ExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionUpdateOne) SetCompletedAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionUpdateOne) ClearCompletedAt() *ExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionUpdateOne) SetDurationMs(v int) *ExecutionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableDurationMs(v *int) *ExecutionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionUpdateOne) AddDurationMs(v int) *ExecutionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ExecutionUpdateOne) ClearDurationMs() *ExecutionUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the ExecutionMutation object of the builder.
func (_u *ExecutionUpdateOne) Mutation() *ExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (_u *ExecutionUpdateOne) Where(ps ...predicate.Execution) *ExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionUpdateOne) Select(field string, fields ...string) *ExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Execution entity.
func (_u *ExecutionUpdateOne) Save(ctx context.Context) (*Execution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionUpdateOne) SaveX(ctx context.Context) *Execution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	if _u.mutation.SummaryCleared() && len(_u.mutation.SummaryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Execution.summary"`)
	}
	return nil
}

func (_u *ExecutionUpdateOne) sqlSave(ctx context.Context) (_node *Execution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Execution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, execution.FieldID)
		for _, f := range fields {
			if !execution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != execution.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(execution.FieldTriggeredBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerDetails(); ok {
		_spec.SetField(execution.FieldTriggerDetails, field.TypeJSON, value)
	}
	if _u.mutation.TriggerDetailsCleared() {
		_spec.ClearField(execution.FieldTriggerDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.CachedData(); ok {
		_spec.SetField(execution.FieldCachedData, field.TypeJSON, value)
	}
	if _u.mutation.CachedDataCleared() {
		_spec.ClearField(execution.FieldCachedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.DataHash(); ok {
		_spec.SetField(execution.FieldDataHash, field.TypeString, value)
	}
	if _u.mutation.DataHashCleared() {
		_spec.ClearField(execution.FieldDataHash, field.TypeString)
	}
	if value, ok := _u.mutation.HasChanges(); ok {
		_spec.SetField(execution.FieldHasChanges, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RelevanceScore(); ok {
		_spec.SetField(execution.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(execution.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if _u.mutation.RelevanceScoreCleared() {
		_spec.ClearField(execution.FieldRelevanceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RelevanceReason(); ok {
		_spec.SetField(execution.FieldRelevanceReason, field.TypeString, value)
	}
	if _u.mutation.RelevanceReasonCleared() {
		_spec.ClearField(execution.FieldRelevanceReason, field.TypeString)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(execution.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(execution.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.ExpansionSuggestions(); ok {
		_spec.SetField(execution.FieldExpansionSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExpansionSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, execution.FieldExpansionSuggestions, value)
		})
	}
	if _u.mutation.ExpansionSuggestionsCleared() {
		_spec.ClearField(execution.FieldExpansionSuggestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(execution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(execution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(execution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(execution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(execution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(execution.FieldDurationMs, field.TypeInt)
	}
	_node = &Execution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
