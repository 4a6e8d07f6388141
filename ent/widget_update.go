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
	"github.com/muniscope/muniscope/ent/predicate"
	"github.com/muniscope/muniscope/ent/widget"
)

// WidgetUpdate is the builder for updating Widget entities.
type WidgetUpdate struct {
	config
	hooks    []Hook
	mutation *WidgetMutation
}

// Where appends a list predicates to the WidgetUpdate builder.
func (_u *WidgetUpdate) Where(ps ...predicate.Widget) *WidgetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *WidgetUpdate) SetTitle(v string) *WidgetUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *WidgetUpdate) SetNillableTitle(v *string) *WidgetUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *WidgetUpdate) SetDisplayOrder(v int) *WidgetUpdate {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *WidgetUpdate) SetNillableDisplayOrder(v *int) *WidgetUpdate {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *WidgetUpdate) AddDisplayOrder(v int) *WidgetUpdate {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetQueryConfig sets the "query_config" field.
func (_u *WidgetUpdate) SetQueryConfig(v map[string]interface{}) *WidgetUpdate {
	_u.mutation.SetQueryConfig(v)
	return _u
}

// SetVisualizationConfig sets the "visualization_config" field.
func (_u *WidgetUpdate) SetVisualizationConfig(v map[string]interface{}) *WidgetUpdate {
	_u.mutation.SetVisualizationConfig(v)
	return _u
}

// ClearVisualizationConfig clears the value of the "visualization_config" field.
func (_u *WidgetUpdate) ClearVisualizationConfig() *WidgetUpdate {
	_u.mutation.ClearVisualizationConfig()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WidgetUpdate) SetUpdatedAt(v time.Time) *WidgetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WidgetMutation object of the builder.
func (_u *WidgetUpdate) Mutation() *WidgetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WidgetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WidgetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WidgetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WidgetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WidgetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := widget.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WidgetUpdate) check() error {
	if _u.mutation.SummaryCleared() && len(_u.mutation.SummaryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Widget.summary"`)
	}
	return nil
}

func (_u *WidgetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(widget.Table, widget.Columns, sqlgraph.NewFieldSpec(widget.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(widget.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(widget.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(widget.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QueryConfig(); ok {
		_spec.SetField(widget.FieldQueryConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.VisualizationConfig(); ok {
		_spec.SetField(widget.FieldVisualizationConfig, field.TypeJSON, value)
	}
	if _u.mutation.VisualizationConfigCleared() {
		_spec.ClearField(widget.FieldVisualizationConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(widget.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{widget.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WidgetUpdateOne is the builder for updating a single Widget entity.
type WidgetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WidgetMutation
}

// SetTitle sets the "title" field.
func (_u *WidgetUpdateOne) SetTitle(v string) *WidgetUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *WidgetUpdateOne) SetNillableTitle(v *string) *WidgetUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *WidgetUpdateOne) SetDisplayOrder(v int) *WidgetUpdateOne {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *WidgetUpdateOne) SetNillableDisplayOrder(v *int) *WidgetUpdateOne {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *WidgetUpdateOne) AddDisplayOrder(v int) *WidgetUpdateOne {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetQueryConfig sets the "query_config" field.
func (_u *WidgetUpdateOne) SetQueryConfig(v map[string]interface{}) *WidgetUpdateOne {
	_u.mutation.SetQueryConfig(v)
	return _u
}

// SetVisualizationConfig sets the "visualization_config" field.
func (_u *WidgetUpdateOne) SetVisualizationConfig(v map[string]interface{}) *WidgetUpdateOne {
	_u.mutation.SetVisualizationConfig(v)
	return _u
}

// ClearVisualizationConfig clears the value of the "visualization_config" field.
func (_u *WidgetUpdateOne) ClearVisualizationConfig() *WidgetUpdateOne {
	_u.mutation.ClearVisualizationConfig()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WidgetUpdateOne) SetUpdatedAt(v time.Time) *WidgetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WidgetMutation object of the builder.
func (_u *WidgetUpdateOne) Mutation() *WidgetMutation {
	return _u.mutation
}

// Where appends a list predicates to the WidgetUpdate builder.
func (_u *WidgetUpdateOne) Where(ps ...predicate.Widget) *WidgetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WidgetUpdateOne) Select(field string, fields ...string) *WidgetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Widget entity.
func (_u *WidgetUpdateOne) Save(ctx context.Context) (*Widget, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WidgetUpdateOne) SaveX(ctx context.Context) *Widget {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WidgetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WidgetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WidgetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := widget.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WidgetUpdateOne) check() error {
	if _u.mutation.SummaryCleared() && len(_u.mutation.SummaryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Widget.summary"`)
	}
	return nil
}

func (_u *WidgetUpdateOne) sqlSave(ctx context.Context) (_node *Widget, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(widget.Table, widget.Columns, sqlgraph.NewFieldSpec(widget.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Widget.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, widget.FieldID)
		for _, f := range fields {
			if !widget.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != widget.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(widget.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(widget.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(widget.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QueryConfig(); ok {
		_spec.SetField(widget.FieldQueryConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.VisualizationConfig(); ok {
		_spec.SetField(widget.FieldVisualizationConfig, field.TypeJSON, value)
	}
	if _u.mutation.VisualizationConfigCleared() {
		_spec.ClearField(widget.FieldVisualizationConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(widget.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Widget{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{widget.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
