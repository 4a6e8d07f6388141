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
	"github.com/muniscope/muniscope/ent/entity"
	"github.com/muniscope/muniscope/ent/entitytype"
	"github.com/muniscope/muniscope/ent/facetvalue"
	"github.com/muniscope/muniscope/ent/predicate"
)

// EntityUpdate is the builder for updating Entity entities.
type EntityUpdate struct {
	config
	hooks    []Hook
	mutation *EntityMutation
}

// Where appends a list predicates to the EntityUpdate builder.
func (_u *EntityUpdate) Where(ps ...predicate.Entity) *EntityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntityTypeID sets the "entity_type_id" field.
func (_u *EntityUpdate) SetEntityTypeID(v string) *EntityUpdate {
	_u.mutation.SetEntityTypeID(v)
	return _u
}

// SetNillableEntityTypeID sets the "entity_type_id" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableEntityTypeID(v *string) *EntityUpdate {
	if v != nil {
		_u.SetEntityTypeID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EntityUpdate) SetName(v string) *EntityUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableName(v *string) *EntityUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRegionCode sets the "region_code" field.
func (_u *EntityUpdate) SetRegionCode(v string) *EntityUpdate {
	_u.mutation.SetRegionCode(v)
	return _u
}

// SetNillableRegionCode sets the "region_code" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableRegionCode(v *string) *EntityUpdate {
	if v != nil {
		_u.SetRegionCode(*v)
	}
	return _u
}

// ClearRegionCode clears the value of the "region_code" field.
func (_u *EntityUpdate) ClearRegionCode() *EntityUpdate {
	_u.mutation.ClearRegionCode()
	return _u
}

// SetCountry sets the "country" field.
func (_u *EntityUpdate) SetCountry(v string) *EntityUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableCountry(v *string) *EntityUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *EntityUpdate) ClearCountry() *EntityUpdate {
	_u.mutation.ClearCountry()
	return _u
}

// SetTags sets the "tags" field.
func (_u *EntityUpdate) SetTags(v []string) *EntityUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *EntityUpdate) AppendTags(v []string) *EntityUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *EntityUpdate) ClearTags() *EntityUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetAttributes sets the "attributes" field.
func (_u *EntityUpdate) SetAttributes(v map[string]interface{}) *EntityUpdate {
	_u.mutation.SetAttributes(v)
	return _u
}

// ClearAttributes clears the value of the "attributes" field.
func (_u *EntityUpdate) ClearAttributes() *EntityUpdate {
	_u.mutation.ClearAttributes()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *EntityUpdate) SetLatitude(v float64) *EntityUpdate {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableLatitude(v *float64) *EntityUpdate {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *EntityUpdate) AddLatitude(v float64) *EntityUpdate {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *EntityUpdate) ClearLatitude() *EntityUpdate {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *EntityUpdate) SetLongitude(v float64) *EntityUpdate {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableLongitude(v *float64) *EntityUpdate {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *EntityUpdate) AddLongitude(v float64) *EntityUpdate {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *EntityUpdate) ClearLongitude() *EntityUpdate {
	_u.mutation.ClearLongitude()
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *EntityUpdate) SetParentID(v string) *EntityUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableParentID(v *string) *EntityUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *EntityUpdate) ClearParentID() *EntityUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetActive sets the "active" field.
func (_u *EntityUpdate) SetActive(v bool) *EntityUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableActive(v *bool) *EntityUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntityUpdate) SetUpdatedAt(v time.Time) *EntityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEntityType sets the "entity_type" edge to the EntityType entity.
func (_u *EntityUpdate) SetEntityType(v *EntityType) *EntityUpdate {
	return _u.SetEntityTypeID(v.ID)
}

// SetParent sets the "parent" edge to the Entity entity.
func (_u *EntityUpdate) SetParent(v *Entity) *EntityUpdate {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Entity entity by IDs.
func (_u *EntityUpdate) AddChildIDs(ids ...string) *EntityUpdate {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the Entity entity.
func (_u *EntityUpdate) AddChildren(v ...*Entity) *EntityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// AddFacetValueIDs adds the "facet_values" edge to the FacetValue entity by IDs.
func (_u *EntityUpdate) AddFacetValueIDs(ids ...string) *EntityUpdate {
	_u.mutation.AddFacetValueIDs(ids...)
	return _u
}

// AddFacetValues adds the "facet_values" edges to the FacetValue entity.
func (_u *EntityUpdate) AddFacetValues(v ...*FacetValue) *EntityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFacetValueIDs(ids...)
}

// Mutation returns the EntityMutation object of the builder.
func (_u *EntityUpdate) Mutation() *EntityMutation {
	return _u.mutation
}

// ClearEntityType clears the "entity_type" edge to the EntityType entity.
func (_u *EntityUpdate) ClearEntityType() *EntityUpdate {
	_u.mutation.ClearEntityType()
	return _u
}

// ClearParent clears the "parent" edge to the Entity entity.
func (_u *EntityUpdate) ClearParent() *EntityUpdate {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the Entity entity.
func (_u *EntityUpdate) ClearChildren() *EntityUpdate {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to Entity entities by IDs.
func (_u *EntityUpdate) RemoveChildIDs(ids ...string) *EntityUpdate {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to Entity entities.
func (_u *EntityUpdate) RemoveChildren(v ...*Entity) *EntityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearFacetValues clears all "facet_values" edges to the FacetValue entity.
func (_u *EntityUpdate) ClearFacetValues() *EntityUpdate {
	_u.mutation.ClearFacetValues()
	return _u
}

// RemoveFacetValueIDs removes the "facet_values" edge to FacetValue entities by IDs.
func (_u *EntityUpdate) RemoveFacetValueIDs(ids ...string) *EntityUpdate {
	_u.mutation.RemoveFacetValueIDs(ids...)
	return _u
}

// RemoveFacetValues removes "facet_values" edges to FacetValue entities.
func (_u *EntityUpdate) RemoveFacetValues(v ...*FacetValue) *EntityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFacetValueIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityUpdate) check() error {
	if _u.mutation.EntityTypeCleared() && len(_u.mutation.EntityTypeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Entity.entity_type"`)
	}
	return nil
}

func (_u *EntityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entity.Table, entity.Columns, sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(entity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RegionCode(); ok {
		_spec.SetField(entity.FieldRegionCode, field.TypeString, value)
	}
	if _u.mutation.RegionCodeCleared() {
		_spec.ClearField(entity.FieldRegionCode, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(entity.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(entity.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(entity.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, entity.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(entity.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Attributes(); ok {
		_spec.SetField(entity.FieldAttributes, field.TypeJSON, value)
	}
	if _u.mutation.AttributesCleared() {
		_spec.ClearField(entity.FieldAttributes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(entity.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(entity.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(entity.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(entity.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(entity.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(entity.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(entity.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(entity.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EntityTypeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entity.EntityTypeTable,
			Columns: []string{entity.EntityTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entitytype.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntityTypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entity.EntityTypeTable,
			Columns: []string{entity.EntityTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entitytype.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entity.ParentTable,
			Columns: []string{entity.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entity.ParentTable,
			Columns: []string{entity.ParentColumn},
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
	if _u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.ChildrenTable,
			Columns: []string{entity.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.ChildrenTable,
			Columns: []string{entity.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.ChildrenTable,
			Columns: []string{entity.ChildrenColumn},
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
	if _u.mutation.FacetValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.FacetValuesTable,
			Columns: []string{entity.FacetValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facetvalue.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFacetValuesIDs(); len(nodes) > 0 && !_u.mutation.FacetValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.FacetValuesTable,
			Columns: []string{entity.FacetValuesColumn},
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
	if nodes := _u.mutation.FacetValuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.FacetValuesTable,
			Columns: []string{entity.FacetValuesColumn},
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
			err = &NotFoundError{entity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityUpdateOne is the builder for updating a single Entity entity.
type EntityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityMutation
}

// SetEntityTypeID sets the "entity_type_id" field.
func (_u *EntityUpdateOne) SetEntityTypeID(v string) *EntityUpdateOne {
	_u.mutation.SetEntityTypeID(v)
	return _u
}

// SetNillableEntityTypeID sets the "entity_type_id" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableEntityTypeID(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetEntityTypeID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EntityUpdateOne) SetName(v string) *EntityUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableName(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRegionCode sets the "region_code" field.
func (_u *EntityUpdateOne) SetRegionCode(v string) *EntityUpdateOne {
	_u.mutation.SetRegionCode(v)
	return _u
}

// SetNillableRegionCode sets the "region_code" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableRegionCode(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetRegionCode(*v)
	}
	return _u
}

// ClearRegionCode clears the value of the "region_code" field.
func (_u *EntityUpdateOne) ClearRegionCode() *EntityUpdateOne {
	_u.mutation.ClearRegionCode()
	return _u
}

// SetCountry sets the "country" field.
func (_u *EntityUpdateOne) SetCountry(v string) *EntityUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableCountry(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *EntityUpdateOne) ClearCountry() *EntityUpdateOne {
	_u.mutation.ClearCountry()
	return _u
}

// SetTags sets the "tags" field.
func (_u *EntityUpdateOne) SetTags(v []string) *EntityUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *EntityUpdateOne) AppendTags(v []string) *EntityUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *EntityUpdateOne) ClearTags() *EntityUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetAttributes sets the "attributes" field.
func (_u *EntityUpdateOne) SetAttributes(v map[string]interface{}) *EntityUpdateOne {
	_u.mutation.SetAttributes(v)
	return _u
}

// ClearAttributes clears the value of the "attributes" field.
func (_u *EntityUpdateOne) ClearAttributes() *EntityUpdateOne {
	_u.mutation.ClearAttributes()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *EntityUpdateOne) SetLatitude(v float64) *EntityUpdateOne {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableLatitude(v *float64) *EntityUpdateOne {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *EntityUpdateOne) AddLatitude(v float64) *EntityUpdateOne {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *EntityUpdateOne) ClearLatitude() *EntityUpdateOne {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *EntityUpdateOne) SetLongitude(v float64) *EntityUpdateOne {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableLongitude(v *float64) *EntityUpdateOne {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *EntityUpdateOne) AddLongitude(v float64) *EntityUpdateOne {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *EntityUpdateOne) ClearLongitude() *EntityUpdateOne {
	_u.mutation.ClearLongitude()
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *EntityUpdateOne) SetParentID(v string) *EntityUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableParentID(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *EntityUpdateOne) ClearParentID() *EntityUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetActive sets the "active" field.
func (_u *EntityUpdateOne) SetActive(v bool) *EntityUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableActive(v *bool) *EntityUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntityUpdateOne) SetUpdatedAt(v time.Time) *EntityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEntityType sets the "entity_type" edge to the EntityType entity.
func (_u *EntityUpdateOne) SetEntityType(v *EntityType) *EntityUpdateOne {
	return _u.SetEntityTypeID(v.ID)
}

// SetParent sets the "parent" edge to the Entity entity.
func (_u *EntityUpdateOne) SetParent(v *Entity) *EntityUpdateOne {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Entity entity by IDs.
func (_u *EntityUpdateOne) AddChildIDs(ids ...string) *EntityUpdateOne {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the Entity entity.
func (_u *EntityUpdateOne) AddChildren(v ...*Entity) *EntityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// AddFacetValueIDs adds the "facet_values" edge to the FacetValue entity by IDs.
func (_u *EntityUpdateOne) AddFacetValueIDs(ids ...string) *EntityUpdateOne {
	_u.mutation.AddFacetValueIDs(ids...)
	return _u
}

// AddFacetValues adds the "facet_values" edges to the FacetValue entity.
func (_u *EntityUpdateOne) AddFacetValues(v ...*FacetValue) *EntityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFacetValueIDs(ids...)
}

// Mutation returns the EntityMutation object of the builder.
func (_u *EntityUpdateOne) Mutation() *EntityMutation {
	return _u.mutation
}

// ClearEntityType clears the "entity_type" edge to the EntityType entity.
func (_u *EntityUpdateOne) ClearEntityType() *EntityUpdateOne {
	_u.mutation.ClearEntityType()
	return _u
}

// ClearParent clears the "parent" edge to the Entity entity.
func (_u *EntityUpdateOne) ClearParent() *EntityUpdateOne {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the Entity entity.
func (_u *EntityUpdateOne) ClearChildren() *EntityUpdateOne {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to Entity entities by IDs.
func (_u *EntityUpdateOne) RemoveChildIDs(ids ...string) *EntityUpdateOne {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to Entity entities.
func (_u *EntityUpdateOne) RemoveChildren(v ...*Entity) *EntityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearFacetValues clears all "facet_values" edges to the FacetValue entity.
func (_u *EntityUpdateOne) ClearFacetValues() *EntityUpdateOne {
	_u.mutation.ClearFacetValues()
	return _u
}

// RemoveFacetValueIDs removes the "facet_values" edge to FacetValue entities by IDs.
func (_u *EntityUpdateOne) RemoveFacetValueIDs(ids ...string) *EntityUpdateOne {
	_u.mutation.RemoveFacetValueIDs(ids...)
	return _u
}

// RemoveFacetValues removes "facet_values" edges to FacetValue entities.
func (_u *EntityUpdateOne) RemoveFacetValues(v ...*FacetValue) *EntityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFacetValueIDs(ids...)
}

// Where appends a list predicates to the EntityUpdate builder.
func (_u *EntityUpdateOne) Where(ps ...predicate.Entity) *EntityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityUpdateOne) Select(field string, fields ...string) *EntityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Entity entity.
func (_u *EntityUpdateOne) Save(ctx context.Context) (*Entity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityUpdateOne) SaveX(ctx context.Context) *Entity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityUpdateOne) check() error {
	if _u.mutation.EntityTypeCleared() && len(_u.mutation.EntityTypeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Entity.entity_type"`)
	}
	return nil
}

func (_u *EntityUpdateOne) sqlSave(ctx context.Context) (_node *Entity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entity.Table, entity.Columns, sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Entity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entity.FieldID)
		for _, f := range fields {
			if !entity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entity.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(entity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RegionCode(); ok {
		_spec.SetField(entity.FieldRegionCode, field.TypeString, value)
	}
	if _u.mutation.RegionCodeCleared() {
		_spec.ClearField(entity.FieldRegionCode, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(entity.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(entity.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(entity.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, entity.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(entity.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Attributes(); ok {
		_spec.SetField(entity.FieldAttributes, field.TypeJSON, value)
	}
	if _u.mutation.AttributesCleared() {
		_spec.ClearField(entity.FieldAttributes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(entity.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(entity.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(entity.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(entity.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(entity.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(entity.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(entity.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(entity.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EntityTypeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entity.EntityTypeTable,
			Columns: []string{entity.EntityTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entitytype.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntityTypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entity.EntityTypeTable,
			Columns: []string{entity.EntityTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entitytype.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entity.ParentTable,
			Columns: []string{entity.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entity.ParentTable,
			Columns: []string{entity.ParentColumn},
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
	if _u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.ChildrenTable,
			Columns: []string{entity.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.ChildrenTable,
			Columns: []string{entity.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.ChildrenTable,
			Columns: []string{entity.ChildrenColumn},
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
	if _u.mutation.FacetValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.FacetValuesTable,
			Columns: []string{entity.FacetValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facetvalue.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFacetValuesIDs(); len(nodes) > 0 && !_u.mutation.FacetValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.FacetValuesTable,
			Columns: []string{entity.FacetValuesColumn},
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
	if nodes := _u.mutation.FacetValuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.FacetValuesTable,
			Columns: []string{entity.FacetValuesColumn},
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
	_node = &Entity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
