// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/muniscope/muniscope/ent/entity"
	"github.com/muniscope/muniscope/ent/entitytype"
	"github.com/muniscope/muniscope/ent/execution"
	"github.com/muniscope/muniscope/ent/facettype"
	"github.com/muniscope/muniscope/ent/facetvalue"
	"github.com/muniscope/muniscope/ent/predicate"
	"github.com/muniscope/muniscope/ent/summary"
	"github.com/muniscope/muniscope/ent/widget"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEntity     = "Entity"
	TypeEntityType = "EntityType"
	TypeExecution  = "Execution"
	TypeFacetType  = "FacetType"
	TypeFacetValue = "FacetValue"
	TypeSummary    = "Summary"
	TypeWidget     = "Widget"
)

// EntityMutation represents an operation that mutates the Entity nodes in the graph.
type EntityMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	name                *string
	region_code         *string
	country             *string
	tags                *[]string
	appendtags          []string
	attributes          *map[string]interface{}
	latitude            *float64
	addlatitude         *float64
	longitude           *float64
	addlongitude        *float64
	active              *bool
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	entity_type         *string
	clearedentity_type  bool
	parent              *string
	clearedparent       bool
	children            map[string]struct{}
	removedchildren     map[string]struct{}
	clearedchildren     bool
	facet_values        map[string]struct{}
	removedfacet_values map[string]struct{}
	clearedfacet_values bool
	done                bool
	oldValue            func(context.Context) (*Entity, error)
	predicates          []predicate.Entity
}

var _ ent.Mutation = (*EntityMutation)(nil)

// entityOption allows management of the mutation configuration using functional options.
type entityOption func(*EntityMutation)

// newEntityMutation creates new mutation for the Entity entity.
func newEntityMutation(c config, op Op, opts ...entityOption) *EntityMutation {
	m := &EntityMutation{
		config:        c,
		op:            op,
		typ:           TypeEntity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityID sets the ID field of the mutation.
func withEntityID(id string) entityOption {
	return func(m *EntityMutation) {
		var (
			err   error
			once  sync.Once
			value *Entity
		)
		m.oldValue = func(ctx context.Context) (*Entity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Entity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntity sets the old Entity of the mutation.
func withEntity(node *Entity) entityOption {
	return func(m *EntityMutation) {
		m.oldValue = func(context.Context) (*Entity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Entity entities.
func (m *EntityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Entity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityTypeID sets the "entity_type_id" field.
func (m *EntityMutation) SetEntityTypeID(s string) {
	m.entity_type = &s
}

// EntityTypeID returns the value of the "entity_type_id" field in the mutation.
func (m *EntityMutation) EntityTypeID() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityTypeID returns the old "entity_type_id" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldEntityTypeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityTypeID: %w", err)
	}
	return oldValue.EntityTypeID, nil
}

// ResetEntityTypeID resets all changes to the "entity_type_id" field.
func (m *EntityMutation) ResetEntityTypeID() {
	m.entity_type = nil
}

// SetName sets the "name" field.
func (m *EntityMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EntityMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EntityMutation) ResetName() {
	m.name = nil
}

// SetRegionCode sets the "region_code" field.
func (m *EntityMutation) SetRegionCode(s string) {
	m.region_code = &s
}

// RegionCode returns the value of the "region_code" field in the mutation.
func (m *EntityMutation) RegionCode() (r string, exists bool) {
	v := m.region_code
	if v == nil {
		return
	}
	return *v, true
}

// OldRegionCode returns the old "region_code" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldRegionCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegionCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegionCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegionCode: %w", err)
	}
	return oldValue.RegionCode, nil
}

// ClearRegionCode clears the value of the "region_code" field.
func (m *EntityMutation) ClearRegionCode() {
	m.region_code = nil
	m.clearedFields[entity.FieldRegionCode] = struct{}{}
}

// RegionCodeCleared returns if the "region_code" field was cleared in this mutation.
func (m *EntityMutation) RegionCodeCleared() bool {
	_, ok := m.clearedFields[entity.FieldRegionCode]
	return ok
}

// ResetRegionCode resets all changes to the "region_code" field.
func (m *EntityMutation) ResetRegionCode() {
	m.region_code = nil
	delete(m.clearedFields, entity.FieldRegionCode)
}

// SetCountry sets the "country" field.
func (m *EntityMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *EntityMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ClearCountry clears the value of the "country" field.
func (m *EntityMutation) ClearCountry() {
	m.country = nil
	m.clearedFields[entity.FieldCountry] = struct{}{}
}

// CountryCleared returns if the "country" field was cleared in this mutation.
func (m *EntityMutation) CountryCleared() bool {
	_, ok := m.clearedFields[entity.FieldCountry]
	return ok
}

// ResetCountry resets all changes to the "country" field.
func (m *EntityMutation) ResetCountry() {
	m.country = nil
	delete(m.clearedFields, entity.FieldCountry)
}

// SetTags sets the "tags" field.
func (m *EntityMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *EntityMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *EntityMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *EntityMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *EntityMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[entity.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *EntityMutation) TagsCleared() bool {
	_, ok := m.clearedFields[entity.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *EntityMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, entity.FieldTags)
}

// SetAttributes sets the "attributes" field.
func (m *EntityMutation) SetAttributes(value map[string]interface{}) {
	m.attributes = &value
}

// Attributes returns the value of the "attributes" field in the mutation.
func (m *EntityMutation) Attributes() (r map[string]interface{}, exists bool) {
	v := m.attributes
	if v == nil {
		return
	}
	return *v, true
}

// OldAttributes returns the old "attributes" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldAttributes(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttributes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttributes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttributes: %w", err)
	}
	return oldValue.Attributes, nil
}

// ClearAttributes clears the value of the "attributes" field.
func (m *EntityMutation) ClearAttributes() {
	m.attributes = nil
	m.clearedFields[entity.FieldAttributes] = struct{}{}
}

// AttributesCleared returns if the "attributes" field was cleared in this mutation.
func (m *EntityMutation) AttributesCleared() bool {
	_, ok := m.clearedFields[entity.FieldAttributes]
	return ok
}

// ResetAttributes resets all changes to the "attributes" field.
func (m *EntityMutation) ResetAttributes() {
	m.attributes = nil
	delete(m.clearedFields, entity.FieldAttributes)
}

// SetLatitude sets the "latitude" field.
func (m *EntityMutation) SetLatitude(f float64) {
	m.latitude = &f
	m.addlatitude = nil
}

// Latitude returns the value of the "latitude" field in the mutation.
func (m *EntityMutation) Latitude() (r float64, exists bool) {
	v := m.latitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLatitude returns the old "latitude" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldLatitude(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatitude: %w", err)
	}
	return oldValue.Latitude, nil
}

// AddLatitude adds f to the "latitude" field.
func (m *EntityMutation) AddLatitude(f float64) {
	if m.addlatitude != nil {
		*m.addlatitude += f
	} else {
		m.addlatitude = &f
	}
}

// AddedLatitude returns the value that was added to the "latitude" field in this mutation.
func (m *EntityMutation) AddedLatitude() (r float64, exists bool) {
	v := m.addlatitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatitude clears the value of the "latitude" field.
func (m *EntityMutation) ClearLatitude() {
	m.latitude = nil
	m.addlatitude = nil
	m.clearedFields[entity.FieldLatitude] = struct{}{}
}

// LatitudeCleared returns if the "latitude" field was cleared in this mutation.
func (m *EntityMutation) LatitudeCleared() bool {
	_, ok := m.clearedFields[entity.FieldLatitude]
	return ok
}

// ResetLatitude resets all changes to the "latitude" field.
func (m *EntityMutation) ResetLatitude() {
	m.latitude = nil
	m.addlatitude = nil
	delete(m.clearedFields, entity.FieldLatitude)
}

// SetLongitude sets the "longitude" field.
func (m *EntityMutation) SetLongitude(f float64) {
	m.longitude = &f
	m.addlongitude = nil
}

// Longitude returns the value of the "longitude" field in the mutation.
func (m *EntityMutation) Longitude() (r float64, exists bool) {
	v := m.longitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLongitude returns the old "longitude" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldLongitude(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongitude: %w", err)
	}
	return oldValue.Longitude, nil
}

// AddLongitude adds f to the "longitude" field.
func (m *EntityMutation) AddLongitude(f float64) {
	if m.addlongitude != nil {
		*m.addlongitude += f
	} else {
		m.addlongitude = &f
	}
}

// AddedLongitude returns the value that was added to the "longitude" field in this mutation.
func (m *EntityMutation) AddedLongitude() (r float64, exists bool) {
	v := m.addlongitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearLongitude clears the value of the "longitude" field.
func (m *EntityMutation) ClearLongitude() {
	m.longitude = nil
	m.addlongitude = nil
	m.clearedFields[entity.FieldLongitude] = struct{}{}
}

// LongitudeCleared returns if the "longitude" field was cleared in this mutation.
func (m *EntityMutation) LongitudeCleared() bool {
	_, ok := m.clearedFields[entity.FieldLongitude]
	return ok
}

// ResetLongitude resets all changes to the "longitude" field.
func (m *EntityMutation) ResetLongitude() {
	m.longitude = nil
	m.addlongitude = nil
	delete(m.clearedFields, entity.FieldLongitude)
}

// SetParentID sets the "parent_id" field.
func (m *EntityMutation) SetParentID(s string) {
	m.parent = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *EntityMutation) ParentID() (r string, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *EntityMutation) ClearParentID() {
	m.parent = nil
	m.clearedFields[entity.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *EntityMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[entity.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *EntityMutation) ResetParentID() {
	m.parent = nil
	delete(m.clearedFields, entity.FieldParentID)
}

// SetActive sets the "active" field.
func (m *EntityMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *EntityMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *EntityMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EntityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EntityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EntityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EntityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearEntityType clears the "entity_type" edge to the EntityType entity.
func (m *EntityMutation) ClearEntityType() {
	m.clearedentity_type = true
	m.clearedFields[entity.FieldEntityTypeID] = struct{}{}
}

// EntityTypeCleared reports if the "entity_type" edge to the EntityType entity was cleared.
func (m *EntityMutation) EntityTypeCleared() bool {
	return m.clearedentity_type
}

// EntityTypeIDs returns the "entity_type" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EntityTypeID instead. It exists only for internal usage by the builders.
func (m *EntityMutation) EntityTypeIDs() (ids []string) {
	if id := m.entity_type; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEntityType resets all changes to the "entity_type" edge.
func (m *EntityMutation) ResetEntityType() {
	m.entity_type = nil
	m.clearedentity_type = false
}

// ClearParent clears the "parent" edge to the Entity entity.
func (m *EntityMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[entity.FieldParentID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the Entity entity was cleared.
func (m *EntityMutation) ParentCleared() bool {
	return m.ParentIDCleared() || m.clearedparent
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *EntityMutation) ParentIDs() (ids []string) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *EntityMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddChildIDs adds the "children" edge to the Entity entity by ids.
func (m *EntityMutation) AddChildIDs(ids ...string) {
	if m.children == nil {
		m.children = make(map[string]struct{})
	}
	for i := range ids {
		m.children[ids[i]] = struct{}{}
	}
}

// ClearChildren clears the "children" edge to the Entity entity.
func (m *EntityMutation) ClearChildren() {
	m.clearedchildren = true
}

// ChildrenCleared reports if the "children" edge to the Entity entity was cleared.
func (m *EntityMutation) ChildrenCleared() bool {
	return m.clearedchildren
}

// RemoveChildIDs removes the "children" edge to the Entity entity by IDs.
func (m *EntityMutation) RemoveChildIDs(ids ...string) {
	if m.removedchildren == nil {
		m.removedchildren = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.children, ids[i])
		m.removedchildren[ids[i]] = struct{}{}
	}
}

// RemovedChildren returns the removed IDs of the "children" edge to the Entity entity.
func (m *EntityMutation) RemovedChildrenIDs() (ids []string) {
	for id := range m.removedchildren {
		ids = append(ids, id)
	}
	return
}

// ChildrenIDs returns the "children" edge IDs in the mutation.
func (m *EntityMutation) ChildrenIDs() (ids []string) {
	for id := range m.children {
		ids = append(ids, id)
	}
	return
}

// ResetChildren resets all changes to the "children" edge.
func (m *EntityMutation) ResetChildren() {
	m.children = nil
	m.clearedchildren = false
	m.removedchildren = nil
}

// AddFacetValueIDs adds the "facet_values" edge to the FacetValue entity by ids.
func (m *EntityMutation) AddFacetValueIDs(ids ...string) {
	if m.facet_values == nil {
		m.facet_values = make(map[string]struct{})
	}
	for i := range ids {
		m.facet_values[ids[i]] = struct{}{}
	}
}

// ClearFacetValues clears the "facet_values" edge to the FacetValue entity.
func (m *EntityMutation) ClearFacetValues() {
	m.clearedfacet_values = true
}

// FacetValuesCleared reports if the "facet_values" edge to the FacetValue entity was cleared.
func (m *EntityMutation) FacetValuesCleared() bool {
	return m.clearedfacet_values
}

// RemoveFacetValueIDs removes the "facet_values" edge to the FacetValue entity by IDs.
func (m *EntityMutation) RemoveFacetValueIDs(ids ...string) {
	if m.removedfacet_values == nil {
		m.removedfacet_values = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.facet_values, ids[i])
		m.removedfacet_values[ids[i]] = struct{}{}
	}
}

// RemovedFacetValues returns the removed IDs of the "facet_values" edge to the FacetValue entity.
func (m *EntityMutation) RemovedFacetValuesIDs() (ids []string) {
	for id := range m.removedfacet_values {
		ids = append(ids, id)
	}
	return
}

// FacetValuesIDs returns the "facet_values" edge IDs in the mutation.
func (m *EntityMutation) FacetValuesIDs() (ids []string) {
	for id := range m.facet_values {
		ids = append(ids, id)
	}
	return
}

// ResetFacetValues resets all changes to the "facet_values" edge.
func (m *EntityMutation) ResetFacetValues() {
	m.facet_values = nil
	m.clearedfacet_values = false
	m.removedfacet_values = nil
}

// Where appends a list predicates to the EntityMutation builder.
func (m *EntityMutation) Where(ps ...predicate.Entity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Entity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Entity).
func (m *EntityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.entity_type != nil {
		fields = append(fields, entity.FieldEntityTypeID)
	}
	if m.name != nil {
		fields = append(fields, entity.FieldName)
	}
	if m.region_code != nil {
		fields = append(fields, entity.FieldRegionCode)
	}
	if m.country != nil {
		fields = append(fields, entity.FieldCountry)
	}
	if m.tags != nil {
		fields = append(fields, entity.FieldTags)
	}
	if m.attributes != nil {
		fields = append(fields, entity.FieldAttributes)
	}
	if m.latitude != nil {
		fields = append(fields, entity.FieldLatitude)
	}
	if m.longitude != nil {
		fields = append(fields, entity.FieldLongitude)
	}
	if m.parent != nil {
		fields = append(fields, entity.FieldParentID)
	}
	if m.active != nil {
		fields = append(fields, entity.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, entity.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, entity.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entity.FieldEntityTypeID:
		return m.EntityTypeID()
	case entity.FieldName:
		return m.Name()
	case entity.FieldRegionCode:
		return m.RegionCode()
	case entity.FieldCountry:
		return m.Country()
	case entity.FieldTags:
		return m.Tags()
	case entity.FieldAttributes:
		return m.Attributes()
	case entity.FieldLatitude:
		return m.Latitude()
	case entity.FieldLongitude:
		return m.Longitude()
	case entity.FieldParentID:
		return m.ParentID()
	case entity.FieldActive:
		return m.Active()
	case entity.FieldCreatedAt:
		return m.CreatedAt()
	case entity.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entity.FieldEntityTypeID:
		return m.OldEntityTypeID(ctx)
	case entity.FieldName:
		return m.OldName(ctx)
	case entity.FieldRegionCode:
		return m.OldRegionCode(ctx)
	case entity.FieldCountry:
		return m.OldCountry(ctx)
	case entity.FieldTags:
		return m.OldTags(ctx)
	case entity.FieldAttributes:
		return m.OldAttributes(ctx)
	case entity.FieldLatitude:
		return m.OldLatitude(ctx)
	case entity.FieldLongitude:
		return m.OldLongitude(ctx)
	case entity.FieldParentID:
		return m.OldParentID(ctx)
	case entity.FieldActive:
		return m.OldActive(ctx)
	case entity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case entity.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Entity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entity.FieldEntityTypeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityTypeID(v)
		return nil
	case entity.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case entity.FieldRegionCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegionCode(v)
		return nil
	case entity.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case entity.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case entity.FieldAttributes:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttributes(v)
		return nil
	case entity.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatitude(v)
		return nil
	case entity.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongitude(v)
		return nil
	case entity.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case entity.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case entity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case entity.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Entity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityMutation) AddedFields() []string {
	var fields []string
	if m.addlatitude != nil {
		fields = append(fields, entity.FieldLatitude)
	}
	if m.addlongitude != nil {
		fields = append(fields, entity.FieldLongitude)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entity.FieldLatitude:
		return m.AddedLatitude()
	case entity.FieldLongitude:
		return m.AddedLongitude()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entity.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatitude(v)
		return nil
	case entity.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongitude(v)
		return nil
	}
	return fmt.Errorf("unknown Entity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entity.FieldRegionCode) {
		fields = append(fields, entity.FieldRegionCode)
	}
	if m.FieldCleared(entity.FieldCountry) {
		fields = append(fields, entity.FieldCountry)
	}
	if m.FieldCleared(entity.FieldTags) {
		fields = append(fields, entity.FieldTags)
	}
	if m.FieldCleared(entity.FieldAttributes) {
		fields = append(fields, entity.FieldAttributes)
	}
	if m.FieldCleared(entity.FieldLatitude) {
		fields = append(fields, entity.FieldLatitude)
	}
	if m.FieldCleared(entity.FieldLongitude) {
		fields = append(fields, entity.FieldLongitude)
	}
	if m.FieldCleared(entity.FieldParentID) {
		fields = append(fields, entity.FieldParentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityMutation) ClearField(name string) error {
	switch name {
	case entity.FieldRegionCode:
		m.ClearRegionCode()
		return nil
	case entity.FieldCountry:
		m.ClearCountry()
		return nil
	case entity.FieldTags:
		m.ClearTags()
		return nil
	case entity.FieldAttributes:
		m.ClearAttributes()
		return nil
	case entity.FieldLatitude:
		m.ClearLatitude()
		return nil
	case entity.FieldLongitude:
		m.ClearLongitude()
		return nil
	case entity.FieldParentID:
		m.ClearParentID()
		return nil
	}
	return fmt.Errorf("unknown Entity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityMutation) ResetField(name string) error {
	switch name {
	case entity.FieldEntityTypeID:
		m.ResetEntityTypeID()
		return nil
	case entity.FieldName:
		m.ResetName()
		return nil
	case entity.FieldRegionCode:
		m.ResetRegionCode()
		return nil
	case entity.FieldCountry:
		m.ResetCountry()
		return nil
	case entity.FieldTags:
		m.ResetTags()
		return nil
	case entity.FieldAttributes:
		m.ResetAttributes()
		return nil
	case entity.FieldLatitude:
		m.ResetLatitude()
		return nil
	case entity.FieldLongitude:
		m.ResetLongitude()
		return nil
	case entity.FieldParentID:
		m.ResetParentID()
		return nil
	case entity.FieldActive:
		m.ResetActive()
		return nil
	case entity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case entity.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Entity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.entity_type != nil {
		edges = append(edges, entity.EdgeEntityType)
	}
	if m.parent != nil {
		edges = append(edges, entity.EdgeParent)
	}
	if m.children != nil {
		edges = append(edges, entity.EdgeChildren)
	}
	if m.facet_values != nil {
		edges = append(edges, entity.EdgeFacetValues)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entity.EdgeEntityType:
		if id := m.entity_type; id != nil {
			return []ent.Value{*id}
		}
	case entity.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case entity.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.children))
		for id := range m.children {
			ids = append(ids, id)
		}
		return ids
	case entity.EdgeFacetValues:
		ids := make([]ent.Value, 0, len(m.facet_values))
		for id := range m.facet_values {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedchildren != nil {
		edges = append(edges, entity.EdgeChildren)
	}
	if m.removedfacet_values != nil {
		edges = append(edges, entity.EdgeFacetValues)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case entity.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.removedchildren))
		for id := range m.removedchildren {
			ids = append(ids, id)
		}
		return ids
	case entity.EdgeFacetValues:
		ids := make([]ent.Value, 0, len(m.removedfacet_values))
		for id := range m.removedfacet_values {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedentity_type {
		edges = append(edges, entity.EdgeEntityType)
	}
	if m.clearedparent {
		edges = append(edges, entity.EdgeParent)
	}
	if m.clearedchildren {
		edges = append(edges, entity.EdgeChildren)
	}
	if m.clearedfacet_values {
		edges = append(edges, entity.EdgeFacetValues)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityMutation) EdgeCleared(name string) bool {
	switch name {
	case entity.EdgeEntityType:
		return m.clearedentity_type
	case entity.EdgeParent:
		return m.clearedparent
	case entity.EdgeChildren:
		return m.clearedchildren
	case entity.EdgeFacetValues:
		return m.clearedfacet_values
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityMutation) ClearEdge(name string) error {
	switch name {
	case entity.EdgeEntityType:
		m.ClearEntityType()
		return nil
	case entity.EdgeParent:
		m.ClearParent()
		return nil
	}
	return fmt.Errorf("unknown Entity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityMutation) ResetEdge(name string) error {
	switch name {
	case entity.EdgeEntityType:
		m.ResetEntityType()
		return nil
	case entity.EdgeParent:
		m.ResetParent()
		return nil
	case entity.EdgeChildren:
		m.ResetChildren()
		return nil
	case entity.EdgeFacetValues:
		m.ResetFacetValues()
		return nil
	}
	return fmt.Errorf("unknown Entity edge %s", name)
}

// EntityTypeMutation represents an operation that mutates the EntityType nodes in the graph.
type EntityTypeMutation struct {
	config
	op              Op
	typ             string
	id              *string
	slug            *string
	name            *string
	clearedFields   map[string]struct{}
	entities        map[string]struct{}
	removedentities map[string]struct{}
	clearedentities bool
	done            bool
	oldValue        func(context.Context) (*EntityType, error)
	predicates      []predicate.EntityType
}

var _ ent.Mutation = (*EntityTypeMutation)(nil)

// entitytypeOption allows management of the mutation configuration using functional options.
type entitytypeOption func(*EntityTypeMutation)

// newEntityTypeMutation creates new mutation for the EntityType entity.
func newEntityTypeMutation(c config, op Op, opts ...entitytypeOption) *EntityTypeMutation {
	m := &EntityTypeMutation{
		config:        c,
		op:            op,
		typ:           TypeEntityType,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityTypeID sets the ID field of the mutation.
func withEntityTypeID(id string) entitytypeOption {
	return func(m *EntityTypeMutation) {
		var (
			err   error
			once  sync.Once
			value *EntityType
		)
		m.oldValue = func(ctx context.Context) (*EntityType, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntityType.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntityType sets the old EntityType of the mutation.
func withEntityType(node *EntityType) entitytypeOption {
	return func(m *EntityTypeMutation) {
		m.oldValue = func(context.Context) (*EntityType, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityTypeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityTypeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EntityType entities.
func (m *EntityTypeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityTypeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityTypeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntityType.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSlug sets the "slug" field.
func (m *EntityTypeMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *EntityTypeMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the EntityType entity.
// If the EntityType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityTypeMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *EntityTypeMutation) ResetSlug() {
	m.slug = nil
}

// SetName sets the "name" field.
func (m *EntityTypeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EntityTypeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the EntityType entity.
// If the EntityType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityTypeMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EntityTypeMutation) ResetName() {
	m.name = nil
}

// AddEntityIDs adds the "entities" edge to the Entity entity by ids.
func (m *EntityTypeMutation) AddEntityIDs(ids ...string) {
	if m.entities == nil {
		m.entities = make(map[string]struct{})
	}
	for i := range ids {
		m.entities[ids[i]] = struct{}{}
	}
}

// ClearEntities clears the "entities" edge to the Entity entity.
func (m *EntityTypeMutation) ClearEntities() {
	m.clearedentities = true
}

// EntitiesCleared reports if the "entities" edge to the Entity entity was cleared.
func (m *EntityTypeMutation) EntitiesCleared() bool {
	return m.clearedentities
}

// RemoveEntityIDs removes the "entities" edge to the Entity entity by IDs.
func (m *EntityTypeMutation) RemoveEntityIDs(ids ...string) {
	if m.removedentities == nil {
		m.removedentities = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.entities, ids[i])
		m.removedentities[ids[i]] = struct{}{}
	}
}

// RemovedEntities returns the removed IDs of the "entities" edge to the Entity entity.
func (m *EntityTypeMutation) RemovedEntitiesIDs() (ids []string) {
	for id := range m.removedentities {
		ids = append(ids, id)
	}
	return
}

// EntitiesIDs returns the "entities" edge IDs in the mutation.
func (m *EntityTypeMutation) EntitiesIDs() (ids []string) {
	for id := range m.entities {
		ids = append(ids, id)
	}
	return
}

// ResetEntities resets all changes to the "entities" edge.
func (m *EntityTypeMutation) ResetEntities() {
	m.entities = nil
	m.clearedentities = false
	m.removedentities = nil
}

// Where appends a list predicates to the EntityTypeMutation builder.
func (m *EntityTypeMutation) Where(ps ...predicate.EntityType) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityTypeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityTypeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntityType, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityTypeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityTypeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntityType).
func (m *EntityTypeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityTypeMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.slug != nil {
		fields = append(fields, entitytype.FieldSlug)
	}
	if m.name != nil {
		fields = append(fields, entitytype.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityTypeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entitytype.FieldSlug:
		return m.Slug()
	case entitytype.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityTypeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entitytype.FieldSlug:
		return m.OldSlug(ctx)
	case entitytype.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown EntityType field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityTypeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entitytype.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case entitytype.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown EntityType field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityTypeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityTypeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityTypeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EntityType numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityTypeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityTypeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityTypeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EntityType nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityTypeMutation) ResetField(name string) error {
	switch name {
	case entitytype.FieldSlug:
		m.ResetSlug()
		return nil
	case entitytype.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown EntityType field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityTypeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.entities != nil {
		edges = append(edges, entitytype.EdgeEntities)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityTypeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entitytype.EdgeEntities:
		ids := make([]ent.Value, 0, len(m.entities))
		for id := range m.entities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityTypeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedentities != nil {
		edges = append(edges, entitytype.EdgeEntities)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityTypeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case entitytype.EdgeEntities:
		ids := make([]ent.Value, 0, len(m.removedentities))
		for id := range m.removedentities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityTypeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedentities {
		edges = append(edges, entitytype.EdgeEntities)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityTypeMutation) EdgeCleared(name string) bool {
	switch name {
	case entitytype.EdgeEntities:
		return m.clearedentities
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityTypeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown EntityType unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityTypeMutation) ResetEdge(name string) error {
	switch name {
	case entitytype.EdgeEntities:
		m.ResetEntities()
		return nil
	}
	return fmt.Errorf("unknown EntityType edge %s", name)
}

// ExecutionMutation represents an operation that mutates the Execution nodes in the graph.
type ExecutionMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	status                      *execution.Status
	triggered_by                *string
	trigger_details             *map[string]interface{}
	cached_data                 *map[string]interface{}
	data_hash                   *string
	has_changes                 *bool
	relevance_score             *float64
	addrelevance_score          *float64
	relevance_reason            *string
	skip_reason                 *string
	expansion_suggestions       *[]map[string]interface{}
	appendexpansion_suggestions []map[string]interface{}
	error_message               *string
	started_at                  *time.Time
	completed_at                *time.Time
	duration_ms                 *int
	addduration_ms              *int
	clearedFields               map[string]struct{}
	summary                     *string
	clearedsummary              bool
	done                        bool
	oldValue                    func(context.Context) (*Execution, error)
	predicates                  []predicate.Execution
}

var _ ent.Mutation = (*ExecutionMutation)(nil)

// executionOption allows management of the mutation configuration using functional options.
type executionOption func(*ExecutionMutation)

// newExecutionMutation creates new mutation for the Execution entity.
func newExecutionMutation(c config, op Op, opts ...executionOption) *ExecutionMutation {
	m := &ExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionID sets the ID field of the mutation.
func withExecutionID(id string) executionOption {
	return func(m *ExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *Execution
		)
		m.oldValue = func(ctx context.Context) (*Execution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Execution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecution sets the old Execution of the mutation.
func withExecution(node *Execution) executionOption {
	return func(m *ExecutionMutation) {
		m.oldValue = func(context.Context) (*Execution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Execution entities.
func (m *ExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Execution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSummaryID sets the "summary_id" field.
func (m *ExecutionMutation) SetSummaryID(s string) {
	m.summary = &s
}

// SummaryID returns the value of the "summary_id" field in the mutation.
func (m *ExecutionMutation) SummaryID() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryID returns the old "summary_id" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldSummaryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryID: %w", err)
	}
	return oldValue.SummaryID, nil
}

// ResetSummaryID resets all changes to the "summary_id" field.
func (m *ExecutionMutation) ResetSummaryID() {
	m.summary = nil
}

// SetStatus sets the "status" field.
func (m *ExecutionMutation) SetStatus(e execution.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExecutionMutation) Status() (r execution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldStatus(ctx context.Context) (v execution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetTriggeredBy sets the "triggered_by" field.
func (m *ExecutionMutation) SetTriggeredBy(s string) {
	m.triggered_by = &s
}

// TriggeredBy returns the value of the "triggered_by" field in the mutation.
func (m *ExecutionMutation) TriggeredBy() (r string, exists bool) {
	v := m.triggered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredBy returns the old "triggered_by" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldTriggeredBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredBy: %w", err)
	}
	return oldValue.TriggeredBy, nil
}

// ResetTriggeredBy resets all changes to the "triggered_by" field.
func (m *ExecutionMutation) ResetTriggeredBy() {
	m.triggered_by = nil
}

// SetTriggerDetails sets the "trigger_details" field.
func (m *ExecutionMutation) SetTriggerDetails(value map[string]interface{}) {
	m.trigger_details = &value
}

// TriggerDetails returns the value of the "trigger_details" field in the mutation.
func (m *ExecutionMutation) TriggerDetails() (r map[string]interface{}, exists bool) {
	v := m.trigger_details
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerDetails returns the old "trigger_details" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldTriggerDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerDetails: %w", err)
	}
	return oldValue.TriggerDetails, nil
}

// ClearTriggerDetails clears the value of the "trigger_details" field.
func (m *ExecutionMutation) ClearTriggerDetails() {
	m.trigger_details = nil
	m.clearedFields[execution.FieldTriggerDetails] = struct{}{}
}

// TriggerDetailsCleared returns if the "trigger_details" field was cleared in this mutation.
func (m *ExecutionMutation) TriggerDetailsCleared() bool {
	_, ok := m.clearedFields[execution.FieldTriggerDetails]
	return ok
}

// ResetTriggerDetails resets all changes to the "trigger_details" field.
func (m *ExecutionMutation) ResetTriggerDetails() {
	m.trigger_details = nil
	delete(m.clearedFields, execution.FieldTriggerDetails)
}

// SetCachedData sets the "cached_data" field.
func (m *ExecutionMutation) SetCachedData(value map[string]interface{}) {
	m.cached_data = &value
}

// CachedData returns the value of the "cached_data" field in the mutation.
func (m *ExecutionMutation) CachedData() (r map[string]interface{}, exists bool) {
	v := m.cached_data
	if v == nil {
		return
	}
	return *v, true
}

// OldCachedData returns the old "cached_data" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldCachedData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCachedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCachedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCachedData: %w", err)
	}
	return oldValue.CachedData, nil
}

// ClearCachedData clears the value of the "cached_data" field.
func (m *ExecutionMutation) ClearCachedData() {
	m.cached_data = nil
	m.clearedFields[execution.FieldCachedData] = struct{}{}
}

// CachedDataCleared returns if the "cached_data" field was cleared in this mutation.
func (m *ExecutionMutation) CachedDataCleared() bool {
	_, ok := m.clearedFields[execution.FieldCachedData]
	return ok
}

// ResetCachedData resets all changes to the "cached_data" field.
func (m *ExecutionMutation) ResetCachedData() {
	m.cached_data = nil
	delete(m.clearedFields, execution.FieldCachedData)
}

// SetDataHash sets the "data_hash" field.
func (m *ExecutionMutation) SetDataHash(s string) {
	m.data_hash = &s
}

// DataHash returns the value of the "data_hash" field in the mutation.
func (m *ExecutionMutation) DataHash() (r string, exists bool) {
	v := m.data_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldDataHash returns the old "data_hash" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldDataHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataHash: %w", err)
	}
	return oldValue.DataHash, nil
}

// ClearDataHash clears the value of the "data_hash" field.
func (m *ExecutionMutation) ClearDataHash() {
	m.data_hash = nil
	m.clearedFields[execution.FieldDataHash] = struct{}{}
}

// DataHashCleared returns if the "data_hash" field was cleared in this mutation.
func (m *ExecutionMutation) DataHashCleared() bool {
	_, ok := m.clearedFields[execution.FieldDataHash]
	return ok
}

// ResetDataHash resets all changes to the "data_hash" field.
func (m *ExecutionMutation) ResetDataHash() {
	m.data_hash = nil
	delete(m.clearedFields, execution.FieldDataHash)
}

// SetHasChanges sets the "has_changes" field.
func (m *ExecutionMutation) SetHasChanges(b bool) {
	m.has_changes = &b
}

// HasChanges returns the value of the "has_changes" field in the mutation.
func (m *ExecutionMutation) HasChanges() (r bool, exists bool) {
	v := m.has_changes
	if v == nil {
		return
	}
	return *v, true
}

// OldHasChanges returns the old "has_changes" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldHasChanges(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasChanges is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasChanges requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasChanges: %w", err)
	}
	return oldValue.HasChanges, nil
}

// ResetHasChanges resets all changes to the "has_changes" field.
func (m *ExecutionMutation) ResetHasChanges() {
	m.has_changes = nil
}

// SetRelevanceScore sets the "relevance_score" field.
func (m *ExecutionMutation) SetRelevanceScore(f float64) {
	m.relevance_score = &f
	m.addrelevance_score = nil
}

// RelevanceScore returns the value of the "relevance_score" field in the mutation.
func (m *ExecutionMutation) RelevanceScore() (r float64, exists bool) {
	v := m.relevance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevanceScore returns the old "relevance_score" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldRelevanceScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevanceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevanceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevanceScore: %w", err)
	}
	return oldValue.RelevanceScore, nil
}

// AddRelevanceScore adds f to the "relevance_score" field.
func (m *ExecutionMutation) AddRelevanceScore(f float64) {
	if m.addrelevance_score != nil {
		*m.addrelevance_score += f
	} else {
		m.addrelevance_score = &f
	}
}

// AddedRelevanceScore returns the value that was added to the "relevance_score" field in this mutation.
func (m *ExecutionMutation) AddedRelevanceScore() (r float64, exists bool) {
	v := m.addrelevance_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearRelevanceScore clears the value of the "relevance_score" field.
func (m *ExecutionMutation) ClearRelevanceScore() {
	m.relevance_score = nil
	m.addrelevance_score = nil
	m.clearedFields[execution.FieldRelevanceScore] = struct{}{}
}

// RelevanceScoreCleared returns if the "relevance_score" field was cleared in this mutation.
func (m *ExecutionMutation) RelevanceScoreCleared() bool {
	_, ok := m.clearedFields[execution.FieldRelevanceScore]
	return ok
}

// ResetRelevanceScore resets all changes to the "relevance_score" field.
func (m *ExecutionMutation) ResetRelevanceScore() {
	m.relevance_score = nil
	m.addrelevance_score = nil
	delete(m.clearedFields, execution.FieldRelevanceScore)
}

// SetRelevanceReason sets the "relevance_reason" field.
func (m *ExecutionMutation) SetRelevanceReason(s string) {
	m.relevance_reason = &s
}

// RelevanceReason returns the value of the "relevance_reason" field in the mutation.
func (m *ExecutionMutation) RelevanceReason() (r string, exists bool) {
	v := m.relevance_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevanceReason returns the old "relevance_reason" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldRelevanceReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevanceReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevanceReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevanceReason: %w", err)
	}
	return oldValue.RelevanceReason, nil
}

// ClearRelevanceReason clears the value of the "relevance_reason" field.
func (m *ExecutionMutation) ClearRelevanceReason() {
	m.relevance_reason = nil
	m.clearedFields[execution.FieldRelevanceReason] = struct{}{}
}

// RelevanceReasonCleared returns if the "relevance_reason" field was cleared in this mutation.
func (m *ExecutionMutation) RelevanceReasonCleared() bool {
	_, ok := m.clearedFields[execution.FieldRelevanceReason]
	return ok
}

// ResetRelevanceReason resets all changes to the "relevance_reason" field.
func (m *ExecutionMutation) ResetRelevanceReason() {
	m.relevance_reason = nil
	delete(m.clearedFields, execution.FieldRelevanceReason)
}

// SetSkipReason sets the "skip_reason" field.
func (m *ExecutionMutation) SetSkipReason(s string) {
	m.skip_reason = &s
}

// SkipReason returns the value of the "skip_reason" field in the mutation.
func (m *ExecutionMutation) SkipReason() (r string, exists bool) {
	v := m.skip_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipReason returns the old "skip_reason" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldSkipReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipReason: %w", err)
	}
	return oldValue.SkipReason, nil
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (m *ExecutionMutation) ClearSkipReason() {
	m.skip_reason = nil
	m.clearedFields[execution.FieldSkipReason] = struct{}{}
}

// SkipReasonCleared returns if the "skip_reason" field was cleared in this mutation.
func (m *ExecutionMutation) SkipReasonCleared() bool {
	_, ok := m.clearedFields[execution.FieldSkipReason]
	return ok
}

// ResetSkipReason resets all changes to the "skip_reason" field.
func (m *ExecutionMutation) ResetSkipReason() {
	m.skip_reason = nil
	delete(m.clearedFields, execution.FieldSkipReason)
}

// SetExpansionSuggestions sets the "expansion_suggestions" field.
func (m *ExecutionMutation) SetExpansionSuggestions(value []map[string]interface{}) {
	m.expansion_suggestions = &value
	m.appendexpansion_suggestions = nil
}

// ExpansionSuggestions returns the value of the "expansion_suggestions" field in the mutation.
func (m *ExecutionMutation) ExpansionSuggestions() (r []map[string]interface{}, exists bool) {
	v := m.expansion_suggestions
	if v == nil {
		return
	}
	return *v, true
}

// OldExpansionSuggestions returns the old "expansion_suggestions" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldExpansionSuggestions(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpansionSuggestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpansionSuggestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpansionSuggestions: %w", err)
	}
	return oldValue.ExpansionSuggestions, nil
}

// AppendExpansionSuggestions adds value to the "expansion_suggestions" field.
func (m *ExecutionMutation) AppendExpansionSuggestions(value []map[string]interface{}) {
	m.appendexpansion_suggestions = append(m.appendexpansion_suggestions, value...)
}

// AppendedExpansionSuggestions returns the list of values that were appended to the "expansion_suggestions" field in this mutation.
func (m *ExecutionMutation) AppendedExpansionSuggestions() ([]map[string]interface{}, bool) {
	if len(m.appendexpansion_suggestions) == 0 {
		return nil, false
	}
	return m.appendexpansion_suggestions, true
}

// ClearExpansionSuggestions clears the value of the "expansion_suggestions" field.
func (m *ExecutionMutation) ClearExpansionSuggestions() {
	m.expansion_suggestions = nil
	m.appendexpansion_suggestions = nil
	m.clearedFields[execution.FieldExpansionSuggestions] = struct{}{}
}

// ExpansionSuggestionsCleared returns if the "expansion_suggestions" field was cleared in this mutation.
func (m *ExecutionMutation) ExpansionSuggestionsCleared() bool {
	_, ok := m.clearedFields[execution.FieldExpansionSuggestions]
	return ok
}

// ResetExpansionSuggestions resets all changes to the "expansion_suggestions" field.
func (m *ExecutionMutation) ResetExpansionSuggestions() {
	m.expansion_suggestions = nil
	m.appendexpansion_suggestions = nil
	delete(m.clearedFields, execution.FieldExpansionSuggestions)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[execution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[execution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, execution.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *ExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[execution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[execution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, execution.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *ExecutionMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ExecutionMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ExecutionMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ExecutionMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *ExecutionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[execution.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *ExecutionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[execution.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ExecutionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, execution.FieldDurationMs)
}

// ClearSummary clears the "summary" edge to the Summary entity.
func (m *ExecutionMutation) ClearSummary() {
	m.clearedsummary = true
	m.clearedFields[execution.FieldSummaryID] = struct{}{}
}

// SummaryCleared reports if the "summary" edge to the Summary entity was cleared.
func (m *ExecutionMutation) SummaryCleared() bool {
	return m.clearedsummary
}

// SummaryIDs returns the "summary" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SummaryID instead. It exists only for internal usage by the builders.
func (m *ExecutionMutation) SummaryIDs() (ids []string) {
	if id := m.summary; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSummary resets all changes to the "summary" edge.
func (m *ExecutionMutation) ResetSummary() {
	m.summary = nil
	m.clearedsummary = false
}

// Where appends a list predicates to the ExecutionMutation builder.
func (m *ExecutionMutation) Where(ps ...predicate.Execution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Execution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Execution).
func (m *ExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.summary != nil {
		fields = append(fields, execution.FieldSummaryID)
	}
	if m.status != nil {
		fields = append(fields, execution.FieldStatus)
	}
	if m.triggered_by != nil {
		fields = append(fields, execution.FieldTriggeredBy)
	}
	if m.trigger_details != nil {
		fields = append(fields, execution.FieldTriggerDetails)
	}
	if m.cached_data != nil {
		fields = append(fields, execution.FieldCachedData)
	}
	if m.data_hash != nil {
		fields = append(fields, execution.FieldDataHash)
	}
	if m.has_changes != nil {
		fields = append(fields, execution.FieldHasChanges)
	}
	if m.relevance_score != nil {
		fields = append(fields, execution.FieldRelevanceScore)
	}
	if m.relevance_reason != nil {
		fields = append(fields, execution.FieldRelevanceReason)
	}
	if m.skip_reason != nil {
		fields = append(fields, execution.FieldSkipReason)
	}
	if m.expansion_suggestions != nil {
		fields = append(fields, execution.FieldExpansionSuggestions)
	}
	if m.error_message != nil {
		fields = append(fields, execution.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, execution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, execution.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, execution.FieldDurationMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case execution.FieldSummaryID:
		return m.SummaryID()
	case execution.FieldStatus:
		return m.Status()
	case execution.FieldTriggeredBy:
		return m.TriggeredBy()
	case execution.FieldTriggerDetails:
		return m.TriggerDetails()
	case execution.FieldCachedData:
		return m.CachedData()
	case execution.FieldDataHash:
		return m.DataHash()
	case execution.FieldHasChanges:
		return m.HasChanges()
	case execution.FieldRelevanceScore:
		return m.RelevanceScore()
	case execution.FieldRelevanceReason:
		return m.RelevanceReason()
	case execution.FieldSkipReason:
		return m.SkipReason()
	case execution.FieldExpansionSuggestions:
		return m.ExpansionSuggestions()
	case execution.FieldErrorMessage:
		return m.ErrorMessage()
	case execution.FieldStartedAt:
		return m.StartedAt()
	case execution.FieldCompletedAt:
		return m.CompletedAt()
	case execution.FieldDurationMs:
		return m.DurationMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case execution.FieldSummaryID:
		return m.OldSummaryID(ctx)
	case execution.FieldStatus:
		return m.OldStatus(ctx)
	case execution.FieldTriggeredBy:
		return m.OldTriggeredBy(ctx)
	case execution.FieldTriggerDetails:
		return m.OldTriggerDetails(ctx)
	case execution.FieldCachedData:
		return m.OldCachedData(ctx)
	case execution.FieldDataHash:
		return m.OldDataHash(ctx)
	case execution.FieldHasChanges:
		return m.OldHasChanges(ctx)
	case execution.FieldRelevanceScore:
		return m.OldRelevanceScore(ctx)
	case execution.FieldRelevanceReason:
		return m.OldRelevanceReason(ctx)
	case execution.FieldSkipReason:
		return m.OldSkipReason(ctx)
	case execution.FieldExpansionSuggestions:
		return m.OldExpansionSuggestions(ctx)
	case execution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case execution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case execution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case execution.FieldDurationMs:
		return m.OldDurationMs(ctx)
	}
	return nil, fmt.Errorf("unknown Execution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case execution.FieldSummaryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryID(v)
		return nil
	case execution.FieldStatus:
		v, ok := value.(execution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case execution.FieldTriggeredBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredBy(v)
		return nil
	case execution.FieldTriggerDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerDetails(v)
		return nil
	case execution.FieldCachedData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCachedData(v)
		return nil
	case execution.FieldDataHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataHash(v)
		return nil
	case execution.FieldHasChanges:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasChanges(v)
		return nil
	case execution.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevanceScore(v)
		return nil
	case execution.FieldRelevanceReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevanceReason(v)
		return nil
	case execution.FieldSkipReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipReason(v)
		return nil
	case execution.FieldExpansionSuggestions:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpansionSuggestions(v)
		return nil
	case execution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case execution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case execution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case execution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown Execution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addrelevance_score != nil {
		fields = append(fields, execution.FieldRelevanceScore)
	}
	if m.addduration_ms != nil {
		fields = append(fields, execution.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case execution.FieldRelevanceScore:
		return m.AddedRelevanceScore()
	case execution.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case execution.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevanceScore(v)
		return nil
	case execution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown Execution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(execution.FieldTriggerDetails) {
		fields = append(fields, execution.FieldTriggerDetails)
	}
	if m.FieldCleared(execution.FieldCachedData) {
		fields = append(fields, execution.FieldCachedData)
	}
	if m.FieldCleared(execution.FieldDataHash) {
		fields = append(fields, execution.FieldDataHash)
	}
	if m.FieldCleared(execution.FieldRelevanceScore) {
		fields = append(fields, execution.FieldRelevanceScore)
	}
	if m.FieldCleared(execution.FieldRelevanceReason) {
		fields = append(fields, execution.FieldRelevanceReason)
	}
	if m.FieldCleared(execution.FieldSkipReason) {
		fields = append(fields, execution.FieldSkipReason)
	}
	if m.FieldCleared(execution.FieldExpansionSuggestions) {
		fields = append(fields, execution.FieldExpansionSuggestions)
	}
	if m.FieldCleared(execution.FieldErrorMessage) {
		fields = append(fields, execution.FieldErrorMessage)
	}
	if m.FieldCleared(execution.FieldCompletedAt) {
		fields = append(fields, execution.FieldCompletedAt)
	}
	if m.FieldCleared(execution.FieldDurationMs) {
		fields = append(fields, execution.FieldDurationMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionMutation) ClearField(name string) error {
	switch name {
	case execution.FieldTriggerDetails:
		m.ClearTriggerDetails()
		return nil
	case execution.FieldCachedData:
		m.ClearCachedData()
		return nil
	case execution.FieldDataHash:
		m.ClearDataHash()
		return nil
	case execution.FieldRelevanceScore:
		m.ClearRelevanceScore()
		return nil
	case execution.FieldRelevanceReason:
		m.ClearRelevanceReason()
		return nil
	case execution.FieldSkipReason:
		m.ClearSkipReason()
		return nil
	case execution.FieldExpansionSuggestions:
		m.ClearExpansionSuggestions()
		return nil
	case execution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case execution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case execution.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	}
	return fmt.Errorf("unknown Execution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionMutation) ResetField(name string) error {
	switch name {
	case execution.FieldSummaryID:
		m.ResetSummaryID()
		return nil
	case execution.FieldStatus:
		m.ResetStatus()
		return nil
	case execution.FieldTriggeredBy:
		m.ResetTriggeredBy()
		return nil
	case execution.FieldTriggerDetails:
		m.ResetTriggerDetails()
		return nil
	case execution.FieldCachedData:
		m.ResetCachedData()
		return nil
	case execution.FieldDataHash:
		m.ResetDataHash()
		return nil
	case execution.FieldHasChanges:
		m.ResetHasChanges()
		return nil
	case execution.FieldRelevanceScore:
		m.ResetRelevanceScore()
		return nil
	case execution.FieldRelevanceReason:
		m.ResetRelevanceReason()
		return nil
	case execution.FieldSkipReason:
		m.ResetSkipReason()
		return nil
	case execution.FieldExpansionSuggestions:
		m.ResetExpansionSuggestions()
		return nil
	case execution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case execution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case execution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case execution.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	}
	return fmt.Errorf("unknown Execution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.summary != nil {
		edges = append(edges, execution.EdgeSummary)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case execution.EdgeSummary:
		if id := m.summary; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsummary {
		edges = append(edges, execution.EdgeSummary)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case execution.EdgeSummary:
		return m.clearedsummary
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionMutation) ClearEdge(name string) error {
	switch name {
	case execution.EdgeSummary:
		m.ClearSummary()
		return nil
	}
	return fmt.Errorf("unknown Execution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionMutation) ResetEdge(name string) error {
	switch name {
	case execution.EdgeSummary:
		m.ResetSummary()
		return nil
	}
	return fmt.Errorf("unknown Execution edge %s", name)
}

// FacetTypeMutation represents an operation that mutates the FacetType nodes in the graph.
type FacetTypeMutation struct {
	config
	op            Op
	typ           string
	id            *string
	slug          *string
	name          *string
	value_kind    *facettype.ValueKind
	clearedFields map[string]struct{}
	values        map[string]struct{}
	removedvalues map[string]struct{}
	clearedvalues bool
	done          bool
	oldValue      func(context.Context) (*FacetType, error)
	predicates    []predicate.FacetType
}

var _ ent.Mutation = (*FacetTypeMutation)(nil)

// facettypeOption allows management of the mutation configuration using functional options.
type facettypeOption func(*FacetTypeMutation)

// newFacetTypeMutation creates new mutation for the FacetType entity.
func newFacetTypeMutation(c config, op Op, opts ...facettypeOption) *FacetTypeMutation {
	m := &FacetTypeMutation{
		config:        c,
		op:            op,
		typ:           TypeFacetType,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFacetTypeID sets the ID field of the mutation.
func withFacetTypeID(id string) facettypeOption {
	return func(m *FacetTypeMutation) {
		var (
			err   error
			once  sync.Once
			value *FacetType
		)
		m.oldValue = func(ctx context.Context) (*FacetType, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FacetType.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFacetType sets the old FacetType of the mutation.
func withFacetType(node *FacetType) facettypeOption {
	return func(m *FacetTypeMutation) {
		m.oldValue = func(context.Context) (*FacetType, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FacetTypeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FacetTypeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FacetType entities.
func (m *FacetTypeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FacetTypeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FacetTypeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FacetType.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSlug sets the "slug" field.
func (m *FacetTypeMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *FacetTypeMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the FacetType entity.
// If the FacetType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacetTypeMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *FacetTypeMutation) ResetSlug() {
	m.slug = nil
}

// SetName sets the "name" field.
func (m *FacetTypeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FacetTypeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the FacetType entity.
// If the FacetType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacetTypeMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FacetTypeMutation) ResetName() {
	m.name = nil
}

// SetValueKind sets the "value_kind" field.
func (m *FacetTypeMutation) SetValueKind(fk facettype.ValueKind) {
	m.value_kind = &fk
}

// ValueKind returns the value of the "value_kind" field in the mutation.
func (m *FacetTypeMutation) ValueKind() (r facettype.ValueKind, exists bool) {
	v := m.value_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldValueKind returns the old "value_kind" field's value of the FacetType entity.
// If the FacetType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacetTypeMutation) OldValueKind(ctx context.Context) (v facettype.ValueKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueKind: %w", err)
	}
	return oldValue.ValueKind, nil
}

// ResetValueKind resets all changes to the "value_kind" field.
func (m *FacetTypeMutation) ResetValueKind() {
	m.value_kind = nil
}

// AddValueIDs adds the "values" edge to the FacetValue entity by ids.
func (m *FacetTypeMutation) AddValueIDs(ids ...string) {
	if m.values == nil {
		m.values = make(map[string]struct{})
	}
	for i := range ids {
		m.values[ids[i]] = struct{}{}
	}
}

// ClearValues clears the "values" edge to the FacetValue entity.
func (m *FacetTypeMutation) ClearValues() {
	m.clearedvalues = true
}

// ValuesCleared reports if the "values" edge to the FacetValue entity was cleared.
func (m *FacetTypeMutation) ValuesCleared() bool {
	return m.clearedvalues
}

// RemoveValueIDs removes the "values" edge to the FacetValue entity by IDs.
func (m *FacetTypeMutation) RemoveValueIDs(ids ...string) {
	if m.removedvalues == nil {
		m.removedvalues = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.values, ids[i])
		m.removedvalues[ids[i]] = struct{}{}
	}
}

// RemovedValues returns the removed IDs of the "values" edge to the FacetValue entity.
func (m *FacetTypeMutation) RemovedValuesIDs() (ids []string) {
	for id := range m.removedvalues {
		ids = append(ids, id)
	}
	return
}

// ValuesIDs returns the "values" edge IDs in the mutation.
func (m *FacetTypeMutation) ValuesIDs() (ids []string) {
	for id := range m.values {
		ids = append(ids, id)
	}
	return
}

// ResetValues resets all changes to the "values" edge.
func (m *FacetTypeMutation) ResetValues() {
	m.values = nil
	m.clearedvalues = false
	m.removedvalues = nil
}

// Where appends a list predicates to the FacetTypeMutation builder.
func (m *FacetTypeMutation) Where(ps ...predicate.FacetType) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FacetTypeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FacetTypeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FacetType, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FacetTypeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FacetTypeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FacetType).
func (m *FacetTypeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FacetTypeMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.slug != nil {
		fields = append(fields, facettype.FieldSlug)
	}
	if m.name != nil {
		fields = append(fields, facettype.FieldName)
	}
	if m.value_kind != nil {
		fields = append(fields, facettype.FieldValueKind)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FacetTypeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case facettype.FieldSlug:
		return m.Slug()
	case facettype.FieldName:
		return m.Name()
	case facettype.FieldValueKind:
		return m.ValueKind()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FacetTypeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case facettype.FieldSlug:
		return m.OldSlug(ctx)
	case facettype.FieldName:
		return m.OldName(ctx)
	case facettype.FieldValueKind:
		return m.OldValueKind(ctx)
	}
	return nil, fmt.Errorf("unknown FacetType field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FacetTypeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case facettype.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case facettype.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case facettype.FieldValueKind:
		v, ok := value.(facettype.ValueKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueKind(v)
		return nil
	}
	return fmt.Errorf("unknown FacetType field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FacetTypeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FacetTypeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FacetTypeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FacetType numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FacetTypeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FacetTypeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FacetTypeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FacetType nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FacetTypeMutation) ResetField(name string) error {
	switch name {
	case facettype.FieldSlug:
		m.ResetSlug()
		return nil
	case facettype.FieldName:
		m.ResetName()
		return nil
	case facettype.FieldValueKind:
		m.ResetValueKind()
		return nil
	}
	return fmt.Errorf("unknown FacetType field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FacetTypeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.values != nil {
		edges = append(edges, facettype.EdgeValues)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FacetTypeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case facettype.EdgeValues:
		ids := make([]ent.Value, 0, len(m.values))
		for id := range m.values {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FacetTypeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedvalues != nil {
		edges = append(edges, facettype.EdgeValues)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FacetTypeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case facettype.EdgeValues:
		ids := make([]ent.Value, 0, len(m.removedvalues))
		for id := range m.removedvalues {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FacetTypeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedvalues {
		edges = append(edges, facettype.EdgeValues)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FacetTypeMutation) EdgeCleared(name string) bool {
	switch name {
	case facettype.EdgeValues:
		return m.clearedvalues
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FacetTypeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown FacetType unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FacetTypeMutation) ResetEdge(name string) error {
	switch name {
	case facettype.EdgeValues:
		m.ResetValues()
		return nil
	}
	return fmt.Errorf("unknown FacetType edge %s", name)
}

// FacetValueMutation represents an operation that mutates the FacetValue nodes in the graph.
type FacetValueMutation struct {
	config
	op                Op
	typ               string
	id                *string
	value             *map[string]interface{}
	confidence        *float64
	addconfidence     *float64
	source_url        *string
	extracted_at      *time.Time
	clearedFields     map[string]struct{}
	entity            *string
	clearedentity     bool
	facet_type        *string
	clearedfacet_type bool
	done              bool
	oldValue          func(context.Context) (*FacetValue, error)
	predicates        []predicate.FacetValue
}

var _ ent.Mutation = (*FacetValueMutation)(nil)

// facetvalueOption allows management of the mutation configuration using functional options.
type facetvalueOption func(*FacetValueMutation)

// newFacetValueMutation creates new mutation for the FacetValue entity.
func newFacetValueMutation(c config, op Op, opts ...facetvalueOption) *FacetValueMutation {
	m := &FacetValueMutation{
		config:        c,
		op:            op,
		typ:           TypeFacetValue,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFacetValueID sets the ID field of the mutation.
func withFacetValueID(id string) facetvalueOption {
	return func(m *FacetValueMutation) {
		var (
			err   error
			once  sync.Once
			value *FacetValue
		)
		m.oldValue = func(ctx context.Context) (*FacetValue, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FacetValue.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFacetValue sets the old FacetValue of the mutation.
func withFacetValue(node *FacetValue) facetvalueOption {
	return func(m *FacetValueMutation) {
		m.oldValue = func(context.Context) (*FacetValue, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FacetValueMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FacetValueMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FacetValue entities.
func (m *FacetValueMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FacetValueMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FacetValueMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FacetValue.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityID sets the "entity_id" field.
func (m *FacetValueMutation) SetEntityID(s string) {
	m.entity = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *FacetValueMutation) EntityID() (r string, exists bool) {
	v := m.entity
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the FacetValue entity.
// If the FacetValue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacetValueMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *FacetValueMutation) ResetEntityID() {
	m.entity = nil
}

// SetFacetTypeID sets the "facet_type_id" field.
func (m *FacetValueMutation) SetFacetTypeID(s string) {
	m.facet_type = &s
}

// FacetTypeID returns the value of the "facet_type_id" field in the mutation.
func (m *FacetValueMutation) FacetTypeID() (r string, exists bool) {
	v := m.facet_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFacetTypeID returns the old "facet_type_id" field's value of the FacetValue entity.
// If the FacetValue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacetValueMutation) OldFacetTypeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacetTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacetTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacetTypeID: %w", err)
	}
	return oldValue.FacetTypeID, nil
}

// ResetFacetTypeID resets all changes to the "facet_type_id" field.
func (m *FacetValueMutation) ResetFacetTypeID() {
	m.facet_type = nil
}

// SetValue sets the "value" field.
func (m *FacetValueMutation) SetValue(value map[string]interface{}) {
	m.value = &value
}

// Value returns the value of the "value" field in the mutation.
func (m *FacetValueMutation) Value() (r map[string]interface{}, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the FacetValue entity.
// If the FacetValue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacetValueMutation) OldValue(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *FacetValueMutation) ResetValue() {
	m.value = nil
}

// SetConfidence sets the "confidence" field.
func (m *FacetValueMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *FacetValueMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the FacetValue entity.
// If the FacetValue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacetValueMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *FacetValueMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *FacetValueMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *FacetValueMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSourceURL sets the "source_url" field.
func (m *FacetValueMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *FacetValueMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the FacetValue entity.
// If the FacetValue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacetValueMutation) OldSourceURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ClearSourceURL clears the value of the "source_url" field.
func (m *FacetValueMutation) ClearSourceURL() {
	m.source_url = nil
	m.clearedFields[facetvalue.FieldSourceURL] = struct{}{}
}

// SourceURLCleared returns if the "source_url" field was cleared in this mutation.
func (m *FacetValueMutation) SourceURLCleared() bool {
	_, ok := m.clearedFields[facetvalue.FieldSourceURL]
	return ok
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *FacetValueMutation) ResetSourceURL() {
	m.source_url = nil
	delete(m.clearedFields, facetvalue.FieldSourceURL)
}

// SetExtractedAt sets the "extracted_at" field.
func (m *FacetValueMutation) SetExtractedAt(t time.Time) {
	m.extracted_at = &t
}

// ExtractedAt returns the value of the "extracted_at" field in the mutation.
func (m *FacetValueMutation) ExtractedAt() (r time.Time, exists bool) {
	v := m.extracted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedAt returns the old "extracted_at" field's value of the FacetValue entity.
// If the FacetValue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacetValueMutation) OldExtractedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedAt: %w", err)
	}
	return oldValue.ExtractedAt, nil
}

// ResetExtractedAt resets all changes to the "extracted_at" field.
func (m *FacetValueMutation) ResetExtractedAt() {
	m.extracted_at = nil
}

// ClearEntity clears the "entity" edge to the Entity entity.
func (m *FacetValueMutation) ClearEntity() {
	m.clearedentity = true
	m.clearedFields[facetvalue.FieldEntityID] = struct{}{}
}

// EntityCleared reports if the "entity" edge to the Entity entity was cleared.
func (m *FacetValueMutation) EntityCleared() bool {
	return m.clearedentity
}

// EntityIDs returns the "entity" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EntityID instead. It exists only for internal usage by the builders.
func (m *FacetValueMutation) EntityIDs() (ids []string) {
	if id := m.entity; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEntity resets all changes to the "entity" edge.
func (m *FacetValueMutation) ResetEntity() {
	m.entity = nil
	m.clearedentity = false
}

// ClearFacetType clears the "facet_type" edge to the FacetType entity.
func (m *FacetValueMutation) ClearFacetType() {
	m.clearedfacet_type = true
	m.clearedFields[facetvalue.FieldFacetTypeID] = struct{}{}
}

// FacetTypeCleared reports if the "facet_type" edge to the FacetType entity was cleared.
func (m *FacetValueMutation) FacetTypeCleared() bool {
	return m.clearedfacet_type
}

// FacetTypeIDs returns the "facet_type" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FacetTypeID instead. It exists only for internal usage by the builders.
func (m *FacetValueMutation) FacetTypeIDs() (ids []string) {
	if id := m.facet_type; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFacetType resets all changes to the "facet_type" edge.
func (m *FacetValueMutation) ResetFacetType() {
	m.facet_type = nil
	m.clearedfacet_type = false
}

// Where appends a list predicates to the FacetValueMutation builder.
func (m *FacetValueMutation) Where(ps ...predicate.FacetValue) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FacetValueMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FacetValueMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FacetValue, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FacetValueMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FacetValueMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FacetValue).
func (m *FacetValueMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FacetValueMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.entity != nil {
		fields = append(fields, facetvalue.FieldEntityID)
	}
	if m.facet_type != nil {
		fields = append(fields, facetvalue.FieldFacetTypeID)
	}
	if m.value != nil {
		fields = append(fields, facetvalue.FieldValue)
	}
	if m.confidence != nil {
		fields = append(fields, facetvalue.FieldConfidence)
	}
	if m.source_url != nil {
		fields = append(fields, facetvalue.FieldSourceURL)
	}
	if m.extracted_at != nil {
		fields = append(fields, facetvalue.FieldExtractedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FacetValueMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case facetvalue.FieldEntityID:
		return m.EntityID()
	case facetvalue.FieldFacetTypeID:
		return m.FacetTypeID()
	case facetvalue.FieldValue:
		return m.Value()
	case facetvalue.FieldConfidence:
		return m.Confidence()
	case facetvalue.FieldSourceURL:
		return m.SourceURL()
	case facetvalue.FieldExtractedAt:
		return m.ExtractedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FacetValueMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case facetvalue.FieldEntityID:
		return m.OldEntityID(ctx)
	case facetvalue.FieldFacetTypeID:
		return m.OldFacetTypeID(ctx)
	case facetvalue.FieldValue:
		return m.OldValue(ctx)
	case facetvalue.FieldConfidence:
		return m.OldConfidence(ctx)
	case facetvalue.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case facetvalue.FieldExtractedAt:
		return m.OldExtractedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FacetValue field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FacetValueMutation) SetField(name string, value ent.Value) error {
	switch name {
	case facetvalue.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case facetvalue.FieldFacetTypeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacetTypeID(v)
		return nil
	case facetvalue.FieldValue:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case facetvalue.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case facetvalue.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case facetvalue.FieldExtractedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FacetValue field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FacetValueMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, facetvalue.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FacetValueMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case facetvalue.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FacetValueMutation) AddField(name string, value ent.Value) error {
	switch name {
	case facetvalue.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown FacetValue numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FacetValueMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(facetvalue.FieldSourceURL) {
		fields = append(fields, facetvalue.FieldSourceURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FacetValueMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FacetValueMutation) ClearField(name string) error {
	switch name {
	case facetvalue.FieldSourceURL:
		m.ClearSourceURL()
		return nil
	}
	return fmt.Errorf("unknown FacetValue nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FacetValueMutation) ResetField(name string) error {
	switch name {
	case facetvalue.FieldEntityID:
		m.ResetEntityID()
		return nil
	case facetvalue.FieldFacetTypeID:
		m.ResetFacetTypeID()
		return nil
	case facetvalue.FieldValue:
		m.ResetValue()
		return nil
	case facetvalue.FieldConfidence:
		m.ResetConfidence()
		return nil
	case facetvalue.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case facetvalue.FieldExtractedAt:
		m.ResetExtractedAt()
		return nil
	}
	return fmt.Errorf("unknown FacetValue field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FacetValueMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.entity != nil {
		edges = append(edges, facetvalue.EdgeEntity)
	}
	if m.facet_type != nil {
		edges = append(edges, facetvalue.EdgeFacetType)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FacetValueMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case facetvalue.EdgeEntity:
		if id := m.entity; id != nil {
			return []ent.Value{*id}
		}
	case facetvalue.EdgeFacetType:
		if id := m.facet_type; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FacetValueMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FacetValueMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FacetValueMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedentity {
		edges = append(edges, facetvalue.EdgeEntity)
	}
	if m.clearedfacet_type {
		edges = append(edges, facetvalue.EdgeFacetType)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FacetValueMutation) EdgeCleared(name string) bool {
	switch name {
	case facetvalue.EdgeEntity:
		return m.clearedentity
	case facetvalue.EdgeFacetType:
		return m.clearedfacet_type
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FacetValueMutation) ClearEdge(name string) error {
	switch name {
	case facetvalue.EdgeEntity:
		m.ClearEntity()
		return nil
	case facetvalue.EdgeFacetType:
		m.ClearFacetType()
		return nil
	}
	return fmt.Errorf("unknown FacetValue unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FacetValueMutation) ResetEdge(name string) error {
	switch name {
	case facetvalue.EdgeEntity:
		m.ResetEntity()
		return nil
	case facetvalue.EdgeFacetType:
		m.ResetFacetType()
		return nil
	}
	return fmt.Errorf("unknown FacetValue edge %s", name)
}

// SummaryMutation represents an operation that mutates the Summary nodes in the graph.
type SummaryMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	owner_id                *string
	name                    *string
	prompt                  *string
	theme                   *string
	trigger_type            *summary.TriggerType
	cron_expression         *string
	next_run_at             *time.Time
	relevance_check_enabled *bool
	relevance_threshold     *float64
	addrelevance_threshold  *float64
	auto_expand_enabled     *bool
	last_data_hash          *string
	last_executed_at        *time.Time
	execution_count         *int
	addexecution_count      *int
	created_at              *time.Time
	updated_at              *time.Time
	deleted_at              *time.Time
	clearedFields           map[string]struct{}
	widgets                 map[string]struct{}
	removedwidgets          map[string]struct{}
	clearedwidgets          bool
	executions              map[string]struct{}
	removedexecutions       map[string]struct{}
	clearedexecutions       bool
	done                    bool
	oldValue                func(context.Context) (*Summary, error)
	predicates              []predicate.Summary
}

var _ ent.Mutation = (*SummaryMutation)(nil)

// summaryOption allows management of the mutation configuration using functional options.
type summaryOption func(*SummaryMutation)

// newSummaryMutation creates new mutation for the Summary entity.
func newSummaryMutation(c config, op Op, opts ...summaryOption) *SummaryMutation {
	m := &SummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSummaryID sets the ID field of the mutation.
func withSummaryID(id string) summaryOption {
	return func(m *SummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *Summary
		)
		m.oldValue = func(ctx context.Context) (*Summary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Summary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSummary sets the old Summary of the mutation.
func withSummary(node *Summary) summaryOption {
	return func(m *SummaryMutation) {
		m.oldValue = func(context.Context) (*Summary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Summary entities.
func (m *SummaryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SummaryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SummaryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Summary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *SummaryMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *SummaryMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *SummaryMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetName sets the "name" field.
func (m *SummaryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SummaryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SummaryMutation) ResetName() {
	m.name = nil
}

// SetPrompt sets the "prompt" field.
func (m *SummaryMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *SummaryMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ClearPrompt clears the value of the "prompt" field.
func (m *SummaryMutation) ClearPrompt() {
	m.prompt = nil
	m.clearedFields[summary.FieldPrompt] = struct{}{}
}

// PromptCleared returns if the "prompt" field was cleared in this mutation.
func (m *SummaryMutation) PromptCleared() bool {
	_, ok := m.clearedFields[summary.FieldPrompt]
	return ok
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *SummaryMutation) ResetPrompt() {
	m.prompt = nil
	delete(m.clearedFields, summary.FieldPrompt)
}

// SetTheme sets the "theme" field.
func (m *SummaryMutation) SetTheme(s string) {
	m.theme = &s
}

// Theme returns the value of the "theme" field in the mutation.
func (m *SummaryMutation) Theme() (r string, exists bool) {
	v := m.theme
	if v == nil {
		return
	}
	return *v, true
}

// OldTheme returns the old "theme" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldTheme(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTheme is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTheme requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTheme: %w", err)
	}
	return oldValue.Theme, nil
}

// ClearTheme clears the value of the "theme" field.
func (m *SummaryMutation) ClearTheme() {
	m.theme = nil
	m.clearedFields[summary.FieldTheme] = struct{}{}
}

// ThemeCleared returns if the "theme" field was cleared in this mutation.
func (m *SummaryMutation) ThemeCleared() bool {
	_, ok := m.clearedFields[summary.FieldTheme]
	return ok
}

// ResetTheme resets all changes to the "theme" field.
func (m *SummaryMutation) ResetTheme() {
	m.theme = nil
	delete(m.clearedFields, summary.FieldTheme)
}

// SetTriggerType sets the "trigger_type" field.
func (m *SummaryMutation) SetTriggerType(st summary.TriggerType) {
	m.trigger_type = &st
}

// TriggerType returns the value of the "trigger_type" field in the mutation.
func (m *SummaryMutation) TriggerType() (r summary.TriggerType, exists bool) {
	v := m.trigger_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerType returns the old "trigger_type" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldTriggerType(ctx context.Context) (v summary.TriggerType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerType: %w", err)
	}
	return oldValue.TriggerType, nil
}

// ResetTriggerType resets all changes to the "trigger_type" field.
func (m *SummaryMutation) ResetTriggerType() {
	m.trigger_type = nil
}

// SetCronExpression sets the "cron_expression" field.
func (m *SummaryMutation) SetCronExpression(s string) {
	m.cron_expression = &s
}

// CronExpression returns the value of the "cron_expression" field in the mutation.
func (m *SummaryMutation) CronExpression() (r string, exists bool) {
	v := m.cron_expression
	if v == nil {
		return
	}
	return *v, true
}

// OldCronExpression returns the old "cron_expression" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldCronExpression(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCronExpression is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCronExpression requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCronExpression: %w", err)
	}
	return oldValue.CronExpression, nil
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (m *SummaryMutation) ClearCronExpression() {
	m.cron_expression = nil
	m.clearedFields[summary.FieldCronExpression] = struct{}{}
}

// CronExpressionCleared returns if the "cron_expression" field was cleared in this mutation.
func (m *SummaryMutation) CronExpressionCleared() bool {
	_, ok := m.clearedFields[summary.FieldCronExpression]
	return ok
}

// ResetCronExpression resets all changes to the "cron_expression" field.
func (m *SummaryMutation) ResetCronExpression() {
	m.cron_expression = nil
	delete(m.clearedFields, summary.FieldCronExpression)
}

// SetNextRunAt sets the "next_run_at" field.
func (m *SummaryMutation) SetNextRunAt(t time.Time) {
	m.next_run_at = &t
}

// NextRunAt returns the value of the "next_run_at" field in the mutation.
func (m *SummaryMutation) NextRunAt() (r time.Time, exists bool) {
	v := m.next_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRunAt returns the old "next_run_at" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldNextRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRunAt: %w", err)
	}
	return oldValue.NextRunAt, nil
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (m *SummaryMutation) ClearNextRunAt() {
	m.next_run_at = nil
	m.clearedFields[summary.FieldNextRunAt] = struct{}{}
}

// NextRunAtCleared returns if the "next_run_at" field was cleared in this mutation.
func (m *SummaryMutation) NextRunAtCleared() bool {
	_, ok := m.clearedFields[summary.FieldNextRunAt]
	return ok
}

// ResetNextRunAt resets all changes to the "next_run_at" field.
func (m *SummaryMutation) ResetNextRunAt() {
	m.next_run_at = nil
	delete(m.clearedFields, summary.FieldNextRunAt)
}

// SetRelevanceCheckEnabled sets the "relevance_check_enabled" field.
func (m *SummaryMutation) SetRelevanceCheckEnabled(b bool) {
	m.relevance_check_enabled = &b
}

// RelevanceCheckEnabled returns the value of the "relevance_check_enabled" field in the mutation.
func (m *SummaryMutation) RelevanceCheckEnabled() (r bool, exists bool) {
	v := m.relevance_check_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevanceCheckEnabled returns the old "relevance_check_enabled" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldRelevanceCheckEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevanceCheckEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevanceCheckEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevanceCheckEnabled: %w", err)
	}
	return oldValue.RelevanceCheckEnabled, nil
}

// ResetRelevanceCheckEnabled resets all changes to the "relevance_check_enabled" field.
func (m *SummaryMutation) ResetRelevanceCheckEnabled() {
	m.relevance_check_enabled = nil
}

// SetRelevanceThreshold sets the "relevance_threshold" field.
func (m *SummaryMutation) SetRelevanceThreshold(f float64) {
	m.relevance_threshold = &f
	m.addrelevance_threshold = nil
}

// RelevanceThreshold returns the value of the "relevance_threshold" field in the mutation.
func (m *SummaryMutation) RelevanceThreshold() (r float64, exists bool) {
	v := m.relevance_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevanceThreshold returns the old "relevance_threshold" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldRelevanceThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevanceThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevanceThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevanceThreshold: %w", err)
	}
	return oldValue.RelevanceThreshold, nil
}

// AddRelevanceThreshold adds f to the "relevance_threshold" field.
func (m *SummaryMutation) AddRelevanceThreshold(f float64) {
	if m.addrelevance_threshold != nil {
		*m.addrelevance_threshold += f
	} else {
		m.addrelevance_threshold = &f
	}
}

// AddedRelevanceThreshold returns the value that was added to the "relevance_threshold" field in this mutation.
func (m *SummaryMutation) AddedRelevanceThreshold() (r float64, exists bool) {
	v := m.addrelevance_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevanceThreshold resets all changes to the "relevance_threshold" field.
func (m *SummaryMutation) ResetRelevanceThreshold() {
	m.relevance_threshold = nil
	m.addrelevance_threshold = nil
}

// SetAutoExpandEnabled sets the "auto_expand_enabled" field.
func (m *SummaryMutation) SetAutoExpandEnabled(b bool) {
	m.auto_expand_enabled = &b
}

// AutoExpandEnabled returns the value of the "auto_expand_enabled" field in the mutation.
func (m *SummaryMutation) AutoExpandEnabled() (r bool, exists bool) {
	v := m.auto_expand_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoExpandEnabled returns the old "auto_expand_enabled" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldAutoExpandEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoExpandEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoExpandEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoExpandEnabled: %w", err)
	}
	return oldValue.AutoExpandEnabled, nil
}

// ResetAutoExpandEnabled resets all changes to the "auto_expand_enabled" field.
func (m *SummaryMutation) ResetAutoExpandEnabled() {
	m.auto_expand_enabled = nil
}

// SetLastDataHash sets the "last_data_hash" field.
func (m *SummaryMutation) SetLastDataHash(s string) {
	m.last_data_hash = &s
}

// LastDataHash returns the value of the "last_data_hash" field in the mutation.
func (m *SummaryMutation) LastDataHash() (r string, exists bool) {
	v := m.last_data_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldLastDataHash returns the old "last_data_hash" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldLastDataHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastDataHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastDataHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastDataHash: %w", err)
	}
	return oldValue.LastDataHash, nil
}

// ClearLastDataHash clears the value of the "last_data_hash" field.
func (m *SummaryMutation) ClearLastDataHash() {
	m.last_data_hash = nil
	m.clearedFields[summary.FieldLastDataHash] = struct{}{}
}

// LastDataHashCleared returns if the "last_data_hash" field was cleared in this mutation.
func (m *SummaryMutation) LastDataHashCleared() bool {
	_, ok := m.clearedFields[summary.FieldLastDataHash]
	return ok
}

// ResetLastDataHash resets all changes to the "last_data_hash" field.
func (m *SummaryMutation) ResetLastDataHash() {
	m.last_data_hash = nil
	delete(m.clearedFields, summary.FieldLastDataHash)
}

// SetLastExecutedAt sets the "last_executed_at" field.
func (m *SummaryMutation) SetLastExecutedAt(t time.Time) {
	m.last_executed_at = &t
}

// LastExecutedAt returns the value of the "last_executed_at" field in the mutation.
func (m *SummaryMutation) LastExecutedAt() (r time.Time, exists bool) {
	v := m.last_executed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastExecutedAt returns the old "last_executed_at" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldLastExecutedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastExecutedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastExecutedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastExecutedAt: %w", err)
	}
	return oldValue.LastExecutedAt, nil
}

// ClearLastExecutedAt clears the value of the "last_executed_at" field.
func (m *SummaryMutation) ClearLastExecutedAt() {
	m.last_executed_at = nil
	m.clearedFields[summary.FieldLastExecutedAt] = struct{}{}
}

// LastExecutedAtCleared returns if the "last_executed_at" field was cleared in this mutation.
func (m *SummaryMutation) LastExecutedAtCleared() bool {
	_, ok := m.clearedFields[summary.FieldLastExecutedAt]
	return ok
}

// ResetLastExecutedAt resets all changes to the "last_executed_at" field.
func (m *SummaryMutation) ResetLastExecutedAt() {
	m.last_executed_at = nil
	delete(m.clearedFields, summary.FieldLastExecutedAt)
}

// SetExecutionCount sets the "execution_count" field.
func (m *SummaryMutation) SetExecutionCount(i int) {
	m.execution_count = &i
	m.addexecution_count = nil
}

// ExecutionCount returns the value of the "execution_count" field in the mutation.
func (m *SummaryMutation) ExecutionCount() (r int, exists bool) {
	v := m.execution_count
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionCount returns the old "execution_count" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldExecutionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionCount: %w", err)
	}
	return oldValue.ExecutionCount, nil
}

// AddExecutionCount adds i to the "execution_count" field.
func (m *SummaryMutation) AddExecutionCount(i int) {
	if m.addexecution_count != nil {
		*m.addexecution_count += i
	} else {
		m.addexecution_count = &i
	}
}

// AddedExecutionCount returns the value that was added to the "execution_count" field in this mutation.
func (m *SummaryMutation) AddedExecutionCount() (r int, exists bool) {
	v := m.addexecution_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetExecutionCount resets all changes to the "execution_count" field.
func (m *SummaryMutation) ResetExecutionCount() {
	m.execution_count = nil
	m.addexecution_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SummaryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SummaryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SummaryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SummaryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SummaryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SummaryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *SummaryMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *SummaryMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *SummaryMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[summary.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *SummaryMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[summary.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *SummaryMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, summary.FieldDeletedAt)
}

// AddWidgetIDs adds the "widgets" edge to the Widget entity by ids.
func (m *SummaryMutation) AddWidgetIDs(ids ...string) {
	if m.widgets == nil {
		m.widgets = make(map[string]struct{})
	}
	for i := range ids {
		m.widgets[ids[i]] = struct{}{}
	}
}

// ClearWidgets clears the "widgets" edge to the Widget entity.
func (m *SummaryMutation) ClearWidgets() {
	m.clearedwidgets = true
}

// WidgetsCleared reports if the "widgets" edge to the Widget entity was cleared.
func (m *SummaryMutation) WidgetsCleared() bool {
	return m.clearedwidgets
}

// RemoveWidgetIDs removes the "widgets" edge to the Widget entity by IDs.
func (m *SummaryMutation) RemoveWidgetIDs(ids ...string) {
	if m.removedwidgets == nil {
		m.removedwidgets = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.widgets, ids[i])
		m.removedwidgets[ids[i]] = struct{}{}
	}
}

// RemovedWidgets returns the removed IDs of the "widgets" edge to the Widget entity.
func (m *SummaryMutation) RemovedWidgetsIDs() (ids []string) {
	for id := range m.removedwidgets {
		ids = append(ids, id)
	}
	return
}

// WidgetsIDs returns the "widgets" edge IDs in the mutation.
func (m *SummaryMutation) WidgetsIDs() (ids []string) {
	for id := range m.widgets {
		ids = append(ids, id)
	}
	return
}

// ResetWidgets resets all changes to the "widgets" edge.
func (m *SummaryMutation) ResetWidgets() {
	m.widgets = nil
	m.clearedwidgets = false
	m.removedwidgets = nil
}

// AddExecutionIDs adds the "executions" edge to the Execution entity by ids.
func (m *SummaryMutation) AddExecutionIDs(ids ...string) {
	if m.executions == nil {
		m.executions = make(map[string]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the Execution entity.
func (m *SummaryMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the Execution entity was cleared.
func (m *SummaryMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the Execution entity by IDs.
func (m *SummaryMutation) RemoveExecutionIDs(ids ...string) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the Execution entity.
func (m *SummaryMutation) RemovedExecutionsIDs() (ids []string) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *SummaryMutation) ExecutionsIDs() (ids []string) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *SummaryMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// Where appends a list predicates to the SummaryMutation builder.
func (m *SummaryMutation) Where(ps ...predicate.Summary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Summary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Summary).
func (m *SummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SummaryMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.owner_id != nil {
		fields = append(fields, summary.FieldOwnerID)
	}
	if m.name != nil {
		fields = append(fields, summary.FieldName)
	}
	if m.prompt != nil {
		fields = append(fields, summary.FieldPrompt)
	}
	if m.theme != nil {
		fields = append(fields, summary.FieldTheme)
	}
	if m.trigger_type != nil {
		fields = append(fields, summary.FieldTriggerType)
	}
	if m.cron_expression != nil {
		fields = append(fields, summary.FieldCronExpression)
	}
	if m.next_run_at != nil {
		fields = append(fields, summary.FieldNextRunAt)
	}
	if m.relevance_check_enabled != nil {
		fields = append(fields, summary.FieldRelevanceCheckEnabled)
	}
	if m.relevance_threshold != nil {
		fields = append(fields, summary.FieldRelevanceThreshold)
	}
	if m.auto_expand_enabled != nil {
		fields = append(fields, summary.FieldAutoExpandEnabled)
	}
	if m.last_data_hash != nil {
		fields = append(fields, summary.FieldLastDataHash)
	}
	if m.last_executed_at != nil {
		fields = append(fields, summary.FieldLastExecutedAt)
	}
	if m.execution_count != nil {
		fields = append(fields, summary.FieldExecutionCount)
	}
	if m.created_at != nil {
		fields = append(fields, summary.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, summary.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, summary.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case summary.FieldOwnerID:
		return m.OwnerID()
	case summary.FieldName:
		return m.Name()
	case summary.FieldPrompt:
		return m.Prompt()
	case summary.FieldTheme:
		return m.Theme()
	case summary.FieldTriggerType:
		return m.TriggerType()
	case summary.FieldCronExpression:
		return m.CronExpression()
	case summary.FieldNextRunAt:
		return m.NextRunAt()
	case summary.FieldRelevanceCheckEnabled:
		return m.RelevanceCheckEnabled()
	case summary.FieldRelevanceThreshold:
		return m.RelevanceThreshold()
	case summary.FieldAutoExpandEnabled:
		return m.AutoExpandEnabled()
	case summary.FieldLastDataHash:
		return m.LastDataHash()
	case summary.FieldLastExecutedAt:
		return m.LastExecutedAt()
	case summary.FieldExecutionCount:
		return m.ExecutionCount()
	case summary.FieldCreatedAt:
		return m.CreatedAt()
	case summary.FieldUpdatedAt:
		return m.UpdatedAt()
	case summary.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case summary.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case summary.FieldName:
		return m.OldName(ctx)
	case summary.FieldPrompt:
		return m.OldPrompt(ctx)
	case summary.FieldTheme:
		return m.OldTheme(ctx)
	case summary.FieldTriggerType:
		return m.OldTriggerType(ctx)
	case summary.FieldCronExpression:
		return m.OldCronExpression(ctx)
	case summary.FieldNextRunAt:
		return m.OldNextRunAt(ctx)
	case summary.FieldRelevanceCheckEnabled:
		return m.OldRelevanceCheckEnabled(ctx)
	case summary.FieldRelevanceThreshold:
		return m.OldRelevanceThreshold(ctx)
	case summary.FieldAutoExpandEnabled:
		return m.OldAutoExpandEnabled(ctx)
	case summary.FieldLastDataHash:
		return m.OldLastDataHash(ctx)
	case summary.FieldLastExecutedAt:
		return m.OldLastExecutedAt(ctx)
	case summary.FieldExecutionCount:
		return m.OldExecutionCount(ctx)
	case summary.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case summary.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case summary.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Summary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case summary.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case summary.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case summary.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case summary.FieldTheme:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTheme(v)
		return nil
	case summary.FieldTriggerType:
		v, ok := value.(summary.TriggerType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerType(v)
		return nil
	case summary.FieldCronExpression:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCronExpression(v)
		return nil
	case summary.FieldNextRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRunAt(v)
		return nil
	case summary.FieldRelevanceCheckEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevanceCheckEnabled(v)
		return nil
	case summary.FieldRelevanceThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevanceThreshold(v)
		return nil
	case summary.FieldAutoExpandEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoExpandEnabled(v)
		return nil
	case summary.FieldLastDataHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastDataHash(v)
		return nil
	case summary.FieldLastExecutedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastExecutedAt(v)
		return nil
	case summary.FieldExecutionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionCount(v)
		return nil
	case summary.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case summary.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case summary.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Summary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SummaryMutation) AddedFields() []string {
	var fields []string
	if m.addrelevance_threshold != nil {
		fields = append(fields, summary.FieldRelevanceThreshold)
	}
	if m.addexecution_count != nil {
		fields = append(fields, summary.FieldExecutionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SummaryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case summary.FieldRelevanceThreshold:
		return m.AddedRelevanceThreshold()
	case summary.FieldExecutionCount:
		return m.AddedExecutionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case summary.FieldRelevanceThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevanceThreshold(v)
		return nil
	case summary.FieldExecutionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionCount(v)
		return nil
	}
	return fmt.Errorf("unknown Summary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SummaryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(summary.FieldPrompt) {
		fields = append(fields, summary.FieldPrompt)
	}
	if m.FieldCleared(summary.FieldTheme) {
		fields = append(fields, summary.FieldTheme)
	}
	if m.FieldCleared(summary.FieldCronExpression) {
		fields = append(fields, summary.FieldCronExpression)
	}
	if m.FieldCleared(summary.FieldNextRunAt) {
		fields = append(fields, summary.FieldNextRunAt)
	}
	if m.FieldCleared(summary.FieldLastDataHash) {
		fields = append(fields, summary.FieldLastDataHash)
	}
	if m.FieldCleared(summary.FieldLastExecutedAt) {
		fields = append(fields, summary.FieldLastExecutedAt)
	}
	if m.FieldCleared(summary.FieldDeletedAt) {
		fields = append(fields, summary.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SummaryMutation) ClearField(name string) error {
	switch name {
	case summary.FieldPrompt:
		m.ClearPrompt()
		return nil
	case summary.FieldTheme:
		m.ClearTheme()
		return nil
	case summary.FieldCronExpression:
		m.ClearCronExpression()
		return nil
	case summary.FieldNextRunAt:
		m.ClearNextRunAt()
		return nil
	case summary.FieldLastDataHash:
		m.ClearLastDataHash()
		return nil
	case summary.FieldLastExecutedAt:
		m.ClearLastExecutedAt()
		return nil
	case summary.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Summary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SummaryMutation) ResetField(name string) error {
	switch name {
	case summary.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case summary.FieldName:
		m.ResetName()
		return nil
	case summary.FieldPrompt:
		m.ResetPrompt()
		return nil
	case summary.FieldTheme:
		m.ResetTheme()
		return nil
	case summary.FieldTriggerType:
		m.ResetTriggerType()
		return nil
	case summary.FieldCronExpression:
		m.ResetCronExpression()
		return nil
	case summary.FieldNextRunAt:
		m.ResetNextRunAt()
		return nil
	case summary.FieldRelevanceCheckEnabled:
		m.ResetRelevanceCheckEnabled()
		return nil
	case summary.FieldRelevanceThreshold:
		m.ResetRelevanceThreshold()
		return nil
	case summary.FieldAutoExpandEnabled:
		m.ResetAutoExpandEnabled()
		return nil
	case summary.FieldLastDataHash:
		m.ResetLastDataHash()
		return nil
	case summary.FieldLastExecutedAt:
		m.ResetLastExecutedAt()
		return nil
	case summary.FieldExecutionCount:
		m.ResetExecutionCount()
		return nil
	case summary.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case summary.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case summary.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Summary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.widgets != nil {
		edges = append(edges, summary.EdgeWidgets)
	}
	if m.executions != nil {
		edges = append(edges, summary.EdgeExecutions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SummaryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case summary.EdgeWidgets:
		ids := make([]ent.Value, 0, len(m.widgets))
		for id := range m.widgets {
			ids = append(ids, id)
		}
		return ids
	case summary.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedwidgets != nil {
		edges = append(edges, summary.EdgeWidgets)
	}
	if m.removedexecutions != nil {
		edges = append(edges, summary.EdgeExecutions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SummaryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case summary.EdgeWidgets:
		ids := make([]ent.Value, 0, len(m.removedwidgets))
		for id := range m.removedwidgets {
			ids = append(ids, id)
		}
		return ids
	case summary.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedwidgets {
		edges = append(edges, summary.EdgeWidgets)
	}
	if m.clearedexecutions {
		edges = append(edges, summary.EdgeExecutions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SummaryMutation) EdgeCleared(name string) bool {
	switch name {
	case summary.EdgeWidgets:
		return m.clearedwidgets
	case summary.EdgeExecutions:
		return m.clearedexecutions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SummaryMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Summary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SummaryMutation) ResetEdge(name string) error {
	switch name {
	case summary.EdgeWidgets:
		m.ResetWidgets()
		return nil
	case summary.EdgeExecutions:
		m.ResetExecutions()
		return nil
	}
	return fmt.Errorf("unknown Summary edge %s", name)
}

// WidgetMutation represents an operation that mutates the Widget nodes in the graph.
type WidgetMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	title                *string
	display_order        *int
	adddisplay_order     *int
	query_config         *map[string]interface{}
	visualization_config *map[string]interface{}
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	summary              *string
	clearedsummary       bool
	done                 bool
	oldValue             func(context.Context) (*Widget, error)
	predicates           []predicate.Widget
}

var _ ent.Mutation = (*WidgetMutation)(nil)

// widgetOption allows management of the mutation configuration using functional options.
type widgetOption func(*WidgetMutation)

// newWidgetMutation creates new mutation for the Widget entity.
func newWidgetMutation(c config, op Op, opts ...widgetOption) *WidgetMutation {
	m := &WidgetMutation{
		config:        c,
		op:            op,
		typ:           TypeWidget,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWidgetID sets the ID field of the mutation.
func withWidgetID(id string) widgetOption {
	return func(m *WidgetMutation) {
		var (
			err   error
			once  sync.Once
			value *Widget
		)
		m.oldValue = func(ctx context.Context) (*Widget, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Widget.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWidget sets the old Widget of the mutation.
func withWidget(node *Widget) widgetOption {
	return func(m *WidgetMutation) {
		m.oldValue = func(context.Context) (*Widget, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WidgetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WidgetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Widget entities.
func (m *WidgetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WidgetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WidgetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Widget.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSummaryID sets the "summary_id" field.
func (m *WidgetMutation) SetSummaryID(s string) {
	m.summary = &s
}

// SummaryID returns the value of the "summary_id" field in the mutation.
func (m *WidgetMutation) SummaryID() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryID returns the old "summary_id" field's value of the Widget entity.
// If the Widget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WidgetMutation) OldSummaryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryID: %w", err)
	}
	return oldValue.SummaryID, nil
}

// ResetSummaryID resets all changes to the "summary_id" field.
func (m *WidgetMutation) ResetSummaryID() {
	m.summary = nil
}

// SetTitle sets the "title" field.
func (m *WidgetMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *WidgetMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Widget entity.
// If the Widget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WidgetMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *WidgetMutation) ResetTitle() {
	m.title = nil
}

// SetDisplayOrder sets the "display_order" field.
func (m *WidgetMutation) SetDisplayOrder(i int) {
	m.display_order = &i
	m.adddisplay_order = nil
}

// DisplayOrder returns the value of the "display_order" field in the mutation.
func (m *WidgetMutation) DisplayOrder() (r int, exists bool) {
	v := m.display_order
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayOrder returns the old "display_order" field's value of the Widget entity.
// If the Widget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WidgetMutation) OldDisplayOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayOrder: %w", err)
	}
	return oldValue.DisplayOrder, nil
}

// AddDisplayOrder adds i to the "display_order" field.
func (m *WidgetMutation) AddDisplayOrder(i int) {
	if m.adddisplay_order != nil {
		*m.adddisplay_order += i
	} else {
		m.adddisplay_order = &i
	}
}

// AddedDisplayOrder returns the value that was added to the "display_order" field in this mutation.
func (m *WidgetMutation) AddedDisplayOrder() (r int, exists bool) {
	v := m.adddisplay_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetDisplayOrder resets all changes to the "display_order" field.
func (m *WidgetMutation) ResetDisplayOrder() {
	m.display_order = nil
	m.adddisplay_order = nil
}

// SetQueryConfig sets the "query_config" field.
func (m *WidgetMutation) SetQueryConfig(value map[string]interface{}) {
	m.query_config = &value
}

// QueryConfig returns the value of the "query_config" field in the mutation.
func (m *WidgetMutation) QueryConfig() (r map[string]interface{}, exists bool) {
	v := m.query_config
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryConfig returns the old "query_config" field's value of the Widget entity.
// If the Widget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WidgetMutation) OldQueryConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryConfig: %w", err)
	}
	return oldValue.QueryConfig, nil
}

// ResetQueryConfig resets all changes to the "query_config" field.
func (m *WidgetMutation) ResetQueryConfig() {
	m.query_config = nil
}

// SetVisualizationConfig sets the "visualization_config" field.
func (m *WidgetMutation) SetVisualizationConfig(value map[string]interface{}) {
	m.visualization_config = &value
}

// VisualizationConfig returns the value of the "visualization_config" field in the mutation.
func (m *WidgetMutation) VisualizationConfig() (r map[string]interface{}, exists bool) {
	v := m.visualization_config
	if v == nil {
		return
	}
	return *v, true
}

// OldVisualizationConfig returns the old "visualization_config" field's value of the Widget entity.
// If the Widget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WidgetMutation) OldVisualizationConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisualizationConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisualizationConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisualizationConfig: %w", err)
	}
	return oldValue.VisualizationConfig, nil
}

// ClearVisualizationConfig clears the value of the "visualization_config" field.
func (m *WidgetMutation) ClearVisualizationConfig() {
	m.visualization_config = nil
	m.clearedFields[widget.FieldVisualizationConfig] = struct{}{}
}

// VisualizationConfigCleared returns if the "visualization_config" field was cleared in this mutation.
func (m *WidgetMutation) VisualizationConfigCleared() bool {
	_, ok := m.clearedFields[widget.FieldVisualizationConfig]
	return ok
}

// ResetVisualizationConfig resets all changes to the "visualization_config" field.
func (m *WidgetMutation) ResetVisualizationConfig() {
	m.visualization_config = nil
	delete(m.clearedFields, widget.FieldVisualizationConfig)
}

// SetCreatedAt sets the "created_at" field.
func (m *WidgetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WidgetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Widget entity.
// If the Widget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WidgetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WidgetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WidgetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WidgetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Widget entity.
// If the Widget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WidgetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WidgetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSummary clears the "summary" edge to the Summary entity.
func (m *WidgetMutation) ClearSummary() {
	m.clearedsummary = true
	m.clearedFields[widget.FieldSummaryID] = struct{}{}
}

// SummaryCleared reports if the "summary" edge to the Summary entity was cleared.
func (m *WidgetMutation) SummaryCleared() bool {
	return m.clearedsummary
}

// SummaryIDs returns the "summary" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SummaryID instead. It exists only for internal usage by the builders.
func (m *WidgetMutation) SummaryIDs() (ids []string) {
	if id := m.summary; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSummary resets all changes to the "summary" edge.
func (m *WidgetMutation) ResetSummary() {
	m.summary = nil
	m.clearedsummary = false
}

// Where appends a list predicates to the WidgetMutation builder.
func (m *WidgetMutation) Where(ps ...predicate.Widget) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WidgetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WidgetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Widget, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WidgetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WidgetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Widget).
func (m *WidgetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WidgetMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.summary != nil {
		fields = append(fields, widget.FieldSummaryID)
	}
	if m.title != nil {
		fields = append(fields, widget.FieldTitle)
	}
	if m.display_order != nil {
		fields = append(fields, widget.FieldDisplayOrder)
	}
	if m.query_config != nil {
		fields = append(fields, widget.FieldQueryConfig)
	}
	if m.visualization_config != nil {
		fields = append(fields, widget.FieldVisualizationConfig)
	}
	if m.created_at != nil {
		fields = append(fields, widget.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, widget.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WidgetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case widget.FieldSummaryID:
		return m.SummaryID()
	case widget.FieldTitle:
		return m.Title()
	case widget.FieldDisplayOrder:
		return m.DisplayOrder()
	case widget.FieldQueryConfig:
		return m.QueryConfig()
	case widget.FieldVisualizationConfig:
		return m.VisualizationConfig()
	case widget.FieldCreatedAt:
		return m.CreatedAt()
	case widget.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WidgetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case widget.FieldSummaryID:
		return m.OldSummaryID(ctx)
	case widget.FieldTitle:
		return m.OldTitle(ctx)
	case widget.FieldDisplayOrder:
		return m.OldDisplayOrder(ctx)
	case widget.FieldQueryConfig:
		return m.OldQueryConfig(ctx)
	case widget.FieldVisualizationConfig:
		return m.OldVisualizationConfig(ctx)
	case widget.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case widget.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Widget field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WidgetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case widget.FieldSummaryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryID(v)
		return nil
	case widget.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case widget.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayOrder(v)
		return nil
	case widget.FieldQueryConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryConfig(v)
		return nil
	case widget.FieldVisualizationConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisualizationConfig(v)
		return nil
	case widget.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case widget.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Widget field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WidgetMutation) AddedFields() []string {
	var fields []string
	if m.adddisplay_order != nil {
		fields = append(fields, widget.FieldDisplayOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WidgetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case widget.FieldDisplayOrder:
		return m.AddedDisplayOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WidgetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case widget.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDisplayOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Widget numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WidgetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(widget.FieldVisualizationConfig) {
		fields = append(fields, widget.FieldVisualizationConfig)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WidgetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WidgetMutation) ClearField(name string) error {
	switch name {
	case widget.FieldVisualizationConfig:
		m.ClearVisualizationConfig()
		return nil
	}
	return fmt.Errorf("unknown Widget nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WidgetMutation) ResetField(name string) error {
	switch name {
	case widget.FieldSummaryID:
		m.ResetSummaryID()
		return nil
	case widget.FieldTitle:
		m.ResetTitle()
		return nil
	case widget.FieldDisplayOrder:
		m.ResetDisplayOrder()
		return nil
	case widget.FieldQueryConfig:
		m.ResetQueryConfig()
		return nil
	case widget.FieldVisualizationConfig:
		m.ResetVisualizationConfig()
		return nil
	case widget.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case widget.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Widget field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WidgetMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.summary != nil {
		edges = append(edges, widget.EdgeSummary)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WidgetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case widget.EdgeSummary:
		if id := m.summary; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WidgetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WidgetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WidgetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsummary {
		edges = append(edges, widget.EdgeSummary)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WidgetMutation) EdgeCleared(name string) bool {
	switch name {
	case widget.EdgeSummary:
		return m.clearedsummary
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WidgetMutation) ClearEdge(name string) error {
	switch name {
	case widget.EdgeSummary:
		m.ClearSummary()
		return nil
	}
	return fmt.Errorf("unknown Widget unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WidgetMutation) ResetEdge(name string) error {
	switch name {
	case widget.EdgeSummary:
		m.ResetSummary()
		return nil
	}
	return fmt.Errorf("unknown Widget edge %s", name)
}
