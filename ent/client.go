// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/muniscope/muniscope/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/muniscope/muniscope/ent/entity"
	"github.com/muniscope/muniscope/ent/entitytype"
	"github.com/muniscope/muniscope/ent/execution"
	"github.com/muniscope/muniscope/ent/facettype"
	"github.com/muniscope/muniscope/ent/facetvalue"
	"github.com/muniscope/muniscope/ent/summary"
	"github.com/muniscope/muniscope/ent/widget"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Entity is the client for interacting with the Entity builders.
	Entity *EntityClient
	// EntityType is the client for interacting with the EntityType builders.
	EntityType *EntityTypeClient
	// Execution is the client for interacting with the Execution builders.
	Execution *ExecutionClient
	// FacetType is the client for interacting with the FacetType builders.
	FacetType *FacetTypeClient
	// FacetValue is the client for interacting with the FacetValue builders.
	FacetValue *FacetValueClient
	// Summary is the client for interacting with the Summary builders.
	Summary *SummaryClient
	// Widget is the client for interacting with the Widget builders.
	Widget *WidgetClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Entity = NewEntityClient(c.config)
	c.EntityType = NewEntityTypeClient(c.config)
	c.Execution = NewExecutionClient(c.config)
	c.FacetType = NewFacetTypeClient(c.config)
	c.FacetValue = NewFacetValueClient(c.config)
	c.Summary = NewSummaryClient(c.config)
	c.Widget = NewWidgetClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:        ctx,
		config:     cfg,
		Entity:     NewEntityClient(cfg),
		EntityType: NewEntityTypeClient(cfg),
		Execution:  NewExecutionClient(cfg),
		FacetType:  NewFacetTypeClient(cfg),
		FacetValue: NewFacetValueClient(cfg),
		Summary:    NewSummaryClient(cfg),
		Widget:     NewWidgetClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:        ctx,
		config:     cfg,
		Entity:     NewEntityClient(cfg),
		EntityType: NewEntityTypeClient(cfg),
		Execution:  NewExecutionClient(cfg),
		FacetType:  NewFacetTypeClient(cfg),
		FacetValue: NewFacetValueClient(cfg),
		Summary:    NewSummaryClient(cfg),
		Widget:     NewWidgetClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Entity.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Entity, c.EntityType, c.Execution, c.FacetType, c.FacetValue, c.Summary,
		c.Widget,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Entity, c.EntityType, c.Execution, c.FacetType, c.FacetValue, c.Summary,
		c.Widget,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EntityMutation:
		return c.Entity.mutate(ctx, m)
	case *EntityTypeMutation:
		return c.EntityType.mutate(ctx, m)
	case *ExecutionMutation:
		return c.Execution.mutate(ctx, m)
	case *FacetTypeMutation:
		return c.FacetType.mutate(ctx, m)
	case *FacetValueMutation:
		return c.FacetValue.mutate(ctx, m)
	case *SummaryMutation:
		return c.Summary.mutate(ctx, m)
	case *WidgetMutation:
		return c.Widget.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EntityClient is a client for the Entity schema.
type EntityClient struct {
	config
}

// NewEntityClient returns a client for the Entity from the given config.
func NewEntityClient(c config) *EntityClient {
	return &EntityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entity.Hooks(f(g(h())))`.
func (c *EntityClient) Use(hooks ...Hook) {
	c.hooks.Entity = append(c.hooks.Entity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entity.Intercept(f(g(h())))`.
func (c *EntityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Entity = append(c.inters.Entity, interceptors...)
}

// Create returns a builder for creating a Entity entity.
func (c *EntityClient) Create() *EntityCreate {
	mutation := newEntityMutation(c.config, OpCreate)
	return &EntityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Entity entities.
func (c *EntityClient) CreateBulk(builders ...*EntityCreate) *EntityCreateBulk {
	return &EntityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityClient) MapCreateBulk(slice any, setFunc func(*EntityCreate, int)) *EntityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityCreateBulk{err: fmt.Errorf("calling to EntityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Entity.
func (c *EntityClient) Update() *EntityUpdate {
	mutation := newEntityMutation(c.config, OpUpdate)
	return &EntityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityClient) UpdateOne(_m *Entity) *EntityUpdateOne {
	mutation := newEntityMutation(c.config, OpUpdateOne, withEntity(_m))
	return &EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityClient) UpdateOneID(id string) *EntityUpdateOne {
	mutation := newEntityMutation(c.config, OpUpdateOne, withEntityID(id))
	return &EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Entity.
func (c *EntityClient) Delete() *EntityDelete {
	mutation := newEntityMutation(c.config, OpDelete)
	return &EntityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityClient) DeleteOne(_m *Entity) *EntityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityClient) DeleteOneID(id string) *EntityDeleteOne {
	builder := c.Delete().Where(entity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityDeleteOne{builder}
}

// Query returns a query builder for Entity.
func (c *EntityClient) Query() *EntityQuery {
	return &EntityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntity},
		inters: c.Interceptors(),
	}
}

// Get returns a Entity entity by its id.
func (c *EntityClient) Get(ctx context.Context, id string) (*Entity, error) {
	return c.Query().Where(entity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityClient) GetX(ctx context.Context, id string) *Entity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEntityType queries the entity_type edge of a Entity.
func (c *EntityClient) QueryEntityType(_m *Entity) *EntityTypeQuery {
	query := (&EntityTypeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entity.Table, entity.FieldID, id),
			sqlgraph.To(entitytype.Table, entitytype.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entity.EntityTypeTable, entity.EntityTypeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParent queries the parent edge of a Entity.
func (c *EntityClient) QueryParent(_m *Entity) *EntityQuery {
	query := (&EntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entity.Table, entity.FieldID, id),
			sqlgraph.To(entity.Table, entity.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entity.ParentTable, entity.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChildren queries the children edge of a Entity.
func (c *EntityClient) QueryChildren(_m *Entity) *EntityQuery {
	query := (&EntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entity.Table, entity.FieldID, id),
			sqlgraph.To(entity.Table, entity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, entity.ChildrenTable, entity.ChildrenColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFacetValues queries the facet_values edge of a Entity.
func (c *EntityClient) QueryFacetValues(_m *Entity) *FacetValueQuery {
	query := (&FacetValueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entity.Table, entity.FieldID, id),
			sqlgraph.To(facetvalue.Table, facetvalue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, entity.FacetValuesTable, entity.FacetValuesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntityClient) Hooks() []Hook {
	return c.hooks.Entity
}

// Interceptors returns the client interceptors.
func (c *EntityClient) Interceptors() []Interceptor {
	return c.inters.Entity
}

func (c *EntityClient) mutate(ctx context.Context, m *EntityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Entity mutation op: %q", m.Op())
	}
}

// EntityTypeClient is a client for the EntityType schema.
type EntityTypeClient struct {
	config
}

// NewEntityTypeClient returns a client for the EntityType from the given config.
func NewEntityTypeClient(c config) *EntityTypeClient {
	return &EntityTypeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entitytype.Hooks(f(g(h())))`.
func (c *EntityTypeClient) Use(hooks ...Hook) {
	c.hooks.EntityType = append(c.hooks.EntityType, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entitytype.Intercept(f(g(h())))`.
func (c *EntityTypeClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntityType = append(c.inters.EntityType, interceptors...)
}

// Create returns a builder for creating a EntityType entity.
func (c *EntityTypeClient) Create() *EntityTypeCreate {
	mutation := newEntityTypeMutation(c.config, OpCreate)
	return &EntityTypeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntityType entities.
func (c *EntityTypeClient) CreateBulk(builders ...*EntityTypeCreate) *EntityTypeCreateBulk {
	return &EntityTypeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityTypeClient) MapCreateBulk(slice any, setFunc func(*EntityTypeCreate, int)) *EntityTypeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityTypeCreateBulk{err: fmt.Errorf("calling to EntityTypeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityTypeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityTypeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntityType.
func (c *EntityTypeClient) Update() *EntityTypeUpdate {
	mutation := newEntityTypeMutation(c.config, OpUpdate)
	return &EntityTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityTypeClient) UpdateOne(_m *EntityType) *EntityTypeUpdateOne {
	mutation := newEntityTypeMutation(c.config, OpUpdateOne, withEntityType(_m))
	return &EntityTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityTypeClient) UpdateOneID(id string) *EntityTypeUpdateOne {
	mutation := newEntityTypeMutation(c.config, OpUpdateOne, withEntityTypeID(id))
	return &EntityTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntityType.
func (c *EntityTypeClient) Delete() *EntityTypeDelete {
	mutation := newEntityTypeMutation(c.config, OpDelete)
	return &EntityTypeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityTypeClient) DeleteOne(_m *EntityType) *EntityTypeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityTypeClient) DeleteOneID(id string) *EntityTypeDeleteOne {
	builder := c.Delete().Where(entitytype.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityTypeDeleteOne{builder}
}

// Query returns a query builder for EntityType.
func (c *EntityTypeClient) Query() *EntityTypeQuery {
	return &EntityTypeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntityType},
		inters: c.Interceptors(),
	}
}

// Get returns a EntityType entity by its id.
func (c *EntityTypeClient) Get(ctx context.Context, id string) (*EntityType, error) {
	return c.Query().Where(entitytype.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityTypeClient) GetX(ctx context.Context, id string) *EntityType {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEntities queries the entities edge of a EntityType.
func (c *EntityTypeClient) QueryEntities(_m *EntityType) *EntityQuery {
	query := (&EntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entitytype.Table, entitytype.FieldID, id),
			sqlgraph.To(entity.Table, entity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, entitytype.EntitiesTable, entitytype.EntitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntityTypeClient) Hooks() []Hook {
	return c.hooks.EntityType
}

// Interceptors returns the client interceptors.
func (c *EntityTypeClient) Interceptors() []Interceptor {
	return c.inters.EntityType
}

func (c *EntityTypeClient) mutate(ctx context.Context, m *EntityTypeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityTypeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityTypeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntityType mutation op: %q", m.Op())
	}
}

// ExecutionClient is a client for the Execution schema.
type ExecutionClient struct {
	config
}

// NewExecutionClient returns a client for the Execution from the given config.
func NewExecutionClient(c config) *ExecutionClient {
	return &ExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `execution.Hooks(f(g(h())))`.
func (c *ExecutionClient) Use(hooks ...Hook) {
	c.hooks.Execution = append(c.hooks.Execution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `execution.Intercept(f(g(h())))`.
func (c *ExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Execution = append(c.inters.Execution, interceptors...)
}

// Create returns a builder for creating a Execution entity.
func (c *ExecutionClient) Create() *ExecutionCreate {
	mutation := newExecutionMutation(c.config, OpCreate)
	return &ExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Execution entities.
func (c *ExecutionClient) CreateBulk(builders ...*ExecutionCreate) *ExecutionCreateBulk {
	return &ExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionClient) MapCreateBulk(slice any, setFunc func(*ExecutionCreate, int)) *ExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionCreateBulk{err: fmt.Errorf("calling to ExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Execution.
func (c *ExecutionClient) Update() *ExecutionUpdate {
	mutation := newExecutionMutation(c.config, OpUpdate)
	return &ExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionClient) UpdateOne(_m *Execution) *ExecutionUpdateOne {
	mutation := newExecutionMutation(c.config, OpUpdateOne, withExecution(_m))
	return &ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionClient) UpdateOneID(id string) *ExecutionUpdateOne {
	mutation := newExecutionMutation(c.config, OpUpdateOne, withExecutionID(id))
	return &ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Execution.
func (c *ExecutionClient) Delete() *ExecutionDelete {
	mutation := newExecutionMutation(c.config, OpDelete)
	return &ExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionClient) DeleteOne(_m *Execution) *ExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionClient) DeleteOneID(id string) *ExecutionDeleteOne {
	builder := c.Delete().Where(execution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionDeleteOne{builder}
}

// Query returns a query builder for Execution.
func (c *ExecutionClient) Query() *ExecutionQuery {
	return &ExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a Execution entity by its id.
func (c *ExecutionClient) Get(ctx context.Context, id string) (*Execution, error) {
	return c.Query().Where(execution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionClient) GetX(ctx context.Context, id string) *Execution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySummary queries the summary edge of a Execution.
func (c *ExecutionClient) QuerySummary(_m *Execution) *SummaryQuery {
	query := (&SummaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(execution.Table, execution.FieldID, id),
			sqlgraph.To(summary.Table, summary.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, execution.SummaryTable, execution.SummaryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExecutionClient) Hooks() []Hook {
	return c.hooks.Execution
}

// Interceptors returns the client interceptors.
func (c *ExecutionClient) Interceptors() []Interceptor {
	return c.inters.Execution
}

func (c *ExecutionClient) mutate(ctx context.Context, m *ExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Execution mutation op: %q", m.Op())
	}
}

// FacetTypeClient is a client for the FacetType schema.
type FacetTypeClient struct {
	config
}

// NewFacetTypeClient returns a client for the FacetType from the given config.
func NewFacetTypeClient(c config) *FacetTypeClient {
	return &FacetTypeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `facettype.Hooks(f(g(h())))`.
func (c *FacetTypeClient) Use(hooks ...Hook) {
	c.hooks.FacetType = append(c.hooks.FacetType, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `facettype.Intercept(f(g(h())))`.
func (c *FacetTypeClient) Intercept(interceptors ...Interceptor) {
	c.inters.FacetType = append(c.inters.FacetType, interceptors...)
}

// Create returns a builder for creating a FacetType entity.
func (c *FacetTypeClient) Create() *FacetTypeCreate {
	mutation := newFacetTypeMutation(c.config, OpCreate)
	return &FacetTypeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FacetType entities.
func (c *FacetTypeClient) CreateBulk(builders ...*FacetTypeCreate) *FacetTypeCreateBulk {
	return &FacetTypeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FacetTypeClient) MapCreateBulk(slice any, setFunc func(*FacetTypeCreate, int)) *FacetTypeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FacetTypeCreateBulk{err: fmt.Errorf("calling to FacetTypeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FacetTypeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FacetTypeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FacetType.
func (c *FacetTypeClient) Update() *FacetTypeUpdate {
	mutation := newFacetTypeMutation(c.config, OpUpdate)
	return &FacetTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FacetTypeClient) UpdateOne(_m *FacetType) *FacetTypeUpdateOne {
	mutation := newFacetTypeMutation(c.config, OpUpdateOne, withFacetType(_m))
	return &FacetTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FacetTypeClient) UpdateOneID(id string) *FacetTypeUpdateOne {
	mutation := newFacetTypeMutation(c.config, OpUpdateOne, withFacetTypeID(id))
	return &FacetTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FacetType.
func (c *FacetTypeClient) Delete() *FacetTypeDelete {
	mutation := newFacetTypeMutation(c.config, OpDelete)
	return &FacetTypeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FacetTypeClient) DeleteOne(_m *FacetType) *FacetTypeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FacetTypeClient) DeleteOneID(id string) *FacetTypeDeleteOne {
	builder := c.Delete().Where(facettype.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FacetTypeDeleteOne{builder}
}

// Query returns a query builder for FacetType.
func (c *FacetTypeClient) Query() *FacetTypeQuery {
	return &FacetTypeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFacetType},
		inters: c.Interceptors(),
	}
}

// Get returns a FacetType entity by its id.
func (c *FacetTypeClient) Get(ctx context.Context, id string) (*FacetType, error) {
	return c.Query().Where(facettype.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FacetTypeClient) GetX(ctx context.Context, id string) *FacetType {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryValues queries the values edge of a FacetType.
func (c *FacetTypeClient) QueryValues(_m *FacetType) *FacetValueQuery {
	query := (&FacetValueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(facettype.Table, facettype.FieldID, id),
			sqlgraph.To(facetvalue.Table, facetvalue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, facettype.ValuesTable, facettype.ValuesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FacetTypeClient) Hooks() []Hook {
	return c.hooks.FacetType
}

// Interceptors returns the client interceptors.
func (c *FacetTypeClient) Interceptors() []Interceptor {
	return c.inters.FacetType
}

func (c *FacetTypeClient) mutate(ctx context.Context, m *FacetTypeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FacetTypeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FacetTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FacetTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FacetTypeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FacetType mutation op: %q", m.Op())
	}
}

// FacetValueClient is a client for the FacetValue schema.
type FacetValueClient struct {
	config
}

// NewFacetValueClient returns a client for the FacetValue from the given config.
func NewFacetValueClient(c config) *FacetValueClient {
	return &FacetValueClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `facetvalue.Hooks(f(g(h())))`.
func (c *FacetValueClient) Use(hooks ...Hook) {
	c.hooks.FacetValue = append(c.hooks.FacetValue, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `facetvalue.Intercept(f(g(h())))`.
func (c *FacetValueClient) Intercept(interceptors ...Interceptor) {
	c.inters.FacetValue = append(c.inters.FacetValue, interceptors...)
}

// Create returns a builder for creating a FacetValue entity.
func (c *FacetValueClient) Create() *FacetValueCreate {
	mutation := newFacetValueMutation(c.config, OpCreate)
	return &FacetValueCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FacetValue entities.
func (c *FacetValueClient) CreateBulk(builders ...*FacetValueCreate) *FacetValueCreateBulk {
	return &FacetValueCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FacetValueClient) MapCreateBulk(slice any, setFunc func(*FacetValueCreate, int)) *FacetValueCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FacetValueCreateBulk{err: fmt.Errorf("calling to FacetValueClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FacetValueCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FacetValueCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FacetValue.
func (c *FacetValueClient) Update() *FacetValueUpdate {
	mutation := newFacetValueMutation(c.config, OpUpdate)
	return &FacetValueUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FacetValueClient) UpdateOne(_m *FacetValue) *FacetValueUpdateOne {
	mutation := newFacetValueMutation(c.config, OpUpdateOne, withFacetValue(_m))
	return &FacetValueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FacetValueClient) UpdateOneID(id string) *FacetValueUpdateOne {
	mutation := newFacetValueMutation(c.config, OpUpdateOne, withFacetValueID(id))
	return &FacetValueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FacetValue.
func (c *FacetValueClient) Delete() *FacetValueDelete {
	mutation := newFacetValueMutation(c.config, OpDelete)
	return &FacetValueDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FacetValueClient) DeleteOne(_m *FacetValue) *FacetValueDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FacetValueClient) DeleteOneID(id string) *FacetValueDeleteOne {
	builder := c.Delete().Where(facetvalue.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FacetValueDeleteOne{builder}
}

// Query returns a query builder for FacetValue.
func (c *FacetValueClient) Query() *FacetValueQuery {
	return &FacetValueQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFacetValue},
		inters: c.Interceptors(),
	}
}

// Get returns a FacetValue entity by its id.
func (c *FacetValueClient) Get(ctx context.Context, id string) (*FacetValue, error) {
	return c.Query().Where(facetvalue.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FacetValueClient) GetX(ctx context.Context, id string) *FacetValue {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEntity queries the entity edge of a FacetValue.
func (c *FacetValueClient) QueryEntity(_m *FacetValue) *EntityQuery {
	query := (&EntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(facetvalue.Table, facetvalue.FieldID, id),
			sqlgraph.To(entity.Table, entity.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, facetvalue.EntityTable, facetvalue.EntityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFacetType queries the facet_type edge of a FacetValue.
func (c *FacetValueClient) QueryFacetType(_m *FacetValue) *FacetTypeQuery {
	query := (&FacetTypeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(facetvalue.Table, facetvalue.FieldID, id),
			sqlgraph.To(facettype.Table, facettype.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, facetvalue.FacetTypeTable, facetvalue.FacetTypeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FacetValueClient) Hooks() []Hook {
	return c.hooks.FacetValue
}

// Interceptors returns the client interceptors.
func (c *FacetValueClient) Interceptors() []Interceptor {
	return c.inters.FacetValue
}

func (c *FacetValueClient) mutate(ctx context.Context, m *FacetValueMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FacetValueCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FacetValueUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FacetValueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FacetValueDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FacetValue mutation op: %q", m.Op())
	}
}

// SummaryClient is a client for the Summary schema.
type SummaryClient struct {
	config
}

// NewSummaryClient returns a client for the Summary from the given config.
func NewSummaryClient(c config) *SummaryClient {
	return &SummaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `summary.Hooks(f(g(h())))`.
func (c *SummaryClient) Use(hooks ...Hook) {
	c.hooks.Summary = append(c.hooks.Summary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `summary.Intercept(f(g(h())))`.
func (c *SummaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Summary = append(c.inters.Summary, interceptors...)
}

// Create returns a builder for creating a Summary entity.
func (c *SummaryClient) Create() *SummaryCreate {
	mutation := newSummaryMutation(c.config, OpCreate)
	return &SummaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Summary entities.
func (c *SummaryClient) CreateBulk(builders ...*SummaryCreate) *SummaryCreateBulk {
	return &SummaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SummaryClient) MapCreateBulk(slice any, setFunc func(*SummaryCreate, int)) *SummaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SummaryCreateBulk{err: fmt.Errorf("calling to SummaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SummaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SummaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Summary.
func (c *SummaryClient) Update() *SummaryUpdate {
	mutation := newSummaryMutation(c.config, OpUpdate)
	return &SummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SummaryClient) UpdateOne(_m *Summary) *SummaryUpdateOne {
	mutation := newSummaryMutation(c.config, OpUpdateOne, withSummary(_m))
	return &SummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SummaryClient) UpdateOneID(id string) *SummaryUpdateOne {
	mutation := newSummaryMutation(c.config, OpUpdateOne, withSummaryID(id))
	return &SummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Summary.
func (c *SummaryClient) Delete() *SummaryDelete {
	mutation := newSummaryMutation(c.config, OpDelete)
	return &SummaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SummaryClient) DeleteOne(_m *Summary) *SummaryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SummaryClient) DeleteOneID(id string) *SummaryDeleteOne {
	builder := c.Delete().Where(summary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SummaryDeleteOne{builder}
}

// Query returns a query builder for Summary.
func (c *SummaryClient) Query() *SummaryQuery {
	return &SummaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSummary},
		inters: c.Interceptors(),
	}
}

// Get returns a Summary entity by its id.
func (c *SummaryClient) Get(ctx context.Context, id string) (*Summary, error) {
	return c.Query().Where(summary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SummaryClient) GetX(ctx context.Context, id string) *Summary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWidgets queries the widgets edge of a Summary.
func (c *SummaryClient) QueryWidgets(_m *Summary) *WidgetQuery {
	query := (&WidgetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(summary.Table, summary.FieldID, id),
			sqlgraph.To(widget.Table, widget.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, summary.WidgetsTable, summary.WidgetsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecutions queries the executions edge of a Summary.
func (c *SummaryClient) QueryExecutions(_m *Summary) *ExecutionQuery {
	query := (&ExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(summary.Table, summary.FieldID, id),
			sqlgraph.To(execution.Table, execution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, summary.ExecutionsTable, summary.ExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SummaryClient) Hooks() []Hook {
	return c.hooks.Summary
}

// Interceptors returns the client interceptors.
func (c *SummaryClient) Interceptors() []Interceptor {
	return c.inters.Summary
}

func (c *SummaryClient) mutate(ctx context.Context, m *SummaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SummaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SummaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Summary mutation op: %q", m.Op())
	}
}

// WidgetClient is a client for the Widget schema.
type WidgetClient struct {
	config
}

// NewWidgetClient returns a client for the Widget from the given config.
func NewWidgetClient(c config) *WidgetClient {
	return &WidgetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `widget.Hooks(f(g(h())))`.
func (c *WidgetClient) Use(hooks ...Hook) {
	c.hooks.Widget = append(c.hooks.Widget, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `widget.Intercept(f(g(h())))`.
func (c *WidgetClient) Intercept(interceptors ...Interceptor) {
	c.inters.Widget = append(c.inters.Widget, interceptors...)
}

// Create returns a builder for creating a Widget entity.
func (c *WidgetClient) Create() *WidgetCreate {
	mutation := newWidgetMutation(c.config, OpCreate)
	return &WidgetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Widget entities.
func (c *WidgetClient) CreateBulk(builders ...*WidgetCreate) *WidgetCreateBulk {
	return &WidgetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WidgetClient) MapCreateBulk(slice any, setFunc func(*WidgetCreate, int)) *WidgetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WidgetCreateBulk{err: fmt.Errorf("calling to WidgetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WidgetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WidgetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Widget.
func (c *WidgetClient) Update() *WidgetUpdate {
	mutation := newWidgetMutation(c.config, OpUpdate)
	return &WidgetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WidgetClient) UpdateOne(_m *Widget) *WidgetUpdateOne {
	mutation := newWidgetMutation(c.config, OpUpdateOne, withWidget(_m))
	return &WidgetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WidgetClient) UpdateOneID(id string) *WidgetUpdateOne {
	mutation := newWidgetMutation(c.config, OpUpdateOne, withWidgetID(id))
	return &WidgetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Widget.
func (c *WidgetClient) Delete() *WidgetDelete {
	mutation := newWidgetMutation(c.config, OpDelete)
	return &WidgetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WidgetClient) DeleteOne(_m *Widget) *WidgetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WidgetClient) DeleteOneID(id string) *WidgetDeleteOne {
	builder := c.Delete().Where(widget.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WidgetDeleteOne{builder}
}

// Query returns a query builder for Widget.
func (c *WidgetClient) Query() *WidgetQuery {
	return &WidgetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWidget},
		inters: c.Interceptors(),
	}
}

// Get returns a Widget entity by its id.
func (c *WidgetClient) Get(ctx context.Context, id string) (*Widget, error) {
	return c.Query().Where(widget.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WidgetClient) GetX(ctx context.Context, id string) *Widget {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySummary queries the summary edge of a Widget.
func (c *WidgetClient) QuerySummary(_m *Widget) *SummaryQuery {
	query := (&SummaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(widget.Table, widget.FieldID, id),
			sqlgraph.To(summary.Table, summary.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, widget.SummaryTable, widget.SummaryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WidgetClient) Hooks() []Hook {
	return c.hooks.Widget
}

// Interceptors returns the client interceptors.
func (c *WidgetClient) Interceptors() []Interceptor {
	return c.inters.Widget
}

func (c *WidgetClient) mutate(ctx context.Context, m *WidgetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WidgetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WidgetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WidgetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WidgetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Widget mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Entity, EntityType, Execution, FacetType, FacetValue, Summary, Widget []ent.Hook
	}
	inters struct {
		Entity, EntityType, Execution, FacetType, FacetValue, Summary,
		Widget []ent.Interceptor
	}
)
