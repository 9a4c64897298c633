// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/codeready-toolchain/cardsmith/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/cardsmith/ent/card"
	"github.com/codeready-toolchain/cardsmith/ent/event"
	"github.com/codeready-toolchain/cardsmith/ent/execution"
	"github.com/codeready-toolchain/cardsmith/ent/executionlog"
	"github.com/codeready-toolchain/cardsmith/ent/goal"
	"github.com/codeready-toolchain/cardsmith/ent/memoryentry"
	"github.com/codeready-toolchain/cardsmith/ent/orchestratoraction"
	"github.com/codeready-toolchain/cardsmith/ent/orchestratorlog"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Card is the client for interacting with the Card builders.
	Card *CardClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Execution is the client for interacting with the Execution builders.
	Execution *ExecutionClient
	// ExecutionLog is the client for interacting with the ExecutionLog builders.
	ExecutionLog *ExecutionLogClient
	// Goal is the client for interacting with the Goal builders.
	Goal *GoalClient
	// MemoryEntry is the client for interacting with the MemoryEntry builders.
	MemoryEntry *MemoryEntryClient
	// OrchestratorAction is the client for interacting with the OrchestratorAction builders.
	OrchestratorAction *OrchestratorActionClient
	// OrchestratorLog is the client for interacting with the OrchestratorLog builders.
	OrchestratorLog *OrchestratorLogClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Card = NewCardClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Execution = NewExecutionClient(c.config)
	c.ExecutionLog = NewExecutionLogClient(c.config)
	c.Goal = NewGoalClient(c.config)
	c.MemoryEntry = NewMemoryEntryClient(c.config)
	c.OrchestratorAction = NewOrchestratorActionClient(c.config)
	c.OrchestratorLog = NewOrchestratorLogClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		Card:               NewCardClient(cfg),
		Event:              NewEventClient(cfg),
		Execution:          NewExecutionClient(cfg),
		ExecutionLog:       NewExecutionLogClient(cfg),
		Goal:               NewGoalClient(cfg),
		MemoryEntry:        NewMemoryEntryClient(cfg),
		OrchestratorAction: NewOrchestratorActionClient(cfg),
		OrchestratorLog:    NewOrchestratorLogClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		Card:               NewCardClient(cfg),
		Event:              NewEventClient(cfg),
		Execution:          NewExecutionClient(cfg),
		ExecutionLog:       NewExecutionLogClient(cfg),
		Goal:               NewGoalClient(cfg),
		MemoryEntry:        NewMemoryEntryClient(cfg),
		OrchestratorAction: NewOrchestratorActionClient(cfg),
		OrchestratorLog:    NewOrchestratorLogClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Card.
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
		c.Card, c.Event, c.Execution, c.ExecutionLog, c.Goal, c.MemoryEntry,
		c.OrchestratorAction, c.OrchestratorLog,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Card, c.Event, c.Execution, c.ExecutionLog, c.Goal, c.MemoryEntry,
		c.OrchestratorAction, c.OrchestratorLog,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CardMutation:
		return c.Card.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *ExecutionMutation:
		return c.Execution.mutate(ctx, m)
	case *ExecutionLogMutation:
		return c.ExecutionLog.mutate(ctx, m)
	case *GoalMutation:
		return c.Goal.mutate(ctx, m)
	case *MemoryEntryMutation:
		return c.MemoryEntry.mutate(ctx, m)
	case *OrchestratorActionMutation:
		return c.OrchestratorAction.mutate(ctx, m)
	case *OrchestratorLogMutation:
		return c.OrchestratorLog.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CardClient is a client for the Card schema.
type CardClient struct {
	config
}

// NewCardClient returns a client for the Card from the given config.
func NewCardClient(c config) *CardClient {
	return &CardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `card.Hooks(f(g(h())))`.
func (c *CardClient) Use(hooks ...Hook) {
	c.hooks.Card = append(c.hooks.Card, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `card.Intercept(f(g(h())))`.
func (c *CardClient) Intercept(interceptors ...Interceptor) {
	c.inters.Card = append(c.inters.Card, interceptors...)
}

// Create returns a builder for creating a Card entity.
func (c *CardClient) Create() *CardCreate {
	mutation := newCardMutation(c.config, OpCreate)
	return &CardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Card entities.
func (c *CardClient) CreateBulk(builders ...*CardCreate) *CardCreateBulk {
	return &CardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CardClient) MapCreateBulk(slice any, setFunc func(*CardCreate, int)) *CardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CardCreateBulk{err: fmt.Errorf("calling to CardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Card.
func (c *CardClient) Update() *CardUpdate {
	mutation := newCardMutation(c.config, OpUpdate)
	return &CardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CardClient) UpdateOne(_m *Card) *CardUpdateOne {
	mutation := newCardMutation(c.config, OpUpdateOne, withCard(_m))
	return &CardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CardClient) UpdateOneID(id string) *CardUpdateOne {
	mutation := newCardMutation(c.config, OpUpdateOne, withCardID(id))
	return &CardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Card.
func (c *CardClient) Delete() *CardDelete {
	mutation := newCardMutation(c.config, OpDelete)
	return &CardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CardClient) DeleteOne(_m *Card) *CardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CardClient) DeleteOneID(id string) *CardDeleteOne {
	builder := c.Delete().Where(card.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CardDeleteOne{builder}
}

// Query returns a query builder for Card.
func (c *CardClient) Query() *CardQuery {
	return &CardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCard},
		inters: c.Interceptors(),
	}
}

// Get returns a Card entity by its id.
func (c *CardClient) Get(ctx context.Context, id string) (*Card, error) {
	return c.Query().Where(card.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CardClient) GetX(ctx context.Context, id string) *Card {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGoal queries the goal edge of a Card.
func (c *CardClient) QueryGoal(_m *Card) *GoalQuery {
	query := (&GoalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(card.Table, card.FieldID, id),
			sqlgraph.To(goal.Table, goal.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, card.GoalTable, card.GoalColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecutions queries the executions edge of a Card.
func (c *CardClient) QueryExecutions(_m *Card) *ExecutionQuery {
	query := (&ExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(card.Table, card.FieldID, id),
			sqlgraph.To(execution.Table, execution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, card.ExecutionsTable, card.ExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CardClient) Hooks() []Hook {
	return c.hooks.Card
}

// Interceptors returns the client interceptors.
func (c *CardClient) Interceptors() []Interceptor {
	return c.inters.Card
}

func (c *CardClient) mutate(ctx context.Context, m *CardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Card mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
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

// QueryCard queries the card edge of a Execution.
func (c *ExecutionClient) QueryCard(_m *Execution) *CardQuery {
	query := (&CardClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(execution.Table, execution.FieldID, id),
			sqlgraph.To(card.Table, card.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, execution.CardTable, execution.CardColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLogs queries the logs edge of a Execution.
func (c *ExecutionClient) QueryLogs(_m *Execution) *ExecutionLogQuery {
	query := (&ExecutionLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(execution.Table, execution.FieldID, id),
			sqlgraph.To(executionlog.Table, executionlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, execution.LogsTable, execution.LogsColumn),
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

// ExecutionLogClient is a client for the ExecutionLog schema.
type ExecutionLogClient struct {
	config
}

// NewExecutionLogClient returns a client for the ExecutionLog from the given config.
func NewExecutionLogClient(c config) *ExecutionLogClient {
	return &ExecutionLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `executionlog.Hooks(f(g(h())))`.
func (c *ExecutionLogClient) Use(hooks ...Hook) {
	c.hooks.ExecutionLog = append(c.hooks.ExecutionLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `executionlog.Intercept(f(g(h())))`.
func (c *ExecutionLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExecutionLog = append(c.inters.ExecutionLog, interceptors...)
}

// Create returns a builder for creating a ExecutionLog entity.
func (c *ExecutionLogClient) Create() *ExecutionLogCreate {
	mutation := newExecutionLogMutation(c.config, OpCreate)
	return &ExecutionLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExecutionLog entities.
func (c *ExecutionLogClient) CreateBulk(builders ...*ExecutionLogCreate) *ExecutionLogCreateBulk {
	return &ExecutionLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionLogClient) MapCreateBulk(slice any, setFunc func(*ExecutionLogCreate, int)) *ExecutionLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionLogCreateBulk{err: fmt.Errorf("calling to ExecutionLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExecutionLog.
func (c *ExecutionLogClient) Update() *ExecutionLogUpdate {
	mutation := newExecutionLogMutation(c.config, OpUpdate)
	return &ExecutionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionLogClient) UpdateOne(_m *ExecutionLog) *ExecutionLogUpdateOne {
	mutation := newExecutionLogMutation(c.config, OpUpdateOne, withExecutionLog(_m))
	return &ExecutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionLogClient) UpdateOneID(id int) *ExecutionLogUpdateOne {
	mutation := newExecutionLogMutation(c.config, OpUpdateOne, withExecutionLogID(id))
	return &ExecutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExecutionLog.
func (c *ExecutionLogClient) Delete() *ExecutionLogDelete {
	mutation := newExecutionLogMutation(c.config, OpDelete)
	return &ExecutionLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionLogClient) DeleteOne(_m *ExecutionLog) *ExecutionLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionLogClient) DeleteOneID(id int) *ExecutionLogDeleteOne {
	builder := c.Delete().Where(executionlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionLogDeleteOne{builder}
}

// Query returns a query builder for ExecutionLog.
func (c *ExecutionLogClient) Query() *ExecutionLogQuery {
	return &ExecutionLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecutionLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ExecutionLog entity by its id.
func (c *ExecutionLogClient) Get(ctx context.Context, id int) (*ExecutionLog, error) {
	return c.Query().Where(executionlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionLogClient) GetX(ctx context.Context, id int) *ExecutionLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a ExecutionLog.
func (c *ExecutionLogClient) QueryExecution(_m *ExecutionLog) *ExecutionQuery {
	query := (&ExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(executionlog.Table, executionlog.FieldID, id),
			sqlgraph.To(execution.Table, execution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, executionlog.ExecutionTable, executionlog.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExecutionLogClient) Hooks() []Hook {
	return c.hooks.ExecutionLog
}

// Interceptors returns the client interceptors.
func (c *ExecutionLogClient) Interceptors() []Interceptor {
	return c.inters.ExecutionLog
}

func (c *ExecutionLogClient) mutate(ctx context.Context, m *ExecutionLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExecutionLog mutation op: %q", m.Op())
	}
}

// GoalClient is a client for the Goal schema.
type GoalClient struct {
	config
}

// NewGoalClient returns a client for the Goal from the given config.
func NewGoalClient(c config) *GoalClient {
	return &GoalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `goal.Hooks(f(g(h())))`.
func (c *GoalClient) Use(hooks ...Hook) {
	c.hooks.Goal = append(c.hooks.Goal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `goal.Intercept(f(g(h())))`.
func (c *GoalClient) Intercept(interceptors ...Interceptor) {
	c.inters.Goal = append(c.inters.Goal, interceptors...)
}

// Create returns a builder for creating a Goal entity.
func (c *GoalClient) Create() *GoalCreate {
	mutation := newGoalMutation(c.config, OpCreate)
	return &GoalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Goal entities.
func (c *GoalClient) CreateBulk(builders ...*GoalCreate) *GoalCreateBulk {
	return &GoalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GoalClient) MapCreateBulk(slice any, setFunc func(*GoalCreate, int)) *GoalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GoalCreateBulk{err: fmt.Errorf("calling to GoalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GoalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GoalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Goal.
func (c *GoalClient) Update() *GoalUpdate {
	mutation := newGoalMutation(c.config, OpUpdate)
	return &GoalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GoalClient) UpdateOne(_m *Goal) *GoalUpdateOne {
	mutation := newGoalMutation(c.config, OpUpdateOne, withGoal(_m))
	return &GoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GoalClient) UpdateOneID(id string) *GoalUpdateOne {
	mutation := newGoalMutation(c.config, OpUpdateOne, withGoalID(id))
	return &GoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Goal.
func (c *GoalClient) Delete() *GoalDelete {
	mutation := newGoalMutation(c.config, OpDelete)
	return &GoalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GoalClient) DeleteOne(_m *Goal) *GoalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GoalClient) DeleteOneID(id string) *GoalDeleteOne {
	builder := c.Delete().Where(goal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GoalDeleteOne{builder}
}

// Query returns a query builder for Goal.
func (c *GoalClient) Query() *GoalQuery {
	return &GoalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGoal},
		inters: c.Interceptors(),
	}
}

// Get returns a Goal entity by its id.
func (c *GoalClient) Get(ctx context.Context, id string) (*Goal, error) {
	return c.Query().Where(goal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GoalClient) GetX(ctx context.Context, id string) *Goal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCards queries the cards edge of a Goal.
func (c *GoalClient) QueryCards(_m *Goal) *CardQuery {
	query := (&CardClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(goal.Table, goal.FieldID, id),
			sqlgraph.To(card.Table, card.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, goal.CardsTable, goal.CardsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GoalClient) Hooks() []Hook {
	return c.hooks.Goal
}

// Interceptors returns the client interceptors.
func (c *GoalClient) Interceptors() []Interceptor {
	return c.inters.Goal
}

func (c *GoalClient) mutate(ctx context.Context, m *GoalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GoalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GoalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GoalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Goal mutation op: %q", m.Op())
	}
}

// MemoryEntryClient is a client for the MemoryEntry schema.
type MemoryEntryClient struct {
	config
}

// NewMemoryEntryClient returns a client for the MemoryEntry from the given config.
func NewMemoryEntryClient(c config) *MemoryEntryClient {
	return &MemoryEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `memoryentry.Hooks(f(g(h())))`.
func (c *MemoryEntryClient) Use(hooks ...Hook) {
	c.hooks.MemoryEntry = append(c.hooks.MemoryEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `memoryentry.Intercept(f(g(h())))`.
func (c *MemoryEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.MemoryEntry = append(c.inters.MemoryEntry, interceptors...)
}

// Create returns a builder for creating a MemoryEntry entity.
func (c *MemoryEntryClient) Create() *MemoryEntryCreate {
	mutation := newMemoryEntryMutation(c.config, OpCreate)
	return &MemoryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MemoryEntry entities.
func (c *MemoryEntryClient) CreateBulk(builders ...*MemoryEntryCreate) *MemoryEntryCreateBulk {
	return &MemoryEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MemoryEntryClient) MapCreateBulk(slice any, setFunc func(*MemoryEntryCreate, int)) *MemoryEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MemoryEntryCreateBulk{err: fmt.Errorf("calling to MemoryEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MemoryEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MemoryEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MemoryEntry.
func (c *MemoryEntryClient) Update() *MemoryEntryUpdate {
	mutation := newMemoryEntryMutation(c.config, OpUpdate)
	return &MemoryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MemoryEntryClient) UpdateOne(_m *MemoryEntry) *MemoryEntryUpdateOne {
	mutation := newMemoryEntryMutation(c.config, OpUpdateOne, withMemoryEntry(_m))
	return &MemoryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MemoryEntryClient) UpdateOneID(id string) *MemoryEntryUpdateOne {
	mutation := newMemoryEntryMutation(c.config, OpUpdateOne, withMemoryEntryID(id))
	return &MemoryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MemoryEntry.
func (c *MemoryEntryClient) Delete() *MemoryEntryDelete {
	mutation := newMemoryEntryMutation(c.config, OpDelete)
	return &MemoryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MemoryEntryClient) DeleteOne(_m *MemoryEntry) *MemoryEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MemoryEntryClient) DeleteOneID(id string) *MemoryEntryDeleteOne {
	builder := c.Delete().Where(memoryentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MemoryEntryDeleteOne{builder}
}

// Query returns a query builder for MemoryEntry.
func (c *MemoryEntryClient) Query() *MemoryEntryQuery {
	return &MemoryEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMemoryEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a MemoryEntry entity by its id.
func (c *MemoryEntryClient) Get(ctx context.Context, id string) (*MemoryEntry, error) {
	return c.Query().Where(memoryentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MemoryEntryClient) GetX(ctx context.Context, id string) *MemoryEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MemoryEntryClient) Hooks() []Hook {
	return c.hooks.MemoryEntry
}

// Interceptors returns the client interceptors.
func (c *MemoryEntryClient) Interceptors() []Interceptor {
	return c.inters.MemoryEntry
}

func (c *MemoryEntryClient) mutate(ctx context.Context, m *MemoryEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MemoryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MemoryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MemoryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MemoryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MemoryEntry mutation op: %q", m.Op())
	}
}

// OrchestratorActionClient is a client for the OrchestratorAction schema.
type OrchestratorActionClient struct {
	config
}

// NewOrchestratorActionClient returns a client for the OrchestratorAction from the given config.
func NewOrchestratorActionClient(c config) *OrchestratorActionClient {
	return &OrchestratorActionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orchestratoraction.Hooks(f(g(h())))`.
func (c *OrchestratorActionClient) Use(hooks ...Hook) {
	c.hooks.OrchestratorAction = append(c.hooks.OrchestratorAction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orchestratoraction.Intercept(f(g(h())))`.
func (c *OrchestratorActionClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrchestratorAction = append(c.inters.OrchestratorAction, interceptors...)
}

// Create returns a builder for creating a OrchestratorAction entity.
func (c *OrchestratorActionClient) Create() *OrchestratorActionCreate {
	mutation := newOrchestratorActionMutation(c.config, OpCreate)
	return &OrchestratorActionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrchestratorAction entities.
func (c *OrchestratorActionClient) CreateBulk(builders ...*OrchestratorActionCreate) *OrchestratorActionCreateBulk {
	return &OrchestratorActionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrchestratorActionClient) MapCreateBulk(slice any, setFunc func(*OrchestratorActionCreate, int)) *OrchestratorActionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrchestratorActionCreateBulk{err: fmt.Errorf("calling to OrchestratorActionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrchestratorActionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrchestratorActionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrchestratorAction.
func (c *OrchestratorActionClient) Update() *OrchestratorActionUpdate {
	mutation := newOrchestratorActionMutation(c.config, OpUpdate)
	return &OrchestratorActionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrchestratorActionClient) UpdateOne(_m *OrchestratorAction) *OrchestratorActionUpdateOne {
	mutation := newOrchestratorActionMutation(c.config, OpUpdateOne, withOrchestratorAction(_m))
	return &OrchestratorActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrchestratorActionClient) UpdateOneID(id string) *OrchestratorActionUpdateOne {
	mutation := newOrchestratorActionMutation(c.config, OpUpdateOne, withOrchestratorActionID(id))
	return &OrchestratorActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrchestratorAction.
func (c *OrchestratorActionClient) Delete() *OrchestratorActionDelete {
	mutation := newOrchestratorActionMutation(c.config, OpDelete)
	return &OrchestratorActionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrchestratorActionClient) DeleteOne(_m *OrchestratorAction) *OrchestratorActionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrchestratorActionClient) DeleteOneID(id string) *OrchestratorActionDeleteOne {
	builder := c.Delete().Where(orchestratoraction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrchestratorActionDeleteOne{builder}
}

// Query returns a query builder for OrchestratorAction.
func (c *OrchestratorActionClient) Query() *OrchestratorActionQuery {
	return &OrchestratorActionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrchestratorAction},
		inters: c.Interceptors(),
	}
}

// Get returns a OrchestratorAction entity by its id.
func (c *OrchestratorActionClient) Get(ctx context.Context, id string) (*OrchestratorAction, error) {
	return c.Query().Where(orchestratoraction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrchestratorActionClient) GetX(ctx context.Context, id string) *OrchestratorAction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OrchestratorActionClient) Hooks() []Hook {
	return c.hooks.OrchestratorAction
}

// Interceptors returns the client interceptors.
func (c *OrchestratorActionClient) Interceptors() []Interceptor {
	return c.inters.OrchestratorAction
}

func (c *OrchestratorActionClient) mutate(ctx context.Context, m *OrchestratorActionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrchestratorActionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrchestratorActionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrchestratorActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrchestratorActionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrchestratorAction mutation op: %q", m.Op())
	}
}

// OrchestratorLogClient is a client for the OrchestratorLog schema.
type OrchestratorLogClient struct {
	config
}

// NewOrchestratorLogClient returns a client for the OrchestratorLog from the given config.
func NewOrchestratorLogClient(c config) *OrchestratorLogClient {
	return &OrchestratorLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orchestratorlog.Hooks(f(g(h())))`.
func (c *OrchestratorLogClient) Use(hooks ...Hook) {
	c.hooks.OrchestratorLog = append(c.hooks.OrchestratorLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orchestratorlog.Intercept(f(g(h())))`.
func (c *OrchestratorLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrchestratorLog = append(c.inters.OrchestratorLog, interceptors...)
}

// Create returns a builder for creating a OrchestratorLog entity.
func (c *OrchestratorLogClient) Create() *OrchestratorLogCreate {
	mutation := newOrchestratorLogMutation(c.config, OpCreate)
	return &OrchestratorLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrchestratorLog entities.
func (c *OrchestratorLogClient) CreateBulk(builders ...*OrchestratorLogCreate) *OrchestratorLogCreateBulk {
	return &OrchestratorLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrchestratorLogClient) MapCreateBulk(slice any, setFunc func(*OrchestratorLogCreate, int)) *OrchestratorLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrchestratorLogCreateBulk{err: fmt.Errorf("calling to OrchestratorLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrchestratorLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrchestratorLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrchestratorLog.
func (c *OrchestratorLogClient) Update() *OrchestratorLogUpdate {
	mutation := newOrchestratorLogMutation(c.config, OpUpdate)
	return &OrchestratorLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrchestratorLogClient) UpdateOne(_m *OrchestratorLog) *OrchestratorLogUpdateOne {
	mutation := newOrchestratorLogMutation(c.config, OpUpdateOne, withOrchestratorLog(_m))
	return &OrchestratorLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrchestratorLogClient) UpdateOneID(id int) *OrchestratorLogUpdateOne {
	mutation := newOrchestratorLogMutation(c.config, OpUpdateOne, withOrchestratorLogID(id))
	return &OrchestratorLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrchestratorLog.
func (c *OrchestratorLogClient) Delete() *OrchestratorLogDelete {
	mutation := newOrchestratorLogMutation(c.config, OpDelete)
	return &OrchestratorLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrchestratorLogClient) DeleteOne(_m *OrchestratorLog) *OrchestratorLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrchestratorLogClient) DeleteOneID(id int) *OrchestratorLogDeleteOne {
	builder := c.Delete().Where(orchestratorlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrchestratorLogDeleteOne{builder}
}

// Query returns a query builder for OrchestratorLog.
func (c *OrchestratorLogClient) Query() *OrchestratorLogQuery {
	return &OrchestratorLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrchestratorLog},
		inters: c.Interceptors(),
	}
}

// Get returns a OrchestratorLog entity by its id.
func (c *OrchestratorLogClient) Get(ctx context.Context, id int) (*OrchestratorLog, error) {
	return c.Query().Where(orchestratorlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrchestratorLogClient) GetX(ctx context.Context, id int) *OrchestratorLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OrchestratorLogClient) Hooks() []Hook {
	return c.hooks.OrchestratorLog
}

// Interceptors returns the client interceptors.
func (c *OrchestratorLogClient) Interceptors() []Interceptor {
	return c.inters.OrchestratorLog
}

func (c *OrchestratorLogClient) mutate(ctx context.Context, m *OrchestratorLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrchestratorLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrchestratorLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrchestratorLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrchestratorLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrchestratorLog mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Card, Event, Execution, ExecutionLog, Goal, MemoryEntry, OrchestratorAction,
		OrchestratorLog []ent.Hook
	}
	inters struct {
		Card, Event, Execution, ExecutionLog, Goal, MemoryEntry, OrchestratorAction,
		OrchestratorLog []ent.Interceptor
	}
)
