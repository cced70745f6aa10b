// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/crewforge/crewd/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewd/ent/activityevent"
	"github.com/crewforge/crewd/ent/agent"
	"github.com/crewforge/crewd/ent/approval"
	"github.com/crewforge/crewd/ent/chatchannel"
	"github.com/crewforge/crewd/ent/chatmessage"
	"github.com/crewforge/crewd/ent/credential"
	"github.com/crewforge/crewd/ent/credittransaction"
	"github.com/crewforge/crewd/ent/event"
	"github.com/crewforge/crewd/ent/goal"
	"github.com/crewforge/crewd/ent/kbchunk"
	"github.com/crewforge/crewd/ent/kbdocument"
	"github.com/crewforge/crewd/ent/measurablegoal"
	"github.com/crewforge/crewd/ent/meeting"
	"github.com/crewforge/crewd/ent/meetingmessage"
	"github.com/crewforge/crewd/ent/memory"
	"github.com/crewforge/crewd/ent/notification"
	"github.com/crewforge/crewd/ent/sorpermission"
	"github.com/crewforge/crewd/ent/sorrow"
	"github.com/crewforge/crewd/ent/sortable"
	"github.com/crewforge/crewd/ent/subscription"
	"github.com/crewforge/crewd/ent/task"
	"github.com/crewforge/crewd/ent/team"
	"github.com/crewforge/crewd/ent/teammember"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ActivityEvent is the client for interacting with the ActivityEvent builders.
	ActivityEvent *ActivityEventClient
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// Approval is the client for interacting with the Approval builders.
	Approval *ApprovalClient
	// ChatChannel is the client for interacting with the ChatChannel builders.
	ChatChannel *ChatChannelClient
	// ChatMessage is the client for interacting with the ChatMessage builders.
	ChatMessage *ChatMessageClient
	// Credential is the client for interacting with the Credential builders.
	Credential *CredentialClient
	// CreditTransaction is the client for interacting with the CreditTransaction builders.
	CreditTransaction *CreditTransactionClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Goal is the client for interacting with the Goal builders.
	Goal *GoalClient
	// KBChunk is the client for interacting with the KBChunk builders.
	KBChunk *KBChunkClient
	// KBDocument is the client for interacting with the KBDocument builders.
	KBDocument *KBDocumentClient
	// MeasurableGoal is the client for interacting with the MeasurableGoal builders.
	MeasurableGoal *MeasurableGoalClient
	// Meeting is the client for interacting with the Meeting builders.
	Meeting *MeetingClient
	// MeetingMessage is the client for interacting with the MeetingMessage builders.
	MeetingMessage *MeetingMessageClient
	// Memory is the client for interacting with the Memory builders.
	Memory *MemoryClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// SorPermission is the client for interacting with the SorPermission builders.
	SorPermission *SorPermissionClient
	// SorRow is the client for interacting with the SorRow builders.
	SorRow *SorRowClient
	// SorTable is the client for interacting with the SorTable builders.
	SorTable *SorTableClient
	// Subscription is the client for interacting with the Subscription builders.
	Subscription *SubscriptionClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// Team is the client for interacting with the Team builders.
	Team *TeamClient
	// TeamMember is the client for interacting with the TeamMember builders.
	TeamMember *TeamMemberClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ActivityEvent = NewActivityEventClient(c.config)
	c.Agent = NewAgentClient(c.config)
	c.Approval = NewApprovalClient(c.config)
	c.ChatChannel = NewChatChannelClient(c.config)
	c.ChatMessage = NewChatMessageClient(c.config)
	c.Credential = NewCredentialClient(c.config)
	c.CreditTransaction = NewCreditTransactionClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Goal = NewGoalClient(c.config)
	c.KBChunk = NewKBChunkClient(c.config)
	c.KBDocument = NewKBDocumentClient(c.config)
	c.MeasurableGoal = NewMeasurableGoalClient(c.config)
	c.Meeting = NewMeetingClient(c.config)
	c.MeetingMessage = NewMeetingMessageClient(c.config)
	c.Memory = NewMemoryClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.SorPermission = NewSorPermissionClient(c.config)
	c.SorRow = NewSorRowClient(c.config)
	c.SorTable = NewSorTableClient(c.config)
	c.Subscription = NewSubscriptionClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.Team = NewTeamClient(c.config)
	c.TeamMember = NewTeamMemberClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		ActivityEvent:     NewActivityEventClient(cfg),
		Agent:             NewAgentClient(cfg),
		Approval:          NewApprovalClient(cfg),
		ChatChannel:       NewChatChannelClient(cfg),
		ChatMessage:       NewChatMessageClient(cfg),
		Credential:        NewCredentialClient(cfg),
		CreditTransaction: NewCreditTransactionClient(cfg),
		Event:             NewEventClient(cfg),
		Goal:              NewGoalClient(cfg),
		KBChunk:           NewKBChunkClient(cfg),
		KBDocument:        NewKBDocumentClient(cfg),
		MeasurableGoal:    NewMeasurableGoalClient(cfg),
		Meeting:           NewMeetingClient(cfg),
		MeetingMessage:    NewMeetingMessageClient(cfg),
		Memory:            NewMemoryClient(cfg),
		Notification:      NewNotificationClient(cfg),
		SorPermission:     NewSorPermissionClient(cfg),
		SorRow:            NewSorRowClient(cfg),
		SorTable:          NewSorTableClient(cfg),
		Subscription:      NewSubscriptionClient(cfg),
		Task:              NewTaskClient(cfg),
		Team:              NewTeamClient(cfg),
		TeamMember:        NewTeamMemberClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		ActivityEvent:     NewActivityEventClient(cfg),
		Agent:             NewAgentClient(cfg),
		Approval:          NewApprovalClient(cfg),
		ChatChannel:       NewChatChannelClient(cfg),
		ChatMessage:       NewChatMessageClient(cfg),
		Credential:        NewCredentialClient(cfg),
		CreditTransaction: NewCreditTransactionClient(cfg),
		Event:             NewEventClient(cfg),
		Goal:              NewGoalClient(cfg),
		KBChunk:           NewKBChunkClient(cfg),
		KBDocument:        NewKBDocumentClient(cfg),
		MeasurableGoal:    NewMeasurableGoalClient(cfg),
		Meeting:           NewMeetingClient(cfg),
		MeetingMessage:    NewMeetingMessageClient(cfg),
		Memory:            NewMemoryClient(cfg),
		Notification:      NewNotificationClient(cfg),
		SorPermission:     NewSorPermissionClient(cfg),
		SorRow:            NewSorRowClient(cfg),
		SorTable:          NewSorTableClient(cfg),
		Subscription:      NewSubscriptionClient(cfg),
		Task:              NewTaskClient(cfg),
		Team:              NewTeamClient(cfg),
		TeamMember:        NewTeamMemberClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ActivityEvent.
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
		c.ActivityEvent, c.Agent, c.Approval, c.ChatChannel, c.ChatMessage,
		c.Credential, c.CreditTransaction, c.Event, c.Goal, c.KBChunk, c.KBDocument,
		c.MeasurableGoal, c.Meeting, c.MeetingMessage, c.Memory, c.Notification,
		c.SorPermission, c.SorRow, c.SorTable, c.Subscription, c.Task, c.Team,
		c.TeamMember,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ActivityEvent, c.Agent, c.Approval, c.ChatChannel, c.ChatMessage,
		c.Credential, c.CreditTransaction, c.Event, c.Goal, c.KBChunk, c.KBDocument,
		c.MeasurableGoal, c.Meeting, c.MeetingMessage, c.Memory, c.Notification,
		c.SorPermission, c.SorRow, c.SorTable, c.Subscription, c.Task, c.Team,
		c.TeamMember,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActivityEventMutation:
		return c.ActivityEvent.mutate(ctx, m)
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *ApprovalMutation:
		return c.Approval.mutate(ctx, m)
	case *ChatChannelMutation:
		return c.ChatChannel.mutate(ctx, m)
	case *ChatMessageMutation:
		return c.ChatMessage.mutate(ctx, m)
	case *CredentialMutation:
		return c.Credential.mutate(ctx, m)
	case *CreditTransactionMutation:
		return c.CreditTransaction.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *GoalMutation:
		return c.Goal.mutate(ctx, m)
	case *KBChunkMutation:
		return c.KBChunk.mutate(ctx, m)
	case *KBDocumentMutation:
		return c.KBDocument.mutate(ctx, m)
	case *MeasurableGoalMutation:
		return c.MeasurableGoal.mutate(ctx, m)
	case *MeetingMutation:
		return c.Meeting.mutate(ctx, m)
	case *MeetingMessageMutation:
		return c.MeetingMessage.mutate(ctx, m)
	case *MemoryMutation:
		return c.Memory.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *SorPermissionMutation:
		return c.SorPermission.mutate(ctx, m)
	case *SorRowMutation:
		return c.SorRow.mutate(ctx, m)
	case *SorTableMutation:
		return c.SorTable.mutate(ctx, m)
	case *SubscriptionMutation:
		return c.Subscription.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TeamMutation:
		return c.Team.mutate(ctx, m)
	case *TeamMemberMutation:
		return c.TeamMember.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActivityEventClient is a client for the ActivityEvent schema.
type ActivityEventClient struct {
	config
}

// NewActivityEventClient returns a client for the ActivityEvent from the given config.
func NewActivityEventClient(c config) *ActivityEventClient {
	return &ActivityEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activityevent.Hooks(f(g(h())))`.
func (c *ActivityEventClient) Use(hooks ...Hook) {
	c.hooks.ActivityEvent = append(c.hooks.ActivityEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activityevent.Intercept(f(g(h())))`.
func (c *ActivityEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActivityEvent = append(c.inters.ActivityEvent, interceptors...)
}

// Create returns a builder for creating a ActivityEvent entity.
func (c *ActivityEventClient) Create() *ActivityEventCreate {
	mutation := newActivityEventMutation(c.config, OpCreate)
	return &ActivityEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActivityEvent entities.
func (c *ActivityEventClient) CreateBulk(builders ...*ActivityEventCreate) *ActivityEventCreateBulk {
	return &ActivityEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActivityEventClient) MapCreateBulk(slice any, setFunc func(*ActivityEventCreate, int)) *ActivityEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActivityEventCreateBulk{err: fmt.Errorf("calling to ActivityEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActivityEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActivityEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActivityEvent.
func (c *ActivityEventClient) Update() *ActivityEventUpdate {
	mutation := newActivityEventMutation(c.config, OpUpdate)
	return &ActivityEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActivityEventClient) UpdateOne(_m *ActivityEvent) *ActivityEventUpdateOne {
	mutation := newActivityEventMutation(c.config, OpUpdateOne, withActivityEvent(_m))
	return &ActivityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActivityEventClient) UpdateOneID(id int) *ActivityEventUpdateOne {
	mutation := newActivityEventMutation(c.config, OpUpdateOne, withActivityEventID(id))
	return &ActivityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActivityEvent.
func (c *ActivityEventClient) Delete() *ActivityEventDelete {
	mutation := newActivityEventMutation(c.config, OpDelete)
	return &ActivityEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActivityEventClient) DeleteOne(_m *ActivityEvent) *ActivityEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActivityEventClient) DeleteOneID(id int) *ActivityEventDeleteOne {
	builder := c.Delete().Where(activityevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActivityEventDeleteOne{builder}
}

// Query returns a query builder for ActivityEvent.
func (c *ActivityEventClient) Query() *ActivityEventQuery {
	return &ActivityEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActivityEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ActivityEvent entity by its id.
func (c *ActivityEventClient) Get(ctx context.Context, id int) (*ActivityEvent, error) {
	return c.Query().Where(activityevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActivityEventClient) GetX(ctx context.Context, id int) *ActivityEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActivityEventClient) Hooks() []Hook {
	return c.hooks.ActivityEvent
}

// Interceptors returns the client interceptors.
func (c *ActivityEventClient) Interceptors() []Interceptor {
	return c.inters.ActivityEvent
}

func (c *ActivityEventClient) mutate(ctx context.Context, m *ActivityEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActivityEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActivityEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActivityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActivityEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActivityEvent mutation op: %q", m.Op())
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id string) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id string) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id string) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id string) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// ApprovalClient is a client for the Approval schema.
type ApprovalClient struct {
	config
}

// NewApprovalClient returns a client for the Approval from the given config.
func NewApprovalClient(c config) *ApprovalClient {
	return &ApprovalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `approval.Hooks(f(g(h())))`.
func (c *ApprovalClient) Use(hooks ...Hook) {
	c.hooks.Approval = append(c.hooks.Approval, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `approval.Intercept(f(g(h())))`.
func (c *ApprovalClient) Intercept(interceptors ...Interceptor) {
	c.inters.Approval = append(c.inters.Approval, interceptors...)
}

// Create returns a builder for creating a Approval entity.
func (c *ApprovalClient) Create() *ApprovalCreate {
	mutation := newApprovalMutation(c.config, OpCreate)
	return &ApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Approval entities.
func (c *ApprovalClient) CreateBulk(builders ...*ApprovalCreate) *ApprovalCreateBulk {
	return &ApprovalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApprovalClient) MapCreateBulk(slice any, setFunc func(*ApprovalCreate, int)) *ApprovalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApprovalCreateBulk{err: fmt.Errorf("calling to ApprovalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApprovalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApprovalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Approval.
func (c *ApprovalClient) Update() *ApprovalUpdate {
	mutation := newApprovalMutation(c.config, OpUpdate)
	return &ApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApprovalClient) UpdateOne(_m *Approval) *ApprovalUpdateOne {
	mutation := newApprovalMutation(c.config, OpUpdateOne, withApproval(_m))
	return &ApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApprovalClient) UpdateOneID(id string) *ApprovalUpdateOne {
	mutation := newApprovalMutation(c.config, OpUpdateOne, withApprovalID(id))
	return &ApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Approval.
func (c *ApprovalClient) Delete() *ApprovalDelete {
	mutation := newApprovalMutation(c.config, OpDelete)
	return &ApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApprovalClient) DeleteOne(_m *Approval) *ApprovalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApprovalClient) DeleteOneID(id string) *ApprovalDeleteOne {
	builder := c.Delete().Where(approval.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApprovalDeleteOne{builder}
}

// Query returns a query builder for Approval.
func (c *ApprovalClient) Query() *ApprovalQuery {
	return &ApprovalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApproval},
		inters: c.Interceptors(),
	}
}

// Get returns a Approval entity by its id.
func (c *ApprovalClient) Get(ctx context.Context, id string) (*Approval, error) {
	return c.Query().Where(approval.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApprovalClient) GetX(ctx context.Context, id string) *Approval {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ApprovalClient) Hooks() []Hook {
	return c.hooks.Approval
}

// Interceptors returns the client interceptors.
func (c *ApprovalClient) Interceptors() []Interceptor {
	return c.inters.Approval
}

func (c *ApprovalClient) mutate(ctx context.Context, m *ApprovalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Approval mutation op: %q", m.Op())
	}
}

// ChatChannelClient is a client for the ChatChannel schema.
type ChatChannelClient struct {
	config
}

// NewChatChannelClient returns a client for the ChatChannel from the given config.
func NewChatChannelClient(c config) *ChatChannelClient {
	return &ChatChannelClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatchannel.Hooks(f(g(h())))`.
func (c *ChatChannelClient) Use(hooks ...Hook) {
	c.hooks.ChatChannel = append(c.hooks.ChatChannel, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatchannel.Intercept(f(g(h())))`.
func (c *ChatChannelClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatChannel = append(c.inters.ChatChannel, interceptors...)
}

// Create returns a builder for creating a ChatChannel entity.
func (c *ChatChannelClient) Create() *ChatChannelCreate {
	mutation := newChatChannelMutation(c.config, OpCreate)
	return &ChatChannelCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatChannel entities.
func (c *ChatChannelClient) CreateBulk(builders ...*ChatChannelCreate) *ChatChannelCreateBulk {
	return &ChatChannelCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatChannelClient) MapCreateBulk(slice any, setFunc func(*ChatChannelCreate, int)) *ChatChannelCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatChannelCreateBulk{err: fmt.Errorf("calling to ChatChannelClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatChannelCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatChannelCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatChannel.
func (c *ChatChannelClient) Update() *ChatChannelUpdate {
	mutation := newChatChannelMutation(c.config, OpUpdate)
	return &ChatChannelUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatChannelClient) UpdateOne(_m *ChatChannel) *ChatChannelUpdateOne {
	mutation := newChatChannelMutation(c.config, OpUpdateOne, withChatChannel(_m))
	return &ChatChannelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatChannelClient) UpdateOneID(id string) *ChatChannelUpdateOne {
	mutation := newChatChannelMutation(c.config, OpUpdateOne, withChatChannelID(id))
	return &ChatChannelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatChannel.
func (c *ChatChannelClient) Delete() *ChatChannelDelete {
	mutation := newChatChannelMutation(c.config, OpDelete)
	return &ChatChannelDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatChannelClient) DeleteOne(_m *ChatChannel) *ChatChannelDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatChannelClient) DeleteOneID(id string) *ChatChannelDeleteOne {
	builder := c.Delete().Where(chatchannel.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatChannelDeleteOne{builder}
}

// Query returns a query builder for ChatChannel.
func (c *ChatChannelClient) Query() *ChatChannelQuery {
	return &ChatChannelQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatChannel},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatChannel entity by its id.
func (c *ChatChannelClient) Get(ctx context.Context, id string) (*ChatChannel, error) {
	return c.Query().Where(chatchannel.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatChannelClient) GetX(ctx context.Context, id string) *ChatChannel {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChatChannelClient) Hooks() []Hook {
	return c.hooks.ChatChannel
}

// Interceptors returns the client interceptors.
func (c *ChatChannelClient) Interceptors() []Interceptor {
	return c.inters.ChatChannel
}

func (c *ChatChannelClient) mutate(ctx context.Context, m *ChatChannelMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatChannelCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatChannelUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatChannelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatChannelDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatChannel mutation op: %q", m.Op())
	}
}

// ChatMessageClient is a client for the ChatMessage schema.
type ChatMessageClient struct {
	config
}

// NewChatMessageClient returns a client for the ChatMessage from the given config.
func NewChatMessageClient(c config) *ChatMessageClient {
	return &ChatMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatmessage.Hooks(f(g(h())))`.
func (c *ChatMessageClient) Use(hooks ...Hook) {
	c.hooks.ChatMessage = append(c.hooks.ChatMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatmessage.Intercept(f(g(h())))`.
func (c *ChatMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatMessage = append(c.inters.ChatMessage, interceptors...)
}

// Create returns a builder for creating a ChatMessage entity.
func (c *ChatMessageClient) Create() *ChatMessageCreate {
	mutation := newChatMessageMutation(c.config, OpCreate)
	return &ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatMessage entities.
func (c *ChatMessageClient) CreateBulk(builders ...*ChatMessageCreate) *ChatMessageCreateBulk {
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatMessageClient) MapCreateBulk(slice any, setFunc func(*ChatMessageCreate, int)) *ChatMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatMessageCreateBulk{err: fmt.Errorf("calling to ChatMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatMessage.
func (c *ChatMessageClient) Update() *ChatMessageUpdate {
	mutation := newChatMessageMutation(c.config, OpUpdate)
	return &ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatMessageClient) UpdateOne(_m *ChatMessage) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessage(_m))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatMessageClient) UpdateOneID(id int) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessageID(id))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatMessage.
func (c *ChatMessageClient) Delete() *ChatMessageDelete {
	mutation := newChatMessageMutation(c.config, OpDelete)
	return &ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatMessageClient) DeleteOne(_m *ChatMessage) *ChatMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatMessageClient) DeleteOneID(id int) *ChatMessageDeleteOne {
	builder := c.Delete().Where(chatmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatMessageDeleteOne{builder}
}

// Query returns a query builder for ChatMessage.
func (c *ChatMessageClient) Query() *ChatMessageQuery {
	return &ChatMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatMessage entity by its id.
func (c *ChatMessageClient) Get(ctx context.Context, id int) (*ChatMessage, error) {
	return c.Query().Where(chatmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatMessageClient) GetX(ctx context.Context, id int) *ChatMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChatMessageClient) Hooks() []Hook {
	return c.hooks.ChatMessage
}

// Interceptors returns the client interceptors.
func (c *ChatMessageClient) Interceptors() []Interceptor {
	return c.inters.ChatMessage
}

func (c *ChatMessageClient) mutate(ctx context.Context, m *ChatMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatMessage mutation op: %q", m.Op())
	}
}

// CredentialClient is a client for the Credential schema.
type CredentialClient struct {
	config
}

// NewCredentialClient returns a client for the Credential from the given config.
func NewCredentialClient(c config) *CredentialClient {
	return &CredentialClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `credential.Hooks(f(g(h())))`.
func (c *CredentialClient) Use(hooks ...Hook) {
	c.hooks.Credential = append(c.hooks.Credential, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `credential.Intercept(f(g(h())))`.
func (c *CredentialClient) Intercept(interceptors ...Interceptor) {
	c.inters.Credential = append(c.inters.Credential, interceptors...)
}

// Create returns a builder for creating a Credential entity.
func (c *CredentialClient) Create() *CredentialCreate {
	mutation := newCredentialMutation(c.config, OpCreate)
	return &CredentialCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Credential entities.
func (c *CredentialClient) CreateBulk(builders ...*CredentialCreate) *CredentialCreateBulk {
	return &CredentialCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CredentialClient) MapCreateBulk(slice any, setFunc func(*CredentialCreate, int)) *CredentialCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CredentialCreateBulk{err: fmt.Errorf("calling to CredentialClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CredentialCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CredentialCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Credential.
func (c *CredentialClient) Update() *CredentialUpdate {
	mutation := newCredentialMutation(c.config, OpUpdate)
	return &CredentialUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CredentialClient) UpdateOne(_m *Credential) *CredentialUpdateOne {
	mutation := newCredentialMutation(c.config, OpUpdateOne, withCredential(_m))
	return &CredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CredentialClient) UpdateOneID(id int) *CredentialUpdateOne {
	mutation := newCredentialMutation(c.config, OpUpdateOne, withCredentialID(id))
	return &CredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Credential.
func (c *CredentialClient) Delete() *CredentialDelete {
	mutation := newCredentialMutation(c.config, OpDelete)
	return &CredentialDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CredentialClient) DeleteOne(_m *Credential) *CredentialDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CredentialClient) DeleteOneID(id int) *CredentialDeleteOne {
	builder := c.Delete().Where(credential.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CredentialDeleteOne{builder}
}

// Query returns a query builder for Credential.
func (c *CredentialClient) Query() *CredentialQuery {
	return &CredentialQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCredential},
		inters: c.Interceptors(),
	}
}

// Get returns a Credential entity by its id.
func (c *CredentialClient) Get(ctx context.Context, id int) (*Credential, error) {
	return c.Query().Where(credential.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CredentialClient) GetX(ctx context.Context, id int) *Credential {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CredentialClient) Hooks() []Hook {
	return c.hooks.Credential
}

// Interceptors returns the client interceptors.
func (c *CredentialClient) Interceptors() []Interceptor {
	return c.inters.Credential
}

func (c *CredentialClient) mutate(ctx context.Context, m *CredentialMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CredentialCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CredentialUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CredentialDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Credential mutation op: %q", m.Op())
	}
}

// CreditTransactionClient is a client for the CreditTransaction schema.
type CreditTransactionClient struct {
	config
}

// NewCreditTransactionClient returns a client for the CreditTransaction from the given config.
func NewCreditTransactionClient(c config) *CreditTransactionClient {
	return &CreditTransactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `credittransaction.Hooks(f(g(h())))`.
func (c *CreditTransactionClient) Use(hooks ...Hook) {
	c.hooks.CreditTransaction = append(c.hooks.CreditTransaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `credittransaction.Intercept(f(g(h())))`.
func (c *CreditTransactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.CreditTransaction = append(c.inters.CreditTransaction, interceptors...)
}

// Create returns a builder for creating a CreditTransaction entity.
func (c *CreditTransactionClient) Create() *CreditTransactionCreate {
	mutation := newCreditTransactionMutation(c.config, OpCreate)
	return &CreditTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CreditTransaction entities.
func (c *CreditTransactionClient) CreateBulk(builders ...*CreditTransactionCreate) *CreditTransactionCreateBulk {
	return &CreditTransactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CreditTransactionClient) MapCreateBulk(slice any, setFunc func(*CreditTransactionCreate, int)) *CreditTransactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CreditTransactionCreateBulk{err: fmt.Errorf("calling to CreditTransactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CreditTransactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CreditTransactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CreditTransaction.
func (c *CreditTransactionClient) Update() *CreditTransactionUpdate {
	mutation := newCreditTransactionMutation(c.config, OpUpdate)
	return &CreditTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CreditTransactionClient) UpdateOne(_m *CreditTransaction) *CreditTransactionUpdateOne {
	mutation := newCreditTransactionMutation(c.config, OpUpdateOne, withCreditTransaction(_m))
	return &CreditTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CreditTransactionClient) UpdateOneID(id int) *CreditTransactionUpdateOne {
	mutation := newCreditTransactionMutation(c.config, OpUpdateOne, withCreditTransactionID(id))
	return &CreditTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CreditTransaction.
func (c *CreditTransactionClient) Delete() *CreditTransactionDelete {
	mutation := newCreditTransactionMutation(c.config, OpDelete)
	return &CreditTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CreditTransactionClient) DeleteOne(_m *CreditTransaction) *CreditTransactionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CreditTransactionClient) DeleteOneID(id int) *CreditTransactionDeleteOne {
	builder := c.Delete().Where(credittransaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CreditTransactionDeleteOne{builder}
}

// Query returns a query builder for CreditTransaction.
func (c *CreditTransactionClient) Query() *CreditTransactionQuery {
	return &CreditTransactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCreditTransaction},
		inters: c.Interceptors(),
	}
}

// Get returns a CreditTransaction entity by its id.
func (c *CreditTransactionClient) Get(ctx context.Context, id int) (*CreditTransaction, error) {
	return c.Query().Where(credittransaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CreditTransactionClient) GetX(ctx context.Context, id int) *CreditTransaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CreditTransactionClient) Hooks() []Hook {
	return c.hooks.CreditTransaction
}

// Interceptors returns the client interceptors.
func (c *CreditTransactionClient) Interceptors() []Interceptor {
	return c.inters.CreditTransaction
}

func (c *CreditTransactionClient) mutate(ctx context.Context, m *CreditTransactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CreditTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CreditTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CreditTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CreditTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CreditTransaction mutation op: %q", m.Op())
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

// KBChunkClient is a client for the KBChunk schema.
type KBChunkClient struct {
	config
}

// NewKBChunkClient returns a client for the KBChunk from the given config.
func NewKBChunkClient(c config) *KBChunkClient {
	return &KBChunkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `kbchunk.Hooks(f(g(h())))`.
func (c *KBChunkClient) Use(hooks ...Hook) {
	c.hooks.KBChunk = append(c.hooks.KBChunk, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `kbchunk.Intercept(f(g(h())))`.
func (c *KBChunkClient) Intercept(interceptors ...Interceptor) {
	c.inters.KBChunk = append(c.inters.KBChunk, interceptors...)
}

// Create returns a builder for creating a KBChunk entity.
func (c *KBChunkClient) Create() *KBChunkCreate {
	mutation := newKBChunkMutation(c.config, OpCreate)
	return &KBChunkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KBChunk entities.
func (c *KBChunkClient) CreateBulk(builders ...*KBChunkCreate) *KBChunkCreateBulk {
	return &KBChunkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KBChunkClient) MapCreateBulk(slice any, setFunc func(*KBChunkCreate, int)) *KBChunkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KBChunkCreateBulk{err: fmt.Errorf("calling to KBChunkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KBChunkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KBChunkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KBChunk.
func (c *KBChunkClient) Update() *KBChunkUpdate {
	mutation := newKBChunkMutation(c.config, OpUpdate)
	return &KBChunkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KBChunkClient) UpdateOne(_m *KBChunk) *KBChunkUpdateOne {
	mutation := newKBChunkMutation(c.config, OpUpdateOne, withKBChunk(_m))
	return &KBChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KBChunkClient) UpdateOneID(id int) *KBChunkUpdateOne {
	mutation := newKBChunkMutation(c.config, OpUpdateOne, withKBChunkID(id))
	return &KBChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KBChunk.
func (c *KBChunkClient) Delete() *KBChunkDelete {
	mutation := newKBChunkMutation(c.config, OpDelete)
	return &KBChunkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KBChunkClient) DeleteOne(_m *KBChunk) *KBChunkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KBChunkClient) DeleteOneID(id int) *KBChunkDeleteOne {
	builder := c.Delete().Where(kbchunk.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KBChunkDeleteOne{builder}
}

// Query returns a query builder for KBChunk.
func (c *KBChunkClient) Query() *KBChunkQuery {
	return &KBChunkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKBChunk},
		inters: c.Interceptors(),
	}
}

// Get returns a KBChunk entity by its id.
func (c *KBChunkClient) Get(ctx context.Context, id int) (*KBChunk, error) {
	return c.Query().Where(kbchunk.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KBChunkClient) GetX(ctx context.Context, id int) *KBChunk {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *KBChunkClient) Hooks() []Hook {
	return c.hooks.KBChunk
}

// Interceptors returns the client interceptors.
func (c *KBChunkClient) Interceptors() []Interceptor {
	return c.inters.KBChunk
}

func (c *KBChunkClient) mutate(ctx context.Context, m *KBChunkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KBChunkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KBChunkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KBChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KBChunkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KBChunk mutation op: %q", m.Op())
	}
}

// KBDocumentClient is a client for the KBDocument schema.
type KBDocumentClient struct {
	config
}

// NewKBDocumentClient returns a client for the KBDocument from the given config.
func NewKBDocumentClient(c config) *KBDocumentClient {
	return &KBDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `kbdocument.Hooks(f(g(h())))`.
func (c *KBDocumentClient) Use(hooks ...Hook) {
	c.hooks.KBDocument = append(c.hooks.KBDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `kbdocument.Intercept(f(g(h())))`.
func (c *KBDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.KBDocument = append(c.inters.KBDocument, interceptors...)
}

// Create returns a builder for creating a KBDocument entity.
func (c *KBDocumentClient) Create() *KBDocumentCreate {
	mutation := newKBDocumentMutation(c.config, OpCreate)
	return &KBDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KBDocument entities.
func (c *KBDocumentClient) CreateBulk(builders ...*KBDocumentCreate) *KBDocumentCreateBulk {
	return &KBDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KBDocumentClient) MapCreateBulk(slice any, setFunc func(*KBDocumentCreate, int)) *KBDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KBDocumentCreateBulk{err: fmt.Errorf("calling to KBDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KBDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KBDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KBDocument.
func (c *KBDocumentClient) Update() *KBDocumentUpdate {
	mutation := newKBDocumentMutation(c.config, OpUpdate)
	return &KBDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KBDocumentClient) UpdateOne(_m *KBDocument) *KBDocumentUpdateOne {
	mutation := newKBDocumentMutation(c.config, OpUpdateOne, withKBDocument(_m))
	return &KBDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KBDocumentClient) UpdateOneID(id string) *KBDocumentUpdateOne {
	mutation := newKBDocumentMutation(c.config, OpUpdateOne, withKBDocumentID(id))
	return &KBDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KBDocument.
func (c *KBDocumentClient) Delete() *KBDocumentDelete {
	mutation := newKBDocumentMutation(c.config, OpDelete)
	return &KBDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KBDocumentClient) DeleteOne(_m *KBDocument) *KBDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KBDocumentClient) DeleteOneID(id string) *KBDocumentDeleteOne {
	builder := c.Delete().Where(kbdocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KBDocumentDeleteOne{builder}
}

// Query returns a query builder for KBDocument.
func (c *KBDocumentClient) Query() *KBDocumentQuery {
	return &KBDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKBDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a KBDocument entity by its id.
func (c *KBDocumentClient) Get(ctx context.Context, id string) (*KBDocument, error) {
	return c.Query().Where(kbdocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KBDocumentClient) GetX(ctx context.Context, id string) *KBDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *KBDocumentClient) Hooks() []Hook {
	return c.hooks.KBDocument
}

// Interceptors returns the client interceptors.
func (c *KBDocumentClient) Interceptors() []Interceptor {
	return c.inters.KBDocument
}

func (c *KBDocumentClient) mutate(ctx context.Context, m *KBDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KBDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KBDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KBDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KBDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KBDocument mutation op: %q", m.Op())
	}
}

// MeasurableGoalClient is a client for the MeasurableGoal schema.
type MeasurableGoalClient struct {
	config
}

// NewMeasurableGoalClient returns a client for the MeasurableGoal from the given config.
func NewMeasurableGoalClient(c config) *MeasurableGoalClient {
	return &MeasurableGoalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `measurablegoal.Hooks(f(g(h())))`.
func (c *MeasurableGoalClient) Use(hooks ...Hook) {
	c.hooks.MeasurableGoal = append(c.hooks.MeasurableGoal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `measurablegoal.Intercept(f(g(h())))`.
func (c *MeasurableGoalClient) Intercept(interceptors ...Interceptor) {
	c.inters.MeasurableGoal = append(c.inters.MeasurableGoal, interceptors...)
}

// Create returns a builder for creating a MeasurableGoal entity.
func (c *MeasurableGoalClient) Create() *MeasurableGoalCreate {
	mutation := newMeasurableGoalMutation(c.config, OpCreate)
	return &MeasurableGoalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MeasurableGoal entities.
func (c *MeasurableGoalClient) CreateBulk(builders ...*MeasurableGoalCreate) *MeasurableGoalCreateBulk {
	return &MeasurableGoalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MeasurableGoalClient) MapCreateBulk(slice any, setFunc func(*MeasurableGoalCreate, int)) *MeasurableGoalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MeasurableGoalCreateBulk{err: fmt.Errorf("calling to MeasurableGoalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MeasurableGoalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MeasurableGoalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MeasurableGoal.
func (c *MeasurableGoalClient) Update() *MeasurableGoalUpdate {
	mutation := newMeasurableGoalMutation(c.config, OpUpdate)
	return &MeasurableGoalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MeasurableGoalClient) UpdateOne(_m *MeasurableGoal) *MeasurableGoalUpdateOne {
	mutation := newMeasurableGoalMutation(c.config, OpUpdateOne, withMeasurableGoal(_m))
	return &MeasurableGoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MeasurableGoalClient) UpdateOneID(id string) *MeasurableGoalUpdateOne {
	mutation := newMeasurableGoalMutation(c.config, OpUpdateOne, withMeasurableGoalID(id))
	return &MeasurableGoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MeasurableGoal.
func (c *MeasurableGoalClient) Delete() *MeasurableGoalDelete {
	mutation := newMeasurableGoalMutation(c.config, OpDelete)
	return &MeasurableGoalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MeasurableGoalClient) DeleteOne(_m *MeasurableGoal) *MeasurableGoalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MeasurableGoalClient) DeleteOneID(id string) *MeasurableGoalDeleteOne {
	builder := c.Delete().Where(measurablegoal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MeasurableGoalDeleteOne{builder}
}

// Query returns a query builder for MeasurableGoal.
func (c *MeasurableGoalClient) Query() *MeasurableGoalQuery {
	return &MeasurableGoalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMeasurableGoal},
		inters: c.Interceptors(),
	}
}

// Get returns a MeasurableGoal entity by its id.
func (c *MeasurableGoalClient) Get(ctx context.Context, id string) (*MeasurableGoal, error) {
	return c.Query().Where(measurablegoal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MeasurableGoalClient) GetX(ctx context.Context, id string) *MeasurableGoal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MeasurableGoalClient) Hooks() []Hook {
	return c.hooks.MeasurableGoal
}

// Interceptors returns the client interceptors.
func (c *MeasurableGoalClient) Interceptors() []Interceptor {
	return c.inters.MeasurableGoal
}

func (c *MeasurableGoalClient) mutate(ctx context.Context, m *MeasurableGoalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MeasurableGoalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MeasurableGoalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MeasurableGoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MeasurableGoalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MeasurableGoal mutation op: %q", m.Op())
	}
}

// MeetingClient is a client for the Meeting schema.
type MeetingClient struct {
	config
}

// NewMeetingClient returns a client for the Meeting from the given config.
func NewMeetingClient(c config) *MeetingClient {
	return &MeetingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `meeting.Hooks(f(g(h())))`.
func (c *MeetingClient) Use(hooks ...Hook) {
	c.hooks.Meeting = append(c.hooks.Meeting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `meeting.Intercept(f(g(h())))`.
func (c *MeetingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Meeting = append(c.inters.Meeting, interceptors...)
}

// Create returns a builder for creating a Meeting entity.
func (c *MeetingClient) Create() *MeetingCreate {
	mutation := newMeetingMutation(c.config, OpCreate)
	return &MeetingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Meeting entities.
func (c *MeetingClient) CreateBulk(builders ...*MeetingCreate) *MeetingCreateBulk {
	return &MeetingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MeetingClient) MapCreateBulk(slice any, setFunc func(*MeetingCreate, int)) *MeetingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MeetingCreateBulk{err: fmt.Errorf("calling to MeetingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MeetingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MeetingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Meeting.
func (c *MeetingClient) Update() *MeetingUpdate {
	mutation := newMeetingMutation(c.config, OpUpdate)
	return &MeetingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MeetingClient) UpdateOne(_m *Meeting) *MeetingUpdateOne {
	mutation := newMeetingMutation(c.config, OpUpdateOne, withMeeting(_m))
	return &MeetingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MeetingClient) UpdateOneID(id string) *MeetingUpdateOne {
	mutation := newMeetingMutation(c.config, OpUpdateOne, withMeetingID(id))
	return &MeetingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Meeting.
func (c *MeetingClient) Delete() *MeetingDelete {
	mutation := newMeetingMutation(c.config, OpDelete)
	return &MeetingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MeetingClient) DeleteOne(_m *Meeting) *MeetingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MeetingClient) DeleteOneID(id string) *MeetingDeleteOne {
	builder := c.Delete().Where(meeting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MeetingDeleteOne{builder}
}

// Query returns a query builder for Meeting.
func (c *MeetingClient) Query() *MeetingQuery {
	return &MeetingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMeeting},
		inters: c.Interceptors(),
	}
}

// Get returns a Meeting entity by its id.
func (c *MeetingClient) Get(ctx context.Context, id string) (*Meeting, error) {
	return c.Query().Where(meeting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MeetingClient) GetX(ctx context.Context, id string) *Meeting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MeetingClient) Hooks() []Hook {
	return c.hooks.Meeting
}

// Interceptors returns the client interceptors.
func (c *MeetingClient) Interceptors() []Interceptor {
	return c.inters.Meeting
}

func (c *MeetingClient) mutate(ctx context.Context, m *MeetingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MeetingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MeetingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MeetingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MeetingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Meeting mutation op: %q", m.Op())
	}
}

// MeetingMessageClient is a client for the MeetingMessage schema.
type MeetingMessageClient struct {
	config
}

// NewMeetingMessageClient returns a client for the MeetingMessage from the given config.
func NewMeetingMessageClient(c config) *MeetingMessageClient {
	return &MeetingMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `meetingmessage.Hooks(f(g(h())))`.
func (c *MeetingMessageClient) Use(hooks ...Hook) {
	c.hooks.MeetingMessage = append(c.hooks.MeetingMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `meetingmessage.Intercept(f(g(h())))`.
func (c *MeetingMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.MeetingMessage = append(c.inters.MeetingMessage, interceptors...)
}

// Create returns a builder for creating a MeetingMessage entity.
func (c *MeetingMessageClient) Create() *MeetingMessageCreate {
	mutation := newMeetingMessageMutation(c.config, OpCreate)
	return &MeetingMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MeetingMessage entities.
func (c *MeetingMessageClient) CreateBulk(builders ...*MeetingMessageCreate) *MeetingMessageCreateBulk {
	return &MeetingMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MeetingMessageClient) MapCreateBulk(slice any, setFunc func(*MeetingMessageCreate, int)) *MeetingMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MeetingMessageCreateBulk{err: fmt.Errorf("calling to MeetingMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MeetingMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MeetingMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MeetingMessage.
func (c *MeetingMessageClient) Update() *MeetingMessageUpdate {
	mutation := newMeetingMessageMutation(c.config, OpUpdate)
	return &MeetingMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MeetingMessageClient) UpdateOne(_m *MeetingMessage) *MeetingMessageUpdateOne {
	mutation := newMeetingMessageMutation(c.config, OpUpdateOne, withMeetingMessage(_m))
	return &MeetingMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MeetingMessageClient) UpdateOneID(id int) *MeetingMessageUpdateOne {
	mutation := newMeetingMessageMutation(c.config, OpUpdateOne, withMeetingMessageID(id))
	return &MeetingMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MeetingMessage.
func (c *MeetingMessageClient) Delete() *MeetingMessageDelete {
	mutation := newMeetingMessageMutation(c.config, OpDelete)
	return &MeetingMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MeetingMessageClient) DeleteOne(_m *MeetingMessage) *MeetingMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MeetingMessageClient) DeleteOneID(id int) *MeetingMessageDeleteOne {
	builder := c.Delete().Where(meetingmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MeetingMessageDeleteOne{builder}
}

// Query returns a query builder for MeetingMessage.
func (c *MeetingMessageClient) Query() *MeetingMessageQuery {
	return &MeetingMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMeetingMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a MeetingMessage entity by its id.
func (c *MeetingMessageClient) Get(ctx context.Context, id int) (*MeetingMessage, error) {
	return c.Query().Where(meetingmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MeetingMessageClient) GetX(ctx context.Context, id int) *MeetingMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MeetingMessageClient) Hooks() []Hook {
	return c.hooks.MeetingMessage
}

// Interceptors returns the client interceptors.
func (c *MeetingMessageClient) Interceptors() []Interceptor {
	return c.inters.MeetingMessage
}

func (c *MeetingMessageClient) mutate(ctx context.Context, m *MeetingMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MeetingMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MeetingMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MeetingMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MeetingMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MeetingMessage mutation op: %q", m.Op())
	}
}

// MemoryClient is a client for the Memory schema.
type MemoryClient struct {
	config
}

// NewMemoryClient returns a client for the Memory from the given config.
func NewMemoryClient(c config) *MemoryClient {
	return &MemoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `memory.Hooks(f(g(h())))`.
func (c *MemoryClient) Use(hooks ...Hook) {
	c.hooks.Memory = append(c.hooks.Memory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `memory.Intercept(f(g(h())))`.
func (c *MemoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Memory = append(c.inters.Memory, interceptors...)
}

// Create returns a builder for creating a Memory entity.
func (c *MemoryClient) Create() *MemoryCreate {
	mutation := newMemoryMutation(c.config, OpCreate)
	return &MemoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Memory entities.
func (c *MemoryClient) CreateBulk(builders ...*MemoryCreate) *MemoryCreateBulk {
	return &MemoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MemoryClient) MapCreateBulk(slice any, setFunc func(*MemoryCreate, int)) *MemoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MemoryCreateBulk{err: fmt.Errorf("calling to MemoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MemoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MemoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Memory.
func (c *MemoryClient) Update() *MemoryUpdate {
	mutation := newMemoryMutation(c.config, OpUpdate)
	return &MemoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MemoryClient) UpdateOne(_m *Memory) *MemoryUpdateOne {
	mutation := newMemoryMutation(c.config, OpUpdateOne, withMemory(_m))
	return &MemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MemoryClient) UpdateOneID(id string) *MemoryUpdateOne {
	mutation := newMemoryMutation(c.config, OpUpdateOne, withMemoryID(id))
	return &MemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Memory.
func (c *MemoryClient) Delete() *MemoryDelete {
	mutation := newMemoryMutation(c.config, OpDelete)
	return &MemoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MemoryClient) DeleteOne(_m *Memory) *MemoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MemoryClient) DeleteOneID(id string) *MemoryDeleteOne {
	builder := c.Delete().Where(memory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MemoryDeleteOne{builder}
}

// Query returns a query builder for Memory.
func (c *MemoryClient) Query() *MemoryQuery {
	return &MemoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMemory},
		inters: c.Interceptors(),
	}
}

// Get returns a Memory entity by its id.
func (c *MemoryClient) Get(ctx context.Context, id string) (*Memory, error) {
	return c.Query().Where(memory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MemoryClient) GetX(ctx context.Context, id string) *Memory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MemoryClient) Hooks() []Hook {
	return c.hooks.Memory
}

// Interceptors returns the client interceptors.
func (c *MemoryClient) Interceptors() []Interceptor {
	return c.inters.Memory
}

func (c *MemoryClient) mutate(ctx context.Context, m *MemoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MemoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MemoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MemoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Memory mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id int) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id int) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id int) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id int) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Notification mutation op: %q", m.Op())
	}
}

// SorPermissionClient is a client for the SorPermission schema.
type SorPermissionClient struct {
	config
}

// NewSorPermissionClient returns a client for the SorPermission from the given config.
func NewSorPermissionClient(c config) *SorPermissionClient {
	return &SorPermissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sorpermission.Hooks(f(g(h())))`.
func (c *SorPermissionClient) Use(hooks ...Hook) {
	c.hooks.SorPermission = append(c.hooks.SorPermission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sorpermission.Intercept(f(g(h())))`.
func (c *SorPermissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.SorPermission = append(c.inters.SorPermission, interceptors...)
}

// Create returns a builder for creating a SorPermission entity.
func (c *SorPermissionClient) Create() *SorPermissionCreate {
	mutation := newSorPermissionMutation(c.config, OpCreate)
	return &SorPermissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SorPermission entities.
func (c *SorPermissionClient) CreateBulk(builders ...*SorPermissionCreate) *SorPermissionCreateBulk {
	return &SorPermissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SorPermissionClient) MapCreateBulk(slice any, setFunc func(*SorPermissionCreate, int)) *SorPermissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SorPermissionCreateBulk{err: fmt.Errorf("calling to SorPermissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SorPermissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SorPermissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SorPermission.
func (c *SorPermissionClient) Update() *SorPermissionUpdate {
	mutation := newSorPermissionMutation(c.config, OpUpdate)
	return &SorPermissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SorPermissionClient) UpdateOne(_m *SorPermission) *SorPermissionUpdateOne {
	mutation := newSorPermissionMutation(c.config, OpUpdateOne, withSorPermission(_m))
	return &SorPermissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SorPermissionClient) UpdateOneID(id int) *SorPermissionUpdateOne {
	mutation := newSorPermissionMutation(c.config, OpUpdateOne, withSorPermissionID(id))
	return &SorPermissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SorPermission.
func (c *SorPermissionClient) Delete() *SorPermissionDelete {
	mutation := newSorPermissionMutation(c.config, OpDelete)
	return &SorPermissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SorPermissionClient) DeleteOne(_m *SorPermission) *SorPermissionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SorPermissionClient) DeleteOneID(id int) *SorPermissionDeleteOne {
	builder := c.Delete().Where(sorpermission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SorPermissionDeleteOne{builder}
}

// Query returns a query builder for SorPermission.
func (c *SorPermissionClient) Query() *SorPermissionQuery {
	return &SorPermissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSorPermission},
		inters: c.Interceptors(),
	}
}

// Get returns a SorPermission entity by its id.
func (c *SorPermissionClient) Get(ctx context.Context, id int) (*SorPermission, error) {
	return c.Query().Where(sorpermission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SorPermissionClient) GetX(ctx context.Context, id int) *SorPermission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SorPermissionClient) Hooks() []Hook {
	return c.hooks.SorPermission
}

// Interceptors returns the client interceptors.
func (c *SorPermissionClient) Interceptors() []Interceptor {
	return c.inters.SorPermission
}

func (c *SorPermissionClient) mutate(ctx context.Context, m *SorPermissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SorPermissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SorPermissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SorPermissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SorPermissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SorPermission mutation op: %q", m.Op())
	}
}

// SorRowClient is a client for the SorRow schema.
type SorRowClient struct {
	config
}

// NewSorRowClient returns a client for the SorRow from the given config.
func NewSorRowClient(c config) *SorRowClient {
	return &SorRowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sorrow.Hooks(f(g(h())))`.
func (c *SorRowClient) Use(hooks ...Hook) {
	c.hooks.SorRow = append(c.hooks.SorRow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sorrow.Intercept(f(g(h())))`.
func (c *SorRowClient) Intercept(interceptors ...Interceptor) {
	c.inters.SorRow = append(c.inters.SorRow, interceptors...)
}

// Create returns a builder for creating a SorRow entity.
func (c *SorRowClient) Create() *SorRowCreate {
	mutation := newSorRowMutation(c.config, OpCreate)
	return &SorRowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SorRow entities.
func (c *SorRowClient) CreateBulk(builders ...*SorRowCreate) *SorRowCreateBulk {
	return &SorRowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SorRowClient) MapCreateBulk(slice any, setFunc func(*SorRowCreate, int)) *SorRowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SorRowCreateBulk{err: fmt.Errorf("calling to SorRowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SorRowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SorRowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SorRow.
func (c *SorRowClient) Update() *SorRowUpdate {
	mutation := newSorRowMutation(c.config, OpUpdate)
	return &SorRowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SorRowClient) UpdateOne(_m *SorRow) *SorRowUpdateOne {
	mutation := newSorRowMutation(c.config, OpUpdateOne, withSorRow(_m))
	return &SorRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SorRowClient) UpdateOneID(id int) *SorRowUpdateOne {
	mutation := newSorRowMutation(c.config, OpUpdateOne, withSorRowID(id))
	return &SorRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SorRow.
func (c *SorRowClient) Delete() *SorRowDelete {
	mutation := newSorRowMutation(c.config, OpDelete)
	return &SorRowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SorRowClient) DeleteOne(_m *SorRow) *SorRowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SorRowClient) DeleteOneID(id int) *SorRowDeleteOne {
	builder := c.Delete().Where(sorrow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SorRowDeleteOne{builder}
}

// Query returns a query builder for SorRow.
func (c *SorRowClient) Query() *SorRowQuery {
	return &SorRowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSorRow},
		inters: c.Interceptors(),
	}
}

// Get returns a SorRow entity by its id.
func (c *SorRowClient) Get(ctx context.Context, id int) (*SorRow, error) {
	return c.Query().Where(sorrow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SorRowClient) GetX(ctx context.Context, id int) *SorRow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SorRowClient) Hooks() []Hook {
	return c.hooks.SorRow
}

// Interceptors returns the client interceptors.
func (c *SorRowClient) Interceptors() []Interceptor {
	return c.inters.SorRow
}

func (c *SorRowClient) mutate(ctx context.Context, m *SorRowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SorRowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SorRowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SorRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SorRowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SorRow mutation op: %q", m.Op())
	}
}

// SorTableClient is a client for the SorTable schema.
type SorTableClient struct {
	config
}

// NewSorTableClient returns a client for the SorTable from the given config.
func NewSorTableClient(c config) *SorTableClient {
	return &SorTableClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sortable.Hooks(f(g(h())))`.
func (c *SorTableClient) Use(hooks ...Hook) {
	c.hooks.SorTable = append(c.hooks.SorTable, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sortable.Intercept(f(g(h())))`.
func (c *SorTableClient) Intercept(interceptors ...Interceptor) {
	c.inters.SorTable = append(c.inters.SorTable, interceptors...)
}

// Create returns a builder for creating a SorTable entity.
func (c *SorTableClient) Create() *SorTableCreate {
	mutation := newSorTableMutation(c.config, OpCreate)
	return &SorTableCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SorTable entities.
func (c *SorTableClient) CreateBulk(builders ...*SorTableCreate) *SorTableCreateBulk {
	return &SorTableCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SorTableClient) MapCreateBulk(slice any, setFunc func(*SorTableCreate, int)) *SorTableCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SorTableCreateBulk{err: fmt.Errorf("calling to SorTableClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SorTableCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SorTableCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SorTable.
func (c *SorTableClient) Update() *SorTableUpdate {
	mutation := newSorTableMutation(c.config, OpUpdate)
	return &SorTableUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SorTableClient) UpdateOne(_m *SorTable) *SorTableUpdateOne {
	mutation := newSorTableMutation(c.config, OpUpdateOne, withSorTable(_m))
	return &SorTableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SorTableClient) UpdateOneID(id string) *SorTableUpdateOne {
	mutation := newSorTableMutation(c.config, OpUpdateOne, withSorTableID(id))
	return &SorTableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SorTable.
func (c *SorTableClient) Delete() *SorTableDelete {
	mutation := newSorTableMutation(c.config, OpDelete)
	return &SorTableDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SorTableClient) DeleteOne(_m *SorTable) *SorTableDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SorTableClient) DeleteOneID(id string) *SorTableDeleteOne {
	builder := c.Delete().Where(sortable.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SorTableDeleteOne{builder}
}

// Query returns a query builder for SorTable.
func (c *SorTableClient) Query() *SorTableQuery {
	return &SorTableQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSorTable},
		inters: c.Interceptors(),
	}
}

// Get returns a SorTable entity by its id.
func (c *SorTableClient) Get(ctx context.Context, id string) (*SorTable, error) {
	return c.Query().Where(sortable.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SorTableClient) GetX(ctx context.Context, id string) *SorTable {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SorTableClient) Hooks() []Hook {
	return c.hooks.SorTable
}

// Interceptors returns the client interceptors.
func (c *SorTableClient) Interceptors() []Interceptor {
	return c.inters.SorTable
}

func (c *SorTableClient) mutate(ctx context.Context, m *SorTableMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SorTableCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SorTableUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SorTableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SorTableDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SorTable mutation op: %q", m.Op())
	}
}

// SubscriptionClient is a client for the Subscription schema.
type SubscriptionClient struct {
	config
}

// NewSubscriptionClient returns a client for the Subscription from the given config.
func NewSubscriptionClient(c config) *SubscriptionClient {
	return &SubscriptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subscription.Hooks(f(g(h())))`.
func (c *SubscriptionClient) Use(hooks ...Hook) {
	c.hooks.Subscription = append(c.hooks.Subscription, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subscription.Intercept(f(g(h())))`.
func (c *SubscriptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subscription = append(c.inters.Subscription, interceptors...)
}

// Create returns a builder for creating a Subscription entity.
func (c *SubscriptionClient) Create() *SubscriptionCreate {
	mutation := newSubscriptionMutation(c.config, OpCreate)
	return &SubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subscription entities.
func (c *SubscriptionClient) CreateBulk(builders ...*SubscriptionCreate) *SubscriptionCreateBulk {
	return &SubscriptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubscriptionClient) MapCreateBulk(slice any, setFunc func(*SubscriptionCreate, int)) *SubscriptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubscriptionCreateBulk{err: fmt.Errorf("calling to SubscriptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubscriptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubscriptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subscription.
func (c *SubscriptionClient) Update() *SubscriptionUpdate {
	mutation := newSubscriptionMutation(c.config, OpUpdate)
	return &SubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubscriptionClient) UpdateOne(_m *Subscription) *SubscriptionUpdateOne {
	mutation := newSubscriptionMutation(c.config, OpUpdateOne, withSubscription(_m))
	return &SubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubscriptionClient) UpdateOneID(id int) *SubscriptionUpdateOne {
	mutation := newSubscriptionMutation(c.config, OpUpdateOne, withSubscriptionID(id))
	return &SubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subscription.
func (c *SubscriptionClient) Delete() *SubscriptionDelete {
	mutation := newSubscriptionMutation(c.config, OpDelete)
	return &SubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubscriptionClient) DeleteOne(_m *Subscription) *SubscriptionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubscriptionClient) DeleteOneID(id int) *SubscriptionDeleteOne {
	builder := c.Delete().Where(subscription.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubscriptionDeleteOne{builder}
}

// Query returns a query builder for Subscription.
func (c *SubscriptionClient) Query() *SubscriptionQuery {
	return &SubscriptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubscription},
		inters: c.Interceptors(),
	}
}

// Get returns a Subscription entity by its id.
func (c *SubscriptionClient) Get(ctx context.Context, id int) (*Subscription, error) {
	return c.Query().Where(subscription.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubscriptionClient) GetX(ctx context.Context, id int) *Subscription {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubscriptionClient) Hooks() []Hook {
	return c.hooks.Subscription
}

// Interceptors returns the client interceptors.
func (c *SubscriptionClient) Interceptors() []Interceptor {
	return c.inters.Subscription
}

func (c *SubscriptionClient) mutate(ctx context.Context, m *SubscriptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subscription mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TeamClient is a client for the Team schema.
type TeamClient struct {
	config
}

// NewTeamClient returns a client for the Team from the given config.
func NewTeamClient(c config) *TeamClient {
	return &TeamClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `team.Hooks(f(g(h())))`.
func (c *TeamClient) Use(hooks ...Hook) {
	c.hooks.Team = append(c.hooks.Team, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `team.Intercept(f(g(h())))`.
func (c *TeamClient) Intercept(interceptors ...Interceptor) {
	c.inters.Team = append(c.inters.Team, interceptors...)
}

// Create returns a builder for creating a Team entity.
func (c *TeamClient) Create() *TeamCreate {
	mutation := newTeamMutation(c.config, OpCreate)
	return &TeamCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Team entities.
func (c *TeamClient) CreateBulk(builders ...*TeamCreate) *TeamCreateBulk {
	return &TeamCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TeamClient) MapCreateBulk(slice any, setFunc func(*TeamCreate, int)) *TeamCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TeamCreateBulk{err: fmt.Errorf("calling to TeamClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TeamCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TeamCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Team.
func (c *TeamClient) Update() *TeamUpdate {
	mutation := newTeamMutation(c.config, OpUpdate)
	return &TeamUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TeamClient) UpdateOne(_m *Team) *TeamUpdateOne {
	mutation := newTeamMutation(c.config, OpUpdateOne, withTeam(_m))
	return &TeamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TeamClient) UpdateOneID(id string) *TeamUpdateOne {
	mutation := newTeamMutation(c.config, OpUpdateOne, withTeamID(id))
	return &TeamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Team.
func (c *TeamClient) Delete() *TeamDelete {
	mutation := newTeamMutation(c.config, OpDelete)
	return &TeamDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TeamClient) DeleteOne(_m *Team) *TeamDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TeamClient) DeleteOneID(id string) *TeamDeleteOne {
	builder := c.Delete().Where(team.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TeamDeleteOne{builder}
}

// Query returns a query builder for Team.
func (c *TeamClient) Query() *TeamQuery {
	return &TeamQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTeam},
		inters: c.Interceptors(),
	}
}

// Get returns a Team entity by its id.
func (c *TeamClient) Get(ctx context.Context, id string) (*Team, error) {
	return c.Query().Where(team.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TeamClient) GetX(ctx context.Context, id string) *Team {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TeamClient) Hooks() []Hook {
	return c.hooks.Team
}

// Interceptors returns the client interceptors.
func (c *TeamClient) Interceptors() []Interceptor {
	return c.inters.Team
}

func (c *TeamClient) mutate(ctx context.Context, m *TeamMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TeamCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TeamUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TeamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TeamDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Team mutation op: %q", m.Op())
	}
}

// TeamMemberClient is a client for the TeamMember schema.
type TeamMemberClient struct {
	config
}

// NewTeamMemberClient returns a client for the TeamMember from the given config.
func NewTeamMemberClient(c config) *TeamMemberClient {
	return &TeamMemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `teammember.Hooks(f(g(h())))`.
func (c *TeamMemberClient) Use(hooks ...Hook) {
	c.hooks.TeamMember = append(c.hooks.TeamMember, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `teammember.Intercept(f(g(h())))`.
func (c *TeamMemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.TeamMember = append(c.inters.TeamMember, interceptors...)
}

// Create returns a builder for creating a TeamMember entity.
func (c *TeamMemberClient) Create() *TeamMemberCreate {
	mutation := newTeamMemberMutation(c.config, OpCreate)
	return &TeamMemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TeamMember entities.
func (c *TeamMemberClient) CreateBulk(builders ...*TeamMemberCreate) *TeamMemberCreateBulk {
	return &TeamMemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TeamMemberClient) MapCreateBulk(slice any, setFunc func(*TeamMemberCreate, int)) *TeamMemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TeamMemberCreateBulk{err: fmt.Errorf("calling to TeamMemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TeamMemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TeamMemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TeamMember.
func (c *TeamMemberClient) Update() *TeamMemberUpdate {
	mutation := newTeamMemberMutation(c.config, OpUpdate)
	return &TeamMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TeamMemberClient) UpdateOne(_m *TeamMember) *TeamMemberUpdateOne {
	mutation := newTeamMemberMutation(c.config, OpUpdateOne, withTeamMember(_m))
	return &TeamMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TeamMemberClient) UpdateOneID(id int) *TeamMemberUpdateOne {
	mutation := newTeamMemberMutation(c.config, OpUpdateOne, withTeamMemberID(id))
	return &TeamMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TeamMember.
func (c *TeamMemberClient) Delete() *TeamMemberDelete {
	mutation := newTeamMemberMutation(c.config, OpDelete)
	return &TeamMemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TeamMemberClient) DeleteOne(_m *TeamMember) *TeamMemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TeamMemberClient) DeleteOneID(id int) *TeamMemberDeleteOne {
	builder := c.Delete().Where(teammember.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TeamMemberDeleteOne{builder}
}

// Query returns a query builder for TeamMember.
func (c *TeamMemberClient) Query() *TeamMemberQuery {
	return &TeamMemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTeamMember},
		inters: c.Interceptors(),
	}
}

// Get returns a TeamMember entity by its id.
func (c *TeamMemberClient) Get(ctx context.Context, id int) (*TeamMember, error) {
	return c.Query().Where(teammember.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TeamMemberClient) GetX(ctx context.Context, id int) *TeamMember {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TeamMemberClient) Hooks() []Hook {
	return c.hooks.TeamMember
}

// Interceptors returns the client interceptors.
func (c *TeamMemberClient) Interceptors() []Interceptor {
	return c.inters.TeamMember
}

func (c *TeamMemberClient) mutate(ctx context.Context, m *TeamMemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TeamMemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TeamMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TeamMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TeamMemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TeamMember mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ActivityEvent, Agent, Approval, ChatChannel, ChatMessage, Credential,
		CreditTransaction, Event, Goal, KBChunk, KBDocument, MeasurableGoal, Meeting,
		MeetingMessage, Memory, Notification, SorPermission, SorRow, SorTable,
		Subscription, Task, Team, TeamMember []ent.Hook
	}
	inters struct {
		ActivityEvent, Agent, Approval, ChatChannel, ChatMessage, Credential,
		CreditTransaction, Event, Goal, KBChunk, KBDocument, MeasurableGoal, Meeting,
		MeetingMessage, Memory, Notification, SorPermission, SorRow, SorTable,
		Subscription, Task, Team, TeamMember []ent.Interceptor
	}
)
