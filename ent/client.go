// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/account"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/admincall"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/blacklistentry"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/blacklistlog"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/bonushistory"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/bonuswallet"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatmessage"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatoutbox"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatsnapshot"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/dashboardsession"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/lotmapping"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/notification"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/orderevent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/reviewreward"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/setting"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/user"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Account is the client for interacting with the Account builders.
	Account *AccountClient
	// AdminCall is the client for interacting with the AdminCall builders.
	AdminCall *AdminCallClient
	// BlacklistEntry is the client for interacting with the BlacklistEntry builders.
	BlacklistEntry *BlacklistEntryClient
	// BlacklistLog is the client for interacting with the BlacklistLog builders.
	BlacklistLog *BlacklistLogClient
	// BonusHistory is the client for interacting with the BonusHistory builders.
	BonusHistory *BonusHistoryClient
	// BonusWallet is the client for interacting with the BonusWallet builders.
	BonusWallet *BonusWalletClient
	// ChatMessage is the client for interacting with the ChatMessage builders.
	ChatMessage *ChatMessageClient
	// ChatOutbox is the client for interacting with the ChatOutbox builders.
	ChatOutbox *ChatOutboxClient
	// ChatSnapshot is the client for interacting with the ChatSnapshot builders.
	ChatSnapshot *ChatSnapshotClient
	// DashboardSession is the client for interacting with the DashboardSession builders.
	DashboardSession *DashboardSessionClient
	// LotMapping is the client for interacting with the LotMapping builders.
	LotMapping *LotMappingClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// OrderEvent is the client for interacting with the OrderEvent builders.
	OrderEvent *OrderEventClient
	// ReviewReward is the client for interacting with the ReviewReward builders.
	ReviewReward *ReviewRewardClient
	// Setting is the client for interacting with the Setting builders.
	Setting *SettingClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// Workspace is the client for interacting with the Workspace builders.
	Workspace *WorkspaceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Account = NewAccountClient(c.config)
	c.AdminCall = NewAdminCallClient(c.config)
	c.BlacklistEntry = NewBlacklistEntryClient(c.config)
	c.BlacklistLog = NewBlacklistLogClient(c.config)
	c.BonusHistory = NewBonusHistoryClient(c.config)
	c.BonusWallet = NewBonusWalletClient(c.config)
	c.ChatMessage = NewChatMessageClient(c.config)
	c.ChatOutbox = NewChatOutboxClient(c.config)
	c.ChatSnapshot = NewChatSnapshotClient(c.config)
	c.DashboardSession = NewDashboardSessionClient(c.config)
	c.LotMapping = NewLotMappingClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.OrderEvent = NewOrderEventClient(c.config)
	c.ReviewReward = NewReviewRewardClient(c.config)
	c.Setting = NewSettingClient(c.config)
	c.User = NewUserClient(c.config)
	c.Workspace = NewWorkspaceClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Account:          NewAccountClient(cfg),
		AdminCall:        NewAdminCallClient(cfg),
		BlacklistEntry:   NewBlacklistEntryClient(cfg),
		BlacklistLog:     NewBlacklistLogClient(cfg),
		BonusHistory:     NewBonusHistoryClient(cfg),
		BonusWallet:      NewBonusWalletClient(cfg),
		ChatMessage:      NewChatMessageClient(cfg),
		ChatOutbox:       NewChatOutboxClient(cfg),
		ChatSnapshot:     NewChatSnapshotClient(cfg),
		DashboardSession: NewDashboardSessionClient(cfg),
		LotMapping:       NewLotMappingClient(cfg),
		Notification:     NewNotificationClient(cfg),
		OrderEvent:       NewOrderEventClient(cfg),
		ReviewReward:     NewReviewRewardClient(cfg),
		Setting:          NewSettingClient(cfg),
		User:             NewUserClient(cfg),
		Workspace:        NewWorkspaceClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		Account:          NewAccountClient(cfg),
		AdminCall:        NewAdminCallClient(cfg),
		BlacklistEntry:   NewBlacklistEntryClient(cfg),
		BlacklistLog:     NewBlacklistLogClient(cfg),
		BonusHistory:     NewBonusHistoryClient(cfg),
		BonusWallet:      NewBonusWalletClient(cfg),
		ChatMessage:      NewChatMessageClient(cfg),
		ChatOutbox:       NewChatOutboxClient(cfg),
		ChatSnapshot:     NewChatSnapshotClient(cfg),
		DashboardSession: NewDashboardSessionClient(cfg),
		LotMapping:       NewLotMappingClient(cfg),
		Notification:     NewNotificationClient(cfg),
		OrderEvent:       NewOrderEventClient(cfg),
		ReviewReward:     NewReviewRewardClient(cfg),
		Setting:          NewSettingClient(cfg),
		User:             NewUserClient(cfg),
		Workspace:        NewWorkspaceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Account.
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
		c.Account, c.AdminCall, c.BlacklistEntry, c.BlacklistLog, c.BonusHistory,
		c.BonusWallet, c.ChatMessage, c.ChatOutbox, c.ChatSnapshot, c.DashboardSession,
		c.LotMapping, c.Notification, c.OrderEvent, c.ReviewReward, c.Setting, c.User,
		c.Workspace,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Account, c.AdminCall, c.BlacklistEntry, c.BlacklistLog, c.BonusHistory,
		c.BonusWallet, c.ChatMessage, c.ChatOutbox, c.ChatSnapshot, c.DashboardSession,
		c.LotMapping, c.Notification, c.OrderEvent, c.ReviewReward, c.Setting, c.User,
		c.Workspace,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AccountMutation:
		return c.Account.mutate(ctx, m)
	case *AdminCallMutation:
		return c.AdminCall.mutate(ctx, m)
	case *BlacklistEntryMutation:
		return c.BlacklistEntry.mutate(ctx, m)
	case *BlacklistLogMutation:
		return c.BlacklistLog.mutate(ctx, m)
	case *BonusHistoryMutation:
		return c.BonusHistory.mutate(ctx, m)
	case *BonusWalletMutation:
		return c.BonusWallet.mutate(ctx, m)
	case *ChatMessageMutation:
		return c.ChatMessage.mutate(ctx, m)
	case *ChatOutboxMutation:
		return c.ChatOutbox.mutate(ctx, m)
	case *ChatSnapshotMutation:
		return c.ChatSnapshot.mutate(ctx, m)
	case *DashboardSessionMutation:
		return c.DashboardSession.mutate(ctx, m)
	case *LotMappingMutation:
		return c.LotMapping.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *OrderEventMutation:
		return c.OrderEvent.mutate(ctx, m)
	case *ReviewRewardMutation:
		return c.ReviewReward.mutate(ctx, m)
	case *SettingMutation:
		return c.Setting.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *WorkspaceMutation:
		return c.Workspace.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AccountClient is a client for the Account schema.
type AccountClient struct {
	config
}

// NewAccountClient returns a client for the Account from the given config.
func NewAccountClient(c config) *AccountClient {
	return &AccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `account.Hooks(f(g(h())))`.
func (c *AccountClient) Use(hooks ...Hook) {
	c.hooks.Account = append(c.hooks.Account, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `account.Intercept(f(g(h())))`.
func (c *AccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.Account = append(c.inters.Account, interceptors...)
}

// Create returns a builder for creating a Account entity.
func (c *AccountClient) Create() *AccountCreate {
	mutation := newAccountMutation(c.config, OpCreate)
	return &AccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Account entities.
func (c *AccountClient) CreateBulk(builders ...*AccountCreate) *AccountCreateBulk {
	return &AccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AccountClient) MapCreateBulk(slice any, setFunc func(*AccountCreate, int)) *AccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AccountCreateBulk{err: fmt.Errorf("calling to AccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Account.
func (c *AccountClient) Update() *AccountUpdate {
	mutation := newAccountMutation(c.config, OpUpdate)
	return &AccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AccountClient) UpdateOne(_m *Account) *AccountUpdateOne {
	mutation := newAccountMutation(c.config, OpUpdateOne, withAccount(_m))
	return &AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AccountClient) UpdateOneID(id int) *AccountUpdateOne {
	mutation := newAccountMutation(c.config, OpUpdateOne, withAccountID(id))
	return &AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Account.
func (c *AccountClient) Delete() *AccountDelete {
	mutation := newAccountMutation(c.config, OpDelete)
	return &AccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AccountClient) DeleteOne(_m *Account) *AccountDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AccountClient) DeleteOneID(id int) *AccountDeleteOne {
	builder := c.Delete().Where(account.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AccountDeleteOne{builder}
}

// Query returns a query builder for Account.
func (c *AccountClient) Query() *AccountQuery {
	return &AccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a Account entity by its id.
func (c *AccountClient) Get(ctx context.Context, id int) (*Account, error) {
	return c.Query().Where(account.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AccountClient) GetX(ctx context.Context, id int) *Account {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a Account.
func (c *AccountClient) QueryWorkspace(_m *Account) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(account.Table, account.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, account.WorkspaceTable, account.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AccountClient) Hooks() []Hook {
	return c.hooks.Account
}

// Interceptors returns the client interceptors.
func (c *AccountClient) Interceptors() []Interceptor {
	return c.inters.Account
}

func (c *AccountClient) mutate(ctx context.Context, m *AccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Account mutation op: %q", m.Op())
	}
}

// AdminCallClient is a client for the AdminCall schema.
type AdminCallClient struct {
	config
}

// NewAdminCallClient returns a client for the AdminCall from the given config.
func NewAdminCallClient(c config) *AdminCallClient {
	return &AdminCallClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `admincall.Hooks(f(g(h())))`.
func (c *AdminCallClient) Use(hooks ...Hook) {
	c.hooks.AdminCall = append(c.hooks.AdminCall, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `admincall.Intercept(f(g(h())))`.
func (c *AdminCallClient) Intercept(interceptors ...Interceptor) {
	c.inters.AdminCall = append(c.inters.AdminCall, interceptors...)
}

// Create returns a builder for creating a AdminCall entity.
func (c *AdminCallClient) Create() *AdminCallCreate {
	mutation := newAdminCallMutation(c.config, OpCreate)
	return &AdminCallCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AdminCall entities.
func (c *AdminCallClient) CreateBulk(builders ...*AdminCallCreate) *AdminCallCreateBulk {
	return &AdminCallCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdminCallClient) MapCreateBulk(slice any, setFunc func(*AdminCallCreate, int)) *AdminCallCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdminCallCreateBulk{err: fmt.Errorf("calling to AdminCallClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdminCallCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdminCallCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AdminCall.
func (c *AdminCallClient) Update() *AdminCallUpdate {
	mutation := newAdminCallMutation(c.config, OpUpdate)
	return &AdminCallUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdminCallClient) UpdateOne(_m *AdminCall) *AdminCallUpdateOne {
	mutation := newAdminCallMutation(c.config, OpUpdateOne, withAdminCall(_m))
	return &AdminCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdminCallClient) UpdateOneID(id int) *AdminCallUpdateOne {
	mutation := newAdminCallMutation(c.config, OpUpdateOne, withAdminCallID(id))
	return &AdminCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AdminCall.
func (c *AdminCallClient) Delete() *AdminCallDelete {
	mutation := newAdminCallMutation(c.config, OpDelete)
	return &AdminCallDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdminCallClient) DeleteOne(_m *AdminCall) *AdminCallDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdminCallClient) DeleteOneID(id int) *AdminCallDeleteOne {
	builder := c.Delete().Where(admincall.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdminCallDeleteOne{builder}
}

// Query returns a query builder for AdminCall.
func (c *AdminCallClient) Query() *AdminCallQuery {
	return &AdminCallQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdminCall},
		inters: c.Interceptors(),
	}
}

// Get returns a AdminCall entity by its id.
func (c *AdminCallClient) Get(ctx context.Context, id int) (*AdminCall, error) {
	return c.Query().Where(admincall.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdminCallClient) GetX(ctx context.Context, id int) *AdminCall {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a AdminCall.
func (c *AdminCallClient) QueryWorkspace(_m *AdminCall) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(admincall.Table, admincall.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, admincall.WorkspaceTable, admincall.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AdminCallClient) Hooks() []Hook {
	return c.hooks.AdminCall
}

// Interceptors returns the client interceptors.
func (c *AdminCallClient) Interceptors() []Interceptor {
	return c.inters.AdminCall
}

func (c *AdminCallClient) mutate(ctx context.Context, m *AdminCallMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdminCallCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdminCallUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdminCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdminCallDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AdminCall mutation op: %q", m.Op())
	}
}

// BlacklistEntryClient is a client for the BlacklistEntry schema.
type BlacklistEntryClient struct {
	config
}

// NewBlacklistEntryClient returns a client for the BlacklistEntry from the given config.
func NewBlacklistEntryClient(c config) *BlacklistEntryClient {
	return &BlacklistEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blacklistentry.Hooks(f(g(h())))`.
func (c *BlacklistEntryClient) Use(hooks ...Hook) {
	c.hooks.BlacklistEntry = append(c.hooks.BlacklistEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blacklistentry.Intercept(f(g(h())))`.
func (c *BlacklistEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.BlacklistEntry = append(c.inters.BlacklistEntry, interceptors...)
}

// Create returns a builder for creating a BlacklistEntry entity.
func (c *BlacklistEntryClient) Create() *BlacklistEntryCreate {
	mutation := newBlacklistEntryMutation(c.config, OpCreate)
	return &BlacklistEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BlacklistEntry entities.
func (c *BlacklistEntryClient) CreateBulk(builders ...*BlacklistEntryCreate) *BlacklistEntryCreateBulk {
	return &BlacklistEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlacklistEntryClient) MapCreateBulk(slice any, setFunc func(*BlacklistEntryCreate, int)) *BlacklistEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlacklistEntryCreateBulk{err: fmt.Errorf("calling to BlacklistEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlacklistEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlacklistEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BlacklistEntry.
func (c *BlacklistEntryClient) Update() *BlacklistEntryUpdate {
	mutation := newBlacklistEntryMutation(c.config, OpUpdate)
	return &BlacklistEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlacklistEntryClient) UpdateOne(_m *BlacklistEntry) *BlacklistEntryUpdateOne {
	mutation := newBlacklistEntryMutation(c.config, OpUpdateOne, withBlacklistEntry(_m))
	return &BlacklistEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlacklistEntryClient) UpdateOneID(id int) *BlacklistEntryUpdateOne {
	mutation := newBlacklistEntryMutation(c.config, OpUpdateOne, withBlacklistEntryID(id))
	return &BlacklistEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BlacklistEntry.
func (c *BlacklistEntryClient) Delete() *BlacklistEntryDelete {
	mutation := newBlacklistEntryMutation(c.config, OpDelete)
	return &BlacklistEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlacklistEntryClient) DeleteOne(_m *BlacklistEntry) *BlacklistEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlacklistEntryClient) DeleteOneID(id int) *BlacklistEntryDeleteOne {
	builder := c.Delete().Where(blacklistentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlacklistEntryDeleteOne{builder}
}

// Query returns a query builder for BlacklistEntry.
func (c *BlacklistEntryClient) Query() *BlacklistEntryQuery {
	return &BlacklistEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlacklistEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a BlacklistEntry entity by its id.
func (c *BlacklistEntryClient) Get(ctx context.Context, id int) (*BlacklistEntry, error) {
	return c.Query().Where(blacklistentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlacklistEntryClient) GetX(ctx context.Context, id int) *BlacklistEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a BlacklistEntry.
func (c *BlacklistEntryClient) QueryWorkspace(_m *BlacklistEntry) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blacklistentry.Table, blacklistentry.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, blacklistentry.WorkspaceTable, blacklistentry.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BlacklistEntryClient) Hooks() []Hook {
	return c.hooks.BlacklistEntry
}

// Interceptors returns the client interceptors.
func (c *BlacklistEntryClient) Interceptors() []Interceptor {
	return c.inters.BlacklistEntry
}

func (c *BlacklistEntryClient) mutate(ctx context.Context, m *BlacklistEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlacklistEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlacklistEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlacklistEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlacklistEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BlacklistEntry mutation op: %q", m.Op())
	}
}

// BlacklistLogClient is a client for the BlacklistLog schema.
type BlacklistLogClient struct {
	config
}

// NewBlacklistLogClient returns a client for the BlacklistLog from the given config.
func NewBlacklistLogClient(c config) *BlacklistLogClient {
	return &BlacklistLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blacklistlog.Hooks(f(g(h())))`.
func (c *BlacklistLogClient) Use(hooks ...Hook) {
	c.hooks.BlacklistLog = append(c.hooks.BlacklistLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blacklistlog.Intercept(f(g(h())))`.
func (c *BlacklistLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.BlacklistLog = append(c.inters.BlacklistLog, interceptors...)
}

// Create returns a builder for creating a BlacklistLog entity.
func (c *BlacklistLogClient) Create() *BlacklistLogCreate {
	mutation := newBlacklistLogMutation(c.config, OpCreate)
	return &BlacklistLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BlacklistLog entities.
func (c *BlacklistLogClient) CreateBulk(builders ...*BlacklistLogCreate) *BlacklistLogCreateBulk {
	return &BlacklistLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlacklistLogClient) MapCreateBulk(slice any, setFunc func(*BlacklistLogCreate, int)) *BlacklistLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlacklistLogCreateBulk{err: fmt.Errorf("calling to BlacklistLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlacklistLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlacklistLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BlacklistLog.
func (c *BlacklistLogClient) Update() *BlacklistLogUpdate {
	mutation := newBlacklistLogMutation(c.config, OpUpdate)
	return &BlacklistLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlacklistLogClient) UpdateOne(_m *BlacklistLog) *BlacklistLogUpdateOne {
	mutation := newBlacklistLogMutation(c.config, OpUpdateOne, withBlacklistLog(_m))
	return &BlacklistLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlacklistLogClient) UpdateOneID(id int) *BlacklistLogUpdateOne {
	mutation := newBlacklistLogMutation(c.config, OpUpdateOne, withBlacklistLogID(id))
	return &BlacklistLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BlacklistLog.
func (c *BlacklistLogClient) Delete() *BlacklistLogDelete {
	mutation := newBlacklistLogMutation(c.config, OpDelete)
	return &BlacklistLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlacklistLogClient) DeleteOne(_m *BlacklistLog) *BlacklistLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlacklistLogClient) DeleteOneID(id int) *BlacklistLogDeleteOne {
	builder := c.Delete().Where(blacklistlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlacklistLogDeleteOne{builder}
}

// Query returns a query builder for BlacklistLog.
func (c *BlacklistLogClient) Query() *BlacklistLogQuery {
	return &BlacklistLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlacklistLog},
		inters: c.Interceptors(),
	}
}

// Get returns a BlacklistLog entity by its id.
func (c *BlacklistLogClient) Get(ctx context.Context, id int) (*BlacklistLog, error) {
	return c.Query().Where(blacklistlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlacklistLogClient) GetX(ctx context.Context, id int) *BlacklistLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BlacklistLogClient) Hooks() []Hook {
	return c.hooks.BlacklistLog
}

// Interceptors returns the client interceptors.
func (c *BlacklistLogClient) Interceptors() []Interceptor {
	return c.inters.BlacklistLog
}

func (c *BlacklistLogClient) mutate(ctx context.Context, m *BlacklistLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlacklistLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlacklistLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlacklistLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlacklistLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BlacklistLog mutation op: %q", m.Op())
	}
}

// BonusHistoryClient is a client for the BonusHistory schema.
type BonusHistoryClient struct {
	config
}

// NewBonusHistoryClient returns a client for the BonusHistory from the given config.
func NewBonusHistoryClient(c config) *BonusHistoryClient {
	return &BonusHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `bonushistory.Hooks(f(g(h())))`.
func (c *BonusHistoryClient) Use(hooks ...Hook) {
	c.hooks.BonusHistory = append(c.hooks.BonusHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `bonushistory.Intercept(f(g(h())))`.
func (c *BonusHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.BonusHistory = append(c.inters.BonusHistory, interceptors...)
}

// Create returns a builder for creating a BonusHistory entity.
func (c *BonusHistoryClient) Create() *BonusHistoryCreate {
	mutation := newBonusHistoryMutation(c.config, OpCreate)
	return &BonusHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BonusHistory entities.
func (c *BonusHistoryClient) CreateBulk(builders ...*BonusHistoryCreate) *BonusHistoryCreateBulk {
	return &BonusHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BonusHistoryClient) MapCreateBulk(slice any, setFunc func(*BonusHistoryCreate, int)) *BonusHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BonusHistoryCreateBulk{err: fmt.Errorf("calling to BonusHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BonusHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BonusHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BonusHistory.
func (c *BonusHistoryClient) Update() *BonusHistoryUpdate {
	mutation := newBonusHistoryMutation(c.config, OpUpdate)
	return &BonusHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BonusHistoryClient) UpdateOne(_m *BonusHistory) *BonusHistoryUpdateOne {
	mutation := newBonusHistoryMutation(c.config, OpUpdateOne, withBonusHistory(_m))
	return &BonusHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BonusHistoryClient) UpdateOneID(id int) *BonusHistoryUpdateOne {
	mutation := newBonusHistoryMutation(c.config, OpUpdateOne, withBonusHistoryID(id))
	return &BonusHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BonusHistory.
func (c *BonusHistoryClient) Delete() *BonusHistoryDelete {
	mutation := newBonusHistoryMutation(c.config, OpDelete)
	return &BonusHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BonusHistoryClient) DeleteOne(_m *BonusHistory) *BonusHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BonusHistoryClient) DeleteOneID(id int) *BonusHistoryDeleteOne {
	builder := c.Delete().Where(bonushistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BonusHistoryDeleteOne{builder}
}

// Query returns a query builder for BonusHistory.
func (c *BonusHistoryClient) Query() *BonusHistoryQuery {
	return &BonusHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBonusHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a BonusHistory entity by its id.
func (c *BonusHistoryClient) Get(ctx context.Context, id int) (*BonusHistory, error) {
	return c.Query().Where(bonushistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BonusHistoryClient) GetX(ctx context.Context, id int) *BonusHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BonusHistoryClient) Hooks() []Hook {
	return c.hooks.BonusHistory
}

// Interceptors returns the client interceptors.
func (c *BonusHistoryClient) Interceptors() []Interceptor {
	return c.inters.BonusHistory
}

func (c *BonusHistoryClient) mutate(ctx context.Context, m *BonusHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BonusHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BonusHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BonusHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BonusHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BonusHistory mutation op: %q", m.Op())
	}
}

// BonusWalletClient is a client for the BonusWallet schema.
type BonusWalletClient struct {
	config
}

// NewBonusWalletClient returns a client for the BonusWallet from the given config.
func NewBonusWalletClient(c config) *BonusWalletClient {
	return &BonusWalletClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `bonuswallet.Hooks(f(g(h())))`.
func (c *BonusWalletClient) Use(hooks ...Hook) {
	c.hooks.BonusWallet = append(c.hooks.BonusWallet, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `bonuswallet.Intercept(f(g(h())))`.
func (c *BonusWalletClient) Intercept(interceptors ...Interceptor) {
	c.inters.BonusWallet = append(c.inters.BonusWallet, interceptors...)
}

// Create returns a builder for creating a BonusWallet entity.
func (c *BonusWalletClient) Create() *BonusWalletCreate {
	mutation := newBonusWalletMutation(c.config, OpCreate)
	return &BonusWalletCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BonusWallet entities.
func (c *BonusWalletClient) CreateBulk(builders ...*BonusWalletCreate) *BonusWalletCreateBulk {
	return &BonusWalletCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BonusWalletClient) MapCreateBulk(slice any, setFunc func(*BonusWalletCreate, int)) *BonusWalletCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BonusWalletCreateBulk{err: fmt.Errorf("calling to BonusWalletClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BonusWalletCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BonusWalletCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BonusWallet.
func (c *BonusWalletClient) Update() *BonusWalletUpdate {
	mutation := newBonusWalletMutation(c.config, OpUpdate)
	return &BonusWalletUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BonusWalletClient) UpdateOne(_m *BonusWallet) *BonusWalletUpdateOne {
	mutation := newBonusWalletMutation(c.config, OpUpdateOne, withBonusWallet(_m))
	return &BonusWalletUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BonusWalletClient) UpdateOneID(id int) *BonusWalletUpdateOne {
	mutation := newBonusWalletMutation(c.config, OpUpdateOne, withBonusWalletID(id))
	return &BonusWalletUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BonusWallet.
func (c *BonusWalletClient) Delete() *BonusWalletDelete {
	mutation := newBonusWalletMutation(c.config, OpDelete)
	return &BonusWalletDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BonusWalletClient) DeleteOne(_m *BonusWallet) *BonusWalletDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BonusWalletClient) DeleteOneID(id int) *BonusWalletDeleteOne {
	builder := c.Delete().Where(bonuswallet.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BonusWalletDeleteOne{builder}
}

// Query returns a query builder for BonusWallet.
func (c *BonusWalletClient) Query() *BonusWalletQuery {
	return &BonusWalletQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBonusWallet},
		inters: c.Interceptors(),
	}
}

// Get returns a BonusWallet entity by its id.
func (c *BonusWalletClient) Get(ctx context.Context, id int) (*BonusWallet, error) {
	return c.Query().Where(bonuswallet.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BonusWalletClient) GetX(ctx context.Context, id int) *BonusWallet {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a BonusWallet.
func (c *BonusWalletClient) QueryWorkspace(_m *BonusWallet) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(bonuswallet.Table, bonuswallet.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, bonuswallet.WorkspaceTable, bonuswallet.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BonusWalletClient) Hooks() []Hook {
	return c.hooks.BonusWallet
}

// Interceptors returns the client interceptors.
func (c *BonusWalletClient) Interceptors() []Interceptor {
	return c.inters.BonusWallet
}

func (c *BonusWalletClient) mutate(ctx context.Context, m *BonusWalletMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BonusWalletCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BonusWalletUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BonusWalletUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BonusWalletDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BonusWallet mutation op: %q", m.Op())
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

// QueryWorkspace queries the workspace edge of a ChatMessage.
func (c *ChatMessageClient) QueryWorkspace(_m *ChatMessage) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chatmessage.Table, chatmessage.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chatmessage.WorkspaceTable, chatmessage.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
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

// ChatOutboxClient is a client for the ChatOutbox schema.
type ChatOutboxClient struct {
	config
}

// NewChatOutboxClient returns a client for the ChatOutbox from the given config.
func NewChatOutboxClient(c config) *ChatOutboxClient {
	return &ChatOutboxClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatoutbox.Hooks(f(g(h())))`.
func (c *ChatOutboxClient) Use(hooks ...Hook) {
	c.hooks.ChatOutbox = append(c.hooks.ChatOutbox, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatoutbox.Intercept(f(g(h())))`.
func (c *ChatOutboxClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatOutbox = append(c.inters.ChatOutbox, interceptors...)
}

// Create returns a builder for creating a ChatOutbox entity.
func (c *ChatOutboxClient) Create() *ChatOutboxCreate {
	mutation := newChatOutboxMutation(c.config, OpCreate)
	return &ChatOutboxCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatOutbox entities.
func (c *ChatOutboxClient) CreateBulk(builders ...*ChatOutboxCreate) *ChatOutboxCreateBulk {
	return &ChatOutboxCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatOutboxClient) MapCreateBulk(slice any, setFunc func(*ChatOutboxCreate, int)) *ChatOutboxCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatOutboxCreateBulk{err: fmt.Errorf("calling to ChatOutboxClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatOutboxCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatOutboxCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatOutbox.
func (c *ChatOutboxClient) Update() *ChatOutboxUpdate {
	mutation := newChatOutboxMutation(c.config, OpUpdate)
	return &ChatOutboxUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatOutboxClient) UpdateOne(_m *ChatOutbox) *ChatOutboxUpdateOne {
	mutation := newChatOutboxMutation(c.config, OpUpdateOne, withChatOutbox(_m))
	return &ChatOutboxUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatOutboxClient) UpdateOneID(id int) *ChatOutboxUpdateOne {
	mutation := newChatOutboxMutation(c.config, OpUpdateOne, withChatOutboxID(id))
	return &ChatOutboxUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatOutbox.
func (c *ChatOutboxClient) Delete() *ChatOutboxDelete {
	mutation := newChatOutboxMutation(c.config, OpDelete)
	return &ChatOutboxDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatOutboxClient) DeleteOne(_m *ChatOutbox) *ChatOutboxDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatOutboxClient) DeleteOneID(id int) *ChatOutboxDeleteOne {
	builder := c.Delete().Where(chatoutbox.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatOutboxDeleteOne{builder}
}

// Query returns a query builder for ChatOutbox.
func (c *ChatOutboxClient) Query() *ChatOutboxQuery {
	return &ChatOutboxQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatOutbox},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatOutbox entity by its id.
func (c *ChatOutboxClient) Get(ctx context.Context, id int) (*ChatOutbox, error) {
	return c.Query().Where(chatoutbox.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatOutboxClient) GetX(ctx context.Context, id int) *ChatOutbox {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a ChatOutbox.
func (c *ChatOutboxClient) QueryWorkspace(_m *ChatOutbox) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chatoutbox.Table, chatoutbox.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chatoutbox.WorkspaceTable, chatoutbox.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChatOutboxClient) Hooks() []Hook {
	return c.hooks.ChatOutbox
}

// Interceptors returns the client interceptors.
func (c *ChatOutboxClient) Interceptors() []Interceptor {
	return c.inters.ChatOutbox
}

func (c *ChatOutboxClient) mutate(ctx context.Context, m *ChatOutboxMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatOutboxCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatOutboxUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatOutboxUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatOutboxDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatOutbox mutation op: %q", m.Op())
	}
}

// ChatSnapshotClient is a client for the ChatSnapshot schema.
type ChatSnapshotClient struct {
	config
}

// NewChatSnapshotClient returns a client for the ChatSnapshot from the given config.
func NewChatSnapshotClient(c config) *ChatSnapshotClient {
	return &ChatSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatsnapshot.Hooks(f(g(h())))`.
func (c *ChatSnapshotClient) Use(hooks ...Hook) {
	c.hooks.ChatSnapshot = append(c.hooks.ChatSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatsnapshot.Intercept(f(g(h())))`.
func (c *ChatSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatSnapshot = append(c.inters.ChatSnapshot, interceptors...)
}

// Create returns a builder for creating a ChatSnapshot entity.
func (c *ChatSnapshotClient) Create() *ChatSnapshotCreate {
	mutation := newChatSnapshotMutation(c.config, OpCreate)
	return &ChatSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatSnapshot entities.
func (c *ChatSnapshotClient) CreateBulk(builders ...*ChatSnapshotCreate) *ChatSnapshotCreateBulk {
	return &ChatSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatSnapshotClient) MapCreateBulk(slice any, setFunc func(*ChatSnapshotCreate, int)) *ChatSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatSnapshotCreateBulk{err: fmt.Errorf("calling to ChatSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatSnapshot.
func (c *ChatSnapshotClient) Update() *ChatSnapshotUpdate {
	mutation := newChatSnapshotMutation(c.config, OpUpdate)
	return &ChatSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatSnapshotClient) UpdateOne(_m *ChatSnapshot) *ChatSnapshotUpdateOne {
	mutation := newChatSnapshotMutation(c.config, OpUpdateOne, withChatSnapshot(_m))
	return &ChatSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatSnapshotClient) UpdateOneID(id int) *ChatSnapshotUpdateOne {
	mutation := newChatSnapshotMutation(c.config, OpUpdateOne, withChatSnapshotID(id))
	return &ChatSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatSnapshot.
func (c *ChatSnapshotClient) Delete() *ChatSnapshotDelete {
	mutation := newChatSnapshotMutation(c.config, OpDelete)
	return &ChatSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatSnapshotClient) DeleteOne(_m *ChatSnapshot) *ChatSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatSnapshotClient) DeleteOneID(id int) *ChatSnapshotDeleteOne {
	builder := c.Delete().Where(chatsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatSnapshotDeleteOne{builder}
}

// Query returns a query builder for ChatSnapshot.
func (c *ChatSnapshotClient) Query() *ChatSnapshotQuery {
	return &ChatSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatSnapshot entity by its id.
func (c *ChatSnapshotClient) Get(ctx context.Context, id int) (*ChatSnapshot, error) {
	return c.Query().Where(chatsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatSnapshotClient) GetX(ctx context.Context, id int) *ChatSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a ChatSnapshot.
func (c *ChatSnapshotClient) QueryWorkspace(_m *ChatSnapshot) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chatsnapshot.Table, chatsnapshot.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chatsnapshot.WorkspaceTable, chatsnapshot.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChatSnapshotClient) Hooks() []Hook {
	return c.hooks.ChatSnapshot
}

// Interceptors returns the client interceptors.
func (c *ChatSnapshotClient) Interceptors() []Interceptor {
	return c.inters.ChatSnapshot
}

func (c *ChatSnapshotClient) mutate(ctx context.Context, m *ChatSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatSnapshot mutation op: %q", m.Op())
	}
}

// DashboardSessionClient is a client for the DashboardSession schema.
type DashboardSessionClient struct {
	config
}

// NewDashboardSessionClient returns a client for the DashboardSession from the given config.
func NewDashboardSessionClient(c config) *DashboardSessionClient {
	return &DashboardSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dashboardsession.Hooks(f(g(h())))`.
func (c *DashboardSessionClient) Use(hooks ...Hook) {
	c.hooks.DashboardSession = append(c.hooks.DashboardSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dashboardsession.Intercept(f(g(h())))`.
func (c *DashboardSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.DashboardSession = append(c.inters.DashboardSession, interceptors...)
}

// Create returns a builder for creating a DashboardSession entity.
func (c *DashboardSessionClient) Create() *DashboardSessionCreate {
	mutation := newDashboardSessionMutation(c.config, OpCreate)
	return &DashboardSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DashboardSession entities.
func (c *DashboardSessionClient) CreateBulk(builders ...*DashboardSessionCreate) *DashboardSessionCreateBulk {
	return &DashboardSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DashboardSessionClient) MapCreateBulk(slice any, setFunc func(*DashboardSessionCreate, int)) *DashboardSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DashboardSessionCreateBulk{err: fmt.Errorf("calling to DashboardSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DashboardSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DashboardSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DashboardSession.
func (c *DashboardSessionClient) Update() *DashboardSessionUpdate {
	mutation := newDashboardSessionMutation(c.config, OpUpdate)
	return &DashboardSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DashboardSessionClient) UpdateOne(_m *DashboardSession) *DashboardSessionUpdateOne {
	mutation := newDashboardSessionMutation(c.config, OpUpdateOne, withDashboardSession(_m))
	return &DashboardSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DashboardSessionClient) UpdateOneID(id string) *DashboardSessionUpdateOne {
	mutation := newDashboardSessionMutation(c.config, OpUpdateOne, withDashboardSessionID(id))
	return &DashboardSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DashboardSession.
func (c *DashboardSessionClient) Delete() *DashboardSessionDelete {
	mutation := newDashboardSessionMutation(c.config, OpDelete)
	return &DashboardSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DashboardSessionClient) DeleteOne(_m *DashboardSession) *DashboardSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DashboardSessionClient) DeleteOneID(id string) *DashboardSessionDeleteOne {
	builder := c.Delete().Where(dashboardsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DashboardSessionDeleteOne{builder}
}

// Query returns a query builder for DashboardSession.
func (c *DashboardSessionClient) Query() *DashboardSessionQuery {
	return &DashboardSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDashboardSession},
		inters: c.Interceptors(),
	}
}

// Get returns a DashboardSession entity by its id.
func (c *DashboardSessionClient) Get(ctx context.Context, id string) (*DashboardSession, error) {
	return c.Query().Where(dashboardsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DashboardSessionClient) GetX(ctx context.Context, id string) *DashboardSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DashboardSessionClient) Hooks() []Hook {
	return c.hooks.DashboardSession
}

// Interceptors returns the client interceptors.
func (c *DashboardSessionClient) Interceptors() []Interceptor {
	return c.inters.DashboardSession
}

func (c *DashboardSessionClient) mutate(ctx context.Context, m *DashboardSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DashboardSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DashboardSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DashboardSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DashboardSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DashboardSession mutation op: %q", m.Op())
	}
}

// LotMappingClient is a client for the LotMapping schema.
type LotMappingClient struct {
	config
}

// NewLotMappingClient returns a client for the LotMapping from the given config.
func NewLotMappingClient(c config) *LotMappingClient {
	return &LotMappingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lotmapping.Hooks(f(g(h())))`.
func (c *LotMappingClient) Use(hooks ...Hook) {
	c.hooks.LotMapping = append(c.hooks.LotMapping, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lotmapping.Intercept(f(g(h())))`.
func (c *LotMappingClient) Intercept(interceptors ...Interceptor) {
	c.inters.LotMapping = append(c.inters.LotMapping, interceptors...)
}

// Create returns a builder for creating a LotMapping entity.
func (c *LotMappingClient) Create() *LotMappingCreate {
	mutation := newLotMappingMutation(c.config, OpCreate)
	return &LotMappingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LotMapping entities.
func (c *LotMappingClient) CreateBulk(builders ...*LotMappingCreate) *LotMappingCreateBulk {
	return &LotMappingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LotMappingClient) MapCreateBulk(slice any, setFunc func(*LotMappingCreate, int)) *LotMappingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LotMappingCreateBulk{err: fmt.Errorf("calling to LotMappingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LotMappingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LotMappingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LotMapping.
func (c *LotMappingClient) Update() *LotMappingUpdate {
	mutation := newLotMappingMutation(c.config, OpUpdate)
	return &LotMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LotMappingClient) UpdateOne(_m *LotMapping) *LotMappingUpdateOne {
	mutation := newLotMappingMutation(c.config, OpUpdateOne, withLotMapping(_m))
	return &LotMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LotMappingClient) UpdateOneID(id int) *LotMappingUpdateOne {
	mutation := newLotMappingMutation(c.config, OpUpdateOne, withLotMappingID(id))
	return &LotMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LotMapping.
func (c *LotMappingClient) Delete() *LotMappingDelete {
	mutation := newLotMappingMutation(c.config, OpDelete)
	return &LotMappingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LotMappingClient) DeleteOne(_m *LotMapping) *LotMappingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LotMappingClient) DeleteOneID(id int) *LotMappingDeleteOne {
	builder := c.Delete().Where(lotmapping.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LotMappingDeleteOne{builder}
}

// Query returns a query builder for LotMapping.
func (c *LotMappingClient) Query() *LotMappingQuery {
	return &LotMappingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLotMapping},
		inters: c.Interceptors(),
	}
}

// Get returns a LotMapping entity by its id.
func (c *LotMappingClient) Get(ctx context.Context, id int) (*LotMapping, error) {
	return c.Query().Where(lotmapping.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LotMappingClient) GetX(ctx context.Context, id int) *LotMapping {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a LotMapping.
func (c *LotMappingClient) QueryWorkspace(_m *LotMapping) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lotmapping.Table, lotmapping.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, lotmapping.WorkspaceTable, lotmapping.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LotMappingClient) Hooks() []Hook {
	return c.hooks.LotMapping
}

// Interceptors returns the client interceptors.
func (c *LotMappingClient) Interceptors() []Interceptor {
	return c.inters.LotMapping
}

func (c *LotMappingClient) mutate(ctx context.Context, m *LotMappingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LotMappingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LotMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LotMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LotMappingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LotMapping mutation op: %q", m.Op())
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

// OrderEventClient is a client for the OrderEvent schema.
type OrderEventClient struct {
	config
}

// NewOrderEventClient returns a client for the OrderEvent from the given config.
func NewOrderEventClient(c config) *OrderEventClient {
	return &OrderEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orderevent.Hooks(f(g(h())))`.
func (c *OrderEventClient) Use(hooks ...Hook) {
	c.hooks.OrderEvent = append(c.hooks.OrderEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orderevent.Intercept(f(g(h())))`.
func (c *OrderEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrderEvent = append(c.inters.OrderEvent, interceptors...)
}

// Create returns a builder for creating a OrderEvent entity.
func (c *OrderEventClient) Create() *OrderEventCreate {
	mutation := newOrderEventMutation(c.config, OpCreate)
	return &OrderEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrderEvent entities.
func (c *OrderEventClient) CreateBulk(builders ...*OrderEventCreate) *OrderEventCreateBulk {
	return &OrderEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderEventClient) MapCreateBulk(slice any, setFunc func(*OrderEventCreate, int)) *OrderEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderEventCreateBulk{err: fmt.Errorf("calling to OrderEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrderEvent.
func (c *OrderEventClient) Update() *OrderEventUpdate {
	mutation := newOrderEventMutation(c.config, OpUpdate)
	return &OrderEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderEventClient) UpdateOne(_m *OrderEvent) *OrderEventUpdateOne {
	mutation := newOrderEventMutation(c.config, OpUpdateOne, withOrderEvent(_m))
	return &OrderEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderEventClient) UpdateOneID(id int) *OrderEventUpdateOne {
	mutation := newOrderEventMutation(c.config, OpUpdateOne, withOrderEventID(id))
	return &OrderEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrderEvent.
func (c *OrderEventClient) Delete() *OrderEventDelete {
	mutation := newOrderEventMutation(c.config, OpDelete)
	return &OrderEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderEventClient) DeleteOne(_m *OrderEvent) *OrderEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderEventClient) DeleteOneID(id int) *OrderEventDeleteOne {
	builder := c.Delete().Where(orderevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderEventDeleteOne{builder}
}

// Query returns a query builder for OrderEvent.
func (c *OrderEventClient) Query() *OrderEventQuery {
	return &OrderEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrderEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a OrderEvent entity by its id.
func (c *OrderEventClient) Get(ctx context.Context, id int) (*OrderEvent, error) {
	return c.Query().Where(orderevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderEventClient) GetX(ctx context.Context, id int) *OrderEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a OrderEvent.
func (c *OrderEventClient) QueryWorkspace(_m *OrderEvent) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(orderevent.Table, orderevent.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, orderevent.WorkspaceTable, orderevent.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrderEventClient) Hooks() []Hook {
	return c.hooks.OrderEvent
}

// Interceptors returns the client interceptors.
func (c *OrderEventClient) Interceptors() []Interceptor {
	return c.inters.OrderEvent
}

func (c *OrderEventClient) mutate(ctx context.Context, m *OrderEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrderEvent mutation op: %q", m.Op())
	}
}

// ReviewRewardClient is a client for the ReviewReward schema.
type ReviewRewardClient struct {
	config
}

// NewReviewRewardClient returns a client for the ReviewReward from the given config.
func NewReviewRewardClient(c config) *ReviewRewardClient {
	return &ReviewRewardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewreward.Hooks(f(g(h())))`.
func (c *ReviewRewardClient) Use(hooks ...Hook) {
	c.hooks.ReviewReward = append(c.hooks.ReviewReward, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewreward.Intercept(f(g(h())))`.
func (c *ReviewRewardClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewReward = append(c.inters.ReviewReward, interceptors...)
}

// Create returns a builder for creating a ReviewReward entity.
func (c *ReviewRewardClient) Create() *ReviewRewardCreate {
	mutation := newReviewRewardMutation(c.config, OpCreate)
	return &ReviewRewardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewReward entities.
func (c *ReviewRewardClient) CreateBulk(builders ...*ReviewRewardCreate) *ReviewRewardCreateBulk {
	return &ReviewRewardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewRewardClient) MapCreateBulk(slice any, setFunc func(*ReviewRewardCreate, int)) *ReviewRewardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewRewardCreateBulk{err: fmt.Errorf("calling to ReviewRewardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewRewardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewRewardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewReward.
func (c *ReviewRewardClient) Update() *ReviewRewardUpdate {
	mutation := newReviewRewardMutation(c.config, OpUpdate)
	return &ReviewRewardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewRewardClient) UpdateOne(_m *ReviewReward) *ReviewRewardUpdateOne {
	mutation := newReviewRewardMutation(c.config, OpUpdateOne, withReviewReward(_m))
	return &ReviewRewardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewRewardClient) UpdateOneID(id int) *ReviewRewardUpdateOne {
	mutation := newReviewRewardMutation(c.config, OpUpdateOne, withReviewRewardID(id))
	return &ReviewRewardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewReward.
func (c *ReviewRewardClient) Delete() *ReviewRewardDelete {
	mutation := newReviewRewardMutation(c.config, OpDelete)
	return &ReviewRewardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewRewardClient) DeleteOne(_m *ReviewReward) *ReviewRewardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewRewardClient) DeleteOneID(id int) *ReviewRewardDeleteOne {
	builder := c.Delete().Where(reviewreward.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewRewardDeleteOne{builder}
}

// Query returns a query builder for ReviewReward.
func (c *ReviewRewardClient) Query() *ReviewRewardQuery {
	return &ReviewRewardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewReward},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewReward entity by its id.
func (c *ReviewRewardClient) Get(ctx context.Context, id int) (*ReviewReward, error) {
	return c.Query().Where(reviewreward.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewRewardClient) GetX(ctx context.Context, id int) *ReviewReward {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewRewardClient) Hooks() []Hook {
	return c.hooks.ReviewReward
}

// Interceptors returns the client interceptors.
func (c *ReviewRewardClient) Interceptors() []Interceptor {
	return c.inters.ReviewReward
}

func (c *ReviewRewardClient) mutate(ctx context.Context, m *ReviewRewardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewRewardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewRewardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewRewardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewRewardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewReward mutation op: %q", m.Op())
	}
}

// SettingClient is a client for the Setting schema.
type SettingClient struct {
	config
}

// NewSettingClient returns a client for the Setting from the given config.
func NewSettingClient(c config) *SettingClient {
	return &SettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `setting.Hooks(f(g(h())))`.
func (c *SettingClient) Use(hooks ...Hook) {
	c.hooks.Setting = append(c.hooks.Setting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `setting.Intercept(f(g(h())))`.
func (c *SettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Setting = append(c.inters.Setting, interceptors...)
}

// Create returns a builder for creating a Setting entity.
func (c *SettingClient) Create() *SettingCreate {
	mutation := newSettingMutation(c.config, OpCreate)
	return &SettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Setting entities.
func (c *SettingClient) CreateBulk(builders ...*SettingCreate) *SettingCreateBulk {
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SettingClient) MapCreateBulk(slice any, setFunc func(*SettingCreate, int)) *SettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SettingCreateBulk{err: fmt.Errorf("calling to SettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Setting.
func (c *SettingClient) Update() *SettingUpdate {
	mutation := newSettingMutation(c.config, OpUpdate)
	return &SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SettingClient) UpdateOne(_m *Setting) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSetting(_m))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SettingClient) UpdateOneID(id int) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSettingID(id))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Setting.
func (c *SettingClient) Delete() *SettingDelete {
	mutation := newSettingMutation(c.config, OpDelete)
	return &SettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SettingClient) DeleteOne(_m *Setting) *SettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SettingClient) DeleteOneID(id int) *SettingDeleteOne {
	builder := c.Delete().Where(setting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SettingDeleteOne{builder}
}

// Query returns a query builder for Setting.
func (c *SettingClient) Query() *SettingQuery {
	return &SettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a Setting entity by its id.
func (c *SettingClient) Get(ctx context.Context, id int) (*Setting, error) {
	return c.Query().Where(setting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SettingClient) GetX(ctx context.Context, id int) *Setting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SettingClient) Hooks() []Hook {
	return c.hooks.Setting
}

// Interceptors returns the client interceptors.
func (c *SettingClient) Interceptors() []Interceptor {
	return c.inters.Setting
}

func (c *SettingClient) mutate(ctx context.Context, m *SettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Setting mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// WorkspaceClient is a client for the Workspace schema.
type WorkspaceClient struct {
	config
}

// NewWorkspaceClient returns a client for the Workspace from the given config.
func NewWorkspaceClient(c config) *WorkspaceClient {
	return &WorkspaceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workspace.Hooks(f(g(h())))`.
func (c *WorkspaceClient) Use(hooks ...Hook) {
	c.hooks.Workspace = append(c.hooks.Workspace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workspace.Intercept(f(g(h())))`.
func (c *WorkspaceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workspace = append(c.inters.Workspace, interceptors...)
}

// Create returns a builder for creating a Workspace entity.
func (c *WorkspaceClient) Create() *WorkspaceCreate {
	mutation := newWorkspaceMutation(c.config, OpCreate)
	return &WorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workspace entities.
func (c *WorkspaceClient) CreateBulk(builders ...*WorkspaceCreate) *WorkspaceCreateBulk {
	return &WorkspaceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkspaceClient) MapCreateBulk(slice any, setFunc func(*WorkspaceCreate, int)) *WorkspaceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkspaceCreateBulk{err: fmt.Errorf("calling to WorkspaceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkspaceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkspaceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workspace.
func (c *WorkspaceClient) Update() *WorkspaceUpdate {
	mutation := newWorkspaceMutation(c.config, OpUpdate)
	return &WorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkspaceClient) UpdateOne(_m *Workspace) *WorkspaceUpdateOne {
	mutation := newWorkspaceMutation(c.config, OpUpdateOne, withWorkspace(_m))
	return &WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkspaceClient) UpdateOneID(id int) *WorkspaceUpdateOne {
	mutation := newWorkspaceMutation(c.config, OpUpdateOne, withWorkspaceID(id))
	return &WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workspace.
func (c *WorkspaceClient) Delete() *WorkspaceDelete {
	mutation := newWorkspaceMutation(c.config, OpDelete)
	return &WorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkspaceClient) DeleteOne(_m *Workspace) *WorkspaceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkspaceClient) DeleteOneID(id int) *WorkspaceDeleteOne {
	builder := c.Delete().Where(workspace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkspaceDeleteOne{builder}
}

// Query returns a query builder for Workspace.
func (c *WorkspaceClient) Query() *WorkspaceQuery {
	return &WorkspaceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkspace},
		inters: c.Interceptors(),
	}
}

// Get returns a Workspace entity by its id.
func (c *WorkspaceClient) Get(ctx context.Context, id int) (*Workspace, error) {
	return c.Query().Where(workspace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkspaceClient) GetX(ctx context.Context, id int) *Workspace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAccounts queries the accounts edge of a Workspace.
func (c *WorkspaceClient) QueryAccounts(_m *Workspace) *AccountQuery {
	query := (&AccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(account.Table, account.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.AccountsTable, workspace.AccountsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLotMappings queries the lot_mappings edge of a Workspace.
func (c *WorkspaceClient) QueryLotMappings(_m *Workspace) *LotMappingQuery {
	query := (&LotMappingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(lotmapping.Table, lotmapping.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.LotMappingsTable, workspace.LotMappingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOrderEvents queries the order_events edge of a Workspace.
func (c *WorkspaceClient) QueryOrderEvents(_m *Workspace) *OrderEventQuery {
	query := (&OrderEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(orderevent.Table, orderevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.OrderEventsTable, workspace.OrderEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBlacklistEntries queries the blacklist_entries edge of a Workspace.
func (c *WorkspaceClient) QueryBlacklistEntries(_m *Workspace) *BlacklistEntryQuery {
	query := (&BlacklistEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(blacklistentry.Table, blacklistentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.BlacklistEntriesTable, workspace.BlacklistEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBonusWallets queries the bonus_wallets edge of a Workspace.
func (c *WorkspaceClient) QueryBonusWallets(_m *Workspace) *BonusWalletQuery {
	query := (&BonusWalletClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(bonuswallet.Table, bonuswallet.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.BonusWalletsTable, workspace.BonusWalletsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChatSnapshots queries the chat_snapshots edge of a Workspace.
func (c *WorkspaceClient) QueryChatSnapshots(_m *Workspace) *ChatSnapshotQuery {
	query := (&ChatSnapshotClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(chatsnapshot.Table, chatsnapshot.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.ChatSnapshotsTable, workspace.ChatSnapshotsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChatMessages queries the chat_messages edge of a Workspace.
func (c *WorkspaceClient) QueryChatMessages(_m *Workspace) *ChatMessageQuery {
	query := (&ChatMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(chatmessage.Table, chatmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.ChatMessagesTable, workspace.ChatMessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChatOutbox queries the chat_outbox edge of a Workspace.
func (c *WorkspaceClient) QueryChatOutbox(_m *Workspace) *ChatOutboxQuery {
	query := (&ChatOutboxClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(chatoutbox.Table, chatoutbox.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.ChatOutboxTable, workspace.ChatOutboxColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAdminCalls queries the admin_calls edge of a Workspace.
func (c *WorkspaceClient) QueryAdminCalls(_m *Workspace) *AdminCallQuery {
	query := (&AdminCallClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(admincall.Table, admincall.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.AdminCallsTable, workspace.AdminCallsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkspaceClient) Hooks() []Hook {
	return c.hooks.Workspace
}

// Interceptors returns the client interceptors.
func (c *WorkspaceClient) Interceptors() []Interceptor {
	return c.inters.Workspace
}

func (c *WorkspaceClient) mutate(ctx context.Context, m *WorkspaceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workspace mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Account, AdminCall, BlacklistEntry, BlacklistLog, BonusHistory, BonusWallet,
		ChatMessage, ChatOutbox, ChatSnapshot, DashboardSession, LotMapping,
		Notification, OrderEvent, ReviewReward, Setting, User, Workspace []ent.Hook
	}
	inters struct {
		Account, AdminCall, BlacklistEntry, BlacklistLog, BonusHistory, BonusWallet,
		ChatMessage, ChatOutbox, ChatSnapshot, DashboardSession, LotMapping,
		Notification, OrderEvent, ReviewReward, Setting, User,
		Workspace []ent.Interceptor
	}
)
