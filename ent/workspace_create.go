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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/account"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/admincall"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/blacklistentry"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/bonuswallet"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatmessage"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatoutbox"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatsnapshot"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/lotmapping"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/orderevent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// WorkspaceCreate is the builder for creating a Workspace entity.
type WorkspaceCreate struct {
	config
	mutation *WorkspaceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *WorkspaceCreate) SetUserID(v int) *WorkspaceCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *WorkspaceCreate) SetLabel(v string) *WorkspaceCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableLabel(v *string) *WorkspaceCreate {
	if v != nil {
		_c.SetLabel(*v)
	}
	return _c
}

// SetToken sets the "token" field.
func (_c *WorkspaceCreate) SetToken(v string) *WorkspaceCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetProxyURI sets the "proxy_uri" field.
func (_c *WorkspaceCreate) SetProxyURI(v string) *WorkspaceCreate {
	_c.mutation.SetProxyURI(v)
	return _c
}

// SetNillableProxyURI sets the "proxy_uri" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableProxyURI(v *string) *WorkspaceCreate {
	if v != nil {
		_c.SetProxyURI(*v)
	}
	return _c
}

// SetProxyUser sets the "proxy_user" field.
func (_c *WorkspaceCreate) SetProxyUser(v string) *WorkspaceCreate {
	_c.mutation.SetProxyUser(v)
	return _c
}

// SetNillableProxyUser sets the "proxy_user" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableProxyUser(v *string) *WorkspaceCreate {
	if v != nil {
		_c.SetProxyUser(*v)
	}
	return _c
}

// SetProxyPass sets the "proxy_pass" field.
func (_c *WorkspaceCreate) SetProxyPass(v string) *WorkspaceCreate {
	_c.mutation.SetProxyPass(v)
	return _c
}

// SetNillableProxyPass sets the "proxy_pass" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableProxyPass(v *string) *WorkspaceCreate {
	if v != nil {
		_c.SetProxyPass(*v)
	}
	return _c
}

// SetIsDefault sets the "is_default" field.
func (_c *WorkspaceCreate) SetIsDefault(v bool) *WorkspaceCreate {
	_c.mutation.SetIsDefault(v)
	return _c
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableIsDefault(v *bool) *WorkspaceCreate {
	if v != nil {
		_c.SetIsDefault(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkspaceCreate) SetStatus(v workspace.Status) *WorkspaceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableStatus(v *workspace.Status) *WorkspaceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStatusMessage sets the "status_message" field.
func (_c *WorkspaceCreate) SetStatusMessage(v string) *WorkspaceCreate {
	_c.mutation.SetStatusMessage(v)
	return _c
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableStatusMessage(v *string) *WorkspaceCreate {
	if v != nil {
		_c.SetStatusMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkspaceCreate) SetCreatedAt(v time.Time) *WorkspaceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableCreatedAt(v *time.Time) *WorkspaceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkspaceCreate) SetUpdatedAt(v time.Time) *WorkspaceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableUpdatedAt(v *time.Time) *WorkspaceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddAccountIDs adds the "accounts" edge to the Account entity by IDs.
func (_c *WorkspaceCreate) AddAccountIDs(ids ...int) *WorkspaceCreate {
	_c.mutation.AddAccountIDs(ids...)
	return _c
}

// AddAccounts adds the "accounts" edges to the Account entity.
func (_c *WorkspaceCreate) AddAccounts(v ...*Account) *WorkspaceCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAccountIDs(ids...)
}

// AddLotMappingIDs adds the "lot_mappings" edge to the LotMapping entity by IDs.
func (_c *WorkspaceCreate) AddLotMappingIDs(ids ...int) *WorkspaceCreate {
	_c.mutation.AddLotMappingIDs(ids...)
	return _c
}

// AddLotMappings adds the "lot_mappings" edges to the LotMapping entity.
func (_c *WorkspaceCreate) AddLotMappings(v ...*LotMapping) *WorkspaceCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLotMappingIDs(ids...)
}

// AddOrderEventIDs adds the "order_events" edge to the OrderEvent entity by IDs.
func (_c *WorkspaceCreate) AddOrderEventIDs(ids ...int) *WorkspaceCreate {
	_c.mutation.AddOrderEventIDs(ids...)
	return _c
}

// AddOrderEvents adds the "order_events" edges to the OrderEvent entity.
func (_c *WorkspaceCreate) AddOrderEvents(v ...*OrderEvent) *WorkspaceCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOrderEventIDs(ids...)
}

// AddBlacklistEntryIDs adds the "blacklist_entries" edge to the BlacklistEntry entity by IDs.
func (_c *WorkspaceCreate) AddBlacklistEntryIDs(ids ...int) *WorkspaceCreate {
	_c.mutation.AddBlacklistEntryIDs(ids...)
	return _c
}

// AddBlacklistEntries adds the "blacklist_entries" edges to the BlacklistEntry entity.
func (_c *WorkspaceCreate) AddBlacklistEntries(v ...*BlacklistEntry) *WorkspaceCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBlacklistEntryIDs(ids...)
}

// AddBonusWalletIDs adds the "bonus_wallets" edge to the BonusWallet entity by IDs.
func (_c *WorkspaceCreate) AddBonusWalletIDs(ids ...int) *WorkspaceCreate {
	_c.mutation.AddBonusWalletIDs(ids...)
	return _c
}

// AddBonusWallets adds the "bonus_wallets" edges to the BonusWallet entity.
func (_c *WorkspaceCreate) AddBonusWallets(v ...*BonusWallet) *WorkspaceCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBonusWalletIDs(ids...)
}

// AddChatSnapshotIDs adds the "chat_snapshots" edge to the ChatSnapshot entity by IDs.
func (_c *WorkspaceCreate) AddChatSnapshotIDs(ids ...int) *WorkspaceCreate {
	_c.mutation.AddChatSnapshotIDs(ids...)
	return _c
}

// AddChatSnapshots adds the "chat_snapshots" edges to the ChatSnapshot entity.
func (_c *WorkspaceCreate) AddChatSnapshots(v ...*ChatSnapshot) *WorkspaceCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChatSnapshotIDs(ids...)
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_c *WorkspaceCreate) AddChatMessageIDs(ids ...int) *WorkspaceCreate {
	_c.mutation.AddChatMessageIDs(ids...)
	return _c
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_c *WorkspaceCreate) AddChatMessages(v ...*ChatMessage) *WorkspaceCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChatMessageIDs(ids...)
}

// AddChatOutboxIDs adds the "chat_outbox" edge to the ChatOutbox entity by IDs.
func (_c *WorkspaceCreate) AddChatOutboxIDs(ids ...int) *WorkspaceCreate {
	_c.mutation.AddChatOutboxIDs(ids...)
	return _c
}

// AddChatOutbox adds the "chat_outbox" edges to the ChatOutbox entity.
func (_c *WorkspaceCreate) AddChatOutbox(v ...*ChatOutbox) *WorkspaceCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChatOutboxIDs(ids...)
}

// AddAdminCallIDs adds the "admin_calls" edge to the AdminCall entity by IDs.
func (_c *WorkspaceCreate) AddAdminCallIDs(ids ...int) *WorkspaceCreate {
	_c.mutation.AddAdminCallIDs(ids...)
	return _c
}

// AddAdminCalls adds the "admin_calls" edges to the AdminCall entity.
func (_c *WorkspaceCreate) AddAdminCalls(v ...*AdminCall) *WorkspaceCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAdminCallIDs(ids...)
}

// Mutation returns the WorkspaceMutation object of the builder.
func (_c *WorkspaceCreate) Mutation() *WorkspaceMutation {
	return _c.mutation
}

// Save creates the Workspace in the database.
func (_c *WorkspaceCreate) Save(ctx context.Context) (*Workspace, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkspaceCreate) SaveX(ctx context.Context) *Workspace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkspaceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkspaceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkspaceCreate) defaults() {
	if _, ok := _c.mutation.Label(); !ok {
		v := workspace.DefaultLabel
		_c.mutation.SetLabel(v)
	}
	if _, ok := _c.mutation.ProxyURI(); !ok {
		v := workspace.DefaultProxyURI
		_c.mutation.SetProxyURI(v)
	}
	if _, ok := _c.mutation.ProxyUser(); !ok {
		v := workspace.DefaultProxyUser
		_c.mutation.SetProxyUser(v)
	}
	if _, ok := _c.mutation.ProxyPass(); !ok {
		v := workspace.DefaultProxyPass
		_c.mutation.SetProxyPass(v)
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		v := workspace.DefaultIsDefault
		_c.mutation.SetIsDefault(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := workspace.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workspace.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workspace.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkspaceCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Workspace.user_id"`)}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "Workspace.label"`)}
	}
	if _, ok := _c.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`ent: missing required field "Workspace.token"`)}
	}
	if _, ok := _c.mutation.ProxyURI(); !ok {
		return &ValidationError{Name: "proxy_uri", err: errors.New(`ent: missing required field "Workspace.proxy_uri"`)}
	}
	if _, ok := _c.mutation.ProxyUser(); !ok {
		return &ValidationError{Name: "proxy_user", err: errors.New(`ent: missing required field "Workspace.proxy_user"`)}
	}
	if _, ok := _c.mutation.ProxyPass(); !ok {
		return &ValidationError{Name: "proxy_pass", err: errors.New(`ent: missing required field "Workspace.proxy_pass"`)}
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		return &ValidationError{Name: "is_default", err: errors.New(`ent: missing required field "Workspace.is_default"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Workspace.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workspace.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workspace.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Workspace.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Workspace.updated_at"`)}
	}
	return nil
}

func (_c *WorkspaceCreate) sqlSave(ctx context.Context) (*Workspace, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkspaceCreate) createSpec() (*Workspace, *sqlgraph.CreateSpec) {
	var (
		_node = &Workspace{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workspace.Table, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(workspace.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(workspace.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(workspace.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if value, ok := _c.mutation.ProxyURI(); ok {
		_spec.SetField(workspace.FieldProxyURI, field.TypeString, value)
		_node.ProxyURI = value
	}
	if value, ok := _c.mutation.ProxyUser(); ok {
		_spec.SetField(workspace.FieldProxyUser, field.TypeString, value)
		_node.ProxyUser = value
	}
	if value, ok := _c.mutation.ProxyPass(); ok {
		_spec.SetField(workspace.FieldProxyPass, field.TypeString, value)
		_node.ProxyPass = value
	}
	if value, ok := _c.mutation.IsDefault(); ok {
		_spec.SetField(workspace.FieldIsDefault, field.TypeBool, value)
		_node.IsDefault = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workspace.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StatusMessage(); ok {
		_spec.SetField(workspace.FieldStatusMessage, field.TypeString, value)
		_node.StatusMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workspace.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workspace.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AccountsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AccountsTable,
			Columns: []string{workspace.AccountsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LotMappingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.LotMappingsTable,
			Columns: []string{workspace.LotMappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lotmapping.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OrderEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.OrderEventsTable,
			Columns: []string{workspace.OrderEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BlacklistEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.BlacklistEntriesTable,
			Columns: []string{workspace.BlacklistEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blacklistentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BonusWalletsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.BonusWalletsTable,
			Columns: []string{workspace.BonusWalletsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bonuswallet.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatSnapshotsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.ChatSnapshotsTable,
			Columns: []string{workspace.ChatSnapshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsnapshot.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.ChatMessagesTable,
			Columns: []string{workspace.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatOutboxIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.ChatOutboxTable,
			Columns: []string{workspace.ChatOutboxColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatoutbox.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AdminCallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AdminCallsTable,
			Columns: []string{workspace.AdminCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(admincall.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Workspace.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkspaceUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkspaceCreate) OnConflict(opts ...sql.ConflictOption) *WorkspaceUpsertOne {
	_c.conflict = opts
	return &WorkspaceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Workspace.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkspaceCreate) OnConflictColumns(columns ...string) *WorkspaceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkspaceUpsertOne{
		create: _c,
	}
}

type (
	// WorkspaceUpsertOne is the builder for "upsert"-ing
	//  one Workspace node.
	WorkspaceUpsertOne struct {
		create *WorkspaceCreate
	}

	// WorkspaceUpsert is the "OnConflict" setter.
	WorkspaceUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *WorkspaceUpsert) SetUserID(v int) *WorkspaceUpsert {
	u.Set(workspace.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateUserID() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *WorkspaceUpsert) AddUserID(v int) *WorkspaceUpsert {
	u.Add(workspace.FieldUserID, v)
	return u
}

// SetLabel sets the "label" field.
func (u *WorkspaceUpsert) SetLabel(v string) *WorkspaceUpsert {
	u.Set(workspace.FieldLabel, v)
	return u
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateLabel() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldLabel)
	return u
}

// SetToken sets the "token" field.
func (u *WorkspaceUpsert) SetToken(v string) *WorkspaceUpsert {
	u.Set(workspace.FieldToken, v)
	return u
}

// UpdateToken sets the "token" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateToken() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldToken)
	return u
}

// SetProxyURI sets the "proxy_uri" field.
func (u *WorkspaceUpsert) SetProxyURI(v string) *WorkspaceUpsert {
	u.Set(workspace.FieldProxyURI, v)
	return u
}

// UpdateProxyURI sets the "proxy_uri" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateProxyURI() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldProxyURI)
	return u
}

// SetProxyUser sets the "proxy_user" field.
func (u *WorkspaceUpsert) SetProxyUser(v string) *WorkspaceUpsert {
	u.Set(workspace.FieldProxyUser, v)
	return u
}

// UpdateProxyUser sets the "proxy_user" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateProxyUser() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldProxyUser)
	return u
}

// SetProxyPass sets the "proxy_pass" field.
func (u *WorkspaceUpsert) SetProxyPass(v string) *WorkspaceUpsert {
	u.Set(workspace.FieldProxyPass, v)
	return u
}

// UpdateProxyPass sets the "proxy_pass" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateProxyPass() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldProxyPass)
	return u
}

// SetIsDefault sets the "is_default" field.
func (u *WorkspaceUpsert) SetIsDefault(v bool) *WorkspaceUpsert {
	u.Set(workspace.FieldIsDefault, v)
	return u
}

// UpdateIsDefault sets the "is_default" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateIsDefault() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldIsDefault)
	return u
}

// SetStatus sets the "status" field.
func (u *WorkspaceUpsert) SetStatus(v workspace.Status) *WorkspaceUpsert {
	u.Set(workspace.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateStatus() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldStatus)
	return u
}

// SetStatusMessage sets the "status_message" field.
func (u *WorkspaceUpsert) SetStatusMessage(v string) *WorkspaceUpsert {
	u.Set(workspace.FieldStatusMessage, v)
	return u
}

// UpdateStatusMessage sets the "status_message" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateStatusMessage() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldStatusMessage)
	return u
}

// ClearStatusMessage clears the value of the "status_message" field.
func (u *WorkspaceUpsert) ClearStatusMessage() *WorkspaceUpsert {
	u.SetNull(workspace.FieldStatusMessage)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkspaceUpsert) SetUpdatedAt(v time.Time) *WorkspaceUpsert {
	u.Set(workspace.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateUpdatedAt() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Workspace.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WorkspaceUpsertOne) UpdateNewValues() *WorkspaceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(workspace.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Workspace.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkspaceUpsertOne) Ignore() *WorkspaceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkspaceUpsertOne) DoNothing() *WorkspaceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkspaceCreate.OnConflict
// documentation for more info.
func (u *WorkspaceUpsertOne) Update(set func(*WorkspaceUpsert)) *WorkspaceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkspaceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *WorkspaceUpsertOne) SetUserID(v int) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *WorkspaceUpsertOne) AddUserID(v int) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateUserID() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateUserID()
	})
}

// SetLabel sets the "label" field.
func (u *WorkspaceUpsertOne) SetLabel(v string) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateLabel() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateLabel()
	})
}

// SetToken sets the "token" field.
func (u *WorkspaceUpsertOne) SetToken(v string) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetToken(v)
	})
}

// UpdateToken sets the "token" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateToken() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateToken()
	})
}

// SetProxyURI sets the "proxy_uri" field.
func (u *WorkspaceUpsertOne) SetProxyURI(v string) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetProxyURI(v)
	})
}

// UpdateProxyURI sets the "proxy_uri" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateProxyURI() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateProxyURI()
	})
}

// SetProxyUser sets the "proxy_user" field.
func (u *WorkspaceUpsertOne) SetProxyUser(v string) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetProxyUser(v)
	})
}

// UpdateProxyUser sets the "proxy_user" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateProxyUser() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateProxyUser()
	})
}

// SetProxyPass sets the "proxy_pass" field.
func (u *WorkspaceUpsertOne) SetProxyPass(v string) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetProxyPass(v)
	})
}

// UpdateProxyPass sets the "proxy_pass" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateProxyPass() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateProxyPass()
	})
}

// SetIsDefault sets the "is_default" field.
func (u *WorkspaceUpsertOne) SetIsDefault(v bool) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetIsDefault(v)
	})
}

// UpdateIsDefault sets the "is_default" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateIsDefault() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateIsDefault()
	})
}

// SetStatus sets the "status" field.
func (u *WorkspaceUpsertOne) SetStatus(v workspace.Status) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateStatus() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateStatus()
	})
}

// SetStatusMessage sets the "status_message" field.
func (u *WorkspaceUpsertOne) SetStatusMessage(v string) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetStatusMessage(v)
	})
}

// UpdateStatusMessage sets the "status_message" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateStatusMessage() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateStatusMessage()
	})
}

// ClearStatusMessage clears the value of the "status_message" field.
func (u *WorkspaceUpsertOne) ClearStatusMessage() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.ClearStatusMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkspaceUpsertOne) SetUpdatedAt(v time.Time) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateUpdatedAt() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WorkspaceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkspaceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkspaceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkspaceUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkspaceUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkspaceCreateBulk is the builder for creating many Workspace entities in bulk.
type WorkspaceCreateBulk struct {
	config
	err      error
	builders []*WorkspaceCreate
	conflict []sql.ConflictOption
}

// Save creates the Workspace entities in the database.
func (_c *WorkspaceCreateBulk) Save(ctx context.Context) ([]*Workspace, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Workspace, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkspaceMutation)
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
					spec.OnConflict = _c.conflict
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *WorkspaceCreateBulk) SaveX(ctx context.Context) []*Workspace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkspaceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkspaceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Workspace.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkspaceUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkspaceCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkspaceUpsertBulk {
	_c.conflict = opts
	return &WorkspaceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Workspace.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkspaceCreateBulk) OnConflictColumns(columns ...string) *WorkspaceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkspaceUpsertBulk{
		create: _c,
	}
}

// WorkspaceUpsertBulk is the builder for "upsert"-ing
// a bulk of Workspace nodes.
type WorkspaceUpsertBulk struct {
	create *WorkspaceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Workspace.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WorkspaceUpsertBulk) UpdateNewValues() *WorkspaceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(workspace.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Workspace.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkspaceUpsertBulk) Ignore() *WorkspaceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkspaceUpsertBulk) DoNothing() *WorkspaceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkspaceCreateBulk.OnConflict
// documentation for more info.
func (u *WorkspaceUpsertBulk) Update(set func(*WorkspaceUpsert)) *WorkspaceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkspaceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *WorkspaceUpsertBulk) SetUserID(v int) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *WorkspaceUpsertBulk) AddUserID(v int) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateUserID() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateUserID()
	})
}

// SetLabel sets the "label" field.
func (u *WorkspaceUpsertBulk) SetLabel(v string) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateLabel() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateLabel()
	})
}

// SetToken sets the "token" field.
func (u *WorkspaceUpsertBulk) SetToken(v string) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetToken(v)
	})
}

// UpdateToken sets the "token" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateToken() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateToken()
	})
}

// SetProxyURI sets the "proxy_uri" field.
func (u *WorkspaceUpsertBulk) SetProxyURI(v string) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetProxyURI(v)
	})
}

// UpdateProxyURI sets the "proxy_uri" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateProxyURI() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateProxyURI()
	})
}

// SetProxyUser sets the "proxy_user" field.
func (u *WorkspaceUpsertBulk) SetProxyUser(v string) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetProxyUser(v)
	})
}

// UpdateProxyUser sets the "proxy_user" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateProxyUser() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateProxyUser()
	})
}

// SetProxyPass sets the "proxy_pass" field.
func (u *WorkspaceUpsertBulk) SetProxyPass(v string) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetProxyPass(v)
	})
}

// UpdateProxyPass sets the "proxy_pass" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateProxyPass() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateProxyPass()
	})
}

// SetIsDefault sets the "is_default" field.
func (u *WorkspaceUpsertBulk) SetIsDefault(v bool) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetIsDefault(v)
	})
}

// UpdateIsDefault sets the "is_default" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateIsDefault() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateIsDefault()
	})
}

// SetStatus sets the "status" field.
func (u *WorkspaceUpsertBulk) SetStatus(v workspace.Status) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateStatus() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateStatus()
	})
}

// SetStatusMessage sets the "status_message" field.
func (u *WorkspaceUpsertBulk) SetStatusMessage(v string) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetStatusMessage(v)
	})
}

// UpdateStatusMessage sets the "status_message" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateStatusMessage() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateStatusMessage()
	})
}

// ClearStatusMessage clears the value of the "status_message" field.
func (u *WorkspaceUpsertBulk) ClearStatusMessage() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.ClearStatusMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkspaceUpsertBulk) SetUpdatedAt(v time.Time) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateUpdatedAt() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WorkspaceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkspaceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkspaceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkspaceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
