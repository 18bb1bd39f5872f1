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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// WorkspaceUpdate is the builder for updating Workspace entities.
type WorkspaceUpdate struct {
	config
	hooks    []Hook
	mutation *WorkspaceMutation
}

// Where appends a list predicates to the WorkspaceUpdate builder.
func (_u *WorkspaceUpdate) Where(ps ...predicate.Workspace) *WorkspaceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *WorkspaceUpdate) SetUserID(v int) *WorkspaceUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableUserID(v *int) *WorkspaceUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *WorkspaceUpdate) AddUserID(v int) *WorkspaceUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetLabel sets the "label" field.
func (_u *WorkspaceUpdate) SetLabel(v string) *WorkspaceUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableLabel(v *string) *WorkspaceUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetToken sets the "token" field.
func (_u *WorkspaceUpdate) SetToken(v string) *WorkspaceUpdate {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableToken(v *string) *WorkspaceUpdate {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetProxyURI sets the "proxy_uri" field.
func (_u *WorkspaceUpdate) SetProxyURI(v string) *WorkspaceUpdate {
	_u.mutation.SetProxyURI(v)
	return _u
}

// SetNillableProxyURI sets the "proxy_uri" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableProxyURI(v *string) *WorkspaceUpdate {
	if v != nil {
		_u.SetProxyURI(*v)
	}
	return _u
}

// SetProxyUser sets the "proxy_user" field.
func (_u *WorkspaceUpdate) SetProxyUser(v string) *WorkspaceUpdate {
	_u.mutation.SetProxyUser(v)
	return _u
}

// SetNillableProxyUser sets the "proxy_user" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableProxyUser(v *string) *WorkspaceUpdate {
	if v != nil {
		_u.SetProxyUser(*v)
	}
	return _u
}

// SetProxyPass sets the "proxy_pass" field.
func (_u *WorkspaceUpdate) SetProxyPass(v string) *WorkspaceUpdate {
	_u.mutation.SetProxyPass(v)
	return _u
}

// SetNillableProxyPass sets the "proxy_pass" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableProxyPass(v *string) *WorkspaceUpdate {
	if v != nil {
		_u.SetProxyPass(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *WorkspaceUpdate) SetIsDefault(v bool) *WorkspaceUpdate {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableIsDefault(v *bool) *WorkspaceUpdate {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkspaceUpdate) SetStatus(v workspace.Status) *WorkspaceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableStatus(v *workspace.Status) *WorkspaceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusMessage sets the "status_message" field.
func (_u *WorkspaceUpdate) SetStatusMessage(v string) *WorkspaceUpdate {
	_u.mutation.SetStatusMessage(v)
	return _u
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableStatusMessage(v *string) *WorkspaceUpdate {
	if v != nil {
		_u.SetStatusMessage(*v)
	}
	return _u
}

// ClearStatusMessage clears the value of the "status_message" field.
func (_u *WorkspaceUpdate) ClearStatusMessage() *WorkspaceUpdate {
	_u.mutation.ClearStatusMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkspaceUpdate) SetUpdatedAt(v time.Time) *WorkspaceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAccountIDs adds the "accounts" edge to the Account entity by IDs.
func (_u *WorkspaceUpdate) AddAccountIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.AddAccountIDs(ids...)
	return _u
}

// AddAccounts adds the "accounts" edges to the Account entity.
func (_u *WorkspaceUpdate) AddAccounts(v ...*Account) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAccountIDs(ids...)
}

// AddLotMappingIDs adds the "lot_mappings" edge to the LotMapping entity by IDs.
func (_u *WorkspaceUpdate) AddLotMappingIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.AddLotMappingIDs(ids...)
	return _u
}

// AddLotMappings adds the "lot_mappings" edges to the LotMapping entity.
func (_u *WorkspaceUpdate) AddLotMappings(v ...*LotMapping) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLotMappingIDs(ids...)
}

// AddOrderEventIDs adds the "order_events" edge to the OrderEvent entity by IDs.
func (_u *WorkspaceUpdate) AddOrderEventIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.AddOrderEventIDs(ids...)
	return _u
}

// AddOrderEvents adds the "order_events" edges to the OrderEvent entity.
func (_u *WorkspaceUpdate) AddOrderEvents(v ...*OrderEvent) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderEventIDs(ids...)
}

// AddBlacklistEntryIDs adds the "blacklist_entries" edge to the BlacklistEntry entity by IDs.
func (_u *WorkspaceUpdate) AddBlacklistEntryIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.AddBlacklistEntryIDs(ids...)
	return _u
}

// AddBlacklistEntries adds the "blacklist_entries" edges to the BlacklistEntry entity.
func (_u *WorkspaceUpdate) AddBlacklistEntries(v ...*BlacklistEntry) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBlacklistEntryIDs(ids...)
}

// AddBonusWalletIDs adds the "bonus_wallets" edge to the BonusWallet entity by IDs.
func (_u *WorkspaceUpdate) AddBonusWalletIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.AddBonusWalletIDs(ids...)
	return _u
}

// AddBonusWallets adds the "bonus_wallets" edges to the BonusWallet entity.
func (_u *WorkspaceUpdate) AddBonusWallets(v ...*BonusWallet) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBonusWalletIDs(ids...)
}

// AddChatSnapshotIDs adds the "chat_snapshots" edge to the ChatSnapshot entity by IDs.
func (_u *WorkspaceUpdate) AddChatSnapshotIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.AddChatSnapshotIDs(ids...)
	return _u
}

// AddChatSnapshots adds the "chat_snapshots" edges to the ChatSnapshot entity.
func (_u *WorkspaceUpdate) AddChatSnapshots(v ...*ChatSnapshot) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatSnapshotIDs(ids...)
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_u *WorkspaceUpdate) AddChatMessageIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.AddChatMessageIDs(ids...)
	return _u
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_u *WorkspaceUpdate) AddChatMessages(v ...*ChatMessage) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatMessageIDs(ids...)
}

// AddChatOutboxIDs adds the "chat_outbox" edge to the ChatOutbox entity by IDs.
func (_u *WorkspaceUpdate) AddChatOutboxIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.AddChatOutboxIDs(ids...)
	return _u
}

// AddChatOutbox adds the "chat_outbox" edges to the ChatOutbox entity.
func (_u *WorkspaceUpdate) AddChatOutbox(v ...*ChatOutbox) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatOutboxIDs(ids...)
}

// AddAdminCallIDs adds the "admin_calls" edge to the AdminCall entity by IDs.
func (_u *WorkspaceUpdate) AddAdminCallIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.AddAdminCallIDs(ids...)
	return _u
}

// AddAdminCalls adds the "admin_calls" edges to the AdminCall entity.
func (_u *WorkspaceUpdate) AddAdminCalls(v ...*AdminCall) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAdminCallIDs(ids...)
}

// Mutation returns the WorkspaceMutation object of the builder.
func (_u *WorkspaceUpdate) Mutation() *WorkspaceMutation {
	return _u.mutation
}

// ClearAccounts clears all "accounts" edges to the Account entity.
func (_u *WorkspaceUpdate) ClearAccounts() *WorkspaceUpdate {
	_u.mutation.ClearAccounts()
	return _u
}

// RemoveAccountIDs removes the "accounts" edge to Account entities by IDs.
func (_u *WorkspaceUpdate) RemoveAccountIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.RemoveAccountIDs(ids...)
	return _u
}

// RemoveAccounts removes "accounts" edges to Account entities.
func (_u *WorkspaceUpdate) RemoveAccounts(v ...*Account) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAccountIDs(ids...)
}

// ClearLotMappings clears all "lot_mappings" edges to the LotMapping entity.
func (_u *WorkspaceUpdate) ClearLotMappings() *WorkspaceUpdate {
	_u.mutation.ClearLotMappings()
	return _u
}

// RemoveLotMappingIDs removes the "lot_mappings" edge to LotMapping entities by IDs.
func (_u *WorkspaceUpdate) RemoveLotMappingIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.RemoveLotMappingIDs(ids...)
	return _u
}

// RemoveLotMappings removes "lot_mappings" edges to LotMapping entities.
func (_u *WorkspaceUpdate) RemoveLotMappings(v ...*LotMapping) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLotMappingIDs(ids...)
}

// ClearOrderEvents clears all "order_events" edges to the OrderEvent entity.
func (_u *WorkspaceUpdate) ClearOrderEvents() *WorkspaceUpdate {
	_u.mutation.ClearOrderEvents()
	return _u
}

// RemoveOrderEventIDs removes the "order_events" edge to OrderEvent entities by IDs.
func (_u *WorkspaceUpdate) RemoveOrderEventIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.RemoveOrderEventIDs(ids...)
	return _u
}

// RemoveOrderEvents removes "order_events" edges to OrderEvent entities.
func (_u *WorkspaceUpdate) RemoveOrderEvents(v ...*OrderEvent) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderEventIDs(ids...)
}

// ClearBlacklistEntries clears all "blacklist_entries" edges to the BlacklistEntry entity.
func (_u *WorkspaceUpdate) ClearBlacklistEntries() *WorkspaceUpdate {
	_u.mutation.ClearBlacklistEntries()
	return _u
}

// RemoveBlacklistEntryIDs removes the "blacklist_entries" edge to BlacklistEntry entities by IDs.
func (_u *WorkspaceUpdate) RemoveBlacklistEntryIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.RemoveBlacklistEntryIDs(ids...)
	return _u
}

// RemoveBlacklistEntries removes "blacklist_entries" edges to BlacklistEntry entities.
func (_u *WorkspaceUpdate) RemoveBlacklistEntries(v ...*BlacklistEntry) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBlacklistEntryIDs(ids...)
}

// ClearBonusWallets clears all "bonus_wallets" edges to the BonusWallet entity.
func (_u *WorkspaceUpdate) ClearBonusWallets() *WorkspaceUpdate {
	_u.mutation.ClearBonusWallets()
	return _u
}

// RemoveBonusWalletIDs removes the "bonus_wallets" edge to BonusWallet entities by IDs.
func (_u *WorkspaceUpdate) RemoveBonusWalletIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.RemoveBonusWalletIDs(ids...)
	return _u
}

// RemoveBonusWallets removes "bonus_wallets" edges to BonusWallet entities.
func (_u *WorkspaceUpdate) RemoveBonusWallets(v ...*BonusWallet) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBonusWalletIDs(ids...)
}

// ClearChatSnapshots clears all "chat_snapshots" edges to the ChatSnapshot entity.
func (_u *WorkspaceUpdate) ClearChatSnapshots() *WorkspaceUpdate {
	_u.mutation.ClearChatSnapshots()
	return _u
}

// RemoveChatSnapshotIDs removes the "chat_snapshots" edge to ChatSnapshot entities by IDs.
func (_u *WorkspaceUpdate) RemoveChatSnapshotIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.RemoveChatSnapshotIDs(ids...)
	return _u
}

// RemoveChatSnapshots removes "chat_snapshots" edges to ChatSnapshot entities.
func (_u *WorkspaceUpdate) RemoveChatSnapshots(v ...*ChatSnapshot) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatSnapshotIDs(ids...)
}

// ClearChatMessages clears all "chat_messages" edges to the ChatMessage entity.
func (_u *WorkspaceUpdate) ClearChatMessages() *WorkspaceUpdate {
	_u.mutation.ClearChatMessages()
	return _u
}

// RemoveChatMessageIDs removes the "chat_messages" edge to ChatMessage entities by IDs.
func (_u *WorkspaceUpdate) RemoveChatMessageIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.RemoveChatMessageIDs(ids...)
	return _u
}

// RemoveChatMessages removes "chat_messages" edges to ChatMessage entities.
func (_u *WorkspaceUpdate) RemoveChatMessages(v ...*ChatMessage) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatMessageIDs(ids...)
}

// ClearChatOutbox clears all "chat_outbox" edges to the ChatOutbox entity.
func (_u *WorkspaceUpdate) ClearChatOutbox() *WorkspaceUpdate {
	_u.mutation.ClearChatOutbox()
	return _u
}

// RemoveChatOutboxIDs removes the "chat_outbox" edge to ChatOutbox entities by IDs.
func (_u *WorkspaceUpdate) RemoveChatOutboxIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.RemoveChatOutboxIDs(ids...)
	return _u
}

// RemoveChatOutbox removes "chat_outbox" edges to ChatOutbox entities.
func (_u *WorkspaceUpdate) RemoveChatOutbox(v ...*ChatOutbox) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatOutboxIDs(ids...)
}

// ClearAdminCalls clears all "admin_calls" edges to the AdminCall entity.
func (_u *WorkspaceUpdate) ClearAdminCalls() *WorkspaceUpdate {
	_u.mutation.ClearAdminCalls()
	return _u
}

// RemoveAdminCallIDs removes the "admin_calls" edge to AdminCall entities by IDs.
func (_u *WorkspaceUpdate) RemoveAdminCallIDs(ids ...int) *WorkspaceUpdate {
	_u.mutation.RemoveAdminCallIDs(ids...)
	return _u
}

// RemoveAdminCalls removes "admin_calls" edges to AdminCall entities.
func (_u *WorkspaceUpdate) RemoveAdminCalls(v ...*AdminCall) *WorkspaceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAdminCallIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkspaceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkspaceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkspaceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkspaceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkspaceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workspace.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkspaceUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workspace.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workspace.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkspaceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workspace.Table, workspace.Columns, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(workspace.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(workspace.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(workspace.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(workspace.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProxyURI(); ok {
		_spec.SetField(workspace.FieldProxyURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProxyUser(); ok {
		_spec.SetField(workspace.FieldProxyUser, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProxyPass(); ok {
		_spec.SetField(workspace.FieldProxyPass, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(workspace.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workspace.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusMessage(); ok {
		_spec.SetField(workspace.FieldStatusMessage, field.TypeString, value)
	}
	if _u.mutation.StatusMessageCleared() {
		_spec.ClearField(workspace.FieldStatusMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workspace.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AccountsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAccountsIDs(); len(nodes) > 0 && !_u.mutation.AccountsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LotMappingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLotMappingsIDs(); len(nodes) > 0 && !_u.mutation.LotMappingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LotMappingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrderEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrderEventsIDs(); len(nodes) > 0 && !_u.mutation.OrderEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BlacklistEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBlacklistEntriesIDs(); len(nodes) > 0 && !_u.mutation.BlacklistEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlacklistEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BonusWalletsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBonusWalletsIDs(); len(nodes) > 0 && !_u.mutation.BonusWalletsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BonusWalletsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatSnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatSnapshotsIDs(); len(nodes) > 0 && !_u.mutation.ChatSnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatSnapshotsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatMessagesIDs(); len(nodes) > 0 && !_u.mutation.ChatMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatMessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatOutboxCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatOutboxIDs(); len(nodes) > 0 && !_u.mutation.ChatOutboxCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatOutboxIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AdminCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAdminCallsIDs(); len(nodes) > 0 && !_u.mutation.AdminCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AdminCallsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workspace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkspaceUpdateOne is the builder for updating a single Workspace entity.
type WorkspaceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkspaceMutation
}

// SetUserID sets the "user_id" field.
func (_u *WorkspaceUpdateOne) SetUserID(v int) *WorkspaceUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableUserID(v *int) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *WorkspaceUpdateOne) AddUserID(v int) *WorkspaceUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetLabel sets the "label" field.
func (_u *WorkspaceUpdateOne) SetLabel(v string) *WorkspaceUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableLabel(v *string) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetToken sets the "token" field.
func (_u *WorkspaceUpdateOne) SetToken(v string) *WorkspaceUpdateOne {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableToken(v *string) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetProxyURI sets the "proxy_uri" field.
func (_u *WorkspaceUpdateOne) SetProxyURI(v string) *WorkspaceUpdateOne {
	_u.mutation.SetProxyURI(v)
	return _u
}

// SetNillableProxyURI sets the "proxy_uri" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableProxyURI(v *string) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetProxyURI(*v)
	}
	return _u
}

// SetProxyUser sets the "proxy_user" field.
func (_u *WorkspaceUpdateOne) SetProxyUser(v string) *WorkspaceUpdateOne {
	_u.mutation.SetProxyUser(v)
	return _u
}

// SetNillableProxyUser sets the "proxy_user" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableProxyUser(v *string) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetProxyUser(*v)
	}
	return _u
}

// SetProxyPass sets the "proxy_pass" field.
func (_u *WorkspaceUpdateOne) SetProxyPass(v string) *WorkspaceUpdateOne {
	_u.mutation.SetProxyPass(v)
	return _u
}

// SetNillableProxyPass sets the "proxy_pass" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableProxyPass(v *string) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetProxyPass(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *WorkspaceUpdateOne) SetIsDefault(v bool) *WorkspaceUpdateOne {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableIsDefault(v *bool) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkspaceUpdateOne) SetStatus(v workspace.Status) *WorkspaceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableStatus(v *workspace.Status) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusMessage sets the "status_message" field.
func (_u *WorkspaceUpdateOne) SetStatusMessage(v string) *WorkspaceUpdateOne {
	_u.mutation.SetStatusMessage(v)
	return _u
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableStatusMessage(v *string) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetStatusMessage(*v)
	}
	return _u
}

// ClearStatusMessage clears the value of the "status_message" field.
func (_u *WorkspaceUpdateOne) ClearStatusMessage() *WorkspaceUpdateOne {
	_u.mutation.ClearStatusMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkspaceUpdateOne) SetUpdatedAt(v time.Time) *WorkspaceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAccountIDs adds the "accounts" edge to the Account entity by IDs.
func (_u *WorkspaceUpdateOne) AddAccountIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.AddAccountIDs(ids...)
	return _u
}

// AddAccounts adds the "accounts" edges to the Account entity.
func (_u *WorkspaceUpdateOne) AddAccounts(v ...*Account) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAccountIDs(ids...)
}

// AddLotMappingIDs adds the "lot_mappings" edge to the LotMapping entity by IDs.
func (_u *WorkspaceUpdateOne) AddLotMappingIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.AddLotMappingIDs(ids...)
	return _u
}

// AddLotMappings adds the "lot_mappings" edges to the LotMapping entity.
func (_u *WorkspaceUpdateOne) AddLotMappings(v ...*LotMapping) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLotMappingIDs(ids...)
}

// AddOrderEventIDs adds the "order_events" edge to the OrderEvent entity by IDs.
func (_u *WorkspaceUpdateOne) AddOrderEventIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.AddOrderEventIDs(ids...)
	return _u
}

// AddOrderEvents adds the "order_events" edges to the OrderEvent entity.
func (_u *WorkspaceUpdateOne) AddOrderEvents(v ...*OrderEvent) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderEventIDs(ids...)
}

// AddBlacklistEntryIDs adds the "blacklist_entries" edge to the BlacklistEntry entity by IDs.
func (_u *WorkspaceUpdateOne) AddBlacklistEntryIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.AddBlacklistEntryIDs(ids...)
	return _u
}

// AddBlacklistEntries adds the "blacklist_entries" edges to the BlacklistEntry entity.
func (_u *WorkspaceUpdateOne) AddBlacklistEntries(v ...*BlacklistEntry) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBlacklistEntryIDs(ids...)
}

// AddBonusWalletIDs adds the "bonus_wallets" edge to the BonusWallet entity by IDs.
func (_u *WorkspaceUpdateOne) AddBonusWalletIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.AddBonusWalletIDs(ids...)
	return _u
}

// AddBonusWallets adds the "bonus_wallets" edges to the BonusWallet entity.
func (_u *WorkspaceUpdateOne) AddBonusWallets(v ...*BonusWallet) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBonusWalletIDs(ids...)
}

// AddChatSnapshotIDs adds the "chat_snapshots" edge to the ChatSnapshot entity by IDs.
func (_u *WorkspaceUpdateOne) AddChatSnapshotIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.AddChatSnapshotIDs(ids...)
	return _u
}

// AddChatSnapshots adds the "chat_snapshots" edges to the ChatSnapshot entity.
func (_u *WorkspaceUpdateOne) AddChatSnapshots(v ...*ChatSnapshot) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatSnapshotIDs(ids...)
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_u *WorkspaceUpdateOne) AddChatMessageIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.AddChatMessageIDs(ids...)
	return _u
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_u *WorkspaceUpdateOne) AddChatMessages(v ...*ChatMessage) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatMessageIDs(ids...)
}

// AddChatOutboxIDs adds the "chat_outbox" edge to the ChatOutbox entity by IDs.
func (_u *WorkspaceUpdateOne) AddChatOutboxIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.AddChatOutboxIDs(ids...)
	return _u
}

// AddChatOutbox adds the "chat_outbox" edges to the ChatOutbox entity.
func (_u *WorkspaceUpdateOne) AddChatOutbox(v ...*ChatOutbox) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatOutboxIDs(ids...)
}

// AddAdminCallIDs adds the "admin_calls" edge to the AdminCall entity by IDs.
func (_u *WorkspaceUpdateOne) AddAdminCallIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.AddAdminCallIDs(ids...)
	return _u
}

// AddAdminCalls adds the "admin_calls" edges to the AdminCall entity.
func (_u *WorkspaceUpdateOne) AddAdminCalls(v ...*AdminCall) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAdminCallIDs(ids...)
}

// Mutation returns the WorkspaceMutation object of the builder.
func (_u *WorkspaceUpdateOne) Mutation() *WorkspaceMutation {
	return _u.mutation
}

// ClearAccounts clears all "accounts" edges to the Account entity.
func (_u *WorkspaceUpdateOne) ClearAccounts() *WorkspaceUpdateOne {
	_u.mutation.ClearAccounts()
	return _u
}

// RemoveAccountIDs removes the "accounts" edge to Account entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveAccountIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.RemoveAccountIDs(ids...)
	return _u
}

// RemoveAccounts removes "accounts" edges to Account entities.
func (_u *WorkspaceUpdateOne) RemoveAccounts(v ...*Account) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAccountIDs(ids...)
}

// ClearLotMappings clears all "lot_mappings" edges to the LotMapping entity.
func (_u *WorkspaceUpdateOne) ClearLotMappings() *WorkspaceUpdateOne {
	_u.mutation.ClearLotMappings()
	return _u
}

// RemoveLotMappingIDs removes the "lot_mappings" edge to LotMapping entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveLotMappingIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.RemoveLotMappingIDs(ids...)
	return _u
}

// RemoveLotMappings removes "lot_mappings" edges to LotMapping entities.
func (_u *WorkspaceUpdateOne) RemoveLotMappings(v ...*LotMapping) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLotMappingIDs(ids...)
}

// ClearOrderEvents clears all "order_events" edges to the OrderEvent entity.
func (_u *WorkspaceUpdateOne) ClearOrderEvents() *WorkspaceUpdateOne {
	_u.mutation.ClearOrderEvents()
	return _u
}

// RemoveOrderEventIDs removes the "order_events" edge to OrderEvent entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveOrderEventIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.RemoveOrderEventIDs(ids...)
	return _u
}

// RemoveOrderEvents removes "order_events" edges to OrderEvent entities.
func (_u *WorkspaceUpdateOne) RemoveOrderEvents(v ...*OrderEvent) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderEventIDs(ids...)
}

// ClearBlacklistEntries clears all "blacklist_entries" edges to the BlacklistEntry entity.
func (_u *WorkspaceUpdateOne) ClearBlacklistEntries() *WorkspaceUpdateOne {
	_u.mutation.ClearBlacklistEntries()
	return _u
}

// RemoveBlacklistEntryIDs removes the "blacklist_entries" edge to BlacklistEntry entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveBlacklistEntryIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.RemoveBlacklistEntryIDs(ids...)
	return _u
}

// RemoveBlacklistEntries removes "blacklist_entries" edges to BlacklistEntry entities.
func (_u *WorkspaceUpdateOne) RemoveBlacklistEntries(v ...*BlacklistEntry) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBlacklistEntryIDs(ids...)
}

// ClearBonusWallets clears all "bonus_wallets" edges to the BonusWallet entity.
func (_u *WorkspaceUpdateOne) ClearBonusWallets() *WorkspaceUpdateOne {
	_u.mutation.ClearBonusWallets()
	return _u
}

// RemoveBonusWalletIDs removes the "bonus_wallets" edge to BonusWallet entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveBonusWalletIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.RemoveBonusWalletIDs(ids...)
	return _u
}

// RemoveBonusWallets removes "bonus_wallets" edges to BonusWallet entities.
func (_u *WorkspaceUpdateOne) RemoveBonusWallets(v ...*BonusWallet) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBonusWalletIDs(ids...)
}

// ClearChatSnapshots clears all "chat_snapshots" edges to the ChatSnapshot entity.
func (_u *WorkspaceUpdateOne) ClearChatSnapshots() *WorkspaceUpdateOne {
	_u.mutation.ClearChatSnapshots()
	return _u
}

// RemoveChatSnapshotIDs removes the "chat_snapshots" edge to ChatSnapshot entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveChatSnapshotIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.RemoveChatSnapshotIDs(ids...)
	return _u
}

// RemoveChatSnapshots removes "chat_snapshots" edges to ChatSnapshot entities.
func (_u *WorkspaceUpdateOne) RemoveChatSnapshots(v ...*ChatSnapshot) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatSnapshotIDs(ids...)
}

// ClearChatMessages clears all "chat_messages" edges to the ChatMessage entity.
func (_u *WorkspaceUpdateOne) ClearChatMessages() *WorkspaceUpdateOne {
	_u.mutation.ClearChatMessages()
	return _u
}

// RemoveChatMessageIDs removes the "chat_messages" edge to ChatMessage entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveChatMessageIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.RemoveChatMessageIDs(ids...)
	return _u
}

// RemoveChatMessages removes "chat_messages" edges to ChatMessage entities.
func (_u *WorkspaceUpdateOne) RemoveChatMessages(v ...*ChatMessage) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatMessageIDs(ids...)
}

// ClearChatOutbox clears all "chat_outbox" edges to the ChatOutbox entity.
func (_u *WorkspaceUpdateOne) ClearChatOutbox() *WorkspaceUpdateOne {
	_u.mutation.ClearChatOutbox()
	return _u
}

// RemoveChatOutboxIDs removes the "chat_outbox" edge to ChatOutbox entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveChatOutboxIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.RemoveChatOutboxIDs(ids...)
	return _u
}

// RemoveChatOutbox removes "chat_outbox" edges to ChatOutbox entities.
func (_u *WorkspaceUpdateOne) RemoveChatOutbox(v ...*ChatOutbox) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatOutboxIDs(ids...)
}

// ClearAdminCalls clears all "admin_calls" edges to the AdminCall entity.
func (_u *WorkspaceUpdateOne) ClearAdminCalls() *WorkspaceUpdateOne {
	_u.mutation.ClearAdminCalls()
	return _u
}

// RemoveAdminCallIDs removes the "admin_calls" edge to AdminCall entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveAdminCallIDs(ids ...int) *WorkspaceUpdateOne {
	_u.mutation.RemoveAdminCallIDs(ids...)
	return _u
}

// RemoveAdminCalls removes "admin_calls" edges to AdminCall entities.
func (_u *WorkspaceUpdateOne) RemoveAdminCalls(v ...*AdminCall) *WorkspaceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAdminCallIDs(ids...)
}

// Where appends a list predicates to the WorkspaceUpdate builder.
func (_u *WorkspaceUpdateOne) Where(ps ...predicate.Workspace) *WorkspaceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkspaceUpdateOne) Select(field string, fields ...string) *WorkspaceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Workspace entity.
func (_u *WorkspaceUpdateOne) Save(ctx context.Context) (*Workspace, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkspaceUpdateOne) SaveX(ctx context.Context) *Workspace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkspaceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkspaceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkspaceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workspace.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkspaceUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workspace.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workspace.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkspaceUpdateOne) sqlSave(ctx context.Context) (_node *Workspace, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workspace.Table, workspace.Columns, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Workspace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workspace.FieldID)
		for _, f := range fields {
			if !workspace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workspace.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(workspace.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(workspace.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(workspace.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(workspace.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProxyURI(); ok {
		_spec.SetField(workspace.FieldProxyURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProxyUser(); ok {
		_spec.SetField(workspace.FieldProxyUser, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProxyPass(); ok {
		_spec.SetField(workspace.FieldProxyPass, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(workspace.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workspace.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusMessage(); ok {
		_spec.SetField(workspace.FieldStatusMessage, field.TypeString, value)
	}
	if _u.mutation.StatusMessageCleared() {
		_spec.ClearField(workspace.FieldStatusMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workspace.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AccountsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAccountsIDs(); len(nodes) > 0 && !_u.mutation.AccountsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LotMappingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLotMappingsIDs(); len(nodes) > 0 && !_u.mutation.LotMappingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LotMappingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrderEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrderEventsIDs(); len(nodes) > 0 && !_u.mutation.OrderEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BlacklistEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBlacklistEntriesIDs(); len(nodes) > 0 && !_u.mutation.BlacklistEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlacklistEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BonusWalletsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBonusWalletsIDs(); len(nodes) > 0 && !_u.mutation.BonusWalletsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BonusWalletsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatSnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatSnapshotsIDs(); len(nodes) > 0 && !_u.mutation.ChatSnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatSnapshotsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatMessagesIDs(); len(nodes) > 0 && !_u.mutation.ChatMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatMessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatOutboxCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatOutboxIDs(); len(nodes) > 0 && !_u.mutation.ChatOutboxCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatOutboxIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AdminCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAdminCallsIDs(); len(nodes) > 0 && !_u.mutation.AdminCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AdminCallsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Workspace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workspace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
