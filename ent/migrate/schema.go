// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "display_name", Type: field.TypeString},
		{Name: "login", Type: field.TypeString},
		{Name: "password", Type: field.TypeString},
		{Name: "mafile_json", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "mmr", Type: field.TypeInt, Default: 0},
		{Name: "rental_duration_minutes", Type: field.TypeInt, Default: 60},
		{Name: "owner", Type: field.TypeString, Nullable: true},
		{Name: "rental_start", Type: field.TypeTime, Nullable: true},
		{Name: "rental_frozen", Type: field.TypeBool, Default: false},
		{Name: "rental_frozen_at", Type: field.TypeTime, Nullable: true},
		{Name: "account_frozen", Type: field.TypeBool, Default: false},
		{Name: "rental_order_id", Type: field.TypeString, Nullable: true},
		{Name: "low_priority", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeInt},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "accounts_workspaces_accounts",
				Columns:    []*schema.Column{AccountsColumns[17]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "account_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[17]},
			},
			{
				Name:    "account_user_id",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[1]},
			},
			{
				Name:    "account_owner",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[8]},
			},
			{
				Name:    "account_workspace_id_owner",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[17], AccountsColumns[8]},
			},
		},
	}
	// AdminCallsColumns holds the columns for the "admin_calls" table.
	AdminCallsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "chat_id", Type: field.TypeString},
		{Name: "owner", Type: field.TypeString, Default: ""},
		{Name: "count", Type: field.TypeInt, Default: 0},
		{Name: "last_called_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeInt},
	}
	// AdminCallsTable holds the schema information for the "admin_calls" table.
	AdminCallsTable = &schema.Table{
		Name:       "admin_calls",
		Columns:    AdminCallsColumns,
		PrimaryKey: []*schema.Column{AdminCallsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "admin_calls_workspaces_admin_calls",
				Columns:    []*schema.Column{AdminCallsColumns[6]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "admincall_workspace_id_chat_id",
				Unique:  true,
				Columns: []*schema.Column{AdminCallsColumns[6], AdminCallsColumns[2]},
			},
		},
	}
	// BlacklistEntriesColumns holds the columns for the "blacklist_entries" table.
	BlacklistEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "owner", Type: field.TypeString},
		{Name: "owner_key", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeInt},
	}
	// BlacklistEntriesTable holds the schema information for the "blacklist_entries" table.
	BlacklistEntriesTable = &schema.Table{
		Name:       "blacklist_entries",
		Columns:    BlacklistEntriesColumns,
		PrimaryKey: []*schema.Column{BlacklistEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "blacklist_entries_workspaces_blacklist_entries",
				Columns:    []*schema.Column{BlacklistEntriesColumns[6]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "blacklistentry_workspace_id_user_id_owner_key",
				Unique:  true,
				Columns: []*schema.Column{BlacklistEntriesColumns[6], BlacklistEntriesColumns[1], BlacklistEntriesColumns[3]},
			},
		},
	}
	// BlacklistLogsColumns holds the columns for the "blacklist_logs" table.
	BlacklistLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt, Default: 0},
		{Name: "owner", Type: field.TypeString},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"added", "removed", "auto_unblacklist", "blocked_order", "cleared"}},
		{Name: "reason", Type: field.TypeString, Default: ""},
		{Name: "details", Type: field.TypeString, Default: ""},
		{Name: "amount", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BlacklistLogsTable holds the schema information for the "blacklist_logs" table.
	BlacklistLogsTable = &schema.Table{
		Name:       "blacklist_logs",
		Columns:    BlacklistLogsColumns,
		PrimaryKey: []*schema.Column{BlacklistLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blacklistlog_owner_created_at",
				Unique:  false,
				Columns: []*schema.Column{BlacklistLogsColumns[2], BlacklistLogsColumns[7]},
			},
		},
	}
	// BonusHistoriesColumns holds the columns for the "bonus_histories" table.
	BonusHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "workspace_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "owner", Type: field.TypeString},
		{Name: "delta_minutes", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeString, Default: ""},
		{Name: "order_id", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BonusHistoriesTable holds the schema information for the "bonus_histories" table.
	BonusHistoriesTable = &schema.Table{
		Name:       "bonus_histories",
		Columns:    BonusHistoriesColumns,
		PrimaryKey: []*schema.Column{BonusHistoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "bonushistory_workspace_id_user_id_owner",
				Unique:  false,
				Columns: []*schema.Column{BonusHistoriesColumns[1], BonusHistoriesColumns[2], BonusHistoriesColumns[3]},
			},
		},
	}
	// BonusWalletsColumns holds the columns for the "bonus_wallets" table.
	BonusWalletsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "owner", Type: field.TypeString},
		{Name: "balance_minutes", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeInt},
	}
	// BonusWalletsTable holds the schema information for the "bonus_wallets" table.
	BonusWalletsTable = &schema.Table{
		Name:       "bonus_wallets",
		Columns:    BonusWalletsColumns,
		PrimaryKey: []*schema.Column{BonusWalletsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bonus_wallets_workspaces_bonus_wallets",
				Columns:    []*schema.Column{BonusWalletsColumns[5]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "bonuswallet_workspace_id_user_id_owner",
				Unique:  true,
				Columns: []*schema.Column{BonusWalletsColumns[5], BonusWalletsColumns[1], BonusWalletsColumns[2]},
			},
		},
	}
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "chat_id", Type: field.TypeString},
		{Name: "message_id", Type: field.TypeString},
		{Name: "author", Type: field.TypeString, Default: ""},
		{Name: "text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "sent_time", Type: field.TypeTime, Nullable: true},
		{Name: "by_bot", Type: field.TypeBool, Default: false},
		{Name: "type", Type: field.TypeString, Default: "text"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeInt},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_workspaces_chat_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[10]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_workspace_id_chat_id_message_id",
				Unique:  true,
				Columns: []*schema.Column{ChatMessagesColumns[10], ChatMessagesColumns[2], ChatMessagesColumns[3]},
			},
			{
				Name:    "chatmessage_workspace_id_chat_id_sent_time",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[10], ChatMessagesColumns[2], ChatMessagesColumns[6]},
			},
		},
	}
	// ChatOutboxesColumns holds the columns for the "chat_outboxes" table.
	ChatOutboxesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "chat_id", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "sent", "failed"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "workspace_id", Type: field.TypeInt},
	}
	// ChatOutboxesTable holds the schema information for the "chat_outboxes" table.
	ChatOutboxesTable = &schema.Table{
		Name:       "chat_outboxes",
		Columns:    ChatOutboxesColumns,
		PrimaryKey: []*schema.Column{ChatOutboxesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_outboxes_workspaces_chat_outbox",
				Columns:    []*schema.Column{ChatOutboxesColumns[9]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatoutbox_workspace_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatOutboxesColumns[9], ChatOutboxesColumns[4], ChatOutboxesColumns[7]},
			},
		},
	}
	// ChatSnapshotsColumns holds the columns for the "chat_snapshots" table.
	ChatSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "chat_id", Type: field.TypeString},
		{Name: "peer_name", Type: field.TypeString, Default: ""},
		{Name: "last_message_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "last_message_time", Type: field.TypeTime, Nullable: true},
		{Name: "unread", Type: field.TypeBool, Default: false},
		{Name: "admin_unread_count", Type: field.TypeInt, Default: 0},
		{Name: "admin_requested", Type: field.TypeBool, Default: false},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeInt},
	}
	// ChatSnapshotsTable holds the schema information for the "chat_snapshots" table.
	ChatSnapshotsTable = &schema.Table{
		Name:       "chat_snapshots",
		Columns:    ChatSnapshotsColumns,
		PrimaryKey: []*schema.Column{ChatSnapshotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_snapshots_workspaces_chat_snapshots",
				Columns:    []*schema.Column{ChatSnapshotsColumns[10]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatsnapshot_workspace_id_chat_id",
				Unique:  true,
				Columns: []*schema.Column{ChatSnapshotsColumns[10], ChatSnapshotsColumns[2]},
			},
			{
				Name:    "chatsnapshot_user_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ChatSnapshotsColumns[1], ChatSnapshotsColumns[9]},
			},
		},
	}
	// DashboardSessionsColumns holds the columns for the "dashboard_sessions" table.
	DashboardSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DashboardSessionsTable holds the schema information for the "dashboard_sessions" table.
	DashboardSessionsTable = &schema.Table{
		Name:       "dashboard_sessions",
		Columns:    DashboardSessionsColumns,
		PrimaryKey: []*schema.Column{DashboardSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dashboardsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{DashboardSessionsColumns[1]},
			},
			{
				Name:    "dashboardsession_expires_at",
				Unique:  false,
				Columns: []*schema.Column{DashboardSessionsColumns[2]},
			},
		},
	}
	// LotMappingsColumns holds the columns for the "lot_mappings" table.
	LotMappingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "lot_number", Type: field.TypeString},
		{Name: "account_id", Type: field.TypeInt},
		{Name: "lot_url", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeInt},
	}
	// LotMappingsTable holds the schema information for the "lot_mappings" table.
	LotMappingsTable = &schema.Table{
		Name:       "lot_mappings",
		Columns:    LotMappingsColumns,
		PrimaryKey: []*schema.Column{LotMappingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lot_mappings_workspaces_lot_mappings",
				Columns:    []*schema.Column{LotMappingsColumns[6]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lotmapping_workspace_id_user_id_lot_number",
				Unique:  true,
				Columns: []*schema.Column{LotMappingsColumns[6], LotMappingsColumns[1], LotMappingsColumns[2]},
			},
			{
				Name:    "lotmapping_account_id",
				Unique:  false,
				Columns: []*schema.Column{LotMappingsColumns[3]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "workspace_id", Type: field.TypeInt, Default: 0},
		{Name: "kind", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_read_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[5], NotificationsColumns[6]},
			},
		},
	}
	// OrderEventsColumns holds the columns for the "order_events" table.
	OrderEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "order_id", Type: field.TypeString},
		{Name: "owner", Type: field.TypeString, Default: ""},
		{Name: "account_id", Type: field.TypeInt, Nullable: true},
		{Name: "account_name", Type: field.TypeString, Default: ""},
		{Name: "steam_id", Type: field.TypeInt64, Nullable: true},
		{Name: "lot_number", Type: field.TypeString, Default: ""},
		{Name: "amount", Type: field.TypeInt, Default: 0},
		{Name: "price", Type: field.TypeFloat64, Default: 0},
		{Name: "rental_minutes", Type: field.TypeInt, Default: 0},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"paid", "issued", "extended", "replace_assign", "refunded", "closed", "busy", "unmapped", "blacklisted", "blacklist_comp", "auto_unblacklist", "review_bonus", "review_bonus_revert", "assign", "ticket_auto"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeInt},
	}
	// OrderEventsTable holds the schema information for the "order_events" table.
	OrderEventsTable = &schema.Table{
		Name:       "order_events",
		Columns:    OrderEventsColumns,
		PrimaryKey: []*schema.Column{OrderEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "order_events_workspaces_order_events",
				Columns:    []*schema.Column{OrderEventsColumns[13]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "orderevent_workspace_id_order_id",
				Unique:  false,
				Columns: []*schema.Column{OrderEventsColumns[13], OrderEventsColumns[2]},
			},
			{
				Name:    "orderevent_order_id_action",
				Unique:  false,
				Columns: []*schema.Column{OrderEventsColumns[2], OrderEventsColumns[11]},
			},
			{
				Name:    "orderevent_workspace_id_user_id_owner_action",
				Unique:  false,
				Columns: []*schema.Column{OrderEventsColumns[13], OrderEventsColumns[1], OrderEventsColumns[3], OrderEventsColumns[11]},
			},
			{
				Name:    "orderevent_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{OrderEventsColumns[1], OrderEventsColumns[12]},
			},
		},
	}
	// ReviewRewardsColumns holds the columns for the "review_rewards" table.
	ReviewRewardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "order_id", Type: field.TypeString},
		{Name: "owner", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "workspace_id", Type: field.TypeInt},
		{Name: "rating", Type: field.TypeInt, Default: 0},
		{Name: "review_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "account_id", Type: field.TypeInt, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
	}
	// ReviewRewardsTable holds the schema information for the "review_rewards" table.
	ReviewRewardsTable = &schema.Table{
		Name:       "review_rewards",
		Columns:    ReviewRewardsColumns,
		PrimaryKey: []*schema.Column{ReviewRewardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewreward_order_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewRewardsColumns[1]},
			},
			{
				Name:    "reviewreward_owner",
				Unique:  false,
				Columns: []*schema.Column{ReviewRewardsColumns[2]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "key", Type: field.TypeString},
		{Name: "value", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "setting_user_id_key",
				Unique:  true,
				Columns: []*schema.Column{SettingsColumns[1], SettingsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "username", Type: field.TypeString},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// WorkspacesColumns holds the columns for the "workspaces" table.
	WorkspacesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "label", Type: field.TypeString, Default: ""},
		{Name: "token", Type: field.TypeString},
		{Name: "proxy_uri", Type: field.TypeString, Default: ""},
		{Name: "proxy_user", Type: field.TypeString, Default: ""},
		{Name: "proxy_pass", Type: field.TypeString, Default: ""},
		{Name: "is_default", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ok", "unauthorized", "error"}, Default: "ok"},
		{Name: "status_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkspacesTable holds the schema information for the "workspaces" table.
	WorkspacesTable = &schema.Table{
		Name:       "workspaces",
		Columns:    WorkspacesColumns,
		PrimaryKey: []*schema.Column{WorkspacesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workspace_user_id",
				Unique:  false,
				Columns: []*schema.Column{WorkspacesColumns[1]},
			},
			{
				Name:    "workspace_user_id_is_default",
				Unique:  false,
				Columns: []*schema.Column{WorkspacesColumns[1], WorkspacesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		AdminCallsTable,
		BlacklistEntriesTable,
		BlacklistLogsTable,
		BonusHistoriesTable,
		BonusWalletsTable,
		ChatMessagesTable,
		ChatOutboxesTable,
		ChatSnapshotsTable,
		DashboardSessionsTable,
		LotMappingsTable,
		NotificationsTable,
		OrderEventsTable,
		ReviewRewardsTable,
		SettingsTable,
		UsersTable,
		WorkspacesTable,
	}
)

func init() {
	AccountsTable.ForeignKeys[0].RefTable = WorkspacesTable
	AdminCallsTable.ForeignKeys[0].RefTable = WorkspacesTable
	BlacklistEntriesTable.ForeignKeys[0].RefTable = WorkspacesTable
	BonusWalletsTable.ForeignKeys[0].RefTable = WorkspacesTable
	ChatMessagesTable.ForeignKeys[0].RefTable = WorkspacesTable
	ChatOutboxesTable.ForeignKeys[0].RefTable = WorkspacesTable
	ChatSnapshotsTable.ForeignKeys[0].RefTable = WorkspacesTable
	LotMappingsTable.ForeignKeys[0].RefTable = WorkspacesTable
	OrderEventsTable.ForeignKeys[0].RefTable = WorkspacesTable
}
