// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityEventsColumns holds the columns for the "activity_events" table.
	ActivityEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ActivityEventsTable holds the schema information for the "activity_events" table.
	ActivityEventsTable = &schema.Table{
		Name:       "activity_events",
		Columns:    ActivityEventsColumns,
		PrimaryKey: []*schema.Column{ActivityEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activityevent_team_id",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[1]},
			},
			{
				Name:    "activityevent_team_id_event_type",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[1], ActivityEventsColumns[3]},
			},
		},
	}
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"stopped", "running", "error"}, Default: "stopped"},
		{Name: "department", Type: field.TypeString, Nullable: true},
		{Name: "model_id", Type: field.TypeString, Default: ""},
		{Name: "model_endpoint", Type: field.TypeString, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "system_prompt", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "skills", Type: field.TypeJSON, Nullable: true},
		{Name: "proactive", Type: field.TypeBool, Default: false},
		{Name: "heartbeat_seconds", Type: field.TypeInt, Default: 3600},
		{Name: "active_hours_start", Type: field.TypeInt, Default: 0},
		{Name: "active_hours_end", Type: field.TypeInt, Default: 23},
		{Name: "template_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_team_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[1]},
			},
			{
				Name:    "agent_team_id_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[1], AgentsColumns[3]},
			},
		},
	}
	// ApprovalsColumns holds the columns for the "approvals" table.
	ApprovalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "action_type", Type: field.TypeString},
		{Name: "action_detail", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "risk_level", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "resolved_by", Type: field.TypeString, Nullable: true},
	}
	// ApprovalsTable holds the schema information for the "approvals" table.
	ApprovalsTable = &schema.Table{
		Name:       "approvals",
		Columns:    ApprovalsColumns,
		PrimaryKey: []*schema.Column{ApprovalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "approval_team_id_status",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[1], ApprovalsColumns[6]},
			},
			{
				Name:    "approval_team_id_agent_id",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[1], ApprovalsColumns[2]},
			},
		},
	}
	// ChatChannelsColumns holds the columns for the "chat_channels" table.
	ChatChannelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"dm", "group", "task_thread"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChatChannelsTable holds the schema information for the "chat_channels" table.
	ChatChannelsTable = &schema.Table{
		Name:       "chat_channels",
		Columns:    ChatChannelsColumns,
		PrimaryKey: []*schema.Column{ChatChannelsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatchannel_team_id_name",
				Unique:  true,
				Columns: []*schema.Column{ChatChannelsColumns[1], ChatChannelsColumns[2]},
			},
		},
	}
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "channel_id", Type: field.TypeString},
		{Name: "sender_kind", Type: field.TypeEnum, Enums: []string{"user", "agent", "system"}},
		{Name: "sender_id", Type: field.TypeString, Default: ""},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_channel_id",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[2]},
			},
			{
				Name:    "chatmessage_team_id",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[1]},
			},
		},
	}
	// CredentialsColumns holds the columns for the "credentials" table.
	CredentialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "service_id", Type: field.TypeString},
		{Name: "credential_type", Type: field.TypeString, Default: "api_key"},
		{Name: "encrypted_value", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CredentialsTable holds the schema information for the "credentials" table.
	CredentialsTable = &schema.Table{
		Name:       "credentials",
		Columns:    CredentialsColumns,
		PrimaryKey: []*schema.Column{CredentialsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "credential_team_id_service_id",
				Unique:  true,
				Columns: []*schema.Column{CredentialsColumns[1], CredentialsColumns[2]},
			},
		},
	}
	// CreditTransactionsColumns holds the columns for the "credit_transactions" table.
	CreditTransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "amount", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeString},
		{Name: "correlation_id", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CreditTransactionsTable holds the schema information for the "credit_transactions" table.
	CreditTransactionsTable = &schema.Table{
		Name:       "credit_transactions",
		Columns:    CreditTransactionsColumns,
		PrimaryKey: []*schema.Column{CreditTransactionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "credittransaction_team_id",
				Unique:  false,
				Columns: []*schema.Column{CreditTransactionsColumns[1]},
			},
			{
				Name:    "credittransaction_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{CreditTransactionsColumns[4]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_team_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
		},
	}
	// GoalsColumns holds the columns for the "goals" table.
	GoalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "archived"}, Default: "active"},
		{Name: "target_date", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GoalsTable holds the schema information for the "goals" table.
	GoalsTable = &schema.Table{
		Name:       "goals",
		Columns:    GoalsColumns,
		PrimaryKey: []*schema.Column{GoalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "goal_team_id",
				Unique:  false,
				Columns: []*schema.Column{GoalsColumns[1]},
			},
		},
	}
	// KBChunksColumns holds the columns for the "kb_chunks" table.
	KBChunksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "document_id", Type: field.TypeString},
		{Name: "team_id", Type: field.TypeString},
		{Name: "seq", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "token_count", Type: field.TypeInt, Default: 0},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
	}
	// KBChunksTable holds the schema information for the "kb_chunks" table.
	KBChunksTable = &schema.Table{
		Name:       "kb_chunks",
		Columns:    KBChunksColumns,
		PrimaryKey: []*schema.Column{KBChunksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "kbchunk_document_id_seq",
				Unique:  true,
				Columns: []*schema.Column{KBChunksColumns[1], KBChunksColumns[3]},
			},
			{
				Name:    "kbchunk_team_id",
				Unique:  false,
				Columns: []*schema.Column{KBChunksColumns[2]},
			},
		},
	}
	// KBDocumentsColumns holds the columns for the "kb_documents" table.
	KBDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "format", Type: field.TypeEnum, Enums: []string{"pdf", "docx", "txt", "md", "csv"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "ready", "failed"}, Default: "pending"},
		{Name: "summary_l0", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "summary_l1", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "chunk_count", Type: field.TypeInt, Default: 0},
		{Name: "size_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// KBDocumentsTable holds the schema information for the "kb_documents" table.
	KBDocumentsTable = &schema.Table{
		Name:       "kb_documents",
		Columns:    KBDocumentsColumns,
		PrimaryKey: []*schema.Column{KBDocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "kbdocument_team_id",
				Unique:  false,
				Columns: []*schema.Column{KBDocumentsColumns[1]},
			},
			{
				Name:    "kbdocument_team_id_status",
				Unique:  false,
				Columns: []*schema.Column{KBDocumentsColumns[1], KBDocumentsColumns[4]},
			},
		},
	}
	// MeasurableGoalsColumns holds the columns for the "measurable_goals" table.
	MeasurableGoalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "metric_name", Type: field.TypeString},
		{Name: "current_value", Type: field.TypeFloat64, Default: 0},
		{Name: "target_value", Type: field.TypeFloat64},
		{Name: "unit", Type: field.TypeString, Default: ""},
		{Name: "deadline", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "achieved", "missed", "paused"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MeasurableGoalsTable holds the schema information for the "measurable_goals" table.
	MeasurableGoalsTable = &schema.Table{
		Name:       "measurable_goals",
		Columns:    MeasurableGoalsColumns,
		PrimaryKey: []*schema.Column{MeasurableGoalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "measurablegoal_team_id",
				Unique:  false,
				Columns: []*schema.Column{MeasurableGoalsColumns[1]},
			},
		},
	}
	// MeetingsColumns holds the columns for the "meetings" table.
	MeetingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "ended"}, Default: "active"},
		{Name: "agent_ids", Type: field.TypeJSON},
		{Name: "advisor_agent_id", Type: field.TypeString},
		{Name: "company_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
	}
	// MeetingsTable holds the schema information for the "meetings" table.
	MeetingsTable = &schema.Table{
		Name:       "meetings",
		Columns:    MeetingsColumns,
		PrimaryKey: []*schema.Column{MeetingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "meeting_team_id",
				Unique:  false,
				Columns: []*schema.Column{MeetingsColumns[1]},
			},
		},
	}
	// MeetingMessagesColumns holds the columns for the "meeting_messages" table.
	MeetingMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "meeting_id", Type: field.TypeString},
		{Name: "team_id", Type: field.TypeString},
		{Name: "speaker_kind", Type: field.TypeEnum, Enums: []string{"agent", "human", "system"}},
		{Name: "speaker_id", Type: field.TypeString, Default: ""},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MeetingMessagesTable holds the schema information for the "meeting_messages" table.
	MeetingMessagesTable = &schema.Table{
		Name:       "meeting_messages",
		Columns:    MeetingMessagesColumns,
		PrimaryKey: []*schema.Column{MeetingMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "meetingmessage_meeting_id",
				Unique:  false,
				Columns: []*schema.Column{MeetingMessagesColumns[1]},
			},
		},
	}
	// MemoriesColumns holds the columns for the "memories" table.
	MemoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MemoriesTable holds the schema information for the "memories" table.
	MemoriesTable = &schema.Table{
		Name:       "memories",
		Columns:    MemoriesColumns,
		PrimaryKey: []*schema.Column{MemoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "memory_team_id",
				Unique:  false,
				Columns: []*schema.Column{MemoriesColumns[1]},
			},
			{
				Name:    "memory_team_id_agent_id",
				Unique:  false,
				Columns: []*schema.Column{MemoriesColumns[1], MemoriesColumns[2]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "team_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "channel_id", Type: field.TypeString, Nullable: true},
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
				Name:    "notification_user_id_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[7]},
			},
		},
	}
	// SorPermissionsColumns holds the columns for the "sor_permissions" table.
	SorPermissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "table_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "team_id", Type: field.TypeString},
		{Name: "can_read", Type: field.TypeBool, Default: false},
		{Name: "can_write", Type: field.TypeBool, Default: false},
	}
	// SorPermissionsTable holds the schema information for the "sor_permissions" table.
	SorPermissionsTable = &schema.Table{
		Name:       "sor_permissions",
		Columns:    SorPermissionsColumns,
		PrimaryKey: []*schema.Column{SorPermissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sorpermission_table_id_agent_id",
				Unique:  true,
				Columns: []*schema.Column{SorPermissionsColumns[1], SorPermissionsColumns[2]},
			},
		},
	}
	// SorRowsColumns holds the columns for the "sor_rows" table.
	SorRowsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "table_id", Type: field.TypeString},
		{Name: "team_id", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SorRowsTable holds the schema information for the "sor_rows" table.
	SorRowsTable = &schema.Table{
		Name:       "sor_rows",
		Columns:    SorRowsColumns,
		PrimaryKey: []*schema.Column{SorRowsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sorrow_table_id",
				Unique:  false,
				Columns: []*schema.Column{SorRowsColumns[1]},
			},
			{
				Name:    "sorrow_team_id",
				Unique:  false,
				Columns: []*schema.Column{SorRowsColumns[2]},
			},
		},
	}
	// SorTablesColumns holds the columns for the "sor_tables" table.
	SorTablesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "columns", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SorTablesTable holds the schema information for the "sor_tables" table.
	SorTablesTable = &schema.Table{
		Name:       "sor_tables",
		Columns:    SorTablesColumns,
		PrimaryKey: []*schema.Column{SorTablesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sortable_team_id",
				Unique:  false,
				Columns: []*schema.Column{SorTablesColumns[1]},
			},
		},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "team_id", Type: field.TypeString, Unique: true},
		{Name: "plan", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "past_due", "canceled"}, Default: "active"},
		{Name: "current_period_end", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subscription_team_id",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[1]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"backlog", "todo", "in_progress", "review", "done"}, Default: "todo"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "urgent"}, Default: "medium"},
		{Name: "assigned_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "parent_task_id", Type: field.TypeString, Nullable: true},
		{Name: "goal_id", Type: field.TypeString, Nullable: true},
		{Name: "deadline", Type: field.TypeTime, Nullable: true},
		{Name: "depends_on", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_team_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1]},
			},
			{
				Name:    "task_team_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[4]},
			},
			{
				Name:    "task_team_id_assigned_agent_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[6]},
			},
		},
	}
	// TeamsColumns holds the columns for the "teams" table.
	TeamsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_by", Type: field.TypeString},
		{Name: "credits_balance", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TeamsTable holds the schema information for the "teams" table.
	TeamsTable = &schema.Table{
		Name:       "teams",
		Columns:    TeamsColumns,
		PrimaryKey: []*schema.Column{TeamsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "team_id",
				Unique:  false,
				Columns: []*schema.Column{TeamsColumns[0]},
			},
		},
	}
	// TeamMembersColumns holds the columns for the "team_members" table.
	TeamMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "member", "viewer"}, Default: "member"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TeamMembersTable holds the schema information for the "team_members" table.
	TeamMembersTable = &schema.Table{
		Name:       "team_members",
		Columns:    TeamMembersColumns,
		PrimaryKey: []*schema.Column{TeamMembersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "teammember_team_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{TeamMembersColumns[1], TeamMembersColumns[2]},
			},
			{
				Name:    "teammember_user_id",
				Unique:  false,
				Columns: []*schema.Column{TeamMembersColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityEventsTable,
		AgentsTable,
		ApprovalsTable,
		ChatChannelsTable,
		ChatMessagesTable,
		CredentialsTable,
		CreditTransactionsTable,
		EventsTable,
		GoalsTable,
		KBChunksTable,
		KBDocumentsTable,
		MeasurableGoalsTable,
		MeetingsTable,
		MeetingMessagesTable,
		MemoriesTable,
		NotificationsTable,
		SorPermissionsTable,
		SorRowsTable,
		SorTablesTable,
		SubscriptionsTable,
		TasksTable,
		TeamsTable,
		TeamMembersTable,
	}
)

func init() {
}
