// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CardsColumns holds the columns for the "cards" table.
	CardsColumns = []*schema.Column{
		{Name: "card_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "board_column", Type: field.TypeString, Default: "backlog"},
		{Name: "spec_path", Type: field.TypeString, Nullable: true},
		{Name: "model_plan", Type: field.TypeString, Default: "opus-4.5"},
		{Name: "model_implement", Type: field.TypeString, Default: "opus-4.5"},
		{Name: "model_test", Type: field.TypeString, Default: "opus-4.5"},
		{Name: "model_review", Type: field.TypeString, Default: "opus-4.5"},
		{Name: "parent_card_id", Type: field.TypeString, Nullable: true},
		{Name: "is_fix_card", Type: field.TypeBool, Default: false},
		{Name: "test_error_context", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "branch_name", Type: field.TypeString, Nullable: true},
		{Name: "worktree_path", Type: field.TypeString, Nullable: true},
		{Name: "base_branch", Type: field.TypeString, Nullable: true},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "diff_stats", Type: field.TypeJSON, Nullable: true},
		{Name: "archived", Type: field.TypeBool, Default: false},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "goal_id", Type: field.TypeString, Nullable: true},
	}
	// CardsTable holds the schema information for the "cards" table.
	CardsTable = &schema.Table{
		Name:       "cards",
		Columns:    CardsColumns,
		PrimaryKey: []*schema.Column{CardsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cards_goals_cards",
				Columns:    []*schema.Column{CardsColumns[21]},
				RefColumns: []*schema.Column{GoalsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "card_board_column",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[3]},
			},
			{
				Name:    "card_goal_id",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[21]},
			},
			{
				Name:    "card_parent_card_id",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[9]},
			},
			{
				Name:    "card_board_column_created_at",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[3], CardsColumns[19]},
			},
			{
				Name:    "card_parent_card_id_is_fix_card",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[9], CardsColumns[10]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "card_id", Type: field.TypeString, Nullable: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[4]},
			},
			{
				Name:    "event_card_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// ExecutionsColumns holds the columns for the "executions" table.
	ExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "command", Type: field.TypeString},
		{Name: "workflow_stage", Type: field.TypeEnum, Enums: []string{"planning", "implementing", "testing", "reviewing"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "success", "error"}, Default: "running"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "model", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "workflow_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "card_id", Type: field.TypeString},
	}
	// ExecutionsTable holds the schema information for the "executions" table.
	ExecutionsTable = &schema.Table{
		Name:       "executions",
		Columns:    ExecutionsColumns,
		PrimaryKey: []*schema.Column{ExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "executions_cards_executions",
				Columns:    []*schema.Column{ExecutionsColumns[15]},
				RefColumns: []*schema.Column{CardsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "execution_card_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[15]},
			},
			{
				Name:    "execution_card_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[15], ExecutionsColumns[4]},
			},
			{
				Name:    "execution_card_id_command_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[15], ExecutionsColumns[1], ExecutionsColumns[13]},
			},
		},
	}
	// ExecutionLogsColumns holds the columns for the "execution_logs" table.
	ExecutionLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "log_type", Type: field.TypeEnum, Enums: []string{"info", "text", "tool", "result", "error"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "execution_id", Type: field.TypeString},
	}
	// ExecutionLogsTable holds the schema information for the "execution_logs" table.
	ExecutionLogsTable = &schema.Table{
		Name:       "execution_logs",
		Columns:    ExecutionLogsColumns,
		PrimaryKey: []*schema.Column{ExecutionLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "execution_logs_executions_logs",
				Columns:    []*schema.Column{ExecutionLogsColumns[5]},
				RefColumns: []*schema.Column{ExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "executionlog_execution_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{ExecutionLogsColumns[5], ExecutionLogsColumns[1]},
			},
		},
	}
	// GoalsColumns holds the columns for the "goals" table.
	GoalsColumns = []*schema.Column{
		{Name: "goal_id", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "completed", "failed"}, Default: "pending"},
		{Name: "source", Type: field.TypeString, Default: "api"},
		{Name: "source_id", Type: field.TypeString, Nullable: true},
		{Name: "card_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "learning_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "learning_id", Type: field.TypeString, Nullable: true},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// GoalsTable holds the schema information for the "goals" table.
	GoalsTable = &schema.Table{
		Name:       "goals",
		Columns:    GoalsColumns,
		PrimaryKey: []*schema.Column{GoalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "goal_status",
				Unique:  false,
				Columns: []*schema.Column{GoalsColumns[2]},
			},
			{
				Name:    "goal_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{GoalsColumns[2], GoalsColumns[11]},
			},
			{
				Name:    "goal_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{GoalsColumns[2], GoalsColumns[12]},
			},
		},
	}
	// MemoryEntriesColumns holds the columns for the "memory_entries" table.
	MemoryEntriesColumns = []*schema.Column{
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "entry_type", Type: field.TypeEnum, Enums: []string{"act", "decision", "observation", "error"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "goal_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// MemoryEntriesTable holds the schema information for the "memory_entries" table.
	MemoryEntriesTable = &schema.Table{
		Name:       "memory_entries",
		Columns:    MemoryEntriesColumns,
		PrimaryKey: []*schema.Column{MemoryEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "memoryentry_expires_at",
				Unique:  false,
				Columns: []*schema.Column{MemoryEntriesColumns[6]},
			},
			{
				Name:    "memoryentry_entry_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{MemoryEntriesColumns[1], MemoryEntriesColumns[5]},
			},
			{
				Name:    "memoryentry_goal_id",
				Unique:  false,
				Columns: []*schema.Column{MemoryEntriesColumns[4]},
			},
		},
	}
	// OrchestratorActionsColumns holds the columns for the "orchestrator_actions" table.
	OrchestratorActionsColumns = []*schema.Column{
		{Name: "action_id", Type: field.TypeString, Unique: true},
		{Name: "decision", Type: field.TypeString},
		{Name: "goal_id", Type: field.TypeString, Nullable: true},
		{Name: "card_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "reason", Type: field.TypeString, Size: 2147483647},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "learning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OrchestratorActionsTable holds the schema information for the "orchestrator_actions" table.
	OrchestratorActionsTable = &schema.Table{
		Name:       "orchestrator_actions",
		Columns:    OrchestratorActionsColumns,
		PrimaryKey: []*schema.Column{OrchestratorActionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "orchestratoraction_goal_id",
				Unique:  false,
				Columns: []*schema.Column{OrchestratorActionsColumns[2]},
			},
			{
				Name:    "orchestratoraction_created_at",
				Unique:  false,
				Columns: []*schema.Column{OrchestratorActionsColumns[9]},
			},
			{
				Name:    "orchestratoraction_decision_created_at",
				Unique:  false,
				Columns: []*schema.Column{OrchestratorActionsColumns[1], OrchestratorActionsColumns[9]},
			},
		},
	}
	// OrchestratorLogsColumns holds the columns for the "orchestrator_logs" table.
	OrchestratorLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"info", "warning", "error"}, Default: "info"},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "goal_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OrchestratorLogsTable holds the schema information for the "orchestrator_logs" table.
	OrchestratorLogsTable = &schema.Table{
		Name:       "orchestrator_logs",
		Columns:    OrchestratorLogsColumns,
		PrimaryKey: []*schema.Column{OrchestratorLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "orchestratorlog_goal_id",
				Unique:  false,
				Columns: []*schema.Column{OrchestratorLogsColumns[4]},
			},
			{
				Name:    "orchestratorlog_level_created_at",
				Unique:  false,
				Columns: []*schema.Column{OrchestratorLogsColumns[1], OrchestratorLogsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CardsTable,
		EventsTable,
		ExecutionsTable,
		ExecutionLogsTable,
		GoalsTable,
		MemoryEntriesTable,
		OrchestratorActionsTable,
		OrchestratorLogsTable,
	}
)

func init() {
	CardsTable.ForeignKeys[0].RefTable = GoalsTable
	EventsTable.Annotation = &entsql.Annotation{
		Table: "events",
	}
	ExecutionsTable.ForeignKeys[0].RefTable = CardsTable
	ExecutionLogsTable.ForeignKeys[0].RefTable = ExecutionsTable
}
