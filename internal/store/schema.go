package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const highScoreKey = "math_highscore"

var (
	// settingsColumns holds the columns for the "settings" table.
	settingsColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// settingsTable holds named scalar values such as the high score.
	settingsTable = &schema.Table{
		Name:       "settings",
		Columns:    settingsColumns,
		PrimaryKey: []*schema.Column{settingsColumns[0]},
	}

	// gameRecordsColumns holds the columns for the "game_records" table.
	gameRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "operation", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "new_high_score", Type: field.TypeBool, Default: false},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime},
	}
	// gameRecordsTable holds one row per completed quiz.
	gameRecordsTable = &schema.Table{
		Name:       "game_records",
		Columns:    gameRecordsColumns,
		PrimaryKey: []*schema.Column{gameRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gamerecord_finished_at",
				Unique:  false,
				Columns: []*schema.Column{gameRecordsColumns[8]},
			},
			{
				Name:    "gamerecord_operation",
				Unique:  false,
				Columns: []*schema.Column{gameRecordsColumns[1]},
			},
		},
	}

	// llmRequestsColumns holds the columns for the "llm_requests" table.
	llmRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// llmRequestsTable holds one row per LLM call.
	llmRequestsTable = &schema.Table{
		Name:       "llm_requests",
		Columns:    llmRequestsColumns,
		PrimaryKey: []*schema.Column{llmRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequest_purpose",
				Unique:  false,
				Columns: []*schema.Column{llmRequestsColumns[4]},
			},
		},
	}

	// tables holds every table the store migrates.
	tables = []*schema.Table{
		settingsTable,
		gameRecordsTable,
		llmRequestsTable,
	}
)
