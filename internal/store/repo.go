package store

import (
	"context"
	"time"

	"github.com/abhisek/mathworld/internal/llm"
	"github.com/abhisek/mathworld/internal/problemgen"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // exact match when set
}

// LLMEvent is one logged LLM call.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates LLM calls by purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM calls by model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo records LLM calls and answers the inspection queries.
type EventRepo interface {
	llm.RequestLog

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns the event with id, or nil if there is none.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// OperationStats aggregates completed quizzes for one operation.
type OperationStats struct {
	Operation  problemgen.Operation
	Games      int
	BestScore  int
	TotalScore int
	Correct    int
	Questions  int
}

// Accuracy is the share of questions answered correctly, in [0,1].
func (o OperationStats) Accuracy() float64 {
	if o.Questions == 0 {
		return 0
	}
	return float64(o.Correct) / float64(o.Questions)
}
