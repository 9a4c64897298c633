package models

import (
	"time"

	"github.com/codeready-toolchain/cardsmith/ent"
)

// Usage carries the token/cost totals of one agent run.
type Usage struct {
	InputTokens  int     `json:"inputTokens"`
	OutputTokens int     `json:"outputTokens"`
	TotalTokens  int     `json:"totalTokens"`
	CostUSD      float64 `json:"costUsd"`
}

// ExecutionLogResponse is the camelCase wire shape of one log entry.
type ExecutionLogResponse struct {
	Sequence  int       `json:"sequence"`
	LogType   string    `json:"logType"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewExecutionLogResponse maps an ent log row to its wire shape.
func NewExecutionLogResponse(l *ent.ExecutionLog) *ExecutionLogResponse {
	return &ExecutionLogResponse{
		Sequence:  l.Sequence,
		LogType:   string(l.LogType),
		Content:   l.Content,
		CreatedAt: l.CreatedAt,
	}
}

// ExecutionResponse is the camelCase wire shape of an execution with its
// ordered logs.
type ExecutionResponse struct {
	ExecutionID   string                  `json:"executionId"`
	CardID        string                  `json:"cardId"`
	Command       string                  `json:"command"`
	WorkflowStage string                  `json:"workflowStage"`
	Status        string                  `json:"status"`
	IsActive      bool                    `json:"isActive"`
	Model         string                  `json:"model"`
	Result        *string                 `json:"result,omitempty"`
	WorkflowError *string                 `json:"workflowError,omitempty"`
	InputTokens   int                     `json:"inputTokens"`
	OutputTokens  int                     `json:"outputTokens"`
	TotalTokens   int                     `json:"totalTokens"`
	CostUSD       float64                 `json:"costUsd"`
	StartedAt     time.Time               `json:"startedAt"`
	CompletedAt   *time.Time              `json:"completedAt,omitempty"`
	Logs          []*ExecutionLogResponse `json:"logs"`
}

// NewExecutionResponse maps an ent execution plus its logs to the wire shape.
func NewExecutionResponse(e *ent.Execution, logs []*ent.ExecutionLog) *ExecutionResponse {
	out := &ExecutionResponse{
		ExecutionID:   e.ID,
		CardID:        e.CardID,
		Command:       e.Command,
		WorkflowStage: string(e.WorkflowStage),
		Status:        string(e.Status),
		IsActive:      e.IsActive,
		Model:         e.Model,
		Result:        e.Result,
		WorkflowError: e.WorkflowError,
		InputTokens:   e.InputTokens,
		OutputTokens:  e.OutputTokens,
		TotalTokens:   e.TotalTokens,
		CostUSD:       e.CostUsd,
		StartedAt:     e.StartedAt,
		CompletedAt:   e.CompletedAt,
		Logs:          make([]*ExecutionLogResponse, 0, len(logs)),
	}
	for _, l := range logs {
		out.Logs = append(out.Logs, NewExecutionLogResponse(l))
	}
	return out
}

// ExecutionHistoryResponse contains every execution of a card, newest first.
type ExecutionHistoryResponse struct {
	CardID     string               `json:"cardId"`
	Executions []*ExecutionResponse `json:"executions"`
}
