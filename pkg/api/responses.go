package api

import (
	"time"

	"github.com/codeready-toolchain/cardsmith/pkg/models"
	"github.com/codeready-toolchain/cardsmith/pkg/usage"
)

// ErrorResponse is the error envelope every failed request returns.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ExecuteResponse is returned by the POST /api/execute-* endpoints.
// Logs carries whatever the execution appended, also on failure.
type ExecuteResponse struct {
	Success        bool                           `json:"success"`
	CardID         string                         `json:"cardId"`
	Result         string                         `json:"result,omitempty"`
	Error          string                         `json:"error,omitempty"`
	SpecPath       string                         `json:"specPath,omitempty"`
	FixCardCreated bool                           `json:"fixCardCreated,omitempty"`
	FixCardID      string                         `json:"fixCardId,omitempty"`
	Logs           []*models.ExecutionLogResponse `json:"logs"`
}

// WorkspaceResponse is returned by POST /api/cards/:id/workspace.
type WorkspaceResponse struct {
	Success      bool   `json:"success"`
	CardID       string `json:"cardId"`
	BranchName   string `json:"branchName"`
	WorktreePath string `json:"worktreePath"`
	BaseBranch   string `json:"baseBranch"`
}

// BranchInfo is one agent worktree with the card it belongs to, if any.
type BranchInfo struct {
	Branch       string  `json:"branch"`
	WorktreePath string  `json:"worktreePath"`
	CardID       *string `json:"cardId,omitempty"`
	CardTitle    *string `json:"cardTitle,omitempty"`
	Column       *string `json:"column,omitempty"`
}

// BranchListResponse is returned by GET /api/branches.
type BranchListResponse struct {
	Branches   []BranchInfo `json:"branches"`
	TotalCount int          `json:"totalCount"`
}

// CleanupWorktreesResponse is returned by POST /api/cleanup-orphan-worktrees.
type CleanupWorktreesResponse struct {
	Success bool     `json:"success"`
	Removed []string `json:"removed"`
	Count   int      `json:"count"`
}

// CreateGoalResponse is returned by POST /api/goals.
type CreateGoalResponse struct {
	Success bool                 `json:"success"`
	Goal    *models.GoalResponse `json:"goal"`
}

// GoalDetailResponse is returned by GET /api/goals/:id.
type GoalDetailResponse struct {
	Goal  *models.GoalResponse   `json:"goal"`
	Cards []*models.CardResponse `json:"cards"`
}

// WorktreeStats reports worktree budget occupancy.
type WorktreeStats struct {
	Active int `json:"active"`
	Max    int `json:"max"`
}

// OrchestratorStatusResponse is returned by GET /api/orchestrator/status.
type OrchestratorStatusResponse struct {
	Enabled      bool          `json:"enabled"`
	Running      bool          `json:"running"`
	TickInFlight bool          `json:"tickInFlight"`
	LastTickAt   *time.Time    `json:"lastTickAt,omitempty"`
	LastDecision string        `json:"lastDecision,omitempty"`
	LastReason   string        `json:"lastReason,omitempty"`
	Usage        *usage.Status `json:"usage,omitempty"`
	Worktrees    WorktreeStats `json:"worktrees"`
}

// HealthCheck is one component's health probe result.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}
