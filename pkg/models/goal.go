package models

import (
	"time"

	"github.com/codeready-toolchain/cardsmith/ent"
)

// CreateGoalRequest contains fields for submitting a new goal.
type CreateGoalRequest struct {
	Description string `json:"description"`
	Source      string `json:"source,omitempty"`
	SourceID    string `json:"sourceId,omitempty"`
}

// GoalResponse is the camelCase wire shape of a goal.
type GoalResponse struct {
	ID           string     `json:"id"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	Source       string     `json:"source"`
	SourceID     *string    `json:"sourceId,omitempty"`
	CardIDs      []string   `json:"cardIds"`
	LearningText *string    `json:"learningText,omitempty"`
	LearningID   *string    `json:"learningId,omitempty"`
	TotalTokens  int        `json:"totalTokens"`
	TotalCostUSD float64    `json:"totalCostUsd"`
	Error        *string    `json:"error,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	StartedAt    *time.Time `json:"startedAt,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// NewGoalResponse maps an ent goal to its wire shape.
func NewGoalResponse(g *ent.Goal) *GoalResponse {
	return &GoalResponse{
		ID:           g.ID,
		Description:  g.Description,
		Status:       string(g.Status),
		Source:       g.Source,
		SourceID:     g.SourceID,
		CardIDs:      emptyIfNil(g.CardIds),
		LearningText: g.LearningText,
		LearningID:   g.LearningID,
		TotalTokens:  g.TotalTokens,
		TotalCostUSD: g.TotalCostUsd,
		Error:        g.Error,
		CreatedAt:    g.CreatedAt,
		StartedAt:    g.StartedAt,
		CompletedAt:  g.CompletedAt,
	}
}

// GoalListResponse contains a goal listing.
type GoalListResponse struct {
	Goals      []*GoalResponse `json:"goals"`
	TotalCount int             `json:"totalCount"`
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
