package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/cardsmith/ent"
	"github.com/codeready-toolchain/cardsmith/ent/orchestratoraction"
	"github.com/codeready-toolchain/cardsmith/ent/orchestratorlog"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// OrchestratorRecorder persists the loop's durable per-tick trace
type OrchestratorRecorder struct {
	client *ent.Client
}

// NewOrchestratorRecorder creates a new OrchestratorRecorder
func NewOrchestratorRecorder(client *ent.Client) *OrchestratorRecorder {
	return &OrchestratorRecorder{client: client}
}

// RecordAction persists one tick's decision and outcome
func (s *OrchestratorRecorder) RecordAction(httpCtx context.Context, rec models.ActionRecord) (*ent.OrchestratorAction, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.OrchestratorAction.Create().
		SetID(uuid.New().String()).
		SetDecision(rec.Decision).
		SetReason(rec.Reason).
		SetSuccess(rec.Success).
		SetCreatedAt(time.Now())

	if rec.GoalID != "" {
		builder.SetGoalID(rec.GoalID)
	}
	if len(rec.CardIDs) > 0 {
		builder.SetCardIds(rec.CardIDs)
	}
	if rec.Context != nil {
		builder.SetContext(rec.Context)
	}
	if rec.Error != "" {
		builder.SetError(rec.Error)
	}
	if rec.Learning != "" {
		builder.SetLearning(rec.Learning)
	}

	action, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record orchestrator action: %w", err)
	}

	return action, nil
}

// Log persists a notable loop event
func (s *OrchestratorRecorder) Log(httpCtx context.Context, level orchestratorlog.Level, message string, contextMap map[string]interface{}, goalID string) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.OrchestratorLog.Create().
		SetLevel(level).
		SetMessage(message).
		SetCreatedAt(time.Now())

	if contextMap != nil {
		builder.SetContext(contextMap)
	}
	if goalID != "" {
		builder.SetGoalID(goalID)
	}

	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record orchestrator log: %w", err)
	}

	return nil
}

// RecentActions returns the newest tick decisions for the status endpoint
func (s *OrchestratorRecorder) RecentActions(ctx context.Context, limit int) ([]*ent.OrchestratorAction, error) {
	if limit <= 0 {
		limit = 20
	}

	actions, err := s.client.OrchestratorAction.Query().
		Order(ent.Desc(orchestratoraction.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orchestrator actions: %w", err)
	}

	return actions, nil
}
