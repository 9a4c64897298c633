package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/cardsmith/ent"
	"github.com/codeready-toolchain/cardsmith/ent/goal"
	"github.com/codeready-toolchain/cardsmith/ent/memoryentry"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// recentStepsInSummary caps the step digest the loop READs each tick.
const recentStepsInSummary = 10

// MemoryService manages the orchestrator's TTL-bounded short-term memory
type MemoryService struct {
	client    *ent.Client
	retention time.Duration
}

// NewMemoryService creates a MemoryService with the configured entry TTL
func NewMemoryService(client *ent.Client, retention time.Duration) *MemoryService {
	return &MemoryService{client: client, retention: retention}
}

// Record appends an immutable memory entry expiring after the retention
func (s *MemoryService) Record(httpCtx context.Context, entryType memoryentry.EntryType, content string, contextMap map[string]interface{}, goalID string) (*ent.MemoryEntry, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	builder := s.client.MemoryEntry.Create().
		SetID(uuid.New().String()).
		SetEntryType(entryType).
		SetContent(content).
		SetCreatedAt(now).
		SetExpiresAt(now.Add(s.retention))

	if contextMap != nil {
		builder.SetContext(contextMap)
	}
	if goalID != "" {
		builder.SetGoalID(goalID)
	}

	entry, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record memory entry: %w", err)
	}

	return entry, nil
}

// Recent returns unexpired entries, newest first, optionally filtered by
// entry types and goal
func (s *MemoryService) Recent(ctx context.Context, limit int, types []memoryentry.EntryType, goalID string) ([]*ent.MemoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := s.client.MemoryEntry.Query().
		Where(memoryentry.ExpiresAtGT(time.Now()))
	if len(types) > 0 {
		query = query.Where(memoryentry.EntryTypeIn(types...))
	}
	if goalID != "" {
		query = query.Where(memoryentry.GoalIDEQ(goalID))
	}

	entries, err := query.
		Order(ent.Desc(memoryentry.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memory entries: %w", err)
	}

	return entries, nil
}

// ContextSummary assembles the loop's per-tick view: the active goal, the
// pending backlog depth and the last few recorded steps
func (s *MemoryService) ContextSummary(ctx context.Context) (*models.ContextSummary, error) {
	summary := &models.ContextSummary{}

	active, err := s.client.Goal.Query().
		Where(goal.StatusEQ(goal.StatusActive)).
		Order(ent.Desc(goal.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to query active goal: %w", err)
		}
	} else {
		summary.ActiveGoal = &models.GoalDigest{
			ID:          active.ID,
			Description: active.Description,
			CardCount:   len(active.CardIds),
		}
	}

	pending, err := s.client.Goal.Query().
		Where(goal.StatusEQ(goal.StatusPending)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending goals: %w", err)
	}
	summary.PendingGoals = pending

	steps, err := s.Recent(ctx, recentStepsInSummary, nil, "")
	if err != nil {
		return nil, err
	}
	summary.RecentSteps = make([]models.StepDigest, 0, len(steps))
	for _, e := range steps {
		summary.RecentSteps = append(summary.RecentSteps, models.StepDigest{
			EntryType: string(e.EntryType),
			Content:   e.Content,
			CreatedAt: e.CreatedAt,
		})
	}

	return summary, nil
}

// CleanupExpired removes entries past their TTL and returns the count
func (s *MemoryService) CleanupExpired(httpCtx context.Context) (int, error) {
	// Use background context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.MemoryEntry.Delete().
		Where(memoryentry.ExpiresAtLT(time.Now())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired memory entries: %w", err)
	}

	return count, nil
}
