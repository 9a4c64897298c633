package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/cardsmith/ent"
	"github.com/codeready-toolchain/cardsmith/ent/goal"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// GoalService manages goal lifecycle
type GoalService struct {
	client *ent.Client
}

// NewGoalService creates a new GoalService
func NewGoalService(client *ent.Client) *GoalService {
	return &GoalService{client: client}
}

// Create creates a new goal in pending status
func (s *GoalService) Create(httpCtx context.Context, req models.CreateGoalRequest) (*ent.Goal, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, NewValidationError("description", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	source := req.Source
	if source == "" {
		source = "api"
	}

	builder := s.client.Goal.Create().
		SetID(uuid.New().String()).
		SetDescription(req.Description).
		SetStatus(goal.StatusPending).
		SetSource(source)

	if req.SourceID != "" {
		builder.SetSourceID(req.SourceID)
	}

	g, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return g, nil
}

// Get retrieves a goal by ID
func (s *GoalService) Get(ctx context.Context, goalID string) (*ent.Goal, error) {
	g, err := s.client.Goal.Query().
		Where(goal.IDEQ(goalID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return g, nil
}

// List returns all goals, newest first
func (s *GoalService) List(ctx context.Context) ([]*ent.Goal, error) {
	goals, err := s.client.Goal.Query().
		Order(ent.Desc(goal.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// ListByStatus returns goals in a status, newest first
func (s *GoalService) ListByStatus(ctx context.Context, status goal.Status) ([]*ent.Goal, error) {
	goals, err := s.client.Goal.Query().
		Where(goal.StatusEQ(status)).
		Order(ent.Desc(goal.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals by status: %w", err)
	}
	return goals, nil
}

// ActiveGoal returns the single active goal (most recently started), or
// ErrNotFound when no goal is active
func (s *GoalService) ActiveGoal(ctx context.Context) (*ent.Goal, error) {
	g, err := s.client.Goal.Query().
		Where(goal.StatusEQ(goal.StatusActive)).
		Order(ent.Desc(goal.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active goal: %w", err)
	}
	return g, nil
}

// PendingGoals returns pending goals, oldest first
func (s *GoalService) PendingGoals(ctx context.Context) ([]*ent.Goal, error) {
	goals, err := s.client.Goal.Query().
		Where(goal.StatusEQ(goal.StatusPending)).
		Order(ent.Asc(goal.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending goals: %w", err)
	}
	return goals, nil
}

// UpdateStatus updates a goal's status. It stamps started_at on the first
// promotion to active and completed_at on entering completed or failed.
// Terminal goals reject any further change with ErrGoalTerminal.
func (s *GoalService) UpdateStatus(httpCtx context.Context, goalID string, status goal.Status) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	g, err := tx.Goal.Query().
		Where(goal.IDEQ(goalID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get goal: %w", err)
	}

	if g.Status == goal.StatusCompleted || g.Status == goal.StatusFailed {
		return ErrGoalTerminal
	}

	update := tx.Goal.UpdateOneID(goalID).SetStatus(status)
	if status == goal.StatusActive && g.StartedAt == nil {
		update = update.SetStartedAt(time.Now())
	}
	if status == goal.StatusCompleted || status == goal.StatusFailed {
		update = update.SetCompletedAt(time.Now())
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update goal status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// AddCard appends a card id to the goal's ordered card list if absent
func (s *GoalService) AddCard(httpCtx context.Context, goalID, cardID string) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	g, err := tx.Goal.Query().
		Where(goal.IDEQ(goalID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get goal: %w", err)
	}

	for _, id := range g.CardIds {
		if id == cardID {
			return tx.Commit()
		}
	}

	err = tx.Goal.UpdateOneID(goalID).
		SetCardIds(append(g.CardIds, cardID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add card to goal: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// AddUsage accumulates token and cost totals onto the goal
func (s *GoalService) AddUsage(httpCtx context.Context, goalID string, tokens int, costUSD float64) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Goal.UpdateOneID(goalID).
		AddTotalTokens(tokens).
		AddTotalCostUsd(costUSD).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to add goal usage: %w", err)
	}

	return nil
}

// SetLearning records the vector-store point id and human-readable learning
// produced at completion
func (s *GoalService) SetLearning(httpCtx context.Context, goalID, learningID, learningText string) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Goal.UpdateOneID(goalID).
		SetLearningID(learningID).
		SetLearningText(learningText).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set goal learning: %w", err)
	}

	return nil
}

// SetError records a failure message on the goal
func (s *GoalService) SetError(httpCtx context.Context, goalID, msg string) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Goal.UpdateOneID(goalID).
		SetError(msg).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set goal error: %w", err)
	}

	return nil
}
