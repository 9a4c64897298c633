package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/cardsmith/ent"
	"github.com/codeready-toolchain/cardsmith/ent/card"
	"github.com/codeready-toolchain/cardsmith/ent/execution"
	"github.com/codeready-toolchain/cardsmith/ent/executionlog"
	"github.com/codeready-toolchain/cardsmith/pkg/masking"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// ExecutionService manages stage executions and their sequenced logs
type ExecutionService struct {
	client *ent.Client
	masker *masking.Masker
}

// NewExecutionService creates a new ExecutionService
func NewExecutionService(client *ent.Client, masker *masking.Masker) *ExecutionService {
	return &ExecutionService{client: client, masker: masker}
}

// Create starts a new execution for a card. Any prior active execution of
// the card is deactivated in the same transaction, preserving the single
// active execution invariant.
func (s *ExecutionService) Create(httpCtx context.Context, cardID string, command models.Command, stage models.Stage, model, prompt string) (*ent.Execution, error) {
	if cardID == "" {
		return nil, NewValidationError("card_id", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := tx.Card.Query().
		Where(card.IDEQ(cardID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check card: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	_, err = tx.Execution.Update().
		Where(
			execution.CardIDEQ(cardID),
			execution.IsActive(true),
		).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate prior executions: %w", err)
	}

	exec, err := tx.Execution.Create().
		SetID(uuid.New().String()).
		SetCardID(cardID).
		SetCommand(string(command)).
		SetWorkflowStage(execution.WorkflowStage(stage)).
		SetStatus(execution.StatusRunning).
		SetIsActive(true).
		SetModel(model).
		SetPrompt(prompt).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return exec, nil
}

// AppendLog appends the next sequence-numbered log entry to an execution.
// Content is masked before persistence. A concurrent append hitting the
// (execution_id, sequence) unique index is retried once, then surfaced as
// ErrConcurrentModification.
func (s *ExecutionService) AppendLog(httpCtx context.Context, executionID string, logType executionlog.LogType, content string) (*ent.ExecutionLog, error) {
	masked := content
	if s.masker != nil {
		masked = s.masker.Mask(content)
	}

	log, err := s.appendLogOnce(executionID, logType, masked)
	if err == nil {
		return log, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, err
	}

	log, err = s.appendLogOnce(executionID, logType, masked)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrConcurrentModification
		}
		return nil, err
	}
	return log, nil
}

func (s *ExecutionService) appendLogOnce(executionID string, logType executionlog.LogType, content string) (*ent.ExecutionLog, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := tx.Execution.Query().
		Where(execution.IDEQ(executionID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check execution: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	sequence := 1
	last, err := tx.ExecutionLog.Query().
		Where(executionlog.ExecutionIDEQ(executionID)).
		Order(ent.Desc(executionlog.FieldSequence)).
		First(ctx)
	if err == nil {
		sequence = last.Sequence + 1
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query last log sequence: %w", err)
	}

	log, err := tx.ExecutionLog.Create().
		SetExecutionID(executionID).
		SetSequence(sequence).
		SetLogType(logType).
		SetContent(content).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return log, nil
}

// Complete closes an execution as success and stamps its usage totals
func (s *ExecutionService) Complete(httpCtx context.Context, executionID, result string, usage models.Usage) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Execution.UpdateOneID(executionID).
		SetStatus(execution.StatusSuccess).
		SetResult(result).
		SetInputTokens(usage.InputTokens).
		SetOutputTokens(usage.OutputTokens).
		SetTotalTokens(usage.TotalTokens).
		SetCostUsd(usage.CostUSD).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete execution: %w", err)
	}

	return nil
}

// Fail closes an execution as error with the workflow error message
func (s *ExecutionService) Fail(httpCtx context.Context, executionID, workflowError string) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Execution.UpdateOneID(executionID).
		SetStatus(execution.StatusError).
		SetWorkflowError(workflowError).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fail execution: %w", err)
	}

	return nil
}

// ActiveExecution returns the card's active execution, or ErrNotFound
func (s *ExecutionService) ActiveExecution(ctx context.Context, cardID string) (*ent.Execution, error) {
	exec, err := s.client.Execution.Query().
		Where(
			execution.CardIDEQ(cardID),
			execution.IsActive(true),
		).
		Order(ent.Desc(execution.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active execution: %w", err)
	}
	return exec, nil
}

// LatestExecution returns the card's newest execution, optionally filtered
// by command (empty command matches any)
func (s *ExecutionService) LatestExecution(ctx context.Context, cardID string, command models.Command) (*ent.Execution, error) {
	query := s.client.Execution.Query().
		Where(execution.CardIDEQ(cardID))
	if command != "" {
		query = query.Where(execution.CommandEQ(string(command)))
	}

	exec, err := query.
		Order(ent.Desc(execution.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest execution: %w", err)
	}
	return exec, nil
}

// History returns every execution of a card with its ordered logs loaded,
// newest execution first
func (s *ExecutionService) History(ctx context.Context, cardID string) ([]*ent.Execution, error) {
	execs, err := s.client.Execution.Query().
		Where(execution.CardIDEQ(cardID)).
		WithLogs(func(q *ent.ExecutionLogQuery) {
			q.Order(ent.Asc(executionlog.FieldSequence))
		}).
		Order(ent.Desc(execution.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get execution history: %w", err)
	}
	return execs, nil
}

// Logs returns an execution's logs in sequence order
func (s *ExecutionService) Logs(ctx context.Context, executionID string) ([]*ent.ExecutionLog, error) {
	logs, err := s.client.ExecutionLog.Query().
		Where(executionlog.ExecutionIDEQ(executionID)).
		Order(ent.Asc(executionlog.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get execution logs: %w", err)
	}
	return logs, nil
}
