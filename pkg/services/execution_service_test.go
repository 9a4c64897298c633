package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/codeready-toolchain/cardsmith/ent"
	"github.com/codeready-toolchain/cardsmith/ent/execution"
	"github.com/codeready-toolchain/cardsmith/ent/executionlog"
	"github.com/codeready-toolchain/cardsmith/pkg/masking"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
	testdb "github.com/codeready-toolchain/cardsmith/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupExecutionTest(t *testing.T) (*ExecutionService, *CardService, *ent.Card) {
	t.Helper()

	client := testdb.NewTestClient(t)
	cardSvc := NewCardService(client.Client)
	execSvc := NewExecutionService(client.Client, masking.NewMasker())

	c, err := cardSvc.Create(context.Background(), models.CreateCardRequest{Title: "Card under execution"})
	require.NoError(t, err)

	return execSvc, cardSvc, c
}

func TestExecutionService_Create(t *testing.T) {
	execSvc, _, c := setupExecutionTest(t)
	ctx := context.Background()

	t.Run("creates running active execution", func(t *testing.T) {
		exec, err := execSvc.Create(ctx, c.ID, models.CommandPlan, models.StagePlanning, "opus-4.5", "plan the card")
		require.NoError(t, err)

		assert.NotEmpty(t, exec.ID)
		assert.Equal(t, c.ID, exec.CardID)
		assert.Equal(t, string(models.CommandPlan), exec.Command)
		assert.Equal(t, execution.WorkflowStagePlanning, exec.WorkflowStage)
		assert.Equal(t, execution.StatusRunning, exec.Status)
		assert.True(t, exec.IsActive)
		assert.Equal(t, "opus-4.5", exec.Model)
		assert.NotZero(t, exec.StartedAt)
		assert.Nil(t, exec.CompletedAt)
	})

	t.Run("deactivates the previous execution", func(t *testing.T) {
		first, err := execSvc.ActiveExecution(ctx, c.ID)
		require.NoError(t, err)

		second, err := execSvc.Create(ctx, c.ID, models.CommandImplement, models.StageImplementing, "opus-4.5", "build")
		require.NoError(t, err)

		active, err := execSvc.ActiveExecution(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, second.ID, active.ID)

		// The old execution still exists but is inactive
		old, err := execSvc.client.Execution.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.False(t, old.IsActive)
	})

	t.Run("unknown card returns ErrNotFound", func(t *testing.T) {
		_, err := execSvc.Create(ctx, "missing", models.CommandPlan, models.StagePlanning, "opus-4.5", "p")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("blank card id is a validation error", func(t *testing.T) {
		_, err := execSvc.Create(ctx, "", models.CommandPlan, models.StagePlanning, "opus-4.5", "p")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestExecutionService_AppendLog(t *testing.T) {
	execSvc, _, c := setupExecutionTest(t)
	ctx := context.Background()

	exec, err := execSvc.Create(ctx, c.ID, models.CommandImplement, models.StageImplementing, "opus-4.5", "build")
	require.NoError(t, err)

	t.Run("assigns gap-free sequences", func(t *testing.T) {
		for i := 1; i <= 5; i++ {
			log, err := execSvc.AppendLog(ctx, exec.ID, executionlog.LogTypeText, fmt.Sprintf("chunk %d", i))
			require.NoError(t, err)
			assert.Equal(t, i, log.Sequence)
		}

		logs, err := execSvc.Logs(ctx, exec.ID)
		require.NoError(t, err)
		require.Len(t, logs, 5)
		for i, log := range logs {
			assert.Equal(t, i+1, log.Sequence)
		}
	})

	t.Run("masks secrets before persistence", func(t *testing.T) {
		log, err := execSvc.AppendLog(ctx, exec.ID, executionlog.LogTypeTool,
			`export API_KEY="sk-FAKE1234567890abcdefFAKE"`)
		require.NoError(t, err)

		assert.NotContains(t, log.Content, "sk-FAKE1234567890abcdefFAKE")
		assert.Contains(t, log.Content, "__MASKED_API_KEY__")

		stored, err := execSvc.client.ExecutionLog.Get(ctx, log.ID)
		require.NoError(t, err)
		assert.NotContains(t, stored.Content, "sk-FAKE1234567890abcdefFAKE")
	})

	t.Run("unknown execution returns ErrNotFound", func(t *testing.T) {
		_, err := execSvc.AppendLog(ctx, "missing", executionlog.LogTypeInfo, "hello")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestExecutionService_CompleteAndFail(t *testing.T) {
	execSvc, _, c := setupExecutionTest(t)
	ctx := context.Background()

	t.Run("complete stamps usage and result", func(t *testing.T) {
		exec, err := execSvc.Create(ctx, c.ID, models.CommandPlan, models.StagePlanning, "opus-4.5", "plan")
		require.NoError(t, err)

		err = execSvc.Complete(ctx, exec.ID, "plan written to specs/card.md", models.Usage{
			InputTokens:  1000,
			OutputTokens: 500,
			TotalTokens:  1500,
			CostUSD:      0.12,
		})
		require.NoError(t, err)

		done, err := execSvc.client.Execution.Get(ctx, exec.ID)
		require.NoError(t, err)
		assert.Equal(t, execution.StatusSuccess, done.Status)
		require.NotNil(t, done.Result)
		assert.Contains(t, *done.Result, "specs/card.md")
		assert.Equal(t, 1000, done.InputTokens)
		assert.Equal(t, 500, done.OutputTokens)
		assert.Equal(t, 1500, done.TotalTokens)
		assert.InDelta(t, 0.12, done.CostUsd, 1e-9)
		assert.NotNil(t, done.CompletedAt)
	})

	t.Run("fail records the workflow error", func(t *testing.T) {
		exec, err := execSvc.Create(ctx, c.ID, models.CommandTest, models.StageTesting, "opus-4.5", "test")
		require.NoError(t, err)

		err = execSvc.Fail(ctx, exec.ID, "TEST FAILED: 2 of 14 cases")
		require.NoError(t, err)

		failed, err := execSvc.client.Execution.Get(ctx, exec.ID)
		require.NoError(t, err)
		assert.Equal(t, execution.StatusError, failed.Status)
		require.NotNil(t, failed.WorkflowError)
		assert.Contains(t, *failed.WorkflowError, "TEST FAILED")
		assert.NotNil(t, failed.CompletedAt)
	})

	t.Run("unknown execution returns ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, execSvc.Complete(ctx, "missing", "r", models.Usage{}), ErrNotFound)
		assert.ErrorIs(t, execSvc.Fail(ctx, "missing", "e"), ErrNotFound)
	})
}

func TestExecutionService_LatestExecution(t *testing.T) {
	execSvc, _, c := setupExecutionTest(t)
	ctx := context.Background()

	planExec, err := execSvc.Create(ctx, c.ID, models.CommandPlan, models.StagePlanning, "opus-4.5", "plan")
	require.NoError(t, err)
	require.NoError(t, execSvc.Complete(ctx, planExec.ID, "ok", models.Usage{}))

	testExec, err := execSvc.Create(ctx, c.ID, models.CommandTest, models.StageTesting, "opus-4.5", "test")
	require.NoError(t, err)

	t.Run("filters by command", func(t *testing.T) {
		latest, err := execSvc.LatestExecution(ctx, c.ID, models.CommandPlan)
		require.NoError(t, err)
		assert.Equal(t, planExec.ID, latest.ID)
	})

	t.Run("empty command matches any", func(t *testing.T) {
		latest, err := execSvc.LatestExecution(ctx, c.ID, "")
		require.NoError(t, err)
		assert.Equal(t, testExec.ID, latest.ID)
	})

	t.Run("no match returns ErrNotFound", func(t *testing.T) {
		_, err := execSvc.LatestExecution(ctx, c.ID, models.CommandReview)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestExecutionService_History(t *testing.T) {
	execSvc, _, c := setupExecutionTest(t)
	ctx := context.Background()

	first, err := execSvc.Create(ctx, c.ID, models.CommandPlan, models.StagePlanning, "opus-4.5", "plan")
	require.NoError(t, err)
	_, err = execSvc.AppendLog(ctx, first.ID, executionlog.LogTypeText, "thinking")
	require.NoError(t, err)
	_, err = execSvc.AppendLog(ctx, first.ID, executionlog.LogTypeResult, "planned")
	require.NoError(t, err)
	require.NoError(t, execSvc.Complete(ctx, first.ID, "planned", models.Usage{}))

	second, err := execSvc.Create(ctx, c.ID, models.CommandImplement, models.StageImplementing, "opus-4.5", "build")
	require.NoError(t, err)

	history, err := execSvc.History(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Newest first, each with its ordered logs
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
	require.Len(t, history[1].Edges.Logs, 2)
	assert.Equal(t, 1, history[1].Edges.Logs[0].Sequence)
	assert.Equal(t, executionlog.LogTypeResult, history[1].Edges.Logs[1].LogType)
}
