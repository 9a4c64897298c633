package services

import (
	"context"
	"testing"
	"time"

	"github.com/codeready-toolchain/cardsmith/ent/executionlog"
	"github.com/codeready-toolchain/cardsmith/ent/goal"
	"github.com/codeready-toolchain/cardsmith/ent/memoryentry"
	"github.com/codeready-toolchain/cardsmith/pkg/masking"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
	testdb "github.com/codeready-toolchain/cardsmith/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServiceIntegration tests multiple services working together
func TestServiceIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Initialize all services
	goalService := NewGoalService(client.Client)
	cardService := NewCardService(client.Client)
	executionService := NewExecutionService(client.Client, masking.NewMasker())
	memoryService := NewMemoryService(client.Client, time.Hour)
	recorder := NewOrchestratorRecorder(client.Client)
	eventService := NewEventService(client.Client)

	t.Run("full goal lifecycle", func(t *testing.T) {
		// 1. Submit a goal and activate it
		g, err := goalService.Create(ctx, models.CreateGoalRequest{
			Description: "Add health endpoint to the gateway",
		})
		require.NoError(t, err)
		require.NoError(t, goalService.UpdateStatus(ctx, g.ID, goal.StatusActive))

		// 2. Decompose into two dependent cards
		first, err := cardService.Create(ctx, models.CreateCardRequest{
			Title:  "Implement /healthz handler",
			GoalID: g.ID,
		})
		require.NoError(t, err)
		second, err := cardService.Create(ctx, models.CreateCardRequest{
			Title:        "Wire handler into router",
			GoalID:       g.ID,
			Dependencies: []string{first.ID},
		})
		require.NoError(t, err)

		require.NoError(t, goalService.AddCard(ctx, g.ID, first.ID))
		require.NoError(t, goalService.AddCard(ctx, g.ID, second.ID))

		// 3. Drive the first card into plan and start an execution
		_, _, err = cardService.Move(ctx, first.ID, models.ColumnPlan)
		require.NoError(t, err)

		exec, err := executionService.Create(ctx, first.ID, models.CommandPlan, models.StagePlanning, "opus-4.5", "Plan the /healthz handler")
		require.NoError(t, err)

		// 4. Stream some agent output, including a secret that must be masked
		_, err = executionService.AppendLog(ctx, exec.ID, executionlog.LogTypeText, "Reading router setup")
		require.NoError(t, err)
		maskedLog, err := executionService.AppendLog(ctx, exec.ID, executionlog.LogTypeTool,
			`found config: password: "hunter2-prod-secret"`)
		require.NoError(t, err)
		assert.NotContains(t, maskedLog.Content, "hunter2-prod-secret")

		// 5. Complete the execution and roll usage up into the goal
		usage := models.Usage{InputTokens: 900, OutputTokens: 300, TotalTokens: 1200, CostUSD: 0.09}
		require.NoError(t, executionService.Complete(ctx, exec.ID, "Plan written to specs/healthz.md", usage))
		require.NoError(t, cardService.SetSpecPath(ctx, first.ID, "specs/healthz.md"))
		require.NoError(t, goalService.AddUsage(ctx, g.ID, usage.TotalTokens, usage.CostUSD))

		// 6. Record the tick in the orchestrator trace and short-term memory
		_, err = recorder.RecordAction(ctx, models.ActionRecord{
			Decision: "execute_card",
			GoalID:   g.ID,
			CardIDs:  []string{first.ID},
			Reason:   "card ready with no unmet dependencies",
			Success:  true,
		})
		require.NoError(t, err)
		_, err = memoryService.Record(ctx, memoryentry.EntryTypeAct, "executed plan stage of "+first.ID, nil, g.ID)
		require.NoError(t, err)

		// 7. A failed test run spawns a fix card
		testExec, err := executionService.Create(ctx, first.ID, models.CommandTest, models.StageTesting, "opus-4.5", "Run tests")
		require.NoError(t, err)
		require.NoError(t, executionService.Fail(ctx, testExec.ID, "--- FAIL: TestHealthz (0.01s)"))

		fix, err := cardService.CreateFixCard(ctx, first.ID, "Tests fail", "--- FAIL: TestHealthz")
		require.NoError(t, err)
		assert.True(t, fix.IsFixCard)

		// 8. The snapshot reflects failure and fix state
		snaps, err := cardService.Snapshot(ctx, g.ID)
		require.NoError(t, err)
		require.Len(t, snaps, 3)
		for _, snap := range snaps {
			if snap.ID == first.ID {
				assert.True(t, snap.TestFailed)
				assert.Equal(t, models.FixStateActive, snap.FixState)
			}
		}

		// 9. The memory summary sees the active goal and recent steps
		summary, err := memoryService.ContextSummary(ctx)
		require.NoError(t, err)
		require.NotNil(t, summary.ActiveGoal)
		assert.Equal(t, g.ID, summary.ActiveGoal.ID)
		assert.Equal(t, 2, summary.ActiveGoal.CardCount)
		assert.NotEmpty(t, summary.RecentSteps)

		// 10. Goal usage accumulated
		updated, err := goalService.Get(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, 1200, updated.TotalTokens)
		assert.InDelta(t, 0.09, updated.TotalCostUsd, 1e-9)

		// 11. Event log TTL cleanup leaves fresh events alone
		_, err = client.Event.Create().
			SetChannel("cards").
			SetPayload(`{"type":"card_created"}`).
			Save(ctx)
		require.NoError(t, err)

		deleted, err := eventService.DeleteOlderThan(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Zero(t, deleted)

		events, err := eventService.ListSince(ctx, "cards", 0, 10)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})
}
