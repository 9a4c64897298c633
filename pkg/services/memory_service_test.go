package services

import (
	"context"
	"testing"
	"time"

	"github.com/codeready-toolchain/cardsmith/ent/goal"
	"github.com/codeready-toolchain/cardsmith/ent/memoryentry"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
	testdb "github.com/codeready-toolchain/cardsmith/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryService_Record(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMemoryService(client.Client, time.Hour)
	ctx := context.Background()

	t.Run("records entry with context and goal", func(t *testing.T) {
		entry, err := service.Record(ctx, memoryentry.EntryTypeDecision,
			"execute_cards: dispatched 2 cards",
			map[string]interface{}{"cardCount": 2},
			"goal-1")
		require.NoError(t, err)

		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, memoryentry.EntryTypeDecision, entry.EntryType)
		assert.Equal(t, "execute_cards: dispatched 2 cards", entry.Content)
		require.NotNil(t, entry.GoalID)
		assert.Equal(t, "goal-1", *entry.GoalID)
		assert.True(t, entry.ExpiresAt.After(entry.CreatedAt))

		stored, err := client.MemoryEntry.Get(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, float64(2), stored.Context["cardCount"])
	})

	t.Run("context and goal are optional", func(t *testing.T) {
		entry, err := service.Record(ctx, memoryentry.EntryTypeObservation, "nothing to do", nil, "")
		require.NoError(t, err)

		assert.Nil(t, entry.GoalID)
	})
}

func TestMemoryService_Recent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMemoryService(client.Client, time.Hour)
	ctx := context.Background()

	_, err := service.Record(ctx, memoryentry.EntryTypeAct, "moved card a", nil, "goal-1")
	require.NoError(t, err)
	_, err = service.Record(ctx, memoryentry.EntryTypeError, "worktree create failed", nil, "goal-1")
	require.NoError(t, err)
	_, err = service.Record(ctx, memoryentry.EntryTypeAct, "moved card b", nil, "goal-2")
	require.NoError(t, err)

	t.Run("newest first", func(t *testing.T) {
		entries, err := service.Recent(ctx, 10, nil, "")
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "moved card b", entries[0].Content)
	})

	t.Run("filters by type", func(t *testing.T) {
		entries, err := service.Recent(ctx, 10, []memoryentry.EntryType{memoryentry.EntryTypeError}, "")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].Content, "worktree")
	})

	t.Run("filters by goal", func(t *testing.T) {
		entries, err := service.Recent(ctx, 10, nil, "goal-2")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "moved card b", entries[0].Content)
	})

	t.Run("respects limit", func(t *testing.T) {
		entries, err := service.Recent(ctx, 2, nil, "")
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}

func TestMemoryService_Expiry(t *testing.T) {
	client := testdb.NewTestClient(t)
	// Retention in the past: every entry is born expired
	service := NewMemoryService(client.Client, -time.Minute)
	ctx := context.Background()

	_, err := service.Record(ctx, memoryentry.EntryTypeAct, "already stale", nil, "")
	require.NoError(t, err)

	t.Run("expired entries are invisible to Recent", func(t *testing.T) {
		entries, err := service.Recent(ctx, 10, nil, "")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("CleanupExpired deletes them", func(t *testing.T) {
		deleted, err := service.CleanupExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, deleted)

		// Second pass finds nothing
		deleted, err = service.CleanupExpired(ctx)
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})
}

func TestMemoryService_ContextSummary(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMemoryService(client.Client, time.Hour)
	goalSvc := NewGoalService(client.Client)
	ctx := context.Background()

	t.Run("empty system", func(t *testing.T) {
		summary, err := service.ContextSummary(ctx)
		require.NoError(t, err)

		assert.Nil(t, summary.ActiveGoal)
		assert.Zero(t, summary.PendingGoals)
		assert.Empty(t, summary.RecentSteps)
	})

	t.Run("active goal and recent steps", func(t *testing.T) {
		g, err := goalSvc.Create(ctx, models.CreateGoalRequest{Description: "Build the exporter"})
		require.NoError(t, err)
		require.NoError(t, goalSvc.UpdateStatus(ctx, g.ID, goal.StatusActive))
		require.NoError(t, goalSvc.AddCard(ctx, g.ID, "card-1"))
		require.NoError(t, goalSvc.AddCard(ctx, g.ID, "card-2"))

		_, err = goalSvc.Create(ctx, models.CreateGoalRequest{Description: "Queued goal"})
		require.NoError(t, err)

		_, err = service.Record(ctx, memoryentry.EntryTypeDecision, "start_goal: Build the exporter", nil, g.ID)
		require.NoError(t, err)

		summary, err := service.ContextSummary(ctx)
		require.NoError(t, err)

		require.NotNil(t, summary.ActiveGoal)
		assert.Equal(t, g.ID, summary.ActiveGoal.ID)
		assert.Equal(t, "Build the exporter", summary.ActiveGoal.Description)
		assert.Equal(t, 2, summary.ActiveGoal.CardCount)
		assert.Equal(t, 1, summary.PendingGoals)
		require.Len(t, summary.RecentSteps, 1)
		assert.Equal(t, "decision", summary.RecentSteps[0].EntryType)
		assert.Contains(t, summary.RecentSteps[0].Content, "start_goal")
	})
}
