package services

import (
	"context"
	"testing"

	"github.com/codeready-toolchain/cardsmith/ent/goal"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
	testdb "github.com/codeready-toolchain/cardsmith/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewGoalService(client.Client)
	ctx := context.Background()

	t.Run("creates goal with defaults", func(t *testing.T) {
		g, err := service.Create(ctx, models.CreateGoalRequest{
			Description: "Add CSV export to the report module",
		})
		require.NoError(t, err)
		require.NotNil(t, g)

		assert.NotEmpty(t, g.ID)
		assert.Equal(t, "Add CSV export to the report module", g.Description)
		assert.Equal(t, goal.StatusPending, g.Status)
		assert.Equal(t, "api", g.Source)
		assert.Nil(t, g.SourceID)
		assert.NotZero(t, g.CreatedAt)
		assert.Nil(t, g.StartedAt, "started_at should be nil until the goal is activated")
		assert.Zero(t, g.TotalTokens)
		assert.Zero(t, g.TotalCostUsd)
	})

	t.Run("records source and source id", func(t *testing.T) {
		g, err := service.Create(ctx, models.CreateGoalRequest{
			Description: "Fix flaky websocket reconnect",
			Source:      "chat",
			SourceID:    "msg-4711",
		})
		require.NoError(t, err)

		assert.Equal(t, "chat", g.Source)
		require.NotNil(t, g.SourceID)
		assert.Equal(t, "msg-4711", *g.SourceID)
	})

	t.Run("rejects blank description", func(t *testing.T) {
		_, err := service.Create(ctx, models.CreateGoalRequest{Description: "   "})
		require.Error(t, err)

		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "description", validErr.Field)
	})
}

func TestGoalService_Get(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewGoalService(client.Client)
	ctx := context.Background()

	t.Run("returns ErrNotFound for unknown id", func(t *testing.T) {
		_, err := service.Get(ctx, "no-such-goal")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("round-trips a created goal", func(t *testing.T) {
		created, err := service.Create(ctx, models.CreateGoalRequest{Description: "Ship it"})
		require.NoError(t, err)

		got, err := service.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, created.Description, got.Description)
	})
}

func TestGoalService_UpdateStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewGoalService(client.Client)
	ctx := context.Background()

	t.Run("activation stamps started_at once", func(t *testing.T) {
		g, err := service.Create(ctx, models.CreateGoalRequest{Description: "Migrate config loader"})
		require.NoError(t, err)

		err = service.UpdateStatus(ctx, g.ID, goal.StatusActive)
		require.NoError(t, err)

		active, err := service.Get(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, goal.StatusActive, active.Status)
		require.NotNil(t, active.StartedAt)
		firstStart := *active.StartedAt

		// Re-activation must not move the stamp
		err = service.UpdateStatus(ctx, g.ID, goal.StatusActive)
		require.NoError(t, err)

		again, err := service.Get(ctx, g.ID)
		require.NoError(t, err)
		require.NotNil(t, again.StartedAt)
		assert.Equal(t, firstStart.UnixNano(), again.StartedAt.UnixNano())

		// Completion stamps completed_at
		err = service.UpdateStatus(ctx, g.ID, goal.StatusCompleted)
		require.NoError(t, err)

		done, err := service.Get(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, goal.StatusCompleted, done.Status)
		assert.NotNil(t, done.CompletedAt)
	})

	t.Run("terminal goals reject further changes", func(t *testing.T) {
		g, err := service.Create(ctx, models.CreateGoalRequest{Description: "Short-lived"})
		require.NoError(t, err)

		require.NoError(t, service.UpdateStatus(ctx, g.ID, goal.StatusFailed))

		err = service.UpdateStatus(ctx, g.ID, goal.StatusActive)
		assert.ErrorIs(t, err, ErrGoalTerminal)
	})

	t.Run("unknown goal returns ErrNotFound", func(t *testing.T) {
		err := service.UpdateStatus(ctx, "missing", goal.StatusActive)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGoalService_ActiveGoal(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewGoalService(client.Client)
	ctx := context.Background()

	t.Run("no active goal returns ErrNotFound", func(t *testing.T) {
		_, err := service.ActiveGoal(ctx)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returns the active goal", func(t *testing.T) {
		g, err := service.Create(ctx, models.CreateGoalRequest{Description: "Active one"})
		require.NoError(t, err)
		require.NoError(t, service.UpdateStatus(ctx, g.ID, goal.StatusActive))

		active, err := service.ActiveGoal(ctx)
		require.NoError(t, err)
		assert.Equal(t, g.ID, active.ID)
	})
}

func TestGoalService_PendingGoals(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewGoalService(client.Client)
	ctx := context.Background()

	first, err := service.Create(ctx, models.CreateGoalRequest{Description: "first"})
	require.NoError(t, err)
	second, err := service.Create(ctx, models.CreateGoalRequest{Description: "second"})
	require.NoError(t, err)

	// Activate one; only pending goals should remain in the queue
	require.NoError(t, service.UpdateStatus(ctx, first.ID, goal.StatusActive))

	pending, err := service.PendingGoals(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
}

func TestGoalService_AddCard(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewGoalService(client.Client)
	ctx := context.Background()

	g, err := service.Create(ctx, models.CreateGoalRequest{Description: "With cards"})
	require.NoError(t, err)

	require.NoError(t, service.AddCard(ctx, g.ID, "card-a"))
	require.NoError(t, service.AddCard(ctx, g.ID, "card-b"))
	// Duplicate append is a no-op
	require.NoError(t, service.AddCard(ctx, g.ID, "card-a"))

	got, err := service.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"card-a", "card-b"}, got.CardIds)
}

func TestGoalService_AddUsage(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewGoalService(client.Client)
	ctx := context.Background()

	g, err := service.Create(ctx, models.CreateGoalRequest{Description: "Budget tracking"})
	require.NoError(t, err)

	require.NoError(t, service.AddUsage(ctx, g.ID, 1200, 0.35))
	require.NoError(t, service.AddUsage(ctx, g.ID, 800, 0.15))

	got, err := service.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 2000, got.TotalTokens)
	assert.InDelta(t, 0.5, got.TotalCostUsd, 1e-9)
}

func TestGoalService_SetLearningAndError(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewGoalService(client.Client)
	ctx := context.Background()

	g, err := service.Create(ctx, models.CreateGoalRequest{Description: "Learn from this"})
	require.NoError(t, err)

	require.NoError(t, service.SetLearning(ctx, g.ID, "point-42", "Splitting parser and printer avoided merge conflicts"))
	require.NoError(t, service.SetError(ctx, g.ID, "decomposition produced a dependency cycle"))

	got, err := service.Get(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LearningID)
	assert.Equal(t, "point-42", *got.LearningID)
	require.NotNil(t, got.LearningText)
	assert.Contains(t, *got.LearningText, "merge conflicts")
	require.NotNil(t, got.Error)
	assert.Contains(t, *got.Error, "dependency cycle")
}
