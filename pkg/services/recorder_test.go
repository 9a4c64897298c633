package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/codeready-toolchain/cardsmith/ent/orchestratorlog"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
	testdb "github.com/codeready-toolchain/cardsmith/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrchestratorRecorder_RecordAction(t *testing.T) {
	client := testdb.NewTestClient(t)
	recorder := NewOrchestratorRecorder(client.Client)
	ctx := context.Background()

	t.Run("records a full action", func(t *testing.T) {
		action, err := recorder.RecordAction(ctx, models.ActionRecord{
			Decision: "execute_cards_parallel",
			GoalID:   "goal-1",
			CardIDs:  []string{"card-a", "card-b"},
			Reason:   "2 cards ready with no unmet dependencies",
			Context:  map[string]interface{}{"readyCount": 2},
			Success:  true,
			Learning: "Parallel execution: 2/2 cards completed",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, action.ID)
		assert.Equal(t, "execute_cards_parallel", action.Decision)
		require.NotNil(t, action.GoalID)
		assert.Equal(t, "goal-1", *action.GoalID)
		assert.Equal(t, []string{"card-a", "card-b"}, action.CardIds)
		assert.True(t, action.Success)
		require.NotNil(t, action.Learning)
		assert.Contains(t, *action.Learning, "2/2")
		assert.Nil(t, action.Error)
	})

	t.Run("records a failed action", func(t *testing.T) {
		action, err := recorder.RecordAction(ctx, models.ActionRecord{
			Decision: "create_fix",
			Reason:   "test stage failed on card-c",
			Success:  false,
			Error:    "parent card not found",
		})
		require.NoError(t, err)

		assert.False(t, action.Success)
		require.NotNil(t, action.Error)
		assert.Equal(t, "parent card not found", *action.Error)
		assert.Nil(t, action.GoalID)
		assert.Empty(t, action.CardIds)
	})
}

func TestOrchestratorRecorder_RecentActions(t *testing.T) {
	client := testdb.NewTestClient(t)
	recorder := NewOrchestratorRecorder(client.Client)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := recorder.RecordAction(ctx, models.ActionRecord{
			Decision: "wait",
			Reason:   fmt.Sprintf("tick %d", i),
			Success:  true,
		})
		require.NoError(t, err)
	}

	t.Run("default limit is 20", func(t *testing.T) {
		actions, err := recorder.RecentActions(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, actions, 20)
	})

	t.Run("newest first", func(t *testing.T) {
		actions, err := recorder.RecentActions(ctx, 5)
		require.NoError(t, err)
		require.Len(t, actions, 5)
		assert.Equal(t, "tick 24", actions[0].Reason)
	})
}

func TestOrchestratorRecorder_Log(t *testing.T) {
	client := testdb.NewTestClient(t)
	recorder := NewOrchestratorRecorder(client.Client)
	ctx := context.Background()

	err := recorder.Log(ctx, orchestratorlog.LevelWarning, "usage budget at 90%",
		map[string]interface{}{"sessionPercent": 90}, "goal-1")
	require.NoError(t, err)

	logs, err := client.OrchestratorLog.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	assert.Equal(t, orchestratorlog.LevelWarning, logs[0].Level)
	assert.Equal(t, "usage budget at 90%", logs[0].Message)
	require.NotNil(t, logs[0].GoalID)
	assert.Equal(t, "goal-1", *logs[0].GoalID)
	assert.Equal(t, float64(90), logs[0].Context["sessionPercent"])
}
