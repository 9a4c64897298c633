package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entgoal "github.com/codeready-toolchain/cardsmith/ent/goal"
	"github.com/codeready-toolchain/cardsmith/pkg/orchestrator"
)

// With the usage budget exhausted the loop waits: no decomposition, no
// executions, and the refusal is recorded with its reason.
func TestExhaustedBudgetBlocksAllWork(t *testing.T) {
	probe := `echo '{"sessionUsedPercent": 98.5, "dailyUsedPercent": 62.0}'`
	h := newHarness(t, harnessConfig{probeCommand: probe})
	h.decomposer.cards = []orchestrator.DecomposedCard{
		{Title: "Starved card", Description: "never scheduled", Order: 1},
	}
	ctx := context.Background()
	goalID := h.submitGoal("Goal behind the gate")

	h.tick()
	h.tick()

	// The goal never activated and no card or execution was created.
	g, err := h.goals.Get(ctx, goalID)
	require.NoError(t, err)
	assert.Equal(t, entgoal.StatusPending, g.Status)
	assert.Zero(t, h.decomposer.calls)

	execCount, err := h.client.Execution.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, execCount)

	cardCount, err := h.client.Card.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, cardCount)

	// Every tick recorded the wait and why.
	actions, err := h.recorder.RecentActions(ctx, 5)
	require.NoError(t, err)
	require.Len(t, actions, 2)
	for _, a := range actions {
		assert.Equal(t, string(orchestrator.DecisionWait), a.Decision)
		assert.Contains(t, a.Reason, "Usage limit exceeded")
	}

	// The API surfaces the saturated budget.
	rec := h.do("GET", "/api/orchestrator/status", "")
	require.Equal(t, 200, rec.Code)
	body := h.decode(rec)
	usage, ok := body["usage"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 98.5, usage["sessionUsedPercent"], 0.01)
	assert.Equal(t, false, usage["isSafe"])
}
