package e2e

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entgoal "github.com/codeready-toolchain/cardsmith/ent/goal"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
	"github.com/codeready-toolchain/cardsmith/pkg/orchestrator"
)

// A goal submitted over HTTP is decomposed, its cards traverse the full
// board, and the completed goal carries exactly one stored learning.
func TestGoalRunsToCompletion(t *testing.T) {
	h := newHarness(t, harnessConfig{})
	h.decomposer.cards = []orchestrator.DecomposedCard{
		{Title: "Data model", Description: "schema and migrations", Order: 1},
		{Title: "Endpoints", Description: "REST surface", Order: 2, Dependencies: []int{1}},
	}
	ctx := context.Background()
	goalID := h.submitGoal("Ship the reporting feature")

	// Pending until the first tick picks it up.
	g, err := h.goals.Get(ctx, goalID)
	require.NoError(t, err)
	assert.Equal(t, entgoal.StatusPending, g.Status)

	h.tick() // decompose
	g, err = h.goals.Get(ctx, goalID)
	require.NoError(t, err)
	assert.Equal(t, entgoal.StatusActive, g.Status)
	require.Len(t, g.CardIds, 2)

	h.tick() // first card runs to done
	h.tick() // second card unblocks and runs
	h.tick() // goal completes

	g, err = h.goals.Get(ctx, goalID)
	require.NoError(t, err)
	assert.Equal(t, entgoal.StatusCompleted, g.Status)
	require.NotNil(t, g.CompletedAt)

	cards, err := h.cards.ListByGoal(ctx, goalID)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	for _, c := range cards {
		assert.Equal(t, string(models.ColumnDone), c.Column)
		// Every stage left a completed execution behind.
		history, err := h.executions.History(ctx, c.ID)
		require.NoError(t, err)
		assert.Len(t, history, 4)
	}

	// Exactly one goal learning, stored once.
	require.NotNil(t, g.LearningText)
	require.NotNil(t, g.LearningID)
	assert.Equal(t, fmt.Sprintf("Completed goal: %s. Cards: 2.", g.Description), *g.LearningText)
	assert.Equal(t, 1, h.learnings.count(*g.LearningText))

	// The finished goal shows up as completed over the API too.
	rec := h.do("GET", "/api/goals/"+goalID, "")
	require.Equal(t, 200, rec.Code)
	body := h.decode(rec)
	goal, ok := body["goal"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "completed", goal["status"])
}

// A card whose dependency has not reached done is not scheduled; it
// becomes eligible on the tick after the dependency completes.
func TestDependencyGatesExecution(t *testing.T) {
	h := newHarness(t, harnessConfig{})
	h.decomposer.cards = []orchestrator.DecomposedCard{
		{Title: "Foundation", Description: "must land first", Order: 1},
		{Title: "Dependent", Description: "builds on foundation", Order: 2, Dependencies: []int{1}},
	}
	ctx := context.Background()
	goalID := h.submitGoal("Layered delivery")

	h.tick() // decompose
	h.tick() // only the foundation card is ready

	cards, err := h.cards.ListByGoal(ctx, goalID)
	require.NoError(t, err)
	byTitle := map[string]string{}
	for _, c := range cards {
		byTitle[c.Title] = c.Column
	}
	assert.Equal(t, string(models.ColumnDone), byTitle["Foundation"])
	assert.Equal(t, string(models.ColumnBacklog), byTitle["Dependent"],
		"gated card must not move while its dependency is unfinished")

	h.tick() // dependency satisfied, the gated card runs

	cards, err = h.cards.ListByGoal(ctx, goalID)
	require.NoError(t, err)
	for _, c := range cards {
		assert.Equal(t, string(models.ColumnDone), c.Column)
	}
}
