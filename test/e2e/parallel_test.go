package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entgoal "github.com/codeready-toolchain/cardsmith/ent/goal"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
	"github.com/codeready-toolchain/cardsmith/pkg/orchestrator"
)

// Two independent cards run in the same tick, each in its own git
// worktree, and both reach done before the goal completes.
func TestIndependentCardsRunInParallelWorktrees(t *testing.T) {
	h := newHarness(t, harnessConfig{gitRepo: true})
	h.decomposer.cards = []orchestrator.DecomposedCard{
		{Title: "Importer", Description: "independent", Order: 1},
		{Title: "Exporter", Description: "independent", Order: 2},
	}
	ctx := context.Background()
	goalID := h.submitGoal("Two-lane delivery")

	h.tick() // decompose
	h.tick() // both cards are ready, run in parallel

	cards, err := h.cards.ListByGoal(ctx, goalID)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	paths := map[string]bool{}
	branches := map[string]bool{}
	for _, c := range cards {
		assert.Equal(t, string(models.ColumnDone), c.Column)
		require.NotNil(t, c.WorktreePath, "card %s has no worktree", c.Title)
		require.NotNil(t, c.BranchName)
		paths[*c.WorktreePath] = true
		branches[*c.BranchName] = true
	}
	assert.Len(t, paths, 2, "each card must get its own checkout")
	assert.Len(t, branches, 2)

	// Both checkouts still exist side by side in the repository.
	count, err := h.worktrees.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	h.tick() // goal completes
	g, err := h.goals.Get(ctx, goalID)
	require.NoError(t, err)
	assert.Equal(t, entgoal.StatusCompleted, g.Status)

	// The parallel decision was recorded with its outcome.
	actions, err := h.recorder.RecentActions(ctx, 5)
	require.NoError(t, err)
	var sawParallel bool
	for _, a := range actions {
		if a.Decision == string(orchestrator.DecisionExecuteCardsParallel) {
			sawParallel = true
			assert.True(t, a.Success)
		}
	}
	assert.True(t, sawParallel)
}
