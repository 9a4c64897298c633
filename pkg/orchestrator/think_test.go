package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/pkg/models"
	"github.com/codeready-toolchain/cardsmith/pkg/usage"
)

func safeUsage() usage.Status {
	return usage.Status{SessionUsedPercent: 10, DailyUsedPercent: 20, IsSafe: true}
}

func TestThinkUsageLimitWins(t *testing.T) {
	res := Think(ThinkInput{
		Usage:        usage.Status{SessionUsedPercent: 91.5, DailyUsedPercent: 42.0, IsSafe: false},
		ActiveGoalID: "g1",
		Cards: []models.CardSnapshot{
			{ID: "c1", Column: models.ColumnBacklog},
		},
	})
	assert.Equal(t, DecisionWait, res.Decision)
	assert.Equal(t, "Usage limit exceeded: session=91.5%, daily=42.0%", res.Reason)
}

func TestThinkDecomposeActiveGoalWithoutCards(t *testing.T) {
	res := Think(ThinkInput{Usage: safeUsage(), ActiveGoalID: "g1"})
	assert.Equal(t, DecisionDecompose, res.Decision)
	assert.Equal(t, "g1", res.GoalID)
	assert.Equal(t, "Active goal has no cards, need to decompose", res.Reason)
}

func TestThinkCreateFixBeatsExecution(t *testing.T) {
	res := Think(ThinkInput{
		Usage:        safeUsage(),
		ActiveGoalID: "g1",
		Cards: []models.CardSnapshot{
			{ID: "ready-card", Column: models.ColumnBacklog},
			{ID: "failed-card-12345", Column: models.ColumnTest, TestFailed: true, FixState: models.FixStateNone},
		},
	})
	assert.Equal(t, DecisionCreateFix, res.Decision)
	assert.Equal(t, []string{"failed-card-12345"}, res.CardIDs)
	assert.Equal(t, "Card failed-c failed test, creating fix", res.Reason)
}

func TestThinkFailureWithActiveFixWaits(t *testing.T) {
	res := Think(ThinkInput{
		Usage:        safeUsage(),
		ActiveGoalID: "g1",
		Cards: []models.CardSnapshot{
			{ID: "parent", Column: models.ColumnTest, TestFailed: true, FixState: models.FixStateActive},
			{ID: "fix", Column: models.ColumnImplement, IsFixCard: true, ParentCardID: "parent", HasRunningExecution: true},
		},
	})
	assert.Equal(t, DecisionWait, res.Decision)
	assert.Equal(t, "Cards in progress, waiting", res.Reason)
}

func TestThinkResolvedFixReleasesParent(t *testing.T) {
	res := Think(ThinkInput{
		Usage:        safeUsage(),
		ActiveGoalID: "g1",
		Cards: []models.CardSnapshot{
			{ID: "parent", Column: models.ColumnTest, TestFailed: true, FixState: models.FixStateResolved},
			{ID: "fix", Column: models.ColumnDone, IsFixCard: true, ParentCardID: "parent"},
		},
	})
	assert.Equal(t, DecisionExecuteCard, res.Decision)
	assert.Equal(t, []string{"parent"}, res.CardIDs)
}

func TestThinkSingleReadyCard(t *testing.T) {
	res := Think(ThinkInput{
		Usage:        safeUsage(),
		ActiveGoalID: "g1",
		Cards: []models.CardSnapshot{
			{ID: "abcdefgh-rest", Column: models.ColumnBacklog},
			{ID: "blocked", Column: models.ColumnBacklog, Dependencies: []string{"abcdefgh-rest"}},
		},
	})
	assert.Equal(t, DecisionExecuteCard, res.Decision)
	assert.Equal(t, []string{"abcdefgh-rest"}, res.CardIDs)
	assert.Equal(t, "Card abcdefgh ready to execute", res.Reason)
}

func TestThinkParallelWhenSeveralReady(t *testing.T) {
	res := Think(ThinkInput{
		Usage:        safeUsage(),
		ActiveGoalID: "g1",
		Cards: []models.CardSnapshot{
			{ID: "a", Column: models.ColumnBacklog},
			{ID: "b", Column: models.ColumnBacklog},
			{ID: "c", Column: models.ColumnBacklog, Dependencies: []string{"a"}},
		},
	})
	assert.Equal(t, DecisionExecuteCardsParallel, res.Decision)
	assert.Equal(t, []string{"a", "b"}, res.CardIDs)
	assert.Equal(t, "2 cards ready for parallel execution", res.Reason)
}

func TestThinkWorktreeCapacity(t *testing.T) {
	tests := []struct {
		name  string
		count int
		limit int
		want  Decision
	}{
		{name: "at capacity waits", count: 3, limit: 3, want: DecisionWait},
		{name: "over capacity waits", count: 4, limit: 3, want: DecisionWait},
		{name: "below capacity dispatches", count: 2, limit: 3, want: DecisionExecuteCard},
		{name: "unknown limit never blocks", count: 9, limit: 0, want: DecisionExecuteCard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Think(ThinkInput{
				Usage:         safeUsage(),
				ActiveGoalID:  "g1",
				WorktreeCount: tt.count,
				WorktreeLimit: tt.limit,
				Cards: []models.CardSnapshot{
					{ID: "ready", Column: models.ColumnBacklog},
				},
			})
			assert.Equal(t, tt.want, res.Decision)
			if tt.want == DecisionWait {
				assert.Equal(t, "g1", res.GoalID)
				assert.Equal(t, "Worktree capacity exhausted", res.Reason)
			}
		})
	}
}

func TestThinkDependencyGating(t *testing.T) {
	tests := []struct {
		name      string
		depColumn models.Column
		wantReady bool
	}{
		{name: "dep in done releases", depColumn: models.ColumnDone, wantReady: true},
		{name: "dep in completed releases", depColumn: models.ColumnCompleted, wantReady: true},
		{name: "dep in review blocks", depColumn: models.ColumnReview, wantReady: false},
		{name: "dep in backlog blocks", depColumn: models.ColumnBacklog, wantReady: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := []models.CardSnapshot{
				{ID: "dep", Column: tt.depColumn, HasRunningExecution: tt.depColumn == models.ColumnBacklog},
				{ID: "child", Column: models.ColumnBacklog, Dependencies: []string{"dep"}},
			}
			ready := readyCards(cards)
			if tt.wantReady {
				assert.Contains(t, ready, "child")
			} else {
				assert.NotContains(t, ready, "child")
			}
		})
	}
}

func TestThinkUnknownDependencyBlocks(t *testing.T) {
	ready := readyCards([]models.CardSnapshot{
		{ID: "child", Column: models.ColumnBacklog, Dependencies: []string{"vanished"}},
	})
	assert.Empty(t, ready)
}

func TestThinkRunningExecutionBlocksCard(t *testing.T) {
	res := Think(ThinkInput{
		Usage:        safeUsage(),
		ActiveGoalID: "g1",
		Cards: []models.CardSnapshot{
			{ID: "busy", Column: models.ColumnImplement, HasRunningExecution: true},
		},
	})
	assert.Equal(t, DecisionWait, res.Decision)
	assert.Equal(t, "Cards in progress, waiting", res.Reason)
}

func TestThinkCompleteGoal(t *testing.T) {
	res := Think(ThinkInput{
		Usage:        safeUsage(),
		ActiveGoalID: "g1",
		Cards: []models.CardSnapshot{
			{ID: "a", Column: models.ColumnDone},
			{ID: "b", Column: models.ColumnCompleted},
		},
	})
	assert.Equal(t, DecisionCompleteGoal, res.Decision)
	assert.Equal(t, "All cards completed", res.Reason)
}

func TestThinkActivatesPendingGoal(t *testing.T) {
	long := "Build a complete billing system with invoicing, payments and dunning workflows"
	res := Think(ThinkInput{
		Usage:                  safeUsage(),
		PendingGoalID:          "g2",
		PendingGoalDescription: long,
	})
	require.Equal(t, DecisionDecompose, res.Decision)
	assert.Equal(t, "g2", res.GoalID)
	assert.Equal(t, "Activated pending goal: "+long[:50], res.Reason)
}

func TestThinkIdle(t *testing.T) {
	res := Think(ThinkInput{Usage: safeUsage()})
	assert.Equal(t, DecisionWait, res.Decision)
	assert.Equal(t, "No active or pending goals", res.Reason)
}
