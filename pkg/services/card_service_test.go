package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/codeready-toolchain/cardsmith/ent"
	"github.com/codeready-toolchain/cardsmith/ent/execution"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
	testdb "github.com/codeready-toolchain/cardsmith/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCardService(client.Client)
	ctx := context.Background()

	t.Run("creates card in backlog with model defaults", func(t *testing.T) {
		c, err := service.Create(ctx, models.CreateCardRequest{
			Title:       "Implement token bucket",
			Description: "Rate limit outbound requests",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, c.ID)
		assert.Equal(t, string(models.ColumnBacklog), c.Column)
		assert.Equal(t, models.DefaultModelProfile, c.ModelPlan)
		assert.Equal(t, models.DefaultModelProfile, c.ModelImplement)
		assert.Equal(t, models.DefaultModelProfile, c.ModelTest)
		assert.Equal(t, models.DefaultModelProfile, c.ModelReview)
		assert.False(t, c.IsFixCard)
		assert.False(t, c.Archived)
		assert.Nil(t, c.CompletedAt)
	})

	t.Run("records goal, dependencies and model overrides", func(t *testing.T) {
		goalSvc := NewGoalService(client.Client)
		g, err := goalSvc.Create(ctx, models.CreateGoalRequest{Description: "Parent goal"})
		require.NoError(t, err)

		c, err := service.Create(ctx, models.CreateCardRequest{
			Title:        "Wire the parser",
			GoalID:       g.ID,
			Dependencies: []string{"card-x", "card-y"},
			ModelTest:    "haiku-4.5",
		})
		require.NoError(t, err)

		require.NotNil(t, c.GoalID)
		assert.Equal(t, g.ID, *c.GoalID)
		assert.Equal(t, []string{"card-x", "card-y"}, c.Dependencies)
		assert.Equal(t, "haiku-4.5", c.ModelTest)
		assert.Equal(t, models.DefaultModelProfile, c.ModelPlan)
	})

	t.Run("rejects blank title", func(t *testing.T) {
		_, err := service.Create(ctx, models.CreateCardRequest{Title: "  "})
		require.Error(t, err)

		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "title", validErr.Field)
	})
}

func TestCardService_Move(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCardService(client.Client)
	ctx := context.Background()

	newCard := func(t *testing.T, title string) *ent.Card {
		t.Helper()
		c, err := service.Create(ctx, models.CreateCardRequest{Title: title})
		require.NoError(t, err)
		return c
	}

	t.Run("walks the legal column graph", func(t *testing.T) {
		c := newCard(t, "happy path")

		for _, to := range []models.Column{
			models.ColumnPlan,
			models.ColumnImplement,
			models.ColumnTest,
			models.ColumnReview,
			models.ColumnDone,
			models.ColumnCompleted,
		} {
			updated, _, err := service.Move(ctx, c.ID, to)
			require.NoError(t, err, "move to %s", to)
			assert.Equal(t, string(to), updated.Column)
		}
	})

	t.Run("returns the column the card left", func(t *testing.T) {
		c := newCard(t, "from tracking")

		_, from, err := service.Move(ctx, c.ID, models.ColumnPlan)
		require.NoError(t, err)
		assert.Equal(t, models.ColumnBacklog, from)
	})

	t.Run("rejects illegal transitions with the allowed set", func(t *testing.T) {
		c := newCard(t, "no skipping")

		_, _, err := service.Move(ctx, c.ID, models.ColumnReview)
		require.Error(t, err)
		assert.True(t, IsInvalidTransition(err))

		var transErr *InvalidTransitionError
		require.ErrorAs(t, err, &transErr)
		assert.Equal(t, models.ColumnBacklog, transErr.From)
		assert.Equal(t, models.ColumnReview, transErr.To)
		assert.Equal(t, []models.Column{models.ColumnPlan, models.ColumnCancelled}, transErr.Allowed)
		assert.Contains(t, err.Error(), "Invalid transition from 'backlog' to 'review'")
	})

	t.Run("same-column move is a no-op", func(t *testing.T) {
		c := newCard(t, "idempotent")

		updated, from, err := service.Move(ctx, c.ID, models.ColumnBacklog)
		require.NoError(t, err)
		assert.Equal(t, models.ColumnBacklog, from)
		assert.Equal(t, string(models.ColumnBacklog), updated.Column)
	})

	t.Run("rejects unknown column", func(t *testing.T) {
		c := newCard(t, "bad target")

		_, _, err := service.Move(ctx, c.ID, models.Column("doing"))
		require.Error(t, err)

		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "columnId", validErr.Field)
		assert.Contains(t, validErr.Message, "doing")
	})

	t.Run("unknown card returns ErrNotFound", func(t *testing.T) {
		_, _, err := service.Move(ctx, "missing", models.ColumnPlan)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("entering done stamps completed_at once", func(t *testing.T) {
		c := newCard(t, "completion stamp")
		for _, to := range []models.Column{
			models.ColumnPlan, models.ColumnImplement, models.ColumnTest,
			models.ColumnReview, models.ColumnDone,
		} {
			_, _, err := service.Move(ctx, c.ID, to)
			require.NoError(t, err)
		}

		done, err := service.Get(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, done.CompletedAt)
		stamp := *done.CompletedAt

		// Round-trip through archived; the stamp must not move
		_, _, err = service.Move(ctx, c.ID, models.ColumnArchived)
		require.NoError(t, err)

		archived, err := service.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.True(t, archived.Archived)

		_, _, err = service.Move(ctx, c.ID, models.ColumnDone)
		require.NoError(t, err)

		restored, err := service.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.False(t, restored.Archived, "archived flag should clear on restore")
		require.NotNil(t, restored.CompletedAt)
		assert.Equal(t, stamp.UnixNano(), restored.CompletedAt.UnixNano())
	})
}

func TestCardService_CreateFixCard(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCardService(client.Client)
	ctx := context.Background()

	newParent := func(t *testing.T, title string) *ent.Card {
		t.Helper()
		goalSvc := NewGoalService(client.Client)
		g, err := goalSvc.Create(ctx, models.CreateGoalRequest{Description: "goal for " + title})
		require.NoError(t, err)

		parent, err := service.Create(ctx, models.CreateCardRequest{
			Title:     title,
			GoalID:    g.ID,
			ModelTest: "sonnet-4.5",
		})
		require.NoError(t, err)
		return parent
	}

	t.Run("spawns fix card inheriting models and goal", func(t *testing.T) {
		parent := newParent(t, "Streaming decoder")

		fix, err := service.CreateFixCard(ctx, parent.ID, "Tests fail on empty frames", "--- FAIL: TestDecode")
		require.NoError(t, err)

		assert.Equal(t, "[FIX] Streaming decoder", fix.Title)
		assert.Equal(t, string(models.ColumnBacklog), fix.Column)
		assert.True(t, fix.IsFixCard)
		require.NotNil(t, fix.ParentCardID)
		assert.Equal(t, parent.ID, *fix.ParentCardID)
		require.NotNil(t, fix.TestErrorContext)
		assert.Contains(t, *fix.TestErrorContext, "--- FAIL")
		assert.Equal(t, "sonnet-4.5", fix.ModelTest)
		require.NotNil(t, fix.GoalID)
		assert.Equal(t, *parent.GoalID, *fix.GoalID)
	})

	t.Run("truncates long parent titles", func(t *testing.T) {
		longTitle := strings.Repeat("x", 80)
		parent := newParent(t, longTitle)

		fix, err := service.CreateFixCard(ctx, parent.ID, "boom", "ctx")
		require.NoError(t, err)

		assert.Equal(t, "[FIX] "+strings.Repeat("x", 50), fix.Title)
	})

	t.Run("returns the existing active fix card", func(t *testing.T) {
		parent := newParent(t, "Idempotency check")

		first, err := service.CreateFixCard(ctx, parent.ID, "first failure", "ctx-1")
		require.NoError(t, err)

		second, err := service.CreateFixCard(ctx, parent.ID, "second failure", "ctx-2")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID, "active fix card should be reused")
	})

	t.Run("spawns a new fix card after the previous one finished", func(t *testing.T) {
		parent := newParent(t, "Second wave")

		first, err := service.CreateFixCard(ctx, parent.ID, "failure", "ctx")
		require.NoError(t, err)

		// Drive the fix card to done; it is no longer active
		for _, to := range []models.Column{
			models.ColumnPlan, models.ColumnImplement, models.ColumnTest,
			models.ColumnReview, models.ColumnDone,
		} {
			_, _, err := service.Move(ctx, first.ID, to)
			require.NoError(t, err)
		}

		second, err := service.CreateFixCard(ctx, parent.ID, "failure again", "ctx")
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("unknown parent returns ErrNotFound", func(t *testing.T) {
		_, err := service.CreateFixCard(ctx, "missing", "d", "c")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCardService_ActiveFixCard(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCardService(client.Client)
	ctx := context.Background()

	parent, err := service.Create(ctx, models.CreateCardRequest{Title: "Parent"})
	require.NoError(t, err)

	_, err = service.ActiveFixCard(ctx, parent.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	fix, err := service.CreateFixCard(ctx, parent.ID, "failure", "ctx")
	require.NoError(t, err)

	active, err := service.ActiveFixCard(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, fix.ID, active.ID)

	// Cancelled fixes stop counting as active
	_, _, err = service.Move(ctx, fix.ID, models.ColumnCancelled)
	require.NoError(t, err)

	_, err = service.ActiveFixCard(ctx, parent.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCardService_ListByGoal_BoardOrder(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCardService(client.Client)
	goalSvc := NewGoalService(client.Client)
	ctx := context.Background()

	g, err := goalSvc.Create(ctx, models.CreateGoalRequest{Description: "Ordered goal"})
	require.NoError(t, err)

	backlogCard, err := service.Create(ctx, models.CreateCardRequest{Title: "stays in backlog", GoalID: g.ID})
	require.NoError(t, err)
	movedCard, err := service.Create(ctx, models.CreateCardRequest{Title: "moves forward", GoalID: g.ID})
	require.NoError(t, err)

	_, _, err = service.Move(ctx, movedCard.ID, models.ColumnPlan)
	require.NoError(t, err)

	cards, err := service.ListByGoal(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	// Board order puts backlog before plan even though the plan card is newer
	assert.Equal(t, backlogCard.ID, cards[0].ID)
	assert.Equal(t, movedCard.ID, cards[1].ID)
}

func TestCardService_WorkspaceFields(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCardService(client.Client)
	ctx := context.Background()

	c, err := service.Create(ctx, models.CreateCardRequest{Title: "Workspace card"})
	require.NoError(t, err)

	require.NoError(t, service.SetSpecPath(ctx, c.ID, "specs/workspace-card.md"))
	require.NoError(t, service.SetWorkspace(ctx, c.ID, "agent/abc12345-1700000000", "/repo/.worktrees/card-abc12345", "main"))
	require.NoError(t, service.SetDiffStats(ctx, c.ID, models.DiffStats{FilesChanged: 3, Insertions: 120, Deletions: 7}))

	got, err := service.Get(ctx, c.ID)
	require.NoError(t, err)

	require.NotNil(t, got.SpecPath)
	assert.Equal(t, "specs/workspace-card.md", *got.SpecPath)
	require.NotNil(t, got.BranchName)
	assert.Equal(t, "agent/abc12345-1700000000", *got.BranchName)
	require.NotNil(t, got.WorktreePath)
	require.NotNil(t, got.BaseBranch)
	assert.Equal(t, "main", *got.BaseBranch)

	stats := models.DiffStatsFromMap(got.DiffStats)
	require.NotNil(t, stats)
	assert.Equal(t, 3, stats.FilesChanged)
	assert.Equal(t, 120, stats.Insertions)
	assert.Equal(t, 7, stats.Deletions)

	t.Run("degraded mode keeps only the path", func(t *testing.T) {
		bare, err := service.Create(ctx, models.CreateCardRequest{Title: "No VCS"})
		require.NoError(t, err)

		require.NoError(t, service.SetWorkspace(ctx, bare.ID, "", "/plain/dir", ""))

		got, err := service.Get(ctx, bare.ID)
		require.NoError(t, err)
		assert.Nil(t, got.BranchName)
		assert.Nil(t, got.BaseBranch)
		require.NotNil(t, got.WorktreePath)
		assert.Equal(t, "/plain/dir", *got.WorktreePath)
	})
}

func TestCardService_Snapshot(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCardService(client.Client)
	goalSvc := NewGoalService(client.Client)
	execSvc := NewExecutionService(client.Client, nil)
	ctx := context.Background()

	g, err := goalSvc.Create(ctx, models.CreateGoalRequest{Description: "Snapshot goal"})
	require.NoError(t, err)

	c, err := service.Create(ctx, models.CreateCardRequest{
		Title:        "Observed card",
		GoalID:       g.ID,
		Dependencies: []string{"dep-1"},
	})
	require.NoError(t, err)

	t.Run("idle card", func(t *testing.T) {
		snaps, err := service.Snapshot(ctx, g.ID)
		require.NoError(t, err)
		require.Len(t, snaps, 1)

		snap := snaps[0]
		assert.Equal(t, c.ID, snap.ID)
		assert.Equal(t, models.ColumnBacklog, snap.Column)
		assert.Equal(t, []string{"dep-1"}, snap.Dependencies)
		assert.False(t, snap.HasRunningExecution)
		assert.False(t, snap.TestFailed)
		assert.Equal(t, models.FixStateNone, snap.FixState)
	})

	t.Run("running execution is visible", func(t *testing.T) {
		exec, err := execSvc.Create(ctx, c.ID, models.CommandPlan, models.StagePlanning, "opus-4.5", "plan")
		require.NoError(t, err)

		snaps, err := service.Snapshot(ctx, g.ID)
		require.NoError(t, err)
		require.Len(t, snaps, 1)
		assert.True(t, snaps[0].HasRunningExecution)

		require.NoError(t, execSvc.Complete(ctx, exec.ID, "planned", models.Usage{}))
	})

	t.Run("failed test surfaces fix state transitions", func(t *testing.T) {
		exec, err := execSvc.Create(ctx, c.ID, models.CommandTest, models.StageTesting, "opus-4.5", "test")
		require.NoError(t, err)
		require.NoError(t, execSvc.Fail(ctx, exec.ID, "--- FAIL: TestThing"))

		snaps, err := service.Snapshot(ctx, g.ID)
		require.NoError(t, err)
		require.Len(t, snaps, 1)
		assert.True(t, snaps[0].TestFailed)
		assert.False(t, snaps[0].HasRunningExecution)
		assert.Equal(t, models.FixStateNone, snaps[0].FixState)

		// A fix card in flight flips the state to active
		fix, err := service.CreateFixCard(ctx, c.ID, "fix the thing", "--- FAIL: TestThing")
		require.NoError(t, err)

		snaps, err = service.Snapshot(ctx, g.ID)
		require.NoError(t, err)
		require.Len(t, snaps, 2, "fix card joins the goal's board")

		var parentSnap *models.CardSnapshot
		for i := range snaps {
			if snaps[i].ID == c.ID {
				parentSnap = &snaps[i]
			}
		}
		require.NotNil(t, parentSnap)
		assert.Equal(t, models.FixStateActive, parentSnap.FixState)

		// Finishing the fix card resolves the failure
		for _, to := range []models.Column{
			models.ColumnPlan, models.ColumnImplement, models.ColumnTest,
			models.ColumnReview, models.ColumnDone,
		} {
			_, _, err := service.Move(ctx, fix.ID, to)
			require.NoError(t, err)
		}

		snaps, err = service.Snapshot(ctx, g.ID)
		require.NoError(t, err)
		parentSnap = nil
		for i := range snaps {
			if snaps[i].ID == c.ID {
				parentSnap = &snaps[i]
			}
		}
		require.NotNil(t, parentSnap)
		assert.Equal(t, models.FixStateResolved, parentSnap.FixState)
	})
}

func TestCardService_ResolvedFixCardSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCardService(client.Client)
	ctx := context.Background()

	parent, err := service.Create(ctx, models.CreateCardRequest{Title: "Parent"})
	require.NoError(t, err)

	before := time.Now().Add(-time.Minute)

	resolved, err := service.ResolvedFixCardSince(ctx, parent.ID, before)
	require.NoError(t, err)
	assert.False(t, resolved)

	fix, err := service.CreateFixCard(ctx, parent.ID, "failure", "ctx")
	require.NoError(t, err)
	for _, to := range []models.Column{
		models.ColumnPlan, models.ColumnImplement, models.ColumnTest,
		models.ColumnReview, models.ColumnDone,
	} {
		_, _, err := service.Move(ctx, fix.ID, to)
		require.NoError(t, err)
	}

	resolved, err = service.ResolvedFixCardSince(ctx, parent.ID, before)
	require.NoError(t, err)
	assert.True(t, resolved)

	// A cutoff after the fix card's creation excludes it
	resolved, err = service.ResolvedFixCardSince(ctx, parent.ID, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, resolved)
}

// Cancelled executions must never block history reads for terminal cards.
func TestCardService_MoveKeepsExecutionHistory(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCardService(client.Client)
	execSvc := NewExecutionService(client.Client, nil)
	ctx := context.Background()

	c, err := service.Create(ctx, models.CreateCardRequest{Title: "History keeper"})
	require.NoError(t, err)

	exec, err := execSvc.Create(ctx, c.ID, models.CommandPlan, models.StagePlanning, "opus-4.5", "plan")
	require.NoError(t, err)
	require.NoError(t, execSvc.Complete(ctx, exec.ID, "done", models.Usage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30}))

	_, _, err = service.Move(ctx, c.ID, models.ColumnCancelled)
	require.NoError(t, err)

	history, err := execSvc.History(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, execution.StatusSuccess, history[0].Status)
}
