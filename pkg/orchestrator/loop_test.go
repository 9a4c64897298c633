package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/ent"
	entgoal "github.com/codeready-toolchain/cardsmith/ent/goal"
	"github.com/codeready-toolchain/cardsmith/pkg/agent"
	"github.com/codeready-toolchain/cardsmith/pkg/config"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
	"github.com/codeready-toolchain/cardsmith/pkg/services"
	"github.com/codeready-toolchain/cardsmith/pkg/usage"
	"github.com/codeready-toolchain/cardsmith/pkg/vector"
	"github.com/codeready-toolchain/cardsmith/pkg/workflow"
	"github.com/codeready-toolchain/cardsmith/pkg/worktree"
	testdb "github.com/codeready-toolchain/cardsmith/test/database"
)

// fakeDecomposer replays a canned breakdown.
type fakeDecomposer struct {
	cards []DecomposedCard
	err   error
	calls int
}

func (f *fakeDecomposer) Decompose(ctx context.Context, goalDescription string, maxCards int) ([]DecomposedCard, error) {
	f.calls++
	return f.cards, f.err
}

// fakeLearningStore keeps learnings in memory and remembers the last
// recall parameters.
type fakeLearningStore struct {
	mu            sync.Mutex
	stored        []string
	queries       int
	hits          []vector.LearningHit
	lastLimit     int
	lastThreshold float64
}

func (f *fakeLearningStore) StoreLearning(ctx context.Context, goalDescription, learning string, meta vector.LearningMeta) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored = append(f.stored, learning)
	return fmt.Sprintf("learning-%d", len(f.stored)), nil
}

func (f *fakeLearningStore) Query(ctx context.Context, text string, limit int, threshold float64, outcomeFilter string) ([]vector.LearningHit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries++
	f.lastLimit = limit
	f.lastThreshold = threshold
	return f.hits, nil
}

// tickAgent answers every stage successfully.
func tickAgent(req agent.Request) []agent.Event {
	if strings.HasPrefix(req.Prompt, string(models.CommandPlan)) {
		return []agent.Event{
			agent.ToolUseEvent{Name: agent.ToolWriteFile, Input: map[string]interface{}{"path": "specs/card.md"}},
			agent.ResultEvent{Result: "planned, see specs/card.md", Usage: models.Usage{TotalTokens: 100, CostUSD: 0.01}},
		}
	}
	return []agent.Event{agent.ResultEvent{Result: "done", Usage: models.Usage{TotalTokens: 100, CostUSD: 0.01}}}
}

type scriptedAdapter struct {
	script func(agent.Request) []agent.Event
}

func (a *scriptedAdapter) Run(ctx context.Context, req agent.Request) (<-chan agent.Event, error) {
	ch := make(chan agent.Event, 8)
	go func() {
		defer close(ch)
		for _, ev := range a.script(req) {
			ch <- ev
		}
	}()
	return ch, nil
}

type loopFixture struct {
	loop       *Loop
	goals      *services.GoalService
	cards      *services.CardService
	recorder   *services.OrchestratorRecorder
	memory     *services.MemoryService
	decomposer *fakeDecomposer
	learnings  *fakeLearningStore
	budget     *usage.Budget
	logPath    string
}

func newLoopFixture(t *testing.T, script func(agent.Request) []agent.Event, probeCommand string) *loopFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	cfg := config.DefaultOrchestratorConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "orchestrator.log")
	cards := services.NewCardService(client.Client)
	goals := services.NewGoalService(client.Client)
	executions := services.NewExecutionService(client.Client, nil)
	memory := services.NewMemoryService(client.Client, config.DefaultMemoryConfig().Retention)
	recorder := services.NewOrchestratorRecorder(client.Client)

	tracker := usage.NewTracker(&config.UsageConfig{
		StateFile:          filepath.Join(t.TempDir(), "usage.json"),
		SessionTokenBudget: 1_000_000,
		DailyTokenBudget:   5_000_000,
	})
	budget := usage.NewBudget(&config.UsageConfig{ProbeCommand: probeCommand}, cfg.UsageLimitPercent, tracker)

	worktrees := worktree.NewManager(&config.WorktreeConfig{RepoPath: t.TempDir(), MaxConcurrent: 4})
	engine := workflow.NewEngine(workflow.EngineDeps{
		Cards:      cards,
		Goals:      goals,
		Executions: executions,
		Adapter:    &scriptedAdapter{script: script},
		Worktrees:  worktrees,
		Tracker:    tracker,
	})
	runner := workflow.NewRunner(engine, 4)
	t.Cleanup(runner.Stop)

	decomposer := &fakeDecomposer{}
	learnings := &fakeLearningStore{}

	loop := NewLoop(LoopDeps{
		Config:     cfg,
		Memory:     memory,
		Recorder:   recorder,
		Goals:      goals,
		Cards:      cards,
		Executions: executions,
		Budget:     budget,
		Runner:     runner,
		Decomposer: decomposer,
		Learnings:  learnings,
		Worktrees:  worktrees,
	})
	t.Cleanup(func() {
		if loop.logFile != nil {
			loop.logFile.Close()
		}
	})
	return &loopFixture{
		loop:       loop,
		goals:      goals,
		cards:      cards,
		recorder:   recorder,
		memory:     memory,
		decomposer: decomposer,
		learnings:  learnings,
		budget:     budget,
		logPath:    cfg.LogFile,
	}
}

func (f *loopFixture) submitGoal(t *testing.T, description string) *ent.Goal {
	t.Helper()
	g, err := f.goals.Create(context.Background(), models.CreateGoalRequest{Description: description})
	require.NoError(t, err)
	return g
}

func TestLoopTickDecomposesPendingGoal(t *testing.T) {
	f := newLoopFixture(t, tickAgent, "")
	f.decomposer.cards = []DecomposedCard{
		{Title: "Schema", Description: "migrations", Order: 1},
		{Title: "API", Description: "endpoints", Order: 2, Dependencies: []int{1}},
	}
	ctx := context.Background()
	g := f.submitGoal(t, "Build the billing service")

	require.NoError(t, f.loop.Tick(ctx))
	assert.Equal(t, 1, f.decomposer.calls)

	// Goal is active with two cards; the second depends on the first.
	refreshed, err := f.goals.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, entgoal.StatusActive, refreshed.Status)
	require.Len(t, refreshed.CardIds, 2)

	cards, err := f.cards.ListByGoal(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	byTitle := map[string]*ent.Card{}
	for _, c := range cards {
		byTitle[c.Title] = c
	}
	require.Contains(t, byTitle, "Schema")
	require.Contains(t, byTitle, "API")
	assert.Equal(t, []string{byTitle["Schema"].ID}, byTitle["API"].Dependencies)

	// The tick left a durable trace.
	actions, err := f.recorder.RecentActions(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, actions)
	assert.Equal(t, string(DecisionDecompose), actions[0].Decision)
	assert.True(t, actions[0].Success)
}

func TestLoopDrivesGoalToCompletion(t *testing.T) {
	f := newLoopFixture(t, tickAgent, "")
	f.decomposer.cards = []DecomposedCard{
		{Title: "First", Description: "base layer", Order: 1},
		{Title: "Second", Description: "depends on first", Order: 2, Dependencies: []int{1}},
	}
	ctx := context.Background()
	g := f.submitGoal(t, "Ship feature X")

	// Tick 1: decompose. Tick 2: First is the only ready card.
	// Tick 3: Second unblocks. Tick 4: complete the goal.
	for i := 0; i < 4; i++ {
		require.NoError(t, f.loop.Tick(ctx), "tick %d", i+1)
	}

	refreshed, err := f.goals.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, entgoal.StatusCompleted, refreshed.Status)
	require.NotNil(t, refreshed.LearningText)
	assert.Equal(t, fmt.Sprintf("Completed goal: %s. Cards: 2.", g.Description), *refreshed.LearningText)
	require.NotNil(t, refreshed.LearningID)

	cards, err := f.cards.ListByGoal(ctx, g.ID)
	require.NoError(t, err)
	for _, c := range cards {
		assert.Equal(t, string(models.ColumnDone), c.Column)
	}

	// Card-completion learnings plus the goal learning were stored.
	assert.Contains(t, f.learnings.stored, "Successfully completed full workflow for card: First")
	assert.Contains(t, f.learnings.stored, "Successfully completed full workflow for card: Second")
	assert.Contains(t, f.learnings.stored, *refreshed.LearningText)
	assert.Positive(t, f.learnings.queries)
}

func TestLoopParallelExecution(t *testing.T) {
	f := newLoopFixture(t, tickAgent, "")
	f.decomposer.cards = []DecomposedCard{
		{Title: "Left", Order: 1, Description: "independent"},
		{Title: "Right", Order: 2, Description: "independent"},
	}
	ctx := context.Background()
	f.submitGoal(t, "Two independent cards")

	require.NoError(t, f.loop.Tick(ctx)) // decompose
	require.NoError(t, f.loop.Tick(ctx)) // both ready -> parallel

	actions, err := f.recorder.RecentActions(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, actions)
	assert.Equal(t, string(DecisionExecuteCardsParallel), actions[0].Decision)
	require.NotNil(t, actions[0].Learning)
	assert.Equal(t, "Parallel execution: 2/2 cards completed", *actions[0].Learning)
}

func TestLoopTestFailureEndsInFixCard(t *testing.T) {
	f := newLoopFixture(t, func(req agent.Request) []agent.Event {
		if strings.HasPrefix(req.Prompt, string(models.CommandTest)) &&
			!strings.Contains(req.Prompt, "Failing test output:") {
			return []agent.Event{agent.ResultEvent{Result: "TESTS FAILED: broken invariant"}}
		}
		return tickAgent(req)
	}, "")
	f.decomposer.cards = []DecomposedCard{{Title: "Fragile", Order: 1, Description: "will fail tests"}}
	ctx := context.Background()
	g := f.submitGoal(t, "Goal with a failing card")

	require.NoError(t, f.loop.Tick(ctx)) // decompose
	require.NoError(t, f.loop.Tick(ctx)) // execute -> test fails, fix spawned by engine

	snapshot, err := f.cards.Snapshot(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, snapshot, 2)

	var parent, fix *models.CardSnapshot
	for i := range snapshot {
		if snapshot[i].IsFixCard {
			fix = &snapshot[i]
		} else {
			parent = &snapshot[i]
		}
	}
	require.NotNil(t, parent)
	require.NotNil(t, fix)
	assert.True(t, parent.TestFailed)
	assert.Equal(t, models.FixStateActive, parent.FixState)
	assert.Equal(t, parent.ID, fix.ParentCardID)

	// Next tick executes the fix-card, not the blocked parent.
	require.NoError(t, f.loop.Tick(ctx))
	actions, err := f.recorder.RecentActions(ctx, 1)
	require.NoError(t, err)
	require.NotEmpty(t, actions)
	assert.Equal(t, string(DecisionExecuteCard), actions[0].Decision)
	assert.Equal(t, []string{fix.ID}, actions[0].CardIds)
}

func TestLoopWaitsWhenBudgetExceeded(t *testing.T) {
	probe := `echo '{"sessionUsedPercent": 97.0, "dailyUsedPercent": 41.0}'`
	f := newLoopFixture(t, tickAgent, probe)
	f.decomposer.cards = []DecomposedCard{{Title: "Never runs", Order: 1}}
	ctx := context.Background()
	f.submitGoal(t, "Goal behind the budget gate")

	require.NoError(t, f.loop.Tick(ctx))
	assert.Zero(t, f.decomposer.calls, "decomposition must not run over budget")

	actions, err := f.recorder.RecentActions(ctx, 1)
	require.NoError(t, err)
	require.NotEmpty(t, actions)
	assert.Equal(t, string(DecisionWait), actions[0].Decision)
	assert.Equal(t, "Usage limit exceeded: session=97.0%, daily=41.0%", actions[0].Reason)
}

func TestLoopIdleTickRecordsNothing(t *testing.T) {
	f := newLoopFixture(t, tickAgent, "")
	ctx := context.Background()

	require.NoError(t, f.loop.Tick(ctx))

	actions, err := f.recorder.RecentActions(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestLoopDecompositionFailureMarksGoal(t *testing.T) {
	f := newLoopFixture(t, tickAgent, "")
	f.decomposer.err = fmt.Errorf("model answered prose")
	ctx := context.Background()
	g := f.submitGoal(t, "Undivisible goal")

	require.NoError(t, f.loop.Tick(ctx))

	refreshed, err := f.goals.Get(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, refreshed.Error)
	assert.Contains(t, *refreshed.Error, "model answered prose")

	actions, err := f.recorder.RecentActions(ctx, 1)
	require.NoError(t, err)
	require.NotEmpty(t, actions)
	assert.False(t, actions[0].Success)
}

func TestLoopTickMirrorsToLogFile(t *testing.T) {
	f := newLoopFixture(t, tickAgent, "")
	f.decomposer.cards = []DecomposedCard{{Title: "Only", Order: 1, Description: "single card"}}
	ctx := context.Background()
	f.submitGoal(t, "Goal with a mirrored log")

	require.NoError(t, f.loop.Tick(ctx))

	data, err := os.ReadFile(f.logPath)
	require.NoError(t, err)
	log := string(data)
	assert.Contains(t, log, "Tick decision")
	assert.Contains(t, log, "decision=decompose")
	assert.Contains(t, log, "Tick completed")
	assert.Contains(t, log, "success=true")
}

func TestLoopRecallParameters(t *testing.T) {
	f := newLoopFixture(t, tickAgent, "")
	f.learnings.hits = []vector.LearningHit{
		{ID: "l1", Learning: "Create the schema card before the API card", Score: 0.82, Outcome: "success"},
	}
	f.decomposer.cards = []DecomposedCard{{Title: "Only", Order: 1}}
	ctx := context.Background()
	g := f.submitGoal(t, "Goal that recalls prior work")

	require.NoError(t, f.loop.Tick(ctx))
	assert.Equal(t, 1, f.learnings.queries)
	assert.Equal(t, 3, f.learnings.lastLimit)
	assert.InDelta(t, 0.5, f.learnings.lastThreshold, 1e-9)

	hits := f.loop.query(ctx, g)
	require.Len(t, hits, 1)
	assert.Equal(t, "Create the schema card before the API card", hits[0].Learning)
}

func TestLoopStatus(t *testing.T) {
	f := newLoopFixture(t, tickAgent, "")
	ctx := context.Background()

	st := f.loop.Status()
	assert.False(t, st.Running)
	assert.Nil(t, st.LastTickAt)

	require.NoError(t, f.loop.Tick(ctx))
	st = f.loop.Status()
	require.NotNil(t, st.LastTickAt)
	assert.Equal(t, string(DecisionWait), st.LastDecision)
	assert.Equal(t, "No active or pending goals", st.LastReason)
}
