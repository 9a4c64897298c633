package workflow

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/ent"
	"github.com/codeready-toolchain/cardsmith/ent/execution"
	"github.com/codeready-toolchain/cardsmith/ent/executionlog"
	"github.com/codeready-toolchain/cardsmith/pkg/agent"
	"github.com/codeready-toolchain/cardsmith/pkg/config"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
	"github.com/codeready-toolchain/cardsmith/pkg/services"
	"github.com/codeready-toolchain/cardsmith/pkg/worktree"
	testdb "github.com/codeready-toolchain/cardsmith/test/database"
)

// scriptedAdapter replays canned events per request, keyed off the
// prompt's slash command.
type scriptedAdapter struct {
	mu     sync.Mutex
	runs   []agent.Request
	script func(req agent.Request) []agent.Event
}

func (a *scriptedAdapter) Run(ctx context.Context, req agent.Request) (<-chan agent.Event, error) {
	a.mu.Lock()
	a.runs = append(a.runs, req)
	a.mu.Unlock()

	ch := make(chan agent.Event, 16)
	go func() {
		defer close(ch)
		for _, ev := range a.script(req) {
			ch <- ev
		}
	}()
	return ch, nil
}

func (a *scriptedAdapter) requests() []agent.Request {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]agent.Request, len(a.runs))
	copy(out, a.runs)
	return out
}

// greenScript answers every stage successfully; planning writes a spec
// file via a tool call.
func greenScript(req agent.Request) []agent.Event {
	u := models.Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150, CostUSD: 0.01}
	if strings.HasPrefix(req.Prompt, string(models.CommandPlan)) {
		return []agent.Event{
			agent.TextEvent{Content: "Writing the plan"},
			agent.ToolUseEvent{Name: agent.ToolWriteFile, Input: map[string]interface{}{
				"path": "specs/feature.md", "content": "# Plan",
			}},
			agent.ResultEvent{Result: "Plan written to specs/feature.md", Usage: u},
		}
	}
	return []agent.Event{
		agent.TextEvent{Content: "working"},
		agent.ResultEvent{Result: "All good", Usage: u},
	}
}

type workflowFixture struct {
	cards      *services.CardService
	goals      *services.GoalService
	executions *services.ExecutionService
	engine     *Engine
	adapter    *scriptedAdapter
}

func newFixture(t *testing.T, script func(agent.Request) []agent.Event) *workflowFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	adapter := &scriptedAdapter{script: script}
	cards := services.NewCardService(client.Client)
	goals := services.NewGoalService(client.Client)
	executions := services.NewExecutionService(client.Client, nil)
	manager := worktree.NewManager(&config.WorktreeConfig{RepoPath: t.TempDir(), MaxConcurrent: 3})

	engine := NewEngine(EngineDeps{
		Cards:      cards,
		Goals:      goals,
		Executions: executions,
		Adapter:    adapter,
		Worktrees:  manager,
	})
	return &workflowFixture{
		cards:      cards,
		goals:      goals,
		executions: executions,
		engine:     engine,
		adapter:    adapter,
	}
}

func (f *workflowFixture) newCard(t *testing.T, title string) *ent.Card {
	t.Helper()
	c, err := f.cards.Create(context.Background(), models.CreateCardRequest{
		Title:       title,
		Description: "for workflow tests",
	})
	require.NoError(t, err)
	return c
}

func TestEngineExecuteCardFullPipeline(t *testing.T) {
	f := newFixture(t, greenScript)
	ctx := context.Background()
	c := f.newCard(t, "Build the widget")

	res := f.engine.ExecuteCard(ctx, c.ID)
	require.NoError(t, res.Err)
	assert.True(t, res.Success)
	assert.Equal(t, models.StageReviewing, res.Stage)

	// Card landed in done with spec path recorded.
	final, err := f.cards.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ColumnDone), final.Column)
	require.NotNil(t, final.SpecPath)
	assert.Equal(t, "specs/feature.md", *final.SpecPath)
	assert.NotNil(t, final.CompletedAt)

	// One execution per stage, all successful.
	history, err := f.executions.History(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, history, 4)
	for _, e := range history {
		assert.Equal(t, execution.StatusSuccess, e.Status)
	}

	// Implement/test/review prompts carry the spec path.
	reqs := f.adapter.requests()
	require.Len(t, reqs, 4)
	for _, r := range reqs[1:] {
		assert.Contains(t, r.Prompt, "specs/feature.md")
	}
}

func TestEngineExecuteStageLogsStream(t *testing.T) {
	f := newFixture(t, greenScript)
	ctx := context.Background()
	c := f.newCard(t, "Streamed card")

	res := f.engine.ExecuteStage(ctx, c.ID, models.StagePlanning, nil)
	require.NoError(t, res.Err)
	require.True(t, res.Success)
	assert.Equal(t, "specs/feature.md", res.SpecPath)

	logs, err := f.executions.Logs(ctx, res.ExecutionID)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, executionlog.LogTypeText, logs[0].LogType)
	assert.Equal(t, executionlog.LogTypeTool, logs[1].LogType)
	assert.Equal(t, "Using tool: write_file", logs[1].Content)
	assert.Equal(t, executionlog.LogTypeResult, logs[2].LogType)

	// Sequences are gapless from 1.
	for i, l := range logs {
		assert.Equal(t, i+1, l.Sequence)
	}
}

func TestEnginePlanningWithoutSpecFails(t *testing.T) {
	f := newFixture(t, func(req agent.Request) []agent.Event {
		return []agent.Event{
			agent.ResultEvent{Result: "I thought about it but wrote nothing"},
		}
	})
	ctx := context.Background()
	c := f.newCard(t, "Plan-less card")

	res := f.engine.ExecuteCard(ctx, c.ID)
	require.ErrorIs(t, res.Err, ErrMissingSpec)
	assert.False(t, res.Success)

	exec, err := f.executions.LatestExecution(ctx, c.ID, models.CommandPlan)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusError, exec.Status)

	// The card stays in the plan column for a retry.
	card, err := f.cards.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ColumnPlan), card.Column)
}

func TestEngineLaterStagesRequireSpec(t *testing.T) {
	f := newFixture(t, greenScript)
	ctx := context.Background()
	c := f.newCard(t, "Spec-less card")

	// Legal board moves can park a card in implement without a plan run.
	for _, col := range []models.Column{models.ColumnPlan, models.ColumnImplement} {
		_, _, err := f.cards.Move(ctx, c.ID, col)
		require.NoError(t, err)
	}

	res := f.engine.ExecuteCard(ctx, c.ID)
	require.ErrorIs(t, res.Err, ErrMissingSpec)
	assert.False(t, res.Success)

	// No agent run, no execution, column untouched.
	assert.Empty(t, f.adapter.requests())
	history, err := f.executions.History(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
	card, err := f.cards.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ColumnImplement), card.Column)

	// A manual spec override unblocks the stage.
	res2 := f.engine.ExecuteStage(ctx, c.ID, models.StageImplementing, &StageOverrides{SpecPath: "specs/manual.md"})
	require.NoError(t, res2.Err)
	require.True(t, res2.Success)
	reqs := f.adapter.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/implement specs/manual.md", reqs[0].Prompt)
}

func TestStagePromptShapes(t *testing.T) {
	spec := "specs/feature.md"
	c := &ent.Card{Title: "Widget", Description: "build it", SpecPath: &spec}
	assert.Equal(t, "/plan Widget: build it", stagePrompt(c, models.StagePlanning, nil))
	assert.Equal(t, "/implement specs/feature.md", stagePrompt(c, models.StageImplementing, nil))
	assert.Equal(t, "/test-implementation specs/feature.md", stagePrompt(c, models.StageTesting, nil))
	assert.Equal(t, "/review specs/feature.md", stagePrompt(c, models.StageReviewing, nil))
}

func TestEngineSpecPathFromResultText(t *testing.T) {
	f := newFixture(t, func(req agent.Request) []agent.Event {
		if strings.HasPrefix(req.Prompt, string(models.CommandPlan)) {
			return []agent.Event{
				agent.ResultEvent{Result: "Specification saved at specs/login-flow.md for review"},
			}
		}
		return []agent.Event{agent.ResultEvent{Result: "ok"}}
	})
	ctx := context.Background()
	c := f.newCard(t, "Regex spec card")

	res := f.engine.ExecuteStage(ctx, c.ID, models.StagePlanning, nil)
	require.NoError(t, res.Err)
	assert.Equal(t, "specs/login-flow.md", res.SpecPath)
}

func TestEngineTestFailureSpawnsFixCard(t *testing.T) {
	f := newFixture(t, func(req agent.Request) []agent.Event {
		if strings.HasPrefix(req.Prompt, string(models.CommandPlan)) {
			return greenScript(req)
		}
		if strings.HasPrefix(req.Prompt, string(models.CommandTest)) {
			return []agent.Event{
				agent.TextEvent{Content: "Ran 12 tests"},
				agent.TextEvent{Content: "--- FAIL: TestCheckout (0.01s)"},
				agent.ResultEvent{Result: "TESTS FAILED: checkout returns wrong total"},
			}
		}
		return []agent.Event{agent.ResultEvent{Result: "ok"}}
	})
	ctx := context.Background()
	c := f.newCard(t, "Checkout flow")

	res := f.engine.ExecuteCard(ctx, c.ID)
	assert.False(t, res.Success)
	assert.True(t, res.TestFailed)
	require.NotEmpty(t, res.FixCardID)

	// Parent stays in test; the fix-card carries the failure excerpt.
	parent, err := f.cards.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ColumnTest), parent.Column)

	fix, err := f.cards.Get(ctx, res.FixCardID)
	require.NoError(t, err)
	assert.True(t, fix.IsFixCard)
	require.NotNil(t, fix.ParentCardID)
	assert.Equal(t, c.ID, *fix.ParentCardID)
	require.NotNil(t, fix.TestErrorContext)
	assert.Contains(t, *fix.TestErrorContext, "--- FAIL: TestCheckout")

	// The failed test execution is visible to the board snapshot logic.
	exec, err := f.executions.LatestExecution(ctx, c.ID, models.CommandTest)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusError, exec.Status)

	// A second run reuses the active fix-card instead of spawning another.
	res2 := f.engine.ExecuteStage(ctx, c.ID, models.StageTesting, nil)
	assert.True(t, res2.TestFailed)
	assert.Equal(t, res.FixCardID, res2.FixCardID)
}

func TestEngineAgentErrorFailsStage(t *testing.T) {
	f := newFixture(t, func(req agent.Request) []agent.Event {
		if strings.HasPrefix(req.Prompt, string(models.CommandPlan)) {
			return greenScript(req)
		}
		return []agent.Event{agent.ErrorEvent{Message: "Gemini CLI error: quota exhausted"}}
	})
	ctx := context.Background()
	c := f.newCard(t, "Doomed card")

	res := f.engine.ExecuteCard(ctx, c.ID)
	require.Error(t, res.Err)
	assert.Equal(t, models.StageImplementing, res.Stage)
	assert.Contains(t, res.Err.Error(), "quota exhausted")

	exec, err := f.executions.LatestExecution(ctx, c.ID, models.CommandImplement)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusError, exec.Status)
	require.NotNil(t, exec.WorkflowError)
	assert.Contains(t, *exec.WorkflowError, "quota exhausted")
}

func TestEngineGoalUsageAccounting(t *testing.T) {
	f := newFixture(t, greenScript)
	ctx := context.Background()

	g, err := f.goals.Create(ctx, models.CreateGoalRequest{Description: "Usage goal"})
	require.NoError(t, err)
	c, err := f.cards.Create(ctx, models.CreateCardRequest{
		Title:  "Accounted card",
		GoalID: g.ID,
	})
	require.NoError(t, err)

	res := f.engine.ExecuteCard(ctx, c.ID)
	require.NoError(t, res.Err)

	// Four stages at 150 tokens / $0.01 each.
	goal, err := f.goals.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 600, goal.TotalTokens)
	assert.InDelta(t, 0.04, goal.TotalCostUsd, 1e-9)
}

func TestEngineTerminalCardIsNoOp(t *testing.T) {
	f := newFixture(t, greenScript)
	ctx := context.Background()
	c := f.newCard(t, "Finished card")

	res := f.engine.ExecuteCard(ctx, c.ID)
	require.NoError(t, res.Err)

	noop := f.engine.ExecuteCard(ctx, c.ID)
	assert.True(t, noop.NoOp)
	assert.True(t, noop.Success)
	assert.Empty(t, f.adapter.requests()[4:])
}

func TestEngineResumesFromCurrentColumn(t *testing.T) {
	f := newFixture(t, greenScript)
	ctx := context.Background()
	c := f.newCard(t, "Resumable card")

	res := f.engine.ExecuteStage(ctx, c.ID, models.StagePlanning, nil)
	require.True(t, res.Success)

	// Resuming runs implement, test, review only.
	full := f.engine.ExecuteCard(ctx, c.ID)
	require.NoError(t, full.Err)
	assert.True(t, full.Success)
	assert.Len(t, f.adapter.requests(), 4)
}

func TestEngineStageOverrides(t *testing.T) {
	f := newFixture(t, greenScript)
	ctx := context.Background()
	c := f.newCard(t, "Override card")

	res := f.engine.ExecuteStage(ctx, c.ID, models.StagePlanning, &StageOverrides{
		Title:       "Different title",
		Description: "Different description",
		Model:       "haiku-4.5",
	})
	require.True(t, res.Success)

	reqs := f.adapter.requests()
	require.Len(t, reqs, 1)
	assert.Contains(t, reqs[0].Prompt, "Different title")
	assert.Contains(t, reqs[0].Prompt, "Different description")
	assert.Equal(t, "haiku-4.5", reqs[0].ModelProfile)

	exec, err := f.executions.LatestExecution(ctx, c.ID, models.CommandPlan)
	require.NoError(t, err)
	assert.Equal(t, "haiku-4.5", exec.Model)
}

func TestStagePromptIncludesFixContext(t *testing.T) {
	errCtx := "--- FAIL: TestCheckout"
	c := &ent.Card{
		Title:            "[FIX] Checkout flow",
		Description:      "Fix test failures in: Checkout flow",
		IsFixCard:        true,
		TestErrorContext: &errCtx,
	}
	p := stagePrompt(c, models.StagePlanning, nil)
	assert.True(t, strings.HasPrefix(p, "/plan [FIX] Checkout flow:"))
	assert.Contains(t, p, "Failing test output:")
	assert.Contains(t, p, "--- FAIL: TestCheckout")
}

func TestTestFailureContextDetection(t *testing.T) {
	green := &runOutcome{result: "All 34 tests passed"}
	assert.Empty(t, testFailureContext(green))

	red := &runOutcome{result: "AssertionError: expected 3, got 4"}
	assert.Contains(t, testFailureContext(red), "AssertionError")

	errLine := &runOutcome{result: "Error: cannot connect to database"}
	assert.Contains(t, testFailureContext(errLine), "cannot connect")

	agentErr := &runOutcome{errMsg: "Gemini CLI error: boom"}
	assert.Contains(t, testFailureContext(agentErr), "boom")
}
