// Package workflow drives cards through the SDLC stage pipeline:
// planning, implementing, testing, reviewing. Each stage is one agent
// run recorded as an execution with a sequenced log stream. A failed
// test stage spawns a fix-card instead of advancing.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/codeready-toolchain/cardsmith/ent"
	"github.com/codeready-toolchain/cardsmith/ent/executionlog"
	"github.com/codeready-toolchain/cardsmith/pkg/agent"
	"github.com/codeready-toolchain/cardsmith/pkg/events"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
	"github.com/codeready-toolchain/cardsmith/pkg/services"
	"github.com/codeready-toolchain/cardsmith/pkg/usage"
	"github.com/codeready-toolchain/cardsmith/pkg/worktree"
)

// failureContextLimit caps the test-failure excerpt carried onto a
// fix-card.
const failureContextLimit = 4 * 1024

// EventSink is the subset of the event publisher the engine needs.
// *events.EventPublisher satisfies it.
type EventSink interface {
	PublishCardCreated(ctx context.Context, payload events.CardCreatedPayload) error
	PublishCardMoved(ctx context.Context, payload events.CardMovedPayload) error
	PublishExecutionLog(ctx context.Context, payload events.ExecutionLogPayload) error
}

// StageOverrides optionally replaces prompt inputs for a manually
// triggered stage run. Zero values mean "use the card's own".
type StageOverrides struct {
	Title       string
	Description string
	SpecPath    string
	Model       string
}

// StageResult is the outcome of one stage run.
type StageResult struct {
	CardID      string
	Stage       models.Stage
	Success     bool
	NoOp        bool
	Result      string
	SpecPath    string
	ExecutionID string
	TestFailed  bool
	FixCardID   string
	Err         error
}

// EngineDeps bundles the engine's collaborators.
type EngineDeps struct {
	Cards        *services.CardService
	Goals        *services.GoalService
	Executions   *services.ExecutionService
	Adapter      agent.Adapter
	Worktrees    *worktree.Manager
	Publisher    EventSink
	Tracker      *usage.Tracker
	StageTimeout time.Duration
}

// Engine executes SDLC stages for cards.
type Engine struct {
	cards        *services.CardService
	goals        *services.GoalService
	executions   *services.ExecutionService
	adapter      agent.Adapter
	worktrees    *worktree.Manager
	publisher    EventSink
	tracker      *usage.Tracker
	stageTimeout time.Duration
}

// NewEngine builds a workflow engine. Publisher and Tracker may be nil;
// the engine then skips event broadcast and usage accounting.
func NewEngine(d EngineDeps) *Engine {
	if d.StageTimeout <= 0 {
		d.StageTimeout = 30 * time.Minute
	}
	return &Engine{
		cards:        d.Cards,
		goals:        d.Goals,
		executions:   d.Executions,
		adapter:      d.Adapter,
		worktrees:    d.Worktrees,
		publisher:    d.Publisher,
		tracker:      d.Tracker,
		stageTimeout: d.StageTimeout,
	}
}

// ExecuteCard runs the card through its remaining stages, resuming from
// the column it currently occupies. It stops at the first failed stage;
// after a passed review the card moves to done. The returned result is
// the last stage run, or a NoOp result for workflow-terminal cards.
func (e *Engine) ExecuteCard(ctx context.Context, cardID string) *StageResult {
	c, err := e.cards.Get(ctx, cardID)
	if err != nil {
		return &StageResult{CardID: cardID, Err: fmt.Errorf("failed to load card: %w", err)}
	}

	first, ok := models.FirstStageFrom(models.Column(c.Column))
	if !ok {
		return &StageResult{CardID: cardID, NoOp: true, Success: true}
	}

	var last *StageResult
	for _, stage := range models.StagesFrom(first) {
		if err := ctx.Err(); err != nil {
			return &StageResult{CardID: cardID, Stage: stage, Err: err}
		}
		last = e.ExecuteStage(ctx, cardID, stage, nil)
		if !last.Success {
			return last
		}
	}

	moved, from, err := e.cards.Move(ctx, cardID, models.ColumnDone)
	if err != nil {
		last.Success = false
		last.Err = fmt.Errorf("failed to move card to done: %w", err)
		return last
	}
	e.publishMoved(ctx, moved, from, models.ColumnDone)

	slog.Info("Card completed full workflow", "card_id", cardID)
	return last
}

// ExecuteStage runs one stage for a card: moves it to the stage's
// column, creates the execution, streams the agent run into the log,
// and applies the stage's side effects (spec path, diff stats,
// fix-card spawning, usage accounting).
func (e *Engine) ExecuteStage(ctx context.Context, cardID string, stage models.Stage, ov *StageOverrides) *StageResult {
	res := &StageResult{CardID: cardID, Stage: stage}

	c, err := e.cards.Get(ctx, cardID)
	if err != nil {
		res.Err = fmt.Errorf("failed to load card: %w", err)
		return res
	}

	// Post-plan stages run against the planned spec; without one the
	// stage fails before any side effect (no move, no execution).
	if stage != models.StagePlanning && resolveSpecPath(c, ov) == "" {
		res.Err = ErrMissingSpec
		return res
	}

	workdir, baseBranch, err := e.ensureWorkspace(ctx, c)
	if err != nil {
		res.Err = err
		return res
	}

	if moved, from, err := e.cards.Move(ctx, cardID, models.ColumnForStage(stage)); err != nil {
		res.Err = fmt.Errorf("failed to move card into %s: %w", models.ColumnForStage(stage), err)
		return res
	} else if from != models.ColumnForStage(stage) {
		e.publishMoved(ctx, moved, from, models.ColumnForStage(stage))
	}

	prompt := stagePrompt(c, stage, ov)
	model := models.ModelForStage(c, stage)
	if ov != nil && ov.Model != "" {
		model = ov.Model
	}

	exec, err := e.executions.Create(ctx, cardID, models.CommandForStage(stage), stage, model, prompt)
	if err != nil {
		res.Err = fmt.Errorf("failed to create execution: %w", err)
		return res
	}
	res.ExecutionID = exec.ID

	slog.Info("Stage execution started",
		"card_id", cardID, "stage", stage, "model", model, "execution_id", exec.ID)

	runCtx, cancel := context.WithTimeout(ctx, e.stageTimeout)
	defer cancel()

	out, err := e.runAgent(runCtx, exec.ID, cardID, agent.Request{
		Prompt:       prompt,
		Workdir:      workdir,
		ModelProfile: model,
	})
	if err != nil {
		e.failExecution(exec.ID, cardID, err.Error())
		res.Err = err
		return res
	}

	e.recordUsage(ctx, c, out.usage)

	if stage == models.StageTesting {
		return e.finishTestStage(ctx, c, exec.ID, out, res)
	}

	if out.errMsg != "" {
		e.failExecution(exec.ID, cardID, out.errMsg)
		res.Err = fmt.Errorf("%s stage failed: %s", stage, out.errMsg)
		return res
	}

	if stage == models.StagePlanning {
		specPath := extractSpecPath(out)
		if specPath == "" {
			e.failExecution(exec.ID, cardID, ErrMissingSpec.Error())
			res.Err = ErrMissingSpec
			return res
		}
		if err := e.cards.SetSpecPath(ctx, cardID, specPath); err != nil {
			e.failExecution(exec.ID, cardID, err.Error())
			res.Err = fmt.Errorf("failed to store spec path: %w", err)
			return res
		}
		res.SpecPath = specPath
	}

	if err := e.executions.Complete(ctx, exec.ID, out.result, out.usage); err != nil {
		res.Err = fmt.Errorf("failed to complete execution: %w", err)
		return res
	}

	if stage == models.StageImplementing {
		e.captureDiffStats(ctx, cardID, workdir, baseBranch)
	}

	res.Success = true
	res.Result = out.result
	return res
}

// finishTestStage closes out a test run. Failure markers (or an agent
// error) fail the execution and spawn an idempotent fix-card; the card
// stays in the test column.
func (e *Engine) finishTestStage(ctx context.Context, c *ent.Card, execID string, out *runOutcome, res *StageResult) *StageResult {
	failureCtx := testFailureContext(out)
	if failureCtx == "" {
		if err := e.executions.Complete(ctx, execID, out.result, out.usage); err != nil {
			res.Err = fmt.Errorf("failed to complete execution: %w", err)
			return res
		}
		res.Success = true
		res.Result = out.result
		return res
	}

	e.failExecution(execID, c.ID, "Tests failed")
	res.TestFailed = true

	fix, err := e.cards.CreateFixCard(ctx, c.ID, "Fix test failures in: "+c.Title, failureCtx)
	if err != nil {
		res.Err = fmt.Errorf("tests failed and fix-card creation failed: %w", err)
		return res
	}
	res.FixCardID = fix.ID
	if e.publisher != nil {
		if err := e.publisher.PublishCardCreated(ctx, events.NewCardCreatedPayload(fix)); err != nil {
			slog.Warn("Failed to publish fix-card creation", "card_id", fix.ID, "error", err)
		}
	}

	slog.Info("Test stage failed, fix-card spawned",
		"card_id", c.ID, "fix_card_id", fix.ID)
	return res
}

// runOutcome accumulates one agent run.
type runOutcome struct {
	result     string
	usage      models.Usage
	errMsg     string
	toolPaths  []string
	transcript strings.Builder
}

// runAgent streams an agent run into the execution log. The returned
// error covers infrastructure problems starting the run; agent-level
// failures land in outcome.errMsg.
func (e *Engine) runAgent(ctx context.Context, execID, cardID string, req agent.Request) (*runOutcome, error) {
	stream, err := e.adapter.Run(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to start agent: %w", err)
	}

	out := &runOutcome{}
	for ev := range stream {
		switch v := ev.(type) {
		case agent.TextEvent:
			out.transcript.WriteString(v.Content)
			out.transcript.WriteString("\n")
			e.appendLog(ctx, execID, cardID, executionlog.LogTypeText, v.Content)
		case agent.ToolUseEvent:
			if path := toolFilePath(v); path != "" {
				out.toolPaths = append(out.toolPaths, path)
			}
			e.appendLog(ctx, execID, cardID, executionlog.LogTypeTool, "Using tool: "+v.Name)
		case agent.ResultEvent:
			out.result = v.Result
			out.usage = v.Usage
			e.appendLog(ctx, execID, cardID, executionlog.LogTypeResult, v.Result)
		case agent.ErrorEvent:
			out.errMsg = v.Message
			e.appendLog(ctx, execID, cardID, executionlog.LogTypeError, v.Message)
		}
	}
	return out, nil
}

// appendLog persists one log line and broadcasts it. Log failures are
// logged, never fatal to the stage.
func (e *Engine) appendLog(ctx context.Context, execID, cardID string, logType executionlog.LogType, content string) {
	entry, err := e.executions.AppendLog(ctx, execID, logType, content)
	if err != nil {
		slog.Warn("Failed to append execution log",
			"execution_id", execID, "log_type", logType, "error", err)
		return
	}
	if e.publisher != nil {
		if err := e.publisher.PublishExecutionLog(ctx, events.NewExecutionLogPayload(cardID, entry)); err != nil {
			slog.Warn("Failed to publish execution log", "execution_id", execID, "error", err)
		}
	}
}

func (e *Engine) failExecution(execID, cardID string, msg string) {
	if err := e.executions.Fail(context.Background(), execID, msg); err != nil {
		slog.Error("Failed to mark execution as failed",
			"execution_id", execID, "card_id", cardID, "error", err)
	}
}

// recordUsage books the run's tokens against the session tracker and
// the card's goal. Soft-fails: usage accounting never breaks a stage.
func (e *Engine) recordUsage(ctx context.Context, c *ent.Card, u models.Usage) {
	if u.TotalTokens == 0 && u.CostUSD == 0 {
		return
	}
	if e.tracker != nil {
		e.tracker.Record(u.TotalTokens, u.CostUSD)
	}
	if e.goals != nil && c.GoalID != nil {
		if err := e.goals.AddUsage(ctx, *c.GoalID, u.TotalTokens, u.CostUSD); err != nil {
			slog.Warn("Failed to add usage to goal", "goal_id", *c.GoalID, "error", err)
		}
	}
}

// ensureWorkspace resolves the card's working directory, creating a
// worktree on first use. Outside a git repo every card shares the
// repo path directly.
func (e *Engine) ensureWorkspace(ctx context.Context, c *ent.Card) (string, string, error) {
	if e.worktrees == nil || !e.worktrees.IsGitRepo() {
		var path string
		if e.worktrees != nil {
			path = e.worktrees.RepoPath()
		}
		return path, "", nil
	}

	if c.WorktreePath != nil && *c.WorktreePath != "" {
		base := ""
		if c.BaseBranch != nil {
			base = *c.BaseBranch
		}
		return *c.WorktreePath, base, nil
	}

	ws, err := e.worktrees.Create(ctx, c.ID, e.worktrees.DefaultBranch(ctx))
	if err != nil {
		return "", "", fmt.Errorf("failed to create worktree: %w", err)
	}
	if err := e.cards.SetWorkspace(ctx, c.ID, ws.Branch, ws.Path, ws.Base); err != nil {
		return "", "", fmt.Errorf("failed to store workspace: %w", err)
	}
	slog.Info("Worktree created", "card_id", c.ID, "branch", ws.Branch, "path", ws.Path)
	return ws.Path, ws.Base, nil
}

// captureDiffStats snapshots the implement stage's change footprint.
func (e *Engine) captureDiffStats(ctx context.Context, cardID, workdir, baseBranch string) {
	if e.worktrees == nil || !e.worktrees.IsGitRepo() || baseBranch == "" {
		return
	}
	stats, err := e.worktrees.DiffStats(ctx, workdir, baseBranch)
	if err != nil {
		slog.Warn("Failed to compute diff stats", "card_id", cardID, "error", err)
		return
	}
	if err := e.cards.SetDiffStats(ctx, cardID, *stats); err != nil {
		slog.Warn("Failed to store diff stats", "card_id", cardID, "error", err)
	}
}

func (e *Engine) publishMoved(ctx context.Context, c *ent.Card, from, to models.Column) {
	if e.publisher == nil || c == nil {
		return
	}
	if err := e.publisher.PublishCardMoved(ctx, events.NewCardMovedPayload(c, from, to)); err != nil {
		slog.Warn("Failed to publish card move", "card_id", c.ID, "error", err)
	}
}

// resolveSpecPath picks the spec path a stage runs against: a manual
// override wins over the card's stored one.
func resolveSpecPath(c *ent.Card, ov *StageOverrides) string {
	if ov != nil && ov.SpecPath != "" {
		return ov.SpecPath
	}
	if c.SpecPath != nil {
		return *c.SpecPath
	}
	return ""
}

// stagePrompt renders the slash-command prompt for a stage. Planning
// carries the card's title and description; every later stage is the
// short form `<command> <specPath>`.
func stagePrompt(c *ent.Card, stage models.Stage, ov *StageOverrides) string {
	var b strings.Builder
	if stage == models.StagePlanning {
		title := c.Title
		description := c.Description
		if ov != nil {
			if ov.Title != "" {
				title = ov.Title
			}
			if ov.Description != "" {
				description = ov.Description
			}
		}
		fmt.Fprintf(&b, "%s %s: %s", models.CommandForStage(stage), title, description)
	} else {
		fmt.Fprintf(&b, "%s %s", models.CommandForStage(stage), resolveSpecPath(c, ov))
	}
	if c.IsFixCard && c.TestErrorContext != nil && *c.TestErrorContext != "" {
		fmt.Fprintf(&b, "\n\nFailing test output:\n%s", *c.TestErrorContext)
	}
	return b.String()
}

// toolFilePath pulls the target path out of a file-writing tool call.
func toolFilePath(ev agent.ToolUseEvent) string {
	if ev.Name != agent.ToolWriteFile && ev.Name != agent.ToolEditFile {
		return ""
	}
	path, _ := ev.Input["path"].(string)
	return path
}

var specPathPattern = regexp.MustCompile(`specs/[A-Za-z0-9_\-./]*\.md`)

// extractSpecPath finds the specification file a planning run produced:
// a file-writing tool call under specs/ wins, the first specs/*.md
// mention in the transcript is the fallback.
func extractSpecPath(out *runOutcome) string {
	for _, p := range out.toolPaths {
		if strings.HasPrefix(p, "specs/") && strings.HasSuffix(p, ".md") {
			return p
		}
	}
	text := out.transcript.String() + "\n" + out.result
	return specPathPattern.FindString(text)
}

// testFailureMarkers are matched line-wise against a test run's output.
var testFailureMarkers = []string{
	"TEST FAILED",
	"TESTS FAILED",
	"FAILED (",
	"AssertionError",
	"--- FAIL",
	"✗",
}

// testFailureContext extracts the failing excerpt of a test run, empty
// when the run looks green.
func testFailureContext(out *runOutcome) string {
	var lines []string
	if out.errMsg != "" {
		lines = append(lines, out.errMsg)
	}
	text := out.transcript.String() + "\n" + out.result
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "Error:") {
			lines = append(lines, trimmed)
			continue
		}
		for _, marker := range testFailureMarkers {
			if strings.Contains(trimmed, marker) {
				lines = append(lines, trimmed)
				break
			}
		}
	}
	if len(lines) == 0 {
		return ""
	}
	joined := strings.Join(lines, "\n")
	if len(joined) > failureContextLimit {
		joined = joined[:failureContextLimit]
	}
	return joined
}
