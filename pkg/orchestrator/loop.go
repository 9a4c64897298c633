package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/codeready-toolchain/cardsmith/ent"
	"github.com/codeready-toolchain/cardsmith/ent/goal"
	"github.com/codeready-toolchain/cardsmith/ent/memoryentry"
	"github.com/codeready-toolchain/cardsmith/ent/orchestratorlog"
	"github.com/codeready-toolchain/cardsmith/pkg/config"
	"github.com/codeready-toolchain/cardsmith/pkg/events"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
	"github.com/codeready-toolchain/cardsmith/pkg/services"
	"github.com/codeready-toolchain/cardsmith/pkg/usage"
	"github.com/codeready-toolchain/cardsmith/pkg/vector"
	"github.com/codeready-toolchain/cardsmith/pkg/workflow"
	"github.com/codeready-toolchain/cardsmith/pkg/worktree"
)

// learningQueryLimit bounds how many long-term learnings the QUERY
// phase retrieves per tick; learningQueryThreshold is the minimum
// similarity score for a recall hit.
const (
	learningQueryLimit     = 3
	learningQueryThreshold = 0.5
)

// LearningStore is the long-term memory surface the loop needs.
// *vector.Store satisfies it; tests use an in-memory fake.
type LearningStore interface {
	StoreLearning(ctx context.Context, goalDescription, learning string, meta vector.LearningMeta) (string, error)
	Query(ctx context.Context, text string, limit int, threshold float64, outcomeFilter string) ([]vector.LearningHit, error)
}

// LoopDeps bundles the loop's collaborators. Learnings, Publisher and
// Worktrees may be nil; the loop then skips long-term memory,
// broadcasts and checkout back-pressure respectively.
type LoopDeps struct {
	Config     *config.OrchestratorConfig
	Memory     *services.MemoryService
	Recorder   *services.OrchestratorRecorder
	Goals      *services.GoalService
	Cards      *services.CardService
	Executions *services.ExecutionService
	Budget     *usage.Budget
	Runner     *workflow.Runner
	Decomposer Decomposer
	Learnings  LearningStore
	Publisher  workflow.EventSink
	Worktrees  *worktree.Manager
}

// Status is the loop's live state for the system endpoint.
type Status struct {
	Running      bool          `json:"running"`
	TickInFlight bool          `json:"tickInFlight"`
	LastTickAt   *time.Time    `json:"lastTickAt,omitempty"`
	LastDecision string        `json:"lastDecision,omitempty"`
	LastReason   string        `json:"lastReason,omitempty"`
	Usage        *usage.Status `json:"usage,omitempty"`
}

// Loop is the autonomous orchestrator loop.
type Loop struct {
	cfg        *config.OrchestratorConfig
	memory     *services.MemoryService
	recorder   *services.OrchestratorRecorder
	goals      *services.GoalService
	cards      *services.CardService
	executions *services.ExecutionService
	budget     *usage.Budget
	runner     *workflow.Runner
	decomposer Decomposer
	learnings  LearningStore
	publisher  workflow.EventSink
	worktrees  *worktree.Manager

	// tickLog mirrors per-tick records to ORCHESTRATOR_LOG_FILE.
	tickLog *slog.Logger
	logFile *os.File

	running  atomic.Bool
	inFlight atomic.Bool
	cancel   context.CancelFunc
	done     chan struct{}

	mu           sync.Mutex
	lastTick     time.Time
	lastDecision ThinkResult
}

// NewLoop builds the loop from its dependencies. When the config names
// an orchestrator log file, per-tick records are additionally appended
// there through a dedicated handler.
func NewLoop(d LoopDeps) *Loop {
	l := &Loop{
		cfg:        d.Config,
		memory:     d.Memory,
		recorder:   d.Recorder,
		goals:      d.Goals,
		cards:      d.Cards,
		executions: d.Executions,
		budget:     d.Budget,
		runner:     d.Runner,
		decomposer: d.Decomposer,
		learnings:  d.Learnings,
		publisher:  d.Publisher,
		worktrees:  d.Worktrees,
	}
	if d.Config.LogFile != "" {
		f, err := os.OpenFile(d.Config.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			slog.Warn("Failed to open orchestrator log file", "path", d.Config.LogFile, "error", err)
		} else {
			l.logFile = f
			l.tickLog = slog.New(slog.NewTextHandler(f, nil))
		}
	}
	return l
}

// Start launches the tick loop. A tick that finds the previous one
// still running is skipped, never queued.
func (l *Loop) Start(ctx context.Context) {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.done = make(chan struct{})

	go func() {
		defer close(l.done)
		slog.Info("Orchestrator loop started", "interval", l.cfg.LoopInterval)
		l.logInfo(runCtx, "Orchestrator started", nil, "")

		ticker := time.NewTicker(l.cfg.LoopInterval)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				if !l.inFlight.CompareAndSwap(false, true) {
					slog.Debug("Skipping tick, previous tick still running")
					continue
				}
				if err := l.Tick(runCtx); err != nil && runCtx.Err() == nil {
					slog.Error("Tick failed", "error", err)
					l.logError(runCtx, fmt.Sprintf("Loop error: %v", err), nil, "")
				}
				l.inFlight.Store(false)
			}
		}
	}()
}

// Stop halts the loop and waits for an in-flight tick to finish.
func (l *Loop) Stop() {
	if !l.running.CompareAndSwap(true, false) {
		return
	}
	l.cancel()
	<-l.done
	l.logInfo(context.Background(), "Orchestrator stopped", nil, "")
	if l.logFile != nil {
		if err := l.logFile.Close(); err != nil {
			slog.Warn("Failed to close orchestrator log file", "error", err)
		}
	}
	slog.Info("Orchestrator loop stopped")
}

// Status reports the loop's live state.
func (l *Loop) Status() Status {
	l.mu.Lock()
	lastTick := l.lastTick
	last := l.lastDecision
	l.mu.Unlock()

	st := Status{
		Running:      l.running.Load(),
		TickInFlight: l.inFlight.Load(),
		LastDecision: string(last.Decision),
		LastReason:   last.Reason,
		Usage:        l.budget.Last(),
	}
	if !lastTick.IsZero() {
		t := lastTick
		st.LastTickAt = &t
	}
	return st
}

// Tick runs one full cycle: READ, QUERY, THINK, ACT, RECORD, LEARN.
// Exported so tests (and a future manual trigger) can drive the loop
// without the ticker.
func (l *Loop) Tick(ctx context.Context) error {
	started := time.Now()

	// READ
	in, activeGoal, err := l.read(ctx)
	if err != nil {
		return err
	}

	// QUERY
	in.Learnings = l.query(ctx, activeGoal)

	// THINK
	res := Think(in)
	l.mu.Lock()
	l.lastTick = started
	l.lastDecision = res
	l.mu.Unlock()

	slog.Info("Tick decision", "decision", res.Decision, "reason", res.Reason)
	if l.tickLog != nil {
		l.tickLog.Info("Tick decision",
			"decision", res.Decision, "reason", res.Reason, "goal_id", res.GoalID)
	}
	l.logInfo(ctx, fmt.Sprintf("Decision: %s - %s", res.Decision, res.Reason), res.Context, res.GoalID)

	if res.Decision == DecisionWait && res.GoalID == "" && in.Usage.IsSafe {
		// Idle board: nothing to record or learn.
		return nil
	}

	l.recordMemory(ctx, memoryentry.EntryTypeDecision,
		fmt.Sprintf("Decision %s: %s", res.Decision, res.Reason), res.Context, res.GoalID)

	// ACT
	act := l.act(ctx, res)

	// RECORD
	l.record(ctx, res, act)

	// LEARN
	if act.learning != "" {
		l.learn(ctx, res, act)
	}

	slog.Info("Tick completed", "decision", res.Decision, "success", act.success,
		"duration", time.Since(started))
	if l.tickLog != nil {
		l.tickLog.Info("Tick completed",
			"decision", res.Decision, "success", act.success, "error", act.errMsg)
	}
	return nil
}

// read assembles the pure THINK input from storage.
func (l *Loop) read(ctx context.Context) (ThinkInput, *ent.Goal, error) {
	in := ThinkInput{Usage: l.budget.Check(ctx)}

	if _, err := l.memory.ContextSummary(ctx); err != nil {
		slog.Warn("Failed to read short-term memory", "error", err)
	}

	if l.worktrees != nil {
		in.WorktreeLimit = l.worktrees.MaxConcurrent()
		if count, err := l.worktrees.Count(ctx); err == nil {
			in.WorktreeCount = count
		} else {
			slog.Warn("Failed to count worktrees", "error", err)
		}
	}

	active, err := l.goals.ActiveGoal(ctx)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		return in, nil, fmt.Errorf("failed to load active goal: %w", err)
	}
	if active != nil {
		in.ActiveGoalID = active.ID
		in.Cards, err = l.cards.Snapshot(ctx, active.ID)
		if err != nil {
			return in, nil, fmt.Errorf("failed to snapshot cards: %w", err)
		}
		return in, active, nil
	}

	pending, err := l.goals.PendingGoals(ctx)
	if err != nil {
		return in, nil, fmt.Errorf("failed to load pending goals: %w", err)
	}
	if len(pending) > 0 {
		in.PendingGoalID = pending[0].ID
		in.PendingGoalDescription = pending[0].Description
		return in, pending[0], nil
	}
	return in, nil, nil
}

// query retrieves related long-term learnings for the goal in play and
// hands them to THINK as advisory context. Failures never stop the
// tick; they just mean an empty recall.
func (l *Loop) query(ctx context.Context, g *ent.Goal) []vector.LearningHit {
	if l.learnings == nil || g == nil {
		return nil
	}
	hits, err := l.learnings.Query(ctx, g.Description, learningQueryLimit, learningQueryThreshold, "")
	if err != nil {
		slog.Warn("Failed to query long-term memory", "error", err)
		return nil
	}
	if len(hits) > 0 {
		slog.Info("Related learnings found", "goal_id", g.ID, "count", len(hits))
		l.logInfo(ctx, fmt.Sprintf("Found %d related learnings", len(hits)),
			map[string]interface{}{"top_score": hits[0].Score}, g.ID)
	}
	return hits
}

// actResult is the ACT phase outcome handed to RECORD and LEARN.
type actResult struct {
	success  bool
	errMsg   string
	learning string
	cardIDs  []string
}

func (l *Loop) act(ctx context.Context, res ThinkResult) actResult {
	switch res.Decision {
	case DecisionWait:
		return actResult{success: true}
	case DecisionDecompose:
		return l.actDecompose(ctx, res.GoalID)
	case DecisionExecuteCard, DecisionExecuteCardsParallel:
		return l.actExecute(ctx, res.CardIDs)
	case DecisionCreateFix:
		return l.actCreateFix(ctx, res.CardIDs)
	case DecisionCompleteGoal:
		return l.actCompleteGoal(ctx, res.GoalID)
	}
	return actResult{errMsg: fmt.Sprintf("unknown decision %q", res.Decision)}
}

// actDecompose activates the goal if needed, asks the decomposer for
// the card breakdown, and creates the cards with dependency orders
// resolved to card ids.
func (l *Loop) actDecompose(ctx context.Context, goalID string) actResult {
	g, err := l.goals.Get(ctx, goalID)
	if err != nil {
		return actResult{errMsg: fmt.Sprintf("goal not found: %v", err)}
	}
	if g.Status == goal.StatusPending {
		if err := l.goals.UpdateStatus(ctx, goalID, goal.StatusActive); err != nil {
			return actResult{errMsg: fmt.Sprintf("failed to activate goal: %v", err)}
		}
	}

	decomposeCtx, cancel := context.WithTimeout(ctx, l.cfg.DecomposeTimeout)
	defer cancel()
	decomposed, err := l.decomposer.Decompose(decomposeCtx, g.Description, l.cfg.MaxCardsPerGoal)
	if err != nil {
		msg := fmt.Sprintf("Decomposition failed: %v", err)
		l.logError(ctx, msg, nil, goalID)
		if err := l.goals.SetError(ctx, goalID, msg); err != nil {
			slog.Warn("Failed to store goal error", "goal_id", goalID, "error", err)
		}
		return actResult{errMsg: msg}
	}

	// Creation order follows the decomposition order, so every
	// dependency is an already-created card.
	sort.Slice(decomposed, func(i, j int) bool { return decomposed[i].Order < decomposed[j].Order })
	orderToID := make(map[int]string, len(decomposed))
	var created []string
	for i, dc := range decomposed {
		deps := make([]string, 0, len(dc.Dependencies))
		for _, depOrder := range dc.Dependencies {
			if id, ok := orderToID[depOrder]; ok {
				deps = append(deps, id)
			}
		}
		c, err := l.cards.Create(ctx, models.CreateCardRequest{
			Title:        dc.Title,
			Description:  dc.Description,
			GoalID:       goalID,
			Dependencies: deps,
		})
		if err != nil {
			return actResult{
				errMsg:  fmt.Sprintf("failed to create card %q: %v", dc.Title, err),
				cardIDs: created,
			}
		}
		orderToID[dc.Order] = c.ID
		created = append(created, c.ID)

		if l.publisher != nil {
			if err := l.publisher.PublishCardCreated(ctx, events.NewCardCreatedPayload(c)); err != nil {
				slog.Warn("Failed to publish card creation", "card_id", c.ID, "error", err)
			}
		}
		l.logInfo(ctx, fmt.Sprintf("Created card %d/%d: %s", i+1, len(decomposed), clip(dc.Title, 40)),
			map[string]interface{}{"card_id": c.ID, "order": dc.Order}, goalID)
	}

	l.logInfo(ctx, fmt.Sprintf("Decomposition complete: %d cards created", len(created)),
		map[string]interface{}{"card_ids": created}, goalID)
	return actResult{success: true, cardIDs: created}
}

// actExecute runs the ready cards through the workflow runner. Partial
// success still counts as progress for LEARN.
func (l *Loop) actExecute(ctx context.Context, cardIDs []string) actResult {
	if len(cardIDs) == 1 {
		res := l.runner.ExecuteCard(ctx, cardIDs[0])
		if res.Err != nil || !res.Success {
			msg := "card execution failed"
			if res.Err != nil {
				msg = res.Err.Error()
			} else if res.TestFailed {
				msg = "tests failed, fix-card " + short(res.FixCardID) + " created"
			}
			return actResult{errMsg: msg, cardIDs: cardIDs}
		}
		title := cardIDs[0]
		if c, err := l.cards.Get(ctx, cardIDs[0]); err == nil {
			title = c.Title
		}
		return actResult{
			success:  true,
			learning: "Successfully completed full workflow for card: " + title,
			cardIDs:  cardIDs,
		}
	}

	results := l.runner.ExecuteParallel(ctx, cardIDs)
	var succeeded int
	var firstErr string
	for _, res := range results {
		if res.Success {
			succeeded++
			continue
		}
		if firstErr == "" {
			if res.Err != nil {
				firstErr = res.Err.Error()
			} else {
				firstErr = "card " + short(res.CardID) + " did not complete"
			}
		}
	}

	out := actResult{success: succeeded == len(results), cardIDs: cardIDs}
	if succeeded > 0 {
		out.learning = fmt.Sprintf("Parallel execution: %d/%d cards completed", succeeded, len(results))
	}
	if succeeded < len(results) {
		out.errMsg = fmt.Sprintf("%d cards failed: %s", len(results)-succeeded, firstErr)
	}
	return out
}

// actCreateFix spawns a fix-card for a failed test that has none,
// carrying the failed execution's error context.
func (l *Loop) actCreateFix(ctx context.Context, cardIDs []string) actResult {
	if len(cardIDs) == 0 {
		return actResult{errMsg: "create_fix without a card"}
	}
	cardID := cardIDs[0]
	c, err := l.cards.Get(ctx, cardID)
	if err != nil {
		return actResult{errMsg: fmt.Sprintf("card not found: %v", err)}
	}

	errorContext := ""
	if exec, err := l.executions.LatestExecution(ctx, cardID, models.CommandTest); err == nil && exec.WorkflowError != nil {
		errorContext = *exec.WorkflowError
	}

	fix, err := l.cards.CreateFixCard(ctx, cardID, "Fix test failures in: "+c.Title, errorContext)
	if err != nil {
		return actResult{errMsg: fmt.Sprintf("failed to create fix card: %v", err), cardIDs: cardIDs}
	}
	if l.publisher != nil {
		if err := l.publisher.PublishCardCreated(ctx, events.NewCardCreatedPayload(fix)); err != nil {
			slog.Warn("Failed to publish fix-card creation", "card_id", fix.ID, "error", err)
		}
	}
	return actResult{success: true, cardIDs: []string{fix.ID}}
}

// actCompleteGoal marks the goal completed and phrases its learning.
func (l *Loop) actCompleteGoal(ctx context.Context, goalID string) actResult {
	g, err := l.goals.Get(ctx, goalID)
	if err != nil {
		return actResult{errMsg: fmt.Sprintf("goal not found: %v", err)}
	}
	if err := l.goals.UpdateStatus(ctx, goalID, goal.StatusCompleted); err != nil {
		return actResult{errMsg: fmt.Sprintf("failed to complete goal: %v", err)}
	}
	slog.Info("Goal completed", "goal_id", goalID, "cards", len(g.CardIds))
	return actResult{
		success:  true,
		learning: fmt.Sprintf("Completed goal: %s. Cards: %d.", g.Description, len(g.CardIds)),
		cardIDs:  g.CardIds,
	}
}

// record writes the tick's durable trace: a short-term memory step and
// the orchestrator_actions row.
func (l *Loop) record(ctx context.Context, res ThinkResult, act actResult) {
	l.recordMemory(ctx, memoryentry.EntryTypeAct,
		fmt.Sprintf("Action %s: success=%t", res.Decision, act.success),
		map[string]interface{}{"decision": string(res.Decision), "error": act.errMsg},
		res.GoalID)

	if _, err := l.recorder.RecordAction(ctx, models.ActionRecord{
		Decision: string(res.Decision),
		GoalID:   res.GoalID,
		CardIDs:  act.cardIDs,
		Reason:   res.Reason,
		Context:  res.Context,
		Success:  act.success,
		Error:    act.errMsg,
		Learning: act.learning,
	}); err != nil {
		slog.Warn("Failed to record orchestrator action", "decision", res.Decision, "error", err)
	}
}

// learn stores the action's learning in long-term memory and stamps
// the goal with it. Soft-fails all the way down.
func (l *Loop) learn(ctx context.Context, res ThinkResult, act actResult) {
	if l.learnings == nil || res.GoalID == "" {
		return
	}
	g, err := l.goals.Get(ctx, res.GoalID)
	if err != nil {
		slog.Warn("Failed to load goal for learning", "goal_id", res.GoalID, "error", err)
		return
	}

	outcome := "success"
	if !act.success {
		outcome = "partial"
	}
	id, err := l.learnings.StoreLearning(ctx, g.Description, act.learning, vector.LearningMeta{
		CardsCreated:     act.cardIDs,
		Outcome:          outcome,
		ErrorEncountered: act.errMsg,
		FixApplied:       res.Decision == DecisionCreateFix,
		TokensUsed:       g.TotalTokens,
		CostUSD:          g.TotalCostUsd,
	})
	if err != nil {
		slog.Warn("Failed to store learning", "goal_id", res.GoalID, "error", err)
		return
	}
	if err := l.goals.SetLearning(ctx, res.GoalID, id, act.learning); err != nil {
		slog.Warn("Failed to stamp goal learning", "goal_id", res.GoalID, "error", err)
	}
}

func (l *Loop) recordMemory(ctx context.Context, entryType memoryentry.EntryType, content string, contextMap map[string]interface{}, goalID string) {
	if _, err := l.memory.Record(ctx, entryType, content, contextMap, goalID); err != nil {
		slog.Warn("Failed to record memory step", "entry_type", entryType, "error", err)
	}
}

func (l *Loop) logInfo(ctx context.Context, message string, contextMap map[string]interface{}, goalID string) {
	if err := l.recorder.Log(ctx, orchestratorlog.LevelInfo, message, contextMap, goalID); err != nil {
		slog.Warn("Failed to write orchestrator log", "error", err)
	}
}

func (l *Loop) logError(ctx context.Context, message string, contextMap map[string]interface{}, goalID string) {
	if err := l.recorder.Log(ctx, orchestratorlog.LevelError, message, contextMap, goalID); err != nil {
		slog.Warn("Failed to write orchestrator log", "error", err)
	}
}
