// Package orchestrator runs the autonomous loop that drives goals to
// completion. Each tick walks five phases: READ short-term memory,
// QUERY long-term learnings, THINK out a decision, ACT on it, RECORD
// the outcome — plus LEARN when the action produced something worth
// keeping.
package orchestrator

import (
	"fmt"

	"github.com/codeready-toolchain/cardsmith/pkg/models"
	"github.com/codeready-toolchain/cardsmith/pkg/usage"
	"github.com/codeready-toolchain/cardsmith/pkg/vector"
)

// Decision is the THINK phase's verdict for one tick.
type Decision string

const (
	DecisionWait                 Decision = "wait"
	DecisionDecompose            Decision = "decompose"
	DecisionExecuteCard          Decision = "execute_card"
	DecisionExecuteCardsParallel Decision = "execute_cards_parallel"
	DecisionCreateFix            Decision = "create_fix"
	DecisionCompleteGoal         Decision = "complete_goal"
)

// ThinkInput is everything THINK may consider. It is assembled by the
// loop's READ phase; Think itself never touches storage.
type ThinkInput struct {
	// Usage is the budget evaluation for this tick.
	Usage usage.Status

	// ActiveGoalID is empty when no goal is active.
	ActiveGoalID string

	// Cards is the active goal's board snapshot.
	Cards []models.CardSnapshot

	// Learnings are related long-term memories retrieved for the goal
	// in play. Advisory context; an empty slice is the common case.
	Learnings []vector.LearningHit

	// WorktreeCount and WorktreeLimit describe checkout occupancy.
	// A zero limit means occupancy is unknown and never blocks.
	WorktreeCount int
	WorktreeLimit int

	// PendingGoalID and PendingGoalDescription describe the oldest
	// pending goal, when one exists and no goal is active.
	PendingGoalID          string
	PendingGoalDescription string
}

// ThinkResult is the decision plus everything ACT needs to execute it.
type ThinkResult struct {
	Decision Decision
	GoalID   string
	CardIDs  []string
	Reason   string
	Context  map[string]interface{}
}

// Think is the pure decision function. Priority order:
//
//  1. usage over budget            -> wait
//  2. active goal without cards    -> decompose
//  3. unfixed test failure         -> create_fix
//  4. ready cards                  -> execute_card / execute_cards_parallel,
//     unless worktree capacity is exhausted -> wait
//  5. every card done              -> complete_goal
//  6. cards in flight              -> wait
//  7. pending goal, none active    -> decompose (loop activates it first)
//  8. nothing anywhere             -> wait
func Think(in ThinkInput) ThinkResult {
	if !in.Usage.IsSafe {
		return ThinkResult{
			Decision: DecisionWait,
			Reason: fmt.Sprintf("Usage limit exceeded: session=%.1f%%, daily=%.1f%%",
				in.Usage.SessionUsedPercent, in.Usage.DailyUsedPercent),
		}
	}

	if in.ActiveGoalID != "" {
		if len(in.Cards) == 0 {
			return ThinkResult{
				Decision: DecisionDecompose,
				GoalID:   in.ActiveGoalID,
				Reason:   "Active goal has no cards, need to decompose",
			}
		}

		if failed := firstUnfixedFailure(in.Cards); failed != nil {
			return ThinkResult{
				Decision: DecisionCreateFix,
				GoalID:   in.ActiveGoalID,
				CardIDs:  []string{failed.ID},
				Reason:   fmt.Sprintf("Card %s failed test, creating fix", short(failed.ID)),
			}
		}

		if ready := readyCards(in.Cards); len(ready) > 0 {
			if in.WorktreeLimit > 0 && in.WorktreeCount >= in.WorktreeLimit {
				return ThinkResult{
					Decision: DecisionWait,
					GoalID:   in.ActiveGoalID,
					Reason:   "Worktree capacity exhausted",
				}
			}
			if len(ready) == 1 {
				return ThinkResult{
					Decision: DecisionExecuteCard,
					GoalID:   in.ActiveGoalID,
					CardIDs:  ready,
					Reason:   fmt.Sprintf("Card %s ready to execute", short(ready[0])),
				}
			}
			return ThinkResult{
				Decision: DecisionExecuteCardsParallel,
				GoalID:   in.ActiveGoalID,
				CardIDs:  ready,
				Reason:   fmt.Sprintf("%d cards ready for parallel execution", len(ready)),
			}
		}

		if allDone(in.Cards) {
			return ThinkResult{
				Decision: DecisionCompleteGoal,
				GoalID:   in.ActiveGoalID,
				Reason:   "All cards completed",
			}
		}

		return ThinkResult{
			Decision: DecisionWait,
			GoalID:   in.ActiveGoalID,
			Reason:   "Cards in progress, waiting",
		}
	}

	if in.PendingGoalID != "" {
		return ThinkResult{
			Decision: DecisionDecompose,
			GoalID:   in.PendingGoalID,
			Reason:   "Activated pending goal: " + clip(in.PendingGoalDescription, 50),
		}
	}

	return ThinkResult{
		Decision: DecisionWait,
		Reason:   "No active or pending goals",
	}
}

// firstUnfixedFailure finds the first card whose latest test run failed
// and has no fix-card yet. Failures with a fix in flight or already
// resolved are not re-fixed.
func firstUnfixedFailure(cards []models.CardSnapshot) *models.CardSnapshot {
	for i := range cards {
		c := &cards[i]
		if c.TestFailed && c.FixState == models.FixStateNone && !c.HasRunningExecution {
			return c
		}
	}
	return nil
}

// readyCards selects cards the runner may dispatch now: executable
// column, no running execution, dependencies completed, and no pending
// test failure awaiting its fix.
func readyCards(cards []models.CardSnapshot) []string {
	byID := make(map[string]models.CardSnapshot, len(cards))
	for _, c := range cards {
		byID[c.ID] = c
	}

	var ready []string
	for _, c := range cards {
		if !models.IsExecutable(c.Column) || c.HasRunningExecution {
			continue
		}
		if c.TestFailed && c.FixState != models.FixStateResolved {
			continue
		}
		if !depsSatisfied(c, byID) {
			continue
		}
		ready = append(ready, c.ID)
	}
	return ready
}

func depsSatisfied(c models.CardSnapshot, byID map[string]models.CardSnapshot) bool {
	for _, dep := range c.Dependencies {
		d, ok := byID[dep]
		if !ok {
			return false
		}
		if d.Column != models.ColumnDone && d.Column != models.ColumnCompleted {
			return false
		}
	}
	return true
}

func allDone(cards []models.CardSnapshot) bool {
	for _, c := range cards {
		if c.Column != models.ColumnDone && c.Column != models.ColumnCompleted {
			return false
		}
	}
	return true
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func clip(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
