package models

import "time"

// GoalDigest is the short-term-memory view of one goal.
type GoalDigest struct {
	ID          string
	Description string
	CardCount   int
}

// StepDigest is one recent orchestrator step from short-term memory.
type StepDigest struct {
	EntryType string
	Content   string
	CreatedAt time.Time
}

// ContextSummary is what the loop READs at the start of every tick.
type ContextSummary struct {
	ActiveGoal   *GoalDigest
	PendingGoals int
	RecentSteps  []StepDigest
}

// ActionRecord is the durable trace of one orchestrator tick decision.
type ActionRecord struct {
	Decision string
	GoalID   string
	CardIDs  []string
	Reason   string
	Context  map[string]interface{}
	Success  bool
	Error    string
	Learning string
}
