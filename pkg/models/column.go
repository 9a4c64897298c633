package models

// Column is an SDLC board column.
type Column string

const (
	ColumnBacklog   Column = "backlog"
	ColumnPlan      Column = "plan"
	ColumnImplement Column = "implement"
	ColumnTest      Column = "test"
	ColumnReview    Column = "review"
	ColumnDone      Column = "done"
	ColumnCompleted Column = "completed"
	ColumnArchived  Column = "archived"
	ColumnCancelled Column = "cancelled"
)

// transitions is the legal column graph. Anything absent here is rejected
// by CardService.Move.
var transitions = map[Column][]Column{
	ColumnBacklog:   {ColumnPlan, ColumnCancelled},
	ColumnPlan:      {ColumnImplement, ColumnCancelled},
	ColumnImplement: {ColumnTest, ColumnCancelled},
	ColumnTest:      {ColumnReview, ColumnCancelled},
	ColumnReview:    {ColumnDone, ColumnCancelled},
	ColumnDone:      {ColumnCompleted, ColumnArchived, ColumnCancelled},
	ColumnArchived:  {ColumnDone, ColumnCancelled},
	ColumnCompleted: {ColumnCancelled},
	ColumnCancelled: {},
}

// boardOrder positions columns for board-ordered listings.
var boardOrder = map[Column]int{
	ColumnBacklog:   0,
	ColumnPlan:      1,
	ColumnImplement: 2,
	ColumnTest:      3,
	ColumnReview:    4,
	ColumnDone:      5,
	ColumnCompleted: 6,
	ColumnArchived:  7,
	ColumnCancelled: 8,
}

// IsValidColumn reports whether c names a known column.
func IsValidColumn(c Column) bool {
	_, ok := transitions[c]
	return ok
}

// CanTransition reports whether from→to is an edge of the legal graph.
func CanTransition(from, to Column) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// AllowedTargets returns the legal destinations from a column, in graph order.
func AllowedTargets(from Column) []Column {
	targets := transitions[from]
	out := make([]Column, len(targets))
	copy(out, targets)
	return out
}

// IsWorkflowTerminal reports whether the workflow engine treats the column
// as finished (no stages left to run).
func IsWorkflowTerminal(c Column) bool {
	switch c {
	case ColumnDone, ColumnCompleted, ColumnArchived, ColumnCancelled:
		return true
	}
	return false
}

// IsExecutable reports whether a card in this column can be dispatched to
// the workflow engine.
func IsExecutable(c Column) bool {
	switch c {
	case ColumnBacklog, ColumnPlan, ColumnImplement, ColumnTest, ColumnReview:
		return true
	}
	return false
}

// BoardOrder returns the column's position for board-ordered listings.
func BoardOrder(c Column) int {
	return boardOrder[c]
}
