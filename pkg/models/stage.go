package models

// Stage is one step of the SDLC workflow.
type Stage string

const (
	StagePlanning     Stage = "planning"
	StageImplementing Stage = "implementing"
	StageTesting      Stage = "testing"
	StageReviewing    Stage = "reviewing"
)

// Command is the slash command a stage sends to the agent.
type Command string

const (
	CommandPlan      Command = "/plan"
	CommandImplement Command = "/implement"
	CommandTest      Command = "/test-implementation"
	CommandReview    Command = "/review"
)

// StageOrder is the fixed SDLC sequence.
var StageOrder = []Stage{StagePlanning, StageImplementing, StageTesting, StageReviewing}

var stageCommand = map[Stage]Command{
	StagePlanning:     CommandPlan,
	StageImplementing: CommandImplement,
	StageTesting:      CommandTest,
	StageReviewing:    CommandReview,
}

var stageColumn = map[Stage]Column{
	StagePlanning:     ColumnPlan,
	StageImplementing: ColumnImplement,
	StageTesting:      ColumnTest,
	StageReviewing:    ColumnReview,
}

// CommandForStage returns the slash command a stage runs.
func CommandForStage(s Stage) Command {
	return stageCommand[s]
}

// ColumnForStage returns the board column a stage occupies.
func ColumnForStage(s Stage) Column {
	return stageColumn[s]
}

// StageForCommand resolves a slash command back to its stage; ok is false
// for unknown commands.
func StageForCommand(c Command) (Stage, bool) {
	for s, cmd := range stageCommand {
		if cmd == c {
			return s, true
		}
	}
	return "", false
}

// FirstStageFrom returns the stage the workflow resumes at for a card in the
// given column. Backlog starts from planning; a stage column resumes that
// stage; ok is false for workflow-terminal columns.
func FirstStageFrom(c Column) (Stage, bool) {
	switch c {
	case ColumnBacklog, ColumnPlan:
		return StagePlanning, true
	case ColumnImplement:
		return StageImplementing, true
	case ColumnTest:
		return StageTesting, true
	case ColumnReview:
		return StageReviewing, true
	}
	return "", false
}

// StagesFrom returns the remaining SDLC sequence starting at s.
func StagesFrom(s Stage) []Stage {
	for i, st := range StageOrder {
		if st == s {
			return StageOrder[i:]
		}
	}
	return nil
}
