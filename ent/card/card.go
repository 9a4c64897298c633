// Code generated by ent, DO NOT EDIT.

package card

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the card type in the database.
	Label = "card"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "card_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldColumn holds the string denoting the column field in the database.
	FieldColumn = "board_column"
	// FieldSpecPath holds the string denoting the spec_path field in the database.
	FieldSpecPath = "spec_path"
	// FieldModelPlan holds the string denoting the model_plan field in the database.
	FieldModelPlan = "model_plan"
	// FieldModelImplement holds the string denoting the model_implement field in the database.
	FieldModelImplement = "model_implement"
	// FieldModelTest holds the string denoting the model_test field in the database.
	FieldModelTest = "model_test"
	// FieldModelReview holds the string denoting the model_review field in the database.
	FieldModelReview = "model_review"
	// FieldParentCardID holds the string denoting the parent_card_id field in the database.
	FieldParentCardID = "parent_card_id"
	// FieldIsFixCard holds the string denoting the is_fix_card field in the database.
	FieldIsFixCard = "is_fix_card"
	// FieldTestErrorContext holds the string denoting the test_error_context field in the database.
	FieldTestErrorContext = "test_error_context"
	// FieldBranchName holds the string denoting the branch_name field in the database.
	FieldBranchName = "branch_name"
	// FieldWorktreePath holds the string denoting the worktree_path field in the database.
	FieldWorktreePath = "worktree_path"
	// FieldBaseBranch holds the string denoting the base_branch field in the database.
	FieldBaseBranch = "base_branch"
	// FieldDependencies holds the string denoting the dependencies field in the database.
	FieldDependencies = "dependencies"
	// FieldDiffStats holds the string denoting the diff_stats field in the database.
	FieldDiffStats = "diff_stats"
	// FieldArchived holds the string denoting the archived field in the database.
	FieldArchived = "archived"
	// FieldGoalID holds the string denoting the goal_id field in the database.
	FieldGoalID = "goal_id"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeGoal holds the string denoting the goal edge name in mutations.
	EdgeGoal = "goal"
	// EdgeExecutions holds the string denoting the executions edge name in mutations.
	EdgeExecutions = "executions"
	// GoalFieldID holds the string denoting the ID field of the Goal.
	GoalFieldID = "goal_id"
	// ExecutionFieldID holds the string denoting the ID field of the Execution.
	ExecutionFieldID = "execution_id"
	// Table holds the table name of the card in the database.
	Table = "cards"
	// GoalTable is the table that holds the goal relation/edge.
	GoalTable = "cards"
	// GoalInverseTable is the table name for the Goal entity.
	// It exists in this package in order to avoid circular dependency with the "goal" package.
	GoalInverseTable = "goals"
	// GoalColumn is the table column denoting the goal relation/edge.
	GoalColumn = "goal_id"
	// ExecutionsTable is the table that holds the executions relation/edge.
	ExecutionsTable = "executions"
	// ExecutionsInverseTable is the table name for the Execution entity.
	// It exists in this package in order to avoid circular dependency with the "execution" package.
	ExecutionsInverseTable = "executions"
	// ExecutionsColumn is the table column denoting the executions relation/edge.
	ExecutionsColumn = "card_id"
)

// Columns holds all SQL columns for card fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldColumn,
	FieldSpecPath,
	FieldModelPlan,
	FieldModelImplement,
	FieldModelTest,
	FieldModelReview,
	FieldParentCardID,
	FieldIsFixCard,
	FieldTestErrorContext,
	FieldBranchName,
	FieldWorktreePath,
	FieldBaseBranch,
	FieldDependencies,
	FieldDiffStats,
	FieldArchived,
	FieldGoalID,
	FieldCompletedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultColumn holds the default value on creation for the "column" field.
	DefaultColumn string
	// DefaultModelPlan holds the default value on creation for the "model_plan" field.
	DefaultModelPlan string
	// DefaultModelImplement holds the default value on creation for the "model_implement" field.
	DefaultModelImplement string
	// DefaultModelTest holds the default value on creation for the "model_test" field.
	DefaultModelTest string
	// DefaultModelReview holds the default value on creation for the "model_review" field.
	DefaultModelReview string
	// DefaultIsFixCard holds the default value on creation for the "is_fix_card" field.
	DefaultIsFixCard bool
	// DefaultArchived holds the default value on creation for the "archived" field.
	DefaultArchived bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Card queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByColumn orders the results by the column field.
func ByColumn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColumn, opts...).ToFunc()
}

// BySpecPath orders the results by the spec_path field.
func BySpecPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecPath, opts...).ToFunc()
}

// ByModelPlan orders the results by the model_plan field.
func ByModelPlan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelPlan, opts...).ToFunc()
}

// ByModelImplement orders the results by the model_implement field.
func ByModelImplement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelImplement, opts...).ToFunc()
}

// ByModelTest orders the results by the model_test field.
func ByModelTest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelTest, opts...).ToFunc()
}

// ByModelReview orders the results by the model_review field.
func ByModelReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelReview, opts...).ToFunc()
}

// ByParentCardID orders the results by the parent_card_id field.
func ByParentCardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentCardID, opts...).ToFunc()
}

// ByIsFixCard orders the results by the is_fix_card field.
func ByIsFixCard(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsFixCard, opts...).ToFunc()
}

// ByTestErrorContext orders the results by the test_error_context field.
func ByTestErrorContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestErrorContext, opts...).ToFunc()
}

// ByBranchName orders the results by the branch_name field.
func ByBranchName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchName, opts...).ToFunc()
}

// ByWorktreePath orders the results by the worktree_path field.
func ByWorktreePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorktreePath, opts...).ToFunc()
}

// ByBaseBranch orders the results by the base_branch field.
func ByBaseBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseBranch, opts...).ToFunc()
}

// ByArchived orders the results by the archived field.
func ByArchived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchived, opts...).ToFunc()
}

// ByGoalID orders the results by the goal_id field.
func ByGoalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalID, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByGoalField orders the results by goal field.
func ByGoalField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGoalStep(), sql.OrderByField(field, opts...))
	}
}

// ByExecutionsCount orders the results by executions count.
func ByExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExecutionsStep(), opts...)
	}
}

// ByExecutions orders the results by executions terms.
func ByExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newGoalStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GoalInverseTable, GoalFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, GoalTable, GoalColumn),
	)
}
func newExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionsInverseTable, ExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
	)
}
