// Code generated by ent, DO NOT EDIT.

package orchestratoraction

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the orchestratoraction type in the database.
	Label = "orchestrator_action"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "action_id"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldGoalID holds the string denoting the goal_id field in the database.
	FieldGoalID = "goal_id"
	// FieldCardIds holds the string denoting the card_ids field in the database.
	FieldCardIds = "card_ids"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldLearning holds the string denoting the learning field in the database.
	FieldLearning = "learning"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the orchestratoraction in the database.
	Table = "orchestrator_actions"
)

// Columns holds all SQL columns for orchestratoraction fields.
var Columns = []string{
	FieldID,
	FieldDecision,
	FieldGoalID,
	FieldCardIds,
	FieldReason,
	FieldContext,
	FieldSuccess,
	FieldError,
	FieldLearning,
	FieldCreatedAt,
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
	// DefaultSuccess holds the default value on creation for the "success" field.
	DefaultSuccess bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the OrchestratorAction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDecision orders the results by the decision field.
func ByDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecision, opts...).ToFunc()
}

// ByGoalID orders the results by the goal_id field.
func ByGoalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalID, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByLearning orders the results by the learning field.
func ByLearning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearning, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
