// Code generated by ent, DO NOT EDIT.

package executionlog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the executionlog type in the database.
	Label = "execution_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldLogType holds the string denoting the log_type field in the database.
	FieldLogType = "log_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeExecution holds the string denoting the execution edge name in mutations.
	EdgeExecution = "execution"
	// ExecutionFieldID holds the string denoting the ID field of the Execution.
	ExecutionFieldID = "execution_id"
	// Table holds the table name of the executionlog in the database.
	Table = "execution_logs"
	// ExecutionTable is the table that holds the execution relation/edge.
	ExecutionTable = "execution_logs"
	// ExecutionInverseTable is the table name for the Execution entity.
	// It exists in this package in order to avoid circular dependency with the "execution" package.
	ExecutionInverseTable = "executions"
	// ExecutionColumn is the table column denoting the execution relation/edge.
	ExecutionColumn = "execution_id"
)

// Columns holds all SQL columns for executionlog fields.
var Columns = []string{
	FieldID,
	FieldExecutionID,
	FieldSequence,
	FieldLogType,
	FieldContent,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// LogType defines the type for the "log_type" enum field.
type LogType string

// LogType values.
const (
	LogTypeInfo   LogType = "info"
	LogTypeText   LogType = "text"
	LogTypeTool   LogType = "tool"
	LogTypeResult LogType = "result"
	LogTypeError  LogType = "error"
)

func (lt LogType) String() string {
	return string(lt)
}

// LogTypeValidator is a validator for the "log_type" field enum values. It is called by the builders before save.
func LogTypeValidator(lt LogType) error {
	switch lt {
	case LogTypeInfo, LogTypeText, LogTypeTool, LogTypeResult, LogTypeError:
		return nil
	default:
		return fmt.Errorf("executionlog: invalid enum value for log_type field: %q", lt)
	}
}

// OrderOption defines the ordering options for the ExecutionLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExecutionID orders the results by the execution_id field.
func ByExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByLogType orders the results by the log_type field.
func ByLogType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByExecutionField orders the results by execution field.
func ByExecutionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionStep(), sql.OrderByField(field, opts...))
	}
}
func newExecutionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionInverseTable, ExecutionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
	)
}
