// Code generated by ent, DO NOT EDIT.

package memoryentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the memoryentry type in the database.
	Label = "memory_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "entry_id"
	// FieldEntryType holds the string denoting the entry_type field in the database.
	FieldEntryType = "entry_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldGoalID holds the string denoting the goal_id field in the database.
	FieldGoalID = "goal_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the memoryentry in the database.
	Table = "memory_entries"
)

// Columns holds all SQL columns for memoryentry fields.
var Columns = []string{
	FieldID,
	FieldEntryType,
	FieldContent,
	FieldContext,
	FieldGoalID,
	FieldCreatedAt,
	FieldExpiresAt,
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

// EntryType defines the type for the "entry_type" enum field.
type EntryType string

// EntryType values.
const (
	EntryTypeAct         EntryType = "act"
	EntryTypeDecision    EntryType = "decision"
	EntryTypeObservation EntryType = "observation"
	EntryTypeError       EntryType = "error"
)

func (et EntryType) String() string {
	return string(et)
}

// EntryTypeValidator is a validator for the "entry_type" field enum values. It is called by the builders before save.
func EntryTypeValidator(et EntryType) error {
	switch et {
	case EntryTypeAct, EntryTypeDecision, EntryTypeObservation, EntryTypeError:
		return nil
	default:
		return fmt.Errorf("memoryentry: invalid enum value for entry_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the MemoryEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEntryType orders the results by the entry_type field.
func ByEntryType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntryType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByGoalID orders the results by the goal_id field.
func ByGoalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}
