// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/cardsmith/ent/execution"
	"github.com/codeready-toolchain/cardsmith/ent/executionlog"
)

// ExecutionLog is the model entity for the ExecutionLog schema.
type ExecutionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ExecutionID holds the value of the "execution_id" field.
	ExecutionID string `json:"execution_id,omitempty"`
	// 1..N, gap-free per execution
	Sequence int `json:"sequence,omitempty"`
	// LogType holds the value of the "log_type" field.
	LogType executionlog.LogType `json:"log_type,omitempty"`
	// Masked before persistence
	Content string `json:"content,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExecutionLogQuery when eager-loading is set.
	Edges        ExecutionLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExecutionLogEdges holds the relations/edges for other nodes in the graph.
type ExecutionLogEdges struct {
	// Execution holds the value of the execution edge.
	Execution *Execution `json:"execution,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExecutionOrErr returns the Execution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExecutionLogEdges) ExecutionOrErr() (*Execution, error) {
	if e.Execution != nil {
		return e.Execution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: execution.Label}
	}
	return nil, &NotLoadedError{edge: "execution"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExecutionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case executionlog.FieldID, executionlog.FieldSequence:
			values[i] = new(sql.NullInt64)
		case executionlog.FieldExecutionID, executionlog.FieldLogType, executionlog.FieldContent:
			values[i] = new(sql.NullString)
		case executionlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExecutionLog fields.
func (_m *ExecutionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case executionlog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case executionlog.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = value.String
			}
		case executionlog.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = int(value.Int64)
			}
		case executionlog.FieldLogType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field log_type", values[i])
			} else if value.Valid {
				_m.LogType = executionlog.LogType(value.String)
			}
		case executionlog.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case executionlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExecutionLog.
// This includes values selected through modifiers, order, etc.
func (_m *ExecutionLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecution queries the "execution" edge of the ExecutionLog entity.
func (_m *ExecutionLog) QueryExecution() *ExecutionQuery {
	return NewExecutionLogClient(_m.config).QueryExecution(_m)
}

// Update returns a builder for updating this ExecutionLog.
// Note that you need to call ExecutionLog.Unwrap() before calling this method if this ExecutionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExecutionLog) Update() *ExecutionLogUpdateOne {
	return NewExecutionLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExecutionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExecutionLog) Unwrap() *ExecutionLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExecutionLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExecutionLog) String() string {
	var builder strings.Builder
	builder.WriteString("ExecutionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("execution_id=")
	builder.WriteString(_m.ExecutionID)
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("log_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.LogType))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExecutionLogs is a parsable slice of ExecutionLog.
type ExecutionLogs []*ExecutionLog
