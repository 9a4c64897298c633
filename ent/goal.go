// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/cardsmith/ent/goal"
)

// Goal is the model entity for the Goal schema.
type Goal struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// User-submitted intent, verbatim
	Description string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status goal.Status `json:"status,omitempty"`
	// Provenance (api, chat, ...)
	Source string `json:"source,omitempty"`
	// SourceID holds the value of the "source_id" field.
	SourceID *string `json:"source_id,omitempty"`
	// Ordered card ids, append-only
	CardIds []string `json:"card_ids,omitempty"`
	// Human-readable learning produced at completion
	LearningText *string `json:"learning_text,omitempty"`
	// Vector-store point id (weak reference)
	LearningID *string `json:"learning_id,omitempty"`
	// TotalTokens holds the value of the "total_tokens" field.
	TotalTokens int `json:"total_tokens,omitempty"`
	// TotalCostUsd holds the value of the "total_cost_usd" field.
	TotalCostUsd float64 `json:"total_cost_usd,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// First promotion to active
	StartedAt *time.Time `json:"started_at,omitempty"`
	// Entered completed or failed
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GoalQuery when eager-loading is set.
	Edges        GoalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GoalEdges holds the relations/edges for other nodes in the graph.
type GoalEdges struct {
	// Cards holds the value of the cards edge.
	Cards []*Card `json:"cards,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CardsOrErr returns the Cards value or an error if the edge
// was not loaded in eager-loading.
func (e GoalEdges) CardsOrErr() ([]*Card, error) {
	if e.loadedTypes[0] {
		return e.Cards, nil
	}
	return nil, &NotLoadedError{edge: "cards"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Goal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case goal.FieldCardIds:
			values[i] = new([]byte)
		case goal.FieldTotalCostUsd:
			values[i] = new(sql.NullFloat64)
		case goal.FieldTotalTokens:
			values[i] = new(sql.NullInt64)
		case goal.FieldID, goal.FieldDescription, goal.FieldStatus, goal.FieldSource, goal.FieldSourceID, goal.FieldLearningText, goal.FieldLearningID, goal.FieldError:
			values[i] = new(sql.NullString)
		case goal.FieldCreatedAt, goal.FieldStartedAt, goal.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Goal fields.
func (_m *Goal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case goal.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case goal.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case goal.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = goal.Status(value.String)
			}
		case goal.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case goal.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = new(string)
				*_m.SourceID = value.String
			}
		case goal.FieldCardIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field card_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CardIds); err != nil {
					return fmt.Errorf("unmarshal field card_ids: %w", err)
				}
			}
		case goal.FieldLearningText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learning_text", values[i])
			} else if value.Valid {
				_m.LearningText = new(string)
				*_m.LearningText = value.String
			}
		case goal.FieldLearningID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learning_id", values[i])
			} else if value.Valid {
				_m.LearningID = new(string)
				*_m.LearningID = value.String
			}
		case goal.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = int(value.Int64)
			}
		case goal.FieldTotalCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cost_usd", values[i])
			} else if value.Valid {
				_m.TotalCostUsd = value.Float64
			}
		case goal.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case goal.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case goal.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case goal.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Goal.
// This includes values selected through modifiers, order, etc.
func (_m *Goal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCards queries the "cards" edge of the Goal entity.
func (_m *Goal) QueryCards() *CardQuery {
	return NewGoalClient(_m.config).QueryCards(_m)
}

// Update returns a builder for updating this Goal.
// Note that you need to call Goal.Unwrap() before calling this method if this Goal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Goal) Update() *GoalUpdateOne {
	return NewGoalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Goal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Goal) Unwrap() *Goal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Goal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Goal) String() string {
	var builder strings.Builder
	builder.WriteString("Goal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	if v := _m.SourceID; v != nil {
		builder.WriteString("source_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("card_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.CardIds))
	builder.WriteString(", ")
	if v := _m.LearningText; v != nil {
		builder.WriteString("learning_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LearningID; v != nil {
		builder.WriteString("learning_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("total_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTokens))
	builder.WriteString(", ")
	builder.WriteString("total_cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCostUsd))
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Goals is a parsable slice of Goal.
type Goals []*Goal
