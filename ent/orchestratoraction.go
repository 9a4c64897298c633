// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/cardsmith/ent/orchestratoraction"
)

// OrchestratorAction is the model entity for the OrchestratorAction schema.
type OrchestratorAction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// wait, decompose, execute_card, execute_cards_parallel, create_fix, complete_goal
	Decision string `json:"decision,omitempty"`
	// GoalID holds the value of the "goal_id" field.
	GoalID *string `json:"goal_id,omitempty"`
	// CardIds holds the value of the "card_ids" field.
	CardIds []string `json:"card_ids,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// Context holds the value of the "context" field.
	Context map[string]interface{} `json:"context,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// Learning holds the value of the "learning" field.
	Learning *string `json:"learning,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OrchestratorAction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case orchestratoraction.FieldCardIds, orchestratoraction.FieldContext:
			values[i] = new([]byte)
		case orchestratoraction.FieldSuccess:
			values[i] = new(sql.NullBool)
		case orchestratoraction.FieldID, orchestratoraction.FieldDecision, orchestratoraction.FieldGoalID, orchestratoraction.FieldReason, orchestratoraction.FieldError, orchestratoraction.FieldLearning:
			values[i] = new(sql.NullString)
		case orchestratoraction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OrchestratorAction fields.
func (_m *OrchestratorAction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case orchestratoraction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case orchestratoraction.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = value.String
			}
		case orchestratoraction.FieldGoalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal_id", values[i])
			} else if value.Valid {
				_m.GoalID = new(string)
				*_m.GoalID = value.String
			}
		case orchestratoraction.FieldCardIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field card_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CardIds); err != nil {
					return fmt.Errorf("unmarshal field card_ids: %w", err)
				}
			}
		case orchestratoraction.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case orchestratoraction.FieldContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Context); err != nil {
					return fmt.Errorf("unmarshal field context: %w", err)
				}
			}
		case orchestratoraction.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case orchestratoraction.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case orchestratoraction.FieldLearning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learning", values[i])
			} else if value.Valid {
				_m.Learning = new(string)
				*_m.Learning = value.String
			}
		case orchestratoraction.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the OrchestratorAction.
// This includes values selected through modifiers, order, etc.
func (_m *OrchestratorAction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OrchestratorAction.
// Note that you need to call OrchestratorAction.Unwrap() before calling this method if this OrchestratorAction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OrchestratorAction) Update() *OrchestratorActionUpdateOne {
	return NewOrchestratorActionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OrchestratorAction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OrchestratorAction) Unwrap() *OrchestratorAction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OrchestratorAction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OrchestratorAction) String() string {
	var builder strings.Builder
	builder.WriteString("OrchestratorAction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("decision=")
	builder.WriteString(_m.Decision)
	builder.WriteString(", ")
	if v := _m.GoalID; v != nil {
		builder.WriteString("goal_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("card_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.CardIds))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(fmt.Sprintf("%v", _m.Context))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Learning; v != nil {
		builder.WriteString("learning=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OrchestratorActions is a parsable slice of OrchestratorAction.
type OrchestratorActions []*OrchestratorAction
