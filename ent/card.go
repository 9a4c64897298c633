// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/cardsmith/ent/card"
	"github.com/codeready-toolchain/cardsmith/ent/goal"
)

// Card is the model entity for the Card schema.
type Card struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// SDLC column; legal transitions enforced by CardService
	Column string `json:"column,omitempty"`
	// Markdown design doc produced by the plan stage
	SpecPath *string `json:"spec_path,omitempty"`
	// ModelPlan holds the value of the "model_plan" field.
	ModelPlan string `json:"model_plan,omitempty"`
	// ModelImplement holds the value of the "model_implement" field.
	ModelImplement string `json:"model_implement,omitempty"`
	// ModelTest holds the value of the "model_test" field.
	ModelTest string `json:"model_test,omitempty"`
	// ModelReview holds the value of the "model_review" field.
	ModelReview string `json:"model_review,omitempty"`
	// Back-reference only, never an ownership edge
	ParentCardID *string `json:"parent_card_id,omitempty"`
	// IsFixCard holds the value of the "is_fix_card" field.
	IsFixCard bool `json:"is_fix_card,omitempty"`
	// Failure excerpt handed to the fix-card
	TestErrorContext *string `json:"test_error_context,omitempty"`
	// BranchName holds the value of the "branch_name" field.
	BranchName *string `json:"branch_name,omitempty"`
	// WorktreePath holds the value of the "worktree_path" field.
	WorktreePath *string `json:"worktree_path,omitempty"`
	// BaseBranch holds the value of the "base_branch" field.
	BaseBranch *string `json:"base_branch,omitempty"`
	// Card ids that must be done before this card is eligible
	Dependencies []string `json:"dependencies,omitempty"`
	// files_changed/insertions/deletions after implement
	DiffStats map[string]interface{} `json:"diff_stats,omitempty"`
	// Archived holds the value of the "archived" field.
	Archived bool `json:"archived,omitempty"`
	// GoalID holds the value of the "goal_id" field.
	GoalID *string `json:"goal_id,omitempty"`
	// First entry into done
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CardQuery when eager-loading is set.
	Edges        CardEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CardEdges holds the relations/edges for other nodes in the graph.
type CardEdges struct {
	// Goal holds the value of the goal edge.
	Goal *Goal `json:"goal,omitempty"`
	// Executions holds the value of the executions edge.
	Executions []*Execution `json:"executions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// GoalOrErr returns the Goal value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CardEdges) GoalOrErr() (*Goal, error) {
	if e.Goal != nil {
		return e.Goal, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: goal.Label}
	}
	return nil, &NotLoadedError{edge: "goal"}
}

// ExecutionsOrErr returns the Executions value or an error if the edge
// was not loaded in eager-loading.
func (e CardEdges) ExecutionsOrErr() ([]*Execution, error) {
	if e.loadedTypes[1] {
		return e.Executions, nil
	}
	return nil, &NotLoadedError{edge: "executions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Card) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case card.FieldDependencies, card.FieldDiffStats:
			values[i] = new([]byte)
		case card.FieldIsFixCard, card.FieldArchived:
			values[i] = new(sql.NullBool)
		case card.FieldID, card.FieldTitle, card.FieldDescription, card.FieldColumn, card.FieldSpecPath, card.FieldModelPlan, card.FieldModelImplement, card.FieldModelTest, card.FieldModelReview, card.FieldParentCardID, card.FieldTestErrorContext, card.FieldBranchName, card.FieldWorktreePath, card.FieldBaseBranch, card.FieldGoalID:
			values[i] = new(sql.NullString)
		case card.FieldCompletedAt, card.FieldCreatedAt, card.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Card fields.
func (_m *Card) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case card.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case card.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case card.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case card.FieldColumn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field column", values[i])
			} else if value.Valid {
				_m.Column = value.String
			}
		case card.FieldSpecPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field spec_path", values[i])
			} else if value.Valid {
				_m.SpecPath = new(string)
				*_m.SpecPath = value.String
			}
		case card.FieldModelPlan:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_plan", values[i])
			} else if value.Valid {
				_m.ModelPlan = value.String
			}
		case card.FieldModelImplement:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_implement", values[i])
			} else if value.Valid {
				_m.ModelImplement = value.String
			}
		case card.FieldModelTest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_test", values[i])
			} else if value.Valid {
				_m.ModelTest = value.String
			}
		case card.FieldModelReview:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_review", values[i])
			} else if value.Valid {
				_m.ModelReview = value.String
			}
		case card.FieldParentCardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_card_id", values[i])
			} else if value.Valid {
				_m.ParentCardID = new(string)
				*_m.ParentCardID = value.String
			}
		case card.FieldIsFixCard:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_fix_card", values[i])
			} else if value.Valid {
				_m.IsFixCard = value.Bool
			}
		case card.FieldTestErrorContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_error_context", values[i])
			} else if value.Valid {
				_m.TestErrorContext = new(string)
				*_m.TestErrorContext = value.String
			}
		case card.FieldBranchName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch_name", values[i])
			} else if value.Valid {
				_m.BranchName = new(string)
				*_m.BranchName = value.String
			}
		case card.FieldWorktreePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field worktree_path", values[i])
			} else if value.Valid {
				_m.WorktreePath = new(string)
				*_m.WorktreePath = value.String
			}
		case card.FieldBaseBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field base_branch", values[i])
			} else if value.Valid {
				_m.BaseBranch = new(string)
				*_m.BaseBranch = value.String
			}
		case card.FieldDependencies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dependencies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Dependencies); err != nil {
					return fmt.Errorf("unmarshal field dependencies: %w", err)
				}
			}
		case card.FieldDiffStats:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field diff_stats", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DiffStats); err != nil {
					return fmt.Errorf("unmarshal field diff_stats: %w", err)
				}
			}
		case card.FieldArchived:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field archived", values[i])
			} else if value.Valid {
				_m.Archived = value.Bool
			}
		case card.FieldGoalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal_id", values[i])
			} else if value.Valid {
				_m.GoalID = new(string)
				*_m.GoalID = value.String
			}
		case card.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case card.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case card.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Card.
// This includes values selected through modifiers, order, etc.
func (_m *Card) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGoal queries the "goal" edge of the Card entity.
func (_m *Card) QueryGoal() *GoalQuery {
	return NewCardClient(_m.config).QueryGoal(_m)
}

// QueryExecutions queries the "executions" edge of the Card entity.
func (_m *Card) QueryExecutions() *ExecutionQuery {
	return NewCardClient(_m.config).QueryExecutions(_m)
}

// Update returns a builder for updating this Card.
// Note that you need to call Card.Unwrap() before calling this method if this Card
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Card) Update() *CardUpdateOne {
	return NewCardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Card entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Card) Unwrap() *Card {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Card is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Card) String() string {
	var builder strings.Builder
	builder.WriteString("Card(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("column=")
	builder.WriteString(_m.Column)
	builder.WriteString(", ")
	if v := _m.SpecPath; v != nil {
		builder.WriteString("spec_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("model_plan=")
	builder.WriteString(_m.ModelPlan)
	builder.WriteString(", ")
	builder.WriteString("model_implement=")
	builder.WriteString(_m.ModelImplement)
	builder.WriteString(", ")
	builder.WriteString("model_test=")
	builder.WriteString(_m.ModelTest)
	builder.WriteString(", ")
	builder.WriteString("model_review=")
	builder.WriteString(_m.ModelReview)
	builder.WriteString(", ")
	if v := _m.ParentCardID; v != nil {
		builder.WriteString("parent_card_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_fix_card=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsFixCard))
	builder.WriteString(", ")
	if v := _m.TestErrorContext; v != nil {
		builder.WriteString("test_error_context=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BranchName; v != nil {
		builder.WriteString("branch_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.WorktreePath; v != nil {
		builder.WriteString("worktree_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BaseBranch; v != nil {
		builder.WriteString("base_branch=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("dependencies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dependencies))
	builder.WriteString(", ")
	builder.WriteString("diff_stats=")
	builder.WriteString(fmt.Sprintf("%v", _m.DiffStats))
	builder.WriteString(", ")
	builder.WriteString("archived=")
	builder.WriteString(fmt.Sprintf("%v", _m.Archived))
	builder.WriteString(", ")
	if v := _m.GoalID; v != nil {
		builder.WriteString("goal_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Cards is a parsable slice of Card.
type Cards []*Card
