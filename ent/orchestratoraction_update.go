// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/cardsmith/ent/orchestratoraction"
	"github.com/codeready-toolchain/cardsmith/ent/predicate"
)

// OrchestratorActionUpdate is the builder for updating OrchestratorAction entities.
type OrchestratorActionUpdate struct {
	config
	hooks    []Hook
	mutation *OrchestratorActionMutation
}

// Where appends a list predicates to the OrchestratorActionUpdate builder.
func (_u *OrchestratorActionUpdate) Where(ps ...predicate.OrchestratorAction) *OrchestratorActionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDecision sets the "decision" field.
func (_u *OrchestratorActionUpdate) SetDecision(v string) *OrchestratorActionUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *OrchestratorActionUpdate) SetNillableDecision(v *string) *OrchestratorActionUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *OrchestratorActionUpdate) SetGoalID(v string) *OrchestratorActionUpdate {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *OrchestratorActionUpdate) SetNillableGoalID(v *string) *OrchestratorActionUpdate {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// ClearGoalID clears the value of the "goal_id" field.
func (_u *OrchestratorActionUpdate) ClearGoalID() *OrchestratorActionUpdate {
	_u.mutation.ClearGoalID()
	return _u
}

// SetCardIds sets the "card_ids" field.
func (_u *OrchestratorActionUpdate) SetCardIds(v []string) *OrchestratorActionUpdate {
	_u.mutation.SetCardIds(v)
	return _u
}

// AppendCardIds appends value to the "card_ids" field.
func (_u *OrchestratorActionUpdate) AppendCardIds(v []string) *OrchestratorActionUpdate {
	_u.mutation.AppendCardIds(v)
	return _u
}

// ClearCardIds clears the value of the "card_ids" field.
func (_u *OrchestratorActionUpdate) ClearCardIds() *OrchestratorActionUpdate {
	_u.mutation.ClearCardIds()
	return _u
}

// SetReason sets the "reason" field.
func (_u *OrchestratorActionUpdate) SetReason(v string) *OrchestratorActionUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *OrchestratorActionUpdate) SetNillableReason(v *string) *OrchestratorActionUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *OrchestratorActionUpdate) SetContext(v map[string]interface{}) *OrchestratorActionUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *OrchestratorActionUpdate) ClearContext() *OrchestratorActionUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *OrchestratorActionUpdate) SetSuccess(v bool) *OrchestratorActionUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *OrchestratorActionUpdate) SetNillableSuccess(v *bool) *OrchestratorActionUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *OrchestratorActionUpdate) SetError(v string) *OrchestratorActionUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *OrchestratorActionUpdate) SetNillableError(v *string) *OrchestratorActionUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *OrchestratorActionUpdate) ClearError() *OrchestratorActionUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetLearning sets the "learning" field.
func (_u *OrchestratorActionUpdate) SetLearning(v string) *OrchestratorActionUpdate {
	_u.mutation.SetLearning(v)
	return _u
}

// SetNillableLearning sets the "learning" field if the given value is not nil.
func (_u *OrchestratorActionUpdate) SetNillableLearning(v *string) *OrchestratorActionUpdate {
	if v != nil {
		_u.SetLearning(*v)
	}
	return _u
}

// ClearLearning clears the value of the "learning" field.
func (_u *OrchestratorActionUpdate) ClearLearning() *OrchestratorActionUpdate {
	_u.mutation.ClearLearning()
	return _u
}

// Mutation returns the OrchestratorActionMutation object of the builder.
func (_u *OrchestratorActionUpdate) Mutation() *OrchestratorActionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrchestratorActionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrchestratorActionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrchestratorActionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrchestratorActionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OrchestratorActionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(orchestratoraction.Table, orchestratoraction.Columns, sqlgraph.NewFieldSpec(orchestratoraction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(orchestratoraction.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(orchestratoraction.FieldGoalID, field.TypeString, value)
	}
	if _u.mutation.GoalIDCleared() {
		_spec.ClearField(orchestratoraction.FieldGoalID, field.TypeString)
	}
	if value, ok := _u.mutation.CardIds(); ok {
		_spec.SetField(orchestratoraction.FieldCardIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCardIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, orchestratoraction.FieldCardIds, value)
		})
	}
	if _u.mutation.CardIdsCleared() {
		_spec.ClearField(orchestratoraction.FieldCardIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(orchestratoraction.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(orchestratoraction.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(orchestratoraction.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(orchestratoraction.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(orchestratoraction.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(orchestratoraction.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.Learning(); ok {
		_spec.SetField(orchestratoraction.FieldLearning, field.TypeString, value)
	}
	if _u.mutation.LearningCleared() {
		_spec.ClearField(orchestratoraction.FieldLearning, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orchestratoraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrchestratorActionUpdateOne is the builder for updating a single OrchestratorAction entity.
type OrchestratorActionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrchestratorActionMutation
}

// SetDecision sets the "decision" field.
func (_u *OrchestratorActionUpdateOne) SetDecision(v string) *OrchestratorActionUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *OrchestratorActionUpdateOne) SetNillableDecision(v *string) *OrchestratorActionUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *OrchestratorActionUpdateOne) SetGoalID(v string) *OrchestratorActionUpdateOne {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *OrchestratorActionUpdateOne) SetNillableGoalID(v *string) *OrchestratorActionUpdateOne {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// ClearGoalID clears the value of the "goal_id" field.
func (_u *OrchestratorActionUpdateOne) ClearGoalID() *OrchestratorActionUpdateOne {
	_u.mutation.ClearGoalID()
	return _u
}

// SetCardIds sets the "card_ids" field.
func (_u *OrchestratorActionUpdateOne) SetCardIds(v []string) *OrchestratorActionUpdateOne {
	_u.mutation.SetCardIds(v)
	return _u
}

// AppendCardIds appends value to the "card_ids" field.
func (_u *OrchestratorActionUpdateOne) AppendCardIds(v []string) *OrchestratorActionUpdateOne {
	_u.mutation.AppendCardIds(v)
	return _u
}

// ClearCardIds clears the value of the "card_ids" field.
func (_u *OrchestratorActionUpdateOne) ClearCardIds() *OrchestratorActionUpdateOne {
	_u.mutation.ClearCardIds()
	return _u
}

// SetReason sets the "reason" field.
func (_u *OrchestratorActionUpdateOne) SetReason(v string) *OrchestratorActionUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *OrchestratorActionUpdateOne) SetNillableReason(v *string) *OrchestratorActionUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *OrchestratorActionUpdateOne) SetContext(v map[string]interface{}) *OrchestratorActionUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *OrchestratorActionUpdateOne) ClearContext() *OrchestratorActionUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *OrchestratorActionUpdateOne) SetSuccess(v bool) *OrchestratorActionUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *OrchestratorActionUpdateOne) SetNillableSuccess(v *bool) *OrchestratorActionUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *OrchestratorActionUpdateOne) SetError(v string) *OrchestratorActionUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *OrchestratorActionUpdateOne) SetNillableError(v *string) *OrchestratorActionUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *OrchestratorActionUpdateOne) ClearError() *OrchestratorActionUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetLearning sets the "learning" field.
func (_u *OrchestratorActionUpdateOne) SetLearning(v string) *OrchestratorActionUpdateOne {
	_u.mutation.SetLearning(v)
	return _u
}

// SetNillableLearning sets the "learning" field if the given value is not nil.
func (_u *OrchestratorActionUpdateOne) SetNillableLearning(v *string) *OrchestratorActionUpdateOne {
	if v != nil {
		_u.SetLearning(*v)
	}
	return _u
}

// ClearLearning clears the value of the "learning" field.
func (_u *OrchestratorActionUpdateOne) ClearLearning() *OrchestratorActionUpdateOne {
	_u.mutation.ClearLearning()
	return _u
}

// Mutation returns the OrchestratorActionMutation object of the builder.
func (_u *OrchestratorActionUpdateOne) Mutation() *OrchestratorActionMutation {
	return _u.mutation
}

// Where appends a list predicates to the OrchestratorActionUpdate builder.
func (_u *OrchestratorActionUpdateOne) Where(ps ...predicate.OrchestratorAction) *OrchestratorActionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrchestratorActionUpdateOne) Select(field string, fields ...string) *OrchestratorActionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrchestratorAction entity.
func (_u *OrchestratorActionUpdateOne) Save(ctx context.Context) (*OrchestratorAction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrchestratorActionUpdateOne) SaveX(ctx context.Context) *OrchestratorAction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrchestratorActionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrchestratorActionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OrchestratorActionUpdateOne) sqlSave(ctx context.Context) (_node *OrchestratorAction, err error) {
	_spec := sqlgraph.NewUpdateSpec(orchestratoraction.Table, orchestratoraction.Columns, sqlgraph.NewFieldSpec(orchestratoraction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrchestratorAction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orchestratoraction.FieldID)
		for _, f := range fields {
			if !orchestratoraction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orchestratoraction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(orchestratoraction.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(orchestratoraction.FieldGoalID, field.TypeString, value)
	}
	if _u.mutation.GoalIDCleared() {
		_spec.ClearField(orchestratoraction.FieldGoalID, field.TypeString)
	}
	if value, ok := _u.mutation.CardIds(); ok {
		_spec.SetField(orchestratoraction.FieldCardIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCardIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, orchestratoraction.FieldCardIds, value)
		})
	}
	if _u.mutation.CardIdsCleared() {
		_spec.ClearField(orchestratoraction.FieldCardIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(orchestratoraction.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(orchestratoraction.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(orchestratoraction.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(orchestratoraction.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(orchestratoraction.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(orchestratoraction.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.Learning(); ok {
		_spec.SetField(orchestratoraction.FieldLearning, field.TypeString, value)
	}
	if _u.mutation.LearningCleared() {
		_spec.ClearField(orchestratoraction.FieldLearning, field.TypeString)
	}
	_node = &OrchestratorAction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orchestratoraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
