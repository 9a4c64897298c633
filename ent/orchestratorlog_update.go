// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/cardsmith/ent/orchestratorlog"
	"github.com/codeready-toolchain/cardsmith/ent/predicate"
)

// OrchestratorLogUpdate is the builder for updating OrchestratorLog entities.
type OrchestratorLogUpdate struct {
	config
	hooks    []Hook
	mutation *OrchestratorLogMutation
}

// Where appends a list predicates to the OrchestratorLogUpdate builder.
func (_u *OrchestratorLogUpdate) Where(ps ...predicate.OrchestratorLog) *OrchestratorLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLevel sets the "level" field.
func (_u *OrchestratorLogUpdate) SetLevel(v orchestratorlog.Level) *OrchestratorLogUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *OrchestratorLogUpdate) SetNillableLevel(v *orchestratorlog.Level) *OrchestratorLogUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *OrchestratorLogUpdate) SetMessage(v string) *OrchestratorLogUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *OrchestratorLogUpdate) SetNillableMessage(v *string) *OrchestratorLogUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *OrchestratorLogUpdate) SetContext(v map[string]interface{}) *OrchestratorLogUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *OrchestratorLogUpdate) ClearContext() *OrchestratorLogUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *OrchestratorLogUpdate) SetGoalID(v string) *OrchestratorLogUpdate {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *OrchestratorLogUpdate) SetNillableGoalID(v *string) *OrchestratorLogUpdate {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// ClearGoalID clears the value of the "goal_id" field.
func (_u *OrchestratorLogUpdate) ClearGoalID() *OrchestratorLogUpdate {
	_u.mutation.ClearGoalID()
	return _u
}

// Mutation returns the OrchestratorLogMutation object of the builder.
func (_u *OrchestratorLogUpdate) Mutation() *OrchestratorLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrchestratorLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrchestratorLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrchestratorLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrchestratorLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrchestratorLogUpdate) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := orchestratorlog.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "OrchestratorLog.level": %w`, err)}
		}
	}
	return nil
}

func (_u *OrchestratorLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orchestratorlog.Table, orchestratorlog.Columns, sqlgraph.NewFieldSpec(orchestratorlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(orchestratorlog.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(orchestratorlog.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(orchestratorlog.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(orchestratorlog.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(orchestratorlog.FieldGoalID, field.TypeString, value)
	}
	if _u.mutation.GoalIDCleared() {
		_spec.ClearField(orchestratorlog.FieldGoalID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orchestratorlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrchestratorLogUpdateOne is the builder for updating a single OrchestratorLog entity.
type OrchestratorLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrchestratorLogMutation
}

// SetLevel sets the "level" field.
func (_u *OrchestratorLogUpdateOne) SetLevel(v orchestratorlog.Level) *OrchestratorLogUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *OrchestratorLogUpdateOne) SetNillableLevel(v *orchestratorlog.Level) *OrchestratorLogUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *OrchestratorLogUpdateOne) SetMessage(v string) *OrchestratorLogUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *OrchestratorLogUpdateOne) SetNillableMessage(v *string) *OrchestratorLogUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *OrchestratorLogUpdateOne) SetContext(v map[string]interface{}) *OrchestratorLogUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *OrchestratorLogUpdateOne) ClearContext() *OrchestratorLogUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *OrchestratorLogUpdateOne) SetGoalID(v string) *OrchestratorLogUpdateOne {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *OrchestratorLogUpdateOne) SetNillableGoalID(v *string) *OrchestratorLogUpdateOne {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// ClearGoalID clears the value of the "goal_id" field.
func (_u *OrchestratorLogUpdateOne) ClearGoalID() *OrchestratorLogUpdateOne {
	_u.mutation.ClearGoalID()
	return _u
}

// Mutation returns the OrchestratorLogMutation object of the builder.
func (_u *OrchestratorLogUpdateOne) Mutation() *OrchestratorLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the OrchestratorLogUpdate builder.
func (_u *OrchestratorLogUpdateOne) Where(ps ...predicate.OrchestratorLog) *OrchestratorLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrchestratorLogUpdateOne) Select(field string, fields ...string) *OrchestratorLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrchestratorLog entity.
func (_u *OrchestratorLogUpdateOne) Save(ctx context.Context) (*OrchestratorLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrchestratorLogUpdateOne) SaveX(ctx context.Context) *OrchestratorLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrchestratorLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrchestratorLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrchestratorLogUpdateOne) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := orchestratorlog.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "OrchestratorLog.level": %w`, err)}
		}
	}
	return nil
}

func (_u *OrchestratorLogUpdateOne) sqlSave(ctx context.Context) (_node *OrchestratorLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orchestratorlog.Table, orchestratorlog.Columns, sqlgraph.NewFieldSpec(orchestratorlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrchestratorLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orchestratorlog.FieldID)
		for _, f := range fields {
			if !orchestratorlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orchestratorlog.FieldID {
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
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(orchestratorlog.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(orchestratorlog.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(orchestratorlog.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(orchestratorlog.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(orchestratorlog.FieldGoalID, field.TypeString, value)
	}
	if _u.mutation.GoalIDCleared() {
		_spec.ClearField(orchestratorlog.FieldGoalID, field.TypeString)
	}
	_node = &OrchestratorLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orchestratorlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
