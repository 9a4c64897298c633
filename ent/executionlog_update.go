// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/cardsmith/ent/executionlog"
	"github.com/codeready-toolchain/cardsmith/ent/predicate"
)

// ExecutionLogUpdate is the builder for updating ExecutionLog entities.
type ExecutionLogUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionLogMutation
}

// Where appends a list predicates to the ExecutionLogUpdate builder.
func (_u *ExecutionLogUpdate) Where(ps ...predicate.ExecutionLog) *ExecutionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *ExecutionLogUpdate) SetSequence(v int) *ExecutionLogUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableSequence(v *int) *ExecutionLogUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ExecutionLogUpdate) AddSequence(v int) *ExecutionLogUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetLogType sets the "log_type" field.
func (_u *ExecutionLogUpdate) SetLogType(v executionlog.LogType) *ExecutionLogUpdate {
	_u.mutation.SetLogType(v)
	return _u
}

// SetNillableLogType sets the "log_type" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableLogType(v *executionlog.LogType) *ExecutionLogUpdate {
	if v != nil {
		_u.SetLogType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ExecutionLogUpdate) SetContent(v string) *ExecutionLogUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableContent(v *string) *ExecutionLogUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the ExecutionLogMutation object of the builder.
func (_u *ExecutionLogUpdate) Mutation() *ExecutionLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionLogUpdate) check() error {
	if v, ok := _u.mutation.LogType(); ok {
		if err := executionlog.LogTypeValidator(v); err != nil {
			return &ValidationError{Name: "log_type", err: fmt.Errorf(`ent: validator failed for field "ExecutionLog.log_type": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionLog.execution"`)
	}
	return nil
}

func (_u *ExecutionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionlog.Table, executionlog.Columns, sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(executionlog.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(executionlog.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LogType(); ok {
		_spec.SetField(executionlog.FieldLogType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(executionlog.FieldContent, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionLogUpdateOne is the builder for updating a single ExecutionLog entity.
type ExecutionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionLogMutation
}

// SetSequence sets the "sequence" field.
func (_u *ExecutionLogUpdateOne) SetSequence(v int) *ExecutionLogUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableSequence(v *int) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ExecutionLogUpdateOne) AddSequence(v int) *ExecutionLogUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetLogType sets the "log_type" field.
func (_u *ExecutionLogUpdateOne) SetLogType(v executionlog.LogType) *ExecutionLogUpdateOne {
	_u.mutation.SetLogType(v)
	return _u
}

// SetNillableLogType sets the "log_type" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableLogType(v *executionlog.LogType) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetLogType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ExecutionLogUpdateOne) SetContent(v string) *ExecutionLogUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableContent(v *string) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the ExecutionLogMutation object of the builder.
func (_u *ExecutionLogUpdateOne) Mutation() *ExecutionLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionLogUpdate builder.
func (_u *ExecutionLogUpdateOne) Where(ps ...predicate.ExecutionLog) *ExecutionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionLogUpdateOne) Select(field string, fields ...string) *ExecutionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionLog entity.
func (_u *ExecutionLogUpdateOne) Save(ctx context.Context) (*ExecutionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionLogUpdateOne) SaveX(ctx context.Context) *ExecutionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionLogUpdateOne) check() error {
	if v, ok := _u.mutation.LogType(); ok {
		if err := executionlog.LogTypeValidator(v); err != nil {
			return &ValidationError{Name: "log_type", err: fmt.Errorf(`ent: validator failed for field "ExecutionLog.log_type": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionLog.execution"`)
	}
	return nil
}

func (_u *ExecutionLogUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionlog.Table, executionlog.Columns, sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executionlog.FieldID)
		for _, f := range fields {
			if !executionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executionlog.FieldID {
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
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(executionlog.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(executionlog.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LogType(); ok {
		_spec.SetField(executionlog.FieldLogType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(executionlog.FieldContent, field.TypeString, value)
	}
	_node = &ExecutionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
