// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/cardsmith/ent/memoryentry"
	"github.com/codeready-toolchain/cardsmith/ent/predicate"
)

// MemoryEntryUpdate is the builder for updating MemoryEntry entities.
type MemoryEntryUpdate struct {
	config
	hooks    []Hook
	mutation *MemoryEntryMutation
}

// Where appends a list predicates to the MemoryEntryUpdate builder.
func (_u *MemoryEntryUpdate) Where(ps ...predicate.MemoryEntry) *MemoryEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntryType sets the "entry_type" field.
func (_u *MemoryEntryUpdate) SetEntryType(v memoryentry.EntryType) *MemoryEntryUpdate {
	_u.mutation.SetEntryType(v)
	return _u
}

// SetNillableEntryType sets the "entry_type" field if the given value is not nil.
func (_u *MemoryEntryUpdate) SetNillableEntryType(v *memoryentry.EntryType) *MemoryEntryUpdate {
	if v != nil {
		_u.SetEntryType(*v)
	}
	return _u
}

// Mutation returns the MemoryEntryMutation object of the builder.
func (_u *MemoryEntryUpdate) Mutation() *MemoryEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemoryEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemoryEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryEntryUpdate) check() error {
	if v, ok := _u.mutation.EntryType(); ok {
		if err := memoryentry.EntryTypeValidator(v); err != nil {
			return &ValidationError{Name: "entry_type", err: fmt.Errorf(`ent: validator failed for field "MemoryEntry.entry_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MemoryEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryentry.Table, memoryentry.Columns, sqlgraph.NewFieldSpec(memoryentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntryType(); ok {
		_spec.SetField(memoryentry.FieldEntryType, field.TypeEnum, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(memoryentry.FieldContext, field.TypeJSON)
	}
	if _u.mutation.GoalIDCleared() {
		_spec.ClearField(memoryentry.FieldGoalID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemoryEntryUpdateOne is the builder for updating a single MemoryEntry entity.
type MemoryEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemoryEntryMutation
}

// SetEntryType sets the "entry_type" field.
func (_u *MemoryEntryUpdateOne) SetEntryType(v memoryentry.EntryType) *MemoryEntryUpdateOne {
	_u.mutation.SetEntryType(v)
	return _u
}

// SetNillableEntryType sets the "entry_type" field if the given value is not nil.
func (_u *MemoryEntryUpdateOne) SetNillableEntryType(v *memoryentry.EntryType) *MemoryEntryUpdateOne {
	if v != nil {
		_u.SetEntryType(*v)
	}
	return _u
}

// Mutation returns the MemoryEntryMutation object of the builder.
func (_u *MemoryEntryUpdateOne) Mutation() *MemoryEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the MemoryEntryUpdate builder.
func (_u *MemoryEntryUpdateOne) Where(ps ...predicate.MemoryEntry) *MemoryEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemoryEntryUpdateOne) Select(field string, fields ...string) *MemoryEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MemoryEntry entity.
func (_u *MemoryEntryUpdateOne) Save(ctx context.Context) (*MemoryEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryEntryUpdateOne) SaveX(ctx context.Context) *MemoryEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemoryEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryEntryUpdateOne) check() error {
	if v, ok := _u.mutation.EntryType(); ok {
		if err := memoryentry.EntryTypeValidator(v); err != nil {
			return &ValidationError{Name: "entry_type", err: fmt.Errorf(`ent: validator failed for field "MemoryEntry.entry_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MemoryEntryUpdateOne) sqlSave(ctx context.Context) (_node *MemoryEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryentry.Table, memoryentry.Columns, sqlgraph.NewFieldSpec(memoryentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MemoryEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memoryentry.FieldID)
		for _, f := range fields {
			if !memoryentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != memoryentry.FieldID {
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
	if value, ok := _u.mutation.EntryType(); ok {
		_spec.SetField(memoryentry.FieldEntryType, field.TypeEnum, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(memoryentry.FieldContext, field.TypeJSON)
	}
	if _u.mutation.GoalIDCleared() {
		_spec.ClearField(memoryentry.FieldGoalID, field.TypeString)
	}
	_node = &MemoryEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
