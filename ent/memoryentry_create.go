// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/cardsmith/ent/memoryentry"
)

// MemoryEntryCreate is the builder for creating a MemoryEntry entity.
type MemoryEntryCreate struct {
	config
	mutation *MemoryEntryMutation
	hooks    []Hook
}

// SetEntryType sets the "entry_type" field.
func (_c *MemoryEntryCreate) SetEntryType(v memoryentry.EntryType) *MemoryEntryCreate {
	_c.mutation.SetEntryType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *MemoryEntryCreate) SetContent(v string) *MemoryEntryCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *MemoryEntryCreate) SetContext(v map[string]interface{}) *MemoryEntryCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetGoalID sets the "goal_id" field.
func (_c *MemoryEntryCreate) SetGoalID(v string) *MemoryEntryCreate {
	_c.mutation.SetGoalID(v)
	return _c
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_c *MemoryEntryCreate) SetNillableGoalID(v *string) *MemoryEntryCreate {
	if v != nil {
		_c.SetGoalID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MemoryEntryCreate) SetCreatedAt(v time.Time) *MemoryEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MemoryEntryCreate) SetNillableCreatedAt(v *time.Time) *MemoryEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *MemoryEntryCreate) SetExpiresAt(v time.Time) *MemoryEntryCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MemoryEntryCreate) SetID(v string) *MemoryEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MemoryEntryMutation object of the builder.
func (_c *MemoryEntryCreate) Mutation() *MemoryEntryMutation {
	return _c.mutation
}

// Save creates the MemoryEntry in the database.
func (_c *MemoryEntryCreate) Save(ctx context.Context) (*MemoryEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemoryEntryCreate) SaveX(ctx context.Context) *MemoryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemoryEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := memoryentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemoryEntryCreate) check() error {
	if _, ok := _c.mutation.EntryType(); !ok {
		return &ValidationError{Name: "entry_type", err: errors.New(`ent: missing required field "MemoryEntry.entry_type"`)}
	}
	if v, ok := _c.mutation.EntryType(); ok {
		if err := memoryentry.EntryTypeValidator(v); err != nil {
			return &ValidationError{Name: "entry_type", err: fmt.Errorf(`ent: validator failed for field "MemoryEntry.entry_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "MemoryEntry.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MemoryEntry.created_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "MemoryEntry.expires_at"`)}
	}
	return nil
}

func (_c *MemoryEntryCreate) sqlSave(ctx context.Context) (*MemoryEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected MemoryEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MemoryEntryCreate) createSpec() (*MemoryEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &MemoryEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(memoryentry.Table, sqlgraph.NewFieldSpec(memoryentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EntryType(); ok {
		_spec.SetField(memoryentry.FieldEntryType, field.TypeEnum, value)
		_node.EntryType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(memoryentry.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(memoryentry.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.GoalID(); ok {
		_spec.SetField(memoryentry.FieldGoalID, field.TypeString, value)
		_node.GoalID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(memoryentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(memoryentry.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// MemoryEntryCreateBulk is the builder for creating many MemoryEntry entities in bulk.
type MemoryEntryCreateBulk struct {
	config
	err      error
	builders []*MemoryEntryCreate
}

// Save creates the MemoryEntry entities in the database.
func (_c *MemoryEntryCreateBulk) Save(ctx context.Context) ([]*MemoryEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MemoryEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemoryEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MemoryEntryCreateBulk) SaveX(ctx context.Context) []*MemoryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
