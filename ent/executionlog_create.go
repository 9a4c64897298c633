// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/cardsmith/ent/execution"
	"github.com/codeready-toolchain/cardsmith/ent/executionlog"
)

// ExecutionLogCreate is the builder for creating a ExecutionLog entity.
type ExecutionLogCreate struct {
	config
	mutation *ExecutionLogMutation
	hooks    []Hook
}

// SetExecutionID sets the "execution_id" field.
func (_c *ExecutionLogCreate) SetExecutionID(v string) *ExecutionLogCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *ExecutionLogCreate) SetSequence(v int) *ExecutionLogCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetLogType sets the "log_type" field.
func (_c *ExecutionLogCreate) SetLogType(v executionlog.LogType) *ExecutionLogCreate {
	_c.mutation.SetLogType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ExecutionLogCreate) SetContent(v string) *ExecutionLogCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionLogCreate) SetCreatedAt(v time.Time) *ExecutionLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableCreatedAt(v *time.Time) *ExecutionLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExecution sets the "execution" edge to the Execution entity.
func (_c *ExecutionLogCreate) SetExecution(v *Execution) *ExecutionLogCreate {
	return _c.SetExecutionID(v.ID)
}

// Mutation returns the ExecutionLogMutation object of the builder.
func (_c *ExecutionLogCreate) Mutation() *ExecutionLogMutation {
	return _c.mutation
}

// Save creates the ExecutionLog in the database.
func (_c *ExecutionLogCreate) Save(ctx context.Context) (*ExecutionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionLogCreate) SaveX(ctx context.Context) *ExecutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := executionlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionLogCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "ExecutionLog.execution_id"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExecutionLog.sequence"`)}
	}
	if _, ok := _c.mutation.LogType(); !ok {
		return &ValidationError{Name: "log_type", err: errors.New(`ent: missing required field "ExecutionLog.log_type"`)}
	}
	if v, ok := _c.mutation.LogType(); ok {
		if err := executionlog.LogTypeValidator(v); err != nil {
			return &ValidationError{Name: "log_type", err: fmt.Errorf(`ent: validator failed for field "ExecutionLog.log_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ExecutionLog.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExecutionLog.created_at"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "ExecutionLog.execution"`)}
	}
	return nil
}

func (_c *ExecutionLogCreate) sqlSave(ctx context.Context) (*ExecutionLog, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionLogCreate) createSpec() (*ExecutionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executionlog.Table, sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(executionlog.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.LogType(); ok {
		_spec.SetField(executionlog.FieldLogType, field.TypeEnum, value)
		_node.LogType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(executionlog.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(executionlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executionlog.ExecutionTable,
			Columns: []string{executionlog.ExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExecutionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExecutionLogCreateBulk is the builder for creating many ExecutionLog entities in bulk.
type ExecutionLogCreateBulk struct {
	config
	err      error
	builders []*ExecutionLogCreate
}

// Save creates the ExecutionLog entities in the database.
func (_c *ExecutionLogCreateBulk) Save(ctx context.Context) ([]*ExecutionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionLogMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ExecutionLogCreateBulk) SaveX(ctx context.Context) []*ExecutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
