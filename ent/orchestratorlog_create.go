// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/cardsmith/ent/orchestratorlog"
)

// OrchestratorLogCreate is the builder for creating a OrchestratorLog entity.
type OrchestratorLogCreate struct {
	config
	mutation *OrchestratorLogMutation
	hooks    []Hook
}

// SetLevel sets the "level" field.
func (_c *OrchestratorLogCreate) SetLevel(v orchestratorlog.Level) *OrchestratorLogCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *OrchestratorLogCreate) SetNillableLevel(v *orchestratorlog.Level) *OrchestratorLogCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *OrchestratorLogCreate) SetMessage(v string) *OrchestratorLogCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *OrchestratorLogCreate) SetContext(v map[string]interface{}) *OrchestratorLogCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetGoalID sets the "goal_id" field.
func (_c *OrchestratorLogCreate) SetGoalID(v string) *OrchestratorLogCreate {
	_c.mutation.SetGoalID(v)
	return _c
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_c *OrchestratorLogCreate) SetNillableGoalID(v *string) *OrchestratorLogCreate {
	if v != nil {
		_c.SetGoalID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrchestratorLogCreate) SetCreatedAt(v time.Time) *OrchestratorLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrchestratorLogCreate) SetNillableCreatedAt(v *time.Time) *OrchestratorLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the OrchestratorLogMutation object of the builder.
func (_c *OrchestratorLogCreate) Mutation() *OrchestratorLogMutation {
	return _c.mutation
}

// Save creates the OrchestratorLog in the database.
func (_c *OrchestratorLogCreate) Save(ctx context.Context) (*OrchestratorLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrchestratorLogCreate) SaveX(ctx context.Context) *OrchestratorLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrchestratorLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrchestratorLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrchestratorLogCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := orchestratorlog.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := orchestratorlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrchestratorLogCreate) check() error {
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "OrchestratorLog.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := orchestratorlog.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "OrchestratorLog.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "OrchestratorLog.message"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OrchestratorLog.created_at"`)}
	}
	return nil
}

func (_c *OrchestratorLogCreate) sqlSave(ctx context.Context) (*OrchestratorLog, error) {
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

func (_c *OrchestratorLogCreate) createSpec() (*OrchestratorLog, *sqlgraph.CreateSpec) {
	var (
		_node = &OrchestratorLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orchestratorlog.Table, sqlgraph.NewFieldSpec(orchestratorlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(orchestratorlog.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(orchestratorlog.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(orchestratorlog.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.GoalID(); ok {
		_spec.SetField(orchestratorlog.FieldGoalID, field.TypeString, value)
		_node.GoalID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(orchestratorlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OrchestratorLogCreateBulk is the builder for creating many OrchestratorLog entities in bulk.
type OrchestratorLogCreateBulk struct {
	config
	err      error
	builders []*OrchestratorLogCreate
}

// Save creates the OrchestratorLog entities in the database.
func (_c *OrchestratorLogCreateBulk) Save(ctx context.Context) ([]*OrchestratorLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrchestratorLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrchestratorLogMutation)
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
func (_c *OrchestratorLogCreateBulk) SaveX(ctx context.Context) []*OrchestratorLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrchestratorLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrchestratorLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
