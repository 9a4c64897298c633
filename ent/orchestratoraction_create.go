// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/cardsmith/ent/orchestratoraction"
)

// OrchestratorActionCreate is the builder for creating a OrchestratorAction entity.
type OrchestratorActionCreate struct {
	config
	mutation *OrchestratorActionMutation
	hooks    []Hook
}

// SetDecision sets the "decision" field.
func (_c *OrchestratorActionCreate) SetDecision(v string) *OrchestratorActionCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetGoalID sets the "goal_id" field.
func (_c *OrchestratorActionCreate) SetGoalID(v string) *OrchestratorActionCreate {
	_c.mutation.SetGoalID(v)
	return _c
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_c *OrchestratorActionCreate) SetNillableGoalID(v *string) *OrchestratorActionCreate {
	if v != nil {
		_c.SetGoalID(*v)
	}
	return _c
}

// SetCardIds sets the "card_ids" field.
func (_c *OrchestratorActionCreate) SetCardIds(v []string) *OrchestratorActionCreate {
	_c.mutation.SetCardIds(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *OrchestratorActionCreate) SetReason(v string) *OrchestratorActionCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *OrchestratorActionCreate) SetContext(v map[string]interface{}) *OrchestratorActionCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *OrchestratorActionCreate) SetSuccess(v bool) *OrchestratorActionCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *OrchestratorActionCreate) SetNillableSuccess(v *bool) *OrchestratorActionCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *OrchestratorActionCreate) SetError(v string) *OrchestratorActionCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *OrchestratorActionCreate) SetNillableError(v *string) *OrchestratorActionCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetLearning sets the "learning" field.
func (_c *OrchestratorActionCreate) SetLearning(v string) *OrchestratorActionCreate {
	_c.mutation.SetLearning(v)
	return _c
}

// SetNillableLearning sets the "learning" field if the given value is not nil.
func (_c *OrchestratorActionCreate) SetNillableLearning(v *string) *OrchestratorActionCreate {
	if v != nil {
		_c.SetLearning(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrchestratorActionCreate) SetCreatedAt(v time.Time) *OrchestratorActionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrchestratorActionCreate) SetNillableCreatedAt(v *time.Time) *OrchestratorActionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrchestratorActionCreate) SetID(v string) *OrchestratorActionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OrchestratorActionMutation object of the builder.
func (_c *OrchestratorActionCreate) Mutation() *OrchestratorActionMutation {
	return _c.mutation
}

// Save creates the OrchestratorAction in the database.
func (_c *OrchestratorActionCreate) Save(ctx context.Context) (*OrchestratorAction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrchestratorActionCreate) SaveX(ctx context.Context) *OrchestratorAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrchestratorActionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrchestratorActionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrchestratorActionCreate) defaults() {
	if _, ok := _c.mutation.Success(); !ok {
		v := orchestratoraction.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := orchestratoraction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrchestratorActionCreate) check() error {
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "OrchestratorAction.decision"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "OrchestratorAction.reason"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "OrchestratorAction.success"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OrchestratorAction.created_at"`)}
	}
	return nil
}

func (_c *OrchestratorActionCreate) sqlSave(ctx context.Context) (*OrchestratorAction, error) {
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
			return nil, fmt.Errorf("unexpected OrchestratorAction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrchestratorActionCreate) createSpec() (*OrchestratorAction, *sqlgraph.CreateSpec) {
	var (
		_node = &OrchestratorAction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orchestratoraction.Table, sqlgraph.NewFieldSpec(orchestratoraction.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(orchestratoraction.FieldDecision, field.TypeString, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.GoalID(); ok {
		_spec.SetField(orchestratoraction.FieldGoalID, field.TypeString, value)
		_node.GoalID = &value
	}
	if value, ok := _c.mutation.CardIds(); ok {
		_spec.SetField(orchestratoraction.FieldCardIds, field.TypeJSON, value)
		_node.CardIds = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(orchestratoraction.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(orchestratoraction.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(orchestratoraction.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(orchestratoraction.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.Learning(); ok {
		_spec.SetField(orchestratoraction.FieldLearning, field.TypeString, value)
		_node.Learning = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(orchestratoraction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OrchestratorActionCreateBulk is the builder for creating many OrchestratorAction entities in bulk.
type OrchestratorActionCreateBulk struct {
	config
	err      error
	builders []*OrchestratorActionCreate
}

// Save creates the OrchestratorAction entities in the database.
func (_c *OrchestratorActionCreateBulk) Save(ctx context.Context) ([]*OrchestratorAction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrchestratorAction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrchestratorActionMutation)
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
func (_c *OrchestratorActionCreateBulk) SaveX(ctx context.Context) []*OrchestratorAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrchestratorActionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrchestratorActionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
