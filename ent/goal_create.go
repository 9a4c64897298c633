// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/cardsmith/ent/card"
	"github.com/codeready-toolchain/cardsmith/ent/goal"
)

// GoalCreate is the builder for creating a Goal entity.
type GoalCreate struct {
	config
	mutation *GoalMutation
	hooks    []Hook
}

// SetDescription sets the "description" field.
func (_c *GoalCreate) SetDescription(v string) *GoalCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *GoalCreate) SetStatus(v goal.Status) *GoalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GoalCreate) SetNillableStatus(v *goal.Status) *GoalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *GoalCreate) SetSource(v string) *GoalCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *GoalCreate) SetNillableSource(v *string) *GoalCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *GoalCreate) SetSourceID(v string) *GoalCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_c *GoalCreate) SetNillableSourceID(v *string) *GoalCreate {
	if v != nil {
		_c.SetSourceID(*v)
	}
	return _c
}

// SetCardIds sets the "card_ids" field.
func (_c *GoalCreate) SetCardIds(v []string) *GoalCreate {
	_c.mutation.SetCardIds(v)
	return _c
}

// SetLearningText sets the "learning_text" field.
func (_c *GoalCreate) SetLearningText(v string) *GoalCreate {
	_c.mutation.SetLearningText(v)
	return _c
}

// SetNillableLearningText sets the "learning_text" field if the given value is not nil.
func (_c *GoalCreate) SetNillableLearningText(v *string) *GoalCreate {
	if v != nil {
		_c.SetLearningText(*v)
	}
	return _c
}

// SetLearningID sets the "learning_id" field.
func (_c *GoalCreate) SetLearningID(v string) *GoalCreate {
	_c.mutation.SetLearningID(v)
	return _c
}

// SetNillableLearningID sets the "learning_id" field if the given value is not nil.
func (_c *GoalCreate) SetNillableLearningID(v *string) *GoalCreate {
	if v != nil {
		_c.SetLearningID(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *GoalCreate) SetTotalTokens(v int) *GoalCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *GoalCreate) SetNillableTotalTokens(v *int) *GoalCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_c *GoalCreate) SetTotalCostUsd(v float64) *GoalCreate {
	_c.mutation.SetTotalCostUsd(v)
	return _c
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_c *GoalCreate) SetNillableTotalCostUsd(v *float64) *GoalCreate {
	if v != nil {
		_c.SetTotalCostUsd(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *GoalCreate) SetError(v string) *GoalCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *GoalCreate) SetNillableError(v *string) *GoalCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GoalCreate) SetCreatedAt(v time.Time) *GoalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GoalCreate) SetNillableCreatedAt(v *time.Time) *GoalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *GoalCreate) SetStartedAt(v time.Time) *GoalCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *GoalCreate) SetNillableStartedAt(v *time.Time) *GoalCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *GoalCreate) SetCompletedAt(v time.Time) *GoalCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *GoalCreate) SetNillableCompletedAt(v *time.Time) *GoalCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GoalCreate) SetID(v string) *GoalCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddCardIDs adds the "cards" edge to the Card entity by IDs.
func (_c *GoalCreate) AddCardIDs(ids ...string) *GoalCreate {
	_c.mutation.AddCardIDs(ids...)
	return _c
}

// AddCards adds the "cards" edges to the Card entity.
func (_c *GoalCreate) AddCards(v ...*Card) *GoalCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCardIDs(ids...)
}

// Mutation returns the GoalMutation object of the builder.
func (_c *GoalCreate) Mutation() *GoalMutation {
	return _c.mutation
}

// Save creates the Goal in the database.
func (_c *GoalCreate) Save(ctx context.Context) (*Goal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GoalCreate) SaveX(ctx context.Context) *Goal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GoalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GoalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GoalCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := goal.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := goal.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := goal.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.TotalCostUsd(); !ok {
		v := goal.DefaultTotalCostUsd
		_c.mutation.SetTotalCostUsd(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := goal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GoalCreate) check() error {
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Goal.description"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Goal.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := goal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Goal.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Goal.source"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "Goal.total_tokens"`)}
	}
	if _, ok := _c.mutation.TotalCostUsd(); !ok {
		return &ValidationError{Name: "total_cost_usd", err: errors.New(`ent: missing required field "Goal.total_cost_usd"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Goal.created_at"`)}
	}
	return nil
}

func (_c *GoalCreate) sqlSave(ctx context.Context) (*Goal, error) {
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
			return nil, fmt.Errorf("unexpected Goal.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GoalCreate) createSpec() (*Goal, *sqlgraph.CreateSpec) {
	var (
		_node = &Goal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(goal.Table, sqlgraph.NewFieldSpec(goal.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(goal.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(goal.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(goal.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(goal.FieldSourceID, field.TypeString, value)
		_node.SourceID = &value
	}
	if value, ok := _c.mutation.CardIds(); ok {
		_spec.SetField(goal.FieldCardIds, field.TypeJSON, value)
		_node.CardIds = value
	}
	if value, ok := _c.mutation.LearningText(); ok {
		_spec.SetField(goal.FieldLearningText, field.TypeString, value)
		_node.LearningText = &value
	}
	if value, ok := _c.mutation.LearningID(); ok {
		_spec.SetField(goal.FieldLearningID, field.TypeString, value)
		_node.LearningID = &value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(goal.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.TotalCostUsd(); ok {
		_spec.SetField(goal.FieldTotalCostUsd, field.TypeFloat64, value)
		_node.TotalCostUsd = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(goal.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(goal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(goal.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(goal.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.CardsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   goal.CardsTable,
			Columns: []string{goal.CardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(card.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GoalCreateBulk is the builder for creating many Goal entities in bulk.
type GoalCreateBulk struct {
	config
	err      error
	builders []*GoalCreate
}

// Save creates the Goal entities in the database.
func (_c *GoalCreateBulk) Save(ctx context.Context) ([]*Goal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Goal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GoalMutation)
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
func (_c *GoalCreateBulk) SaveX(ctx context.Context) []*Goal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GoalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GoalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
