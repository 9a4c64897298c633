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
	"github.com/codeready-toolchain/cardsmith/ent/execution"
	"github.com/codeready-toolchain/cardsmith/ent/goal"
)

// CardCreate is the builder for creating a Card entity.
type CardCreate struct {
	config
	mutation *CardMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *CardCreate) SetTitle(v string) *CardCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CardCreate) SetDescription(v string) *CardCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CardCreate) SetNillableDescription(v *string) *CardCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetColumn sets the "column" field.
func (_c *CardCreate) SetColumn(v string) *CardCreate {
	_c.mutation.SetColumn(v)
	return _c
}

// SetNillableColumn sets the "column" field if the given value is not nil.
func (_c *CardCreate) SetNillableColumn(v *string) *CardCreate {
	if v != nil {
		_c.SetColumn(*v)
	}
	return _c
}

// SetSpecPath sets the "spec_path" field.
func (_c *CardCreate) SetSpecPath(v string) *CardCreate {
	_c.mutation.SetSpecPath(v)
	return _c
}

// SetNillableSpecPath sets the "spec_path" field if the given value is not nil.
func (_c *CardCreate) SetNillableSpecPath(v *string) *CardCreate {
	if v != nil {
		_c.SetSpecPath(*v)
	}
	return _c
}

// SetModelPlan sets the "model_plan" field.
func (_c *CardCreate) SetModelPlan(v string) *CardCreate {
	_c.mutation.SetModelPlan(v)
	return _c
}

// SetNillableModelPlan sets the "model_plan" field if the given value is not nil.
func (_c *CardCreate) SetNillableModelPlan(v *string) *CardCreate {
	if v != nil {
		_c.SetModelPlan(*v)
	}
	return _c
}

// SetModelImplement sets the "model_implement" field.
func (_c *CardCreate) SetModelImplement(v string) *CardCreate {
	_c.mutation.SetModelImplement(v)
	return _c
}

// SetNillableModelImplement sets the "model_implement" field if the given value is not nil.
func (_c *CardCreate) SetNillableModelImplement(v *string) *CardCreate {
	if v != nil {
		_c.SetModelImplement(*v)
	}
	return _c
}

// SetModelTest sets the "model_test" field.
func (_c *CardCreate) SetModelTest(v string) *CardCreate {
	_c.mutation.SetModelTest(v)
	return _c
}

// SetNillableModelTest sets the "model_test" field if the given value is not nil.
func (_c *CardCreate) SetNillableModelTest(v *string) *CardCreate {
	if v != nil {
		_c.SetModelTest(*v)
	}
	return _c
}

// SetModelReview sets the "model_review" field.
func (_c *CardCreate) SetModelReview(v string) *CardCreate {
	_c.mutation.SetModelReview(v)
	return _c
}

// SetNillableModelReview sets the "model_review" field if the given value is not nil.
func (_c *CardCreate) SetNillableModelReview(v *string) *CardCreate {
	if v != nil {
		_c.SetModelReview(*v)
	}
	return _c
}

// SetParentCardID sets the "parent_card_id" field.
func (_c *CardCreate) SetParentCardID(v string) *CardCreate {
	_c.mutation.SetParentCardID(v)
	return _c
}

// SetNillableParentCardID sets the "parent_card_id" field if the given value is not nil.
func (_c *CardCreate) SetNillableParentCardID(v *string) *CardCreate {
	if v != nil {
		_c.SetParentCardID(*v)
	}
	return _c
}

// SetIsFixCard sets the "is_fix_card" field.
func (_c *CardCreate) SetIsFixCard(v bool) *CardCreate {
	_c.mutation.SetIsFixCard(v)
	return _c
}

// SetNillableIsFixCard sets the "is_fix_card" field if the given value is not nil.
func (_c *CardCreate) SetNillableIsFixCard(v *bool) *CardCreate {
	if v != nil {
		_c.SetIsFixCard(*v)
	}
	return _c
}

// SetTestErrorContext sets the "test_error_context" field.
func (_c *CardCreate) SetTestErrorContext(v string) *CardCreate {
	_c.mutation.SetTestErrorContext(v)
	return _c
}

// SetNillableTestErrorContext sets the "test_error_context" field if the given value is not nil.
func (_c *CardCreate) SetNillableTestErrorContext(v *string) *CardCreate {
	if v != nil {
		_c.SetTestErrorContext(*v)
	}
	return _c
}

// SetBranchName sets the "branch_name" field.
func (_c *CardCreate) SetBranchName(v string) *CardCreate {
	_c.mutation.SetBranchName(v)
	return _c
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_c *CardCreate) SetNillableBranchName(v *string) *CardCreate {
	if v != nil {
		_c.SetBranchName(*v)
	}
	return _c
}

// SetWorktreePath sets the "worktree_path" field.
func (_c *CardCreate) SetWorktreePath(v string) *CardCreate {
	_c.mutation.SetWorktreePath(v)
	return _c
}

// SetNillableWorktreePath sets the "worktree_path" field if the given value is not nil.
func (_c *CardCreate) SetNillableWorktreePath(v *string) *CardCreate {
	if v != nil {
		_c.SetWorktreePath(*v)
	}
	return _c
}

// SetBaseBranch sets the "base_branch" field.
func (_c *CardCreate) SetBaseBranch(v string) *CardCreate {
	_c.mutation.SetBaseBranch(v)
	return _c
}

// SetNillableBaseBranch sets the "base_branch" field if the given value is not nil.
func (_c *CardCreate) SetNillableBaseBranch(v *string) *CardCreate {
	if v != nil {
		_c.SetBaseBranch(*v)
	}
	return _c
}

// SetDependencies sets the "dependencies" field.
func (_c *CardCreate) SetDependencies(v []string) *CardCreate {
	_c.mutation.SetDependencies(v)
	return _c
}

// SetDiffStats sets the "diff_stats" field.
func (_c *CardCreate) SetDiffStats(v map[string]interface{}) *CardCreate {
	_c.mutation.SetDiffStats(v)
	return _c
}

// SetArchived sets the "archived" field.
func (_c *CardCreate) SetArchived(v bool) *CardCreate {
	_c.mutation.SetArchived(v)
	return _c
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_c *CardCreate) SetNillableArchived(v *bool) *CardCreate {
	if v != nil {
		_c.SetArchived(*v)
	}
	return _c
}

// SetGoalID sets the "goal_id" field.
func (_c *CardCreate) SetGoalID(v string) *CardCreate {
	_c.mutation.SetGoalID(v)
	return _c
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_c *CardCreate) SetNillableGoalID(v *string) *CardCreate {
	if v != nil {
		_c.SetGoalID(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CardCreate) SetCompletedAt(v time.Time) *CardCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CardCreate) SetNillableCompletedAt(v *time.Time) *CardCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CardCreate) SetCreatedAt(v time.Time) *CardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CardCreate) SetNillableCreatedAt(v *time.Time) *CardCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CardCreate) SetUpdatedAt(v time.Time) *CardCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CardCreate) SetNillableUpdatedAt(v *time.Time) *CardCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CardCreate) SetID(v string) *CardCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetGoal sets the "goal" edge to the Goal entity.
func (_c *CardCreate) SetGoal(v *Goal) *CardCreate {
	return _c.SetGoalID(v.ID)
}

// AddExecutionIDs adds the "executions" edge to the Execution entity by IDs.
func (_c *CardCreate) AddExecutionIDs(ids ...string) *CardCreate {
	_c.mutation.AddExecutionIDs(ids...)
	return _c
}

// AddExecutions adds the "executions" edges to the Execution entity.
func (_c *CardCreate) AddExecutions(v ...*Execution) *CardCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExecutionIDs(ids...)
}

// Mutation returns the CardMutation object of the builder.
func (_c *CardCreate) Mutation() *CardMutation {
	return _c.mutation
}

// Save creates the Card in the database.
func (_c *CardCreate) Save(ctx context.Context) (*Card, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CardCreate) SaveX(ctx context.Context) *Card {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CardCreate) defaults() {
	if _, ok := _c.mutation.Column(); !ok {
		v := card.DefaultColumn
		_c.mutation.SetColumn(v)
	}
	if _, ok := _c.mutation.ModelPlan(); !ok {
		v := card.DefaultModelPlan
		_c.mutation.SetModelPlan(v)
	}
	if _, ok := _c.mutation.ModelImplement(); !ok {
		v := card.DefaultModelImplement
		_c.mutation.SetModelImplement(v)
	}
	if _, ok := _c.mutation.ModelTest(); !ok {
		v := card.DefaultModelTest
		_c.mutation.SetModelTest(v)
	}
	if _, ok := _c.mutation.ModelReview(); !ok {
		v := card.DefaultModelReview
		_c.mutation.SetModelReview(v)
	}
	if _, ok := _c.mutation.IsFixCard(); !ok {
		v := card.DefaultIsFixCard
		_c.mutation.SetIsFixCard(v)
	}
	if _, ok := _c.mutation.Archived(); !ok {
		v := card.DefaultArchived
		_c.mutation.SetArchived(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := card.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := card.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CardCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Card.title"`)}
	}
	if _, ok := _c.mutation.Column(); !ok {
		return &ValidationError{Name: "column", err: errors.New(`ent: missing required field "Card.column"`)}
	}
	if _, ok := _c.mutation.ModelPlan(); !ok {
		return &ValidationError{Name: "model_plan", err: errors.New(`ent: missing required field "Card.model_plan"`)}
	}
	if _, ok := _c.mutation.ModelImplement(); !ok {
		return &ValidationError{Name: "model_implement", err: errors.New(`ent: missing required field "Card.model_implement"`)}
	}
	if _, ok := _c.mutation.ModelTest(); !ok {
		return &ValidationError{Name: "model_test", err: errors.New(`ent: missing required field "Card.model_test"`)}
	}
	if _, ok := _c.mutation.ModelReview(); !ok {
		return &ValidationError{Name: "model_review", err: errors.New(`ent: missing required field "Card.model_review"`)}
	}
	if _, ok := _c.mutation.IsFixCard(); !ok {
		return &ValidationError{Name: "is_fix_card", err: errors.New(`ent: missing required field "Card.is_fix_card"`)}
	}
	if _, ok := _c.mutation.Archived(); !ok {
		return &ValidationError{Name: "archived", err: errors.New(`ent: missing required field "Card.archived"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Card.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Card.updated_at"`)}
	}
	return nil
}

func (_c *CardCreate) sqlSave(ctx context.Context) (*Card, error) {
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
			return nil, fmt.Errorf("unexpected Card.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CardCreate) createSpec() (*Card, *sqlgraph.CreateSpec) {
	var (
		_node = &Card{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(card.Table, sqlgraph.NewFieldSpec(card.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(card.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(card.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Column(); ok {
		_spec.SetField(card.FieldColumn, field.TypeString, value)
		_node.Column = value
	}
	if value, ok := _c.mutation.SpecPath(); ok {
		_spec.SetField(card.FieldSpecPath, field.TypeString, value)
		_node.SpecPath = &value
	}
	if value, ok := _c.mutation.ModelPlan(); ok {
		_spec.SetField(card.FieldModelPlan, field.TypeString, value)
		_node.ModelPlan = value
	}
	if value, ok := _c.mutation.ModelImplement(); ok {
		_spec.SetField(card.FieldModelImplement, field.TypeString, value)
		_node.ModelImplement = value
	}
	if value, ok := _c.mutation.ModelTest(); ok {
		_spec.SetField(card.FieldModelTest, field.TypeString, value)
		_node.ModelTest = value
	}
	if value, ok := _c.mutation.ModelReview(); ok {
		_spec.SetField(card.FieldModelReview, field.TypeString, value)
		_node.ModelReview = value
	}
	if value, ok := _c.mutation.ParentCardID(); ok {
		_spec.SetField(card.FieldParentCardID, field.TypeString, value)
		_node.ParentCardID = &value
	}
	if value, ok := _c.mutation.IsFixCard(); ok {
		_spec.SetField(card.FieldIsFixCard, field.TypeBool, value)
		_node.IsFixCard = value
	}
	if value, ok := _c.mutation.TestErrorContext(); ok {
		_spec.SetField(card.FieldTestErrorContext, field.TypeString, value)
		_node.TestErrorContext = &value
	}
	if value, ok := _c.mutation.BranchName(); ok {
		_spec.SetField(card.FieldBranchName, field.TypeString, value)
		_node.BranchName = &value
	}
	if value, ok := _c.mutation.WorktreePath(); ok {
		_spec.SetField(card.FieldWorktreePath, field.TypeString, value)
		_node.WorktreePath = &value
	}
	if value, ok := _c.mutation.BaseBranch(); ok {
		_spec.SetField(card.FieldBaseBranch, field.TypeString, value)
		_node.BaseBranch = &value
	}
	if value, ok := _c.mutation.Dependencies(); ok {
		_spec.SetField(card.FieldDependencies, field.TypeJSON, value)
		_node.Dependencies = value
	}
	if value, ok := _c.mutation.DiffStats(); ok {
		_spec.SetField(card.FieldDiffStats, field.TypeJSON, value)
		_node.DiffStats = value
	}
	if value, ok := _c.mutation.Archived(); ok {
		_spec.SetField(card.FieldArchived, field.TypeBool, value)
		_node.Archived = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(card.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(card.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(card.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.GoalIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   card.GoalTable,
			Columns: []string{card.GoalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(goal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.GoalID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   card.ExecutionsTable,
			Columns: []string{card.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CardCreateBulk is the builder for creating many Card entities in bulk.
type CardCreateBulk struct {
	config
	err      error
	builders []*CardCreate
}

// Save creates the Card entities in the database.
func (_c *CardCreateBulk) Save(ctx context.Context) ([]*Card, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Card, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CardMutation)
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
func (_c *CardCreateBulk) SaveX(ctx context.Context) []*Card {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
