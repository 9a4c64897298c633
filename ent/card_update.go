// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/cardsmith/ent/card"
	"github.com/codeready-toolchain/cardsmith/ent/execution"
	"github.com/codeready-toolchain/cardsmith/ent/goal"
	"github.com/codeready-toolchain/cardsmith/ent/predicate"
)

// CardUpdate is the builder for updating Card entities.
type CardUpdate struct {
	config
	hooks    []Hook
	mutation *CardMutation
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdate) Where(ps ...predicate.Card) *CardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CardUpdate) SetTitle(v string) *CardUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CardUpdate) SetNillableTitle(v *string) *CardUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CardUpdate) SetDescription(v string) *CardUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CardUpdate) SetNillableDescription(v *string) *CardUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CardUpdate) ClearDescription() *CardUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetColumn sets the "column" field.
func (_u *CardUpdate) SetColumn(v string) *CardUpdate {
	_u.mutation.SetColumn(v)
	return _u
}

// SetNillableColumn sets the "column" field if the given value is not nil.
func (_u *CardUpdate) SetNillableColumn(v *string) *CardUpdate {
	if v != nil {
		_u.SetColumn(*v)
	}
	return _u
}

// SetSpecPath sets the "spec_path" field.
func (_u *CardUpdate) SetSpecPath(v string) *CardUpdate {
	_u.mutation.SetSpecPath(v)
	return _u
}

// SetNillableSpecPath sets the "spec_path" field if the given value is not nil.
func (_u *CardUpdate) SetNillableSpecPath(v *string) *CardUpdate {
	if v != nil {
		_u.SetSpecPath(*v)
	}
	return _u
}

// ClearSpecPath clears the value of the "spec_path" field.
func (_u *CardUpdate) ClearSpecPath() *CardUpdate {
	_u.mutation.ClearSpecPath()
	return _u
}

// SetModelPlan sets the "model_plan" field.
func (_u *CardUpdate) SetModelPlan(v string) *CardUpdate {
	_u.mutation.SetModelPlan(v)
	return _u
}

// SetNillableModelPlan sets the "model_plan" field if the given value is not nil.
func (_u *CardUpdate) SetNillableModelPlan(v *string) *CardUpdate {
	if v != nil {
		_u.SetModelPlan(*v)
	}
	return _u
}

// SetModelImplement sets the "model_implement" field.
func (_u *CardUpdate) SetModelImplement(v string) *CardUpdate {
	_u.mutation.SetModelImplement(v)
	return _u
}

// SetNillableModelImplement sets the "model_implement" field if the given value is not nil.
func (_u *CardUpdate) SetNillableModelImplement(v *string) *CardUpdate {
	if v != nil {
		_u.SetModelImplement(*v)
	}
	return _u
}

// SetModelTest sets the "model_test" field.
func (_u *CardUpdate) SetModelTest(v string) *CardUpdate {
	_u.mutation.SetModelTest(v)
	return _u
}

// SetNillableModelTest sets the "model_test" field if the given value is not nil.
func (_u *CardUpdate) SetNillableModelTest(v *string) *CardUpdate {
	if v != nil {
		_u.SetModelTest(*v)
	}
	return _u
}

// SetModelReview sets the "model_review" field.
func (_u *CardUpdate) SetModelReview(v string) *CardUpdate {
	_u.mutation.SetModelReview(v)
	return _u
}

// SetNillableModelReview sets the "model_review" field if the given value is not nil.
func (_u *CardUpdate) SetNillableModelReview(v *string) *CardUpdate {
	if v != nil {
		_u.SetModelReview(*v)
	}
	return _u
}

// SetParentCardID sets the "parent_card_id" field.
func (_u *CardUpdate) SetParentCardID(v string) *CardUpdate {
	_u.mutation.SetParentCardID(v)
	return _u
}

// SetNillableParentCardID sets the "parent_card_id" field if the given value is not nil.
func (_u *CardUpdate) SetNillableParentCardID(v *string) *CardUpdate {
	if v != nil {
		_u.SetParentCardID(*v)
	}
	return _u
}

// ClearParentCardID clears the value of the "parent_card_id" field.
func (_u *CardUpdate) ClearParentCardID() *CardUpdate {
	_u.mutation.ClearParentCardID()
	return _u
}

// SetIsFixCard sets the "is_fix_card" field.
func (_u *CardUpdate) SetIsFixCard(v bool) *CardUpdate {
	_u.mutation.SetIsFixCard(v)
	return _u
}

// SetNillableIsFixCard sets the "is_fix_card" field if the given value is not nil.
func (_u *CardUpdate) SetNillableIsFixCard(v *bool) *CardUpdate {
	if v != nil {
		_u.SetIsFixCard(*v)
	}
	return _u
}

// SetTestErrorContext sets the "test_error_context" field.
func (_u *CardUpdate) SetTestErrorContext(v string) *CardUpdate {
	_u.mutation.SetTestErrorContext(v)
	return _u
}

// SetNillableTestErrorContext sets the "test_error_context" field if the given value is not nil.
func (_u *CardUpdate) SetNillableTestErrorContext(v *string) *CardUpdate {
	if v != nil {
		_u.SetTestErrorContext(*v)
	}
	return _u
}

// ClearTestErrorContext clears the value of the "test_error_context" field.
func (_u *CardUpdate) ClearTestErrorContext() *CardUpdate {
	_u.mutation.ClearTestErrorContext()
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *CardUpdate) SetBranchName(v string) *CardUpdate {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *CardUpdate) SetNillableBranchName(v *string) *CardUpdate {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *CardUpdate) ClearBranchName() *CardUpdate {
	_u.mutation.ClearBranchName()
	return _u
}

// SetWorktreePath sets the "worktree_path" field.
func (_u *CardUpdate) SetWorktreePath(v string) *CardUpdate {
	_u.mutation.SetWorktreePath(v)
	return _u
}

// SetNillableWorktreePath sets the "worktree_path" field if the given value is not nil.
func (_u *CardUpdate) SetNillableWorktreePath(v *string) *CardUpdate {
	if v != nil {
		_u.SetWorktreePath(*v)
	}
	return _u
}

// ClearWorktreePath clears the value of the "worktree_path" field.
func (_u *CardUpdate) ClearWorktreePath() *CardUpdate {
	_u.mutation.ClearWorktreePath()
	return _u
}

// SetBaseBranch sets the "base_branch" field.
func (_u *CardUpdate) SetBaseBranch(v string) *CardUpdate {
	_u.mutation.SetBaseBranch(v)
	return _u
}

// SetNillableBaseBranch sets the "base_branch" field if the given value is not nil.
func (_u *CardUpdate) SetNillableBaseBranch(v *string) *CardUpdate {
	if v != nil {
		_u.SetBaseBranch(*v)
	}
	return _u
}

// ClearBaseBranch clears the value of the "base_branch" field.
func (_u *CardUpdate) ClearBaseBranch() *CardUpdate {
	_u.mutation.ClearBaseBranch()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *CardUpdate) SetDependencies(v []string) *CardUpdate {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *CardUpdate) AppendDependencies(v []string) *CardUpdate {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *CardUpdate) ClearDependencies() *CardUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// SetDiffStats sets the "diff_stats" field.
func (_u *CardUpdate) SetDiffStats(v map[string]interface{}) *CardUpdate {
	_u.mutation.SetDiffStats(v)
	return _u
}

// ClearDiffStats clears the value of the "diff_stats" field.
func (_u *CardUpdate) ClearDiffStats() *CardUpdate {
	_u.mutation.ClearDiffStats()
	return _u
}

// SetArchived sets the "archived" field.
func (_u *CardUpdate) SetArchived(v bool) *CardUpdate {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *CardUpdate) SetNillableArchived(v *bool) *CardUpdate {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *CardUpdate) SetGoalID(v string) *CardUpdate {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *CardUpdate) SetNillableGoalID(v *string) *CardUpdate {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// ClearGoalID clears the value of the "goal_id" field.
func (_u *CardUpdate) ClearGoalID() *CardUpdate {
	_u.mutation.ClearGoalID()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CardUpdate) SetCompletedAt(v time.Time) *CardUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CardUpdate) SetNillableCompletedAt(v *time.Time) *CardUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CardUpdate) ClearCompletedAt() *CardUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CardUpdate) SetUpdatedAt(v time.Time) *CardUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetGoal sets the "goal" edge to the Goal entity.
func (_u *CardUpdate) SetGoal(v *Goal) *CardUpdate {
	return _u.SetGoalID(v.ID)
}

// AddExecutionIDs adds the "executions" edge to the Execution entity by IDs.
func (_u *CardUpdate) AddExecutionIDs(ids ...string) *CardUpdate {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the Execution entity.
func (_u *CardUpdate) AddExecutions(v ...*Execution) *CardUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdate) Mutation() *CardMutation {
	return _u.mutation
}

// ClearGoal clears the "goal" edge to the Goal entity.
func (_u *CardUpdate) ClearGoal() *CardUpdate {
	_u.mutation.ClearGoal()
	return _u
}

// ClearExecutions clears all "executions" edges to the Execution entity.
func (_u *CardUpdate) ClearExecutions() *CardUpdate {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to Execution entities by IDs.
func (_u *CardUpdate) RemoveExecutionIDs(ids ...string) *CardUpdate {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to Execution entities.
func (_u *CardUpdate) RemoveExecutions(v ...*Execution) *CardUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CardUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CardUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := card.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(card.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(card.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(card.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Column(); ok {
		_spec.SetField(card.FieldColumn, field.TypeString, value)
	}
	if value, ok := _u.mutation.SpecPath(); ok {
		_spec.SetField(card.FieldSpecPath, field.TypeString, value)
	}
	if _u.mutation.SpecPathCleared() {
		_spec.ClearField(card.FieldSpecPath, field.TypeString)
	}
	if value, ok := _u.mutation.ModelPlan(); ok {
		_spec.SetField(card.FieldModelPlan, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelImplement(); ok {
		_spec.SetField(card.FieldModelImplement, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelTest(); ok {
		_spec.SetField(card.FieldModelTest, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelReview(); ok {
		_spec.SetField(card.FieldModelReview, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentCardID(); ok {
		_spec.SetField(card.FieldParentCardID, field.TypeString, value)
	}
	if _u.mutation.ParentCardIDCleared() {
		_spec.ClearField(card.FieldParentCardID, field.TypeString)
	}
	if value, ok := _u.mutation.IsFixCard(); ok {
		_spec.SetField(card.FieldIsFixCard, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TestErrorContext(); ok {
		_spec.SetField(card.FieldTestErrorContext, field.TypeString, value)
	}
	if _u.mutation.TestErrorContextCleared() {
		_spec.ClearField(card.FieldTestErrorContext, field.TypeString)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(card.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(card.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.WorktreePath(); ok {
		_spec.SetField(card.FieldWorktreePath, field.TypeString, value)
	}
	if _u.mutation.WorktreePathCleared() {
		_spec.ClearField(card.FieldWorktreePath, field.TypeString)
	}
	if value, ok := _u.mutation.BaseBranch(); ok {
		_spec.SetField(card.FieldBaseBranch, field.TypeString, value)
	}
	if _u.mutation.BaseBranchCleared() {
		_spec.ClearField(card.FieldBaseBranch, field.TypeString)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(card.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(card.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.DiffStats(); ok {
		_spec.SetField(card.FieldDiffStats, field.TypeJSON, value)
	}
	if _u.mutation.DiffStatsCleared() {
		_spec.ClearField(card.FieldDiffStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(card.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(card.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(card.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(card.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.GoalCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GoalIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CardUpdateOne is the builder for updating a single Card entity.
type CardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CardMutation
}

// SetTitle sets the "title" field.
func (_u *CardUpdateOne) SetTitle(v string) *CardUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableTitle(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CardUpdateOne) SetDescription(v string) *CardUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableDescription(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CardUpdateOne) ClearDescription() *CardUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetColumn sets the "column" field.
func (_u *CardUpdateOne) SetColumn(v string) *CardUpdateOne {
	_u.mutation.SetColumn(v)
	return _u
}

// SetNillableColumn sets the "column" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableColumn(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetColumn(*v)
	}
	return _u
}

// SetSpecPath sets the "spec_path" field.
func (_u *CardUpdateOne) SetSpecPath(v string) *CardUpdateOne {
	_u.mutation.SetSpecPath(v)
	return _u
}

// SetNillableSpecPath sets the "spec_path" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableSpecPath(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetSpecPath(*v)
	}
	return _u
}

// ClearSpecPath clears the value of the "spec_path" field.
func (_u *CardUpdateOne) ClearSpecPath() *CardUpdateOne {
	_u.mutation.ClearSpecPath()
	return _u
}

// SetModelPlan sets the "model_plan" field.
func (_u *CardUpdateOne) SetModelPlan(v string) *CardUpdateOne {
	_u.mutation.SetModelPlan(v)
	return _u
}

// SetNillableModelPlan sets the "model_plan" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableModelPlan(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetModelPlan(*v)
	}
	return _u
}

// SetModelImplement sets the "model_implement" field.
func (_u *CardUpdateOne) SetModelImplement(v string) *CardUpdateOne {
	_u.mutation.SetModelImplement(v)
	return _u
}

// SetNillableModelImplement sets the "model_implement" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableModelImplement(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetModelImplement(*v)
	}
	return _u
}

// SetModelTest sets the "model_test" field.
func (_u *CardUpdateOne) SetModelTest(v string) *CardUpdateOne {
	_u.mutation.SetModelTest(v)
	return _u
}

// SetNillableModelTest sets the "model_test" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableModelTest(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetModelTest(*v)
	}
	return _u
}

// SetModelReview sets the "model_review" field.
func (_u *CardUpdateOne) SetModelReview(v string) *CardUpdateOne {
	_u.mutation.SetModelReview(v)
	return _u
}

// SetNillableModelReview sets the "model_review" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableModelReview(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetModelReview(*v)
	}
	return _u
}

// SetParentCardID sets the "parent_card_id" field.
func (_u *CardUpdateOne) SetParentCardID(v string) *CardUpdateOne {
	_u.mutation.SetParentCardID(v)
	return _u
}

// SetNillableParentCardID sets the "parent_card_id" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableParentCardID(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetParentCardID(*v)
	}
	return _u
}

// ClearParentCardID clears the value of the "parent_card_id" field.
func (_u *CardUpdateOne) ClearParentCardID() *CardUpdateOne {
	_u.mutation.ClearParentCardID()
	return _u
}

// SetIsFixCard sets the "is_fix_card" field.
func (_u *CardUpdateOne) SetIsFixCard(v bool) *CardUpdateOne {
	_u.mutation.SetIsFixCard(v)
	return _u
}

// SetNillableIsFixCard sets the "is_fix_card" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableIsFixCard(v *bool) *CardUpdateOne {
	if v != nil {
		_u.SetIsFixCard(*v)
	}
	return _u
}

// SetTestErrorContext sets the "test_error_context" field.
func (_u *CardUpdateOne) SetTestErrorContext(v string) *CardUpdateOne {
	_u.mutation.SetTestErrorContext(v)
	return _u
}

// SetNillableTestErrorContext sets the "test_error_context" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableTestErrorContext(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetTestErrorContext(*v)
	}
	return _u
}

// ClearTestErrorContext clears the value of the "test_error_context" field.
func (_u *CardUpdateOne) ClearTestErrorContext() *CardUpdateOne {
	_u.mutation.ClearTestErrorContext()
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *CardUpdateOne) SetBranchName(v string) *CardUpdateOne {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableBranchName(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *CardUpdateOne) ClearBranchName() *CardUpdateOne {
	_u.mutation.ClearBranchName()
	return _u
}

// SetWorktreePath sets the "worktree_path" field.
func (_u *CardUpdateOne) SetWorktreePath(v string) *CardUpdateOne {
	_u.mutation.SetWorktreePath(v)
	return _u
}

// SetNillableWorktreePath sets the "worktree_path" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableWorktreePath(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetWorktreePath(*v)
	}
	return _u
}

// ClearWorktreePath clears the value of the "worktree_path" field.
func (_u *CardUpdateOne) ClearWorktreePath() *CardUpdateOne {
	_u.mutation.ClearWorktreePath()
	return _u
}

// SetBaseBranch sets the "base_branch" field.
func (_u *CardUpdateOne) SetBaseBranch(v string) *CardUpdateOne {
	_u.mutation.SetBaseBranch(v)
	return _u
}

// SetNillableBaseBranch sets the "base_branch" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableBaseBranch(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetBaseBranch(*v)
	}
	return _u
}

// ClearBaseBranch clears the value of the "base_branch" field.
func (_u *CardUpdateOne) ClearBaseBranch() *CardUpdateOne {
	_u.mutation.ClearBaseBranch()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *CardUpdateOne) SetDependencies(v []string) *CardUpdateOne {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *CardUpdateOne) AppendDependencies(v []string) *CardUpdateOne {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *CardUpdateOne) ClearDependencies() *CardUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// SetDiffStats sets the "diff_stats" field.
func (_u *CardUpdateOne) SetDiffStats(v map[string]interface{}) *CardUpdateOne {
	_u.mutation.SetDiffStats(v)
	return _u
}

// ClearDiffStats clears the value of the "diff_stats" field.
func (_u *CardUpdateOne) ClearDiffStats() *CardUpdateOne {
	_u.mutation.ClearDiffStats()
	return _u
}

// SetArchived sets the "archived" field.
func (_u *CardUpdateOne) SetArchived(v bool) *CardUpdateOne {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableArchived(v *bool) *CardUpdateOne {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *CardUpdateOne) SetGoalID(v string) *CardUpdateOne {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableGoalID(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// ClearGoalID clears the value of the "goal_id" field.
func (_u *CardUpdateOne) ClearGoalID() *CardUpdateOne {
	_u.mutation.ClearGoalID()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CardUpdateOne) SetCompletedAt(v time.Time) *CardUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableCompletedAt(v *time.Time) *CardUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CardUpdateOne) ClearCompletedAt() *CardUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CardUpdateOne) SetUpdatedAt(v time.Time) *CardUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetGoal sets the "goal" edge to the Goal entity.
func (_u *CardUpdateOne) SetGoal(v *Goal) *CardUpdateOne {
	return _u.SetGoalID(v.ID)
}

// AddExecutionIDs adds the "executions" edge to the Execution entity by IDs.
func (_u *CardUpdateOne) AddExecutionIDs(ids ...string) *CardUpdateOne {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the Execution entity.
func (_u *CardUpdateOne) AddExecutions(v ...*Execution) *CardUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdateOne) Mutation() *CardMutation {
	return _u.mutation
}

// ClearGoal clears the "goal" edge to the Goal entity.
func (_u *CardUpdateOne) ClearGoal() *CardUpdateOne {
	_u.mutation.ClearGoal()
	return _u
}

// ClearExecutions clears all "executions" edges to the Execution entity.
func (_u *CardUpdateOne) ClearExecutions() *CardUpdateOne {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to Execution entities by IDs.
func (_u *CardUpdateOne) RemoveExecutionIDs(ids ...string) *CardUpdateOne {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to Execution entities.
func (_u *CardUpdateOne) RemoveExecutions(v ...*Execution) *CardUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdateOne) Where(ps ...predicate.Card) *CardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CardUpdateOne) Select(field string, fields ...string) *CardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Card entity.
func (_u *CardUpdateOne) Save(ctx context.Context) (*Card, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdateOne) SaveX(ctx context.Context) *Card {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CardUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := card.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CardUpdateOne) sqlSave(ctx context.Context) (_node *Card, err error) {
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Card.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, card.FieldID)
		for _, f := range fields {
			if !card.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != card.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(card.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(card.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(card.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Column(); ok {
		_spec.SetField(card.FieldColumn, field.TypeString, value)
	}
	if value, ok := _u.mutation.SpecPath(); ok {
		_spec.SetField(card.FieldSpecPath, field.TypeString, value)
	}
	if _u.mutation.SpecPathCleared() {
		_spec.ClearField(card.FieldSpecPath, field.TypeString)
	}
	if value, ok := _u.mutation.ModelPlan(); ok {
		_spec.SetField(card.FieldModelPlan, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelImplement(); ok {
		_spec.SetField(card.FieldModelImplement, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelTest(); ok {
		_spec.SetField(card.FieldModelTest, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelReview(); ok {
		_spec.SetField(card.FieldModelReview, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentCardID(); ok {
		_spec.SetField(card.FieldParentCardID, field.TypeString, value)
	}
	if _u.mutation.ParentCardIDCleared() {
		_spec.ClearField(card.FieldParentCardID, field.TypeString)
	}
	if value, ok := _u.mutation.IsFixCard(); ok {
		_spec.SetField(card.FieldIsFixCard, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TestErrorContext(); ok {
		_spec.SetField(card.FieldTestErrorContext, field.TypeString, value)
	}
	if _u.mutation.TestErrorContextCleared() {
		_spec.ClearField(card.FieldTestErrorContext, field.TypeString)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(card.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(card.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.WorktreePath(); ok {
		_spec.SetField(card.FieldWorktreePath, field.TypeString, value)
	}
	if _u.mutation.WorktreePathCleared() {
		_spec.ClearField(card.FieldWorktreePath, field.TypeString)
	}
	if value, ok := _u.mutation.BaseBranch(); ok {
		_spec.SetField(card.FieldBaseBranch, field.TypeString, value)
	}
	if _u.mutation.BaseBranchCleared() {
		_spec.ClearField(card.FieldBaseBranch, field.TypeString)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(card.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(card.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.DiffStats(); ok {
		_spec.SetField(card.FieldDiffStats, field.TypeJSON, value)
	}
	if _u.mutation.DiffStatsCleared() {
		_spec.ClearField(card.FieldDiffStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(card.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(card.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(card.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(card.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.GoalCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GoalIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Card{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
