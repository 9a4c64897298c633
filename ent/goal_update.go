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
	"github.com/codeready-toolchain/cardsmith/ent/goal"
	"github.com/codeready-toolchain/cardsmith/ent/predicate"
)

// GoalUpdate is the builder for updating Goal entities.
type GoalUpdate struct {
	config
	hooks    []Hook
	mutation *GoalMutation
}

// Where appends a list predicates to the GoalUpdate builder.
func (_u *GoalUpdate) Where(ps ...predicate.Goal) *GoalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDescription sets the "description" field.
func (_u *GoalUpdate) SetDescription(v string) *GoalUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableDescription(v *string) *GoalUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GoalUpdate) SetStatus(v goal.Status) *GoalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableStatus(v *goal.Status) *GoalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *GoalUpdate) SetSource(v string) *GoalUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableSource(v *string) *GoalUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *GoalUpdate) SetSourceID(v string) *GoalUpdate {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableSourceID(v *string) *GoalUpdate {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// ClearSourceID clears the value of the "source_id" field.
func (_u *GoalUpdate) ClearSourceID() *GoalUpdate {
	_u.mutation.ClearSourceID()
	return _u
}

// SetCardIds sets the "card_ids" field.
func (_u *GoalUpdate) SetCardIds(v []string) *GoalUpdate {
	_u.mutation.SetCardIds(v)
	return _u
}

// AppendCardIds appends value to the "card_ids" field.
func (_u *GoalUpdate) AppendCardIds(v []string) *GoalUpdate {
	_u.mutation.AppendCardIds(v)
	return _u
}

// ClearCardIds clears the value of the "card_ids" field.
func (_u *GoalUpdate) ClearCardIds() *GoalUpdate {
	_u.mutation.ClearCardIds()
	return _u
}

// SetLearningText sets the "learning_text" field.
func (_u *GoalUpdate) SetLearningText(v string) *GoalUpdate {
	_u.mutation.SetLearningText(v)
	return _u
}

// SetNillableLearningText sets the "learning_text" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableLearningText(v *string) *GoalUpdate {
	if v != nil {
		_u.SetLearningText(*v)
	}
	return _u
}

// ClearLearningText clears the value of the "learning_text" field.
func (_u *GoalUpdate) ClearLearningText() *GoalUpdate {
	_u.mutation.ClearLearningText()
	return _u
}

// SetLearningID sets the "learning_id" field.
func (_u *GoalUpdate) SetLearningID(v string) *GoalUpdate {
	_u.mutation.SetLearningID(v)
	return _u
}

// SetNillableLearningID sets the "learning_id" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableLearningID(v *string) *GoalUpdate {
	if v != nil {
		_u.SetLearningID(*v)
	}
	return _u
}

// ClearLearningID clears the value of the "learning_id" field.
func (_u *GoalUpdate) ClearLearningID() *GoalUpdate {
	_u.mutation.ClearLearningID()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *GoalUpdate) SetTotalTokens(v int) *GoalUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableTotalTokens(v *int) *GoalUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *GoalUpdate) AddTotalTokens(v int) *GoalUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_u *GoalUpdate) SetTotalCostUsd(v float64) *GoalUpdate {
	_u.mutation.ResetTotalCostUsd()
	_u.mutation.SetTotalCostUsd(v)
	return _u
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableTotalCostUsd(v *float64) *GoalUpdate {
	if v != nil {
		_u.SetTotalCostUsd(*v)
	}
	return _u
}

// AddTotalCostUsd adds value to the "total_cost_usd" field.
func (_u *GoalUpdate) AddTotalCostUsd(v float64) *GoalUpdate {
	_u.mutation.AddTotalCostUsd(v)
	return _u
}

// SetError sets the "error" field.
func (_u *GoalUpdate) SetError(v string) *GoalUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableError(v *string) *GoalUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *GoalUpdate) ClearError() *GoalUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *GoalUpdate) SetStartedAt(v time.Time) *GoalUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableStartedAt(v *time.Time) *GoalUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *GoalUpdate) ClearStartedAt() *GoalUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *GoalUpdate) SetCompletedAt(v time.Time) *GoalUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableCompletedAt(v *time.Time) *GoalUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *GoalUpdate) ClearCompletedAt() *GoalUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddCardIDs adds the "cards" edge to the Card entity by IDs.
func (_u *GoalUpdate) AddCardIDs(ids ...string) *GoalUpdate {
	_u.mutation.AddCardIDs(ids...)
	return _u
}

// AddCards adds the "cards" edges to the Card entity.
func (_u *GoalUpdate) AddCards(v ...*Card) *GoalUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCardIDs(ids...)
}

// Mutation returns the GoalMutation object of the builder.
func (_u *GoalUpdate) Mutation() *GoalMutation {
	return _u.mutation
}

// ClearCards clears all "cards" edges to the Card entity.
func (_u *GoalUpdate) ClearCards() *GoalUpdate {
	_u.mutation.ClearCards()
	return _u
}

// RemoveCardIDs removes the "cards" edge to Card entities by IDs.
func (_u *GoalUpdate) RemoveCardIDs(ids ...string) *GoalUpdate {
	_u.mutation.RemoveCardIDs(ids...)
	return _u
}

// RemoveCards removes "cards" edges to Card entities.
func (_u *GoalUpdate) RemoveCards(v ...*Card) *GoalUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCardIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GoalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GoalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GoalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GoalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GoalUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := goal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Goal.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GoalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(goal.Table, goal.Columns, sqlgraph.NewFieldSpec(goal.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(goal.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(goal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(goal.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(goal.FieldSourceID, field.TypeString, value)
	}
	if _u.mutation.SourceIDCleared() {
		_spec.ClearField(goal.FieldSourceID, field.TypeString)
	}
	if value, ok := _u.mutation.CardIds(); ok {
		_spec.SetField(goal.FieldCardIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCardIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, goal.FieldCardIds, value)
		})
	}
	if _u.mutation.CardIdsCleared() {
		_spec.ClearField(goal.FieldCardIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.LearningText(); ok {
		_spec.SetField(goal.FieldLearningText, field.TypeString, value)
	}
	if _u.mutation.LearningTextCleared() {
		_spec.ClearField(goal.FieldLearningText, field.TypeString)
	}
	if value, ok := _u.mutation.LearningID(); ok {
		_spec.SetField(goal.FieldLearningID, field.TypeString, value)
	}
	if _u.mutation.LearningIDCleared() {
		_spec.ClearField(goal.FieldLearningID, field.TypeString)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(goal.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(goal.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCostUsd(); ok {
		_spec.SetField(goal.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCostUsd(); ok {
		_spec.AddField(goal.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(goal.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(goal.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(goal.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(goal.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(goal.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(goal.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.CardsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCardsIDs(); len(nodes) > 0 && !_u.mutation.CardsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CardsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{goal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GoalUpdateOne is the builder for updating a single Goal entity.
type GoalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GoalMutation
}

// SetDescription sets the "description" field.
func (_u *GoalUpdateOne) SetDescription(v string) *GoalUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableDescription(v *string) *GoalUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GoalUpdateOne) SetStatus(v goal.Status) *GoalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableStatus(v *goal.Status) *GoalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *GoalUpdateOne) SetSource(v string) *GoalUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableSource(v *string) *GoalUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *GoalUpdateOne) SetSourceID(v string) *GoalUpdateOne {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableSourceID(v *string) *GoalUpdateOne {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// ClearSourceID clears the value of the "source_id" field.
func (_u *GoalUpdateOne) ClearSourceID() *GoalUpdateOne {
	_u.mutation.ClearSourceID()
	return _u
}

// SetCardIds sets the "card_ids" field.
func (_u *GoalUpdateOne) SetCardIds(v []string) *GoalUpdateOne {
	_u.mutation.SetCardIds(v)
	return _u
}

// AppendCardIds appends value to the "card_ids" field.
func (_u *GoalUpdateOne) AppendCardIds(v []string) *GoalUpdateOne {
	_u.mutation.AppendCardIds(v)
	return _u
}

// ClearCardIds clears the value of the "card_ids" field.
func (_u *GoalUpdateOne) ClearCardIds() *GoalUpdateOne {
	_u.mutation.ClearCardIds()
	return _u
}

// SetLearningText sets the "learning_text" field.
func (_u *GoalUpdateOne) SetLearningText(v string) *GoalUpdateOne {
	_u.mutation.SetLearningText(v)
	return _u
}

// SetNillableLearningText sets the "learning_text" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableLearningText(v *string) *GoalUpdateOne {
	if v != nil {
		_u.SetLearningText(*v)
	}
	return _u
}

// ClearLearningText clears the value of the "learning_text" field.
func (_u *GoalUpdateOne) ClearLearningText() *GoalUpdateOne {
	_u.mutation.ClearLearningText()
	return _u
}

// SetLearningID sets the "learning_id" field.
func (_u *GoalUpdateOne) SetLearningID(v string) *GoalUpdateOne {
	_u.mutation.SetLearningID(v)
	return _u
}

// SetNillableLearningID sets the "learning_id" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableLearningID(v *string) *GoalUpdateOne {
	if v != nil {
		_u.SetLearningID(*v)
	}
	return _u
}

// ClearLearningID clears the value of the "learning_id" field.
func (_u *GoalUpdateOne) ClearLearningID() *GoalUpdateOne {
	_u.mutation.ClearLearningID()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *GoalUpdateOne) SetTotalTokens(v int) *GoalUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableTotalTokens(v *int) *GoalUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *GoalUpdateOne) AddTotalTokens(v int) *GoalUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_u *GoalUpdateOne) SetTotalCostUsd(v float64) *GoalUpdateOne {
	_u.mutation.ResetTotalCostUsd()
	_u.mutation.SetTotalCostUsd(v)
	return _u
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableTotalCostUsd(v *float64) *GoalUpdateOne {
	if v != nil {
		_u.SetTotalCostUsd(*v)
	}
	return _u
}

// AddTotalCostUsd adds value to the "total_cost_usd" field.
func (_u *GoalUpdateOne) AddTotalCostUsd(v float64) *GoalUpdateOne {
	_u.mutation.AddTotalCostUsd(v)
	return _u
}

// SetError sets the "error" field.
func (_u *GoalUpdateOne) SetError(v string) *GoalUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableError(v *string) *GoalUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *GoalUpdateOne) ClearError() *GoalUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *GoalUpdateOne) SetStartedAt(v time.Time) *GoalUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableStartedAt(v *time.Time) *GoalUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *GoalUpdateOne) ClearStartedAt() *GoalUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *GoalUpdateOne) SetCompletedAt(v time.Time) *GoalUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableCompletedAt(v *time.Time) *GoalUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *GoalUpdateOne) ClearCompletedAt() *GoalUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddCardIDs adds the "cards" edge to the Card entity by IDs.
func (_u *GoalUpdateOne) AddCardIDs(ids ...string) *GoalUpdateOne {
	_u.mutation.AddCardIDs(ids...)
	return _u
}

// AddCards adds the "cards" edges to the Card entity.
func (_u *GoalUpdateOne) AddCards(v ...*Card) *GoalUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCardIDs(ids...)
}

// Mutation returns the GoalMutation object of the builder.
func (_u *GoalUpdateOne) Mutation() *GoalMutation {
	return _u.mutation
}

// ClearCards clears all "cards" edges to the Card entity.
func (_u *GoalUpdateOne) ClearCards() *GoalUpdateOne {
	_u.mutation.ClearCards()
	return _u
}

// RemoveCardIDs removes the "cards" edge to Card entities by IDs.
func (_u *GoalUpdateOne) RemoveCardIDs(ids ...string) *GoalUpdateOne {
	_u.mutation.RemoveCardIDs(ids...)
	return _u
}

// RemoveCards removes "cards" edges to Card entities.
func (_u *GoalUpdateOne) RemoveCards(v ...*Card) *GoalUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCardIDs(ids...)
}

// Where appends a list predicates to the GoalUpdate builder.
func (_u *GoalUpdateOne) Where(ps ...predicate.Goal) *GoalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GoalUpdateOne) Select(field string, fields ...string) *GoalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Goal entity.
func (_u *GoalUpdateOne) Save(ctx context.Context) (*Goal, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GoalUpdateOne) SaveX(ctx context.Context) *Goal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GoalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GoalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GoalUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := goal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Goal.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GoalUpdateOne) sqlSave(ctx context.Context) (_node *Goal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(goal.Table, goal.Columns, sqlgraph.NewFieldSpec(goal.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Goal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, goal.FieldID)
		for _, f := range fields {
			if !goal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != goal.FieldID {
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
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(goal.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(goal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(goal.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(goal.FieldSourceID, field.TypeString, value)
	}
	if _u.mutation.SourceIDCleared() {
		_spec.ClearField(goal.FieldSourceID, field.TypeString)
	}
	if value, ok := _u.mutation.CardIds(); ok {
		_spec.SetField(goal.FieldCardIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCardIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, goal.FieldCardIds, value)
		})
	}
	if _u.mutation.CardIdsCleared() {
		_spec.ClearField(goal.FieldCardIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.LearningText(); ok {
		_spec.SetField(goal.FieldLearningText, field.TypeString, value)
	}
	if _u.mutation.LearningTextCleared() {
		_spec.ClearField(goal.FieldLearningText, field.TypeString)
	}
	if value, ok := _u.mutation.LearningID(); ok {
		_spec.SetField(goal.FieldLearningID, field.TypeString, value)
	}
	if _u.mutation.LearningIDCleared() {
		_spec.ClearField(goal.FieldLearningID, field.TypeString)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(goal.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(goal.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCostUsd(); ok {
		_spec.SetField(goal.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCostUsd(); ok {
		_spec.AddField(goal.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(goal.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(goal.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(goal.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(goal.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(goal.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(goal.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.CardsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCardsIDs(); len(nodes) > 0 && !_u.mutation.CardsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CardsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Goal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{goal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
