// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/cardsmith/ent/execution"
	"github.com/codeready-toolchain/cardsmith/ent/executionlog"
	"github.com/codeready-toolchain/cardsmith/ent/predicate"
)

// ExecutionUpdate is the builder for updating Execution entities.
type ExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionMutation
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (_u *ExecutionUpdate) Where(ps ...predicate.Execution) *ExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCommand sets the "command" field.
func (_u *ExecutionUpdate) SetCommand(v string) *ExecutionUpdate {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableCommand(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// SetWorkflowStage sets the "workflow_stage" field.
func (_u *ExecutionUpdate) SetWorkflowStage(v execution.WorkflowStage) *ExecutionUpdate {
	_u.mutation.SetWorkflowStage(v)
	return _u
}

// SetNillableWorkflowStage sets the "workflow_stage" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableWorkflowStage(v *execution.WorkflowStage) *ExecutionUpdate {
	if v != nil {
		_u.SetWorkflowStage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionUpdate) SetStatus(v execution.Status) *ExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableStatus(v *execution.Status) *ExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ExecutionUpdate) SetIsActive(v bool) *ExecutionUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableIsActive(v *bool) *ExecutionUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *ExecutionUpdate) SetModel(v string) *ExecutionUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableModel(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ExecutionUpdate) SetPrompt(v string) *ExecutionUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillablePrompt(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ExecutionUpdate) SetResult(v string) *ExecutionUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableResult(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ExecutionUpdate) ClearResult() *ExecutionUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetWorkflowError sets the "workflow_error" field.
func (_u *ExecutionUpdate) SetWorkflowError(v string) *ExecutionUpdate {
	_u.mutation.SetWorkflowError(v)
	return _u
}

// SetNillableWorkflowError sets the "workflow_error" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableWorkflowError(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetWorkflowError(*v)
	}
	return _u
}

// ClearWorkflowError clears the value of the "workflow_error" field.
func (_u *ExecutionUpdate) ClearWorkflowError() *ExecutionUpdate {
	_u.mutation.ClearWorkflowError()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *ExecutionUpdate) SetInputTokens(v int) *ExecutionUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableInputTokens(v *int) *ExecutionUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *ExecutionUpdate) AddInputTokens(v int) *ExecutionUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *ExecutionUpdate) SetOutputTokens(v int) *ExecutionUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableOutputTokens(v *int) *ExecutionUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *ExecutionUpdate) AddOutputTokens(v int) *ExecutionUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *ExecutionUpdate) SetTotalTokens(v int) *ExecutionUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableTotalTokens(v *int) *ExecutionUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *ExecutionUpdate) AddTotalTokens(v int) *ExecutionUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *ExecutionUpdate) SetCostUsd(v float64) *ExecutionUpdate {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableCostUsd(v *float64) *ExecutionUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *ExecutionUpdate) AddCostUsd(v float64) *ExecutionUpdate {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionUpdate) SetCompletedAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableCompletedAt(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionUpdate) ClearCompletedAt() *ExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddLogIDs adds the "logs" edge to the ExecutionLog entity by IDs.
func (_u *ExecutionUpdate) AddLogIDs(ids ...int) *ExecutionUpdate {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the ExecutionLog entity.
func (_u *ExecutionUpdate) AddLogs(v ...*ExecutionLog) *ExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the ExecutionMutation object of the builder.
func (_u *ExecutionUpdate) Mutation() *ExecutionMutation {
	return _u.mutation
}

// ClearLogs clears all "logs" edges to the ExecutionLog entity.
func (_u *ExecutionUpdate) ClearLogs() *ExecutionUpdate {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to ExecutionLog entities by IDs.
func (_u *ExecutionUpdate) RemoveLogIDs(ids ...int) *ExecutionUpdate {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to ExecutionLog entities.
func (_u *ExecutionUpdate) RemoveLogs(v ...*ExecutionLog) *ExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionUpdate) check() error {
	if v, ok := _u.mutation.WorkflowStage(); ok {
		if err := execution.WorkflowStageValidator(v); err != nil {
			return &ValidationError{Name: "workflow_stage", err: fmt.Errorf(`ent: validator failed for field "Execution.workflow_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	if _u.mutation.CardCleared() && len(_u.mutation.CardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Execution.card"`)
	}
	return nil
}

func (_u *ExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(execution.FieldCommand, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkflowStage(); ok {
		_spec.SetField(execution.FieldWorkflowStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(execution.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(execution.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(execution.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(execution.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(execution.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.WorkflowError(); ok {
		_spec.SetField(execution.FieldWorkflowError, field.TypeString, value)
	}
	if _u.mutation.WorkflowErrorCleared() {
		_spec.ClearField(execution.FieldWorkflowError, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(execution.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(execution.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(execution.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(execution.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(execution.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(execution.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(execution.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(execution.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(execution.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   execution.LogsTable,
			Columns: []string{execution.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   execution.LogsTable,
			Columns: []string{execution.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   execution.LogsTable,
			Columns: []string{execution.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionUpdateOne is the builder for updating a single Execution entity.
type ExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionMutation
}

// SetCommand sets the "command" field.
func (_u *ExecutionUpdateOne) SetCommand(v string) *ExecutionUpdateOne {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableCommand(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// SetWorkflowStage sets the "workflow_stage" field.
func (_u *ExecutionUpdateOne) SetWorkflowStage(v execution.WorkflowStage) *ExecutionUpdateOne {
	_u.mutation.SetWorkflowStage(v)
	return _u
}

// SetNillableWorkflowStage sets the "workflow_stage" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableWorkflowStage(v *execution.WorkflowStage) *ExecutionUpdateOne {
	if v != nil {
		_u.SetWorkflowStage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionUpdateOne) SetStatus(v execution.Status) *ExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableStatus(v *execution.Status) *ExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ExecutionUpdateOne) SetIsActive(v bool) *ExecutionUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableIsActive(v *bool) *ExecutionUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *ExecutionUpdateOne) SetModel(v string) *ExecutionUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableModel(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ExecutionUpdateOne) SetPrompt(v string) *ExecutionUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillablePrompt(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ExecutionUpdateOne) SetResult(v string) *ExecutionUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableResult(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ExecutionUpdateOne) ClearResult() *ExecutionUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetWorkflowError sets the "workflow_error" field.
func (_u *ExecutionUpdateOne) SetWorkflowError(v string) *ExecutionUpdateOne {
	_u.mutation.SetWorkflowError(v)
	return _u
}

// SetNillableWorkflowError sets the "workflow_error" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableWorkflowError(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetWorkflowError(*v)
	}
	return _u
}

// ClearWorkflowError clears the value of the "workflow_error" field.
func (_u *ExecutionUpdateOne) ClearWorkflowError() *ExecutionUpdateOne {
	_u.mutation.ClearWorkflowError()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *ExecutionUpdateOne) SetInputTokens(v int) *ExecutionUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableInputTokens(v *int) *ExecutionUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *ExecutionUpdateOne) AddInputTokens(v int) *ExecutionUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *ExecutionUpdateOne) SetOutputTokens(v int) *ExecutionUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableOutputTokens(v *int) *ExecutionUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *ExecutionUpdateOne) AddOutputTokens(v int) *ExecutionUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *ExecutionUpdateOne) SetTotalTokens(v int) *ExecutionUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableTotalTokens(v *int) *ExecutionUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *ExecutionUpdateOne) AddTotalTokens(v int) *ExecutionUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *ExecutionUpdateOne) SetCostUsd(v float64) *ExecutionUpdateOne {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableCostUsd(v *float64) *ExecutionUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *ExecutionUpdateOne) AddCostUsd(v float64) *ExecutionUpdateOne {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionUpdateOne) SetCompletedAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionUpdateOne) ClearCompletedAt() *ExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddLogIDs adds the "logs" edge to the ExecutionLog entity by IDs.
func (_u *ExecutionUpdateOne) AddLogIDs(ids ...int) *ExecutionUpdateOne {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the ExecutionLog entity.
func (_u *ExecutionUpdateOne) AddLogs(v ...*ExecutionLog) *ExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the ExecutionMutation object of the builder.
func (_u *ExecutionUpdateOne) Mutation() *ExecutionMutation {
	return _u.mutation
}

// ClearLogs clears all "logs" edges to the ExecutionLog entity.
func (_u *ExecutionUpdateOne) ClearLogs() *ExecutionUpdateOne {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to ExecutionLog entities by IDs.
func (_u *ExecutionUpdateOne) RemoveLogIDs(ids ...int) *ExecutionUpdateOne {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to ExecutionLog entities.
func (_u *ExecutionUpdateOne) RemoveLogs(v ...*ExecutionLog) *ExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (_u *ExecutionUpdateOne) Where(ps ...predicate.Execution) *ExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionUpdateOne) Select(field string, fields ...string) *ExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Execution entity.
func (_u *ExecutionUpdateOne) Save(ctx context.Context) (*Execution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionUpdateOne) SaveX(ctx context.Context) *Execution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.WorkflowStage(); ok {
		if err := execution.WorkflowStageValidator(v); err != nil {
			return &ValidationError{Name: "workflow_stage", err: fmt.Errorf(`ent: validator failed for field "Execution.workflow_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	if _u.mutation.CardCleared() && len(_u.mutation.CardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Execution.card"`)
	}
	return nil
}

func (_u *ExecutionUpdateOne) sqlSave(ctx context.Context) (_node *Execution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Execution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, execution.FieldID)
		for _, f := range fields {
			if !execution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != execution.FieldID {
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
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(execution.FieldCommand, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkflowStage(); ok {
		_spec.SetField(execution.FieldWorkflowStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(execution.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(execution.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(execution.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(execution.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(execution.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.WorkflowError(); ok {
		_spec.SetField(execution.FieldWorkflowError, field.TypeString, value)
	}
	if _u.mutation.WorkflowErrorCleared() {
		_spec.ClearField(execution.FieldWorkflowError, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(execution.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(execution.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(execution.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(execution.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(execution.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(execution.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(execution.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(execution.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(execution.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   execution.LogsTable,
			Columns: []string{execution.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   execution.LogsTable,
			Columns: []string{execution.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   execution.LogsTable,
			Columns: []string{execution.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Execution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
