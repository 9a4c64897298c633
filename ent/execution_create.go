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
	"github.com/codeready-toolchain/cardsmith/ent/executionlog"
)

// ExecutionCreate is the builder for creating a Execution entity.
type ExecutionCreate struct {
	config
	mutation *ExecutionMutation
	hooks    []Hook
}

// SetCardID sets the "card_id" field.
func (_c *ExecutionCreate) SetCardID(v string) *ExecutionCreate {
	_c.mutation.SetCardID(v)
	return _c
}

// SetCommand sets the "command" field.
func (_c *ExecutionCreate) SetCommand(v string) *ExecutionCreate {
	_c.mutation.SetCommand(v)
	return _c
}

// SetWorkflowStage sets the "workflow_stage" field.
func (_c *ExecutionCreate) SetWorkflowStage(v execution.WorkflowStage) *ExecutionCreate {
	_c.mutation.SetWorkflowStage(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExecutionCreate) SetStatus(v execution.Status) *ExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableStatus(v *execution.Status) *ExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ExecutionCreate) SetIsActive(v bool) *ExecutionCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableIsActive(v *bool) *ExecutionCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *ExecutionCreate) SetModel(v string) *ExecutionCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *ExecutionCreate) SetPrompt(v string) *ExecutionCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *ExecutionCreate) SetResult(v string) *ExecutionCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableResult(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetWorkflowError sets the "workflow_error" field.
func (_c *ExecutionCreate) SetWorkflowError(v string) *ExecutionCreate {
	_c.mutation.SetWorkflowError(v)
	return _c
}

// SetNillableWorkflowError sets the "workflow_error" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableWorkflowError(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetWorkflowError(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *ExecutionCreate) SetInputTokens(v int) *ExecutionCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableInputTokens(v *int) *ExecutionCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *ExecutionCreate) SetOutputTokens(v int) *ExecutionCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableOutputTokens(v *int) *ExecutionCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *ExecutionCreate) SetTotalTokens(v int) *ExecutionCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableTotalTokens(v *int) *ExecutionCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *ExecutionCreate) SetCostUsd(v float64) *ExecutionCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableCostUsd(v *float64) *ExecutionCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExecutionCreate) SetStartedAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableStartedAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ExecutionCreate) SetCompletedAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableCompletedAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionCreate) SetID(v string) *ExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCard sets the "card" edge to the Card entity.
func (_c *ExecutionCreate) SetCard(v *Card) *ExecutionCreate {
	return _c.SetCardID(v.ID)
}

// AddLogIDs adds the "logs" edge to the ExecutionLog entity by IDs.
func (_c *ExecutionCreate) AddLogIDs(ids ...int) *ExecutionCreate {
	_c.mutation.AddLogIDs(ids...)
	return _c
}

// AddLogs adds the "logs" edges to the ExecutionLog entity.
func (_c *ExecutionCreate) AddLogs(v ...*ExecutionLog) *ExecutionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLogIDs(ids...)
}

// Mutation returns the ExecutionMutation object of the builder.
func (_c *ExecutionCreate) Mutation() *ExecutionMutation {
	return _c.mutation
}

// Save creates the Execution in the database.
func (_c *ExecutionCreate) Save(ctx context.Context) (*Execution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionCreate) SaveX(ctx context.Context) *Execution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := execution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := execution.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := execution.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := execution.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := execution.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		v := execution.DefaultCostUsd
		_c.mutation.SetCostUsd(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := execution.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionCreate) check() error {
	if _, ok := _c.mutation.CardID(); !ok {
		return &ValidationError{Name: "card_id", err: errors.New(`ent: missing required field "Execution.card_id"`)}
	}
	if _, ok := _c.mutation.Command(); !ok {
		return &ValidationError{Name: "command", err: errors.New(`ent: missing required field "Execution.command"`)}
	}
	if _, ok := _c.mutation.WorkflowStage(); !ok {
		return &ValidationError{Name: "workflow_stage", err: errors.New(`ent: missing required field "Execution.workflow_stage"`)}
	}
	if v, ok := _c.mutation.WorkflowStage(); ok {
		if err := execution.WorkflowStageValidator(v); err != nil {
			return &ValidationError{Name: "workflow_stage", err: fmt.Errorf(`ent: validator failed for field "Execution.workflow_stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Execution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Execution.is_active"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Execution.model"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Execution.prompt"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "Execution.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "Execution.output_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "Execution.total_tokens"`)}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "Execution.cost_usd"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Execution.started_at"`)}
	}
	if len(_c.mutation.CardIDs()) == 0 {
		return &ValidationError{Name: "card", err: errors.New(`ent: missing required edge "Execution.card"`)}
	}
	return nil
}

func (_c *ExecutionCreate) sqlSave(ctx context.Context) (*Execution, error) {
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
			return nil, fmt.Errorf("unexpected Execution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionCreate) createSpec() (*Execution, *sqlgraph.CreateSpec) {
	var (
		_node = &Execution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(execution.Table, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Command(); ok {
		_spec.SetField(execution.FieldCommand, field.TypeString, value)
		_node.Command = value
	}
	if value, ok := _c.mutation.WorkflowStage(); ok {
		_spec.SetField(execution.FieldWorkflowStage, field.TypeEnum, value)
		_node.WorkflowStage = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(execution.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(execution.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(execution.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(execution.FieldResult, field.TypeString, value)
		_node.Result = &value
	}
	if value, ok := _c.mutation.WorkflowError(); ok {
		_spec.SetField(execution.FieldWorkflowError, field.TypeString, value)
		_node.WorkflowError = &value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(execution.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(execution.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(execution.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(execution.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(execution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.CardIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   execution.CardTable,
			Columns: []string{execution.CardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(card.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CardID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LogsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExecutionCreateBulk is the builder for creating many Execution entities in bulk.
type ExecutionCreateBulk struct {
	config
	err      error
	builders []*ExecutionCreate
}

// Save creates the Execution entities in the database.
func (_c *ExecutionCreateBulk) Save(ctx context.Context) ([]*Execution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Execution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionMutation)
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
func (_c *ExecutionCreateBulk) SaveX(ctx context.Context) []*Execution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
