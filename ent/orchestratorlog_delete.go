// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/cardsmith/ent/orchestratorlog"
	"github.com/codeready-toolchain/cardsmith/ent/predicate"
)

// OrchestratorLogDelete is the builder for deleting a OrchestratorLog entity.
type OrchestratorLogDelete struct {
	config
	hooks    []Hook
	mutation *OrchestratorLogMutation
}

// Where appends a list predicates to the OrchestratorLogDelete builder.
func (_d *OrchestratorLogDelete) Where(ps ...predicate.OrchestratorLog) *OrchestratorLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *OrchestratorLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OrchestratorLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *OrchestratorLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(orchestratorlog.Table, sqlgraph.NewFieldSpec(orchestratorlog.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// OrchestratorLogDeleteOne is the builder for deleting a single OrchestratorLog entity.
type OrchestratorLogDeleteOne struct {
	_d *OrchestratorLogDelete
}

// Where appends a list predicates to the OrchestratorLogDelete builder.
func (_d *OrchestratorLogDeleteOne) Where(ps ...predicate.OrchestratorLog) *OrchestratorLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *OrchestratorLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{orchestratorlog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OrchestratorLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
