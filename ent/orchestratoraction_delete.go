// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/cardsmith/ent/orchestratoraction"
	"github.com/codeready-toolchain/cardsmith/ent/predicate"
)

// OrchestratorActionDelete is the builder for deleting a OrchestratorAction entity.
type OrchestratorActionDelete struct {
	config
	hooks    []Hook
	mutation *OrchestratorActionMutation
}

// Where appends a list predicates to the OrchestratorActionDelete builder.
func (_d *OrchestratorActionDelete) Where(ps ...predicate.OrchestratorAction) *OrchestratorActionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *OrchestratorActionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OrchestratorActionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *OrchestratorActionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(orchestratoraction.Table, sqlgraph.NewFieldSpec(orchestratoraction.FieldID, field.TypeString))
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

// OrchestratorActionDeleteOne is the builder for deleting a single OrchestratorAction entity.
type OrchestratorActionDeleteOne struct {
	_d *OrchestratorActionDelete
}

// Where appends a list predicates to the OrchestratorActionDelete builder.
func (_d *OrchestratorActionDeleteOne) Where(ps ...predicate.OrchestratorAction) *OrchestratorActionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *OrchestratorActionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{orchestratoraction.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OrchestratorActionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
