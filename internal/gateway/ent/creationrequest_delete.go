// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"repolens/internal/gateway/ent/creationrequest"
	"repolens/internal/gateway/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CreationRequestDelete is the builder for deleting a CreationRequest entity.
type CreationRequestDelete struct {
	config
	hooks    []Hook
	mutation *CreationRequestMutation
}

// Where appends a list predicates to the CreationRequestDelete builder.
func (_d *CreationRequestDelete) Where(ps ...predicate.CreationRequest) *CreationRequestDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CreationRequestDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CreationRequestDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CreationRequestDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(creationrequest.Table, sqlgraph.NewFieldSpec(creationrequest.FieldID, field.TypeString))
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

// CreationRequestDeleteOne is the builder for deleting a single CreationRequest entity.
type CreationRequestDeleteOne struct {
	_d *CreationRequestDelete
}

// Where appends a list predicates to the CreationRequestDelete builder.
func (_d *CreationRequestDeleteOne) Where(ps ...predicate.CreationRequest) *CreationRequestDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CreationRequestDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{creationrequest.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CreationRequestDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
