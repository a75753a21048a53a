// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"repolens/internal/gateway/ent/predicate"
	"repolens/internal/gateway/ent/projectmembership"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ProjectMembershipDelete is the builder for deleting a ProjectMembership entity.
type ProjectMembershipDelete struct {
	config
	hooks    []Hook
	mutation *ProjectMembershipMutation
}

// Where appends a list predicates to the ProjectMembershipDelete builder.
func (_d *ProjectMembershipDelete) Where(ps ...predicate.ProjectMembership) *ProjectMembershipDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProjectMembershipDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProjectMembershipDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProjectMembershipDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(projectmembership.Table, sqlgraph.NewFieldSpec(projectmembership.FieldID, field.TypeString))
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

// ProjectMembershipDeleteOne is the builder for deleting a single ProjectMembership entity.
type ProjectMembershipDeleteOne struct {
	_d *ProjectMembershipDelete
}

// Where appends a list predicates to the ProjectMembershipDelete builder.
func (_d *ProjectMembershipDeleteOne) Where(ps ...predicate.ProjectMembership) *ProjectMembershipDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProjectMembershipDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{projectmembership.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProjectMembershipDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
