// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"repolens/internal/gateway/ent/predicate"
	"repolens/internal/gateway/ent/repocommit"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RepoCommitDelete is the builder for deleting a RepoCommit entity.
type RepoCommitDelete struct {
	config
	hooks    []Hook
	mutation *RepoCommitMutation
}

// Where appends a list predicates to the RepoCommitDelete builder.
func (_d *RepoCommitDelete) Where(ps ...predicate.RepoCommit) *RepoCommitDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RepoCommitDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RepoCommitDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RepoCommitDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(repocommit.Table, sqlgraph.NewFieldSpec(repocommit.FieldID, field.TypeString))
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

// RepoCommitDeleteOne is the builder for deleting a single RepoCommit entity.
type RepoCommitDeleteOne struct {
	_d *RepoCommitDelete
}

// Where appends a list predicates to the RepoCommitDelete builder.
func (_d *RepoCommitDeleteOne) Where(ps ...predicate.RepoCommit) *RepoCommitDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RepoCommitDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{repocommit.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RepoCommitDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
