// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"repolens/internal/gateway/ent/project"
	"repolens/internal/gateway/ent/repocommit"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RepoCommitCreate is the builder for creating a RepoCommit entity.
type RepoCommitCreate struct {
	config
	mutation *RepoCommitMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *RepoCommitCreate) SetProjectID(v string) *RepoCommitCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetHash sets the "hash" field.
func (_c *RepoCommitCreate) SetHash(v string) *RepoCommitCreate {
	_c.mutation.SetHash(v)
	return _c
}

// SetAuthor sets the "author" field.
func (_c *RepoCommitCreate) SetAuthor(v string) *RepoCommitCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *RepoCommitCreate) SetNillableAuthor(v *string) *RepoCommitCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetCommittedAt sets the "committed_at" field.
func (_c *RepoCommitCreate) SetCommittedAt(v time.Time) *RepoCommitCreate {
	_c.mutation.SetCommittedAt(v)
	return _c
}

// SetNillableCommittedAt sets the "committed_at" field if the given value is not nil.
func (_c *RepoCommitCreate) SetNillableCommittedAt(v *time.Time) *RepoCommitCreate {
	if v != nil {
		_c.SetCommittedAt(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *RepoCommitCreate) SetSummary(v string) *RepoCommitCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *RepoCommitCreate) SetNillableSummary(v *string) *RepoCommitCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetModifiedFiles sets the "modified_files" field.
func (_c *RepoCommitCreate) SetModifiedFiles(v []string) *RepoCommitCreate {
	_c.mutation.SetModifiedFiles(v)
	return _c
}

// SetNeedsReindex sets the "needs_reindex" field.
func (_c *RepoCommitCreate) SetNeedsReindex(v bool) *RepoCommitCreate {
	_c.mutation.SetNeedsReindex(v)
	return _c
}

// SetNillableNeedsReindex sets the "needs_reindex" field if the given value is not nil.
func (_c *RepoCommitCreate) SetNillableNeedsReindex(v *bool) *RepoCommitCreate {
	if v != nil {
		_c.SetNeedsReindex(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RepoCommitCreate) SetID(v string) *RepoCommitCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *RepoCommitCreate) SetProject(v *Project) *RepoCommitCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the RepoCommitMutation object of the builder.
func (_c *RepoCommitCreate) Mutation() *RepoCommitMutation {
	return _c.mutation
}

// Save creates the RepoCommit in the database.
func (_c *RepoCommitCreate) Save(ctx context.Context) (*RepoCommit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RepoCommitCreate) SaveX(ctx context.Context) *RepoCommit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RepoCommitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RepoCommitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RepoCommitCreate) defaults() {
	if _, ok := _c.mutation.Author(); !ok {
		v := repocommit.DefaultAuthor
		_c.mutation.SetAuthor(v)
	}
	if _, ok := _c.mutation.CommittedAt(); !ok {
		v := repocommit.DefaultCommittedAt()
		_c.mutation.SetCommittedAt(v)
	}
	if _, ok := _c.mutation.Summary(); !ok {
		v := repocommit.DefaultSummary
		_c.mutation.SetSummary(v)
	}
	if _, ok := _c.mutation.NeedsReindex(); !ok {
		v := repocommit.DefaultNeedsReindex
		_c.mutation.SetNeedsReindex(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RepoCommitCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "RepoCommit.project_id"`)}
	}
	if v, ok := _c.mutation.ProjectID(); ok {
		if err := repocommit.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "RepoCommit.project_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Hash(); !ok {
		return &ValidationError{Name: "hash", err: errors.New(`ent: missing required field "RepoCommit.hash"`)}
	}
	if v, ok := _c.mutation.Hash(); ok {
		if err := repocommit.HashValidator(v); err != nil {
			return &ValidationError{Name: "hash", err: fmt.Errorf(`ent: validator failed for field "RepoCommit.hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Author(); !ok {
		return &ValidationError{Name: "author", err: errors.New(`ent: missing required field "RepoCommit.author"`)}
	}
	if _, ok := _c.mutation.CommittedAt(); !ok {
		return &ValidationError{Name: "committed_at", err: errors.New(`ent: missing required field "RepoCommit.committed_at"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "RepoCommit.summary"`)}
	}
	if _, ok := _c.mutation.NeedsReindex(); !ok {
		return &ValidationError{Name: "needs_reindex", err: errors.New(`ent: missing required field "RepoCommit.needs_reindex"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "RepoCommit.project"`)}
	}
	return nil
}

func (_c *RepoCommitCreate) sqlSave(ctx context.Context) (*RepoCommit, error) {
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
			return nil, fmt.Errorf("unexpected RepoCommit.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RepoCommitCreate) createSpec() (*RepoCommit, *sqlgraph.CreateSpec) {
	var (
		_node = &RepoCommit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(repocommit.Table, sqlgraph.NewFieldSpec(repocommit.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Hash(); ok {
		_spec.SetField(repocommit.FieldHash, field.TypeString, value)
		_node.Hash = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(repocommit.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := _c.mutation.CommittedAt(); ok {
		_spec.SetField(repocommit.FieldCommittedAt, field.TypeTime, value)
		_node.CommittedAt = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(repocommit.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.ModifiedFiles(); ok {
		_spec.SetField(repocommit.FieldModifiedFiles, field.TypeJSON, value)
		_node.ModifiedFiles = value
	}
	if value, ok := _c.mutation.NeedsReindex(); ok {
		_spec.SetField(repocommit.FieldNeedsReindex, field.TypeBool, value)
		_node.NeedsReindex = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   repocommit.ProjectTable,
			Columns: []string{repocommit.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RepoCommitCreateBulk is the builder for creating many RepoCommit entities in bulk.
type RepoCommitCreateBulk struct {
	config
	err      error
	builders []*RepoCommitCreate
}

// Save creates the RepoCommit entities in the database.
func (_c *RepoCommitCreateBulk) Save(ctx context.Context) ([]*RepoCommit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RepoCommit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RepoCommitMutation)
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
func (_c *RepoCommitCreateBulk) SaveX(ctx context.Context) []*RepoCommit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RepoCommitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RepoCommitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
