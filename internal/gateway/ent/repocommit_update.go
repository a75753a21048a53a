// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"repolens/internal/gateway/ent/predicate"
	"repolens/internal/gateway/ent/project"
	"repolens/internal/gateway/ent/repocommit"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// RepoCommitUpdate is the builder for updating RepoCommit entities.
type RepoCommitUpdate struct {
	config
	hooks    []Hook
	mutation *RepoCommitMutation
}

// Where appends a list predicates to the RepoCommitUpdate builder.
func (_u *RepoCommitUpdate) Where(ps ...predicate.RepoCommit) *RepoCommitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *RepoCommitUpdate) SetProjectID(v string) *RepoCommitUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *RepoCommitUpdate) SetNillableProjectID(v *string) *RepoCommitUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *RepoCommitUpdate) SetAuthor(v string) *RepoCommitUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *RepoCommitUpdate) SetNillableAuthor(v *string) *RepoCommitUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetCommittedAt sets the "committed_at" field.
func (_u *RepoCommitUpdate) SetCommittedAt(v time.Time) *RepoCommitUpdate {
	_u.mutation.SetCommittedAt(v)
	return _u
}

// SetNillableCommittedAt sets the "committed_at" field if the given value is not nil.
func (_u *RepoCommitUpdate) SetNillableCommittedAt(v *time.Time) *RepoCommitUpdate {
	if v != nil {
		_u.SetCommittedAt(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *RepoCommitUpdate) SetSummary(v string) *RepoCommitUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *RepoCommitUpdate) SetNillableSummary(v *string) *RepoCommitUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetModifiedFiles sets the "modified_files" field.
func (_u *RepoCommitUpdate) SetModifiedFiles(v []string) *RepoCommitUpdate {
	_u.mutation.SetModifiedFiles(v)
	return _u
}

// AppendModifiedFiles appends value to the "modified_files" field.
func (_u *RepoCommitUpdate) AppendModifiedFiles(v []string) *RepoCommitUpdate {
	_u.mutation.AppendModifiedFiles(v)
	return _u
}

// ClearModifiedFiles clears the value of the "modified_files" field.
func (_u *RepoCommitUpdate) ClearModifiedFiles() *RepoCommitUpdate {
	_u.mutation.ClearModifiedFiles()
	return _u
}

// SetNeedsReindex sets the "needs_reindex" field.
func (_u *RepoCommitUpdate) SetNeedsReindex(v bool) *RepoCommitUpdate {
	_u.mutation.SetNeedsReindex(v)
	return _u
}

// SetNillableNeedsReindex sets the "needs_reindex" field if the given value is not nil.
func (_u *RepoCommitUpdate) SetNillableNeedsReindex(v *bool) *RepoCommitUpdate {
	if v != nil {
		_u.SetNeedsReindex(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *RepoCommitUpdate) SetProject(v *Project) *RepoCommitUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the RepoCommitMutation object of the builder.
func (_u *RepoCommitUpdate) Mutation() *RepoCommitMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *RepoCommitUpdate) ClearProject() *RepoCommitUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RepoCommitUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RepoCommitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RepoCommitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RepoCommitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RepoCommitUpdate) check() error {
	if v, ok := _u.mutation.ProjectID(); ok {
		if err := repocommit.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "RepoCommit.project_id": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RepoCommit.project"`)
	}
	return nil
}

func (_u *RepoCommitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(repocommit.Table, repocommit.Columns, sqlgraph.NewFieldSpec(repocommit.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(repocommit.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommittedAt(); ok {
		_spec.SetField(repocommit.FieldCommittedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(repocommit.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModifiedFiles(); ok {
		_spec.SetField(repocommit.FieldModifiedFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModifiedFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, repocommit.FieldModifiedFiles, value)
		})
	}
	if _u.mutation.ModifiedFilesCleared() {
		_spec.ClearField(repocommit.FieldModifiedFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.NeedsReindex(); ok {
		_spec.SetField(repocommit.FieldNeedsReindex, field.TypeBool, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{repocommit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RepoCommitUpdateOne is the builder for updating a single RepoCommit entity.
type RepoCommitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RepoCommitMutation
}

// SetProjectID sets the "project_id" field.
func (_u *RepoCommitUpdateOne) SetProjectID(v string) *RepoCommitUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *RepoCommitUpdateOne) SetNillableProjectID(v *string) *RepoCommitUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *RepoCommitUpdateOne) SetAuthor(v string) *RepoCommitUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *RepoCommitUpdateOne) SetNillableAuthor(v *string) *RepoCommitUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetCommittedAt sets the "committed_at" field.
func (_u *RepoCommitUpdateOne) SetCommittedAt(v time.Time) *RepoCommitUpdateOne {
	_u.mutation.SetCommittedAt(v)
	return _u
}

// SetNillableCommittedAt sets the "committed_at" field if the given value is not nil.
func (_u *RepoCommitUpdateOne) SetNillableCommittedAt(v *time.Time) *RepoCommitUpdateOne {
	if v != nil {
		_u.SetCommittedAt(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *RepoCommitUpdateOne) SetSummary(v string) *RepoCommitUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *RepoCommitUpdateOne) SetNillableSummary(v *string) *RepoCommitUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetModifiedFiles sets the "modified_files" field.
func (_u *RepoCommitUpdateOne) SetModifiedFiles(v []string) *RepoCommitUpdateOne {
	_u.mutation.SetModifiedFiles(v)
	return _u
}

// AppendModifiedFiles appends value to the "modified_files" field.
func (_u *RepoCommitUpdateOne) AppendModifiedFiles(v []string) *RepoCommitUpdateOne {
	_u.mutation.AppendModifiedFiles(v)
	return _u
}

// ClearModifiedFiles clears the value of the "modified_files" field.
func (_u *RepoCommitUpdateOne) ClearModifiedFiles() *RepoCommitUpdateOne {
	_u.mutation.ClearModifiedFiles()
	return _u
}

// SetNeedsReindex sets the "needs_reindex" field.
func (_u *RepoCommitUpdateOne) SetNeedsReindex(v bool) *RepoCommitUpdateOne {
	_u.mutation.SetNeedsReindex(v)
	return _u
}

// SetNillableNeedsReindex sets the "needs_reindex" field if the given value is not nil.
func (_u *RepoCommitUpdateOne) SetNillableNeedsReindex(v *bool) *RepoCommitUpdateOne {
	if v != nil {
		_u.SetNeedsReindex(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *RepoCommitUpdateOne) SetProject(v *Project) *RepoCommitUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the RepoCommitMutation object of the builder.
func (_u *RepoCommitUpdateOne) Mutation() *RepoCommitMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *RepoCommitUpdateOne) ClearProject() *RepoCommitUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the RepoCommitUpdate builder.
func (_u *RepoCommitUpdateOne) Where(ps ...predicate.RepoCommit) *RepoCommitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RepoCommitUpdateOne) Select(field string, fields ...string) *RepoCommitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RepoCommit entity.
func (_u *RepoCommitUpdateOne) Save(ctx context.Context) (*RepoCommit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RepoCommitUpdateOne) SaveX(ctx context.Context) *RepoCommit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RepoCommitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RepoCommitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RepoCommitUpdateOne) check() error {
	if v, ok := _u.mutation.ProjectID(); ok {
		if err := repocommit.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "RepoCommit.project_id": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RepoCommit.project"`)
	}
	return nil
}

func (_u *RepoCommitUpdateOne) sqlSave(ctx context.Context) (_node *RepoCommit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(repocommit.Table, repocommit.Columns, sqlgraph.NewFieldSpec(repocommit.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RepoCommit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, repocommit.FieldID)
		for _, f := range fields {
			if !repocommit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != repocommit.FieldID {
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
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(repocommit.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommittedAt(); ok {
		_spec.SetField(repocommit.FieldCommittedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(repocommit.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModifiedFiles(); ok {
		_spec.SetField(repocommit.FieldModifiedFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModifiedFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, repocommit.FieldModifiedFiles, value)
		})
	}
	if _u.mutation.ModifiedFilesCleared() {
		_spec.ClearField(repocommit.FieldModifiedFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.NeedsReindex(); ok {
		_spec.SetField(repocommit.FieldNeedsReindex, field.TypeBool, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RepoCommit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{repocommit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
