// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"repolens/internal/gateway/ent/creationrequest"
	"repolens/internal/gateway/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CreationRequestUpdate is the builder for updating CreationRequest entities.
type CreationRequestUpdate struct {
	config
	hooks    []Hook
	mutation *CreationRequestMutation
}

// Where appends a list predicates to the CreationRequestUpdate builder.
func (_u *CreationRequestUpdate) Where(ps ...predicate.CreationRequest) *CreationRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CreationRequestUpdate) SetUserID(v string) *CreationRequestUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CreationRequestUpdate) SetNillableUserID(v *string) *CreationRequestUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CreationRequestUpdate) SetName(v string) *CreationRequestUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CreationRequestUpdate) SetNillableName(v *string) *CreationRequestUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRepoURL sets the "repo_url" field.
func (_u *CreationRequestUpdate) SetRepoURL(v string) *CreationRequestUpdate {
	_u.mutation.SetRepoURL(v)
	return _u
}

// SetNillableRepoURL sets the "repo_url" field if the given value is not nil.
func (_u *CreationRequestUpdate) SetNillableRepoURL(v *string) *CreationRequestUpdate {
	if v != nil {
		_u.SetRepoURL(*v)
	}
	return _u
}

// SetBranch sets the "branch" field.
func (_u *CreationRequestUpdate) SetBranch(v string) *CreationRequestUpdate {
	_u.mutation.SetBranch(v)
	return _u
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_u *CreationRequestUpdate) SetNillableBranch(v *string) *CreationRequestUpdate {
	if v != nil {
		_u.SetBranch(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CreationRequestUpdate) SetStatus(v string) *CreationRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CreationRequestUpdate) SetNillableStatus(v *string) *CreationRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFileCount sets the "file_count" field.
func (_u *CreationRequestUpdate) SetFileCount(v int) *CreationRequestUpdate {
	_u.mutation.ResetFileCount()
	_u.mutation.SetFileCount(v)
	return _u
}

// SetNillableFileCount sets the "file_count" field if the given value is not nil.
func (_u *CreationRequestUpdate) SetNillableFileCount(v *int) *CreationRequestUpdate {
	if v != nil {
		_u.SetFileCount(*v)
	}
	return _u
}

// AddFileCount adds value to the "file_count" field.
func (_u *CreationRequestUpdate) AddFileCount(v int) *CreationRequestUpdate {
	_u.mutation.AddFileCount(v)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *CreationRequestUpdate) SetProjectID(v string) *CreationRequestUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *CreationRequestUpdate) SetNillableProjectID(v *string) *CreationRequestUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetErrorNote sets the "error_note" field.
func (_u *CreationRequestUpdate) SetErrorNote(v string) *CreationRequestUpdate {
	_u.mutation.SetErrorNote(v)
	return _u
}

// SetNillableErrorNote sets the "error_note" field if the given value is not nil.
func (_u *CreationRequestUpdate) SetNillableErrorNote(v *string) *CreationRequestUpdate {
	if v != nil {
		_u.SetErrorNote(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CreationRequestUpdate) SetCreatedAt(v time.Time) *CreationRequestUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CreationRequestUpdate) SetNillableCreatedAt(v *time.Time) *CreationRequestUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CreationRequestUpdate) SetUpdatedAt(v time.Time) *CreationRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CreationRequestMutation object of the builder.
func (_u *CreationRequestUpdate) Mutation() *CreationRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CreationRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreationRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CreationRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreationRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CreationRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := creationrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CreationRequestUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := creationrequest.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CreationRequest.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RepoURL(); ok {
		if err := creationrequest.RepoURLValidator(v); err != nil {
			return &ValidationError{Name: "repo_url", err: fmt.Errorf(`ent: validator failed for field "CreationRequest.repo_url": %w`, err)}
		}
	}
	return nil
}

func (_u *CreationRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creationrequest.Table, creationrequest.Columns, sqlgraph.NewFieldSpec(creationrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(creationrequest.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(creationrequest.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepoURL(); ok {
		_spec.SetField(creationrequest.FieldRepoURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Branch(); ok {
		_spec.SetField(creationrequest.FieldBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(creationrequest.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileCount(); ok {
		_spec.SetField(creationrequest.FieldFileCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileCount(); ok {
		_spec.AddField(creationrequest.FieldFileCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(creationrequest.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorNote(); ok {
		_spec.SetField(creationrequest.FieldErrorNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(creationrequest.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(creationrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creationrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CreationRequestUpdateOne is the builder for updating a single CreationRequest entity.
type CreationRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CreationRequestMutation
}

// SetUserID sets the "user_id" field.
func (_u *CreationRequestUpdateOne) SetUserID(v string) *CreationRequestUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CreationRequestUpdateOne) SetNillableUserID(v *string) *CreationRequestUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CreationRequestUpdateOne) SetName(v string) *CreationRequestUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CreationRequestUpdateOne) SetNillableName(v *string) *CreationRequestUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRepoURL sets the "repo_url" field.
func (_u *CreationRequestUpdateOne) SetRepoURL(v string) *CreationRequestUpdateOne {
	_u.mutation.SetRepoURL(v)
	return _u
}

// SetNillableRepoURL sets the "repo_url" field if the given value is not nil.
func (_u *CreationRequestUpdateOne) SetNillableRepoURL(v *string) *CreationRequestUpdateOne {
	if v != nil {
		_u.SetRepoURL(*v)
	}
	return _u
}

// SetBranch sets the "branch" field.
func (_u *CreationRequestUpdateOne) SetBranch(v string) *CreationRequestUpdateOne {
	_u.mutation.SetBranch(v)
	return _u
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_u *CreationRequestUpdateOne) SetNillableBranch(v *string) *CreationRequestUpdateOne {
	if v != nil {
		_u.SetBranch(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CreationRequestUpdateOne) SetStatus(v string) *CreationRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CreationRequestUpdateOne) SetNillableStatus(v *string) *CreationRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFileCount sets the "file_count" field.
func (_u *CreationRequestUpdateOne) SetFileCount(v int) *CreationRequestUpdateOne {
	_u.mutation.ResetFileCount()
	_u.mutation.SetFileCount(v)
	return _u
}

// SetNillableFileCount sets the "file_count" field if the given value is not nil.
func (_u *CreationRequestUpdateOne) SetNillableFileCount(v *int) *CreationRequestUpdateOne {
	if v != nil {
		_u.SetFileCount(*v)
	}
	return _u
}

// AddFileCount adds value to the "file_count" field.
func (_u *CreationRequestUpdateOne) AddFileCount(v int) *CreationRequestUpdateOne {
	_u.mutation.AddFileCount(v)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *CreationRequestUpdateOne) SetProjectID(v string) *CreationRequestUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *CreationRequestUpdateOne) SetNillableProjectID(v *string) *CreationRequestUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetErrorNote sets the "error_note" field.
func (_u *CreationRequestUpdateOne) SetErrorNote(v string) *CreationRequestUpdateOne {
	_u.mutation.SetErrorNote(v)
	return _u
}

// SetNillableErrorNote sets the "error_note" field if the given value is not nil.
func (_u *CreationRequestUpdateOne) SetNillableErrorNote(v *string) *CreationRequestUpdateOne {
	if v != nil {
		_u.SetErrorNote(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CreationRequestUpdateOne) SetCreatedAt(v time.Time) *CreationRequestUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CreationRequestUpdateOne) SetNillableCreatedAt(v *time.Time) *CreationRequestUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CreationRequestUpdateOne) SetUpdatedAt(v time.Time) *CreationRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CreationRequestMutation object of the builder.
func (_u *CreationRequestUpdateOne) Mutation() *CreationRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the CreationRequestUpdate builder.
func (_u *CreationRequestUpdateOne) Where(ps ...predicate.CreationRequest) *CreationRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CreationRequestUpdateOne) Select(field string, fields ...string) *CreationRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CreationRequest entity.
func (_u *CreationRequestUpdateOne) Save(ctx context.Context) (*CreationRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreationRequestUpdateOne) SaveX(ctx context.Context) *CreationRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CreationRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreationRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CreationRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := creationrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CreationRequestUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := creationrequest.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CreationRequest.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RepoURL(); ok {
		if err := creationrequest.RepoURLValidator(v); err != nil {
			return &ValidationError{Name: "repo_url", err: fmt.Errorf(`ent: validator failed for field "CreationRequest.repo_url": %w`, err)}
		}
	}
	return nil
}

func (_u *CreationRequestUpdateOne) sqlSave(ctx context.Context) (_node *CreationRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creationrequest.Table, creationrequest.Columns, sqlgraph.NewFieldSpec(creationrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CreationRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creationrequest.FieldID)
		for _, f := range fields {
			if !creationrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != creationrequest.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(creationrequest.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(creationrequest.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepoURL(); ok {
		_spec.SetField(creationrequest.FieldRepoURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Branch(); ok {
		_spec.SetField(creationrequest.FieldBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(creationrequest.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileCount(); ok {
		_spec.SetField(creationrequest.FieldFileCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileCount(); ok {
		_spec.AddField(creationrequest.FieldFileCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(creationrequest.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorNote(); ok {
		_spec.SetField(creationrequest.FieldErrorNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(creationrequest.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(creationrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CreationRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creationrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
