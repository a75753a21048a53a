// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"repolens/internal/gateway/ent/creationrequest"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CreationRequestCreate is the builder for creating a CreationRequest entity.
type CreationRequestCreate struct {
	config
	mutation *CreationRequestMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CreationRequestCreate) SetUserID(v string) *CreationRequestCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CreationRequestCreate) SetName(v string) *CreationRequestCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *CreationRequestCreate) SetNillableName(v *string) *CreationRequestCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetRepoURL sets the "repo_url" field.
func (_c *CreationRequestCreate) SetRepoURL(v string) *CreationRequestCreate {
	_c.mutation.SetRepoURL(v)
	return _c
}

// SetBranch sets the "branch" field.
func (_c *CreationRequestCreate) SetBranch(v string) *CreationRequestCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_c *CreationRequestCreate) SetNillableBranch(v *string) *CreationRequestCreate {
	if v != nil {
		_c.SetBranch(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CreationRequestCreate) SetStatus(v string) *CreationRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CreationRequestCreate) SetNillableStatus(v *string) *CreationRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFileCount sets the "file_count" field.
func (_c *CreationRequestCreate) SetFileCount(v int) *CreationRequestCreate {
	_c.mutation.SetFileCount(v)
	return _c
}

// SetNillableFileCount sets the "file_count" field if the given value is not nil.
func (_c *CreationRequestCreate) SetNillableFileCount(v *int) *CreationRequestCreate {
	if v != nil {
		_c.SetFileCount(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *CreationRequestCreate) SetProjectID(v string) *CreationRequestCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *CreationRequestCreate) SetNillableProjectID(v *string) *CreationRequestCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetErrorNote sets the "error_note" field.
func (_c *CreationRequestCreate) SetErrorNote(v string) *CreationRequestCreate {
	_c.mutation.SetErrorNote(v)
	return _c
}

// SetNillableErrorNote sets the "error_note" field if the given value is not nil.
func (_c *CreationRequestCreate) SetNillableErrorNote(v *string) *CreationRequestCreate {
	if v != nil {
		_c.SetErrorNote(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CreationRequestCreate) SetCreatedAt(v time.Time) *CreationRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CreationRequestCreate) SetNillableCreatedAt(v *time.Time) *CreationRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CreationRequestCreate) SetUpdatedAt(v time.Time) *CreationRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CreationRequestCreate) SetNillableUpdatedAt(v *time.Time) *CreationRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CreationRequestCreate) SetID(v string) *CreationRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CreationRequestMutation object of the builder.
func (_c *CreationRequestCreate) Mutation() *CreationRequestMutation {
	return _c.mutation
}

// Save creates the CreationRequest in the database.
func (_c *CreationRequestCreate) Save(ctx context.Context) (*CreationRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CreationRequestCreate) SaveX(ctx context.Context) *CreationRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreationRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreationRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CreationRequestCreate) defaults() {
	if _, ok := _c.mutation.Name(); !ok {
		v := creationrequest.DefaultName
		_c.mutation.SetName(v)
	}
	if _, ok := _c.mutation.Branch(); !ok {
		v := creationrequest.DefaultBranch
		_c.mutation.SetBranch(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := creationrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.FileCount(); !ok {
		v := creationrequest.DefaultFileCount
		_c.mutation.SetFileCount(v)
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		v := creationrequest.DefaultProjectID
		_c.mutation.SetProjectID(v)
	}
	if _, ok := _c.mutation.ErrorNote(); !ok {
		v := creationrequest.DefaultErrorNote
		_c.mutation.SetErrorNote(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := creationrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := creationrequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CreationRequestCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CreationRequest.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := creationrequest.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CreationRequest.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "CreationRequest.name"`)}
	}
	if _, ok := _c.mutation.RepoURL(); !ok {
		return &ValidationError{Name: "repo_url", err: errors.New(`ent: missing required field "CreationRequest.repo_url"`)}
	}
	if v, ok := _c.mutation.RepoURL(); ok {
		if err := creationrequest.RepoURLValidator(v); err != nil {
			return &ValidationError{Name: "repo_url", err: fmt.Errorf(`ent: validator failed for field "CreationRequest.repo_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Branch(); !ok {
		return &ValidationError{Name: "branch", err: errors.New(`ent: missing required field "CreationRequest.branch"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CreationRequest.status"`)}
	}
	if _, ok := _c.mutation.FileCount(); !ok {
		return &ValidationError{Name: "file_count", err: errors.New(`ent: missing required field "CreationRequest.file_count"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "CreationRequest.project_id"`)}
	}
	if _, ok := _c.mutation.ErrorNote(); !ok {
		return &ValidationError{Name: "error_note", err: errors.New(`ent: missing required field "CreationRequest.error_note"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CreationRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CreationRequest.updated_at"`)}
	}
	return nil
}

func (_c *CreationRequestCreate) sqlSave(ctx context.Context) (*CreationRequest, error) {
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
			return nil, fmt.Errorf("unexpected CreationRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CreationRequestCreate) createSpec() (*CreationRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &CreationRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(creationrequest.Table, sqlgraph.NewFieldSpec(creationrequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(creationrequest.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(creationrequest.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.RepoURL(); ok {
		_spec.SetField(creationrequest.FieldRepoURL, field.TypeString, value)
		_node.RepoURL = value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(creationrequest.FieldBranch, field.TypeString, value)
		_node.Branch = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(creationrequest.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FileCount(); ok {
		_spec.SetField(creationrequest.FieldFileCount, field.TypeInt, value)
		_node.FileCount = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(creationrequest.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.ErrorNote(); ok {
		_spec.SetField(creationrequest.FieldErrorNote, field.TypeString, value)
		_node.ErrorNote = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(creationrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(creationrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CreationRequestCreateBulk is the builder for creating many CreationRequest entities in bulk.
type CreationRequestCreateBulk struct {
	config
	err      error
	builders []*CreationRequestCreate
}

// Save creates the CreationRequest entities in the database.
func (_c *CreationRequestCreateBulk) Save(ctx context.Context) ([]*CreationRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CreationRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CreationRequestMutation)
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
func (_c *CreationRequestCreateBulk) SaveX(ctx context.Context) []*CreationRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreationRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreationRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
