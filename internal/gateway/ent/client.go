// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"repolens/internal/gateway/ent/migrate"

	"repolens/internal/gateway/ent/creationrequest"
	"repolens/internal/gateway/ent/project"
	"repolens/internal/gateway/ent/projectmembership"
	"repolens/internal/gateway/ent/repocommit"
	"repolens/internal/gateway/ent/user"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CreationRequest is the client for interacting with the CreationRequest builders.
	CreationRequest *CreationRequestClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// ProjectMembership is the client for interacting with the ProjectMembership builders.
	ProjectMembership *ProjectMembershipClient
	// RepoCommit is the client for interacting with the RepoCommit builders.
	RepoCommit *RepoCommitClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CreationRequest = NewCreationRequestClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.ProjectMembership = NewProjectMembershipClient(c.config)
	c.RepoCommit = NewRepoCommitClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		CreationRequest:   NewCreationRequestClient(cfg),
		Project:           NewProjectClient(cfg),
		ProjectMembership: NewProjectMembershipClient(cfg),
		RepoCommit:        NewRepoCommitClient(cfg),
		User:              NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		CreationRequest:   NewCreationRequestClient(cfg),
		Project:           NewProjectClient(cfg),
		ProjectMembership: NewProjectMembershipClient(cfg),
		RepoCommit:        NewRepoCommitClient(cfg),
		User:              NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CreationRequest.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.CreationRequest.Use(hooks...)
	c.Project.Use(hooks...)
	c.ProjectMembership.Use(hooks...)
	c.RepoCommit.Use(hooks...)
	c.User.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CreationRequest.Intercept(interceptors...)
	c.Project.Intercept(interceptors...)
	c.ProjectMembership.Intercept(interceptors...)
	c.RepoCommit.Intercept(interceptors...)
	c.User.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CreationRequestMutation:
		return c.CreationRequest.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *ProjectMembershipMutation:
		return c.ProjectMembership.mutate(ctx, m)
	case *RepoCommitMutation:
		return c.RepoCommit.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CreationRequestClient is a client for the CreationRequest schema.
type CreationRequestClient struct {
	config
}

// NewCreationRequestClient returns a client for the CreationRequest from the given config.
func NewCreationRequestClient(c config) *CreationRequestClient {
	return &CreationRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `creationrequest.Hooks(f(g(h())))`.
func (c *CreationRequestClient) Use(hooks ...Hook) {
	c.hooks.CreationRequest = append(c.hooks.CreationRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `creationrequest.Intercept(f(g(h())))`.
func (c *CreationRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.CreationRequest = append(c.inters.CreationRequest, interceptors...)
}

// Create returns a builder for creating a CreationRequest entity.
func (c *CreationRequestClient) Create() *CreationRequestCreate {
	mutation := newCreationRequestMutation(c.config, OpCreate)
	return &CreationRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CreationRequest entities.
func (c *CreationRequestClient) CreateBulk(builders ...*CreationRequestCreate) *CreationRequestCreateBulk {
	return &CreationRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CreationRequestClient) MapCreateBulk(slice any, setFunc func(*CreationRequestCreate, int)) *CreationRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CreationRequestCreateBulk{err: fmt.Errorf("calling to CreationRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CreationRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CreationRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CreationRequest.
func (c *CreationRequestClient) Update() *CreationRequestUpdate {
	mutation := newCreationRequestMutation(c.config, OpUpdate)
	return &CreationRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CreationRequestClient) UpdateOne(_m *CreationRequest) *CreationRequestUpdateOne {
	mutation := newCreationRequestMutation(c.config, OpUpdateOne, withCreationRequest(_m))
	return &CreationRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CreationRequestClient) UpdateOneID(id string) *CreationRequestUpdateOne {
	mutation := newCreationRequestMutation(c.config, OpUpdateOne, withCreationRequestID(id))
	return &CreationRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CreationRequest.
func (c *CreationRequestClient) Delete() *CreationRequestDelete {
	mutation := newCreationRequestMutation(c.config, OpDelete)
	return &CreationRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CreationRequestClient) DeleteOne(_m *CreationRequest) *CreationRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CreationRequestClient) DeleteOneID(id string) *CreationRequestDeleteOne {
	builder := c.Delete().Where(creationrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CreationRequestDeleteOne{builder}
}

// Query returns a query builder for CreationRequest.
func (c *CreationRequestClient) Query() *CreationRequestQuery {
	return &CreationRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCreationRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a CreationRequest entity by its id.
func (c *CreationRequestClient) Get(ctx context.Context, id string) (*CreationRequest, error) {
	return c.Query().Where(creationrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CreationRequestClient) GetX(ctx context.Context, id string) *CreationRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CreationRequestClient) Hooks() []Hook {
	return c.hooks.CreationRequest
}

// Interceptors returns the client interceptors.
func (c *CreationRequestClient) Interceptors() []Interceptor {
	return c.inters.CreationRequest
}

func (c *CreationRequestClient) mutate(ctx context.Context, m *CreationRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CreationRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CreationRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CreationRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CreationRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CreationRequest mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMemberships queries the memberships edge of a Project.
func (c *ProjectClient) QueryMemberships(_m *Project) *ProjectMembershipQuery {
	query := (&ProjectMembershipClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(projectmembership.Table, projectmembership.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.MembershipsTable, project.MembershipsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCommits queries the commits edge of a Project.
func (c *ProjectClient) QueryCommits(_m *Project) *RepoCommitQuery {
	query := (&RepoCommitClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(repocommit.Table, repocommit.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.CommitsTable, project.CommitsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// ProjectMembershipClient is a client for the ProjectMembership schema.
type ProjectMembershipClient struct {
	config
}

// NewProjectMembershipClient returns a client for the ProjectMembership from the given config.
func NewProjectMembershipClient(c config) *ProjectMembershipClient {
	return &ProjectMembershipClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `projectmembership.Hooks(f(g(h())))`.
func (c *ProjectMembershipClient) Use(hooks ...Hook) {
	c.hooks.ProjectMembership = append(c.hooks.ProjectMembership, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `projectmembership.Intercept(f(g(h())))`.
func (c *ProjectMembershipClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProjectMembership = append(c.inters.ProjectMembership, interceptors...)
}

// Create returns a builder for creating a ProjectMembership entity.
func (c *ProjectMembershipClient) Create() *ProjectMembershipCreate {
	mutation := newProjectMembershipMutation(c.config, OpCreate)
	return &ProjectMembershipCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProjectMembership entities.
func (c *ProjectMembershipClient) CreateBulk(builders ...*ProjectMembershipCreate) *ProjectMembershipCreateBulk {
	return &ProjectMembershipCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectMembershipClient) MapCreateBulk(slice any, setFunc func(*ProjectMembershipCreate, int)) *ProjectMembershipCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectMembershipCreateBulk{err: fmt.Errorf("calling to ProjectMembershipClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectMembershipCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectMembershipCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProjectMembership.
func (c *ProjectMembershipClient) Update() *ProjectMembershipUpdate {
	mutation := newProjectMembershipMutation(c.config, OpUpdate)
	return &ProjectMembershipUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectMembershipClient) UpdateOne(_m *ProjectMembership) *ProjectMembershipUpdateOne {
	mutation := newProjectMembershipMutation(c.config, OpUpdateOne, withProjectMembership(_m))
	return &ProjectMembershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectMembershipClient) UpdateOneID(id string) *ProjectMembershipUpdateOne {
	mutation := newProjectMembershipMutation(c.config, OpUpdateOne, withProjectMembershipID(id))
	return &ProjectMembershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProjectMembership.
func (c *ProjectMembershipClient) Delete() *ProjectMembershipDelete {
	mutation := newProjectMembershipMutation(c.config, OpDelete)
	return &ProjectMembershipDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectMembershipClient) DeleteOne(_m *ProjectMembership) *ProjectMembershipDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectMembershipClient) DeleteOneID(id string) *ProjectMembershipDeleteOne {
	builder := c.Delete().Where(projectmembership.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectMembershipDeleteOne{builder}
}

// Query returns a query builder for ProjectMembership.
func (c *ProjectMembershipClient) Query() *ProjectMembershipQuery {
	return &ProjectMembershipQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProjectMembership},
		inters: c.Interceptors(),
	}
}

// Get returns a ProjectMembership entity by its id.
func (c *ProjectMembershipClient) Get(ctx context.Context, id string) (*ProjectMembership, error) {
	return c.Query().Where(projectmembership.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectMembershipClient) GetX(ctx context.Context, id string) *ProjectMembership {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a ProjectMembership.
func (c *ProjectMembershipClient) QueryUser(_m *ProjectMembership) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(projectmembership.Table, projectmembership.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, projectmembership.UserTable, projectmembership.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProject queries the project edge of a ProjectMembership.
func (c *ProjectMembershipClient) QueryProject(_m *ProjectMembership) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(projectmembership.Table, projectmembership.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, projectmembership.ProjectTable, projectmembership.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectMembershipClient) Hooks() []Hook {
	return c.hooks.ProjectMembership
}

// Interceptors returns the client interceptors.
func (c *ProjectMembershipClient) Interceptors() []Interceptor {
	return c.inters.ProjectMembership
}

func (c *ProjectMembershipClient) mutate(ctx context.Context, m *ProjectMembershipMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectMembershipCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectMembershipUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectMembershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectMembershipDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProjectMembership mutation op: %q", m.Op())
	}
}

// RepoCommitClient is a client for the RepoCommit schema.
type RepoCommitClient struct {
	config
}

// NewRepoCommitClient returns a client for the RepoCommit from the given config.
func NewRepoCommitClient(c config) *RepoCommitClient {
	return &RepoCommitClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `repocommit.Hooks(f(g(h())))`.
func (c *RepoCommitClient) Use(hooks ...Hook) {
	c.hooks.RepoCommit = append(c.hooks.RepoCommit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `repocommit.Intercept(f(g(h())))`.
func (c *RepoCommitClient) Intercept(interceptors ...Interceptor) {
	c.inters.RepoCommit = append(c.inters.RepoCommit, interceptors...)
}

// Create returns a builder for creating a RepoCommit entity.
func (c *RepoCommitClient) Create() *RepoCommitCreate {
	mutation := newRepoCommitMutation(c.config, OpCreate)
	return &RepoCommitCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RepoCommit entities.
func (c *RepoCommitClient) CreateBulk(builders ...*RepoCommitCreate) *RepoCommitCreateBulk {
	return &RepoCommitCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RepoCommitClient) MapCreateBulk(slice any, setFunc func(*RepoCommitCreate, int)) *RepoCommitCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RepoCommitCreateBulk{err: fmt.Errorf("calling to RepoCommitClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RepoCommitCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RepoCommitCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RepoCommit.
func (c *RepoCommitClient) Update() *RepoCommitUpdate {
	mutation := newRepoCommitMutation(c.config, OpUpdate)
	return &RepoCommitUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RepoCommitClient) UpdateOne(_m *RepoCommit) *RepoCommitUpdateOne {
	mutation := newRepoCommitMutation(c.config, OpUpdateOne, withRepoCommit(_m))
	return &RepoCommitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RepoCommitClient) UpdateOneID(id string) *RepoCommitUpdateOne {
	mutation := newRepoCommitMutation(c.config, OpUpdateOne, withRepoCommitID(id))
	return &RepoCommitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RepoCommit.
func (c *RepoCommitClient) Delete() *RepoCommitDelete {
	mutation := newRepoCommitMutation(c.config, OpDelete)
	return &RepoCommitDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RepoCommitClient) DeleteOne(_m *RepoCommit) *RepoCommitDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RepoCommitClient) DeleteOneID(id string) *RepoCommitDeleteOne {
	builder := c.Delete().Where(repocommit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RepoCommitDeleteOne{builder}
}

// Query returns a query builder for RepoCommit.
func (c *RepoCommitClient) Query() *RepoCommitQuery {
	return &RepoCommitQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRepoCommit},
		inters: c.Interceptors(),
	}
}

// Get returns a RepoCommit entity by its id.
func (c *RepoCommitClient) Get(ctx context.Context, id string) (*RepoCommit, error) {
	return c.Query().Where(repocommit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RepoCommitClient) GetX(ctx context.Context, id string) *RepoCommit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a RepoCommit.
func (c *RepoCommitClient) QueryProject(_m *RepoCommit) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(repocommit.Table, repocommit.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, repocommit.ProjectTable, repocommit.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RepoCommitClient) Hooks() []Hook {
	return c.hooks.RepoCommit
}

// Interceptors returns the client interceptors.
func (c *RepoCommitClient) Interceptors() []Interceptor {
	return c.inters.RepoCommit
}

func (c *RepoCommitClient) mutate(ctx context.Context, m *RepoCommitMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RepoCommitCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RepoCommitUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RepoCommitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RepoCommitDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RepoCommit mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMemberships queries the memberships edge of a User.
func (c *UserClient) QueryMemberships(_m *User) *ProjectMembershipQuery {
	query := (&ProjectMembershipClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(projectmembership.Table, projectmembership.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.MembershipsTable, user.MembershipsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CreationRequest, Project, ProjectMembership, RepoCommit, User []ent.Hook
	}
	inters struct {
		CreationRequest, Project, ProjectMembership, RepoCommit, User []ent.Interceptor
	}
)
