// Code generated by ent, DO NOT EDIT.

package repocommit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the repocommit type in the database.
	Label = "repo_commit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "commit_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldHash holds the string denoting the hash field in the database.
	FieldHash = "hash"
	// FieldAuthor holds the string denoting the author field in the database.
	FieldAuthor = "author"
	// FieldCommittedAt holds the string denoting the committed_at field in the database.
	FieldCommittedAt = "committed_at"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldModifiedFiles holds the string denoting the modified_files field in the database.
	FieldModifiedFiles = "modified_files"
	// FieldNeedsReindex holds the string denoting the needs_reindex field in the database.
	FieldNeedsReindex = "needs_reindex"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// Table holds the table name of the repocommit in the database.
	Table = "commits"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "commits"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
)

// Columns holds all SQL columns for repocommit fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldHash,
	FieldAuthor,
	FieldCommittedAt,
	FieldSummary,
	FieldModifiedFiles,
	FieldNeedsReindex,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	ProjectIDValidator func(string) error
	// HashValidator is a validator for the "hash" field. It is called by the builders before save.
	HashValidator func(string) error
	// DefaultAuthor holds the default value on creation for the "author" field.
	DefaultAuthor string
	// DefaultCommittedAt holds the default value on creation for the "committed_at" field.
	DefaultCommittedAt func() time.Time
	// DefaultSummary holds the default value on creation for the "summary" field.
	DefaultSummary string
	// DefaultNeedsReindex holds the default value on creation for the "needs_reindex" field.
	DefaultNeedsReindex bool
)

// OrderOption defines the ordering options for the RepoCommit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByHash orders the results by the hash field.
func ByHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHash, opts...).ToFunc()
}

// ByAuthor orders the results by the author field.
func ByAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthor, opts...).ToFunc()
}

// ByCommittedAt orders the results by the committed_at field.
func ByCommittedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommittedAt, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByNeedsReindex orders the results by the needs_reindex field.
func ByNeedsReindex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReindex, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
