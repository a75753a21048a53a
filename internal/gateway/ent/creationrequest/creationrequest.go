// Code generated by ent, DO NOT EDIT.

package creationrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the creationrequest type in the database.
	Label = "creation_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "request_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldRepoURL holds the string denoting the repo_url field in the database.
	FieldRepoURL = "repo_url"
	// FieldBranch holds the string denoting the branch field in the database.
	FieldBranch = "branch"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFileCount holds the string denoting the file_count field in the database.
	FieldFileCount = "file_count"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldErrorNote holds the string denoting the error_note field in the database.
	FieldErrorNote = "error_note"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the creationrequest in the database.
	Table = "creation_requests"
)

// Columns holds all SQL columns for creationrequest fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldName,
	FieldRepoURL,
	FieldBranch,
	FieldStatus,
	FieldFileCount,
	FieldProjectID,
	FieldErrorNote,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultName holds the default value on creation for the "name" field.
	DefaultName string
	// RepoURLValidator is a validator for the "repo_url" field. It is called by the builders before save.
	RepoURLValidator func(string) error
	// DefaultBranch holds the default value on creation for the "branch" field.
	DefaultBranch string
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultFileCount holds the default value on creation for the "file_count" field.
	DefaultFileCount int
	// DefaultProjectID holds the default value on creation for the "project_id" field.
	DefaultProjectID string
	// DefaultErrorNote holds the default value on creation for the "error_note" field.
	DefaultErrorNote string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the CreationRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByRepoURL orders the results by the repo_url field.
func ByRepoURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepoURL, opts...).ToFunc()
}

// ByBranch orders the results by the branch field.
func ByBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranch, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFileCount orders the results by the file_count field.
func ByFileCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileCount, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByErrorNote orders the results by the error_note field.
func ByErrorNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorNote, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
