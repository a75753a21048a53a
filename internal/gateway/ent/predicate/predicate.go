// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CreationRequest is the predicate function for creationrequest builders.
type CreationRequest func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// ProjectMembership is the predicate function for projectmembership builders.
type ProjectMembership func(*sql.Selector)

// RepoCommit is the predicate function for repocommit builders.
type RepoCommit func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
