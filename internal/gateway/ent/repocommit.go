// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"repolens/internal/gateway/ent/project"
	"repolens/internal/gateway/ent/repocommit"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// RepoCommit is the model entity for the RepoCommit schema.
type RepoCommit struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Hash holds the value of the "hash" field.
	Hash string `json:"hash,omitempty"`
	// Author holds the value of the "author" field.
	Author string `json:"author,omitempty"`
	// CommittedAt holds the value of the "committed_at" field.
	CommittedAt time.Time `json:"committed_at,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// ModifiedFiles holds the value of the "modified_files" field.
	ModifiedFiles []string `json:"modified_files,omitempty"`
	// NeedsReindex holds the value of the "needs_reindex" field.
	NeedsReindex bool `json:"needs_reindex,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RepoCommitQuery when eager-loading is set.
	Edges        RepoCommitEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RepoCommitEdges holds the relations/edges for other nodes in the graph.
type RepoCommitEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RepoCommitEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RepoCommit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case repocommit.FieldModifiedFiles:
			values[i] = new([]byte)
		case repocommit.FieldNeedsReindex:
			values[i] = new(sql.NullBool)
		case repocommit.FieldID, repocommit.FieldProjectID, repocommit.FieldHash, repocommit.FieldAuthor, repocommit.FieldSummary:
			values[i] = new(sql.NullString)
		case repocommit.FieldCommittedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RepoCommit fields.
func (_m *RepoCommit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case repocommit.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case repocommit.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case repocommit.FieldHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hash", values[i])
			} else if value.Valid {
				_m.Hash = value.String
			}
		case repocommit.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = value.String
			}
		case repocommit.FieldCommittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field committed_at", values[i])
			} else if value.Valid {
				_m.CommittedAt = value.Time
			}
		case repocommit.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case repocommit.FieldModifiedFiles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field modified_files", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ModifiedFiles); err != nil {
					return fmt.Errorf("unmarshal field modified_files: %w", err)
				}
			}
		case repocommit.FieldNeedsReindex:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_reindex", values[i])
			} else if value.Valid {
				_m.NeedsReindex = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RepoCommit.
// This includes values selected through modifiers, order, etc.
func (_m *RepoCommit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the RepoCommit entity.
func (_m *RepoCommit) QueryProject() *ProjectQuery {
	return NewRepoCommitClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this RepoCommit.
// Note that you need to call RepoCommit.Unwrap() before calling this method if this RepoCommit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RepoCommit) Update() *RepoCommitUpdateOne {
	return NewRepoCommitClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RepoCommit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RepoCommit) Unwrap() *RepoCommit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RepoCommit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RepoCommit) String() string {
	var builder strings.Builder
	builder.WriteString("RepoCommit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("hash=")
	builder.WriteString(_m.Hash)
	builder.WriteString(", ")
	builder.WriteString("author=")
	builder.WriteString(_m.Author)
	builder.WriteString(", ")
	builder.WriteString("committed_at=")
	builder.WriteString(_m.CommittedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("modified_files=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModifiedFiles))
	builder.WriteString(", ")
	builder.WriteString("needs_reindex=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReindex))
	builder.WriteByte(')')
	return builder.String()
}

// RepoCommits is a parsable slice of RepoCommit.
type RepoCommits []*RepoCommit
