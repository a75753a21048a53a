package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"time"
)

// RepoCommit holds one ingested commit. modified_files stays nil until
// the diff has been fetched once; needs_reindex tracks whether the
// commit's changes are reflected in the searchable index. The entity is
// not named Commit: that would collide with the Commit method on the
// generated Tx.
type RepoCommit struct {
	ent.Schema
}

// Annotations of the RepoCommit.
func (RepoCommit) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "commits"},
	}
}

// Fields of the RepoCommit.
func (RepoCommit) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("commit_id").
			Unique().
			Immutable(),
		field.String("project_id").
			NotEmpty(),
		field.String("hash").
			NotEmpty().
			Immutable(),
		field.String("author").
			Default(""),
		field.Time("committed_at").
			Default(time.Now),
		field.String("summary").
			Default(""),
		field.JSON("modified_files", []string{}).
			Optional(),
		field.Bool("needs_reindex").
			Default(true),
	}
}

// Edges of the RepoCommit.
func (RepoCommit) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("commits").
			Field("project_id").
			Unique().
			Required(),
	}
}

// Indexes of the RepoCommit.
func (RepoCommit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "hash").Unique(),
	}
}
