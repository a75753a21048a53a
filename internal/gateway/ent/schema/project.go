package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"time"
)

// Project holds the schema definition for the Project entity.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("name").
			Default("Project"),
		field.String("repo_url").
			NotEmpty(),
		field.String("branch").
			Default("main"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("memberships", ProjectMembership.Type),
		edge.To("commits", RepoCommit.Type),
	}
}
