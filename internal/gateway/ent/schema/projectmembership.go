package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"time"
)

// ProjectMembership links a User to a Project. Provisioning creates
// exactly one owner membership per project.
type ProjectMembership struct {
	ent.Schema
}

// Fields of the ProjectMembership.
func (ProjectMembership) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty(),
		field.String("project_id").
			NotEmpty(),
		field.String("role").
			Default("owner"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the ProjectMembership.
func (ProjectMembership) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("memberships").
			Field("user_id").
			Unique().
			Required(),
		edge.From("project", Project.Type).
			Ref("memberships").
			Field("project_id").
			Unique().
			Required(),
	}
}

// Indexes of the ProjectMembership.
func (ProjectMembership) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "project_id").Unique(),
	}
}
