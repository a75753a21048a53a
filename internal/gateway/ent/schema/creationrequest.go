package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"time"
)

// CreationRequest is the audit record for one provisioning attempt. It is
// created before any external call, mutated on every phase transition,
// and never deleted.
type CreationRequest struct {
	ent.Schema
}

// Fields of the CreationRequest.
func (CreationRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("request_id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty(),
		field.String("name").
			Default(""),
		field.String("repo_url").
			NotEmpty(),
		field.String("branch").
			Default("main"),
		field.String("status").
			Default("PENDING"),
		field.Int("file_count").
			Default(0),
		field.String("project_id").
			Default(""),
		field.String("error_note").
			Default(""),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the CreationRequest. The project link is a weak string
// reference on purpose: a Project never points back at its request.
func (CreationRequest) Edges() []ent.Edge {
	return nil
}
