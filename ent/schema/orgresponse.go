package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OrgResponse holds the schema definition for the OrgResponse entity.
type OrgResponse struct {
	ent.Schema
}

// Fields of the OrgResponse.
func (OrgResponse) Fields() []ent.Field {
	return []ent.Field{
		field.Int("review_id").
			Positive().
			Comment("Review this response answers"),
		field.Int("responder_id").
			Positive().
			Comment("Organization/team admin who wrote the response"),
		field.Text("body").
			NotEmpty().
			Comment("Response body"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the OrgResponse.
func (OrgResponse) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("review", Review.Type).
			Ref("org_response").
			Field("review_id").
			Unique().
			Required().
			Comment("Answered review"),
		edge.From("responder", User.Type).
			Ref("responses").
			Field("responder_id").
			Unique().
			Required().
			Comment("Response author"),
	}
}

// Indexes of the OrgResponse.
func (OrgResponse) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("review_id").Unique(),
		index.Fields("responder_id"),
	}
}
