package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Organization holds the schema definition for the Organization entity.
type Organization struct {
	ent.Schema
}

// Fields of the Organization.
func (Organization) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Organization name"),
		field.String("description").
			Optional().
			Comment("Organization description"),
		field.String("website").
			Optional().
			Comment("Organization website URL"),
		field.String("city").
			Optional().
			Comment("City"),
		field.String("state").
			Optional().
			Comment("State or region"),
		field.Enum("status").
			Values("pending", "approved", "rejected").
			Default("approved").
			Comment("Listing approval status"),
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

// Edges of the Organization.
func (Organization) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("teams", Team.Type).
			Comment("Teams belonging to this organization"),
		edge.To("subscription", Subscription.Type).
			Unique().
			Comment("Organization subscription (at most one)"),
	}
}

// Indexes of the Organization.
func (Organization) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
