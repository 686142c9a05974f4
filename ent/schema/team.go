package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Team holds the schema definition for the Team entity.
type Team struct {
	ent.Schema
}

// Fields of the Team.
func (Team) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Team name"),
		field.Int("organization_id").
			Positive().
			Comment("Owning organization foreign key"),
		field.String("division").
			Optional().
			Comment("Division or league level"),
		field.String("age_level").
			Optional().
			Comment("Age bracket (e.g. U10, U14)"),
		field.String("city").
			Optional().
			Comment("City"),
		field.String("state").
			Optional().
			Comment("State or region"),
		field.Enum("status").
			Values("pending", "approved", "rejected").
			Default("pending").
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

// Edges of the Team.
func (Team) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("teams").
			Field("organization_id").
			Unique().
			Required().
			Comment("Owning organization"),
		edge.To("reviews", Review.Type).
			Comment("Reviews submitted against this team"),
		edge.To("subscription", Subscription.Type).
			Unique().
			Comment("Team subscription (at most one)"),
	}
}

// Indexes of the Team.
func (Team) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
