package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Review holds the schema definition for the Review entity.
type Review struct {
	ent.Schema
}

// Fields of the Review.
func (Review) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Positive().
			Comment("Reviewer foreign key"),
		field.Int("team_id").
			Positive().
			Comment("Reviewed team foreign key"),
		field.String("title").
			NotEmpty().
			Comment("Review title"),
		field.Text("body").
			NotEmpty().
			Comment("Review body"),
		field.String("season_term").
			NotEmpty().
			Comment("Season term the review covers (spring, summer, fall, winter)"),
		field.Int("season_year").
			Positive().
			Comment("Season year the review covers"),
		field.String("age_level_at_review").
			Optional().
			Comment("Team age bracket captured at review time"),
		field.Bool("is_public").
			Default(true).
			Comment("Whether the review is publicly visible"),
		field.Bool("is_highlight").
			Default(false).
			Comment("Whether the review is the team's highlighted review"),
		field.Time("edited_at").
			Optional().
			Nillable().
			Comment("Last edit timestamp"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the Review.
func (Review) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("reviews").
			Field("user_id").
			Unique().
			Required().
			Comment("Reviewer"),
		edge.From("team", Team.Type).
			Ref("reviews").
			Field("team_id").
			Unique().
			Required().
			Comment("Reviewed team"),
		edge.To("rating", Rating.Type).
			Unique().
			Comment("Rating axes for this review"),
		edge.To("org_response", OrgResponse.Type).
			Unique().
			Comment("Organization response (at most one)"),
		edge.To("flags", Flag.Type).
			Comment("Moderation flags raised against this review"),
	}
}

// Indexes of the Review.
func (Review) Indexes() []ent.Index {
	return []ent.Index{
		// One review per reviewer, team and season.
		index.Fields("user_id", "team_id", "season_term", "season_year").Unique(),
		index.Fields("team_id"),
		index.Fields("is_public"),
		index.Fields("created_at"),
	}
}
