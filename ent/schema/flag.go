package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Flag holds the schema definition for the Flag entity.
type Flag struct {
	ent.Schema
}

// Fields of the Flag.
func (Flag) Fields() []ent.Field {
	return []ent.Field{
		field.Int("review_id").
			Positive().
			Comment("Flagged review foreign key"),
		field.Int("reporter_id").
			Positive().
			Comment("Reporting user foreign key"),
		field.String("reason").
			NotEmpty().
			Comment("Reason given by the reporter"),
		field.String("reporter_ip").
			Optional().
			Comment("Client IP captured at flag time (anonymous attribution)"),
		field.Enum("status").
			Values("open", "reviewed", "resolved", "rejected").
			Default("open").
			Comment("Moderation status"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the Flag.
func (Flag) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("review", Review.Type).
			Ref("flags").
			Field("review_id").
			Unique().
			Required().
			Comment("Flagged review"),
		edge.From("reporter", User.Type).
			Ref("flags").
			Field("reporter_id").
			Unique().
			Required().
			Comment("Reporting user"),
	}
}

// Indexes of the Flag.
func (Flag) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("review_id"),
		index.Fields("reporter_id"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
