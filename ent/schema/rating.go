package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Rating holds the schema definition for the Rating entity.
type Rating struct {
	ent.Schema
}

// Fields of the Rating.
func (Rating) Fields() []ent.Field {
	return []ent.Field{
		field.Int("review_id").
			Positive().
			Comment("Owning review foreign key"),
		field.Int("coaching").
			Range(1, 5).
			Comment("Coaching quality score"),
		field.Int("development").
			Range(1, 5).
			Comment("Player development score"),
		field.Int("transparency").
			Range(1, 5).
			Comment("Cost/communication transparency score"),
		field.Int("culture").
			Range(1, 5).
			Comment("Team culture score"),
		field.Int("safety").
			Range(1, 5).
			Comment("Safety score"),
		field.Float("overall").
			Comment("Average of the five axes"),
	}
}

// Edges of the Rating.
func (Rating) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("review", Review.Type).
			Ref("rating").
			Field("review_id").
			Unique().
			Required().
			Comment("Owning review"),
	}
}

// Indexes of the Rating.
func (Rating) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("review_id").Unique(),
		index.Fields("overall"),
	}
}
