package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("actor_id").
			Optional().
			Nillable().
			Comment("Acting user, nil for system actions"),
		field.String("action").
			NotEmpty().
			Comment("Action name (e.g. review.create, subscription.upsert)"),
		field.String("target_type").
			Optional().
			Comment("Kind of entity acted upon"),
		field.String("target_id").
			Optional().
			Comment("ID of the entity acted upon"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Additional action context"),
		field.String("ip_address").
			Optional().
			Comment("Client IP"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the AuditLog.
func (AuditLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("actor", User.Type).
			Ref("audit_logs").
			Field("actor_id").
			Unique().
			Comment("Acting user"),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("actor_id"),
		index.Fields("action"),
		index.Fields("created_at"),
	}
}
