package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Optional().
			Nillable().
			Comment("User email address (null for ad-hoc anonymous reviewers)"),
		field.String("name").
			Optional().
			Default("").
			Comment("Display name (empty for ad-hoc anonymous reviewers)"),
		field.String("password_hash").
			Optional().
			Nillable().
			Sensitive().
			Comment("Bcrypt hashed password (null for anonymous users)"),
		field.Enum("role").
			Values("anonymous", "parent", "team_admin", "org_admin", "site_admin").
			Default("parent").
			Comment("User role for access control"),
		field.Bool("is_verified").
			Default(false).
			Comment("Whether email is verified"),
		field.Bool("is_banned").
			Default(false).
			Comment("Whether user is banned from submitting content"),
		field.String("email_verification_token").
			Optional().
			Nillable().
			Sensitive().
			Comment("Token for email verification"),
		field.String("created_ip").
			Optional().
			Comment("Client IP at account creation, used to dedup ad-hoc anonymous users"),
		field.Time("last_login_at").
			Optional().
			Nillable().
			Comment("Last login timestamp"),
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

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("reviews", Review.Type).
			Comment("Reviews submitted by this user"),
		edge.To("responses", OrgResponse.Type).
			Comment("Organization responses authored by this user"),
		edge.To("flags", Flag.Type).
			Comment("Flags reported by this user"),
		edge.To("refresh_tokens", RefreshToken.Type).
			Comment("Refresh tokens issued to this user"),
		edge.To("audit_logs", AuditLog.Type).
			Comment("Audit log entries for this user"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
		index.Fields("role"),
		index.Fields("created_at"),
	}
}
