package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subscription holds the schema definition for the Subscription entity.
// Exactly one of organization_id or team_id is set; an owner holds at
// most one subscription row.
type Subscription struct {
	ent.Schema
}

// Fields of the Subscription.
func (Subscription) Fields() []ent.Field {
	return []ent.Field{
		field.Int("organization_id").
			Optional().
			Nillable().
			Comment("Owning organization, nil for team subscriptions"),
		field.Int("team_id").
			Optional().
			Nillable().
			Comment("Owning team, nil for organization subscriptions"),
		field.Enum("plan").
			Values("basic", "pro", "elite").
			Default("basic").
			Comment("Subscription plan"),
		field.Enum("status").
			Values("active", "past_due", "canceled").
			Default("active").
			Comment("Billing status"),
		field.String("stripe_customer_id").
			Optional().
			Comment("Stripe customer ID"),
		field.String("stripe_subscription_id").
			Optional().
			Comment("Stripe subscription ID"),
		field.Time("current_period_end").
			Optional().
			Nillable().
			Comment("End of the current paid period"),
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

// Edges of the Subscription.
func (Subscription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("subscription").
			Field("organization_id").
			Unique().
			Comment("Owning organization"),
		edge.From("team", Team.Type).
			Ref("subscription").
			Field("team_id").
			Unique().
			Comment("Owning team"),
		edge.To("transactions", SubscriptionTransaction.Type).
			Comment("Payment ledger entries"),
	}
}

// Indexes of the Subscription.
func (Subscription) Indexes() []ent.Index {
	return []ent.Index{
		// One subscription per owner. Postgres permits multiple NULLs
		// under a unique index, so org and team rows coexist.
		index.Fields("organization_id").Unique(),
		index.Fields("team_id").Unique(),
		index.Fields("status"),
		index.Fields("stripe_subscription_id"),
	}
}
