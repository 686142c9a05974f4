package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubscriptionTransaction holds the schema definition for the
// SubscriptionTransaction entity. Rows are append-only.
type SubscriptionTransaction struct {
	ent.Schema
}

// Fields of the SubscriptionTransaction.
func (SubscriptionTransaction) Fields() []ent.Field {
	return []ent.Field{
		field.Int("subscription_id").
			Positive().
			Comment("Owning subscription foreign key"),
		field.Int64("amount").
			Comment("Invoice total in the smallest currency unit"),
		field.String("currency").
			Default("usd").
			Comment("ISO currency code"),
		field.String("status").
			Default("succeeded").
			Comment("Payment outcome"),
		field.String("stripe_payment_id").
			Optional().
			Nillable().
			Comment("Stripe payment intent reference"),
		field.String("stripe_invoice_id").
			Optional().
			Comment("Stripe invoice reference"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the SubscriptionTransaction.
func (SubscriptionTransaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("subscription", Subscription.Type).
			Ref("transactions").
			Field("subscription_id").
			Unique().
			Required().
			Comment("Owning subscription"),
	}
}

// Indexes of the SubscriptionTransaction.
func (SubscriptionTransaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subscription_id"),
		index.Fields("created_at"),
	}
}
