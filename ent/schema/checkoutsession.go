package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CheckoutSession holds the schema definition for the CheckoutSession
// entity. The primary key is the Stripe checkout session ID.
type CheckoutSession struct {
	ent.Schema
}

// Fields of the CheckoutSession.
func (CheckoutSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Comment("Stripe checkout session ID"),
		field.Enum("target_type").
			Values("organization", "team").
			Comment("Kind of entity the purchase applies to"),
		field.Int("target_id").
			Positive().
			Comment("ID of the target organization or team"),
		field.Enum("plan").
			Values("basic", "pro", "elite").
			Comment("Plan being purchased"),
		field.Int64("amount").
			Default(0).
			Comment("Amount in the smallest currency unit"),
		field.String("currency").
			Default("usd").
			Comment("ISO currency code"),
		field.Enum("status").
			Values("unpaid", "paid").
			Default("unpaid").
			Comment("Payment status"),
		field.String("url").
			Optional().
			Comment("Hosted checkout page URL"),
		field.Int("created_by").
			Optional().
			Nillable().
			Comment("User who started the checkout"),
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

// Indexes of the CheckoutSession.
func (CheckoutSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("target_id"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
