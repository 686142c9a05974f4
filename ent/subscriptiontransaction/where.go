// Code generated by ent, DO NOT EDIT.

package subscriptiontransaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/squadscore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldLTE(FieldID, id))
}

// SubscriptionID applies equality check predicate on the "subscription_id" field. It's identical to SubscriptionIDEQ.
func SubscriptionID(v int) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEQ(FieldSubscriptionID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v int64) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEQ(FieldAmount, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEQ(FieldCurrency, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEQ(FieldStatus, v))
}

// StripePaymentID applies equality check predicate on the "stripe_payment_id" field. It's identical to StripePaymentIDEQ.
func StripePaymentID(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEQ(FieldStripePaymentID, v))
}

// StripeInvoiceID applies equality check predicate on the "stripe_invoice_id" field. It's identical to StripeInvoiceIDEQ.
func StripeInvoiceID(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEQ(FieldStripeInvoiceID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// SubscriptionIDEQ applies the EQ predicate on the "subscription_id" field.
func SubscriptionIDEQ(v int) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEQ(FieldSubscriptionID, v))
}

// SubscriptionIDNEQ applies the NEQ predicate on the "subscription_id" field.
func SubscriptionIDNEQ(v int) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldNEQ(FieldSubscriptionID, v))
}

// SubscriptionIDIn applies the In predicate on the "subscription_id" field.
func SubscriptionIDIn(vs ...int) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldIn(FieldSubscriptionID, vs...))
}

// SubscriptionIDNotIn applies the NotIn predicate on the "subscription_id" field.
func SubscriptionIDNotIn(vs ...int) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldNotIn(FieldSubscriptionID, vs...))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v int64) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v int64) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...int64) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...int64) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v int64) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v int64) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v int64) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v int64) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldLTE(FieldAmount, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldContainsFold(FieldCurrency, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldContainsFold(FieldStatus, v))
}

// StripePaymentIDEQ applies the EQ predicate on the "stripe_payment_id" field.
func StripePaymentIDEQ(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEQ(FieldStripePaymentID, v))
}

// StripePaymentIDNEQ applies the NEQ predicate on the "stripe_payment_id" field.
func StripePaymentIDNEQ(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldNEQ(FieldStripePaymentID, v))
}

// StripePaymentIDIn applies the In predicate on the "stripe_payment_id" field.
func StripePaymentIDIn(vs ...string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldIn(FieldStripePaymentID, vs...))
}

// StripePaymentIDNotIn applies the NotIn predicate on the "stripe_payment_id" field.
func StripePaymentIDNotIn(vs ...string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldNotIn(FieldStripePaymentID, vs...))
}

// StripePaymentIDGT applies the GT predicate on the "stripe_payment_id" field.
func StripePaymentIDGT(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldGT(FieldStripePaymentID, v))
}

// StripePaymentIDGTE applies the GTE predicate on the "stripe_payment_id" field.
func StripePaymentIDGTE(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldGTE(FieldStripePaymentID, v))
}

// StripePaymentIDLT applies the LT predicate on the "stripe_payment_id" field.
func StripePaymentIDLT(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldLT(FieldStripePaymentID, v))
}

// StripePaymentIDLTE applies the LTE predicate on the "stripe_payment_id" field.
func StripePaymentIDLTE(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldLTE(FieldStripePaymentID, v))
}

// StripePaymentIDContains applies the Contains predicate on the "stripe_payment_id" field.
func StripePaymentIDContains(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldContains(FieldStripePaymentID, v))
}

// StripePaymentIDHasPrefix applies the HasPrefix predicate on the "stripe_payment_id" field.
func StripePaymentIDHasPrefix(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldHasPrefix(FieldStripePaymentID, v))
}

// StripePaymentIDHasSuffix applies the HasSuffix predicate on the "stripe_payment_id" field.
func StripePaymentIDHasSuffix(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldHasSuffix(FieldStripePaymentID, v))
}

// StripePaymentIDIsNil applies the IsNil predicate on the "stripe_payment_id" field.
func StripePaymentIDIsNil() predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldIsNull(FieldStripePaymentID))
}

// StripePaymentIDNotNil applies the NotNil predicate on the "stripe_payment_id" field.
func StripePaymentIDNotNil() predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldNotNull(FieldStripePaymentID))
}

// StripePaymentIDEqualFold applies the EqualFold predicate on the "stripe_payment_id" field.
func StripePaymentIDEqualFold(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEqualFold(FieldStripePaymentID, v))
}

// StripePaymentIDContainsFold applies the ContainsFold predicate on the "stripe_payment_id" field.
func StripePaymentIDContainsFold(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldContainsFold(FieldStripePaymentID, v))
}

// StripeInvoiceIDEQ applies the EQ predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDEQ(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEQ(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDNEQ applies the NEQ predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDNEQ(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldNEQ(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDIn applies the In predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDIn(vs ...string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldIn(FieldStripeInvoiceID, vs...))
}

// StripeInvoiceIDNotIn applies the NotIn predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDNotIn(vs ...string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldNotIn(FieldStripeInvoiceID, vs...))
}

// StripeInvoiceIDGT applies the GT predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDGT(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldGT(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDGTE applies the GTE predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDGTE(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldGTE(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDLT applies the LT predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDLT(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldLT(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDLTE applies the LTE predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDLTE(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldLTE(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDContains applies the Contains predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDContains(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldContains(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDHasPrefix applies the HasPrefix predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDHasPrefix(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldHasPrefix(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDHasSuffix applies the HasSuffix predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDHasSuffix(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldHasSuffix(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDIsNil applies the IsNil predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDIsNil() predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldIsNull(FieldStripeInvoiceID))
}

// StripeInvoiceIDNotNil applies the NotNil predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDNotNil() predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldNotNull(FieldStripeInvoiceID))
}

// StripeInvoiceIDEqualFold applies the EqualFold predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDEqualFold(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEqualFold(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDContainsFold applies the ContainsFold predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDContainsFold(v string) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldContainsFold(FieldStripeInvoiceID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSubscription applies the HasEdge predicate on the "subscription" edge.
func HasSubscription() predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubscriptionTable, SubscriptionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubscriptionWith applies the HasEdge predicate on the "subscription" edge with a given conditions (other predicates).
func HasSubscriptionWith(preds ...predicate.Subscription) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(func(s *sql.Selector) {
		step := newSubscriptionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubscriptionTransaction) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubscriptionTransaction) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubscriptionTransaction) predicate.SubscriptionTransaction {
	return predicate.SubscriptionTransaction(sql.NotPredicates(p))
}
