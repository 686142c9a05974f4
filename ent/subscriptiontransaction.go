// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/squadscore/ent/subscription"
	"github.com/jordanlanch/squadscore/ent/subscriptiontransaction"
)

// SubscriptionTransaction is the model entity for the SubscriptionTransaction schema.
type SubscriptionTransaction struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning subscription foreign key
	SubscriptionID int `json:"subscription_id,omitempty"`
	// Invoice total in the smallest currency unit
	Amount int64 `json:"amount,omitempty"`
	// ISO currency code
	Currency string `json:"currency,omitempty"`
	// Payment outcome
	Status string `json:"status,omitempty"`
	// Stripe payment intent reference
	StripePaymentID *string `json:"stripe_payment_id,omitempty"`
	// Stripe invoice reference
	StripeInvoiceID string `json:"stripe_invoice_id,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubscriptionTransactionQuery when eager-loading is set.
	Edges        SubscriptionTransactionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubscriptionTransactionEdges holds the relations/edges for other nodes in the graph.
type SubscriptionTransactionEdges struct {
	// Owning subscription
	Subscription *Subscription `json:"subscription,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SubscriptionOrErr returns the Subscription value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubscriptionTransactionEdges) SubscriptionOrErr() (*Subscription, error) {
	if e.Subscription != nil {
		return e.Subscription, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: subscription.Label}
	}
	return nil, &NotLoadedError{edge: "subscription"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubscriptionTransaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subscriptiontransaction.FieldID, subscriptiontransaction.FieldSubscriptionID, subscriptiontransaction.FieldAmount:
			values[i] = new(sql.NullInt64)
		case subscriptiontransaction.FieldCurrency, subscriptiontransaction.FieldStatus, subscriptiontransaction.FieldStripePaymentID, subscriptiontransaction.FieldStripeInvoiceID:
			values[i] = new(sql.NullString)
		case subscriptiontransaction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubscriptionTransaction fields.
func (_m *SubscriptionTransaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subscriptiontransaction.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case subscriptiontransaction.FieldSubscriptionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subscription_id", values[i])
			} else if value.Valid {
				_m.SubscriptionID = int(value.Int64)
			}
		case subscriptiontransaction.FieldAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Int64
			}
		case subscriptiontransaction.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case subscriptiontransaction.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case subscriptiontransaction.FieldStripePaymentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_payment_id", values[i])
			} else if value.Valid {
				_m.StripePaymentID = new(string)
				*_m.StripePaymentID = value.String
			}
		case subscriptiontransaction.FieldStripeInvoiceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_invoice_id", values[i])
			} else if value.Valid {
				_m.StripeInvoiceID = value.String
			}
		case subscriptiontransaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubscriptionTransaction.
// This includes values selected through modifiers, order, etc.
func (_m *SubscriptionTransaction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubscription queries the "subscription" edge of the SubscriptionTransaction entity.
func (_m *SubscriptionTransaction) QuerySubscription() *SubscriptionQuery {
	return NewSubscriptionTransactionClient(_m.config).QuerySubscription(_m)
}

// Update returns a builder for updating this SubscriptionTransaction.
// Note that you need to call SubscriptionTransaction.Unwrap() before calling this method if this SubscriptionTransaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubscriptionTransaction) Update() *SubscriptionTransactionUpdateOne {
	return NewSubscriptionTransactionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubscriptionTransaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubscriptionTransaction) Unwrap() *SubscriptionTransaction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubscriptionTransaction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubscriptionTransaction) String() string {
	var builder strings.Builder
	builder.WriteString("SubscriptionTransaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subscription_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubscriptionID))
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.StripePaymentID; v != nil {
		builder.WriteString("stripe_payment_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("stripe_invoice_id=")
	builder.WriteString(_m.StripeInvoiceID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SubscriptionTransactions is a parsable slice of SubscriptionTransaction.
type SubscriptionTransactions []*SubscriptionTransaction
