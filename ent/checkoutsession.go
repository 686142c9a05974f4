// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/squadscore/ent/checkoutsession"
)

// CheckoutSession is the model entity for the CheckoutSession schema.
type CheckoutSession struct {
	config `json:"-"`
	// ID of the ent.
	// Stripe checkout session ID
	ID string `json:"id,omitempty"`
	// Kind of entity the purchase applies to
	TargetType checkoutsession.TargetType `json:"target_type,omitempty"`
	// ID of the target organization or team
	TargetID int `json:"target_id,omitempty"`
	// Plan being purchased
	Plan checkoutsession.Plan `json:"plan,omitempty"`
	// Amount in the smallest currency unit
	Amount int64 `json:"amount,omitempty"`
	// ISO currency code
	Currency string `json:"currency,omitempty"`
	// Payment status
	Status checkoutsession.Status `json:"status,omitempty"`
	// Hosted checkout page URL
	URL string `json:"url,omitempty"`
	// User who started the checkout
	CreatedBy *int `json:"created_by,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CheckoutSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checkoutsession.FieldTargetID, checkoutsession.FieldAmount, checkoutsession.FieldCreatedBy:
			values[i] = new(sql.NullInt64)
		case checkoutsession.FieldID, checkoutsession.FieldTargetType, checkoutsession.FieldPlan, checkoutsession.FieldCurrency, checkoutsession.FieldStatus, checkoutsession.FieldURL:
			values[i] = new(sql.NullString)
		case checkoutsession.FieldCreatedAt, checkoutsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CheckoutSession fields.
func (_m *CheckoutSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checkoutsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case checkoutsession.FieldTargetType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_type", values[i])
			} else if value.Valid {
				_m.TargetType = checkoutsession.TargetType(value.String)
			}
		case checkoutsession.FieldTargetID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field target_id", values[i])
			} else if value.Valid {
				_m.TargetID = int(value.Int64)
			}
		case checkoutsession.FieldPlan:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan", values[i])
			} else if value.Valid {
				_m.Plan = checkoutsession.Plan(value.String)
			}
		case checkoutsession.FieldAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Int64
			}
		case checkoutsession.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case checkoutsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = checkoutsession.Status(value.String)
			}
		case checkoutsession.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case checkoutsession.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = new(int)
				*_m.CreatedBy = int(value.Int64)
			}
		case checkoutsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case checkoutsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CheckoutSession.
// This includes values selected through modifiers, order, etc.
func (_m *CheckoutSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CheckoutSession.
// Note that you need to call CheckoutSession.Unwrap() before calling this method if this CheckoutSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CheckoutSession) Update() *CheckoutSessionUpdateOne {
	return NewCheckoutSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CheckoutSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CheckoutSession) Unwrap() *CheckoutSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CheckoutSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CheckoutSession) String() string {
	var builder strings.Builder
	builder.WriteString("CheckoutSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("target_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetType))
	builder.WriteString(", ")
	builder.WriteString("target_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetID))
	builder.WriteString(", ")
	builder.WriteString("plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.Plan))
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	if v := _m.CreatedBy; v != nil {
		builder.WriteString("created_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CheckoutSessions is a parsable slice of CheckoutSession.
type CheckoutSessions []*CheckoutSession
