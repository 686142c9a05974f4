// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/squadscore/ent/flag"
	"github.com/jordanlanch/squadscore/ent/review"
	"github.com/jordanlanch/squadscore/ent/user"
)

// Flag is the model entity for the Flag schema.
type Flag struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Flagged review foreign key
	ReviewID int `json:"review_id,omitempty"`
	// Reporting user foreign key
	ReporterID int `json:"reporter_id,omitempty"`
	// Reason given by the reporter
	Reason string `json:"reason,omitempty"`
	// Client IP captured at flag time (anonymous attribution)
	ReporterIP string `json:"reporter_ip,omitempty"`
	// Moderation status
	Status flag.Status `json:"status,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FlagQuery when eager-loading is set.
	Edges        FlagEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FlagEdges holds the relations/edges for other nodes in the graph.
type FlagEdges struct {
	// Flagged review
	Review *Review `json:"review,omitempty"`
	// Reporting user
	Reporter *User `json:"reporter,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ReviewOrErr returns the Review value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FlagEdges) ReviewOrErr() (*Review, error) {
	if e.Review != nil {
		return e.Review, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: review.Label}
	}
	return nil, &NotLoadedError{edge: "review"}
}

// ReporterOrErr returns the Reporter value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FlagEdges) ReporterOrErr() (*User, error) {
	if e.Reporter != nil {
		return e.Reporter, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "reporter"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Flag) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case flag.FieldID, flag.FieldReviewID, flag.FieldReporterID:
			values[i] = new(sql.NullInt64)
		case flag.FieldReason, flag.FieldReporterIP, flag.FieldStatus:
			values[i] = new(sql.NullString)
		case flag.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Flag fields.
func (_m *Flag) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case flag.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case flag.FieldReviewID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field review_id", values[i])
			} else if value.Valid {
				_m.ReviewID = int(value.Int64)
			}
		case flag.FieldReporterID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reporter_id", values[i])
			} else if value.Valid {
				_m.ReporterID = int(value.Int64)
			}
		case flag.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case flag.FieldReporterIP:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reporter_ip", values[i])
			} else if value.Valid {
				_m.ReporterIP = value.String
			}
		case flag.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = flag.Status(value.String)
			}
		case flag.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Flag.
// This includes values selected through modifiers, order, etc.
func (_m *Flag) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReview queries the "review" edge of the Flag entity.
func (_m *Flag) QueryReview() *ReviewQuery {
	return NewFlagClient(_m.config).QueryReview(_m)
}

// QueryReporter queries the "reporter" edge of the Flag entity.
func (_m *Flag) QueryReporter() *UserQuery {
	return NewFlagClient(_m.config).QueryReporter(_m)
}

// Update returns a builder for updating this Flag.
// Note that you need to call Flag.Unwrap() before calling this method if this Flag
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Flag) Update() *FlagUpdateOne {
	return NewFlagClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Flag entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Flag) Unwrap() *Flag {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Flag is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Flag) String() string {
	var builder strings.Builder
	builder.WriteString("Flag(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("review_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewID))
	builder.WriteString(", ")
	builder.WriteString("reporter_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReporterID))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("reporter_ip=")
	builder.WriteString(_m.ReporterIP)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Flags is a parsable slice of Flag.
type Flags []*Flag
