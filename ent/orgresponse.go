// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/squadscore/ent/orgresponse"
	"github.com/jordanlanch/squadscore/ent/review"
	"github.com/jordanlanch/squadscore/ent/user"
)

// OrgResponse is the model entity for the OrgResponse schema.
type OrgResponse struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Review this response answers
	ReviewID int `json:"review_id,omitempty"`
	// Organization/team admin who wrote the response
	ResponderID int `json:"responder_id,omitempty"`
	// Response body
	Body string `json:"body,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OrgResponseQuery when eager-loading is set.
	Edges        OrgResponseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OrgResponseEdges holds the relations/edges for other nodes in the graph.
type OrgResponseEdges struct {
	// Answered review
	Review *Review `json:"review,omitempty"`
	// Response author
	Responder *User `json:"responder,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ReviewOrErr returns the Review value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OrgResponseEdges) ReviewOrErr() (*Review, error) {
	if e.Review != nil {
		return e.Review, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: review.Label}
	}
	return nil, &NotLoadedError{edge: "review"}
}

// ResponderOrErr returns the Responder value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OrgResponseEdges) ResponderOrErr() (*User, error) {
	if e.Responder != nil {
		return e.Responder, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "responder"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OrgResponse) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case orgresponse.FieldID, orgresponse.FieldReviewID, orgresponse.FieldResponderID:
			values[i] = new(sql.NullInt64)
		case orgresponse.FieldBody:
			values[i] = new(sql.NullString)
		case orgresponse.FieldCreatedAt, orgresponse.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OrgResponse fields.
func (_m *OrgResponse) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case orgresponse.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case orgresponse.FieldReviewID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field review_id", values[i])
			} else if value.Valid {
				_m.ReviewID = int(value.Int64)
			}
		case orgresponse.FieldResponderID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field responder_id", values[i])
			} else if value.Valid {
				_m.ResponderID = int(value.Int64)
			}
		case orgresponse.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case orgresponse.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case orgresponse.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the OrgResponse.
// This includes values selected through modifiers, order, etc.
func (_m *OrgResponse) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReview queries the "review" edge of the OrgResponse entity.
func (_m *OrgResponse) QueryReview() *ReviewQuery {
	return NewOrgResponseClient(_m.config).QueryReview(_m)
}

// QueryResponder queries the "responder" edge of the OrgResponse entity.
func (_m *OrgResponse) QueryResponder() *UserQuery {
	return NewOrgResponseClient(_m.config).QueryResponder(_m)
}

// Update returns a builder for updating this OrgResponse.
// Note that you need to call OrgResponse.Unwrap() before calling this method if this OrgResponse
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OrgResponse) Update() *OrgResponseUpdateOne {
	return NewOrgResponseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OrgResponse entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OrgResponse) Unwrap() *OrgResponse {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OrgResponse is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OrgResponse) String() string {
	var builder strings.Builder
	builder.WriteString("OrgResponse(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("review_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewID))
	builder.WriteString(", ")
	builder.WriteString("responder_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponderID))
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OrgResponses is a parsable slice of OrgResponse.
type OrgResponses []*OrgResponse
