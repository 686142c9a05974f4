// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/squadscore/ent/rating"
	"github.com/jordanlanch/squadscore/ent/review"
)

// Rating is the model entity for the Rating schema.
type Rating struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning review foreign key
	ReviewID int `json:"review_id,omitempty"`
	// Coaching quality score
	Coaching int `json:"coaching,omitempty"`
	// Player development score
	Development int `json:"development,omitempty"`
	// Cost/communication transparency score
	Transparency int `json:"transparency,omitempty"`
	// Team culture score
	Culture int `json:"culture,omitempty"`
	// Safety score
	Safety int `json:"safety,omitempty"`
	// Average of the five axes
	Overall float64 `json:"overall,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RatingQuery when eager-loading is set.
	Edges        RatingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RatingEdges holds the relations/edges for other nodes in the graph.
type RatingEdges struct {
	// Owning review
	Review *Review `json:"review,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReviewOrErr returns the Review value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RatingEdges) ReviewOrErr() (*Review, error) {
	if e.Review != nil {
		return e.Review, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: review.Label}
	}
	return nil, &NotLoadedError{edge: "review"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Rating) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rating.FieldOverall:
			values[i] = new(sql.NullFloat64)
		case rating.FieldID, rating.FieldReviewID, rating.FieldCoaching, rating.FieldDevelopment, rating.FieldTransparency, rating.FieldCulture, rating.FieldSafety:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Rating fields.
func (_m *Rating) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rating.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case rating.FieldReviewID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field review_id", values[i])
			} else if value.Valid {
				_m.ReviewID = int(value.Int64)
			}
		case rating.FieldCoaching:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field coaching", values[i])
			} else if value.Valid {
				_m.Coaching = int(value.Int64)
			}
		case rating.FieldDevelopment:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field development", values[i])
			} else if value.Valid {
				_m.Development = int(value.Int64)
			}
		case rating.FieldTransparency:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field transparency", values[i])
			} else if value.Valid {
				_m.Transparency = int(value.Int64)
			}
		case rating.FieldCulture:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field culture", values[i])
			} else if value.Valid {
				_m.Culture = int(value.Int64)
			}
		case rating.FieldSafety:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field safety", values[i])
			} else if value.Valid {
				_m.Safety = int(value.Int64)
			}
		case rating.FieldOverall:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall", values[i])
			} else if value.Valid {
				_m.Overall = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Rating.
// This includes values selected through modifiers, order, etc.
func (_m *Rating) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReview queries the "review" edge of the Rating entity.
func (_m *Rating) QueryReview() *ReviewQuery {
	return NewRatingClient(_m.config).QueryReview(_m)
}

// Update returns a builder for updating this Rating.
// Note that you need to call Rating.Unwrap() before calling this method if this Rating
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Rating) Update() *RatingUpdateOne {
	return NewRatingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Rating entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Rating) Unwrap() *Rating {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Rating is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Rating) String() string {
	var builder strings.Builder
	builder.WriteString("Rating(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("review_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewID))
	builder.WriteString(", ")
	builder.WriteString("coaching=")
	builder.WriteString(fmt.Sprintf("%v", _m.Coaching))
	builder.WriteString(", ")
	builder.WriteString("development=")
	builder.WriteString(fmt.Sprintf("%v", _m.Development))
	builder.WriteString(", ")
	builder.WriteString("transparency=")
	builder.WriteString(fmt.Sprintf("%v", _m.Transparency))
	builder.WriteString(", ")
	builder.WriteString("culture=")
	builder.WriteString(fmt.Sprintf("%v", _m.Culture))
	builder.WriteString(", ")
	builder.WriteString("safety=")
	builder.WriteString(fmt.Sprintf("%v", _m.Safety))
	builder.WriteString(", ")
	builder.WriteString("overall=")
	builder.WriteString(fmt.Sprintf("%v", _m.Overall))
	builder.WriteByte(')')
	return builder.String()
}

// Ratings is a parsable slice of Rating.
type Ratings []*Rating
