// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/squadscore/ent/orgresponse"
	"github.com/jordanlanch/squadscore/ent/rating"
	"github.com/jordanlanch/squadscore/ent/review"
	"github.com/jordanlanch/squadscore/ent/team"
	"github.com/jordanlanch/squadscore/ent/user"
)

// Review is the model entity for the Review schema.
type Review struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Reviewer foreign key
	UserID int `json:"user_id,omitempty"`
	// Reviewed team foreign key
	TeamID int `json:"team_id,omitempty"`
	// Review title
	Title string `json:"title,omitempty"`
	// Review body
	Body string `json:"body,omitempty"`
	// Season term the review covers (spring, summer, fall, winter)
	SeasonTerm string `json:"season_term,omitempty"`
	// Season year the review covers
	SeasonYear int `json:"season_year,omitempty"`
	// Team age bracket captured at review time
	AgeLevelAtReview string `json:"age_level_at_review,omitempty"`
	// Whether the review is publicly visible
	IsPublic bool `json:"is_public,omitempty"`
	// Whether the review is the team's highlighted review
	IsHighlight bool `json:"is_highlight,omitempty"`
	// Last edit timestamp
	EditedAt *time.Time `json:"edited_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReviewQuery when eager-loading is set.
	Edges        ReviewEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReviewEdges holds the relations/edges for other nodes in the graph.
type ReviewEdges struct {
	// Reviewer
	User *User `json:"user,omitempty"`
	// Reviewed team
	Team *Team `json:"team,omitempty"`
	// Rating axes for this review
	Rating *Rating `json:"rating,omitempty"`
	// Organization response (at most one)
	OrgResponse *OrgResponse `json:"org_response,omitempty"`
	// Moderation flags raised against this review
	Flags []*Flag `json:"flags,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReviewEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// TeamOrErr returns the Team value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReviewEdges) TeamOrErr() (*Team, error) {
	if e.Team != nil {
		return e.Team, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: team.Label}
	}
	return nil, &NotLoadedError{edge: "team"}
}

// RatingOrErr returns the Rating value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReviewEdges) RatingOrErr() (*Rating, error) {
	if e.Rating != nil {
		return e.Rating, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: rating.Label}
	}
	return nil, &NotLoadedError{edge: "rating"}
}

// OrgResponseOrErr returns the OrgResponse value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReviewEdges) OrgResponseOrErr() (*OrgResponse, error) {
	if e.OrgResponse != nil {
		return e.OrgResponse, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: orgresponse.Label}
	}
	return nil, &NotLoadedError{edge: "org_response"}
}

// FlagsOrErr returns the Flags value or an error if the edge
// was not loaded in eager-loading.
func (e ReviewEdges) FlagsOrErr() ([]*Flag, error) {
	if e.loadedTypes[4] {
		return e.Flags, nil
	}
	return nil, &NotLoadedError{edge: "flags"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Review) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case review.FieldIsPublic, review.FieldIsHighlight:
			values[i] = new(sql.NullBool)
		case review.FieldID, review.FieldUserID, review.FieldTeamID, review.FieldSeasonYear:
			values[i] = new(sql.NullInt64)
		case review.FieldTitle, review.FieldBody, review.FieldSeasonTerm, review.FieldAgeLevelAtReview:
			values[i] = new(sql.NullString)
		case review.FieldEditedAt, review.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Review fields.
func (_m *Review) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case review.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case review.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case review.FieldTeamID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field team_id", values[i])
			} else if value.Valid {
				_m.TeamID = int(value.Int64)
			}
		case review.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case review.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case review.FieldSeasonTerm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field season_term", values[i])
			} else if value.Valid {
				_m.SeasonTerm = value.String
			}
		case review.FieldSeasonYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field season_year", values[i])
			} else if value.Valid {
				_m.SeasonYear = int(value.Int64)
			}
		case review.FieldAgeLevelAtReview:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field age_level_at_review", values[i])
			} else if value.Valid {
				_m.AgeLevelAtReview = value.String
			}
		case review.FieldIsPublic:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_public", values[i])
			} else if value.Valid {
				_m.IsPublic = value.Bool
			}
		case review.FieldIsHighlight:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_highlight", values[i])
			} else if value.Valid {
				_m.IsHighlight = value.Bool
			}
		case review.FieldEditedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field edited_at", values[i])
			} else if value.Valid {
				_m.EditedAt = new(time.Time)
				*_m.EditedAt = value.Time
			}
		case review.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Review.
// This includes values selected through modifiers, order, etc.
func (_m *Review) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Review entity.
func (_m *Review) QueryUser() *UserQuery {
	return NewReviewClient(_m.config).QueryUser(_m)
}

// QueryTeam queries the "team" edge of the Review entity.
func (_m *Review) QueryTeam() *TeamQuery {
	return NewReviewClient(_m.config).QueryTeam(_m)
}

// QueryRating queries the "rating" edge of the Review entity.
func (_m *Review) QueryRating() *RatingQuery {
	return NewReviewClient(_m.config).QueryRating(_m)
}

// QueryOrgResponse queries the "org_response" edge of the Review entity.
func (_m *Review) QueryOrgResponse() *OrgResponseQuery {
	return NewReviewClient(_m.config).QueryOrgResponse(_m)
}

// QueryFlags queries the "flags" edge of the Review entity.
func (_m *Review) QueryFlags() *FlagQuery {
	return NewReviewClient(_m.config).QueryFlags(_m)
}

// Update returns a builder for updating this Review.
// Note that you need to call Review.Unwrap() before calling this method if this Review
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Review) Update() *ReviewUpdateOne {
	return NewReviewClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Review entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Review) Unwrap() *Review {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Review is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Review) String() string {
	var builder strings.Builder
	builder.WriteString("Review(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("team_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TeamID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("season_term=")
	builder.WriteString(_m.SeasonTerm)
	builder.WriteString(", ")
	builder.WriteString("season_year=")
	builder.WriteString(fmt.Sprintf("%v", _m.SeasonYear))
	builder.WriteString(", ")
	builder.WriteString("age_level_at_review=")
	builder.WriteString(_m.AgeLevelAtReview)
	builder.WriteString(", ")
	builder.WriteString("is_public=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPublic))
	builder.WriteString(", ")
	builder.WriteString("is_highlight=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsHighlight))
	builder.WriteString(", ")
	if v := _m.EditedAt; v != nil {
		builder.WriteString("edited_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Reviews is a parsable slice of Review.
type Reviews []*Review
