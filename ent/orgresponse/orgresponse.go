// Code generated by ent, DO NOT EDIT.

package orgresponse

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the orgresponse type in the database.
	Label = "org_response"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReviewID holds the string denoting the review_id field in the database.
	FieldReviewID = "review_id"
	// FieldResponderID holds the string denoting the responder_id field in the database.
	FieldResponderID = "responder_id"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeReview holds the string denoting the review edge name in mutations.
	EdgeReview = "review"
	// EdgeResponder holds the string denoting the responder edge name in mutations.
	EdgeResponder = "responder"
	// Table holds the table name of the orgresponse in the database.
	Table = "org_responses"
	// ReviewTable is the table that holds the review relation/edge.
	ReviewTable = "org_responses"
	// ReviewInverseTable is the table name for the Review entity.
	// It exists in this package in order to avoid circular dependency with the "review" package.
	ReviewInverseTable = "reviews"
	// ReviewColumn is the table column denoting the review relation/edge.
	ReviewColumn = "review_id"
	// ResponderTable is the table that holds the responder relation/edge.
	ResponderTable = "org_responses"
	// ResponderInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	ResponderInverseTable = "users"
	// ResponderColumn is the table column denoting the responder relation/edge.
	ResponderColumn = "responder_id"
)

// Columns holds all SQL columns for orgresponse fields.
var Columns = []string{
	FieldID,
	FieldReviewID,
	FieldResponderID,
	FieldBody,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ReviewIDValidator is a validator for the "review_id" field. It is called by the builders before save.
	ReviewIDValidator func(int) error
	// ResponderIDValidator is a validator for the "responder_id" field. It is called by the builders before save.
	ResponderIDValidator func(int) error
	// BodyValidator is a validator for the "body" field. It is called by the builders before save.
	BodyValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the OrgResponse queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReviewID orders the results by the review_id field.
func ByReviewID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewID, opts...).ToFunc()
}

// ByResponderID orders the results by the responder_id field.
func ByResponderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponderID, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByReviewField orders the results by review field.
func ByReviewField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReviewStep(), sql.OrderByField(field, opts...))
	}
}

// ByResponderField orders the results by responder field.
func ByResponderField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResponderStep(), sql.OrderByField(field, opts...))
	}
}
func newReviewStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReviewInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, ReviewTable, ReviewColumn),
	)
}
func newResponderStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResponderInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ResponderTable, ResponderColumn),
	)
}
