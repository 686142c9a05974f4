// Code generated by ent, DO NOT EDIT.

package rating

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the rating type in the database.
	Label = "rating"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReviewID holds the string denoting the review_id field in the database.
	FieldReviewID = "review_id"
	// FieldCoaching holds the string denoting the coaching field in the database.
	FieldCoaching = "coaching"
	// FieldDevelopment holds the string denoting the development field in the database.
	FieldDevelopment = "development"
	// FieldTransparency holds the string denoting the transparency field in the database.
	FieldTransparency = "transparency"
	// FieldCulture holds the string denoting the culture field in the database.
	FieldCulture = "culture"
	// FieldSafety holds the string denoting the safety field in the database.
	FieldSafety = "safety"
	// FieldOverall holds the string denoting the overall field in the database.
	FieldOverall = "overall"
	// EdgeReview holds the string denoting the review edge name in mutations.
	EdgeReview = "review"
	// Table holds the table name of the rating in the database.
	Table = "ratings"
	// ReviewTable is the table that holds the review relation/edge.
	ReviewTable = "ratings"
	// ReviewInverseTable is the table name for the Review entity.
	// It exists in this package in order to avoid circular dependency with the "review" package.
	ReviewInverseTable = "reviews"
	// ReviewColumn is the table column denoting the review relation/edge.
	ReviewColumn = "review_id"
)

// Columns holds all SQL columns for rating fields.
var Columns = []string{
	FieldID,
	FieldReviewID,
	FieldCoaching,
	FieldDevelopment,
	FieldTransparency,
	FieldCulture,
	FieldSafety,
	FieldOverall,
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
	// CoachingValidator is a validator for the "coaching" field. It is called by the builders before save.
	CoachingValidator func(int) error
	// DevelopmentValidator is a validator for the "development" field. It is called by the builders before save.
	DevelopmentValidator func(int) error
	// TransparencyValidator is a validator for the "transparency" field. It is called by the builders before save.
	TransparencyValidator func(int) error
	// CultureValidator is a validator for the "culture" field. It is called by the builders before save.
	CultureValidator func(int) error
	// SafetyValidator is a validator for the "safety" field. It is called by the builders before save.
	SafetyValidator func(int) error
)

// OrderOption defines the ordering options for the Rating queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReviewID orders the results by the review_id field.
func ByReviewID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewID, opts...).ToFunc()
}

// ByCoaching orders the results by the coaching field.
func ByCoaching(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoaching, opts...).ToFunc()
}

// ByDevelopment orders the results by the development field.
func ByDevelopment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDevelopment, opts...).ToFunc()
}

// ByTransparency orders the results by the transparency field.
func ByTransparency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransparency, opts...).ToFunc()
}

// ByCulture orders the results by the culture field.
func ByCulture(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCulture, opts...).ToFunc()
}

// BySafety orders the results by the safety field.
func BySafety(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSafety, opts...).ToFunc()
}

// ByOverall orders the results by the overall field.
func ByOverall(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverall, opts...).ToFunc()
}

// ByReviewField orders the results by review field.
func ByReviewField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReviewStep(), sql.OrderByField(field, opts...))
	}
}
func newReviewStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReviewInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, ReviewTable, ReviewColumn),
	)
}
