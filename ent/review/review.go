// Code generated by ent, DO NOT EDIT.

package review

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the review type in the database.
	Label = "review"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTeamID holds the string denoting the team_id field in the database.
	FieldTeamID = "team_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldSeasonTerm holds the string denoting the season_term field in the database.
	FieldSeasonTerm = "season_term"
	// FieldSeasonYear holds the string denoting the season_year field in the database.
	FieldSeasonYear = "season_year"
	// FieldAgeLevelAtReview holds the string denoting the age_level_at_review field in the database.
	FieldAgeLevelAtReview = "age_level_at_review"
	// FieldIsPublic holds the string denoting the is_public field in the database.
	FieldIsPublic = "is_public"
	// FieldIsHighlight holds the string denoting the is_highlight field in the database.
	FieldIsHighlight = "is_highlight"
	// FieldEditedAt holds the string denoting the edited_at field in the database.
	FieldEditedAt = "edited_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeTeam holds the string denoting the team edge name in mutations.
	EdgeTeam = "team"
	// EdgeRating holds the string denoting the rating edge name in mutations.
	EdgeRating = "rating"
	// EdgeOrgResponse holds the string denoting the org_response edge name in mutations.
	EdgeOrgResponse = "org_response"
	// EdgeFlags holds the string denoting the flags edge name in mutations.
	EdgeFlags = "flags"
	// Table holds the table name of the review in the database.
	Table = "reviews"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "reviews"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// TeamTable is the table that holds the team relation/edge.
	TeamTable = "reviews"
	// TeamInverseTable is the table name for the Team entity.
	// It exists in this package in order to avoid circular dependency with the "team" package.
	TeamInverseTable = "teams"
	// TeamColumn is the table column denoting the team relation/edge.
	TeamColumn = "team_id"
	// RatingTable is the table that holds the rating relation/edge.
	RatingTable = "ratings"
	// RatingInverseTable is the table name for the Rating entity.
	// It exists in this package in order to avoid circular dependency with the "rating" package.
	RatingInverseTable = "ratings"
	// RatingColumn is the table column denoting the rating relation/edge.
	RatingColumn = "review_id"
	// OrgResponseTable is the table that holds the org_response relation/edge.
	OrgResponseTable = "org_responses"
	// OrgResponseInverseTable is the table name for the OrgResponse entity.
	// It exists in this package in order to avoid circular dependency with the "orgresponse" package.
	OrgResponseInverseTable = "org_responses"
	// OrgResponseColumn is the table column denoting the org_response relation/edge.
	OrgResponseColumn = "review_id"
	// FlagsTable is the table that holds the flags relation/edge.
	FlagsTable = "flags"
	// FlagsInverseTable is the table name for the Flag entity.
	// It exists in this package in order to avoid circular dependency with the "flag" package.
	FlagsInverseTable = "flags"
	// FlagsColumn is the table column denoting the flags relation/edge.
	FlagsColumn = "review_id"
)

// Columns holds all SQL columns for review fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTeamID,
	FieldTitle,
	FieldBody,
	FieldSeasonTerm,
	FieldSeasonYear,
	FieldAgeLevelAtReview,
	FieldIsPublic,
	FieldIsHighlight,
	FieldEditedAt,
	FieldCreatedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(int) error
	// TeamIDValidator is a validator for the "team_id" field. It is called by the builders before save.
	TeamIDValidator func(int) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// BodyValidator is a validator for the "body" field. It is called by the builders before save.
	BodyValidator func(string) error
	// SeasonTermValidator is a validator for the "season_term" field. It is called by the builders before save.
	SeasonTermValidator func(string) error
	// SeasonYearValidator is a validator for the "season_year" field. It is called by the builders before save.
	SeasonYearValidator func(int) error
	// DefaultIsPublic holds the default value on creation for the "is_public" field.
	DefaultIsPublic bool
	// DefaultIsHighlight holds the default value on creation for the "is_highlight" field.
	DefaultIsHighlight bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Review queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTeamID orders the results by the team_id field.
func ByTeamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeamID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// BySeasonTerm orders the results by the season_term field.
func BySeasonTerm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeasonTerm, opts...).ToFunc()
}

// BySeasonYear orders the results by the season_year field.
func BySeasonYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeasonYear, opts...).ToFunc()
}

// ByAgeLevelAtReview orders the results by the age_level_at_review field.
func ByAgeLevelAtReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgeLevelAtReview, opts...).ToFunc()
}

// ByIsPublic orders the results by the is_public field.
func ByIsPublic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPublic, opts...).ToFunc()
}

// ByIsHighlight orders the results by the is_highlight field.
func ByIsHighlight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsHighlight, opts...).ToFunc()
}

// ByEditedAt orders the results by the edited_at field.
func ByEditedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEditedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByTeamField orders the results by team field.
func ByTeamField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTeamStep(), sql.OrderByField(field, opts...))
	}
}

// ByRatingField orders the results by rating field.
func ByRatingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRatingStep(), sql.OrderByField(field, opts...))
	}
}

// ByOrgResponseField orders the results by org_response field.
func ByOrgResponseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOrgResponseStep(), sql.OrderByField(field, opts...))
	}
}

// ByFlagsCount orders the results by flags count.
func ByFlagsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFlagsStep(), opts...)
	}
}

// ByFlags orders the results by flags terms.
func ByFlags(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFlagsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
func newTeamStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TeamInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TeamTable, TeamColumn),
	)
}
func newRatingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RatingInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, RatingTable, RatingColumn),
	)
}
func newOrgResponseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OrgResponseInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, OrgResponseTable, OrgResponseColumn),
	)
}
func newFlagsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FlagsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FlagsTable, FlagsColumn),
	)
}
