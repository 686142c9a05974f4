// Code generated by ent, DO NOT EDIT.

package review

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/squadscore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldUserID, v))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldTeamID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldTitle, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldBody, v))
}

// SeasonTerm applies equality check predicate on the "season_term" field. It's identical to SeasonTermEQ.
func SeasonTerm(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldSeasonTerm, v))
}

// SeasonYear applies equality check predicate on the "season_year" field. It's identical to SeasonYearEQ.
func SeasonYear(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldSeasonYear, v))
}

// AgeLevelAtReview applies equality check predicate on the "age_level_at_review" field. It's identical to AgeLevelAtReviewEQ.
func AgeLevelAtReview(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldAgeLevelAtReview, v))
}

// IsPublic applies equality check predicate on the "is_public" field. It's identical to IsPublicEQ.
func IsPublic(v bool) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldIsPublic, v))
}

// IsHighlight applies equality check predicate on the "is_highlight" field. It's identical to IsHighlightEQ.
func IsHighlight(v bool) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldIsHighlight, v))
}

// EditedAt applies equality check predicate on the "edited_at" field. It's identical to EditedAtEQ.
func EditedAt(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldEditedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldUserID, vs...))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldTeamID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Review {
	return predicate.Review(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Review {
	return predicate.Review(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Review {
	return predicate.Review(sql.FieldContainsFold(FieldTitle, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.Review {
	return predicate.Review(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.Review {
	return predicate.Review(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.Review {
	return predicate.Review(sql.FieldContainsFold(FieldBody, v))
}

// SeasonTermEQ applies the EQ predicate on the "season_term" field.
func SeasonTermEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldSeasonTerm, v))
}

// SeasonTermNEQ applies the NEQ predicate on the "season_term" field.
func SeasonTermNEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldSeasonTerm, v))
}

// SeasonTermIn applies the In predicate on the "season_term" field.
func SeasonTermIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldSeasonTerm, vs...))
}

// SeasonTermNotIn applies the NotIn predicate on the "season_term" field.
func SeasonTermNotIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldSeasonTerm, vs...))
}

// SeasonTermGT applies the GT predicate on the "season_term" field.
func SeasonTermGT(v string) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldSeasonTerm, v))
}

// SeasonTermGTE applies the GTE predicate on the "season_term" field.
func SeasonTermGTE(v string) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldSeasonTerm, v))
}

// SeasonTermLT applies the LT predicate on the "season_term" field.
func SeasonTermLT(v string) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldSeasonTerm, v))
}

// SeasonTermLTE applies the LTE predicate on the "season_term" field.
func SeasonTermLTE(v string) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldSeasonTerm, v))
}

// SeasonTermContains applies the Contains predicate on the "season_term" field.
func SeasonTermContains(v string) predicate.Review {
	return predicate.Review(sql.FieldContains(FieldSeasonTerm, v))
}

// SeasonTermHasPrefix applies the HasPrefix predicate on the "season_term" field.
func SeasonTermHasPrefix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasPrefix(FieldSeasonTerm, v))
}

// SeasonTermHasSuffix applies the HasSuffix predicate on the "season_term" field.
func SeasonTermHasSuffix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasSuffix(FieldSeasonTerm, v))
}

// SeasonTermEqualFold applies the EqualFold predicate on the "season_term" field.
func SeasonTermEqualFold(v string) predicate.Review {
	return predicate.Review(sql.FieldEqualFold(FieldSeasonTerm, v))
}

// SeasonTermContainsFold applies the ContainsFold predicate on the "season_term" field.
func SeasonTermContainsFold(v string) predicate.Review {
	return predicate.Review(sql.FieldContainsFold(FieldSeasonTerm, v))
}

// SeasonYearEQ applies the EQ predicate on the "season_year" field.
func SeasonYearEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldSeasonYear, v))
}

// SeasonYearNEQ applies the NEQ predicate on the "season_year" field.
func SeasonYearNEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldSeasonYear, v))
}

// SeasonYearIn applies the In predicate on the "season_year" field.
func SeasonYearIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldSeasonYear, vs...))
}

// SeasonYearNotIn applies the NotIn predicate on the "season_year" field.
func SeasonYearNotIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldSeasonYear, vs...))
}

// SeasonYearGT applies the GT predicate on the "season_year" field.
func SeasonYearGT(v int) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldSeasonYear, v))
}

// SeasonYearGTE applies the GTE predicate on the "season_year" field.
func SeasonYearGTE(v int) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldSeasonYear, v))
}

// SeasonYearLT applies the LT predicate on the "season_year" field.
func SeasonYearLT(v int) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldSeasonYear, v))
}

// SeasonYearLTE applies the LTE predicate on the "season_year" field.
func SeasonYearLTE(v int) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldSeasonYear, v))
}

// AgeLevelAtReviewEQ applies the EQ predicate on the "age_level_at_review" field.
func AgeLevelAtReviewEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldAgeLevelAtReview, v))
}

// AgeLevelAtReviewNEQ applies the NEQ predicate on the "age_level_at_review" field.
func AgeLevelAtReviewNEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldAgeLevelAtReview, v))
}

// AgeLevelAtReviewIn applies the In predicate on the "age_level_at_review" field.
func AgeLevelAtReviewIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldAgeLevelAtReview, vs...))
}

// AgeLevelAtReviewNotIn applies the NotIn predicate on the "age_level_at_review" field.
func AgeLevelAtReviewNotIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldAgeLevelAtReview, vs...))
}

// AgeLevelAtReviewGT applies the GT predicate on the "age_level_at_review" field.
func AgeLevelAtReviewGT(v string) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldAgeLevelAtReview, v))
}

// AgeLevelAtReviewGTE applies the GTE predicate on the "age_level_at_review" field.
func AgeLevelAtReviewGTE(v string) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldAgeLevelAtReview, v))
}

// AgeLevelAtReviewLT applies the LT predicate on the "age_level_at_review" field.
func AgeLevelAtReviewLT(v string) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldAgeLevelAtReview, v))
}

// AgeLevelAtReviewLTE applies the LTE predicate on the "age_level_at_review" field.
func AgeLevelAtReviewLTE(v string) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldAgeLevelAtReview, v))
}

// AgeLevelAtReviewContains applies the Contains predicate on the "age_level_at_review" field.
func AgeLevelAtReviewContains(v string) predicate.Review {
	return predicate.Review(sql.FieldContains(FieldAgeLevelAtReview, v))
}

// AgeLevelAtReviewHasPrefix applies the HasPrefix predicate on the "age_level_at_review" field.
func AgeLevelAtReviewHasPrefix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasPrefix(FieldAgeLevelAtReview, v))
}

// AgeLevelAtReviewHasSuffix applies the HasSuffix predicate on the "age_level_at_review" field.
func AgeLevelAtReviewHasSuffix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasSuffix(FieldAgeLevelAtReview, v))
}

// AgeLevelAtReviewIsNil applies the IsNil predicate on the "age_level_at_review" field.
func AgeLevelAtReviewIsNil() predicate.Review {
	return predicate.Review(sql.FieldIsNull(FieldAgeLevelAtReview))
}

// AgeLevelAtReviewNotNil applies the NotNil predicate on the "age_level_at_review" field.
func AgeLevelAtReviewNotNil() predicate.Review {
	return predicate.Review(sql.FieldNotNull(FieldAgeLevelAtReview))
}

// AgeLevelAtReviewEqualFold applies the EqualFold predicate on the "age_level_at_review" field.
func AgeLevelAtReviewEqualFold(v string) predicate.Review {
	return predicate.Review(sql.FieldEqualFold(FieldAgeLevelAtReview, v))
}

// AgeLevelAtReviewContainsFold applies the ContainsFold predicate on the "age_level_at_review" field.
func AgeLevelAtReviewContainsFold(v string) predicate.Review {
	return predicate.Review(sql.FieldContainsFold(FieldAgeLevelAtReview, v))
}

// IsPublicEQ applies the EQ predicate on the "is_public" field.
func IsPublicEQ(v bool) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldIsPublic, v))
}

// IsPublicNEQ applies the NEQ predicate on the "is_public" field.
func IsPublicNEQ(v bool) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldIsPublic, v))
}

// IsHighlightEQ applies the EQ predicate on the "is_highlight" field.
func IsHighlightEQ(v bool) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldIsHighlight, v))
}

// IsHighlightNEQ applies the NEQ predicate on the "is_highlight" field.
func IsHighlightNEQ(v bool) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldIsHighlight, v))
}

// EditedAtEQ applies the EQ predicate on the "edited_at" field.
func EditedAtEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldEditedAt, v))
}

// EditedAtNEQ applies the NEQ predicate on the "edited_at" field.
func EditedAtNEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldEditedAt, v))
}

// EditedAtIn applies the In predicate on the "edited_at" field.
func EditedAtIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldEditedAt, vs...))
}

// EditedAtNotIn applies the NotIn predicate on the "edited_at" field.
func EditedAtNotIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldEditedAt, vs...))
}

// EditedAtGT applies the GT predicate on the "edited_at" field.
func EditedAtGT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldEditedAt, v))
}

// EditedAtGTE applies the GTE predicate on the "edited_at" field.
func EditedAtGTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldEditedAt, v))
}

// EditedAtLT applies the LT predicate on the "edited_at" field.
func EditedAtLT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldEditedAt, v))
}

// EditedAtLTE applies the LTE predicate on the "edited_at" field.
func EditedAtLTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldEditedAt, v))
}

// EditedAtIsNil applies the IsNil predicate on the "edited_at" field.
func EditedAtIsNil() predicate.Review {
	return predicate.Review(sql.FieldIsNull(FieldEditedAt))
}

// EditedAtNotNil applies the NotNil predicate on the "edited_at" field.
func EditedAtNotNil() predicate.Review {
	return predicate.Review(sql.FieldNotNull(FieldEditedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldCreatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTeam applies the HasEdge predicate on the "team" edge.
func HasTeam() predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TeamTable, TeamColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTeamWith applies the HasEdge predicate on the "team" edge with a given conditions (other predicates).
func HasTeamWith(preds ...predicate.Team) predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := newTeamStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRating applies the HasEdge predicate on the "rating" edge.
func HasRating() predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, RatingTable, RatingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRatingWith applies the HasEdge predicate on the "rating" edge with a given conditions (other predicates).
func HasRatingWith(preds ...predicate.Rating) predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := newRatingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOrgResponse applies the HasEdge predicate on the "org_response" edge.
func HasOrgResponse() predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, OrgResponseTable, OrgResponseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrgResponseWith applies the HasEdge predicate on the "org_response" edge with a given conditions (other predicates).
func HasOrgResponseWith(preds ...predicate.OrgResponse) predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := newOrgResponseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFlags applies the HasEdge predicate on the "flags" edge.
func HasFlags() predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FlagsTable, FlagsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFlagsWith applies the HasEdge predicate on the "flags" edge with a given conditions (other predicates).
func HasFlagsWith(preds ...predicate.Flag) predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := newFlagsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Review) predicate.Review {
	return predicate.Review(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Review) predicate.Review {
	return predicate.Review(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Review) predicate.Review {
	return predicate.Review(sql.NotPredicates(p))
}
