// Code generated by ent, DO NOT EDIT.

package rating

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/squadscore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldID, id))
}

// ReviewID applies equality check predicate on the "review_id" field. It's identical to ReviewIDEQ.
func ReviewID(v int) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldReviewID, v))
}

// Coaching applies equality check predicate on the "coaching" field. It's identical to CoachingEQ.
func Coaching(v int) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldCoaching, v))
}

// Development applies equality check predicate on the "development" field. It's identical to DevelopmentEQ.
func Development(v int) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldDevelopment, v))
}

// Transparency applies equality check predicate on the "transparency" field. It's identical to TransparencyEQ.
func Transparency(v int) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldTransparency, v))
}

// Culture applies equality check predicate on the "culture" field. It's identical to CultureEQ.
func Culture(v int) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldCulture, v))
}

// Safety applies equality check predicate on the "safety" field. It's identical to SafetyEQ.
func Safety(v int) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldSafety, v))
}

// Overall applies equality check predicate on the "overall" field. It's identical to OverallEQ.
func Overall(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldOverall, v))
}

// ReviewIDEQ applies the EQ predicate on the "review_id" field.
func ReviewIDEQ(v int) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldReviewID, v))
}

// ReviewIDNEQ applies the NEQ predicate on the "review_id" field.
func ReviewIDNEQ(v int) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldReviewID, v))
}

// ReviewIDIn applies the In predicate on the "review_id" field.
func ReviewIDIn(vs ...int) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldReviewID, vs...))
}

// ReviewIDNotIn applies the NotIn predicate on the "review_id" field.
func ReviewIDNotIn(vs ...int) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldReviewID, vs...))
}

// CoachingEQ applies the EQ predicate on the "coaching" field.
func CoachingEQ(v int) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldCoaching, v))
}

// CoachingNEQ applies the NEQ predicate on the "coaching" field.
func CoachingNEQ(v int) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldCoaching, v))
}

// CoachingIn applies the In predicate on the "coaching" field.
func CoachingIn(vs ...int) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldCoaching, vs...))
}

// CoachingNotIn applies the NotIn predicate on the "coaching" field.
func CoachingNotIn(vs ...int) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldCoaching, vs...))
}

// CoachingGT applies the GT predicate on the "coaching" field.
func CoachingGT(v int) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldCoaching, v))
}

// CoachingGTE applies the GTE predicate on the "coaching" field.
func CoachingGTE(v int) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldCoaching, v))
}

// CoachingLT applies the LT predicate on the "coaching" field.
func CoachingLT(v int) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldCoaching, v))
}

// CoachingLTE applies the LTE predicate on the "coaching" field.
func CoachingLTE(v int) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldCoaching, v))
}

// DevelopmentEQ applies the EQ predicate on the "development" field.
func DevelopmentEQ(v int) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldDevelopment, v))
}

// DevelopmentNEQ applies the NEQ predicate on the "development" field.
func DevelopmentNEQ(v int) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldDevelopment, v))
}

// DevelopmentIn applies the In predicate on the "development" field.
func DevelopmentIn(vs ...int) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldDevelopment, vs...))
}

// DevelopmentNotIn applies the NotIn predicate on the "development" field.
func DevelopmentNotIn(vs ...int) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldDevelopment, vs...))
}

// DevelopmentGT applies the GT predicate on the "development" field.
func DevelopmentGT(v int) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldDevelopment, v))
}

// DevelopmentGTE applies the GTE predicate on the "development" field.
func DevelopmentGTE(v int) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldDevelopment, v))
}

// DevelopmentLT applies the LT predicate on the "development" field.
func DevelopmentLT(v int) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldDevelopment, v))
}

// DevelopmentLTE applies the LTE predicate on the "development" field.
func DevelopmentLTE(v int) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldDevelopment, v))
}

// TransparencyEQ applies the EQ predicate on the "transparency" field.
func TransparencyEQ(v int) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldTransparency, v))
}

// TransparencyNEQ applies the NEQ predicate on the "transparency" field.
func TransparencyNEQ(v int) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldTransparency, v))
}

// TransparencyIn applies the In predicate on the "transparency" field.
func TransparencyIn(vs ...int) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldTransparency, vs...))
}

// TransparencyNotIn applies the NotIn predicate on the "transparency" field.
func TransparencyNotIn(vs ...int) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldTransparency, vs...))
}

// TransparencyGT applies the GT predicate on the "transparency" field.
func TransparencyGT(v int) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldTransparency, v))
}

// TransparencyGTE applies the GTE predicate on the "transparency" field.
func TransparencyGTE(v int) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldTransparency, v))
}

// TransparencyLT applies the LT predicate on the "transparency" field.
func TransparencyLT(v int) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldTransparency, v))
}

// TransparencyLTE applies the LTE predicate on the "transparency" field.
func TransparencyLTE(v int) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldTransparency, v))
}

// CultureEQ applies the EQ predicate on the "culture" field.
func CultureEQ(v int) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldCulture, v))
}

// CultureNEQ applies the NEQ predicate on the "culture" field.
func CultureNEQ(v int) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldCulture, v))
}

// CultureIn applies the In predicate on the "culture" field.
func CultureIn(vs ...int) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldCulture, vs...))
}

// CultureNotIn applies the NotIn predicate on the "culture" field.
func CultureNotIn(vs ...int) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldCulture, vs...))
}

// CultureGT applies the GT predicate on the "culture" field.
func CultureGT(v int) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldCulture, v))
}

// CultureGTE applies the GTE predicate on the "culture" field.
func CultureGTE(v int) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldCulture, v))
}

// CultureLT applies the LT predicate on the "culture" field.
func CultureLT(v int) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldCulture, v))
}

// CultureLTE applies the LTE predicate on the "culture" field.
func CultureLTE(v int) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldCulture, v))
}

// SafetyEQ applies the EQ predicate on the "safety" field.
func SafetyEQ(v int) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldSafety, v))
}

// SafetyNEQ applies the NEQ predicate on the "safety" field.
func SafetyNEQ(v int) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldSafety, v))
}

// SafetyIn applies the In predicate on the "safety" field.
func SafetyIn(vs ...int) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldSafety, vs...))
}

// SafetyNotIn applies the NotIn predicate on the "safety" field.
func SafetyNotIn(vs ...int) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldSafety, vs...))
}

// SafetyGT applies the GT predicate on the "safety" field.
func SafetyGT(v int) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldSafety, v))
}

// SafetyGTE applies the GTE predicate on the "safety" field.
func SafetyGTE(v int) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldSafety, v))
}

// SafetyLT applies the LT predicate on the "safety" field.
func SafetyLT(v int) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldSafety, v))
}

// SafetyLTE applies the LTE predicate on the "safety" field.
func SafetyLTE(v int) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldSafety, v))
}

// OverallEQ applies the EQ predicate on the "overall" field.
func OverallEQ(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldOverall, v))
}

// OverallNEQ applies the NEQ predicate on the "overall" field.
func OverallNEQ(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldOverall, v))
}

// OverallIn applies the In predicate on the "overall" field.
func OverallIn(vs ...float64) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldOverall, vs...))
}

// OverallNotIn applies the NotIn predicate on the "overall" field.
func OverallNotIn(vs ...float64) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldOverall, vs...))
}

// OverallGT applies the GT predicate on the "overall" field.
func OverallGT(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldOverall, v))
}

// OverallGTE applies the GTE predicate on the "overall" field.
func OverallGTE(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldOverall, v))
}

// OverallLT applies the LT predicate on the "overall" field.
func OverallLT(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldOverall, v))
}

// OverallLTE applies the LTE predicate on the "overall" field.
func OverallLTE(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldOverall, v))
}

// HasReview applies the HasEdge predicate on the "review" edge.
func HasReview() predicate.Rating {
	return predicate.Rating(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ReviewTable, ReviewColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReviewWith applies the HasEdge predicate on the "review" edge with a given conditions (other predicates).
func HasReviewWith(preds ...predicate.Review) predicate.Rating {
	return predicate.Rating(func(s *sql.Selector) {
		step := newReviewStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Rating) predicate.Rating {
	return predicate.Rating(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Rating) predicate.Rating {
	return predicate.Rating(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Rating) predicate.Rating {
	return predicate.Rating(sql.NotPredicates(p))
}
