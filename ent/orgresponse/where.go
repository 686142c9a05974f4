// Code generated by ent, DO NOT EDIT.

package orgresponse

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/squadscore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldLTE(FieldID, id))
}

// ReviewID applies equality check predicate on the "review_id" field. It's identical to ReviewIDEQ.
func ReviewID(v int) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldEQ(FieldReviewID, v))
}

// ResponderID applies equality check predicate on the "responder_id" field. It's identical to ResponderIDEQ.
func ResponderID(v int) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldEQ(FieldResponderID, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldEQ(FieldBody, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldEQ(FieldUpdatedAt, v))
}

// ReviewIDEQ applies the EQ predicate on the "review_id" field.
func ReviewIDEQ(v int) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldEQ(FieldReviewID, v))
}

// ReviewIDNEQ applies the NEQ predicate on the "review_id" field.
func ReviewIDNEQ(v int) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldNEQ(FieldReviewID, v))
}

// ReviewIDIn applies the In predicate on the "review_id" field.
func ReviewIDIn(vs ...int) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldIn(FieldReviewID, vs...))
}

// ReviewIDNotIn applies the NotIn predicate on the "review_id" field.
func ReviewIDNotIn(vs ...int) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldNotIn(FieldReviewID, vs...))
}

// ResponderIDEQ applies the EQ predicate on the "responder_id" field.
func ResponderIDEQ(v int) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldEQ(FieldResponderID, v))
}

// ResponderIDNEQ applies the NEQ predicate on the "responder_id" field.
func ResponderIDNEQ(v int) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldNEQ(FieldResponderID, v))
}

// ResponderIDIn applies the In predicate on the "responder_id" field.
func ResponderIDIn(vs ...int) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldIn(FieldResponderID, vs...))
}

// ResponderIDNotIn applies the NotIn predicate on the "responder_id" field.
func ResponderIDNotIn(vs ...int) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldNotIn(FieldResponderID, vs...))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldContainsFold(FieldBody, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.OrgResponse {
	return predicate.OrgResponse(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasReview applies the HasEdge predicate on the "review" edge.
func HasReview() predicate.OrgResponse {
	return predicate.OrgResponse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ReviewTable, ReviewColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReviewWith applies the HasEdge predicate on the "review" edge with a given conditions (other predicates).
func HasReviewWith(preds ...predicate.Review) predicate.OrgResponse {
	return predicate.OrgResponse(func(s *sql.Selector) {
		step := newReviewStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResponder applies the HasEdge predicate on the "responder" edge.
func HasResponder() predicate.OrgResponse {
	return predicate.OrgResponse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ResponderTable, ResponderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResponderWith applies the HasEdge predicate on the "responder" edge with a given conditions (other predicates).
func HasResponderWith(preds ...predicate.User) predicate.OrgResponse {
	return predicate.OrgResponse(func(s *sql.Selector) {
		step := newResponderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OrgResponse) predicate.OrgResponse {
	return predicate.OrgResponse(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OrgResponse) predicate.OrgResponse {
	return predicate.OrgResponse(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OrgResponse) predicate.OrgResponse {
	return predicate.OrgResponse(sql.NotPredicates(p))
}
