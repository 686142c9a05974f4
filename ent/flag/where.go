// Code generated by ent, DO NOT EDIT.

package flag

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/squadscore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Flag {
	return predicate.Flag(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Flag {
	return predicate.Flag(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Flag {
	return predicate.Flag(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Flag {
	return predicate.Flag(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Flag {
	return predicate.Flag(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Flag {
	return predicate.Flag(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Flag {
	return predicate.Flag(sql.FieldLTE(FieldID, id))
}

// ReviewID applies equality check predicate on the "review_id" field. It's identical to ReviewIDEQ.
func ReviewID(v int) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldReviewID, v))
}

// ReporterID applies equality check predicate on the "reporter_id" field. It's identical to ReporterIDEQ.
func ReporterID(v int) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldReporterID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldReason, v))
}

// ReporterIP applies equality check predicate on the "reporter_ip" field. It's identical to ReporterIPEQ.
func ReporterIP(v string) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldReporterIP, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldCreatedAt, v))
}

// ReviewIDEQ applies the EQ predicate on the "review_id" field.
func ReviewIDEQ(v int) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldReviewID, v))
}

// ReviewIDNEQ applies the NEQ predicate on the "review_id" field.
func ReviewIDNEQ(v int) predicate.Flag {
	return predicate.Flag(sql.FieldNEQ(FieldReviewID, v))
}

// ReviewIDIn applies the In predicate on the "review_id" field.
func ReviewIDIn(vs ...int) predicate.Flag {
	return predicate.Flag(sql.FieldIn(FieldReviewID, vs...))
}

// ReviewIDNotIn applies the NotIn predicate on the "review_id" field.
func ReviewIDNotIn(vs ...int) predicate.Flag {
	return predicate.Flag(sql.FieldNotIn(FieldReviewID, vs...))
}

// ReporterIDEQ applies the EQ predicate on the "reporter_id" field.
func ReporterIDEQ(v int) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldReporterID, v))
}

// ReporterIDNEQ applies the NEQ predicate on the "reporter_id" field.
func ReporterIDNEQ(v int) predicate.Flag {
	return predicate.Flag(sql.FieldNEQ(FieldReporterID, v))
}

// ReporterIDIn applies the In predicate on the "reporter_id" field.
func ReporterIDIn(vs ...int) predicate.Flag {
	return predicate.Flag(sql.FieldIn(FieldReporterID, vs...))
}

// ReporterIDNotIn applies the NotIn predicate on the "reporter_id" field.
func ReporterIDNotIn(vs ...int) predicate.Flag {
	return predicate.Flag(sql.FieldNotIn(FieldReporterID, vs...))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.Flag {
	return predicate.Flag(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.Flag {
	return predicate.Flag(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.Flag {
	return predicate.Flag(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.Flag {
	return predicate.Flag(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.Flag {
	return predicate.Flag(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.Flag {
	return predicate.Flag(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.Flag {
	return predicate.Flag(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.Flag {
	return predicate.Flag(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.Flag {
	return predicate.Flag(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.Flag {
	return predicate.Flag(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.Flag {
	return predicate.Flag(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.Flag {
	return predicate.Flag(sql.FieldContainsFold(FieldReason, v))
}

// ReporterIPEQ applies the EQ predicate on the "reporter_ip" field.
func ReporterIPEQ(v string) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldReporterIP, v))
}

// ReporterIPNEQ applies the NEQ predicate on the "reporter_ip" field.
func ReporterIPNEQ(v string) predicate.Flag {
	return predicate.Flag(sql.FieldNEQ(FieldReporterIP, v))
}

// ReporterIPIn applies the In predicate on the "reporter_ip" field.
func ReporterIPIn(vs ...string) predicate.Flag {
	return predicate.Flag(sql.FieldIn(FieldReporterIP, vs...))
}

// ReporterIPNotIn applies the NotIn predicate on the "reporter_ip" field.
func ReporterIPNotIn(vs ...string) predicate.Flag {
	return predicate.Flag(sql.FieldNotIn(FieldReporterIP, vs...))
}

// ReporterIPGT applies the GT predicate on the "reporter_ip" field.
func ReporterIPGT(v string) predicate.Flag {
	return predicate.Flag(sql.FieldGT(FieldReporterIP, v))
}

// ReporterIPGTE applies the GTE predicate on the "reporter_ip" field.
func ReporterIPGTE(v string) predicate.Flag {
	return predicate.Flag(sql.FieldGTE(FieldReporterIP, v))
}

// ReporterIPLT applies the LT predicate on the "reporter_ip" field.
func ReporterIPLT(v string) predicate.Flag {
	return predicate.Flag(sql.FieldLT(FieldReporterIP, v))
}

// ReporterIPLTE applies the LTE predicate on the "reporter_ip" field.
func ReporterIPLTE(v string) predicate.Flag {
	return predicate.Flag(sql.FieldLTE(FieldReporterIP, v))
}

// ReporterIPContains applies the Contains predicate on the "reporter_ip" field.
func ReporterIPContains(v string) predicate.Flag {
	return predicate.Flag(sql.FieldContains(FieldReporterIP, v))
}

// ReporterIPHasPrefix applies the HasPrefix predicate on the "reporter_ip" field.
func ReporterIPHasPrefix(v string) predicate.Flag {
	return predicate.Flag(sql.FieldHasPrefix(FieldReporterIP, v))
}

// ReporterIPHasSuffix applies the HasSuffix predicate on the "reporter_ip" field.
func ReporterIPHasSuffix(v string) predicate.Flag {
	return predicate.Flag(sql.FieldHasSuffix(FieldReporterIP, v))
}

// ReporterIPIsNil applies the IsNil predicate on the "reporter_ip" field.
func ReporterIPIsNil() predicate.Flag {
	return predicate.Flag(sql.FieldIsNull(FieldReporterIP))
}

// ReporterIPNotNil applies the NotNil predicate on the "reporter_ip" field.
func ReporterIPNotNil() predicate.Flag {
	return predicate.Flag(sql.FieldNotNull(FieldReporterIP))
}

// ReporterIPEqualFold applies the EqualFold predicate on the "reporter_ip" field.
func ReporterIPEqualFold(v string) predicate.Flag {
	return predicate.Flag(sql.FieldEqualFold(FieldReporterIP, v))
}

// ReporterIPContainsFold applies the ContainsFold predicate on the "reporter_ip" field.
func ReporterIPContainsFold(v string) predicate.Flag {
	return predicate.Flag(sql.FieldContainsFold(FieldReporterIP, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Flag {
	return predicate.Flag(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Flag {
	return predicate.Flag(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Flag {
	return predicate.Flag(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldLTE(FieldCreatedAt, v))
}

// HasReview applies the HasEdge predicate on the "review" edge.
func HasReview() predicate.Flag {
	return predicate.Flag(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReviewTable, ReviewColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReviewWith applies the HasEdge predicate on the "review" edge with a given conditions (other predicates).
func HasReviewWith(preds ...predicate.Review) predicate.Flag {
	return predicate.Flag(func(s *sql.Selector) {
		step := newReviewStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReporter applies the HasEdge predicate on the "reporter" edge.
func HasReporter() predicate.Flag {
	return predicate.Flag(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReporterTable, ReporterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReporterWith applies the HasEdge predicate on the "reporter" edge with a given conditions (other predicates).
func HasReporterWith(preds ...predicate.User) predicate.Flag {
	return predicate.Flag(func(s *sql.Selector) {
		step := newReporterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Flag) predicate.Flag {
	return predicate.Flag(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Flag) predicate.Flag {
	return predicate.Flag(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Flag) predicate.Flag {
	return predicate.Flag(sql.NotPredicates(p))
}
