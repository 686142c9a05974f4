// Code generated by ent, DO NOT EDIT.

package team

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/squadscore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Team {
	return predicate.Team(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Team {
	return predicate.Team(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Team {
	return predicate.Team(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Team {
	return predicate.Team(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Team {
	return predicate.Team(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Team {
	return predicate.Team(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Team {
	return predicate.Team(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldName, v))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v int) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldOrganizationID, v))
}

// Division applies equality check predicate on the "division" field. It's identical to DivisionEQ.
func Division(v string) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldDivision, v))
}

// AgeLevel applies equality check predicate on the "age_level" field. It's identical to AgeLevelEQ.
func AgeLevel(v string) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldAgeLevel, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldCity, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldState, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Team {
	return predicate.Team(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Team {
	return predicate.Team(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Team {
	return predicate.Team(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Team {
	return predicate.Team(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Team {
	return predicate.Team(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Team {
	return predicate.Team(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Team {
	return predicate.Team(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Team {
	return predicate.Team(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Team {
	return predicate.Team(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Team {
	return predicate.Team(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Team {
	return predicate.Team(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Team {
	return predicate.Team(sql.FieldContainsFold(FieldName, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v int) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v int) predicate.Team {
	return predicate.Team(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...int) predicate.Team {
	return predicate.Team(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...int) predicate.Team {
	return predicate.Team(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// DivisionEQ applies the EQ predicate on the "division" field.
func DivisionEQ(v string) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldDivision, v))
}

// DivisionNEQ applies the NEQ predicate on the "division" field.
func DivisionNEQ(v string) predicate.Team {
	return predicate.Team(sql.FieldNEQ(FieldDivision, v))
}

// DivisionIn applies the In predicate on the "division" field.
func DivisionIn(vs ...string) predicate.Team {
	return predicate.Team(sql.FieldIn(FieldDivision, vs...))
}

// DivisionNotIn applies the NotIn predicate on the "division" field.
func DivisionNotIn(vs ...string) predicate.Team {
	return predicate.Team(sql.FieldNotIn(FieldDivision, vs...))
}

// DivisionGT applies the GT predicate on the "division" field.
func DivisionGT(v string) predicate.Team {
	return predicate.Team(sql.FieldGT(FieldDivision, v))
}

// DivisionGTE applies the GTE predicate on the "division" field.
func DivisionGTE(v string) predicate.Team {
	return predicate.Team(sql.FieldGTE(FieldDivision, v))
}

// DivisionLT applies the LT predicate on the "division" field.
func DivisionLT(v string) predicate.Team {
	return predicate.Team(sql.FieldLT(FieldDivision, v))
}

// DivisionLTE applies the LTE predicate on the "division" field.
func DivisionLTE(v string) predicate.Team {
	return predicate.Team(sql.FieldLTE(FieldDivision, v))
}

// DivisionContains applies the Contains predicate on the "division" field.
func DivisionContains(v string) predicate.Team {
	return predicate.Team(sql.FieldContains(FieldDivision, v))
}

// DivisionHasPrefix applies the HasPrefix predicate on the "division" field.
func DivisionHasPrefix(v string) predicate.Team {
	return predicate.Team(sql.FieldHasPrefix(FieldDivision, v))
}

// DivisionHasSuffix applies the HasSuffix predicate on the "division" field.
func DivisionHasSuffix(v string) predicate.Team {
	return predicate.Team(sql.FieldHasSuffix(FieldDivision, v))
}

// DivisionIsNil applies the IsNil predicate on the "division" field.
func DivisionIsNil() predicate.Team {
	return predicate.Team(sql.FieldIsNull(FieldDivision))
}

// DivisionNotNil applies the NotNil predicate on the "division" field.
func DivisionNotNil() predicate.Team {
	return predicate.Team(sql.FieldNotNull(FieldDivision))
}

// DivisionEqualFold applies the EqualFold predicate on the "division" field.
func DivisionEqualFold(v string) predicate.Team {
	return predicate.Team(sql.FieldEqualFold(FieldDivision, v))
}

// DivisionContainsFold applies the ContainsFold predicate on the "division" field.
func DivisionContainsFold(v string) predicate.Team {
	return predicate.Team(sql.FieldContainsFold(FieldDivision, v))
}

// AgeLevelEQ applies the EQ predicate on the "age_level" field.
func AgeLevelEQ(v string) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldAgeLevel, v))
}

// AgeLevelNEQ applies the NEQ predicate on the "age_level" field.
func AgeLevelNEQ(v string) predicate.Team {
	return predicate.Team(sql.FieldNEQ(FieldAgeLevel, v))
}

// AgeLevelIn applies the In predicate on the "age_level" field.
func AgeLevelIn(vs ...string) predicate.Team {
	return predicate.Team(sql.FieldIn(FieldAgeLevel, vs...))
}

// AgeLevelNotIn applies the NotIn predicate on the "age_level" field.
func AgeLevelNotIn(vs ...string) predicate.Team {
	return predicate.Team(sql.FieldNotIn(FieldAgeLevel, vs...))
}

// AgeLevelGT applies the GT predicate on the "age_level" field.
func AgeLevelGT(v string) predicate.Team {
	return predicate.Team(sql.FieldGT(FieldAgeLevel, v))
}

// AgeLevelGTE applies the GTE predicate on the "age_level" field.
func AgeLevelGTE(v string) predicate.Team {
	return predicate.Team(sql.FieldGTE(FieldAgeLevel, v))
}

// AgeLevelLT applies the LT predicate on the "age_level" field.
func AgeLevelLT(v string) predicate.Team {
	return predicate.Team(sql.FieldLT(FieldAgeLevel, v))
}

// AgeLevelLTE applies the LTE predicate on the "age_level" field.
func AgeLevelLTE(v string) predicate.Team {
	return predicate.Team(sql.FieldLTE(FieldAgeLevel, v))
}

// AgeLevelContains applies the Contains predicate on the "age_level" field.
func AgeLevelContains(v string) predicate.Team {
	return predicate.Team(sql.FieldContains(FieldAgeLevel, v))
}

// AgeLevelHasPrefix applies the HasPrefix predicate on the "age_level" field.
func AgeLevelHasPrefix(v string) predicate.Team {
	return predicate.Team(sql.FieldHasPrefix(FieldAgeLevel, v))
}

// AgeLevelHasSuffix applies the HasSuffix predicate on the "age_level" field.
func AgeLevelHasSuffix(v string) predicate.Team {
	return predicate.Team(sql.FieldHasSuffix(FieldAgeLevel, v))
}

// AgeLevelIsNil applies the IsNil predicate on the "age_level" field.
func AgeLevelIsNil() predicate.Team {
	return predicate.Team(sql.FieldIsNull(FieldAgeLevel))
}

// AgeLevelNotNil applies the NotNil predicate on the "age_level" field.
func AgeLevelNotNil() predicate.Team {
	return predicate.Team(sql.FieldNotNull(FieldAgeLevel))
}

// AgeLevelEqualFold applies the EqualFold predicate on the "age_level" field.
func AgeLevelEqualFold(v string) predicate.Team {
	return predicate.Team(sql.FieldEqualFold(FieldAgeLevel, v))
}

// AgeLevelContainsFold applies the ContainsFold predicate on the "age_level" field.
func AgeLevelContainsFold(v string) predicate.Team {
	return predicate.Team(sql.FieldContainsFold(FieldAgeLevel, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.Team {
	return predicate.Team(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.Team {
	return predicate.Team(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.Team {
	return predicate.Team(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.Team {
	return predicate.Team(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.Team {
	return predicate.Team(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.Team {
	return predicate.Team(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.Team {
	return predicate.Team(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.Team {
	return predicate.Team(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.Team {
	return predicate.Team(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.Team {
	return predicate.Team(sql.FieldHasSuffix(FieldCity, v))
}

// CityIsNil applies the IsNil predicate on the "city" field.
func CityIsNil() predicate.Team {
	return predicate.Team(sql.FieldIsNull(FieldCity))
}

// CityNotNil applies the NotNil predicate on the "city" field.
func CityNotNil() predicate.Team {
	return predicate.Team(sql.FieldNotNull(FieldCity))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.Team {
	return predicate.Team(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.Team {
	return predicate.Team(sql.FieldContainsFold(FieldCity, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.Team {
	return predicate.Team(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.Team {
	return predicate.Team(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.Team {
	return predicate.Team(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.Team {
	return predicate.Team(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.Team {
	return predicate.Team(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.Team {
	return predicate.Team(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.Team {
	return predicate.Team(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.Team {
	return predicate.Team(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.Team {
	return predicate.Team(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.Team {
	return predicate.Team(sql.FieldHasSuffix(FieldState, v))
}

// StateIsNil applies the IsNil predicate on the "state" field.
func StateIsNil() predicate.Team {
	return predicate.Team(sql.FieldIsNull(FieldState))
}

// StateNotNil applies the NotNil predicate on the "state" field.
func StateNotNil() predicate.Team {
	return predicate.Team(sql.FieldNotNull(FieldState))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.Team {
	return predicate.Team(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.Team {
	return predicate.Team(sql.FieldContainsFold(FieldState, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Team {
	return predicate.Team(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Team {
	return predicate.Team(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Team {
	return predicate.Team(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Team {
	return predicate.Team(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Team {
	return predicate.Team(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Team {
	return predicate.Team(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Team {
	return predicate.Team(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOrganization applies the HasEdge predicate on the "organization" edge.
func HasOrganization() predicate.Team {
	return predicate.Team(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OrganizationTable, OrganizationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrganizationWith applies the HasEdge predicate on the "organization" edge with a given conditions (other predicates).
func HasOrganizationWith(preds ...predicate.Organization) predicate.Team {
	return predicate.Team(func(s *sql.Selector) {
		step := newOrganizationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReviews applies the HasEdge predicate on the "reviews" edge.
func HasReviews() predicate.Team {
	return predicate.Team(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReviewsTable, ReviewsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReviewsWith applies the HasEdge predicate on the "reviews" edge with a given conditions (other predicates).
func HasReviewsWith(preds ...predicate.Review) predicate.Team {
	return predicate.Team(func(s *sql.Selector) {
		step := newReviewsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubscription applies the HasEdge predicate on the "subscription" edge.
func HasSubscription() predicate.Team {
	return predicate.Team(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, SubscriptionTable, SubscriptionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubscriptionWith applies the HasEdge predicate on the "subscription" edge with a given conditions (other predicates).
func HasSubscriptionWith(preds ...predicate.Subscription) predicate.Team {
	return predicate.Team(func(s *sql.Selector) {
		step := newSubscriptionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Team) predicate.Team {
	return predicate.Team(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Team) predicate.Team {
	return predicate.Team(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Team) predicate.Team {
	return predicate.Team(sql.NotPredicates(p))
}
