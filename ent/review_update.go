// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/squadscore/ent/flag"
	"github.com/jordanlanch/squadscore/ent/orgresponse"
	"github.com/jordanlanch/squadscore/ent/predicate"
	"github.com/jordanlanch/squadscore/ent/rating"
	"github.com/jordanlanch/squadscore/ent/review"
	"github.com/jordanlanch/squadscore/ent/team"
	"github.com/jordanlanch/squadscore/ent/user"
)

// ReviewUpdate is the builder for updating Review entities.
type ReviewUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewMutation
}

// Where appends a list predicates to the ReviewUpdate builder.
func (_u *ReviewUpdate) Where(ps ...predicate.Review) *ReviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReviewUpdate) SetUserID(v int) *ReviewUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableUserID(v *int) *ReviewUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *ReviewUpdate) SetTeamID(v int) *ReviewUpdate {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableTeamID(v *int) *ReviewUpdate {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ReviewUpdate) SetTitle(v string) *ReviewUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableTitle(v *string) *ReviewUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ReviewUpdate) SetBody(v string) *ReviewUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableBody(v *string) *ReviewUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetSeasonTerm sets the "season_term" field.
func (_u *ReviewUpdate) SetSeasonTerm(v string) *ReviewUpdate {
	_u.mutation.SetSeasonTerm(v)
	return _u
}

// SetNillableSeasonTerm sets the "season_term" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableSeasonTerm(v *string) *ReviewUpdate {
	if v != nil {
		_u.SetSeasonTerm(*v)
	}
	return _u
}

// SetSeasonYear sets the "season_year" field.
func (_u *ReviewUpdate) SetSeasonYear(v int) *ReviewUpdate {
	_u.mutation.ResetSeasonYear()
	_u.mutation.SetSeasonYear(v)
	return _u
}

// SetNillableSeasonYear sets the "season_year" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableSeasonYear(v *int) *ReviewUpdate {
	if v != nil {
		_u.SetSeasonYear(*v)
	}
	return _u
}

// AddSeasonYear adds value to the "season_year" field.
func (_u *ReviewUpdate) AddSeasonYear(v int) *ReviewUpdate {
	_u.mutation.AddSeasonYear(v)
	return _u
}

// SetAgeLevelAtReview sets the "age_level_at_review" field.
func (_u *ReviewUpdate) SetAgeLevelAtReview(v string) *ReviewUpdate {
	_u.mutation.SetAgeLevelAtReview(v)
	return _u
}

// SetNillableAgeLevelAtReview sets the "age_level_at_review" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableAgeLevelAtReview(v *string) *ReviewUpdate {
	if v != nil {
		_u.SetAgeLevelAtReview(*v)
	}
	return _u
}

// ClearAgeLevelAtReview clears the value of the "age_level_at_review" field.
func (_u *ReviewUpdate) ClearAgeLevelAtReview() *ReviewUpdate {
	_u.mutation.ClearAgeLevelAtReview()
	return _u
}

// SetIsPublic sets the "is_public" field.
func (_u *ReviewUpdate) SetIsPublic(v bool) *ReviewUpdate {
	_u.mutation.SetIsPublic(v)
	return _u
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableIsPublic(v *bool) *ReviewUpdate {
	if v != nil {
		_u.SetIsPublic(*v)
	}
	return _u
}

// SetIsHighlight sets the "is_highlight" field.
func (_u *ReviewUpdate) SetIsHighlight(v bool) *ReviewUpdate {
	_u.mutation.SetIsHighlight(v)
	return _u
}

// SetNillableIsHighlight sets the "is_highlight" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableIsHighlight(v *bool) *ReviewUpdate {
	if v != nil {
		_u.SetIsHighlight(*v)
	}
	return _u
}

// SetEditedAt sets the "edited_at" field.
func (_u *ReviewUpdate) SetEditedAt(v time.Time) *ReviewUpdate {
	_u.mutation.SetEditedAt(v)
	return _u
}

// SetNillableEditedAt sets the "edited_at" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableEditedAt(v *time.Time) *ReviewUpdate {
	if v != nil {
		_u.SetEditedAt(*v)
	}
	return _u
}

// ClearEditedAt clears the value of the "edited_at" field.
func (_u *ReviewUpdate) ClearEditedAt() *ReviewUpdate {
	_u.mutation.ClearEditedAt()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ReviewUpdate) SetUser(v *User) *ReviewUpdate {
	return _u.SetUserID(v.ID)
}

// SetTeam sets the "team" edge to the Team entity.
func (_u *ReviewUpdate) SetTeam(v *Team) *ReviewUpdate {
	return _u.SetTeamID(v.ID)
}

// SetRatingID sets the "rating" edge to the Rating entity by ID.
func (_u *ReviewUpdate) SetRatingID(id int) *ReviewUpdate {
	_u.mutation.SetRatingID(id)
	return _u
}

// SetNillableRatingID sets the "rating" edge to the Rating entity by ID if the given value is not nil.
func (_u *ReviewUpdate) SetNillableRatingID(id *int) *ReviewUpdate {
	if id != nil {
		_u = _u.SetRatingID(*id)
	}
	return _u
}

// SetRating sets the "rating" edge to the Rating entity.
func (_u *ReviewUpdate) SetRating(v *Rating) *ReviewUpdate {
	return _u.SetRatingID(v.ID)
}

// SetOrgResponseID sets the "org_response" edge to the OrgResponse entity by ID.
func (_u *ReviewUpdate) SetOrgResponseID(id int) *ReviewUpdate {
	_u.mutation.SetOrgResponseID(id)
	return _u
}

// SetNillableOrgResponseID sets the "org_response" edge to the OrgResponse entity by ID if the given value is not nil.
func (_u *ReviewUpdate) SetNillableOrgResponseID(id *int) *ReviewUpdate {
	if id != nil {
		_u = _u.SetOrgResponseID(*id)
	}
	return _u
}

// SetOrgResponse sets the "org_response" edge to the OrgResponse entity.
func (_u *ReviewUpdate) SetOrgResponse(v *OrgResponse) *ReviewUpdate {
	return _u.SetOrgResponseID(v.ID)
}

// AddFlagIDs adds the "flags" edge to the Flag entity by IDs.
func (_u *ReviewUpdate) AddFlagIDs(ids ...int) *ReviewUpdate {
	_u.mutation.AddFlagIDs(ids...)
	return _u
}

// AddFlags adds the "flags" edges to the Flag entity.
func (_u *ReviewUpdate) AddFlags(v ...*Flag) *ReviewUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFlagIDs(ids...)
}

// Mutation returns the ReviewMutation object of the builder.
func (_u *ReviewUpdate) Mutation() *ReviewMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ReviewUpdate) ClearUser() *ReviewUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearTeam clears the "team" edge to the Team entity.
func (_u *ReviewUpdate) ClearTeam() *ReviewUpdate {
	_u.mutation.ClearTeam()
	return _u
}

// ClearRating clears the "rating" edge to the Rating entity.
func (_u *ReviewUpdate) ClearRating() *ReviewUpdate {
	_u.mutation.ClearRating()
	return _u
}

// ClearOrgResponse clears the "org_response" edge to the OrgResponse entity.
func (_u *ReviewUpdate) ClearOrgResponse() *ReviewUpdate {
	_u.mutation.ClearOrgResponse()
	return _u
}

// ClearFlags clears all "flags" edges to the Flag entity.
func (_u *ReviewUpdate) ClearFlags() *ReviewUpdate {
	_u.mutation.ClearFlags()
	return _u
}

// RemoveFlagIDs removes the "flags" edge to Flag entities by IDs.
func (_u *ReviewUpdate) RemoveFlagIDs(ids ...int) *ReviewUpdate {
	_u.mutation.RemoveFlagIDs(ids...)
	return _u
}

// RemoveFlags removes "flags" edges to Flag entities.
func (_u *ReviewUpdate) RemoveFlags(v ...*Flag) *ReviewUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFlagIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := review.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Review.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TeamID(); ok {
		if err := review.TeamIDValidator(v); err != nil {
			return &ValidationError{Name: "team_id", err: fmt.Errorf(`ent: validator failed for field "Review.team_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := review.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Review.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := review.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Review.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SeasonTerm(); ok {
		if err := review.SeasonTermValidator(v); err != nil {
			return &ValidationError{Name: "season_term", err: fmt.Errorf(`ent: validator failed for field "Review.season_term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SeasonYear(); ok {
		if err := review.SeasonYearValidator(v); err != nil {
			return &ValidationError{Name: "season_year", err: fmt.Errorf(`ent: validator failed for field "Review.season_year": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Review.user"`)
	}
	if _u.mutation.TeamCleared() && len(_u.mutation.TeamIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Review.team"`)
	}
	return nil
}

func (_u *ReviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(review.Table, review.Columns, sqlgraph.NewFieldSpec(review.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(review.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(review.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.SeasonTerm(); ok {
		_spec.SetField(review.FieldSeasonTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.SeasonYear(); ok {
		_spec.SetField(review.FieldSeasonYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeasonYear(); ok {
		_spec.AddField(review.FieldSeasonYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AgeLevelAtReview(); ok {
		_spec.SetField(review.FieldAgeLevelAtReview, field.TypeString, value)
	}
	if _u.mutation.AgeLevelAtReviewCleared() {
		_spec.ClearField(review.FieldAgeLevelAtReview, field.TypeString)
	}
	if value, ok := _u.mutation.IsPublic(); ok {
		_spec.SetField(review.FieldIsPublic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsHighlight(); ok {
		_spec.SetField(review.FieldIsHighlight, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EditedAt(); ok {
		_spec.SetField(review.FieldEditedAt, field.TypeTime, value)
	}
	if _u.mutation.EditedAtCleared() {
		_spec.ClearField(review.FieldEditedAt, field.TypeTime)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.UserTable,
			Columns: []string{review.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.UserTable,
			Columns: []string{review.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TeamCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.TeamTable,
			Columns: []string{review.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.TeamTable,
			Columns: []string{review.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RatingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   review.RatingTable,
			Columns: []string{review.RatingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rating.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RatingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   review.RatingTable,
			Columns: []string{review.RatingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rating.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrgResponseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   review.OrgResponseTable,
			Columns: []string{review.OrgResponseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orgresponse.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrgResponseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   review.OrgResponseTable,
			Columns: []string{review.OrgResponseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orgresponse.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FlagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   review.FlagsTable,
			Columns: []string{review.FlagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flag.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFlagsIDs(); len(nodes) > 0 && !_u.mutation.FlagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   review.FlagsTable,
			Columns: []string{review.FlagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flag.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FlagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   review.FlagsTable,
			Columns: []string{review.FlagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flag.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{review.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewUpdateOne is the builder for updating a single Review entity.
type ReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewMutation
}

// SetUserID sets the "user_id" field.
func (_u *ReviewUpdateOne) SetUserID(v int) *ReviewUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableUserID(v *int) *ReviewUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *ReviewUpdateOne) SetTeamID(v int) *ReviewUpdateOne {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableTeamID(v *int) *ReviewUpdateOne {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ReviewUpdateOne) SetTitle(v string) *ReviewUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableTitle(v *string) *ReviewUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ReviewUpdateOne) SetBody(v string) *ReviewUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableBody(v *string) *ReviewUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetSeasonTerm sets the "season_term" field.
func (_u *ReviewUpdateOne) SetSeasonTerm(v string) *ReviewUpdateOne {
	_u.mutation.SetSeasonTerm(v)
	return _u
}

// SetNillableSeasonTerm sets the "season_term" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableSeasonTerm(v *string) *ReviewUpdateOne {
	if v != nil {
		_u.SetSeasonTerm(*v)
	}
	return _u
}

// SetSeasonYear sets the "season_year" field.
func (_u *ReviewUpdateOne) SetSeasonYear(v int) *ReviewUpdateOne {
	_u.mutation.ResetSeasonYear()
	_u.mutation.SetSeasonYear(v)
	return _u
}

// SetNillableSeasonYear sets the "season_year" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableSeasonYear(v *int) *ReviewUpdateOne {
	if v != nil {
		_u.SetSeasonYear(*v)
	}
	return _u
}

// AddSeasonYear adds value to the "season_year" field.
func (_u *ReviewUpdateOne) AddSeasonYear(v int) *ReviewUpdateOne {
	_u.mutation.AddSeasonYear(v)
	return _u
}

// SetAgeLevelAtReview sets the "age_level_at_review" field.
func (_u *ReviewUpdateOne) SetAgeLevelAtReview(v string) *ReviewUpdateOne {
	_u.mutation.SetAgeLevelAtReview(v)
	return _u
}

// SetNillableAgeLevelAtReview sets the "age_level_at_review" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableAgeLevelAtReview(v *string) *ReviewUpdateOne {
	if v != nil {
		_u.SetAgeLevelAtReview(*v)
	}
	return _u
}

// ClearAgeLevelAtReview clears the value of the "age_level_at_review" field.
func (_u *ReviewUpdateOne) ClearAgeLevelAtReview() *ReviewUpdateOne {
	_u.mutation.ClearAgeLevelAtReview()
	return _u
}

// SetIsPublic sets the "is_public" field.
func (_u *ReviewUpdateOne) SetIsPublic(v bool) *ReviewUpdateOne {
	_u.mutation.SetIsPublic(v)
	return _u
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableIsPublic(v *bool) *ReviewUpdateOne {
	if v != nil {
		_u.SetIsPublic(*v)
	}
	return _u
}

// SetIsHighlight sets the "is_highlight" field.
func (_u *ReviewUpdateOne) SetIsHighlight(v bool) *ReviewUpdateOne {
	_u.mutation.SetIsHighlight(v)
	return _u
}

// SetNillableIsHighlight sets the "is_highlight" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableIsHighlight(v *bool) *ReviewUpdateOne {
	if v != nil {
		_u.SetIsHighlight(*v)
	}
	return _u
}

// SetEditedAt sets the "edited_at" field.
func (_u *ReviewUpdateOne) SetEditedAt(v time.Time) *ReviewUpdateOne {
	_u.mutation.SetEditedAt(v)
	return _u
}

// SetNillableEditedAt sets the "edited_at" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableEditedAt(v *time.Time) *ReviewUpdateOne {
	if v != nil {
		_u.SetEditedAt(*v)
	}
	return _u
}

// ClearEditedAt clears the value of the "edited_at" field.
func (_u *ReviewUpdateOne) ClearEditedAt() *ReviewUpdateOne {
	_u.mutation.ClearEditedAt()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ReviewUpdateOne) SetUser(v *User) *ReviewUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetTeam sets the "team" edge to the Team entity.
func (_u *ReviewUpdateOne) SetTeam(v *Team) *ReviewUpdateOne {
	return _u.SetTeamID(v.ID)
}

// SetRatingID sets the "rating" edge to the Rating entity by ID.
func (_u *ReviewUpdateOne) SetRatingID(id int) *ReviewUpdateOne {
	_u.mutation.SetRatingID(id)
	return _u
}

// SetNillableRatingID sets the "rating" edge to the Rating entity by ID if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableRatingID(id *int) *ReviewUpdateOne {
	if id != nil {
		_u = _u.SetRatingID(*id)
	}
	return _u
}

// SetRating sets the "rating" edge to the Rating entity.
func (_u *ReviewUpdateOne) SetRating(v *Rating) *ReviewUpdateOne {
	return _u.SetRatingID(v.ID)
}

// SetOrgResponseID sets the "org_response" edge to the OrgResponse entity by ID.
func (_u *ReviewUpdateOne) SetOrgResponseID(id int) *ReviewUpdateOne {
	_u.mutation.SetOrgResponseID(id)
	return _u
}

// SetNillableOrgResponseID sets the "org_response" edge to the OrgResponse entity by ID if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableOrgResponseID(id *int) *ReviewUpdateOne {
	if id != nil {
		_u = _u.SetOrgResponseID(*id)
	}
	return _u
}

// SetOrgResponse sets the "org_response" edge to the OrgResponse entity.
func (_u *ReviewUpdateOne) SetOrgResponse(v *OrgResponse) *ReviewUpdateOne {
	return _u.SetOrgResponseID(v.ID)
}

// AddFlagIDs adds the "flags" edge to the Flag entity by IDs.
func (_u *ReviewUpdateOne) AddFlagIDs(ids ...int) *ReviewUpdateOne {
	_u.mutation.AddFlagIDs(ids...)
	return _u
}

// AddFlags adds the "flags" edges to the Flag entity.
func (_u *ReviewUpdateOne) AddFlags(v ...*Flag) *ReviewUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFlagIDs(ids...)
}

// Mutation returns the ReviewMutation object of the builder.
func (_u *ReviewUpdateOne) Mutation() *ReviewMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ReviewUpdateOne) ClearUser() *ReviewUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearTeam clears the "team" edge to the Team entity.
func (_u *ReviewUpdateOne) ClearTeam() *ReviewUpdateOne {
	_u.mutation.ClearTeam()
	return _u
}

// ClearRating clears the "rating" edge to the Rating entity.
func (_u *ReviewUpdateOne) ClearRating() *ReviewUpdateOne {
	_u.mutation.ClearRating()
	return _u
}

// ClearOrgResponse clears the "org_response" edge to the OrgResponse entity.
func (_u *ReviewUpdateOne) ClearOrgResponse() *ReviewUpdateOne {
	_u.mutation.ClearOrgResponse()
	return _u
}

// ClearFlags clears all "flags" edges to the Flag entity.
func (_u *ReviewUpdateOne) ClearFlags() *ReviewUpdateOne {
	_u.mutation.ClearFlags()
	return _u
}

// RemoveFlagIDs removes the "flags" edge to Flag entities by IDs.
func (_u *ReviewUpdateOne) RemoveFlagIDs(ids ...int) *ReviewUpdateOne {
	_u.mutation.RemoveFlagIDs(ids...)
	return _u
}

// RemoveFlags removes "flags" edges to Flag entities.
func (_u *ReviewUpdateOne) RemoveFlags(v ...*Flag) *ReviewUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFlagIDs(ids...)
}

// Where appends a list predicates to the ReviewUpdate builder.
func (_u *ReviewUpdateOne) Where(ps ...predicate.Review) *ReviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewUpdateOne) Select(field string, fields ...string) *ReviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Review entity.
func (_u *ReviewUpdateOne) Save(ctx context.Context) (*Review, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewUpdateOne) SaveX(ctx context.Context) *Review {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := review.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Review.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TeamID(); ok {
		if err := review.TeamIDValidator(v); err != nil {
			return &ValidationError{Name: "team_id", err: fmt.Errorf(`ent: validator failed for field "Review.team_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := review.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Review.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := review.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Review.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SeasonTerm(); ok {
		if err := review.SeasonTermValidator(v); err != nil {
			return &ValidationError{Name: "season_term", err: fmt.Errorf(`ent: validator failed for field "Review.season_term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SeasonYear(); ok {
		if err := review.SeasonYearValidator(v); err != nil {
			return &ValidationError{Name: "season_year", err: fmt.Errorf(`ent: validator failed for field "Review.season_year": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Review.user"`)
	}
	if _u.mutation.TeamCleared() && len(_u.mutation.TeamIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Review.team"`)
	}
	return nil
}

func (_u *ReviewUpdateOne) sqlSave(ctx context.Context) (_node *Review, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(review.Table, review.Columns, sqlgraph.NewFieldSpec(review.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Review.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, review.FieldID)
		for _, f := range fields {
			if !review.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != review.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(review.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(review.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.SeasonTerm(); ok {
		_spec.SetField(review.FieldSeasonTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.SeasonYear(); ok {
		_spec.SetField(review.FieldSeasonYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeasonYear(); ok {
		_spec.AddField(review.FieldSeasonYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AgeLevelAtReview(); ok {
		_spec.SetField(review.FieldAgeLevelAtReview, field.TypeString, value)
	}
	if _u.mutation.AgeLevelAtReviewCleared() {
		_spec.ClearField(review.FieldAgeLevelAtReview, field.TypeString)
	}
	if value, ok := _u.mutation.IsPublic(); ok {
		_spec.SetField(review.FieldIsPublic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsHighlight(); ok {
		_spec.SetField(review.FieldIsHighlight, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EditedAt(); ok {
		_spec.SetField(review.FieldEditedAt, field.TypeTime, value)
	}
	if _u.mutation.EditedAtCleared() {
		_spec.ClearField(review.FieldEditedAt, field.TypeTime)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.UserTable,
			Columns: []string{review.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.UserTable,
			Columns: []string{review.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TeamCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.TeamTable,
			Columns: []string{review.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.TeamTable,
			Columns: []string{review.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RatingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   review.RatingTable,
			Columns: []string{review.RatingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rating.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RatingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   review.RatingTable,
			Columns: []string{review.RatingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rating.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrgResponseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   review.OrgResponseTable,
			Columns: []string{review.OrgResponseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orgresponse.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrgResponseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   review.OrgResponseTable,
			Columns: []string{review.OrgResponseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orgresponse.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FlagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   review.FlagsTable,
			Columns: []string{review.FlagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flag.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFlagsIDs(); len(nodes) > 0 && !_u.mutation.FlagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   review.FlagsTable,
			Columns: []string{review.FlagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flag.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FlagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   review.FlagsTable,
			Columns: []string{review.FlagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flag.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Review{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{review.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
