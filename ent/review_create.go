// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/squadscore/ent/flag"
	"github.com/jordanlanch/squadscore/ent/orgresponse"
	"github.com/jordanlanch/squadscore/ent/rating"
	"github.com/jordanlanch/squadscore/ent/review"
	"github.com/jordanlanch/squadscore/ent/team"
	"github.com/jordanlanch/squadscore/ent/user"
)

// ReviewCreate is the builder for creating a Review entity.
type ReviewCreate struct {
	config
	mutation *ReviewMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ReviewCreate) SetUserID(v int) *ReviewCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTeamID sets the "team_id" field.
func (_c *ReviewCreate) SetTeamID(v int) *ReviewCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ReviewCreate) SetTitle(v string) *ReviewCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *ReviewCreate) SetBody(v string) *ReviewCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetSeasonTerm sets the "season_term" field.
func (_c *ReviewCreate) SetSeasonTerm(v string) *ReviewCreate {
	_c.mutation.SetSeasonTerm(v)
	return _c
}

// SetSeasonYear sets the "season_year" field.
func (_c *ReviewCreate) SetSeasonYear(v int) *ReviewCreate {
	_c.mutation.SetSeasonYear(v)
	return _c
}

// SetAgeLevelAtReview sets the "age_level_at_review" field.
func (_c *ReviewCreate) SetAgeLevelAtReview(v string) *ReviewCreate {
	_c.mutation.SetAgeLevelAtReview(v)
	return _c
}

// SetNillableAgeLevelAtReview sets the "age_level_at_review" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableAgeLevelAtReview(v *string) *ReviewCreate {
	if v != nil {
		_c.SetAgeLevelAtReview(*v)
	}
	return _c
}

// SetIsPublic sets the "is_public" field.
func (_c *ReviewCreate) SetIsPublic(v bool) *ReviewCreate {
	_c.mutation.SetIsPublic(v)
	return _c
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableIsPublic(v *bool) *ReviewCreate {
	if v != nil {
		_c.SetIsPublic(*v)
	}
	return _c
}

// SetIsHighlight sets the "is_highlight" field.
func (_c *ReviewCreate) SetIsHighlight(v bool) *ReviewCreate {
	_c.mutation.SetIsHighlight(v)
	return _c
}

// SetNillableIsHighlight sets the "is_highlight" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableIsHighlight(v *bool) *ReviewCreate {
	if v != nil {
		_c.SetIsHighlight(*v)
	}
	return _c
}

// SetEditedAt sets the "edited_at" field.
func (_c *ReviewCreate) SetEditedAt(v time.Time) *ReviewCreate {
	_c.mutation.SetEditedAt(v)
	return _c
}

// SetNillableEditedAt sets the "edited_at" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableEditedAt(v *time.Time) *ReviewCreate {
	if v != nil {
		_c.SetEditedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReviewCreate) SetCreatedAt(v time.Time) *ReviewCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableCreatedAt(v *time.Time) *ReviewCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *ReviewCreate) SetUser(v *User) *ReviewCreate {
	return _c.SetUserID(v.ID)
}

// SetTeam sets the "team" edge to the Team entity.
func (_c *ReviewCreate) SetTeam(v *Team) *ReviewCreate {
	return _c.SetTeamID(v.ID)
}

// SetRatingID sets the "rating" edge to the Rating entity by ID.
func (_c *ReviewCreate) SetRatingID(id int) *ReviewCreate {
	_c.mutation.SetRatingID(id)
	return _c
}

// SetNillableRatingID sets the "rating" edge to the Rating entity by ID if the given value is not nil.
func (_c *ReviewCreate) SetNillableRatingID(id *int) *ReviewCreate {
	if id != nil {
		_c = _c.SetRatingID(*id)
	}
	return _c
}

// SetRating sets the "rating" edge to the Rating entity.
func (_c *ReviewCreate) SetRating(v *Rating) *ReviewCreate {
	return _c.SetRatingID(v.ID)
}

// SetOrgResponseID sets the "org_response" edge to the OrgResponse entity by ID.
func (_c *ReviewCreate) SetOrgResponseID(id int) *ReviewCreate {
	_c.mutation.SetOrgResponseID(id)
	return _c
}

// SetNillableOrgResponseID sets the "org_response" edge to the OrgResponse entity by ID if the given value is not nil.
func (_c *ReviewCreate) SetNillableOrgResponseID(id *int) *ReviewCreate {
	if id != nil {
		_c = _c.SetOrgResponseID(*id)
	}
	return _c
}

// SetOrgResponse sets the "org_response" edge to the OrgResponse entity.
func (_c *ReviewCreate) SetOrgResponse(v *OrgResponse) *ReviewCreate {
	return _c.SetOrgResponseID(v.ID)
}

// AddFlagIDs adds the "flags" edge to the Flag entity by IDs.
func (_c *ReviewCreate) AddFlagIDs(ids ...int) *ReviewCreate {
	_c.mutation.AddFlagIDs(ids...)
	return _c
}

// AddFlags adds the "flags" edges to the Flag entity.
func (_c *ReviewCreate) AddFlags(v ...*Flag) *ReviewCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFlagIDs(ids...)
}

// Mutation returns the ReviewMutation object of the builder.
func (_c *ReviewCreate) Mutation() *ReviewMutation {
	return _c.mutation
}

// Save creates the Review in the database.
func (_c *ReviewCreate) Save(ctx context.Context) (*Review, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewCreate) SaveX(ctx context.Context) *Review {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewCreate) defaults() {
	if _, ok := _c.mutation.IsPublic(); !ok {
		v := review.DefaultIsPublic
		_c.mutation.SetIsPublic(v)
	}
	if _, ok := _c.mutation.IsHighlight(); !ok {
		v := review.DefaultIsHighlight
		_c.mutation.SetIsHighlight(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := review.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Review.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := review.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Review.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "Review.team_id"`)}
	}
	if v, ok := _c.mutation.TeamID(); ok {
		if err := review.TeamIDValidator(v); err != nil {
			return &ValidationError{Name: "team_id", err: fmt.Errorf(`ent: validator failed for field "Review.team_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Review.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := review.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Review.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "Review.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := review.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Review.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SeasonTerm(); !ok {
		return &ValidationError{Name: "season_term", err: errors.New(`ent: missing required field "Review.season_term"`)}
	}
	if v, ok := _c.mutation.SeasonTerm(); ok {
		if err := review.SeasonTermValidator(v); err != nil {
			return &ValidationError{Name: "season_term", err: fmt.Errorf(`ent: validator failed for field "Review.season_term": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SeasonYear(); !ok {
		return &ValidationError{Name: "season_year", err: errors.New(`ent: missing required field "Review.season_year"`)}
	}
	if v, ok := _c.mutation.SeasonYear(); ok {
		if err := review.SeasonYearValidator(v); err != nil {
			return &ValidationError{Name: "season_year", err: fmt.Errorf(`ent: validator failed for field "Review.season_year": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPublic(); !ok {
		return &ValidationError{Name: "is_public", err: errors.New(`ent: missing required field "Review.is_public"`)}
	}
	if _, ok := _c.mutation.IsHighlight(); !ok {
		return &ValidationError{Name: "is_highlight", err: errors.New(`ent: missing required field "Review.is_highlight"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Review.created_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Review.user"`)}
	}
	if len(_c.mutation.TeamIDs()) == 0 {
		return &ValidationError{Name: "team", err: errors.New(`ent: missing required edge "Review.team"`)}
	}
	return nil
}

func (_c *ReviewCreate) sqlSave(ctx context.Context) (*Review, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewCreate) createSpec() (*Review, *sqlgraph.CreateSpec) {
	var (
		_node = &Review{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(review.Table, sqlgraph.NewFieldSpec(review.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(review.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(review.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.SeasonTerm(); ok {
		_spec.SetField(review.FieldSeasonTerm, field.TypeString, value)
		_node.SeasonTerm = value
	}
	if value, ok := _c.mutation.SeasonYear(); ok {
		_spec.SetField(review.FieldSeasonYear, field.TypeInt, value)
		_node.SeasonYear = value
	}
	if value, ok := _c.mutation.AgeLevelAtReview(); ok {
		_spec.SetField(review.FieldAgeLevelAtReview, field.TypeString, value)
		_node.AgeLevelAtReview = value
	}
	if value, ok := _c.mutation.IsPublic(); ok {
		_spec.SetField(review.FieldIsPublic, field.TypeBool, value)
		_node.IsPublic = value
	}
	if value, ok := _c.mutation.IsHighlight(); ok {
		_spec.SetField(review.FieldIsHighlight, field.TypeBool, value)
		_node.IsHighlight = value
	}
	if value, ok := _c.mutation.EditedAt(); ok {
		_spec.SetField(review.FieldEditedAt, field.TypeTime, value)
		_node.EditedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(review.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TeamIDs(); len(nodes) > 0 {
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
		_node.TeamID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RatingIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OrgResponseIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FlagsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReviewCreateBulk is the builder for creating many Review entities in bulk.
type ReviewCreateBulk struct {
	config
	err      error
	builders []*ReviewCreate
}

// Save creates the Review entities in the database.
func (_c *ReviewCreateBulk) Save(ctx context.Context) ([]*Review, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Review, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReviewCreateBulk) SaveX(ctx context.Context) []*Review {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
