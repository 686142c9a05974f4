// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/squadscore/ent/rating"
	"github.com/jordanlanch/squadscore/ent/review"
)

// RatingCreate is the builder for creating a Rating entity.
type RatingCreate struct {
	config
	mutation *RatingMutation
	hooks    []Hook
}

// SetReviewID sets the "review_id" field.
func (_c *RatingCreate) SetReviewID(v int) *RatingCreate {
	_c.mutation.SetReviewID(v)
	return _c
}

// SetCoaching sets the "coaching" field.
func (_c *RatingCreate) SetCoaching(v int) *RatingCreate {
	_c.mutation.SetCoaching(v)
	return _c
}

// SetDevelopment sets the "development" field.
func (_c *RatingCreate) SetDevelopment(v int) *RatingCreate {
	_c.mutation.SetDevelopment(v)
	return _c
}

// SetTransparency sets the "transparency" field.
func (_c *RatingCreate) SetTransparency(v int) *RatingCreate {
	_c.mutation.SetTransparency(v)
	return _c
}

// SetCulture sets the "culture" field.
func (_c *RatingCreate) SetCulture(v int) *RatingCreate {
	_c.mutation.SetCulture(v)
	return _c
}

// SetSafety sets the "safety" field.
func (_c *RatingCreate) SetSafety(v int) *RatingCreate {
	_c.mutation.SetSafety(v)
	return _c
}

// SetOverall sets the "overall" field.
func (_c *RatingCreate) SetOverall(v float64) *RatingCreate {
	_c.mutation.SetOverall(v)
	return _c
}

// SetReview sets the "review" edge to the Review entity.
func (_c *RatingCreate) SetReview(v *Review) *RatingCreate {
	return _c.SetReviewID(v.ID)
}

// Mutation returns the RatingMutation object of the builder.
func (_c *RatingCreate) Mutation() *RatingMutation {
	return _c.mutation
}

// Save creates the Rating in the database.
func (_c *RatingCreate) Save(ctx context.Context) (*Rating, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RatingCreate) SaveX(ctx context.Context) *Rating {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RatingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RatingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RatingCreate) check() error {
	if _, ok := _c.mutation.ReviewID(); !ok {
		return &ValidationError{Name: "review_id", err: errors.New(`ent: missing required field "Rating.review_id"`)}
	}
	if v, ok := _c.mutation.ReviewID(); ok {
		if err := rating.ReviewIDValidator(v); err != nil {
			return &ValidationError{Name: "review_id", err: fmt.Errorf(`ent: validator failed for field "Rating.review_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Coaching(); !ok {
		return &ValidationError{Name: "coaching", err: errors.New(`ent: missing required field "Rating.coaching"`)}
	}
	if v, ok := _c.mutation.Coaching(); ok {
		if err := rating.CoachingValidator(v); err != nil {
			return &ValidationError{Name: "coaching", err: fmt.Errorf(`ent: validator failed for field "Rating.coaching": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Development(); !ok {
		return &ValidationError{Name: "development", err: errors.New(`ent: missing required field "Rating.development"`)}
	}
	if v, ok := _c.mutation.Development(); ok {
		if err := rating.DevelopmentValidator(v); err != nil {
			return &ValidationError{Name: "development", err: fmt.Errorf(`ent: validator failed for field "Rating.development": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Transparency(); !ok {
		return &ValidationError{Name: "transparency", err: errors.New(`ent: missing required field "Rating.transparency"`)}
	}
	if v, ok := _c.mutation.Transparency(); ok {
		if err := rating.TransparencyValidator(v); err != nil {
			return &ValidationError{Name: "transparency", err: fmt.Errorf(`ent: validator failed for field "Rating.transparency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Culture(); !ok {
		return &ValidationError{Name: "culture", err: errors.New(`ent: missing required field "Rating.culture"`)}
	}
	if v, ok := _c.mutation.Culture(); ok {
		if err := rating.CultureValidator(v); err != nil {
			return &ValidationError{Name: "culture", err: fmt.Errorf(`ent: validator failed for field "Rating.culture": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Safety(); !ok {
		return &ValidationError{Name: "safety", err: errors.New(`ent: missing required field "Rating.safety"`)}
	}
	if v, ok := _c.mutation.Safety(); ok {
		if err := rating.SafetyValidator(v); err != nil {
			return &ValidationError{Name: "safety", err: fmt.Errorf(`ent: validator failed for field "Rating.safety": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Overall(); !ok {
		return &ValidationError{Name: "overall", err: errors.New(`ent: missing required field "Rating.overall"`)}
	}
	if len(_c.mutation.ReviewIDs()) == 0 {
		return &ValidationError{Name: "review", err: errors.New(`ent: missing required edge "Rating.review"`)}
	}
	return nil
}

func (_c *RatingCreate) sqlSave(ctx context.Context) (*Rating, error) {
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

func (_c *RatingCreate) createSpec() (*Rating, *sqlgraph.CreateSpec) {
	var (
		_node = &Rating{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rating.Table, sqlgraph.NewFieldSpec(rating.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Coaching(); ok {
		_spec.SetField(rating.FieldCoaching, field.TypeInt, value)
		_node.Coaching = value
	}
	if value, ok := _c.mutation.Development(); ok {
		_spec.SetField(rating.FieldDevelopment, field.TypeInt, value)
		_node.Development = value
	}
	if value, ok := _c.mutation.Transparency(); ok {
		_spec.SetField(rating.FieldTransparency, field.TypeInt, value)
		_node.Transparency = value
	}
	if value, ok := _c.mutation.Culture(); ok {
		_spec.SetField(rating.FieldCulture, field.TypeInt, value)
		_node.Culture = value
	}
	if value, ok := _c.mutation.Safety(); ok {
		_spec.SetField(rating.FieldSafety, field.TypeInt, value)
		_node.Safety = value
	}
	if value, ok := _c.mutation.Overall(); ok {
		_spec.SetField(rating.FieldOverall, field.TypeFloat64, value)
		_node.Overall = value
	}
	if nodes := _c.mutation.ReviewIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   rating.ReviewTable,
			Columns: []string{rating.ReviewColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReviewID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RatingCreateBulk is the builder for creating many Rating entities in bulk.
type RatingCreateBulk struct {
	config
	err      error
	builders []*RatingCreate
}

// Save creates the Rating entities in the database.
func (_c *RatingCreateBulk) Save(ctx context.Context) ([]*Rating, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Rating, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RatingMutation)
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
func (_c *RatingCreateBulk) SaveX(ctx context.Context) []*Rating {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RatingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RatingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
