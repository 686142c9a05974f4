// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/squadscore/ent/predicate"
	"github.com/jordanlanch/squadscore/ent/rating"
	"github.com/jordanlanch/squadscore/ent/review"
)

// RatingUpdate is the builder for updating Rating entities.
type RatingUpdate struct {
	config
	hooks    []Hook
	mutation *RatingMutation
}

// Where appends a list predicates to the RatingUpdate builder.
func (_u *RatingUpdate) Where(ps ...predicate.Rating) *RatingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReviewID sets the "review_id" field.
func (_u *RatingUpdate) SetReviewID(v int) *RatingUpdate {
	_u.mutation.SetReviewID(v)
	return _u
}

// SetNillableReviewID sets the "review_id" field if the given value is not nil.
func (_u *RatingUpdate) SetNillableReviewID(v *int) *RatingUpdate {
	if v != nil {
		_u.SetReviewID(*v)
	}
	return _u
}

// SetCoaching sets the "coaching" field.
func (_u *RatingUpdate) SetCoaching(v int) *RatingUpdate {
	_u.mutation.ResetCoaching()
	_u.mutation.SetCoaching(v)
	return _u
}

// SetNillableCoaching sets the "coaching" field if the given value is not nil.
func (_u *RatingUpdate) SetNillableCoaching(v *int) *RatingUpdate {
	if v != nil {
		_u.SetCoaching(*v)
	}
	return _u
}

// AddCoaching adds value to the "coaching" field.
func (_u *RatingUpdate) AddCoaching(v int) *RatingUpdate {
	_u.mutation.AddCoaching(v)
	return _u
}

// SetDevelopment sets the "development" field.
func (_u *RatingUpdate) SetDevelopment(v int) *RatingUpdate {
	_u.mutation.ResetDevelopment()
	_u.mutation.SetDevelopment(v)
	return _u
}

// SetNillableDevelopment sets the "development" field if the given value is not nil.
func (_u *RatingUpdate) SetNillableDevelopment(v *int) *RatingUpdate {
	if v != nil {
		_u.SetDevelopment(*v)
	}
	return _u
}

// AddDevelopment adds value to the "development" field.
func (_u *RatingUpdate) AddDevelopment(v int) *RatingUpdate {
	_u.mutation.AddDevelopment(v)
	return _u
}

// SetTransparency sets the "transparency" field.
func (_u *RatingUpdate) SetTransparency(v int) *RatingUpdate {
	_u.mutation.ResetTransparency()
	_u.mutation.SetTransparency(v)
	return _u
}

// SetNillableTransparency sets the "transparency" field if the given value is not nil.
func (_u *RatingUpdate) SetNillableTransparency(v *int) *RatingUpdate {
	if v != nil {
		_u.SetTransparency(*v)
	}
	return _u
}

// AddTransparency adds value to the "transparency" field.
func (_u *RatingUpdate) AddTransparency(v int) *RatingUpdate {
	_u.mutation.AddTransparency(v)
	return _u
}

// SetCulture sets the "culture" field.
func (_u *RatingUpdate) SetCulture(v int) *RatingUpdate {
	_u.mutation.ResetCulture()
	_u.mutation.SetCulture(v)
	return _u
}

// SetNillableCulture sets the "culture" field if the given value is not nil.
func (_u *RatingUpdate) SetNillableCulture(v *int) *RatingUpdate {
	if v != nil {
		_u.SetCulture(*v)
	}
	return _u
}

// AddCulture adds value to the "culture" field.
func (_u *RatingUpdate) AddCulture(v int) *RatingUpdate {
	_u.mutation.AddCulture(v)
	return _u
}

// SetSafety sets the "safety" field.
func (_u *RatingUpdate) SetSafety(v int) *RatingUpdate {
	_u.mutation.ResetSafety()
	_u.mutation.SetSafety(v)
	return _u
}

// SetNillableSafety sets the "safety" field if the given value is not nil.
func (_u *RatingUpdate) SetNillableSafety(v *int) *RatingUpdate {
	if v != nil {
		_u.SetSafety(*v)
	}
	return _u
}

// AddSafety adds value to the "safety" field.
func (_u *RatingUpdate) AddSafety(v int) *RatingUpdate {
	_u.mutation.AddSafety(v)
	return _u
}

// SetOverall sets the "overall" field.
func (_u *RatingUpdate) SetOverall(v float64) *RatingUpdate {
	_u.mutation.ResetOverall()
	_u.mutation.SetOverall(v)
	return _u
}

// SetNillableOverall sets the "overall" field if the given value is not nil.
func (_u *RatingUpdate) SetNillableOverall(v *float64) *RatingUpdate {
	if v != nil {
		_u.SetOverall(*v)
	}
	return _u
}

// AddOverall adds value to the "overall" field.
func (_u *RatingUpdate) AddOverall(v float64) *RatingUpdate {
	_u.mutation.AddOverall(v)
	return _u
}

// SetReview sets the "review" edge to the Review entity.
func (_u *RatingUpdate) SetReview(v *Review) *RatingUpdate {
	return _u.SetReviewID(v.ID)
}

// Mutation returns the RatingMutation object of the builder.
func (_u *RatingUpdate) Mutation() *RatingMutation {
	return _u.mutation
}

// ClearReview clears the "review" edge to the Review entity.
func (_u *RatingUpdate) ClearReview() *RatingUpdate {
	_u.mutation.ClearReview()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RatingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RatingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RatingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RatingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RatingUpdate) check() error {
	if v, ok := _u.mutation.ReviewID(); ok {
		if err := rating.ReviewIDValidator(v); err != nil {
			return &ValidationError{Name: "review_id", err: fmt.Errorf(`ent: validator failed for field "Rating.review_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Coaching(); ok {
		if err := rating.CoachingValidator(v); err != nil {
			return &ValidationError{Name: "coaching", err: fmt.Errorf(`ent: validator failed for field "Rating.coaching": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Development(); ok {
		if err := rating.DevelopmentValidator(v); err != nil {
			return &ValidationError{Name: "development", err: fmt.Errorf(`ent: validator failed for field "Rating.development": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Transparency(); ok {
		if err := rating.TransparencyValidator(v); err != nil {
			return &ValidationError{Name: "transparency", err: fmt.Errorf(`ent: validator failed for field "Rating.transparency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Culture(); ok {
		if err := rating.CultureValidator(v); err != nil {
			return &ValidationError{Name: "culture", err: fmt.Errorf(`ent: validator failed for field "Rating.culture": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Safety(); ok {
		if err := rating.SafetyValidator(v); err != nil {
			return &ValidationError{Name: "safety", err: fmt.Errorf(`ent: validator failed for field "Rating.safety": %w`, err)}
		}
	}
	if _u.mutation.ReviewCleared() && len(_u.mutation.ReviewIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Rating.review"`)
	}
	return nil
}

func (_u *RatingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rating.Table, rating.Columns, sqlgraph.NewFieldSpec(rating.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Coaching(); ok {
		_spec.SetField(rating.FieldCoaching, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoaching(); ok {
		_spec.AddField(rating.FieldCoaching, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Development(); ok {
		_spec.SetField(rating.FieldDevelopment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDevelopment(); ok {
		_spec.AddField(rating.FieldDevelopment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Transparency(); ok {
		_spec.SetField(rating.FieldTransparency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTransparency(); ok {
		_spec.AddField(rating.FieldTransparency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Culture(); ok {
		_spec.SetField(rating.FieldCulture, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCulture(); ok {
		_spec.AddField(rating.FieldCulture, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Safety(); ok {
		_spec.SetField(rating.FieldSafety, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSafety(); ok {
		_spec.AddField(rating.FieldSafety, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Overall(); ok {
		_spec.SetField(rating.FieldOverall, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverall(); ok {
		_spec.AddField(rating.FieldOverall, field.TypeFloat64, value)
	}
	if _u.mutation.ReviewCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rating.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RatingUpdateOne is the builder for updating a single Rating entity.
type RatingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RatingMutation
}

// SetReviewID sets the "review_id" field.
func (_u *RatingUpdateOne) SetReviewID(v int) *RatingUpdateOne {
	_u.mutation.SetReviewID(v)
	return _u
}

// SetNillableReviewID sets the "review_id" field if the given value is not nil.
func (_u *RatingUpdateOne) SetNillableReviewID(v *int) *RatingUpdateOne {
	if v != nil {
		_u.SetReviewID(*v)
	}
	return _u
}

// SetCoaching sets the "coaching" field.
func (_u *RatingUpdateOne) SetCoaching(v int) *RatingUpdateOne {
	_u.mutation.ResetCoaching()
	_u.mutation.SetCoaching(v)
	return _u
}

// SetNillableCoaching sets the "coaching" field if the given value is not nil.
func (_u *RatingUpdateOne) SetNillableCoaching(v *int) *RatingUpdateOne {
	if v != nil {
		_u.SetCoaching(*v)
	}
	return _u
}

// AddCoaching adds value to the "coaching" field.
func (_u *RatingUpdateOne) AddCoaching(v int) *RatingUpdateOne {
	_u.mutation.AddCoaching(v)
	return _u
}

// SetDevelopment sets the "development" field.
func (_u *RatingUpdateOne) SetDevelopment(v int) *RatingUpdateOne {
	_u.mutation.ResetDevelopment()
	_u.mutation.SetDevelopment(v)
	return _u
}

// SetNillableDevelopment sets the "development" field if the given value is not nil.
func (_u *RatingUpdateOne) SetNillableDevelopment(v *int) *RatingUpdateOne {
	if v != nil {
		_u.SetDevelopment(*v)
	}
	return _u
}

// AddDevelopment adds value to the "development" field.
func (_u *RatingUpdateOne) AddDevelopment(v int) *RatingUpdateOne {
	_u.mutation.AddDevelopment(v)
	return _u
}

// SetTransparency sets the "transparency" field.
func (_u *RatingUpdateOne) SetTransparency(v int) *RatingUpdateOne {
	_u.mutation.ResetTransparency()
	_u.mutation.SetTransparency(v)
	return _u
}

// SetNillableTransparency sets the "transparency" field if the given value is not nil.
func (_u *RatingUpdateOne) SetNillableTransparency(v *int) *RatingUpdateOne {
	if v != nil {
		_u.SetTransparency(*v)
	}
	return _u
}

// AddTransparency adds value to the "transparency" field.
func (_u *RatingUpdateOne) AddTransparency(v int) *RatingUpdateOne {
	_u.mutation.AddTransparency(v)
	return _u
}

// SetCulture sets the "culture" field.
func (_u *RatingUpdateOne) SetCulture(v int) *RatingUpdateOne {
	_u.mutation.ResetCulture()
	_u.mutation.SetCulture(v)
	return _u
}

// SetNillableCulture sets the "culture" field if the given value is not nil.
func (_u *RatingUpdateOne) SetNillableCulture(v *int) *RatingUpdateOne {
	if v != nil {
		_u.SetCulture(*v)
	}
	return _u
}

// AddCulture adds value to the "culture" field.
func (_u *RatingUpdateOne) AddCulture(v int) *RatingUpdateOne {
	_u.mutation.AddCulture(v)
	return _u
}

// SetSafety sets the "safety" field.
func (_u *RatingUpdateOne) SetSafety(v int) *RatingUpdateOne {
	_u.mutation.ResetSafety()
	_u.mutation.SetSafety(v)
	return _u
}

// SetNillableSafety sets the "safety" field if the given value is not nil.
func (_u *RatingUpdateOne) SetNillableSafety(v *int) *RatingUpdateOne {
	if v != nil {
		_u.SetSafety(*v)
	}
	return _u
}

// AddSafety adds value to the "safety" field.
func (_u *RatingUpdateOne) AddSafety(v int) *RatingUpdateOne {
	_u.mutation.AddSafety(v)
	return _u
}

// SetOverall sets the "overall" field.
func (_u *RatingUpdateOne) SetOverall(v float64) *RatingUpdateOne {
	_u.mutation.ResetOverall()
	_u.mutation.SetOverall(v)
	return _u
}

// SetNillableOverall sets the "overall" field if the given value is not nil.
func (_u *RatingUpdateOne) SetNillableOverall(v *float64) *RatingUpdateOne {
	if v != nil {
		_u.SetOverall(*v)
	}
	return _u
}

// AddOverall adds value to the "overall" field.
func (_u *RatingUpdateOne) AddOverall(v float64) *RatingUpdateOne {
	_u.mutation.AddOverall(v)
	return _u
}

// SetReview sets the "review" edge to the Review entity.
func (_u *RatingUpdateOne) SetReview(v *Review) *RatingUpdateOne {
	return _u.SetReviewID(v.ID)
}

// Mutation returns the RatingMutation object of the builder.
func (_u *RatingUpdateOne) Mutation() *RatingMutation {
	return _u.mutation
}

// ClearReview clears the "review" edge to the Review entity.
func (_u *RatingUpdateOne) ClearReview() *RatingUpdateOne {
	_u.mutation.ClearReview()
	return _u
}

// Where appends a list predicates to the RatingUpdate builder.
func (_u *RatingUpdateOne) Where(ps ...predicate.Rating) *RatingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RatingUpdateOne) Select(field string, fields ...string) *RatingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Rating entity.
func (_u *RatingUpdateOne) Save(ctx context.Context) (*Rating, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RatingUpdateOne) SaveX(ctx context.Context) *Rating {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RatingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RatingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RatingUpdateOne) check() error {
	if v, ok := _u.mutation.ReviewID(); ok {
		if err := rating.ReviewIDValidator(v); err != nil {
			return &ValidationError{Name: "review_id", err: fmt.Errorf(`ent: validator failed for field "Rating.review_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Coaching(); ok {
		if err := rating.CoachingValidator(v); err != nil {
			return &ValidationError{Name: "coaching", err: fmt.Errorf(`ent: validator failed for field "Rating.coaching": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Development(); ok {
		if err := rating.DevelopmentValidator(v); err != nil {
			return &ValidationError{Name: "development", err: fmt.Errorf(`ent: validator failed for field "Rating.development": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Transparency(); ok {
		if err := rating.TransparencyValidator(v); err != nil {
			return &ValidationError{Name: "transparency", err: fmt.Errorf(`ent: validator failed for field "Rating.transparency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Culture(); ok {
		if err := rating.CultureValidator(v); err != nil {
			return &ValidationError{Name: "culture", err: fmt.Errorf(`ent: validator failed for field "Rating.culture": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Safety(); ok {
		if err := rating.SafetyValidator(v); err != nil {
			return &ValidationError{Name: "safety", err: fmt.Errorf(`ent: validator failed for field "Rating.safety": %w`, err)}
		}
	}
	if _u.mutation.ReviewCleared() && len(_u.mutation.ReviewIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Rating.review"`)
	}
	return nil
}

func (_u *RatingUpdateOne) sqlSave(ctx context.Context) (_node *Rating, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rating.Table, rating.Columns, sqlgraph.NewFieldSpec(rating.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Rating.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rating.FieldID)
		for _, f := range fields {
			if !rating.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rating.FieldID {
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
	if value, ok := _u.mutation.Coaching(); ok {
		_spec.SetField(rating.FieldCoaching, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoaching(); ok {
		_spec.AddField(rating.FieldCoaching, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Development(); ok {
		_spec.SetField(rating.FieldDevelopment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDevelopment(); ok {
		_spec.AddField(rating.FieldDevelopment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Transparency(); ok {
		_spec.SetField(rating.FieldTransparency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTransparency(); ok {
		_spec.AddField(rating.FieldTransparency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Culture(); ok {
		_spec.SetField(rating.FieldCulture, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCulture(); ok {
		_spec.AddField(rating.FieldCulture, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Safety(); ok {
		_spec.SetField(rating.FieldSafety, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSafety(); ok {
		_spec.AddField(rating.FieldSafety, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Overall(); ok {
		_spec.SetField(rating.FieldOverall, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverall(); ok {
		_spec.AddField(rating.FieldOverall, field.TypeFloat64, value)
	}
	if _u.mutation.ReviewCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Rating{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rating.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
