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
	"github.com/jordanlanch/squadscore/ent/orgresponse"
	"github.com/jordanlanch/squadscore/ent/predicate"
	"github.com/jordanlanch/squadscore/ent/review"
	"github.com/jordanlanch/squadscore/ent/user"
)

// OrgResponseUpdate is the builder for updating OrgResponse entities.
type OrgResponseUpdate struct {
	config
	hooks    []Hook
	mutation *OrgResponseMutation
}

// Where appends a list predicates to the OrgResponseUpdate builder.
func (_u *OrgResponseUpdate) Where(ps ...predicate.OrgResponse) *OrgResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReviewID sets the "review_id" field.
func (_u *OrgResponseUpdate) SetReviewID(v int) *OrgResponseUpdate {
	_u.mutation.SetReviewID(v)
	return _u
}

// SetNillableReviewID sets the "review_id" field if the given value is not nil.
func (_u *OrgResponseUpdate) SetNillableReviewID(v *int) *OrgResponseUpdate {
	if v != nil {
		_u.SetReviewID(*v)
	}
	return _u
}

// SetResponderID sets the "responder_id" field.
func (_u *OrgResponseUpdate) SetResponderID(v int) *OrgResponseUpdate {
	_u.mutation.SetResponderID(v)
	return _u
}

// SetNillableResponderID sets the "responder_id" field if the given value is not nil.
func (_u *OrgResponseUpdate) SetNillableResponderID(v *int) *OrgResponseUpdate {
	if v != nil {
		_u.SetResponderID(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *OrgResponseUpdate) SetBody(v string) *OrgResponseUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *OrgResponseUpdate) SetNillableBody(v *string) *OrgResponseUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrgResponseUpdate) SetUpdatedAt(v time.Time) *OrgResponseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReview sets the "review" edge to the Review entity.
func (_u *OrgResponseUpdate) SetReview(v *Review) *OrgResponseUpdate {
	return _u.SetReviewID(v.ID)
}

// SetResponder sets the "responder" edge to the User entity.
func (_u *OrgResponseUpdate) SetResponder(v *User) *OrgResponseUpdate {
	return _u.SetResponderID(v.ID)
}

// Mutation returns the OrgResponseMutation object of the builder.
func (_u *OrgResponseUpdate) Mutation() *OrgResponseMutation {
	return _u.mutation
}

// ClearReview clears the "review" edge to the Review entity.
func (_u *OrgResponseUpdate) ClearReview() *OrgResponseUpdate {
	_u.mutation.ClearReview()
	return _u
}

// ClearResponder clears the "responder" edge to the User entity.
func (_u *OrgResponseUpdate) ClearResponder() *OrgResponseUpdate {
	_u.mutation.ClearResponder()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrgResponseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrgResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrgResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrgResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrgResponseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := orgresponse.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrgResponseUpdate) check() error {
	if v, ok := _u.mutation.ReviewID(); ok {
		if err := orgresponse.ReviewIDValidator(v); err != nil {
			return &ValidationError{Name: "review_id", err: fmt.Errorf(`ent: validator failed for field "OrgResponse.review_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResponderID(); ok {
		if err := orgresponse.ResponderIDValidator(v); err != nil {
			return &ValidationError{Name: "responder_id", err: fmt.Errorf(`ent: validator failed for field "OrgResponse.responder_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := orgresponse.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "OrgResponse.body": %w`, err)}
		}
	}
	if _u.mutation.ReviewCleared() && len(_u.mutation.ReviewIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrgResponse.review"`)
	}
	if _u.mutation.ResponderCleared() && len(_u.mutation.ResponderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrgResponse.responder"`)
	}
	return nil
}

func (_u *OrgResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orgresponse.Table, orgresponse.Columns, sqlgraph.NewFieldSpec(orgresponse.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(orgresponse.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(orgresponse.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   orgresponse.ReviewTable,
			Columns: []string{orgresponse.ReviewColumn},
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
			Table:   orgresponse.ReviewTable,
			Columns: []string{orgresponse.ReviewColumn},
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
	if _u.mutation.ResponderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orgresponse.ResponderTable,
			Columns: []string{orgresponse.ResponderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResponderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orgresponse.ResponderTable,
			Columns: []string{orgresponse.ResponderColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orgresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrgResponseUpdateOne is the builder for updating a single OrgResponse entity.
type OrgResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrgResponseMutation
}

// SetReviewID sets the "review_id" field.
func (_u *OrgResponseUpdateOne) SetReviewID(v int) *OrgResponseUpdateOne {
	_u.mutation.SetReviewID(v)
	return _u
}

// SetNillableReviewID sets the "review_id" field if the given value is not nil.
func (_u *OrgResponseUpdateOne) SetNillableReviewID(v *int) *OrgResponseUpdateOne {
	if v != nil {
		_u.SetReviewID(*v)
	}
	return _u
}

// SetResponderID sets the "responder_id" field.
func (_u *OrgResponseUpdateOne) SetResponderID(v int) *OrgResponseUpdateOne {
	_u.mutation.SetResponderID(v)
	return _u
}

// SetNillableResponderID sets the "responder_id" field if the given value is not nil.
func (_u *OrgResponseUpdateOne) SetNillableResponderID(v *int) *OrgResponseUpdateOne {
	if v != nil {
		_u.SetResponderID(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *OrgResponseUpdateOne) SetBody(v string) *OrgResponseUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *OrgResponseUpdateOne) SetNillableBody(v *string) *OrgResponseUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrgResponseUpdateOne) SetUpdatedAt(v time.Time) *OrgResponseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReview sets the "review" edge to the Review entity.
func (_u *OrgResponseUpdateOne) SetReview(v *Review) *OrgResponseUpdateOne {
	return _u.SetReviewID(v.ID)
}

// SetResponder sets the "responder" edge to the User entity.
func (_u *OrgResponseUpdateOne) SetResponder(v *User) *OrgResponseUpdateOne {
	return _u.SetResponderID(v.ID)
}

// Mutation returns the OrgResponseMutation object of the builder.
func (_u *OrgResponseUpdateOne) Mutation() *OrgResponseMutation {
	return _u.mutation
}

// ClearReview clears the "review" edge to the Review entity.
func (_u *OrgResponseUpdateOne) ClearReview() *OrgResponseUpdateOne {
	_u.mutation.ClearReview()
	return _u
}

// ClearResponder clears the "responder" edge to the User entity.
func (_u *OrgResponseUpdateOne) ClearResponder() *OrgResponseUpdateOne {
	_u.mutation.ClearResponder()
	return _u
}

// Where appends a list predicates to the OrgResponseUpdate builder.
func (_u *OrgResponseUpdateOne) Where(ps ...predicate.OrgResponse) *OrgResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrgResponseUpdateOne) Select(field string, fields ...string) *OrgResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrgResponse entity.
func (_u *OrgResponseUpdateOne) Save(ctx context.Context) (*OrgResponse, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrgResponseUpdateOne) SaveX(ctx context.Context) *OrgResponse {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrgResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrgResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrgResponseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := orgresponse.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrgResponseUpdateOne) check() error {
	if v, ok := _u.mutation.ReviewID(); ok {
		if err := orgresponse.ReviewIDValidator(v); err != nil {
			return &ValidationError{Name: "review_id", err: fmt.Errorf(`ent: validator failed for field "OrgResponse.review_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResponderID(); ok {
		if err := orgresponse.ResponderIDValidator(v); err != nil {
			return &ValidationError{Name: "responder_id", err: fmt.Errorf(`ent: validator failed for field "OrgResponse.responder_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := orgresponse.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "OrgResponse.body": %w`, err)}
		}
	}
	if _u.mutation.ReviewCleared() && len(_u.mutation.ReviewIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrgResponse.review"`)
	}
	if _u.mutation.ResponderCleared() && len(_u.mutation.ResponderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrgResponse.responder"`)
	}
	return nil
}

func (_u *OrgResponseUpdateOne) sqlSave(ctx context.Context) (_node *OrgResponse, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orgresponse.Table, orgresponse.Columns, sqlgraph.NewFieldSpec(orgresponse.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrgResponse.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orgresponse.FieldID)
		for _, f := range fields {
			if !orgresponse.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orgresponse.FieldID {
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
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(orgresponse.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(orgresponse.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   orgresponse.ReviewTable,
			Columns: []string{orgresponse.ReviewColumn},
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
			Table:   orgresponse.ReviewTable,
			Columns: []string{orgresponse.ReviewColumn},
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
	if _u.mutation.ResponderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orgresponse.ResponderTable,
			Columns: []string{orgresponse.ResponderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResponderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orgresponse.ResponderTable,
			Columns: []string{orgresponse.ResponderColumn},
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
	_node = &OrgResponse{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orgresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
