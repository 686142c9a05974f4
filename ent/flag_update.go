// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/squadscore/ent/flag"
	"github.com/jordanlanch/squadscore/ent/predicate"
	"github.com/jordanlanch/squadscore/ent/review"
	"github.com/jordanlanch/squadscore/ent/user"
)

// FlagUpdate is the builder for updating Flag entities.
type FlagUpdate struct {
	config
	hooks    []Hook
	mutation *FlagMutation
}

// Where appends a list predicates to the FlagUpdate builder.
func (_u *FlagUpdate) Where(ps ...predicate.Flag) *FlagUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReviewID sets the "review_id" field.
func (_u *FlagUpdate) SetReviewID(v int) *FlagUpdate {
	_u.mutation.SetReviewID(v)
	return _u
}

// SetNillableReviewID sets the "review_id" field if the given value is not nil.
func (_u *FlagUpdate) SetNillableReviewID(v *int) *FlagUpdate {
	if v != nil {
		_u.SetReviewID(*v)
	}
	return _u
}

// SetReporterID sets the "reporter_id" field.
func (_u *FlagUpdate) SetReporterID(v int) *FlagUpdate {
	_u.mutation.SetReporterID(v)
	return _u
}

// SetNillableReporterID sets the "reporter_id" field if the given value is not nil.
func (_u *FlagUpdate) SetNillableReporterID(v *int) *FlagUpdate {
	if v != nil {
		_u.SetReporterID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *FlagUpdate) SetReason(v string) *FlagUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *FlagUpdate) SetNillableReason(v *string) *FlagUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetReporterIP sets the "reporter_ip" field.
func (_u *FlagUpdate) SetReporterIP(v string) *FlagUpdate {
	_u.mutation.SetReporterIP(v)
	return _u
}

// SetNillableReporterIP sets the "reporter_ip" field if the given value is not nil.
func (_u *FlagUpdate) SetNillableReporterIP(v *string) *FlagUpdate {
	if v != nil {
		_u.SetReporterIP(*v)
	}
	return _u
}

// ClearReporterIP clears the value of the "reporter_ip" field.
func (_u *FlagUpdate) ClearReporterIP() *FlagUpdate {
	_u.mutation.ClearReporterIP()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FlagUpdate) SetStatus(v flag.Status) *FlagUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FlagUpdate) SetNillableStatus(v *flag.Status) *FlagUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReview sets the "review" edge to the Review entity.
func (_u *FlagUpdate) SetReview(v *Review) *FlagUpdate {
	return _u.SetReviewID(v.ID)
}

// SetReporter sets the "reporter" edge to the User entity.
func (_u *FlagUpdate) SetReporter(v *User) *FlagUpdate {
	return _u.SetReporterID(v.ID)
}

// Mutation returns the FlagMutation object of the builder.
func (_u *FlagUpdate) Mutation() *FlagMutation {
	return _u.mutation
}

// ClearReview clears the "review" edge to the Review entity.
func (_u *FlagUpdate) ClearReview() *FlagUpdate {
	_u.mutation.ClearReview()
	return _u
}

// ClearReporter clears the "reporter" edge to the User entity.
func (_u *FlagUpdate) ClearReporter() *FlagUpdate {
	_u.mutation.ClearReporter()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FlagUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlagUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FlagUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlagUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlagUpdate) check() error {
	if v, ok := _u.mutation.ReviewID(); ok {
		if err := flag.ReviewIDValidator(v); err != nil {
			return &ValidationError{Name: "review_id", err: fmt.Errorf(`ent: validator failed for field "Flag.review_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReporterID(); ok {
		if err := flag.ReporterIDValidator(v); err != nil {
			return &ValidationError{Name: "reporter_id", err: fmt.Errorf(`ent: validator failed for field "Flag.reporter_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := flag.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "Flag.reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := flag.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Flag.status": %w`, err)}
		}
	}
	if _u.mutation.ReviewCleared() && len(_u.mutation.ReviewIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Flag.review"`)
	}
	if _u.mutation.ReporterCleared() && len(_u.mutation.ReporterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Flag.reporter"`)
	}
	return nil
}

func (_u *FlagUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flag.Table, flag.Columns, sqlgraph.NewFieldSpec(flag.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(flag.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReporterIP(); ok {
		_spec.SetField(flag.FieldReporterIP, field.TypeString, value)
	}
	if _u.mutation.ReporterIPCleared() {
		_spec.ClearField(flag.FieldReporterIP, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(flag.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ReviewCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   flag.ReviewTable,
			Columns: []string{flag.ReviewColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   flag.ReviewTable,
			Columns: []string{flag.ReviewColumn},
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
	if _u.mutation.ReporterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   flag.ReporterTable,
			Columns: []string{flag.ReporterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReporterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   flag.ReporterTable,
			Columns: []string{flag.ReporterColumn},
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
			err = &NotFoundError{flag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FlagUpdateOne is the builder for updating a single Flag entity.
type FlagUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FlagMutation
}

// SetReviewID sets the "review_id" field.
func (_u *FlagUpdateOne) SetReviewID(v int) *FlagUpdateOne {
	_u.mutation.SetReviewID(v)
	return _u
}

// SetNillableReviewID sets the "review_id" field if the given value is not nil.
func (_u *FlagUpdateOne) SetNillableReviewID(v *int) *FlagUpdateOne {
	if v != nil {
		_u.SetReviewID(*v)
	}
	return _u
}

// SetReporterID sets the "reporter_id" field.
func (_u *FlagUpdateOne) SetReporterID(v int) *FlagUpdateOne {
	_u.mutation.SetReporterID(v)
	return _u
}

// SetNillableReporterID sets the "reporter_id" field if the given value is not nil.
func (_u *FlagUpdateOne) SetNillableReporterID(v *int) *FlagUpdateOne {
	if v != nil {
		_u.SetReporterID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *FlagUpdateOne) SetReason(v string) *FlagUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *FlagUpdateOne) SetNillableReason(v *string) *FlagUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetReporterIP sets the "reporter_ip" field.
func (_u *FlagUpdateOne) SetReporterIP(v string) *FlagUpdateOne {
	_u.mutation.SetReporterIP(v)
	return _u
}

// SetNillableReporterIP sets the "reporter_ip" field if the given value is not nil.
func (_u *FlagUpdateOne) SetNillableReporterIP(v *string) *FlagUpdateOne {
	if v != nil {
		_u.SetReporterIP(*v)
	}
	return _u
}

// ClearReporterIP clears the value of the "reporter_ip" field.
func (_u *FlagUpdateOne) ClearReporterIP() *FlagUpdateOne {
	_u.mutation.ClearReporterIP()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FlagUpdateOne) SetStatus(v flag.Status) *FlagUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FlagUpdateOne) SetNillableStatus(v *flag.Status) *FlagUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReview sets the "review" edge to the Review entity.
func (_u *FlagUpdateOne) SetReview(v *Review) *FlagUpdateOne {
	return _u.SetReviewID(v.ID)
}

// SetReporter sets the "reporter" edge to the User entity.
func (_u *FlagUpdateOne) SetReporter(v *User) *FlagUpdateOne {
	return _u.SetReporterID(v.ID)
}

// Mutation returns the FlagMutation object of the builder.
func (_u *FlagUpdateOne) Mutation() *FlagMutation {
	return _u.mutation
}

// ClearReview clears the "review" edge to the Review entity.
func (_u *FlagUpdateOne) ClearReview() *FlagUpdateOne {
	_u.mutation.ClearReview()
	return _u
}

// ClearReporter clears the "reporter" edge to the User entity.
func (_u *FlagUpdateOne) ClearReporter() *FlagUpdateOne {
	_u.mutation.ClearReporter()
	return _u
}

// Where appends a list predicates to the FlagUpdate builder.
func (_u *FlagUpdateOne) Where(ps ...predicate.Flag) *FlagUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FlagUpdateOne) Select(field string, fields ...string) *FlagUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Flag entity.
func (_u *FlagUpdateOne) Save(ctx context.Context) (*Flag, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlagUpdateOne) SaveX(ctx context.Context) *Flag {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FlagUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlagUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlagUpdateOne) check() error {
	if v, ok := _u.mutation.ReviewID(); ok {
		if err := flag.ReviewIDValidator(v); err != nil {
			return &ValidationError{Name: "review_id", err: fmt.Errorf(`ent: validator failed for field "Flag.review_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReporterID(); ok {
		if err := flag.ReporterIDValidator(v); err != nil {
			return &ValidationError{Name: "reporter_id", err: fmt.Errorf(`ent: validator failed for field "Flag.reporter_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := flag.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "Flag.reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := flag.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Flag.status": %w`, err)}
		}
	}
	if _u.mutation.ReviewCleared() && len(_u.mutation.ReviewIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Flag.review"`)
	}
	if _u.mutation.ReporterCleared() && len(_u.mutation.ReporterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Flag.reporter"`)
	}
	return nil
}

func (_u *FlagUpdateOne) sqlSave(ctx context.Context) (_node *Flag, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flag.Table, flag.Columns, sqlgraph.NewFieldSpec(flag.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Flag.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flag.FieldID)
		for _, f := range fields {
			if !flag.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != flag.FieldID {
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
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(flag.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReporterIP(); ok {
		_spec.SetField(flag.FieldReporterIP, field.TypeString, value)
	}
	if _u.mutation.ReporterIPCleared() {
		_spec.ClearField(flag.FieldReporterIP, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(flag.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ReviewCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   flag.ReviewTable,
			Columns: []string{flag.ReviewColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   flag.ReviewTable,
			Columns: []string{flag.ReviewColumn},
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
	if _u.mutation.ReporterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   flag.ReporterTable,
			Columns: []string{flag.ReporterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReporterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   flag.ReporterTable,
			Columns: []string{flag.ReporterColumn},
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
	_node = &Flag{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
