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
	"github.com/jordanlanch/squadscore/ent/checkoutsession"
	"github.com/jordanlanch/squadscore/ent/predicate"
)

// CheckoutSessionUpdate is the builder for updating CheckoutSession entities.
type CheckoutSessionUpdate struct {
	config
	hooks    []Hook
	mutation *CheckoutSessionMutation
}

// Where appends a list predicates to the CheckoutSessionUpdate builder.
func (_u *CheckoutSessionUpdate) Where(ps ...predicate.CheckoutSession) *CheckoutSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTargetType sets the "target_type" field.
func (_u *CheckoutSessionUpdate) SetTargetType(v checkoutsession.TargetType) *CheckoutSessionUpdate {
	_u.mutation.SetTargetType(v)
	return _u
}

// SetNillableTargetType sets the "target_type" field if the given value is not nil.
func (_u *CheckoutSessionUpdate) SetNillableTargetType(v *checkoutsession.TargetType) *CheckoutSessionUpdate {
	if v != nil {
		_u.SetTargetType(*v)
	}
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *CheckoutSessionUpdate) SetTargetID(v int) *CheckoutSessionUpdate {
	_u.mutation.ResetTargetID()
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *CheckoutSessionUpdate) SetNillableTargetID(v *int) *CheckoutSessionUpdate {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// AddTargetID adds value to the "target_id" field.
func (_u *CheckoutSessionUpdate) AddTargetID(v int) *CheckoutSessionUpdate {
	_u.mutation.AddTargetID(v)
	return _u
}

// SetPlan sets the "plan" field.
func (_u *CheckoutSessionUpdate) SetPlan(v checkoutsession.Plan) *CheckoutSessionUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *CheckoutSessionUpdate) SetNillablePlan(v *checkoutsession.Plan) *CheckoutSessionUpdate {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *CheckoutSessionUpdate) SetAmount(v int64) *CheckoutSessionUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *CheckoutSessionUpdate) SetNillableAmount(v *int64) *CheckoutSessionUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *CheckoutSessionUpdate) AddAmount(v int64) *CheckoutSessionUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *CheckoutSessionUpdate) SetCurrency(v string) *CheckoutSessionUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *CheckoutSessionUpdate) SetNillableCurrency(v *string) *CheckoutSessionUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CheckoutSessionUpdate) SetStatus(v checkoutsession.Status) *CheckoutSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CheckoutSessionUpdate) SetNillableStatus(v *checkoutsession.Status) *CheckoutSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *CheckoutSessionUpdate) SetURL(v string) *CheckoutSessionUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *CheckoutSessionUpdate) SetNillableURL(v *string) *CheckoutSessionUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *CheckoutSessionUpdate) ClearURL() *CheckoutSessionUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *CheckoutSessionUpdate) SetCreatedBy(v int) *CheckoutSessionUpdate {
	_u.mutation.ResetCreatedBy()
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *CheckoutSessionUpdate) SetNillableCreatedBy(v *int) *CheckoutSessionUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddCreatedBy adds value to the "created_by" field.
func (_u *CheckoutSessionUpdate) AddCreatedBy(v int) *CheckoutSessionUpdate {
	_u.mutation.AddCreatedBy(v)
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *CheckoutSessionUpdate) ClearCreatedBy() *CheckoutSessionUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CheckoutSessionUpdate) SetUpdatedAt(v time.Time) *CheckoutSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CheckoutSessionMutation object of the builder.
func (_u *CheckoutSessionUpdate) Mutation() *CheckoutSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckoutSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckoutSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckoutSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckoutSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CheckoutSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := checkoutsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckoutSessionUpdate) check() error {
	if v, ok := _u.mutation.TargetType(); ok {
		if err := checkoutsession.TargetTypeValidator(v); err != nil {
			return &ValidationError{Name: "target_type", err: fmt.Errorf(`ent: validator failed for field "CheckoutSession.target_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetID(); ok {
		if err := checkoutsession.TargetIDValidator(v); err != nil {
			return &ValidationError{Name: "target_id", err: fmt.Errorf(`ent: validator failed for field "CheckoutSession.target_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Plan(); ok {
		if err := checkoutsession.PlanValidator(v); err != nil {
			return &ValidationError{Name: "plan", err: fmt.Errorf(`ent: validator failed for field "CheckoutSession.plan": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := checkoutsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CheckoutSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckoutSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkoutsession.Table, checkoutsession.Columns, sqlgraph.NewFieldSpec(checkoutsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TargetType(); ok {
		_spec.SetField(checkoutsession.FieldTargetType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(checkoutsession.FieldTargetID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetID(); ok {
		_spec.AddField(checkoutsession.FieldTargetID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(checkoutsession.FieldPlan, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(checkoutsession.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(checkoutsession.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(checkoutsession.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(checkoutsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(checkoutsession.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(checkoutsession.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(checkoutsession.FieldCreatedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreatedBy(); ok {
		_spec.AddField(checkoutsession.FieldCreatedBy, field.TypeInt, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(checkoutsession.FieldCreatedBy, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(checkoutsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkoutsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckoutSessionUpdateOne is the builder for updating a single CheckoutSession entity.
type CheckoutSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckoutSessionMutation
}

// SetTargetType sets the "target_type" field.
func (_u *CheckoutSessionUpdateOne) SetTargetType(v checkoutsession.TargetType) *CheckoutSessionUpdateOne {
	_u.mutation.SetTargetType(v)
	return _u
}

// SetNillableTargetType sets the "target_type" field if the given value is not nil.
func (_u *CheckoutSessionUpdateOne) SetNillableTargetType(v *checkoutsession.TargetType) *CheckoutSessionUpdateOne {
	if v != nil {
		_u.SetTargetType(*v)
	}
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *CheckoutSessionUpdateOne) SetTargetID(v int) *CheckoutSessionUpdateOne {
	_u.mutation.ResetTargetID()
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *CheckoutSessionUpdateOne) SetNillableTargetID(v *int) *CheckoutSessionUpdateOne {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// AddTargetID adds value to the "target_id" field.
func (_u *CheckoutSessionUpdateOne) AddTargetID(v int) *CheckoutSessionUpdateOne {
	_u.mutation.AddTargetID(v)
	return _u
}

// SetPlan sets the "plan" field.
func (_u *CheckoutSessionUpdateOne) SetPlan(v checkoutsession.Plan) *CheckoutSessionUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *CheckoutSessionUpdateOne) SetNillablePlan(v *checkoutsession.Plan) *CheckoutSessionUpdateOne {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *CheckoutSessionUpdateOne) SetAmount(v int64) *CheckoutSessionUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *CheckoutSessionUpdateOne) SetNillableAmount(v *int64) *CheckoutSessionUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *CheckoutSessionUpdateOne) AddAmount(v int64) *CheckoutSessionUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *CheckoutSessionUpdateOne) SetCurrency(v string) *CheckoutSessionUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *CheckoutSessionUpdateOne) SetNillableCurrency(v *string) *CheckoutSessionUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CheckoutSessionUpdateOne) SetStatus(v checkoutsession.Status) *CheckoutSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CheckoutSessionUpdateOne) SetNillableStatus(v *checkoutsession.Status) *CheckoutSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *CheckoutSessionUpdateOne) SetURL(v string) *CheckoutSessionUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *CheckoutSessionUpdateOne) SetNillableURL(v *string) *CheckoutSessionUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *CheckoutSessionUpdateOne) ClearURL() *CheckoutSessionUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *CheckoutSessionUpdateOne) SetCreatedBy(v int) *CheckoutSessionUpdateOne {
	_u.mutation.ResetCreatedBy()
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *CheckoutSessionUpdateOne) SetNillableCreatedBy(v *int) *CheckoutSessionUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddCreatedBy adds value to the "created_by" field.
func (_u *CheckoutSessionUpdateOne) AddCreatedBy(v int) *CheckoutSessionUpdateOne {
	_u.mutation.AddCreatedBy(v)
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *CheckoutSessionUpdateOne) ClearCreatedBy() *CheckoutSessionUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CheckoutSessionUpdateOne) SetUpdatedAt(v time.Time) *CheckoutSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CheckoutSessionMutation object of the builder.
func (_u *CheckoutSessionUpdateOne) Mutation() *CheckoutSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckoutSessionUpdate builder.
func (_u *CheckoutSessionUpdateOne) Where(ps ...predicate.CheckoutSession) *CheckoutSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckoutSessionUpdateOne) Select(field string, fields ...string) *CheckoutSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CheckoutSession entity.
func (_u *CheckoutSessionUpdateOne) Save(ctx context.Context) (*CheckoutSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckoutSessionUpdateOne) SaveX(ctx context.Context) *CheckoutSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckoutSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckoutSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CheckoutSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := checkoutsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckoutSessionUpdateOne) check() error {
	if v, ok := _u.mutation.TargetType(); ok {
		if err := checkoutsession.TargetTypeValidator(v); err != nil {
			return &ValidationError{Name: "target_type", err: fmt.Errorf(`ent: validator failed for field "CheckoutSession.target_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetID(); ok {
		if err := checkoutsession.TargetIDValidator(v); err != nil {
			return &ValidationError{Name: "target_id", err: fmt.Errorf(`ent: validator failed for field "CheckoutSession.target_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Plan(); ok {
		if err := checkoutsession.PlanValidator(v); err != nil {
			return &ValidationError{Name: "plan", err: fmt.Errorf(`ent: validator failed for field "CheckoutSession.plan": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := checkoutsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CheckoutSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckoutSessionUpdateOne) sqlSave(ctx context.Context) (_node *CheckoutSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkoutsession.Table, checkoutsession.Columns, sqlgraph.NewFieldSpec(checkoutsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CheckoutSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkoutsession.FieldID)
		for _, f := range fields {
			if !checkoutsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkoutsession.FieldID {
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
	if value, ok := _u.mutation.TargetType(); ok {
		_spec.SetField(checkoutsession.FieldTargetType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(checkoutsession.FieldTargetID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetID(); ok {
		_spec.AddField(checkoutsession.FieldTargetID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(checkoutsession.FieldPlan, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(checkoutsession.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(checkoutsession.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(checkoutsession.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(checkoutsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(checkoutsession.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(checkoutsession.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(checkoutsession.FieldCreatedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreatedBy(); ok {
		_spec.AddField(checkoutsession.FieldCreatedBy, field.TypeInt, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(checkoutsession.FieldCreatedBy, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(checkoutsession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CheckoutSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkoutsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
