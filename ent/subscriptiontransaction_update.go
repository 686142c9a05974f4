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
	"github.com/jordanlanch/squadscore/ent/subscription"
	"github.com/jordanlanch/squadscore/ent/subscriptiontransaction"
)

// SubscriptionTransactionUpdate is the builder for updating SubscriptionTransaction entities.
type SubscriptionTransactionUpdate struct {
	config
	hooks    []Hook
	mutation *SubscriptionTransactionMutation
}

// Where appends a list predicates to the SubscriptionTransactionUpdate builder.
func (_u *SubscriptionTransactionUpdate) Where(ps ...predicate.SubscriptionTransaction) *SubscriptionTransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubscriptionID sets the "subscription_id" field.
func (_u *SubscriptionTransactionUpdate) SetSubscriptionID(v int) *SubscriptionTransactionUpdate {
	_u.mutation.SetSubscriptionID(v)
	return _u
}

// SetNillableSubscriptionID sets the "subscription_id" field if the given value is not nil.
func (_u *SubscriptionTransactionUpdate) SetNillableSubscriptionID(v *int) *SubscriptionTransactionUpdate {
	if v != nil {
		_u.SetSubscriptionID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *SubscriptionTransactionUpdate) SetAmount(v int64) *SubscriptionTransactionUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *SubscriptionTransactionUpdate) SetNillableAmount(v *int64) *SubscriptionTransactionUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *SubscriptionTransactionUpdate) AddAmount(v int64) *SubscriptionTransactionUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *SubscriptionTransactionUpdate) SetCurrency(v string) *SubscriptionTransactionUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *SubscriptionTransactionUpdate) SetNillableCurrency(v *string) *SubscriptionTransactionUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubscriptionTransactionUpdate) SetStatus(v string) *SubscriptionTransactionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubscriptionTransactionUpdate) SetNillableStatus(v *string) *SubscriptionTransactionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStripePaymentID sets the "stripe_payment_id" field.
func (_u *SubscriptionTransactionUpdate) SetStripePaymentID(v string) *SubscriptionTransactionUpdate {
	_u.mutation.SetStripePaymentID(v)
	return _u
}

// SetNillableStripePaymentID sets the "stripe_payment_id" field if the given value is not nil.
func (_u *SubscriptionTransactionUpdate) SetNillableStripePaymentID(v *string) *SubscriptionTransactionUpdate {
	if v != nil {
		_u.SetStripePaymentID(*v)
	}
	return _u
}

// ClearStripePaymentID clears the value of the "stripe_payment_id" field.
func (_u *SubscriptionTransactionUpdate) ClearStripePaymentID() *SubscriptionTransactionUpdate {
	_u.mutation.ClearStripePaymentID()
	return _u
}

// SetStripeInvoiceID sets the "stripe_invoice_id" field.
func (_u *SubscriptionTransactionUpdate) SetStripeInvoiceID(v string) *SubscriptionTransactionUpdate {
	_u.mutation.SetStripeInvoiceID(v)
	return _u
}

// SetNillableStripeInvoiceID sets the "stripe_invoice_id" field if the given value is not nil.
func (_u *SubscriptionTransactionUpdate) SetNillableStripeInvoiceID(v *string) *SubscriptionTransactionUpdate {
	if v != nil {
		_u.SetStripeInvoiceID(*v)
	}
	return _u
}

// ClearStripeInvoiceID clears the value of the "stripe_invoice_id" field.
func (_u *SubscriptionTransactionUpdate) ClearStripeInvoiceID() *SubscriptionTransactionUpdate {
	_u.mutation.ClearStripeInvoiceID()
	return _u
}

// SetSubscription sets the "subscription" edge to the Subscription entity.
func (_u *SubscriptionTransactionUpdate) SetSubscription(v *Subscription) *SubscriptionTransactionUpdate {
	return _u.SetSubscriptionID(v.ID)
}

// Mutation returns the SubscriptionTransactionMutation object of the builder.
func (_u *SubscriptionTransactionUpdate) Mutation() *SubscriptionTransactionMutation {
	return _u.mutation
}

// ClearSubscription clears the "subscription" edge to the Subscription entity.
func (_u *SubscriptionTransactionUpdate) ClearSubscription() *SubscriptionTransactionUpdate {
	_u.mutation.ClearSubscription()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubscriptionTransactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubscriptionTransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubscriptionTransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubscriptionTransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubscriptionTransactionUpdate) check() error {
	if v, ok := _u.mutation.SubscriptionID(); ok {
		if err := subscriptiontransaction.SubscriptionIDValidator(v); err != nil {
			return &ValidationError{Name: "subscription_id", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTransaction.subscription_id": %w`, err)}
		}
	}
	if _u.mutation.SubscriptionCleared() && len(_u.mutation.SubscriptionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubscriptionTransaction.subscription"`)
	}
	return nil
}

func (_u *SubscriptionTransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subscriptiontransaction.Table, subscriptiontransaction.Columns, sqlgraph.NewFieldSpec(subscriptiontransaction.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(subscriptiontransaction.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(subscriptiontransaction.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(subscriptiontransaction.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subscriptiontransaction.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StripePaymentID(); ok {
		_spec.SetField(subscriptiontransaction.FieldStripePaymentID, field.TypeString, value)
	}
	if _u.mutation.StripePaymentIDCleared() {
		_spec.ClearField(subscriptiontransaction.FieldStripePaymentID, field.TypeString)
	}
	if value, ok := _u.mutation.StripeInvoiceID(); ok {
		_spec.SetField(subscriptiontransaction.FieldStripeInvoiceID, field.TypeString, value)
	}
	if _u.mutation.StripeInvoiceIDCleared() {
		_spec.ClearField(subscriptiontransaction.FieldStripeInvoiceID, field.TypeString)
	}
	if _u.mutation.SubscriptionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subscriptiontransaction.SubscriptionTable,
			Columns: []string{subscriptiontransaction.SubscriptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subscriptiontransaction.SubscriptionTable,
			Columns: []string{subscriptiontransaction.SubscriptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subscriptiontransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubscriptionTransactionUpdateOne is the builder for updating a single SubscriptionTransaction entity.
type SubscriptionTransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubscriptionTransactionMutation
}

// SetSubscriptionID sets the "subscription_id" field.
func (_u *SubscriptionTransactionUpdateOne) SetSubscriptionID(v int) *SubscriptionTransactionUpdateOne {
	_u.mutation.SetSubscriptionID(v)
	return _u
}

// SetNillableSubscriptionID sets the "subscription_id" field if the given value is not nil.
func (_u *SubscriptionTransactionUpdateOne) SetNillableSubscriptionID(v *int) *SubscriptionTransactionUpdateOne {
	if v != nil {
		_u.SetSubscriptionID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *SubscriptionTransactionUpdateOne) SetAmount(v int64) *SubscriptionTransactionUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *SubscriptionTransactionUpdateOne) SetNillableAmount(v *int64) *SubscriptionTransactionUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *SubscriptionTransactionUpdateOne) AddAmount(v int64) *SubscriptionTransactionUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *SubscriptionTransactionUpdateOne) SetCurrency(v string) *SubscriptionTransactionUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *SubscriptionTransactionUpdateOne) SetNillableCurrency(v *string) *SubscriptionTransactionUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubscriptionTransactionUpdateOne) SetStatus(v string) *SubscriptionTransactionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubscriptionTransactionUpdateOne) SetNillableStatus(v *string) *SubscriptionTransactionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStripePaymentID sets the "stripe_payment_id" field.
func (_u *SubscriptionTransactionUpdateOne) SetStripePaymentID(v string) *SubscriptionTransactionUpdateOne {
	_u.mutation.SetStripePaymentID(v)
	return _u
}

// SetNillableStripePaymentID sets the "stripe_payment_id" field if the given value is not nil.
func (_u *SubscriptionTransactionUpdateOne) SetNillableStripePaymentID(v *string) *SubscriptionTransactionUpdateOne {
	if v != nil {
		_u.SetStripePaymentID(*v)
	}
	return _u
}

// ClearStripePaymentID clears the value of the "stripe_payment_id" field.
func (_u *SubscriptionTransactionUpdateOne) ClearStripePaymentID() *SubscriptionTransactionUpdateOne {
	_u.mutation.ClearStripePaymentID()
	return _u
}

// SetStripeInvoiceID sets the "stripe_invoice_id" field.
func (_u *SubscriptionTransactionUpdateOne) SetStripeInvoiceID(v string) *SubscriptionTransactionUpdateOne {
	_u.mutation.SetStripeInvoiceID(v)
	return _u
}

// SetNillableStripeInvoiceID sets the "stripe_invoice_id" field if the given value is not nil.
func (_u *SubscriptionTransactionUpdateOne) SetNillableStripeInvoiceID(v *string) *SubscriptionTransactionUpdateOne {
	if v != nil {
		_u.SetStripeInvoiceID(*v)
	}
	return _u
}

// ClearStripeInvoiceID clears the value of the "stripe_invoice_id" field.
func (_u *SubscriptionTransactionUpdateOne) ClearStripeInvoiceID() *SubscriptionTransactionUpdateOne {
	_u.mutation.ClearStripeInvoiceID()
	return _u
}

// SetSubscription sets the "subscription" edge to the Subscription entity.
func (_u *SubscriptionTransactionUpdateOne) SetSubscription(v *Subscription) *SubscriptionTransactionUpdateOne {
	return _u.SetSubscriptionID(v.ID)
}

// Mutation returns the SubscriptionTransactionMutation object of the builder.
func (_u *SubscriptionTransactionUpdateOne) Mutation() *SubscriptionTransactionMutation {
	return _u.mutation
}

// ClearSubscription clears the "subscription" edge to the Subscription entity.
func (_u *SubscriptionTransactionUpdateOne) ClearSubscription() *SubscriptionTransactionUpdateOne {
	_u.mutation.ClearSubscription()
	return _u
}

// Where appends a list predicates to the SubscriptionTransactionUpdate builder.
func (_u *SubscriptionTransactionUpdateOne) Where(ps ...predicate.SubscriptionTransaction) *SubscriptionTransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubscriptionTransactionUpdateOne) Select(field string, fields ...string) *SubscriptionTransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubscriptionTransaction entity.
func (_u *SubscriptionTransactionUpdateOne) Save(ctx context.Context) (*SubscriptionTransaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubscriptionTransactionUpdateOne) SaveX(ctx context.Context) *SubscriptionTransaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubscriptionTransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubscriptionTransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubscriptionTransactionUpdateOne) check() error {
	if v, ok := _u.mutation.SubscriptionID(); ok {
		if err := subscriptiontransaction.SubscriptionIDValidator(v); err != nil {
			return &ValidationError{Name: "subscription_id", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTransaction.subscription_id": %w`, err)}
		}
	}
	if _u.mutation.SubscriptionCleared() && len(_u.mutation.SubscriptionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubscriptionTransaction.subscription"`)
	}
	return nil
}

func (_u *SubscriptionTransactionUpdateOne) sqlSave(ctx context.Context) (_node *SubscriptionTransaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subscriptiontransaction.Table, subscriptiontransaction.Columns, sqlgraph.NewFieldSpec(subscriptiontransaction.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubscriptionTransaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subscriptiontransaction.FieldID)
		for _, f := range fields {
			if !subscriptiontransaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subscriptiontransaction.FieldID {
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
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(subscriptiontransaction.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(subscriptiontransaction.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(subscriptiontransaction.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subscriptiontransaction.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StripePaymentID(); ok {
		_spec.SetField(subscriptiontransaction.FieldStripePaymentID, field.TypeString, value)
	}
	if _u.mutation.StripePaymentIDCleared() {
		_spec.ClearField(subscriptiontransaction.FieldStripePaymentID, field.TypeString)
	}
	if value, ok := _u.mutation.StripeInvoiceID(); ok {
		_spec.SetField(subscriptiontransaction.FieldStripeInvoiceID, field.TypeString, value)
	}
	if _u.mutation.StripeInvoiceIDCleared() {
		_spec.ClearField(subscriptiontransaction.FieldStripeInvoiceID, field.TypeString)
	}
	if _u.mutation.SubscriptionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subscriptiontransaction.SubscriptionTable,
			Columns: []string{subscriptiontransaction.SubscriptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subscriptiontransaction.SubscriptionTable,
			Columns: []string{subscriptiontransaction.SubscriptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SubscriptionTransaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subscriptiontransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
