// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/squadscore/ent/subscription"
	"github.com/jordanlanch/squadscore/ent/subscriptiontransaction"
)

// SubscriptionTransactionCreate is the builder for creating a SubscriptionTransaction entity.
type SubscriptionTransactionCreate struct {
	config
	mutation *SubscriptionTransactionMutation
	hooks    []Hook
}

// SetSubscriptionID sets the "subscription_id" field.
func (_c *SubscriptionTransactionCreate) SetSubscriptionID(v int) *SubscriptionTransactionCreate {
	_c.mutation.SetSubscriptionID(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *SubscriptionTransactionCreate) SetAmount(v int64) *SubscriptionTransactionCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *SubscriptionTransactionCreate) SetCurrency(v string) *SubscriptionTransactionCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *SubscriptionTransactionCreate) SetNillableCurrency(v *string) *SubscriptionTransactionCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubscriptionTransactionCreate) SetStatus(v string) *SubscriptionTransactionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubscriptionTransactionCreate) SetNillableStatus(v *string) *SubscriptionTransactionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStripePaymentID sets the "stripe_payment_id" field.
func (_c *SubscriptionTransactionCreate) SetStripePaymentID(v string) *SubscriptionTransactionCreate {
	_c.mutation.SetStripePaymentID(v)
	return _c
}

// SetNillableStripePaymentID sets the "stripe_payment_id" field if the given value is not nil.
func (_c *SubscriptionTransactionCreate) SetNillableStripePaymentID(v *string) *SubscriptionTransactionCreate {
	if v != nil {
		_c.SetStripePaymentID(*v)
	}
	return _c
}

// SetStripeInvoiceID sets the "stripe_invoice_id" field.
func (_c *SubscriptionTransactionCreate) SetStripeInvoiceID(v string) *SubscriptionTransactionCreate {
	_c.mutation.SetStripeInvoiceID(v)
	return _c
}

// SetNillableStripeInvoiceID sets the "stripe_invoice_id" field if the given value is not nil.
func (_c *SubscriptionTransactionCreate) SetNillableStripeInvoiceID(v *string) *SubscriptionTransactionCreate {
	if v != nil {
		_c.SetStripeInvoiceID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubscriptionTransactionCreate) SetCreatedAt(v time.Time) *SubscriptionTransactionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubscriptionTransactionCreate) SetNillableCreatedAt(v *time.Time) *SubscriptionTransactionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSubscription sets the "subscription" edge to the Subscription entity.
func (_c *SubscriptionTransactionCreate) SetSubscription(v *Subscription) *SubscriptionTransactionCreate {
	return _c.SetSubscriptionID(v.ID)
}

// Mutation returns the SubscriptionTransactionMutation object of the builder.
func (_c *SubscriptionTransactionCreate) Mutation() *SubscriptionTransactionMutation {
	return _c.mutation
}

// Save creates the SubscriptionTransaction in the database.
func (_c *SubscriptionTransactionCreate) Save(ctx context.Context) (*SubscriptionTransaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubscriptionTransactionCreate) SaveX(ctx context.Context) *SubscriptionTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubscriptionTransactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubscriptionTransactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubscriptionTransactionCreate) defaults() {
	if _, ok := _c.mutation.Currency(); !ok {
		v := subscriptiontransaction.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := subscriptiontransaction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subscriptiontransaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubscriptionTransactionCreate) check() error {
	if _, ok := _c.mutation.SubscriptionID(); !ok {
		return &ValidationError{Name: "subscription_id", err: errors.New(`ent: missing required field "SubscriptionTransaction.subscription_id"`)}
	}
	if v, ok := _c.mutation.SubscriptionID(); ok {
		if err := subscriptiontransaction.SubscriptionIDValidator(v); err != nil {
			return &ValidationError{Name: "subscription_id", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTransaction.subscription_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "SubscriptionTransaction.amount"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "SubscriptionTransaction.currency"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SubscriptionTransaction.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SubscriptionTransaction.created_at"`)}
	}
	if len(_c.mutation.SubscriptionIDs()) == 0 {
		return &ValidationError{Name: "subscription", err: errors.New(`ent: missing required edge "SubscriptionTransaction.subscription"`)}
	}
	return nil
}

func (_c *SubscriptionTransactionCreate) sqlSave(ctx context.Context) (*SubscriptionTransaction, error) {
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

func (_c *SubscriptionTransactionCreate) createSpec() (*SubscriptionTransaction, *sqlgraph.CreateSpec) {
	var (
		_node = &SubscriptionTransaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subscriptiontransaction.Table, sqlgraph.NewFieldSpec(subscriptiontransaction.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(subscriptiontransaction.FieldAmount, field.TypeInt64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(subscriptiontransaction.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(subscriptiontransaction.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StripePaymentID(); ok {
		_spec.SetField(subscriptiontransaction.FieldStripePaymentID, field.TypeString, value)
		_node.StripePaymentID = &value
	}
	if value, ok := _c.mutation.StripeInvoiceID(); ok {
		_spec.SetField(subscriptiontransaction.FieldStripeInvoiceID, field.TypeString, value)
		_node.StripeInvoiceID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subscriptiontransaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SubscriptionIDs(); len(nodes) > 0 {
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
		_node.SubscriptionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubscriptionTransactionCreateBulk is the builder for creating many SubscriptionTransaction entities in bulk.
type SubscriptionTransactionCreateBulk struct {
	config
	err      error
	builders []*SubscriptionTransactionCreate
}

// Save creates the SubscriptionTransaction entities in the database.
func (_c *SubscriptionTransactionCreateBulk) Save(ctx context.Context) ([]*SubscriptionTransaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubscriptionTransaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubscriptionTransactionMutation)
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
func (_c *SubscriptionTransactionCreateBulk) SaveX(ctx context.Context) []*SubscriptionTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubscriptionTransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubscriptionTransactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
