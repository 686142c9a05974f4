// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/squadscore/ent/checkoutsession"
)

// CheckoutSessionCreate is the builder for creating a CheckoutSession entity.
type CheckoutSessionCreate struct {
	config
	mutation *CheckoutSessionMutation
	hooks    []Hook
}

// SetTargetType sets the "target_type" field.
func (_c *CheckoutSessionCreate) SetTargetType(v checkoutsession.TargetType) *CheckoutSessionCreate {
	_c.mutation.SetTargetType(v)
	return _c
}

// SetTargetID sets the "target_id" field.
func (_c *CheckoutSessionCreate) SetTargetID(v int) *CheckoutSessionCreate {
	_c.mutation.SetTargetID(v)
	return _c
}

// SetPlan sets the "plan" field.
func (_c *CheckoutSessionCreate) SetPlan(v checkoutsession.Plan) *CheckoutSessionCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *CheckoutSessionCreate) SetAmount(v int64) *CheckoutSessionCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *CheckoutSessionCreate) SetNillableAmount(v *int64) *CheckoutSessionCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *CheckoutSessionCreate) SetCurrency(v string) *CheckoutSessionCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *CheckoutSessionCreate) SetNillableCurrency(v *string) *CheckoutSessionCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CheckoutSessionCreate) SetStatus(v checkoutsession.Status) *CheckoutSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CheckoutSessionCreate) SetNillableStatus(v *checkoutsession.Status) *CheckoutSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *CheckoutSessionCreate) SetURL(v string) *CheckoutSessionCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *CheckoutSessionCreate) SetNillableURL(v *string) *CheckoutSessionCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *CheckoutSessionCreate) SetCreatedBy(v int) *CheckoutSessionCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *CheckoutSessionCreate) SetNillableCreatedBy(v *int) *CheckoutSessionCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CheckoutSessionCreate) SetCreatedAt(v time.Time) *CheckoutSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CheckoutSessionCreate) SetNillableCreatedAt(v *time.Time) *CheckoutSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CheckoutSessionCreate) SetUpdatedAt(v time.Time) *CheckoutSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CheckoutSessionCreate) SetNillableUpdatedAt(v *time.Time) *CheckoutSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CheckoutSessionCreate) SetID(v string) *CheckoutSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CheckoutSessionMutation object of the builder.
func (_c *CheckoutSessionCreate) Mutation() *CheckoutSessionMutation {
	return _c.mutation
}

// Save creates the CheckoutSession in the database.
func (_c *CheckoutSessionCreate) Save(ctx context.Context) (*CheckoutSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckoutSessionCreate) SaveX(ctx context.Context) *CheckoutSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckoutSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckoutSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckoutSessionCreate) defaults() {
	if _, ok := _c.mutation.Amount(); !ok {
		v := checkoutsession.DefaultAmount
		_c.mutation.SetAmount(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := checkoutsession.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := checkoutsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := checkoutsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := checkoutsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckoutSessionCreate) check() error {
	if _, ok := _c.mutation.TargetType(); !ok {
		return &ValidationError{Name: "target_type", err: errors.New(`ent: missing required field "CheckoutSession.target_type"`)}
	}
	if v, ok := _c.mutation.TargetType(); ok {
		if err := checkoutsession.TargetTypeValidator(v); err != nil {
			return &ValidationError{Name: "target_type", err: fmt.Errorf(`ent: validator failed for field "CheckoutSession.target_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetID(); !ok {
		return &ValidationError{Name: "target_id", err: errors.New(`ent: missing required field "CheckoutSession.target_id"`)}
	}
	if v, ok := _c.mutation.TargetID(); ok {
		if err := checkoutsession.TargetIDValidator(v); err != nil {
			return &ValidationError{Name: "target_id", err: fmt.Errorf(`ent: validator failed for field "CheckoutSession.target_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Plan(); !ok {
		return &ValidationError{Name: "plan", err: errors.New(`ent: missing required field "CheckoutSession.plan"`)}
	}
	if v, ok := _c.mutation.Plan(); ok {
		if err := checkoutsession.PlanValidator(v); err != nil {
			return &ValidationError{Name: "plan", err: fmt.Errorf(`ent: validator failed for field "CheckoutSession.plan": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "CheckoutSession.amount"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "CheckoutSession.currency"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CheckoutSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := checkoutsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CheckoutSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CheckoutSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CheckoutSession.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := checkoutsession.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "CheckoutSession.id": %w`, err)}
		}
	}
	return nil
}

func (_c *CheckoutSessionCreate) sqlSave(ctx context.Context) (*CheckoutSession, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CheckoutSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CheckoutSessionCreate) createSpec() (*CheckoutSession, *sqlgraph.CreateSpec) {
	var (
		_node = &CheckoutSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkoutsession.Table, sqlgraph.NewFieldSpec(checkoutsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TargetType(); ok {
		_spec.SetField(checkoutsession.FieldTargetType, field.TypeEnum, value)
		_node.TargetType = value
	}
	if value, ok := _c.mutation.TargetID(); ok {
		_spec.SetField(checkoutsession.FieldTargetID, field.TypeInt, value)
		_node.TargetID = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(checkoutsession.FieldPlan, field.TypeEnum, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(checkoutsession.FieldAmount, field.TypeInt64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(checkoutsession.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(checkoutsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(checkoutsession.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(checkoutsession.FieldCreatedBy, field.TypeInt, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(checkoutsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(checkoutsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CheckoutSessionCreateBulk is the builder for creating many CheckoutSession entities in bulk.
type CheckoutSessionCreateBulk struct {
	config
	err      error
	builders []*CheckoutSessionCreate
}

// Save creates the CheckoutSession entities in the database.
func (_c *CheckoutSessionCreateBulk) Save(ctx context.Context) ([]*CheckoutSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CheckoutSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckoutSessionMutation)
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
func (_c *CheckoutSessionCreateBulk) SaveX(ctx context.Context) []*CheckoutSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckoutSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckoutSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
