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
	"github.com/jordanlanch/squadscore/ent/review"
	"github.com/jordanlanch/squadscore/ent/user"
)

// FlagCreate is the builder for creating a Flag entity.
type FlagCreate struct {
	config
	mutation *FlagMutation
	hooks    []Hook
}

// SetReviewID sets the "review_id" field.
func (_c *FlagCreate) SetReviewID(v int) *FlagCreate {
	_c.mutation.SetReviewID(v)
	return _c
}

// SetReporterID sets the "reporter_id" field.
func (_c *FlagCreate) SetReporterID(v int) *FlagCreate {
	_c.mutation.SetReporterID(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *FlagCreate) SetReason(v string) *FlagCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetReporterIP sets the "reporter_ip" field.
func (_c *FlagCreate) SetReporterIP(v string) *FlagCreate {
	_c.mutation.SetReporterIP(v)
	return _c
}

// SetNillableReporterIP sets the "reporter_ip" field if the given value is not nil.
func (_c *FlagCreate) SetNillableReporterIP(v *string) *FlagCreate {
	if v != nil {
		_c.SetReporterIP(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *FlagCreate) SetStatus(v flag.Status) *FlagCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FlagCreate) SetNillableStatus(v *flag.Status) *FlagCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FlagCreate) SetCreatedAt(v time.Time) *FlagCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FlagCreate) SetNillableCreatedAt(v *time.Time) *FlagCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetReview sets the "review" edge to the Review entity.
func (_c *FlagCreate) SetReview(v *Review) *FlagCreate {
	return _c.SetReviewID(v.ID)
}

// SetReporter sets the "reporter" edge to the User entity.
func (_c *FlagCreate) SetReporter(v *User) *FlagCreate {
	return _c.SetReporterID(v.ID)
}

// Mutation returns the FlagMutation object of the builder.
func (_c *FlagCreate) Mutation() *FlagMutation {
	return _c.mutation
}

// Save creates the Flag in the database.
func (_c *FlagCreate) Save(ctx context.Context) (*Flag, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FlagCreate) SaveX(ctx context.Context) *Flag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlagCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlagCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FlagCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := flag.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := flag.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FlagCreate) check() error {
	if _, ok := _c.mutation.ReviewID(); !ok {
		return &ValidationError{Name: "review_id", err: errors.New(`ent: missing required field "Flag.review_id"`)}
	}
	if v, ok := _c.mutation.ReviewID(); ok {
		if err := flag.ReviewIDValidator(v); err != nil {
			return &ValidationError{Name: "review_id", err: fmt.Errorf(`ent: validator failed for field "Flag.review_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReporterID(); !ok {
		return &ValidationError{Name: "reporter_id", err: errors.New(`ent: missing required field "Flag.reporter_id"`)}
	}
	if v, ok := _c.mutation.ReporterID(); ok {
		if err := flag.ReporterIDValidator(v); err != nil {
			return &ValidationError{Name: "reporter_id", err: fmt.Errorf(`ent: validator failed for field "Flag.reporter_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "Flag.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := flag.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "Flag.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Flag.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := flag.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Flag.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Flag.created_at"`)}
	}
	if len(_c.mutation.ReviewIDs()) == 0 {
		return &ValidationError{Name: "review", err: errors.New(`ent: missing required edge "Flag.review"`)}
	}
	if len(_c.mutation.ReporterIDs()) == 0 {
		return &ValidationError{Name: "reporter", err: errors.New(`ent: missing required edge "Flag.reporter"`)}
	}
	return nil
}

func (_c *FlagCreate) sqlSave(ctx context.Context) (*Flag, error) {
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

func (_c *FlagCreate) createSpec() (*Flag, *sqlgraph.CreateSpec) {
	var (
		_node = &Flag{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(flag.Table, sqlgraph.NewFieldSpec(flag.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(flag.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.ReporterIP(); ok {
		_spec.SetField(flag.FieldReporterIP, field.TypeString, value)
		_node.ReporterIP = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(flag.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(flag.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ReviewIDs(); len(nodes) > 0 {
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
		_node.ReviewID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReporterIDs(); len(nodes) > 0 {
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
		_node.ReporterID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FlagCreateBulk is the builder for creating many Flag entities in bulk.
type FlagCreateBulk struct {
	config
	err      error
	builders []*FlagCreate
}

// Save creates the Flag entities in the database.
func (_c *FlagCreateBulk) Save(ctx context.Context) ([]*Flag, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Flag, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlagMutation)
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
func (_c *FlagCreateBulk) SaveX(ctx context.Context) []*Flag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlagCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlagCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
