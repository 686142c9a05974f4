// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/squadscore/ent/orgresponse"
	"github.com/jordanlanch/squadscore/ent/review"
	"github.com/jordanlanch/squadscore/ent/user"
)

// OrgResponseCreate is the builder for creating a OrgResponse entity.
type OrgResponseCreate struct {
	config
	mutation *OrgResponseMutation
	hooks    []Hook
}

// SetReviewID sets the "review_id" field.
func (_c *OrgResponseCreate) SetReviewID(v int) *OrgResponseCreate {
	_c.mutation.SetReviewID(v)
	return _c
}

// SetResponderID sets the "responder_id" field.
func (_c *OrgResponseCreate) SetResponderID(v int) *OrgResponseCreate {
	_c.mutation.SetResponderID(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *OrgResponseCreate) SetBody(v string) *OrgResponseCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrgResponseCreate) SetCreatedAt(v time.Time) *OrgResponseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrgResponseCreate) SetNillableCreatedAt(v *time.Time) *OrgResponseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OrgResponseCreate) SetUpdatedAt(v time.Time) *OrgResponseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OrgResponseCreate) SetNillableUpdatedAt(v *time.Time) *OrgResponseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetReview sets the "review" edge to the Review entity.
func (_c *OrgResponseCreate) SetReview(v *Review) *OrgResponseCreate {
	return _c.SetReviewID(v.ID)
}

// SetResponder sets the "responder" edge to the User entity.
func (_c *OrgResponseCreate) SetResponder(v *User) *OrgResponseCreate {
	return _c.SetResponderID(v.ID)
}

// Mutation returns the OrgResponseMutation object of the builder.
func (_c *OrgResponseCreate) Mutation() *OrgResponseMutation {
	return _c.mutation
}

// Save creates the OrgResponse in the database.
func (_c *OrgResponseCreate) Save(ctx context.Context) (*OrgResponse, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrgResponseCreate) SaveX(ctx context.Context) *OrgResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrgResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrgResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrgResponseCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := orgresponse.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := orgresponse.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrgResponseCreate) check() error {
	if _, ok := _c.mutation.ReviewID(); !ok {
		return &ValidationError{Name: "review_id", err: errors.New(`ent: missing required field "OrgResponse.review_id"`)}
	}
	if v, ok := _c.mutation.ReviewID(); ok {
		if err := orgresponse.ReviewIDValidator(v); err != nil {
			return &ValidationError{Name: "review_id", err: fmt.Errorf(`ent: validator failed for field "OrgResponse.review_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResponderID(); !ok {
		return &ValidationError{Name: "responder_id", err: errors.New(`ent: missing required field "OrgResponse.responder_id"`)}
	}
	if v, ok := _c.mutation.ResponderID(); ok {
		if err := orgresponse.ResponderIDValidator(v); err != nil {
			return &ValidationError{Name: "responder_id", err: fmt.Errorf(`ent: validator failed for field "OrgResponse.responder_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "OrgResponse.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := orgresponse.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "OrgResponse.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OrgResponse.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "OrgResponse.updated_at"`)}
	}
	if len(_c.mutation.ReviewIDs()) == 0 {
		return &ValidationError{Name: "review", err: errors.New(`ent: missing required edge "OrgResponse.review"`)}
	}
	if len(_c.mutation.ResponderIDs()) == 0 {
		return &ValidationError{Name: "responder", err: errors.New(`ent: missing required edge "OrgResponse.responder"`)}
	}
	return nil
}

func (_c *OrgResponseCreate) sqlSave(ctx context.Context) (*OrgResponse, error) {
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

func (_c *OrgResponseCreate) createSpec() (*OrgResponse, *sqlgraph.CreateSpec) {
	var (
		_node = &OrgResponse{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orgresponse.Table, sqlgraph.NewFieldSpec(orgresponse.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(orgresponse.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(orgresponse.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(orgresponse.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ReviewIDs(); len(nodes) > 0 {
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
		_node.ReviewID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResponderIDs(); len(nodes) > 0 {
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
		_node.ResponderID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OrgResponseCreateBulk is the builder for creating many OrgResponse entities in bulk.
type OrgResponseCreateBulk struct {
	config
	err      error
	builders []*OrgResponseCreate
}

// Save creates the OrgResponse entities in the database.
func (_c *OrgResponseCreateBulk) Save(ctx context.Context) ([]*OrgResponse, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrgResponse, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrgResponseMutation)
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
func (_c *OrgResponseCreateBulk) SaveX(ctx context.Context) []*OrgResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrgResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrgResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
