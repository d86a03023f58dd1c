// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ayumu/zukan/ent/viewevent"
)

// ViewEventCreate is the builder for creating a ViewEvent entity.
type ViewEventCreate struct {
	config
	mutation *ViewEventMutation
	hooks    []Hook
}

// SetTimestamp sets the "timestamp" field.
func (_c *ViewEventCreate) SetTimestamp(v time.Time) *ViewEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ViewEventCreate) SetNillableTimestamp(v *time.Time) *ViewEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetProfileID sets the "profile_id" field.
func (_c *ViewEventCreate) SetProfileID(v int) *ViewEventCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_c *ViewEventCreate) SetNillableProfileID(v *int) *ViewEventCreate {
	if v != nil {
		_c.SetProfileID(*v)
	}
	return _c
}

// SetTermID sets the "term_id" field.
func (_c *ViewEventCreate) SetTermID(v string) *ViewEventCreate {
	_c.mutation.SetTermID(v)
	return _c
}

// SetTermName sets the "term_name" field.
func (_c *ViewEventCreate) SetTermName(v string) *ViewEventCreate {
	_c.mutation.SetTermName(v)
	return _c
}

// Mutation returns the ViewEventMutation object of the builder.
func (_c *ViewEventCreate) Mutation() *ViewEventMutation {
	return _c.mutation
}

// Save creates the ViewEvent in the database.
func (_c *ViewEventCreate) Save(ctx context.Context) (*ViewEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ViewEventCreate) SaveX(ctx context.Context) *ViewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ViewEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ViewEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ViewEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := viewevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ProfileID(); !ok {
		v := viewevent.DefaultProfileID
		_c.mutation.SetProfileID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ViewEventCreate) check() error {
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ViewEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "ViewEvent.profile_id"`)}
	}
	if _, ok := _c.mutation.TermID(); !ok {
		return &ValidationError{Name: "term_id", err: errors.New(`ent: missing required field "ViewEvent.term_id"`)}
	}
	if v, ok := _c.mutation.TermID(); ok {
		if err := viewevent.TermIDValidator(v); err != nil {
			return &ValidationError{Name: "term_id", err: fmt.Errorf(`ent: validator failed for field "ViewEvent.term_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TermName(); !ok {
		return &ValidationError{Name: "term_name", err: errors.New(`ent: missing required field "ViewEvent.term_name"`)}
	}
	return nil
}

func (_c *ViewEventCreate) sqlSave(ctx context.Context) (*ViewEvent, error) {
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

func (_c *ViewEventCreate) createSpec() (*ViewEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ViewEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(viewevent.Table, sqlgraph.NewFieldSpec(viewevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(viewevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ProfileID(); ok {
		_spec.SetField(viewevent.FieldProfileID, field.TypeInt, value)
		_node.ProfileID = value
	}
	if value, ok := _c.mutation.TermID(); ok {
		_spec.SetField(viewevent.FieldTermID, field.TypeString, value)
		_node.TermID = value
	}
	if value, ok := _c.mutation.TermName(); ok {
		_spec.SetField(viewevent.FieldTermName, field.TypeString, value)
		_node.TermName = value
	}
	return _node, _spec
}

// ViewEventCreateBulk is the builder for creating many ViewEvent entities in bulk.
type ViewEventCreateBulk struct {
	config
	err      error
	builders []*ViewEventCreate
}

// Save creates the ViewEvent entities in the database.
func (_c *ViewEventCreateBulk) Save(ctx context.Context) ([]*ViewEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ViewEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ViewEventMutation)
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
func (_c *ViewEventCreateBulk) SaveX(ctx context.Context) []*ViewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ViewEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ViewEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
