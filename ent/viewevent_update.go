// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ayumu/zukan/ent/predicate"
	"github.com/ayumu/zukan/ent/viewevent"
)

// ViewEventUpdate is the builder for updating ViewEvent entities.
type ViewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ViewEventMutation
}

// Where appends a list predicates to the ViewEventUpdate builder.
func (_u *ViewEventUpdate) Where(ps ...predicate.ViewEvent) *ViewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *ViewEventUpdate) SetProfileID(v int) *ViewEventUpdate {
	_u.mutation.ResetProfileID()
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ViewEventUpdate) SetNillableProfileID(v *int) *ViewEventUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// AddProfileID adds value to the "profile_id" field.
func (_u *ViewEventUpdate) AddProfileID(v int) *ViewEventUpdate {
	_u.mutation.AddProfileID(v)
	return _u
}

// SetTermID sets the "term_id" field.
func (_u *ViewEventUpdate) SetTermID(v string) *ViewEventUpdate {
	_u.mutation.SetTermID(v)
	return _u
}

// SetNillableTermID sets the "term_id" field if the given value is not nil.
func (_u *ViewEventUpdate) SetNillableTermID(v *string) *ViewEventUpdate {
	if v != nil {
		_u.SetTermID(*v)
	}
	return _u
}

// SetTermName sets the "term_name" field.
func (_u *ViewEventUpdate) SetTermName(v string) *ViewEventUpdate {
	_u.mutation.SetTermName(v)
	return _u
}

// SetNillableTermName sets the "term_name" field if the given value is not nil.
func (_u *ViewEventUpdate) SetNillableTermName(v *string) *ViewEventUpdate {
	if v != nil {
		_u.SetTermName(*v)
	}
	return _u
}

// Mutation returns the ViewEventMutation object of the builder.
func (_u *ViewEventUpdate) Mutation() *ViewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ViewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ViewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ViewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ViewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ViewEventUpdate) check() error {
	if v, ok := _u.mutation.TermID(); ok {
		if err := viewevent.TermIDValidator(v); err != nil {
			return &ValidationError{Name: "term_id", err: fmt.Errorf(`ent: validator failed for field "ViewEvent.term_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ViewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(viewevent.Table, viewevent.Columns, sqlgraph.NewFieldSpec(viewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(viewevent.FieldProfileID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProfileID(); ok {
		_spec.AddField(viewevent.FieldProfileID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TermID(); ok {
		_spec.SetField(viewevent.FieldTermID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TermName(); ok {
		_spec.SetField(viewevent.FieldTermName, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{viewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ViewEventUpdateOne is the builder for updating a single ViewEvent entity.
type ViewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ViewEventMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *ViewEventUpdateOne) SetProfileID(v int) *ViewEventUpdateOne {
	_u.mutation.ResetProfileID()
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ViewEventUpdateOne) SetNillableProfileID(v *int) *ViewEventUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// AddProfileID adds value to the "profile_id" field.
func (_u *ViewEventUpdateOne) AddProfileID(v int) *ViewEventUpdateOne {
	_u.mutation.AddProfileID(v)
	return _u
}

// SetTermID sets the "term_id" field.
func (_u *ViewEventUpdateOne) SetTermID(v string) *ViewEventUpdateOne {
	_u.mutation.SetTermID(v)
	return _u
}

// SetNillableTermID sets the "term_id" field if the given value is not nil.
func (_u *ViewEventUpdateOne) SetNillableTermID(v *string) *ViewEventUpdateOne {
	if v != nil {
		_u.SetTermID(*v)
	}
	return _u
}

// SetTermName sets the "term_name" field.
func (_u *ViewEventUpdateOne) SetTermName(v string) *ViewEventUpdateOne {
	_u.mutation.SetTermName(v)
	return _u
}

// SetNillableTermName sets the "term_name" field if the given value is not nil.
func (_u *ViewEventUpdateOne) SetNillableTermName(v *string) *ViewEventUpdateOne {
	if v != nil {
		_u.SetTermName(*v)
	}
	return _u
}

// Mutation returns the ViewEventMutation object of the builder.
func (_u *ViewEventUpdateOne) Mutation() *ViewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ViewEventUpdate builder.
func (_u *ViewEventUpdateOne) Where(ps ...predicate.ViewEvent) *ViewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ViewEventUpdateOne) Select(field string, fields ...string) *ViewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ViewEvent entity.
func (_u *ViewEventUpdateOne) Save(ctx context.Context) (*ViewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ViewEventUpdateOne) SaveX(ctx context.Context) *ViewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ViewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ViewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ViewEventUpdateOne) check() error {
	if v, ok := _u.mutation.TermID(); ok {
		if err := viewevent.TermIDValidator(v); err != nil {
			return &ValidationError{Name: "term_id", err: fmt.Errorf(`ent: validator failed for field "ViewEvent.term_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ViewEventUpdateOne) sqlSave(ctx context.Context) (_node *ViewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(viewevent.Table, viewevent.Columns, sqlgraph.NewFieldSpec(viewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ViewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, viewevent.FieldID)
		for _, f := range fields {
			if !viewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != viewevent.FieldID {
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
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(viewevent.FieldProfileID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProfileID(); ok {
		_spec.AddField(viewevent.FieldProfileID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TermID(); ok {
		_spec.SetField(viewevent.FieldTermID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TermName(); ok {
		_spec.SetField(viewevent.FieldTermName, field.TypeString, value)
	}
	_node = &ViewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{viewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
