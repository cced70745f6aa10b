// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/chatchannel"
	"github.com/crewforge/crewd/ent/predicate"
)

// ChatChannelUpdate is the builder for updating ChatChannel entities.
type ChatChannelUpdate struct {
	config
	hooks    []Hook
	mutation *ChatChannelMutation
}

// Where appends a list predicates to the ChatChannelUpdate builder.
func (_u *ChatChannelUpdate) Where(ps ...predicate.ChatChannel) *ChatChannelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ChatChannelUpdate) SetName(v string) *ChatChannelUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChatChannelUpdate) SetNillableName(v *string) *ChatChannelUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ChatChannelUpdate) SetType(v chatchannel.Type) *ChatChannelUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ChatChannelUpdate) SetNillableType(v *chatchannel.Type) *ChatChannelUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// Mutation returns the ChatChannelMutation object of the builder.
func (_u *ChatChannelUpdate) Mutation() *ChatChannelMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatChannelUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatChannelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatChannelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatChannelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatChannelUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := chatchannel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ChatChannel.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := chatchannel.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "ChatChannel.type": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatChannelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatchannel.Table, chatchannel.Columns, sqlgraph.NewFieldSpec(chatchannel.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(chatchannel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(chatchannel.FieldType, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatchannel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatChannelUpdateOne is the builder for updating a single ChatChannel entity.
type ChatChannelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatChannelMutation
}

// SetName sets the "name" field.
func (_u *ChatChannelUpdateOne) SetName(v string) *ChatChannelUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChatChannelUpdateOne) SetNillableName(v *string) *ChatChannelUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ChatChannelUpdateOne) SetType(v chatchannel.Type) *ChatChannelUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ChatChannelUpdateOne) SetNillableType(v *chatchannel.Type) *ChatChannelUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// Mutation returns the ChatChannelMutation object of the builder.
func (_u *ChatChannelUpdateOne) Mutation() *ChatChannelMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatChannelUpdate builder.
func (_u *ChatChannelUpdateOne) Where(ps ...predicate.ChatChannel) *ChatChannelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatChannelUpdateOne) Select(field string, fields ...string) *ChatChannelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatChannel entity.
func (_u *ChatChannelUpdateOne) Save(ctx context.Context) (*ChatChannel, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatChannelUpdateOne) SaveX(ctx context.Context) *ChatChannel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatChannelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatChannelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatChannelUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := chatchannel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ChatChannel.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := chatchannel.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "ChatChannel.type": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatChannelUpdateOne) sqlSave(ctx context.Context) (_node *ChatChannel, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatchannel.Table, chatchannel.Columns, sqlgraph.NewFieldSpec(chatchannel.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatChannel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatchannel.FieldID)
		for _, f := range fields {
			if !chatchannel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatchannel.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(chatchannel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(chatchannel.FieldType, field.TypeEnum, value)
	}
	_node = &ChatChannel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatchannel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
