// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/predicate"
	"github.com/crewforge/crewd/ent/sorpermission"
)

// SorPermissionUpdate is the builder for updating SorPermission entities.
type SorPermissionUpdate struct {
	config
	hooks    []Hook
	mutation *SorPermissionMutation
}

// Where appends a list predicates to the SorPermissionUpdate builder.
func (_u *SorPermissionUpdate) Where(ps ...predicate.SorPermission) *SorPermissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCanRead sets the "can_read" field.
func (_u *SorPermissionUpdate) SetCanRead(v bool) *SorPermissionUpdate {
	_u.mutation.SetCanRead(v)
	return _u
}

// SetNillableCanRead sets the "can_read" field if the given value is not nil.
func (_u *SorPermissionUpdate) SetNillableCanRead(v *bool) *SorPermissionUpdate {
	if v != nil {
		_u.SetCanRead(*v)
	}
	return _u
}

// SetCanWrite sets the "can_write" field.
func (_u *SorPermissionUpdate) SetCanWrite(v bool) *SorPermissionUpdate {
	_u.mutation.SetCanWrite(v)
	return _u
}

// SetNillableCanWrite sets the "can_write" field if the given value is not nil.
func (_u *SorPermissionUpdate) SetNillableCanWrite(v *bool) *SorPermissionUpdate {
	if v != nil {
		_u.SetCanWrite(*v)
	}
	return _u
}

// Mutation returns the SorPermissionMutation object of the builder.
func (_u *SorPermissionUpdate) Mutation() *SorPermissionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SorPermissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SorPermissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SorPermissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SorPermissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SorPermissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sorpermission.Table, sorpermission.Columns, sqlgraph.NewFieldSpec(sorpermission.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CanRead(); ok {
		_spec.SetField(sorpermission.FieldCanRead, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CanWrite(); ok {
		_spec.SetField(sorpermission.FieldCanWrite, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sorpermission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SorPermissionUpdateOne is the builder for updating a single SorPermission entity.
type SorPermissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SorPermissionMutation
}

// SetCanRead sets the "can_read" field.
func (_u *SorPermissionUpdateOne) SetCanRead(v bool) *SorPermissionUpdateOne {
	_u.mutation.SetCanRead(v)
	return _u
}

// SetNillableCanRead sets the "can_read" field if the given value is not nil.
func (_u *SorPermissionUpdateOne) SetNillableCanRead(v *bool) *SorPermissionUpdateOne {
	if v != nil {
		_u.SetCanRead(*v)
	}
	return _u
}

// SetCanWrite sets the "can_write" field.
func (_u *SorPermissionUpdateOne) SetCanWrite(v bool) *SorPermissionUpdateOne {
	_u.mutation.SetCanWrite(v)
	return _u
}

// SetNillableCanWrite sets the "can_write" field if the given value is not nil.
func (_u *SorPermissionUpdateOne) SetNillableCanWrite(v *bool) *SorPermissionUpdateOne {
	if v != nil {
		_u.SetCanWrite(*v)
	}
	return _u
}

// Mutation returns the SorPermissionMutation object of the builder.
func (_u *SorPermissionUpdateOne) Mutation() *SorPermissionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SorPermissionUpdate builder.
func (_u *SorPermissionUpdateOne) Where(ps ...predicate.SorPermission) *SorPermissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SorPermissionUpdateOne) Select(field string, fields ...string) *SorPermissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SorPermission entity.
func (_u *SorPermissionUpdateOne) Save(ctx context.Context) (*SorPermission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SorPermissionUpdateOne) SaveX(ctx context.Context) *SorPermission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SorPermissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SorPermissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SorPermissionUpdateOne) sqlSave(ctx context.Context) (_node *SorPermission, err error) {
	_spec := sqlgraph.NewUpdateSpec(sorpermission.Table, sorpermission.Columns, sqlgraph.NewFieldSpec(sorpermission.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SorPermission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sorpermission.FieldID)
		for _, f := range fields {
			if !sorpermission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sorpermission.FieldID {
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
	if value, ok := _u.mutation.CanRead(); ok {
		_spec.SetField(sorpermission.FieldCanRead, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CanWrite(); ok {
		_spec.SetField(sorpermission.FieldCanWrite, field.TypeBool, value)
	}
	_node = &SorPermission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sorpermission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
