// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/predicate"
	"github.com/crewforge/crewd/ent/sortable"
	"github.com/crewforge/crewd/pkg/models"
)

// SorTableUpdate is the builder for updating SorTable entities.
type SorTableUpdate struct {
	config
	hooks    []Hook
	mutation *SorTableMutation
}

// Where appends a list predicates to the SorTableUpdate builder.
func (_u *SorTableUpdate) Where(ps ...predicate.SorTable) *SorTableUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SorTableUpdate) SetName(v string) *SorTableUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SorTableUpdate) SetNillableName(v *string) *SorTableUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetColumns sets the "columns" field.
func (_u *SorTableUpdate) SetColumns(v []models.SorColumn) *SorTableUpdate {
	_u.mutation.SetColumns(v)
	return _u
}

// AppendColumns appends value to the "columns" field.
func (_u *SorTableUpdate) AppendColumns(v []models.SorColumn) *SorTableUpdate {
	_u.mutation.AppendColumns(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SorTableUpdate) SetUpdatedAt(v time.Time) *SorTableUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SorTableMutation object of the builder.
func (_u *SorTableUpdate) Mutation() *SorTableMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SorTableUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SorTableUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SorTableUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SorTableUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SorTableUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sortable.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SorTableUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := sortable.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SorTable.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SorTableUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sortable.Table, sortable.Columns, sqlgraph.NewFieldSpec(sortable.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(sortable.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Columns(); ok {
		_spec.SetField(sortable.FieldColumns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedColumns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sortable.FieldColumns, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sortable.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sortable.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SorTableUpdateOne is the builder for updating a single SorTable entity.
type SorTableUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SorTableMutation
}

// SetName sets the "name" field.
func (_u *SorTableUpdateOne) SetName(v string) *SorTableUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SorTableUpdateOne) SetNillableName(v *string) *SorTableUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetColumns sets the "columns" field.
func (_u *SorTableUpdateOne) SetColumns(v []models.SorColumn) *SorTableUpdateOne {
	_u.mutation.SetColumns(v)
	return _u
}

// AppendColumns appends value to the "columns" field.
func (_u *SorTableUpdateOne) AppendColumns(v []models.SorColumn) *SorTableUpdateOne {
	_u.mutation.AppendColumns(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SorTableUpdateOne) SetUpdatedAt(v time.Time) *SorTableUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SorTableMutation object of the builder.
func (_u *SorTableUpdateOne) Mutation() *SorTableMutation {
	return _u.mutation
}

// Where appends a list predicates to the SorTableUpdate builder.
func (_u *SorTableUpdateOne) Where(ps ...predicate.SorTable) *SorTableUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SorTableUpdateOne) Select(field string, fields ...string) *SorTableUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SorTable entity.
func (_u *SorTableUpdateOne) Save(ctx context.Context) (*SorTable, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SorTableUpdateOne) SaveX(ctx context.Context) *SorTable {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SorTableUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SorTableUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SorTableUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sortable.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SorTableUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := sortable.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SorTable.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SorTableUpdateOne) sqlSave(ctx context.Context) (_node *SorTable, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sortable.Table, sortable.Columns, sqlgraph.NewFieldSpec(sortable.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SorTable.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sortable.FieldID)
		for _, f := range fields {
			if !sortable.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sortable.FieldID {
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
		_spec.SetField(sortable.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Columns(); ok {
		_spec.SetField(sortable.FieldColumns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedColumns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sortable.FieldColumns, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sortable.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SorTable{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sortable.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
