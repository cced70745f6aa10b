// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/credittransaction"
	"github.com/crewforge/crewd/ent/predicate"
)

// CreditTransactionUpdate is the builder for updating CreditTransaction entities.
type CreditTransactionUpdate struct {
	config
	hooks    []Hook
	mutation *CreditTransactionMutation
}

// Where appends a list predicates to the CreditTransactionUpdate builder.
func (_u *CreditTransactionUpdate) Where(ps ...predicate.CreditTransaction) *CreditTransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAmount sets the "amount" field.
func (_u *CreditTransactionUpdate) SetAmount(v int) *CreditTransactionUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *CreditTransactionUpdate) SetNillableAmount(v *int) *CreditTransactionUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *CreditTransactionUpdate) AddAmount(v int) *CreditTransactionUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *CreditTransactionUpdate) SetReason(v string) *CreditTransactionUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *CreditTransactionUpdate) SetNillableReason(v *string) *CreditTransactionUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *CreditTransactionUpdate) SetCorrelationID(v string) *CreditTransactionUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *CreditTransactionUpdate) SetNillableCorrelationID(v *string) *CreditTransactionUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// Mutation returns the CreditTransactionMutation object of the builder.
func (_u *CreditTransactionUpdate) Mutation() *CreditTransactionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CreditTransactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreditTransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CreditTransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreditTransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CreditTransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(credittransaction.Table, credittransaction.Columns, sqlgraph.NewFieldSpec(credittransaction.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(credittransaction.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(credittransaction.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(credittransaction.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(credittransaction.FieldCorrelationID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{credittransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CreditTransactionUpdateOne is the builder for updating a single CreditTransaction entity.
type CreditTransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CreditTransactionMutation
}

// SetAmount sets the "amount" field.
func (_u *CreditTransactionUpdateOne) SetAmount(v int) *CreditTransactionUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *CreditTransactionUpdateOne) SetNillableAmount(v *int) *CreditTransactionUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *CreditTransactionUpdateOne) AddAmount(v int) *CreditTransactionUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *CreditTransactionUpdateOne) SetReason(v string) *CreditTransactionUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *CreditTransactionUpdateOne) SetNillableReason(v *string) *CreditTransactionUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *CreditTransactionUpdateOne) SetCorrelationID(v string) *CreditTransactionUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *CreditTransactionUpdateOne) SetNillableCorrelationID(v *string) *CreditTransactionUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// Mutation returns the CreditTransactionMutation object of the builder.
func (_u *CreditTransactionUpdateOne) Mutation() *CreditTransactionMutation {
	return _u.mutation
}

// Where appends a list predicates to the CreditTransactionUpdate builder.
func (_u *CreditTransactionUpdateOne) Where(ps ...predicate.CreditTransaction) *CreditTransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CreditTransactionUpdateOne) Select(field string, fields ...string) *CreditTransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CreditTransaction entity.
func (_u *CreditTransactionUpdateOne) Save(ctx context.Context) (*CreditTransaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreditTransactionUpdateOne) SaveX(ctx context.Context) *CreditTransaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CreditTransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreditTransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CreditTransactionUpdateOne) sqlSave(ctx context.Context) (_node *CreditTransaction, err error) {
	_spec := sqlgraph.NewUpdateSpec(credittransaction.Table, credittransaction.Columns, sqlgraph.NewFieldSpec(credittransaction.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CreditTransaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, credittransaction.FieldID)
		for _, f := range fields {
			if !credittransaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != credittransaction.FieldID {
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
		_spec.SetField(credittransaction.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(credittransaction.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(credittransaction.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(credittransaction.FieldCorrelationID, field.TypeString, value)
	}
	_node = &CreditTransaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{credittransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
