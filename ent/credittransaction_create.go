// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/credittransaction"
)

// CreditTransactionCreate is the builder for creating a CreditTransaction entity.
type CreditTransactionCreate struct {
	config
	mutation *CreditTransactionMutation
	hooks    []Hook
}

// SetTeamID sets the "team_id" field.
func (_c *CreditTransactionCreate) SetTeamID(v string) *CreditTransactionCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *CreditTransactionCreate) SetAmount(v int) *CreditTransactionCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *CreditTransactionCreate) SetReason(v string) *CreditTransactionCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *CreditTransactionCreate) SetCorrelationID(v string) *CreditTransactionCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_c *CreditTransactionCreate) SetNillableCorrelationID(v *string) *CreditTransactionCreate {
	if v != nil {
		_c.SetCorrelationID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CreditTransactionCreate) SetCreatedAt(v time.Time) *CreditTransactionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CreditTransactionCreate) SetNillableCreatedAt(v *time.Time) *CreditTransactionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the CreditTransactionMutation object of the builder.
func (_c *CreditTransactionCreate) Mutation() *CreditTransactionMutation {
	return _c.mutation
}

// Save creates the CreditTransaction in the database.
func (_c *CreditTransactionCreate) Save(ctx context.Context) (*CreditTransaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CreditTransactionCreate) SaveX(ctx context.Context) *CreditTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreditTransactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreditTransactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CreditTransactionCreate) defaults() {
	if _, ok := _c.mutation.CorrelationID(); !ok {
		v := credittransaction.DefaultCorrelationID
		_c.mutation.SetCorrelationID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := credittransaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CreditTransactionCreate) check() error {
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "CreditTransaction.team_id"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "CreditTransaction.amount"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "CreditTransaction.reason"`)}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "CreditTransaction.correlation_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CreditTransaction.created_at"`)}
	}
	return nil
}

func (_c *CreditTransactionCreate) sqlSave(ctx context.Context) (*CreditTransaction, error) {
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

func (_c *CreditTransactionCreate) createSpec() (*CreditTransaction, *sqlgraph.CreateSpec) {
	var (
		_node = &CreditTransaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(credittransaction.Table, sqlgraph.NewFieldSpec(credittransaction.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(credittransaction.FieldTeamID, field.TypeString, value)
		_node.TeamID = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(credittransaction.FieldAmount, field.TypeInt, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(credittransaction.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(credittransaction.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(credittransaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CreditTransactionCreateBulk is the builder for creating many CreditTransaction entities in bulk.
type CreditTransactionCreateBulk struct {
	config
	err      error
	builders []*CreditTransactionCreate
}

// Save creates the CreditTransaction entities in the database.
func (_c *CreditTransactionCreateBulk) Save(ctx context.Context) ([]*CreditTransaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CreditTransaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CreditTransactionMutation)
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
func (_c *CreditTransactionCreateBulk) SaveX(ctx context.Context) []*CreditTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreditTransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreditTransactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
