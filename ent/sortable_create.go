// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/sortable"
	"github.com/crewforge/crewd/pkg/models"
)

// SorTableCreate is the builder for creating a SorTable entity.
type SorTableCreate struct {
	config
	mutation *SorTableMutation
	hooks    []Hook
}

// SetTeamID sets the "team_id" field.
func (_c *SorTableCreate) SetTeamID(v string) *SorTableCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SorTableCreate) SetName(v string) *SorTableCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetColumns sets the "columns" field.
func (_c *SorTableCreate) SetColumns(v []models.SorColumn) *SorTableCreate {
	_c.mutation.SetColumns(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SorTableCreate) SetCreatedAt(v time.Time) *SorTableCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SorTableCreate) SetNillableCreatedAt(v *time.Time) *SorTableCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SorTableCreate) SetUpdatedAt(v time.Time) *SorTableCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SorTableCreate) SetNillableUpdatedAt(v *time.Time) *SorTableCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SorTableCreate) SetID(v string) *SorTableCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SorTableMutation object of the builder.
func (_c *SorTableCreate) Mutation() *SorTableMutation {
	return _c.mutation
}

// Save creates the SorTable in the database.
func (_c *SorTableCreate) Save(ctx context.Context) (*SorTable, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SorTableCreate) SaveX(ctx context.Context) *SorTable {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SorTableCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SorTableCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SorTableCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sortable.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sortable.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SorTableCreate) check() error {
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "SorTable.team_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SorTable.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := sortable.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SorTable.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Columns(); !ok {
		return &ValidationError{Name: "columns", err: errors.New(`ent: missing required field "SorTable.columns"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SorTable.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SorTable.updated_at"`)}
	}
	return nil
}

func (_c *SorTableCreate) sqlSave(ctx context.Context) (*SorTable, error) {
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
			return nil, fmt.Errorf("unexpected SorTable.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SorTableCreate) createSpec() (*SorTable, *sqlgraph.CreateSpec) {
	var (
		_node = &SorTable{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sortable.Table, sqlgraph.NewFieldSpec(sortable.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(sortable.FieldTeamID, field.TypeString, value)
		_node.TeamID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(sortable.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Columns(); ok {
		_spec.SetField(sortable.FieldColumns, field.TypeJSON, value)
		_node.Columns = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sortable.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sortable.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SorTableCreateBulk is the builder for creating many SorTable entities in bulk.
type SorTableCreateBulk struct {
	config
	err      error
	builders []*SorTableCreate
}

// Save creates the SorTable entities in the database.
func (_c *SorTableCreateBulk) Save(ctx context.Context) ([]*SorTable, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SorTable, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SorTableMutation)
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
func (_c *SorTableCreateBulk) SaveX(ctx context.Context) []*SorTable {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SorTableCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SorTableCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
