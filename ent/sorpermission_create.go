// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/sorpermission"
)

// SorPermissionCreate is the builder for creating a SorPermission entity.
type SorPermissionCreate struct {
	config
	mutation *SorPermissionMutation
	hooks    []Hook
}

// SetTableID sets the "table_id" field.
func (_c *SorPermissionCreate) SetTableID(v string) *SorPermissionCreate {
	_c.mutation.SetTableID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *SorPermissionCreate) SetAgentID(v string) *SorPermissionCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetTeamID sets the "team_id" field.
func (_c *SorPermissionCreate) SetTeamID(v string) *SorPermissionCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetCanRead sets the "can_read" field.
func (_c *SorPermissionCreate) SetCanRead(v bool) *SorPermissionCreate {
	_c.mutation.SetCanRead(v)
	return _c
}

// SetNillableCanRead sets the "can_read" field if the given value is not nil.
func (_c *SorPermissionCreate) SetNillableCanRead(v *bool) *SorPermissionCreate {
	if v != nil {
		_c.SetCanRead(*v)
	}
	return _c
}

// SetCanWrite sets the "can_write" field.
func (_c *SorPermissionCreate) SetCanWrite(v bool) *SorPermissionCreate {
	_c.mutation.SetCanWrite(v)
	return _c
}

// SetNillableCanWrite sets the "can_write" field if the given value is not nil.
func (_c *SorPermissionCreate) SetNillableCanWrite(v *bool) *SorPermissionCreate {
	if v != nil {
		_c.SetCanWrite(*v)
	}
	return _c
}

// Mutation returns the SorPermissionMutation object of the builder.
func (_c *SorPermissionCreate) Mutation() *SorPermissionMutation {
	return _c.mutation
}

// Save creates the SorPermission in the database.
func (_c *SorPermissionCreate) Save(ctx context.Context) (*SorPermission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SorPermissionCreate) SaveX(ctx context.Context) *SorPermission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SorPermissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SorPermissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SorPermissionCreate) defaults() {
	if _, ok := _c.mutation.CanRead(); !ok {
		v := sorpermission.DefaultCanRead
		_c.mutation.SetCanRead(v)
	}
	if _, ok := _c.mutation.CanWrite(); !ok {
		v := sorpermission.DefaultCanWrite
		_c.mutation.SetCanWrite(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SorPermissionCreate) check() error {
	if _, ok := _c.mutation.TableID(); !ok {
		return &ValidationError{Name: "table_id", err: errors.New(`ent: missing required field "SorPermission.table_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "SorPermission.agent_id"`)}
	}
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "SorPermission.team_id"`)}
	}
	if _, ok := _c.mutation.CanRead(); !ok {
		return &ValidationError{Name: "can_read", err: errors.New(`ent: missing required field "SorPermission.can_read"`)}
	}
	if _, ok := _c.mutation.CanWrite(); !ok {
		return &ValidationError{Name: "can_write", err: errors.New(`ent: missing required field "SorPermission.can_write"`)}
	}
	return nil
}

func (_c *SorPermissionCreate) sqlSave(ctx context.Context) (*SorPermission, error) {
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

func (_c *SorPermissionCreate) createSpec() (*SorPermission, *sqlgraph.CreateSpec) {
	var (
		_node = &SorPermission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sorpermission.Table, sqlgraph.NewFieldSpec(sorpermission.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TableID(); ok {
		_spec.SetField(sorpermission.FieldTableID, field.TypeString, value)
		_node.TableID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(sorpermission.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(sorpermission.FieldTeamID, field.TypeString, value)
		_node.TeamID = value
	}
	if value, ok := _c.mutation.CanRead(); ok {
		_spec.SetField(sorpermission.FieldCanRead, field.TypeBool, value)
		_node.CanRead = value
	}
	if value, ok := _c.mutation.CanWrite(); ok {
		_spec.SetField(sorpermission.FieldCanWrite, field.TypeBool, value)
		_node.CanWrite = value
	}
	return _node, _spec
}

// SorPermissionCreateBulk is the builder for creating many SorPermission entities in bulk.
type SorPermissionCreateBulk struct {
	config
	err      error
	builders []*SorPermissionCreate
}

// Save creates the SorPermission entities in the database.
func (_c *SorPermissionCreateBulk) Save(ctx context.Context) ([]*SorPermission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SorPermission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SorPermissionMutation)
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
func (_c *SorPermissionCreateBulk) SaveX(ctx context.Context) []*SorPermission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SorPermissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SorPermissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
