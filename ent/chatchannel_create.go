// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/chatchannel"
)

// ChatChannelCreate is the builder for creating a ChatChannel entity.
type ChatChannelCreate struct {
	config
	mutation *ChatChannelMutation
	hooks    []Hook
}

// SetTeamID sets the "team_id" field.
func (_c *ChatChannelCreate) SetTeamID(v string) *ChatChannelCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ChatChannelCreate) SetName(v string) *ChatChannelCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetType sets the "type" field.
func (_c *ChatChannelCreate) SetType(v chatchannel.Type) *ChatChannelCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatChannelCreate) SetCreatedAt(v time.Time) *ChatChannelCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatChannelCreate) SetNillableCreatedAt(v *time.Time) *ChatChannelCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatChannelCreate) SetID(v string) *ChatChannelCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ChatChannelMutation object of the builder.
func (_c *ChatChannelCreate) Mutation() *ChatChannelMutation {
	return _c.mutation
}

// Save creates the ChatChannel in the database.
func (_c *ChatChannelCreate) Save(ctx context.Context) (*ChatChannel, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatChannelCreate) SaveX(ctx context.Context) *ChatChannel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatChannelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatChannelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatChannelCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chatchannel.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatChannelCreate) check() error {
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "ChatChannel.team_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ChatChannel.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := chatchannel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ChatChannel.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "ChatChannel.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := chatchannel.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "ChatChannel.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChatChannel.created_at"`)}
	}
	return nil
}

func (_c *ChatChannelCreate) sqlSave(ctx context.Context) (*ChatChannel, error) {
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
			return nil, fmt.Errorf("unexpected ChatChannel.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatChannelCreate) createSpec() (*ChatChannel, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatChannel{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatchannel.Table, sqlgraph.NewFieldSpec(chatchannel.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(chatchannel.FieldTeamID, field.TypeString, value)
		_node.TeamID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(chatchannel.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(chatchannel.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chatchannel.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ChatChannelCreateBulk is the builder for creating many ChatChannel entities in bulk.
type ChatChannelCreateBulk struct {
	config
	err      error
	builders []*ChatChannelCreate
}

// Save creates the ChatChannel entities in the database.
func (_c *ChatChannelCreateBulk) Save(ctx context.Context) ([]*ChatChannel, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatChannel, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatChannelMutation)
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
func (_c *ChatChannelCreateBulk) SaveX(ctx context.Context) []*ChatChannel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatChannelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatChannelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
