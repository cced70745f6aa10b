// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/activityevent"
)

// ActivityEventCreate is the builder for creating a ActivityEvent entity.
type ActivityEventCreate struct {
	config
	mutation *ActivityEventMutation
	hooks    []Hook
}

// SetTeamID sets the "team_id" field.
func (_c *ActivityEventCreate) SetTeamID(v string) *ActivityEventCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *ActivityEventCreate) SetAgentID(v string) *ActivityEventCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *ActivityEventCreate) SetNillableAgentID(v *string) *ActivityEventCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *ActivityEventCreate) SetEventType(v string) *ActivityEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ActivityEventCreate) SetSummary(v string) *ActivityEventCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *ActivityEventCreate) SetNillableSummary(v *string) *ActivityEventCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ActivityEventCreate) SetMetadata(v map[string]interface{}) *ActivityEventCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActivityEventCreate) SetCreatedAt(v time.Time) *ActivityEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActivityEventCreate) SetNillableCreatedAt(v *time.Time) *ActivityEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_c *ActivityEventCreate) Mutation() *ActivityEventMutation {
	return _c.mutation
}

// Save creates the ActivityEvent in the database.
func (_c *ActivityEventCreate) Save(ctx context.Context) (*ActivityEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivityEventCreate) SaveX(ctx context.Context) *ActivityEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActivityEventCreate) defaults() {
	if _, ok := _c.mutation.Summary(); !ok {
		v := activityevent.DefaultSummary
		_c.mutation.SetSummary(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := activityevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivityEventCreate) check() error {
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "ActivityEvent.team_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "ActivityEvent.event_type"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "ActivityEvent.summary"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ActivityEvent.created_at"`)}
	}
	return nil
}

func (_c *ActivityEventCreate) sqlSave(ctx context.Context) (*ActivityEvent, error) {
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

func (_c *ActivityEventCreate) createSpec() (*ActivityEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ActivityEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activityevent.Table, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(activityevent.FieldTeamID, field.TypeString, value)
		_node.TeamID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(activityevent.FieldAgentID, field.TypeString, value)
		_node.AgentID = &value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(activityevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(activityevent.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(activityevent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(activityevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ActivityEventCreateBulk is the builder for creating many ActivityEvent entities in bulk.
type ActivityEventCreateBulk struct {
	config
	err      error
	builders []*ActivityEventCreate
}

// Save creates the ActivityEvent entities in the database.
func (_c *ActivityEventCreateBulk) Save(ctx context.Context) ([]*ActivityEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActivityEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityEventMutation)
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
func (_c *ActivityEventCreateBulk) SaveX(ctx context.Context) []*ActivityEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
