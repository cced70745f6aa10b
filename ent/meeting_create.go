// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/meeting"
)

// MeetingCreate is the builder for creating a Meeting entity.
type MeetingCreate struct {
	config
	mutation *MeetingMutation
	hooks    []Hook
}

// SetTeamID sets the "team_id" field.
func (_c *MeetingCreate) SetTeamID(v string) *MeetingCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *MeetingCreate) SetType(v string) *MeetingCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *MeetingCreate) SetTitle(v string) *MeetingCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MeetingCreate) SetStatus(v meeting.Status) *MeetingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableStatus(v *meeting.Status) *MeetingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAgentIds sets the "agent_ids" field.
func (_c *MeetingCreate) SetAgentIds(v []string) *MeetingCreate {
	_c.mutation.SetAgentIds(v)
	return _c
}

// SetAdvisorAgentID sets the "advisor_agent_id" field.
func (_c *MeetingCreate) SetAdvisorAgentID(v string) *MeetingCreate {
	_c.mutation.SetAdvisorAgentID(v)
	return _c
}

// SetCompanyName sets the "company_name" field.
func (_c *MeetingCreate) SetCompanyName(v string) *MeetingCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableCompanyName(v *string) *MeetingCreate {
	if v != nil {
		_c.SetCompanyName(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MeetingCreate) SetCreatedAt(v time.Time) *MeetingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableCreatedAt(v *time.Time) *MeetingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *MeetingCreate) SetEndedAt(v time.Time) *MeetingCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableEndedAt(v *time.Time) *MeetingCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MeetingCreate) SetID(v string) *MeetingCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MeetingMutation object of the builder.
func (_c *MeetingCreate) Mutation() *MeetingMutation {
	return _c.mutation
}

// Save creates the Meeting in the database.
func (_c *MeetingCreate) Save(ctx context.Context) (*Meeting, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MeetingCreate) SaveX(ctx context.Context) *Meeting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeetingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeetingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MeetingCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := meeting.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := meeting.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MeetingCreate) check() error {
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "Meeting.team_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Meeting.type"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Meeting.title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Meeting.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := meeting.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Meeting.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AgentIds(); !ok {
		return &ValidationError{Name: "agent_ids", err: errors.New(`ent: missing required field "Meeting.agent_ids"`)}
	}
	if _, ok := _c.mutation.AdvisorAgentID(); !ok {
		return &ValidationError{Name: "advisor_agent_id", err: errors.New(`ent: missing required field "Meeting.advisor_agent_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Meeting.created_at"`)}
	}
	return nil
}

func (_c *MeetingCreate) sqlSave(ctx context.Context) (*Meeting, error) {
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
			return nil, fmt.Errorf("unexpected Meeting.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MeetingCreate) createSpec() (*Meeting, *sqlgraph.CreateSpec) {
	var (
		_node = &Meeting{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(meeting.Table, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(meeting.FieldTeamID, field.TypeString, value)
		_node.TeamID = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(meeting.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(meeting.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(meeting.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AgentIds(); ok {
		_spec.SetField(meeting.FieldAgentIds, field.TypeJSON, value)
		_node.AgentIds = value
	}
	if value, ok := _c.mutation.AdvisorAgentID(); ok {
		_spec.SetField(meeting.FieldAdvisorAgentID, field.TypeString, value)
		_node.AdvisorAgentID = value
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(meeting.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(meeting.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(meeting.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	return _node, _spec
}

// MeetingCreateBulk is the builder for creating many Meeting entities in bulk.
type MeetingCreateBulk struct {
	config
	err      error
	builders []*MeetingCreate
}

// Save creates the Meeting entities in the database.
func (_c *MeetingCreateBulk) Save(ctx context.Context) ([]*Meeting, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Meeting, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MeetingMutation)
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
func (_c *MeetingCreateBulk) SaveX(ctx context.Context) []*Meeting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeetingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeetingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
