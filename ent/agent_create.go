// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/agent"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
}

// SetTeamID sets the "team_id" field.
func (_c *AgentCreate) SetTeamID(v string) *AgentCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AgentCreate) SetName(v string) *AgentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentCreate) SetStatus(v agent.Status) *AgentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentCreate) SetNillableStatus(v *agent.Status) *AgentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDepartment sets the "department" field.
func (_c *AgentCreate) SetDepartment(v string) *AgentCreate {
	_c.mutation.SetDepartment(v)
	return _c
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_c *AgentCreate) SetNillableDepartment(v *string) *AgentCreate {
	if v != nil {
		_c.SetDepartment(*v)
	}
	return _c
}

// SetModelID sets the "model_id" field.
func (_c *AgentCreate) SetModelID(v string) *AgentCreate {
	_c.mutation.SetModelID(v)
	return _c
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillableModelID(v *string) *AgentCreate {
	if v != nil {
		_c.SetModelID(*v)
	}
	return _c
}

// SetModelEndpoint sets the "model_endpoint" field.
func (_c *AgentCreate) SetModelEndpoint(v string) *AgentCreate {
	_c.mutation.SetModelEndpoint(v)
	return _c
}

// SetNillableModelEndpoint sets the "model_endpoint" field if the given value is not nil.
func (_c *AgentCreate) SetNillableModelEndpoint(v *string) *AgentCreate {
	if v != nil {
		_c.SetModelEndpoint(*v)
	}
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *AgentCreate) SetModelName(v string) *AgentCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *AgentCreate) SetNillableModelName(v *string) *AgentCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *AgentCreate) SetSystemPrompt(v string) *AgentCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_c *AgentCreate) SetNillableSystemPrompt(v *string) *AgentCreate {
	if v != nil {
		_c.SetSystemPrompt(*v)
	}
	return _c
}

// SetSkills sets the "skills" field.
func (_c *AgentCreate) SetSkills(v []string) *AgentCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetProactive sets the "proactive" field.
func (_c *AgentCreate) SetProactive(v bool) *AgentCreate {
	_c.mutation.SetProactive(v)
	return _c
}

// SetNillableProactive sets the "proactive" field if the given value is not nil.
func (_c *AgentCreate) SetNillableProactive(v *bool) *AgentCreate {
	if v != nil {
		_c.SetProactive(*v)
	}
	return _c
}

// SetHeartbeatSeconds sets the "heartbeat_seconds" field.
func (_c *AgentCreate) SetHeartbeatSeconds(v int) *AgentCreate {
	_c.mutation.SetHeartbeatSeconds(v)
	return _c
}

// SetNillableHeartbeatSeconds sets the "heartbeat_seconds" field if the given value is not nil.
func (_c *AgentCreate) SetNillableHeartbeatSeconds(v *int) *AgentCreate {
	if v != nil {
		_c.SetHeartbeatSeconds(*v)
	}
	return _c
}

// SetActiveHoursStart sets the "active_hours_start" field.
func (_c *AgentCreate) SetActiveHoursStart(v int) *AgentCreate {
	_c.mutation.SetActiveHoursStart(v)
	return _c
}

// SetNillableActiveHoursStart sets the "active_hours_start" field if the given value is not nil.
func (_c *AgentCreate) SetNillableActiveHoursStart(v *int) *AgentCreate {
	if v != nil {
		_c.SetActiveHoursStart(*v)
	}
	return _c
}

// SetActiveHoursEnd sets the "active_hours_end" field.
func (_c *AgentCreate) SetActiveHoursEnd(v int) *AgentCreate {
	_c.mutation.SetActiveHoursEnd(v)
	return _c
}

// SetNillableActiveHoursEnd sets the "active_hours_end" field if the given value is not nil.
func (_c *AgentCreate) SetNillableActiveHoursEnd(v *int) *AgentCreate {
	if v != nil {
		_c.SetActiveHoursEnd(*v)
	}
	return _c
}

// SetTemplateID sets the "template_id" field.
func (_c *AgentCreate) SetTemplateID(v string) *AgentCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillableTemplateID(v *string) *AgentCreate {
	if v != nil {
		_c.SetTemplateID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentCreate) SetCreatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCreatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentCreate) SetUpdatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableUpdatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentCreate) SetID(v string) *AgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ModelID(); !ok {
		v := agent.DefaultModelID
		_c.mutation.SetModelID(v)
	}
	if _, ok := _c.mutation.SystemPrompt(); !ok {
		v := agent.DefaultSystemPrompt
		_c.mutation.SetSystemPrompt(v)
	}
	if _, ok := _c.mutation.Proactive(); !ok {
		v := agent.DefaultProactive
		_c.mutation.SetProactive(v)
	}
	if _, ok := _c.mutation.HeartbeatSeconds(); !ok {
		v := agent.DefaultHeartbeatSeconds
		_c.mutation.SetHeartbeatSeconds(v)
	}
	if _, ok := _c.mutation.ActiveHoursStart(); !ok {
		v := agent.DefaultActiveHoursStart
		_c.mutation.SetActiveHoursStart(v)
	}
	if _, ok := _c.mutation.ActiveHoursEnd(); !ok {
		v := agent.DefaultActiveHoursEnd
		_c.mutation.SetActiveHoursEnd(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "Agent.team_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Agent.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := agent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agent.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Agent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelID(); !ok {
		return &ValidationError{Name: "model_id", err: errors.New(`ent: missing required field "Agent.model_id"`)}
	}
	if _, ok := _c.mutation.SystemPrompt(); !ok {
		return &ValidationError{Name: "system_prompt", err: errors.New(`ent: missing required field "Agent.system_prompt"`)}
	}
	if _, ok := _c.mutation.Proactive(); !ok {
		return &ValidationError{Name: "proactive", err: errors.New(`ent: missing required field "Agent.proactive"`)}
	}
	if _, ok := _c.mutation.HeartbeatSeconds(); !ok {
		return &ValidationError{Name: "heartbeat_seconds", err: errors.New(`ent: missing required field "Agent.heartbeat_seconds"`)}
	}
	if v, ok := _c.mutation.HeartbeatSeconds(); ok {
		if err := agent.HeartbeatSecondsValidator(v); err != nil {
			return &ValidationError{Name: "heartbeat_seconds", err: fmt.Errorf(`ent: validator failed for field "Agent.heartbeat_seconds": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActiveHoursStart(); !ok {
		return &ValidationError{Name: "active_hours_start", err: errors.New(`ent: missing required field "Agent.active_hours_start"`)}
	}
	if v, ok := _c.mutation.ActiveHoursStart(); ok {
		if err := agent.ActiveHoursStartValidator(v); err != nil {
			return &ValidationError{Name: "active_hours_start", err: fmt.Errorf(`ent: validator failed for field "Agent.active_hours_start": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActiveHoursEnd(); !ok {
		return &ValidationError{Name: "active_hours_end", err: errors.New(`ent: missing required field "Agent.active_hours_end"`)}
	}
	if v, ok := _c.mutation.ActiveHoursEnd(); ok {
		if err := agent.ActiveHoursEndValidator(v); err != nil {
			return &ValidationError{Name: "active_hours_end", err: fmt.Errorf(`ent: validator failed for field "Agent.active_hours_end": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Agent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Agent.updated_at"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
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
			return nil, fmt.Errorf("unexpected Agent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(agent.FieldTeamID, field.TypeString, value)
		_node.TeamID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Department(); ok {
		_spec.SetField(agent.FieldDepartment, field.TypeString, value)
		_node.Department = &value
	}
	if value, ok := _c.mutation.ModelID(); ok {
		_spec.SetField(agent.FieldModelID, field.TypeString, value)
		_node.ModelID = value
	}
	if value, ok := _c.mutation.ModelEndpoint(); ok {
		_spec.SetField(agent.FieldModelEndpoint, field.TypeString, value)
		_node.ModelEndpoint = &value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(agent.FieldModelName, field.TypeString, value)
		_node.ModelName = &value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(agent.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(agent.FieldSkills, field.TypeJSON, value)
		_node.Skills = value
	}
	if value, ok := _c.mutation.Proactive(); ok {
		_spec.SetField(agent.FieldProactive, field.TypeBool, value)
		_node.Proactive = value
	}
	if value, ok := _c.mutation.HeartbeatSeconds(); ok {
		_spec.SetField(agent.FieldHeartbeatSeconds, field.TypeInt, value)
		_node.HeartbeatSeconds = value
	}
	if value, ok := _c.mutation.ActiveHoursStart(); ok {
		_spec.SetField(agent.FieldActiveHoursStart, field.TypeInt, value)
		_node.ActiveHoursStart = value
	}
	if value, ok := _c.mutation.ActiveHoursEnd(); ok {
		_spec.SetField(agent.FieldActiveHoursEnd, field.TypeInt, value)
		_node.ActiveHoursEnd = value
	}
	if value, ok := _c.mutation.TemplateID(); ok {
		_spec.SetField(agent.FieldTemplateID, field.TypeString, value)
		_node.TemplateID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
