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
	"github.com/crewforge/crewd/ent/agent"
	"github.com/crewforge/crewd/ent/predicate"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentUpdate) SetName(v string) *AgentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdate) SetStatus(v agent.Status) *AgentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableStatus(v *agent.Status) *AgentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDepartment sets the "department" field.
func (_u *AgentUpdate) SetDepartment(v string) *AgentUpdate {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableDepartment(v *string) *AgentUpdate {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *AgentUpdate) ClearDepartment() *AgentUpdate {
	_u.mutation.ClearDepartment()
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *AgentUpdate) SetModelID(v string) *AgentUpdate {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableModelID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// SetModelEndpoint sets the "model_endpoint" field.
func (_u *AgentUpdate) SetModelEndpoint(v string) *AgentUpdate {
	_u.mutation.SetModelEndpoint(v)
	return _u
}

// SetNillableModelEndpoint sets the "model_endpoint" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableModelEndpoint(v *string) *AgentUpdate {
	if v != nil {
		_u.SetModelEndpoint(*v)
	}
	return _u
}

// ClearModelEndpoint clears the value of the "model_endpoint" field.
func (_u *AgentUpdate) ClearModelEndpoint() *AgentUpdate {
	_u.mutation.ClearModelEndpoint()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *AgentUpdate) SetModelName(v string) *AgentUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableModelName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *AgentUpdate) ClearModelName() *AgentUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentUpdate) SetSystemPrompt(v string) *AgentUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableSystemPrompt(v *string) *AgentUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetSkills sets the "skills" field.
func (_u *AgentUpdate) SetSkills(v []string) *AgentUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *AgentUpdate) AppendSkills(v []string) *AgentUpdate {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *AgentUpdate) ClearSkills() *AgentUpdate {
	_u.mutation.ClearSkills()
	return _u
}

// SetProactive sets the "proactive" field.
func (_u *AgentUpdate) SetProactive(v bool) *AgentUpdate {
	_u.mutation.SetProactive(v)
	return _u
}

// SetNillableProactive sets the "proactive" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableProactive(v *bool) *AgentUpdate {
	if v != nil {
		_u.SetProactive(*v)
	}
	return _u
}

// SetHeartbeatSeconds sets the "heartbeat_seconds" field.
func (_u *AgentUpdate) SetHeartbeatSeconds(v int) *AgentUpdate {
	_u.mutation.ResetHeartbeatSeconds()
	_u.mutation.SetHeartbeatSeconds(v)
	return _u
}

// SetNillableHeartbeatSeconds sets the "heartbeat_seconds" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableHeartbeatSeconds(v *int) *AgentUpdate {
	if v != nil {
		_u.SetHeartbeatSeconds(*v)
	}
	return _u
}

// AddHeartbeatSeconds adds value to the "heartbeat_seconds" field.
func (_u *AgentUpdate) AddHeartbeatSeconds(v int) *AgentUpdate {
	_u.mutation.AddHeartbeatSeconds(v)
	return _u
}

// SetActiveHoursStart sets the "active_hours_start" field.
func (_u *AgentUpdate) SetActiveHoursStart(v int) *AgentUpdate {
	_u.mutation.ResetActiveHoursStart()
	_u.mutation.SetActiveHoursStart(v)
	return _u
}

// SetNillableActiveHoursStart sets the "active_hours_start" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableActiveHoursStart(v *int) *AgentUpdate {
	if v != nil {
		_u.SetActiveHoursStart(*v)
	}
	return _u
}

// AddActiveHoursStart adds value to the "active_hours_start" field.
func (_u *AgentUpdate) AddActiveHoursStart(v int) *AgentUpdate {
	_u.mutation.AddActiveHoursStart(v)
	return _u
}

// SetActiveHoursEnd sets the "active_hours_end" field.
func (_u *AgentUpdate) SetActiveHoursEnd(v int) *AgentUpdate {
	_u.mutation.ResetActiveHoursEnd()
	_u.mutation.SetActiveHoursEnd(v)
	return _u
}

// SetNillableActiveHoursEnd sets the "active_hours_end" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableActiveHoursEnd(v *int) *AgentUpdate {
	if v != nil {
		_u.SetActiveHoursEnd(*v)
	}
	return _u
}

// AddActiveHoursEnd adds value to the "active_hours_end" field.
func (_u *AgentUpdate) AddActiveHoursEnd(v int) *AgentUpdate {
	_u.mutation.AddActiveHoursEnd(v)
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *AgentUpdate) SetTemplateID(v string) *AgentUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTemplateID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *AgentUpdate) ClearTemplateID() *AgentUpdate {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdate) SetUpdatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := agent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HeartbeatSeconds(); ok {
		if err := agent.HeartbeatSecondsValidator(v); err != nil {
			return &ValidationError{Name: "heartbeat_seconds", err: fmt.Errorf(`ent: validator failed for field "Agent.heartbeat_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActiveHoursStart(); ok {
		if err := agent.ActiveHoursStartValidator(v); err != nil {
			return &ValidationError{Name: "active_hours_start", err: fmt.Errorf(`ent: validator failed for field "Agent.active_hours_start": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActiveHoursEnd(); ok {
		if err := agent.ActiveHoursEndValidator(v); err != nil {
			return &ValidationError{Name: "active_hours_end", err: fmt.Errorf(`ent: validator failed for field "Agent.active_hours_end": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(agent.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(agent.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(agent.FieldModelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelEndpoint(); ok {
		_spec.SetField(agent.FieldModelEndpoint, field.TypeString, value)
	}
	if _u.mutation.ModelEndpointCleared() {
		_spec.ClearField(agent.FieldModelEndpoint, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(agent.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(agent.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agent.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(agent.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(agent.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Proactive(); ok {
		_spec.SetField(agent.FieldProactive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HeartbeatSeconds(); ok {
		_spec.SetField(agent.FieldHeartbeatSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeartbeatSeconds(); ok {
		_spec.AddField(agent.FieldHeartbeatSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActiveHoursStart(); ok {
		_spec.SetField(agent.FieldActiveHoursStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveHoursStart(); ok {
		_spec.AddField(agent.FieldActiveHoursStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActiveHoursEnd(); ok {
		_spec.SetField(agent.FieldActiveHoursEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveHoursEnd(); ok {
		_spec.AddField(agent.FieldActiveHoursEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(agent.FieldTemplateID, field.TypeString, value)
	}
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(agent.FieldTemplateID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetName sets the "name" field.
func (_u *AgentUpdateOne) SetName(v string) *AgentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdateOne) SetStatus(v agent.Status) *AgentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableStatus(v *agent.Status) *AgentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDepartment sets the "department" field.
func (_u *AgentUpdateOne) SetDepartment(v string) *AgentUpdateOne {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableDepartment(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *AgentUpdateOne) ClearDepartment() *AgentUpdateOne {
	_u.mutation.ClearDepartment()
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *AgentUpdateOne) SetModelID(v string) *AgentUpdateOne {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableModelID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// SetModelEndpoint sets the "model_endpoint" field.
func (_u *AgentUpdateOne) SetModelEndpoint(v string) *AgentUpdateOne {
	_u.mutation.SetModelEndpoint(v)
	return _u
}

// SetNillableModelEndpoint sets the "model_endpoint" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableModelEndpoint(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetModelEndpoint(*v)
	}
	return _u
}

// ClearModelEndpoint clears the value of the "model_endpoint" field.
func (_u *AgentUpdateOne) ClearModelEndpoint() *AgentUpdateOne {
	_u.mutation.ClearModelEndpoint()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *AgentUpdateOne) SetModelName(v string) *AgentUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableModelName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *AgentUpdateOne) ClearModelName() *AgentUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentUpdateOne) SetSystemPrompt(v string) *AgentUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableSystemPrompt(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetSkills sets the "skills" field.
func (_u *AgentUpdateOne) SetSkills(v []string) *AgentUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *AgentUpdateOne) AppendSkills(v []string) *AgentUpdateOne {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *AgentUpdateOne) ClearSkills() *AgentUpdateOne {
	_u.mutation.ClearSkills()
	return _u
}

// SetProactive sets the "proactive" field.
func (_u *AgentUpdateOne) SetProactive(v bool) *AgentUpdateOne {
	_u.mutation.SetProactive(v)
	return _u
}

// SetNillableProactive sets the "proactive" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableProactive(v *bool) *AgentUpdateOne {
	if v != nil {
		_u.SetProactive(*v)
	}
	return _u
}

// SetHeartbeatSeconds sets the "heartbeat_seconds" field.
func (_u *AgentUpdateOne) SetHeartbeatSeconds(v int) *AgentUpdateOne {
	_u.mutation.ResetHeartbeatSeconds()
	_u.mutation.SetHeartbeatSeconds(v)
	return _u
}

// SetNillableHeartbeatSeconds sets the "heartbeat_seconds" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableHeartbeatSeconds(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetHeartbeatSeconds(*v)
	}
	return _u
}

// AddHeartbeatSeconds adds value to the "heartbeat_seconds" field.
func (_u *AgentUpdateOne) AddHeartbeatSeconds(v int) *AgentUpdateOne {
	_u.mutation.AddHeartbeatSeconds(v)
	return _u
}

// SetActiveHoursStart sets the "active_hours_start" field.
func (_u *AgentUpdateOne) SetActiveHoursStart(v int) *AgentUpdateOne {
	_u.mutation.ResetActiveHoursStart()
	_u.mutation.SetActiveHoursStart(v)
	return _u
}

// SetNillableActiveHoursStart sets the "active_hours_start" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableActiveHoursStart(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetActiveHoursStart(*v)
	}
	return _u
}

// AddActiveHoursStart adds value to the "active_hours_start" field.
func (_u *AgentUpdateOne) AddActiveHoursStart(v int) *AgentUpdateOne {
	_u.mutation.AddActiveHoursStart(v)
	return _u
}

// SetActiveHoursEnd sets the "active_hours_end" field.
func (_u *AgentUpdateOne) SetActiveHoursEnd(v int) *AgentUpdateOne {
	_u.mutation.ResetActiveHoursEnd()
	_u.mutation.SetActiveHoursEnd(v)
	return _u
}

// SetNillableActiveHoursEnd sets the "active_hours_end" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableActiveHoursEnd(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetActiveHoursEnd(*v)
	}
	return _u
}

// AddActiveHoursEnd adds value to the "active_hours_end" field.
func (_u *AgentUpdateOne) AddActiveHoursEnd(v int) *AgentUpdateOne {
	_u.mutation.AddActiveHoursEnd(v)
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *AgentUpdateOne) SetTemplateID(v string) *AgentUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTemplateID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *AgentUpdateOne) ClearTemplateID() *AgentUpdateOne {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdateOne) SetUpdatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := agent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HeartbeatSeconds(); ok {
		if err := agent.HeartbeatSecondsValidator(v); err != nil {
			return &ValidationError{Name: "heartbeat_seconds", err: fmt.Errorf(`ent: validator failed for field "Agent.heartbeat_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActiveHoursStart(); ok {
		if err := agent.ActiveHoursStartValidator(v); err != nil {
			return &ValidationError{Name: "active_hours_start", err: fmt.Errorf(`ent: validator failed for field "Agent.active_hours_start": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActiveHoursEnd(); ok {
		if err := agent.ActiveHoursEndValidator(v); err != nil {
			return &ValidationError{Name: "active_hours_end", err: fmt.Errorf(`ent: validator failed for field "Agent.active_hours_end": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(agent.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(agent.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(agent.FieldModelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelEndpoint(); ok {
		_spec.SetField(agent.FieldModelEndpoint, field.TypeString, value)
	}
	if _u.mutation.ModelEndpointCleared() {
		_spec.ClearField(agent.FieldModelEndpoint, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(agent.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(agent.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agent.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(agent.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(agent.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Proactive(); ok {
		_spec.SetField(agent.FieldProactive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HeartbeatSeconds(); ok {
		_spec.SetField(agent.FieldHeartbeatSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeartbeatSeconds(); ok {
		_spec.AddField(agent.FieldHeartbeatSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActiveHoursStart(); ok {
		_spec.SetField(agent.FieldActiveHoursStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveHoursStart(); ok {
		_spec.AddField(agent.FieldActiveHoursStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActiveHoursEnd(); ok {
		_spec.SetField(agent.FieldActiveHoursEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveHoursEnd(); ok {
		_spec.AddField(agent.FieldActiveHoursEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(agent.FieldTemplateID, field.TypeString, value)
	}
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(agent.FieldTemplateID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
