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
	"github.com/crewforge/crewd/ent/meeting"
	"github.com/crewforge/crewd/ent/predicate"
)

// MeetingUpdate is the builder for updating Meeting entities.
type MeetingUpdate struct {
	config
	hooks    []Hook
	mutation *MeetingMutation
}

// Where appends a list predicates to the MeetingUpdate builder.
func (_u *MeetingUpdate) Where(ps ...predicate.Meeting) *MeetingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *MeetingUpdate) SetType(v string) *MeetingUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableType(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *MeetingUpdate) SetTitle(v string) *MeetingUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableTitle(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MeetingUpdate) SetStatus(v meeting.Status) *MeetingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableStatus(v *meeting.Status) *MeetingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgentIds sets the "agent_ids" field.
func (_u *MeetingUpdate) SetAgentIds(v []string) *MeetingUpdate {
	_u.mutation.SetAgentIds(v)
	return _u
}

// AppendAgentIds appends value to the "agent_ids" field.
func (_u *MeetingUpdate) AppendAgentIds(v []string) *MeetingUpdate {
	_u.mutation.AppendAgentIds(v)
	return _u
}

// SetAdvisorAgentID sets the "advisor_agent_id" field.
func (_u *MeetingUpdate) SetAdvisorAgentID(v string) *MeetingUpdate {
	_u.mutation.SetAdvisorAgentID(v)
	return _u
}

// SetNillableAdvisorAgentID sets the "advisor_agent_id" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableAdvisorAgentID(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetAdvisorAgentID(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *MeetingUpdate) SetCompanyName(v string) *MeetingUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableCompanyName(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *MeetingUpdate) ClearCompanyName() *MeetingUpdate {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *MeetingUpdate) SetEndedAt(v time.Time) *MeetingUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableEndedAt(v *time.Time) *MeetingUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *MeetingUpdate) ClearEndedAt() *MeetingUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// Mutation returns the MeetingMutation object of the builder.
func (_u *MeetingUpdate) Mutation() *MeetingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MeetingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeetingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MeetingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeetingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MeetingUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := meeting.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Meeting.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MeetingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(meeting.Table, meeting.Columns, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(meeting.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(meeting.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(meeting.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentIds(); ok {
		_spec.SetField(meeting.FieldAgentIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgentIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldAgentIds, value)
		})
	}
	if value, ok := _u.mutation.AdvisorAgentID(); ok {
		_spec.SetField(meeting.FieldAdvisorAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(meeting.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(meeting.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(meeting.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(meeting.FieldEndedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meeting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MeetingUpdateOne is the builder for updating a single Meeting entity.
type MeetingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MeetingMutation
}

// SetType sets the "type" field.
func (_u *MeetingUpdateOne) SetType(v string) *MeetingUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableType(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *MeetingUpdateOne) SetTitle(v string) *MeetingUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableTitle(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MeetingUpdateOne) SetStatus(v meeting.Status) *MeetingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableStatus(v *meeting.Status) *MeetingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgentIds sets the "agent_ids" field.
func (_u *MeetingUpdateOne) SetAgentIds(v []string) *MeetingUpdateOne {
	_u.mutation.SetAgentIds(v)
	return _u
}

// AppendAgentIds appends value to the "agent_ids" field.
func (_u *MeetingUpdateOne) AppendAgentIds(v []string) *MeetingUpdateOne {
	_u.mutation.AppendAgentIds(v)
	return _u
}

// SetAdvisorAgentID sets the "advisor_agent_id" field.
func (_u *MeetingUpdateOne) SetAdvisorAgentID(v string) *MeetingUpdateOne {
	_u.mutation.SetAdvisorAgentID(v)
	return _u
}

// SetNillableAdvisorAgentID sets the "advisor_agent_id" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableAdvisorAgentID(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetAdvisorAgentID(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *MeetingUpdateOne) SetCompanyName(v string) *MeetingUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableCompanyName(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *MeetingUpdateOne) ClearCompanyName() *MeetingUpdateOne {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *MeetingUpdateOne) SetEndedAt(v time.Time) *MeetingUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableEndedAt(v *time.Time) *MeetingUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *MeetingUpdateOne) ClearEndedAt() *MeetingUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// Mutation returns the MeetingMutation object of the builder.
func (_u *MeetingUpdateOne) Mutation() *MeetingMutation {
	return _u.mutation
}

// Where appends a list predicates to the MeetingUpdate builder.
func (_u *MeetingUpdateOne) Where(ps ...predicate.Meeting) *MeetingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MeetingUpdateOne) Select(field string, fields ...string) *MeetingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Meeting entity.
func (_u *MeetingUpdateOne) Save(ctx context.Context) (*Meeting, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeetingUpdateOne) SaveX(ctx context.Context) *Meeting {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MeetingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeetingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MeetingUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := meeting.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Meeting.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MeetingUpdateOne) sqlSave(ctx context.Context) (_node *Meeting, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(meeting.Table, meeting.Columns, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Meeting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, meeting.FieldID)
		for _, f := range fields {
			if !meeting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != meeting.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(meeting.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(meeting.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(meeting.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentIds(); ok {
		_spec.SetField(meeting.FieldAgentIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgentIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldAgentIds, value)
		})
	}
	if value, ok := _u.mutation.AdvisorAgentID(); ok {
		_spec.SetField(meeting.FieldAdvisorAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(meeting.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(meeting.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(meeting.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(meeting.FieldEndedAt, field.TypeTime)
	}
	_node = &Meeting{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meeting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
