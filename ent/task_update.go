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
	"github.com/crewforge/crewd/ent/predicate"
	"github.com/crewforge/crewd/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdate) SetPriority(v task.Priority) *TaskUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriority(v *task.Priority) *TaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *TaskUpdate) SetAssignedAgentID(v string) *TaskUpdate {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssignedAgentID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *TaskUpdate) ClearAssignedAgentID() *TaskUpdate {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *TaskUpdate) SetParentTaskID(v string) *TaskUpdate {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableParentTaskID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (_u *TaskUpdate) ClearParentTaskID() *TaskUpdate {
	_u.mutation.ClearParentTaskID()
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *TaskUpdate) SetGoalID(v string) *TaskUpdate {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableGoalID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// ClearGoalID clears the value of the "goal_id" field.
func (_u *TaskUpdate) ClearGoalID() *TaskUpdate {
	_u.mutation.ClearGoalID()
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *TaskUpdate) SetDeadline(v time.Time) *TaskUpdate {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDeadline(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *TaskUpdate) ClearDeadline() *TaskUpdate {
	_u.mutation.ClearDeadline()
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *TaskUpdate) SetDependsOn(v []string) *TaskUpdate {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *TaskUpdate) AppendDependsOn(v []string) *TaskUpdate {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *TaskUpdate) ClearDependsOn() *TaskUpdate {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(task.FieldAssignedAgentID, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentIDCleared() {
		_spec.ClearField(task.FieldAssignedAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
	}
	if _u.mutation.ParentTaskIDCleared() {
		_spec.ClearField(task.FieldParentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(task.FieldGoalID, field.TypeString, value)
	}
	if _u.mutation.GoalIDCleared() {
		_spec.ClearField(task.FieldGoalID, field.TypeString)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(task.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(task.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(task.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(task.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdateOne) SetPriority(v task.Priority) *TaskUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriority(v *task.Priority) *TaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *TaskUpdateOne) SetAssignedAgentID(v string) *TaskUpdateOne {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssignedAgentID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *TaskUpdateOne) ClearAssignedAgentID() *TaskUpdateOne {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *TaskUpdateOne) SetParentTaskID(v string) *TaskUpdateOne {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableParentTaskID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (_u *TaskUpdateOne) ClearParentTaskID() *TaskUpdateOne {
	_u.mutation.ClearParentTaskID()
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *TaskUpdateOne) SetGoalID(v string) *TaskUpdateOne {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableGoalID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// ClearGoalID clears the value of the "goal_id" field.
func (_u *TaskUpdateOne) ClearGoalID() *TaskUpdateOne {
	_u.mutation.ClearGoalID()
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *TaskUpdateOne) SetDeadline(v time.Time) *TaskUpdateOne {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDeadline(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *TaskUpdateOne) ClearDeadline() *TaskUpdateOne {
	_u.mutation.ClearDeadline()
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *TaskUpdateOne) SetDependsOn(v []string) *TaskUpdateOne {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *TaskUpdateOne) AppendDependsOn(v []string) *TaskUpdateOne {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *TaskUpdateOne) ClearDependsOn() *TaskUpdateOne {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(task.FieldAssignedAgentID, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentIDCleared() {
		_spec.ClearField(task.FieldAssignedAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
	}
	if _u.mutation.ParentTaskIDCleared() {
		_spec.ClearField(task.FieldParentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(task.FieldGoalID, field.TypeString, value)
	}
	if _u.mutation.GoalIDCleared() {
		_spec.ClearField(task.FieldGoalID, field.TypeString)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(task.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(task.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(task.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(task.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
