// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/measurablegoal"
	"github.com/crewforge/crewd/ent/predicate"
)

// MeasurableGoalUpdate is the builder for updating MeasurableGoal entities.
type MeasurableGoalUpdate struct {
	config
	hooks    []Hook
	mutation *MeasurableGoalMutation
}

// Where appends a list predicates to the MeasurableGoalUpdate builder.
func (_u *MeasurableGoalUpdate) Where(ps ...predicate.MeasurableGoal) *MeasurableGoalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMetricName sets the "metric_name" field.
func (_u *MeasurableGoalUpdate) SetMetricName(v string) *MeasurableGoalUpdate {
	_u.mutation.SetMetricName(v)
	return _u
}

// SetNillableMetricName sets the "metric_name" field if the given value is not nil.
func (_u *MeasurableGoalUpdate) SetNillableMetricName(v *string) *MeasurableGoalUpdate {
	if v != nil {
		_u.SetMetricName(*v)
	}
	return _u
}

// SetCurrentValue sets the "current_value" field.
func (_u *MeasurableGoalUpdate) SetCurrentValue(v float64) *MeasurableGoalUpdate {
	_u.mutation.ResetCurrentValue()
	_u.mutation.SetCurrentValue(v)
	return _u
}

// SetNillableCurrentValue sets the "current_value" field if the given value is not nil.
func (_u *MeasurableGoalUpdate) SetNillableCurrentValue(v *float64) *MeasurableGoalUpdate {
	if v != nil {
		_u.SetCurrentValue(*v)
	}
	return _u
}

// AddCurrentValue adds value to the "current_value" field.
func (_u *MeasurableGoalUpdate) AddCurrentValue(v float64) *MeasurableGoalUpdate {
	_u.mutation.AddCurrentValue(v)
	return _u
}

// SetTargetValue sets the "target_value" field.
func (_u *MeasurableGoalUpdate) SetTargetValue(v float64) *MeasurableGoalUpdate {
	_u.mutation.ResetTargetValue()
	_u.mutation.SetTargetValue(v)
	return _u
}

// SetNillableTargetValue sets the "target_value" field if the given value is not nil.
func (_u *MeasurableGoalUpdate) SetNillableTargetValue(v *float64) *MeasurableGoalUpdate {
	if v != nil {
		_u.SetTargetValue(*v)
	}
	return _u
}

// AddTargetValue adds value to the "target_value" field.
func (_u *MeasurableGoalUpdate) AddTargetValue(v float64) *MeasurableGoalUpdate {
	_u.mutation.AddTargetValue(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *MeasurableGoalUpdate) SetUnit(v string) *MeasurableGoalUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *MeasurableGoalUpdate) SetNillableUnit(v *string) *MeasurableGoalUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *MeasurableGoalUpdate) SetDeadline(v time.Time) *MeasurableGoalUpdate {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *MeasurableGoalUpdate) SetNillableDeadline(v *time.Time) *MeasurableGoalUpdate {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *MeasurableGoalUpdate) ClearDeadline() *MeasurableGoalUpdate {
	_u.mutation.ClearDeadline()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MeasurableGoalUpdate) SetStatus(v measurablegoal.Status) *MeasurableGoalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MeasurableGoalUpdate) SetNillableStatus(v *measurablegoal.Status) *MeasurableGoalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MeasurableGoalUpdate) SetUpdatedAt(v time.Time) *MeasurableGoalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MeasurableGoalMutation object of the builder.
func (_u *MeasurableGoalUpdate) Mutation() *MeasurableGoalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MeasurableGoalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeasurableGoalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MeasurableGoalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeasurableGoalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MeasurableGoalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := measurablegoal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MeasurableGoalUpdate) check() error {
	if v, ok := _u.mutation.MetricName(); ok {
		if err := measurablegoal.MetricNameValidator(v); err != nil {
			return &ValidationError{Name: "metric_name", err: fmt.Errorf(`ent: validator failed for field "MeasurableGoal.metric_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := measurablegoal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MeasurableGoal.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MeasurableGoalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(measurablegoal.Table, measurablegoal.Columns, sqlgraph.NewFieldSpec(measurablegoal.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MetricName(); ok {
		_spec.SetField(measurablegoal.FieldMetricName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentValue(); ok {
		_spec.SetField(measurablegoal.FieldCurrentValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentValue(); ok {
		_spec.AddField(measurablegoal.FieldCurrentValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TargetValue(); ok {
		_spec.SetField(measurablegoal.FieldTargetValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetValue(); ok {
		_spec.AddField(measurablegoal.FieldTargetValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(measurablegoal.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(measurablegoal.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(measurablegoal.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(measurablegoal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(measurablegoal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{measurablegoal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MeasurableGoalUpdateOne is the builder for updating a single MeasurableGoal entity.
type MeasurableGoalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MeasurableGoalMutation
}

// SetMetricName sets the "metric_name" field.
func (_u *MeasurableGoalUpdateOne) SetMetricName(v string) *MeasurableGoalUpdateOne {
	_u.mutation.SetMetricName(v)
	return _u
}

// SetNillableMetricName sets the "metric_name" field if the given value is not nil.
func (_u *MeasurableGoalUpdateOne) SetNillableMetricName(v *string) *MeasurableGoalUpdateOne {
	if v != nil {
		_u.SetMetricName(*v)
	}
	return _u
}

// SetCurrentValue sets the "current_value" field.
func (_u *MeasurableGoalUpdateOne) SetCurrentValue(v float64) *MeasurableGoalUpdateOne {
	_u.mutation.ResetCurrentValue()
	_u.mutation.SetCurrentValue(v)
	return _u
}

// SetNillableCurrentValue sets the "current_value" field if the given value is not nil.
func (_u *MeasurableGoalUpdateOne) SetNillableCurrentValue(v *float64) *MeasurableGoalUpdateOne {
	if v != nil {
		_u.SetCurrentValue(*v)
	}
	return _u
}

// AddCurrentValue adds value to the "current_value" field.
func (_u *MeasurableGoalUpdateOne) AddCurrentValue(v float64) *MeasurableGoalUpdateOne {
	_u.mutation.AddCurrentValue(v)
	return _u
}

// SetTargetValue sets the "target_value" field.
func (_u *MeasurableGoalUpdateOne) SetTargetValue(v float64) *MeasurableGoalUpdateOne {
	_u.mutation.ResetTargetValue()
	_u.mutation.SetTargetValue(v)
	return _u
}

// SetNillableTargetValue sets the "target_value" field if the given value is not nil.
func (_u *MeasurableGoalUpdateOne) SetNillableTargetValue(v *float64) *MeasurableGoalUpdateOne {
	if v != nil {
		_u.SetTargetValue(*v)
	}
	return _u
}

// AddTargetValue adds value to the "target_value" field.
func (_u *MeasurableGoalUpdateOne) AddTargetValue(v float64) *MeasurableGoalUpdateOne {
	_u.mutation.AddTargetValue(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *MeasurableGoalUpdateOne) SetUnit(v string) *MeasurableGoalUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *MeasurableGoalUpdateOne) SetNillableUnit(v *string) *MeasurableGoalUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *MeasurableGoalUpdateOne) SetDeadline(v time.Time) *MeasurableGoalUpdateOne {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *MeasurableGoalUpdateOne) SetNillableDeadline(v *time.Time) *MeasurableGoalUpdateOne {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *MeasurableGoalUpdateOne) ClearDeadline() *MeasurableGoalUpdateOne {
	_u.mutation.ClearDeadline()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MeasurableGoalUpdateOne) SetStatus(v measurablegoal.Status) *MeasurableGoalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MeasurableGoalUpdateOne) SetNillableStatus(v *measurablegoal.Status) *MeasurableGoalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MeasurableGoalUpdateOne) SetUpdatedAt(v time.Time) *MeasurableGoalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MeasurableGoalMutation object of the builder.
func (_u *MeasurableGoalUpdateOne) Mutation() *MeasurableGoalMutation {
	return _u.mutation
}

// Where appends a list predicates to the MeasurableGoalUpdate builder.
func (_u *MeasurableGoalUpdateOne) Where(ps ...predicate.MeasurableGoal) *MeasurableGoalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MeasurableGoalUpdateOne) Select(field string, fields ...string) *MeasurableGoalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MeasurableGoal entity.
func (_u *MeasurableGoalUpdateOne) Save(ctx context.Context) (*MeasurableGoal, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeasurableGoalUpdateOne) SaveX(ctx context.Context) *MeasurableGoal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MeasurableGoalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeasurableGoalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MeasurableGoalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := measurablegoal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MeasurableGoalUpdateOne) check() error {
	if v, ok := _u.mutation.MetricName(); ok {
		if err := measurablegoal.MetricNameValidator(v); err != nil {
			return &ValidationError{Name: "metric_name", err: fmt.Errorf(`ent: validator failed for field "MeasurableGoal.metric_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := measurablegoal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MeasurableGoal.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MeasurableGoalUpdateOne) sqlSave(ctx context.Context) (_node *MeasurableGoal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(measurablegoal.Table, measurablegoal.Columns, sqlgraph.NewFieldSpec(measurablegoal.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MeasurableGoal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, measurablegoal.FieldID)
		for _, f := range fields {
			if !measurablegoal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != measurablegoal.FieldID {
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
	if value, ok := _u.mutation.MetricName(); ok {
		_spec.SetField(measurablegoal.FieldMetricName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentValue(); ok {
		_spec.SetField(measurablegoal.FieldCurrentValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentValue(); ok {
		_spec.AddField(measurablegoal.FieldCurrentValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TargetValue(); ok {
		_spec.SetField(measurablegoal.FieldTargetValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetValue(); ok {
		_spec.AddField(measurablegoal.FieldTargetValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(measurablegoal.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(measurablegoal.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(measurablegoal.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(measurablegoal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(measurablegoal.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MeasurableGoal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{measurablegoal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
