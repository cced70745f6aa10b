// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/measurablegoal"
)

// MeasurableGoalCreate is the builder for creating a MeasurableGoal entity.
type MeasurableGoalCreate struct {
	config
	mutation *MeasurableGoalMutation
	hooks    []Hook
}

// SetTeamID sets the "team_id" field.
func (_c *MeasurableGoalCreate) SetTeamID(v string) *MeasurableGoalCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetMetricName sets the "metric_name" field.
func (_c *MeasurableGoalCreate) SetMetricName(v string) *MeasurableGoalCreate {
	_c.mutation.SetMetricName(v)
	return _c
}

// SetCurrentValue sets the "current_value" field.
func (_c *MeasurableGoalCreate) SetCurrentValue(v float64) *MeasurableGoalCreate {
	_c.mutation.SetCurrentValue(v)
	return _c
}

// SetNillableCurrentValue sets the "current_value" field if the given value is not nil.
func (_c *MeasurableGoalCreate) SetNillableCurrentValue(v *float64) *MeasurableGoalCreate {
	if v != nil {
		_c.SetCurrentValue(*v)
	}
	return _c
}

// SetTargetValue sets the "target_value" field.
func (_c *MeasurableGoalCreate) SetTargetValue(v float64) *MeasurableGoalCreate {
	_c.mutation.SetTargetValue(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *MeasurableGoalCreate) SetUnit(v string) *MeasurableGoalCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *MeasurableGoalCreate) SetNillableUnit(v *string) *MeasurableGoalCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetDeadline sets the "deadline" field.
func (_c *MeasurableGoalCreate) SetDeadline(v time.Time) *MeasurableGoalCreate {
	_c.mutation.SetDeadline(v)
	return _c
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_c *MeasurableGoalCreate) SetNillableDeadline(v *time.Time) *MeasurableGoalCreate {
	if v != nil {
		_c.SetDeadline(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MeasurableGoalCreate) SetStatus(v measurablegoal.Status) *MeasurableGoalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MeasurableGoalCreate) SetNillableStatus(v *measurablegoal.Status) *MeasurableGoalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MeasurableGoalCreate) SetCreatedAt(v time.Time) *MeasurableGoalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MeasurableGoalCreate) SetNillableCreatedAt(v *time.Time) *MeasurableGoalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MeasurableGoalCreate) SetUpdatedAt(v time.Time) *MeasurableGoalCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MeasurableGoalCreate) SetNillableUpdatedAt(v *time.Time) *MeasurableGoalCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MeasurableGoalCreate) SetID(v string) *MeasurableGoalCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MeasurableGoalMutation object of the builder.
func (_c *MeasurableGoalCreate) Mutation() *MeasurableGoalMutation {
	return _c.mutation
}

// Save creates the MeasurableGoal in the database.
func (_c *MeasurableGoalCreate) Save(ctx context.Context) (*MeasurableGoal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MeasurableGoalCreate) SaveX(ctx context.Context) *MeasurableGoal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeasurableGoalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeasurableGoalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MeasurableGoalCreate) defaults() {
	if _, ok := _c.mutation.CurrentValue(); !ok {
		v := measurablegoal.DefaultCurrentValue
		_c.mutation.SetCurrentValue(v)
	}
	if _, ok := _c.mutation.Unit(); !ok {
		v := measurablegoal.DefaultUnit
		_c.mutation.SetUnit(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := measurablegoal.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := measurablegoal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := measurablegoal.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MeasurableGoalCreate) check() error {
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "MeasurableGoal.team_id"`)}
	}
	if _, ok := _c.mutation.MetricName(); !ok {
		return &ValidationError{Name: "metric_name", err: errors.New(`ent: missing required field "MeasurableGoal.metric_name"`)}
	}
	if v, ok := _c.mutation.MetricName(); ok {
		if err := measurablegoal.MetricNameValidator(v); err != nil {
			return &ValidationError{Name: "metric_name", err: fmt.Errorf(`ent: validator failed for field "MeasurableGoal.metric_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentValue(); !ok {
		return &ValidationError{Name: "current_value", err: errors.New(`ent: missing required field "MeasurableGoal.current_value"`)}
	}
	if _, ok := _c.mutation.TargetValue(); !ok {
		return &ValidationError{Name: "target_value", err: errors.New(`ent: missing required field "MeasurableGoal.target_value"`)}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required field "MeasurableGoal.unit"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MeasurableGoal.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := measurablegoal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MeasurableGoal.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MeasurableGoal.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MeasurableGoal.updated_at"`)}
	}
	return nil
}

func (_c *MeasurableGoalCreate) sqlSave(ctx context.Context) (*MeasurableGoal, error) {
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
			return nil, fmt.Errorf("unexpected MeasurableGoal.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MeasurableGoalCreate) createSpec() (*MeasurableGoal, *sqlgraph.CreateSpec) {
	var (
		_node = &MeasurableGoal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(measurablegoal.Table, sqlgraph.NewFieldSpec(measurablegoal.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(measurablegoal.FieldTeamID, field.TypeString, value)
		_node.TeamID = value
	}
	if value, ok := _c.mutation.MetricName(); ok {
		_spec.SetField(measurablegoal.FieldMetricName, field.TypeString, value)
		_node.MetricName = value
	}
	if value, ok := _c.mutation.CurrentValue(); ok {
		_spec.SetField(measurablegoal.FieldCurrentValue, field.TypeFloat64, value)
		_node.CurrentValue = value
	}
	if value, ok := _c.mutation.TargetValue(); ok {
		_spec.SetField(measurablegoal.FieldTargetValue, field.TypeFloat64, value)
		_node.TargetValue = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(measurablegoal.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.Deadline(); ok {
		_spec.SetField(measurablegoal.FieldDeadline, field.TypeTime, value)
		_node.Deadline = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(measurablegoal.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(measurablegoal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(measurablegoal.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// MeasurableGoalCreateBulk is the builder for creating many MeasurableGoal entities in bulk.
type MeasurableGoalCreateBulk struct {
	config
	err      error
	builders []*MeasurableGoalCreate
}

// Save creates the MeasurableGoal entities in the database.
func (_c *MeasurableGoalCreateBulk) Save(ctx context.Context) ([]*MeasurableGoal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MeasurableGoal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MeasurableGoalMutation)
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
func (_c *MeasurableGoalCreateBulk) SaveX(ctx context.Context) []*MeasurableGoal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeasurableGoalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeasurableGoalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
