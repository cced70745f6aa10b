// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/measurablegoal"
	"github.com/crewforge/crewd/ent/predicate"
)

// MeasurableGoalDelete is the builder for deleting a MeasurableGoal entity.
type MeasurableGoalDelete struct {
	config
	hooks    []Hook
	mutation *MeasurableGoalMutation
}

// Where appends a list predicates to the MeasurableGoalDelete builder.
func (_d *MeasurableGoalDelete) Where(ps ...predicate.MeasurableGoal) *MeasurableGoalDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MeasurableGoalDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MeasurableGoalDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MeasurableGoalDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(measurablegoal.Table, sqlgraph.NewFieldSpec(measurablegoal.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MeasurableGoalDeleteOne is the builder for deleting a single MeasurableGoal entity.
type MeasurableGoalDeleteOne struct {
	_d *MeasurableGoalDelete
}

// Where appends a list predicates to the MeasurableGoalDelete builder.
func (_d *MeasurableGoalDeleteOne) Where(ps ...predicate.MeasurableGoal) *MeasurableGoalDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MeasurableGoalDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{measurablegoal.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MeasurableGoalDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
