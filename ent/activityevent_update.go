// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/activityevent"
	"github.com/crewforge/crewd/ent/predicate"
)

// ActivityEventUpdate is the builder for updating ActivityEvent entities.
type ActivityEventUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityEventMutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdate) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *ActivityEventUpdate) SetEventType(v string) *ActivityEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableEventType(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ActivityEventUpdate) SetSummary(v string) *ActivityEventUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableSummary(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ActivityEventUpdate) SetMetadata(v map[string]interface{}) *ActivityEventUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ActivityEventUpdate) ClearMetadata() *ActivityEventUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdate) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActivityEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(activityevent.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(activityevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(activityevent.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(activityevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(activityevent.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityEventUpdateOne is the builder for updating a single ActivityEvent entity.
type ActivityEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityEventMutation
}

// SetEventType sets the "event_type" field.
func (_u *ActivityEventUpdateOne) SetEventType(v string) *ActivityEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableEventType(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ActivityEventUpdateOne) SetSummary(v string) *ActivityEventUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableSummary(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ActivityEventUpdateOne) SetMetadata(v map[string]interface{}) *ActivityEventUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ActivityEventUpdateOne) ClearMetadata() *ActivityEventUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdateOne) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdateOne) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityEventUpdateOne) Select(field string, fields ...string) *ActivityEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivityEvent entity.
func (_u *ActivityEventUpdateOne) Save(ctx context.Context) (*ActivityEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) SaveX(ctx context.Context) *ActivityEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActivityEventUpdateOne) sqlSave(ctx context.Context) (_node *ActivityEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActivityEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activityevent.FieldID)
		for _, f := range fields {
			if !activityevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activityevent.FieldID {
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
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(activityevent.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(activityevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(activityevent.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(activityevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(activityevent.FieldMetadata, field.TypeJSON)
	}
	_node = &ActivityEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
