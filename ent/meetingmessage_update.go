// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/meetingmessage"
	"github.com/crewforge/crewd/ent/predicate"
)

// MeetingMessageUpdate is the builder for updating MeetingMessage entities.
type MeetingMessageUpdate struct {
	config
	hooks    []Hook
	mutation *MeetingMessageMutation
}

// Where appends a list predicates to the MeetingMessageUpdate builder.
func (_u *MeetingMessageUpdate) Where(ps ...predicate.MeetingMessage) *MeetingMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSpeakerKind sets the "speaker_kind" field.
func (_u *MeetingMessageUpdate) SetSpeakerKind(v meetingmessage.SpeakerKind) *MeetingMessageUpdate {
	_u.mutation.SetSpeakerKind(v)
	return _u
}

// SetNillableSpeakerKind sets the "speaker_kind" field if the given value is not nil.
func (_u *MeetingMessageUpdate) SetNillableSpeakerKind(v *meetingmessage.SpeakerKind) *MeetingMessageUpdate {
	if v != nil {
		_u.SetSpeakerKind(*v)
	}
	return _u
}

// SetSpeakerID sets the "speaker_id" field.
func (_u *MeetingMessageUpdate) SetSpeakerID(v string) *MeetingMessageUpdate {
	_u.mutation.SetSpeakerID(v)
	return _u
}

// SetNillableSpeakerID sets the "speaker_id" field if the given value is not nil.
func (_u *MeetingMessageUpdate) SetNillableSpeakerID(v *string) *MeetingMessageUpdate {
	if v != nil {
		_u.SetSpeakerID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MeetingMessageUpdate) SetContent(v string) *MeetingMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MeetingMessageUpdate) SetNillableContent(v *string) *MeetingMessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the MeetingMessageMutation object of the builder.
func (_u *MeetingMessageUpdate) Mutation() *MeetingMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MeetingMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeetingMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MeetingMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeetingMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MeetingMessageUpdate) check() error {
	if v, ok := _u.mutation.SpeakerKind(); ok {
		if err := meetingmessage.SpeakerKindValidator(v); err != nil {
			return &ValidationError{Name: "speaker_kind", err: fmt.Errorf(`ent: validator failed for field "MeetingMessage.speaker_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *MeetingMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(meetingmessage.Table, meetingmessage.Columns, sqlgraph.NewFieldSpec(meetingmessage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SpeakerKind(); ok {
		_spec.SetField(meetingmessage.FieldSpeakerKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SpeakerID(); ok {
		_spec.SetField(meetingmessage.FieldSpeakerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(meetingmessage.FieldContent, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meetingmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MeetingMessageUpdateOne is the builder for updating a single MeetingMessage entity.
type MeetingMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MeetingMessageMutation
}

// SetSpeakerKind sets the "speaker_kind" field.
func (_u *MeetingMessageUpdateOne) SetSpeakerKind(v meetingmessage.SpeakerKind) *MeetingMessageUpdateOne {
	_u.mutation.SetSpeakerKind(v)
	return _u
}

// SetNillableSpeakerKind sets the "speaker_kind" field if the given value is not nil.
func (_u *MeetingMessageUpdateOne) SetNillableSpeakerKind(v *meetingmessage.SpeakerKind) *MeetingMessageUpdateOne {
	if v != nil {
		_u.SetSpeakerKind(*v)
	}
	return _u
}

// SetSpeakerID sets the "speaker_id" field.
func (_u *MeetingMessageUpdateOne) SetSpeakerID(v string) *MeetingMessageUpdateOne {
	_u.mutation.SetSpeakerID(v)
	return _u
}

// SetNillableSpeakerID sets the "speaker_id" field if the given value is not nil.
func (_u *MeetingMessageUpdateOne) SetNillableSpeakerID(v *string) *MeetingMessageUpdateOne {
	if v != nil {
		_u.SetSpeakerID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MeetingMessageUpdateOne) SetContent(v string) *MeetingMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MeetingMessageUpdateOne) SetNillableContent(v *string) *MeetingMessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the MeetingMessageMutation object of the builder.
func (_u *MeetingMessageUpdateOne) Mutation() *MeetingMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the MeetingMessageUpdate builder.
func (_u *MeetingMessageUpdateOne) Where(ps ...predicate.MeetingMessage) *MeetingMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MeetingMessageUpdateOne) Select(field string, fields ...string) *MeetingMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MeetingMessage entity.
func (_u *MeetingMessageUpdateOne) Save(ctx context.Context) (*MeetingMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeetingMessageUpdateOne) SaveX(ctx context.Context) *MeetingMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MeetingMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeetingMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MeetingMessageUpdateOne) check() error {
	if v, ok := _u.mutation.SpeakerKind(); ok {
		if err := meetingmessage.SpeakerKindValidator(v); err != nil {
			return &ValidationError{Name: "speaker_kind", err: fmt.Errorf(`ent: validator failed for field "MeetingMessage.speaker_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *MeetingMessageUpdateOne) sqlSave(ctx context.Context) (_node *MeetingMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(meetingmessage.Table, meetingmessage.Columns, sqlgraph.NewFieldSpec(meetingmessage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MeetingMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, meetingmessage.FieldID)
		for _, f := range fields {
			if !meetingmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != meetingmessage.FieldID {
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
	if value, ok := _u.mutation.SpeakerKind(); ok {
		_spec.SetField(meetingmessage.FieldSpeakerKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SpeakerID(); ok {
		_spec.SetField(meetingmessage.FieldSpeakerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(meetingmessage.FieldContent, field.TypeString, value)
	}
	_node = &MeetingMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meetingmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
