// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/meetingmessage"
)

// MeetingMessageCreate is the builder for creating a MeetingMessage entity.
type MeetingMessageCreate struct {
	config
	mutation *MeetingMessageMutation
	hooks    []Hook
}

// SetMeetingID sets the "meeting_id" field.
func (_c *MeetingMessageCreate) SetMeetingID(v string) *MeetingMessageCreate {
	_c.mutation.SetMeetingID(v)
	return _c
}

// SetTeamID sets the "team_id" field.
func (_c *MeetingMessageCreate) SetTeamID(v string) *MeetingMessageCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetSpeakerKind sets the "speaker_kind" field.
func (_c *MeetingMessageCreate) SetSpeakerKind(v meetingmessage.SpeakerKind) *MeetingMessageCreate {
	_c.mutation.SetSpeakerKind(v)
	return _c
}

// SetSpeakerID sets the "speaker_id" field.
func (_c *MeetingMessageCreate) SetSpeakerID(v string) *MeetingMessageCreate {
	_c.mutation.SetSpeakerID(v)
	return _c
}

// SetNillableSpeakerID sets the "speaker_id" field if the given value is not nil.
func (_c *MeetingMessageCreate) SetNillableSpeakerID(v *string) *MeetingMessageCreate {
	if v != nil {
		_c.SetSpeakerID(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *MeetingMessageCreate) SetContent(v string) *MeetingMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MeetingMessageCreate) SetCreatedAt(v time.Time) *MeetingMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MeetingMessageCreate) SetNillableCreatedAt(v *time.Time) *MeetingMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the MeetingMessageMutation object of the builder.
func (_c *MeetingMessageCreate) Mutation() *MeetingMessageMutation {
	return _c.mutation
}

// Save creates the MeetingMessage in the database.
func (_c *MeetingMessageCreate) Save(ctx context.Context) (*MeetingMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MeetingMessageCreate) SaveX(ctx context.Context) *MeetingMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeetingMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeetingMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MeetingMessageCreate) defaults() {
	if _, ok := _c.mutation.SpeakerID(); !ok {
		v := meetingmessage.DefaultSpeakerID
		_c.mutation.SetSpeakerID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := meetingmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MeetingMessageCreate) check() error {
	if _, ok := _c.mutation.MeetingID(); !ok {
		return &ValidationError{Name: "meeting_id", err: errors.New(`ent: missing required field "MeetingMessage.meeting_id"`)}
	}
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "MeetingMessage.team_id"`)}
	}
	if _, ok := _c.mutation.SpeakerKind(); !ok {
		return &ValidationError{Name: "speaker_kind", err: errors.New(`ent: missing required field "MeetingMessage.speaker_kind"`)}
	}
	if v, ok := _c.mutation.SpeakerKind(); ok {
		if err := meetingmessage.SpeakerKindValidator(v); err != nil {
			return &ValidationError{Name: "speaker_kind", err: fmt.Errorf(`ent: validator failed for field "MeetingMessage.speaker_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SpeakerID(); !ok {
		return &ValidationError{Name: "speaker_id", err: errors.New(`ent: missing required field "MeetingMessage.speaker_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "MeetingMessage.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MeetingMessage.created_at"`)}
	}
	return nil
}

func (_c *MeetingMessageCreate) sqlSave(ctx context.Context) (*MeetingMessage, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MeetingMessageCreate) createSpec() (*MeetingMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &MeetingMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(meetingmessage.Table, sqlgraph.NewFieldSpec(meetingmessage.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.MeetingID(); ok {
		_spec.SetField(meetingmessage.FieldMeetingID, field.TypeString, value)
		_node.MeetingID = value
	}
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(meetingmessage.FieldTeamID, field.TypeString, value)
		_node.TeamID = value
	}
	if value, ok := _c.mutation.SpeakerKind(); ok {
		_spec.SetField(meetingmessage.FieldSpeakerKind, field.TypeEnum, value)
		_node.SpeakerKind = value
	}
	if value, ok := _c.mutation.SpeakerID(); ok {
		_spec.SetField(meetingmessage.FieldSpeakerID, field.TypeString, value)
		_node.SpeakerID = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(meetingmessage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(meetingmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// MeetingMessageCreateBulk is the builder for creating many MeetingMessage entities in bulk.
type MeetingMessageCreateBulk struct {
	config
	err      error
	builders []*MeetingMessageCreate
}

// Save creates the MeetingMessage entities in the database.
func (_c *MeetingMessageCreateBulk) Save(ctx context.Context) ([]*MeetingMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MeetingMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MeetingMessageMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *MeetingMessageCreateBulk) SaveX(ctx context.Context) []*MeetingMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeetingMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeetingMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
