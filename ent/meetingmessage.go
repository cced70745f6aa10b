// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewd/ent/meetingmessage"
)

// MeetingMessage is the model entity for the MeetingMessage schema.
type MeetingMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// MeetingID holds the value of the "meeting_id" field.
	MeetingID string `json:"meeting_id,omitempty"`
	// TeamID holds the value of the "team_id" field.
	TeamID string `json:"team_id,omitempty"`
	// SpeakerKind holds the value of the "speaker_kind" field.
	SpeakerKind meetingmessage.SpeakerKind `json:"speaker_kind,omitempty"`
	// SpeakerID holds the value of the "speaker_id" field.
	SpeakerID string `json:"speaker_id,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MeetingMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case meetingmessage.FieldID:
			values[i] = new(sql.NullInt64)
		case meetingmessage.FieldMeetingID, meetingmessage.FieldTeamID, meetingmessage.FieldSpeakerKind, meetingmessage.FieldSpeakerID, meetingmessage.FieldContent:
			values[i] = new(sql.NullString)
		case meetingmessage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MeetingMessage fields.
func (_m *MeetingMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case meetingmessage.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case meetingmessage.FieldMeetingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_id", values[i])
			} else if value.Valid {
				_m.MeetingID = value.String
			}
		case meetingmessage.FieldTeamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field team_id", values[i])
			} else if value.Valid {
				_m.TeamID = value.String
			}
		case meetingmessage.FieldSpeakerKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field speaker_kind", values[i])
			} else if value.Valid {
				_m.SpeakerKind = meetingmessage.SpeakerKind(value.String)
			}
		case meetingmessage.FieldSpeakerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field speaker_id", values[i])
			} else if value.Valid {
				_m.SpeakerID = value.String
			}
		case meetingmessage.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case meetingmessage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MeetingMessage.
// This includes values selected through modifiers, order, etc.
func (_m *MeetingMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MeetingMessage.
// Note that you need to call MeetingMessage.Unwrap() before calling this method if this MeetingMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MeetingMessage) Update() *MeetingMessageUpdateOne {
	return NewMeetingMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MeetingMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MeetingMessage) Unwrap() *MeetingMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MeetingMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MeetingMessage) String() string {
	var builder strings.Builder
	builder.WriteString("MeetingMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("meeting_id=")
	builder.WriteString(_m.MeetingID)
	builder.WriteString(", ")
	builder.WriteString("team_id=")
	builder.WriteString(_m.TeamID)
	builder.WriteString(", ")
	builder.WriteString("speaker_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpeakerKind))
	builder.WriteString(", ")
	builder.WriteString("speaker_id=")
	builder.WriteString(_m.SpeakerID)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MeetingMessages is a parsable slice of MeetingMessage.
type MeetingMessages []*MeetingMessage
