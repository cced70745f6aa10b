package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MeetingMessage is one transcript entry; the serial ID gives the monotonic
// transcript order.
type MeetingMessage struct {
	ent.Schema
}

// Fields of the MeetingMessage.
func (MeetingMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("meeting_id").
			Immutable(),
		field.String("team_id").
			Immutable(),
		field.Enum("speaker_kind").
			Values("agent", "human", "system"),
		field.String("speaker_id").
			Default(""),
		field.Text("content"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the MeetingMessage.
func (MeetingMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("meeting_id"),
	}
}
