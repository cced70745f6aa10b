package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage holds the schema definition for the ChatMessage entity.
// The serial int ID is the pagination cursor: visibility order equals ID order
// within a channel.
type ChatMessage struct {
	ent.Schema
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("team_id").
			Immutable(),
		field.String("channel_id").
			Immutable(),
		field.Enum("sender_kind").
			Values("user", "agent", "system"),
		field.String("sender_id").
			Default(""),
		field.Text("content"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ChatMessage.
func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel_id"),
		index.Fields("team_id"),
	}
}
