package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification is a per-user notification (e.g. a chat mention).
// Notifications are user-scoped, not tenant-scoped: the notifications
// endpoints are exempt from tenant binding.
type Notification struct {
	ent.Schema
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Immutable(),
		field.String("team_id").
			Immutable(),
		field.String("type").
			Comment("e.g. 'mention'"),
		field.String("title"),
		field.Text("body").
			Default(""),
		field.String("channel_id").
			Optional().
			Nillable(),
		field.Bool("read").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "read"),
	}
}
