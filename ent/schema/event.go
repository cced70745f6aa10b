package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event is a persisted stream event used for subscriber catch-up after
// reconnect. Written by the event publisher inside the same transaction as
// the pg_notify broadcast.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("team_id").
			Immutable(),
		field.String("channel").
			Immutable(),
		field.JSON("payload", json.RawMessage{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel"),
		index.Fields("team_id"),
	}
}
