package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEvent is one append-only audit record (tool executions, heartbeats,
// credit events). Rows are never updated or deleted by application code.
type ActivityEvent struct {
	ent.Schema
}

// Fields of the ActivityEvent.
func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("team_id").
			Immutable(),
		field.String("agent_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("event_type").
			Comment("e.g. 'tool_executed', 'heartbeat_proactive', 'credits_exhausted'"),
		field.Text("summary").
			Default(""),
		field.JSON("metadata", map[string]any{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ActivityEvent.
func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id"),
		index.Fields("team_id", "event_type"),
	}
}
