package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Meeting is a real-time multi-agent meeting with a persisted transcript.
type Meeting struct {
	ent.Schema
}

// Fields of the Meeting.
func (Meeting) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("team_id").
			Immutable(),
		field.String("type").
			Comment("e.g. 'meet_and_greet'"),
		field.String("title"),
		field.Enum("status").
			Values("active", "ended").
			Default("active"),
		field.JSON("agent_ids", []string{}),
		field.String("advisor_agent_id"),
		field.String("company_name").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Meeting.
func (Meeting) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id"),
	}
}
