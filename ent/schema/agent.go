package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity — a configured
// persona + model + optional skills + schedule.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("team_id").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Enum("status").
			Values("stopped", "running", "error").
			Default("stopped"),
		field.String("department").
			Optional().
			Nillable(),

		// Model selection: logical id resolved by the router, with a
		// per-agent fallback endpoint/name pair.
		field.String("model_id").
			Default(""),
		field.String("model_endpoint").
			Optional().
			Nillable(),
		field.String("model_name").
			Optional().
			Nillable(),

		field.Text("system_prompt").
			Default(""),
		field.JSON("skills", []string{}).
			Optional().
			Comment("Installed skill identifiers"),

		// Heartbeat schedule
		field.Bool("proactive").
			Default(false),
		field.Int("heartbeat_seconds").
			Default(3600).
			Min(60).
			Max(86400),
		field.Int("active_hours_start").
			Default(0).
			Min(0).
			Max(23),
		field.Int("active_hours_end").
			Default(23).
			Min(0).
			Max(23),

		field.String("template_id").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id"),
		index.Fields("team_id", "status"),
	}
}
