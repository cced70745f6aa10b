package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Approval is a pending/approved/rejected high-risk action awaiting human
// review. State machine: pending → approved | rejected (terminal).
type Approval struct {
	ent.Schema
}

// Fields of the Approval.
func (Approval) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("team_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("action_type"),
		field.Text("action_detail").
			Default(""),
		field.Enum("risk_level").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.Enum("status").
			Values("pending", "approved", "rejected").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
		field.String("resolved_by").
			Optional().
			Nillable(),
	}
}

// Indexes of the Approval.
func (Approval) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id", "status"),
		index.Fields("team_id", "agent_id"),
	}
}
