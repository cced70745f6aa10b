package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subscription is a team's billing subscription. At most one row per team;
// a team without a row (and with zero credits) is inactive in hosted mode.
type Subscription struct {
	ent.Schema
}

// Fields of the Subscription.
func (Subscription) Fields() []ent.Field {
	return []ent.Field{
		field.String("team_id").
			Unique().
			Immutable(),
		field.String("plan"),
		field.Enum("status").
			Values("active", "past_due", "canceled").
			Default("active"),
		field.Time("current_period_end").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Subscription.
func (Subscription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id"),
	}
}
