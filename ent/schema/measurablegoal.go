package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MeasurableGoal tracks a numeric metric toward a target value.
type MeasurableGoal struct {
	ent.Schema
}

// Fields of the MeasurableGoal.
func (MeasurableGoal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("team_id").
			Immutable(),
		field.String("metric_name").
			NotEmpty(),
		field.Float("current_value").
			Default(0),
		field.Float("target_value"),
		field.String("unit").
			Default(""),
		field.Time("deadline").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("active", "achieved", "missed", "paused").
			Default("active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the MeasurableGoal.
func (MeasurableGoal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id"),
	}
}
