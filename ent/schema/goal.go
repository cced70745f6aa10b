package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Goal holds the schema definition for the Goal entity. Progress is derived
// from linked tasks at read time and never stored.
type Goal struct {
	ent.Schema
}

// Fields of the Goal.
func (Goal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("team_id").
			Immutable(),
		field.String("title").
			NotEmpty(),
		field.Text("description").
			Default(""),
		field.Enum("status").
			Values("active", "completed", "archived").
			Default("active"),
		field.Time("target_date").
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

// Indexes of the Goal.
func (Goal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id"),
	}
}
