package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatChannel holds the schema definition for the ChatChannel entity.
// DM channels are named "dm:<agent_id>", task threads "task:<task_id>";
// both are singletons per (team, name) and lazily created.
type ChatChannel struct {
	ent.Schema
}

// Fields of the ChatChannel.
func (ChatChannel) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("team_id").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Enum("type").
			Values("dm", "group", "task_thread"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ChatChannel.
func (ChatChannel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id", "name").
			Unique(),
	}
}
