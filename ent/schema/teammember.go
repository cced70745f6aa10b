package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TeamMember maps (team_id, user_id) to a role.
type TeamMember struct {
	ent.Schema
}

// Fields of the TeamMember.
func (TeamMember) Fields() []ent.Field {
	return []ent.Field{
		field.String("team_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("role").
			Values("admin", "member", "viewer").
			Default("member"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TeamMember.
func (TeamMember) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id", "user_id").
			Unique(),
		index.Fields("user_id"),
	}
}
