package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SorPermission grants an agent read/write access to one source-of-record
// table. Absence of a row means no access.
type SorPermission struct {
	ent.Schema
}

// Fields of the SorPermission.
func (SorPermission) Fields() []ent.Field {
	return []ent.Field{
		field.String("table_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("team_id").
			Immutable(),
		field.Bool("can_read").
			Default(false),
		field.Bool("can_write").
			Default(false),
	}
}

// Indexes of the SorPermission.
func (SorPermission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("table_id", "agent_id").
			Unique(),
	}
}
