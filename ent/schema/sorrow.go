package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SorRow is one row of a source-of-record table; data is an opaque
// column-name → value mapping.
type SorRow struct {
	ent.Schema
}

// Fields of the SorRow.
func (SorRow) Fields() []ent.Field {
	return []ent.Field{
		field.String("table_id").
			Immutable(),
		field.String("team_id").
			Immutable(),
		field.JSON("data", map[string]string{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SorRow.
func (SorRow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("table_id"),
		index.Fields("team_id"),
	}
}
