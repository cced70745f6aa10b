package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/crewforge/crewd/pkg/models"
)

// SorTable is a tenant-scoped dynamic table (source of record) with
// user-defined ordered columns. Name lookups are case-insensitive within
// a tenant.
type SorTable struct {
	ent.Schema
}

// Fields of the SorTable.
func (SorTable) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("team_id").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.JSON("columns", []models.SorColumn{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SorTable.
func (SorTable) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id"),
	}
}
