package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KBDocument holds the schema definition for a knowledge-base document.
// Lifecycle: pending → processing → ready | failed.
type KBDocument struct {
	ent.Schema
}

// Fields of the KBDocument.
func (KBDocument) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("team_id").
			Immutable(),
		field.String("filename").
			NotEmpty(),
		field.Enum("format").
			Values("pdf", "docx", "txt", "md", "csv"),
		field.Enum("status").
			Values("pending", "processing", "ready", "failed").
			Default("pending"),
		field.Text("summary_l0").
			Default("").
			Comment("Short summary, ~100 tokens"),
		field.Text("summary_l1").
			Default("").
			Comment("Long overview, 300-500 words"),
		field.Int("chunk_count").
			Default(0),
		field.Int64("size_bytes").
			Default(0),
		field.String("error").
			Optional().
			Nillable().
			Comment("Truncated ingestion error when status=failed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the KBDocument.
func (KBDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id"),
		index.Fields("team_id", "status"),
	}
}
