package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KBChunk is one retrieval unit of a knowledge-base document. The embedding
// is stored as a serialized float vector; similarity is computed in-process.
type KBChunk struct {
	ent.Schema
}

// Fields of the KBChunk.
func (KBChunk) Fields() []ent.Field {
	return []ent.Field{
		field.String("document_id").
			Immutable(),
		field.String("team_id").
			Immutable(),
		field.Int("seq").
			Comment("Reading-order position within the document, 0-based"),
		field.Text("content"),
		field.Int("token_count").
			Default(0),
		field.JSON("embedding", []float32{}).
			Optional(),
	}
}

// Indexes of the KBChunk.
func (KBChunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "seq").
			Unique(),
		index.Fields("team_id"),
	}
}
