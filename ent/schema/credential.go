package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Credential stores an encrypted third-party secret for a (team, service)
// pair. The value is always the vault's tagged cipher format; plaintext is
// never persisted unless no encryption key is configured.
type Credential struct {
	ent.Schema
}

// Fields of the Credential.
func (Credential) Fields() []ent.Field {
	return []ent.Field{
		field.String("team_id").
			Immutable(),
		field.String("service_id").
			NotEmpty(),
		field.String("credential_type").
			Default("api_key"),
		field.Text("encrypted_value").
			Sensitive(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Credential.
func (Credential) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id", "service_id").
			Unique(),
	}
}
