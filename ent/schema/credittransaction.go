package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CreditTransaction is one ledger entry. The team balance invariant
// (balance == sum of amounts) is maintained by CreditService, which writes
// the balance delta and the ledger row in one transaction.
type CreditTransaction struct {
	ent.Schema
}

// Fields of the CreditTransaction.
func (CreditTransaction) Fields() []ent.Field {
	return []ent.Field{
		field.String("team_id").
			Immutable(),
		field.Int("amount").
			Comment("Negative for deductions, positive for refunds and top-ups"),
		field.String("reason"),
		field.String("correlation_id").
			Default("").
			Comment("Links a deduction with its refund on provider failure"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the CreditTransaction.
func (CreditTransaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id"),
		index.Fields("correlation_id"),
	}
}
