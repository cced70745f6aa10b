// Code generated by ent, DO NOT EDIT.

package credential

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldID, id))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldTeamID, v))
}

// ServiceID applies equality check predicate on the "service_id" field. It's identical to ServiceIDEQ.
func ServiceID(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldServiceID, v))
}

// CredentialType applies equality check predicate on the "credential_type" field. It's identical to CredentialTypeEQ.
func CredentialType(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldCredentialType, v))
}

// EncryptedValue applies equality check predicate on the "encrypted_value" field. It's identical to EncryptedValueEQ.
func EncryptedValue(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldEncryptedValue, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldUpdatedAt, v))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldTeamID, vs...))
}

// TeamIDGT applies the GT predicate on the "team_id" field.
func TeamIDGT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldTeamID, v))
}

// TeamIDGTE applies the GTE predicate on the "team_id" field.
func TeamIDGTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldTeamID, v))
}

// TeamIDLT applies the LT predicate on the "team_id" field.
func TeamIDLT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldTeamID, v))
}

// TeamIDLTE applies the LTE predicate on the "team_id" field.
func TeamIDLTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldTeamID, v))
}

// TeamIDContains applies the Contains predicate on the "team_id" field.
func TeamIDContains(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContains(FieldTeamID, v))
}

// TeamIDHasPrefix applies the HasPrefix predicate on the "team_id" field.
func TeamIDHasPrefix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasPrefix(FieldTeamID, v))
}

// TeamIDHasSuffix applies the HasSuffix predicate on the "team_id" field.
func TeamIDHasSuffix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasSuffix(FieldTeamID, v))
}

// TeamIDEqualFold applies the EqualFold predicate on the "team_id" field.
func TeamIDEqualFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEqualFold(FieldTeamID, v))
}

// TeamIDContainsFold applies the ContainsFold predicate on the "team_id" field.
func TeamIDContainsFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContainsFold(FieldTeamID, v))
}

// ServiceIDEQ applies the EQ predicate on the "service_id" field.
func ServiceIDEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldServiceID, v))
}

// ServiceIDNEQ applies the NEQ predicate on the "service_id" field.
func ServiceIDNEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldServiceID, v))
}

// ServiceIDIn applies the In predicate on the "service_id" field.
func ServiceIDIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldServiceID, vs...))
}

// ServiceIDNotIn applies the NotIn predicate on the "service_id" field.
func ServiceIDNotIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldServiceID, vs...))
}

// ServiceIDGT applies the GT predicate on the "service_id" field.
func ServiceIDGT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldServiceID, v))
}

// ServiceIDGTE applies the GTE predicate on the "service_id" field.
func ServiceIDGTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldServiceID, v))
}

// ServiceIDLT applies the LT predicate on the "service_id" field.
func ServiceIDLT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldServiceID, v))
}

// ServiceIDLTE applies the LTE predicate on the "service_id" field.
func ServiceIDLTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldServiceID, v))
}

// ServiceIDContains applies the Contains predicate on the "service_id" field.
func ServiceIDContains(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContains(FieldServiceID, v))
}

// ServiceIDHasPrefix applies the HasPrefix predicate on the "service_id" field.
func ServiceIDHasPrefix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasPrefix(FieldServiceID, v))
}

// ServiceIDHasSuffix applies the HasSuffix predicate on the "service_id" field.
func ServiceIDHasSuffix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasSuffix(FieldServiceID, v))
}

// ServiceIDEqualFold applies the EqualFold predicate on the "service_id" field.
func ServiceIDEqualFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEqualFold(FieldServiceID, v))
}

// ServiceIDContainsFold applies the ContainsFold predicate on the "service_id" field.
func ServiceIDContainsFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContainsFold(FieldServiceID, v))
}

// CredentialTypeEQ applies the EQ predicate on the "credential_type" field.
func CredentialTypeEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldCredentialType, v))
}

// CredentialTypeNEQ applies the NEQ predicate on the "credential_type" field.
func CredentialTypeNEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldCredentialType, v))
}

// CredentialTypeIn applies the In predicate on the "credential_type" field.
func CredentialTypeIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldCredentialType, vs...))
}

// CredentialTypeNotIn applies the NotIn predicate on the "credential_type" field.
func CredentialTypeNotIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldCredentialType, vs...))
}

// CredentialTypeGT applies the GT predicate on the "credential_type" field.
func CredentialTypeGT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldCredentialType, v))
}

// CredentialTypeGTE applies the GTE predicate on the "credential_type" field.
func CredentialTypeGTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldCredentialType, v))
}

// CredentialTypeLT applies the LT predicate on the "credential_type" field.
func CredentialTypeLT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldCredentialType, v))
}

// CredentialTypeLTE applies the LTE predicate on the "credential_type" field.
func CredentialTypeLTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldCredentialType, v))
}

// CredentialTypeContains applies the Contains predicate on the "credential_type" field.
func CredentialTypeContains(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContains(FieldCredentialType, v))
}

// CredentialTypeHasPrefix applies the HasPrefix predicate on the "credential_type" field.
func CredentialTypeHasPrefix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasPrefix(FieldCredentialType, v))
}

// CredentialTypeHasSuffix applies the HasSuffix predicate on the "credential_type" field.
func CredentialTypeHasSuffix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasSuffix(FieldCredentialType, v))
}

// CredentialTypeEqualFold applies the EqualFold predicate on the "credential_type" field.
func CredentialTypeEqualFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEqualFold(FieldCredentialType, v))
}

// CredentialTypeContainsFold applies the ContainsFold predicate on the "credential_type" field.
func CredentialTypeContainsFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContainsFold(FieldCredentialType, v))
}

// EncryptedValueEQ applies the EQ predicate on the "encrypted_value" field.
func EncryptedValueEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldEncryptedValue, v))
}

// EncryptedValueNEQ applies the NEQ predicate on the "encrypted_value" field.
func EncryptedValueNEQ(v string) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldEncryptedValue, v))
}

// EncryptedValueIn applies the In predicate on the "encrypted_value" field.
func EncryptedValueIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldEncryptedValue, vs...))
}

// EncryptedValueNotIn applies the NotIn predicate on the "encrypted_value" field.
func EncryptedValueNotIn(vs ...string) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldEncryptedValue, vs...))
}

// EncryptedValueGT applies the GT predicate on the "encrypted_value" field.
func EncryptedValueGT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldEncryptedValue, v))
}

// EncryptedValueGTE applies the GTE predicate on the "encrypted_value" field.
func EncryptedValueGTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldEncryptedValue, v))
}

// EncryptedValueLT applies the LT predicate on the "encrypted_value" field.
func EncryptedValueLT(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldEncryptedValue, v))
}

// EncryptedValueLTE applies the LTE predicate on the "encrypted_value" field.
func EncryptedValueLTE(v string) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldEncryptedValue, v))
}

// EncryptedValueContains applies the Contains predicate on the "encrypted_value" field.
func EncryptedValueContains(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContains(FieldEncryptedValue, v))
}

// EncryptedValueHasPrefix applies the HasPrefix predicate on the "encrypted_value" field.
func EncryptedValueHasPrefix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasPrefix(FieldEncryptedValue, v))
}

// EncryptedValueHasSuffix applies the HasSuffix predicate on the "encrypted_value" field.
func EncryptedValueHasSuffix(v string) predicate.Credential {
	return predicate.Credential(sql.FieldHasSuffix(FieldEncryptedValue, v))
}

// EncryptedValueEqualFold applies the EqualFold predicate on the "encrypted_value" field.
func EncryptedValueEqualFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldEqualFold(FieldEncryptedValue, v))
}

// EncryptedValueContainsFold applies the ContainsFold predicate on the "encrypted_value" field.
func EncryptedValueContainsFold(v string) predicate.Credential {
	return predicate.Credential(sql.FieldContainsFold(FieldEncryptedValue, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Credential {
	return predicate.Credential(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Credential) predicate.Credential {
	return predicate.Credential(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Credential) predicate.Credential {
	return predicate.Credential(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Credential) predicate.Credential {
	return predicate.Credential(sql.NotPredicates(p))
}
