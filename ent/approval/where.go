// Code generated by ent, DO NOT EDIT.

package approval

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldID, id))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldTeamID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldAgentID, v))
}

// ActionType applies equality check predicate on the "action_type" field. It's identical to ActionTypeEQ.
func ActionType(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldActionType, v))
}

// ActionDetail applies equality check predicate on the "action_detail" field. It's identical to ActionDetailEQ.
func ActionDetail(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldActionDetail, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedBy applies equality check predicate on the "resolved_by" field. It's identical to ResolvedByEQ.
func ResolvedBy(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldResolvedBy, v))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldTeamID, vs...))
}

// TeamIDGT applies the GT predicate on the "team_id" field.
func TeamIDGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldTeamID, v))
}

// TeamIDGTE applies the GTE predicate on the "team_id" field.
func TeamIDGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldTeamID, v))
}

// TeamIDLT applies the LT predicate on the "team_id" field.
func TeamIDLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldTeamID, v))
}

// TeamIDLTE applies the LTE predicate on the "team_id" field.
func TeamIDLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldTeamID, v))
}

// TeamIDContains applies the Contains predicate on the "team_id" field.
func TeamIDContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldTeamID, v))
}

// TeamIDHasPrefix applies the HasPrefix predicate on the "team_id" field.
func TeamIDHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldTeamID, v))
}

// TeamIDHasSuffix applies the HasSuffix predicate on the "team_id" field.
func TeamIDHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldTeamID, v))
}

// TeamIDEqualFold applies the EqualFold predicate on the "team_id" field.
func TeamIDEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldTeamID, v))
}

// TeamIDContainsFold applies the ContainsFold predicate on the "team_id" field.
func TeamIDContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldTeamID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldAgentID, v))
}

// ActionTypeEQ applies the EQ predicate on the "action_type" field.
func ActionTypeEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldActionType, v))
}

// ActionTypeNEQ applies the NEQ predicate on the "action_type" field.
func ActionTypeNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldActionType, v))
}

// ActionTypeIn applies the In predicate on the "action_type" field.
func ActionTypeIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldActionType, vs...))
}

// ActionTypeNotIn applies the NotIn predicate on the "action_type" field.
func ActionTypeNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldActionType, vs...))
}

// ActionTypeGT applies the GT predicate on the "action_type" field.
func ActionTypeGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldActionType, v))
}

// ActionTypeGTE applies the GTE predicate on the "action_type" field.
func ActionTypeGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldActionType, v))
}

// ActionTypeLT applies the LT predicate on the "action_type" field.
func ActionTypeLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldActionType, v))
}

// ActionTypeLTE applies the LTE predicate on the "action_type" field.
func ActionTypeLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldActionType, v))
}

// ActionTypeContains applies the Contains predicate on the "action_type" field.
func ActionTypeContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldActionType, v))
}

// ActionTypeHasPrefix applies the HasPrefix predicate on the "action_type" field.
func ActionTypeHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldActionType, v))
}

// ActionTypeHasSuffix applies the HasSuffix predicate on the "action_type" field.
func ActionTypeHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldActionType, v))
}

// ActionTypeEqualFold applies the EqualFold predicate on the "action_type" field.
func ActionTypeEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldActionType, v))
}

// ActionTypeContainsFold applies the ContainsFold predicate on the "action_type" field.
func ActionTypeContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldActionType, v))
}

// ActionDetailEQ applies the EQ predicate on the "action_detail" field.
func ActionDetailEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldActionDetail, v))
}

// ActionDetailNEQ applies the NEQ predicate on the "action_detail" field.
func ActionDetailNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldActionDetail, v))
}

// ActionDetailIn applies the In predicate on the "action_detail" field.
func ActionDetailIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldActionDetail, vs...))
}

// ActionDetailNotIn applies the NotIn predicate on the "action_detail" field.
func ActionDetailNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldActionDetail, vs...))
}

// ActionDetailGT applies the GT predicate on the "action_detail" field.
func ActionDetailGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldActionDetail, v))
}

// ActionDetailGTE applies the GTE predicate on the "action_detail" field.
func ActionDetailGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldActionDetail, v))
}

// ActionDetailLT applies the LT predicate on the "action_detail" field.
func ActionDetailLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldActionDetail, v))
}

// ActionDetailLTE applies the LTE predicate on the "action_detail" field.
func ActionDetailLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldActionDetail, v))
}

// ActionDetailContains applies the Contains predicate on the "action_detail" field.
func ActionDetailContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldActionDetail, v))
}

// ActionDetailHasPrefix applies the HasPrefix predicate on the "action_detail" field.
func ActionDetailHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldActionDetail, v))
}

// ActionDetailHasSuffix applies the HasSuffix predicate on the "action_detail" field.
func ActionDetailHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldActionDetail, v))
}

// ActionDetailEqualFold applies the EqualFold predicate on the "action_detail" field.
func ActionDetailEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldActionDetail, v))
}

// ActionDetailContainsFold applies the ContainsFold predicate on the "action_detail" field.
func ActionDetailContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldActionDetail, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v RiskLevel) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v RiskLevel) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...RiskLevel) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...RiskLevel) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.Approval {
	return predicate.Approval(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.Approval {
	return predicate.Approval(sql.FieldNotNull(FieldResolvedAt))
}

// ResolvedByEQ applies the EQ predicate on the "resolved_by" field.
func ResolvedByEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldResolvedBy, v))
}

// ResolvedByNEQ applies the NEQ predicate on the "resolved_by" field.
func ResolvedByNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldResolvedBy, v))
}

// ResolvedByIn applies the In predicate on the "resolved_by" field.
func ResolvedByIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldResolvedBy, vs...))
}

// ResolvedByNotIn applies the NotIn predicate on the "resolved_by" field.
func ResolvedByNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldResolvedBy, vs...))
}

// ResolvedByGT applies the GT predicate on the "resolved_by" field.
func ResolvedByGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldResolvedBy, v))
}

// ResolvedByGTE applies the GTE predicate on the "resolved_by" field.
func ResolvedByGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldResolvedBy, v))
}

// ResolvedByLT applies the LT predicate on the "resolved_by" field.
func ResolvedByLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldResolvedBy, v))
}

// ResolvedByLTE applies the LTE predicate on the "resolved_by" field.
func ResolvedByLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldResolvedBy, v))
}

// ResolvedByContains applies the Contains predicate on the "resolved_by" field.
func ResolvedByContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldResolvedBy, v))
}

// ResolvedByHasPrefix applies the HasPrefix predicate on the "resolved_by" field.
func ResolvedByHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldResolvedBy, v))
}

// ResolvedByHasSuffix applies the HasSuffix predicate on the "resolved_by" field.
func ResolvedByHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldResolvedBy, v))
}

// ResolvedByIsNil applies the IsNil predicate on the "resolved_by" field.
func ResolvedByIsNil() predicate.Approval {
	return predicate.Approval(sql.FieldIsNull(FieldResolvedBy))
}

// ResolvedByNotNil applies the NotNil predicate on the "resolved_by" field.
func ResolvedByNotNil() predicate.Approval {
	return predicate.Approval(sql.FieldNotNull(FieldResolvedBy))
}

// ResolvedByEqualFold applies the EqualFold predicate on the "resolved_by" field.
func ResolvedByEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldResolvedBy, v))
}

// ResolvedByContainsFold applies the ContainsFold predicate on the "resolved_by" field.
func ResolvedByContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldResolvedBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Approval) predicate.Approval {
	return predicate.Approval(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Approval) predicate.Approval {
	return predicate.Approval(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Approval) predicate.Approval {
	return predicate.Approval(sql.NotPredicates(p))
}
