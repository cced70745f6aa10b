// Code generated by ent, DO NOT EDIT.

package sorpermission

import (
	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldLTE(FieldID, id))
}

// TableID applies equality check predicate on the "table_id" field. It's identical to TableIDEQ.
func TableID(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldEQ(FieldTableID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldEQ(FieldAgentID, v))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldEQ(FieldTeamID, v))
}

// CanRead applies equality check predicate on the "can_read" field. It's identical to CanReadEQ.
func CanRead(v bool) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldEQ(FieldCanRead, v))
}

// CanWrite applies equality check predicate on the "can_write" field. It's identical to CanWriteEQ.
func CanWrite(v bool) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldEQ(FieldCanWrite, v))
}

// TableIDEQ applies the EQ predicate on the "table_id" field.
func TableIDEQ(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldEQ(FieldTableID, v))
}

// TableIDNEQ applies the NEQ predicate on the "table_id" field.
func TableIDNEQ(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldNEQ(FieldTableID, v))
}

// TableIDIn applies the In predicate on the "table_id" field.
func TableIDIn(vs ...string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldIn(FieldTableID, vs...))
}

// TableIDNotIn applies the NotIn predicate on the "table_id" field.
func TableIDNotIn(vs ...string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldNotIn(FieldTableID, vs...))
}

// TableIDGT applies the GT predicate on the "table_id" field.
func TableIDGT(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldGT(FieldTableID, v))
}

// TableIDGTE applies the GTE predicate on the "table_id" field.
func TableIDGTE(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldGTE(FieldTableID, v))
}

// TableIDLT applies the LT predicate on the "table_id" field.
func TableIDLT(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldLT(FieldTableID, v))
}

// TableIDLTE applies the LTE predicate on the "table_id" field.
func TableIDLTE(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldLTE(FieldTableID, v))
}

// TableIDContains applies the Contains predicate on the "table_id" field.
func TableIDContains(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldContains(FieldTableID, v))
}

// TableIDHasPrefix applies the HasPrefix predicate on the "table_id" field.
func TableIDHasPrefix(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldHasPrefix(FieldTableID, v))
}

// TableIDHasSuffix applies the HasSuffix predicate on the "table_id" field.
func TableIDHasSuffix(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldHasSuffix(FieldTableID, v))
}

// TableIDEqualFold applies the EqualFold predicate on the "table_id" field.
func TableIDEqualFold(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldEqualFold(FieldTableID, v))
}

// TableIDContainsFold applies the ContainsFold predicate on the "table_id" field.
func TableIDContainsFold(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldContainsFold(FieldTableID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldContainsFold(FieldAgentID, v))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldNotIn(FieldTeamID, vs...))
}

// TeamIDGT applies the GT predicate on the "team_id" field.
func TeamIDGT(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldGT(FieldTeamID, v))
}

// TeamIDGTE applies the GTE predicate on the "team_id" field.
func TeamIDGTE(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldGTE(FieldTeamID, v))
}

// TeamIDLT applies the LT predicate on the "team_id" field.
func TeamIDLT(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldLT(FieldTeamID, v))
}

// TeamIDLTE applies the LTE predicate on the "team_id" field.
func TeamIDLTE(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldLTE(FieldTeamID, v))
}

// TeamIDContains applies the Contains predicate on the "team_id" field.
func TeamIDContains(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldContains(FieldTeamID, v))
}

// TeamIDHasPrefix applies the HasPrefix predicate on the "team_id" field.
func TeamIDHasPrefix(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldHasPrefix(FieldTeamID, v))
}

// TeamIDHasSuffix applies the HasSuffix predicate on the "team_id" field.
func TeamIDHasSuffix(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldHasSuffix(FieldTeamID, v))
}

// TeamIDEqualFold applies the EqualFold predicate on the "team_id" field.
func TeamIDEqualFold(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldEqualFold(FieldTeamID, v))
}

// TeamIDContainsFold applies the ContainsFold predicate on the "team_id" field.
func TeamIDContainsFold(v string) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldContainsFold(FieldTeamID, v))
}

// CanReadEQ applies the EQ predicate on the "can_read" field.
func CanReadEQ(v bool) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldEQ(FieldCanRead, v))
}

// CanReadNEQ applies the NEQ predicate on the "can_read" field.
func CanReadNEQ(v bool) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldNEQ(FieldCanRead, v))
}

// CanWriteEQ applies the EQ predicate on the "can_write" field.
func CanWriteEQ(v bool) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldEQ(FieldCanWrite, v))
}

// CanWriteNEQ applies the NEQ predicate on the "can_write" field.
func CanWriteNEQ(v bool) predicate.SorPermission {
	return predicate.SorPermission(sql.FieldNEQ(FieldCanWrite, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SorPermission) predicate.SorPermission {
	return predicate.SorPermission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SorPermission) predicate.SorPermission {
	return predicate.SorPermission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SorPermission) predicate.SorPermission {
	return predicate.SorPermission(sql.NotPredicates(p))
}
