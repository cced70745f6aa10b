// Code generated by ent, DO NOT EDIT.

package meeting

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldID, id))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldTeamID, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldType, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldTitle, v))
}

// AdvisorAgentID applies equality check predicate on the "advisor_agent_id" field. It's identical to AdvisorAgentIDEQ.
func AdvisorAgentID(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldAdvisorAgentID, v))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCompanyName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCreatedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldEndedAt, v))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldTeamID, vs...))
}

// TeamIDGT applies the GT predicate on the "team_id" field.
func TeamIDGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldTeamID, v))
}

// TeamIDGTE applies the GTE predicate on the "team_id" field.
func TeamIDGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldTeamID, v))
}

// TeamIDLT applies the LT predicate on the "team_id" field.
func TeamIDLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldTeamID, v))
}

// TeamIDLTE applies the LTE predicate on the "team_id" field.
func TeamIDLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldTeamID, v))
}

// TeamIDContains applies the Contains predicate on the "team_id" field.
func TeamIDContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldTeamID, v))
}

// TeamIDHasPrefix applies the HasPrefix predicate on the "team_id" field.
func TeamIDHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldTeamID, v))
}

// TeamIDHasSuffix applies the HasSuffix predicate on the "team_id" field.
func TeamIDHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldTeamID, v))
}

// TeamIDEqualFold applies the EqualFold predicate on the "team_id" field.
func TeamIDEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldTeamID, v))
}

// TeamIDContainsFold applies the ContainsFold predicate on the "team_id" field.
func TeamIDContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldTeamID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldType, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldTitle, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldStatus, vs...))
}

// AdvisorAgentIDEQ applies the EQ predicate on the "advisor_agent_id" field.
func AdvisorAgentIDEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldAdvisorAgentID, v))
}

// AdvisorAgentIDNEQ applies the NEQ predicate on the "advisor_agent_id" field.
func AdvisorAgentIDNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldAdvisorAgentID, v))
}

// AdvisorAgentIDIn applies the In predicate on the "advisor_agent_id" field.
func AdvisorAgentIDIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldAdvisorAgentID, vs...))
}

// AdvisorAgentIDNotIn applies the NotIn predicate on the "advisor_agent_id" field.
func AdvisorAgentIDNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldAdvisorAgentID, vs...))
}

// AdvisorAgentIDGT applies the GT predicate on the "advisor_agent_id" field.
func AdvisorAgentIDGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldAdvisorAgentID, v))
}

// AdvisorAgentIDGTE applies the GTE predicate on the "advisor_agent_id" field.
func AdvisorAgentIDGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldAdvisorAgentID, v))
}

// AdvisorAgentIDLT applies the LT predicate on the "advisor_agent_id" field.
func AdvisorAgentIDLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldAdvisorAgentID, v))
}

// AdvisorAgentIDLTE applies the LTE predicate on the "advisor_agent_id" field.
func AdvisorAgentIDLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldAdvisorAgentID, v))
}

// AdvisorAgentIDContains applies the Contains predicate on the "advisor_agent_id" field.
func AdvisorAgentIDContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldAdvisorAgentID, v))
}

// AdvisorAgentIDHasPrefix applies the HasPrefix predicate on the "advisor_agent_id" field.
func AdvisorAgentIDHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldAdvisorAgentID, v))
}

// AdvisorAgentIDHasSuffix applies the HasSuffix predicate on the "advisor_agent_id" field.
func AdvisorAgentIDHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldAdvisorAgentID, v))
}

// AdvisorAgentIDEqualFold applies the EqualFold predicate on the "advisor_agent_id" field.
func AdvisorAgentIDEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldAdvisorAgentID, v))
}

// AdvisorAgentIDContainsFold applies the ContainsFold predicate on the "advisor_agent_id" field.
func AdvisorAgentIDContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldAdvisorAgentID, v))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameIsNil applies the IsNil predicate on the "company_name" field.
func CompanyNameIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldCompanyName))
}

// CompanyNameNotNil applies the NotNil predicate on the "company_name" field.
func CompanyNameNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldCompanyName))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldCompanyName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldCreatedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldEndedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Meeting) predicate.Meeting {
	return predicate.Meeting(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Meeting) predicate.Meeting {
	return predicate.Meeting(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Meeting) predicate.Meeting {
	return predicate.Meeting(sql.NotPredicates(p))
}
