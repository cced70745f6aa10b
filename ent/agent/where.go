// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldID, id))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTeamID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldName, v))
}

// Department applies equality check predicate on the "department" field. It's identical to DepartmentEQ.
func Department(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldDepartment, v))
}

// ModelID applies equality check predicate on the "model_id" field. It's identical to ModelIDEQ.
func ModelID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldModelID, v))
}

// ModelEndpoint applies equality check predicate on the "model_endpoint" field. It's identical to ModelEndpointEQ.
func ModelEndpoint(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldModelEndpoint, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldModelName, v))
}

// SystemPrompt applies equality check predicate on the "system_prompt" field. It's identical to SystemPromptEQ.
func SystemPrompt(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSystemPrompt, v))
}

// Proactive applies equality check predicate on the "proactive" field. It's identical to ProactiveEQ.
func Proactive(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldProactive, v))
}

// HeartbeatSeconds applies equality check predicate on the "heartbeat_seconds" field. It's identical to HeartbeatSecondsEQ.
func HeartbeatSeconds(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldHeartbeatSeconds, v))
}

// ActiveHoursStart applies equality check predicate on the "active_hours_start" field. It's identical to ActiveHoursStartEQ.
func ActiveHoursStart(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldActiveHoursStart, v))
}

// ActiveHoursEnd applies equality check predicate on the "active_hours_end" field. It's identical to ActiveHoursEndEQ.
func ActiveHoursEnd(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldActiveHoursEnd, v))
}

// TemplateID applies equality check predicate on the "template_id" field. It's identical to TemplateIDEQ.
func TemplateID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTemplateID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTeamID, vs...))
}

// TeamIDGT applies the GT predicate on the "team_id" field.
func TeamIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTeamID, v))
}

// TeamIDGTE applies the GTE predicate on the "team_id" field.
func TeamIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTeamID, v))
}

// TeamIDLT applies the LT predicate on the "team_id" field.
func TeamIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTeamID, v))
}

// TeamIDLTE applies the LTE predicate on the "team_id" field.
func TeamIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTeamID, v))
}

// TeamIDContains applies the Contains predicate on the "team_id" field.
func TeamIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldTeamID, v))
}

// TeamIDHasPrefix applies the HasPrefix predicate on the "team_id" field.
func TeamIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldTeamID, v))
}

// TeamIDHasSuffix applies the HasSuffix predicate on the "team_id" field.
func TeamIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldTeamID, v))
}

// TeamIDEqualFold applies the EqualFold predicate on the "team_id" field.
func TeamIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldTeamID, v))
}

// TeamIDContainsFold applies the ContainsFold predicate on the "team_id" field.
func TeamIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldTeamID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldStatus, vs...))
}

// DepartmentEQ applies the EQ predicate on the "department" field.
func DepartmentEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldDepartment, v))
}

// DepartmentNEQ applies the NEQ predicate on the "department" field.
func DepartmentNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldDepartment, v))
}

// DepartmentIn applies the In predicate on the "department" field.
func DepartmentIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldDepartment, vs...))
}

// DepartmentNotIn applies the NotIn predicate on the "department" field.
func DepartmentNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldDepartment, vs...))
}

// DepartmentGT applies the GT predicate on the "department" field.
func DepartmentGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldDepartment, v))
}

// DepartmentGTE applies the GTE predicate on the "department" field.
func DepartmentGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldDepartment, v))
}

// DepartmentLT applies the LT predicate on the "department" field.
func DepartmentLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldDepartment, v))
}

// DepartmentLTE applies the LTE predicate on the "department" field.
func DepartmentLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldDepartment, v))
}

// DepartmentContains applies the Contains predicate on the "department" field.
func DepartmentContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldDepartment, v))
}

// DepartmentHasPrefix applies the HasPrefix predicate on the "department" field.
func DepartmentHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldDepartment, v))
}

// DepartmentHasSuffix applies the HasSuffix predicate on the "department" field.
func DepartmentHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldDepartment, v))
}

// DepartmentIsNil applies the IsNil predicate on the "department" field.
func DepartmentIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldDepartment))
}

// DepartmentNotNil applies the NotNil predicate on the "department" field.
func DepartmentNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldDepartment))
}

// DepartmentEqualFold applies the EqualFold predicate on the "department" field.
func DepartmentEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldDepartment, v))
}

// DepartmentContainsFold applies the ContainsFold predicate on the "department" field.
func DepartmentContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldDepartment, v))
}

// ModelIDEQ applies the EQ predicate on the "model_id" field.
func ModelIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldModelID, v))
}

// ModelIDNEQ applies the NEQ predicate on the "model_id" field.
func ModelIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldModelID, v))
}

// ModelIDIn applies the In predicate on the "model_id" field.
func ModelIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldModelID, vs...))
}

// ModelIDNotIn applies the NotIn predicate on the "model_id" field.
func ModelIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldModelID, vs...))
}

// ModelIDGT applies the GT predicate on the "model_id" field.
func ModelIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldModelID, v))
}

// ModelIDGTE applies the GTE predicate on the "model_id" field.
func ModelIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldModelID, v))
}

// ModelIDLT applies the LT predicate on the "model_id" field.
func ModelIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldModelID, v))
}

// ModelIDLTE applies the LTE predicate on the "model_id" field.
func ModelIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldModelID, v))
}

// ModelIDContains applies the Contains predicate on the "model_id" field.
func ModelIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldModelID, v))
}

// ModelIDHasPrefix applies the HasPrefix predicate on the "model_id" field.
func ModelIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldModelID, v))
}

// ModelIDHasSuffix applies the HasSuffix predicate on the "model_id" field.
func ModelIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldModelID, v))
}

// ModelIDEqualFold applies the EqualFold predicate on the "model_id" field.
func ModelIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldModelID, v))
}

// ModelIDContainsFold applies the ContainsFold predicate on the "model_id" field.
func ModelIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldModelID, v))
}

// ModelEndpointEQ applies the EQ predicate on the "model_endpoint" field.
func ModelEndpointEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldModelEndpoint, v))
}

// ModelEndpointNEQ applies the NEQ predicate on the "model_endpoint" field.
func ModelEndpointNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldModelEndpoint, v))
}

// ModelEndpointIn applies the In predicate on the "model_endpoint" field.
func ModelEndpointIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldModelEndpoint, vs...))
}

// ModelEndpointNotIn applies the NotIn predicate on the "model_endpoint" field.
func ModelEndpointNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldModelEndpoint, vs...))
}

// ModelEndpointGT applies the GT predicate on the "model_endpoint" field.
func ModelEndpointGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldModelEndpoint, v))
}

// ModelEndpointGTE applies the GTE predicate on the "model_endpoint" field.
func ModelEndpointGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldModelEndpoint, v))
}

// ModelEndpointLT applies the LT predicate on the "model_endpoint" field.
func ModelEndpointLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldModelEndpoint, v))
}

// ModelEndpointLTE applies the LTE predicate on the "model_endpoint" field.
func ModelEndpointLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldModelEndpoint, v))
}

// ModelEndpointContains applies the Contains predicate on the "model_endpoint" field.
func ModelEndpointContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldModelEndpoint, v))
}

// ModelEndpointHasPrefix applies the HasPrefix predicate on the "model_endpoint" field.
func ModelEndpointHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldModelEndpoint, v))
}

// ModelEndpointHasSuffix applies the HasSuffix predicate on the "model_endpoint" field.
func ModelEndpointHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldModelEndpoint, v))
}

// ModelEndpointIsNil applies the IsNil predicate on the "model_endpoint" field.
func ModelEndpointIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldModelEndpoint))
}

// ModelEndpointNotNil applies the NotNil predicate on the "model_endpoint" field.
func ModelEndpointNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldModelEndpoint))
}

// ModelEndpointEqualFold applies the EqualFold predicate on the "model_endpoint" field.
func ModelEndpointEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldModelEndpoint, v))
}

// ModelEndpointContainsFold applies the ContainsFold predicate on the "model_endpoint" field.
func ModelEndpointContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldModelEndpoint, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameIsNil applies the IsNil predicate on the "model_name" field.
func ModelNameIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldModelName))
}

// ModelNameNotNil applies the NotNil predicate on the "model_name" field.
func ModelNameNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldModelName))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldModelName, v))
}

// SystemPromptEQ applies the EQ predicate on the "system_prompt" field.
func SystemPromptEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSystemPrompt, v))
}

// SystemPromptNEQ applies the NEQ predicate on the "system_prompt" field.
func SystemPromptNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldSystemPrompt, v))
}

// SystemPromptIn applies the In predicate on the "system_prompt" field.
func SystemPromptIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldSystemPrompt, vs...))
}

// SystemPromptNotIn applies the NotIn predicate on the "system_prompt" field.
func SystemPromptNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldSystemPrompt, vs...))
}

// SystemPromptGT applies the GT predicate on the "system_prompt" field.
func SystemPromptGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldSystemPrompt, v))
}

// SystemPromptGTE applies the GTE predicate on the "system_prompt" field.
func SystemPromptGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldSystemPrompt, v))
}

// SystemPromptLT applies the LT predicate on the "system_prompt" field.
func SystemPromptLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldSystemPrompt, v))
}

// SystemPromptLTE applies the LTE predicate on the "system_prompt" field.
func SystemPromptLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldSystemPrompt, v))
}

// SystemPromptContains applies the Contains predicate on the "system_prompt" field.
func SystemPromptContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldSystemPrompt, v))
}

// SystemPromptHasPrefix applies the HasPrefix predicate on the "system_prompt" field.
func SystemPromptHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldSystemPrompt, v))
}

// SystemPromptHasSuffix applies the HasSuffix predicate on the "system_prompt" field.
func SystemPromptHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldSystemPrompt, v))
}

// SystemPromptEqualFold applies the EqualFold predicate on the "system_prompt" field.
func SystemPromptEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldSystemPrompt, v))
}

// SystemPromptContainsFold applies the ContainsFold predicate on the "system_prompt" field.
func SystemPromptContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldSystemPrompt, v))
}

// SkillsIsNil applies the IsNil predicate on the "skills" field.
func SkillsIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldSkills))
}

// SkillsNotNil applies the NotNil predicate on the "skills" field.
func SkillsNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldSkills))
}

// ProactiveEQ applies the EQ predicate on the "proactive" field.
func ProactiveEQ(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldProactive, v))
}

// ProactiveNEQ applies the NEQ predicate on the "proactive" field.
func ProactiveNEQ(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldProactive, v))
}

// HeartbeatSecondsEQ applies the EQ predicate on the "heartbeat_seconds" field.
func HeartbeatSecondsEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldHeartbeatSeconds, v))
}

// HeartbeatSecondsNEQ applies the NEQ predicate on the "heartbeat_seconds" field.
func HeartbeatSecondsNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldHeartbeatSeconds, v))
}

// HeartbeatSecondsIn applies the In predicate on the "heartbeat_seconds" field.
func HeartbeatSecondsIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldHeartbeatSeconds, vs...))
}

// HeartbeatSecondsNotIn applies the NotIn predicate on the "heartbeat_seconds" field.
func HeartbeatSecondsNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldHeartbeatSeconds, vs...))
}

// HeartbeatSecondsGT applies the GT predicate on the "heartbeat_seconds" field.
func HeartbeatSecondsGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldHeartbeatSeconds, v))
}

// HeartbeatSecondsGTE applies the GTE predicate on the "heartbeat_seconds" field.
func HeartbeatSecondsGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldHeartbeatSeconds, v))
}

// HeartbeatSecondsLT applies the LT predicate on the "heartbeat_seconds" field.
func HeartbeatSecondsLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldHeartbeatSeconds, v))
}

// HeartbeatSecondsLTE applies the LTE predicate on the "heartbeat_seconds" field.
func HeartbeatSecondsLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldHeartbeatSeconds, v))
}

// ActiveHoursStartEQ applies the EQ predicate on the "active_hours_start" field.
func ActiveHoursStartEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldActiveHoursStart, v))
}

// ActiveHoursStartNEQ applies the NEQ predicate on the "active_hours_start" field.
func ActiveHoursStartNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldActiveHoursStart, v))
}

// ActiveHoursStartIn applies the In predicate on the "active_hours_start" field.
func ActiveHoursStartIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldActiveHoursStart, vs...))
}

// ActiveHoursStartNotIn applies the NotIn predicate on the "active_hours_start" field.
func ActiveHoursStartNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldActiveHoursStart, vs...))
}

// ActiveHoursStartGT applies the GT predicate on the "active_hours_start" field.
func ActiveHoursStartGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldActiveHoursStart, v))
}

// ActiveHoursStartGTE applies the GTE predicate on the "active_hours_start" field.
func ActiveHoursStartGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldActiveHoursStart, v))
}

// ActiveHoursStartLT applies the LT predicate on the "active_hours_start" field.
func ActiveHoursStartLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldActiveHoursStart, v))
}

// ActiveHoursStartLTE applies the LTE predicate on the "active_hours_start" field.
func ActiveHoursStartLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldActiveHoursStart, v))
}

// ActiveHoursEndEQ applies the EQ predicate on the "active_hours_end" field.
func ActiveHoursEndEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldActiveHoursEnd, v))
}

// ActiveHoursEndNEQ applies the NEQ predicate on the "active_hours_end" field.
func ActiveHoursEndNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldActiveHoursEnd, v))
}

// ActiveHoursEndIn applies the In predicate on the "active_hours_end" field.
func ActiveHoursEndIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldActiveHoursEnd, vs...))
}

// ActiveHoursEndNotIn applies the NotIn predicate on the "active_hours_end" field.
func ActiveHoursEndNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldActiveHoursEnd, vs...))
}

// ActiveHoursEndGT applies the GT predicate on the "active_hours_end" field.
func ActiveHoursEndGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldActiveHoursEnd, v))
}

// ActiveHoursEndGTE applies the GTE predicate on the "active_hours_end" field.
func ActiveHoursEndGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldActiveHoursEnd, v))
}

// ActiveHoursEndLT applies the LT predicate on the "active_hours_end" field.
func ActiveHoursEndLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldActiveHoursEnd, v))
}

// ActiveHoursEndLTE applies the LTE predicate on the "active_hours_end" field.
func ActiveHoursEndLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldActiveHoursEnd, v))
}

// TemplateIDEQ applies the EQ predicate on the "template_id" field.
func TemplateIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateIDNEQ applies the NEQ predicate on the "template_id" field.
func TemplateIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTemplateID, v))
}

// TemplateIDIn applies the In predicate on the "template_id" field.
func TemplateIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTemplateID, vs...))
}

// TemplateIDNotIn applies the NotIn predicate on the "template_id" field.
func TemplateIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTemplateID, vs...))
}

// TemplateIDGT applies the GT predicate on the "template_id" field.
func TemplateIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTemplateID, v))
}

// TemplateIDGTE applies the GTE predicate on the "template_id" field.
func TemplateIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTemplateID, v))
}

// TemplateIDLT applies the LT predicate on the "template_id" field.
func TemplateIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTemplateID, v))
}

// TemplateIDLTE applies the LTE predicate on the "template_id" field.
func TemplateIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTemplateID, v))
}

// TemplateIDContains applies the Contains predicate on the "template_id" field.
func TemplateIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldTemplateID, v))
}

// TemplateIDHasPrefix applies the HasPrefix predicate on the "template_id" field.
func TemplateIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldTemplateID, v))
}

// TemplateIDHasSuffix applies the HasSuffix predicate on the "template_id" field.
func TemplateIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldTemplateID, v))
}

// TemplateIDIsNil applies the IsNil predicate on the "template_id" field.
func TemplateIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldTemplateID))
}

// TemplateIDNotNil applies the NotNil predicate on the "template_id" field.
func TemplateIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldTemplateID))
}

// TemplateIDEqualFold applies the EqualFold predicate on the "template_id" field.
func TemplateIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldTemplateID, v))
}

// TemplateIDContainsFold applies the ContainsFold predicate on the "template_id" field.
func TemplateIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldTemplateID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}
