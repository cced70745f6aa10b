// Code generated by ent, DO NOT EDIT.

package agent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTeamID holds the string denoting the team_id field in the database.
	FieldTeamID = "team_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDepartment holds the string denoting the department field in the database.
	FieldDepartment = "department"
	// FieldModelID holds the string denoting the model_id field in the database.
	FieldModelID = "model_id"
	// FieldModelEndpoint holds the string denoting the model_endpoint field in the database.
	FieldModelEndpoint = "model_endpoint"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldSystemPrompt holds the string denoting the system_prompt field in the database.
	FieldSystemPrompt = "system_prompt"
	// FieldSkills holds the string denoting the skills field in the database.
	FieldSkills = "skills"
	// FieldProactive holds the string denoting the proactive field in the database.
	FieldProactive = "proactive"
	// FieldHeartbeatSeconds holds the string denoting the heartbeat_seconds field in the database.
	FieldHeartbeatSeconds = "heartbeat_seconds"
	// FieldActiveHoursStart holds the string denoting the active_hours_start field in the database.
	FieldActiveHoursStart = "active_hours_start"
	// FieldActiveHoursEnd holds the string denoting the active_hours_end field in the database.
	FieldActiveHoursEnd = "active_hours_end"
	// FieldTemplateID holds the string denoting the template_id field in the database.
	FieldTemplateID = "template_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the agent in the database.
	Table = "agents"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldTeamID,
	FieldName,
	FieldStatus,
	FieldDepartment,
	FieldModelID,
	FieldModelEndpoint,
	FieldModelName,
	FieldSystemPrompt,
	FieldSkills,
	FieldProactive,
	FieldHeartbeatSeconds,
	FieldActiveHoursStart,
	FieldActiveHoursEnd,
	FieldTemplateID,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultModelID holds the default value on creation for the "model_id" field.
	DefaultModelID string
	// DefaultSystemPrompt holds the default value on creation for the "system_prompt" field.
	DefaultSystemPrompt string
	// DefaultProactive holds the default value on creation for the "proactive" field.
	DefaultProactive bool
	// DefaultHeartbeatSeconds holds the default value on creation for the "heartbeat_seconds" field.
	DefaultHeartbeatSeconds int
	// HeartbeatSecondsValidator is a validator for the "heartbeat_seconds" field. It is called by the builders before save.
	HeartbeatSecondsValidator func(int) error
	// DefaultActiveHoursStart holds the default value on creation for the "active_hours_start" field.
	DefaultActiveHoursStart int
	// ActiveHoursStartValidator is a validator for the "active_hours_start" field. It is called by the builders before save.
	ActiveHoursStartValidator func(int) error
	// DefaultActiveHoursEnd holds the default value on creation for the "active_hours_end" field.
	DefaultActiveHoursEnd int
	// ActiveHoursEndValidator is a validator for the "active_hours_end" field. It is called by the builders before save.
	ActiveHoursEndValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusStopped is the default value of the Status enum.
const DefaultStatus = StatusStopped

// Status values.
const (
	StatusStopped Status = "stopped"
	StatusRunning Status = "running"
	StatusError   Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusStopped, StatusRunning, StatusError:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTeamID orders the results by the team_id field.
func ByTeamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeamID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDepartment orders the results by the department field.
func ByDepartment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepartment, opts...).ToFunc()
}

// ByModelID orders the results by the model_id field.
func ByModelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelID, opts...).ToFunc()
}

// ByModelEndpoint orders the results by the model_endpoint field.
func ByModelEndpoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelEndpoint, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// BySystemPrompt orders the results by the system_prompt field.
func BySystemPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemPrompt, opts...).ToFunc()
}

// ByProactive orders the results by the proactive field.
func ByProactive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProactive, opts...).ToFunc()
}

// ByHeartbeatSeconds orders the results by the heartbeat_seconds field.
func ByHeartbeatSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeartbeatSeconds, opts...).ToFunc()
}

// ByActiveHoursStart orders the results by the active_hours_start field.
func ByActiveHoursStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveHoursStart, opts...).ToFunc()
}

// ByActiveHoursEnd orders the results by the active_hours_end field.
func ByActiveHoursEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveHoursEnd, opts...).ToFunc()
}

// ByTemplateID orders the results by the template_id field.
func ByTemplateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
