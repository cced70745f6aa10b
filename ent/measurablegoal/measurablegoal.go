// Code generated by ent, DO NOT EDIT.

package measurablegoal

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the measurablegoal type in the database.
	Label = "measurable_goal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTeamID holds the string denoting the team_id field in the database.
	FieldTeamID = "team_id"
	// FieldMetricName holds the string denoting the metric_name field in the database.
	FieldMetricName = "metric_name"
	// FieldCurrentValue holds the string denoting the current_value field in the database.
	FieldCurrentValue = "current_value"
	// FieldTargetValue holds the string denoting the target_value field in the database.
	FieldTargetValue = "target_value"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldDeadline holds the string denoting the deadline field in the database.
	FieldDeadline = "deadline"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the measurablegoal in the database.
	Table = "measurable_goals"
)

// Columns holds all SQL columns for measurablegoal fields.
var Columns = []string{
	FieldID,
	FieldTeamID,
	FieldMetricName,
	FieldCurrentValue,
	FieldTargetValue,
	FieldUnit,
	FieldDeadline,
	FieldStatus,
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
	// MetricNameValidator is a validator for the "metric_name" field. It is called by the builders before save.
	MetricNameValidator func(string) error
	// DefaultCurrentValue holds the default value on creation for the "current_value" field.
	DefaultCurrentValue float64
	// DefaultUnit holds the default value on creation for the "unit" field.
	DefaultUnit string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive   Status = "active"
	StatusAchieved Status = "achieved"
	StatusMissed   Status = "missed"
	StatusPaused   Status = "paused"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusAchieved, StatusMissed, StatusPaused:
		return nil
	default:
		return fmt.Errorf("measurablegoal: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the MeasurableGoal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTeamID orders the results by the team_id field.
func ByTeamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeamID, opts...).ToFunc()
}

// ByMetricName orders the results by the metric_name field.
func ByMetricName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetricName, opts...).ToFunc()
}

// ByCurrentValue orders the results by the current_value field.
func ByCurrentValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentValue, opts...).ToFunc()
}

// ByTargetValue orders the results by the target_value field.
func ByTargetValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetValue, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// ByDeadline orders the results by the deadline field.
func ByDeadline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeadline, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
