// Code generated by ent, DO NOT EDIT.

package sorpermission

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sorpermission type in the database.
	Label = "sor_permission"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTableID holds the string denoting the table_id field in the database.
	FieldTableID = "table_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldTeamID holds the string denoting the team_id field in the database.
	FieldTeamID = "team_id"
	// FieldCanRead holds the string denoting the can_read field in the database.
	FieldCanRead = "can_read"
	// FieldCanWrite holds the string denoting the can_write field in the database.
	FieldCanWrite = "can_write"
	// Table holds the table name of the sorpermission in the database.
	Table = "sor_permissions"
)

// Columns holds all SQL columns for sorpermission fields.
var Columns = []string{
	FieldID,
	FieldTableID,
	FieldAgentID,
	FieldTeamID,
	FieldCanRead,
	FieldCanWrite,
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
	// DefaultCanRead holds the default value on creation for the "can_read" field.
	DefaultCanRead bool
	// DefaultCanWrite holds the default value on creation for the "can_write" field.
	DefaultCanWrite bool
)

// OrderOption defines the ordering options for the SorPermission queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTableID orders the results by the table_id field.
func ByTableID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTableID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByTeamID orders the results by the team_id field.
func ByTeamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeamID, opts...).ToFunc()
}

// ByCanRead orders the results by the can_read field.
func ByCanRead(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanRead, opts...).ToFunc()
}

// ByCanWrite orders the results by the can_write field.
func ByCanWrite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanWrite, opts...).ToFunc()
}
