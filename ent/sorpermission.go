// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewd/ent/sorpermission"
)

// SorPermission is the model entity for the SorPermission schema.
type SorPermission struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TableID holds the value of the "table_id" field.
	TableID string `json:"table_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// TeamID holds the value of the "team_id" field.
	TeamID string `json:"team_id,omitempty"`
	// CanRead holds the value of the "can_read" field.
	CanRead bool `json:"can_read,omitempty"`
	// CanWrite holds the value of the "can_write" field.
	CanWrite     bool `json:"can_write,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SorPermission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sorpermission.FieldCanRead, sorpermission.FieldCanWrite:
			values[i] = new(sql.NullBool)
		case sorpermission.FieldID:
			values[i] = new(sql.NullInt64)
		case sorpermission.FieldTableID, sorpermission.FieldAgentID, sorpermission.FieldTeamID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SorPermission fields.
func (_m *SorPermission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sorpermission.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sorpermission.FieldTableID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field table_id", values[i])
			} else if value.Valid {
				_m.TableID = value.String
			}
		case sorpermission.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case sorpermission.FieldTeamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field team_id", values[i])
			} else if value.Valid {
				_m.TeamID = value.String
			}
		case sorpermission.FieldCanRead:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field can_read", values[i])
			} else if value.Valid {
				_m.CanRead = value.Bool
			}
		case sorpermission.FieldCanWrite:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field can_write", values[i])
			} else if value.Valid {
				_m.CanWrite = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SorPermission.
// This includes values selected through modifiers, order, etc.
func (_m *SorPermission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SorPermission.
// Note that you need to call SorPermission.Unwrap() before calling this method if this SorPermission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SorPermission) Update() *SorPermissionUpdateOne {
	return NewSorPermissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SorPermission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SorPermission) Unwrap() *SorPermission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SorPermission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SorPermission) String() string {
	var builder strings.Builder
	builder.WriteString("SorPermission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("table_id=")
	builder.WriteString(_m.TableID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("team_id=")
	builder.WriteString(_m.TeamID)
	builder.WriteString(", ")
	builder.WriteString("can_read=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanRead))
	builder.WriteString(", ")
	builder.WriteString("can_write=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanWrite))
	builder.WriteByte(')')
	return builder.String()
}

// SorPermissions is a parsable slice of SorPermission.
type SorPermissions []*SorPermission
