// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewd/ent/measurablegoal"
)

// MeasurableGoal is the model entity for the MeasurableGoal schema.
type MeasurableGoal struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TeamID holds the value of the "team_id" field.
	TeamID string `json:"team_id,omitempty"`
	// MetricName holds the value of the "metric_name" field.
	MetricName string `json:"metric_name,omitempty"`
	// CurrentValue holds the value of the "current_value" field.
	CurrentValue float64 `json:"current_value,omitempty"`
	// TargetValue holds the value of the "target_value" field.
	TargetValue float64 `json:"target_value,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// Deadline holds the value of the "deadline" field.
	Deadline *time.Time `json:"deadline,omitempty"`
	// Status holds the value of the "status" field.
	Status measurablegoal.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MeasurableGoal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case measurablegoal.FieldCurrentValue, measurablegoal.FieldTargetValue:
			values[i] = new(sql.NullFloat64)
		case measurablegoal.FieldID, measurablegoal.FieldTeamID, measurablegoal.FieldMetricName, measurablegoal.FieldUnit, measurablegoal.FieldStatus:
			values[i] = new(sql.NullString)
		case measurablegoal.FieldDeadline, measurablegoal.FieldCreatedAt, measurablegoal.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MeasurableGoal fields.
func (_m *MeasurableGoal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case measurablegoal.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case measurablegoal.FieldTeamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field team_id", values[i])
			} else if value.Valid {
				_m.TeamID = value.String
			}
		case measurablegoal.FieldMetricName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metric_name", values[i])
			} else if value.Valid {
				_m.MetricName = value.String
			}
		case measurablegoal.FieldCurrentValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field current_value", values[i])
			} else if value.Valid {
				_m.CurrentValue = value.Float64
			}
		case measurablegoal.FieldTargetValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field target_value", values[i])
			} else if value.Valid {
				_m.TargetValue = value.Float64
			}
		case measurablegoal.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case measurablegoal.FieldDeadline:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deadline", values[i])
			} else if value.Valid {
				_m.Deadline = new(time.Time)
				*_m.Deadline = value.Time
			}
		case measurablegoal.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = measurablegoal.Status(value.String)
			}
		case measurablegoal.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case measurablegoal.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MeasurableGoal.
// This includes values selected through modifiers, order, etc.
func (_m *MeasurableGoal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MeasurableGoal.
// Note that you need to call MeasurableGoal.Unwrap() before calling this method if this MeasurableGoal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MeasurableGoal) Update() *MeasurableGoalUpdateOne {
	return NewMeasurableGoalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MeasurableGoal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MeasurableGoal) Unwrap() *MeasurableGoal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MeasurableGoal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MeasurableGoal) String() string {
	var builder strings.Builder
	builder.WriteString("MeasurableGoal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("team_id=")
	builder.WriteString(_m.TeamID)
	builder.WriteString(", ")
	builder.WriteString("metric_name=")
	builder.WriteString(_m.MetricName)
	builder.WriteString(", ")
	builder.WriteString("current_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentValue))
	builder.WriteString(", ")
	builder.WriteString("target_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetValue))
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteString(", ")
	if v := _m.Deadline; v != nil {
		builder.WriteString("deadline=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MeasurableGoals is a parsable slice of MeasurableGoal.
type MeasurableGoals []*MeasurableGoal
