// Code generated by ent, DO NOT EDIT.

package measurablegoal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldContainsFold(FieldID, id))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEQ(FieldTeamID, v))
}

// MetricName applies equality check predicate on the "metric_name" field. It's identical to MetricNameEQ.
func MetricName(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEQ(FieldMetricName, v))
}

// CurrentValue applies equality check predicate on the "current_value" field. It's identical to CurrentValueEQ.
func CurrentValue(v float64) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEQ(FieldCurrentValue, v))
}

// TargetValue applies equality check predicate on the "target_value" field. It's identical to TargetValueEQ.
func TargetValue(v float64) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEQ(FieldTargetValue, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEQ(FieldUnit, v))
}

// Deadline applies equality check predicate on the "deadline" field. It's identical to DeadlineEQ.
func Deadline(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEQ(FieldDeadline, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEQ(FieldUpdatedAt, v))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNotIn(FieldTeamID, vs...))
}

// TeamIDGT applies the GT predicate on the "team_id" field.
func TeamIDGT(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldGT(FieldTeamID, v))
}

// TeamIDGTE applies the GTE predicate on the "team_id" field.
func TeamIDGTE(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldGTE(FieldTeamID, v))
}

// TeamIDLT applies the LT predicate on the "team_id" field.
func TeamIDLT(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldLT(FieldTeamID, v))
}

// TeamIDLTE applies the LTE predicate on the "team_id" field.
func TeamIDLTE(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldLTE(FieldTeamID, v))
}

// TeamIDContains applies the Contains predicate on the "team_id" field.
func TeamIDContains(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldContains(FieldTeamID, v))
}

// TeamIDHasPrefix applies the HasPrefix predicate on the "team_id" field.
func TeamIDHasPrefix(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldHasPrefix(FieldTeamID, v))
}

// TeamIDHasSuffix applies the HasSuffix predicate on the "team_id" field.
func TeamIDHasSuffix(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldHasSuffix(FieldTeamID, v))
}

// TeamIDEqualFold applies the EqualFold predicate on the "team_id" field.
func TeamIDEqualFold(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEqualFold(FieldTeamID, v))
}

// TeamIDContainsFold applies the ContainsFold predicate on the "team_id" field.
func TeamIDContainsFold(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldContainsFold(FieldTeamID, v))
}

// MetricNameEQ applies the EQ predicate on the "metric_name" field.
func MetricNameEQ(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEQ(FieldMetricName, v))
}

// MetricNameNEQ applies the NEQ predicate on the "metric_name" field.
func MetricNameNEQ(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNEQ(FieldMetricName, v))
}

// MetricNameIn applies the In predicate on the "metric_name" field.
func MetricNameIn(vs ...string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldIn(FieldMetricName, vs...))
}

// MetricNameNotIn applies the NotIn predicate on the "metric_name" field.
func MetricNameNotIn(vs ...string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNotIn(FieldMetricName, vs...))
}

// MetricNameGT applies the GT predicate on the "metric_name" field.
func MetricNameGT(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldGT(FieldMetricName, v))
}

// MetricNameGTE applies the GTE predicate on the "metric_name" field.
func MetricNameGTE(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldGTE(FieldMetricName, v))
}

// MetricNameLT applies the LT predicate on the "metric_name" field.
func MetricNameLT(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldLT(FieldMetricName, v))
}

// MetricNameLTE applies the LTE predicate on the "metric_name" field.
func MetricNameLTE(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldLTE(FieldMetricName, v))
}

// MetricNameContains applies the Contains predicate on the "metric_name" field.
func MetricNameContains(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldContains(FieldMetricName, v))
}

// MetricNameHasPrefix applies the HasPrefix predicate on the "metric_name" field.
func MetricNameHasPrefix(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldHasPrefix(FieldMetricName, v))
}

// MetricNameHasSuffix applies the HasSuffix predicate on the "metric_name" field.
func MetricNameHasSuffix(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldHasSuffix(FieldMetricName, v))
}

// MetricNameEqualFold applies the EqualFold predicate on the "metric_name" field.
func MetricNameEqualFold(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEqualFold(FieldMetricName, v))
}

// MetricNameContainsFold applies the ContainsFold predicate on the "metric_name" field.
func MetricNameContainsFold(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldContainsFold(FieldMetricName, v))
}

// CurrentValueEQ applies the EQ predicate on the "current_value" field.
func CurrentValueEQ(v float64) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEQ(FieldCurrentValue, v))
}

// CurrentValueNEQ applies the NEQ predicate on the "current_value" field.
func CurrentValueNEQ(v float64) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNEQ(FieldCurrentValue, v))
}

// CurrentValueIn applies the In predicate on the "current_value" field.
func CurrentValueIn(vs ...float64) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldIn(FieldCurrentValue, vs...))
}

// CurrentValueNotIn applies the NotIn predicate on the "current_value" field.
func CurrentValueNotIn(vs ...float64) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNotIn(FieldCurrentValue, vs...))
}

// CurrentValueGT applies the GT predicate on the "current_value" field.
func CurrentValueGT(v float64) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldGT(FieldCurrentValue, v))
}

// CurrentValueGTE applies the GTE predicate on the "current_value" field.
func CurrentValueGTE(v float64) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldGTE(FieldCurrentValue, v))
}

// CurrentValueLT applies the LT predicate on the "current_value" field.
func CurrentValueLT(v float64) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldLT(FieldCurrentValue, v))
}

// CurrentValueLTE applies the LTE predicate on the "current_value" field.
func CurrentValueLTE(v float64) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldLTE(FieldCurrentValue, v))
}

// TargetValueEQ applies the EQ predicate on the "target_value" field.
func TargetValueEQ(v float64) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEQ(FieldTargetValue, v))
}

// TargetValueNEQ applies the NEQ predicate on the "target_value" field.
func TargetValueNEQ(v float64) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNEQ(FieldTargetValue, v))
}

// TargetValueIn applies the In predicate on the "target_value" field.
func TargetValueIn(vs ...float64) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldIn(FieldTargetValue, vs...))
}

// TargetValueNotIn applies the NotIn predicate on the "target_value" field.
func TargetValueNotIn(vs ...float64) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNotIn(FieldTargetValue, vs...))
}

// TargetValueGT applies the GT predicate on the "target_value" field.
func TargetValueGT(v float64) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldGT(FieldTargetValue, v))
}

// TargetValueGTE applies the GTE predicate on the "target_value" field.
func TargetValueGTE(v float64) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldGTE(FieldTargetValue, v))
}

// TargetValueLT applies the LT predicate on the "target_value" field.
func TargetValueLT(v float64) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldLT(FieldTargetValue, v))
}

// TargetValueLTE applies the LTE predicate on the "target_value" field.
func TargetValueLTE(v float64) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldLTE(FieldTargetValue, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldContainsFold(FieldUnit, v))
}

// DeadlineEQ applies the EQ predicate on the "deadline" field.
func DeadlineEQ(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEQ(FieldDeadline, v))
}

// DeadlineNEQ applies the NEQ predicate on the "deadline" field.
func DeadlineNEQ(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNEQ(FieldDeadline, v))
}

// DeadlineIn applies the In predicate on the "deadline" field.
func DeadlineIn(vs ...time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldIn(FieldDeadline, vs...))
}

// DeadlineNotIn applies the NotIn predicate on the "deadline" field.
func DeadlineNotIn(vs ...time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNotIn(FieldDeadline, vs...))
}

// DeadlineGT applies the GT predicate on the "deadline" field.
func DeadlineGT(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldGT(FieldDeadline, v))
}

// DeadlineGTE applies the GTE predicate on the "deadline" field.
func DeadlineGTE(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldGTE(FieldDeadline, v))
}

// DeadlineLT applies the LT predicate on the "deadline" field.
func DeadlineLT(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldLT(FieldDeadline, v))
}

// DeadlineLTE applies the LTE predicate on the "deadline" field.
func DeadlineLTE(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldLTE(FieldDeadline, v))
}

// DeadlineIsNil applies the IsNil predicate on the "deadline" field.
func DeadlineIsNil() predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldIsNull(FieldDeadline))
}

// DeadlineNotNil applies the NotNil predicate on the "deadline" field.
func DeadlineNotNil() predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNotNull(FieldDeadline))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MeasurableGoal) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MeasurableGoal) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MeasurableGoal) predicate.MeasurableGoal {
	return predicate.MeasurableGoal(sql.NotPredicates(p))
}
