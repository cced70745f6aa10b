// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/approval"
	"github.com/crewforge/crewd/ent/predicate"
)

// ApprovalUpdate is the builder for updating Approval entities.
type ApprovalUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalMutation
}

// Where appends a list predicates to the ApprovalUpdate builder.
func (_u *ApprovalUpdate) Where(ps ...predicate.Approval) *ApprovalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *ApprovalUpdate) SetActionType(v string) *ApprovalUpdate {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableActionType(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetActionDetail sets the "action_detail" field.
func (_u *ApprovalUpdate) SetActionDetail(v string) *ApprovalUpdate {
	_u.mutation.SetActionDetail(v)
	return _u
}

// SetNillableActionDetail sets the "action_detail" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableActionDetail(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetActionDetail(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *ApprovalUpdate) SetRiskLevel(v approval.RiskLevel) *ApprovalUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableRiskLevel(v *approval.RiskLevel) *ApprovalUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalUpdate) SetStatus(v approval.Status) *ApprovalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableStatus(v *approval.Status) *ApprovalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ApprovalUpdate) SetResolvedAt(v time.Time) *ApprovalUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableResolvedAt(v *time.Time) *ApprovalUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ApprovalUpdate) ClearResolvedAt() *ApprovalUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *ApprovalUpdate) SetResolvedBy(v string) *ApprovalUpdate {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableResolvedBy(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *ApprovalUpdate) ClearResolvedBy() *ApprovalUpdate {
	_u.mutation.ClearResolvedBy()
	return _u
}

// Mutation returns the ApprovalMutation object of the builder.
func (_u *ApprovalUpdate) Mutation() *ApprovalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalUpdate) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := approval.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "Approval.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := approval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Approval.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approval.Table, approval.Columns, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(approval.FieldActionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionDetail(); ok {
		_spec.SetField(approval.FieldActionDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(approval.FieldRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(approval.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(approval.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(approval.FieldResolvedBy, field.TypeString, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(approval.FieldResolvedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalUpdateOne is the builder for updating a single Approval entity.
type ApprovalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalMutation
}

// SetActionType sets the "action_type" field.
func (_u *ApprovalUpdateOne) SetActionType(v string) *ApprovalUpdateOne {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableActionType(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetActionDetail sets the "action_detail" field.
func (_u *ApprovalUpdateOne) SetActionDetail(v string) *ApprovalUpdateOne {
	_u.mutation.SetActionDetail(v)
	return _u
}

// SetNillableActionDetail sets the "action_detail" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableActionDetail(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetActionDetail(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *ApprovalUpdateOne) SetRiskLevel(v approval.RiskLevel) *ApprovalUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableRiskLevel(v *approval.RiskLevel) *ApprovalUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalUpdateOne) SetStatus(v approval.Status) *ApprovalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableStatus(v *approval.Status) *ApprovalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ApprovalUpdateOne) SetResolvedAt(v time.Time) *ApprovalUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableResolvedAt(v *time.Time) *ApprovalUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ApprovalUpdateOne) ClearResolvedAt() *ApprovalUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *ApprovalUpdateOne) SetResolvedBy(v string) *ApprovalUpdateOne {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableResolvedBy(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *ApprovalUpdateOne) ClearResolvedBy() *ApprovalUpdateOne {
	_u.mutation.ClearResolvedBy()
	return _u
}

// Mutation returns the ApprovalMutation object of the builder.
func (_u *ApprovalUpdateOne) Mutation() *ApprovalMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalUpdate builder.
func (_u *ApprovalUpdateOne) Where(ps ...predicate.Approval) *ApprovalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalUpdateOne) Select(field string, fields ...string) *ApprovalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Approval entity.
func (_u *ApprovalUpdateOne) Save(ctx context.Context) (*Approval, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalUpdateOne) SaveX(ctx context.Context) *Approval {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalUpdateOne) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := approval.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "Approval.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := approval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Approval.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalUpdateOne) sqlSave(ctx context.Context) (_node *Approval, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approval.Table, approval.Columns, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Approval.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approval.FieldID)
		for _, f := range fields {
			if !approval.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approval.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(approval.FieldActionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionDetail(); ok {
		_spec.SetField(approval.FieldActionDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(approval.FieldRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(approval.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(approval.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(approval.FieldResolvedBy, field.TypeString, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(approval.FieldResolvedBy, field.TypeString)
	}
	_node = &Approval{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
