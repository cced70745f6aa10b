// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/approval"
)

// ApprovalCreate is the builder for creating a Approval entity.
type ApprovalCreate struct {
	config
	mutation *ApprovalMutation
	hooks    []Hook
}

// SetTeamID sets the "team_id" field.
func (_c *ApprovalCreate) SetTeamID(v string) *ApprovalCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *ApprovalCreate) SetAgentID(v string) *ApprovalCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetActionType sets the "action_type" field.
func (_c *ApprovalCreate) SetActionType(v string) *ApprovalCreate {
	_c.mutation.SetActionType(v)
	return _c
}

// SetActionDetail sets the "action_detail" field.
func (_c *ApprovalCreate) SetActionDetail(v string) *ApprovalCreate {
	_c.mutation.SetActionDetail(v)
	return _c
}

// SetNillableActionDetail sets the "action_detail" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableActionDetail(v *string) *ApprovalCreate {
	if v != nil {
		_c.SetActionDetail(*v)
	}
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *ApprovalCreate) SetRiskLevel(v approval.RiskLevel) *ApprovalCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableRiskLevel(v *approval.RiskLevel) *ApprovalCreate {
	if v != nil {
		_c.SetRiskLevel(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApprovalCreate) SetStatus(v approval.Status) *ApprovalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableStatus(v *approval.Status) *ApprovalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalCreate) SetCreatedAt(v time.Time) *ApprovalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableCreatedAt(v *time.Time) *ApprovalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *ApprovalCreate) SetResolvedAt(v time.Time) *ApprovalCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableResolvedAt(v *time.Time) *ApprovalCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetResolvedBy sets the "resolved_by" field.
func (_c *ApprovalCreate) SetResolvedBy(v string) *ApprovalCreate {
	_c.mutation.SetResolvedBy(v)
	return _c
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableResolvedBy(v *string) *ApprovalCreate {
	if v != nil {
		_c.SetResolvedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalCreate) SetID(v string) *ApprovalCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApprovalMutation object of the builder.
func (_c *ApprovalCreate) Mutation() *ApprovalMutation {
	return _c.mutation
}

// Save creates the Approval in the database.
func (_c *ApprovalCreate) Save(ctx context.Context) (*Approval, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalCreate) SaveX(ctx context.Context) *Approval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalCreate) defaults() {
	if _, ok := _c.mutation.ActionDetail(); !ok {
		v := approval.DefaultActionDetail
		_c.mutation.SetActionDetail(v)
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		v := approval.DefaultRiskLevel
		_c.mutation.SetRiskLevel(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := approval.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approval.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalCreate) check() error {
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "Approval.team_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Approval.agent_id"`)}
	}
	if _, ok := _c.mutation.ActionType(); !ok {
		return &ValidationError{Name: "action_type", err: errors.New(`ent: missing required field "Approval.action_type"`)}
	}
	if _, ok := _c.mutation.ActionDetail(); !ok {
		return &ValidationError{Name: "action_detail", err: errors.New(`ent: missing required field "Approval.action_detail"`)}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "Approval.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := approval.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "Approval.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Approval.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := approval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Approval.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Approval.created_at"`)}
	}
	return nil
}

func (_c *ApprovalCreate) sqlSave(ctx context.Context) (*Approval, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Approval.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalCreate) createSpec() (*Approval, *sqlgraph.CreateSpec) {
	var (
		_node = &Approval{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approval.Table, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(approval.FieldTeamID, field.TypeString, value)
		_node.TeamID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(approval.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.ActionType(); ok {
		_spec.SetField(approval.FieldActionType, field.TypeString, value)
		_node.ActionType = value
	}
	if value, ok := _c.mutation.ActionDetail(); ok {
		_spec.SetField(approval.FieldActionDetail, field.TypeString, value)
		_node.ActionDetail = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(approval.FieldRiskLevel, field.TypeEnum, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(approval.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approval.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(approval.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.ResolvedBy(); ok {
		_spec.SetField(approval.FieldResolvedBy, field.TypeString, value)
		_node.ResolvedBy = &value
	}
	return _node, _spec
}

// ApprovalCreateBulk is the builder for creating many Approval entities in bulk.
type ApprovalCreateBulk struct {
	config
	err      error
	builders []*ApprovalCreate
}

// Save creates the Approval entities in the database.
func (_c *ApprovalCreateBulk) Save(ctx context.Context) ([]*Approval, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Approval, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ApprovalCreateBulk) SaveX(ctx context.Context) []*Approval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
