// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/kbdocument"
)

// KBDocumentCreate is the builder for creating a KBDocument entity.
type KBDocumentCreate struct {
	config
	mutation *KBDocumentMutation
	hooks    []Hook
}

// SetTeamID sets the "team_id" field.
func (_c *KBDocumentCreate) SetTeamID(v string) *KBDocumentCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *KBDocumentCreate) SetFilename(v string) *KBDocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *KBDocumentCreate) SetFormat(v kbdocument.Format) *KBDocumentCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *KBDocumentCreate) SetStatus(v kbdocument.Status) *KBDocumentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *KBDocumentCreate) SetNillableStatus(v *kbdocument.Status) *KBDocumentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSummaryL0 sets the "summary_l0" field.
func (_c *KBDocumentCreate) SetSummaryL0(v string) *KBDocumentCreate {
	_c.mutation.SetSummaryL0(v)
	return _c
}

// SetNillableSummaryL0 sets the "summary_l0" field if the given value is not nil.
func (_c *KBDocumentCreate) SetNillableSummaryL0(v *string) *KBDocumentCreate {
	if v != nil {
		_c.SetSummaryL0(*v)
	}
	return _c
}

// SetSummaryL1 sets the "summary_l1" field.
func (_c *KBDocumentCreate) SetSummaryL1(v string) *KBDocumentCreate {
	_c.mutation.SetSummaryL1(v)
	return _c
}

// SetNillableSummaryL1 sets the "summary_l1" field if the given value is not nil.
func (_c *KBDocumentCreate) SetNillableSummaryL1(v *string) *KBDocumentCreate {
	if v != nil {
		_c.SetSummaryL1(*v)
	}
	return _c
}

// SetChunkCount sets the "chunk_count" field.
func (_c *KBDocumentCreate) SetChunkCount(v int) *KBDocumentCreate {
	_c.mutation.SetChunkCount(v)
	return _c
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_c *KBDocumentCreate) SetNillableChunkCount(v *int) *KBDocumentCreate {
	if v != nil {
		_c.SetChunkCount(*v)
	}
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *KBDocumentCreate) SetSizeBytes(v int64) *KBDocumentCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_c *KBDocumentCreate) SetNillableSizeBytes(v *int64) *KBDocumentCreate {
	if v != nil {
		_c.SetSizeBytes(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *KBDocumentCreate) SetError(v string) *KBDocumentCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *KBDocumentCreate) SetNillableError(v *string) *KBDocumentCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *KBDocumentCreate) SetCreatedAt(v time.Time) *KBDocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *KBDocumentCreate) SetNillableCreatedAt(v *time.Time) *KBDocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *KBDocumentCreate) SetUpdatedAt(v time.Time) *KBDocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *KBDocumentCreate) SetNillableUpdatedAt(v *time.Time) *KBDocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *KBDocumentCreate) SetID(v string) *KBDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the KBDocumentMutation object of the builder.
func (_c *KBDocumentCreate) Mutation() *KBDocumentMutation {
	return _c.mutation
}

// Save creates the KBDocument in the database.
func (_c *KBDocumentCreate) Save(ctx context.Context) (*KBDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KBDocumentCreate) SaveX(ctx context.Context) *KBDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KBDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KBDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KBDocumentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := kbdocument.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SummaryL0(); !ok {
		v := kbdocument.DefaultSummaryL0
		_c.mutation.SetSummaryL0(v)
	}
	if _, ok := _c.mutation.SummaryL1(); !ok {
		v := kbdocument.DefaultSummaryL1
		_c.mutation.SetSummaryL1(v)
	}
	if _, ok := _c.mutation.ChunkCount(); !ok {
		v := kbdocument.DefaultChunkCount
		_c.mutation.SetChunkCount(v)
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		v := kbdocument.DefaultSizeBytes
		_c.mutation.SetSizeBytes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := kbdocument.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := kbdocument.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KBDocumentCreate) check() error {
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "KBDocument.team_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "KBDocument.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := kbdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "KBDocument.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "KBDocument.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := kbdocument.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "KBDocument.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "KBDocument.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := kbdocument.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "KBDocument.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SummaryL0(); !ok {
		return &ValidationError{Name: "summary_l0", err: errors.New(`ent: missing required field "KBDocument.summary_l0"`)}
	}
	if _, ok := _c.mutation.SummaryL1(); !ok {
		return &ValidationError{Name: "summary_l1", err: errors.New(`ent: missing required field "KBDocument.summary_l1"`)}
	}
	if _, ok := _c.mutation.ChunkCount(); !ok {
		return &ValidationError{Name: "chunk_count", err: errors.New(`ent: missing required field "KBDocument.chunk_count"`)}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "KBDocument.size_bytes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "KBDocument.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "KBDocument.updated_at"`)}
	}
	return nil
}

func (_c *KBDocumentCreate) sqlSave(ctx context.Context) (*KBDocument, error) {
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
			return nil, fmt.Errorf("unexpected KBDocument.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *KBDocumentCreate) createSpec() (*KBDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &KBDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(kbdocument.Table, sqlgraph.NewFieldSpec(kbdocument.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(kbdocument.FieldTeamID, field.TypeString, value)
		_node.TeamID = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(kbdocument.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(kbdocument.FieldFormat, field.TypeEnum, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(kbdocument.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SummaryL0(); ok {
		_spec.SetField(kbdocument.FieldSummaryL0, field.TypeString, value)
		_node.SummaryL0 = value
	}
	if value, ok := _c.mutation.SummaryL1(); ok {
		_spec.SetField(kbdocument.FieldSummaryL1, field.TypeString, value)
		_node.SummaryL1 = value
	}
	if value, ok := _c.mutation.ChunkCount(); ok {
		_spec.SetField(kbdocument.FieldChunkCount, field.TypeInt, value)
		_node.ChunkCount = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(kbdocument.FieldSizeBytes, field.TypeInt64, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(kbdocument.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(kbdocument.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(kbdocument.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// KBDocumentCreateBulk is the builder for creating many KBDocument entities in bulk.
type KBDocumentCreateBulk struct {
	config
	err      error
	builders []*KBDocumentCreate
}

// Save creates the KBDocument entities in the database.
func (_c *KBDocumentCreateBulk) Save(ctx context.Context) ([]*KBDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KBDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KBDocumentMutation)
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
func (_c *KBDocumentCreateBulk) SaveX(ctx context.Context) []*KBDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KBDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KBDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
