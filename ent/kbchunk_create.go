// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/kbchunk"
)

// KBChunkCreate is the builder for creating a KBChunk entity.
type KBChunkCreate struct {
	config
	mutation *KBChunkMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *KBChunkCreate) SetDocumentID(v string) *KBChunkCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetTeamID sets the "team_id" field.
func (_c *KBChunkCreate) SetTeamID(v string) *KBChunkCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *KBChunkCreate) SetSeq(v int) *KBChunkCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *KBChunkCreate) SetContent(v string) *KBChunkCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetTokenCount sets the "token_count" field.
func (_c *KBChunkCreate) SetTokenCount(v int) *KBChunkCreate {
	_c.mutation.SetTokenCount(v)
	return _c
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_c *KBChunkCreate) SetNillableTokenCount(v *int) *KBChunkCreate {
	if v != nil {
		_c.SetTokenCount(*v)
	}
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *KBChunkCreate) SetEmbedding(v []float32) *KBChunkCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// Mutation returns the KBChunkMutation object of the builder.
func (_c *KBChunkCreate) Mutation() *KBChunkMutation {
	return _c.mutation
}

// Save creates the KBChunk in the database.
func (_c *KBChunkCreate) Save(ctx context.Context) (*KBChunk, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KBChunkCreate) SaveX(ctx context.Context) *KBChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KBChunkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KBChunkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KBChunkCreate) defaults() {
	if _, ok := _c.mutation.TokenCount(); !ok {
		v := kbchunk.DefaultTokenCount
		_c.mutation.SetTokenCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KBChunkCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "KBChunk.document_id"`)}
	}
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "KBChunk.team_id"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "KBChunk.seq"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "KBChunk.content"`)}
	}
	if _, ok := _c.mutation.TokenCount(); !ok {
		return &ValidationError{Name: "token_count", err: errors.New(`ent: missing required field "KBChunk.token_count"`)}
	}
	return nil
}

func (_c *KBChunkCreate) sqlSave(ctx context.Context) (*KBChunk, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *KBChunkCreate) createSpec() (*KBChunk, *sqlgraph.CreateSpec) {
	var (
		_node = &KBChunk{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(kbchunk.Table, sqlgraph.NewFieldSpec(kbchunk.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(kbchunk.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(kbchunk.FieldTeamID, field.TypeString, value)
		_node.TeamID = value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(kbchunk.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(kbchunk.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.TokenCount(); ok {
		_spec.SetField(kbchunk.FieldTokenCount, field.TypeInt, value)
		_node.TokenCount = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(kbchunk.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	return _node, _spec
}

// KBChunkCreateBulk is the builder for creating many KBChunk entities in bulk.
type KBChunkCreateBulk struct {
	config
	err      error
	builders []*KBChunkCreate
}

// Save creates the KBChunk entities in the database.
func (_c *KBChunkCreateBulk) Save(ctx context.Context) ([]*KBChunk, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KBChunk, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KBChunkMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *KBChunkCreateBulk) SaveX(ctx context.Context) []*KBChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KBChunkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KBChunkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
