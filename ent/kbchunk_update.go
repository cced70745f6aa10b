// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewd/ent/kbchunk"
	"github.com/crewforge/crewd/ent/predicate"
)

// KBChunkUpdate is the builder for updating KBChunk entities.
type KBChunkUpdate struct {
	config
	hooks    []Hook
	mutation *KBChunkMutation
}

// Where appends a list predicates to the KBChunkUpdate builder.
func (_u *KBChunkUpdate) Where(ps ...predicate.KBChunk) *KBChunkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSeq sets the "seq" field.
func (_u *KBChunkUpdate) SetSeq(v int) *KBChunkUpdate {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *KBChunkUpdate) SetNillableSeq(v *int) *KBChunkUpdate {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *KBChunkUpdate) AddSeq(v int) *KBChunkUpdate {
	_u.mutation.AddSeq(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *KBChunkUpdate) SetContent(v string) *KBChunkUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *KBChunkUpdate) SetNillableContent(v *string) *KBChunkUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *KBChunkUpdate) SetTokenCount(v int) *KBChunkUpdate {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *KBChunkUpdate) SetNillableTokenCount(v *int) *KBChunkUpdate {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *KBChunkUpdate) AddTokenCount(v int) *KBChunkUpdate {
	_u.mutation.AddTokenCount(v)
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *KBChunkUpdate) SetEmbedding(v []float32) *KBChunkUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *KBChunkUpdate) AppendEmbedding(v []float32) *KBChunkUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *KBChunkUpdate) ClearEmbedding() *KBChunkUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// Mutation returns the KBChunkMutation object of the builder.
func (_u *KBChunkUpdate) Mutation() *KBChunkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KBChunkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KBChunkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KBChunkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KBChunkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *KBChunkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(kbchunk.Table, kbchunk.Columns, sqlgraph.NewFieldSpec(kbchunk.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(kbchunk.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(kbchunk.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(kbchunk.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(kbchunk.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(kbchunk.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(kbchunk.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, kbchunk.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(kbchunk.FieldEmbedding, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{kbchunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KBChunkUpdateOne is the builder for updating a single KBChunk entity.
type KBChunkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KBChunkMutation
}

// SetSeq sets the "seq" field.
func (_u *KBChunkUpdateOne) SetSeq(v int) *KBChunkUpdateOne {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *KBChunkUpdateOne) SetNillableSeq(v *int) *KBChunkUpdateOne {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *KBChunkUpdateOne) AddSeq(v int) *KBChunkUpdateOne {
	_u.mutation.AddSeq(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *KBChunkUpdateOne) SetContent(v string) *KBChunkUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *KBChunkUpdateOne) SetNillableContent(v *string) *KBChunkUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *KBChunkUpdateOne) SetTokenCount(v int) *KBChunkUpdateOne {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *KBChunkUpdateOne) SetNillableTokenCount(v *int) *KBChunkUpdateOne {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *KBChunkUpdateOne) AddTokenCount(v int) *KBChunkUpdateOne {
	_u.mutation.AddTokenCount(v)
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *KBChunkUpdateOne) SetEmbedding(v []float32) *KBChunkUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *KBChunkUpdateOne) AppendEmbedding(v []float32) *KBChunkUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *KBChunkUpdateOne) ClearEmbedding() *KBChunkUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// Mutation returns the KBChunkMutation object of the builder.
func (_u *KBChunkUpdateOne) Mutation() *KBChunkMutation {
	return _u.mutation
}

// Where appends a list predicates to the KBChunkUpdate builder.
func (_u *KBChunkUpdateOne) Where(ps ...predicate.KBChunk) *KBChunkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KBChunkUpdateOne) Select(field string, fields ...string) *KBChunkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KBChunk entity.
func (_u *KBChunkUpdateOne) Save(ctx context.Context) (*KBChunk, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KBChunkUpdateOne) SaveX(ctx context.Context) *KBChunk {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KBChunkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KBChunkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *KBChunkUpdateOne) sqlSave(ctx context.Context) (_node *KBChunk, err error) {
	_spec := sqlgraph.NewUpdateSpec(kbchunk.Table, kbchunk.Columns, sqlgraph.NewFieldSpec(kbchunk.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KBChunk.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, kbchunk.FieldID)
		for _, f := range fields {
			if !kbchunk.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != kbchunk.FieldID {
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
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(kbchunk.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(kbchunk.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(kbchunk.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(kbchunk.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(kbchunk.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(kbchunk.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, kbchunk.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(kbchunk.FieldEmbedding, field.TypeJSON)
	}
	_node = &KBChunk{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{kbchunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
