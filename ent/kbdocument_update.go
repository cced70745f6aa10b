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
	"github.com/crewforge/crewd/ent/kbdocument"
	"github.com/crewforge/crewd/ent/predicate"
)

// KBDocumentUpdate is the builder for updating KBDocument entities.
type KBDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *KBDocumentMutation
}

// Where appends a list predicates to the KBDocumentUpdate builder.
func (_u *KBDocumentUpdate) Where(ps ...predicate.KBDocument) *KBDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *KBDocumentUpdate) SetFilename(v string) *KBDocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *KBDocumentUpdate) SetNillableFilename(v *string) *KBDocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *KBDocumentUpdate) SetFormat(v kbdocument.Format) *KBDocumentUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *KBDocumentUpdate) SetNillableFormat(v *kbdocument.Format) *KBDocumentUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *KBDocumentUpdate) SetStatus(v kbdocument.Status) *KBDocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *KBDocumentUpdate) SetNillableStatus(v *kbdocument.Status) *KBDocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSummaryL0 sets the "summary_l0" field.
func (_u *KBDocumentUpdate) SetSummaryL0(v string) *KBDocumentUpdate {
	_u.mutation.SetSummaryL0(v)
	return _u
}

// SetNillableSummaryL0 sets the "summary_l0" field if the given value is not nil.
func (_u *KBDocumentUpdate) SetNillableSummaryL0(v *string) *KBDocumentUpdate {
	if v != nil {
		_u.SetSummaryL0(*v)
	}
	return _u
}

// SetSummaryL1 sets the "summary_l1" field.
func (_u *KBDocumentUpdate) SetSummaryL1(v string) *KBDocumentUpdate {
	_u.mutation.SetSummaryL1(v)
	return _u
}

// SetNillableSummaryL1 sets the "summary_l1" field if the given value is not nil.
func (_u *KBDocumentUpdate) SetNillableSummaryL1(v *string) *KBDocumentUpdate {
	if v != nil {
		_u.SetSummaryL1(*v)
	}
	return _u
}

// SetChunkCount sets the "chunk_count" field.
func (_u *KBDocumentUpdate) SetChunkCount(v int) *KBDocumentUpdate {
	_u.mutation.ResetChunkCount()
	_u.mutation.SetChunkCount(v)
	return _u
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_u *KBDocumentUpdate) SetNillableChunkCount(v *int) *KBDocumentUpdate {
	if v != nil {
		_u.SetChunkCount(*v)
	}
	return _u
}

// AddChunkCount adds value to the "chunk_count" field.
func (_u *KBDocumentUpdate) AddChunkCount(v int) *KBDocumentUpdate {
	_u.mutation.AddChunkCount(v)
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *KBDocumentUpdate) SetSizeBytes(v int64) *KBDocumentUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *KBDocumentUpdate) SetNillableSizeBytes(v *int64) *KBDocumentUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *KBDocumentUpdate) AddSizeBytes(v int64) *KBDocumentUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetError sets the "error" field.
func (_u *KBDocumentUpdate) SetError(v string) *KBDocumentUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *KBDocumentUpdate) SetNillableError(v *string) *KBDocumentUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *KBDocumentUpdate) ClearError() *KBDocumentUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KBDocumentUpdate) SetUpdatedAt(v time.Time) *KBDocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the KBDocumentMutation object of the builder.
func (_u *KBDocumentUpdate) Mutation() *KBDocumentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KBDocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KBDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KBDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KBDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KBDocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := kbdocument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KBDocumentUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := kbdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "KBDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := kbdocument.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "KBDocument.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := kbdocument.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "KBDocument.status": %w`, err)}
		}
	}
	return nil
}

func (_u *KBDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(kbdocument.Table, kbdocument.Columns, sqlgraph.NewFieldSpec(kbdocument.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(kbdocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(kbdocument.FieldFormat, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(kbdocument.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SummaryL0(); ok {
		_spec.SetField(kbdocument.FieldSummaryL0, field.TypeString, value)
	}
	if value, ok := _u.mutation.SummaryL1(); ok {
		_spec.SetField(kbdocument.FieldSummaryL1, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChunkCount(); ok {
		_spec.SetField(kbdocument.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkCount(); ok {
		_spec.AddField(kbdocument.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(kbdocument.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(kbdocument.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(kbdocument.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(kbdocument.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(kbdocument.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{kbdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KBDocumentUpdateOne is the builder for updating a single KBDocument entity.
type KBDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KBDocumentMutation
}

// SetFilename sets the "filename" field.
func (_u *KBDocumentUpdateOne) SetFilename(v string) *KBDocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *KBDocumentUpdateOne) SetNillableFilename(v *string) *KBDocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *KBDocumentUpdateOne) SetFormat(v kbdocument.Format) *KBDocumentUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *KBDocumentUpdateOne) SetNillableFormat(v *kbdocument.Format) *KBDocumentUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *KBDocumentUpdateOne) SetStatus(v kbdocument.Status) *KBDocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *KBDocumentUpdateOne) SetNillableStatus(v *kbdocument.Status) *KBDocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSummaryL0 sets the "summary_l0" field.
func (_u *KBDocumentUpdateOne) SetSummaryL0(v string) *KBDocumentUpdateOne {
	_u.mutation.SetSummaryL0(v)
	return _u
}

// SetNillableSummaryL0 sets the "summary_l0" field if the given value is not nil.
func (_u *KBDocumentUpdateOne) SetNillableSummaryL0(v *string) *KBDocumentUpdateOne {
	if v != nil {
		_u.SetSummaryL0(*v)
	}
	return _u
}

// SetSummaryL1 sets the "summary_l1" field.
func (_u *KBDocumentUpdateOne) SetSummaryL1(v string) *KBDocumentUpdateOne {
	_u.mutation.SetSummaryL1(v)
	return _u
}

// SetNillableSummaryL1 sets the "summary_l1" field if the given value is not nil.
func (_u *KBDocumentUpdateOne) SetNillableSummaryL1(v *string) *KBDocumentUpdateOne {
	if v != nil {
		_u.SetSummaryL1(*v)
	}
	return _u
}

// SetChunkCount sets the "chunk_count" field.
func (_u *KBDocumentUpdateOne) SetChunkCount(v int) *KBDocumentUpdateOne {
	_u.mutation.ResetChunkCount()
	_u.mutation.SetChunkCount(v)
	return _u
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_u *KBDocumentUpdateOne) SetNillableChunkCount(v *int) *KBDocumentUpdateOne {
	if v != nil {
		_u.SetChunkCount(*v)
	}
	return _u
}

// AddChunkCount adds value to the "chunk_count" field.
func (_u *KBDocumentUpdateOne) AddChunkCount(v int) *KBDocumentUpdateOne {
	_u.mutation.AddChunkCount(v)
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *KBDocumentUpdateOne) SetSizeBytes(v int64) *KBDocumentUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *KBDocumentUpdateOne) SetNillableSizeBytes(v *int64) *KBDocumentUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *KBDocumentUpdateOne) AddSizeBytes(v int64) *KBDocumentUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetError sets the "error" field.
func (_u *KBDocumentUpdateOne) SetError(v string) *KBDocumentUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *KBDocumentUpdateOne) SetNillableError(v *string) *KBDocumentUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *KBDocumentUpdateOne) ClearError() *KBDocumentUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KBDocumentUpdateOne) SetUpdatedAt(v time.Time) *KBDocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the KBDocumentMutation object of the builder.
func (_u *KBDocumentUpdateOne) Mutation() *KBDocumentMutation {
	return _u.mutation
}

// Where appends a list predicates to the KBDocumentUpdate builder.
func (_u *KBDocumentUpdateOne) Where(ps ...predicate.KBDocument) *KBDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KBDocumentUpdateOne) Select(field string, fields ...string) *KBDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KBDocument entity.
func (_u *KBDocumentUpdateOne) Save(ctx context.Context) (*KBDocument, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KBDocumentUpdateOne) SaveX(ctx context.Context) *KBDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KBDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KBDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KBDocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := kbdocument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KBDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := kbdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "KBDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := kbdocument.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "KBDocument.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := kbdocument.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "KBDocument.status": %w`, err)}
		}
	}
	return nil
}

func (_u *KBDocumentUpdateOne) sqlSave(ctx context.Context) (_node *KBDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(kbdocument.Table, kbdocument.Columns, sqlgraph.NewFieldSpec(kbdocument.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KBDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, kbdocument.FieldID)
		for _, f := range fields {
			if !kbdocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != kbdocument.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(kbdocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(kbdocument.FieldFormat, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(kbdocument.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SummaryL0(); ok {
		_spec.SetField(kbdocument.FieldSummaryL0, field.TypeString, value)
	}
	if value, ok := _u.mutation.SummaryL1(); ok {
		_spec.SetField(kbdocument.FieldSummaryL1, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChunkCount(); ok {
		_spec.SetField(kbdocument.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkCount(); ok {
		_spec.AddField(kbdocument.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(kbdocument.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(kbdocument.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(kbdocument.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(kbdocument.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(kbdocument.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &KBDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{kbdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
