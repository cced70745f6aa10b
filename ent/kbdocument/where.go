// Code generated by ent, DO NOT EDIT.

package kbdocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldContainsFold(FieldID, id))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldTeamID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldFilename, v))
}

// SummaryL0 applies equality check predicate on the "summary_l0" field. It's identical to SummaryL0EQ.
func SummaryL0(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldSummaryL0, v))
}

// SummaryL1 applies equality check predicate on the "summary_l1" field. It's identical to SummaryL1EQ.
func SummaryL1(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldSummaryL1, v))
}

// ChunkCount applies equality check predicate on the "chunk_count" field. It's identical to ChunkCountEQ.
func ChunkCount(v int) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldChunkCount, v))
}

// SizeBytes applies equality check predicate on the "size_bytes" field. It's identical to SizeBytesEQ.
func SizeBytes(v int64) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldSizeBytes, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldUpdatedAt, v))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNotIn(FieldTeamID, vs...))
}

// TeamIDGT applies the GT predicate on the "team_id" field.
func TeamIDGT(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGT(FieldTeamID, v))
}

// TeamIDGTE applies the GTE predicate on the "team_id" field.
func TeamIDGTE(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGTE(FieldTeamID, v))
}

// TeamIDLT applies the LT predicate on the "team_id" field.
func TeamIDLT(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLT(FieldTeamID, v))
}

// TeamIDLTE applies the LTE predicate on the "team_id" field.
func TeamIDLTE(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLTE(FieldTeamID, v))
}

// TeamIDContains applies the Contains predicate on the "team_id" field.
func TeamIDContains(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldContains(FieldTeamID, v))
}

// TeamIDHasPrefix applies the HasPrefix predicate on the "team_id" field.
func TeamIDHasPrefix(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldHasPrefix(FieldTeamID, v))
}

// TeamIDHasSuffix applies the HasSuffix predicate on the "team_id" field.
func TeamIDHasSuffix(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldHasSuffix(FieldTeamID, v))
}

// TeamIDEqualFold applies the EqualFold predicate on the "team_id" field.
func TeamIDEqualFold(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEqualFold(FieldTeamID, v))
}

// TeamIDContainsFold applies the ContainsFold predicate on the "team_id" field.
func TeamIDContainsFold(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldContainsFold(FieldTeamID, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldContainsFold(FieldFilename, v))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v Format) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v Format) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...Format) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...Format) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNotIn(FieldFormat, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNotIn(FieldStatus, vs...))
}

// SummaryL0EQ applies the EQ predicate on the "summary_l0" field.
func SummaryL0EQ(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldSummaryL0, v))
}

// SummaryL0NEQ applies the NEQ predicate on the "summary_l0" field.
func SummaryL0NEQ(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNEQ(FieldSummaryL0, v))
}

// SummaryL0In applies the In predicate on the "summary_l0" field.
func SummaryL0In(vs ...string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldIn(FieldSummaryL0, vs...))
}

// SummaryL0NotIn applies the NotIn predicate on the "summary_l0" field.
func SummaryL0NotIn(vs ...string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNotIn(FieldSummaryL0, vs...))
}

// SummaryL0GT applies the GT predicate on the "summary_l0" field.
func SummaryL0GT(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGT(FieldSummaryL0, v))
}

// SummaryL0GTE applies the GTE predicate on the "summary_l0" field.
func SummaryL0GTE(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGTE(FieldSummaryL0, v))
}

// SummaryL0LT applies the LT predicate on the "summary_l0" field.
func SummaryL0LT(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLT(FieldSummaryL0, v))
}

// SummaryL0LTE applies the LTE predicate on the "summary_l0" field.
func SummaryL0LTE(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLTE(FieldSummaryL0, v))
}

// SummaryL0Contains applies the Contains predicate on the "summary_l0" field.
func SummaryL0Contains(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldContains(FieldSummaryL0, v))
}

// SummaryL0HasPrefix applies the HasPrefix predicate on the "summary_l0" field.
func SummaryL0HasPrefix(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldHasPrefix(FieldSummaryL0, v))
}

// SummaryL0HasSuffix applies the HasSuffix predicate on the "summary_l0" field.
func SummaryL0HasSuffix(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldHasSuffix(FieldSummaryL0, v))
}

// SummaryL0EqualFold applies the EqualFold predicate on the "summary_l0" field.
func SummaryL0EqualFold(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEqualFold(FieldSummaryL0, v))
}

// SummaryL0ContainsFold applies the ContainsFold predicate on the "summary_l0" field.
func SummaryL0ContainsFold(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldContainsFold(FieldSummaryL0, v))
}

// SummaryL1EQ applies the EQ predicate on the "summary_l1" field.
func SummaryL1EQ(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldSummaryL1, v))
}

// SummaryL1NEQ applies the NEQ predicate on the "summary_l1" field.
func SummaryL1NEQ(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNEQ(FieldSummaryL1, v))
}

// SummaryL1In applies the In predicate on the "summary_l1" field.
func SummaryL1In(vs ...string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldIn(FieldSummaryL1, vs...))
}

// SummaryL1NotIn applies the NotIn predicate on the "summary_l1" field.
func SummaryL1NotIn(vs ...string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNotIn(FieldSummaryL1, vs...))
}

// SummaryL1GT applies the GT predicate on the "summary_l1" field.
func SummaryL1GT(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGT(FieldSummaryL1, v))
}

// SummaryL1GTE applies the GTE predicate on the "summary_l1" field.
func SummaryL1GTE(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGTE(FieldSummaryL1, v))
}

// SummaryL1LT applies the LT predicate on the "summary_l1" field.
func SummaryL1LT(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLT(FieldSummaryL1, v))
}

// SummaryL1LTE applies the LTE predicate on the "summary_l1" field.
func SummaryL1LTE(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLTE(FieldSummaryL1, v))
}

// SummaryL1Contains applies the Contains predicate on the "summary_l1" field.
func SummaryL1Contains(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldContains(FieldSummaryL1, v))
}

// SummaryL1HasPrefix applies the HasPrefix predicate on the "summary_l1" field.
func SummaryL1HasPrefix(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldHasPrefix(FieldSummaryL1, v))
}

// SummaryL1HasSuffix applies the HasSuffix predicate on the "summary_l1" field.
func SummaryL1HasSuffix(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldHasSuffix(FieldSummaryL1, v))
}

// SummaryL1EqualFold applies the EqualFold predicate on the "summary_l1" field.
func SummaryL1EqualFold(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEqualFold(FieldSummaryL1, v))
}

// SummaryL1ContainsFold applies the ContainsFold predicate on the "summary_l1" field.
func SummaryL1ContainsFold(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldContainsFold(FieldSummaryL1, v))
}

// ChunkCountEQ applies the EQ predicate on the "chunk_count" field.
func ChunkCountEQ(v int) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldChunkCount, v))
}

// ChunkCountNEQ applies the NEQ predicate on the "chunk_count" field.
func ChunkCountNEQ(v int) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNEQ(FieldChunkCount, v))
}

// ChunkCountIn applies the In predicate on the "chunk_count" field.
func ChunkCountIn(vs ...int) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldIn(FieldChunkCount, vs...))
}

// ChunkCountNotIn applies the NotIn predicate on the "chunk_count" field.
func ChunkCountNotIn(vs ...int) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNotIn(FieldChunkCount, vs...))
}

// ChunkCountGT applies the GT predicate on the "chunk_count" field.
func ChunkCountGT(v int) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGT(FieldChunkCount, v))
}

// ChunkCountGTE applies the GTE predicate on the "chunk_count" field.
func ChunkCountGTE(v int) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGTE(FieldChunkCount, v))
}

// ChunkCountLT applies the LT predicate on the "chunk_count" field.
func ChunkCountLT(v int) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLT(FieldChunkCount, v))
}

// ChunkCountLTE applies the LTE predicate on the "chunk_count" field.
func ChunkCountLTE(v int) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLTE(FieldChunkCount, v))
}

// SizeBytesEQ applies the EQ predicate on the "size_bytes" field.
func SizeBytesEQ(v int64) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldSizeBytes, v))
}

// SizeBytesNEQ applies the NEQ predicate on the "size_bytes" field.
func SizeBytesNEQ(v int64) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNEQ(FieldSizeBytes, v))
}

// SizeBytesIn applies the In predicate on the "size_bytes" field.
func SizeBytesIn(vs ...int64) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldIn(FieldSizeBytes, vs...))
}

// SizeBytesNotIn applies the NotIn predicate on the "size_bytes" field.
func SizeBytesNotIn(vs ...int64) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNotIn(FieldSizeBytes, vs...))
}

// SizeBytesGT applies the GT predicate on the "size_bytes" field.
func SizeBytesGT(v int64) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGT(FieldSizeBytes, v))
}

// SizeBytesGTE applies the GTE predicate on the "size_bytes" field.
func SizeBytesGTE(v int64) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGTE(FieldSizeBytes, v))
}

// SizeBytesLT applies the LT predicate on the "size_bytes" field.
func SizeBytesLT(v int64) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLT(FieldSizeBytes, v))
}

// SizeBytesLTE applies the LTE predicate on the "size_bytes" field.
func SizeBytesLTE(v int64) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLTE(FieldSizeBytes, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.KBDocument {
	return predicate.KBDocument(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldContainsFold(FieldError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.KBDocument {
	return predicate.KBDocument(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KBDocument) predicate.KBDocument {
	return predicate.KBDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KBDocument) predicate.KBDocument {
	return predicate.KBDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KBDocument) predicate.KBDocument {
	return predicate.KBDocument(sql.NotPredicates(p))
}
