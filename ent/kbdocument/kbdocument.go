// Code generated by ent, DO NOT EDIT.

package kbdocument

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the kbdocument type in the database.
	Label = "kb_document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTeamID holds the string denoting the team_id field in the database.
	FieldTeamID = "team_id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSummaryL0 holds the string denoting the summary_l0 field in the database.
	FieldSummaryL0 = "summary_l0"
	// FieldSummaryL1 holds the string denoting the summary_l1 field in the database.
	FieldSummaryL1 = "summary_l1"
	// FieldChunkCount holds the string denoting the chunk_count field in the database.
	FieldChunkCount = "chunk_count"
	// FieldSizeBytes holds the string denoting the size_bytes field in the database.
	FieldSizeBytes = "size_bytes"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the kbdocument in the database.
	Table = "kb_documents"
)

// Columns holds all SQL columns for kbdocument fields.
var Columns = []string{
	FieldID,
	FieldTeamID,
	FieldFilename,
	FieldFormat,
	FieldStatus,
	FieldSummaryL0,
	FieldSummaryL1,
	FieldChunkCount,
	FieldSizeBytes,
	FieldError,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// DefaultSummaryL0 holds the default value on creation for the "summary_l0" field.
	DefaultSummaryL0 string
	// DefaultSummaryL1 holds the default value on creation for the "summary_l1" field.
	DefaultSummaryL1 string
	// DefaultChunkCount holds the default value on creation for the "chunk_count" field.
	DefaultChunkCount int
	// DefaultSizeBytes holds the default value on creation for the "size_bytes" field.
	DefaultSizeBytes int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Format defines the type for the "format" enum field.
type Format string

// Format values.
const (
	FormatPdf  Format = "pdf"
	FormatDocx Format = "docx"
	FormatTxt  Format = "txt"
	FormatMd   Format = "md"
	FormatCsv  Format = "csv"
)

func (f Format) String() string {
	return string(f)
}

// FormatValidator is a validator for the "format" field enum values. It is called by the builders before save.
func FormatValidator(f Format) error {
	switch f {
	case FormatPdf, FormatDocx, FormatTxt, FormatMd, FormatCsv:
		return nil
	default:
		return fmt.Errorf("kbdocument: invalid enum value for format field: %q", f)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusReady      Status = "ready"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusProcessing, StatusReady, StatusFailed:
		return nil
	default:
		return fmt.Errorf("kbdocument: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the KBDocument queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTeamID orders the results by the team_id field.
func ByTeamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeamID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySummaryL0 orders the results by the summary_l0 field.
func BySummaryL0(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryL0, opts...).ToFunc()
}

// BySummaryL1 orders the results by the summary_l1 field.
func BySummaryL1(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryL1, opts...).ToFunc()
}

// ByChunkCount orders the results by the chunk_count field.
func ByChunkCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkCount, opts...).ToFunc()
}

// BySizeBytes orders the results by the size_bytes field.
func BySizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizeBytes, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
