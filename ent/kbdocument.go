// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewd/ent/kbdocument"
)

// KBDocument is the model entity for the KBDocument schema.
type KBDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TeamID holds the value of the "team_id" field.
	TeamID string `json:"team_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// Format holds the value of the "format" field.
	Format kbdocument.Format `json:"format,omitempty"`
	// Status holds the value of the "status" field.
	Status kbdocument.Status `json:"status,omitempty"`
	// Short summary, ~100 tokens
	SummaryL0 string `json:"summary_l0,omitempty"`
	// Long overview, 300-500 words
	SummaryL1 string `json:"summary_l1,omitempty"`
	// ChunkCount holds the value of the "chunk_count" field.
	ChunkCount int `json:"chunk_count,omitempty"`
	// SizeBytes holds the value of the "size_bytes" field.
	SizeBytes int64 `json:"size_bytes,omitempty"`
	// Truncated ingestion error when status=failed
	Error *string `json:"error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KBDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case kbdocument.FieldChunkCount, kbdocument.FieldSizeBytes:
			values[i] = new(sql.NullInt64)
		case kbdocument.FieldID, kbdocument.FieldTeamID, kbdocument.FieldFilename, kbdocument.FieldFormat, kbdocument.FieldStatus, kbdocument.FieldSummaryL0, kbdocument.FieldSummaryL1, kbdocument.FieldError:
			values[i] = new(sql.NullString)
		case kbdocument.FieldCreatedAt, kbdocument.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KBDocument fields.
func (_m *KBDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case kbdocument.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case kbdocument.FieldTeamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field team_id", values[i])
			} else if value.Valid {
				_m.TeamID = value.String
			}
		case kbdocument.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case kbdocument.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				_m.Format = kbdocument.Format(value.String)
			}
		case kbdocument.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = kbdocument.Status(value.String)
			}
		case kbdocument.FieldSummaryL0:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary_l0", values[i])
			} else if value.Valid {
				_m.SummaryL0 = value.String
			}
		case kbdocument.FieldSummaryL1:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary_l1", values[i])
			} else if value.Valid {
				_m.SummaryL1 = value.String
			}
		case kbdocument.FieldChunkCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_count", values[i])
			} else if value.Valid {
				_m.ChunkCount = int(value.Int64)
			}
		case kbdocument.FieldSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size_bytes", values[i])
			} else if value.Valid {
				_m.SizeBytes = value.Int64
			}
		case kbdocument.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case kbdocument.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case kbdocument.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the KBDocument.
// This includes values selected through modifiers, order, etc.
func (_m *KBDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this KBDocument.
// Note that you need to call KBDocument.Unwrap() before calling this method if this KBDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KBDocument) Update() *KBDocumentUpdateOne {
	return NewKBDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KBDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KBDocument) Unwrap() *KBDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KBDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KBDocument) String() string {
	var builder strings.Builder
	builder.WriteString("KBDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("team_id=")
	builder.WriteString(_m.TeamID)
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("format=")
	builder.WriteString(fmt.Sprintf("%v", _m.Format))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("summary_l0=")
	builder.WriteString(_m.SummaryL0)
	builder.WriteString(", ")
	builder.WriteString("summary_l1=")
	builder.WriteString(_m.SummaryL1)
	builder.WriteString(", ")
	builder.WriteString("chunk_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunkCount))
	builder.WriteString(", ")
	builder.WriteString("size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.SizeBytes))
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// KBDocuments is a parsable slice of KBDocument.
type KBDocuments []*KBDocument
