// Code generated by ent, DO NOT EDIT.

package meetingmessage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the meetingmessage type in the database.
	Label = "meeting_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMeetingID holds the string denoting the meeting_id field in the database.
	FieldMeetingID = "meeting_id"
	// FieldTeamID holds the string denoting the team_id field in the database.
	FieldTeamID = "team_id"
	// FieldSpeakerKind holds the string denoting the speaker_kind field in the database.
	FieldSpeakerKind = "speaker_kind"
	// FieldSpeakerID holds the string denoting the speaker_id field in the database.
	FieldSpeakerID = "speaker_id"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the meetingmessage in the database.
	Table = "meeting_messages"
)

// Columns holds all SQL columns for meetingmessage fields.
var Columns = []string{
	FieldID,
	FieldMeetingID,
	FieldTeamID,
	FieldSpeakerKind,
	FieldSpeakerID,
	FieldContent,
	FieldCreatedAt,
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
	// DefaultSpeakerID holds the default value on creation for the "speaker_id" field.
	DefaultSpeakerID string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// SpeakerKind defines the type for the "speaker_kind" enum field.
type SpeakerKind string

// SpeakerKind values.
const (
	SpeakerKindAgent  SpeakerKind = "agent"
	SpeakerKindHuman  SpeakerKind = "human"
	SpeakerKindSystem SpeakerKind = "system"
)

func (sk SpeakerKind) String() string {
	return string(sk)
}

// SpeakerKindValidator is a validator for the "speaker_kind" field enum values. It is called by the builders before save.
func SpeakerKindValidator(sk SpeakerKind) error {
	switch sk {
	case SpeakerKindAgent, SpeakerKindHuman, SpeakerKindSystem:
		return nil
	default:
		return fmt.Errorf("meetingmessage: invalid enum value for speaker_kind field: %q", sk)
	}
}

// OrderOption defines the ordering options for the MeetingMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMeetingID orders the results by the meeting_id field.
func ByMeetingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingID, opts...).ToFunc()
}

// ByTeamID orders the results by the team_id field.
func ByTeamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeamID, opts...).ToFunc()
}

// BySpeakerKind orders the results by the speaker_kind field.
func BySpeakerKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeakerKind, opts...).ToFunc()
}

// BySpeakerID orders the results by the speaker_id field.
func BySpeakerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeakerID, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
