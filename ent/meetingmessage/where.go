// Code generated by ent, DO NOT EDIT.

package meetingmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldLTE(FieldID, id))
}

// MeetingID applies equality check predicate on the "meeting_id" field. It's identical to MeetingIDEQ.
func MeetingID(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldEQ(FieldMeetingID, v))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldEQ(FieldTeamID, v))
}

// SpeakerID applies equality check predicate on the "speaker_id" field. It's identical to SpeakerIDEQ.
func SpeakerID(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldEQ(FieldSpeakerID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldEQ(FieldContent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// MeetingIDEQ applies the EQ predicate on the "meeting_id" field.
func MeetingIDEQ(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingIDNEQ applies the NEQ predicate on the "meeting_id" field.
func MeetingIDNEQ(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldNEQ(FieldMeetingID, v))
}

// MeetingIDIn applies the In predicate on the "meeting_id" field.
func MeetingIDIn(vs ...string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldIn(FieldMeetingID, vs...))
}

// MeetingIDNotIn applies the NotIn predicate on the "meeting_id" field.
func MeetingIDNotIn(vs ...string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldNotIn(FieldMeetingID, vs...))
}

// MeetingIDGT applies the GT predicate on the "meeting_id" field.
func MeetingIDGT(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldGT(FieldMeetingID, v))
}

// MeetingIDGTE applies the GTE predicate on the "meeting_id" field.
func MeetingIDGTE(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldGTE(FieldMeetingID, v))
}

// MeetingIDLT applies the LT predicate on the "meeting_id" field.
func MeetingIDLT(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldLT(FieldMeetingID, v))
}

// MeetingIDLTE applies the LTE predicate on the "meeting_id" field.
func MeetingIDLTE(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldLTE(FieldMeetingID, v))
}

// MeetingIDContains applies the Contains predicate on the "meeting_id" field.
func MeetingIDContains(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldContains(FieldMeetingID, v))
}

// MeetingIDHasPrefix applies the HasPrefix predicate on the "meeting_id" field.
func MeetingIDHasPrefix(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldHasPrefix(FieldMeetingID, v))
}

// MeetingIDHasSuffix applies the HasSuffix predicate on the "meeting_id" field.
func MeetingIDHasSuffix(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldHasSuffix(FieldMeetingID, v))
}

// MeetingIDEqualFold applies the EqualFold predicate on the "meeting_id" field.
func MeetingIDEqualFold(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldEqualFold(FieldMeetingID, v))
}

// MeetingIDContainsFold applies the ContainsFold predicate on the "meeting_id" field.
func MeetingIDContainsFold(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldContainsFold(FieldMeetingID, v))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldNotIn(FieldTeamID, vs...))
}

// TeamIDGT applies the GT predicate on the "team_id" field.
func TeamIDGT(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldGT(FieldTeamID, v))
}

// TeamIDGTE applies the GTE predicate on the "team_id" field.
func TeamIDGTE(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldGTE(FieldTeamID, v))
}

// TeamIDLT applies the LT predicate on the "team_id" field.
func TeamIDLT(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldLT(FieldTeamID, v))
}

// TeamIDLTE applies the LTE predicate on the "team_id" field.
func TeamIDLTE(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldLTE(FieldTeamID, v))
}

// TeamIDContains applies the Contains predicate on the "team_id" field.
func TeamIDContains(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldContains(FieldTeamID, v))
}

// TeamIDHasPrefix applies the HasPrefix predicate on the "team_id" field.
func TeamIDHasPrefix(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldHasPrefix(FieldTeamID, v))
}

// TeamIDHasSuffix applies the HasSuffix predicate on the "team_id" field.
func TeamIDHasSuffix(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldHasSuffix(FieldTeamID, v))
}

// TeamIDEqualFold applies the EqualFold predicate on the "team_id" field.
func TeamIDEqualFold(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldEqualFold(FieldTeamID, v))
}

// TeamIDContainsFold applies the ContainsFold predicate on the "team_id" field.
func TeamIDContainsFold(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldContainsFold(FieldTeamID, v))
}

// SpeakerKindEQ applies the EQ predicate on the "speaker_kind" field.
func SpeakerKindEQ(v SpeakerKind) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldEQ(FieldSpeakerKind, v))
}

// SpeakerKindNEQ applies the NEQ predicate on the "speaker_kind" field.
func SpeakerKindNEQ(v SpeakerKind) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldNEQ(FieldSpeakerKind, v))
}

// SpeakerKindIn applies the In predicate on the "speaker_kind" field.
func SpeakerKindIn(vs ...SpeakerKind) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldIn(FieldSpeakerKind, vs...))
}

// SpeakerKindNotIn applies the NotIn predicate on the "speaker_kind" field.
func SpeakerKindNotIn(vs ...SpeakerKind) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldNotIn(FieldSpeakerKind, vs...))
}

// SpeakerIDEQ applies the EQ predicate on the "speaker_id" field.
func SpeakerIDEQ(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldEQ(FieldSpeakerID, v))
}

// SpeakerIDNEQ applies the NEQ predicate on the "speaker_id" field.
func SpeakerIDNEQ(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldNEQ(FieldSpeakerID, v))
}

// SpeakerIDIn applies the In predicate on the "speaker_id" field.
func SpeakerIDIn(vs ...string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldIn(FieldSpeakerID, vs...))
}

// SpeakerIDNotIn applies the NotIn predicate on the "speaker_id" field.
func SpeakerIDNotIn(vs ...string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldNotIn(FieldSpeakerID, vs...))
}

// SpeakerIDGT applies the GT predicate on the "speaker_id" field.
func SpeakerIDGT(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldGT(FieldSpeakerID, v))
}

// SpeakerIDGTE applies the GTE predicate on the "speaker_id" field.
func SpeakerIDGTE(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldGTE(FieldSpeakerID, v))
}

// SpeakerIDLT applies the LT predicate on the "speaker_id" field.
func SpeakerIDLT(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldLT(FieldSpeakerID, v))
}

// SpeakerIDLTE applies the LTE predicate on the "speaker_id" field.
func SpeakerIDLTE(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldLTE(FieldSpeakerID, v))
}

// SpeakerIDContains applies the Contains predicate on the "speaker_id" field.
func SpeakerIDContains(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldContains(FieldSpeakerID, v))
}

// SpeakerIDHasPrefix applies the HasPrefix predicate on the "speaker_id" field.
func SpeakerIDHasPrefix(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldHasPrefix(FieldSpeakerID, v))
}

// SpeakerIDHasSuffix applies the HasSuffix predicate on the "speaker_id" field.
func SpeakerIDHasSuffix(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldHasSuffix(FieldSpeakerID, v))
}

// SpeakerIDEqualFold applies the EqualFold predicate on the "speaker_id" field.
func SpeakerIDEqualFold(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldEqualFold(FieldSpeakerID, v))
}

// SpeakerIDContainsFold applies the ContainsFold predicate on the "speaker_id" field.
func SpeakerIDContainsFold(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldContainsFold(FieldSpeakerID, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldContainsFold(FieldContent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MeetingMessage) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MeetingMessage) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MeetingMessage) predicate.MeetingMessage {
	return predicate.MeetingMessage(sql.NotPredicates(p))
}
