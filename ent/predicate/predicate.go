// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivityEvent is the predicate function for activityevent builders.
type ActivityEvent func(*sql.Selector)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// Approval is the predicate function for approval builders.
type Approval func(*sql.Selector)

// ChatChannel is the predicate function for chatchannel builders.
type ChatChannel func(*sql.Selector)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// Credential is the predicate function for credential builders.
type Credential func(*sql.Selector)

// CreditTransaction is the predicate function for credittransaction builders.
type CreditTransaction func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Goal is the predicate function for goal builders.
type Goal func(*sql.Selector)

// KBChunk is the predicate function for kbchunk builders.
type KBChunk func(*sql.Selector)

// KBDocument is the predicate function for kbdocument builders.
type KBDocument func(*sql.Selector)

// MeasurableGoal is the predicate function for measurablegoal builders.
type MeasurableGoal func(*sql.Selector)

// Meeting is the predicate function for meeting builders.
type Meeting func(*sql.Selector)

// MeetingMessage is the predicate function for meetingmessage builders.
type MeetingMessage func(*sql.Selector)

// Memory is the predicate function for memory builders.
type Memory func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// SorPermission is the predicate function for sorpermission builders.
type SorPermission func(*sql.Selector)

// SorRow is the predicate function for sorrow builders.
type SorRow func(*sql.Selector)

// SorTable is the predicate function for sortable builders.
type SorTable func(*sql.Selector)

// Subscription is the predicate function for subscription builders.
type Subscription func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// Team is the predicate function for team builders.
type Team func(*sql.Selector)

// TeamMember is the predicate function for teammember builders.
type TeamMember func(*sql.Selector)
