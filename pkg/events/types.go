// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Two channel families exist:
//
//   - team:{team_id}     — tenant-wide updates: chat messages, notifications,
//     approvals, task changes, document ingestion status.
//   - meeting:{meeting_id} — live meeting traffic: lifecycle transitions,
//     finished turns, and per-token stream chunks.
//
// Persistent events are written to the events table in the same transaction
// as the pg_notify broadcast, so reconnecting subscribers can catch up from
// the table. Stream chunks are NOTIFY-only: lost deltas are recovered by the
// completed turn that follows them.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Team channel
	EventTypeChatMessage         = "chat.message"
	EventTypeNotificationCreated = "notification.created"
	EventTypeApprovalPending     = "approval.pending"
	EventTypeTaskUpdated         = "task.updated"
	EventTypeDocumentStatus      = "kb.document.status"

	// Meeting channel
	EventTypeMeetingStatus           = "meeting.status"
	EventTypeMeetingMessageCompleted = "meeting.message.completed"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Per-token speaker output — high-frequency, ephemeral. Clients
	// concatenate deltas for a live typing effect; the completed turn
	// carries the full text.
	EventTypeMeetingStreamChunk = "meeting.stream.chunk"
)

// Meeting lifecycle status values (used in MeetingStatusPayload.Status).
const (
	MeetingStatusActive = "active"
	MeetingStatusEnded  = "ended"
)

// TeamChannel returns the channel name for a team's events.
// Format: "team:{team_id}"
func TeamChannel(teamID string) string {
	return "team:" + teamID
}

// MeetingChannel returns the channel name for a meeting's events.
// Format: "meeting:{meeting_id}"
func MeetingChannel(meetingID string) string {
	return "meeting:" + meetingID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "team:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
