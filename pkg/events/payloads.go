package events

// ChatMessagePayload is the payload for chat.message events. Published to
// the team channel when any sender posts to a chat channel.
type ChatMessagePayload struct {
	Type       string `json:"type"`       // always EventTypeChatMessage
	TeamID     string `json:"team_id"`    // owning team
	ChannelID  string `json:"channel_id"` // chat channel UUID
	MessageID  int    `json:"message_id"` // serial message ID (pagination cursor)
	SenderKind string `json:"sender_kind"`
	SenderID   string `json:"sender_id"`
	Content    string `json:"content"`
	Timestamp  string `json:"timestamp"` // RFC3339Nano
}

// NotificationCreatedPayload is the payload for notification.created events.
type NotificationCreatedPayload struct {
	Type           string `json:"type"` // always EventTypeNotificationCreated
	TeamID         string `json:"team_id"`
	UserID         string `json:"user_id"`
	NotificationID int    `json:"notification_id"`
	Title          string `json:"title"`
	Timestamp      string `json:"timestamp"` // RFC3339Nano
}

// ApprovalPendingPayload is the payload for approval.pending events.
// Published when an agent's high-risk action enters the review queue.
type ApprovalPendingPayload struct {
	Type       string `json:"type"` // always EventTypeApprovalPending
	TeamID     string `json:"team_id"`
	ApprovalID string `json:"approval_id"`
	AgentID    string `json:"agent_id"`
	ActionType string `json:"action_type"`
	RiskLevel  string `json:"risk_level"`
	Timestamp  string `json:"timestamp"` // RFC3339Nano
}

// TaskUpdatedPayload is the payload for task.updated events. Published on
// task creation and every subsequent change so boards refresh live.
type TaskUpdatedPayload struct {
	Type      string `json:"type"` // always EventTypeTaskUpdated
	TeamID    string `json:"team_id"`
	TaskID    string `json:"task_id"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// DocumentStatusPayload is the payload for kb.document.status events.
// Published when asynchronous ingestion moves a document between states.
type DocumentStatusPayload struct {
	Type       string `json:"type"` // always EventTypeDocumentStatus
	TeamID     string `json:"team_id"`
	DocumentID string `json:"document_id"`
	Status     string `json:"status"`          // processing, ready, failed
	Error      string `json:"error,omitempty"` // set when status is failed
	Timestamp  string `json:"timestamp"`       // RFC3339Nano
}

// MeetingStatusPayload is the payload for meeting.status events.
type MeetingStatusPayload struct {
	Type      string `json:"type"` // always EventTypeMeetingStatus
	TeamID    string `json:"team_id"`
	MeetingID string `json:"meeting_id"`
	Status    string `json:"status"`    // active, ended
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// MeetingMessageCompletedPayload is the payload for
// meeting.message.completed events: one finished turn of the transcript.
type MeetingMessageCompletedPayload struct {
	Type        string `json:"type"` // always EventTypeMeetingMessageCompleted
	TeamID      string `json:"team_id"`
	MeetingID   string `json:"meeting_id"`
	MessageID   int    `json:"message_id"`
	SpeakerKind string `json:"speaker_kind"` // agent, user, system
	SpeakerID   string `json:"speaker_id"`
	Content     string `json:"content"`
	Timestamp   string `json:"timestamp"` // RFC3339Nano
}

// MeetingStreamChunkPayload is the payload for meeting.stream.chunk
// transient events — one token delta of the speaking agent's turn.
type MeetingStreamChunkPayload struct {
	Type      string `json:"type"` // always EventTypeMeetingStreamChunk
	MeetingID string `json:"meeting_id"`
	SpeakerID string `json:"speaker_id"`
	Delta     string `json:"delta"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}
