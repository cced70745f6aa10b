package models

// StartMeetingRequest is the body of POST /api/v1/teams/:id/meetings/meet-and-greet.
type StartMeetingRequest struct {
	Title          string   `json:"title,omitempty"`
	AgentIDs       []string `json:"agent_ids"`
	AdvisorAgentID string   `json:"advisor_agent_id"`
	CompanyName    string   `json:"company_name,omitempty"`
}

// MeetingMessageRequest is the body of POST /api/v1/meetings/:id/message.
type MeetingMessageRequest struct {
	Content string `json:"content"`
	Author  string `json:"author,omitempty"`
}

// MeetingEventType enumerates the streamed meeting event kinds.
type MeetingEventType string

// Meeting stream event types.
const (
	MeetingEventTurnStart     MeetingEventType = "turn_start"
	MeetingEventDelta         MeetingEventType = "delta"
	MeetingEventTurnEnd       MeetingEventType = "turn_end"
	MeetingEventHumanInjected MeetingEventType = "human_injected"
	MeetingEventMeetingEnd    MeetingEventType = "meeting_end"
)

// MeetingEvent is one streamed meeting event delivered to subscribers.
type MeetingEvent struct {
	Type      MeetingEventType `json:"type"`
	MeetingID string           `json:"meeting_id"`
	AgentID   string           `json:"agent_id,omitempty"`
	AgentName string           `json:"agent_name,omitempty"`
	Content   string           `json:"content,omitempty"`
	Turn      int              `json:"turn,omitempty"`
}
