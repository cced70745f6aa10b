package models

import "time"

// SendMessageRequest is the body of POST /api/v1/channels/:id/messages.
type SendMessageRequest struct {
	Content string `json:"content"`
}

// MessageView is one chat message for API responses.
type MessageView struct {
	ID         int       `json:"id"`
	ChannelID  string    `json:"channel_id"`
	SenderKind string    `json:"sender_kind"`
	SenderID   string    `json:"sender_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// MessagePage is a cursor page of messages in display (ascending) order.
type MessagePage struct {
	Messages   []MessageView `json:"messages"`
	NextCursor int           `json:"next_cursor,omitempty"`
	HasMore    bool          `json:"has_more"`
}

// Mention is one parsed @-mention from a message body.
// Grammar: @[<display_name>](<kind>:<target_id>), kind ∈ {agent, user, file}.
type Mention struct {
	DisplayName string `json:"display_name"`
	Kind        string `json:"kind"`
	TargetID    string `json:"target_id"`
}
