package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeamChannel(t *testing.T) {
	assert.Equal(t, "team:abc-123", TeamChannel("abc-123"))
	assert.Equal(t, "team:550e8400-e29b-41d4-a716-446655440000",
		TeamChannel("550e8400-e29b-41d4-a716-446655440000"))
	assert.Equal(t, "team:", TeamChannel(""))
}

func TestMeetingChannel(t *testing.T) {
	assert.Equal(t, "meeting:m-42", MeetingChannel("m-42"))
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypeChatMessage,
		EventTypeNotificationCreated,
		EventTypeApprovalPending,
		EventTypeTaskUpdated,
		EventTypeDocumentStatus,
		EventTypeMeetingStatus,
		EventTypeMeetingMessageCompleted,
		EventTypeMeetingStreamChunk,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}
