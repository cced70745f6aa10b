package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(ChatMessagePayload{
			Type:      EventTypeChatMessage,
			TeamID:    "team-1",
			ChannelID: "ch-1",
			Content:   "hello there",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeChatMessage)
		assert.Contains(t, result, "hello there")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(ChatMessagePayload{
			Type:    EventTypeChatMessage,
			TeamID:  "team-1",
			Content: strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Less(t, len(result), 8000)
		assert.NotContains(t, result, "aaaa")
	})

	t.Run("truncated payload keeps routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(MeetingMessageCompletedPayload{
			Type:      EventTypeMeetingMessageCompleted,
			TeamID:    "team-9",
			MeetingID: "mtg-3",
			Content:   strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeMeetingMessageCompleted)
		assert.Contains(t, result, "team-9")
		assert.Contains(t, result, "mtg-3")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(TaskUpdatedPayload{
			Type:   EventTypeTaskUpdated,
			TeamID: "team-1",
			TaskID: "task-1",
			Status: "done",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "task-1")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(ChatMessagePayload{
			Type:    EventTypeChatMessage,
			TeamID:  "team-1",
			Content: strings.Repeat("x", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "team-1")
	})

	t.Run("rejects non-object payload", func(t *testing.T) {
		_, err := injectDBEventIDAndTruncate([]byte(`"just a string"`), 1)
		assert.Error(t, err)
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}
