package events_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewd/pkg/events"
	testdb "github.com/crewforge/crewd/test/database"
)

func TestEntCatchupQuerier(t *testing.T) {
	client := testdb.NewTestClient(t)
	querier := events.NewEntCatchupQuerier(client.Client)
	publisher := events.NewEventPublisher(client.DB())
	ctx := context.Background()

	channel := events.TeamChannel("team-1")

	for i, content := range []string{"first", "second", "third"} {
		err := publisher.PublishChatMessage(ctx, events.ChatMessagePayload{
			Type:      events.EventTypeChatMessage,
			TeamID:    "team-1",
			ChannelID: "ch-1",
			MessageID: i + 1,
			Content:   content,
		})
		require.NoError(t, err)
	}
	// Different channel, must not leak into catchup.
	require.NoError(t, publisher.PublishTaskUpdated(ctx, events.TaskUpdatedPayload{
		Type:   events.EventTypeTaskUpdated,
		TeamID: "team-2",
		TaskID: "task-9",
		Status: "done",
	}))

	t.Run("returns all events from the beginning", func(t *testing.T) {
		got, err := querier.GetCatchupEvents(ctx, channel, 0, 10)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "first", got[0].Payload["content"])
		assert.Equal(t, "third", got[2].Payload["content"])
		assert.Less(t, got[0].ID, got[1].ID)
	})

	t.Run("since cursor skips already-seen events", func(t *testing.T) {
		all, err := querier.GetCatchupEvents(ctx, channel, 0, 10)
		require.NoError(t, err)

		got, err := querier.GetCatchupEvents(ctx, channel, all[0].ID, 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "second", got[0].Payload["content"])
	})

	t.Run("limit caps the result", func(t *testing.T) {
		got, err := querier.GetCatchupEvents(ctx, channel, 0, 2)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("unknown channel returns empty", func(t *testing.T) {
		got, err := querier.GetCatchupEvents(ctx, events.TeamChannel("nope"), 0, 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestPublisherPersistsRawPayload(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher := events.NewEventPublisher(client.DB())
	ctx := context.Background()

	require.NoError(t, publisher.PublishMeetingStatus(ctx, events.MeetingStatusPayload{
		Type:      events.EventTypeMeetingStatus,
		TeamID:    "team-1",
		MeetingID: "mtg-1",
		Status:    events.MeetingStatusActive,
	}))

	rows := client.Event.Query().AllX(ctx)
	require.Len(t, rows, 1)
	assert.Equal(t, "team-1", rows[0].TeamID)
	assert.Equal(t, events.MeetingChannel("mtg-1"), rows[0].Channel)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rows[0].Payload, &payload))
	assert.Equal(t, events.EventTypeMeetingStatus, payload["type"])
	assert.Equal(t, "active", payload["status"])
}
