package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewd/pkg/models"
	"github.com/crewforge/crewd/pkg/services"
	testdb "github.com/crewforge/crewd/test/database"
)

func TestParseMentions(t *testing.T) {
	mentions := services.ParseMentions(
		"hey @[Scout](agent:a-1), ask @[Dana](user:u-9) about @[plan.md](file:f-3)")
	require.Len(t, mentions, 3)
	assert.Equal(t, models.Mention{DisplayName: "Scout", Kind: "agent", TargetID: "a-1"}, mentions[0])
	assert.Equal(t, models.Mention{DisplayName: "Dana", Kind: "user", TargetID: "u-9"}, mentions[1])
	assert.Equal(t, models.Mention{DisplayName: "plan.md", Kind: "file", TargetID: "f-3"}, mentions[2])

	// Malformed mentions are plain text.
	assert.Empty(t, services.ParseMentions("@[broken](robot:x) @[no-id](agent:) @plain"))
	assert.Empty(t, services.ParseMentions("no mentions here"))
}

func TestChatService(t *testing.T) {
	client := testdb.NewTestClient(t)
	teams := services.NewTeamService(client.Client)
	svc := services.NewChatService(client.Client)
	notifications := services.NewNotificationService(client.Client)
	ctx := context.Background()

	team, err := teams.CreateTeam(ctx, "Chat", "user-1")
	require.NoError(t, err)

	t.Run("DM channels are lazy singletons", func(t *testing.T) {
		first, err := svc.GetOrCreateDM(ctx, team.ID, "agent-1")
		require.NoError(t, err)
		assert.Equal(t, "dm:agent-1", first.Name)

		second, err := svc.GetOrCreateDM(ctx, team.ID, "agent-1")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("task threads are lazy singletons", func(t *testing.T) {
		first, err := svc.GetOrCreateTaskThread(ctx, team.ID, "task-1")
		require.NoError(t, err)
		assert.Equal(t, "task:task-1", first.Name)

		second, err := svc.GetOrCreateTaskThread(ctx, team.ID, "task-1")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("duplicate group names are rejected", func(t *testing.T) {
		_, err := svc.CreateGroupChannel(ctx, team.ID, "general")
		require.NoError(t, err)
		_, err = svc.CreateGroupChannel(ctx, team.ID, "general")
		assert.ErrorIs(t, err, services.ErrAlreadyExists)
	})

	t.Run("user mentions create notifications", func(t *testing.T) {
		ch, err := svc.GetOrCreateDM(ctx, team.ID, "agent-2")
		require.NoError(t, err)

		_, err = svc.SendMessage(ctx, team.ID, ch.ID, "user", "user-1",
			"ping @[Dana](user:user-dana)")
		require.NoError(t, err)

		list, err := notifications.ListNotifications(ctx, "user-dana", true, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "mention", list[0].Type)
		assert.Equal(t, team.ID, list[0].TeamID)
	})

	t.Run("self-mentions do not notify", func(t *testing.T) {
		ch, err := svc.GetOrCreateDM(ctx, team.ID, "agent-3")
		require.NoError(t, err)

		_, err = svc.SendMessage(ctx, team.ID, ch.ID, "user", "self-user",
			"note to @[me](user:self-user)")
		require.NoError(t, err)

		n, err := notifications.UnreadCount(ctx, "self-user")
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("agent mentions invoke the handler", func(t *testing.T) {
		var woken []string
		svc.SetAgentMentionHandler(func(teamID, agentID, channelID string, msg models.MessageView) {
			woken = append(woken, agentID)
		})
		defer svc.SetAgentMentionHandler(nil)

		ch, err := svc.CreateGroupChannel(ctx, team.ID, "mentions")
		require.NoError(t, err)
		_, err = svc.SendMessage(ctx, team.ID, ch.ID, "user", "user-1",
			"@[Scout](agent:agent-9) take a look")
		require.NoError(t, err)
		assert.Equal(t, []string{"agent-9"}, woken)
	})

	t.Run("cursor pagination walks history backward", func(t *testing.T) {
		ch, err := svc.CreateGroupChannel(ctx, team.ID, "history")
		require.NoError(t, err)
		for i := 1; i <= 5; i++ {
			_, err := svc.SendMessage(ctx, team.ID, ch.ID, "user", "user-1", fmt.Sprintf("msg %d", i))
			require.NoError(t, err)
		}

		page, err := svc.ListMessages(ctx, team.ID, ch.ID, 0, 2)
		require.NoError(t, err)
		require.Len(t, page.Messages, 2)
		assert.Equal(t, "msg 4", page.Messages[0].Content)
		assert.Equal(t, "msg 5", page.Messages[1].Content)
		assert.True(t, page.HasMore)

		page, err = svc.ListMessages(ctx, team.ID, ch.ID, page.NextCursor, 2)
		require.NoError(t, err)
		require.Len(t, page.Messages, 2)
		assert.Equal(t, "msg 2", page.Messages[0].Content)
		assert.Equal(t, "msg 3", page.Messages[1].Content)
		assert.True(t, page.HasMore)

		page, err = svc.ListMessages(ctx, team.ID, ch.ID, page.NextCursor, 2)
		require.NoError(t, err)
		require.Len(t, page.Messages, 1)
		assert.Equal(t, "msg 1", page.Messages[0].Content)
		assert.False(t, page.HasMore)
	})

	t.Run("messages to unknown channels fail", func(t *testing.T) {
		_, err := svc.SendMessage(ctx, team.ID, "nope", "user", "user-1", "hello")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("group channels can be deleted", func(t *testing.T) {
		ch, err := svc.CreateGroupChannel(ctx, team.ID, "doomed")
		require.NoError(t, err)
		_, err = svc.SendMessage(ctx, team.ID, ch.ID, "user", "user-1", "bye")
		require.NoError(t, err)

		require.NoError(t, svc.DeleteChannel(ctx, team.ID, ch.ID))
		_, err = svc.ListMessages(ctx, team.ID, ch.ID, 0, 10)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("system channels cannot be deleted", func(t *testing.T) {
		dm, err := svc.GetOrCreateDM(ctx, team.ID, "agent-keep")
		require.NoError(t, err)
		assert.True(t, services.IsValidationError(svc.DeleteChannel(ctx, team.ID, dm.ID)))

		thread, err := svc.GetOrCreateTaskThread(ctx, team.ID, "task-keep")
		require.NoError(t, err)
		assert.True(t, services.IsValidationError(svc.DeleteChannel(ctx, team.ID, thread.ID)))

		// Another tenant sees the channel as missing.
		assert.ErrorIs(t, svc.DeleteChannel(ctx, "other-team", dm.ID), services.ErrNotFound)
	})
}

func TestMentionFanOutIsBestEffort(t *testing.T) {
	client := testdb.NewTestClient(t)
	teams := services.NewTeamService(client.Client)
	svc := services.NewChatService(client.Client)
	ctx := context.Background()

	team, err := teams.CreateTeam(ctx, "Resilient", "user-1")
	require.NoError(t, err)
	ch, err := svc.CreateGroupChannel(ctx, team.ID, "general")
	require.NoError(t, err)

	// Make every notification insert fail; the message itself must still
	// persist and the send must still succeed.
	_, err = client.DB().ExecContext(ctx,
		"ALTER TABLE notifications ADD CONSTRAINT notifications_reject_all CHECK (false)")
	require.NoError(t, err)

	msg, err := svc.SendMessage(ctx, team.ID, ch.ID, "user", "user-1",
		"heads up @[Dana](user:user-dana)")
	require.NoError(t, err)
	require.NotNil(t, msg)

	page, err := svc.ListMessages(ctx, team.ID, ch.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, page.Messages, 1)
	assert.Equal(t, "heads up @[Dana](user:user-dana)", page.Messages[0].Content)
}
