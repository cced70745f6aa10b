package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/ent/chatchannel"
	"github.com/crewforge/crewd/ent/chatmessage"
	"github.com/crewforge/crewd/pkg/events"
	"github.com/crewforge/crewd/pkg/models"
)

const maxMessageLength = 32768

// mentionPattern matches @[<display_name>](<kind>:<target_id>).
var mentionPattern = regexp.MustCompile(`@\[([^\]]+)\]\((agent|user|file):([^)\s]+)\)`)

// AgentMentionHandler is invoked after a message mentioning an agent is
// persisted. The runtime registers itself here to wake the agent.
type AgentMentionHandler func(teamID, agentID, channelID string, message models.MessageView)

// ChatService manages channels, messages, cursor pagination, and mention
// fan-out.
type ChatService struct {
	client         *ent.Client
	onAgentMention AgentMentionHandler
	publisher      EventPublisher
}

// NewChatService creates a new ChatService
func NewChatService(client *ent.Client) *ChatService {
	return &ChatService{client: client}
}

// SetAgentMentionHandler registers the runtime hook. Must be called before
// the server starts accepting requests.
func (s *ChatService) SetAgentMentionHandler(h AgentMentionHandler) {
	s.onAgentMention = h
}

// SetEventPublisher registers the real-time event hook. Must be called
// before the server starts accepting requests.
func (s *ChatService) SetEventPublisher(p EventPublisher) {
	s.publisher = p
}

// GetOrCreateDM returns the singleton DM channel for an agent, creating it
// on first use.
func (s *ChatService) GetOrCreateDM(httpCtx context.Context, teamID, agentID string) (*ent.ChatChannel, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()
	return s.getOrCreate(ctx, teamID, "dm:"+agentID, chatchannel.TypeDm)
}

// GetOrCreateTaskThread returns the singleton discussion thread for a task,
// creating it on first use.
func (s *ChatService) GetOrCreateTaskThread(httpCtx context.Context, teamID, taskID string) (*ent.ChatChannel, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()
	return s.getOrCreate(ctx, teamID, "task:"+taskID, chatchannel.TypeTaskThread)
}

// CreateGroupChannel creates a named group channel. Names are unique per
// team.
func (s *ChatService) CreateGroupChannel(httpCtx context.Context, teamID, name string) (*ent.ChatChannel, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	ch, err := s.client.ChatChannel.Create().
		SetID(uuid.New().String()).
		SetTeamID(teamID).
		SetName(name).
		SetType(chatchannel.TypeGroup).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}
	return ch, nil
}

// ListChannels returns a team's channels ordered by name.
func (s *ChatService) ListChannels(httpCtx context.Context, teamID string) ([]*ent.ChatChannel, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.client.ChatChannel.Query().
		Where(chatchannel.TeamID(teamID)).
		Order(ent.Asc(chatchannel.FieldName)).
		All(ctx)
}

// DeleteChannel removes a group channel and its messages. DM and task-thread
// channels are system-managed and cannot be deleted.
func (s *ChatService) DeleteChannel(httpCtx context.Context, teamID, channelID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	ch, err := s.getChannel(ctx, teamID, channelID)
	if err != nil {
		return err
	}
	if ch.Type != chatchannel.TypeGroup {
		return NewValidationError("channel_id", "only group channels can be deleted")
	}

	if _, err := s.client.ChatMessage.Delete().
		Where(chatmessage.ChannelID(ch.ID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete channel messages: %w", err)
	}
	if err := s.client.ChatChannel.DeleteOneID(ch.ID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete channel: %w", err)
	}
	return nil
}

// SendMessage persists a message, fans out notifications to mentioned users,
// and wakes mentioned agents.
func (s *ChatService) SendMessage(httpCtx context.Context, teamID, channelID, senderKind, senderID, content string) (*models.MessageView, error) {
	if content == "" {
		return nil, NewValidationError("content", "required")
	}
	if len(content) > maxMessageLength {
		return nil, NewValidationError("content", "too long")
	}
	kind := chatmessage.SenderKind(senderKind)
	if err := chatmessage.SenderKindValidator(kind); err != nil {
		return nil, NewValidationError("sender_kind", "must be user, agent, or system")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	ch, err := s.getChannel(ctx, teamID, channelID)
	if err != nil {
		return nil, err
	}

	m, err := s.client.ChatMessage.Create().
		SetTeamID(teamID).
		SetChannelID(ch.ID).
		SetSenderKind(kind).
		SetSenderID(senderID).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	view := mapMessage(m)

	if s.publisher != nil {
		if err := s.publisher.PublishChatMessage(ctx, events.ChatMessagePayload{
			Type:       events.EventTypeChatMessage,
			TeamID:     teamID,
			ChannelID:  ch.ID,
			MessageID:  m.ID,
			SenderKind: string(kind),
			SenderID:   senderID,
			Content:    content,
			Timestamp:  m.CreatedAt.UTC().Format(time.RFC3339Nano),
		}); err != nil {
			slog.Warn("Failed to publish chat message event",
				"channel_id", ch.ID, "error", err)
		}
	}

	s.fanOutMentions(ctx, teamID, ch, kind, senderID, content, view)
	return view, nil
}

// fanOutMentions notifies mentioned users and wakes mentioned agents. The
// message is already persisted, so fan-out failures are logged and never
// surfaced to the sender.
func (s *ChatService) fanOutMentions(ctx context.Context, teamID string, ch *ent.ChatChannel, kind chatmessage.SenderKind, senderID, content string, view *models.MessageView) {
	for _, mention := range ParseMentions(content) {
		switch mention.Kind {
		case "user":
			// Self-mentions do not notify.
			if kind == chatmessage.SenderKindUser && mention.TargetID == senderID {
				continue
			}
			n, err := s.client.Notification.Create().
				SetUserID(mention.TargetID).
				SetTeamID(teamID).
				SetType("mention").
				SetTitle(fmt.Sprintf("You were mentioned in %s", ch.Name)).
				SetBody(truncate(content, 256)).
				SetChannelID(ch.ID).
				Save(ctx)
			if err != nil {
				slog.Warn("Failed to create mention notification",
					"user_id", mention.TargetID, "channel_id", ch.ID, "error", err)
				continue
			}
			if s.publisher != nil {
				if err := s.publisher.PublishNotificationCreated(ctx, events.NotificationCreatedPayload{
					Type:           events.EventTypeNotificationCreated,
					TeamID:         teamID,
					UserID:         mention.TargetID,
					NotificationID: n.ID,
					Title:          n.Title,
					Timestamp:      n.CreatedAt.UTC().Format(time.RFC3339Nano),
				}); err != nil {
					slog.Warn("Failed to publish notification event",
						"notification_id", n.ID, "error", err)
				}
			}
		case "agent":
			if s.onAgentMention != nil {
				s.onAgentMention(teamID, mention.TargetID, ch.ID, *view)
			}
		}
	}
}

// ListMessages returns one cursor page of a channel's messages in ascending
// order. cursor==0 starts from the newest; otherwise only messages with
// ID < cursor are returned.
func (s *ChatService) ListMessages(httpCtx context.Context, teamID, channelID string, cursor, limit int) (*models.MessagePage, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	ch, err := s.getChannel(ctx, teamID, channelID)
	if err != nil {
		return nil, err
	}

	q := s.client.ChatMessage.Query().
		Where(chatmessage.ChannelID(ch.ID))
	if cursor > 0 {
		q = q.Where(chatmessage.IDLT(cursor))
	}
	msgs, err := q.
		Order(ent.Desc(chatmessage.FieldID)).
		Limit(limit + 1).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	hasMore := len(msgs) > limit
	if hasMore {
		msgs = msgs[:limit]
	}

	page := &models.MessagePage{
		Messages: make([]models.MessageView, len(msgs)),
		HasMore:  hasMore,
	}
	// msgs is newest first; render oldest first.
	for i, m := range msgs {
		page.Messages[len(msgs)-1-i] = *mapMessage(m)
	}
	if hasMore && len(msgs) > 0 {
		page.NextCursor = msgs[len(msgs)-1].ID
	}
	return page, nil
}

// ParseMentions extracts every well-formed mention from a message body.
// Malformed mention text is left as plain content.
func ParseMentions(content string) []models.Mention {
	matches := mentionPattern.FindAllStringSubmatch(content, -1)
	mentions := make([]models.Mention, 0, len(matches))
	for _, m := range matches {
		mentions = append(mentions, models.Mention{
			DisplayName: m[1],
			Kind:        m[2],
			TargetID:    m[3],
		})
	}
	return mentions
}

// getOrCreate handles the lazy-singleton race: a concurrent creator losing
// the unique index re-reads the winner's row.
func (s *ChatService) getOrCreate(ctx context.Context, teamID, name string, chType chatchannel.Type) (*ent.ChatChannel, error) {
	ch, err := s.client.ChatChannel.Query().
		Where(chatchannel.TeamID(teamID), chatchannel.Name(name)).
		Only(ctx)
	if err == nil {
		return ch, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query channel: %w", err)
	}

	ch, err = s.client.ChatChannel.Create().
		SetID(uuid.New().String()).
		SetTeamID(teamID).
		SetName(name).
		SetType(chType).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.client.ChatChannel.Query().
				Where(chatchannel.TeamID(teamID), chatchannel.Name(name)).
				Only(ctx)
		}
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}
	return ch, nil
}

func (s *ChatService) getChannel(ctx context.Context, teamID, channelID string) (*ent.ChatChannel, error) {
	ch, err := s.client.ChatChannel.Query().
		Where(chatchannel.ID(channelID), chatchannel.TeamID(teamID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	return ch, nil
}

func mapMessage(m *ent.ChatMessage) *models.MessageView {
	return &models.MessageView{
		ID:         m.ID,
		ChannelID:  m.ChannelID,
		SenderKind: string(m.SenderKind),
		SenderID:   m.SenderID,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
