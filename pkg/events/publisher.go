package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// EventPublisher publishes events for WebSocket delivery.
// Persistent events are stored in the events table then broadcast via NOTIFY.
// Transient events (streaming chunks) are broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct — see payloads.go.
// Internally, payloads are marshaled to JSON and routed to the team or
// meeting channel via persistAndNotify or notifyOnly.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishChatMessage persists and broadcasts a chat.message event to the
// team channel.
func (p *EventPublisher) PublishChatMessage(ctx context.Context, payload ChatMessagePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ChatMessagePayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.TeamID, TeamChannel(payload.TeamID), payloadJSON)
}

// PublishNotificationCreated persists and broadcasts a notification.created
// event to the team channel.
func (p *EventPublisher) PublishNotificationCreated(ctx context.Context, payload NotificationCreatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal NotificationCreatedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.TeamID, TeamChannel(payload.TeamID), payloadJSON)
}

// PublishApprovalPending persists and broadcasts an approval.pending event
// to the team channel.
func (p *EventPublisher) PublishApprovalPending(ctx context.Context, payload ApprovalPendingPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ApprovalPendingPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.TeamID, TeamChannel(payload.TeamID), payloadJSON)
}

// PublishTaskUpdated persists and broadcasts a task.updated event to the
// team channel.
func (p *EventPublisher) PublishTaskUpdated(ctx context.Context, payload TaskUpdatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TaskUpdatedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.TeamID, TeamChannel(payload.TeamID), payloadJSON)
}

// PublishDocumentStatus persists and broadcasts a kb.document.status event
// to the team channel.
func (p *EventPublisher) PublishDocumentStatus(ctx context.Context, payload DocumentStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal DocumentStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.TeamID, TeamChannel(payload.TeamID), payloadJSON)
}

// PublishMeetingStatus persists and broadcasts a meeting.status event to
// the meeting channel.
func (p *EventPublisher) PublishMeetingStatus(ctx context.Context, payload MeetingStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal MeetingStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.TeamID, MeetingChannel(payload.MeetingID), payloadJSON)
}

// PublishMeetingMessageCompleted persists and broadcasts a finished meeting
// turn to the meeting channel.
func (p *EventPublisher) PublishMeetingMessageCompleted(ctx context.Context, payload MeetingMessageCompletedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal MeetingMessageCompletedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.TeamID, MeetingChannel(payload.MeetingID), payloadJSON)
}

// PublishMeetingStreamChunk broadcasts a meeting.stream.chunk transient
// event (no DB persistence). Lost chunks are recovered by the completed
// turn that follows.
func (p *EventPublisher) PublishMeetingStreamChunk(ctx context.Context, payload MeetingStreamChunkPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal MeetingStreamChunkPayload: %w", err)
	}
	return p.notifyOnly(ctx, MeetingChannel(payload.MeetingID), payloadJSON)
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and broadcasts
// via NOTIFY in a single transaction (pg_notify is transactional — held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, teamID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (team_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		teamID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		TeamID    string `json:"team_id"`
		MeetingID string `json:"meeting_id,omitempty"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"team_id":   routing.TeamID,
		"truncated": true,
	}
	if routing.MeetingID != "" {
		truncated["meeting_id"] = routing.MeetingID
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
