package services

import (
	"context"

	"github.com/crewforge/crewd/pkg/events"
)

// EventPublisher is the slice of the events publisher the domain services
// use. Publishing is best-effort: a delivery failure never rolls back the
// write it announces.
type EventPublisher interface {
	PublishChatMessage(ctx context.Context, payload events.ChatMessagePayload) error
	PublishNotificationCreated(ctx context.Context, payload events.NotificationCreatedPayload) error
	PublishApprovalPending(ctx context.Context, payload events.ApprovalPendingPayload) error
	PublishTaskUpdated(ctx context.Context, payload events.TaskUpdatedPayload) error
}
