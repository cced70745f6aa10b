package services

import (
	"context"
	"fmt"
	"time"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/ent/notification"
)

// NotificationService manages per-user notifications. These are user-scoped
// rather than tenant-scoped: a user sees mentions from every team they
// belong to in one feed.
type NotificationService struct {
	client *ent.Client
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(client *ent.Client) *NotificationService {
	return &NotificationService{client: client}
}

// ListNotifications returns a user's notifications, newest first. Pass
// unreadOnly to restrict to unread ones.
func (s *NotificationService) ListNotifications(httpCtx context.Context, userID string, unreadOnly bool, limit int) ([]*ent.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	q := s.client.Notification.Query().
		Where(notification.UserID(userID))
	if unreadOnly {
		q = q.Where(notification.Read(false))
	}
	return q.Order(ent.Desc(notification.FieldID)).Limit(limit).All(ctx)
}

// UnreadCount returns the number of unread notifications for a user.
func (s *NotificationService) UnreadCount(httpCtx context.Context, userID string) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	n, err := s.client.Notification.Query().
		Where(notification.UserID(userID), notification.Read(false)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return n, nil
}

// MarkRead marks one notification as read. The user filter keeps other
// users' notification IDs unreachable.
func (s *NotificationService) MarkRead(httpCtx context.Context, userID string, notificationID int) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	n, err := s.client.Notification.Update().
		Where(notification.ID(notificationID), notification.UserID(userID)).
		SetRead(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkAllRead marks every unread notification for a user as read and
// returns how many were updated.
func (s *NotificationService) MarkAllRead(httpCtx context.Context, userID string) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	n, err := s.client.Notification.Update().
		Where(notification.UserID(userID), notification.Read(false)).
		SetRead(true).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return n, nil
}
