package services

import (
	"context"
	"fmt"
	"time"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/ent/activityevent"
)

// ActivityService appends to and reads the tenant audit trail. Events are
// append-only; there is no update or delete path.
type ActivityService struct {
	client *ent.Client
}

// NewActivityService creates a new ActivityService
func NewActivityService(client *ent.Client) *ActivityService {
	return &ActivityService{client: client}
}

// ActivityFilter narrows ListEvents.
type ActivityFilter struct {
	AgentID   string
	EventType string
	Since     *time.Time
}

// Record appends one event. agentID may be empty for team-level events.
func (s *ActivityService) Record(httpCtx context.Context, teamID, agentID, eventType, summary string, metadata map[string]any) (*ent.ActivityEvent, error) {
	if eventType == "" {
		return nil, NewValidationError("event_type", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	create := s.client.ActivityEvent.Create().
		SetTeamID(teamID).
		SetEventType(eventType).
		SetSummary(summary)
	if agentID != "" {
		create.SetAgentID(agentID)
	}
	if metadata != nil {
		create.SetMetadata(metadata)
	}

	e, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}
	return e, nil
}

// ListEvents returns audit events, newest first, optionally filtered.
func (s *ActivityService) ListEvents(httpCtx context.Context, teamID string, filter ActivityFilter, limit, offset int) ([]*ent.ActivityEvent, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	q := s.client.ActivityEvent.Query().
		Where(activityevent.TeamID(teamID))
	if filter.AgentID != "" {
		q = q.Where(activityevent.AgentID(filter.AgentID))
	}
	if filter.EventType != "" {
		q = q.Where(activityevent.EventType(filter.EventType))
	}
	if filter.Since != nil {
		q = q.Where(activityevent.CreatedAtGTE(*filter.Since))
	}
	return q.Order(ent.Desc(activityevent.FieldID)).
		Limit(limit).
		Offset(offset).
		All(ctx)
}
