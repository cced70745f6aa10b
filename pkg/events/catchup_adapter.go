package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/ent/event"
)

// EntCatchupQuerier implements CatchupQuerier over the events table.
type EntCatchupQuerier struct {
	client *ent.Client
}

// NewEntCatchupQuerier creates a CatchupQuerier backed by the ent client.
func NewEntCatchupQuerier(client *ent.Client) *EntCatchupQuerier {
	return &EntCatchupQuerier{client: client}
}

// GetCatchupEvents returns events on channel with ID > sinceID, oldest first,
// up to limit rows.
func (q *EntCatchupQuerier) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	rows, err := q.client.Event.Query().
		Where(event.ChannelEQ(channel), event.IDGT(sinceID)).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events: %w", err)
	}

	result := make([]CatchupEvent, len(rows))
	for i, row := range rows {
		var payload map[string]interface{}
		if err := json.Unmarshal(row.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event %d payload: %w", row.ID, err)
		}
		result[i] = CatchupEvent{
			ID:      row.ID,
			Payload: payload,
		}
	}
	return result, nil
}
