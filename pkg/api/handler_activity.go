package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/crewforge/crewd/pkg/services"
)

// listActivityHandler handles GET /api/v1/activity. Filters: ?agent_id=,
// ?event_type=, ?since=<RFC3339>; pagination via ?limit= and ?offset=.
func (s *Server) listActivityHandler(c *echo.Context) error {
	limit, offset, err := pageParams(c)
	if err != nil {
		return err
	}

	filter := services.ActivityFilter{
		AgentID:   c.QueryParam("agent_id"),
		EventType: c.QueryParam("event_type"),
	}
	if v := c.QueryParam("since"); v != "" {
		since, parseErr := time.Parse(time.RFC3339, v)
		if parseErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid since timestamp, expected RFC3339")
		}
		filter.Since = &since
	}

	items, err := s.svc.Activity.ListEvents(c.Request().Context(), teamContext(c).TeamID, filter, limit, offset)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, items)
}
