package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// listNotificationsHandler handles GET /api/v1/notifications.
// ?unread=true restricts to unread; ?limit caps the page.
func (s *Server) listNotificationsHandler(c *echo.Context) error {
	unreadOnly := c.QueryParam("unread") == "true"
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}

	notifications, err := s.svc.Notifications.ListNotifications(c.Request().Context(), identity(c).UserID, unreadOnly, limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, notifications)
}

// unreadCountHandler handles GET /api/v1/notifications/unread-count.
func (s *Server) unreadCountHandler(c *echo.Context) error {
	count, err := s.svc.Notifications.UnreadCount(c.Request().Context(), identity(c).UserID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &UnreadCountResponse{Count: count})
}

// markNotificationReadHandler handles POST /api/v1/notifications/:id/read.
func (s *Server) markNotificationReadHandler(c *echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid notification id")
	}

	if err := s.svc.Notifications.MarkRead(c.Request().Context(), identity(c).UserID, id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// markAllNotificationsReadHandler handles POST /api/v1/notifications/read-all.
func (s *Server) markAllNotificationsReadHandler(c *echo.Context) error {
	n, err := s.svc.Notifications.MarkAllRead(c.Request().Context(), identity(c).UserID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"marked": n})
}
