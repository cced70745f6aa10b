package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/crewforge/crewd/pkg/models"
)

// CreateChannelRequest is the body of POST /api/v1/channels.
type CreateChannelRequest struct {
	Name string `json:"name"`
}

// listChannelsHandler handles GET /api/v1/channels.
func (s *Server) listChannelsHandler(c *echo.Context) error {
	channels, err := s.svc.Chat.ListChannels(c.Request().Context(), teamContext(c).TeamID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, channels)
}

// createChannelHandler handles POST /api/v1/channels — group channels only;
// DM and task threads are materialized on first access.
func (s *Server) createChannelHandler(c *echo.Context) error {
	var req CreateChannelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ch, err := s.svc.Chat.CreateGroupChannel(c.Request().Context(), teamContext(c).TeamID, req.Name)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, ch)
}

// deleteChannelHandler handles DELETE /api/v1/channels/:id. Only group
// channels are deletable.
func (s *Server) deleteChannelHandler(c *echo.Context) error {
	if err := s.svc.Chat.DeleteChannel(c.Request().Context(), teamContext(c).TeamID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// getDMHandler handles GET /api/v1/channels/dm/:agentId.
func (s *Server) getDMHandler(c *echo.Context) error {
	ch, err := s.svc.Chat.GetOrCreateDM(c.Request().Context(), teamContext(c).TeamID, c.Param("agentId"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, ch)
}

// getTaskThreadHandler handles GET /api/v1/channels/task/:taskId.
func (s *Server) getTaskThreadHandler(c *echo.Context) error {
	ch, err := s.svc.Chat.GetOrCreateTaskThread(c.Request().Context(), teamContext(c).TeamID, c.Param("taskId"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, ch)
}

// listMessagesHandler handles GET /api/v1/channels/:id/messages with
// cursor pagination (?before=<message_id>&limit=<n>).
func (s *Server) listMessagesHandler(c *echo.Context) error {
	cursor := 0
	if v := c.QueryParam("before"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid before cursor")
		}
		cursor = n
	}
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}

	page, err := s.svc.Chat.ListMessages(c.Request().Context(), teamContext(c).TeamID, c.Param("id"), cursor, limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// sendMessageHandler handles POST /api/v1/channels/:id/messages. The sender
// is always the authenticated user; agents post through the runtime.
func (s *Server) sendMessageHandler(c *echo.Context) error {
	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	msg, err := s.svc.Chat.SendMessage(c.Request().Context(), teamContext(c).TeamID, c.Param("id"), "user", identity(c).UserID, req.Content)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, msg)
}
