package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/crewforge/crewd/pkg/llm"
	"github.com/crewforge/crewd/pkg/models"
)

// maxVoiceBytes caps meeting voice clips.
const maxVoiceBytes = 10 << 20

// transcriptionEndpoint and transcriptionModel are fixed; only the API key
// is deployment configuration.
const (
	transcriptionEndpoint = "https://api.openai.com/v1"
	transcriptionModel    = "whisper-1"
)

// startMeetingHandler handles POST /api/v1/teams/:id/meetings/meet-and-greet.
func (s *Server) startMeetingHandler(c *echo.Context) error {
	teamID := teamContext(c).TeamID
	if c.Param("id") != teamID {
		return echo.NewHTTPError(http.StatusNotFound, "team not found")
	}

	var req models.StartMeetingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	mtg, err := s.meetings.StartMeetAndGreet(c.Request().Context(), teamID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, mtg)
}

// meetingStreamHandler handles GET /api/v1/meetings/:id/stream as a
// server-sent event stream. A comment ping goes out every 15 seconds so
// proxies keep the connection open.
func (s *Server) meetingStreamHandler(c *echo.Context) error {
	sub, cancel, err := s.meetings.Subscribe(teamContext(c).TeamID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	defer cancel()

	res := c.Response()
	rc := http.NewResponseController(res)
	res.Header().Set("Content-Type", "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	_ = rc.Flush()

	keepalive := time.NewTicker(15 * time.Second)
	defer keepalive.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-keepalive.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			_ = rc.Flush()
		case ev, ok := <-sub:
			if !ok {
				return nil
			}
			data, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(res, "data: %s\n\n", data); err != nil {
				return nil
			}
			_ = rc.Flush()
		}
	}
}

// meetingMessageHandler handles POST /api/v1/meetings/:id/message.
func (s *Server) meetingMessageHandler(c *echo.Context) error {
	var req models.MeetingMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Content) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content is required")
	}

	author := req.Author
	if author == "" {
		author = identity(c).UserID
	}

	if err := s.meetings.Inject(teamContext(c).TeamID, c.Param("id"), author, req.Content); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusAccepted)
}

// meetingVoiceHandler handles POST /api/v1/meetings/:id/voice. The body is
// the raw audio clip; it is transcribed and injected as a human interjection.
func (s *Server) meetingVoiceHandler(c *echo.Context) error {
	if s.transcriber == nil || s.cfg.Settings.TranscriptionAPIKey == "" {
		return echo.NewHTTPError(http.StatusNotImplemented, "voice transcription is not configured")
	}

	body := http.MaxBytesReader(c.Response(), c.Request().Body, maxVoiceBytes)
	defer func() { _ = body.Close() }()

	target := llm.Target{
		Endpoint: transcriptionEndpoint,
		Model:    transcriptionModel,
		APIKey:   s.cfg.Settings.TranscriptionAPIKey,
	}

	text, err := s.transcriber.Transcribe(c.Request().Context(), target, "clip.webm", body)
	if err != nil {
		return mapServiceError(err)
	}
	if text == "" {
		return c.JSON(http.StatusOK, map[string]string{"text": ""})
	}

	if err := s.meetings.Inject(teamContext(c).TeamID, c.Param("id"), identity(c).UserID, text); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{"text": text})
}

// meetingRaiseHandHandler handles POST /api/v1/meetings/:id/raise-hand. The
// current speaker yields at the next sentence boundary.
func (s *Server) meetingRaiseHandHandler(c *echo.Context) error {
	if err := s.meetings.RaiseHand(teamContext(c).TeamID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusAccepted)
}

// endMeetingHandler handles DELETE /api/v1/meetings/:id.
func (s *Server) endMeetingHandler(c *echo.Context) error {
	if err := s.meetings.End(teamContext(c).TeamID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
