package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewd/pkg/auth"
	"github.com/crewforge/crewd/pkg/config"
	"github.com/crewforge/crewd/pkg/models"
)

// These tests cover parameter validation only (returns before hitting any
// service). Happy paths are covered by the service and e2e tests that have a
// real database behind them.

func newTestContext(method, target, body string) (*echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func assertHTTPError(t *testing.T, err error, wantCode int, wantMsg string) {
	t.Helper()
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected echo.HTTPError")
	assert.Equal(t, wantCode, he.Code)
	if wantMsg != "" {
		assert.Contains(t, he.Message, wantMsg)
	}
}

func TestListMessagesHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name   string
		query  string
		errMsg string
	}{
		{"non-numeric before", "before=abc", "invalid before cursor"},
		{"negative before", "before=-5", "invalid before cursor"},
		{"non-numeric limit", "limit=abc", "invalid limit"},
		{"negative limit", "limit=-1", "invalid limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodGet, "/api/v1/channels/ch-1/messages?"+tt.query, "")
			err := s.listMessagesHandler(c)
			assertHTTPError(t, err, http.StatusBadRequest, tt.errMsg)
		})
	}
}

func TestMarkNotificationReadHandler_Validation(t *testing.T) {
	s := &Server{}

	c, _ := newTestContext(http.MethodPost, "/api/v1/notifications/abc/read", "")
	err := s.markNotificationReadHandler(c)
	assertHTTPError(t, err, http.StatusBadRequest, "invalid notification id")
}

func TestListNotificationsHandler_Validation(t *testing.T) {
	s := &Server{}

	c, _ := newTestContext(http.MethodGet, "/api/v1/notifications?limit=nope", "")
	err := s.listNotificationsHandler(c)
	assertHTTPError(t, err, http.StatusBadRequest, "invalid limit")
}

func TestSorRowHandlers_Validation(t *testing.T) {
	s := &Server{}

	t.Run("non-numeric row id on update", func(t *testing.T) {
		c, _ := newTestContext(http.MethodPatch, "/api/v1/sor/tables/t-1/rows/x", `{"data":{}}`)
		err := s.updateSorRowHandler(c)
		assertHTTPError(t, err, http.StatusBadRequest, "invalid row id")
	})

	t.Run("non-numeric row id on delete", func(t *testing.T) {
		c, _ := newTestContext(http.MethodDelete, "/api/v1/sor/tables/t-1/rows/x", "")
		err := s.deleteSorRowHandler(c)
		assertHTTPError(t, err, http.StatusBadRequest, "invalid row id")
	})

	t.Run("invalid limit on list", func(t *testing.T) {
		c, _ := newTestContext(http.MethodGet, "/api/v1/sor/tables/t-1/rows?limit=abc", "")
		err := s.listSorRowsHandler(c)
		assertHTTPError(t, err, http.StatusBadRequest, "invalid limit")
	})

	t.Run("negative offset on list", func(t *testing.T) {
		c, _ := newTestContext(http.MethodGet, "/api/v1/sor/tables/t-1/rows?offset=-2", "")
		err := s.listSorRowsHandler(c)
		assertHTTPError(t, err, http.StatusBadRequest, "invalid offset")
	})
}

func TestAgentChatHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name string
		body string
	}{
		{"empty message", `{"message":""}`},
		{"whitespace message", `{"message":"   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, "/api/v1/agents/a-1/chat", tt.body)
			err := s.agentChatHandler(c)
			assertHTTPError(t, err, http.StatusBadRequest, "message is required")
		})
	}
}

func TestDeleteAgentHandler_RequiresAdmin(t *testing.T) {
	s := &Server{}

	for _, role := range []models.Role{models.RoleViewer, models.RoleMember} {
		t.Run(string(role), func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/agents/a-1", nil)
			ctx := auth.WithTeam(req.Context(), models.TeamContext{TeamID: "team-1", Role: role})
			req = req.WithContext(ctx)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := s.deleteAgentHandler(c)
			assertHTTPError(t, err, http.StatusForbidden, "")
		})
	}
}

func TestMeetingMessageHandler_Validation(t *testing.T) {
	s := &Server{}

	c, _ := newTestContext(http.MethodPost, "/api/v1/meetings/m-1/message", `{"content":"  "}`)
	err := s.meetingMessageHandler(c)
	assertHTTPError(t, err, http.StatusBadRequest, "content is required")
}

func TestMeetingVoiceHandler_NotConfigured(t *testing.T) {
	s := &Server{cfg: &config.Config{}}

	c, _ := newTestContext(http.MethodPost, "/api/v1/meetings/m-1/voice", "")
	err := s.meetingVoiceHandler(c)
	assertHTTPError(t, err, http.StatusNotImplemented, "not configured")
}

func TestStartMeetingHandler_TeamMismatch(t *testing.T) {
	// The :id path segment must name the bound tenant. A mismatch is a 404,
	// not a 403, so other teams' IDs cannot be probed.
	s := &Server{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams/other-team/meetings/meet-and-greet", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	ctx := auth.WithTeam(req.Context(), models.TeamContext{TeamID: "team-1"})
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.startMeetingHandler(c)
	assertHTTPError(t, err, http.StatusNotFound, "team not found")
}

func TestListActivityHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name   string
		query  string
		errMsg string
	}{
		{"bad since", "since=2024-01-01", "RFC3339"},
		{"bad limit", "limit=x", "invalid limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodGet, "/api/v1/activity?"+tt.query, "")
			err := s.listActivityHandler(c)
			assertHTTPError(t, err, http.StatusBadRequest, tt.errMsg)
		})
	}
}

func TestUploadDocumentHandler_RequiresFile(t *testing.T) {
	s := &Server{}

	c, _ := newTestContext(http.MethodPost, "/api/v1/kb/documents", "")
	err := s.uploadDocumentHandler(c)
	assertHTTPError(t, err, http.StatusBadRequest, "file field is required")
}
