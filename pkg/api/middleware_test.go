package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := securityHeaders()(func(c *echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, h(c))

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.NotEmpty(t, rec.Header().Get("Permissions-Policy"))
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	s := &Server{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/agents", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := s.requireAuth()(func(c *echo.Context) error {
		t.Fatal("next handler should not run")
		return nil
	})

	err := h(c)
	assertHTTPError(t, err, http.StatusUnauthorized, "missing bearer token")
}

func TestRequireTeamRejectsMissingHeader(t *testing.T) {
	s := &Server{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/agents", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := s.requireTeam()(func(c *echo.Context) error {
		t.Fatal("next handler should not run")
		return nil
	})

	err := h(c)
	assertHTTPError(t, err, http.StatusBadRequest, "X-Team-Id header is required")
}

func TestBearerToken(t *testing.T) {
	e := echo.New()

	t.Run("authorization header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer abc123")
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, "abc123", bearerToken(c))
	})

	t.Run("query parameter fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ws?token=xyz", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, "xyz", bearerToken(c))
	})

	t.Run("non-bearer scheme ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic abc123")
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, "", bearerToken(c))
	})
}
