package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// UpsertCredentialRequest is the body of PUT /api/v1/credentials/:serviceId.
type UpsertCredentialRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// listCredentialsHandler handles GET /api/v1/credentials. Values come back
// redacted; plaintext never leaves the vault boundary.
func (s *Server) listCredentialsHandler(c *echo.Context) error {
	creds, err := s.svc.Credentials.List(c.Request().Context(), teamContext(c).TeamID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, creds)
}

// upsertCredentialHandler handles PUT /api/v1/credentials/:serviceId.
func (s *Server) upsertCredentialHandler(c *echo.Context) error {
	var req UpsertCredentialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cred, err := s.svc.Credentials.Upsert(c.Request().Context(), teamContext(c).TeamID, c.Param("serviceId"), req.Type, req.Value)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, cred)
}

// deleteCredentialHandler handles DELETE /api/v1/credentials/:serviceId.
func (s *Server) deleteCredentialHandler(c *echo.Context) error {
	if err := s.svc.Credentials.Delete(c.Request().Context(), teamContext(c).TeamID, c.Param("serviceId")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
