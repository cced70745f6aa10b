package api

import (
	"io"
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// LockRequest is the body of POST /api/v1/workspace/lock and /unlock.
type LockRequest struct {
	Path string `json:"path"`
}

// listWorkspaceHandler handles GET /api/v1/workspace/files. Optional ?dir=
// lists a subdirectory.
func (s *Server) listWorkspaceHandler(c *echo.Context) error {
	files, err := s.workspace.List(teamContext(c).TeamID, c.QueryParam("dir"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, files)
}

// readWorkspaceFileHandler handles GET /api/v1/workspace/files/*.
func (s *Server) readWorkspaceFileHandler(c *echo.Context) error {
	data, err := s.workspace.Read(teamContext(c).TeamID, c.Param("*"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.Blob(http.StatusOK, "application/octet-stream", data)
}

// writeWorkspaceFileHandler handles PUT /api/v1/workspace/files/* with the
// file content as the raw request body.
func (s *Server) writeWorkspaceFileHandler(c *echo.Context) error {
	data, err := io.ReadAll(io.LimitReader(c.Request().Body, maxUploadBytes+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read body")
	}
	if len(data) > maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}

	if err := s.workspace.Write(teamContext(c).TeamID, c.Param("*"), workspaceOwner(c), data); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// deleteWorkspaceFileHandler handles DELETE /api/v1/workspace/files/*.
func (s *Server) deleteWorkspaceFileHandler(c *echo.Context) error {
	if err := s.workspace.Delete(teamContext(c).TeamID, c.Param("*"), workspaceOwner(c)); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// lockWorkspaceFileHandler handles POST /api/v1/workspace/lock.
func (s *Server) lockWorkspaceFileHandler(c *echo.Context) error {
	var req LockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := s.workspace.Acquire(teamContext(c).TeamID, req.Path, workspaceOwner(c)); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// unlockWorkspaceFileHandler handles POST /api/v1/workspace/unlock.
func (s *Server) unlockWorkspaceFileHandler(c *echo.Context) error {
	var req LockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	s.workspace.Release(teamContext(c).TeamID, req.Path, workspaceOwner(c))
	return c.NoContent(http.StatusNoContent)
}

func workspaceOwner(c *echo.Context) string {
	return "user:" + identity(c).UserID
}
