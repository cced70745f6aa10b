package api

import (
	"io"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/crewforge/crewd/pkg/kb"
	"github.com/crewforge/crewd/pkg/models"
)

// maxUploadBytes caps knowledge-base and workspace uploads.
const maxUploadBytes = kb.MaxUploadBytes

// listDocumentsHandler handles GET /api/v1/kb/documents.
func (s *Server) listDocumentsHandler(c *echo.Context) error {
	docs, err := s.kb.ListDocuments(c.Request().Context(), teamContext(c).TeamID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, docs)
}

// uploadDocumentHandler handles POST /api/v1/kb/documents (multipart form,
// field "file"). Ingestion runs asynchronously; the document starts in
// "processing".
func (s *Server) uploadDocumentHandler(c *echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file field is required")
	}
	if fileHeader.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read upload")
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read upload")
	}
	if len(data) > maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}

	doc, err := s.kb.Upload(c.Request().Context(), teamContext(c).TeamID, fileHeader.Filename, data)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, doc)
}

// getDocumentHandler handles GET /api/v1/kb/documents/:id.
func (s *Server) getDocumentHandler(c *echo.Context) error {
	doc, err := s.kb.GetDocument(c.Request().Context(), teamContext(c).TeamID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, doc)
}

// deleteDocumentHandler handles DELETE /api/v1/kb/documents/:id.
func (s *Server) deleteDocumentHandler(c *echo.Context) error {
	if err := s.kb.DeleteDocument(c.Request().Context(), teamContext(c).TeamID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// searchKBHandler handles POST /api/v1/kb/search.
func (s *Server) searchKBHandler(c *echo.Context) error {
	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	results, err := s.kb.Search(c.Request().Context(), teamContext(c).TeamID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, results)
}
