package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/crewforge/crewd/pkg/models"
)

// listSorTablesHandler handles GET /api/v1/sor/tables.
func (s *Server) listSorTablesHandler(c *echo.Context) error {
	tables, err := s.svc.Sor.ListTables(c.Request().Context(), teamContext(c).TeamID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tables)
}

// createSorTableHandler handles POST /api/v1/sor/tables.
func (s *Server) createSorTableHandler(c *echo.Context) error {
	var req models.CreateSorTableRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	table, err := s.svc.Sor.CreateTable(c.Request().Context(), teamContext(c).TeamID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, table)
}

// getSorTableHandler handles GET /api/v1/sor/tables/:id.
func (s *Server) getSorTableHandler(c *echo.Context) error {
	table, err := s.svc.Sor.GetTable(c.Request().Context(), teamContext(c).TeamID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, table)
}

// deleteSorTableHandler handles DELETE /api/v1/sor/tables/:id.
func (s *Server) deleteSorTableHandler(c *echo.Context) error {
	if err := s.svc.Sor.DeleteTable(c.Request().Context(), teamContext(c).TeamID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// listSorRowsHandler handles GET /api/v1/sor/tables/:id/rows.
func (s *Server) listSorRowsHandler(c *echo.Context) error {
	limit, offset, err := pageParams(c)
	if err != nil {
		return err
	}

	rows, err := s.svc.Sor.ListRows(c.Request().Context(), teamContext(c).TeamID, c.Param("id"), limit, offset)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// createSorRowHandler handles POST /api/v1/sor/tables/:id/rows.
func (s *Server) createSorRowHandler(c *echo.Context) error {
	var req models.CreateSorRowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	row, err := s.svc.Sor.CreateRow(c.Request().Context(), teamContext(c).TeamID, c.Param("id"), req.Data)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, row)
}

// updateSorRowHandler handles PATCH /api/v1/sor/tables/:id/rows/:rowId.
func (s *Server) updateSorRowHandler(c *echo.Context) error {
	rowID, err := strconv.Atoi(c.Param("rowId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid row id")
	}

	var req models.CreateSorRowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	row, err := s.svc.Sor.UpdateRow(c.Request().Context(), teamContext(c).TeamID, c.Param("id"), rowID, req.Data)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}

// deleteSorRowHandler handles DELETE /api/v1/sor/tables/:id/rows/:rowId.
func (s *Server) deleteSorRowHandler(c *echo.Context) error {
	rowID, err := strconv.Atoi(c.Param("rowId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid row id")
	}

	if err := s.svc.Sor.DeleteRow(c.Request().Context(), teamContext(c).TeamID, c.Param("id"), rowID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// listSorPermissionsHandler handles GET /api/v1/sor/tables/:id/permissions.
func (s *Server) listSorPermissionsHandler(c *echo.Context) error {
	perms, err := s.svc.Sor.ListPermissions(c.Request().Context(), teamContext(c).TeamID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, perms)
}

// upsertSorPermissionHandler handles PUT /api/v1/sor/tables/:id/permissions.
func (s *Server) upsertSorPermissionHandler(c *echo.Context) error {
	var req models.UpsertSorPermissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	perm, err := s.svc.Sor.UpsertPermission(c.Request().Context(), teamContext(c).TeamID, c.Param("id"), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, perm)
}

// pageParams parses ?limit= and ?offset= with validation.
func pageParams(c *echo.Context) (limit, offset int, err error) {
	if v := c.QueryParam("limit"); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid offset")
		}
		offset = n
	}
	return limit, offset, nil
}
