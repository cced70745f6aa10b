package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// listApprovalsHandler handles GET /api/v1/approvals. Optional ?status=
// filters by state.
func (s *Server) listApprovalsHandler(c *echo.Context) error {
	approvals, err := s.svc.Approvals.ListApprovals(c.Request().Context(), teamContext(c).TeamID, c.QueryParam("status"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, approvals)
}

// approveHandler handles POST /api/v1/approvals/:id/approve.
func (s *Server) approveHandler(c *echo.Context) error {
	return s.resolveApproval(c, true)
}

// rejectHandler handles POST /api/v1/approvals/:id/reject.
func (s *Server) rejectHandler(c *echo.Context) error {
	return s.resolveApproval(c, false)
}

func (s *Server) resolveApproval(c *echo.Context, approve bool) error {
	approval, err := s.svc.Approvals.Resolve(c.Request().Context(), teamContext(c).TeamID, c.Param("id"), identity(c).UserID, approve)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, approval)
}
