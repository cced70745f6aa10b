package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
)

// CreateTeamRequest is the body of POST /api/v1/teams.
type CreateTeamRequest struct {
	Name string `json:"name"`
}

// AddMemberRequest is the body of POST /api/v1/teams/:id/members.
type AddMemberRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// UpsertSubscriptionRequest is the body of PUT /api/v1/teams/:id/subscription.
type UpsertSubscriptionRequest struct {
	Plan      string     `json:"plan"`
	Status    string     `json:"status"`
	PeriodEnd *time.Time `json:"period_end,omitempty"`
}

// createTeamHandler handles POST /api/v1/teams.
func (s *Server) createTeamHandler(c *echo.Context) error {
	var req CreateTeamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	team, err := s.svc.Teams.CreateTeam(c.Request().Context(), req.Name, identity(c).UserID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, team)
}

// listTeamsHandler handles GET /api/v1/teams.
func (s *Server) listTeamsHandler(c *echo.Context) error {
	teams, err := s.svc.Teams.ListTeams(c.Request().Context(), identity(c).UserID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, teams)
}

// getTeamHandler handles GET /api/v1/teams/:id.
func (s *Server) getTeamHandler(c *echo.Context) error {
	team, err := s.svc.Teams.GetTeam(c.Request().Context(), c.Param("id"), identity(c).UserID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, team)
}

// listMembersHandler handles GET /api/v1/teams/:id/members.
func (s *Server) listMembersHandler(c *echo.Context) error {
	members, err := s.svc.Teams.ListMembers(c.Request().Context(), c.Param("id"), identity(c).UserID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, members)
}

// addMemberHandler handles POST /api/v1/teams/:id/members.
func (s *Server) addMemberHandler(c *echo.Context) error {
	var req AddMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	member, err := s.svc.Teams.AddMember(c.Request().Context(), c.Param("id"), identity(c).UserID, req.UserID, req.Role)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, member)
}

// removeMemberHandler handles DELETE /api/v1/teams/:id/members/:userId.
func (s *Server) removeMemberHandler(c *echo.Context) error {
	err := s.svc.Teams.RemoveMember(c.Request().Context(), c.Param("id"), identity(c).UserID, c.Param("userId"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// upsertSubscriptionHandler handles PUT /api/v1/teams/:id/subscription.
func (s *Server) upsertSubscriptionHandler(c *echo.Context) error {
	var req UpsertSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	sub, err := s.svc.Teams.UpsertSubscription(c.Request().Context(), c.Param("id"), req.Plan, req.Status, req.PeriodEnd)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, sub)
}
