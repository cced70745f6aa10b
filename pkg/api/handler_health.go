package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/crewforge/crewd/pkg/auth"
	"github.com/crewforge/crewd/pkg/database"
	"github.com/crewforge/crewd/pkg/models"
	"github.com/crewforge/crewd/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only our own components are checked; external model providers are
// excluded so an upstream outage cannot make the orchestrator restart us.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	_, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}

// identity returns the authenticated caller. The auth middleware guarantees
// it is present on protected routes.
func identity(c *echo.Context) models.Identity {
	ident, _ := auth.IdentityFrom(c.Request().Context())
	return ident
}

// teamContext returns the bound tenant. The team middleware guarantees it
// is present on tenant-scoped routes.
func teamContext(c *echo.Context) models.TeamContext {
	tc, _ := auth.TeamFrom(c.Request().Context())
	return tc
}
