package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/crewforge/crewd/pkg/kb"
	"github.com/crewforge/crewd/pkg/llm"
	"github.com/crewforge/crewd/pkg/services"
	"github.com/crewforge/crewd/pkg/workspace"
)

// mapServiceError maps service-layer errors to HTTP error responses.
// Ownership failures surface as 404, never 403.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) || errors.Is(err, kb.ErrMemoryNotFound) ||
		errors.Is(err, kb.ErrDocumentNotFound) || errors.Is(err, workspace.ErrFileNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, kb.ErrUnsupportedFormat) || errors.Is(err, kb.ErrEmptyDocument) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}
	if errors.Is(err, services.ErrForbidden) || errors.Is(err, workspace.ErrInvalidPath) {
		return echo.NewHTTPError(http.StatusForbidden, "operation not permitted")
	}
	if errors.Is(err, workspace.ErrTooLarge) || errors.Is(err, kb.ErrTooLarge) {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}
	if errors.Is(err, services.ErrInsufficientCredits) {
		return echo.NewHTTPError(http.StatusPaymentRequired, "insufficient credits: top up or upgrade your plan")
	}
	if errors.Is(err, services.ErrLocked) || errors.Is(err, workspace.ErrLocked) {
		return echo.NewHTTPError(http.StatusLocked, "file is locked by another owner")
	}
	if errors.Is(err, services.ErrRateLimited) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "rate limited, retry shortly")
	}
	if errors.Is(err, services.ErrConcurrentModification) {
		return echo.NewHTTPError(http.StatusConflict, "resource was modified concurrently")
	}
	if errors.Is(err, services.ErrProviderUnavailable) || llm.IsRetryable(err) {
		return echo.NewHTTPError(http.StatusBadGateway, "model provider unavailable")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
