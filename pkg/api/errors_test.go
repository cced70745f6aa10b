package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crewforge/crewd/pkg/kb"
	"github.com/crewforge/crewd/pkg/services"
	"github.com/crewforge/crewd/pkg/workspace"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("failed to get agent: %w", services.ErrNotFound), http.StatusNotFound},
		{"memory not found", kb.ErrMemoryNotFound, http.StatusNotFound},
		{"workspace file not found", workspace.ErrFileNotFound, http.StatusNotFound},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"forbidden", services.ErrForbidden, http.StatusForbidden},
		{"path traversal", workspace.ErrInvalidPath, http.StatusForbidden},
		{"file too large", workspace.ErrTooLarge, http.StatusRequestEntityTooLarge},
		{"insufficient credits", services.ErrInsufficientCredits, http.StatusPaymentRequired},
		{"locked resource", services.ErrLocked, http.StatusLocked},
		{"locked workspace file", workspace.ErrLocked, http.StatusLocked},
		{"rate limited", services.ErrRateLimited, http.StatusTooManyRequests},
		{"concurrent modification", services.ErrConcurrentModification, http.StatusConflict},
		{"provider down", services.ErrProviderUnavailable, http.StatusBadGateway},
		{"validation error", services.NewValidationError("name", "name is required"), http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.wantCode, he.Code)
		})
	}
}

func TestMapServiceErrorHidesOwnership(t *testing.T) {
	// Cross-tenant access surfaces the same 404 as a genuinely missing
	// entity so tenants cannot probe each other's IDs.
	he := mapServiceError(fmt.Errorf("agent belongs to another team: %w", services.ErrNotFound))
	assert.Equal(t, http.StatusNotFound, he.Code)
	assert.Equal(t, "resource not found", he.Message)
}

func TestMapServiceErrorCreditsMessage(t *testing.T) {
	he := mapServiceError(services.ErrInsufficientCredits)
	assert.Contains(t, he.Message, "top up")
}
