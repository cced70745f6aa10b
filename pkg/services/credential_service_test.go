package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewd/pkg/llm"
	"github.com/crewforge/crewd/pkg/services"
	"github.com/crewforge/crewd/pkg/vault"
	testdb "github.com/crewforge/crewd/test/database"
)

type recordingRouter struct {
	invalidated []string
}

func (r *recordingRouter) Invalidate(teamID string) {
	r.invalidated = append(r.invalidated, teamID)
}

func TestCredentialService(t *testing.T) {
	client := testdb.NewTestClient(t)
	teams := services.NewTeamService(client.Client)
	v, err := vault.New("")
	require.NoError(t, err)
	router := &recordingRouter{}
	svc := services.NewCredentialService(client.Client, v, router)
	ctx := context.Background()

	team, err := teams.CreateTeam(ctx, "Secrets", "user-1")
	require.NoError(t, err)

	t.Run("upsert stores and redacts", func(t *testing.T) {
		view, err := svc.Upsert(ctx, team.ID, "openai", "", "sk-first")
		require.NoError(t, err)
		assert.Equal(t, "openai", view.ServiceID)
		assert.Equal(t, "api_key", view.CredentialType)
		assert.NotContains(t, view.Value, "sk-first")

		// Replacing keeps one row per (team, service).
		_, err = svc.Upsert(ctx, team.ID, "openai", "api_key", "sk-second")
		require.NoError(t, err)
		list, err := svc.List(ctx, team.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.NotContains(t, list[0].Value, "sk-second")
	})

	t.Run("Get returns the decrypted value", func(t *testing.T) {
		value, err := svc.Get(ctx, team.ID, "openai")
		require.NoError(t, err)
		assert.Equal(t, "sk-second", value)

		_, err = svc.Get(ctx, team.ID, "anthropic")
		assert.ErrorIs(t, err, llm.ErrCredentialNotFound)
	})

	t.Run("changes invalidate cached resolutions", func(t *testing.T) {
		before := len(router.invalidated)
		_, err := svc.Upsert(ctx, team.ID, "groq", "", "gsk-1")
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ctx, team.ID, "groq"))
		assert.Len(t, router.invalidated, before+2)

		assert.ErrorIs(t, svc.Delete(ctx, team.ID, "groq"), services.ErrNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.Upsert(ctx, team.ID, "", "", "value")
		assert.True(t, services.IsValidationError(err))
		_, err = svc.Upsert(ctx, team.ID, "svc", "", "")
		assert.True(t, services.IsValidationError(err))
	})
}
