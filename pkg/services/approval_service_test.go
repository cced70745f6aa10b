package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewd/pkg/services"
	testdb "github.com/crewforge/crewd/test/database"
)

func TestApprovalService(t *testing.T) {
	client := testdb.NewTestClient(t)
	teams := services.NewTeamService(client.Client)
	svc := services.NewApprovalService(client.Client)
	ctx := context.Background()

	team, err := teams.CreateTeam(ctx, "Reviews", "user-1")
	require.NoError(t, err)

	t.Run("lifecycle", func(t *testing.T) {
		a, err := svc.CreateApproval(ctx, team.ID, "agent-1", "send_external_email", "to: ceo@example.com", "high")
		require.NoError(t, err)
		assert.Equal(t, "pending", string(a.Status))

		pending, err := svc.PendingFor(ctx, team.ID, "agent-1")
		require.NoError(t, err)
		require.Len(t, pending, 1)

		resolved, err := svc.Resolve(ctx, team.ID, a.ID, "user-1", true)
		require.NoError(t, err)
		assert.Equal(t, "approved", string(resolved.Status))
		require.NotNil(t, resolved.ResolvedBy)
		assert.Equal(t, "user-1", *resolved.ResolvedBy)
		assert.NotNil(t, resolved.ResolvedAt)

		pending, err = svc.PendingFor(ctx, team.ID, "agent-1")
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("resolution is terminal", func(t *testing.T) {
		a, err := svc.CreateApproval(ctx, team.ID, "agent-1", "delete_file", "", "")
		require.NoError(t, err)

		_, err = svc.Resolve(ctx, team.ID, a.ID, "user-1", false)
		require.NoError(t, err)

		_, err = svc.Resolve(ctx, team.ID, a.ID, "user-2", true)
		assert.ErrorIs(t, err, services.ErrConcurrentModification)

		got, err := svc.GetApproval(ctx, team.ID, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "rejected", string(got.Status))
	})

	t.Run("list filters by status", func(t *testing.T) {
		all, err := svc.ListApprovals(ctx, team.ID, "")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(all), 2)

		rejected, err := svc.ListApprovals(ctx, team.ID, "rejected")
		require.NoError(t, err)
		for _, a := range rejected {
			assert.Equal(t, "rejected", string(a.Status))
		}

		_, err = svc.ListApprovals(ctx, team.ID, "maybe")
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.CreateApproval(ctx, team.ID, "agent-1", "", "", "")
		assert.True(t, services.IsValidationError(err))

		_, err = svc.CreateApproval(ctx, team.ID, "agent-1", "x", "", "extreme")
		assert.True(t, services.IsValidationError(err))
	})
}
