package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewd/pkg/models"
	"github.com/crewforge/crewd/pkg/services"
	testdb "github.com/crewforge/crewd/test/database"
)

func TestTeamService(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewTeamService(client.Client)
	ctx := context.Background()

	t.Run("CreateTeam makes creator an admin", func(t *testing.T) {
		team, err := svc.CreateTeam(ctx, "Acme", "user-1")
		require.NoError(t, err)
		assert.Equal(t, "Acme", team.Name)
		assert.Equal(t, "user-1", team.CreatedBy)

		tc, err := svc.ResolveContext(ctx, team.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, tc.Role)
		assert.False(t, tc.HasSubscription)
		assert.Equal(t, 0, tc.CreditsBalance)
	})

	t.Run("CreateTeam validates input", func(t *testing.T) {
		_, err := svc.CreateTeam(ctx, "", "user-1")
		assert.True(t, services.IsValidationError(err))

		_, err = svc.CreateTeam(ctx, "Acme", "")
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("non-members cannot see the team", func(t *testing.T) {
		team, err := svc.CreateTeam(ctx, "Hidden", "owner-1")
		require.NoError(t, err)

		_, err = svc.GetTeam(ctx, team.ID, "stranger")
		assert.ErrorIs(t, err, services.ErrNotFound)

		_, err = svc.ResolveContext(ctx, team.ID, "stranger")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("only admins manage membership", func(t *testing.T) {
		team, err := svc.CreateTeam(ctx, "Managed", "admin-1")
		require.NoError(t, err)

		_, err = svc.AddMember(ctx, team.ID, "admin-1", "member-1", "member")
		require.NoError(t, err)

		_, err = svc.AddMember(ctx, team.ID, "member-1", "member-2", "member")
		assert.ErrorIs(t, err, services.ErrForbidden)

		_, err = svc.AddMember(ctx, team.ID, "admin-1", "member-1", "sudo")
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("AddMember upserts the role", func(t *testing.T) {
		team, err := svc.CreateTeam(ctx, "Upsert", "admin-1")
		require.NoError(t, err)

		_, err = svc.AddMember(ctx, team.ID, "admin-1", "member-1", "viewer")
		require.NoError(t, err)
		m, err := svc.AddMember(ctx, team.ID, "admin-1", "member-1", "member")
		require.NoError(t, err)
		assert.Equal(t, "member", string(m.Role))

		members, err := svc.ListMembers(ctx, team.ID, "admin-1")
		require.NoError(t, err)
		assert.Len(t, members, 2)
	})

	t.Run("last admin cannot be removed", func(t *testing.T) {
		team, err := svc.CreateTeam(ctx, "Solo", "admin-1")
		require.NoError(t, err)

		err = svc.RemoveMember(ctx, team.ID, "admin-1", "admin-1")
		assert.True(t, services.IsValidationError(err))

		_, err = svc.AddMember(ctx, team.ID, "admin-1", "admin-2", "admin")
		require.NoError(t, err)
		err = svc.RemoveMember(ctx, team.ID, "admin-1", "admin-1")
		assert.NoError(t, err)
	})

	t.Run("ListTeams returns only the user's teams", func(t *testing.T) {
		a, err := svc.CreateTeam(ctx, "ListA", "list-user")
		require.NoError(t, err)
		_, err = svc.CreateTeam(ctx, "ListB", "other-user")
		require.NoError(t, err)

		teams, err := svc.ListTeams(ctx, "list-user")
		require.NoError(t, err)
		require.Len(t, teams, 1)
		assert.Equal(t, a.ID, teams[0].ID)
	})

	t.Run("subscription state flows into the tenant context", func(t *testing.T) {
		team, err := svc.CreateTeam(ctx, "Subscribed", "admin-1")
		require.NoError(t, err)

		_, err = svc.UpsertSubscription(ctx, team.ID, "pro", "active", nil)
		require.NoError(t, err)

		tc, err := svc.ResolveContext(ctx, team.ID, "admin-1")
		require.NoError(t, err)
		assert.True(t, tc.HasSubscription)

		_, err = svc.UpsertSubscription(ctx, team.ID, "pro", "canceled", nil)
		require.NoError(t, err)

		tc, err = svc.ResolveContext(ctx, team.ID, "admin-1")
		require.NoError(t, err)
		assert.False(t, tc.HasSubscription)
	})
}
