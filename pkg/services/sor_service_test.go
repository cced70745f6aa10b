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

func TestSorService(t *testing.T) {
	client := testdb.NewTestClient(t)
	teams := services.NewTeamService(client.Client)
	svc := services.NewSorService(client.Client)
	ctx := context.Background()

	team, err := teams.CreateTeam(ctx, "Records", "user-1")
	require.NoError(t, err)

	contacts := models.CreateSorTableRequest{
		Name: "Contacts",
		Columns: []models.SorColumn{
			{Name: "name"},
			{Name: "email"},
		},
	}

	t.Run("table names are unique case-insensitively", func(t *testing.T) {
		table, err := svc.CreateTable(ctx, team.ID, contacts)
		require.NoError(t, err)
		assert.Equal(t, "Contacts", table.Name)

		_, err = svc.CreateTable(ctx, team.ID, models.CreateSorTableRequest{
			Name:    "contacts",
			Columns: contacts.Columns,
		})
		assert.ErrorIs(t, err, services.ErrAlreadyExists)

		byName, err := svc.GetTableByName(ctx, team.ID, "CONTACTS")
		require.NoError(t, err)
		assert.Equal(t, table.ID, byName.ID)
	})

	t.Run("column definitions are validated", func(t *testing.T) {
		_, err := svc.CreateTable(ctx, team.ID, models.CreateSorTableRequest{Name: "Empty"})
		assert.True(t, services.IsValidationError(err))

		_, err = svc.CreateTable(ctx, team.ID, models.CreateSorTableRequest{
			Name:    "Dups",
			Columns: []models.SorColumn{{Name: "a"}, {Name: "a"}},
		})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("row data must match the columns", func(t *testing.T) {
		table, err := svc.GetTableByName(ctx, team.ID, "contacts")
		require.NoError(t, err)

		row, err := svc.CreateRow(ctx, team.ID, table.ID, map[string]string{
			"name":  "Dana",
			"email": "dana@example.com",
		})
		require.NoError(t, err)

		_, err = svc.CreateRow(ctx, team.ID, table.ID, map[string]string{"phone": "555"})
		assert.True(t, services.IsValidationError(err))

		updated, err := svc.UpdateRow(ctx, team.ID, table.ID, row.ID, map[string]string{"name": "Dana R"})
		require.NoError(t, err)
		assert.Equal(t, "Dana R", updated.Data["name"])

		rows, err := svc.ListRows(ctx, team.ID, table.ID, 10, 0)
		require.NoError(t, err)
		assert.Len(t, rows, 1)

		require.NoError(t, svc.DeleteRow(ctx, team.ID, table.ID, row.ID))
		assert.ErrorIs(t, svc.DeleteRow(ctx, team.ID, table.ID, row.ID), services.ErrNotFound)
	})

	t.Run("agents need an explicit grant", func(t *testing.T) {
		table, err := svc.GetTableByName(ctx, team.ID, "contacts")
		require.NoError(t, err)

		err = svc.CheckAgentAccess(ctx, team.ID, table.ID, "agent-1", false)
		assert.ErrorIs(t, err, services.ErrForbidden)

		_, err = svc.UpsertPermission(ctx, team.ID, table.ID, models.UpsertSorPermissionRequest{
			AgentID: "agent-1",
			CanRead: true,
		})
		require.NoError(t, err)

		assert.NoError(t, svc.CheckAgentAccess(ctx, team.ID, table.ID, "agent-1", false))
		assert.ErrorIs(t, svc.CheckAgentAccess(ctx, team.ID, table.ID, "agent-1", true), services.ErrForbidden)

		_, err = svc.UpsertPermission(ctx, team.ID, table.ID, models.UpsertSorPermissionRequest{
			AgentID:  "agent-1",
			CanRead:  true,
			CanWrite: true,
		})
		require.NoError(t, err)
		assert.NoError(t, svc.CheckAgentAccess(ctx, team.ID, table.ID, "agent-1", true))
	})

	t.Run("deleting a table removes rows and grants", func(t *testing.T) {
		table, err := svc.CreateTable(ctx, team.ID, models.CreateSorTableRequest{
			Name:    "Doomed",
			Columns: []models.SorColumn{{Name: "v"}},
		})
		require.NoError(t, err)
		_, err = svc.CreateRow(ctx, team.ID, table.ID, map[string]string{"v": "1"})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteTable(ctx, team.ID, table.ID))
		_, err = svc.GetTable(ctx, team.ID, table.ID)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
