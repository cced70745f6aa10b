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

func strPtr(s string) *string { return &s }

func TestTaskService(t *testing.T) {
	client := testdb.NewTestClient(t)
	teams := services.NewTeamService(client.Client)
	svc := services.NewTaskService(client.Client)
	ctx := context.Background()

	team, err := teams.CreateTeam(ctx, "Tasks", "user-1")
	require.NoError(t, err)
	otherTeam, err := teams.CreateTeam(ctx, "Other", "user-2")
	require.NoError(t, err)

	t.Run("create applies defaults", func(t *testing.T) {
		task, err := svc.CreateTask(ctx, team.ID, models.CreateTaskRequest{Title: "Write docs"})
		require.NoError(t, err)
		assert.Equal(t, "todo", task.Status)
		assert.Equal(t, "medium", task.Priority)
		assert.False(t, task.Blocked)
	})

	t.Run("create validates enums", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, team.ID, models.CreateTaskRequest{Title: "x", Status: "later"})
		assert.True(t, services.IsValidationError(err))

		_, err = svc.CreateTask(ctx, team.ID, models.CreateTaskRequest{Title: "x", Priority: "asap"})
		assert.True(t, services.IsValidationError(err))

		_, err = svc.CreateTask(ctx, team.ID, models.CreateTaskRequest{})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("blocked until dependencies are done", func(t *testing.T) {
		dep, err := svc.CreateTask(ctx, team.ID, models.CreateTaskRequest{Title: "dep"})
		require.NoError(t, err)
		blocked, err := svc.CreateTask(ctx, team.ID, models.CreateTaskRequest{
			Title:     "blocked",
			DependsOn: []string{dep.ID},
		})
		require.NoError(t, err)
		assert.True(t, blocked.Blocked)

		_, err = svc.UpdateTask(ctx, team.ID, dep.ID, models.UpdateTaskRequest{Status: strPtr("done")})
		require.NoError(t, err)

		got, err := svc.GetTask(ctx, team.ID, blocked.ID)
		require.NoError(t, err)
		assert.False(t, got.Blocked)
	})

	t.Run("deleted dependencies no longer block", func(t *testing.T) {
		dep, err := svc.CreateTask(ctx, team.ID, models.CreateTaskRequest{Title: "doomed dep"})
		require.NoError(t, err)
		blocked, err := svc.CreateTask(ctx, team.ID, models.CreateTaskRequest{
			Title:     "waiting",
			DependsOn: []string{dep.ID},
		})
		require.NoError(t, err)
		assert.True(t, blocked.Blocked)

		require.NoError(t, svc.DeleteTask(ctx, team.ID, dep.ID))

		got, err := svc.GetTask(ctx, team.ID, blocked.ID)
		require.NoError(t, err)
		assert.False(t, got.Blocked)
	})

	t.Run("parent chain cycles are rejected", func(t *testing.T) {
		a, err := svc.CreateTask(ctx, team.ID, models.CreateTaskRequest{Title: "a"})
		require.NoError(t, err)
		b, err := svc.CreateTask(ctx, team.ID, models.CreateTaskRequest{Title: "b", ParentTaskID: &a.ID})
		require.NoError(t, err)

		_, err = svc.UpdateTask(ctx, team.ID, a.ID, models.UpdateTaskRequest{ParentTaskID: &b.ID})
		assert.True(t, services.IsValidationError(err))

		_, err = svc.UpdateTask(ctx, team.ID, a.ID, models.UpdateTaskRequest{ParentTaskID: &a.ID})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("dependency cycles are rejected", func(t *testing.T) {
		a, err := svc.CreateTask(ctx, team.ID, models.CreateTaskRequest{Title: "dep-a"})
		require.NoError(t, err)
		b, err := svc.CreateTask(ctx, team.ID, models.CreateTaskRequest{Title: "dep-b", DependsOn: []string{a.ID}})
		require.NoError(t, err)

		_, err = svc.UpdateTask(ctx, team.ID, a.ID, models.UpdateTaskRequest{DependsOn: []string{b.ID}})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("list filters by status", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, team.ID, models.CreateTaskRequest{Title: "backlog item", Status: "backlog"})
		require.NoError(t, err)

		tasks, err := svc.ListTasks(ctx, team.ID, services.TaskFilter{Status: "backlog"})
		require.NoError(t, err)
		require.NotEmpty(t, tasks)
		for _, task := range tasks {
			assert.Equal(t, "backlog", task.Status)
		}
	})

	t.Run("tenant isolation", func(t *testing.T) {
		task, err := svc.CreateTask(ctx, team.ID, models.CreateTaskRequest{Title: "mine"})
		require.NoError(t, err)

		_, err = svc.GetTask(ctx, otherTeam.ID, task.ID)
		assert.ErrorIs(t, err, services.ErrNotFound)

		_, err = svc.CreateTask(ctx, otherTeam.ID, models.CreateTaskRequest{
			Title:     "cross-tenant dep",
			DependsOn: []string{task.ID},
		})
		assert.True(t, services.IsValidationError(err))
	})
}
