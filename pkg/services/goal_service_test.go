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

func TestGoalService(t *testing.T) {
	client := testdb.NewTestClient(t)
	teams := services.NewTeamService(client.Client)
	tasks := services.NewTaskService(client.Client)
	svc := services.NewGoalService(client.Client)
	ctx := context.Background()

	team, err := teams.CreateTeam(ctx, "Goals", "user-1")
	require.NoError(t, err)

	t.Run("progress derives from linked tasks", func(t *testing.T) {
		goal, err := svc.CreateGoal(ctx, team.ID, "Ship v1", "", nil)
		require.NoError(t, err)
		assert.Equal(t, 0, goal.Progress)
		assert.Equal(t, 0, goal.LinkedTasks)

		var ids []string
		for _, title := range []string{"build", "test", "release", "announce"} {
			task, err := tasks.CreateTask(ctx, team.ID, models.CreateTaskRequest{
				Title:  title,
				GoalID: &goal.ID,
			})
			require.NoError(t, err)
			ids = append(ids, task.ID)
		}

		done := "done"
		_, err = tasks.UpdateTask(ctx, team.ID, ids[0], models.UpdateTaskRequest{Status: &done})
		require.NoError(t, err)

		got, err := svc.GetGoal(ctx, team.ID, goal.ID)
		require.NoError(t, err)
		assert.Equal(t, 25, got.Progress)
		assert.Equal(t, 4, got.LinkedTasks)
	})

	t.Run("progress rounds to nearest percent", func(t *testing.T) {
		goal, err := svc.CreateGoal(ctx, team.ID, "Thirds", "", nil)
		require.NoError(t, err)

		var ids []string
		for _, title := range []string{"one", "two", "three"} {
			task, err := tasks.CreateTask(ctx, team.ID, models.CreateTaskRequest{
				Title:  title,
				GoalID: &goal.ID,
			})
			require.NoError(t, err)
			ids = append(ids, task.ID)
		}

		done := "done"
		for _, id := range ids[:2] {
			_, err = tasks.UpdateTask(ctx, team.ID, id, models.UpdateTaskRequest{Status: &done})
			require.NoError(t, err)
		}

		// 2 of 3 is 66.67%, reported as 67 rather than truncated to 66.
		got, err := svc.GetGoal(ctx, team.ID, goal.ID)
		require.NoError(t, err)
		assert.Equal(t, 67, got.Progress)
	})

	t.Run("tasks cannot link to missing goals", func(t *testing.T) {
		missing := "nope"
		_, err := tasks.CreateTask(ctx, team.ID, models.CreateTaskRequest{
			Title:  "orphan",
			GoalID: &missing,
		})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("deleting a goal detaches its tasks", func(t *testing.T) {
		goal, err := svc.CreateGoal(ctx, team.ID, "Doomed", "", nil)
		require.NoError(t, err)
		task, err := tasks.CreateTask(ctx, team.ID, models.CreateTaskRequest{
			Title:  "linked",
			GoalID: &goal.ID,
		})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteGoal(ctx, team.ID, goal.ID))

		got, err := tasks.GetTask(ctx, team.ID, task.ID)
		require.NoError(t, err)
		assert.Nil(t, got.GoalID)
	})

	t.Run("status transitions are validated", func(t *testing.T) {
		goal, err := svc.CreateGoal(ctx, team.ID, "Status", "", nil)
		require.NoError(t, err)

		updated, err := svc.UpdateGoalStatus(ctx, team.ID, goal.ID, "completed")
		require.NoError(t, err)
		assert.Equal(t, "completed", updated.Status)

		_, err = svc.UpdateGoalStatus(ctx, team.ID, goal.ID, "finished")
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("measurable goals flip to achieved at target", func(t *testing.T) {
		mg, err := svc.CreateMeasurableGoal(ctx, team.ID, "mrr", "usd", 1000, nil)
		require.NoError(t, err)
		assert.Equal(t, "active", string(mg.Status))

		mg, err = svc.RecordMetric(ctx, team.ID, mg.ID, 500)
		require.NoError(t, err)
		assert.Equal(t, "active", string(mg.Status))
		assert.Equal(t, 500.0, mg.CurrentValue)

		mg, err = svc.RecordMetric(ctx, team.ID, mg.ID, 1200)
		require.NoError(t, err)
		assert.Equal(t, "achieved", string(mg.Status))
	})
}
