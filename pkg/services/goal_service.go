package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/ent/goal"
	"github.com/crewforge/crewd/ent/measurablegoal"
	"github.com/crewforge/crewd/ent/task"
	"github.com/crewforge/crewd/pkg/models"
)

// GoalService manages qualitative goals and numeric measurable goals.
// Goal progress is derived at read time from linked tasks.
type GoalService struct {
	client *ent.Client
}

// NewGoalService creates a new GoalService
func NewGoalService(client *ent.Client) *GoalService {
	return &GoalService{client: client}
}

// CreateGoal creates an active goal.
func (s *GoalService) CreateGoal(httpCtx context.Context, teamID, title, description string, targetDate *time.Time) (*models.GoalView, error) {
	if title == "" {
		return nil, NewValidationError("title", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	g, err := s.client.Goal.Create().
		SetID(uuid.New().String()).
		SetTeamID(teamID).
		SetTitle(title).
		SetDescription(description).
		SetNillableTargetDate(targetDate).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return s.toView(ctx, g)
}

// GetGoal returns one goal with derived progress.
func (s *GoalService) GetGoal(httpCtx context.Context, teamID, goalID string) (*models.GoalView, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	g, err := s.getScoped(ctx, teamID, goalID)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, g)
}

// ListGoals returns a team's goals, newest first.
func (s *GoalService) ListGoals(httpCtx context.Context, teamID string) ([]*models.GoalView, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	goals, err := s.client.Goal.Query().
		Where(goal.TeamID(teamID)).
		Order(ent.Desc(goal.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	views := make([]*models.GoalView, 0, len(goals))
	for _, g := range goals {
		v, err := s.toView(ctx, g)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// UpdateGoalStatus transitions a goal between active, completed, and
// archived.
func (s *GoalService) UpdateGoalStatus(httpCtx context.Context, teamID, goalID, status string) (*models.GoalView, error) {
	parsed := goal.Status(status)
	if err := goal.StatusValidator(parsed); err != nil {
		return nil, NewValidationError("status", "must be active, completed, or archived")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if _, err := s.getScoped(ctx, teamID, goalID); err != nil {
		return nil, err
	}
	g, err := s.client.Goal.UpdateOneID(goalID).
		SetStatus(parsed).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return s.toView(ctx, g)
}

// DeleteGoal removes a goal and detaches its linked tasks.
func (s *GoalService) DeleteGoal(httpCtx context.Context, teamID, goalID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if _, err := s.getScoped(ctx, teamID, goalID); err != nil {
		return err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Task.Update().
		Where(task.TeamID(teamID), task.GoalID(goalID)).
		ClearGoalID().
		Save(ctx); err != nil {
		return fmt.Errorf("failed to detach tasks: %w", err)
	}
	if err := tx.Goal.DeleteOneID(goalID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return tx.Commit()
}

// CreateMeasurableGoal creates a metric target.
func (s *GoalService) CreateMeasurableGoal(httpCtx context.Context, teamID, metricName, unit string, targetValue float64, deadline *time.Time) (*ent.MeasurableGoal, error) {
	if metricName == "" {
		return nil, NewValidationError("metric_name", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	mg, err := s.client.MeasurableGoal.Create().
		SetID(uuid.New().String()).
		SetTeamID(teamID).
		SetMetricName(metricName).
		SetUnit(unit).
		SetTargetValue(targetValue).
		SetNillableDeadline(deadline).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create measurable goal: %w", err)
	}
	return mg, nil
}

// RecordMetric sets the current value of a measurable goal. Reaching the
// target marks the goal achieved.
func (s *GoalService) RecordMetric(httpCtx context.Context, teamID, goalID string, value float64) (*ent.MeasurableGoal, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	mg, err := s.client.MeasurableGoal.Query().
		Where(measurablegoal.ID(goalID), measurablegoal.TeamID(teamID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get measurable goal: %w", err)
	}

	upd := s.client.MeasurableGoal.UpdateOne(mg).SetCurrentValue(value)
	if mg.Status == measurablegoal.StatusActive && value >= mg.TargetValue {
		upd.SetStatus(measurablegoal.StatusAchieved)
	}
	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record metric: %w", err)
	}
	return updated, nil
}

// ListMeasurableGoals returns a team's metric targets.
func (s *GoalService) ListMeasurableGoals(httpCtx context.Context, teamID string) ([]*ent.MeasurableGoal, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.client.MeasurableGoal.Query().
		Where(measurablegoal.TeamID(teamID)).
		Order(ent.Desc(measurablegoal.FieldCreatedAt)).
		All(ctx)
}

// toView computes progress: done linked tasks over total linked tasks, as a
// whole percentage. Zero linked tasks means zero progress.
func (s *GoalService) toView(ctx context.Context, g *ent.Goal) (*models.GoalView, error) {
	total, err := s.client.Task.Query().
		Where(task.TeamID(g.TeamID), task.GoalID(g.ID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count linked tasks: %w", err)
	}
	progress := 0
	if total > 0 {
		done, err := s.client.Task.Query().
			Where(task.TeamID(g.TeamID), task.GoalID(g.ID), task.StatusEQ(task.StatusDone)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count done tasks: %w", err)
		}
		// Round to nearest whole percent.
		progress = (done*100 + total/2) / total
	}

	return &models.GoalView{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Status:      string(g.Status),
		TargetDate:  g.TargetDate,
		Progress:    progress,
		LinkedTasks: total,
		CreatedAt:   g.CreatedAt,
	}, nil
}

func (s *GoalService) getScoped(ctx context.Context, teamID, goalID string) (*ent.Goal, error) {
	g, err := s.client.Goal.Query().
		Where(goal.ID(goalID), goal.TeamID(teamID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return g, nil
}
