package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/crewforge/crewd/pkg/models"
	"github.com/crewforge/crewd/pkg/services"
)

// CreateGoalRequest is the body of POST /api/v1/goals.
type CreateGoalRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
}

// UpdateGoalStatusRequest is the body of PATCH /api/v1/goals/:id/status.
type UpdateGoalStatusRequest struct {
	Status string `json:"status"`
}

// CreateMeasurableGoalRequest is the body of POST /api/v1/goals/measurable.
type CreateMeasurableGoalRequest struct {
	MetricName  string     `json:"metric_name"`
	Unit        string     `json:"unit,omitempty"`
	TargetValue float64    `json:"target_value"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// RecordMetricRequest is the body of POST /api/v1/goals/measurable/:id/metric.
type RecordMetricRequest struct {
	Value float64 `json:"value"`
}

// listTasksHandler handles GET /api/v1/tasks.
func (s *Server) listTasksHandler(c *echo.Context) error {
	filter := services.TaskFilter{
		Status:          c.QueryParam("status"),
		AssignedAgentID: c.QueryParam("assigned_agent_id"),
		GoalID:          c.QueryParam("goal_id"),
	}

	tasks, err := s.svc.Tasks.ListTasks(c.Request().Context(), teamContext(c).TeamID, filter)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// createTaskHandler handles POST /api/v1/tasks.
func (s *Server) createTaskHandler(c *echo.Context) error {
	var req models.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	task, err := s.svc.Tasks.CreateTask(c.Request().Context(), teamContext(c).TeamID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, task)
}

// getTaskHandler handles GET /api/v1/tasks/:id.
func (s *Server) getTaskHandler(c *echo.Context) error {
	task, err := s.svc.Tasks.GetTask(c.Request().Context(), teamContext(c).TeamID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, task)
}

// updateTaskHandler handles PATCH /api/v1/tasks/:id.
func (s *Server) updateTaskHandler(c *echo.Context) error {
	var req models.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	task, err := s.svc.Tasks.UpdateTask(c.Request().Context(), teamContext(c).TeamID, c.Param("id"), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, task)
}

// deleteTaskHandler handles DELETE /api/v1/tasks/:id.
func (s *Server) deleteTaskHandler(c *echo.Context) error {
	if err := s.svc.Tasks.DeleteTask(c.Request().Context(), teamContext(c).TeamID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// listGoalsHandler handles GET /api/v1/goals.
func (s *Server) listGoalsHandler(c *echo.Context) error {
	goals, err := s.svc.Goals.ListGoals(c.Request().Context(), teamContext(c).TeamID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, goals)
}

// createGoalHandler handles POST /api/v1/goals.
func (s *Server) createGoalHandler(c *echo.Context) error {
	var req CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	goal, err := s.svc.Goals.CreateGoal(c.Request().Context(), teamContext(c).TeamID, req.Title, req.Description, req.TargetDate)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, goal)
}

// getGoalHandler handles GET /api/v1/goals/:id.
func (s *Server) getGoalHandler(c *echo.Context) error {
	goal, err := s.svc.Goals.GetGoal(c.Request().Context(), teamContext(c).TeamID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, goal)
}

// updateGoalStatusHandler handles PATCH /api/v1/goals/:id/status.
func (s *Server) updateGoalStatusHandler(c *echo.Context) error {
	var req UpdateGoalStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	goal, err := s.svc.Goals.UpdateGoalStatus(c.Request().Context(), teamContext(c).TeamID, c.Param("id"), req.Status)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, goal)
}

// deleteGoalHandler handles DELETE /api/v1/goals/:id.
func (s *Server) deleteGoalHandler(c *echo.Context) error {
	if err := s.svc.Goals.DeleteGoal(c.Request().Context(), teamContext(c).TeamID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// listMeasurableGoalsHandler handles GET /api/v1/goals/measurable.
func (s *Server) listMeasurableGoalsHandler(c *echo.Context) error {
	goals, err := s.svc.Goals.ListMeasurableGoals(c.Request().Context(), teamContext(c).TeamID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, goals)
}

// createMeasurableGoalHandler handles POST /api/v1/goals/measurable.
func (s *Server) createMeasurableGoalHandler(c *echo.Context) error {
	var req CreateMeasurableGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	goal, err := s.svc.Goals.CreateMeasurableGoal(c.Request().Context(), teamContext(c).TeamID, req.MetricName, req.Unit, req.TargetValue, req.Deadline)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, goal)
}

// recordMetricHandler handles POST /api/v1/goals/measurable/:id/metric.
func (s *Server) recordMetricHandler(c *echo.Context) error {
	var req RecordMetricRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	goal, err := s.svc.Goals.RecordMetric(c.Request().Context(), teamContext(c).TeamID, c.Param("id"), req.Value)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, goal)
}
