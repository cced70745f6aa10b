package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/ent/goal"
	"github.com/crewforge/crewd/ent/task"
	"github.com/crewforge/crewd/pkg/events"
	"github.com/crewforge/crewd/pkg/models"
)

// TaskService manages the task board: CRUD, dependency graph, and the
// derived blocked flag.
type TaskService struct {
	client    *ent.Client
	publisher EventPublisher
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// SetEventPublisher registers the real-time event hook.
func (s *TaskService) SetEventPublisher(p EventPublisher) {
	s.publisher = p
}

// publishUpdated announces a task change so boards refresh live.
func (s *TaskService) publishUpdated(ctx context.Context, t *ent.Task) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishTaskUpdated(ctx, events.TaskUpdatedPayload{
		Type:      events.EventTypeTaskUpdated,
		TeamID:    t.TeamID,
		TaskID:    t.ID,
		Status:    string(t.Status),
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}); err != nil {
		slog.Warn("Failed to publish task event", "task_id", t.ID, "error", err)
	}
}

// TaskFilter narrows ListTasks.
type TaskFilter struct {
	Status          string
	AssignedAgentID string
	GoalID          string
}

// CreateTask creates a task after validating references and the dependency
// graph.
func (s *TaskService) CreateTask(httpCtx context.Context, teamID string, req models.CreateTaskRequest) (*models.TaskView, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	status := task.StatusTodo
	if req.Status != "" {
		status = task.Status(req.Status)
		if err := task.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", "must be backlog, todo, in_progress, review, or done")
		}
	}
	priority := task.PriorityMedium
	if req.Priority != "" {
		priority = task.Priority(req.Priority)
		if err := task.PriorityValidator(priority); err != nil {
			return nil, NewValidationError("priority", "must be low, medium, high, or urgent")
		}
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	id := uuid.New().String()
	if err := s.validateReferences(ctx, teamID, id, req.ParentTaskID, req.GoalID, req.DependsOn); err != nil {
		return nil, err
	}

	create := s.client.Task.Create().
		SetID(id).
		SetTeamID(teamID).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetStatus(status).
		SetPriority(priority).
		SetNillableAssignedAgentID(req.AssignedAgentID).
		SetNillableParentTaskID(req.ParentTaskID).
		SetNillableGoalID(req.GoalID).
		SetNillableDeadline(req.Deadline)
	if req.DependsOn != nil {
		create.SetDependsOn(req.DependsOn)
	}

	t, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	s.publishUpdated(ctx, t)
	return s.toView(ctx, t)
}

// GetTask returns one task with its derived blocked flag.
func (s *TaskService) GetTask(httpCtx context.Context, teamID, taskID string) (*models.TaskView, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	t, err := s.getScoped(ctx, teamID, taskID)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, t)
}

// ListTasks returns a team's tasks, newest first, optionally filtered.
func (s *TaskService) ListTasks(httpCtx context.Context, teamID string, filter TaskFilter) ([]*models.TaskView, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	q := s.client.Task.Query().Where(task.TeamID(teamID))
	if filter.Status != "" {
		status := task.Status(filter.Status)
		if err := task.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", "unknown status filter")
		}
		q = q.Where(task.StatusEQ(status))
	}
	if filter.AssignedAgentID != "" {
		q = q.Where(task.AssignedAgentID(filter.AssignedAgentID))
	}
	if filter.GoalID != "" {
		q = q.Where(task.GoalID(filter.GoalID))
	}

	tasks, err := q.Order(ent.Desc(task.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	// Resolve blocked flags in one pass over the dependency closure.
	doneByID, err := s.doneLookup(ctx, teamID, tasks)
	if err != nil {
		return nil, err
	}
	views := make([]*models.TaskView, len(tasks))
	for i, t := range tasks {
		views[i] = mapTask(t, isBlocked(t, doneByID))
	}
	return views, nil
}

// UpdateTask applies a partial update, re-validating graph edges whenever
// they change.
func (s *TaskService) UpdateTask(httpCtx context.Context, teamID, taskID string, req models.UpdateTaskRequest) (*models.TaskView, error) {
	if req.Title != nil && *req.Title == "" {
		return nil, NewValidationError("title", "cannot be empty")
	}
	if req.Status != nil {
		if err := task.StatusValidator(task.Status(*req.Status)); err != nil {
			return nil, NewValidationError("status", "must be backlog, todo, in_progress, review, or done")
		}
	}
	if req.Priority != nil {
		if err := task.PriorityValidator(task.Priority(*req.Priority)); err != nil {
			return nil, NewValidationError("priority", "must be low, medium, high, or urgent")
		}
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if _, err := s.getScoped(ctx, teamID, taskID); err != nil {
		return nil, err
	}
	if req.ParentTaskID != nil || req.GoalID != nil || req.DependsOn != nil {
		if err := s.validateReferences(ctx, teamID, taskID, req.ParentTaskID, req.GoalID, req.DependsOn); err != nil {
			return nil, err
		}
	}

	upd := s.client.Task.UpdateOneID(taskID).
		SetNillableTitle(req.Title).
		SetNillableDescription(req.Description).
		SetNillableAssignedAgentID(req.AssignedAgentID).
		SetNillableParentTaskID(req.ParentTaskID).
		SetNillableGoalID(req.GoalID).
		SetNillableDeadline(req.Deadline)
	if req.Status != nil {
		upd.SetStatus(task.Status(*req.Status))
	}
	if req.Priority != nil {
		upd.SetPriority(task.Priority(*req.Priority))
	}
	if req.DependsOn != nil {
		upd.SetDependsOn(req.DependsOn)
	}

	t, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	s.publishUpdated(ctx, t)
	return s.toView(ctx, t)
}

// DeleteTask removes a task. Other tasks' depends_on entries pointing at it
// are treated as satisfied once the row is gone.
func (s *TaskService) DeleteTask(httpCtx context.Context, teamID, taskID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if _, err := s.getScoped(ctx, teamID, taskID); err != nil {
		return err
	}
	return s.client.Task.DeleteOneID(taskID).Exec(ctx)
}

// validateReferences checks parent/goal/dependency references exist within
// the tenant and that neither the parent chain nor the dependency graph
// gains a cycle through taskID.
func (s *TaskService) validateReferences(ctx context.Context, teamID, taskID string, parentID, goalID *string, dependsOn []string) error {
	if parentID != nil {
		if *parentID == taskID {
			return NewValidationError("parent_task_id", "task cannot be its own parent")
		}
		if err := s.checkParentCycle(ctx, teamID, taskID, *parentID); err != nil {
			return err
		}
	}
	if goalID != nil {
		exists, err := s.client.Goal.Query().
			Where(goal.ID(*goalID), goal.TeamID(teamID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check goal: %w", err)
		}
		if !exists {
			return NewValidationError("goal_id", "goal not found")
		}
	}
	if len(dependsOn) > 0 {
		if err := s.checkDependencyCycle(ctx, teamID, taskID, dependsOn); err != nil {
			return err
		}
	}
	return nil
}

// checkParentCycle walks up from candidate parent to the root, failing if
// the walk reaches taskID.
func (s *TaskService) checkParentCycle(ctx context.Context, teamID, taskID, parentID string) error {
	seen := map[string]bool{taskID: true}
	current := parentID
	for current != "" {
		if seen[current] {
			return NewValidationError("parent_task_id", "would create a cycle")
		}
		seen[current] = true
		p, err := s.client.Task.Query().
			Where(task.ID(current), task.TeamID(teamID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return NewValidationError("parent_task_id", "parent task not found")
			}
			return fmt.Errorf("failed to walk parent chain: %w", err)
		}
		if p.ParentTaskID == nil {
			return nil
		}
		current = *p.ParentTaskID
	}
	return nil
}

// checkDependencyCycle does a DFS over depends_on edges starting from the
// new dependency set, failing if taskID is reachable.
func (s *TaskService) checkDependencyCycle(ctx context.Context, teamID, taskID string, dependsOn []string) error {
	visited := map[string]bool{}
	stack := append([]string{}, dependsOn...)
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current == taskID {
			return NewValidationError("depends_on", "would create a cycle")
		}
		if visited[current] {
			continue
		}
		visited[current] = true
		dep, err := s.client.Task.Query().
			Where(task.ID(current), task.TeamID(teamID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return NewValidationError("depends_on", fmt.Sprintf("task %s not found", current))
			}
			return fmt.Errorf("failed to walk dependency graph: %w", err)
		}
		stack = append(stack, dep.DependsOn...)
	}
	return nil
}

// doneLookup returns status==done per task ID for every task in the list
// plus every dependency referenced from it.
func (s *TaskService) doneLookup(ctx context.Context, teamID string, tasks []*ent.Task) (map[string]bool, error) {
	doneByID := make(map[string]bool, len(tasks))
	var missing []string
	for _, t := range tasks {
		doneByID[t.ID] = t.Status == task.StatusDone
	}
	for _, t := range tasks {
		for _, dep := range t.DependsOn {
			if _, ok := doneByID[dep]; !ok {
				missing = append(missing, dep)
			}
		}
	}
	if len(missing) > 0 {
		deps, err := s.client.Task.Query().
			Where(task.IDIn(missing...), task.TeamID(teamID)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load dependencies: %w", err)
		}
		for _, d := range deps {
			doneByID[d.ID] = d.Status == task.StatusDone
		}
	}
	return doneByID, nil
}

func (s *TaskService) toView(ctx context.Context, t *ent.Task) (*models.TaskView, error) {
	doneByID, err := s.doneLookup(ctx, t.TeamID, []*ent.Task{t})
	if err != nil {
		return nil, err
	}
	return mapTask(t, isBlocked(t, doneByID)), nil
}

// isBlocked: a task is blocked while any dependency that still exists is not
// done. Deleted dependencies do not block.
func isBlocked(t *ent.Task, doneByID map[string]bool) bool {
	if t.Status == task.StatusDone {
		return false
	}
	for _, dep := range t.DependsOn {
		done, exists := doneByID[dep]
		if exists && !done {
			return true
		}
	}
	return false
}

func mapTask(t *ent.Task, blocked bool) *models.TaskView {
	return &models.TaskView{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Status:          string(t.Status),
		Priority:        string(t.Priority),
		AssignedAgentID: t.AssignedAgentID,
		ParentTaskID:    t.ParentTaskID,
		GoalID:          t.GoalID,
		Deadline:        t.Deadline,
		DependsOn:       t.DependsOn,
		Blocked:         blocked,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (s *TaskService) getScoped(ctx context.Context, teamID, taskID string) (*ent.Task, error) {
	t, err := s.client.Task.Query().
		Where(task.ID(taskID), task.TeamID(teamID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}
