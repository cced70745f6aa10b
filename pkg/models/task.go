package models

import "time"

// CreateTaskRequest is the body of POST /api/v1/tasks.
type CreateTaskRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Status          string     `json:"status,omitempty"`
	Priority        string     `json:"priority,omitempty"`
	AssignedAgentID *string    `json:"assigned_agent_id,omitempty"`
	ParentTaskID    *string    `json:"parent_task_id,omitempty"`
	GoalID          *string    `json:"goal_id,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	DependsOn       []string   `json:"depends_on,omitempty"`
}

// UpdateTaskRequest is the body of PATCH /api/v1/tasks/:id.
type UpdateTaskRequest struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Status          *string    `json:"status,omitempty"`
	Priority        *string    `json:"priority,omitempty"`
	AssignedAgentID *string    `json:"assigned_agent_id,omitempty"`
	ParentTaskID    *string    `json:"parent_task_id,omitempty"`
	GoalID          *string    `json:"goal_id,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	DependsOn       []string   `json:"depends_on,omitempty"`
}

// TaskView is a task with its derived blocked flag.
type TaskView struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	AssignedAgentID *string    `json:"assigned_agent_id,omitempty"`
	ParentTaskID    *string    `json:"parent_task_id,omitempty"`
	GoalID          *string    `json:"goal_id,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	DependsOn       []string   `json:"depends_on,omitempty"`
	Blocked         bool       `json:"blocked"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// GoalView is a goal with its derived progress percentage.
type GoalView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	Progress    int        `json:"progress"`
	LinkedTasks int        `json:"linked_tasks"`
	CreatedAt   time.Time  `json:"created_at"`
}
