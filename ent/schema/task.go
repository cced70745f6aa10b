package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// parent_task_id and depends_on must stay acyclic; enforced by TaskService.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("team_id").
			Immutable(),
		field.String("title").
			NotEmpty(),
		field.Text("description").
			Default(""),
		field.Enum("status").
			Values("backlog", "todo", "in_progress", "review", "done").
			Default("todo"),
		field.Enum("priority").
			Values("low", "medium", "high", "urgent").
			Default("medium"),
		field.String("assigned_agent_id").
			Optional().
			Nillable(),
		field.String("parent_task_id").
			Optional().
			Nillable(),
		field.String("goal_id").
			Optional().
			Nillable().
			Comment("Goal this task counts toward"),
		field.Time("deadline").
			Optional().
			Nillable(),
		field.JSON("depends_on", []string{}).
			Optional().
			Comment("Task IDs this task is blocked by until they are done"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id"),
		index.Fields("team_id", "status"),
		index.Fields("team_id", "assigned_agent_id"),
	}
}
