package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/crewforge/crewd/pkg/kb"
	"github.com/crewforge/crewd/pkg/models"
	"github.com/crewforge/crewd/pkg/services"
	"github.com/crewforge/crewd/pkg/workspace"
)

// EmailSender delivers external email on behalf of an agent. nil means
// sends are recorded but not delivered.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Deps are the service handles the builtin tools operate through.
type Deps struct {
	Tasks     *services.TaskService
	Chat      *services.ChatService
	Approvals *services.ApprovalService
	Activity  *services.ActivityService
	Sor       *services.SorService
	KB        *kb.Service
	Workspace *workspace.Store
	Email     EmailSender
}

// NewBuiltinRegistry registers the standard tool set against the given
// services.
func NewBuiltinRegistry(deps Deps) (*Registry, error) {
	r := NewRegistry()
	builtins := []Tool{
		{
			Name:        "think",
			Description: "Record a private reasoning step. Produces no side effects.",
			Schema: objSchema(`{
				"thought": {"type": "string", "description": "The reasoning step"}
			}`, "thought"),
			Handler: func(ctx context.Context, call Call) (string, error) {
				return "Noted.", nil
			},
		},
		{
			Name:        "create_task",
			Description: "Create a task on the team board.",
			Schema: objSchema(`{
				"title": {"type": "string"},
				"description": {"type": "string"},
				"priority": {"type": "string", "enum": ["low", "medium", "high", "urgent"]}
			}`, "title"),
			Handler: func(ctx context.Context, call Call) (string, error) {
				view, err := deps.Tasks.CreateTask(ctx, call.TeamID, models.CreateTaskRequest{
					Title:           argString(call, "title"),
					Description:     argString(call, "description"),
					Priority:        argString(call, "priority"),
					AssignedAgentID: &call.AgentID,
				})
				if err != nil {
					return "", err
				}
				return marshal(view)
			},
		},
		{
			Name:        "update_task",
			Description: "Update a task's status, title, or description.",
			Schema: objSchema(`{
				"task_id": {"type": "string"},
				"status": {"type": "string", "enum": ["backlog", "todo", "in_progress", "review", "done"]},
				"title": {"type": "string"},
				"description": {"type": "string"}
			}`, "task_id"),
			Handler: func(ctx context.Context, call Call) (string, error) {
				req := models.UpdateTaskRequest{
					Status:      argStringPtr(call, "status"),
					Title:       argStringPtr(call, "title"),
					Description: argStringPtr(call, "description"),
				}
				view, err := deps.Tasks.UpdateTask(ctx, call.TeamID, argString(call, "task_id"), req)
				if err != nil {
					return "", err
				}
				return marshal(view)
			},
		},
		{
			Name:        "list_tasks",
			Description: "List the team's tasks, optionally filtered by status.",
			Schema: objSchema(`{
				"status": {"type": "string", "enum": ["backlog", "todo", "in_progress", "review", "done"]},
				"assigned_to_me": {"type": "boolean"}
			}`),
			Handler: func(ctx context.Context, call Call) (string, error) {
				filter := services.TaskFilter{Status: argString(call, "status")}
				if b, _ := call.Args["assigned_to_me"].(bool); b {
					filter.AssignedAgentID = call.AgentID
				}
				views, err := deps.Tasks.ListTasks(ctx, call.TeamID, filter)
				if err != nil {
					return "", err
				}
				return marshal(views)
			},
		},
		{
			Name:        "send_message",
			Description: "Post a message to a chat channel. Mention teammates as @[Name](user:<id>) or @[Name](agent:<id>).",
			Schema: objSchema(`{
				"channel_id": {"type": "string"},
				"content": {"type": "string"}
			}`, "channel_id", "content"),
			Handler: func(ctx context.Context, call Call) (string, error) {
				view, err := deps.Chat.SendMessage(ctx, call.TeamID, argString(call, "channel_id"),
					"agent", call.AgentID, argString(call, "content"))
				if err != nil {
					return "", err
				}
				return marshal(view)
			},
		},
		{
			Name:        "list_files",
			Description: "List files in the shared workspace.",
			Schema: objSchema(`{
				"path": {"type": "string", "description": "Directory to list; defaults to the root"}
			}`),
			Handler: func(ctx context.Context, call Call) (string, error) {
				files, err := deps.Workspace.List(call.TeamID, argString(call, "path"))
				if err != nil {
					return "", err
				}
				return marshal(files)
			},
		},
		{
			Name:        "read_file",
			Description: "Read a file from the shared workspace.",
			Schema: objSchema(`{
				"path": {"type": "string"}
			}`, "path"),
			Handler: func(ctx context.Context, call Call) (string, error) {
				data, err := deps.Workspace.Read(call.TeamID, argString(call, "path"))
				if err != nil {
					return "", err
				}
				return string(data), nil
			},
		},
		{
			Name:        "write_file",
			Description: "Write a file in the shared workspace, replacing any existing content.",
			Schema: objSchema(`{
				"path": {"type": "string"},
				"content": {"type": "string"}
			}`, "path", "content"),
			Handler: func(ctx context.Context, call Call) (string, error) {
				err := deps.Workspace.Write(call.TeamID, argString(call, "path"),
					"agent:"+call.AgentID, []byte(argString(call, "content")))
				if err != nil {
					return "", err
				}
				return "written", nil
			},
		},
		{
			Name:        "search_kb",
			Description: "Search the team knowledge base.",
			Schema: objSchema(`{
				"query": {"type": "string"},
				"top_k": {"type": "integer", "minimum": 1, "maximum": 50}
			}`, "query"),
			Handler: func(ctx context.Context, call Call) (string, error) {
				results, err := deps.KB.Search(ctx, call.TeamID, models.SearchRequest{
					Query: argString(call, "query"),
					TopK:  argInt(call, "top_k"),
				})
				if err != nil {
					return "", err
				}
				return marshal(results)
			},
		},
		{
			Name:        "add_memory",
			Description: "Store a durable note in your long-term memory.",
			Schema: objSchema(`{
				"content": {"type": "string"}
			}`, "content"),
			Handler: func(ctx context.Context, call Call) (string, error) {
				m, err := deps.KB.AddMemory(ctx, call.TeamID, call.AgentID, argString(call, "content"))
				if err != nil {
					return "", err
				}
				return "remembered: " + m.ID, nil
			},
		},
		{
			Name:        "sor_read",
			Description: "Read rows from a record table by table name.",
			Schema: objSchema(`{
				"table": {"type": "string"},
				"limit": {"type": "integer", "minimum": 1, "maximum": 200}
			}`, "table"),
			Handler: func(ctx context.Context, call Call) (string, error) {
				table, err := deps.Sor.GetTableByName(ctx, call.TeamID, argString(call, "table"))
				if err != nil {
					return "", err
				}
				if err := deps.Sor.CheckAgentAccess(ctx, call.TeamID, table.ID, call.AgentID, false); err != nil {
					return "", err
				}
				rows, err := deps.Sor.ListRows(ctx, call.TeamID, table.ID, argInt(call, "limit"), 0)
				if err != nil {
					return "", err
				}
				return marshal(rows)
			},
		},
		{
			Name:        "sor_write",
			Description: "Insert a row into a record table by table name.",
			Schema: objSchema(`{
				"table": {"type": "string"},
				"data": {"type": "object", "additionalProperties": {"type": "string"}}
			}`, "table", "data"),
			Handler: func(ctx context.Context, call Call) (string, error) {
				table, err := deps.Sor.GetTableByName(ctx, call.TeamID, argString(call, "table"))
				if err != nil {
					return "", err
				}
				if err := deps.Sor.CheckAgentAccess(ctx, call.TeamID, table.ID, call.AgentID, true); err != nil {
					return "", err
				}
				data := map[string]string{}
				if raw, ok := call.Args["data"].(map[string]any); ok {
					for k, v := range raw {
						data[k] = fmt.Sprint(v)
					}
				}
				row, err := deps.Sor.CreateRow(ctx, call.TeamID, table.ID, data)
				if err != nil {
					return "", err
				}
				return marshal(row)
			},
		},
		{
			Name:        "request_approval",
			Description: "Ask a human to approve an action you cannot take directly.",
			Schema: objSchema(`{
				"action_type": {"type": "string"},
				"action_detail": {"type": "string"},
				"risk_level": {"type": "string", "enum": ["low", "medium", "high", "critical"]}
			}`, "action_type"),
			Handler: func(ctx context.Context, call Call) (string, error) {
				a, err := deps.Approvals.CreateApproval(ctx, call.TeamID, call.AgentID,
					argString(call, "action_type"), argString(call, "action_detail"),
					argString(call, "risk_level"))
				if err != nil {
					return "", err
				}
				return "approval requested: " + a.ID, nil
			},
		},
		{
			Name:             "send_external_email",
			Description:      "Send an email outside the organization. Requires human approval.",
			RequiresApproval: true,
			Schema: objSchema(`{
				"to": {"type": "string"},
				"subject": {"type": "string"},
				"body": {"type": "string"}
			}`, "to", "subject", "body"),
			Handler: func(ctx context.Context, call Call) (string, error) {
				to := argString(call, "to")
				if deps.Email != nil {
					if err := deps.Email.Send(ctx, to, argString(call, "subject"), argString(call, "body")); err != nil {
						return "", err
					}
				}
				if deps.Activity != nil {
					_, _ = deps.Activity.Record(ctx, call.TeamID, call.AgentID, "email_sent",
						"email to "+to, nil)
				}
				return "email sent to " + to, nil
			},
		},
	}

	for _, t := range builtins {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// objSchema builds an object schema with the given properties and required
// names. Unknown properties are rejected so models get early feedback on
// misspelled arguments.
func objSchema(props string, required ...string) json.RawMessage {
	req, _ := json.Marshal(required)
	if required == nil {
		req = []byte("[]")
	}
	return json.RawMessage(fmt.Sprintf(
		`{"type": "object", "properties": %s, "required": %s, "additionalProperties": false}`,
		props, req))
}

func argString(call Call, key string) string {
	s, _ := call.Args[key].(string)
	return s
}

func argStringPtr(call Call, key string) *string {
	if s, ok := call.Args[key].(string); ok {
		return &s
	}
	return nil
}

func argInt(call Call, key string) int {
	switch v := call.Args[key].(type) {
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func marshal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode tool result: %w", err)
	}
	return string(data), nil
}
