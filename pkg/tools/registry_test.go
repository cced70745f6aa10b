package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTool(name string, requiresApproval bool) Tool {
	return Tool{
		Name:             name,
		Description:      "echoes its input",
		RequiresApproval: requiresApproval,
		Schema: objSchema(`{
			"text": {"type": "string"},
			"count": {"type": "integer", "minimum": 1}
		}`, "text"),
		Handler: func(ctx context.Context, call Call) (string, error) {
			return argString(call, "text"), nil
		},
	}
}

func TestRegistryExecute(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(echoTool("echo", false)))
	ctx := context.Background()

	t.Run("valid arguments reach the handler", func(t *testing.T) {
		out, err := r.Execute(ctx, "echo", `{"text": "hi", "count": 3}`, "team-1", "agent-1")
		require.NoError(t, err)
		assert.Equal(t, "hi", out)
	})

	t.Run("missing required argument", func(t *testing.T) {
		_, err := r.Execute(ctx, "echo", `{"count": 3}`, "team-1", "agent-1")
		assert.ErrorIs(t, err, ErrInvalidArguments)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := r.Execute(ctx, "echo", `{"text": 42}`, "team-1", "agent-1")
		assert.ErrorIs(t, err, ErrInvalidArguments)
	})

	t.Run("unknown property", func(t *testing.T) {
		_, err := r.Execute(ctx, "echo", `{"text": "hi", "txet": "typo"}`, "team-1", "agent-1")
		assert.ErrorIs(t, err, ErrInvalidArguments)
	})

	t.Run("schema constraints apply", func(t *testing.T) {
		_, err := r.Execute(ctx, "echo", `{"text": "hi", "count": 0}`, "team-1", "agent-1")
		assert.ErrorIs(t, err, ErrInvalidArguments)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := r.Execute(ctx, "echo", `{"text": `, "team-1", "agent-1")
		assert.ErrorIs(t, err, ErrInvalidArguments)
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, err := r.Execute(ctx, "nope", `{}`, "team-1", "agent-1")
		assert.ErrorIs(t, err, ErrUnknownTool)
	})

	t.Run("empty args default to an empty object", func(t *testing.T) {
		_, err := r.Execute(ctx, "echo", "", "team-1", "agent-1")
		assert.ErrorIs(t, err, ErrInvalidArguments) // "text" is required
	})
}

func TestRegistryDefs(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(echoTool("bravo", false)))
	require.NoError(t, r.Register(echoTool("alpha", true)))

	t.Run("all tools, sorted", func(t *testing.T) {
		defs := r.Defs(nil)
		require.Len(t, defs, 2)
		assert.Equal(t, "alpha", defs[0].Function.Name)
		assert.Equal(t, "bravo", defs[1].Function.Name)
		assert.Equal(t, "function", defs[0].Type)

		var schema map[string]any
		require.NoError(t, json.Unmarshal(defs[0].Function.Parameters, &schema))
		assert.Equal(t, "object", schema["type"])
	})

	t.Run("restricted to allowed set", func(t *testing.T) {
		defs := r.Defs([]string{"bravo", "missing"})
		require.Len(t, defs, 1)
		assert.Equal(t, "bravo", defs[0].Function.Name)
	})

	t.Run("approval flag is preserved", func(t *testing.T) {
		tool, ok := r.Get("alpha")
		require.True(t, ok)
		assert.True(t, tool.RequiresApproval)
	})
}

func TestRegisterRejectsBadTools(t *testing.T) {
	r := NewRegistry()

	err := r.Register(Tool{Name: "", Handler: func(context.Context, Call) (string, error) { return "", nil }})
	assert.Error(t, err)

	err = r.Register(Tool{Name: "no-handler", Schema: json.RawMessage(`{}`)})
	assert.Error(t, err)

	err = r.Register(Tool{
		Name:    "bad-schema",
		Schema:  json.RawMessage(`{"type": `),
		Handler: func(context.Context, Call) (string, error) { return "", nil },
	})
	assert.Error(t, err)
}

func TestBuiltinRegistryRegisters(t *testing.T) {
	r, err := NewBuiltinRegistry(Deps{})
	require.NoError(t, err)

	names := r.Names()
	for _, expected := range []string{
		"think", "create_task", "update_task", "list_tasks", "send_message",
		"list_files", "read_file", "write_file", "search_kb", "add_memory",
		"sor_read", "sor_write", "request_approval", "send_external_email",
	} {
		assert.Contains(t, names, expected)
	}

	email, ok := r.Get("send_external_email")
	require.True(t, ok)
	assert.True(t, email.RequiresApproval)

	think, ok := r.Get("think")
	require.True(t, ok)
	assert.False(t, think.RequiresApproval)

	out, err := r.Execute(context.Background(), "think", `{"thought": "plan next step"}`, "team-1", "agent-1")
	require.NoError(t, err)
	assert.Equal(t, "Noted.", out)
}
