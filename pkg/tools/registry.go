// Package tools defines the agent tool registry: named operations with JSON
// Schema argument contracts that the runtime exposes to models.
package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/crewforge/crewd/pkg/llm"
)

var (
	// ErrUnknownTool is returned when a model calls a tool that is not
	// registered (or not available to the agent).
	ErrUnknownTool = errors.New("unknown tool")

	// ErrInvalidArguments is returned when tool arguments fail schema
	// validation. The runtime feeds the message back to the model.
	ErrInvalidArguments = errors.New("invalid tool arguments")
)

// Call carries the tenant identity of the invoking agent plus its parsed
// arguments.
type Call struct {
	TeamID  string
	AgentID string
	Args    map[string]any
}

// Handler executes one tool call and returns the observation text.
type Handler func(ctx context.Context, call Call) (string, error)

// Tool is one registered operation.
type Tool struct {
	Name             string
	Description      string
	Schema           json.RawMessage
	RequiresApproval bool
	Handler          Handler

	compiled *jsonschema.Schema
}

// Registry holds the tool set exposed to agents.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*Tool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*Tool)}
}

// Register compiles the tool's schema and adds it to the registry.
// Registering a name twice replaces the earlier tool.
func (r *Registry) Register(t Tool) error {
	if t.Name == "" {
		return errors.New("tool name is required")
	}
	if t.Handler == nil {
		return fmt.Errorf("tool %s has no handler", t.Name)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(t.Schema))
	if err != nil {
		return fmt.Errorf("tool %s has invalid schema: %w", t.Name, err)
	}
	compiler := jsonschema.NewCompiler()
	resource := t.Name + ".json"
	if err := compiler.AddResource(resource, doc); err != nil {
		return fmt.Errorf("tool %s schema rejected: %w", t.Name, err)
	}
	compiled, err := compiler.Compile(resource)
	if err != nil {
		return fmt.Errorf("tool %s schema failed to compile: %w", t.Name, err)
	}
	t.compiled = compiled

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name] = &t
	return nil
}

// Get returns a registered tool by name.
func (r *Registry) Get(name string) (*Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Defs renders tool definitions for a chat completion request. When allowed
// is non-nil, only the named tools are included.
func (r *Registry) Defs(allowed []string) []llm.ToolDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	if allowed != nil {
		for _, name := range allowed {
			if _, ok := r.tools[name]; ok {
				names = append(names, name)
			}
		}
	} else {
		for name := range r.tools {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	defs := make([]llm.ToolDef, 0, len(names))
	for _, name := range names {
		t := r.tools[name]
		defs = append(defs, llm.ToolDef{
			Type: "function",
			Function: llm.FunctionDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Schema,
			},
		})
	}
	return defs
}

// Execute validates rawArgs against the tool's schema and runs the handler.
func (r *Registry) Execute(ctx context.Context, name, rawArgs string, teamID, agentID string) (string, error) {
	t, ok := r.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	if rawArgs == "" {
		rawArgs = "{}"
	}
	value, err := jsonschema.UnmarshalJSON(strings.NewReader(rawArgs))
	if err != nil {
		return "", fmt.Errorf("%w: not valid JSON: %v", ErrInvalidArguments, err)
	}
	if err := t.compiled.Validate(value); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}

	args, _ := value.(map[string]any)
	if args == nil {
		args = map[string]any{}
	}
	return t.Handler(ctx, Call{TeamID: teamID, AgentID: agentID, Args: args})
}
