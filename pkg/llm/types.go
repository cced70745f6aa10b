// Package llm provides the model router and an OpenAI-compatible chat
// completion client used by the agent runtime, meetings, and ingestion.
package llm

import (
	"encoding/json"
	"errors"
)

// Message roles on the completion wire format.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one chat completion message.
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// ToolCall is one function invocation requested by the model.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// FunctionCall carries the function name and raw JSON arguments.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ToolDef describes one tool offered to the model.
type ToolDef struct {
	Type     string      `json:"type"`
	Function FunctionDef `json:"function"`
}

// FunctionDef is the function portion of a tool definition.
type FunctionDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

// ChatRequest is a completion request against a resolved target.
type ChatRequest struct {
	Messages    []Message `json:"messages"`
	Tools       []ToolDef `json:"tools,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// ChatResponse is the assistant turn returned by the provider.
type ChatResponse struct {
	Content   string
	ToolCalls []ToolCall
}

// StreamChunk is one delta of a streamed completion.
type StreamChunk struct {
	Delta string
	Done  bool
}

// Target is a fully resolved model: concrete endpoint, model name, and the
// credit price of one call.
type Target struct {
	Endpoint   string
	Model      string
	APIKey     string
	CostPerUse int

	// SkipCredits marks free models; the runtime bypasses the credit
	// gate entirely for them.
	SkipCredits bool
}

// ErrNoModel is returned when neither the agent, the tenant, nor the
// platform fallback yields a usable model.
var ErrNoModel = errors.New("no model available")

// retryableError marks provider failures worth retrying (network errors,
// 5xx, 429).
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

// Retryable wraps err as retryable.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &retryableError{err: err}
}

// IsRetryable reports whether err is a transient provider failure.
func IsRetryable(err error) bool {
	var re *retryableError
	return errors.As(err, &re)
}
