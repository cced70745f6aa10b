// Package runtime executes agent reasoning loops: it resolves the agent's
// model, meters credits, calls the model, and dispatches tool calls until
// the model produces a final answer or a budget runs out.
package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/pkg/llm"
	"github.com/crewforge/crewd/pkg/services"
	"github.com/crewforge/crewd/pkg/tools"
)

const (
	// defaultMaxSteps bounds one run's model calls.
	defaultMaxSteps = 10

	// maxToolResult caps the observation text fed back to the model.
	maxToolResult = 8 << 10 // 8 KiB

	// maxRetries is how many extra attempts a retryable provider error gets.
	maxRetries = 2

	retryBackoff = 500 * time.Millisecond
)

// budgetExhaustedMessage is the terminal answer when the step budget runs
// out before the model concludes.
const budgetExhaustedMessage = "I hit my step budget."

// TargetResolver maps a tenant + model preference to a concrete target.
type TargetResolver interface {
	Resolve(ctx context.Context, teamID string, spec llm.ModelSpec) (llm.Target, error)
}

// ChatClient performs one chat completion against a resolved target.
type ChatClient interface {
	ChatCompletion(ctx context.Context, target llm.Target, req llm.ChatRequest) (*llm.ChatResponse, error)
}

// CreditLedger meters billed model calls.
type CreditLedger interface {
	Deduct(ctx context.Context, teamID string, cost int, reason, correlationID string) error
	Refund(ctx context.Context, teamID string, amount int, reason, correlationID string) error
}

// ApprovalStore gates high-risk tool calls behind human review.
type ApprovalStore interface {
	CreateApproval(ctx context.Context, teamID, agentID, actionType, actionDetail, riskLevel string) (*ent.Approval, error)
	ListApprovals(ctx context.Context, teamID, status string) ([]*ent.Approval, error)
}

// Auditor appends to the tenant activity trail.
type Auditor interface {
	Record(ctx context.Context, teamID, agentID, eventType, summary string, metadata map[string]any) (*ent.ActivityEvent, error)
}

// Runner drives agent reasoning loops.
type Runner struct {
	resolver  TargetResolver
	chat      ChatClient
	registry  *tools.Registry
	credits   CreditLedger
	approvals ApprovalStore
	auditor   Auditor
	logger    *slog.Logger
}

// NewRunner creates a Runner. auditor may be nil to skip activity records.
func NewRunner(resolver TargetResolver, chat ChatClient, registry *tools.Registry, credits CreditLedger, approvals ApprovalStore, auditor Auditor) *Runner {
	return &Runner{
		resolver:  resolver,
		chat:      chat,
		registry:  registry,
		credits:   credits,
		approvals: approvals,
		auditor:   auditor,
		logger:    slog.With("component", "runtime"),
	}
}

// Run describes one reasoning loop invocation.
type Run struct {
	TeamID       string
	AgentID      string
	Spec         llm.ModelSpec
	SystemPrompt string
	Tools        []string // allowed tool names; nil allows all
	Messages     []llm.Message
	MaxSteps     int
}

// Result is the outcome of one run.
type Result struct {
	FinalText string
	Steps     int

	// Interrupted means a high-risk tool call was intercepted during the
	// run and is waiting on human review. The call did not execute; the
	// model was told so and carried on without it.
	Interrupted       bool
	PendingApprovalID string
}

// Execute runs the reasoning loop until a final answer or budget
// exhaustion.
func (r *Runner) Execute(ctx context.Context, run Run) (*Result, error) {
	maxSteps := run.MaxSteps
	if maxSteps <= 0 {
		maxSteps = defaultMaxSteps
	}

	messages := make([]llm.Message, 0, len(run.Messages)+1)
	if run.SystemPrompt != "" {
		messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: run.SystemPrompt})
	}
	messages = append(messages, run.Messages...)

	defs := r.registry.Defs(run.Tools)
	result := &Result{}

	for step := 0; step < maxSteps; step++ {
		result.Steps = step + 1

		resp, err := r.callModel(ctx, run, llm.ChatRequest{
			Messages: messages,
			Tools:    defs,
		})
		if err != nil {
			return nil, err
		}

		if len(resp.ToolCalls) == 0 {
			result.FinalText = resp.Content
			return result, nil
		}

		messages = append(messages, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		for _, call := range resp.ToolCalls {
			observation, pendingID, err := r.dispatch(ctx, run, call)
			if err != nil {
				return nil, err
			}
			if pendingID != "" {
				result.Interrupted = true
				result.PendingApprovalID = pendingID
			}
			messages = append(messages, llm.Message{
				Role:       llm.RoleTool,
				Content:    observation,
				ToolCallID: call.ID,
				Name:       call.Function.Name,
			})
		}
	}

	result.FinalText = budgetExhaustedMessage
	return result, nil
}

// callModel resolves the target, meters credits, and calls the model with
// retries on transient provider errors. A call that fails after retries is
// refunded under the same correlation ID it was billed under.
func (r *Runner) callModel(ctx context.Context, run Run, req llm.ChatRequest) (*llm.ChatResponse, error) {
	target, err := r.resolver.Resolve(ctx, run.TeamID, run.Spec)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve model: %w", err)
	}

	correlationID := ""
	if !target.SkipCredits && target.CostPerUse > 0 {
		correlationID = uuid.New().String()
		if err := r.credits.Deduct(ctx, run.TeamID, target.CostPerUse, "model_call", correlationID); err != nil {
			return nil, err
		}
	}

	var resp *llm.ChatResponse
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			r.logger.Warn("Retrying model call",
				slog.String("agent_id", run.AgentID),
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()))
			select {
			case <-ctx.Done():
			case <-time.After(retryBackoff * time.Duration(attempt)):
			}
			if ctx.Err() != nil {
				err = ctx.Err()
				break
			}
		}
		resp, err = r.chat.ChatCompletion(ctx, target, req)
		if err == nil {
			return resp, nil
		}
		if !llm.IsRetryable(err) {
			break
		}
	}

	if correlationID != "" {
		if refundErr := r.credits.Refund(ctx, run.TeamID, target.CostPerUse, "provider_failure", correlationID); refundErr != nil {
			r.logger.Error("Failed to refund after provider failure",
				slog.String("team_id", run.TeamID),
				slog.String("correlation_id", correlationID),
				slog.String("error", refundErr.Error()))
		}
	}
	return nil, fmt.Errorf("%w: %v", services.ErrProviderUnavailable, err)
}

// dispatch executes one tool call, intercepting high-risk tools behind the
// approval queue. A non-empty pendingID means the call was intercepted and
// the observation explains the wait; the loop keeps going either way.
func (r *Runner) dispatch(ctx context.Context, run Run, call llm.ToolCall) (observation string, pendingID string, err error) {
	name := call.Function.Name
	args := call.Function.Arguments

	tool, ok := r.registry.Get(name)
	if !ok {
		return fmt.Sprintf("error: unknown tool %q", name), "", nil
	}

	if tool.RequiresApproval {
		decision, id, err := r.approvalDecision(ctx, run, name, args)
		if err != nil {
			return "", "", err
		}
		switch decision {
		case approvalPending:
			// The model sees the hold and picks a follow-up instead of the
			// blocked action.
			return fmt.Sprintf("pending: %s is awaiting human review and did not execute; continue without it", name), id, nil
		case approvalRejected:
			// The model sees the refusal and moves on; the action is not
			// re-enqueued.
			return fmt.Sprintf("forbidden: %s was rejected by a human reviewer", name), "", nil
		}
	}

	observation, execErr := r.registry.Execute(ctx, name, args, run.TeamID, run.AgentID)
	if execErr != nil {
		// Tool failures are observations, not run failures.
		observation = "error: " + execErr.Error()
	}
	if len(observation) > maxToolResult {
		observation = observation[:maxToolResult] + "\n[truncated]"
	}

	if r.auditor != nil {
		summary := fmt.Sprintf("executed %s", name)
		if execErr != nil {
			summary = fmt.Sprintf("executed %s (failed: %v)", name, execErr)
		}
		_, _ = r.auditor.Record(ctx, run.TeamID, run.AgentID, "tool_executed", summary, map[string]any{
			"tool": name,
		})
	}
	return observation, "", nil
}

type approvalState int

const (
	approvalGranted approvalState = iota
	approvalPending
	approvalRejected
)

// approvalDecision matches the tool call against the agent's approval
// history by action fingerprint. No match creates a fresh pending approval.
func (r *Runner) approvalDecision(ctx context.Context, run Run, name, args string) (approvalState, string, error) {
	detail := canonicalDetail(args)

	all, err := r.approvals.ListApprovals(ctx, run.TeamID, "")
	if err != nil {
		return 0, "", fmt.Errorf("failed to check approvals: %w", err)
	}
	// Newest first; take the most recent matching decision.
	for _, a := range all {
		if a.AgentID != run.AgentID || a.ActionType != name || a.ActionDetail != detail {
			continue
		}
		switch a.Status {
		case "approved":
			return approvalGranted, a.ID, nil
		case "rejected":
			return approvalRejected, a.ID, nil
		default:
			return approvalPending, a.ID, nil
		}
	}

	created, err := r.approvals.CreateApproval(ctx, run.TeamID, run.AgentID, name, detail, "high")
	if err != nil {
		return 0, "", fmt.Errorf("failed to request approval: %w", err)
	}
	return approvalPending, created.ID, nil
}

// canonicalDetail re-encodes the argument JSON so semantically equal calls
// fingerprint identically regardless of key order.
func canonicalDetail(args string) string {
	var v map[string]any
	if err := json.Unmarshal([]byte(args), &v); err != nil {
		return args
	}
	out, err := json.Marshal(v)
	if err != nil {
		return args
	}
	return string(out)
}
