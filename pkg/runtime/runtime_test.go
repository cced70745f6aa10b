package runtime

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/pkg/llm"
	"github.com/crewforge/crewd/pkg/services"
	"github.com/crewforge/crewd/pkg/tools"
)

type fakeResolver struct {
	target llm.Target
	err    error
}

func (f *fakeResolver) Resolve(ctx context.Context, teamID string, spec llm.ModelSpec) (llm.Target, error) {
	return f.target, f.err
}

type chatTurn struct {
	resp *llm.ChatResponse
	err  error
}

type scriptedChat struct {
	turns    []chatTurn
	requests []llm.ChatRequest
}

func (s *scriptedChat) ChatCompletion(ctx context.Context, target llm.Target, req llm.ChatRequest) (*llm.ChatResponse, error) {
	s.requests = append(s.requests, req)
	if len(s.turns) == 0 {
		return nil, errors.New("script exhausted")
	}
	turn := s.turns[0]
	s.turns = s.turns[1:]
	return turn.resp, turn.err
}

type ledgerEntry struct {
	amount        int
	correlationID string
}

type fakeLedger struct {
	balance int
	deducts []ledgerEntry
	refunds []ledgerEntry
}

func (f *fakeLedger) Deduct(ctx context.Context, teamID string, cost int, reason, correlationID string) error {
	if f.balance < cost {
		return services.ErrInsufficientCredits
	}
	f.balance -= cost
	f.deducts = append(f.deducts, ledgerEntry{cost, correlationID})
	return nil
}

func (f *fakeLedger) Refund(ctx context.Context, teamID string, amount int, reason, correlationID string) error {
	f.balance += amount
	f.refunds = append(f.refunds, ledgerEntry{amount, correlationID})
	return nil
}

type fakeApprovals struct {
	items   []*ent.Approval
	created int
}

func (f *fakeApprovals) CreateApproval(ctx context.Context, teamID, agentID, actionType, actionDetail, riskLevel string) (*ent.Approval, error) {
	f.created++
	a := &ent.Approval{
		ID:           fmt.Sprintf("approval-%d", f.created),
		TeamID:       teamID,
		AgentID:      agentID,
		ActionType:   actionType,
		ActionDetail: actionDetail,
		Status:       "pending",
	}
	f.items = append(f.items, a)
	return a, nil
}

func (f *fakeApprovals) ListApprovals(ctx context.Context, teamID, status string) ([]*ent.Approval, error) {
	// Newest first, like the service.
	out := make([]*ent.Approval, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		out = append(out, f.items[i])
	}
	return out, nil
}

type fakeAuditor struct {
	events []string
}

func (f *fakeAuditor) Record(ctx context.Context, teamID, agentID, eventType, summary string, metadata map[string]any) (*ent.ActivityEvent, error) {
	f.events = append(f.events, eventType+": "+summary)
	return &ent.ActivityEvent{}, nil
}

func testRegistry(t *testing.T, extra ...tools.Tool) *tools.Registry {
	t.Helper()
	r := tools.NewRegistry()
	require.NoError(t, r.Register(tools.Tool{
		Name:        "lookup",
		Description: "returns a canned observation",
		Schema:      []byte(`{"type": "object", "properties": {"q": {"type": "string"}}, "required": ["q"]}`),
		Handler: func(ctx context.Context, call tools.Call) (string, error) {
			return "result for " + call.Args["q"].(string), nil
		},
	}))
	for _, tool := range extra {
		require.NoError(t, r.Register(tool))
	}
	return r
}

func toolCall(id, name, args string) llm.ToolCall {
	return llm.ToolCall{
		ID:   id,
		Type: "function",
		Function: llm.FunctionCall{
			Name:      name,
			Arguments: args,
		},
	}
}

func newRunner(t *testing.T, chat *scriptedChat, target llm.Target, reg *tools.Registry, ledger *fakeLedger, approvals *fakeApprovals, auditor *fakeAuditor) *Runner {
	t.Helper()
	if reg == nil {
		reg = testRegistry(t)
	}
	if ledger == nil {
		ledger = &fakeLedger{balance: 100}
	}
	if approvals == nil {
		approvals = &fakeApprovals{}
	}
	if auditor == nil {
		auditor = &fakeAuditor{}
	}
	return NewRunner(&fakeResolver{target: target}, chat, reg, ledger, approvals, auditor)
}

func TestExecuteFinalAnswer(t *testing.T) {
	chat := &scriptedChat{turns: []chatTurn{
		{resp: &llm.ChatResponse{Content: "all done"}},
	}}
	ledger := &fakeLedger{balance: 100}
	r := newRunner(t, chat, llm.Target{SkipCredits: true}, nil, ledger, nil, nil)

	res, err := r.Execute(context.Background(), Run{
		TeamID:       "team-1",
		AgentID:      "agent-1",
		SystemPrompt: "You are helpful.",
		Messages:     []llm.Message{{Role: llm.RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "all done", res.FinalText)
	assert.Equal(t, 1, res.Steps)
	assert.False(t, res.Interrupted)

	// Free target: nothing billed.
	assert.Empty(t, ledger.deducts)

	// System prompt leads the conversation.
	require.NotEmpty(t, chat.requests)
	assert.Equal(t, llm.RoleSystem, chat.requests[0].Messages[0].Role)
}

func TestExecuteToolLoop(t *testing.T) {
	chat := &scriptedChat{turns: []chatTurn{
		{resp: &llm.ChatResponse{ToolCalls: []llm.ToolCall{toolCall("c1", "lookup", `{"q": "weather"}`)}}},
		{resp: &llm.ChatResponse{Content: "it is sunny"}},
	}}
	auditor := &fakeAuditor{}
	r := newRunner(t, chat, llm.Target{SkipCredits: true}, nil, nil, nil, auditor)

	res, err := r.Execute(context.Background(), Run{
		TeamID:   "team-1",
		AgentID:  "agent-1",
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "weather?"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "it is sunny", res.FinalText)
	assert.Equal(t, 2, res.Steps)

	// The observation went back to the model as a tool message.
	second := chat.requests[1]
	last := second.Messages[len(second.Messages)-1]
	assert.Equal(t, llm.RoleTool, last.Role)
	assert.Equal(t, "result for weather", last.Content)
	assert.Equal(t, "c1", last.ToolCallID)

	require.Len(t, auditor.events, 1)
	assert.Contains(t, auditor.events[0], "tool_executed")
}

func TestExecuteBillsPerCall(t *testing.T) {
	chat := &scriptedChat{turns: []chatTurn{
		{resp: &llm.ChatResponse{ToolCalls: []llm.ToolCall{toolCall("c1", "lookup", `{"q": "x"}`)}}},
		{resp: &llm.ChatResponse{Content: "done"}},
	}}
	ledger := &fakeLedger{balance: 10}
	r := newRunner(t, chat, llm.Target{CostPerUse: 3}, nil, ledger, nil, nil)

	_, err := r.Execute(context.Background(), Run{TeamID: "team-1", AgentID: "agent-1",
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "go"}}})
	require.NoError(t, err)

	require.Len(t, ledger.deducts, 2)
	assert.Equal(t, 4, ledger.balance)
	assert.Empty(t, ledger.refunds)
	assert.NotEqual(t, ledger.deducts[0].correlationID, ledger.deducts[1].correlationID)
}

func TestExecuteInsufficientCredits(t *testing.T) {
	chat := &scriptedChat{}
	ledger := &fakeLedger{balance: 1}
	r := newRunner(t, chat, llm.Target{CostPerUse: 3}, nil, ledger, nil, nil)

	_, err := r.Execute(context.Background(), Run{TeamID: "team-1", AgentID: "agent-1",
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "go"}}})
	assert.ErrorIs(t, err, services.ErrInsufficientCredits)
	assert.Empty(t, chat.requests)
}

func TestExecuteRefundsOnProviderFailure(t *testing.T) {
	boom := errors.New("provider exploded")
	chat := &scriptedChat{turns: []chatTurn{{err: boom}}}
	ledger := &fakeLedger{balance: 10}
	r := newRunner(t, chat, llm.Target{CostPerUse: 2}, nil, ledger, nil, nil)

	_, err := r.Execute(context.Background(), Run{TeamID: "team-1", AgentID: "agent-1",
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "go"}}})
	assert.ErrorIs(t, err, services.ErrProviderUnavailable)

	require.Len(t, ledger.deducts, 1)
	require.Len(t, ledger.refunds, 1)
	assert.Equal(t, ledger.deducts[0].correlationID, ledger.refunds[0].correlationID)
	assert.Equal(t, 10, ledger.balance)
}

func TestExecuteRetriesTransientErrors(t *testing.T) {
	chat := &scriptedChat{turns: []chatTurn{
		{err: llm.Retryable(errors.New("status 503"))},
		{resp: &llm.ChatResponse{Content: "recovered"}},
	}}
	ledger := &fakeLedger{balance: 10}
	r := newRunner(t, chat, llm.Target{CostPerUse: 1}, nil, ledger, nil, nil)

	res, err := r.Execute(context.Background(), Run{TeamID: "team-1", AgentID: "agent-1",
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "go"}}})
	require.NoError(t, err)
	assert.Equal(t, "recovered", res.FinalText)
	assert.Len(t, chat.requests, 2)

	// One billed call, no refund: the retry succeeded.
	assert.Len(t, ledger.deducts, 1)
	assert.Empty(t, ledger.refunds)
}

func TestExecuteStepBudget(t *testing.T) {
	var turns []chatTurn
	for i := 0; i < 5; i++ {
		turns = append(turns, chatTurn{resp: &llm.ChatResponse{
			ToolCalls: []llm.ToolCall{toolCall(fmt.Sprintf("c%d", i), "lookup", `{"q": "again"}`)},
		}})
	}
	chat := &scriptedChat{turns: turns}
	r := newRunner(t, chat, llm.Target{SkipCredits: true}, nil, nil, nil, nil)

	res, err := r.Execute(context.Background(), Run{
		TeamID: "team-1", AgentID: "agent-1", MaxSteps: 3,
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "loop"}},
	})
	require.NoError(t, err)
	assert.Equal(t, budgetExhaustedMessage, res.FinalText)
	assert.Equal(t, 3, res.Steps)
}

func TestExecuteTruncatesToolResults(t *testing.T) {
	big := tools.Tool{
		Name:        "dump",
		Description: "returns a huge blob",
		Schema:      []byte(`{"type": "object"}`),
		Handler: func(ctx context.Context, call tools.Call) (string, error) {
			return strings.Repeat("x", maxToolResult+100), nil
		},
	}
	chat := &scriptedChat{turns: []chatTurn{
		{resp: &llm.ChatResponse{ToolCalls: []llm.ToolCall{toolCall("c1", "dump", `{}`)}}},
		{resp: &llm.ChatResponse{Content: "ok"}},
	}}
	r := newRunner(t, chat, llm.Target{SkipCredits: true}, testRegistry(t, big), nil, nil, nil)

	_, err := r.Execute(context.Background(), Run{TeamID: "team-1", AgentID: "agent-1",
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "dump"}}})
	require.NoError(t, err)

	second := chat.requests[1]
	observation := second.Messages[len(second.Messages)-1].Content
	assert.True(t, strings.HasSuffix(observation, "[truncated]"))
	assert.LessOrEqual(t, len(observation), maxToolResult+len("\n[truncated]"))
}

func TestExecuteToolErrorsBecomeObservations(t *testing.T) {
	chat := &scriptedChat{turns: []chatTurn{
		{resp: &llm.ChatResponse{ToolCalls: []llm.ToolCall{toolCall("c1", "lookup", `{"wrong": true}`)}}},
		{resp: &llm.ChatResponse{Content: "adjusted"}},
	}}
	r := newRunner(t, chat, llm.Target{SkipCredits: true}, nil, nil, nil, nil)

	res, err := r.Execute(context.Background(), Run{TeamID: "team-1", AgentID: "agent-1",
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "go"}}})
	require.NoError(t, err)
	assert.Equal(t, "adjusted", res.FinalText)

	second := chat.requests[1]
	observation := second.Messages[len(second.Messages)-1].Content
	assert.Contains(t, observation, "error:")
}

func TestExecuteApprovalInterception(t *testing.T) {
	risky := tools.Tool{
		Name:             "wire_money",
		Description:      "moves money",
		RequiresApproval: true,
		Schema:           []byte(`{"type": "object", "properties": {"amount": {"type": "integer"}}}`),
		Handler: func(ctx context.Context, call tools.Call) (string, error) {
			return "transferred", nil
		},
	}

	run := Run{
		TeamID: "team-1", AgentID: "agent-1",
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "pay the invoice"}},
	}
	script := func() *scriptedChat {
		return &scriptedChat{turns: []chatTurn{
			{resp: &llm.ChatResponse{ToolCalls: []llm.ToolCall{toolCall("c1", "wire_money", `{"amount": 100}`)}}},
			{resp: &llm.ChatResponse{Content: "handled"}},
		}}
	}

	t.Run("first call goes pending and the loop continues", func(t *testing.T) {
		approvals := &fakeApprovals{}
		chat := script()
		r := newRunner(t, chat, llm.Target{SkipCredits: true}, testRegistry(t, risky), nil, approvals, nil)

		res, err := r.Execute(context.Background(), run)
		require.NoError(t, err)
		assert.True(t, res.Interrupted)
		assert.NotEmpty(t, res.PendingApprovalID)
		assert.Equal(t, "handled", res.FinalText)
		assert.Equal(t, 1, approvals.created)

		// The tool never ran; the model got a pending observation and took
		// another turn.
		require.Len(t, chat.requests, 2)
		second := chat.requests[1]
		last := second.Messages[len(second.Messages)-1]
		assert.Equal(t, llm.RoleTool, last.Role)
		assert.Contains(t, last.Content, "awaiting human review")
		assert.NotContains(t, last.Content, "transferred")
	})

	t.Run("approved action executes", func(t *testing.T) {
		approvals := &fakeApprovals{}
		a, _ := approvals.CreateApproval(context.Background(), "team-1", "agent-1", "wire_money", `{"amount":100}`, "high")
		a.Status = "approved"

		chat := script()
		r := newRunner(t, chat, llm.Target{SkipCredits: true}, testRegistry(t, risky), nil, approvals, nil)

		res, err := r.Execute(context.Background(), run)
		require.NoError(t, err)
		assert.False(t, res.Interrupted)
		assert.Equal(t, "handled", res.FinalText)
		assert.Equal(t, 1, approvals.created) // no new approval raised

		second := chat.requests[1]
		assert.Equal(t, "transferred", second.Messages[len(second.Messages)-1].Content)
	})

	t.Run("rejected action is refused without re-enqueue", func(t *testing.T) {
		approvals := &fakeApprovals{}
		a, _ := approvals.CreateApproval(context.Background(), "team-1", "agent-1", "wire_money", `{"amount":100}`, "high")
		a.Status = "rejected"

		chat := script()
		r := newRunner(t, chat, llm.Target{SkipCredits: true}, testRegistry(t, risky), nil, approvals, nil)

		res, err := r.Execute(context.Background(), run)
		require.NoError(t, err)
		assert.False(t, res.Interrupted)
		assert.Equal(t, "handled", res.FinalText)
		assert.Equal(t, 1, approvals.created)

		second := chat.requests[1]
		assert.Contains(t, second.Messages[len(second.Messages)-1].Content, "forbidden")
	})
}
