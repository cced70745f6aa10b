// Package scheduler fires proactive agent heartbeats on per-agent periods,
// staggering agents that share a period so a tenant's fleet does not wake
// at once.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/ent/agent"
	"github.com/crewforge/crewd/pkg/llm"
	"github.com/crewforge/crewd/pkg/runtime"
	"github.com/crewforge/crewd/pkg/services"
)

// reconcileInterval is how often the scheduler re-reads the running agent
// set from the database.
const reconcileInterval = 30 * time.Second

// noopSentinel is what an agent answers when its self-review found nothing
// to do; such heartbeats leave no chat message.
const noopSentinel = "[no-op]"

// heartbeatPrompt is the self-review instruction sent on every proactive
// heartbeat.
const heartbeatPrompt = `This is your scheduled heartbeat. Review your open tasks, goals, and recent messages, and take any action that is due using your tools. When you are done, summarize what you did in one short message. If nothing needs attention, reply with exactly [no-op].`

// AgentRunner executes one reasoning loop. Satisfied by *runtime.Runner.
type AgentRunner interface {
	Execute(ctx context.Context, run runtime.Run) (*runtime.Result, error)
}

// Scheduler owns the heartbeat timers for running proactive agents.
type Scheduler struct {
	agents   *services.AgentService
	teams    *services.TeamService
	credits  *services.CreditService
	chat     *services.ChatService
	activity *services.ActivityService
	resolver runtime.TargetResolver
	runner   AgentRunner

	hostedMode bool
	logger     *slog.Logger

	mu     sync.Mutex
	timers map[string]*agentTimer // agent ID → timer

	rootCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

type agentTimer struct {
	teamID string
	period time.Duration
	cancel context.CancelFunc
}

// New creates a Scheduler.
func New(agents *services.AgentService, teams *services.TeamService, credits *services.CreditService, chat *services.ChatService, activity *services.ActivityService, resolver runtime.TargetResolver, runner AgentRunner, hostedMode bool) *Scheduler {
	return &Scheduler{
		agents:     agents,
		teams:      teams,
		credits:    credits,
		chat:       chat,
		activity:   activity,
		resolver:   resolver,
		runner:     runner,
		hostedMode: hostedMode,
		logger:     slog.With("component", "scheduler"),
		timers:     make(map[string]*agentTimer),
	}
}

// Start launches the reconcile loop. Returns immediately.
func (s *Scheduler) Start(ctx context.Context) {
	s.rootCtx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("Reconcile loop panicked",
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())))
			}
		}()

		s.reconcile(s.rootCtx)
		ticker := time.NewTicker(reconcileInterval)
		defer ticker.Stop()
		for {
			select {
			case <-s.rootCtx.Done():
				return
			case <-ticker.C:
				s.reconcile(s.rootCtx)
			}
		}
	}()
}

// Stop cancels all timers and waits for in-flight heartbeats.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Lock()
	for id, t := range s.timers {
		t.cancel()
		delete(s.timers, id)
	}
	s.mu.Unlock()
	s.wg.Wait()
}

// reconcile aligns the timer set with the running proactive agents. New
// agents are scheduled with a stagger offset inside their (team, period)
// bucket; agents already scheduled keep their phase — churn does not
// rebalance the bucket.
func (s *Scheduler) reconcile(ctx context.Context) {
	agents, err := s.agents.ListRunningProactive(ctx)
	if err != nil {
		s.logger.Error("Failed to list running agents", slog.String("error", err.Error()))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	running := make(map[string]*ent.Agent, len(agents))
	for _, a := range agents {
		running[a.ID] = a
	}

	// Drop timers for agents that stopped or changed period.
	for id, t := range s.timers {
		a, ok := running[id]
		if !ok || time.Duration(a.HeartbeatSeconds)*time.Second != t.period {
			t.cancel()
			delete(s.timers, id)
		}
	}

	// Group the not-yet-scheduled agents by (team, period) and stagger each
	// bucket across its full period.
	buckets := make(map[string][]*ent.Agent)
	for _, a := range agents {
		if _, scheduled := s.timers[a.ID]; scheduled {
			continue
		}
		key := fmt.Sprintf("%s|%d", a.TeamID, a.HeartbeatSeconds)
		buckets[key] = append(buckets[key], a)
	}
	for _, bucket := range buckets {
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].ID < bucket[j].ID })
		for i, a := range bucket {
			period := time.Duration(a.HeartbeatSeconds) * time.Second
			s.scheduleLocked(ctx, a, staggerOffset(period, i, len(bucket)))
		}
	}
}

// staggerOffset spreads index k of n bucket members across the period:
// k·⌊period/n⌋.
func staggerOffset(period time.Duration, index, total int) time.Duration {
	if total <= 1 {
		return 0
	}
	return time.Duration(index) * (period / time.Duration(total))
}

func (s *Scheduler) scheduleLocked(ctx context.Context, a *ent.Agent, offset time.Duration) {
	period := time.Duration(a.HeartbeatSeconds) * time.Second
	timerCtx, cancel := context.WithCancel(ctx)
	s.timers[a.ID] = &agentTimer{teamID: a.TeamID, period: period, cancel: cancel}

	agentID := a.ID
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("Heartbeat loop panicked",
					slog.String("agent_id", agentID),
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())))
			}
		}()

		timer := time.NewTimer(offset)
		defer timer.Stop()
		for {
			select {
			case <-timerCtx.Done():
				return
			case <-timer.C:
				s.fire(timerCtx, agentID)
				timer.Reset(period)
			}
		}
	}()
}

// TriggerNow fires one heartbeat immediately. The agent must belong to the
// team and be running.
func (s *Scheduler) TriggerNow(ctx context.Context, teamID, agentID string) error {
	a, err := s.agents.GetAgent(ctx, teamID, agentID)
	if err != nil {
		return err
	}
	if a.Status != agent.StatusRunning {
		return services.NewValidationError("agent_id", "agent is not running")
	}
	s.fire(ctx, agentID)
	return nil
}

// fire runs one heartbeat through the gates and, when they pass, the
// reasoning loop.
func (s *Scheduler) fire(ctx context.Context, agentID string) {
	a, err := s.agents.ListRunningProactive(ctx)
	if err != nil {
		s.logger.Error("Heartbeat lookup failed", slog.String("error", err.Error()))
		return
	}
	var current *ent.Agent
	for _, candidate := range a {
		if candidate.ID == agentID {
			current = candidate
			break
		}
	}
	if current == nil {
		// Stopped since the timer was armed.
		return
	}

	logger := s.logger.With(slog.String("agent_id", agentID), slog.String("team_id", current.TeamID))

	if !withinActiveHours(time.Now().UTC().Hour(), current.ActiveHoursStart, current.ActiveHoursEnd) {
		return
	}

	if s.hostedMode {
		hasSub, err := s.teams.HasActiveSubscription(ctx, current.TeamID)
		if err != nil {
			logger.Error("Subscription check failed", slog.String("error", err.Error()))
			return
		}
		// An unsubscribed team keeps firing as long as it has credits left.
		if !hasSub {
			balance, err := s.credits.Balance(ctx, current.TeamID)
			if err != nil {
				logger.Error("Balance check failed", slog.String("error", err.Error()))
				return
			}
			if balance <= 0 {
				_, _ = s.activity.Record(ctx, current.TeamID, agentID, "heartbeat_skipped",
					"no active subscription and no credits", nil)
				return
			}
		}
	}

	target, err := s.resolver.Resolve(ctx, current.TeamID, modelSpec(current))
	if err != nil {
		logger.Error("Model resolution failed", slog.String("error", err.Error()))
		return
	}
	if !target.SkipCredits && target.CostPerUse > 0 {
		balance, err := s.credits.Balance(ctx, current.TeamID)
		if err != nil {
			logger.Error("Balance check failed", slog.String("error", err.Error()))
			return
		}
		if balance < target.CostPerUse {
			_, _ = s.activity.Record(ctx, current.TeamID, agentID, "credits_exhausted",
				"heartbeat skipped: insufficient credits", nil)
			return
		}
	}

	result, err := s.runner.Execute(ctx, runtime.Run{
		TeamID:       current.TeamID,
		AgentID:      agentID,
		Spec:         modelSpec(current),
		SystemPrompt: current.SystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: heartbeatPrompt},
		},
	})
	if err != nil {
		logger.Error("Heartbeat run failed", slog.String("error", err.Error()))
		_, _ = s.activity.Record(ctx, current.TeamID, agentID, "heartbeat_failed", err.Error(), nil)
		return
	}

	// A no-op heartbeat leaves no message and no activity trail.
	if result.FinalText == "" || strings.Contains(result.FinalText, noopSentinel) {
		return
	}

	if ch, err := s.chat.GetOrCreateDM(ctx, current.TeamID, agentID); err == nil {
		if _, err := s.chat.SendMessage(ctx, current.TeamID, ch.ID, "agent", agentID, result.FinalText); err != nil {
			logger.Error("Failed to post heartbeat summary", slog.String("error", err.Error()))
		}
	}
	_, _ = s.activity.Record(ctx, current.TeamID, agentID, "heartbeat_proactive", result.FinalText, map[string]any{
		"steps":       result.Steps,
		"interrupted": result.Interrupted,
	})
}

// withinActiveHours applies the [start, end) UTC window. start == end means
// always active; start > end wraps past midnight.
func withinActiveHours(hour, start, end int) bool {
	if start == end {
		return true
	}
	if start < end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}

func modelSpec(a *ent.Agent) llm.ModelSpec {
	spec := llm.ModelSpec{ModelID: a.ModelID}
	if a.ModelEndpoint != nil {
		spec.Endpoint = *a.ModelEndpoint
	}
	if a.ModelName != nil {
		spec.Name = *a.ModelName
	}
	return spec
}
