package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/ent/agent"
	"github.com/crewforge/crewd/pkg/llm"
	"github.com/crewforge/crewd/pkg/runtime"
	"github.com/crewforge/crewd/pkg/services"
	testdb "github.com/crewforge/crewd/test/database"
)

type freeTargetResolver struct{}

func (freeTargetResolver) Resolve(context.Context, string, llm.ModelSpec) (llm.Target, error) {
	return llm.Target{Endpoint: "http://fake", Model: "fake", SkipCredits: true}, nil
}

// stubRunner answers every heartbeat with a fixed final text.
type stubRunner struct {
	mu    sync.Mutex
	calls int
	text  string
}

func (r *stubRunner) Execute(context.Context, runtime.Run) (*runtime.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return &runtime.Result{FinalText: r.text, Steps: 1}, nil
}

func (r *stubRunner) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *stubRunner) setText(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.text = text
}

func seedRunningAgent(t *testing.T, client *ent.Client, teamID, id string) {
	t.Helper()
	err := client.Agent.Create().
		SetID(id).
		SetTeamID(teamID).
		SetName("Worker").
		SetSystemPrompt("You work.").
		SetStatus(agent.StatusRunning).
		SetProactive(true).
		Exec(context.Background())
	require.NoError(t, err)
}

func newTestScheduler(t *testing.T, hosted bool, runner AgentRunner) (*Scheduler, *ent.Client, *services.TeamService, *services.CreditService, *services.ActivityService, *services.ChatService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	agents := services.NewAgentService(client.Client)
	teams := services.NewTeamService(client.Client)
	credits := services.NewCreditService(client.Client)
	chat := services.NewChatService(client.Client)
	activity := services.NewActivityService(client.Client)
	s := New(agents, teams, credits, chat, activity, freeTargetResolver{}, runner, hosted)
	return s, client.Client, teams, credits, activity, chat
}

func TestFireHostedGateHonorsCredits(t *testing.T) {
	runner := &stubRunner{text: "Reviewed the task board."}
	s, client, teams, credits, activity, _ := newTestScheduler(t, true, runner)
	ctx := context.Background()

	team, err := teams.CreateTeam(ctx, "Hosted", "user-1")
	require.NoError(t, err)
	seedRunningAgent(t, client, team.ID, "a1")

	// No subscription and no credits: the heartbeat is skipped.
	s.fire(ctx, "a1")
	assert.Equal(t, 0, runner.count())
	skipped, err := activity.ListEvents(ctx, team.ID,
		services.ActivityFilter{EventType: "heartbeat_skipped"}, 10, 0)
	require.NoError(t, err)
	require.Len(t, skipped, 1)

	// A positive balance keeps the heartbeat alive without a subscription.
	require.NoError(t, credits.TopUp(ctx, team.ID, 10, "signup_grant"))
	s.fire(ctx, "a1")
	assert.Equal(t, 1, runner.count())
}

func TestFireDiscardsNoopHeartbeats(t *testing.T) {
	runner := &stubRunner{text: "[no-op]"}
	s, client, teams, _, activity, chat := newTestScheduler(t, false, runner)
	ctx := context.Background()

	team, err := teams.CreateTeam(ctx, "Quiet", "user-1")
	require.NoError(t, err)
	seedRunningAgent(t, client, team.ID, "a1")

	// A no-op heartbeat posts nothing and records nothing.
	s.fire(ctx, "a1")
	require.Equal(t, 1, runner.count())
	events, err := activity.ListEvents(ctx, team.ID,
		services.ActivityFilter{EventType: "heartbeat_proactive"}, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, events)
	channels, err := chat.ListChannels(ctx, team.ID)
	require.NoError(t, err)
	assert.Empty(t, channels)

	// A productive heartbeat lands in the DM and in the activity trail.
	runner.setText("Closed two stale tasks.")
	s.fire(ctx, "a1")
	events, err = activity.ListEvents(ctx, team.ID,
		services.ActivityFilter{EventType: "heartbeat_proactive"}, 10, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Closed two stale tasks.", events[0].Summary)

	dm, err := chat.GetOrCreateDM(ctx, team.ID, "a1")
	require.NoError(t, err)
	page, err := chat.ListMessages(ctx, team.ID, dm.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, page.Messages, 1)
	assert.Equal(t, "Closed two stale tasks.", page.Messages[0].Content)
}

func TestTriggerNowRequiresRunningAgent(t *testing.T) {
	runner := &stubRunner{text: "[no-op]"}
	s, client, teams, _, _, _ := newTestScheduler(t, false, runner)
	ctx := context.Background()

	team, err := teams.CreateTeam(ctx, "Trigger", "user-1")
	require.NoError(t, err)

	err = client.Agent.Create().
		SetID("stopped-1").
		SetTeamID(team.ID).
		SetName("Idle").
		SetSystemPrompt("You rest.").
		Exec(ctx)
	require.NoError(t, err)

	err = s.TriggerNow(ctx, team.ID, "stopped-1")
	assert.True(t, services.IsValidationError(err))
	assert.Equal(t, 0, runner.count())

	// Another tenant's agent looks missing.
	err = s.TriggerNow(ctx, "other-team", "stopped-1")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestStaggerOffset(t *testing.T) {
	period := 600 * time.Second

	t.Run("three agents spread across the period", func(t *testing.T) {
		assert.Equal(t, 0*time.Second, staggerOffset(period, 0, 3))
		assert.Equal(t, 200*time.Second, staggerOffset(period, 1, 3))
		assert.Equal(t, 400*time.Second, staggerOffset(period, 2, 3))
	})

	t.Run("single agent fires immediately", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), staggerOffset(period, 0, 1))
	})

	t.Run("offsets stay inside the period", func(t *testing.T) {
		for n := 1; n <= 10; n++ {
			for k := 0; k < n; k++ {
				offset := staggerOffset(period, k, n)
				assert.GreaterOrEqual(t, offset, time.Duration(0))
				assert.Less(t, offset, period)
			}
		}
	})
}

func TestWithinActiveHours(t *testing.T) {
	t.Run("plain window is half-open", func(t *testing.T) {
		assert.True(t, withinActiveHours(9, 9, 17))
		assert.True(t, withinActiveHours(16, 9, 17))
		assert.False(t, withinActiveHours(17, 9, 17))
		assert.False(t, withinActiveHours(8, 9, 17))
	})

	t.Run("equal bounds mean always active", func(t *testing.T) {
		for hour := 0; hour < 24; hour++ {
			assert.True(t, withinActiveHours(hour, 0, 0))
		}
	})

	t.Run("window wraps past midnight", func(t *testing.T) {
		assert.True(t, withinActiveHours(23, 22, 6))
		assert.True(t, withinActiveHours(2, 22, 6))
		assert.False(t, withinActiveHours(6, 22, 6))
		assert.False(t, withinActiveHours(12, 22, 6))
	})
}
