package meeting_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewd/ent"
	entmeeting "github.com/crewforge/crewd/ent/meeting"
	"github.com/crewforge/crewd/ent/meetingmessage"
	"github.com/crewforge/crewd/pkg/llm"
	"github.com/crewforge/crewd/pkg/meeting"
	"github.com/crewforge/crewd/pkg/models"
	"github.com/crewforge/crewd/pkg/services"
	testdb "github.com/crewforge/crewd/test/database"
)

type freeResolver struct{}

func (freeResolver) Resolve(context.Context, string, llm.ModelSpec) (llm.Target, error) {
	return llm.Target{Endpoint: "http://fake", Model: "fake", SkipCredits: true}, nil
}

// scriptedStream emits a fixed set of deltas per call. A non-nil gate
// blocks streaming until the test closes it, so subscribers can attach
// before the first turn.
type scriptedStream struct {
	gate  chan struct{}
	mu    sync.Mutex
	calls int
	turns [][]string
}

func (s *scriptedStream) ChatCompletionStream(ctx context.Context, _ llm.Target, _ llm.ChatRequest, onChunk func(llm.StreamChunk)) error {
	if s.gate != nil {
		select {
		case <-s.gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.mu.Lock()
	deltas := []string{"Hello. "}
	if s.calls < len(s.turns) {
		deltas = s.turns[s.calls]
	}
	s.calls++
	s.mu.Unlock()

	for _, d := range deltas {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		onChunk(llm.StreamChunk{Delta: d})
	}
	onChunk(llm.StreamChunk{Done: true})
	return nil
}

type noopLedger struct{}

func (noopLedger) Deduct(context.Context, string, int, string, string) error { return nil }
func (noopLedger) Refund(context.Context, string, int, string, string) error { return nil }

func seedAgent(t *testing.T, client *ent.Client, teamID, id, name string) {
	t.Helper()
	err := client.Agent.Create().
		SetID(id).
		SetTeamID(teamID).
		SetName(name).
		SetSystemPrompt("You are " + name + ".").
		Exec(context.Background())
	require.NoError(t, err)
}

func collect(ch <-chan models.MeetingEvent, want models.MeetingEventType, timeout time.Duration) []models.MeetingEvent {
	var got []models.MeetingEvent
	deadline := time.After(timeout)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return got
			}
			if ev.Type == want {
				got = append(got, ev)
			}
			if ev.Type == models.MeetingEventMeetingEnd {
				return got
			}
		case <-deadline:
			return got
		}
	}
}

func TestMeetAndGreetIntroductionRound(t *testing.T) {
	client := testdb.NewTestClient(t)
	agents := services.NewAgentService(client.Client)
	stream := &scriptedStream{
		gate: make(chan struct{}),
		turns: [][]string{
			{"Welcome everyone. "},
			{"I am ", "Ada. "},
			{"I am Bob. "},
		},
	}

	orch := meeting.New(client.Client, agents, noopLedger{}, freeResolver{}, stream, nil)
	orch.Start(context.Background())
	defer orch.Shutdown()

	seedAgent(t, client.Client, "team-1", "advisor", "Advisor")
	seedAgent(t, client.Client, "team-1", "ada", "Ada")
	seedAgent(t, client.Client, "team-1", "bob", "Bob")

	row, err := orch.StartMeetAndGreet(context.Background(), "team-1", models.StartMeetingRequest{
		AgentIDs:       []string{"ada", "bob"},
		AdvisorAgentID: "advisor",
	})
	require.NoError(t, err)
	assert.Equal(t, "meet_and_greet", row.Type)

	ch, cancel, err := orch.Subscribe("team-1", row.ID)
	require.NoError(t, err)
	defer cancel()
	close(stream.gate)

	ends := collect(ch, models.MeetingEventTurnEnd, 5*time.Second)
	require.Len(t, ends, 3)
	assert.Equal(t, "advisor", ends[0].AgentID)
	assert.Equal(t, "Welcome everyone.", ends[0].Content)
	assert.Equal(t, "ada", ends[1].AgentID)
	assert.Equal(t, "I am Ada.", ends[1].Content)
	assert.Equal(t, "bob", ends[2].AgentID)

	msgs := client.MeetingMessage.Query().
		Where(meetingmessage.MeetingID(row.ID)).
		Order(ent.Asc(meetingmessage.FieldID)).
		AllX(context.Background())
	require.Len(t, msgs, 3)
	assert.Equal(t, meetingmessage.SpeakerKindAgent, msgs[0].SpeakerKind)
	assert.Equal(t, "advisor", msgs[0].SpeakerID)
}

func TestMeetingHumanInterjection(t *testing.T) {
	client := testdb.NewTestClient(t)
	agents := services.NewAgentService(client.Client)
	stream := &scriptedStream{}

	orch := meeting.New(client.Client, agents, noopLedger{}, freeResolver{}, stream, nil)
	orch.Start(context.Background())
	defer orch.Shutdown()

	seedAgent(t, client.Client, "team-1", "advisor", "Advisor")

	row, err := orch.StartMeetAndGreet(context.Background(), "team-1", models.StartMeetingRequest{
		AgentIDs:       []string{"advisor"},
		AdvisorAgentID: "advisor",
	})
	require.NoError(t, err)

	ch, cancel, err := orch.Subscribe("team-1", row.ID)
	require.NoError(t, err)
	defer cancel()

	// Wait for the introduction turn to finish, then interject.
	require.Eventually(t, func() bool {
		stream.mu.Lock()
		defer stream.mu.Unlock()
		return stream.calls >= 1
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, orch.Inject("team-1", row.ID, "casey", "What is on the roadmap?"))

	injected := collect(ch, models.MeetingEventHumanInjected, 5*time.Second)
	require.Len(t, injected, 1)
	assert.Equal(t, "What is on the roadmap?", injected[0].Content)

	// The interjection gets an agent response.
	require.Eventually(t, func() bool {
		stream.mu.Lock()
		defer stream.mu.Unlock()
		return stream.calls >= 2
	}, 5*time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		n := client.MeetingMessage.Query().
			Where(meetingmessage.MeetingID(row.ID)).
			CountX(context.Background())
		return n >= 3 // intro + human + response
	}, 5*time.Second, 10*time.Millisecond)
}

func TestMeetingEndPersistsStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	agents := services.NewAgentService(client.Client)

	orch := meeting.New(client.Client, agents, noopLedger{}, freeResolver{}, &scriptedStream{}, nil)
	orch.Start(context.Background())
	defer orch.Shutdown()

	seedAgent(t, client.Client, "team-1", "advisor", "Advisor")

	row, err := orch.StartMeetAndGreet(context.Background(), "team-1", models.StartMeetingRequest{
		AgentIDs:       []string{"advisor"},
		AdvisorAgentID: "advisor",
	})
	require.NoError(t, err)

	ch, cancel, err := orch.Subscribe("team-1", row.ID)
	require.NoError(t, err)
	defer cancel()

	require.NoError(t, orch.End("team-1", row.ID))

	// Subscriber sees meeting_end and the channel closes.
	sawEnd := false
	deadline := time.After(5 * time.Second)
	for !sawEnd {
		select {
		case ev, ok := <-ch:
			if !ok {
				sawEnd = true
			} else if ev.Type == models.MeetingEventMeetingEnd {
				sawEnd = true
			}
		case <-deadline:
			t.Fatal("timed out waiting for meeting_end")
		}
	}

	require.Eventually(t, func() bool {
		got := client.Meeting.GetX(context.Background(), row.ID)
		return got.Status == entmeeting.StatusEnded && got.EndedAt != nil
	}, 5*time.Second, 10*time.Millisecond)

	// Ended meetings are no longer addressable.
	err = orch.Inject("team-1", row.ID, "casey", "hello?")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestMeetingHidesOtherTenants(t *testing.T) {
	client := testdb.NewTestClient(t)
	agents := services.NewAgentService(client.Client)

	orch := meeting.New(client.Client, agents, noopLedger{}, freeResolver{}, &scriptedStream{}, nil)
	orch.Start(context.Background())
	defer orch.Shutdown()

	seedAgent(t, client.Client, "team-1", "advisor", "Advisor")

	row, err := orch.StartMeetAndGreet(context.Background(), "team-1", models.StartMeetingRequest{
		AgentIDs:       []string{"advisor"},
		AdvisorAgentID: "advisor",
	})
	require.NoError(t, err)

	// A caller from another team sees the live meeting as missing.
	_, _, err = orch.Subscribe("team-2", row.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.ErrorIs(t, orch.Inject("team-2", row.ID, "mallory", "hi"), services.ErrNotFound)
	assert.ErrorIs(t, orch.RaiseHand("team-2", row.ID), services.ErrNotFound)
	assert.ErrorIs(t, orch.End("team-2", row.ID), services.ErrNotFound)

	// The owning team still can.
	_, cancel, err := orch.Subscribe("team-1", row.ID)
	require.NoError(t, err)
	cancel()
	require.NoError(t, orch.End("team-1", row.ID))
}

func TestMeetingValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	agents := services.NewAgentService(client.Client)
	orch := meeting.New(client.Client, agents, noopLedger{}, freeResolver{}, &scriptedStream{}, nil)
	orch.Start(context.Background())
	defer orch.Shutdown()

	_, err := orch.StartMeetAndGreet(context.Background(), "team-1", models.StartMeetingRequest{
		AdvisorAgentID: "advisor",
	})
	assert.Error(t, err)

	_, err = orch.StartMeetAndGreet(context.Background(), "team-1", models.StartMeetingRequest{
		AgentIDs: []string{"a"},
	})
	assert.Error(t, err)

	// Unknown agents are rejected before the meeting row exists.
	_, err = orch.StartMeetAndGreet(context.Background(), "team-1", models.StartMeetingRequest{
		AgentIDs:       []string{"ghost"},
		AdvisorAgentID: "ghost",
	})
	assert.ErrorIs(t, err, services.ErrNotFound)
}
