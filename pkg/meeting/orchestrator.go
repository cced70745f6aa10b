// Package meeting runs real-time multi-agent meetings: a per-meeting
// goroutine owns the transcript and serializes the turn loop, streaming
// token deltas to in-process subscribers and the events bus.
package meeting

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/ent/meeting"
	"github.com/crewforge/crewd/ent/meetingmessage"
	"github.com/crewforge/crewd/pkg/events"
	"github.com/crewforge/crewd/pkg/llm"
	"github.com/crewforge/crewd/pkg/models"
	"github.com/crewforge/crewd/pkg/services"
)

const (
	// idleTimeout ends a meeting that has seen no human input since the
	// introduction round finished.
	idleTimeout = 10 * time.Minute

	subscriberBuffer = 64
	maxTranscriptLen = 40 // turns fed back into the model context
)

// Resolver resolves an agent's model spec to a concrete target.
type Resolver interface {
	Resolve(ctx context.Context, teamID string, spec llm.ModelSpec) (llm.Target, error)
}

// StreamClient performs streamed completions. Satisfied by *llm.Client.
type StreamClient interface {
	ChatCompletionStream(ctx context.Context, target llm.Target, req llm.ChatRequest, onChunk func(llm.StreamChunk)) error
}

// CreditLedger bills meeting turns. Satisfied by *services.CreditService.
type CreditLedger interface {
	Deduct(ctx context.Context, teamID string, amount int, reason, correlationID string) error
	Refund(ctx context.Context, teamID string, amount int, reason, correlationID string) error
}

// Publisher pushes meeting events onto the cross-pod bus. Satisfied by
// *events.EventPublisher.
type Publisher interface {
	PublishMeetingStatus(ctx context.Context, payload events.MeetingStatusPayload) error
	PublishMeetingMessageCompleted(ctx context.Context, payload events.MeetingMessageCompletedPayload) error
	PublishMeetingStreamChunk(ctx context.Context, payload events.MeetingStreamChunkPayload) error
}

// Orchestrator owns all active meetings in this process.
type Orchestrator struct {
	client    *ent.Client
	agents    *services.AgentService
	credits   CreditLedger
	resolver  Resolver
	llm       StreamClient
	publisher Publisher
	logger    *slog.Logger

	mu       sync.Mutex
	meetings map[string]*liveMeeting

	rootCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New creates an Orchestrator. Call Start before starting meetings and
// Shutdown on process exit.
func New(client *ent.Client, agents *services.AgentService, credits CreditLedger, resolver Resolver, streamClient StreamClient, publisher Publisher) *Orchestrator {
	return &Orchestrator{
		client:    client,
		agents:    agents,
		credits:   credits,
		resolver:  resolver,
		llm:       streamClient,
		publisher: publisher,
		logger:    slog.With("component", "meeting"),
		meetings:  make(map[string]*liveMeeting),
	}
}

// Start arms the orchestrator's root context.
func (o *Orchestrator) Start(ctx context.Context) {
	o.rootCtx, o.cancel = context.WithCancel(ctx)
}

// Shutdown ends all active meetings and waits for their loops to exit.
func (o *Orchestrator) Shutdown() {
	if o.cancel != nil {
		o.cancel()
	}
	o.wg.Wait()
}

type speaker struct {
	id           string
	name         string
	systemPrompt string
	spec         llm.ModelSpec
}

type interjection struct {
	author  string
	content string
}

type liveMeeting struct {
	id       string
	teamID   string
	title    string
	speakers []speaker // round-robin order, advisor first

	mu              sync.Mutex
	queue           []interjection
	raised          bool
	nextSub         int
	subs            map[int]chan models.MeetingEvent
	turn            int
	transcriptLines []string

	wake   chan struct{} // signaled on new interjection
	cancel context.CancelFunc
}

// StartMeetAndGreet creates and launches a meet-and-greet meeting: the
// advisor frames the meeting, then each agent introduces itself, then the
// meeting idles waiting for human messages.
func (o *Orchestrator) StartMeetAndGreet(httpCtx context.Context, teamID string, req models.StartMeetingRequest) (*ent.Meeting, error) {
	if len(req.AgentIDs) == 0 {
		return nil, services.NewValidationError("agent_ids", "at least one agent is required")
	}
	if req.AdvisorAgentID == "" {
		return nil, services.NewValidationError("advisor_agent_id", "advisor agent is required")
	}

	speakers, err := o.loadSpeakers(httpCtx, teamID, req)
	if err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = "Meet & Greet"
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	builder := o.client.Meeting.Create().
		SetID(uuid.New().String()).
		SetTeamID(teamID).
		SetType("meet_and_greet").
		SetTitle(title).
		SetAgentIds(req.AgentIDs).
		SetAdvisorAgentID(req.AdvisorAgentID)
	if req.CompanyName != "" {
		builder.SetCompanyName(req.CompanyName)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	m := &liveMeeting{
		id:       row.ID,
		teamID:   teamID,
		title:    title,
		speakers: speakers,
		subs:     make(map[int]chan models.MeetingEvent),
		wake:     make(chan struct{}, 1),
	}

	loopCtx, loopCancel := context.WithCancel(o.rootCtx)
	m.cancel = loopCancel

	o.mu.Lock()
	o.meetings[row.ID] = m
	o.mu.Unlock()

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				o.logger.Error("Meeting loop panicked",
					slog.String("meeting_id", m.id),
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())))
			}
			o.finish(m)
		}()
		o.run(loopCtx, m, req.CompanyName)
	}()

	return row, nil
}

// loadSpeakers verifies every agent belongs to the team and builds the
// round-robin order: advisor first, then the remaining agents in request
// order.
func (o *Orchestrator) loadSpeakers(ctx context.Context, teamID string, req models.StartMeetingRequest) ([]speaker, error) {
	order := []string{req.AdvisorAgentID}
	for _, id := range req.AgentIDs {
		if id != req.AdvisorAgentID {
			order = append(order, id)
		}
	}

	speakers := make([]speaker, 0, len(order))
	for _, id := range order {
		a, err := o.agents.GetAgent(ctx, teamID, id)
		if err != nil {
			return nil, err
		}
		spec := llm.ModelSpec{ModelID: a.ModelID}
		if a.ModelEndpoint != nil {
			spec.Endpoint = *a.ModelEndpoint
		}
		if a.ModelName != nil {
			spec.Name = *a.ModelName
		}
		speakers = append(speakers, speaker{
			id:           a.ID,
			name:         a.Name,
			systemPrompt: a.SystemPrompt,
			spec:         spec,
		})
	}
	return speakers, nil
}

// Subscribe attaches a new event subscriber to an active meeting. The
// returned cancel function detaches it; other subscribers are unaffected.
func (o *Orchestrator) Subscribe(teamID, meetingID string) (<-chan models.MeetingEvent, func(), error) {
	m, err := o.lookup(teamID, meetingID)
	if err != nil {
		return nil, nil, err
	}

	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	ch := make(chan models.MeetingEvent, subscriberBuffer)
	m.subs[id] = ch
	m.mu.Unlock()

	cancel := func() {
		m.mu.Lock()
		if _, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(ch)
		}
		m.mu.Unlock()
	}
	return ch, cancel, nil
}

// Inject queues a human message for delivery between turns.
func (o *Orchestrator) Inject(teamID, meetingID, author, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return services.NewValidationError("content", "content is required")
	}
	m, err := o.lookup(teamID, meetingID)
	if err != nil {
		return err
	}
	if author == "" {
		author = "user"
	}

	m.mu.Lock()
	m.queue = append(m.queue, interjection{author: author, content: content})
	m.mu.Unlock()

	select {
	case m.wake <- struct{}{}:
	default:
	}
	return nil
}

// RaiseHand interrupts the current turn at the next sentence boundary.
func (o *Orchestrator) RaiseHand(teamID, meetingID string) error {
	m, err := o.lookup(teamID, meetingID)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.raised = true
	m.mu.Unlock()
	return nil
}

// End stops a meeting's loop. The loop persists the ended state.
func (o *Orchestrator) End(teamID, meetingID string) error {
	m, err := o.lookup(teamID, meetingID)
	if err != nil {
		return err
	}
	m.cancel()
	return nil
}

// lookup scopes the active-meeting lookup to the tenant. A meeting owned by
// another team is indistinguishable from a missing one.
func (o *Orchestrator) lookup(teamID, meetingID string) (*liveMeeting, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	m, ok := o.meetings[meetingID]
	if !ok || m.teamID != teamID {
		return nil, services.ErrNotFound
	}
	return m, nil
}

// run is the meeting's turn loop. It serializes all speaking: the
// introduction round first, then an idle loop answering human messages
// until the idle timeout or cancellation.
func (o *Orchestrator) run(ctx context.Context, m *liveMeeting, companyName string) {
	if o.publisher != nil {
		_ = o.publisher.PublishMeetingStatus(ctx, events.MeetingStatusPayload{
			Type:      events.EventTypeMeetingStatus,
			TeamID:    m.teamID,
			MeetingID: m.id,
			Status:    events.MeetingStatusActive,
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		})
	}

	// Introduction round: advisor first, then each agent once.
	next := 0
	for i := range m.speakers {
		if ctx.Err() != nil {
			return
		}
		o.drainInterjections(ctx, m)
		if !o.speakTurn(ctx, m, m.speakers[i], companyName) {
			return
		}
		next = (i + 1) % len(m.speakers)
	}

	// Idle loop: each human message gets a response from the next agent in
	// rotation.
	idle := time.NewTimer(idleTimeout)
	defer idle.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-idle.C:
			return
		case <-m.wake:
			if !idle.Stop() {
				<-idle.C
			}
			for o.drainInterjections(ctx, m) {
				if ctx.Err() != nil {
					return
				}
				if !o.speakTurn(ctx, m, m.speakers[next], companyName) {
					return
				}
				next = (next + 1) % len(m.speakers)
			}
			idle.Reset(idleTimeout)
		}
	}
}

// drainInterjections delivers queued human messages into the transcript.
// Returns true when at least one message was delivered.
func (o *Orchestrator) drainInterjections(ctx context.Context, m *liveMeeting) bool {
	m.mu.Lock()
	pending := m.queue
	m.queue = nil
	m.raised = false
	m.mu.Unlock()

	for _, in := range pending {
		row, err := o.persistMessage(ctx, m, meetingmessage.SpeakerKindHuman, in.author, in.content)
		if err != nil {
			o.logger.Error("Failed to persist interjection",
				slog.String("meeting_id", m.id), slog.String("error", err.Error()))
			continue
		}
		m.appendTranscript(in.author, in.content)
		m.broadcast(models.MeetingEvent{
			Type:      models.MeetingEventHumanInjected,
			MeetingID: m.id,
			AgentName: in.author,
			Content:   in.content,
		})
		o.publishCompleted(ctx, m, row, "human", in.author)
	}
	return len(pending) > 0
}

// speakTurn runs one agent turn: bill, stream, persist, broadcast. Returns
// false when the meeting must end (credits exhausted or cancellation).
func (o *Orchestrator) speakTurn(ctx context.Context, m *liveMeeting, sp speaker, companyName string) bool {
	target, err := o.resolver.Resolve(ctx, m.teamID, sp.spec)
	if err != nil {
		o.logger.Error("Model resolution failed",
			slog.String("meeting_id", m.id), slog.String("agent_id", sp.id),
			slog.String("error", err.Error()))
		return ctx.Err() == nil
	}

	billed := !target.SkipCredits && target.CostPerUse > 0
	correlationID := uuid.New().String()
	if billed {
		if err := o.credits.Deduct(ctx, m.teamID, target.CostPerUse, "meeting_turn", correlationID); err != nil {
			o.systemMessage(ctx, m, "Meeting ended: insufficient credits.")
			return false
		}
	}

	m.mu.Lock()
	m.turn++
	turn := m.turn
	m.mu.Unlock()

	m.broadcast(models.MeetingEvent{
		Type:      models.MeetingEventTurnStart,
		MeetingID: m.id,
		AgentID:   sp.id,
		AgentName: sp.name,
		Turn:      turn,
	})

	streamCtx, stopStream := context.WithCancel(ctx)
	defer stopStream()

	var builder strings.Builder
	onChunk := func(chunk llm.StreamChunk) {
		if chunk.Done || chunk.Delta == "" {
			return
		}
		builder.WriteString(chunk.Delta)
		m.broadcast(models.MeetingEvent{
			Type:      models.MeetingEventDelta,
			MeetingID: m.id,
			AgentID:   sp.id,
			Content:   chunk.Delta,
			Turn:      turn,
		})
		if o.publisher != nil {
			_ = o.publisher.PublishMeetingStreamChunk(ctx, events.MeetingStreamChunkPayload{
				Type:      events.EventTypeMeetingStreamChunk,
				MeetingID: m.id,
				SpeakerID: sp.id,
				Delta:     chunk.Delta,
				Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
			})
		}
		// A raised hand yields the floor at the end of the current sentence.
		if m.handRaised() && endsSentence(builder.String()) {
			stopStream()
		}
	}

	err = o.llm.ChatCompletionStream(streamCtx, target, llm.ChatRequest{
		Messages: m.turnMessages(sp, companyName),
	}, onChunk)
	interrupted := streamCtx.Err() != nil && ctx.Err() == nil
	if err != nil && !interrupted {
		if billed {
			_ = o.credits.Refund(ctx, m.teamID, target.CostPerUse, "provider_failure", correlationID)
		}
		o.logger.Error("Meeting turn failed",
			slog.String("meeting_id", m.id), slog.String("agent_id", sp.id),
			slog.String("error", err.Error()))
		return ctx.Err() == nil
	}

	content := strings.TrimSpace(builder.String())
	if content == "" {
		return ctx.Err() == nil
	}

	row, err := o.persistMessage(ctx, m, meetingmessage.SpeakerKindAgent, sp.id, content)
	if err != nil {
		o.logger.Error("Failed to persist turn",
			slog.String("meeting_id", m.id), slog.String("error", err.Error()))
		return ctx.Err() == nil
	}
	m.appendTranscript(sp.name, content)
	m.broadcast(models.MeetingEvent{
		Type:      models.MeetingEventTurnEnd,
		MeetingID: m.id,
		AgentID:   sp.id,
		AgentName: sp.name,
		Content:   content,
		Turn:      turn,
	})
	o.publishCompleted(ctx, m, row, "agent", sp.id)
	return ctx.Err() == nil
}

// turnMessages builds the completion request for one speaker: persona plus
// meeting framing as the system prompt, the rendered transcript as the user
// turn.
func (m *liveMeeting) turnMessages(sp speaker, companyName string) []llm.Message {
	var prompt strings.Builder
	prompt.WriteString(sp.systemPrompt)
	prompt.WriteString("\n\nYou are in a live meeting titled ")
	fmt.Fprintf(&prompt, "%q", m.title)
	if companyName != "" {
		fmt.Fprintf(&prompt, " at %s", companyName)
	}
	prompt.WriteString(". Speak in your own voice, briefly, as ")
	prompt.WriteString(sp.name)
	prompt.WriteString(". Do not repeat what others already said.")

	m.mu.Lock()
	lines := m.transcriptLines
	if len(lines) > maxTranscriptLen {
		lines = lines[len(lines)-maxTranscriptLen:]
	}
	transcript := strings.Join(lines, "\n")
	m.mu.Unlock()

	user := "The meeting transcript so far:\n" + transcript + "\n\nIt is now your turn to speak."
	if transcript == "" {
		user = "The meeting is just starting. Open it."
	}

	return []llm.Message{
		{Role: llm.RoleSystem, Content: prompt.String()},
		{Role: llm.RoleUser, Content: user},
	}
}

func (m *liveMeeting) appendTranscript(name, content string) {
	m.mu.Lock()
	m.transcriptLines = append(m.transcriptLines, name+": "+content)
	m.mu.Unlock()
}

func (m *liveMeeting) handRaised() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.raised
}

// broadcast delivers an event to every subscriber, dropping it for
// subscribers whose buffer is full.
func (m *liveMeeting) broadcast(ev models.MeetingEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (o *Orchestrator) persistMessage(ctx context.Context, m *liveMeeting, kind meetingmessage.SpeakerKind, speakerID, content string) (*ent.MeetingMessage, error) {
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	return o.client.MeetingMessage.Create().
		SetMeetingID(m.id).
		SetTeamID(m.teamID).
		SetSpeakerKind(kind).
		SetSpeakerID(speakerID).
		SetContent(content).
		Save(saveCtx)
}

func (o *Orchestrator) systemMessage(ctx context.Context, m *liveMeeting, content string) {
	row, err := o.persistMessage(ctx, m, meetingmessage.SpeakerKindSystem, "", content)
	if err != nil {
		o.logger.Error("Failed to persist system message",
			slog.String("meeting_id", m.id), slog.String("error", err.Error()))
		return
	}
	m.appendTranscript("system", content)
	o.publishCompleted(ctx, m, row, "system", "")
}

func (o *Orchestrator) publishCompleted(ctx context.Context, m *liveMeeting, row *ent.MeetingMessage, speakerKind, speakerID string) {
	if o.publisher == nil {
		return
	}
	_ = o.publisher.PublishMeetingMessageCompleted(ctx, events.MeetingMessageCompletedPayload{
		Type:        events.EventTypeMeetingMessageCompleted,
		TeamID:      m.teamID,
		MeetingID:   m.id,
		MessageID:   row.ID,
		SpeakerKind: speakerKind,
		SpeakerID:   speakerID,
		Content:     row.Content,
		Timestamp:   row.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
}

// finish marks the meeting ended, tells subscribers, and removes it from
// the active set.
func (o *Orchestrator) finish(m *liveMeeting) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := o.client.Meeting.UpdateOneID(m.id).
		SetStatus(meeting.StatusEnded).
		SetEndedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		o.logger.Error("Failed to mark meeting ended",
			slog.String("meeting_id", m.id), slog.String("error", err.Error()))
	}

	m.broadcast(models.MeetingEvent{
		Type:      models.MeetingEventMeetingEnd,
		MeetingID: m.id,
	})
	if o.publisher != nil {
		_ = o.publisher.PublishMeetingStatus(ctx, events.MeetingStatusPayload{
			Type:      events.EventTypeMeetingStatus,
			TeamID:    m.teamID,
			MeetingID: m.id,
			Status:    events.MeetingStatusEnded,
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		})
	}

	m.mu.Lock()
	for id, ch := range m.subs {
		delete(m.subs, id)
		close(ch)
	}
	m.mu.Unlock()

	o.mu.Lock()
	delete(o.meetings, m.id)
	o.mu.Unlock()
}

// endsSentence reports whether the accumulated text stops at a safe
// interruption boundary.
func endsSentence(text string) bool {
	trimmed := strings.TrimRight(text, " \t")
	if trimmed == "" {
		return false
	}
	switch trimmed[len(trimmed)-1] {
	case '.', '!', '?', '\n':
		return true
	}
	return false
}
