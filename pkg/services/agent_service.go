package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/ent/agent"
	"github.com/crewforge/crewd/pkg/models"
)

// AgentService manages agent configuration and lifecycle state.
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// CreateAgent creates a stopped agent.
func (s *AgentService) CreateAgent(httpCtx context.Context, teamID string, req models.CreateAgentRequest) (*ent.Agent, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if err := validateHeartbeat(req.HeartbeatSeconds, req.ActiveHoursStart, req.ActiveHoursEnd); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	create := s.client.Agent.Create().
		SetID(uuid.New().String()).
		SetTeamID(teamID).
		SetName(req.Name).
		SetSystemPrompt(req.SystemPrompt).
		SetModelID(req.ModelID).
		SetProactive(req.Proactive).
		SetNillableDepartment(req.Department).
		SetNillableModelEndpoint(req.ModelEndpoint).
		SetNillableModelName(req.ModelName).
		SetNillableTemplateID(req.TemplateID).
		SetNillableActiveHoursStart(req.ActiveHoursStart).
		SetNillableActiveHoursEnd(req.ActiveHoursEnd)
	if req.HeartbeatSeconds != 0 {
		create.SetHeartbeatSeconds(req.HeartbeatSeconds)
	}
	if req.Skills != nil {
		create.SetSkills(req.Skills)
	}

	a, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	return a, nil
}

// GetAgent returns one agent, scoped to the tenant.
func (s *AgentService) GetAgent(httpCtx context.Context, teamID, agentID string) (*ent.Agent, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()
	return s.getScoped(ctx, teamID, agentID)
}

// ListAgents returns a team's agents ordered by name.
func (s *AgentService) ListAgents(httpCtx context.Context, teamID string) ([]*ent.Agent, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.client.Agent.Query().
		Where(agent.TeamID(teamID)).
		Order(ent.Asc(agent.FieldName)).
		All(ctx)
}

// UpdateAgent applies a partial update.
func (s *AgentService) UpdateAgent(httpCtx context.Context, teamID, agentID string, req models.UpdateAgentRequest) (*ent.Agent, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, NewValidationError("name", "cannot be empty")
	}
	hb := 0
	if req.HeartbeatSeconds != nil {
		hb = *req.HeartbeatSeconds
	}
	if err := validateHeartbeat(hb, req.ActiveHoursStart, req.ActiveHoursEnd); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if _, err := s.getScoped(ctx, teamID, agentID); err != nil {
		return nil, err
	}

	upd := s.client.Agent.UpdateOneID(agentID).
		SetNillableName(req.Name).
		SetNillableDepartment(req.Department).
		SetNillableModelID(req.ModelID).
		SetNillableModelEndpoint(req.ModelEndpoint).
		SetNillableModelName(req.ModelName).
		SetNillableSystemPrompt(req.SystemPrompt).
		SetNillableProactive(req.Proactive).
		SetNillableHeartbeatSeconds(req.HeartbeatSeconds).
		SetNillableActiveHoursStart(req.ActiveHoursStart).
		SetNillableActiveHoursEnd(req.ActiveHoursEnd)
	if req.Skills != nil {
		upd.SetSkills(req.Skills)
	}

	a, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}
	return a, nil
}

// DeleteAgent removes an agent. Pending approvals raised by the agent stay
// pending; resolving them later is a no-op for execution.
func (s *AgentService) DeleteAgent(httpCtx context.Context, teamID, agentID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if _, err := s.getScoped(ctx, teamID, agentID); err != nil {
		return err
	}
	return s.client.Agent.DeleteOneID(agentID).Exec(ctx)
}

// SetStatus transitions an agent's lifecycle state.
func (s *AgentService) SetStatus(httpCtx context.Context, teamID, agentID string, status agent.Status) (*ent.Agent, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if _, err := s.getScoped(ctx, teamID, agentID); err != nil {
		return nil, err
	}
	a, err := s.client.Agent.UpdateOneID(agentID).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set agent status: %w", err)
	}
	return a, nil
}

// ListRunningProactive returns every running proactive agent across all
// tenants; the heartbeat scheduler reconciles against this set.
func (s *AgentService) ListRunningProactive(httpCtx context.Context) ([]*ent.Agent, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.client.Agent.Query().
		Where(agent.StatusEQ(agent.StatusRunning), agent.Proactive(true)).
		Order(ent.Asc(agent.FieldID)).
		All(ctx)
}

func (s *AgentService) getScoped(ctx context.Context, teamID, agentID string) (*ent.Agent, error) {
	a, err := s.client.Agent.Query().
		Where(agent.ID(agentID), agent.TeamID(teamID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return a, nil
}

func validateHeartbeat(seconds int, hoursStart, hoursEnd *int) error {
	if seconds != 0 && (seconds < 60 || seconds > 86400) {
		return NewValidationError("heartbeat_seconds", "must be between 60 and 86400")
	}
	if hoursStart != nil && (*hoursStart < 0 || *hoursStart > 23) {
		return NewValidationError("active_hours_start", "must be between 0 and 23")
	}
	if hoursEnd != nil && (*hoursEnd < 0 || *hoursEnd > 23) {
		return NewValidationError("active_hours_end", "must be between 0 and 23")
	}
	return nil
}
