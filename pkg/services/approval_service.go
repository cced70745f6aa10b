package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/ent/approval"
	"github.com/crewforge/crewd/pkg/events"
)

// ApprovalService manages the human-review queue for high-risk agent
// actions. pending → approved | rejected; resolved approvals are terminal.
type ApprovalService struct {
	client    *ent.Client
	publisher EventPublisher
}

// NewApprovalService creates a new ApprovalService
func NewApprovalService(client *ent.Client) *ApprovalService {
	return &ApprovalService{client: client}
}

// SetEventPublisher registers the real-time event hook.
func (s *ApprovalService) SetEventPublisher(p EventPublisher) {
	s.publisher = p
}

// CreateApproval records a pending approval raised by an agent.
func (s *ApprovalService) CreateApproval(httpCtx context.Context, teamID, agentID, actionType, actionDetail, riskLevel string) (*ent.Approval, error) {
	if actionType == "" {
		return nil, NewValidationError("action_type", "required")
	}
	risk := approval.RiskLevelMedium
	if riskLevel != "" {
		risk = approval.RiskLevel(riskLevel)
		if err := approval.RiskLevelValidator(risk); err != nil {
			return nil, NewValidationError("risk_level", "must be low, medium, high, or critical")
		}
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	a, err := s.client.Approval.Create().
		SetID(uuid.New().String()).
		SetTeamID(teamID).
		SetAgentID(agentID).
		SetActionType(actionType).
		SetActionDetail(actionDetail).
		SetRiskLevel(risk).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create approval: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishApprovalPending(ctx, events.ApprovalPendingPayload{
			Type:       events.EventTypeApprovalPending,
			TeamID:     teamID,
			ApprovalID: a.ID,
			AgentID:    agentID,
			ActionType: actionType,
			RiskLevel:  string(risk),
			Timestamp:  a.CreatedAt.UTC().Format(time.RFC3339Nano),
		}); err != nil {
			slog.Warn("Failed to publish approval event",
				"approval_id", a.ID, "error", err)
		}
	}
	return a, nil
}

// GetApproval returns one approval, scoped to the tenant.
func (s *ApprovalService) GetApproval(httpCtx context.Context, teamID, approvalID string) (*ent.Approval, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()
	return s.getScoped(ctx, teamID, approvalID)
}

// ListApprovals returns a team's approvals, newest first. Pass status to
// filter; an empty status returns all.
func (s *ApprovalService) ListApprovals(httpCtx context.Context, teamID, status string) ([]*ent.Approval, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	q := s.client.Approval.Query().Where(approval.TeamID(teamID))
	if status != "" {
		parsed := approval.Status(status)
		if err := approval.StatusValidator(parsed); err != nil {
			return nil, NewValidationError("status", "must be pending, approved, or rejected")
		}
		q = q.Where(approval.StatusEQ(parsed))
	}
	return q.Order(ent.Desc(approval.FieldCreatedAt)).All(ctx)
}

// Resolve approves or rejects a pending approval. Resolving an already
// resolved approval fails rather than silently flipping the decision.
func (s *ApprovalService) Resolve(httpCtx context.Context, teamID, approvalID, resolverID string, approve bool) (*ent.Approval, error) {
	if resolverID == "" {
		return nil, NewValidationError("resolved_by", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if _, err := s.getScoped(ctx, teamID, approvalID); err != nil {
		return nil, err
	}

	status := approval.StatusRejected
	if approve {
		status = approval.StatusApproved
	}

	// Conditional update: only a pending row transitions.
	n, err := s.client.Approval.Update().
		Where(approval.ID(approvalID), approval.StatusEQ(approval.StatusPending)).
		SetStatus(status).
		SetResolvedBy(resolverID).
		SetResolvedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve approval: %w", err)
	}
	if n == 0 {
		return nil, ErrConcurrentModification
	}
	return s.client.Approval.Get(ctx, approvalID)
}

// PendingFor returns an agent's pending approvals, oldest first, so the
// runtime resumes interrupted actions in order.
func (s *ApprovalService) PendingFor(httpCtx context.Context, teamID, agentID string) ([]*ent.Approval, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.client.Approval.Query().
		Where(
			approval.TeamID(teamID),
			approval.AgentID(agentID),
			approval.StatusEQ(approval.StatusPending),
		).
		Order(ent.Asc(approval.FieldCreatedAt)).
		All(ctx)
}

func (s *ApprovalService) getScoped(ctx context.Context, teamID, approvalID string) (*ent.Approval, error) {
	a, err := s.client.Approval.Query().
		Where(approval.ID(approvalID), approval.TeamID(teamID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get approval: %w", err)
	}
	return a, nil
}
