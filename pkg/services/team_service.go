// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/ent/subscription"
	"github.com/crewforge/crewd/ent/team"
	"github.com/crewforge/crewd/ent/teammember"
	"github.com/crewforge/crewd/pkg/models"
)

// TeamService manages teams, memberships, and tenant resolution.
type TeamService struct {
	client *ent.Client
}

// NewTeamService creates a new TeamService
func NewTeamService(client *ent.Client) *TeamService {
	return &TeamService{client: client}
}

// CreateTeam creates a team with the caller as its admin.
func (s *TeamService) CreateTeam(httpCtx context.Context, name, creatorUserID string) (*ent.Team, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	if creatorUserID == "" {
		return nil, NewValidationError("created_by", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	t, err := tx.Team.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetCreatedBy(creatorUserID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	if _, err := tx.TeamMember.Create().
		SetTeamID(t.ID).
		SetUserID(creatorUserID).
		SetRole(teammember.RoleAdmin).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to add creator membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit team creation: %w", err)
	}
	return t, nil
}

// GetTeam returns a team the user belongs to.
func (s *TeamService) GetTeam(httpCtx context.Context, teamID, userID string) (*ent.Team, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if _, err := s.membership(ctx, teamID, userID); err != nil {
		return nil, err
	}
	t, err := s.client.Team.Get(ctx, teamID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return t, nil
}

// ListTeams returns the teams a user belongs to.
func (s *TeamService) ListTeams(httpCtx context.Context, userID string) ([]*ent.Team, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	memberships, err := s.client.TeamMember.Query().
		Where(teammember.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	if len(memberships) == 0 {
		return []*ent.Team{}, nil
	}

	ids := make([]string, len(memberships))
	for i, m := range memberships {
		ids[i] = m.TeamID
	}
	return s.client.Team.Query().
		Where(team.IDIn(ids...)).
		Order(ent.Asc(team.FieldName)).
		All(ctx)
}

// AddMember adds or updates a member. Only admins may manage membership.
func (s *TeamService) AddMember(httpCtx context.Context, teamID, callerID, userID string, role string) (*ent.TeamMember, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	parsedRole := teammember.Role(role)
	if err := teammember.RoleValidator(parsedRole); err != nil {
		return nil, NewValidationError("role", "must be admin, member, or viewer")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if err := s.requireRole(ctx, teamID, callerID, models.RoleAdmin); err != nil {
		return nil, err
	}

	existing, err := s.client.TeamMember.Query().
		Where(teammember.TeamID(teamID), teammember.UserID(userID)).
		Only(ctx)
	if err == nil {
		return s.client.TeamMember.UpdateOne(existing).
			SetRole(parsedRole).
			Save(ctx)
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	return s.client.TeamMember.Create().
		SetTeamID(teamID).
		SetUserID(userID).
		SetRole(parsedRole).
		Save(ctx)
}

// RemoveMember removes a member. Only admins may manage membership; the
// last admin cannot be removed.
func (s *TeamService) RemoveMember(httpCtx context.Context, teamID, callerID, userID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if err := s.requireRole(ctx, teamID, callerID, models.RoleAdmin); err != nil {
		return err
	}

	target, err := s.membership(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if target.Role == teammember.RoleAdmin {
		admins, err := s.client.TeamMember.Query().
			Where(teammember.TeamID(teamID), teammember.RoleEQ(teammember.RoleAdmin)).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count admins: %w", err)
		}
		if admins <= 1 {
			return NewValidationError("user_id", "cannot remove the last admin")
		}
	}

	_, err = s.client.TeamMember.Delete().
		Where(teammember.TeamID(teamID), teammember.UserID(userID)).
		Exec(ctx)
	return err
}

// ListMembers returns a team's members.
func (s *TeamService) ListMembers(httpCtx context.Context, teamID, callerID string) ([]*ent.TeamMember, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if _, err := s.membership(ctx, teamID, callerID); err != nil {
		return nil, err
	}
	return s.client.TeamMember.Query().
		Where(teammember.TeamID(teamID)).
		Order(ent.Asc(teammember.FieldUserID)).
		All(ctx)
}

// ResolveContext binds a user to a team, producing the tenant context every
// scoped request carries: role, subscription state, and credit balance.
func (s *TeamService) ResolveContext(httpCtx context.Context, teamID, userID string) (models.TeamContext, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	member, err := s.membership(ctx, teamID, userID)
	if err != nil {
		return models.TeamContext{}, err
	}

	t, err := s.client.Team.Get(ctx, teamID)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.TeamContext{}, ErrNotFound
		}
		return models.TeamContext{}, fmt.Errorf("failed to get team: %w", err)
	}

	hasSub, err := s.client.Subscription.Query().
		Where(subscription.TeamID(teamID), subscription.StatusEQ(subscription.StatusActive)).
		Exist(ctx)
	if err != nil {
		return models.TeamContext{}, fmt.Errorf("failed to check subscription: %w", err)
	}

	return models.TeamContext{
		TeamID:          teamID,
		Role:            models.Role(member.Role),
		HasSubscription: hasSub,
		CreditsBalance:  t.CreditsBalance,
	}, nil
}

// UpsertSubscription creates or updates a team's subscription record.
func (s *TeamService) UpsertSubscription(httpCtx context.Context, teamID, plan string, status string, periodEnd *time.Time) (*ent.Subscription, error) {
	if plan == "" {
		return nil, NewValidationError("plan", "required")
	}
	parsedStatus := subscription.Status(status)
	if err := subscription.StatusValidator(parsedStatus); err != nil {
		return nil, NewValidationError("status", "must be active, past_due, or canceled")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	existing, err := s.client.Subscription.Query().
		Where(subscription.TeamID(teamID)).
		Only(ctx)
	if err == nil {
		upd := s.client.Subscription.UpdateOne(existing).
			SetPlan(plan).
			SetStatus(parsedStatus)
		if periodEnd != nil {
			upd.SetCurrentPeriodEnd(*periodEnd)
		}
		return upd.Save(ctx)
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}

	create := s.client.Subscription.Create().
		SetTeamID(teamID).
		SetPlan(plan).
		SetStatus(parsedStatus)
	if periodEnd != nil {
		create.SetCurrentPeriodEnd(*periodEnd)
	}
	return create.Save(ctx)
}

// HasActiveSubscription reports whether the team currently has an active
// subscription. Used by the heartbeat scheduler's hosted-mode gate.
func (s *TeamService) HasActiveSubscription(httpCtx context.Context, teamID string) (bool, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.client.Subscription.Query().
		Where(subscription.TeamID(teamID), subscription.StatusEQ(subscription.StatusActive)).
		Exist(ctx)
}

// membership returns the membership row, mapping absence to ErrNotFound so
// cross-tenant probing cannot distinguish "no team" from "not a member".
func (s *TeamService) membership(ctx context.Context, teamID, userID string) (*ent.TeamMember, error) {
	member, err := s.client.TeamMember.Query().
		Where(teammember.TeamID(teamID), teammember.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	return member, nil
}

// requireRole fails with ErrForbidden unless the caller holds at least the
// given role on the team.
func (s *TeamService) requireRole(ctx context.Context, teamID, userID string, min models.Role) error {
	member, err := s.membership(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if !models.Role(member.Role).AtLeast(min) {
		return ErrForbidden
	}
	return nil
}
