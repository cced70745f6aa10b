package services

import (
	"context"
	"fmt"
	"time"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/ent/credittransaction"
	"github.com/crewforge/crewd/ent/team"
)

// CreditService maintains the team credit ledger. Every balance change
// writes the team delta and a ledger row in one database transaction, so
// the balance always equals the sum of the ledger.
type CreditService struct {
	client *ent.Client
}

// NewCreditService creates a new CreditService
func NewCreditService(client *ent.Client) *CreditService {
	return &CreditService{client: client}
}

// Deduct atomically spends cost credits. The conditional update keeps the
// balance non-negative under concurrent deductions: zero rows updated means
// the balance was insufficient.
func (s *CreditService) Deduct(httpCtx context.Context, teamID string, cost int, reason, correlationID string) error {
	if cost <= 0 {
		return NewValidationError("cost", "must be positive")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := tx.Team.Update().
		Where(team.ID(teamID), team.CreditsBalanceGTE(cost)).
		AddCreditsBalance(-cost).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to deduct credits: %w", err)
	}
	if n == 0 {
		exists, err := tx.Team.Query().Where(team.ID(teamID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check team: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrInsufficientCredits
	}

	if _, err := tx.CreditTransaction.Create().
		SetTeamID(teamID).
		SetAmount(-cost).
		SetReason(reason).
		SetCorrelationID(correlationID).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to record deduction: %w", err)
	}
	return tx.Commit()
}

// Refund returns credits spent under correlationID, e.g. after a provider
// call fails despite retries.
func (s *CreditService) Refund(httpCtx context.Context, teamID string, amount int, reason, correlationID string) error {
	if amount <= 0 {
		return NewValidationError("amount", "must be positive")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.credit(ctx, teamID, amount, reason, correlationID)
}

// TopUp adds purchased credits to a team.
func (s *CreditService) TopUp(httpCtx context.Context, teamID string, amount int, reason string) error {
	if amount <= 0 {
		return NewValidationError("amount", "must be positive")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.credit(ctx, teamID, amount, reason, "")
}

// Balance returns the team's current credit balance.
func (s *CreditService) Balance(httpCtx context.Context, teamID string) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	t, err := s.client.Team.Get(ctx, teamID)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to get team: %w", err)
	}
	return t.CreditsBalance, nil
}

// ListTransactions returns ledger entries, newest first.
func (s *CreditService) ListTransactions(httpCtx context.Context, teamID string, limit, offset int) ([]*ent.CreditTransaction, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.client.CreditTransaction.Query().
		Where(credittransaction.TeamID(teamID)).
		Order(ent.Desc(credittransaction.FieldID)).
		Limit(limit).
		Offset(offset).
		All(ctx)
}

func (s *CreditService) credit(ctx context.Context, teamID string, amount int, reason, correlationID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := tx.Team.Update().
		Where(team.ID(teamID)).
		AddCreditsBalance(amount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to credit team: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if _, err := tx.CreditTransaction.Create().
		SetTeamID(teamID).
		SetAmount(amount).
		SetReason(reason).
		SetCorrelationID(correlationID).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to record credit: %w", err)
	}
	return tx.Commit()
}
