package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewd/pkg/services"
	testdb "github.com/crewforge/crewd/test/database"
)

func TestCreditService(t *testing.T) {
	client := testdb.NewTestClient(t)
	teams := services.NewTeamService(client.Client)
	svc := services.NewCreditService(client.Client)
	ctx := context.Background()

	t.Run("balance tracks the ledger", func(t *testing.T) {
		team, err := teams.CreateTeam(ctx, "Billing", "user-1")
		require.NoError(t, err)

		require.NoError(t, svc.TopUp(ctx, team.ID, 10, "purchase"))
		require.NoError(t, svc.Deduct(ctx, team.ID, 3, "model_call", "corr-1"))

		balance, err := svc.Balance(ctx, team.ID)
		require.NoError(t, err)
		assert.Equal(t, 7, balance)

		txs, err := svc.ListTransactions(ctx, team.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, txs, 2)
		sum := 0
		for _, tx := range txs {
			sum += tx.Amount
		}
		assert.Equal(t, balance, sum)
	})

	t.Run("deduction never overdraws", func(t *testing.T) {
		team, err := teams.CreateTeam(ctx, "Broke", "user-1")
		require.NoError(t, err)
		require.NoError(t, svc.TopUp(ctx, team.ID, 2, "purchase"))

		err = svc.Deduct(ctx, team.ID, 3, "model_call", "corr-2")
		assert.ErrorIs(t, err, services.ErrInsufficientCredits)

		// Failed deduction leaves no ledger entry.
		balance, err := svc.Balance(ctx, team.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, balance)
		txs, err := svc.ListTransactions(ctx, team.ID, 10, 0)
		require.NoError(t, err)
		assert.Len(t, txs, 1)
	})

	t.Run("refund shares the deduction's correlation id", func(t *testing.T) {
		team, err := teams.CreateTeam(ctx, "Refunded", "user-1")
		require.NoError(t, err)
		require.NoError(t, svc.TopUp(ctx, team.ID, 5, "purchase"))

		require.NoError(t, svc.Deduct(ctx, team.ID, 3, "model_call", "corr-3"))
		require.NoError(t, svc.Refund(ctx, team.ID, 3, "provider_failure", "corr-3"))

		balance, err := svc.Balance(ctx, team.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, balance)

		txs, err := svc.ListTransactions(ctx, team.ID, 10, 0)
		require.NoError(t, err)
		var correlated int
		for _, tx := range txs {
			if tx.CorrelationID == "corr-3" {
				correlated++
			}
		}
		assert.Equal(t, 2, correlated)
	})

	t.Run("unknown team", func(t *testing.T) {
		assert.ErrorIs(t, svc.Deduct(ctx, "nope", 1, "model_call", ""), services.ErrNotFound)
		assert.ErrorIs(t, svc.TopUp(ctx, "nope", 1, "purchase"), services.ErrNotFound)
		_, err := svc.Balance(ctx, "nope")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("amounts must be positive", func(t *testing.T) {
		assert.True(t, services.IsValidationError(svc.Deduct(ctx, "any", 0, "x", "")))
		assert.True(t, services.IsValidationError(svc.Refund(ctx, "any", -1, "x", "")))
		assert.True(t, services.IsValidationError(svc.TopUp(ctx, "any", 0, "x")))
	})
}
