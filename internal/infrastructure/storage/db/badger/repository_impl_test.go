package dbbadger_test

import (
	"context"
	"testing"

	"github.com/feevault-network/feevault-daemon/internal/core/domain"
	dbbadger "github.com/feevault-network/feevault-daemon/internal/infrastructure/storage/db/badger"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

const (
	asset      = "0000000000000000000000000000000000000000000000000000000000000000"
	shareToken = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

func newTestDb(t *testing.T) *dbbadger.DbManager {
	t.Helper()

	dbManager, err := dbbadger.NewDbManager(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, dbManager.Close())
	})
	return dbManager
}

func TestLedgerRepositoryImpl(t *testing.T) {
	repo := dbbadger.NewLedgerRepositoryImpl(newTestDb(t))

	_, err := repo.GetLedger(ctx, asset)
	require.ErrorIs(t, err, domain.ErrLedgerNotFound)

	ledger, err := domain.NewLedger(asset)
	require.NoError(t, err)
	require.NoError(t, repo.AddLedger(ctx, ledger))
	require.ErrorIs(t, repo.AddLedger(ctx, ledger), domain.ErrLedgerAlreadyExists)

	err = repo.UpdateLedger(ctx, asset, func(l *domain.Ledger) (*domain.Ledger, error) {
		if err := l.RecordTrade("alice", 1_000_000, 500); err != nil {
			return nil, err
		}
		return l, nil
	})
	require.NoError(t, err)

	// The decimal accumulator survives the round trip through the store.
	stored, err := repo.GetLedger(ctx, asset)
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000), stored.TotalVolume)
	require.Equal(t, uint64(500), stored.OperatorAccrued)

	pending, err := stored.PendingReward("alice")
	require.NoError(t, err)
	require.Zero(t, pending)

	all, err := repo.GetAllLedgers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestEscrowRepositoryImpl(t *testing.T) {
	repo := dbbadger.NewEscrowRepositoryImpl(newTestDb(t))

	_, err := repo.GetEscrow(ctx, asset)
	require.ErrorIs(t, err, domain.ErrEscrowNotFound)

	escrow, err := domain.NewEscrow(asset, shareToken)
	require.NoError(t, err)
	require.NoError(t, repo.AddEscrow(ctx, escrow))
	require.ErrorIs(t, repo.AddEscrow(ctx, escrow), domain.ErrEscrowAlreadyExists)

	err = repo.UpdateEscrow(ctx, asset, func(e *domain.Escrow) (*domain.Escrow, error) {
		if _, err := e.Deposit(1000, 0); err != nil {
			return nil, err
		}
		return e, nil
	})
	require.NoError(t, err)

	stored, err := repo.GetEscrow(ctx, asset)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), stored.VaultShares)

	// A failing update leaves the stored escrow untouched.
	wantErr := domain.ErrEscrowInsufficientShares
	err = repo.UpdateEscrow(ctx, asset, func(e *domain.Escrow) (*domain.Escrow, error) {
		e.VaultShares = 0
		return nil, wantErr
	})
	require.ErrorIs(t, err, wantErr)

	stored, err = repo.GetEscrow(ctx, asset)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), stored.VaultShares)
}

func TestWithdrawalRepositoryImpl(t *testing.T) {
	repo := dbbadger.NewWithdrawalRepositoryImpl(newTestDb(t))

	first := domain.NewWithdrawal(asset, "alice", 250, 250, false)
	second := domain.NewWithdrawal(asset, "operator", 1500, 1650, true)

	require.NoError(t, repo.AddWithdrawal(ctx, first))
	require.NoError(t, repo.AddWithdrawal(ctx, second))

	other := domain.NewWithdrawal(shareToken, "bob", 10, 10, false)
	require.NoError(t, repo.AddWithdrawal(ctx, other))

	list, err := repo.ListWithdrawalsForAsset(ctx, asset)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, withdrawal := range list {
		require.Equal(t, asset, withdrawal.Asset)
	}

	all, err := repo.ListAllWithdrawals(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
}
