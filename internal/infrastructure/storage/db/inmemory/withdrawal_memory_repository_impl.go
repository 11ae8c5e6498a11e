package inmemory

import (
	"context"
	"sync"

	"github.com/feevault-network/feevault-daemon/internal/core/domain"
)

// WithdrawalRepositoryImpl represents an in memory storage for payout
// records.
type WithdrawalRepositoryImpl struct {
	withdrawals []domain.Withdrawal

	lock *sync.RWMutex
}

// NewWithdrawalRepositoryImpl returns a new empty WithdrawalRepositoryImpl.
func NewWithdrawalRepositoryImpl() *WithdrawalRepositoryImpl {
	return &WithdrawalRepositoryImpl{
		withdrawals: make([]domain.Withdrawal, 0),
		lock:        &sync.RWMutex{},
	}
}

func (r *WithdrawalRepositoryImpl) AddWithdrawal(
	_ context.Context, withdrawal *domain.Withdrawal,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.withdrawals = append(r.withdrawals, *withdrawal)
	return nil
}

func (r *WithdrawalRepositoryImpl) ListWithdrawalsForAsset(
	_ context.Context, asset string,
) ([]domain.Withdrawal, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	list := make([]domain.Withdrawal, 0)
	for _, withdrawal := range r.withdrawals {
		if withdrawal.Asset == asset {
			list = append(list, withdrawal)
		}
	}
	return list, nil
}

func (r *WithdrawalRepositoryImpl) ListAllWithdrawals(
	_ context.Context,
) ([]domain.Withdrawal, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	list := make([]domain.Withdrawal, len(r.withdrawals))
	copy(list, r.withdrawals)
	return list, nil
}
