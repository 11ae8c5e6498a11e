package dbbadger

import (
	"context"

	"github.com/feevault-network/feevault-daemon/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type withdrawalRepositoryImpl struct {
	db *DbManager
}

// NewWithdrawalRepositoryImpl initializes a badger implementation of the
// domain.WithdrawalRepository.
func NewWithdrawalRepositoryImpl(db *DbManager) domain.WithdrawalRepository {
	return withdrawalRepositoryImpl{db: db}
}

func (r withdrawalRepositoryImpl) AddWithdrawal(
	_ context.Context, withdrawal *domain.Withdrawal,
) error {
	return r.db.WithdrawalStore.Insert(withdrawal.ID, *withdrawal)
}

func (r withdrawalRepositoryImpl) ListWithdrawalsForAsset(
	_ context.Context, asset string,
) ([]domain.Withdrawal, error) {
	query := badgerhold.Where("Asset").Eq(asset).SortBy("Timestamp")

	var withdrawals []domain.Withdrawal
	if err := r.db.WithdrawalStore.Find(&withdrawals, query); err != nil {
		return nil, err
	}
	return withdrawals, nil
}

func (r withdrawalRepositoryImpl) ListAllWithdrawals(
	_ context.Context,
) ([]domain.Withdrawal, error) {
	query := badgerhold.Where("Asset").Ne("").SortBy("Timestamp")

	var withdrawals []domain.Withdrawal
	if err := r.db.WithdrawalStore.Find(&withdrawals, query); err != nil {
		return nil, err
	}
	return withdrawals, nil
}
