package dbbadger

import (
	"context"

	"github.com/feevault-network/feevault-daemon/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type ledgerRepositoryImpl struct {
	db *DbManager
}

// NewLedgerRepositoryImpl initializes a badger implementation of the
// domain.LedgerRepository.
func NewLedgerRepositoryImpl(db *DbManager) domain.LedgerRepository {
	return ledgerRepositoryImpl{db: db}
}

func (r ledgerRepositoryImpl) AddLedger(
	_ context.Context, ledger *domain.Ledger,
) error {
	if err := r.db.LedgerStore.Insert(ledger.Asset, *ledger); err != nil {
		if err == badgerhold.ErrKeyExists {
			return domain.ErrLedgerAlreadyExists
		}
		return err
	}
	return nil
}

func (r ledgerRepositoryImpl) GetLedger(
	_ context.Context, asset string,
) (*domain.Ledger, error) {
	return r.getLedger(asset)
}

func (r ledgerRepositoryImpl) GetAllLedgers(
	_ context.Context,
) ([]domain.Ledger, error) {
	query := badgerhold.Where("Asset").Ne("").SortBy("Asset")

	var ledgers []domain.Ledger
	if err := r.db.LedgerStore.Find(&ledgers, query); err != nil {
		return nil, err
	}
	return ledgers, nil
}

func (r ledgerRepositoryImpl) UpdateLedger(
	_ context.Context,
	asset string, updateFn func(l *domain.Ledger) (*domain.Ledger, error),
) error {
	currentLedger, err := r.getLedger(asset)
	if err != nil {
		return err
	}

	updatedLedger, err := updateFn(currentLedger)
	if err != nil {
		return err
	}

	return r.db.LedgerStore.Update(asset, *updatedLedger)
}

func (r ledgerRepositoryImpl) getLedger(asset string) (*domain.Ledger, error) {
	var ledger domain.Ledger
	if err := r.db.LedgerStore.Get(asset, &ledger); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrLedgerNotFound
		}
		return nil, err
	}
	return &ledger, nil
}
