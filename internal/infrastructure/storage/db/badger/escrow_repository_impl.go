package dbbadger

import (
	"context"

	"github.com/feevault-network/feevault-daemon/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type escrowRepositoryImpl struct {
	db *DbManager
}

// NewEscrowRepositoryImpl initializes a badger implementation of the
// domain.EscrowRepository.
func NewEscrowRepositoryImpl(db *DbManager) domain.EscrowRepository {
	return escrowRepositoryImpl{db: db}
}

func (r escrowRepositoryImpl) AddEscrow(
	_ context.Context, escrow *domain.Escrow,
) error {
	if err := r.db.EscrowStore.Insert(escrow.Asset, *escrow); err != nil {
		if err == badgerhold.ErrKeyExists {
			return domain.ErrEscrowAlreadyExists
		}
		return err
	}
	return nil
}

func (r escrowRepositoryImpl) GetEscrow(
	_ context.Context, asset string,
) (*domain.Escrow, error) {
	return r.getEscrow(asset)
}

func (r escrowRepositoryImpl) GetAllEscrows(
	_ context.Context,
) ([]domain.Escrow, error) {
	query := badgerhold.Where("Asset").Ne("").SortBy("Asset")

	var escrows []domain.Escrow
	if err := r.db.EscrowStore.Find(&escrows, query); err != nil {
		return nil, err
	}
	return escrows, nil
}

func (r escrowRepositoryImpl) UpdateEscrow(
	_ context.Context,
	asset string, updateFn func(e *domain.Escrow) (*domain.Escrow, error),
) error {
	currentEscrow, err := r.getEscrow(asset)
	if err != nil {
		return err
	}

	updatedEscrow, err := updateFn(currentEscrow)
	if err != nil {
		return err
	}

	return r.db.EscrowStore.Update(asset, *updatedEscrow)
}

func (r escrowRepositoryImpl) getEscrow(asset string) (*domain.Escrow, error) {
	var escrow domain.Escrow
	if err := r.db.EscrowStore.Get(asset, &escrow); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrEscrowNotFound
		}
		return nil, err
	}
	return &escrow, nil
}
