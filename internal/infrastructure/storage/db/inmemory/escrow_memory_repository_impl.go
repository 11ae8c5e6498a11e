package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/feevault-network/feevault-daemon/internal/core/domain"
)

// EscrowRepositoryImpl represents an in memory storage for yield escrows.
type EscrowRepositoryImpl struct {
	escrows map[string]*domain.Escrow

	lock *sync.RWMutex
}

// NewEscrowRepositoryImpl returns a new empty EscrowRepositoryImpl.
func NewEscrowRepositoryImpl() *EscrowRepositoryImpl {
	return &EscrowRepositoryImpl{
		escrows: map[string]*domain.Escrow{},
		lock:    &sync.RWMutex{},
	}
}

func (r *EscrowRepositoryImpl) AddEscrow(
	_ context.Context, escrow *domain.Escrow,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.escrows[escrow.Asset]; ok {
		return domain.ErrEscrowAlreadyExists
	}
	r.escrows[escrow.Asset] = escrow.Copy()
	return nil
}

func (r *EscrowRepositoryImpl) GetEscrow(
	_ context.Context, asset string,
) (*domain.Escrow, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	escrow, ok := r.escrows[asset]
	if !ok {
		return nil, domain.ErrEscrowNotFound
	}
	return escrow.Copy(), nil
}

func (r *EscrowRepositoryImpl) GetAllEscrows(
	_ context.Context,
) ([]domain.Escrow, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	assets := make([]string, 0, len(r.escrows))
	for asset := range r.escrows {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	escrows := make([]domain.Escrow, 0, len(r.escrows))
	for _, asset := range assets {
		escrows = append(escrows, *r.escrows[asset].Copy())
	}
	return escrows, nil
}

func (r *EscrowRepositoryImpl) UpdateEscrow(
	_ context.Context,
	asset string, updateFn func(e *domain.Escrow) (*domain.Escrow, error),
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	currentEscrow, ok := r.escrows[asset]
	if !ok {
		return domain.ErrEscrowNotFound
	}

	updatedEscrow, err := updateFn(currentEscrow.Copy())
	if err != nil {
		return err
	}

	r.escrows[asset] = updatedEscrow
	return nil
}
