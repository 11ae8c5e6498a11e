package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/feevault-network/feevault-daemon/internal/core/domain"
)

// LedgerRepositoryImpl represents an in memory storage for reward ledgers.
type LedgerRepositoryImpl struct {
	ledgers map[string]*domain.Ledger

	lock *sync.RWMutex
}

// NewLedgerRepositoryImpl returns a new empty LedgerRepositoryImpl.
func NewLedgerRepositoryImpl() *LedgerRepositoryImpl {
	return &LedgerRepositoryImpl{
		ledgers: map[string]*domain.Ledger{},
		lock:    &sync.RWMutex{},
	}
}

func (r *LedgerRepositoryImpl) AddLedger(
	_ context.Context, ledger *domain.Ledger,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.ledgers[ledger.Asset]; ok {
		return domain.ErrLedgerAlreadyExists
	}
	r.ledgers[ledger.Asset] = ledger.Copy()
	return nil
}

func (r *LedgerRepositoryImpl) GetLedger(
	_ context.Context, asset string,
) (*domain.Ledger, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	ledger, ok := r.ledgers[asset]
	if !ok {
		return nil, domain.ErrLedgerNotFound
	}
	return ledger.Copy(), nil
}

func (r *LedgerRepositoryImpl) GetAllLedgers(
	_ context.Context,
) ([]domain.Ledger, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	assets := make([]string, 0, len(r.ledgers))
	for asset := range r.ledgers {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	ledgers := make([]domain.Ledger, 0, len(r.ledgers))
	for _, asset := range assets {
		ledgers = append(ledgers, *r.ledgers[asset].Copy())
	}
	return ledgers, nil
}

func (r *LedgerRepositoryImpl) UpdateLedger(
	_ context.Context,
	asset string, updateFn func(l *domain.Ledger) (*domain.Ledger, error),
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	currentLedger, ok := r.ledgers[asset]
	if !ok {
		return domain.ErrLedgerNotFound
	}

	updatedLedger, err := updateFn(currentLedger.Copy())
	if err != nil {
		return err
	}

	r.ledgers[asset] = updatedLedger
	return nil
}
