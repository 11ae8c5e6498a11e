package domain

import "context"

// LedgerRepository is the abstraction for any kind of database intended to
// persist reward Ledgers.
type LedgerRepository interface {
	// AddLedger adds a new ledger to the repository. Fails with
	// ErrLedgerAlreadyExists if one exists for the asset.
	AddLedger(ctx context.Context, ledger *Ledger) error
	// GetLedger returns the ledger for the given asset, or ErrLedgerNotFound.
	GetLedger(ctx context.Context, asset string) (*Ledger, error)
	// GetAllLedgers returns the ledgers of all supported assets.
	GetAllLedgers(ctx context.Context) ([]Ledger, error)
	// UpdateLedger updates the state of a ledger. The closure function lets
	// the caller commit multiple changes in a transactional way.
	UpdateLedger(
		ctx context.Context,
		asset string, updateFn func(l *Ledger) (*Ledger, error),
	) error
}
