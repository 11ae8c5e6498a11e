package domain

import "context"

// EscrowRepository is the abstraction for any kind of database intended to
// persist yield Escrows.
type EscrowRepository interface {
	// AddEscrow adds a new escrow to the repository. Fails with
	// ErrEscrowAlreadyExists if one exists for the asset.
	AddEscrow(ctx context.Context, escrow *Escrow) error
	// GetEscrow returns the escrow for the given asset, or ErrEscrowNotFound.
	GetEscrow(ctx context.Context, asset string) (*Escrow, error)
	// GetAllEscrows returns the escrows of all supported assets.
	GetAllEscrows(ctx context.Context) ([]Escrow, error)
	// UpdateEscrow updates the state of an escrow. The closure function lets
	// the caller commit multiple changes in a transactional way.
	UpdateEscrow(
		ctx context.Context,
		asset string, updateFn func(e *Escrow) (*Escrow, error),
	) error
}
