package domain

import "context"

// WithdrawalRepository is the abstraction for any kind of database intended
// to persist Withdrawal records.
type WithdrawalRepository interface {
	// AddWithdrawal appends a withdrawal record.
	AddWithdrawal(ctx context.Context, withdrawal *Withdrawal) error
	// ListWithdrawalsForAsset returns all payouts recorded for an asset.
	ListWithdrawalsForAsset(ctx context.Context, asset string) ([]Withdrawal, error)
	// ListAllWithdrawals returns every recorded payout.
	ListAllWithdrawals(ctx context.Context) ([]Withdrawal, error)
}
