package application

import "errors"

var (
	// ErrAssetNotSupported is thrown when an operation targets an asset the
	// module was not configured for. Rejected before any state change.
	ErrAssetNotSupported = errors.New("asset is not supported")
	// ErrAssetAlreadySupported ...
	ErrAssetAlreadySupported = errors.New("asset is already supported")
	// ErrAssetHalted is thrown for any operation on an asset latched after
	// a partial failure. Manual intervention is required, retrying would
	// double-charge the ledger.
	ErrAssetHalted = errors.New("asset is halted pending manual intervention")
	// ErrVaultDepositFailed is thrown when the vault rejects a fee deposit
	// after the ledger was already credited.
	ErrVaultDepositFailed = errors.New("vault rejected the fee deposit")
	// ErrVaultWithdrawalFailed is thrown when the vault rejects a withdrawal
	// after the ledger settle already happened. Fatal for the asset.
	ErrVaultWithdrawalFailed = errors.New("vault rejected the withdrawal")
	// ErrVaultShortfall is thrown when the vault releases a different amount
	// than the escrow estimate. The released amount is still paid out and
	// recorded, but the discrepancy must be surfaced, never absorbed.
	ErrVaultShortfall = errors.New("vault released a different amount than requested")
	// ErrSettlementFailed is thrown when the settlement platform fails to
	// deliver funds the vault already released. Fatal for the asset.
	ErrSettlementFailed = errors.New("settlement transfer failed")
	// ErrNotOwner gates the administrative surface.
	ErrNotOwner = errors.New("requester is not the module owner")
	// ErrInvalidOwner ...
	ErrInvalidOwner = errors.New("owner must not be empty")
)
