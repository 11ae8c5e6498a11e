package domain

import "errors"

var (
	// ErrInvalidAsset is thrown when an asset is not a 32-byte hex string.
	ErrInvalidAsset = errors.New("asset must be a 32-byte hex string")
	// ErrInvalidShareToken ...
	ErrInvalidShareToken = errors.New("share token must be a 32-byte hex string")
	// ErrInvalidParticipant ...
	ErrInvalidParticipant = errors.New("participant must not be empty")
	// ErrInvalidAmount ...
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrAmountOverflow is thrown whenever a fee, volume, reward or share
	// computation would not fit the integer width in use. The operation
	// fails closed, nothing wraps.
	ErrAmountOverflow = errors.New("amount overflows accounting integer width")
	// ErrLedgerUnderflow signals that a pending-reward computation went
	// negative. This is a sequencing invariant violation, never a valid
	// state, and must not be swallowed.
	ErrLedgerUnderflow = errors.New("pending reward underflow: reward debt settled out of order")
	// ErrEscrowNoShares is thrown when computing a share price against an
	// escrow that owns no vault shares: the price is undefined and callers
	// must not attempt conversions.
	ErrEscrowNoShares = errors.New("escrow owns no vault shares, share price is undefined")
	// ErrEscrowZeroBalance is thrown when the vault reports a zero balance
	// for an escrow that owns shares. Depositing against a zero price would
	// mint unbounded shares.
	ErrEscrowZeroBalance = errors.New("vault reports zero balance for non-empty escrow")
	// ErrEscrowInsufficientShares ...
	ErrEscrowInsufficientShares = errors.New("withdrawal exceeds escrowed vault shares")

	// ErrLedgerNotFound ...
	ErrLedgerNotFound = errors.New("ledger does not exist for the given asset")
	// ErrLedgerAlreadyExists ...
	ErrLedgerAlreadyExists = errors.New("ledger already exists for the given asset")
	// ErrEscrowNotFound ...
	ErrEscrowNotFound = errors.New("escrow does not exist for the given asset")
	// ErrEscrowAlreadyExists ...
	ErrEscrowAlreadyExists = errors.New("escrow already exists for the given asset")
)
