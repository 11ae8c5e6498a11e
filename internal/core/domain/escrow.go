package domain

import (
	"github.com/feevault-network/feevault-daemon/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// SharePrice returns the scaled price of one vault share given the balance
// the vault currently reports for the escrowed shares:
// reportedBalance * Scale / vaultShares. An escrow with no shares has an
// undefined price and conversions against it must not be attempted.
func (e *Escrow) SharePrice(reportedBalance uint64) (decimal.Decimal, error) {
	if e.VaultShares == 0 {
		return decimal.Zero, ErrEscrowNoShares
	}
	return mathutil.MulDivTrunc(
		mathutil.FromUint64(reportedBalance),
		Scale,
		mathutil.FromUint64(e.VaultShares),
	), nil
}

// Deposit mints the share-equivalent of amount at the current share price
// and adds it to the escrowed total, returning the minted share count. The
// very first deposit defines the price as 1:1. The caller is responsible for
// forwarding amount to the vault's supply entry point.
func (e *Escrow) Deposit(amount, reportedBalance uint64) (uint64, error) {
	if amount == 0 {
		return 0, ErrInvalidAmount
	}

	var minted uint64
	if e.VaultShares == 0 {
		minted = amount
	} else {
		if reportedBalance == 0 {
			return 0, ErrEscrowZeroBalance
		}
		var err error
		minted, err = mustUint64(mathutil.MulDivTrunc(
			mathutil.FromUint64(amount),
			mathutil.FromUint64(e.VaultShares),
			mathutil.FromUint64(reportedBalance),
		))
		if err != nil {
			return 0, err
		}
	}

	shares, err := mathutil.CheckedAdd(e.VaultShares, minted)
	if err != nil {
		return 0, ErrAmountOverflow
	}
	e.VaultShares = shares
	return minted, nil
}

// WithdrawByShare burns share escrowed shares and returns the underlying
// amount they are worth at the current share price. The caller is
// responsible for forwarding the withdrawal to the vault; the amount the
// vault actually releases, not this estimate, is authoritative for what was
// transferred.
func (e *Escrow) WithdrawByShare(share, reportedBalance uint64) (uint64, error) {
	if share == 0 {
		return 0, ErrInvalidAmount
	}
	if share > e.VaultShares {
		return 0, ErrEscrowInsufficientShares
	}

	price, err := e.SharePrice(reportedBalance)
	if err != nil {
		return 0, err
	}
	underlying, err := mustUint64(mathutil.MulDivTrunc(
		mathutil.FromUint64(share), price, Scale,
	))
	if err != nil {
		return 0, err
	}

	e.VaultShares -= share
	return underlying, nil
}
