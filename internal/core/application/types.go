package application

import (
	"context"

	"github.com/feevault-network/feevault-daemon/internal/core/domain"
)

// VaultService is the contract of the external yield-bearing vault the
// collected fees are parked in. The vault is an opaque, trusted service: its
// interest model is out of scope, only this boundary matters.
type VaultService interface {
	// Supply forwards amount of asset to the vault's deposit entry point on
	// behalf of the module.
	Supply(ctx context.Context, asset string, amount uint64) error
	// Withdraw asks the vault to release amount of asset and returns what
	// was actually released. The returned amount, not the requested one, is
	// authoritative for what was transferred.
	Withdraw(ctx context.Context, asset string, amount uint64) (uint64, error)
	// ReportedBalance is the vault's view of how much underlying the
	// module's deposited shares are worth right now.
	ReportedBalance(ctx context.Context, asset string) (uint64, error)
}

// SettlementService is the contract of the trade-matching platform that
// custodies the traded assets and moves funds on the module's behalf.
type SettlementService interface {
	// TransferOut delivers amount of asset to the receiver.
	TransferOut(ctx context.Context, asset, receiver string, amount uint64) error
}

// AssetInfo is the read model of one supported asset.
type AssetInfo struct {
	Asset           string
	ShareToken      string
	Halted          bool
	TotalVolume     uint64
	OperatorAccrued uint64
	TotalFeeAccrued uint64
	VaultShares     uint64
}

func assetInfo(ledger domain.Ledger, escrow domain.Escrow, halted bool) AssetInfo {
	return AssetInfo{
		Asset:           ledger.Asset,
		ShareToken:      escrow.ShareToken,
		Halted:          halted,
		TotalVolume:     ledger.TotalVolume,
		OperatorAccrued: ledger.OperatorAccrued,
		TotalFeeAccrued: ledger.TotalFeeAccrued,
		VaultShares:     escrow.VaultShares,
	}
}
