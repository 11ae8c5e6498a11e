package domain

import "github.com/shopspring/decimal"

// ParticipantAccount tracks one participant's stake in an asset's reward
// ledger. Accounts are created lazily on first trade and never deleted: a
// zero-volume, zero-debt account is equivalent to absence.
type ParticipantAccount struct {
	// VolumeContributed is the cumulative trading volume attributed to the
	// participant in this asset. Monotonically non-decreasing.
	VolumeContributed uint64
	// RewardDebt is the portion of volumeContributed * rewardPerUnit / Scale
	// already settled, in reward units. Updated only by Settle.
	RewardDebt decimal.Decimal
}

// Ledger is the per-asset volume reward ledger. A single monotonically
// increasing reward-per-unit accumulator lets every participant's share of
// accumulated rewards be computed in constant time.
type Ledger struct {
	// Asset this ledger accounts for, in hex format.
	Asset string
	// RewardPerUnit is the fixed-point accumulator scaled by Scale.
	// Monotonically non-decreasing.
	RewardPerUnit decimal.Decimal
	// TotalVolume is the sum of VolumeContributed across all participants,
	// the denominator for RewardPerUnit growth.
	TotalVolume uint64
	// OperatorAccrued is the undistributed amount earmarked for the module
	// operator, in reward units. Zeroed on operator withdrawal.
	OperatorAccrued uint64
	// TotalFeeAccrued is the lifetime total fee collected. Diagnostic only,
	// never used in payout calculations.
	TotalFeeAccrued uint64
	// Accounts indexes participant accounts by participant identity.
	Accounts map[string]*ParticipantAccount
}

// NewLedger returns an empty reward ledger for the given asset.
func NewLedger(asset string) (*Ledger, error) {
	if !isValidAsset(asset) {
		return nil, ErrInvalidAsset
	}
	return &Ledger{
		Asset:         asset,
		RewardPerUnit: decimal.Zero,
		Accounts:      map[string]*ParticipantAccount{},
	}, nil
}

// Copy returns a deep copy of the ledger, so that aborted updates never leak
// partial mutations into the stored state.
func (l *Ledger) Copy() *Ledger {
	accounts := make(map[string]*ParticipantAccount, len(l.Accounts))
	for participant, account := range l.Accounts {
		copied := *account
		accounts[participant] = &copied
	}
	copied := *l
	copied.Accounts = accounts
	return &copied
}
