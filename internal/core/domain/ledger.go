package domain

import (
	"github.com/feevault-network/feevault-daemon/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// RecordTrade attributes volume to the trading participant and injects the
// participant share of the trade's fee into the reward-per-unit accumulator.
//
// The injection divides by the total volume updated with this trade, so the
// trading participant earns a proportional cut of its own trade's fee.
//
// On the very first trade of an asset there is no prior volume to distribute
// against, so the participant share is routed entirely to the operator
// instead of risking a zero denominator. The volume itself is still recorded.
func (l *Ledger) RecordTrade(participant string, volume, participantShare uint64) error {
	if participant == "" {
		return ErrInvalidParticipant
	}
	if volume == 0 {
		return ErrInvalidAmount
	}

	totalVolume, err := mathutil.CheckedAdd(l.TotalVolume, volume)
	if err != nil {
		return ErrAmountOverflow
	}
	account := l.account(participant)
	contributed, err := mathutil.CheckedAdd(account.VolumeContributed, volume)
	if err != nil {
		return ErrAmountOverflow
	}

	firstTrade := l.TotalVolume == 0
	if firstTrade {
		operatorAccrued, err := mathutil.CheckedAdd(l.OperatorAccrued, participantShare)
		if err != nil {
			return ErrAmountOverflow
		}
		l.OperatorAccrued = operatorAccrued
	}

	l.TotalVolume = totalVolume
	account.VolumeContributed = contributed

	if !firstTrade && participantShare > 0 {
		delta := mathutil.MulDivTrunc(
			mathutil.FromUint64(participantShare),
			Scale,
			mathutil.FromUint64(l.TotalVolume),
		)
		l.RewardPerUnit = l.RewardPerUnit.Add(delta)
	}
	return nil
}

// PendingReward returns the amount of reward units the participant could
// settle right now, without mutating anything. A negative intermediate
// result means the reward debt was settled out of order and is reported as
// ErrLedgerUnderflow.
func (l *Ledger) PendingReward(participant string) (uint64, error) {
	if participant == "" {
		return 0, ErrInvalidParticipant
	}
	account, ok := l.Accounts[participant]
	if !ok {
		return 0, nil
	}
	pending, err := l.pending(account)
	if err != nil {
		return 0, err
	}
	return mustUint64(pending)
}

// Settle computes the participant's pending reward and raises the reward
// debt to the current accumulated baseline, so the amount is returned
// exactly once: an immediate second call yields zero.
func (l *Ledger) Settle(participant string) (uint64, error) {
	if participant == "" {
		return 0, ErrInvalidParticipant
	}
	account, ok := l.Accounts[participant]
	if !ok {
		return 0, nil
	}
	pending, err := l.pending(account)
	if err != nil {
		return 0, err
	}
	amount, err := mustUint64(pending)
	if err != nil {
		return 0, err
	}
	account.RewardDebt = l.accrued(account)
	return amount, nil
}

// SettleOperator returns the operator's accrued amount and zeroes it.
func (l *Ledger) SettleOperator() uint64 {
	amount := l.OperatorAccrued
	l.OperatorAccrued = 0
	return amount
}

// AccrueOperator adds the operator share of a trade's fee.
func (l *Ledger) AccrueOperator(amount uint64) error {
	accrued, err := mathutil.CheckedAdd(l.OperatorAccrued, amount)
	if err != nil {
		return ErrAmountOverflow
	}
	l.OperatorAccrued = accrued
	return nil
}

// AccrueFee adds to the lifetime fee counter. Diagnostic only.
func (l *Ledger) AccrueFee(amount uint64) error {
	accrued, err := mathutil.CheckedAdd(l.TotalFeeAccrued, amount)
	if err != nil {
		return ErrAmountOverflow
	}
	l.TotalFeeAccrued = accrued
	return nil
}

func (l *Ledger) account(participant string) *ParticipantAccount {
	if l.Accounts == nil {
		l.Accounts = map[string]*ParticipantAccount{}
	}
	account, ok := l.Accounts[participant]
	if !ok {
		account = &ParticipantAccount{RewardDebt: decimal.Zero}
		l.Accounts[participant] = account
	}
	return account
}

func (l *Ledger) accrued(account *ParticipantAccount) decimal.Decimal {
	return mathutil.MulDivTrunc(
		mathutil.FromUint64(account.VolumeContributed), l.RewardPerUnit, Scale,
	)
}

func (l *Ledger) pending(account *ParticipantAccount) (decimal.Decimal, error) {
	pending := l.accrued(account).Sub(account.RewardDebt)
	if pending.Sign() < 0 {
		return decimal.Zero, ErrLedgerUnderflow
	}
	return pending, nil
}

func mustUint64(d decimal.Decimal) (uint64, error) {
	v, err := mathutil.ToUint64(d)
	if err != nil {
		return 0, ErrAmountOverflow
	}
	return v, nil
}
