package domain_test

import (
	"testing"

	"github.com/feevault-network/feevault-daemon/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	asset      = "0000000000000000000000000000000000000000000000000000000000000000"
	shareToken = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	alice      = "alice"
	bob        = "bob"
)

func newTestLedger(t *testing.T) *domain.Ledger {
	t.Helper()
	l, err := domain.NewLedger(asset)
	require.NoError(t, err)
	return l
}

func TestNewLedger(t *testing.T) {
	t.Parallel()

	l := newTestLedger(t)
	require.Equal(t, asset, l.Asset)
	require.True(t, l.RewardPerUnit.IsZero())
	require.Zero(t, l.TotalVolume)
	require.Zero(t, l.OperatorAccrued)
	require.Empty(t, l.Accounts)

	_, err := domain.NewLedger("not an asset")
	require.ErrorIs(t, err, domain.ErrInvalidAsset)
}

func TestRecordTradeFirstTradeRoutesRewardToOperator(t *testing.T) {
	t.Parallel()

	l := newTestLedger(t)

	// First trade for the asset: amount 1000 yields fee 1, operator 0,
	// participants 1. With no prior volume to distribute against, the
	// participant share goes to the operator instead.
	split := domain.SplitTradeFee(1000)
	require.Equal(t, uint64(1), split.FeeTotal)
	require.Zero(t, split.OperatorShare)
	require.Equal(t, uint64(1), split.ParticipantShare)

	err := l.RecordTrade(alice, 1000, split.ParticipantShare)
	require.NoError(t, err)

	require.Equal(t, uint64(1000), l.TotalVolume)
	require.Equal(t, uint64(1000), l.Accounts[alice].VolumeContributed)
	require.Equal(t, uint64(1), l.OperatorAccrued)
	require.True(t, l.RewardPerUnit.IsZero())

	pending, err := l.PendingReward(alice)
	require.NoError(t, err)
	require.Zero(t, pending)
}

func TestRecordTradeInjectsAgainstUpdatedTotalVolume(t *testing.T) {
	t.Parallel()

	l := newTestLedger(t)
	l.TotalVolume = 900
	l.RewardPerUnit = decimal.New(5, 17)
	l.Accounts[bob] = &domain.ParticipantAccount{
		VolumeContributed: 900,
		RewardDebt:        decimal.Zero,
	}

	err := l.RecordTrade(alice, 100, 50)
	require.NoError(t, err)

	// 5*10^17 + 50*10^18/1000 = 5*10^17 + 5*10^16.
	expected := decimal.New(5, 17).Add(decimal.New(5, 16))
	require.True(t, l.RewardPerUnit.Equal(expected),
		"rewardPerUnit = %s, want %s", l.RewardPerUnit, expected)

	// The trading participant earns a proportional cut of its own trade's
	// fee: 100 * 0.55 = 55, of which 5 come from the new injection.
	pendingAlice, err := l.PendingReward(alice)
	require.NoError(t, err)
	require.Equal(t, uint64(55), pendingAlice)

	// Bob keeps his share of the old accumulator plus 900/1000 of the new
	// injection: 900 * 0.55 = 495.
	pendingBob, err := l.PendingReward(bob)
	require.NoError(t, err)
	require.Equal(t, uint64(495), pendingBob)
}

func TestFailingRecordTrade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		participant   string
		volume        uint64
		expectedError error
	}{
		{"empty_participant", "", 100, domain.ErrInvalidParticipant},
		{"zero_volume", alice, 0, domain.ErrInvalidAmount},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := newTestLedger(t)
			err := l.RecordTrade(tt.participant, tt.volume, 1)
			require.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestSettleIsIdempotentUntilNextTrade(t *testing.T) {
	t.Parallel()

	l := newTestLedger(t)
	require.NoError(t, l.RecordTrade(alice, 1000, 1))
	require.NoError(t, l.RecordTrade(bob, 1000, 50))

	pending, err := l.PendingReward(alice)
	require.NoError(t, err)
	require.Equal(t, uint64(25), pending)

	settled, err := l.Settle(alice)
	require.NoError(t, err)
	require.Equal(t, pending, settled)

	again, err := l.Settle(alice)
	require.NoError(t, err)
	require.Zero(t, again)

	// A new trade accrues new pending on top of the settled debt.
	require.NoError(t, l.RecordTrade(bob, 2000, 100))
	pending, err = l.PendingReward(alice)
	require.NoError(t, err)
	require.Equal(t, uint64(25), pending)
}

func TestSettleUnknownParticipantIsZero(t *testing.T) {
	t.Parallel()

	l := newTestLedger(t)
	settled, err := l.Settle("nobody")
	require.NoError(t, err)
	require.Zero(t, settled)
}

func TestRewardPerUnitIsMonotone(t *testing.T) {
	t.Parallel()

	l := newTestLedger(t)
	prev := l.RewardPerUnit

	trades := []struct {
		participant string
		volume      uint64
		share       uint64
	}{
		{alice, 1000, 1}, {bob, 500, 0}, {alice, 300, 12},
		{bob, 10000, 7}, {alice, 1, 1}, {bob, 42, 3},
	}
	for _, trade := range trades {
		require.NoError(t, l.RecordTrade(trade.participant, trade.volume, trade.share))
		require.True(t, l.RewardPerUnit.GreaterThanOrEqual(prev))
		prev = l.RewardPerUnit
	}
}

func TestRewardConservation(t *testing.T) {
	t.Parallel()

	l := newTestLedger(t)
	participants := []string{alice, bob, "carol"}

	var injected uint64
	trades := 0
	for i, amount := range []uint64{
		1_000_000, 2_500_000, 999, 40_000_000, 123_456, 7_000_000,
		31_337, 9_999_999, 1_000, 555_555_555,
	} {
		split := domain.SplitTradeFee(amount)
		p := participants[i%len(participants)]
		require.NoError(t, l.RecordTrade(p, amount, split.ParticipantShare))
		require.NoError(t, l.AccrueOperator(split.OperatorShare))
		injected += split.FeeTotal
		trades++
	}

	var distributed uint64
	for _, p := range participants {
		pending, err := l.PendingReward(p)
		require.NoError(t, err)
		distributed += pending
	}
	distributed += l.OperatorAccrued

	// Everything injected is accounted for, up to cumulative truncation
	// error bounded by the number of trades and participants.
	require.LessOrEqual(t, distributed, injected)
	require.GreaterOrEqual(t, distributed+uint64(trades+len(participants)), injected)
}

func TestPendingRewardUnderflowIsSurfaced(t *testing.T) {
	t.Parallel()

	l := newTestLedger(t)
	require.NoError(t, l.RecordTrade(alice, 1000, 0))

	// A reward debt above the accrued baseline can only come from settling
	// out of order. It must surface as an integrity error, not clamp to 0.
	l.Accounts[alice].RewardDebt = decimal.NewFromInt(10)

	_, err := l.PendingReward(alice)
	require.ErrorIs(t, err, domain.ErrLedgerUnderflow)

	_, err = l.Settle(alice)
	require.ErrorIs(t, err, domain.ErrLedgerUnderflow)
}

func TestSettleOperator(t *testing.T) {
	t.Parallel()

	l := newTestLedger(t)
	require.NoError(t, l.AccrueOperator(42))
	require.NoError(t, l.AccrueFee(84))

	require.Equal(t, uint64(42), l.SettleOperator())
	require.Zero(t, l.OperatorAccrued)
	require.Zero(t, l.SettleOperator())

	// The lifetime fee counter is diagnostic and never resets.
	require.Equal(t, uint64(84), l.TotalFeeAccrued)
}
