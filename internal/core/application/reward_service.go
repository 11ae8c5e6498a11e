package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/feevault-network/feevault-daemon/internal/core/domain"
	"github.com/feevault-network/feevault-daemon/pkg/mathutil"
	log "github.com/sirupsen/logrus"
)

// RewardService is the module facade orchestrating the fee splitter, the
// volume reward ledger and the yield escrow around the two external trigger
// points: a trade occurred, a participant wants to claim.
type RewardService interface {
	// OnTrade skims the fee off a matched trade's input amount, credits the
	// ledger and deposits the fee into the yield vault.
	OnTrade(ctx context.Context, participant, asset string, amount uint64) error
	// OnClaim settles the participant's pending reward and pays it out
	// through the vault at the current share price. A zero pending reward
	// is a successful no-op.
	OnClaim(ctx context.Context, participant, asset string) (uint64, error)
	// OnOperatorClaim pays out the accrued operator share to the receiver.
	OnOperatorClaim(ctx context.Context, asset, receiver string) (uint64, error)
	// PendingReward returns the participant's claimable amount in reward
	// units.
	PendingReward(ctx context.Context, participant, asset string) (uint64, error)
	// PendingRewardInUnderlying converts the pending reward through the
	// current vault share price, for display purposes.
	PendingRewardInUnderlying(ctx context.Context, participant, asset string) (uint64, error)
	// IsHalted reports whether the asset was latched after a partial
	// failure.
	IsHalted(asset string) bool
}

type rewardService struct {
	ledgerRepo     domain.LedgerRepository
	escrowRepo     domain.EscrowRepository
	withdrawalRepo domain.WithdrawalRepository
	vault          VaultService
	settlement     SettlementService

	// locks serializes every operation touching one asset's ledger/escrow
	// pair, vault calls included. Different assets proceed in parallel.
	locks  map[string]*sync.Mutex
	halted map[string]bool
	mtx    sync.Mutex
}

// NewRewardService returns the facade wired to its repositories and external
// collaborators.
func NewRewardService(
	ledgerRepo domain.LedgerRepository,
	escrowRepo domain.EscrowRepository,
	withdrawalRepo domain.WithdrawalRepository,
	vault VaultService,
	settlement SettlementService,
) RewardService {
	return &rewardService{
		ledgerRepo:     ledgerRepo,
		escrowRepo:     escrowRepo,
		withdrawalRepo: withdrawalRepo,
		vault:          vault,
		settlement:     settlement,
		locks:          map[string]*sync.Mutex{},
		halted:         map[string]bool{},
	}
}

func (s *rewardService) OnTrade(
	ctx context.Context, participant, asset string, amount uint64,
) error {
	if participant == "" {
		return domain.ErrInvalidParticipant
	}
	if amount == 0 {
		return domain.ErrInvalidAmount
	}

	lock := s.lockForAsset(asset)
	lock.Lock()
	defer lock.Unlock()

	if s.IsHalted(asset) {
		return ErrAssetHalted
	}
	escrow, err := s.getEscrow(ctx, asset)
	if err != nil {
		return err
	}

	split := domain.SplitTradeFee(amount)

	// The vault balance prices the escrow deposit. It is read before any
	// mutation so a vault failure here rejects the trade cleanly.
	var balance uint64
	if split.FeeTotal > 0 && escrow.VaultShares > 0 {
		balance, err = s.vault.ReportedBalance(ctx, asset)
		if err != nil {
			return fmt.Errorf("reading vault balance: %w", err)
		}
	}

	if err := s.ledgerRepo.UpdateLedger(
		ctx, asset, func(l *domain.Ledger) (*domain.Ledger, error) {
			if err := l.RecordTrade(participant, amount, split.ParticipantShare); err != nil {
				return nil, err
			}
			if err := l.AccrueOperator(split.OperatorShare); err != nil {
				return nil, err
			}
			if err := l.AccrueFee(split.FeeTotal); err != nil {
				return nil, err
			}
			return l, nil
		},
	); err != nil {
		return err
	}

	if split.FeeTotal == 0 {
		tradesProcessed.WithLabelValues(asset).Inc()
		return nil
	}

	if err := s.escrowRepo.UpdateEscrow(
		ctx, asset, func(e *domain.Escrow) (*domain.Escrow, error) {
			if _, err := e.Deposit(split.FeeTotal, balance); err != nil {
				return nil, err
			}
			return e, nil
		},
	); err != nil {
		// The ledger is already credited: the asset cannot keep trading
		// with the escrow out of sync.
		s.haltAsset(asset, err)
		return err
	}

	if err := s.vault.Supply(ctx, asset, split.FeeTotal); err != nil {
		s.haltAsset(asset, err)
		return ErrVaultDepositFailed
	}

	tradesProcessed.WithLabelValues(asset).Inc()
	feesCollected.WithLabelValues(asset).Add(float64(split.FeeTotal))

	log.WithFields(log.Fields{
		"asset":             asset,
		"amount":            amount,
		"fee":               split.FeeTotal,
		"operator_share":    split.OperatorShare,
		"participant_share": split.ParticipantShare,
	}).Debug("trade fee collected")

	return nil
}

func (s *rewardService) OnClaim(
	ctx context.Context, participant, asset string,
) (uint64, error) {
	if participant == "" {
		return 0, domain.ErrInvalidParticipant
	}

	lock := s.lockForAsset(asset)
	lock.Lock()
	defer lock.Unlock()

	if s.IsHalted(asset) {
		return 0, ErrAssetHalted
	}
	if _, err := s.getEscrow(ctx, asset); err != nil {
		return 0, err
	}

	// Read-only precheck keeps the ledger untouched when there is nothing
	// to claim or when the vault balance cannot be read.
	ledger, err := s.ledgerRepo.GetLedger(ctx, asset)
	if err != nil {
		return 0, err
	}
	pending, err := ledger.PendingReward(participant)
	if err != nil {
		s.haltAsset(asset, err)
		return 0, err
	}
	if pending == 0 {
		return 0, nil
	}

	balance, err := s.vault.ReportedBalance(ctx, asset)
	if err != nil {
		return 0, fmt.Errorf("reading vault balance: %w", err)
	}

	return s.payOut(ctx, asset, participant, balance, false,
		func(l *domain.Ledger) (uint64, error) {
			return l.Settle(participant)
		},
	)
}

func (s *rewardService) OnOperatorClaim(
	ctx context.Context, asset, receiver string,
) (uint64, error) {
	if receiver == "" {
		return 0, domain.ErrInvalidParticipant
	}

	lock := s.lockForAsset(asset)
	lock.Lock()
	defer lock.Unlock()

	if s.IsHalted(asset) {
		return 0, ErrAssetHalted
	}
	if _, err := s.getEscrow(ctx, asset); err != nil {
		return 0, err
	}

	ledger, err := s.ledgerRepo.GetLedger(ctx, asset)
	if err != nil {
		return 0, err
	}
	if ledger.OperatorAccrued == 0 {
		return 0, nil
	}

	balance, err := s.vault.ReportedBalance(ctx, asset)
	if err != nil {
		return 0, fmt.Errorf("reading vault balance: %w", err)
	}

	return s.payOut(ctx, asset, receiver, balance, true,
		func(l *domain.Ledger) (uint64, error) {
			return l.SettleOperator(), nil
		},
	)
}

// payOut runs the settle → escrow burn → vault withdrawal → settlement
// transfer sequence. Once the settle is committed, any downstream failure
// latches the asset halted: retrying with the same committed share-debit
// state would double-charge the ledger.
func (s *rewardService) payOut(
	ctx context.Context, asset, receiver string, balance uint64, operator bool,
	settleFn func(l *domain.Ledger) (uint64, error),
) (uint64, error) {
	var settled uint64
	if err := s.ledgerRepo.UpdateLedger(
		ctx, asset, func(l *domain.Ledger) (*domain.Ledger, error) {
			amount, err := settleFn(l)
			if err != nil {
				return nil, err
			}
			settled = amount
			return l, nil
		},
	); err != nil {
		return 0, err
	}
	if settled == 0 {
		return 0, nil
	}

	var underlying uint64
	if err := s.escrowRepo.UpdateEscrow(
		ctx, asset, func(e *domain.Escrow) (*domain.Escrow, error) {
			amount, err := e.WithdrawByShare(settled, balance)
			if err != nil {
				return nil, err
			}
			underlying = amount
			return e, nil
		},
	); err != nil {
		s.haltAsset(asset, err)
		return 0, err
	}

	released, err := s.vault.Withdraw(ctx, asset, underlying)
	if err != nil {
		s.haltAsset(asset, err)
		return 0, ErrVaultWithdrawalFailed
	}

	if err := s.settlement.TransferOut(ctx, asset, receiver, released); err != nil {
		s.haltAsset(asset, err)
		return 0, ErrSettlementFailed
	}

	withdrawal := domain.NewWithdrawal(asset, receiver, settled, released, operator)
	if err := s.withdrawalRepo.AddWithdrawal(ctx, withdrawal); err != nil {
		log.WithError(err).WithField("asset", asset).
			Error("failed to record withdrawal")
	}

	claimsPaid.WithLabelValues(asset).Add(float64(released))

	log.WithFields(log.Fields{
		"asset":    asset,
		"receiver": receiver,
		"shares":   settled,
		"released": released,
		"operator": operator,
	}).Debug("claim paid out")

	if released != underlying {
		log.WithFields(log.Fields{
			"asset":     asset,
			"estimated": underlying,
			"released":  released,
		}).Warn("vault released a different amount than estimated")
		return released, ErrVaultShortfall
	}
	return released, nil
}

func (s *rewardService) PendingReward(
	ctx context.Context, participant, asset string,
) (uint64, error) {
	if participant == "" {
		return 0, domain.ErrInvalidParticipant
	}
	ledger, err := s.getLedger(ctx, asset)
	if err != nil {
		return 0, err
	}
	return ledger.PendingReward(participant)
}

func (s *rewardService) PendingRewardInUnderlying(
	ctx context.Context, participant, asset string,
) (uint64, error) {
	pending, err := s.PendingReward(ctx, participant, asset)
	if err != nil {
		return 0, err
	}
	if pending == 0 {
		return 0, nil
	}

	escrow, err := s.getEscrow(ctx, asset)
	if err != nil {
		return 0, err
	}
	balance, err := s.vault.ReportedBalance(ctx, asset)
	if err != nil {
		return 0, fmt.Errorf("reading vault balance: %w", err)
	}
	price, err := escrow.SharePrice(balance)
	if err != nil {
		return 0, err
	}

	underlying, err := mathutil.ToUint64(mathutil.MulDivTrunc(
		mathutil.FromUint64(pending), price, mathutil.Scale,
	))
	if err != nil {
		return 0, domain.ErrAmountOverflow
	}
	return underlying, nil
}

func (s *rewardService) IsHalted(asset string) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.halted[asset]
}

func (s *rewardService) lockForAsset(asset string) *sync.Mutex {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	lock, ok := s.locks[asset]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[asset] = lock
	}
	return lock
}

func (s *rewardService) haltAsset(asset string, reason error) {
	s.mtx.Lock()
	s.halted[asset] = true
	s.mtx.Unlock()

	assetsHalted.WithLabelValues(asset).Set(1)
	log.WithError(reason).WithField("asset", asset).
		Error("asset halted pending manual intervention")
}

func (s *rewardService) getEscrow(
	ctx context.Context, asset string,
) (*domain.Escrow, error) {
	escrow, err := s.escrowRepo.GetEscrow(ctx, asset)
	if err != nil {
		if errors.Is(err, domain.ErrEscrowNotFound) {
			return nil, ErrAssetNotSupported
		}
		return nil, err
	}
	return escrow, nil
}

func (s *rewardService) getLedger(
	ctx context.Context, asset string,
) (*domain.Ledger, error) {
	ledger, err := s.ledgerRepo.GetLedger(ctx, asset)
	if err != nil {
		if errors.Is(err, domain.ErrLedgerNotFound) {
			return nil, ErrAssetNotSupported
		}
		return nil, err
	}
	return ledger, nil
}
