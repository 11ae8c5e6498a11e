package application

import (
	"context"
	"sync"

	"github.com/feevault-network/feevault-daemon/internal/core/domain"
	log "github.com/sirupsen/logrus"
)

// OperatorService is the administrative surface of the module: binding
// supported assets to their vault share token, claiming the operator share
// and transferring ownership. Every operation is gated by the single-owner
// capability set at initialization.
type OperatorService interface {
	// SupportAsset binds an asset to its vault-share token identity and
	// initializes its ledger and escrow.
	SupportAsset(ctx context.Context, requester, asset, shareToken string) error
	// ListAssets returns the read model of every supported asset.
	ListAssets(ctx context.Context) ([]AssetInfo, error)
	// ClaimOperatorFee pays the accrued operator share of an asset to the
	// current owner.
	ClaimOperatorFee(ctx context.Context, requester, asset string) (uint64, error)
	// TransferOwnership hands the owner capability to a new owner.
	TransferOwnership(ctx context.Context, requester, newOwner string) error
	// ListWithdrawals returns the payout audit trail for an asset.
	ListWithdrawals(ctx context.Context, requester, asset string) ([]domain.Withdrawal, error)
}

type operatorService struct {
	ledgerRepo     domain.LedgerRepository
	escrowRepo     domain.EscrowRepository
	withdrawalRepo domain.WithdrawalRepository
	rewardSvc      RewardService

	owner string
	mtx   sync.RWMutex
}

// NewOperatorService returns the administrative service with the owner
// capability bound to the given identity.
func NewOperatorService(
	ledgerRepo domain.LedgerRepository,
	escrowRepo domain.EscrowRepository,
	withdrawalRepo domain.WithdrawalRepository,
	rewardSvc RewardService,
	owner string,
) (OperatorService, error) {
	if owner == "" {
		return nil, ErrInvalidOwner
	}
	return &operatorService{
		ledgerRepo:     ledgerRepo,
		escrowRepo:     escrowRepo,
		withdrawalRepo: withdrawalRepo,
		rewardSvc:      rewardSvc,
		owner:          owner,
	}, nil
}

func (s *operatorService) SupportAsset(
	ctx context.Context, requester, asset, shareToken string,
) error {
	if err := s.checkOwner(requester); err != nil {
		return err
	}

	ledger, err := domain.NewLedger(asset)
	if err != nil {
		return err
	}
	escrow, err := domain.NewEscrow(asset, shareToken)
	if err != nil {
		return err
	}

	if err := s.ledgerRepo.AddLedger(ctx, ledger); err != nil {
		if err == domain.ErrLedgerAlreadyExists {
			return ErrAssetAlreadySupported
		}
		return err
	}
	if err := s.escrowRepo.AddEscrow(ctx, escrow); err != nil {
		if err == domain.ErrEscrowAlreadyExists {
			return ErrAssetAlreadySupported
		}
		return err
	}

	log.WithFields(log.Fields{
		"asset":       asset,
		"share_token": shareToken,
	}).Info("asset supported")

	return nil
}

func (s *operatorService) ListAssets(ctx context.Context) ([]AssetInfo, error) {
	ledgers, err := s.ledgerRepo.GetAllLedgers(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]AssetInfo, 0, len(ledgers))
	for _, ledger := range ledgers {
		escrow, err := s.escrowRepo.GetEscrow(ctx, ledger.Asset)
		if err != nil {
			return nil, err
		}
		infos = append(infos, assetInfo(ledger, *escrow, s.rewardSvc.IsHalted(ledger.Asset)))
	}
	return infos, nil
}

func (s *operatorService) ClaimOperatorFee(
	ctx context.Context, requester, asset string,
) (uint64, error) {
	if err := s.checkOwner(requester); err != nil {
		return 0, err
	}
	return s.rewardSvc.OnOperatorClaim(ctx, asset, s.currentOwner())
}

func (s *operatorService) TransferOwnership(
	ctx context.Context, requester, newOwner string,
) error {
	if err := s.checkOwner(requester); err != nil {
		return err
	}
	if newOwner == "" {
		return ErrInvalidOwner
	}

	s.mtx.Lock()
	s.owner = newOwner
	s.mtx.Unlock()

	log.WithField("owner", newOwner).Info("ownership transferred")
	return nil
}

func (s *operatorService) ListWithdrawals(
	ctx context.Context, requester, asset string,
) ([]domain.Withdrawal, error) {
	if err := s.checkOwner(requester); err != nil {
		return nil, err
	}
	return s.withdrawalRepo.ListWithdrawalsForAsset(ctx, asset)
}

func (s *operatorService) checkOwner(requester string) error {
	if requester != s.currentOwner() {
		return ErrNotOwner
	}
	return nil
}

func (s *operatorService) currentOwner() string {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.owner
}
