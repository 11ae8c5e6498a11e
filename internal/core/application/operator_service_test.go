package application_test

import (
	"testing"

	"github.com/feevault-network/feevault-daemon/internal/core/application"
	"github.com/feevault-network/feevault-daemon/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestSupportAsset(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t, nil)

	infos, err := svc.operator.ListAssets(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, asset, infos[0].Asset)
	require.Equal(t, shareToken, infos[0].ShareToken)
	require.False(t, infos[0].Halted)

	err = svc.operator.SupportAsset(ctx, owner, asset, shareToken)
	require.ErrorIs(t, err, application.ErrAssetAlreadySupported)

	err = svc.operator.SupportAsset(ctx, "intruder", asset, shareToken)
	require.ErrorIs(t, err, application.ErrNotOwner)

	err = svc.operator.SupportAsset(ctx, owner, "garbage", shareToken)
	require.ErrorIs(t, err, domain.ErrInvalidAsset)
}

func TestOperatorClaimIsOwnerGated(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t, nil)

	_, err := svc.operator.ClaimOperatorFee(ctx, "intruder", asset)
	require.ErrorIs(t, err, application.ErrNotOwner)

	_, err = svc.operator.ListWithdrawals(ctx, "intruder", asset)
	require.ErrorIs(t, err, application.ErrNotOwner)
}

func TestTransferOwnership(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t, nil)
	newOwner := "new-owner"

	err := svc.operator.TransferOwnership(ctx, "intruder", newOwner)
	require.ErrorIs(t, err, application.ErrNotOwner)

	err = svc.operator.TransferOwnership(ctx, owner, "")
	require.ErrorIs(t, err, application.ErrInvalidOwner)

	require.NoError(t, svc.operator.TransferOwnership(ctx, owner, newOwner))

	// The previous owner lost the capability, the new one holds it.
	_, err = svc.operator.ClaimOperatorFee(ctx, owner, asset)
	require.ErrorIs(t, err, application.ErrNotOwner)

	_, err = svc.operator.ClaimOperatorFee(ctx, newOwner, asset)
	require.NoError(t, err)
}

func TestAssetInfoReflectsActivity(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t, nil)

	require.NoError(t, svc.reward.OnTrade(ctx, alice, asset, 1_000_000))

	infos, err := svc.operator.ListAssets(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, uint64(1_000_000), infos[0].TotalVolume)
	require.Equal(t, uint64(1000), infos[0].TotalFeeAccrued)
	require.Equal(t, uint64(1000), infos[0].OperatorAccrued)
	require.Equal(t, uint64(1000), infos[0].VaultShares)
}
