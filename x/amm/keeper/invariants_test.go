package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/moon-chain/moon/testutil/keeper"
	"github.com/moon-chain/moon/x/amm/keeper"
)

func TestInvariantsHoldThroughSwaps(t *testing.T) {
	k, ctx, mocks := testkeeper.AmmKeeper(t)
	owner := testkeeper.TestAddress("owner")
	trader := testkeeper.TestAddress("trader")

	checkInvariants := func() {
		msg, broken := keeper.AllInvariants(k)(ctx)
		require.False(t, broken, msg)
	}

	checkInvariants()

	fund(mocks, owner, 10_000)
	fund(mocks, trader, 10_000)
	mocks.Nft.MintTo(testClass, "1", owner)

	pairId, err := k.CreatePair(ctx, owner, linearTradePair("1"), math.NewInt(5_000))
	require.NoError(t, err)
	checkInvariants()

	_, err = k.SwapTokensForAssets(ctx, trader, "", pairId, []string{"1"}, math.NewInt(2_000))
	require.NoError(t, err)
	checkInvariants()

	_, err = k.SwapAssetsForTokens(ctx, trader, "", pairId, []string{"1"}, math.ZeroInt())
	require.NoError(t, err)
	checkInvariants()

	require.NoError(t, k.WithdrawTokens(ctx, owner, pairId, math.NewInt(1_000)))
	checkInvariants()
}

func TestAssetEscrowInvariantDetectsLeak(t *testing.T) {
	k, ctx, mocks := testkeeper.AmmKeeper(t)
	owner := testkeeper.TestAddress("owner")

	mocks.Nft.MintTo(testClass, "1", owner)
	_, err := k.CreatePair(ctx, owner, linearTradePair("1"), math.ZeroInt())
	require.NoError(t, err)

	// Yank the asset out from under the pair record.
	require.NoError(t, mocks.Nft.Transfer(ctx, testClass, "1", owner))

	_, broken := keeper.AssetEscrowInvariant(k)(ctx)
	require.True(t, broken)
}

func TestReserveBackingInvariantDetectsDrain(t *testing.T) {
	k, ctx, mocks := testkeeper.AmmKeeper(t)
	owner := testkeeper.TestAddress("owner")

	fund(mocks, owner, 5_000)
	_, err := k.CreatePair(ctx, owner, linearTradePair(), math.NewInt(5_000))
	require.NoError(t, err)

	// Siphon module funds without touching the pair record.
	drain := sdk.NewCoins(mocks.Bank.GetBalance(ctx, k.GetModuleAddress(), testDenom))
	require.NoError(t, mocks.Bank.SendCoins(ctx, k.GetModuleAddress(), owner, drain))

	_, broken := keeper.ReserveBackingInvariant(k)(ctx)
	require.True(t, broken)
}
