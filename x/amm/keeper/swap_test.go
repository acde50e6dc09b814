package keeper_test

import (
	"context"
	"fmt"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	testkeeper "github.com/moon-chain/moon/testutil/keeper"
	"github.com/moon-chain/moon/x/amm/keeper"
	"github.com/moon-chain/moon/x/amm/types"
	markettypes "github.com/moon-chain/moon/x/market/types"
)

func TestSwapTokensForAssets(t *testing.T) {
	k, ctx, mocks := testkeeper.AmmKeeper(t)
	owner := testkeeper.TestAddress("owner")
	trader := testkeeper.TestAddress("trader")

	mocks.Nft.MintTo(testClass, "1", owner)
	mocks.Nft.MintTo(testClass, "2", owner)
	fund(mocks, trader, 10_000)

	pairId, err := k.CreatePair(ctx, owner, linearTradePair("1", "2"), math.ZeroInt())
	require.NoError(t, err)

	// Buying both: raw = 2*1000 + 100*3 = 2300, protocol fee 1% = 23.
	quote, err := k.SwapTokensForAssets(ctx, trader, "", pairId, []string{"1", "2"}, math.NewInt(2_323))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2_300), quote.RawValue)
	require.Equal(t, math.NewInt(23), quote.ProtocolFee)
	require.Equal(t, math.NewInt(1_200), quote.NewSpotPrice)

	require.Equal(t, trader, mocks.Nft.GetOwner(ctx, testClass, "1"))
	require.Equal(t, trader, mocks.Nft.GetOwner(ctx, testClass, "2"))
	require.Equal(t, math.NewInt(10_000-2_323), balance(mocks, trader))
	require.Equal(t, math.NewInt(23), balance(mocks, mocks.FeeSink))

	pair, _ := k.GetPair(ctx, pairId)
	require.Empty(t, pair.AssetIds)
	require.Equal(t, math.NewInt(2_300), pair.TokenReserve, "reserve gains the input net of protocol fee")
	require.Equal(t, pair.TokenReserve, balance(mocks, k.GetModuleAddress()))
}

func TestSwapAssetsForTokens(t *testing.T) {
	k, ctx, mocks := testkeeper.AmmKeeper(t)
	owner := testkeeper.TestAddress("owner")
	trader := testkeeper.TestAddress("trader")

	fund(mocks, owner, 5_000)
	mocks.Nft.MintTo(testClass, "9", trader)

	pairId, err := k.CreatePair(ctx, owner, linearTradePair(), math.NewInt(5_000))
	require.NoError(t, err)

	// Selling one: raw = 1000, protocol fee 10, payout 990.
	quote, err := k.SwapAssetsForTokens(ctx, trader, "", pairId, []string{"9"}, math.NewInt(990))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000), quote.RawValue)
	require.Equal(t, math.NewInt(10), quote.ProtocolFee)
	require.Equal(t, math.NewInt(990), quote.OutputValue)
	require.Equal(t, math.NewInt(900), quote.NewSpotPrice)

	require.Equal(t, math.NewInt(990), balance(mocks, trader))
	require.Equal(t, math.NewInt(10), balance(mocks, mocks.FeeSink))
	require.Equal(t, k.GetModuleAddress(), mocks.Nft.GetOwner(ctx, testClass, "9"))

	pair, _ := k.GetPair(ctx, pairId)
	require.Equal(t, []string{"9"}, pair.AssetIds)
	require.Equal(t, math.NewInt(4_000), pair.TokenReserve, "reserve loses payout plus protocol fee")
	require.Equal(t, pair.TokenReserve, balance(mocks, k.GetModuleAddress()))
}

func TestSwapLpFeeStaysInReserve(t *testing.T) {
	k, ctx, mocks := testkeeper.AmmKeeper(t)
	owner := testkeeper.TestAddress("owner")
	trader := testkeeper.TestAddress("trader")

	fund(mocks, owner, 5_000)
	mocks.Nft.MintTo(testClass, "9", trader)

	pair := linearTradePair()
	pair.Fee = math.LegacyNewDecWithPrec(10, 2) // 10% LP fee
	pairId, err := k.CreatePair(ctx, owner, pair, math.NewInt(5_000))
	require.NoError(t, err)

	// raw 1000, LP fee 100, protocol fee 10: trader nets 890, the pair
	// disburses 900 and keeps the LP slice.
	quote, err := k.SwapAssetsForTokens(ctx, trader, "", pairId, []string{"9"}, math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(890), quote.OutputValue)

	stored, _ := k.GetPair(ctx, pairId)
	require.Equal(t, math.NewInt(5_000-900), stored.TokenReserve)
	require.Equal(t, math.NewInt(890), balance(mocks, trader))
}

func TestSwapSlippageBounds(t *testing.T) {
	k, ctx, mocks := testkeeper.AmmKeeper(t)
	owner := testkeeper.TestAddress("owner")
	trader := testkeeper.TestAddress("trader")

	fund(mocks, owner, 5_000)
	fund(mocks, trader, 5_000)
	mocks.Nft.MintTo(testClass, "1", owner)
	mocks.Nft.MintTo(testClass, "9", trader)

	pairId, err := k.CreatePair(ctx, owner, linearTradePair("1"), math.NewInt(5_000))
	require.NoError(t, err)

	// Buying "1" costs 1100 + 11 protocol fee.
	_, err = k.SwapTokensForAssets(ctx, trader, "", pairId, []string{"1"}, math.NewInt(1_110))
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	// Selling "9" nets 990.
	_, err = k.SwapAssetsForTokens(ctx, trader, "", pairId, []string{"9"}, math.NewInt(991))
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	// Nothing moved.
	require.Equal(t, math.NewInt(5_000), balance(mocks, trader))
	require.Equal(t, trader, mocks.Nft.GetOwner(ctx, testClass, "9"))
}

func TestSwapPoolTypeRestrictions(t *testing.T) {
	k, ctx, mocks := testkeeper.AmmKeeper(t)
	owner := testkeeper.TestAddress("owner")
	trader := testkeeper.TestAddress("trader")

	fund(mocks, owner, 5_000)
	fund(mocks, trader, 5_000)
	mocks.Nft.MintTo(testClass, "1", owner)
	mocks.Nft.MintTo(testClass, "9", trader)

	tokenPool := linearTradePair()
	tokenPool.PoolType = types.PoolTypeToken
	tokenPoolId, err := k.CreatePair(ctx, owner, tokenPool, math.NewInt(5_000))
	require.NoError(t, err)

	nftPool := linearTradePair("1")
	nftPool.PoolType = types.PoolTypeNft
	nftPoolId, err := k.CreatePair(ctx, owner, nftPool, math.ZeroInt())
	require.NoError(t, err)

	// A token pool only buys assets; an NFT pool only sells them.
	_, err = k.SwapTokensForAssets(ctx, trader, "", tokenPoolId, []string{"1"}, math.NewInt(5_000))
	require.ErrorIs(t, err, types.ErrInvalidPoolType)

	_, err = k.SwapAssetsForTokens(ctx, trader, "", nftPoolId, []string{"9"}, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidPoolType)

	_, err = k.SwapTokensForAssets(ctx, trader, "", nftPoolId, []string{"9"}, math.NewInt(5_000))
	require.ErrorIs(t, err, types.ErrAssetNotInPair)
}

func TestSwapRouterWhitelist(t *testing.T) {
	k, ctx, mocks := testkeeper.AmmKeeper(t)
	owner := testkeeper.TestAddress("owner")
	trader := testkeeper.TestAddress("trader")
	router := testkeeper.TestAddress("router")

	fund(mocks, trader, 5_000)
	mocks.Nft.MintTo(testClass, "1", owner)

	pairId, err := k.CreatePair(ctx, owner, linearTradePair("1"), math.ZeroInt())
	require.NoError(t, err)

	_, err = k.SwapTokensForAssets(ctx, trader, router.String(), pairId, []string{"1"}, math.NewInt(5_000))
	require.ErrorIs(t, err, types.ErrRouterNotWhitelisted)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	params.WhitelistedRouters = []string{router.String()}
	require.NoError(t, k.SetParams(ctx, params))

	_, err = k.SwapTokensForAssets(ctx, trader, router.String(), pairId, []string{"1"}, math.NewInt(5_000))
	require.NoError(t, err)
	require.Equal(t, trader, mocks.Nft.GetOwner(ctx, testClass, "1"))
}

func TestSwapAssetRecipientRouting(t *testing.T) {
	k, ctx, mocks := testkeeper.AmmKeeper(t)
	owner := testkeeper.TestAddress("owner")
	trader := testkeeper.TestAddress("trader")
	treasury := testkeeper.TestAddress("treasury")

	fund(mocks, owner, 5_000)
	fund(mocks, trader, 5_000)
	mocks.Nft.MintTo(testClass, "1", owner)
	mocks.Nft.MintTo(testClass, "9", trader)

	nftPool := linearTradePair("1")
	nftPool.PoolType = types.PoolTypeNft
	nftPool.AssetRecipient = treasury.String()
	nftPoolId, err := k.CreatePair(ctx, owner, nftPool, math.ZeroInt())
	require.NoError(t, err)

	// One-sided pools with a recipient configured route proceeds there
	// instead of accruing to the reserve.
	quote, err := k.SwapTokensForAssets(ctx, trader, "", nftPoolId, []string{"1"}, math.NewInt(5_000))
	require.NoError(t, err)

	proceeds := quote.InputValue.Sub(quote.ProtocolFee)
	require.Equal(t, proceeds, balance(mocks, treasury))
	pair, _ := k.GetPair(ctx, nftPoolId)
	require.True(t, pair.TokenReserve.IsZero())

	tokenPool := linearTradePair()
	tokenPool.PoolType = types.PoolTypeToken
	tokenPool.AssetRecipient = treasury.String()
	tokenPoolId, err := k.CreatePair(ctx, owner, tokenPool, math.NewInt(5_000))
	require.NoError(t, err)

	// Assets sold into a one-sided token pool go straight to the recipient.
	_, err = k.SwapAssetsForTokens(ctx, trader, "", tokenPoolId, []string{"9"}, math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, treasury, mocks.Nft.GetOwner(ctx, testClass, "9"))

	stored, _ := k.GetPair(ctx, tokenPoolId)
	require.Empty(t, stored.AssetIds)
}

func TestSwapRejectsDuplicateAssetIds(t *testing.T) {
	k, ctx, mocks := testkeeper.AmmKeeper(t)
	owner := testkeeper.TestAddress("owner")
	trader := testkeeper.TestAddress("trader")

	fund(mocks, owner, 5_000)
	fund(mocks, trader, 5_000)
	mocks.Nft.MintTo(testClass, "1", owner)
	mocks.Nft.MintTo(testClass, "9", trader)

	pairId, err := k.CreatePair(ctx, owner, linearTradePair("1"), math.NewInt(5_000))
	require.NoError(t, err)

	// A repeated id must not be priced as a second item in either direction.
	_, err = k.SwapAssetsForTokens(ctx, trader, "", pairId, []string{"9", "9"}, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidState)

	_, err = k.SwapTokensForAssets(ctx, trader, "", pairId, []string{"1", "1"}, math.NewInt(5_000))
	require.ErrorIs(t, err, types.ErrInvalidState)

	// Nothing moved and the ledgers still back each other.
	require.Equal(t, math.NewInt(5_000), balance(mocks, trader))
	require.Equal(t, trader, mocks.Nft.GetOwner(ctx, testClass, "9"))
	pair, _ := k.GetPair(ctx, pairId)
	require.Equal(t, []string{"1"}, pair.AssetIds)
	require.Equal(t, math.NewInt(5_000), pair.TokenReserve)
	require.Equal(t, pair.TokenReserve, balance(mocks, k.GetModuleAddress()))

	msg, broken := keeper.AllInvariants(k)(ctx)
	require.False(t, broken, msg)
}

// royaltyStub backs the swap royalty layering tests without a full market
// keeper.
type royaltyStub struct {
	royalties map[string]markettypes.Royalty
}

func (r royaltyStub) GetRoyalty(_ context.Context, classId string) (markettypes.Royalty, bool) {
	royalty, ok := r.royalties[classId]
	return royalty, ok
}

func TestSwapRoyaltyLayering(t *testing.T) {
	artist := testkeeper.TestAddress("artist")
	k, ctx, mocks := testkeeper.AmmKeeperWithRoyalties(t, royaltyStub{
		royalties: map[string]markettypes.Royalty{
			testClass: {Recipient: artist.String(), FeeBps: 500}, // 5%
		},
	})
	owner := testkeeper.TestAddress("owner")
	trader := testkeeper.TestAddress("trader")

	fund(mocks, owner, 5_000)
	fund(mocks, trader, 5_000)
	mocks.Nft.MintTo(testClass, "1", owner)
	mocks.Nft.MintTo(testClass, "9", trader)

	pairId, err := k.CreatePair(ctx, owner, linearTradePair("1"), math.NewInt(2_000))
	require.NoError(t, err)

	// Buy: raw 1100, protocol fee 11, royalty 5% of raw = 55; the trader
	// pays all three on top of nothing else.
	_, err = k.SwapTokensForAssets(ctx, trader, "", pairId, []string{"1"}, math.NewInt(1_165))
	require.ErrorIs(t, err, types.ErrSlippageExceeded, "royalty counts against max input")

	quote, err := k.SwapTokensForAssets(ctx, trader, "", pairId, []string{"1"}, math.NewInt(1_166))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_100), quote.RawValue)
	require.Equal(t, math.NewInt(55), balance(mocks, artist))
	require.Equal(t, math.NewInt(5_000-1_166), balance(mocks, trader))

	// Sell: raw 1200 at the risen spot, protocol fee 12, royalty 60; the
	// royalty comes out of the trader's payout.
	sell, err := k.SwapAssetsForTokens(ctx, trader, "", pairId, []string{"9"}, math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_200), sell.RawValue)
	require.Equal(t, math.NewInt(1_188), sell.OutputValue)
	require.Equal(t, math.NewInt(55+60), balance(mocks, artist))
	require.Equal(t, math.NewInt(5_000-1_166+1_128), balance(mocks, trader))
}

func TestSwapConservation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k, ctx, mocks := testkeeper.AmmKeeper(t)
		owner := testkeeper.TestAddress("owner")
		trader := testkeeper.TestAddress("trader")

		fund(mocks, owner, 1_000_000)
		fund(mocks, trader, 1_000_000)

		nextNft := 0
		mintOwned := func() string {
			nextNft++
			id := fmt.Sprintf("nft-%d", nextNft)
			mocks.Nft.MintTo(testClass, id, owner)
			return id
		}

		pair := linearTradePair(mintOwned(), mintOwned(), mintOwned())
		pair.SpotPrice = math.NewInt(rapid.Int64Range(100, 10_000).Draw(rt, "spot"))
		pair.Delta = math.NewInt(rapid.Int64Range(0, 500).Draw(rt, "delta"))
		pairId, err := k.CreatePair(ctx, owner, pair, math.NewInt(200_000))
		require.NoError(rt, err)

		var held []string
		steps := rapid.IntRange(1, 12).Draw(rt, "steps")
		for step := 0; step < steps; step++ {
			current, _ := k.GetPair(ctx, pairId)
			buying := rapid.Bool().Draw(rt, fmt.Sprintf("buy%d", step))
			if buying && len(current.AssetIds) > 0 {
				id := current.AssetIds[0]
				if _, err := k.SwapTokensForAssets(ctx, trader, "", pairId, []string{id}, math.NewInt(500_000)); err == nil {
					held = append(held, id)
				}
			} else if len(held) > 0 {
				id := held[len(held)-1]
				if _, err := k.SwapAssetsForTokens(ctx, trader, "", pairId, []string{id}, math.ZeroInt()); err == nil {
					held = held[:len(held)-1]
				}
			}

			// The module account exactly backs the pair reserve after every
			// swap; fees leak only to the sink, never out of thin air.
			current, _ = k.GetPair(ctx, pairId)
			require.Equal(rt, current.TokenReserve, balance(mocks, k.GetModuleAddress()))
			require.False(rt, current.TokenReserve.IsNegative())
		}
	})
}
