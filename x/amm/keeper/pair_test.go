package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/moon-chain/moon/testutil/keeper"
	"github.com/moon-chain/moon/x/amm/types"
)

const (
	testClass = "moonbirds"
	testDenom = "umoon"
)

func fund(mocks *testkeeper.AmmMocks, addr sdk.AccAddress, amount int64) {
	mocks.Bank.Fund(addr, sdk.NewCoins(sdk.NewCoin(testDenom, math.NewInt(amount))))
}

func balance(mocks *testkeeper.AmmMocks, addr sdk.AccAddress) math.Int {
	return mocks.Bank.GetBalance(nil, addr, testDenom).Amount
}

// linearTradePair is the workhorse fixture: a two-sided pool at spot 1000
// with an additive step of 100 and no LP fee.
func linearTradePair(assetIds ...string) types.Pair {
	return types.Pair{
		PoolType:  types.PoolTypeTrade,
		CurveType: types.CurveLinear,
		SpotPrice: math.NewInt(1_000),
		Delta:     math.NewInt(100),
		Fee:       math.LegacyZeroDec(),
		ClassId:   testClass,
		Denom:     testDenom,
		AssetIds:  assetIds,
	}
}

func TestCreatePair(t *testing.T) {
	k, ctx, mocks := testkeeper.AmmKeeper(t)
	owner := testkeeper.TestAddress("owner")

	fund(mocks, owner, 10_000)
	mocks.Nft.MintTo(testClass, "1", owner)
	mocks.Nft.MintTo(testClass, "2", owner)

	pairId, err := k.CreatePair(ctx, owner, linearTradePair("1", "2"), math.NewInt(5_000))
	require.NoError(t, err)
	require.Equal(t, uint64(1), pairId, "ids start at 1")

	pair, found := k.GetPair(ctx, pairId)
	require.True(t, found)
	require.Equal(t, owner.String(), pair.Owner)
	require.Equal(t, math.NewInt(5_000), pair.TokenReserve)
	require.Equal(t, []string{"1", "2"}, pair.AssetIds)

	// Deposits are escrowed on creation.
	require.Equal(t, math.NewInt(5_000), balance(mocks, owner))
	require.Equal(t, math.NewInt(5_000), balance(mocks, k.GetModuleAddress()))
	require.Equal(t, k.GetModuleAddress(), mocks.Nft.GetOwner(ctx, testClass, "1"))

	second, err := k.CreatePair(ctx, owner, linearTradePair(), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, uint64(2), second)
}

func TestCreatePairRejections(t *testing.T) {
	k, ctx, mocks := testkeeper.AmmKeeper(t)
	owner := testkeeper.TestAddress("owner")
	stranger := testkeeper.TestAddress("stranger")

	fund(mocks, owner, 10_000)
	mocks.Nft.MintTo(testClass, "1", stranger)

	badFee := linearTradePair()
	badFee.PoolType = types.PoolTypeNft
	badFee.Fee = math.LegacyNewDecWithPrec(5, 2)
	_, err := k.CreatePair(ctx, owner, badFee, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidPoolType, "LP fee on a one-sided pool")

	badDelta := linearTradePair()
	badDelta.CurveType = types.CurveExponential
	badDelta.Delta = types.Wad
	_, err = k.CreatePair(ctx, owner, badDelta, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrDeltaTooSmall)

	_, err = k.CreatePair(ctx, owner, linearTradePair("1"), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrUnauthorized, "depositing an asset the owner does not hold")

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	params.WhitelistedCurves = []types.CurveType{types.CurveLinear}
	require.NoError(t, k.SetParams(ctx, params))

	xyk := linearTradePair()
	xyk.CurveType = types.CurveXyk
	xyk.SpotPrice = math.NewInt(1_000)
	xyk.Delta = math.NewInt(10)
	_, err = k.CreatePair(ctx, owner, xyk, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrCurveNotWhitelisted)
}

func TestDepositAndWithdrawTokens(t *testing.T) {
	k, ctx, mocks := testkeeper.AmmKeeper(t)
	owner := testkeeper.TestAddress("owner")
	stranger := testkeeper.TestAddress("stranger")

	fund(mocks, owner, 10_000)
	pairId, err := k.CreatePair(ctx, owner, linearTradePair(), math.NewInt(2_000))
	require.NoError(t, err)

	require.NoError(t, k.DepositTokens(ctx, owner, pairId, math.NewInt(3_000)))
	pair, _ := k.GetPair(ctx, pairId)
	require.Equal(t, math.NewInt(5_000), pair.TokenReserve)

	require.ErrorIs(t, k.DepositTokens(ctx, stranger, pairId, math.NewInt(1)), types.ErrUnauthorized)
	require.ErrorIs(t, k.DepositTokens(ctx, owner, pairId, math.ZeroInt()), types.ErrInvalidAmount)
	require.ErrorIs(t, k.DepositTokens(ctx, owner, pairId+1, math.NewInt(1)), types.ErrPairNotFound)

	require.ErrorIs(t, k.WithdrawTokens(ctx, owner, pairId, math.NewInt(5_001)), types.ErrInsufficientReserve)
	require.NoError(t, k.WithdrawTokens(ctx, owner, pairId, math.NewInt(5_000)))
	require.Equal(t, math.NewInt(10_000), balance(mocks, owner))

	pair, _ = k.GetPair(ctx, pairId)
	require.True(t, pair.TokenReserve.IsZero())
}

func TestDepositAndWithdrawAssets(t *testing.T) {
	k, ctx, mocks := testkeeper.AmmKeeper(t)
	owner := testkeeper.TestAddress("owner")

	for _, id := range []string{"1", "2", "3"} {
		mocks.Nft.MintTo(testClass, id, owner)
	}

	pairId, err := k.CreatePair(ctx, owner, linearTradePair("1"), math.ZeroInt())
	require.NoError(t, err)

	require.NoError(t, k.DepositAssets(ctx, owner, pairId, []string{"2", "3"}))
	pair, _ := k.GetPair(ctx, pairId)
	require.Equal(t, []string{"1", "2", "3"}, pair.AssetIds)

	require.ErrorIs(t, k.DepositAssets(ctx, owner, pairId, []string{"2"}), types.ErrInvalidState, "double deposit")

	require.NoError(t, k.WithdrawAssets(ctx, owner, pairId, []string{"2"}))
	pair, _ = k.GetPair(ctx, pairId)
	require.Equal(t, []string{"1", "3"}, pair.AssetIds)
	require.Equal(t, owner, mocks.Nft.GetOwner(ctx, testClass, "2"))

	require.ErrorIs(t, k.WithdrawAssets(ctx, owner, pairId, []string{"2"}), types.ErrAssetNotInPair)
}
