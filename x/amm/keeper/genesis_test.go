package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/moon-chain/moon/testutil/keeper"
	"github.com/moon-chain/moon/x/amm/types"
)

func TestAmmGenesisRoundTrip(t *testing.T) {
	k, ctx, mocks := testkeeper.AmmKeeper(t)
	owner := testkeeper.TestAddress("owner")

	fund(mocks, owner, 10_000)
	mocks.Nft.MintTo(testClass, "1", owner)

	_, err := k.CreatePair(ctx, owner, linearTradePair("1"), math.NewInt(5_000))
	require.NoError(t, err)

	exp := linearTradePair()
	exp.CurveType = types.CurveExponential
	exp.SpotPrice = types.Wad
	exp.Delta = types.Wad.MulRaw(2)
	_, err = k.CreatePair(ctx, owner, exp, math.ZeroInt())
	require.NoError(t, err)

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Pairs, 2)
	require.Equal(t, uint64(3), exported.NextPair)

	k2, ctx2, _ := testkeeper.AmmKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	reexported, err := k2.ExportGenesis(ctx2)
	require.NoError(t, err)
	require.Equal(t, exported, reexported)

	// Slot allocation continues past the imported pairs.
	newId, err := k2.CreatePair(ctx2, owner, linearTradePair(), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, uint64(3), newId)
}

func TestAmmGenesisValidateRejects(t *testing.T) {
	owner := testkeeper.TestAddress("owner")

	pair := linearTradePair()
	pair.Id = 1
	pair.Owner = owner.String()
	pair.TokenReserve = math.ZeroInt()

	dup := types.DefaultGenesis()
	dup.Pairs = []types.Pair{pair, pair}
	dup.NextPair = 2
	require.Error(t, dup.Validate())

	stale := types.DefaultGenesis()
	stale.Pairs = []types.Pair{pair}
	stale.NextPair = 1
	require.Error(t, stale.Validate(), "pair id at the counter")

	good := types.DefaultGenesis()
	good.Pairs = []types.Pair{pair}
	good.NextPair = 2
	require.NoError(t, good.Validate())
}
