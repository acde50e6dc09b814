package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/moon-chain/moon/testutil/keeper"
	"github.com/moon-chain/moon/x/amm/types"
)

func TestUpdateParamsAuthority(t *testing.T) {
	k, ctx, mocks := testkeeper.AmmKeeper(t)
	stranger := testkeeper.TestAddress("stranger")

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	params.ProtocolFeeMultiplier = math.LegacyNewDecWithPrec(2, 2)

	require.ErrorIs(t, k.UpdateParams(ctx, stranger.String(), params), types.ErrUnauthorized)
	require.NoError(t, k.UpdateParams(ctx, mocks.Authority.String(), params))

	stored, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, params.ProtocolFeeMultiplier, stored.ProtocolFeeMultiplier)

	params.ProtocolFeeMultiplier = types.MaxProtocolFeeMultiplier.Add(math.LegacySmallestDec())
	require.Error(t, k.UpdateParams(ctx, mocks.Authority.String(), params))
}
