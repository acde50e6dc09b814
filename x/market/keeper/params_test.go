package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	testkeeper "github.com/moon-chain/moon/testutil/keeper"
	"github.com/moon-chain/moon/x/market/types"
)

func TestUpdateParamsAuthority(t *testing.T) {
	k, ctx, mocks := testkeeper.MarketKeeper(t)
	stranger := testkeeper.TestAddress("stranger")

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	params.ProtocolFeeBps = 100

	require.ErrorIs(t, k.UpdateParams(ctx, stranger.String(), params), types.ErrUnauthorized)
	require.NoError(t, k.UpdateParams(ctx, mocks.Authority.String(), params))

	stored, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(100), stored.ProtocolFeeBps)

	// Misconfigured updates are rejected even from the authority.
	params.ProtocolFeeBps = types.MaxProtocolFeeBps + 1
	require.Error(t, k.UpdateParams(ctx, mocks.Authority.String(), params))
}

func TestSetRoyaltyAuthority(t *testing.T) {
	k, ctx, mocks := testkeeper.MarketKeeper(t)
	stranger := testkeeper.TestAddress("stranger")
	artist := testkeeper.TestAddress("artist")

	royalty := types.Royalty{Recipient: artist.String(), FeeBps: 250}
	require.ErrorIs(t, k.SetRoyalty(ctx, stranger.String(), testClass, royalty), types.ErrUnauthorized)

	require.NoError(t, k.SetRoyalty(ctx, mocks.Authority.String(), testClass, royalty))
	stored, found := k.GetRoyalty(ctx, testClass)
	require.True(t, found)
	require.Equal(t, royalty, stored)

	royalty.FeeBps = types.MaxRoyaltyFeeBpsCeiling + 1
	require.Error(t, k.SetRoyalty(ctx, mocks.Authority.String(), testClass, royalty))
}
