package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/moon-chain/moon/testutil/keeper"
)

const testClass = "moonbirds"

func TestListLifecycle(t *testing.T) {
	k, ctx, mocks := testkeeper.MarketKeeper(t)
	seller := testkeeper.TestAddress("seller")
	mocks.Nft.MintTo(testClass, "7", seller)

	require.NoError(t, k.List(ctx, seller, testClass, "7", math.NewInt(100)))

	// Custody moves before the entry exists; after List the module escrow
	// must hold the asset.
	require.Equal(t, k.GetModuleAddress(), mocks.Nft.GetOwner(ctx, testClass, "7"))

	listing, found := k.GetListing(ctx, testClass, "7")
	require.True(t, found)
	require.Equal(t, seller.String(), listing.Seller)
	require.Equal(t, math.NewInt(100), listing.Price)

	require.NoError(t, k.EditListing(ctx, seller, testClass, "7", math.NewInt(150), ""))
	listing, _ = k.GetListing(ctx, testClass, "7")
	require.Equal(t, math.NewInt(150), listing.Price)

	require.NoError(t, k.CancelListing(ctx, seller, testClass, "7"))
	_, found = k.GetListing(ctx, testClass, "7")
	require.False(t, found)
	require.Equal(t, seller, mocks.Nft.GetOwner(ctx, testClass, "7"))
}

func TestListRejections(t *testing.T) {
	k, ctx, mocks := testkeeper.MarketKeeper(t)
	seller := testkeeper.TestAddress("seller")
	stranger := testkeeper.TestAddress("stranger")
	mocks.Nft.MintTo(testClass, "7", seller)

	require.Error(t, k.List(ctx, seller, testClass, "7", math.ZeroInt()), "zero price")
	require.Error(t, k.List(ctx, stranger, testClass, "7", math.NewInt(100)), "non-owner")

	require.NoError(t, k.List(ctx, seller, testClass, "7", math.NewInt(100)))

	// One active listing per asset, never duplicated.
	require.Error(t, k.List(ctx, seller, testClass, "7", math.NewInt(200)))

	require.Error(t, k.EditListing(ctx, stranger, testClass, "7", math.NewInt(1), ""))
	require.Error(t, k.CancelListing(ctx, stranger, testClass, "7"))

	listing, found := k.GetListing(ctx, testClass, "7")
	require.True(t, found)
	require.Equal(t, math.NewInt(100), listing.Price)
}

func TestEditListingSellerHandoff(t *testing.T) {
	k, ctx, mocks := testkeeper.MarketKeeper(t)
	seller := testkeeper.TestAddress("seller")
	heir := testkeeper.TestAddress("heir")
	mocks.Nft.MintTo(testClass, "7", seller)

	require.NoError(t, k.List(ctx, seller, testClass, "7", math.NewInt(100)))
	require.NoError(t, k.EditListing(ctx, seller, testClass, "7", math.NewInt(100), heir.String()))

	// The old seller lost control with the handoff.
	require.Error(t, k.EditListing(ctx, seller, testClass, "7", math.NewInt(1), ""))
	require.NoError(t, k.CancelListing(ctx, heir, testClass, "7"))
	require.Equal(t, heir, mocks.Nft.GetOwner(ctx, testClass, "7"))
}

func TestListMany(t *testing.T) {
	k, ctx, mocks := testkeeper.MarketKeeper(t)
	seller := testkeeper.TestAddress("seller")
	for _, id := range []string{"1", "2", "3"} {
		mocks.Nft.MintTo(testClass, id, seller)
	}

	err := k.ListMany(ctx, seller, testClass, []string{"1", "2"}, []math.Int{math.NewInt(10)})
	require.Error(t, err, "mismatched lengths")

	err = k.ListMany(ctx, seller, testClass, nil, nil)
	require.Error(t, err, "empty batch")

	prices := []math.Int{math.NewInt(10), math.NewInt(20), math.NewInt(30)}
	require.NoError(t, k.ListMany(ctx, seller, testClass, []string{"1", "2", "3"}, prices))

	for i, id := range []string{"1", "2", "3"} {
		listing, found := k.GetListing(ctx, testClass, id)
		require.True(t, found)
		require.Equal(t, prices[i], listing.Price)
	}
}
