package keeper_test

import (
	"fmt"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/moon-chain/moon/x/market/keeper"
	testkeeper "github.com/moon-chain/moon/testutil/keeper"
)

func TestInvariantsHoldThroughLifecycle(t *testing.T) {
	k, ctx, mocks := testkeeper.MarketKeeper(t)
	seller := testkeeper.TestAddress("seller")
	bidder := testkeeper.TestAddress("bidder")

	checkInvariants := func() {
		msg, broken := keeper.AllInvariants(k)(ctx)
		require.False(t, broken, msg)
	}

	checkInvariants()

	mocks.Nft.MintTo(testClass, "1", seller)
	fund(mocks, bidder, 50_000)

	require.NoError(t, k.List(ctx, seller, testClass, "1", math.NewInt(10_000)))
	checkInvariants()

	idx, err := k.MakeOffer(ctx, bidder, math.NewInt(12_000))
	require.NoError(t, err)
	checkInvariants()

	_, err = k.MatchOffer(ctx, testkeeper.TestAddress("matcher"), testClass, "1", math.NewInt(12_000), idx)
	require.NoError(t, err)
	checkInvariants()
}

func TestListingEscrowInvariantDetectsLeak(t *testing.T) {
	k, ctx, mocks := testkeeper.MarketKeeper(t)
	seller := testkeeper.TestAddress("seller")

	mocks.Nft.MintTo(testClass, "1", seller)
	require.NoError(t, k.List(ctx, seller, testClass, "1", math.NewInt(10_000)))

	// Yank the asset out from under the ledger.
	require.NoError(t, mocks.Nft.Transfer(ctx, testClass, "1", seller))

	_, broken := keeper.ListingEscrowInvariant(k)(ctx)
	require.True(t, broken)
}

func TestFundsConservation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k, ctx, mocks := testkeeper.MarketKeeper(t)
		actors := []sdk.AccAddress{
			testkeeper.TestAddress("actor-a"),
			testkeeper.TestAddress("actor-b"),
			testkeeper.TestAddress("actor-c"),
		}
		for _, a := range actors {
			fund(mocks, a, 1_000_000)
		}

		type slot struct {
			owner  sdk.AccAddress
			amount math.Int
			index  uint64
		}
		var live []slot

		n := rapid.IntRange(1, 20).Draw(rt, "steps")
		for step := 0; step < n; step++ {
			actor := actors[rapid.IntRange(0, len(actors)-1).Draw(rt, fmt.Sprintf("actor%d", step))]
			if len(live) > 0 && rapid.Bool().Draw(rt, fmt.Sprintf("cancel%d", step)) {
				i := rapid.IntRange(0, len(live)-1).Draw(rt, fmt.Sprintf("slot%d", step))
				s := live[i]
				require.NoError(rt, k.CancelOffer(ctx, s.owner, s.amount, s.index))
				live = append(live[:i], live[i+1:]...)
			} else {
				amount := math.NewInt(rapid.Int64Range(1, 10_000).Draw(rt, fmt.Sprintf("amount%d", step)))
				index, err := k.MakeOffer(ctx, actor, amount)
				require.NoError(rt, err)
				live = append(live, slot{owner: actor, amount: amount, index: index})
			}

			// Escrow exactly backs the live slots after every step.
			escrowed := math.ZeroInt()
			for _, s := range live {
				escrowed = escrowed.Add(s.amount)
			}
			require.Equal(rt, escrowed, balance(mocks, k.GetModuleAddress()))

			msg, broken := keeper.FundsBackingInvariant(k)(ctx)
			require.False(rt, broken, msg)
		}
	})
}
