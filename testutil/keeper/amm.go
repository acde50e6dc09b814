package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/moon-chain/moon/x/amm/keeper"
	"github.com/moon-chain/moon/x/amm/types"
)

// AmmMocks bundles the stub collaborators of an amm test keeper.
type AmmMocks struct {
	Bank      *BankStub
	Nft       *NFTStub
	Authority sdk.AccAddress
	FeeSink   sdk.AccAddress
}

// AmmKeeper creates a test keeper for the amm module backed by an in-memory
// multistore and stub collaborators. The protocol fee multiplier is
// configured at 1% and no royalty registry is wired; tests needing
// royalties pass their own keeper through AmmKeeperWithRoyalties.
func AmmKeeper(t testing.TB) (keeper.Keeper, sdk.Context, *AmmMocks) {
	return AmmKeeperWithRoyalties(t, nil)
}

// AmmKeeperWithRoyalties is AmmKeeper with an explicit royalty registry.
func AmmKeeperWithRoyalties(t testing.TB, royaltyKeeper types.RoyaltyKeeper) (keeper.Keeper, sdk.Context, *AmmMocks) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	mocks := &AmmMocks{
		Bank:      NewBankStub(),
		Nft:       NewNFTStub(),
		Authority: TestAddress("authority"),
		FeeSink:   TestAddress("amm-fee-sink"),
	}

	k := keeper.NewKeeper(
		storeKey,
		mocks.Bank,
		mocks.Nft,
		royaltyKeeper,
		mocks.Authority.String(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	params := types.DefaultParams()
	params.ProtocolFeeMultiplier = math.LegacyNewDecWithPrec(1, 2)
	params.ProtocolFeeRecipient = mocks.FeeSink.String()
	require.NoError(t, k.SetParams(ctx, params))

	return k, ctx, mocks
}
