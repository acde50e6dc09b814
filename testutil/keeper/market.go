package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/moon-chain/moon/x/market/keeper"
	"github.com/moon-chain/moon/x/market/types"
)

// MarketMocks bundles the stub collaborators of a market test keeper.
type MarketMocks struct {
	Bank      *BankStub
	Nft       *NFTStub
	Rewards   *RewardsStub
	Authority sdk.AccAddress
	FeeSink   sdk.AccAddress
}

// MarketKeeper creates a test keeper for the market module backed by an
// in-memory multistore and stub collaborators. The protocol fee is
// configured at 50 bps with a funded-from-nothing fee sink.
func MarketKeeper(t testing.TB) (keeper.Keeper, sdk.Context, *MarketMocks) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	mocks := &MarketMocks{
		Bank:      NewBankStub(),
		Nft:       NewNFTStub(),
		Rewards:   NewRewardsStub(),
		Authority: TestAddress("authority"),
		FeeSink:   TestAddress("fee-sink"),
	}

	k := keeper.NewKeeper(
		storeKey,
		mocks.Bank,
		mocks.Nft,
		mocks.Rewards,
		mocks.Authority.String(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	params := types.DefaultParams()
	params.ProtocolFeeBps = 50
	params.ProtocolFeeRecipient = mocks.FeeSink.String()
	require.NoError(t, k.SetParams(ctx, params))

	return k, ctx, mocks
}
