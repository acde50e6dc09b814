package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the expected bank keeper used to escrow and settle the
// trade denom. Any transfer failure aborts the whole operation.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// NFTKeeper defines the expected NFT custody keeper, shaped after the sdk
// x/nft keeper. Transfer reassigns custody to the receiver unconditionally,
// so callers check the current holder via GetOwner before moving an asset.
type NFTKeeper interface {
	GetOwner(ctx context.Context, classId, nftId string) sdk.AccAddress
	Transfer(ctx context.Context, classId, nftId string, receiver sdk.AccAddress) error
	HasNFT(ctx context.Context, classId, nftId string) bool
	Mint(ctx context.Context, classId, nftId string, receiver sdk.AccAddress) error
}

// RewardsKeeper is the optional fee-sink capability: it receives the protocol
// fee of a sale and credits reward shares to both trade parties. A failure
// here aborts the trade.
type RewardsKeeper interface {
	DepositFees(ctx context.Context, buyer, seller sdk.AccAddress, fee sdk.Coin) (rewardPerParty sdkmath.Int, err error)
}

// MarketKeeperV1 is the versioned interface exported for other modules.
type MarketKeeperV1 interface {
	// GetListing returns the active listing for an asset, if any.
	GetListing(ctx context.Context, classId, nftId string) (Listing, bool)

	// GetRoyalty returns the royalty configuration for a collection.
	GetRoyalty(ctx context.Context, classId string) (Royalty, bool)
}
