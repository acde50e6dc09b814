package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	markettypes "github.com/moon-chain/moon/x/market/types"
)

// BankKeeper defines the expected bank keeper used to escrow pair reserves
// and settle swaps.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// NFTKeeper defines the expected NFT custody keeper for pair asset escrow.
type NFTKeeper interface {
	GetOwner(ctx context.Context, classId, nftId string) sdk.AccAddress
	Transfer(ctx context.Context, classId, nftId string, receiver sdk.AccAddress) error
}

// RoyaltyKeeper exposes the market module's collection royalty registry so
// swaps can layer royalties on the pre-fee trade price. May be nil when no
// marketplace is wired.
type RoyaltyKeeper interface {
	GetRoyalty(ctx context.Context, classId string) (markettypes.Royalty, bool)
}
