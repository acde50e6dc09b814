package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/moon-chain/moon/x/market/types"
)

// GetPage returns the primary-sale page for a collection, if any.
func (k Keeper) GetPage(ctx context.Context, classId string) (types.Page, bool) {
	var page types.Page
	found, err := k.getValue(ctx, PageKey(classId), &page)
	if err != nil || !found {
		return types.Page{}, false
	}
	return page, true
}

// setPage saves a page record
func (k Keeper) setPage(ctx context.Context, classId string, page types.Page) error {
	return k.setValue(ctx, PageKey(classId), page)
}

// IteratePages iterates over all primary-sale pages.
func (k Keeper) IteratePages(ctx context.Context, cb func(classId string, page types.Page) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PageKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var page types.Page
		if _, err := k.getValue(ctx, iterator.Key(), &page); err != nil {
			return fmt.Errorf("IteratePages: %w", err)
		}
		if cb(string(iterator.Key()[len(PageKeyPrefix):]), page) {
			break
		}
	}
	return nil
}

// CreatePage opens a primary-sale page for a collection at a fixed mint
// price.
func (k Keeper) CreatePage(ctx context.Context, creator sdk.AccAddress, classId string, mintPrice math.Int) error {
	return k.withModuleLock(ctx, func() error {
		if mintPrice.IsNil() || !mintPrice.IsPositive() {
			return types.ErrInvalidPrice.Wrapf("mint price must be positive, got %s", mintPrice)
		}
		if _, exists := k.GetPage(ctx, classId); exists {
			return types.ErrPageExists.Wrapf("page for class %s already exists", classId)
		}

		if err := k.setPage(ctx, classId, types.Page{
			Creator:   creator.String(),
			MintPrice: mintPrice,
			Proceeds:  math.ZeroInt(),
		}); err != nil {
			return fmt.Errorf("CreatePage: %w", err)
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeCreatePage,
				sdk.NewAttribute(types.AttributeKeyClassId, classId),
				sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
				sdk.NewAttribute(types.AttributeKeyPrice, mintPrice.String()),
			),
		)
		return nil
	})
}

// Mint sells a fresh NFT from a page at its fixed price. The payment enters
// module escrow and accrues to the page's withdrawable proceeds.
func (k Keeper) Mint(ctx context.Context, buyer sdk.AccAddress, classId, nftId string, payment math.Int) error {
	return k.withModuleLock(ctx, func() error {
		page, found := k.GetPage(ctx, classId)
		if !found {
			return types.ErrPageNotFound.Wrapf("no page for class %s", classId)
		}
		if payment.LT(page.MintPrice) {
			return types.ErrInsufficientFunds.Wrapf("payment %s below mint price %s", payment, page.MintPrice)
		}
		if k.nftKeeper.HasNFT(ctx, classId, nftId) {
			return types.ErrInvalidState.Wrapf("asset %s already minted", types.AssetKey(classId, nftId))
		}

		params, err := k.GetParams(ctx)
		if err != nil {
			return fmt.Errorf("Mint: %w", err)
		}

		// Proceeds are recorded before funds move; the transfer is last.
		page.Proceeds = page.Proceeds.Add(page.MintPrice)
		if err := k.setPage(ctx, classId, page); err != nil {
			return fmt.Errorf("Mint: %w", err)
		}

		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, buyer, types.ModuleName,
			sdk.NewCoins(sdk.NewCoin(params.TradeDenom, page.MintPrice))); err != nil {
			return types.ErrInsufficientFunds.Wrapf("mint payment: %s", err)
		}

		if err := k.nftKeeper.Mint(ctx, classId, nftId, buyer); err != nil {
			return types.ErrInvalidState.Wrapf("mint: %s", err)
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeMint,
				sdk.NewAttribute(types.AttributeKeyClassId, classId),
				sdk.NewAttribute(types.AttributeKeyNftId, nftId),
				sdk.NewAttribute(types.AttributeKeyBuyer, buyer.String()),
				sdk.NewAttribute(types.AttributeKeyPrice, page.MintPrice.String()),
			),
		)
		return nil
	})
}

// WithdrawProceeds drains a page's accrued proceeds to its creator. Only the
// creator may withdraw; the unrestricted withdrawal of the legacy system was
// a known defect and is not reproduced.
func (k Keeper) WithdrawProceeds(ctx context.Context, creator sdk.AccAddress, classId string) (math.Int, error) {
	amount := math.ZeroInt()
	err := k.withModuleLock(ctx, func() error {
		page, found := k.GetPage(ctx, classId)
		if !found {
			return types.ErrPageNotFound.Wrapf("no page for class %s", classId)
		}
		if page.Creator != creator.String() {
			return types.ErrUnauthorized.Wrapf("caller %s is not the page creator", creator)
		}
		if page.Proceeds.IsZero() {
			return types.ErrZeroValue.Wrap("no proceeds to withdraw")
		}

		amount = page.Proceeds
		page.Proceeds = math.ZeroInt()
		if err := k.setPage(ctx, classId, page); err != nil {
			return fmt.Errorf("WithdrawProceeds: %w", err)
		}

		params, err := k.GetParams(ctx)
		if err != nil {
			return fmt.Errorf("WithdrawProceeds: %w", err)
		}
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, creator,
			sdk.NewCoins(sdk.NewCoin(params.TradeDenom, amount))); err != nil {
			return types.ErrInvalidState.Wrapf("proceeds payout: %s", err)
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeWithdrawProceeds,
				sdk.NewAttribute(types.AttributeKeyClassId, classId),
				sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			),
		)
		return nil
	})
	return amount, err
}
