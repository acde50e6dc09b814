package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/moon-chain/moon/x/market/types"
)

// Buy settles a single listed asset. The listing is deleted before any
// transfer so a reentrant relist cannot observe the stale entry; the buyer
// pays exactly the listing price out of their committed payment.
func (k Keeper) Buy(ctx context.Context, buyer sdk.AccAddress, classId, nftId string, payment math.Int) (saleProceeds, error) {
	var proceeds saleProceeds
	err := k.withModuleLock(ctx, func() error {
		var err error
		proceeds, err = k.buyAsset(ctx, buyer, classId, nftId, payment)
		if err != nil {
			return err
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeBuy,
				sdk.NewAttribute(types.AttributeKeyClassId, classId),
				sdk.NewAttribute(types.AttributeKeyNftId, nftId),
				sdk.NewAttribute(types.AttributeKeyBuyer, buyer.String()),
				sdk.NewAttribute(types.AttributeKeyPrice, proceeds.Price.String()),
				sdk.NewAttribute(types.AttributeKeyFee, proceeds.ProtocolFee.String()),
				sdk.NewAttribute(types.AttributeKeyRoyalty, proceeds.RoyaltyFee.String()),
			),
		)
		return nil
	})
	return proceeds, err
}

// BuyMany settles a batch of listed assets against one committed payment.
// The funds check is incremental: the running total is compared against the
// payment per item, in iteration order, rather than once against the final
// total. Under this host's atomic transactions a mid-batch failure rolls
// everything back, so the order is observable only in which item reports
// InsufficientFunds.
func (k Keeper) BuyMany(ctx context.Context, buyer sdk.AccAddress, classId string, nftIds []string, payment math.Int) (totalPrice, totalFee math.Int, err error) {
	totalPrice, totalFee = math.ZeroInt(), math.ZeroInt()

	if len(nftIds) == 0 {
		return totalPrice, totalFee, types.ErrEmptyBatch.Wrap("nothing to buy")
	}

	err = k.withModuleLock(ctx, func() error {
		spent := math.ZeroInt()
		for i, nftId := range nftIds {
			listing, found := k.GetListing(ctx, classId, nftId)
			if !found {
				return types.ErrInvalidListing.Wrapf("item %d: asset %s not listed", i, types.AssetKey(classId, nftId))
			}

			spent = spent.Add(listing.Price)
			if spent.GT(payment) {
				return types.ErrInsufficientFunds.Wrapf(
					"item %d: cumulative price %s exceeds payment %s", i, spent, payment)
			}

			proceeds, err := k.buyAsset(ctx, buyer, classId, nftId, listing.Price)
			if err != nil {
				return fmt.Errorf("BuyMany: item %d: %w", i, err)
			}
			totalPrice = totalPrice.Add(proceeds.Price)
			totalFee = totalFee.Add(proceeds.ProtocolFee)
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeBuyMany,
				sdk.NewAttribute(types.AttributeKeyClassId, classId),
				sdk.NewAttribute(types.AttributeKeyBuyer, buyer.String()),
				sdk.NewAttribute(types.AttributeKeyCount, fmt.Sprintf("%d", len(nftIds))),
				sdk.NewAttribute(types.AttributeKeyPrice, totalPrice.String()),
				sdk.NewAttribute(types.AttributeKeyFee, totalFee.String()),
			),
		)
		return nil
	})
	return totalPrice, totalFee, err
}

// buyAsset performs a single purchase under an already-held lock:
// checks-effects-interactions, the listing entry dies before the asset or
// any coin moves.
func (k Keeper) buyAsset(ctx context.Context, buyer sdk.AccAddress, classId, nftId string, payment math.Int) (saleProceeds, error) {
	listing, found := k.GetListing(ctx, classId, nftId)
	if !found {
		return saleProceeds{}, types.ErrInvalidListing.Wrapf("asset %s not listed", types.AssetKey(classId, nftId))
	}

	if payment.LT(listing.Price) {
		return saleProceeds{}, types.ErrInsufficientFunds.Wrapf(
			"payment %s below listing price %s", payment, listing.Price)
	}

	seller, err := sdk.AccAddressFromBech32(listing.Seller)
	if err != nil {
		return saleProceeds{}, types.ErrInvalidAddress.Wrapf("stored seller: %s", err)
	}

	k.deleteListing(ctx, classId, nftId)

	if err := k.nftKeeper.Transfer(ctx, classId, nftId, buyer); err != nil {
		return saleProceeds{}, types.ErrInvalidState.Wrapf("asset transfer: %s", err)
	}

	proceeds, err := k.settleSale(ctx, buyer, buyer, seller, classId, listing.Price)
	if err != nil {
		return saleProceeds{}, err
	}
	return proceeds, nil
}
