package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/moon-chain/moon/x/market/types"
)

// GetListing returns the active listing for an asset, if any.
func (k Keeper) GetListing(ctx context.Context, classId, nftId string) (types.Listing, bool) {
	var listing types.Listing
	found, err := k.getValue(ctx, ListingKey(classId, nftId), &listing)
	if err != nil || !found {
		return types.Listing{}, false
	}
	return listing, true
}

// setListing saves a listing to the store
func (k Keeper) setListing(ctx context.Context, classId, nftId string, listing types.Listing) error {
	return k.setValue(ctx, ListingKey(classId, nftId), listing)
}

// deleteListing removes a listing entry
func (k Keeper) deleteListing(ctx context.Context, classId, nftId string) {
	k.getStore(ctx).Delete(ListingKey(classId, nftId))
}

// IterateListings iterates over all active listings.
func (k Keeper) IterateListings(ctx context.Context, cb func(assetKey string, listing types.Listing) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ListingKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var listing types.Listing
		found, err := k.getValue(ctx, iterator.Key(), &listing)
		if err != nil {
			return fmt.Errorf("IterateListings: %w", err)
		}
		if !found {
			continue
		}
		if cb(string(iterator.Key()[len(ListingKeyPrefix):]), listing) {
			break
		}
	}
	return nil
}

// List escrows an NFT with the module and records a fixed-price listing.
// Custody moves first: the listing entry only exists once the asset is
// provably under module control, the one deliberate inversion of the
// state-before-transfer ordering used everywhere else.
func (k Keeper) List(ctx context.Context, seller sdk.AccAddress, classId, nftId string, price math.Int) error {
	return k.withModuleLock(ctx, func() error {
		return k.listAsset(ctx, seller, classId, nftId, price)
	})
}

// ListMany lists a batch of assets under a single lock acquisition. Any
// failure aborts the whole batch.
func (k Keeper) ListMany(ctx context.Context, seller sdk.AccAddress, classId string, nftIds []string, prices []math.Int) error {
	if len(nftIds) == 0 {
		return types.ErrEmptyBatch.Wrap("nothing to list")
	}
	if len(nftIds) != len(prices) {
		return types.ErrMismatchedLengths.Wrapf("%d nft ids vs %d prices", len(nftIds), len(prices))
	}

	return k.withModuleLock(ctx, func() error {
		for i, nftId := range nftIds {
			if err := k.listAsset(ctx, seller, classId, nftId, prices[i]); err != nil {
				return fmt.Errorf("ListMany: item %d: %w", i, err)
			}
		}
		return nil
	})
}

// listAsset performs a single listing under an already-held lock.
func (k Keeper) listAsset(ctx context.Context, seller sdk.AccAddress, classId, nftId string, price math.Int) error {
	if price.IsNil() || !price.IsPositive() {
		return types.ErrInvalidPrice.Wrapf("price must be positive, got %s", price)
	}

	if _, exists := k.GetListing(ctx, classId, nftId); exists {
		return types.ErrListingExists.Wrapf("asset %s already listed", types.AssetKey(classId, nftId))
	}

	owner := k.nftKeeper.GetOwner(ctx, classId, nftId)
	if !owner.Equals(seller) {
		return types.ErrUnauthorized.Wrapf("seller %s does not own asset %s", seller, types.AssetKey(classId, nftId))
	}

	// Custody first, then the ledger entry.
	if err := k.nftKeeper.Transfer(ctx, classId, nftId, k.moduleAddress); err != nil {
		return types.ErrInvalidState.Wrapf("escrow transfer failed: %s", err)
	}

	if err := k.setListing(ctx, classId, nftId, types.Listing{
		Seller: seller.String(),
		Price:  price,
	}); err != nil {
		return fmt.Errorf("listAsset: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeList,
			sdk.NewAttribute(types.AttributeKeyClassId, classId),
			sdk.NewAttribute(types.AttributeKeyNftId, nftId),
			sdk.NewAttribute(types.AttributeKeySeller, seller.String()),
			sdk.NewAttribute(types.AttributeKeyPrice, price.String()),
		),
	)
	return nil
}

// EditListing changes the price of an active listing, and optionally hands
// the listing to a new seller. Seller-only.
func (k Keeper) EditListing(ctx context.Context, seller sdk.AccAddress, classId, nftId string, newPrice math.Int, newSeller string) error {
	return k.withModuleLock(ctx, func() error {
		listing, found := k.GetListing(ctx, classId, nftId)
		if !found {
			return types.ErrInvalidListing.Wrapf("asset %s not listed", types.AssetKey(classId, nftId))
		}
		if listing.Seller != seller.String() {
			return types.ErrUnauthorized.Wrapf("caller %s is not the seller", seller)
		}
		if newPrice.IsNil() || !newPrice.IsPositive() {
			return types.ErrInvalidPrice.Wrapf("price must be positive, got %s", newPrice)
		}

		listing.Price = newPrice
		if newSeller != "" {
			if _, err := sdk.AccAddressFromBech32(newSeller); err != nil {
				return types.ErrInvalidAddress.Wrapf("new seller: %s", err)
			}
			listing.Seller = newSeller
		}

		if err := k.setListing(ctx, classId, nftId, listing); err != nil {
			return fmt.Errorf("EditListing: %w", err)
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeEditListing,
				sdk.NewAttribute(types.AttributeKeyClassId, classId),
				sdk.NewAttribute(types.AttributeKeyNftId, nftId),
				sdk.NewAttribute(types.AttributeKeySeller, listing.Seller),
				sdk.NewAttribute(types.AttributeKeyPrice, newPrice.String()),
			),
		)
		return nil
	})
}

// CancelListing removes a listing and returns the escrowed NFT to its
// seller. The ledger entry is deleted before custody moves back.
func (k Keeper) CancelListing(ctx context.Context, seller sdk.AccAddress, classId, nftId string) error {
	return k.withModuleLock(ctx, func() error {
		listing, found := k.GetListing(ctx, classId, nftId)
		if !found {
			return types.ErrInvalidListing.Wrapf("asset %s not listed", types.AssetKey(classId, nftId))
		}
		if listing.Seller != seller.String() {
			return types.ErrUnauthorized.Wrapf("caller %s is not the seller", seller)
		}

		k.deleteListing(ctx, classId, nftId)

		if err := k.nftKeeper.Transfer(ctx, classId, nftId, seller); err != nil {
			return types.ErrInvalidState.Wrapf("escrow return failed: %s", err)
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeCancelListing,
				sdk.NewAttribute(types.AttributeKeyClassId, classId),
				sdk.NewAttribute(types.AttributeKeyNftId, nftId),
				sdk.NewAttribute(types.AttributeKeySeller, seller.String()),
			),
		)
		return nil
	})
}
