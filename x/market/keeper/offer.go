package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/moon-chain/moon/x/market/types"
)

// GetOffer returns the offer slot at (amount, index), reporting presence.
// A present slot may still be vacated; check Offer.IsLive.
func (k Keeper) GetOffer(ctx context.Context, amount math.Int, index uint64) (types.Offer, bool) {
	var offer types.Offer
	found, err := k.getValue(ctx, OfferKey(amount, index), &offer)
	if err != nil || !found {
		return types.Offer{}, false
	}
	return offer, true
}

// setOffer writes an offer slot in place. Vacating a slot writes an empty
// bidder rather than deleting the entry, keeping indices stable.
func (k Keeper) setOffer(ctx context.Context, amount math.Int, index uint64, offer types.Offer) error {
	return k.setValue(ctx, OfferKey(amount, index), offer)
}

// GetOfferCount returns the number of slots ever appended at an amount.
func (k Keeper) GetOfferCount(ctx context.Context, amount math.Int) uint64 {
	bz := k.getStore(ctx).Get(OfferCountKey(amount))
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// setOfferCount sets the slot counter for an amount
func (k Keeper) setOfferCount(ctx context.Context, amount math.Int, count uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	k.getStore(ctx).Set(OfferCountKey(amount), bz)
}

// IterateOffers walks every offer slot, live or vacated.
func (k Keeper) IterateOffers(ctx context.Context, cb func(amount math.Int, index uint64, offer types.Offer) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, OfferKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		amount, index, err := parseOfferKey(iterator.Key())
		if err != nil {
			return fmt.Errorf("IterateOffers: %w", err)
		}
		var offer types.Offer
		if _, err := k.getValue(ctx, iterator.Key(), &offer); err != nil {
			return fmt.Errorf("IterateOffers: %w", err)
		}
		if cb(amount, index, offer) {
			break
		}
	}
	return nil
}

// MakeOffer escrows the offered amount and appends the bidder to the slot
// sequence for that amount, returning the stable slot index.
func (k Keeper) MakeOffer(ctx context.Context, bidder sdk.AccAddress, amount math.Int) (uint64, error) {
	var index uint64
	err := k.withModuleLock(ctx, func() error {
		if amount.IsNil() || amount.IsZero() {
			return types.ErrZeroValue.Wrap("offer amount cannot be zero")
		}
		if amount.IsNegative() {
			return types.ErrInvalidAmount.Wrapf("offer amount %s is negative", amount)
		}
		if amount.BigInt().BitLen() > offerAmountWidth*8 {
			return types.ErrInvalidAmount.Wrapf("offer amount %s exceeds 256 bits", amount)
		}

		params, err := k.GetParams(ctx)
		if err != nil {
			return fmt.Errorf("MakeOffer: %w", err)
		}

		// Funds enter escrow before the slot becomes visible.
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, bidder, types.ModuleName,
			sdk.NewCoins(sdk.NewCoin(params.TradeDenom, amount))); err != nil {
			return types.ErrInsufficientFunds.Wrapf("offer escrow: %s", err)
		}

		index = k.GetOfferCount(ctx, amount)
		if err := k.setOffer(ctx, amount, index, types.Offer{Bidder: bidder.String()}); err != nil {
			return fmt.Errorf("MakeOffer: %w", err)
		}
		k.setOfferCount(ctx, amount, index+1)

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeMakeOffer,
				sdk.NewAttribute(types.AttributeKeyBidder, bidder.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
				sdk.NewAttribute(types.AttributeKeyIndex, fmt.Sprintf("%d", index)),
			),
		)
		return nil
	})
	return index, err
}

// CancelOffer vacates an offer slot in place and refunds the escrowed
// amount. Vacating index i never disturbs any other index at the same
// amount.
func (k Keeper) CancelOffer(ctx context.Context, bidder sdk.AccAddress, amount math.Int, index uint64) error {
	return k.withModuleLock(ctx, func() error {
		offer, found := k.GetOffer(ctx, amount, index)
		if !found {
			return types.ErrInvalidOffer.Wrapf("no offer slot %d at amount %s", index, amount)
		}
		if !offer.IsLive() || offer.Bidder != bidder.String() {
			return types.ErrUnauthorized.Wrapf("caller %s does not hold offer slot %d", bidder, index)
		}

		// Vacate the slot before the refund leaves escrow.
		if err := k.setOffer(ctx, amount, index, types.Offer{}); err != nil {
			return fmt.Errorf("CancelOffer: %w", err)
		}

		params, err := k.GetParams(ctx)
		if err != nil {
			return fmt.Errorf("CancelOffer: %w", err)
		}
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, bidder,
			sdk.NewCoins(sdk.NewCoin(params.TradeDenom, amount))); err != nil {
			return types.ErrInvalidState.Wrapf("offer refund: %s", err)
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeCancelOffer,
				sdk.NewAttribute(types.AttributeKeyBidder, bidder.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
				sdk.NewAttribute(types.AttributeKeyIndex, fmt.Sprintf("%d", index)),
			),
		)
		return nil
	})
}

// TakeOffer lets an NFT holder accept a live offer: the asset moves straight
// from the caller to the bidder and the escrowed amount, net of fees, is
// paid to the caller.
func (k Keeper) TakeOffer(ctx context.Context, seller sdk.AccAddress, classId, nftId string, amount math.Int, index uint64) (math.Int, error) {
	net := math.ZeroInt()
	err := k.withModuleLock(ctx, func() error {
		offer, found := k.GetOffer(ctx, amount, index)
		if !found || !offer.IsLive() {
			return types.ErrInvalidOffer.Wrapf("no live offer at amount %s index %d", amount, index)
		}

		owner := k.nftKeeper.GetOwner(ctx, classId, nftId)
		if !owner.Equals(seller) {
			return types.ErrUnauthorized.Wrapf("caller %s does not own asset %s", seller, types.AssetKey(classId, nftId))
		}

		bidder, err := sdk.AccAddressFromBech32(offer.Bidder)
		if err != nil {
			return types.ErrInvalidAddress.Wrapf("stored bidder: %s", err)
		}

		// Vacate the slot before anything moves.
		if err := k.setOffer(ctx, amount, index, types.Offer{}); err != nil {
			return fmt.Errorf("TakeOffer: %w", err)
		}

		if err := k.nftKeeper.Transfer(ctx, classId, nftId, bidder); err != nil {
			return types.ErrInvalidState.Wrapf("asset transfer: %s", err)
		}

		proceeds, err := k.settleSale(ctx, k.moduleAddress, bidder, seller, classId, amount)
		if err != nil {
			return err
		}
		net = proceeds.Net

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeTakeOffer,
				sdk.NewAttribute(types.AttributeKeyClassId, classId),
				sdk.NewAttribute(types.AttributeKeyNftId, nftId),
				sdk.NewAttribute(types.AttributeKeySeller, seller.String()),
				sdk.NewAttribute(types.AttributeKeyBidder, offer.Bidder),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
				sdk.NewAttribute(types.AttributeKeyFee, proceeds.ProtocolFee.String()),
				sdk.NewAttribute(types.AttributeKeyNetProceeds, proceeds.Net.String()),
			),
		)
		return nil
	})
	return net, err
}

// MatchOffer joins a live listing with a live offer at or above the listing
// price. The seller is paid the listing price net of fees; the spread
// between offer and price goes to the matcher untouched by the protocol
// fee — that spread is the matching incentive.
func (k Keeper) MatchOffer(ctx context.Context, matcher sdk.AccAddress, classId, nftId string, amount math.Int, index uint64) (math.Int, error) {
	spread := math.ZeroInt()
	err := k.withModuleLock(ctx, func() error {
		listing, found := k.GetListing(ctx, classId, nftId)
		if !found {
			return types.ErrInvalidListing.Wrapf("asset %s not listed", types.AssetKey(classId, nftId))
		}

		offer, found := k.GetOffer(ctx, amount, index)
		if !found || !offer.IsLive() {
			return types.ErrInvalidOffer.Wrapf("no live offer at amount %s index %d", amount, index)
		}

		if amount.LT(listing.Price) {
			return types.ErrOfferTooLow.Wrapf("offer %s below listing price %s", amount, listing.Price)
		}

		seller, err := sdk.AccAddressFromBech32(listing.Seller)
		if err != nil {
			return types.ErrInvalidAddress.Wrapf("stored seller: %s", err)
		}
		bidder, err := sdk.AccAddressFromBech32(offer.Bidder)
		if err != nil {
			return types.ErrInvalidAddress.Wrapf("stored bidder: %s", err)
		}

		// Both ledger entries go before any transfer.
		k.deleteListing(ctx, classId, nftId)
		if err := k.setOffer(ctx, amount, index, types.Offer{}); err != nil {
			return fmt.Errorf("MatchOffer: %w", err)
		}

		if err := k.nftKeeper.Transfer(ctx, classId, nftId, bidder); err != nil {
			return types.ErrInvalidState.Wrapf("asset transfer: %s", err)
		}

		proceeds, err := k.settleSale(ctx, k.moduleAddress, bidder, seller, classId, listing.Price)
		if err != nil {
			return err
		}

		spread = amount.Sub(listing.Price)
		if spread.IsPositive() {
			params, err := k.GetParams(ctx)
			if err != nil {
				return fmt.Errorf("MatchOffer: %w", err)
			}
			if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, matcher,
				sdk.NewCoins(sdk.NewCoin(params.TradeDenom, spread))); err != nil {
				return types.ErrInvalidState.Wrapf("spread payout: %s", err)
			}
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeMatchOffer,
				sdk.NewAttribute(types.AttributeKeyClassId, classId),
				sdk.NewAttribute(types.AttributeKeyNftId, nftId),
				sdk.NewAttribute(types.AttributeKeySeller, listing.Seller),
				sdk.NewAttribute(types.AttributeKeyBidder, offer.Bidder),
				sdk.NewAttribute(types.AttributeKeyMatcher, matcher.String()),
				sdk.NewAttribute(types.AttributeKeyPrice, listing.Price.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
				sdk.NewAttribute(types.AttributeKeySpread, spread.String()),
				sdk.NewAttribute(types.AttributeKeyFee, proceeds.ProtocolFee.String()),
			),
		)
		return nil
	})
	return spread, err
}
