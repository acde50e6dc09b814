package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/moon-chain/moon/x/market/types"
)

// saleProceeds is the fee breakdown of a settled sale. Both fee tiers are
// computed independently against the original price, never compounded
// against each other's output.
type saleProceeds struct {
	Price       math.Int
	ProtocolFee math.Int
	RoyaltyFee  math.Int
	Net         math.Int
}

// quoteSale computes the fee split for a sale at the given price. Because
// rate sums are validated at configuration time, Net is always non-negative.
func (k Keeper) quoteSale(ctx context.Context, classId string, price math.Int) (saleProceeds, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return saleProceeds{}, fmt.Errorf("quoteSale: %w", err)
	}

	protocolFee, _ := types.ComputeFee(price, params.ProtocolFeeBps)

	royaltyFee := math.ZeroInt()
	if royalty, found := k.GetRoyalty(ctx, classId); found {
		royaltyFee, _ = types.ComputeFee(price, royalty.FeeBps)
	}

	net := price.Sub(protocolFee).Sub(royaltyFee)
	if net.IsNegative() {
		return saleProceeds{}, types.ErrInvariantViolation.Wrapf(
			"fee tiers %s + %s exceed price %s", protocolFee, royaltyFee, price)
	}

	return saleProceeds{
		Price:       price,
		ProtocolFee: protocolFee,
		RoyaltyFee:  royaltyFee,
		Net:         net,
	}, nil
}

// settleSale moves a sale price from payer to the seller and fee recipients
// according to the quoted split, then triggers the optional rewards deposit.
// Transfers are the final, irreversible step of every trade path; callers
// must have fully updated ledger state before invoking this.
func (k Keeper) settleSale(ctx context.Context, payer, buyer, seller sdk.AccAddress, classId string, price math.Int) (saleProceeds, error) {
	proceeds, err := k.quoteSale(ctx, classId, price)
	if err != nil {
		return saleProceeds{}, err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return saleProceeds{}, fmt.Errorf("settleSale: %w", err)
	}
	denom := params.TradeDenom

	if proceeds.ProtocolFee.IsPositive() {
		recipient, err := sdk.AccAddressFromBech32(params.ProtocolFeeRecipient)
		if err != nil {
			return saleProceeds{}, types.ErrInvalidAddress.Wrapf("protocol fee recipient: %s", err)
		}
		if err := k.bankKeeper.SendCoins(ctx, payer, recipient,
			sdk.NewCoins(sdk.NewCoin(denom, proceeds.ProtocolFee))); err != nil {
			return saleProceeds{}, types.ErrInsufficientFunds.Wrapf("protocol fee transfer: %s", err)
		}
	}

	if proceeds.RoyaltyFee.IsPositive() {
		royalty, _ := k.GetRoyalty(ctx, classId)
		recipient, err := sdk.AccAddressFromBech32(royalty.Recipient)
		if err != nil {
			return saleProceeds{}, types.ErrInvalidAddress.Wrapf("royalty recipient: %s", err)
		}
		if err := k.bankKeeper.SendCoins(ctx, payer, recipient,
			sdk.NewCoins(sdk.NewCoin(denom, proceeds.RoyaltyFee))); err != nil {
			return saleProceeds{}, types.ErrInsufficientFunds.Wrapf("royalty transfer: %s", err)
		}
	}

	if proceeds.Net.IsPositive() {
		if err := k.bankKeeper.SendCoins(ctx, payer, seller,
			sdk.NewCoins(sdk.NewCoin(denom, proceeds.Net))); err != nil {
			return saleProceeds{}, types.ErrInsufficientFunds.Wrapf("seller payout: %s", err)
		}
	}

	// Rewards are credited to both parties proportional to the fee paid; a
	// failing deposit aborts the whole trade.
	if params.RewardsEnabled && k.rewardsKeeper != nil && proceeds.ProtocolFee.IsPositive() {
		if _, err := k.rewardsKeeper.DepositFees(ctx, buyer, seller,
			sdk.NewCoin(denom, proceeds.ProtocolFee)); err != nil {
			return saleProceeds{}, fmt.Errorf("settleSale: deposit fees: %w", err)
		}
	}

	return proceeds, nil
}

// GetRoyalty returns the royalty configuration for a collection.
func (k Keeper) GetRoyalty(ctx context.Context, classId string) (types.Royalty, bool) {
	var royalty types.Royalty
	found, err := k.getValue(ctx, RoyaltyKey(classId), &royalty)
	if err != nil || !found {
		return types.Royalty{}, false
	}
	return royalty, true
}

// iterateRoyalties walks every collection royalty record.
func (k Keeper) iterateRoyalties(ctx context.Context, cb func(classId string, royalty types.Royalty) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, RoyaltyKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var royalty types.Royalty
		if _, err := k.getValue(ctx, iterator.Key(), &royalty); err != nil {
			return fmt.Errorf("iterateRoyalties: %w", err)
		}
		if cb(string(iterator.Key()[len(RoyaltyKeyPrefix):]), royalty) {
			break
		}
	}
	return nil
}

// SetRoyalty validates and stores a collection royalty after an explicit
// authority check. Rejection happens here, at configuration time.
func (k Keeper) SetRoyalty(ctx context.Context, authority, classId string, royalty types.Royalty) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("invalid authority; expected %s, got %s", k.authority, authority)
	}
	if err := royalty.Validate(); err != nil {
		return fmt.Errorf("SetRoyalty: %w", err)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return fmt.Errorf("SetRoyalty: %w", err)
	}
	if params.ProtocolFeeBps+royalty.FeeBps > types.BpsDenominator {
		return types.ErrFeeTooHigh.Wrap("combined protocol and royalty fees exceed base price")
	}

	if err := k.setValue(ctx, RoyaltyKey(classId), royalty); err != nil {
		return fmt.Errorf("SetRoyalty: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSetRoyalty,
			sdk.NewAttribute(types.AttributeKeyClassId, classId),
			sdk.NewAttribute(types.AttributeKeyRecipient, royalty.Recipient),
			sdk.NewAttribute(types.AttributeKeyFeeBps, fmt.Sprintf("%d", royalty.FeeBps)),
		),
	)
	return nil
}
