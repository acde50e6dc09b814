package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/moon-chain/moon/x/amm/types"
	markettypes "github.com/moon-chain/moon/x/market/types"
)

// SwapTokensForAssets buys the named escrowed assets out of a pair. The
// trader pays the curve quote plus LP and protocol fees plus any collection
// royalty; maxInput bounds the total charge. When router is non-empty the
// swap is being routed on the trader's behalf and the router must be
// whitelisted.
func (k Keeper) SwapTokensForAssets(ctx context.Context, trader sdk.AccAddress, router string, pairId uint64, nftIds []string, maxInput math.Int) (types.BuyQuote, error) {
	var quote types.BuyQuote
	err := k.withModuleLock(ctx, func() error {
		pair, params, err := k.swapPair(ctx, router, pairId)
		if err != nil {
			return err
		}
		if pair.PoolType == types.PoolTypeToken {
			return types.ErrInvalidPoolType.Wrapf("pair %d does not sell assets", pairId)
		}
		if err := checkDistinct(nftIds); err != nil {
			return err
		}
		for _, nftId := range nftIds {
			if !pair.HasAsset(nftId) {
				return types.ErrAssetNotInPair.Wrapf("asset %s not escrowed by pair %d", nftId, pairId)
			}
		}

		quote, err = types.GetBuyInfo(pair.CurveType, pair.SpotPrice, pair.Delta,
			uint64(len(nftIds)), pair.Fee, params.ProtocolFeeMultiplier)
		if err != nil {
			return err
		}

		royaltyFee, royaltyRecipient, err := k.quoteRoyalty(ctx, pair.ClassId, quote.RawValue)
		if err != nil {
			return err
		}

		total := quote.InputValue.Add(royaltyFee)
		if total.GT(maxInput) {
			return types.ErrSlippageExceeded.Wrapf("cost %s exceeds max input %s", total, maxInput)
		}

		// The pool's share of the input; protocol fee and royalty never touch
		// the reserve.
		proceeds := quote.InputValue.Sub(quote.ProtocolFee)

		// Curve state and asset ledger move before any transfer.
		pair.SpotPrice = quote.NewSpotPrice
		pair.Delta = quote.NewDelta
		for _, nftId := range nftIds {
			pair.AssetIds = removeAssetId(pair.AssetIds, nftId)
		}
		poolKeepsProceeds := pair.AssetRecipient == "" || pair.PoolType == types.PoolTypeTrade
		if poolKeepsProceeds {
			pair.TokenReserve = pair.TokenReserve.Add(proceeds)
		}
		if err := k.setPair(ctx, pair); err != nil {
			return fmt.Errorf("SwapTokensForAssets: %w", err)
		}

		for _, nftId := range nftIds {
			if err := k.nftKeeper.Transfer(ctx, pair.ClassId, nftId, trader); err != nil {
				return types.ErrInvalidState.Wrapf("asset transfer: %s", err)
			}
		}

		if poolKeepsProceeds {
			if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, trader, types.ModuleName,
				sdk.NewCoins(sdk.NewCoin(pair.Denom, proceeds))); err != nil {
				return types.ErrInsufficientFunds.Wrapf("swap payment: %s", err)
			}
		} else {
			recipient, err := sdk.AccAddressFromBech32(pair.AssetRecipient)
			if err != nil {
				return types.ErrInvalidAddress.Wrapf("asset recipient: %s", err)
			}
			if err := k.bankKeeper.SendCoins(ctx, trader, recipient,
				sdk.NewCoins(sdk.NewCoin(pair.Denom, proceeds))); err != nil {
				return types.ErrInsufficientFunds.Wrapf("swap payment: %s", err)
			}
		}
		if err := k.payFromTrader(ctx, trader, pair.Denom, quote.ProtocolFee, params.ProtocolFeeRecipient); err != nil {
			return err
		}
		if err := k.payFromTrader(ctx, trader, pair.Denom, royaltyFee, royaltyRecipient); err != nil {
			return err
		}

		k.emitSwapEvent(ctx, types.EventTypeSwapBuy, pair, trader, router, len(nftIds),
			types.AttributeKeyInputValue, total, quote.ProtocolFee, royaltyFee)
		return nil
	})
	return quote, err
}

// SwapAssetsForTokens sells assets into a pair. The trader receives the
// curve quote net of LP fee, protocol fee and any collection royalty;
// minOutput bounds the net payout from below.
func (k Keeper) SwapAssetsForTokens(ctx context.Context, trader sdk.AccAddress, router string, pairId uint64, nftIds []string, minOutput math.Int) (types.SellQuote, error) {
	var quote types.SellQuote
	err := k.withModuleLock(ctx, func() error {
		pair, params, err := k.swapPair(ctx, router, pairId)
		if err != nil {
			return err
		}
		if pair.PoolType == types.PoolTypeNft {
			return types.ErrInvalidPoolType.Wrapf("pair %d does not buy assets", pairId)
		}
		if err := checkDistinct(nftIds); err != nil {
			return err
		}
		for _, nftId := range nftIds {
			owner := k.nftKeeper.GetOwner(ctx, pair.ClassId, nftId)
			if !owner.Equals(trader) {
				return types.ErrUnauthorized.Wrapf("trader %s does not own asset %s/%s", trader, pair.ClassId, nftId)
			}
		}

		quote, err = types.GetSellInfo(pair.CurveType, pair.SpotPrice, pair.Delta,
			uint64(len(nftIds)), pair.Fee, params.ProtocolFeeMultiplier)
		if err != nil {
			return err
		}

		royaltyFee, royaltyRecipient, err := k.quoteRoyalty(ctx, pair.ClassId, quote.RawValue)
		if err != nil {
			return err
		}

		payout := quote.OutputValue.Sub(royaltyFee)
		if payout.IsNegative() {
			payout = math.ZeroInt()
		}
		if payout.LT(minOutput) {
			return types.ErrSlippageExceeded.Wrapf("payout %s below min output %s", payout, minOutput)
		}

		// Everything the pair disburses for this trade comes out of its
		// reserve; the LP fee slice of the raw quote stays behind.
		disbursed := quote.OutputValue.Add(quote.ProtocolFee)
		if pair.TokenReserve.LT(disbursed) {
			return types.ErrInsufficientReserve.Wrapf(
				"reserve %s cannot cover payout %s", pair.TokenReserve, disbursed)
		}

		pair.SpotPrice = quote.NewSpotPrice
		pair.Delta = quote.NewDelta
		pair.TokenReserve = pair.TokenReserve.Sub(disbursed)
		poolKeepsAssets := pair.AssetRecipient == "" || pair.PoolType == types.PoolTypeTrade
		if poolKeepsAssets {
			pair.AssetIds = append(pair.AssetIds, nftIds...)
		}
		if err := k.setPair(ctx, pair); err != nil {
			return fmt.Errorf("SwapAssetsForTokens: %w", err)
		}

		assetDestination := k.moduleAddress
		if !poolKeepsAssets {
			assetDestination, err = sdk.AccAddressFromBech32(pair.AssetRecipient)
			if err != nil {
				return types.ErrInvalidAddress.Wrapf("asset recipient: %s", err)
			}
		}
		for _, nftId := range nftIds {
			if err := k.nftKeeper.Transfer(ctx, pair.ClassId, nftId, assetDestination); err != nil {
				return types.ErrInvalidState.Wrapf("asset transfer: %s", err)
			}
		}

		if payout.IsPositive() {
			if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, trader,
				sdk.NewCoins(sdk.NewCoin(pair.Denom, payout))); err != nil {
				return types.ErrInvalidState.Wrapf("swap payout: %s", err)
			}
		}
		if err := k.payFromModule(ctx, pair.Denom, quote.ProtocolFee, params.ProtocolFeeRecipient); err != nil {
			return err
		}
		if err := k.payFromModule(ctx, pair.Denom, royaltyFee, royaltyRecipient); err != nil {
			return err
		}

		k.emitSwapEvent(ctx, types.EventTypeSwapSell, pair, trader, router, len(nftIds),
			types.AttributeKeyOutputValue, payout, quote.ProtocolFee, royaltyFee)
		return nil
	})
	return quote, err
}

// checkDistinct rejects duplicate asset ids. A repeated id would be quoted
// as an extra item while only one asset changes custody, leaving the reserve
// or the trader overcharged for a phantom item.
func checkDistinct(nftIds []string) error {
	seen := make(map[string]struct{}, len(nftIds))
	for _, nftId := range nftIds {
		if _, dup := seen[nftId]; dup {
			return types.ErrInvalidState.Wrapf("duplicate asset id %s", nftId)
		}
		seen[nftId] = struct{}{}
	}
	return nil
}

// swapPair loads a pair for a swap and enforces the router whitelist.
func (k Keeper) swapPair(ctx context.Context, router string, pairId uint64) (types.Pair, types.Params, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.Pair{}, types.Params{}, fmt.Errorf("swapPair: %w", err)
	}
	if router != "" && !params.RouterWhitelisted(router) {
		return types.Pair{}, types.Params{}, types.ErrRouterNotWhitelisted.Wrapf("router %s is not whitelisted", router)
	}
	pair, found := k.GetPair(ctx, pairId)
	if !found {
		return types.Pair{}, types.Params{}, types.ErrPairNotFound.Wrapf("no pair with id %d", pairId)
	}
	return pair, params, nil
}

// quoteRoyalty computes the collection royalty on the pre-fee trade value
// via the marketplace royalty registry, when one is wired.
func (k Keeper) quoteRoyalty(ctx context.Context, classId string, rawValue math.Int) (math.Int, string, error) {
	if k.royaltyKeeper == nil {
		return math.ZeroInt(), "", nil
	}
	royalty, found := k.royaltyKeeper.GetRoyalty(ctx, classId)
	if !found || royalty.FeeBps == 0 {
		return math.ZeroInt(), "", nil
	}
	fee, _ := markettypes.ComputeFee(rawValue, royalty.FeeBps)
	return fee, royalty.Recipient, nil
}

// payFromTrader forwards a fee slice from the trader to a recipient.
func (k Keeper) payFromTrader(ctx context.Context, trader sdk.AccAddress, denom string, amount math.Int, recipient string) error {
	if !amount.IsPositive() {
		return nil
	}
	addr, err := sdk.AccAddressFromBech32(recipient)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("fee recipient: %s", err)
	}
	if err := k.bankKeeper.SendCoins(ctx, trader, addr, sdk.NewCoins(sdk.NewCoin(denom, amount))); err != nil {
		return types.ErrInsufficientFunds.Wrapf("fee transfer: %s", err)
	}
	return nil
}

// payFromModule forwards a fee slice out of module escrow to a recipient.
func (k Keeper) payFromModule(ctx context.Context, denom string, amount math.Int, recipient string) error {
	if !amount.IsPositive() {
		return nil
	}
	addr, err := sdk.AccAddressFromBech32(recipient)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("fee recipient: %s", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, addr,
		sdk.NewCoins(sdk.NewCoin(denom, amount))); err != nil {
		return types.ErrInvalidState.Wrapf("fee transfer: %s", err)
	}
	return nil
}

func (k Keeper) emitSwapEvent(ctx context.Context, eventType string, pair types.Pair, trader sdk.AccAddress, router string, count int, valueKey string, value, protocolFee, royaltyFee math.Int) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	attrs := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyPairId, fmt.Sprintf("%d", pair.Id)),
		sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
		sdk.NewAttribute(types.AttributeKeyCount, fmt.Sprintf("%d", count)),
		sdk.NewAttribute(valueKey, value.String()),
		sdk.NewAttribute(types.AttributeKeyProtocolFee, protocolFee.String()),
		sdk.NewAttribute(types.AttributeKeyRoyalty, royaltyFee.String()),
		sdk.NewAttribute(types.AttributeKeySpotPrice, pair.SpotPrice.String()),
		sdk.NewAttribute(types.AttributeKeyDelta, pair.Delta.String()),
	}
	if router != "" {
		attrs = append(attrs, sdk.NewAttribute(types.AttributeKeyRouter, router))
	}
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(eventType, attrs...))
}
