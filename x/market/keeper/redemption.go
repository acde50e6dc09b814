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

// GetPendingRedemption returns the entry for (holder, unlockTime), if any.
func (k Keeper) GetPendingRedemption(ctx context.Context, holder string, unlockTime int64) (types.PendingRedemption, bool) {
	var entry types.PendingRedemption
	found, err := k.getValue(ctx, RedemptionKey(holder, unlockTime), &entry)
	if err != nil || !found {
		return types.PendingRedemption{}, false
	}
	return entry, true
}

// IterateRedemptions walks every pending redemption entry.
func (k Keeper) IterateRedemptions(ctx context.Context, cb func(holder string, unlockTime int64, entry types.PendingRedemption) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, RedemptionKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()[len(RedemptionKeyPrefix):]
		if len(key) < 9 {
			return fmt.Errorf("IterateRedemptions: malformed key")
		}
		holder := string(key[:len(key)-9])
		unlockTime := int64(binary.BigEndian.Uint64(key[len(key)-8:]))

		var entry types.PendingRedemption
		if _, err := k.getValue(ctx, iterator.Key(), &entry); err != nil {
			return fmt.Errorf("IterateRedemptions: %w", err)
		}
		if cb(holder, unlockTime, entry) {
			break
		}
	}
	return nil
}

// InitiateRedemption locks trade-denom value with the module and records a
// claim that unlocks after the configured lock period. Initiating twice in
// the same second accumulates into one entry; each entry is consumed exactly
// once on fulfillment.
func (k Keeper) InitiateRedemption(ctx context.Context, holder sdk.AccAddress, amount math.Int) (int64, error) {
	var unlockTime int64
	err := k.withModuleLock(ctx, func() error {
		if amount.IsNil() || !amount.IsPositive() {
			return types.ErrZeroValue.Wrap("redemption amount must be positive")
		}

		params, err := k.GetParams(ctx)
		if err != nil {
			return fmt.Errorf("InitiateRedemption: %w", err)
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		unlockTime = sdkCtx.BlockTime().Unix() + params.RedemptionLockSeconds

		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, holder, types.ModuleName,
			sdk.NewCoins(sdk.NewCoin(params.TradeDenom, amount))); err != nil {
			return types.ErrInsufficientFunds.Wrapf("redemption escrow: %s", err)
		}

		entry, found := k.GetPendingRedemption(ctx, holder.String(), unlockTime)
		if !found {
			entry = types.PendingRedemption{Amount: math.ZeroInt()}
		}
		entry.Amount = entry.Amount.Add(amount)

		if err := k.setValue(ctx, RedemptionKey(holder.String(), unlockTime), entry); err != nil {
			return fmt.Errorf("InitiateRedemption: %w", err)
		}

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeRedemptionInitiated,
				sdk.NewAttribute(types.AttributeKeyHolder, holder.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
				sdk.NewAttribute(types.AttributeKeyUnlockTime, fmt.Sprintf("%d", unlockTime)),
			),
		)
		return nil
	})
	return unlockTime, err
}

// FulfillRedemption claims an unlocked entry. Unclaimed entries persist
// indefinitely; nothing garbage-collects them.
func (k Keeper) FulfillRedemption(ctx context.Context, holder sdk.AccAddress, unlockTime int64) (math.Int, error) {
	amount := math.ZeroInt()
	err := k.withModuleLock(ctx, func() error {
		entry, found := k.GetPendingRedemption(ctx, holder.String(), unlockTime)
		if !found {
			return types.ErrNothingToRedeem.Wrapf("no entry for %s at %d", holder, unlockTime)
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		if sdkCtx.BlockTime().Unix() < unlockTime {
			return types.ErrRedemptionLocked.Wrapf(
				"entry unlocks at %d, current time %d", unlockTime, sdkCtx.BlockTime().Unix())
		}

		// The entry dies before the payout leaves escrow.
		k.getStore(ctx).Delete(RedemptionKey(holder.String(), unlockTime))

		params, err := k.GetParams(ctx)
		if err != nil {
			return fmt.Errorf("FulfillRedemption: %w", err)
		}
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, holder,
			sdk.NewCoins(sdk.NewCoin(params.TradeDenom, entry.Amount))); err != nil {
			return types.ErrInvalidState.Wrapf("redemption payout: %s", err)
		}
		amount = entry.Amount

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeRedemptionFulfilled,
				sdk.NewAttribute(types.AttributeKeyHolder, holder.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, entry.Amount.String()),
				sdk.NewAttribute(types.AttributeKeyUnlockTime, fmt.Sprintf("%d", unlockTime)),
			),
		)
		return nil
	})
	return amount, err
}
