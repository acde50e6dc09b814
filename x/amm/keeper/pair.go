package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/moon-chain/moon/x/amm/types"
)

// GetPair returns the pair slot with the given id, if any.
func (k Keeper) GetPair(ctx context.Context, pairId uint64) (types.Pair, bool) {
	var pair types.Pair
	found, err := k.getValue(ctx, PairKey(pairId), &pair)
	if err != nil || !found {
		return types.Pair{}, false
	}
	return pair, true
}

// setPair saves a pair record
func (k Keeper) setPair(ctx context.Context, pair types.Pair) error {
	return k.setValue(ctx, PairKey(pair.Id), pair)
}

// IteratePairs iterates over all pair slots in id order.
func (k Keeper) IteratePairs(ctx context.Context, cb func(pair types.Pair) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PairKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pair types.Pair
		if _, err := k.getValue(ctx, iterator.Key(), &pair); err != nil {
			return fmt.Errorf("IteratePairs: %w", err)
		}
		if cb(pair) {
			break
		}
	}
	return nil
}

// nextPairId allocates the next arena slot id. Ids start at 1; 0 is never a
// valid pair.
func (k Keeper) nextPairId(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	next := uint64(1)
	if bz := store.Get(NextPairKey); bz != nil {
		next = binary.BigEndian.Uint64(bz)
	}
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, next+1)
	store.Set(NextPairKey, bz)
	return next
}

// setNextPairId seeds the slot counter, used by genesis import.
func (k Keeper) setNextPairId(ctx context.Context, next uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, next)
	k.getStore(ctx).Set(NextPairKey, bz)
}

// CreatePair allocates a new pair slot, validates its curve state against
// the whitelist and escrows the initial deposits. Returns the slot id.
func (k Keeper) CreatePair(ctx context.Context, owner sdk.AccAddress, pair types.Pair, tokenDeposit math.Int) (uint64, error) {
	var pairId uint64
	err := k.withModuleLock(ctx, func() error {
		pair.Owner = owner.String()
		pair.TokenReserve = tokenDeposit
		if err := pair.Validate(); err != nil {
			return err
		}

		params, err := k.GetParams(ctx)
		if err != nil {
			return fmt.Errorf("CreatePair: %w", err)
		}
		if !params.CurveWhitelisted(pair.CurveType) {
			return types.ErrCurveNotWhitelisted.Wrapf("curve %q is not whitelisted", pair.CurveType)
		}

		if tokenDeposit.IsPositive() {
			if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, owner, types.ModuleName,
				sdk.NewCoins(sdk.NewCoin(pair.Denom, tokenDeposit))); err != nil {
				return types.ErrInsufficientFunds.Wrapf("token deposit: %s", err)
			}
		}
		for _, nftId := range pair.AssetIds {
			if err := k.escrowAsset(ctx, owner, pair.ClassId, nftId); err != nil {
				return err
			}
		}

		pair.Id = k.nextPairId(ctx)
		if err := k.setPair(ctx, pair); err != nil {
			return fmt.Errorf("CreatePair: %w", err)
		}
		pairId = pair.Id

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeNewPair,
				sdk.NewAttribute(types.AttributeKeyPairId, fmt.Sprintf("%d", pair.Id)),
				sdk.NewAttribute(types.AttributeKeyOwner, pair.Owner),
				sdk.NewAttribute(types.AttributeKeyPoolType, string(pair.PoolType)),
				sdk.NewAttribute(types.AttributeKeyCurveType, string(pair.CurveType)),
				sdk.NewAttribute(types.AttributeKeyClassId, pair.ClassId),
				sdk.NewAttribute(types.AttributeKeyDenom, pair.Denom),
				sdk.NewAttribute(types.AttributeKeySpotPrice, pair.SpotPrice.String()),
				sdk.NewAttribute(types.AttributeKeyDelta, pair.Delta.String()),
			),
		)
		return nil
	})
	return pairId, err
}

// DepositTokens adds value to a pair's token reserve. Owner-only.
func (k Keeper) DepositTokens(ctx context.Context, owner sdk.AccAddress, pairId uint64, amount math.Int) error {
	return k.withModuleLock(ctx, func() error {
		pair, err := k.getOwnedPair(ctx, owner, pairId)
		if err != nil {
			return err
		}
		if amount.IsNil() || !amount.IsPositive() {
			return types.ErrInvalidAmount.Wrap("deposit amount must be positive")
		}

		// Reserve grows before funds move.
		pair.TokenReserve = pair.TokenReserve.Add(amount)
		if err := k.setPair(ctx, pair); err != nil {
			return fmt.Errorf("DepositTokens: %w", err)
		}

		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, owner, types.ModuleName,
			sdk.NewCoins(sdk.NewCoin(pair.Denom, amount))); err != nil {
			return types.ErrInsufficientFunds.Wrapf("token deposit: %s", err)
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeTokenDeposit,
				sdk.NewAttribute(types.AttributeKeyPairId, fmt.Sprintf("%d", pairId)),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			),
		)
		return nil
	})
}

// DepositAssets escrows additional assets with a pair. Owner-only.
func (k Keeper) DepositAssets(ctx context.Context, owner sdk.AccAddress, pairId uint64, nftIds []string) error {
	return k.withModuleLock(ctx, func() error {
		pair, err := k.getOwnedPair(ctx, owner, pairId)
		if err != nil {
			return err
		}

		for _, nftId := range nftIds {
			if pair.HasAsset(nftId) {
				return types.ErrInvalidState.Wrapf("asset %s already escrowed by pair %d", nftId, pairId)
			}
			if err := k.escrowAsset(ctx, owner, pair.ClassId, nftId); err != nil {
				return err
			}
			pair.AssetIds = append(pair.AssetIds, nftId)
		}
		if err := k.setPair(ctx, pair); err != nil {
			return fmt.Errorf("DepositAssets: %w", err)
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeAssetDeposit,
				sdk.NewAttribute(types.AttributeKeyPairId, fmt.Sprintf("%d", pairId)),
				sdk.NewAttribute(types.AttributeKeyCount, fmt.Sprintf("%d", len(nftIds))),
			),
		)
		return nil
	})
}

// WithdrawTokens drains value from a pair's token reserve. Owner-only.
func (k Keeper) WithdrawTokens(ctx context.Context, owner sdk.AccAddress, pairId uint64, amount math.Int) error {
	return k.withModuleLock(ctx, func() error {
		pair, err := k.getOwnedPair(ctx, owner, pairId)
		if err != nil {
			return err
		}
		if amount.IsNil() || !amount.IsPositive() {
			return types.ErrInvalidAmount.Wrap("withdrawal amount must be positive")
		}
		if pair.TokenReserve.LT(amount) {
			return types.ErrInsufficientReserve.Wrapf(
				"reserve %s below withdrawal %s", pair.TokenReserve, amount)
		}

		// Reserve shrinks before the payout leaves escrow.
		pair.TokenReserve = pair.TokenReserve.Sub(amount)
		if err := k.setPair(ctx, pair); err != nil {
			return fmt.Errorf("WithdrawTokens: %w", err)
		}

		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, owner,
			sdk.NewCoins(sdk.NewCoin(pair.Denom, amount))); err != nil {
			return types.ErrInvalidState.Wrapf("token withdrawal: %s", err)
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeTokenWithdraw,
				sdk.NewAttribute(types.AttributeKeyPairId, fmt.Sprintf("%d", pairId)),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			),
		)
		return nil
	})
}

// WithdrawAssets returns escrowed assets to the pair owner. Owner-only.
func (k Keeper) WithdrawAssets(ctx context.Context, owner sdk.AccAddress, pairId uint64, nftIds []string) error {
	return k.withModuleLock(ctx, func() error {
		pair, err := k.getOwnedPair(ctx, owner, pairId)
		if err != nil {
			return err
		}

		for _, nftId := range nftIds {
			if !pair.HasAsset(nftId) {
				return types.ErrAssetNotInPair.Wrapf("asset %s not escrowed by pair %d", nftId, pairId)
			}
			pair.AssetIds = removeAssetId(pair.AssetIds, nftId)
		}
		if err := k.setPair(ctx, pair); err != nil {
			return fmt.Errorf("WithdrawAssets: %w", err)
		}

		for _, nftId := range nftIds {
			if err := k.nftKeeper.Transfer(ctx, pair.ClassId, nftId, owner); err != nil {
				return types.ErrInvalidState.Wrapf("asset withdrawal: %s", err)
			}
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeAssetWithdraw,
				sdk.NewAttribute(types.AttributeKeyPairId, fmt.Sprintf("%d", pairId)),
				sdk.NewAttribute(types.AttributeKeyCount, fmt.Sprintf("%d", len(nftIds))),
			),
		)
		return nil
	})
}

// getOwnedPair loads a pair and checks the caller owns it.
func (k Keeper) getOwnedPair(ctx context.Context, owner sdk.AccAddress, pairId uint64) (types.Pair, error) {
	pair, found := k.GetPair(ctx, pairId)
	if !found {
		return types.Pair{}, types.ErrPairNotFound.Wrapf("no pair with id %d", pairId)
	}
	if pair.Owner != owner.String() {
		return types.Pair{}, types.ErrUnauthorized.Wrapf("caller %s does not own pair %d", owner, pairId)
	}
	return pair, nil
}

// escrowAsset verifies the depositor owns the asset and moves it under
// module custody.
func (k Keeper) escrowAsset(ctx context.Context, depositor sdk.AccAddress, classId, nftId string) error {
	owner := k.nftKeeper.GetOwner(ctx, classId, nftId)
	if !owner.Equals(depositor) {
		return types.ErrUnauthorized.Wrapf("depositor %s does not own asset %s/%s", depositor, classId, nftId)
	}
	if err := k.nftKeeper.Transfer(ctx, classId, nftId, k.moduleAddress); err != nil {
		return types.ErrInvalidState.Wrapf("escrow transfer failed: %s", err)
	}
	return nil
}

// removeAssetId removes one occurrence of nftId, preserving order.
func removeAssetId(ids []string, nftId string) []string {
	for i, id := range ids {
		if id == nftId {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return ids
}
