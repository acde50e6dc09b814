package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/moon-chain/moon/x/amm/types"
)

// Keeper of the amm store
type Keeper struct {
	storeKey      storetypes.StoreKey
	bankKeeper    types.BankKeeper
	nftKeeper     types.NFTKeeper
	royaltyKeeper types.RoyaltyKeeper
	authority     string
	moduleAddress sdk.AccAddress
}

// NewKeeper creates a new amm Keeper instance. royaltyKeeper may be nil when
// no marketplace royalty registry is wired; swaps then carry no royalty.
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	nftKeeper types.NFTKeeper,
	royaltyKeeper types.RoyaltyKeeper,
	authority string,
) Keeper {
	return Keeper{
		storeKey:      key,
		bankKeeper:    bankKeeper,
		nftKeeper:     nftKeeper,
		royaltyKeeper: royaltyKeeper,
		authority:     authority,
		moduleAddress: authtypes.NewModuleAddress(types.ModuleName),
	}
}

// getStore returns the KVStore for the amm module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetModuleAddress returns the escrow account address of the module.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddress
}

// GetAuthority returns the configured governance authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// setValue marshals a record into the store.
func (k Keeper) setValue(ctx context.Context, key []byte, value any) error {
	bz, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal store value: %w", err)
	}
	k.getStore(ctx).Set(key, bz)
	return nil
}

// getValue unmarshals a record from the store, reporting presence.
func (k Keeper) getValue(ctx context.Context, key []byte, value any) (bool, error) {
	bz := k.getStore(ctx).Get(key)
	if bz == nil {
		return false, nil
	}
	if err := json.Unmarshal(bz, value); err != nil {
		return false, fmt.Errorf("unmarshal store value: %w", err)
	}
	return true, nil
}
