package keeper

import (
	"context"
	"fmt"

	"github.com/moon-chain/moon/x/market/types"
)

// GetParams returns the current parameters from the store
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	var params types.Params
	found, err := k.getValue(ctx, ParamsKey, &params)
	if err != nil {
		return types.Params{}, fmt.Errorf("GetParams: %w", err)
	}
	if !found {
		return types.DefaultParams(), nil
	}
	return params, nil
}

// SetParams validates and stores new parameters. Misconfigured fee tiers are
// rejected here, at configuration time, never on the trade path.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return fmt.Errorf("SetParams: %w", err)
	}
	if err := k.setValue(ctx, ParamsKey, params); err != nil {
		return fmt.Errorf("SetParams: %w", err)
	}
	return nil
}

// UpdateParams replaces module parameters after an explicit authority check.
func (k Keeper) UpdateParams(ctx context.Context, authority string, params types.Params) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("invalid authority; expected %s, got %s", k.authority, authority)
	}
	return k.SetParams(ctx, params)
}
