package keeper

import (
	"context"
	"fmt"

	"github.com/moon-chain/moon/x/amm/types"
)

// InitGenesis initializes the amm module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("init genesis: %w", err)
	}

	for _, pair := range genState.Pairs {
		if err := k.setPair(ctx, pair); err != nil {
			return fmt.Errorf("init genesis: pair %d: %w", pair.Id, err)
		}
	}

	next := genState.NextPair
	if next == 0 {
		next = 1
	}
	k.setNextPairId(ctx, next)
	return nil
}

// ExportGenesis returns the full exported state of the amm module.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("export genesis: %w", err)
	}
	genState := types.GenesisState{
		Params:   params,
		Pairs:    []types.Pair{},
		NextPair: 1,
	}

	if err := k.IteratePairs(ctx, func(pair types.Pair) bool {
		genState.Pairs = append(genState.Pairs, pair)
		if pair.Id >= genState.NextPair {
			genState.NextPair = pair.Id + 1
		}
		return false
	}); err != nil {
		return nil, fmt.Errorf("export genesis: %w", err)
	}

	return &genState, nil
}
