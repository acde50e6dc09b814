package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/moon-chain/moon/x/amm/types"
)

// RegisterInvariants registers all amm module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "reserve-backing", ReserveBackingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "asset-escrow", AssetEscrowInvariant(k))
}

// AllInvariants runs all invariants of the amm module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		msg, broken := ReserveBackingInvariant(k)(ctx)
		if broken {
			return msg, broken
		}
		return AssetEscrowInvariant(k)(ctx)
	}
}

// ReserveBackingInvariant checks that, per denom, the module's balance
// covers the sum of all pair token reserves.
func ReserveBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		required := make(map[string]math.Int)

		if err := k.IteratePairs(ctx, func(pair types.Pair) bool {
			sum, ok := required[pair.Denom]
			if !ok {
				sum = math.ZeroInt()
			}
			required[pair.Denom] = sum.Add(pair.TokenReserve)
			return false
		}); err != nil {
			return sdk.FormatInvariant(types.ModuleName, "reserve-backing", err.Error()), true
		}

		for denom, sum := range required {
			balance := k.bankKeeper.GetBalance(ctx, k.moduleAddress, denom)
			if balance.Amount.LT(sum) {
				return sdk.FormatInvariant(
					types.ModuleName, "reserve-backing",
					fmt.Sprintf("module balance %s below summed reserves %s%s", balance, sum, denom),
				), true
			}
		}

		return sdk.FormatInvariant(
			types.ModuleName, "reserve-backing",
			"module balances cover all pair reserves",
		), false
	}
}

// AssetEscrowInvariant checks that every asset a pair claims to hold is
// actually under module custody.
func AssetEscrowInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var broken bool
		var detail string

		if err := k.IteratePairs(ctx, func(pair types.Pair) bool {
			for _, nftId := range pair.AssetIds {
				owner := k.nftKeeper.GetOwner(ctx, pair.ClassId, nftId)
				if !owner.Equals(k.moduleAddress) {
					broken = true
					detail = fmt.Sprintf("pair %d asset %s/%s is held by %s, not the module escrow",
						pair.Id, pair.ClassId, nftId, owner)
					return true
				}
			}
			return false
		}); err != nil {
			broken = true
			detail = err.Error()
		}

		return sdk.FormatInvariant(
			types.ModuleName, "asset-escrow",
			fmt.Sprintf("every pair asset must be escrowed by the module\n%s", detail),
		), broken
	}
}
