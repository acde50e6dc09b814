package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/moon-chain/moon/x/market/types"
)

// RegisterInvariants registers all market module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "listing-escrow", ListingEscrowInvariant(k))
	ir.RegisterRoute(types.ModuleName, "funds-backing", FundsBackingInvariant(k))
}

// AllInvariants runs all invariants of the market module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		msg, broken := ListingEscrowInvariant(k)(ctx)
		if broken {
			return msg, broken
		}
		return FundsBackingInvariant(k)(ctx)
	}
}

// ListingEscrowInvariant checks that every listed NFT is held by the module
// escrow account. A listing whose asset sits anywhere else is a claim the
// module cannot settle.
func ListingEscrowInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var broken bool
		var detail string

		err := k.IterateListings(ctx, func(assetKey string, listing types.Listing) bool {
			classId, nftId, ok := splitAssetKey(assetKey)
			if !ok {
				broken = true
				detail = fmt.Sprintf("malformed listing key %q", assetKey)
				return true
			}
			owner := k.nftKeeper.GetOwner(ctx, classId, nftId)
			if !owner.Equals(k.moduleAddress) {
				broken = true
				detail = fmt.Sprintf("listed asset %s is held by %s, not the module escrow", assetKey, owner)
				return true
			}
			return false
		})
		if err != nil {
			broken = true
			detail = err.Error()
		}

		return sdk.FormatInvariant(
			types.ModuleName, "listing-escrow",
			fmt.Sprintf("every listed asset must be escrowed by the module\n%s", detail),
		), broken
	}
}

// FundsBackingInvariant checks that the module's trade-denom balance covers
// every outstanding claim on it: live offer escrows, undrained page proceeds
// and pending redemptions.
func FundsBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "funds-backing", err.Error()), true
		}

		required := math.ZeroInt()

		if err := k.IterateOffers(ctx, func(amount math.Int, index uint64, offer types.Offer) bool {
			if offer.IsLive() {
				required = required.Add(amount)
			}
			return false
		}); err != nil {
			return sdk.FormatInvariant(types.ModuleName, "funds-backing", err.Error()), true
		}

		if err := k.IteratePages(ctx, func(classId string, page types.Page) bool {
			required = required.Add(page.Proceeds)
			return false
		}); err != nil {
			return sdk.FormatInvariant(types.ModuleName, "funds-backing", err.Error()), true
		}

		if err := k.IterateRedemptions(ctx, func(holder string, unlockTime int64, entry types.PendingRedemption) bool {
			required = required.Add(entry.Amount)
			return false
		}); err != nil {
			return sdk.FormatInvariant(types.ModuleName, "funds-backing", err.Error()), true
		}

		balance := k.bankKeeper.GetBalance(ctx, k.moduleAddress, params.TradeDenom)
		broken := balance.Amount.LT(required)

		return sdk.FormatInvariant(
			types.ModuleName, "funds-backing",
			fmt.Sprintf("module balance %s must cover outstanding claims %s%s",
				balance.Amount, required, params.TradeDenom),
		), broken
	}
}

// splitAssetKey recovers (classId, nftId) from a stored asset key.
func splitAssetKey(assetKey string) (string, string, bool) {
	for i := 0; i < len(assetKey); i++ {
		if assetKey[i] == '/' {
			return assetKey[:i], assetKey[i+1:], true
		}
	}
	return "", "", false
}
