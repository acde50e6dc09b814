package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"

	"github.com/moon-chain/moon/x/market/types"
)

// InitGenesis initializes the market module state from a genesis state.
// Offer slot counters are rebuilt from the highest imported index per amount
// so appended slots never collide with imported ones.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("init genesis: %w", err)
	}

	for _, rec := range genState.Listings {
		if err := k.setListing(ctx, rec.ClassId, rec.NftId, rec.Listing); err != nil {
			return fmt.Errorf("init genesis: listing %s: %w", types.AssetKey(rec.ClassId, rec.NftId), err)
		}
	}

	counts := make(map[string]uint64)
	for _, rec := range genState.Offers {
		amount, ok := math.NewIntFromString(rec.Amount)
		if !ok {
			return fmt.Errorf("init genesis: invalid offer amount %q", rec.Amount)
		}
		if err := k.setOffer(ctx, amount, rec.Index, types.Offer{Bidder: rec.Bidder}); err != nil {
			return fmt.Errorf("init genesis: offer %s/%d: %w", rec.Amount, rec.Index, err)
		}
		if rec.Index+1 > counts[rec.Amount] {
			counts[rec.Amount] = rec.Index + 1
		}
	}
	for amountStr, count := range counts {
		amount, _ := math.NewIntFromString(amountStr)
		k.setOfferCount(ctx, amount, count)
	}

	for _, rec := range genState.Royalties {
		if err := k.setValue(ctx, RoyaltyKey(rec.ClassId), rec.Royalty); err != nil {
			return fmt.Errorf("init genesis: royalty %s: %w", rec.ClassId, err)
		}
	}

	for _, rec := range genState.Pages {
		if err := k.setPage(ctx, rec.ClassId, rec.Page); err != nil {
			return fmt.Errorf("init genesis: page %s: %w", rec.ClassId, err)
		}
	}

	for _, rec := range genState.Redemptions {
		if err := k.setValue(ctx, RedemptionKey(rec.Holder, rec.UnlockTime), rec.Entry); err != nil {
			return fmt.Errorf("init genesis: redemption %s/%d: %w", rec.Holder, rec.UnlockTime, err)
		}
	}

	return nil
}

// ExportGenesis returns the full exported state of the market module.
// Vacated offer slots are exported too; dropping them would renumber live
// slots on import.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("export genesis: %w", err)
	}
	genState := types.GenesisState{
		Params:      params,
		Listings:    []types.ListingRecord{},
		Offers:      []types.OfferRecord{},
		Royalties:   []types.RoyaltyRecord{},
		Pages:       []types.PageRecord{},
		Redemptions: []types.RedemptionRecord{},
	}

	if err := k.IterateListings(ctx, func(assetKey string, listing types.Listing) bool {
		classId, nftId, ok := splitAssetKey(assetKey)
		if !ok {
			return false
		}
		genState.Listings = append(genState.Listings, types.ListingRecord{
			ClassId: classId,
			NftId:   nftId,
			Listing: listing,
		})
		return false
	}); err != nil {
		return nil, fmt.Errorf("export genesis: %w", err)
	}

	if err := k.IterateOffers(ctx, func(amount math.Int, index uint64, offer types.Offer) bool {
		genState.Offers = append(genState.Offers, types.OfferRecord{
			Amount: amount.String(),
			Index:  index,
			Bidder: offer.Bidder,
		})
		return false
	}); err != nil {
		return nil, fmt.Errorf("export genesis: %w", err)
	}

	if err := k.iterateRoyalties(ctx, func(classId string, royalty types.Royalty) bool {
		genState.Royalties = append(genState.Royalties, types.RoyaltyRecord{
			ClassId: classId,
			Royalty: royalty,
		})
		return false
	}); err != nil {
		return nil, fmt.Errorf("export genesis: %w", err)
	}

	if err := k.IteratePages(ctx, func(classId string, page types.Page) bool {
		genState.Pages = append(genState.Pages, types.PageRecord{
			ClassId: classId,
			Page:    page,
		})
		return false
	}); err != nil {
		return nil, fmt.Errorf("export genesis: %w", err)
	}

	if err := k.IterateRedemptions(ctx, func(holder string, unlockTime int64, entry types.PendingRedemption) bool {
		genState.Redemptions = append(genState.Redemptions, types.RedemptionRecord{
			Holder:     holder,
			UnlockTime: unlockTime,
			Entry:      entry,
		})
		return false
	}); err != nil {
		return nil, fmt.Errorf("export genesis: %w", err)
	}

	return &genState, nil
}
