package types

import (
	"fmt"
)

// ListingRecord pairs an asset key with its listing for genesis export.
type ListingRecord struct {
	ClassId string  `json:"class_id"`
	NftId   string  `json:"nft_id"`
	Listing Listing `json:"listing"`
}

// OfferRecord is a flattened offer ledger slot for genesis export. Vacated
// slots are exported too so indices survive a restart.
type OfferRecord struct {
	Amount string `json:"amount"`
	Index  uint64 `json:"index"`
	Bidder string `json:"bidder"`
}

// RoyaltyRecord pairs a class with its royalty configuration.
type RoyaltyRecord struct {
	ClassId string  `json:"class_id"`
	Royalty Royalty `json:"royalty"`
}

// PageRecord pairs a class with its primary-sale page.
type PageRecord struct {
	ClassId string `json:"class_id"`
	Page    Page   `json:"page"`
}

// RedemptionRecord is a flattened pending redemption entry.
type RedemptionRecord struct {
	Holder     string            `json:"holder"`
	UnlockTime int64             `json:"unlock_time"`
	Entry      PendingRedemption `json:"entry"`
}

// GenesisState is the full exported state of the market module.
type GenesisState struct {
	Params      Params             `json:"params"`
	Listings    []ListingRecord    `json:"listings"`
	Offers      []OfferRecord      `json:"offers"`
	Royalties   []RoyaltyRecord    `json:"royalties"`
	Pages       []PageRecord       `json:"pages"`
	Redemptions []RedemptionRecord `json:"redemptions"`
}

// DefaultGenesis returns the default genesis state for the market module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:      DefaultParams(),
		Listings:    []ListingRecord{},
		Offers:      []OfferRecord{},
		Royalties:   []RoyaltyRecord{},
		Pages:       []PageRecord{},
		Redemptions: []RedemptionRecord{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seen := make(map[string]struct{}, len(gs.Listings))
	for _, rec := range gs.Listings {
		key := AssetKey(rec.ClassId, rec.NftId)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate listing for asset %s", key)
		}
		seen[key] = struct{}{}
		if err := rec.Listing.Validate(); err != nil {
			return fmt.Errorf("invalid listing for asset %s: %w", key, err)
		}
	}

	for _, rec := range gs.Royalties {
		if rec.ClassId == "" {
			return fmt.Errorf("royalty record with empty class id")
		}
		if err := rec.Royalty.Validate(); err != nil {
			return fmt.Errorf("invalid royalty for class %s: %w", rec.ClassId, err)
		}
	}

	for _, rec := range gs.Pages {
		if rec.ClassId == "" {
			return fmt.Errorf("page record with empty class id")
		}
		if err := rec.Page.Validate(); err != nil {
			return fmt.Errorf("invalid page for class %s: %w", rec.ClassId, err)
		}
	}

	for _, rec := range gs.Redemptions {
		if rec.Holder == "" {
			return fmt.Errorf("redemption record with empty holder")
		}
		if rec.Entry.Amount.IsNil() || !rec.Entry.Amount.IsPositive() {
			return fmt.Errorf("redemption for %s must be positive", rec.Holder)
		}
	}

	return nil
}
