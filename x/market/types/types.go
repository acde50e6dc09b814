package types

import (
	"fmt"

	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "market"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_" + ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

const (
	// BpsDenominator is the basis-point denominator used by every fee rate
	// in the module (1 bps = 0.01%).
	BpsDenominator = 10_000

	// MaxProtocolFeeBps is the hard ceiling on the protocol fee rate (10%).
	MaxProtocolFeeBps = 1_000

	// MaxRoyaltyFeeBpsCeiling is the hard ceiling on any collection royalty
	// rate (10%).
	MaxRoyaltyFeeBpsCeiling = 1_000

	// MaxBatchSize bounds ListMany/BuyMany batches.
	MaxBatchSize = 100
)

// AssetKey builds the canonical asset identifier for a class/NFT pair. One
// active listing may exist per asset key at any time.
func AssetKey(classId, nftId string) string {
	return fmt.Sprintf("%s/%s", classId, nftId)
}

// Listing records an active fixed-price listing. The listed NFT is held in
// escrow by the module account for the lifetime of the entry.
type Listing struct {
	Seller string   `json:"seller"`
	Price  math.Int `json:"price"`
}

// Validate checks internal listing consistency.
func (l Listing) Validate() error {
	if l.Seller == "" {
		return ErrInvalidAddress.Wrap("listing seller cannot be empty")
	}
	if l.Price.IsNil() || !l.Price.IsPositive() {
		return ErrInvalidPrice.Wrap("listing price must be positive")
	}
	return nil
}

// Offer is a single slot in the price-keyed offer ledger. A vacated slot
// keeps its index and stores an empty bidder; indices are stable identifiers,
// never compacted.
type Offer struct {
	Bidder string `json:"bidder"`
}

// IsLive reports whether the slot still holds an active offer.
func (o Offer) IsLive() bool {
	return o.Bidder != ""
}

// Royalty is the collection-level royalty configuration, layered on top of
// the protocol fee and always computed against the pre-fee trade price.
type Royalty struct {
	Recipient string `json:"recipient"`
	FeeBps    uint64 `json:"fee_bps"`
}

// Validate rejects royalty configurations at set time, never at trade time.
func (r Royalty) Validate() error {
	if r.FeeBps > MaxRoyaltyFeeBpsCeiling {
		return ErrFeeTooHigh.Wrapf("royalty fee %d bps exceeds ceiling %d", r.FeeBps, MaxRoyaltyFeeBpsCeiling)
	}
	if r.FeeBps > 0 && r.Recipient == "" {
		return ErrInvalidAddress.Wrap("royalty recipient required for non-zero rate")
	}
	return nil
}

// Page is a primary-sale record for a collection: a fixed mint price and the
// accrued, not-yet-withdrawn proceeds held by the module account.
type Page struct {
	Creator   string   `json:"creator"`
	MintPrice math.Int `json:"mint_price"`
	Proceeds  math.Int `json:"proceeds"`
}

// Validate checks internal page consistency.
func (p Page) Validate() error {
	if p.Creator == "" {
		return ErrInvalidAddress.Wrap("page creator cannot be empty")
	}
	if p.MintPrice.IsNil() || !p.MintPrice.IsPositive() {
		return ErrInvalidPrice.Wrap("mint price must be positive")
	}
	if p.Proceeds.IsNil() || p.Proceeds.IsNegative() {
		return ErrInvalidAmount.Wrap("page proceeds cannot be negative")
	}
	return nil
}

// PendingRedemption is a claim created by burning reward shares. It unlocks
// at its stored timestamp and persists until fulfilled; the engine never
// garbage-collects unclaimed entries.
type PendingRedemption struct {
	Amount math.Int `json:"amount"`
}
