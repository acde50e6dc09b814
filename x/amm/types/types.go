package types

import (
	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// CurveType selects the pricing function of a pair.
type CurveType string

const (
	// CurveLinear moves spot price additively by delta per unit traded.
	CurveLinear CurveType = "linear"

	// CurveExponential moves spot price multiplicatively by delta (wad) per
	// unit traded.
	CurveExponential CurveType = "exponential"

	// CurveXyk prices trades against virtual constant-product reserves where
	// spot price is the token reserve and delta the asset count.
	CurveXyk CurveType = "xyk"
)

// Validate reports whether the curve type is one of the known kinds.
func (c CurveType) Validate() error {
	switch c {
	case CurveLinear, CurveExponential, CurveXyk:
		return nil
	default:
		return ErrInvalidCurve.Wrapf("unknown curve type %q", c)
	}
}

// PoolType determines which trade directions a pair supports.
type PoolType string

const (
	// PoolTypeToken pairs hold value and buy assets from traders.
	PoolTypeToken PoolType = "token"

	// PoolTypeNft pairs hold assets and sell them to traders.
	PoolTypeNft PoolType = "nft"

	// PoolTypeTrade pairs quote both directions and may charge an LP fee.
	PoolTypeTrade PoolType = "trade"
)

// Validate reports whether the pool type is one of the known kinds.
func (p PoolType) Validate() error {
	switch p {
	case PoolTypeToken, PoolTypeNft, PoolTypeTrade:
		return nil
	default:
		return ErrInvalidPoolType.Wrapf("unknown pool type %q", p)
	}
}

// Pair is one arena slot of the bonding-curve system: curve state, escrowed
// reserves and routing configuration under a stable numeric id.
type Pair struct {
	Id             uint64         `json:"id"`
	Owner          string         `json:"owner"`
	PoolType       PoolType       `json:"pool_type"`
	CurveType      CurveType      `json:"curve_type"`
	SpotPrice      math.Int       `json:"spot_price"`
	Delta          math.Int       `json:"delta"`
	Fee            math.LegacyDec `json:"fee"`
	AssetRecipient string         `json:"asset_recipient,omitempty"`
	ClassId        string         `json:"class_id"`
	Denom          string         `json:"denom"`
	TokenReserve   math.Int       `json:"token_reserve"`
	AssetIds       []string       `json:"asset_ids"`
}

// Validate checks internal pair consistency. LP fees are a TRADE-only
// capability.
func (p Pair) Validate() error {
	if p.Owner == "" {
		return ErrInvalidAddress.Wrap("pair owner cannot be empty")
	}
	if err := p.PoolType.Validate(); err != nil {
		return err
	}
	if err := p.CurveType.Validate(); err != nil {
		return err
	}
	if p.ClassId == "" {
		return ErrInvalidState.Wrap("pair class id cannot be empty")
	}
	if p.Denom == "" {
		return ErrInvalidState.Wrap("pair denom cannot be empty")
	}
	if p.Fee.IsNil() || p.Fee.IsNegative() {
		return ErrInvalidAmount.Wrap("pair fee cannot be negative")
	}
	if p.Fee.IsPositive() && p.PoolType != PoolTypeTrade {
		return ErrInvalidPoolType.Wrapf("%s pairs cannot charge an LP fee", p.PoolType)
	}
	if p.Fee.GT(MaxPairFee) {
		return ErrFeeTooHigh.Wrapf("pair fee %s exceeds ceiling %s", p.Fee, MaxPairFee)
	}
	if p.TokenReserve.IsNil() || p.TokenReserve.IsNegative() {
		return ErrInvalidAmount.Wrap("token reserve cannot be negative")
	}
	if err := ValidateSpotPrice(p.CurveType, p.SpotPrice); err != nil {
		return err
	}
	return ValidateDelta(p.CurveType, p.Delta)
}

// HasAsset reports whether the pair currently escrows the given asset id.
func (p Pair) HasAsset(nftId string) bool {
	for _, id := range p.AssetIds {
		if id == nftId {
			return true
		}
	}
	return false
}

// MaxPairFee caps the LP fee a TRADE pair may charge (90%).
var MaxPairFee = math.LegacyNewDecWithPrec(90, 2)

// BuyQuote is the outcome of quoting an n-item buy from a pair. RawValue is
// the pre-fee curve integral; royalties layer on it, never on the fee-scaled
// input.
type BuyQuote struct {
	NewSpotPrice math.Int `json:"new_spot_price"`
	NewDelta     math.Int `json:"new_delta"`
	RawValue     math.Int `json:"raw_value"`
	InputValue   math.Int `json:"input_value"`
	ProtocolFee  math.Int `json:"protocol_fee"`
}

// SellQuote is the outcome of quoting an n-item sell into a pair.
type SellQuote struct {
	NewSpotPrice math.Int `json:"new_spot_price"`
	NewDelta     math.Int `json:"new_delta"`
	RawValue     math.Int `json:"raw_value"`
	OutputValue  math.Int `json:"output_value"`
	ProtocolFee  math.Int `json:"protocol_fee"`
}
