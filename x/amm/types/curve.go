package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// Wad is the fixed-point scale for spot prices and multiplicative deltas.
var Wad = math.NewIntWithDecimal(1, 18)

// MaxExponentialItems bounds the item count of a single exponential-curve
// trade. Beyond it delta^n loses any economic meaning and only burns gas on
// its way to an overflow rejection.
const MaxExponentialItems = 512

// maxValue is the exclusive upper bound on every intermediate and result:
// curve math fails closed at 2^256 instead of wrapping.
var maxValue = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// checkedInt converts a big.Int result back to math.Int, rejecting anything
// outside [0, 2^256).
func checkedInt(v *big.Int) (math.Int, error) {
	if v.Sign() < 0 || v.Cmp(maxValue) >= 0 {
		return math.Int{}, ErrSpotPriceOverflow.Wrap("curve result out of range")
	}
	return math.NewIntFromBigInt(v), nil
}

// checkedMul multiplies two big.Ints with the 2^256 guard.
func checkedMul(a, b *big.Int) (*big.Int, error) {
	result := new(big.Int).Mul(a, b)
	if result.CmpAbs(maxValue) >= 0 {
		return nil, ErrSpotPriceOverflow.Wrap("multiplication exceeds 2^256")
	}
	return result, nil
}

// wadPow computes base^exp at wad scale by guarded repeated multiplication.
func wadPow(base math.Int, exp uint64) (*big.Int, error) {
	acc := new(big.Int).Set(Wad.BigInt())
	b := base.BigInt()
	w := Wad.BigInt()
	for i := uint64(0); i < exp; i++ {
		next, err := checkedMul(acc, b)
		if err != nil {
			return nil, err
		}
		acc = next.Quo(next, w)
	}
	return acc, nil
}

// ValidateDelta checks a delta value against its curve's bounds.
func ValidateDelta(curve CurveType, delta math.Int) error {
	if delta.IsNil() || delta.IsNegative() {
		return ErrDeltaTooSmall.Wrap("delta cannot be negative")
	}
	switch curve {
	case CurveLinear:
		return nil
	case CurveExponential:
		if !delta.GT(Wad) {
			return ErrDeltaTooSmall.Wrapf("exponential delta %s must exceed %s", delta, Wad)
		}
		return nil
	case CurveXyk:
		if !delta.IsPositive() {
			return ErrDeltaTooSmall.Wrap("xyk delta must hold at least one virtual asset")
		}
		return nil
	default:
		return ErrInvalidCurve.Wrapf("unknown curve type %q", curve)
	}
}

// ValidateSpotPrice checks a spot price against its curve's bounds.
func ValidateSpotPrice(curve CurveType, spotPrice math.Int) error {
	if spotPrice.IsNil() || spotPrice.IsNegative() {
		return ErrInvalidSpotPrice.Wrap("spot price cannot be negative")
	}
	switch curve {
	case CurveLinear:
		return nil
	case CurveExponential, CurveXyk:
		if !spotPrice.IsPositive() {
			return ErrInvalidSpotPrice.Wrapf("%s spot price must be positive", curve)
		}
		return nil
	default:
		return ErrInvalidCurve.Wrapf("unknown curve type %q", curve)
	}
}

// GetBuyInfo quotes the cost of buying numItems assets out of a pair at
// (spotPrice, delta). The raw curve integral is scaled up by the LP and
// protocol fee multipliers; the protocol share is computed from the raw
// quote, never compounded against the LP fee.
func GetBuyInfo(curve CurveType, spotPrice, delta math.Int, numItems uint64, fee, protocolFeeMultiplier math.LegacyDec) (BuyQuote, error) {
	if numItems == 0 {
		return BuyQuote{}, ErrZeroItems.Wrap("cannot quote a zero-item buy")
	}
	if err := ValidateSpotPrice(curve, spotPrice); err != nil {
		return BuyQuote{}, err
	}
	if err := ValidateDelta(curve, delta); err != nil {
		return BuyQuote{}, err
	}

	var raw, newSpot, newDelta math.Int
	var err error
	switch curve {
	case CurveLinear:
		raw, newSpot, newDelta, err = linearBuy(spotPrice, delta, numItems)
	case CurveExponential:
		raw, newSpot, newDelta, err = exponentialBuy(spotPrice, delta, numItems)
	case CurveXyk:
		raw, newSpot, newDelta, err = xykBuy(spotPrice, delta, numItems)
	default:
		err = ErrInvalidCurve.Wrapf("unknown curve type %q", curve)
	}
	if err != nil {
		return BuyQuote{}, err
	}

	protocolFee := math.LegacyNewDecFromInt(raw).Mul(protocolFeeMultiplier).TruncateInt()
	tradeFee := math.LegacyNewDecFromInt(raw).Mul(fee).TruncateInt()
	input := raw.Add(tradeFee).Add(protocolFee)

	return BuyQuote{
		NewSpotPrice: newSpot,
		NewDelta:     newDelta,
		RawValue:     raw,
		InputValue:   input,
		ProtocolFee:  protocolFee,
	}, nil
}

// GetSellInfo quotes the proceeds of selling numItems assets into a pair at
// (spotPrice, delta). The raw curve integral is scaled down by the LP and
// protocol fee multipliers, both computed from the raw quote.
func GetSellInfo(curve CurveType, spotPrice, delta math.Int, numItems uint64, fee, protocolFeeMultiplier math.LegacyDec) (SellQuote, error) {
	if numItems == 0 {
		return SellQuote{}, ErrZeroItems.Wrap("cannot quote a zero-item sell")
	}
	if err := ValidateSpotPrice(curve, spotPrice); err != nil {
		return SellQuote{}, err
	}
	if err := ValidateDelta(curve, delta); err != nil {
		return SellQuote{}, err
	}

	var raw, newSpot, newDelta math.Int
	var err error
	switch curve {
	case CurveLinear:
		raw, newSpot, newDelta, err = linearSell(spotPrice, delta, numItems)
	case CurveExponential:
		raw, newSpot, newDelta, err = exponentialSell(spotPrice, delta, numItems)
	case CurveXyk:
		raw, newSpot, newDelta, err = xykSell(spotPrice, delta, numItems)
	default:
		err = ErrInvalidCurve.Wrapf("unknown curve type %q", curve)
	}
	if err != nil {
		return SellQuote{}, err
	}

	protocolFee := math.LegacyNewDecFromInt(raw).Mul(protocolFeeMultiplier).TruncateInt()
	tradeFee := math.LegacyNewDecFromInt(raw).Mul(fee).TruncateInt()
	output := raw.Sub(tradeFee).Sub(protocolFee)
	if output.IsNegative() {
		output = math.ZeroInt()
	}

	return SellQuote{
		NewSpotPrice: newSpot,
		NewDelta:     newDelta,
		RawValue:     raw,
		OutputValue:  output,
		ProtocolFee:  protocolFee,
	}, nil
}

// linearBuy walks the additive ladder upward: the i-th item costs
// spot + i*delta, so n items cost n*spot + delta*n*(n+1)/2 and the new spot
// is spot + n*delta.
func linearBuy(spotPrice, delta math.Int, numItems uint64) (raw, newSpot, newDelta math.Int, err error) {
	n := new(big.Int).SetUint64(numItems)
	spot := spotPrice.BigInt()
	d := delta.BigInt()

	rise, err := checkedMul(d, n)
	if err != nil {
		return raw, newSpot, newDelta, err
	}
	newSpot, err = checkedInt(new(big.Int).Add(spot, rise))
	if err != nil {
		return raw, newSpot, newDelta, err
	}

	// delta * n * (n+1) / 2
	ladder, err := checkedMul(rise, new(big.Int).Add(n, big.NewInt(1)))
	if err != nil {
		return raw, newSpot, newDelta, err
	}
	ladder.Quo(ladder, big.NewInt(2))

	base, err := checkedMul(spot, n)
	if err != nil {
		return raw, newSpot, newDelta, err
	}
	raw, err = checkedInt(new(big.Int).Add(base, ladder))
	return raw, newSpot, delta, err
}

// linearSell walks the ladder downward from the current spot. When delta
// steps would push the price below zero the item count is clamped to the
// number of sellable items and the new spot floors at zero.
func linearSell(spotPrice, delta math.Int, numItems uint64) (raw, newSpot, newDelta math.Int, err error) {
	n := new(big.Int).SetUint64(numItems)
	spot := spotPrice.BigInt()
	d := delta.BigInt()

	drop, err := checkedMul(d, n)
	if err != nil {
		return raw, newSpot, newDelta, err
	}

	if spot.Cmp(drop) < 0 {
		// spot/delta full steps fit above zero, plus the item sold at the
		// final partial price.
		itemsTillZero := new(big.Int).Quo(spot, d)
		itemsTillZero.Add(itemsTillZero, big.NewInt(1))
		n = itemsTillZero
		newSpot = math.ZeroInt()
	} else {
		newSpot, err = checkedInt(new(big.Int).Sub(spot, drop))
		if err != nil {
			return raw, newSpot, newDelta, err
		}
	}

	// n*spot - delta*n*(n-1)/2
	base, err := checkedMul(spot, n)
	if err != nil {
		return raw, newSpot, newDelta, err
	}
	ladder, err := checkedMul(d, n)
	if err != nil {
		return raw, newSpot, newDelta, err
	}
	ladder, err = checkedMul(ladder, new(big.Int).Sub(n, big.NewInt(1)))
	if err != nil {
		return raw, newSpot, newDelta, err
	}
	ladder.Quo(ladder, big.NewInt(2))

	raw, err = checkedInt(base.Sub(base, ladder))
	return raw, newSpot, delta, err
}

// exponentialBuy prices the geometric ladder: n items cost
// spot*(delta^n - wad)/(delta - wad) and the new spot is spot*delta^n/wad.
func exponentialBuy(spotPrice, delta math.Int, numItems uint64) (raw, newSpot, newDelta math.Int, err error) {
	if numItems > MaxExponentialItems {
		return raw, newSpot, newDelta, ErrTooManyItems.Wrapf(
			"%d items exceeds exponential ceiling %d", numItems, MaxExponentialItems)
	}

	deltaPowN, err := wadPow(delta, numItems)
	if err != nil {
		return raw, newSpot, newDelta, err
	}
	spot := spotPrice.BigInt()
	w := Wad.BigInt()

	risen, err := checkedMul(spot, deltaPowN)
	if err != nil {
		return raw, newSpot, newDelta, err
	}
	newSpot, err = checkedInt(risen.Quo(risen, w))
	if err != nil {
		return raw, newSpot, newDelta, err
	}

	num, err := checkedMul(spot, new(big.Int).Sub(deltaPowN, w))
	if err != nil {
		return raw, newSpot, newDelta, err
	}
	den := new(big.Int).Sub(delta.BigInt(), w)
	raw, err = checkedInt(num.Quo(num, den))
	return raw, newSpot, delta, err
}

// exponentialSell is the geometric inverse: the first item sells at
// spot/delta, giving proceeds spot*(delta^n - wad)*wad/((delta - wad)*delta^n)
// and new spot spot*wad/delta^n. Selling n right after buying n recovers the
// raw buy quote exactly, up to floor rounding.
func exponentialSell(spotPrice, delta math.Int, numItems uint64) (raw, newSpot, newDelta math.Int, err error) {
	if numItems > MaxExponentialItems {
		return raw, newSpot, newDelta, ErrTooManyItems.Wrapf(
			"%d items exceeds exponential ceiling %d", numItems, MaxExponentialItems)
	}

	deltaPowN, err := wadPow(delta, numItems)
	if err != nil {
		return raw, newSpot, newDelta, err
	}
	spot := spotPrice.BigInt()
	w := Wad.BigInt()

	fallen, err := checkedMul(spot, w)
	if err != nil {
		return raw, newSpot, newDelta, err
	}
	newSpot, err = checkedInt(fallen.Quo(fallen, deltaPowN))
	if err != nil {
		return raw, newSpot, newDelta, err
	}

	num, err := checkedMul(spot, new(big.Int).Sub(deltaPowN, w))
	if err != nil {
		return raw, newSpot, newDelta, err
	}
	num, err = checkedMul(num, w)
	if err != nil {
		return raw, newSpot, newDelta, err
	}
	den, err := checkedMul(new(big.Int).Sub(delta.BigInt(), w), deltaPowN)
	if err != nil {
		return raw, newSpot, newDelta, err
	}
	raw, err = checkedInt(num.Quo(num, den))
	return raw, newSpot, delta, err
}

// xykBuy treats (spotPrice, delta) as virtual token and asset reserves and
// solves constant-product preservation for the required input:
// input = n*spot/(delta - n). Both virtual reserves move with the trade.
func xykBuy(spotPrice, delta math.Int, numItems uint64) (raw, newSpot, newDelta math.Int, err error) {
	n := new(big.Int).SetUint64(numItems)
	d := delta.BigInt()
	if d.Cmp(n) <= 0 {
		return raw, newSpot, newDelta, ErrTooManyItems.Wrapf(
			"cannot buy %d of %s virtual assets", numItems, delta)
	}

	num, err := checkedMul(spotPrice.BigInt(), n)
	if err != nil {
		return raw, newSpot, newDelta, err
	}
	raw, err = checkedInt(num.Quo(num, new(big.Int).Sub(d, n)))
	if err != nil {
		return raw, newSpot, newDelta, err
	}

	newSpot, err = checkedInt(new(big.Int).Add(spotPrice.BigInt(), raw.BigInt()))
	if err != nil {
		return raw, newSpot, newDelta, err
	}
	newDelta = math.NewIntFromBigInt(new(big.Int).Sub(d, n))
	return raw, newSpot, newDelta, nil
}

// xykSell adds n assets to the virtual reserve and pays out the
// k-preserving amount output = n*spot/(delta + n).
func xykSell(spotPrice, delta math.Int, numItems uint64) (raw, newSpot, newDelta math.Int, err error) {
	n := new(big.Int).SetUint64(numItems)
	d := delta.BigInt()

	num, err := checkedMul(spotPrice.BigInt(), n)
	if err != nil {
		return raw, newSpot, newDelta, err
	}
	grown := new(big.Int).Add(d, n)
	if grown.Cmp(maxValue) >= 0 {
		return raw, newSpot, newDelta, ErrSpotPriceOverflow.Wrap("virtual asset reserve overflow")
	}
	raw, err = checkedInt(num.Quo(num, grown))
	if err != nil {
		return raw, newSpot, newDelta, err
	}

	newSpot, err = checkedInt(new(big.Int).Sub(spotPrice.BigInt(), raw.BigInt()))
	if err != nil {
		return raw, newSpot, newDelta, err
	}
	newDelta = math.NewIntFromBigInt(grown)
	return raw, newSpot, newDelta, nil
}
