package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/moon-chain/moon/x/amm/types"
)

var (
	zeroDec = math.LegacyZeroDec()
	wad     = types.Wad
)

func wadMul(x math.Int, num, den int64) math.Int {
	return x.Mul(math.NewInt(num)).Quo(math.NewInt(den))
}

func TestLinearBuy(t *testing.T) {
	tests := []struct {
		name        string
		spot, delta int64
		numItems    uint64
		wantRaw     int64
		wantSpot    int64
	}{
		{"single item", 100, 10, 1, 110, 110},
		{"three items climb the ladder", 100, 10, 3, 360, 130},
		{"flat curve", 100, 0, 5, 500, 100},
		{"zero spot", 0, 10, 2, 30, 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := types.GetBuyInfo(types.CurveLinear,
				math.NewInt(tc.spot), math.NewInt(tc.delta), tc.numItems, zeroDec, zeroDec)
			require.NoError(t, err)
			require.Equal(t, math.NewInt(tc.wantRaw), quote.RawValue)
			require.Equal(t, math.NewInt(tc.wantRaw), quote.InputValue, "no fees configured")
			require.Equal(t, math.NewInt(tc.wantSpot), quote.NewSpotPrice)
			require.Equal(t, math.NewInt(tc.delta), quote.NewDelta)
		})
	}
}

func TestLinearSell(t *testing.T) {
	tests := []struct {
		name        string
		spot, delta int64
		numItems    uint64
		wantRaw     int64
		wantSpot    int64
	}{
		{"single item", 100, 10, 1, 100, 90},
		{"three items descend the ladder", 100, 10, 3, 270, 70},
		{"flat curve", 100, 0, 5, 500, 100},
		// 100/30 = 3 full steps fit, so 4 items sell for 100+70+40+10
		// and the price floors at zero.
		{"clamped below zero", 100, 30, 10, 220, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := types.GetSellInfo(types.CurveLinear,
				math.NewInt(tc.spot), math.NewInt(tc.delta), tc.numItems, zeroDec, zeroDec)
			require.NoError(t, err)
			require.Equal(t, math.NewInt(tc.wantRaw), quote.RawValue)
			require.Equal(t, math.NewInt(tc.wantRaw), quote.OutputValue)
			require.Equal(t, math.NewInt(tc.wantSpot), quote.NewSpotPrice)
		})
	}
}

func TestExponentialBuy(t *testing.T) {
	spot := wad                   // 1.0
	delta := wadMul(wad, 11, 10)  // 1.1

	quote, err := types.GetBuyInfo(types.CurveExponential, spot, delta, 1, zeroDec, zeroDec)
	require.NoError(t, err)
	require.Equal(t, wadMul(wad, 11, 10), quote.NewSpotPrice, "one item multiplies spot by delta")
	require.Equal(t, wad, quote.RawValue, "first item costs the current spot")

	// Two items: spot + spot*delta = 1.0 + 1.1, spot rises to delta^2.
	quote, err = types.GetBuyInfo(types.CurveExponential, spot, delta, 2, zeroDec, zeroDec)
	require.NoError(t, err)
	require.Equal(t, wadMul(wad, 121, 100), quote.NewSpotPrice)
	require.Equal(t, wadMul(wad, 21, 10), quote.RawValue)
}

func TestExponentialSell(t *testing.T) {
	spot := wadMul(wad, 11, 10)  // 1.1
	delta := wadMul(wad, 11, 10) // 1.1

	// The first item sells at spot/delta = 1.0 and spot falls to 1.0.
	quote, err := types.GetSellInfo(types.CurveExponential, spot, delta, 1, zeroDec, zeroDec)
	require.NoError(t, err)
	require.Equal(t, wad, quote.NewSpotPrice)
	require.Equal(t, wad, quote.RawValue)
}

func TestExponentialItemCeiling(t *testing.T) {
	delta := wadMul(wad, 11, 10)

	_, err := types.GetBuyInfo(types.CurveExponential, wad, delta, types.MaxExponentialItems+1, zeroDec, zeroDec)
	require.ErrorIs(t, err, types.ErrTooManyItems)

	_, err = types.GetSellInfo(types.CurveExponential, wad, delta, types.MaxExponentialItems+1, zeroDec, zeroDec)
	require.ErrorIs(t, err, types.ErrTooManyItems)
}

func TestXykQuotes(t *testing.T) {
	// Virtual reserves: 1000 tokens, 10 assets.
	spot := math.NewInt(1_000)
	delta := math.NewInt(10)

	buy, err := types.GetBuyInfo(types.CurveXyk, spot, delta, 2, zeroDec, zeroDec)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(250), buy.RawValue, "2*1000/(10-2)")
	require.Equal(t, math.NewInt(1_250), buy.NewSpotPrice)
	require.Equal(t, math.NewInt(8), buy.NewDelta)

	sell, err := types.GetSellInfo(types.CurveXyk, spot, delta, 2, zeroDec, zeroDec)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(166), sell.RawValue, "2*1000/(10+2) floored")
	require.Equal(t, math.NewInt(834), sell.NewSpotPrice)
	require.Equal(t, math.NewInt(12), sell.NewDelta)

	// Buying the whole virtual reserve is unpriceable.
	_, err = types.GetBuyInfo(types.CurveXyk, spot, delta, 10, zeroDec, zeroDec)
	require.ErrorIs(t, err, types.ErrTooManyItems)
}

func TestQuoteFees(t *testing.T) {
	fee := math.LegacyNewDecWithPrec(10, 2)          // 10% LP fee
	protocolFee := math.LegacyNewDecWithPrec(1, 2)   // 1%

	buy, err := types.GetBuyInfo(types.CurveLinear,
		math.NewInt(1_000), math.NewInt(0), 1, fee, protocolFee)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000), buy.RawValue)
	require.Equal(t, math.NewInt(10), buy.ProtocolFee)
	// Both fees are cut from the raw quote, never from each other.
	require.Equal(t, math.NewInt(1_110), buy.InputValue)

	sell, err := types.GetSellInfo(types.CurveLinear,
		math.NewInt(1_000), math.NewInt(0), 1, fee, protocolFee)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10), sell.ProtocolFee)
	require.Equal(t, math.NewInt(890), sell.OutputValue)
}

func TestQuoteRejections(t *testing.T) {
	_, err := types.GetBuyInfo(types.CurveLinear, math.NewInt(100), math.NewInt(1), 0, zeroDec, zeroDec)
	require.ErrorIs(t, err, types.ErrZeroItems)

	_, err = types.GetBuyInfo(types.CurveType("cubic"), math.NewInt(100), math.NewInt(1), 1, zeroDec, zeroDec)
	require.ErrorIs(t, err, types.ErrInvalidCurve)

	_, err = types.GetBuyInfo(types.CurveExponential, wad, wad, 1, zeroDec, zeroDec)
	require.ErrorIs(t, err, types.ErrDeltaTooSmall, "multiplicative delta of exactly 1")

	_, err = types.GetBuyInfo(types.CurveExponential, math.ZeroInt(), wadMul(wad, 11, 10), 1, zeroDec, zeroDec)
	require.ErrorIs(t, err, types.ErrInvalidSpotPrice)

	_, err = types.GetBuyInfo(types.CurveXyk, math.NewInt(100), math.ZeroInt(), 1, zeroDec, zeroDec)
	require.ErrorIs(t, err, types.ErrDeltaTooSmall)
}

func TestBuyOverflowFailsClosed(t *testing.T) {
	huge := math.NewIntFromBigInt(types.Wad.BigInt()).MulRaw(1 << 62).MulRaw(1 << 62).MulRaw(1 << 62)

	_, err := types.GetBuyInfo(types.CurveLinear, huge, huge, 1_000_000, zeroDec, zeroDec)
	require.ErrorIs(t, err, types.ErrSpotPriceOverflow)
}

func TestLinearRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		spot := math.NewInt(rapid.Int64Range(0, 1<<40).Draw(rt, "spot"))
		delta := math.NewInt(rapid.Int64Range(0, 1<<20).Draw(rt, "delta"))
		n := rapid.Uint64Range(1, 100).Draw(rt, "numItems")

		buy, err := types.GetBuyInfo(types.CurveLinear, spot, delta, n, zeroDec, zeroDec)
		require.NoError(rt, err)

		// Selling the same count right after buying it retraces the exact
		// ladder: the pre-fee values cancel and spot returns to the start.
		sell, err := types.GetSellInfo(types.CurveLinear, buy.NewSpotPrice, buy.NewDelta, n, zeroDec, zeroDec)
		require.NoError(rt, err)
		require.Equal(rt, buy.RawValue, sell.RawValue)
		require.Equal(rt, spot, sell.NewSpotPrice)
	})
}

func TestExponentialRoundTripBounded(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		spot := wad.MulRaw(rapid.Int64Range(1, 1_000).Draw(rt, "spotWads"))
		delta := wad.Add(math.NewInt(rapid.Int64Range(1, 1e18-1).Draw(rt, "deltaFrac")))
		n := rapid.Uint64Range(1, 16).Draw(rt, "numItems")

		buy, err := types.GetBuyInfo(types.CurveExponential, spot, delta, n, zeroDec, zeroDec)
		if err != nil {
			rt.Skip()
		}
		if !buy.NewSpotPrice.IsPositive() {
			rt.Skip()
		}

		sell, err := types.GetSellInfo(types.CurveExponential, buy.NewSpotPrice, delta, n, zeroDec, zeroDec)
		require.NoError(rt, err)

		// Wad-scale flooring only ever loses value, never mints it.
		require.True(rt, sell.RawValue.LTE(buy.RawValue), "sell %s exceeds buy %s", sell.RawValue, buy.RawValue)
		require.True(rt, sell.NewSpotPrice.LTE(spot))
	})
}

func TestXykRoundTripConservation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		spot := math.NewInt(rapid.Int64Range(1, 1<<40).Draw(rt, "spot"))
		delta := math.NewInt(rapid.Int64Range(2, 1<<20).Draw(rt, "delta"))
		n := rapid.Uint64Range(1, uint64(delta.Int64()-1)).Draw(rt, "numItems")

		buy, err := types.GetBuyInfo(types.CurveXyk, spot, delta, n, zeroDec, zeroDec)
		require.NoError(rt, err)

		sell, err := types.GetSellInfo(types.CurveXyk, buy.NewSpotPrice, buy.NewDelta, n, zeroDec, zeroDec)
		require.NoError(rt, err)

		// Integer flooring keeps the round trip at or below break-even for
		// the trader, and the virtual asset reserve returns exactly.
		require.True(rt, sell.RawValue.LTE(buy.RawValue))
		require.Equal(rt, delta, sell.NewDelta)
	})
}

func TestValidateDelta(t *testing.T) {
	require.NoError(t, types.ValidateDelta(types.CurveLinear, math.ZeroInt()))
	require.Error(t, types.ValidateDelta(types.CurveLinear, math.NewInt(-1)))
	require.NoError(t, types.ValidateDelta(types.CurveExponential, wad.AddRaw(1)))
	require.Error(t, types.ValidateDelta(types.CurveExponential, wad))
	require.NoError(t, types.ValidateDelta(types.CurveXyk, math.OneInt()))
	require.Error(t, types.ValidateDelta(types.CurveXyk, math.ZeroInt()))
}
