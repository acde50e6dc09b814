package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/moon-chain/moon/x/amm/types"
)

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	valid := types.Params{
		ProtocolFeeMultiplier: math.LegacyNewDecWithPrec(5, 2),
		ProtocolFeeRecipient:  "cosmos1recipient",
		WhitelistedCurves:     []types.CurveType{types.CurveLinear, types.CurveXyk},
		WhitelistedRouters:    []string{"cosmos1router"},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(p *types.Params)
	}{
		{"negative multiplier", func(p *types.Params) { p.ProtocolFeeMultiplier = math.LegacyNewDec(-1) }},
		{"multiplier above ceiling", func(p *types.Params) {
			p.ProtocolFeeMultiplier = types.MaxProtocolFeeMultiplier.Add(math.LegacySmallestDec())
		}},
		{"missing recipient", func(p *types.Params) { p.ProtocolFeeRecipient = "" }},
		{"unknown curve", func(p *types.Params) { p.WhitelistedCurves = []types.CurveType{"cubic"} }},
		{"duplicate curve", func(p *types.Params) {
			p.WhitelistedCurves = []types.CurveType{types.CurveLinear, types.CurveLinear}
		}},
		{"empty router", func(p *types.Params) { p.WhitelistedRouters = []string{""} }},
		{"duplicate router", func(p *types.Params) { p.WhitelistedRouters = []string{"r", "r"} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			require.Error(t, p.Validate())
		})
	}
}

func TestPairValidate(t *testing.T) {
	valid := types.Pair{
		Owner:        "cosmos1owner",
		PoolType:     types.PoolTypeTrade,
		CurveType:    types.CurveLinear,
		SpotPrice:    math.NewInt(1_000),
		Delta:        math.NewInt(100),
		Fee:          math.LegacyNewDecWithPrec(5, 2),
		ClassId:      "moonbirds",
		Denom:        "umoon",
		TokenReserve: math.ZeroInt(),
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(p *types.Pair)
	}{
		{"empty owner", func(p *types.Pair) { p.Owner = "" }},
		{"bad pool type", func(p *types.Pair) { p.PoolType = "hybrid" }},
		{"bad curve type", func(p *types.Pair) { p.CurveType = "cubic" }},
		{"empty class", func(p *types.Pair) { p.ClassId = "" }},
		{"empty denom", func(p *types.Pair) { p.Denom = "" }},
		{"nil fee", func(p *types.Pair) { p.Fee = math.LegacyDec{} }},
		{"fee on one-sided pool", func(p *types.Pair) { p.PoolType = types.PoolTypeNft }},
		{"fee above ceiling", func(p *types.Pair) { p.Fee = math.LegacyNewDecWithPrec(91, 2) }},
		{"negative reserve", func(p *types.Pair) { p.TokenReserve = math.NewInt(-1) }},
		{"negative spot", func(p *types.Pair) { p.SpotPrice = math.NewInt(-1) }},
		{"exponential delta too small", func(p *types.Pair) {
			p.Fee = math.LegacyZeroDec()
			p.CurveType = types.CurveExponential
			p.Delta = types.Wad
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			require.Error(t, p.Validate())
		})
	}
}

func TestPairHasAsset(t *testing.T) {
	pair := types.Pair{AssetIds: []string{"1", "2"}}
	require.True(t, pair.HasAsset("2"))
	require.False(t, pair.HasAsset("3"))
}
