package types

import (
	"cosmossdk.io/math"
)

// MaxProtocolFeeMultiplier caps the global protocol fee at 10%.
var MaxProtocolFeeMultiplier = math.LegacyNewDecWithPrec(10, 2)

// Params holds the amm module configuration: the global protocol fee, the
// curve whitelist and the router whitelist consulted on every swap.
type Params struct {
	ProtocolFeeMultiplier math.LegacyDec `json:"protocol_fee_multiplier"`
	ProtocolFeeRecipient  string         `json:"protocol_fee_recipient"`
	WhitelistedCurves     []CurveType    `json:"whitelisted_curves"`
	WhitelistedRouters    []string       `json:"whitelisted_routers"`
}

// DefaultParams returns the default amm parameters: a zero protocol fee and
// every curve kind whitelisted.
func DefaultParams() Params {
	return Params{
		ProtocolFeeMultiplier: math.LegacyZeroDec(),
		ProtocolFeeRecipient:  "",
		WhitelistedCurves:     []CurveType{CurveLinear, CurveExponential, CurveXyk},
		WhitelistedRouters:    []string{},
	}
}

// Validate checks parameter consistency. Rejection happens here, at
// configuration time, never at trade time.
func (p Params) Validate() error {
	if p.ProtocolFeeMultiplier.IsNil() || p.ProtocolFeeMultiplier.IsNegative() {
		return ErrInvalidAmount.Wrap("protocol fee multiplier cannot be negative")
	}
	if p.ProtocolFeeMultiplier.GT(MaxProtocolFeeMultiplier) {
		return ErrFeeTooHigh.Wrapf("protocol fee multiplier %s exceeds ceiling %s",
			p.ProtocolFeeMultiplier, MaxProtocolFeeMultiplier)
	}
	if p.ProtocolFeeMultiplier.IsPositive() && p.ProtocolFeeRecipient == "" {
		return ErrInvalidAddress.Wrap("protocol fee recipient required for non-zero multiplier")
	}
	seen := make(map[CurveType]struct{}, len(p.WhitelistedCurves))
	for _, curve := range p.WhitelistedCurves {
		if err := curve.Validate(); err != nil {
			return err
		}
		if _, dup := seen[curve]; dup {
			return ErrInvalidCurve.Wrapf("duplicate whitelisted curve %q", curve)
		}
		seen[curve] = struct{}{}
	}
	routers := make(map[string]struct{}, len(p.WhitelistedRouters))
	for _, router := range p.WhitelistedRouters {
		if router == "" {
			return ErrInvalidAddress.Wrap("whitelisted router cannot be empty")
		}
		if _, dup := routers[router]; dup {
			return ErrInvalidAddress.Wrapf("duplicate whitelisted router %s", router)
		}
		routers[router] = struct{}{}
	}
	return nil
}

// CurveWhitelisted reports whether a curve kind may back new pairs.
func (p Params) CurveWhitelisted(curve CurveType) bool {
	for _, c := range p.WhitelistedCurves {
		if c == curve {
			return true
		}
	}
	return false
}

// RouterWhitelisted reports whether an address may route swaps on behalf of
// traders.
func (p Params) RouterWhitelisted(router string) bool {
	for _, r := range p.WhitelistedRouters {
		if r == router {
			return true
		}
	}
	return false
}
