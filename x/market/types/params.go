package types

import (
	"cosmossdk.io/math"
)

// Params holds the market module configuration. Updates go through an
// explicit authority check on the keeper; all rate validation happens here,
// at configuration-set time, never on the trade path.
type Params struct {
	// TradeDenom is the native denom offers and payments are made in.
	TradeDenom string `json:"trade_denom"`

	// ProtocolFeeBps is the protocol fee rate over BpsDenominator.
	ProtocolFeeBps uint64 `json:"protocol_fee_bps"`

	// ProtocolFeeRecipient receives the protocol fee share of every sale.
	ProtocolFeeRecipient string `json:"protocol_fee_recipient"`

	// RedemptionLockSeconds is the delay before an initiated redemption
	// becomes claimable.
	RedemptionLockSeconds int64 `json:"redemption_lock_seconds"`

	// RewardsEnabled routes fee deposits through the rewards keeper when a
	// sale settles.
	RewardsEnabled bool `json:"rewards_enabled"`
}

// DefaultParams returns default parameters for the market module. The
// protocol fee starts at zero; enabling it requires configuring a recipient
// through governance in the same update.
func DefaultParams() Params {
	return Params{
		TradeDenom:            "umoon",
		ProtocolFeeBps:        0,
		ProtocolFeeRecipient:  "",
		RedemptionLockSeconds: 86_400, // 24h
		RewardsEnabled:        false,
	}
}

// Validate rejects misconfigured parameter sets.
func (p Params) Validate() error {
	if p.TradeDenom == "" {
		return ErrInvalidState.Wrap("trade denom cannot be empty")
	}
	if p.ProtocolFeeBps > MaxProtocolFeeBps {
		return ErrFeeTooHigh.Wrapf("protocol fee %d bps exceeds ceiling %d", p.ProtocolFeeBps, MaxProtocolFeeBps)
	}
	if p.ProtocolFeeBps > 0 && p.ProtocolFeeRecipient == "" {
		return ErrInvalidAddress.Wrap("protocol fee recipient required for non-zero rate")
	}
	// The protocol fee and the worst-case royalty are both taken from the
	// same base price; their combined rate must never exceed it.
	if p.ProtocolFeeBps+MaxRoyaltyFeeBpsCeiling > BpsDenominator {
		return ErrFeeTooHigh.Wrap("combined fee tiers exceed base price")
	}
	if p.RedemptionLockSeconds < 0 {
		return ErrInvalidState.Wrap("redemption lock cannot be negative")
	}
	return nil
}

// ComputeFee applies a basis-point rate to an amount with floor division.
// For any rate <= BpsDenominator the fee never exceeds the amount, and
// amount == fee + net exactly.
func ComputeFee(amount math.Int, feeBps uint64) (fee, net math.Int) {
	fee = amount.Mul(math.NewIntFromUint64(feeBps)).Quo(math.NewInt(BpsDenominator))
	net = amount.Sub(fee)
	return fee, net
}
