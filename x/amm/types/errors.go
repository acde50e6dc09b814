package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrInvalidCurve         = errors.Register(ModuleName, 1, "invalid bonding curve")
	ErrDeltaTooSmall        = errors.Register(ModuleName, 2, "delta below curve minimum")
	ErrInvalidSpotPrice     = errors.Register(ModuleName, 3, "invalid spot price")
	ErrSpotPriceOverflow    = errors.Register(ModuleName, 4, "spot price overflow")
	ErrZeroItems            = errors.Register(ModuleName, 5, "item count cannot be zero")
	ErrTooManyItems         = errors.Register(ModuleName, 6, "item count exceeds curve ceiling")
	ErrPairNotFound         = errors.Register(ModuleName, 7, "pair not found")
	ErrUnauthorized         = errors.Register(ModuleName, 8, "unauthorized")
	ErrInvalidPoolType      = errors.Register(ModuleName, 9, "invalid pool type")
	ErrInsufficientReserve  = errors.Register(ModuleName, 10, "insufficient pair reserve")
	ErrSlippageExceeded     = errors.Register(ModuleName, 11, "slippage bound exceeded")
	ErrRouterNotWhitelisted = errors.Register(ModuleName, 12, "router not whitelisted")
	ErrCurveNotWhitelisted  = errors.Register(ModuleName, 13, "curve not whitelisted")
	ErrInvalidAmount        = errors.Register(ModuleName, 14, "invalid amount")
	ErrInvalidAddress       = errors.Register(ModuleName, 15, "invalid address")
	ErrReentrancy           = errors.Register(ModuleName, 16, "reentrant call")
	ErrInvalidState         = errors.Register(ModuleName, 17, "invalid pair state")
	ErrFeeTooHigh           = errors.Register(ModuleName, 18, "fee rate exceeds ceiling")
	ErrAssetNotInPair       = errors.Register(ModuleName, 19, "asset not escrowed by pair")
	ErrInsufficientFunds    = errors.Register(ModuleName, 20, "insufficient funds")
)
