package types

import (
	"cosmossdk.io/errors"
)

// Market module sentinel errors
var (
	ErrInvalidPrice       = errors.Register(ModuleName, 1, "invalid price")
	ErrUnauthorized       = errors.Register(ModuleName, 2, "unauthorized")
	ErrInvalidListing     = errors.Register(ModuleName, 3, "listing does not exist")
	ErrListingExists      = errors.Register(ModuleName, 4, "asset already listed")
	ErrZeroValue          = errors.Register(ModuleName, 5, "value cannot be zero")
	ErrInvalidOffer       = errors.Register(ModuleName, 6, "offer does not exist")
	ErrOfferTooLow        = errors.Register(ModuleName, 7, "offer below listing price")
	ErrInsufficientFunds  = errors.Register(ModuleName, 8, "insufficient funds")
	ErrInvalidAddress     = errors.Register(ModuleName, 9, "invalid address")
	ErrInvalidAmount      = errors.Register(ModuleName, 10, "invalid amount")
	ErrMismatchedLengths  = errors.Register(ModuleName, 11, "mismatched array lengths")
	ErrEmptyBatch         = errors.Register(ModuleName, 12, "batch cannot be empty")
	ErrBatchTooLarge      = errors.Register(ModuleName, 13, "batch exceeds maximum size")
	ErrFeeTooHigh         = errors.Register(ModuleName, 14, "fee rate exceeds ceiling")
	ErrReentrancy         = errors.Register(ModuleName, 15, "reentrant call")
	ErrInvalidState       = errors.Register(ModuleName, 16, "invalid ledger state")
	ErrPageExists         = errors.Register(ModuleName, 17, "page already exists")
	ErrPageNotFound       = errors.Register(ModuleName, 18, "page not found")
	ErrNothingToRedeem    = errors.Register(ModuleName, 19, "no pending redemption")
	ErrRedemptionLocked   = errors.Register(ModuleName, 20, "redemption still locked")
	ErrInvariantViolation = errors.Register(ModuleName, 21, "invariant violation")
)
