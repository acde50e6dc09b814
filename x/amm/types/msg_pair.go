package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgCreatePair allocates a new pair slot and escrows the initial deposits.
type MsgCreatePair struct {
	Owner          string         `json:"owner"`
	PoolType       PoolType       `json:"pool_type"`
	CurveType      CurveType      `json:"curve_type"`
	SpotPrice      math.Int       `json:"spot_price"`
	Delta          math.Int       `json:"delta"`
	Fee            math.LegacyDec `json:"fee"`
	AssetRecipient string         `json:"asset_recipient,omitempty"`
	ClassId        string         `json:"class_id"`
	Denom          string         `json:"denom"`
	TokenDeposit   math.Int       `json:"token_deposit"`
	AssetIds       []string       `json:"asset_ids"`
}

// Route implements the legacy message routing interface
func (msg MsgCreatePair) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgCreatePair) Type() string { return "create_pair" }

// GetSigners returns the expected signers of the message
func (msg MsgCreatePair) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgCreatePair) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgCreatePair) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
	}
	if msg.AssetRecipient != "" {
		if _, err := sdk.AccAddressFromBech32(msg.AssetRecipient); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid asset recipient: %s", err)
		}
	}
	if msg.TokenDeposit.IsNil() || msg.TokenDeposit.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "token deposit cannot be negative")
	}
	pair := Pair{
		Owner:          msg.Owner,
		PoolType:       msg.PoolType,
		CurveType:      msg.CurveType,
		SpotPrice:      msg.SpotPrice,
		Delta:          msg.Delta,
		Fee:            msg.Fee,
		AssetRecipient: msg.AssetRecipient,
		ClassId:        msg.ClassId,
		Denom:          msg.Denom,
		TokenReserve:   msg.TokenDeposit,
		AssetIds:       msg.AssetIds,
	}
	return pair.Validate()
}

// MsgDepositTokens adds value to a pair's token reserve. Owner-only.
type MsgDepositTokens struct {
	Owner  string   `json:"owner"`
	PairId uint64   `json:"pair_id"`
	Amount math.Int `json:"amount"`
}

// Route implements the legacy message routing interface
func (msg MsgDepositTokens) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgDepositTokens) Type() string { return "deposit_tokens" }

// GetSigners returns the expected signers of the message
func (msg MsgDepositTokens) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgDepositTokens) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgDepositTokens) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "deposit amount must be positive")
	}
	return nil
}

// MsgDepositAssets escrows additional assets with a pair. Owner-only.
type MsgDepositAssets struct {
	Owner    string   `json:"owner"`
	PairId   uint64   `json:"pair_id"`
	AssetIds []string `json:"asset_ids"`
}

// Route implements the legacy message routing interface
func (msg MsgDepositAssets) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgDepositAssets) Type() string { return "deposit_assets" }

// GetSigners returns the expected signers of the message
func (msg MsgDepositAssets) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgDepositAssets) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgDepositAssets) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
	}
	if len(msg.AssetIds) == 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "asset id list cannot be empty")
	}
	for _, id := range msg.AssetIds {
		if id == "" {
			return sdkerrors.Wrap(ErrInvalidState, "asset id cannot be empty")
		}
	}
	return nil
}

// MsgWithdrawTokens drains value from a pair's token reserve. Owner-only.
type MsgWithdrawTokens struct {
	Owner  string   `json:"owner"`
	PairId uint64   `json:"pair_id"`
	Amount math.Int `json:"amount"`
}

// Route implements the legacy message routing interface
func (msg MsgWithdrawTokens) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgWithdrawTokens) Type() string { return "withdraw_tokens" }

// GetSigners returns the expected signers of the message
func (msg MsgWithdrawTokens) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgWithdrawTokens) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgWithdrawTokens) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "withdrawal amount must be positive")
	}
	return nil
}

// MsgWithdrawAssets returns escrowed assets to the pair owner. Owner-only.
type MsgWithdrawAssets struct {
	Owner    string   `json:"owner"`
	PairId   uint64   `json:"pair_id"`
	AssetIds []string `json:"asset_ids"`
}

// Route implements the legacy message routing interface
func (msg MsgWithdrawAssets) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgWithdrawAssets) Type() string { return "withdraw_assets" }

// GetSigners returns the expected signers of the message
func (msg MsgWithdrawAssets) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgWithdrawAssets) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgWithdrawAssets) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
	}
	if len(msg.AssetIds) == 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "asset id list cannot be empty")
	}
	for _, id := range msg.AssetIds {
		if id == "" {
			return sdkerrors.Wrap(ErrInvalidState, "asset id cannot be empty")
		}
	}
	return nil
}
