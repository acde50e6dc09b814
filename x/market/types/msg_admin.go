package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgSetRoyalty configures the collection-level royalty. Authority-gated.
type MsgSetRoyalty struct {
	Authority string `json:"authority"`
	ClassId   string `json:"class_id"`
	Recipient string `json:"recipient"`
	FeeBps    uint64 `json:"fee_bps"`
}

// Route implements the legacy message routing interface
func (msg MsgSetRoyalty) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgSetRoyalty) Type() string { return "set_royalty" }

// GetSigners returns the expected signers of the message
func (msg MsgSetRoyalty) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgSetRoyalty) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgSetRoyalty) ValidateBasic() error {
	if msg.Authority == "" {
		return sdkerrors.Wrap(ErrInvalidAddress, "authority cannot be empty")
	}
	if msg.ClassId == "" {
		return sdkerrors.Wrap(ErrInvalidState, "class id cannot be empty")
	}
	return Royalty{Recipient: msg.Recipient, FeeBps: msg.FeeBps}.Validate()
}

// MsgUpdateParams replaces the module parameters. Authority-gated.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// Route implements the legacy message routing interface
func (msg MsgUpdateParams) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgUpdateParams) Type() string { return "update_params" }

// GetSigners returns the expected signers of the message
func (msg MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgUpdateParams) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgUpdateParams) ValidateBasic() error {
	if msg.Authority == "" {
		return sdkerrors.Wrap(ErrInvalidAddress, "authority cannot be empty")
	}
	return msg.Params.Validate()
}

// MsgCreatePage opens a primary-sale page for a collection at a fixed mint
// price.
type MsgCreatePage struct {
	Creator   string   `json:"creator"`
	ClassId   string   `json:"class_id"`
	MintPrice math.Int `json:"mint_price"`
}

// Route implements the legacy message routing interface
func (msg MsgCreatePage) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgCreatePage) Type() string { return "create_page" }

// GetSigners returns the expected signers of the message
func (msg MsgCreatePage) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgCreatePage) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgCreatePage) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if msg.ClassId == "" {
		return sdkerrors.Wrap(ErrInvalidState, "class id cannot be empty")
	}
	if msg.MintPrice.IsNil() || !msg.MintPrice.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidPrice, "mint price must be positive")
	}
	return nil
}

// MsgMint buys a fresh NFT from a page at its fixed mint price.
type MsgMint struct {
	Buyer   string   `json:"buyer"`
	ClassId string   `json:"class_id"`
	NftId   string   `json:"nft_id"`
	Payment math.Int `json:"payment"`
}

// Route implements the legacy message routing interface
func (msg MsgMint) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgMint) Type() string { return "mint" }

// GetSigners returns the expected signers of the message
func (msg MsgMint) GetSigners() []sdk.AccAddress {
	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{buyer}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgMint) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgMint) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Buyer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid buyer address: %s", err)
	}
	if msg.ClassId == "" || msg.NftId == "" {
		return sdkerrors.Wrap(ErrInvalidState, "class id and nft id cannot be empty")
	}
	if msg.Payment.IsNil() || !msg.Payment.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "payment must be positive")
	}
	return nil
}

// MsgWithdrawProceeds drains accrued page proceeds to the page creator.
type MsgWithdrawProceeds struct {
	Creator string `json:"creator"`
	ClassId string `json:"class_id"`
}

// Route implements the legacy message routing interface
func (msg MsgWithdrawProceeds) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgWithdrawProceeds) Type() string { return "withdraw_proceeds" }

// GetSigners returns the expected signers of the message
func (msg MsgWithdrawProceeds) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgWithdrawProceeds) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgWithdrawProceeds) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if msg.ClassId == "" {
		return sdkerrors.Wrap(ErrInvalidState, "class id cannot be empty")
	}
	return nil
}

// MsgInitiateRedemption locks trade-denom value into the redemption queue,
// claimable once the configured lock period elapses.
type MsgInitiateRedemption struct {
	Holder string   `json:"holder"`
	Amount math.Int `json:"amount"`
}

// Route implements the legacy message routing interface
func (msg MsgInitiateRedemption) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgInitiateRedemption) Type() string { return "initiate_redemption" }

// GetSigners returns the expected signers of the message
func (msg MsgInitiateRedemption) GetSigners() []sdk.AccAddress {
	holder, err := sdk.AccAddressFromBech32(msg.Holder)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{holder}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgInitiateRedemption) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgInitiateRedemption) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Holder); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid holder address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroValue, "redemption amount must be positive")
	}
	return nil
}

// MsgFulfillRedemption claims an unlocked pending redemption.
type MsgFulfillRedemption struct {
	Holder     string `json:"holder"`
	UnlockTime int64  `json:"unlock_time"`
}

// Route implements the legacy message routing interface
func (msg MsgFulfillRedemption) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgFulfillRedemption) Type() string { return "fulfill_redemption" }

// GetSigners returns the expected signers of the message
func (msg MsgFulfillRedemption) GetSigners() []sdk.AccAddress {
	holder, err := sdk.AccAddressFromBech32(msg.Holder)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{holder}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgFulfillRedemption) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgFulfillRedemption) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Holder); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid holder address: %s", err)
	}
	if msg.UnlockTime <= 0 {
		return sdkerrors.Wrap(ErrInvalidState, "unlock time must be positive")
	}
	return nil
}
