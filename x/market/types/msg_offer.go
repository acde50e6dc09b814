package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgMakeOffer defines a message to place a collection-wide offer at a given
// amount. The amount is escrowed by the module until the offer is canceled,
// taken, or matched.
type MsgMakeOffer struct {
	Bidder string   `json:"bidder"`
	Amount math.Int `json:"amount"`
}

// NewMsgMakeOffer creates a new MsgMakeOffer instance
func NewMsgMakeOffer(bidder string, amount math.Int) *MsgMakeOffer {
	return &MsgMakeOffer{Bidder: bidder, Amount: amount}
}

// Route implements the legacy message routing interface
func (msg MsgMakeOffer) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgMakeOffer) Type() string { return "make_offer" }

// GetSigners returns the expected signers of the message
func (msg MsgMakeOffer) GetSigners() []sdk.AccAddress {
	bidder, err := sdk.AccAddressFromBech32(msg.Bidder)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{bidder}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgMakeOffer) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgMakeOffer) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Bidder); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid bidder address: %s", err)
	}
	if msg.Amount.IsNil() || msg.Amount.IsZero() {
		return sdkerrors.Wrap(ErrZeroValue, "offer amount cannot be zero")
	}
	if msg.Amount.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "offer amount cannot be negative")
	}
	return nil
}

// MsgCancelOffer defines a message to vacate an offer slot and refund the
// escrowed amount to its bidder.
type MsgCancelOffer struct {
	Bidder string   `json:"bidder"`
	Amount math.Int `json:"amount"`
	Index  uint64   `json:"index"`
}

// NewMsgCancelOffer creates a new MsgCancelOffer instance
func NewMsgCancelOffer(bidder string, amount math.Int, index uint64) *MsgCancelOffer {
	return &MsgCancelOffer{Bidder: bidder, Amount: amount, Index: index}
}

// Route implements the legacy message routing interface
func (msg MsgCancelOffer) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgCancelOffer) Type() string { return "cancel_offer" }

// GetSigners returns the expected signers of the message
func (msg MsgCancelOffer) GetSigners() []sdk.AccAddress {
	bidder, err := sdk.AccAddressFromBech32(msg.Bidder)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{bidder}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgCancelOffer) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgCancelOffer) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Bidder); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid bidder address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "offer amount must be positive")
	}
	return nil
}

// MsgTakeOffer defines a message for an NFT holder to accept a live offer,
// selling their NFT directly to the bidder.
type MsgTakeOffer struct {
	Seller  string   `json:"seller"`
	ClassId string   `json:"class_id"`
	NftId   string   `json:"nft_id"`
	Amount  math.Int `json:"amount"`
	Index   uint64   `json:"index"`
}

// NewMsgTakeOffer creates a new MsgTakeOffer instance
func NewMsgTakeOffer(seller, classId, nftId string, amount math.Int, index uint64) *MsgTakeOffer {
	return &MsgTakeOffer{Seller: seller, ClassId: classId, NftId: nftId, Amount: amount, Index: index}
}

// Route implements the legacy message routing interface
func (msg MsgTakeOffer) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgTakeOffer) Type() string { return "take_offer" }

// GetSigners returns the expected signers of the message
func (msg MsgTakeOffer) GetSigners() []sdk.AccAddress {
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{seller}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgTakeOffer) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgTakeOffer) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Seller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid seller address: %s", err)
	}
	if msg.ClassId == "" || msg.NftId == "" {
		return sdkerrors.Wrap(ErrInvalidState, "class id and nft id cannot be empty")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "offer amount must be positive")
	}
	return nil
}

// MsgMatchOffer defines a message joining a live listing with a live offer at
// or above the listing price. Any spread between the two is paid to the
// matcher as an incentive and is never subject to the protocol fee.
type MsgMatchOffer struct {
	Matcher string   `json:"matcher"`
	ClassId string   `json:"class_id"`
	NftId   string   `json:"nft_id"`
	Amount  math.Int `json:"amount"`
	Index   uint64   `json:"index"`
}

// NewMsgMatchOffer creates a new MsgMatchOffer instance
func NewMsgMatchOffer(matcher, classId, nftId string, amount math.Int, index uint64) *MsgMatchOffer {
	return &MsgMatchOffer{Matcher: matcher, ClassId: classId, NftId: nftId, Amount: amount, Index: index}
}

// Route implements the legacy message routing interface
func (msg MsgMatchOffer) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgMatchOffer) Type() string { return "match_offer" }

// GetSigners returns the expected signers of the message
func (msg MsgMatchOffer) GetSigners() []sdk.AccAddress {
	matcher, err := sdk.AccAddressFromBech32(msg.Matcher)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{matcher}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgMatchOffer) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgMatchOffer) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Matcher); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid matcher address: %s", err)
	}
	if msg.ClassId == "" || msg.NftId == "" {
		return sdkerrors.Wrap(ErrInvalidState, "class id and nft id cannot be empty")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "offer amount must be positive")
	}
	return nil
}
