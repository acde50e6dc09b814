package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgBuy defines a message to buy a listed NFT. Payment is the committed
// value sent with the purchase; it must cover the listing price.
type MsgBuy struct {
	Buyer   string   `json:"buyer"`
	ClassId string   `json:"class_id"`
	NftId   string   `json:"nft_id"`
	Payment math.Int `json:"payment"`
}

// NewMsgBuy creates a new MsgBuy instance
func NewMsgBuy(buyer, classId, nftId string, payment math.Int) *MsgBuy {
	return &MsgBuy{Buyer: buyer, ClassId: classId, NftId: nftId, Payment: payment}
}

// Route implements the legacy message routing interface
func (msg MsgBuy) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgBuy) Type() string { return "buy" }

// GetSigners returns the expected signers of the message
func (msg MsgBuy) GetSigners() []sdk.AccAddress {
	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{buyer}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgBuy) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgBuy) ValidateBasic() error {
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

// MsgBuyMany defines a message to buy a batch of listed NFTs with a single
// committed payment.
type MsgBuyMany struct {
	Buyer   string   `json:"buyer"`
	ClassId string   `json:"class_id"`
	NftIds  []string `json:"nft_ids"`
	Payment math.Int `json:"payment"`
}

// NewMsgBuyMany creates a new MsgBuyMany instance
func NewMsgBuyMany(buyer, classId string, nftIds []string, payment math.Int) *MsgBuyMany {
	return &MsgBuyMany{Buyer: buyer, ClassId: classId, NftIds: nftIds, Payment: payment}
}

// Route implements the legacy message routing interface
func (msg MsgBuyMany) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgBuyMany) Type() string { return "buy_many" }

// GetSigners returns the expected signers of the message
func (msg MsgBuyMany) GetSigners() []sdk.AccAddress {
	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{buyer}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgBuyMany) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgBuyMany) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Buyer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid buyer address: %s", err)
	}
	if msg.ClassId == "" {
		return sdkerrors.Wrap(ErrInvalidState, "class id cannot be empty")
	}
	if len(msg.NftIds) == 0 {
		return sdkerrors.Wrap(ErrEmptyBatch, "nft id list cannot be empty")
	}
	if len(msg.NftIds) > MaxBatchSize {
		return sdkerrors.Wrapf(ErrBatchTooLarge, "%d items exceeds maximum %d", len(msg.NftIds), MaxBatchSize)
	}
	if msg.Payment.IsNil() || !msg.Payment.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "payment must be positive")
	}
	return nil
}
