package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgList defines a message to list an NFT at a fixed price
type MsgList struct {
	Seller  string   `json:"seller"`
	ClassId string   `json:"class_id"`
	NftId   string   `json:"nft_id"`
	Price   math.Int `json:"price"`
}

// NewMsgList creates a new MsgList instance
func NewMsgList(seller, classId, nftId string, price math.Int) *MsgList {
	return &MsgList{Seller: seller, ClassId: classId, NftId: nftId, Price: price}
}

// Route implements the legacy message routing interface
func (msg MsgList) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgList) Type() string { return "list" }

// GetSigners returns the expected signers of the message
func (msg MsgList) GetSigners() []sdk.AccAddress {
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{seller}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgList) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgList) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Seller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid seller address: %s", err)
	}
	if msg.ClassId == "" || msg.NftId == "" {
		return sdkerrors.Wrap(ErrInvalidState, "class id and nft id cannot be empty")
	}
	if msg.Price.IsNil() || !msg.Price.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidPrice, "price must be positive")
	}
	return nil
}

// MsgListMany defines a message to list a batch of NFTs in one call
type MsgListMany struct {
	Seller  string     `json:"seller"`
	ClassId string     `json:"class_id"`
	NftIds  []string   `json:"nft_ids"`
	Prices  []math.Int `json:"prices"`
}

// NewMsgListMany creates a new MsgListMany instance
func NewMsgListMany(seller, classId string, nftIds []string, prices []math.Int) *MsgListMany {
	return &MsgListMany{Seller: seller, ClassId: classId, NftIds: nftIds, Prices: prices}
}

// Route implements the legacy message routing interface
func (msg MsgListMany) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgListMany) Type() string { return "list_many" }

// GetSigners returns the expected signers of the message
func (msg MsgListMany) GetSigners() []sdk.AccAddress {
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{seller}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgListMany) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgListMany) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Seller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid seller address: %s", err)
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
	if len(msg.NftIds) != len(msg.Prices) {
		return sdkerrors.Wrapf(ErrMismatchedLengths, "%d nft ids vs %d prices", len(msg.NftIds), len(msg.Prices))
	}
	for i, price := range msg.Prices {
		if price.IsNil() || !price.IsPositive() {
			return sdkerrors.Wrapf(ErrInvalidPrice, "price at index %d must be positive", i)
		}
	}
	return nil
}

// MsgEditListing defines a message to change the price of an active listing,
// optionally handing the listing to a new seller.
type MsgEditListing struct {
	Seller    string   `json:"seller"`
	ClassId   string   `json:"class_id"`
	NftId     string   `json:"nft_id"`
	NewPrice  math.Int `json:"new_price"`
	NewSeller string   `json:"new_seller,omitempty"`
}

// NewMsgEditListing creates a new MsgEditListing instance
func NewMsgEditListing(seller, classId, nftId string, newPrice math.Int, newSeller string) *MsgEditListing {
	return &MsgEditListing{Seller: seller, ClassId: classId, NftId: nftId, NewPrice: newPrice, NewSeller: newSeller}
}

// Route implements the legacy message routing interface
func (msg MsgEditListing) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgEditListing) Type() string { return "edit_listing" }

// GetSigners returns the expected signers of the message
func (msg MsgEditListing) GetSigners() []sdk.AccAddress {
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{seller}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgEditListing) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgEditListing) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Seller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid seller address: %s", err)
	}
	if msg.ClassId == "" || msg.NftId == "" {
		return sdkerrors.Wrap(ErrInvalidState, "class id and nft id cannot be empty")
	}
	if msg.NewPrice.IsNil() || !msg.NewPrice.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidPrice, "new price must be positive")
	}
	if msg.NewSeller != "" {
		if _, err := sdk.AccAddressFromBech32(msg.NewSeller); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid new seller address: %s", err)
		}
	}
	return nil
}

// MsgCancelListing defines a message to cancel an active listing and return
// the escrowed NFT to the seller.
type MsgCancelListing struct {
	Seller  string `json:"seller"`
	ClassId string `json:"class_id"`
	NftId   string `json:"nft_id"`
}

// NewMsgCancelListing creates a new MsgCancelListing instance
func NewMsgCancelListing(seller, classId, nftId string) *MsgCancelListing {
	return &MsgCancelListing{Seller: seller, ClassId: classId, NftId: nftId}
}

// Route implements the legacy message routing interface
func (msg MsgCancelListing) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgCancelListing) Type() string { return "cancel_listing" }

// GetSigners returns the expected signers of the message
func (msg MsgCancelListing) GetSigners() []sdk.AccAddress {
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{seller}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgCancelListing) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgCancelListing) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Seller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid seller address: %s", err)
	}
	if msg.ClassId == "" || msg.NftId == "" {
		return sdkerrors.Wrap(ErrInvalidState, "class id and nft id cannot be empty")
	}
	return nil
}
