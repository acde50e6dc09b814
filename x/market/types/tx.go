package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the transaction-handling surface of the market module.
type MsgServer interface {
	List(ctx context.Context, msg *MsgList) (*MsgListResponse, error)
	ListMany(ctx context.Context, msg *MsgListMany) (*MsgListManyResponse, error)
	EditListing(ctx context.Context, msg *MsgEditListing) (*MsgEditListingResponse, error)
	CancelListing(ctx context.Context, msg *MsgCancelListing) (*MsgCancelListingResponse, error)
	Buy(ctx context.Context, msg *MsgBuy) (*MsgBuyResponse, error)
	BuyMany(ctx context.Context, msg *MsgBuyMany) (*MsgBuyManyResponse, error)
	MakeOffer(ctx context.Context, msg *MsgMakeOffer) (*MsgMakeOfferResponse, error)
	CancelOffer(ctx context.Context, msg *MsgCancelOffer) (*MsgCancelOfferResponse, error)
	TakeOffer(ctx context.Context, msg *MsgTakeOffer) (*MsgTakeOfferResponse, error)
	MatchOffer(ctx context.Context, msg *MsgMatchOffer) (*MsgMatchOfferResponse, error)
	SetRoyalty(ctx context.Context, msg *MsgSetRoyalty) (*MsgSetRoyaltyResponse, error)
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
	CreatePage(ctx context.Context, msg *MsgCreatePage) (*MsgCreatePageResponse, error)
	Mint(ctx context.Context, msg *MsgMint) (*MsgMintResponse, error)
	WithdrawProceeds(ctx context.Context, msg *MsgWithdrawProceeds) (*MsgWithdrawProceedsResponse, error)
	InitiateRedemption(ctx context.Context, msg *MsgInitiateRedemption) (*MsgInitiateRedemptionResponse, error)
	FulfillRedemption(ctx context.Context, msg *MsgFulfillRedemption) (*MsgFulfillRedemptionResponse, error)
}

// MsgListResponse is the response for MsgList
type MsgListResponse struct{}

// MsgListManyResponse is the response for MsgListMany
type MsgListManyResponse struct {
	Listed uint64 `json:"listed"`
}

// MsgEditListingResponse is the response for MsgEditListing
type MsgEditListingResponse struct{}

// MsgCancelListingResponse is the response for MsgCancelListing
type MsgCancelListingResponse struct{}

// MsgBuyResponse is the response for MsgBuy
type MsgBuyResponse struct {
	Price math.Int `json:"price"`
	Fee   math.Int `json:"fee"`
}

// MsgBuyManyResponse is the response for MsgBuyMany
type MsgBuyManyResponse struct {
	TotalPrice math.Int `json:"total_price"`
	TotalFee   math.Int `json:"total_fee"`
}

// MsgMakeOfferResponse returns the stable slot index of the new offer.
type MsgMakeOfferResponse struct {
	Index uint64 `json:"index"`
}

// MsgCancelOfferResponse is the response for MsgCancelOffer
type MsgCancelOfferResponse struct{}

// MsgTakeOfferResponse is the response for MsgTakeOffer
type MsgTakeOfferResponse struct {
	NetProceeds math.Int `json:"net_proceeds"`
}

// MsgMatchOfferResponse is the response for MsgMatchOffer
type MsgMatchOfferResponse struct {
	Spread math.Int `json:"spread"`
}

// MsgSetRoyaltyResponse is the response for MsgSetRoyalty
type MsgSetRoyaltyResponse struct{}

// MsgUpdateParamsResponse is the response for MsgUpdateParams
type MsgUpdateParamsResponse struct{}

// MsgCreatePageResponse is the response for MsgCreatePage
type MsgCreatePageResponse struct{}

// MsgMintResponse is the response for MsgMint
type MsgMintResponse struct{}

// MsgWithdrawProceedsResponse is the response for MsgWithdrawProceeds
type MsgWithdrawProceedsResponse struct {
	Amount math.Int `json:"amount"`
}

// MsgInitiateRedemptionResponse returns the unlock timestamp of the entry.
type MsgInitiateRedemptionResponse struct {
	UnlockTime int64 `json:"unlock_time"`
}

// MsgFulfillRedemptionResponse is the response for MsgFulfillRedemption
type MsgFulfillRedemptionResponse struct {
	Amount math.Int `json:"amount"`
}
