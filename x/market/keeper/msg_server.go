package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/moon-chain/moon/x/market/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the market MsgServer
// interface for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (k msgServer) List(ctx context.Context, msg *types.MsgList) (*types.MsgListResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("seller: %s", err)
	}
	if err := k.Keeper.List(ctx, seller, msg.ClassId, msg.NftId, msg.Price); err != nil {
		return nil, err
	}
	return &types.MsgListResponse{}, nil
}

func (k msgServer) ListMany(ctx context.Context, msg *types.MsgListMany) (*types.MsgListManyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("seller: %s", err)
	}
	if err := k.Keeper.ListMany(ctx, seller, msg.ClassId, msg.NftIds, msg.Prices); err != nil {
		return nil, err
	}
	return &types.MsgListManyResponse{Listed: uint64(len(msg.NftIds))}, nil
}

func (k msgServer) EditListing(ctx context.Context, msg *types.MsgEditListing) (*types.MsgEditListingResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("seller: %s", err)
	}
	if err := k.Keeper.EditListing(ctx, seller, msg.ClassId, msg.NftId, msg.NewPrice, msg.NewSeller); err != nil {
		return nil, err
	}
	return &types.MsgEditListingResponse{}, nil
}

func (k msgServer) CancelListing(ctx context.Context, msg *types.MsgCancelListing) (*types.MsgCancelListingResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("seller: %s", err)
	}
	if err := k.Keeper.CancelListing(ctx, seller, msg.ClassId, msg.NftId); err != nil {
		return nil, err
	}
	return &types.MsgCancelListingResponse{}, nil
}

func (k msgServer) Buy(ctx context.Context, msg *types.MsgBuy) (*types.MsgBuyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("buyer: %s", err)
	}
	proceeds, err := k.Keeper.Buy(ctx, buyer, msg.ClassId, msg.NftId, msg.Payment)
	if err != nil {
		return nil, err
	}
	return &types.MsgBuyResponse{Price: proceeds.Price, Fee: proceeds.ProtocolFee}, nil
}

func (k msgServer) BuyMany(ctx context.Context, msg *types.MsgBuyMany) (*types.MsgBuyManyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("buyer: %s", err)
	}
	totalPrice, totalFee, err := k.Keeper.BuyMany(ctx, buyer, msg.ClassId, msg.NftIds, msg.Payment)
	if err != nil {
		return nil, err
	}
	return &types.MsgBuyManyResponse{TotalPrice: totalPrice, TotalFee: totalFee}, nil
}

func (k msgServer) MakeOffer(ctx context.Context, msg *types.MsgMakeOffer) (*types.MsgMakeOfferResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	bidder, err := sdk.AccAddressFromBech32(msg.Bidder)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("bidder: %s", err)
	}
	index, err := k.Keeper.MakeOffer(ctx, bidder, msg.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgMakeOfferResponse{Index: index}, nil
}

func (k msgServer) CancelOffer(ctx context.Context, msg *types.MsgCancelOffer) (*types.MsgCancelOfferResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	bidder, err := sdk.AccAddressFromBech32(msg.Bidder)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("bidder: %s", err)
	}
	if err := k.Keeper.CancelOffer(ctx, bidder, msg.Amount, msg.Index); err != nil {
		return nil, err
	}
	return &types.MsgCancelOfferResponse{}, nil
}

func (k msgServer) TakeOffer(ctx context.Context, msg *types.MsgTakeOffer) (*types.MsgTakeOfferResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("seller: %s", err)
	}
	net, err := k.Keeper.TakeOffer(ctx, seller, msg.ClassId, msg.NftId, msg.Amount, msg.Index)
	if err != nil {
		return nil, err
	}
	return &types.MsgTakeOfferResponse{NetProceeds: net}, nil
}

func (k msgServer) MatchOffer(ctx context.Context, msg *types.MsgMatchOffer) (*types.MsgMatchOfferResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	matcher, err := sdk.AccAddressFromBech32(msg.Matcher)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("matcher: %s", err)
	}
	spread, err := k.Keeper.MatchOffer(ctx, matcher, msg.ClassId, msg.NftId, msg.Amount, msg.Index)
	if err != nil {
		return nil, err
	}
	return &types.MsgMatchOfferResponse{Spread: spread}, nil
}

func (k msgServer) SetRoyalty(ctx context.Context, msg *types.MsgSetRoyalty) (*types.MsgSetRoyaltyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	royalty := types.Royalty{Recipient: msg.Recipient, FeeBps: msg.FeeBps}
	if err := k.Keeper.SetRoyalty(ctx, msg.Authority, msg.ClassId, royalty); err != nil {
		return nil, err
	}
	return &types.MsgSetRoyaltyResponse{}, nil
}

func (k msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := k.Keeper.UpdateParams(ctx, msg.Authority, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}

func (k msgServer) CreatePage(ctx context.Context, msg *types.MsgCreatePage) (*types.MsgCreatePageResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("creator: %s", err)
	}
	if err := k.Keeper.CreatePage(ctx, creator, msg.ClassId, msg.MintPrice); err != nil {
		return nil, err
	}
	return &types.MsgCreatePageResponse{}, nil
}

func (k msgServer) Mint(ctx context.Context, msg *types.MsgMint) (*types.MsgMintResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("buyer: %s", err)
	}
	if err := k.Keeper.Mint(ctx, buyer, msg.ClassId, msg.NftId, msg.Payment); err != nil {
		return nil, err
	}
	return &types.MsgMintResponse{}, nil
}

func (k msgServer) WithdrawProceeds(ctx context.Context, msg *types.MsgWithdrawProceeds) (*types.MsgWithdrawProceedsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("creator: %s", err)
	}
	amount, err := k.Keeper.WithdrawProceeds(ctx, creator, msg.ClassId)
	if err != nil {
		return nil, err
	}
	return &types.MsgWithdrawProceedsResponse{Amount: amount}, nil
}

func (k msgServer) InitiateRedemption(ctx context.Context, msg *types.MsgInitiateRedemption) (*types.MsgInitiateRedemptionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	holder, err := sdk.AccAddressFromBech32(msg.Holder)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("holder: %s", err)
	}
	unlockTime, err := k.Keeper.InitiateRedemption(ctx, holder, msg.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgInitiateRedemptionResponse{UnlockTime: unlockTime}, nil
}

func (k msgServer) FulfillRedemption(ctx context.Context, msg *types.MsgFulfillRedemption) (*types.MsgFulfillRedemptionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	holder, err := sdk.AccAddressFromBech32(msg.Holder)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("holder: %s", err)
	}
	amount, err := k.Keeper.FulfillRedemption(ctx, holder, msg.UnlockTime)
	if err != nil {
		return nil, err
	}
	return &types.MsgFulfillRedemptionResponse{Amount: amount}, nil
}
