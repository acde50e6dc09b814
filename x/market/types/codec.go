package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterCodec registers the module's concrete message types on the amino
// codec used for sign bytes.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgList{}, "market/MsgList", nil)
	cdc.RegisterConcrete(&MsgListMany{}, "market/MsgListMany", nil)
	cdc.RegisterConcrete(&MsgEditListing{}, "market/MsgEditListing", nil)
	cdc.RegisterConcrete(&MsgCancelListing{}, "market/MsgCancelListing", nil)
	cdc.RegisterConcrete(&MsgBuy{}, "market/MsgBuy", nil)
	cdc.RegisterConcrete(&MsgBuyMany{}, "market/MsgBuyMany", nil)
	cdc.RegisterConcrete(&MsgMakeOffer{}, "market/MsgMakeOffer", nil)
	cdc.RegisterConcrete(&MsgCancelOffer{}, "market/MsgCancelOffer", nil)
	cdc.RegisterConcrete(&MsgTakeOffer{}, "market/MsgTakeOffer", nil)
	cdc.RegisterConcrete(&MsgMatchOffer{}, "market/MsgMatchOffer", nil)
	cdc.RegisterConcrete(&MsgSetRoyalty{}, "market/MsgSetRoyalty", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "market/MsgUpdateParams", nil)
	cdc.RegisterConcrete(&MsgCreatePage{}, "market/MsgCreatePage", nil)
	cdc.RegisterConcrete(&MsgMint{}, "market/MsgMint", nil)
	cdc.RegisterConcrete(&MsgWithdrawProceeds{}, "market/MsgWithdrawProceeds", nil)
	cdc.RegisterConcrete(&MsgInitiateRedemption{}, "market/MsgInitiateRedemption", nil)
	cdc.RegisterConcrete(&MsgFulfillRedemption{}, "market/MsgFulfillRedemption", nil)
}

// ModuleCdc is the module-level amino codec
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}
