package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterCodec registers the module's concrete message types on the amino
// codec used for sign bytes.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePair{}, "amm/MsgCreatePair", nil)
	cdc.RegisterConcrete(&MsgDepositTokens{}, "amm/MsgDepositTokens", nil)
	cdc.RegisterConcrete(&MsgDepositAssets{}, "amm/MsgDepositAssets", nil)
	cdc.RegisterConcrete(&MsgWithdrawTokens{}, "amm/MsgWithdrawTokens", nil)
	cdc.RegisterConcrete(&MsgWithdrawAssets{}, "amm/MsgWithdrawAssets", nil)
	cdc.RegisterConcrete(&MsgSwapTokensForAssets{}, "amm/MsgSwapTokensForAssets", nil)
	cdc.RegisterConcrete(&MsgSwapAssetsForTokens{}, "amm/MsgSwapAssetsForTokens", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "amm/MsgUpdateParams", nil)
}

// ModuleCdc is the module-level amino codec
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}
