package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the transaction-handling surface of the amm module.
type MsgServer interface {
	CreatePair(ctx context.Context, msg *MsgCreatePair) (*MsgCreatePairResponse, error)
	DepositTokens(ctx context.Context, msg *MsgDepositTokens) (*MsgDepositTokensResponse, error)
	DepositAssets(ctx context.Context, msg *MsgDepositAssets) (*MsgDepositAssetsResponse, error)
	WithdrawTokens(ctx context.Context, msg *MsgWithdrawTokens) (*MsgWithdrawTokensResponse, error)
	WithdrawAssets(ctx context.Context, msg *MsgWithdrawAssets) (*MsgWithdrawAssetsResponse, error)
	SwapTokensForAssets(ctx context.Context, msg *MsgSwapTokensForAssets) (*MsgSwapTokensForAssetsResponse, error)
	SwapAssetsForTokens(ctx context.Context, msg *MsgSwapAssetsForTokens) (*MsgSwapAssetsForTokensResponse, error)
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// MsgCreatePairResponse returns the stable id of the new pair slot.
type MsgCreatePairResponse struct {
	PairId uint64 `json:"pair_id"`
}

// MsgDepositTokensResponse is the response for MsgDepositTokens
type MsgDepositTokensResponse struct{}

// MsgDepositAssetsResponse is the response for MsgDepositAssets
type MsgDepositAssetsResponse struct{}

// MsgWithdrawTokensResponse is the response for MsgWithdrawTokens
type MsgWithdrawTokensResponse struct{}

// MsgWithdrawAssetsResponse is the response for MsgWithdrawAssets
type MsgWithdrawAssetsResponse struct{}

// MsgSwapTokensForAssetsResponse is the response for MsgSwapTokensForAssets
type MsgSwapTokensForAssetsResponse struct {
	InputValue  math.Int `json:"input_value"`
	ProtocolFee math.Int `json:"protocol_fee"`
}

// MsgSwapAssetsForTokensResponse is the response for MsgSwapAssetsForTokens
type MsgSwapAssetsForTokensResponse struct {
	OutputValue math.Int `json:"output_value"`
	ProtocolFee math.Int `json:"protocol_fee"`
}

// MsgUpdateParamsResponse is the response for MsgUpdateParams
type MsgUpdateParamsResponse struct{}
