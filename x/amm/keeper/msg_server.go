package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/moon-chain/moon/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the amm MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (k msgServer) CreatePair(ctx context.Context, msg *types.MsgCreatePair) (*types.MsgCreatePairResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("owner: %s", err)
	}
	pair := types.Pair{
		PoolType:       msg.PoolType,
		CurveType:      msg.CurveType,
		SpotPrice:      msg.SpotPrice,
		Delta:          msg.Delta,
		Fee:            msg.Fee,
		AssetRecipient: msg.AssetRecipient,
		ClassId:        msg.ClassId,
		Denom:          msg.Denom,
		AssetIds:       msg.AssetIds,
	}
	pairId, err := k.Keeper.CreatePair(ctx, owner, pair, msg.TokenDeposit)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreatePairResponse{PairId: pairId}, nil
}

func (k msgServer) DepositTokens(ctx context.Context, msg *types.MsgDepositTokens) (*types.MsgDepositTokensResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("owner: %s", err)
	}
	if err := k.Keeper.DepositTokens(ctx, owner, msg.PairId, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgDepositTokensResponse{}, nil
}

func (k msgServer) DepositAssets(ctx context.Context, msg *types.MsgDepositAssets) (*types.MsgDepositAssetsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("owner: %s", err)
	}
	if err := k.Keeper.DepositAssets(ctx, owner, msg.PairId, msg.AssetIds); err != nil {
		return nil, err
	}
	return &types.MsgDepositAssetsResponse{}, nil
}

func (k msgServer) WithdrawTokens(ctx context.Context, msg *types.MsgWithdrawTokens) (*types.MsgWithdrawTokensResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("owner: %s", err)
	}
	if err := k.Keeper.WithdrawTokens(ctx, owner, msg.PairId, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgWithdrawTokensResponse{}, nil
}

func (k msgServer) WithdrawAssets(ctx context.Context, msg *types.MsgWithdrawAssets) (*types.MsgWithdrawAssetsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("owner: %s", err)
	}
	if err := k.Keeper.WithdrawAssets(ctx, owner, msg.PairId, msg.AssetIds); err != nil {
		return nil, err
	}
	return &types.MsgWithdrawAssetsResponse{}, nil
}

func (k msgServer) SwapTokensForAssets(ctx context.Context, msg *types.MsgSwapTokensForAssets) (*types.MsgSwapTokensForAssetsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("trader: %s", err)
	}
	quote, err := k.Keeper.SwapTokensForAssets(ctx, trader, msg.Router, msg.PairId, msg.AssetIds, msg.MaxInput)
	if err != nil {
		return nil, err
	}
	return &types.MsgSwapTokensForAssetsResponse{
		InputValue:  quote.InputValue,
		ProtocolFee: quote.ProtocolFee,
	}, nil
}

func (k msgServer) SwapAssetsForTokens(ctx context.Context, msg *types.MsgSwapAssetsForTokens) (*types.MsgSwapAssetsForTokensResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("trader: %s", err)
	}
	quote, err := k.Keeper.SwapAssetsForTokens(ctx, trader, msg.Router, msg.PairId, msg.AssetIds, msg.MinOutput)
	if err != nil {
		return nil, err
	}
	return &types.MsgSwapAssetsForTokensResponse{
		OutputValue: quote.OutputValue,
		ProtocolFee: quote.ProtocolFee,
	}, nil
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
