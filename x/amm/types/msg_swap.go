package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgSwapTokensForAssets buys specific escrowed assets out of a pair, paying
// at most MaxInput for them. Router may be set when the signer routes the
// swap on behalf of the trader; it must then be whitelisted.
type MsgSwapTokensForAssets struct {
	Trader   string   `json:"trader"`
	Router   string   `json:"router,omitempty"`
	PairId   uint64   `json:"pair_id"`
	AssetIds []string `json:"asset_ids"`
	MaxInput math.Int `json:"max_input"`
}

// Route implements the legacy message routing interface
func (msg MsgSwapTokensForAssets) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgSwapTokensForAssets) Type() string { return "swap_tokens_for_assets" }

// GetSigners returns the expected signers of the message
func (msg MsgSwapTokensForAssets) GetSigners() []sdk.AccAddress {
	signer := msg.Trader
	if msg.Router != "" {
		signer = msg.Router
	}
	addr, err := sdk.AccAddressFromBech32(signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{addr}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgSwapTokensForAssets) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgSwapTokensForAssets) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}
	if msg.Router != "" {
		if _, err := sdk.AccAddressFromBech32(msg.Router); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid router address: %s", err)
		}
	}
	if err := validateAssetIds(msg.AssetIds); err != nil {
		return err
	}
	if msg.MaxInput.IsNil() || !msg.MaxInput.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "max input must be positive")
	}
	return nil
}

// validateAssetIds rejects empty and duplicate asset ids. A duplicate id
// would price a multi-item quote against a single deliverable asset.
func validateAssetIds(assetIds []string) error {
	if len(assetIds) == 0 {
		return sdkerrors.Wrap(ErrZeroItems, "asset id list cannot be empty")
	}
	seen := make(map[string]struct{}, len(assetIds))
	for _, id := range assetIds {
		if id == "" {
			return sdkerrors.Wrap(ErrInvalidState, "asset id cannot be empty")
		}
		if _, dup := seen[id]; dup {
			return sdkerrors.Wrapf(ErrInvalidState, "duplicate asset id %s", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// MsgSwapAssetsForTokens sells assets into a pair for at least MinOutput.
type MsgSwapAssetsForTokens struct {
	Trader    string   `json:"trader"`
	Router    string   `json:"router,omitempty"`
	PairId    uint64   `json:"pair_id"`
	AssetIds  []string `json:"asset_ids"`
	MinOutput math.Int `json:"min_output"`
}

// Route implements the legacy message routing interface
func (msg MsgSwapAssetsForTokens) Route() string { return RouterKey }

// Type implements the legacy message routing interface
func (msg MsgSwapAssetsForTokens) Type() string { return "swap_assets_for_tokens" }

// GetSigners returns the expected signers of the message
func (msg MsgSwapAssetsForTokens) GetSigners() []sdk.AccAddress {
	signer := msg.Trader
	if msg.Router != "" {
		signer = msg.Router
	}
	addr, err := sdk.AccAddressFromBech32(signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{addr}
}

// GetSignBytes returns the canonical sign bytes
func (msg MsgSwapAssetsForTokens) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgSwapAssetsForTokens) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}
	if msg.Router != "" {
		if _, err := sdk.AccAddressFromBech32(msg.Router); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid router address: %s", err)
		}
	}
	if err := validateAssetIds(msg.AssetIds); err != nil {
		return err
	}
	if msg.MinOutput.IsNil() || msg.MinOutput.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min output cannot be negative")
	}
	return nil
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
