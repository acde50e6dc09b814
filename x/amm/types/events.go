package types

// Event types emitted by the amm module
const (
	EventTypeNewPair        = "new_pair"
	EventTypeTokenDeposit   = "token_deposit"
	EventTypeAssetDeposit   = "asset_deposit"
	EventTypeTokenWithdraw  = "token_withdraw"
	EventTypeAssetWithdraw  = "asset_withdraw"
	EventTypeSwapBuy        = "swap_tokens_for_assets"
	EventTypeSwapSell       = "swap_assets_for_tokens"
	EventTypeSpotPriceShift = "spot_price_shift"
	EventTypeUpdateParams   = "update_amm_params"
)

// Event attribute keys
const (
	AttributeKeyPairId      = "pair_id"
	AttributeKeyOwner       = "owner"
	AttributeKeyPoolType    = "pool_type"
	AttributeKeyCurveType   = "curve_type"
	AttributeKeyClassId     = "class_id"
	AttributeKeyDenom       = "denom"
	AttributeKeySpotPrice   = "spot_price"
	AttributeKeyDelta       = "delta"
	AttributeKeyTrader      = "trader"
	AttributeKeyRouter      = "router"
	AttributeKeyAmount      = "amount"
	AttributeKeyCount       = "count"
	AttributeKeyInputValue  = "input_value"
	AttributeKeyOutputValue = "output_value"
	AttributeKeyProtocolFee = "protocol_fee"
	AttributeKeyRoyalty     = "royalty"
	AttributeKeyAuthority   = "authority"
)
