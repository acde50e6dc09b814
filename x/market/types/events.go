package types

// Event types emitted by the market module. Events are an append-only audit
// log carrying enough attributes to reconstruct ledger changes off-chain;
// they are never read back as authoritative state.
const (
	EventTypeList          = "list"
	EventTypeEditListing   = "edit_listing"
	EventTypeCancelListing = "cancel_listing"
	EventTypeBuy           = "buy"
	EventTypeBuyMany       = "buy_many"
	EventTypeMakeOffer     = "make_offer"
	EventTypeCancelOffer   = "cancel_offer"
	EventTypeTakeOffer     = "take_offer"
	EventTypeMatchOffer    = "match_offer"
	EventTypeSetRoyalty    = "set_royalty"
	EventTypeUpdateParams  = "update_market_params"
	EventTypeCreatePage    = "create_page"
	EventTypeMint          = "mint"
	EventTypeWithdrawProceeds     = "withdraw_proceeds"
	EventTypeRedemptionInitiated  = "redemption_initiated"
	EventTypeRedemptionFulfilled  = "redemption_fulfilled"
)

// Event attribute keys
const (
	AttributeKeyClassId    = "class_id"
	AttributeKeyNftId      = "nft_id"
	AttributeKeySeller     = "seller"
	AttributeKeyBuyer      = "buyer"
	AttributeKeyBidder     = "bidder"
	AttributeKeyMatcher    = "matcher"
	AttributeKeyPrice      = "price"
	AttributeKeyAmount     = "amount"
	AttributeKeyIndex      = "index"
	AttributeKeyFee        = "fee"
	AttributeKeyRoyalty    = "royalty"
	AttributeKeySpread     = "spread"
	AttributeKeyNetProceeds = "net_proceeds"
	AttributeKeyRecipient  = "recipient"
	AttributeKeyFeeBps     = "fee_bps"
	AttributeKeyCreator    = "creator"
	AttributeKeyHolder     = "holder"
	AttributeKeyUnlockTime = "unlock_time"
	AttributeKeyCount      = "count"
)
