package keeper

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"cosmossdk.io/math"

	"github.com/moon-chain/moon/x/market/types"
)

var (
	// ListingKeyPrefix is the prefix for listing store keys
	ListingKeyPrefix = []byte{0x01}

	// OfferKeyPrefix is the prefix for offer slot store keys
	OfferKeyPrefix = []byte{0x02}

	// OfferCountKeyPrefix is the prefix for per-amount offer slot counters
	OfferCountKeyPrefix = []byte{0x03}

	// RoyaltyKeyPrefix is the prefix for collection royalty records
	RoyaltyKeyPrefix = []byte{0x04}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x05}

	// ReentrancyLockKeyPrefix is the prefix for reentrancy protection locks
	ReentrancyLockKeyPrefix = []byte{0x06}

	// PageKeyPrefix is the prefix for primary-sale page records
	PageKeyPrefix = []byte{0x07}

	// RedemptionKeyPrefix is the prefix for pending redemption entries
	RedemptionKeyPrefix = []byte{0x08}
)

// offerAmountWidth fixes the big-endian width of the amount segment in offer
// keys so that slots for one amount share a contiguous prefix.
const offerAmountWidth = 32

// ListingKey returns the store key for a listing by asset
func ListingKey(classId, nftId string) []byte {
	return append(ListingKeyPrefix, []byte(types.AssetKey(classId, nftId))...)
}

// offerAmountBytes encodes an offer amount as fixed-width big-endian bytes.
// Amounts wider than 256 bits are rejected upstream by MakeOffer.
func offerAmountBytes(amount math.Int) []byte {
	buf := make([]byte, offerAmountWidth)
	amount.BigInt().FillBytes(buf)
	return buf
}

// OfferKey returns the store key for an offer slot by (amount, index)
func OfferKey(amount math.Int, index uint64) []byte {
	key := append(OfferKeyPrefix, offerAmountBytes(amount)...)
	indexBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(indexBytes, index)
	return append(key, indexBytes...)
}

// OfferCountKey returns the store key for the slot counter of an amount
func OfferCountKey(amount math.Int) []byte {
	return append(OfferCountKeyPrefix, offerAmountBytes(amount)...)
}

// RoyaltyKey returns the store key for a collection royalty record
func RoyaltyKey(classId string) []byte {
	return append(RoyaltyKeyPrefix, []byte(classId)...)
}

// PageKey returns the store key for a primary-sale page
func PageKey(classId string) []byte {
	return append(PageKeyPrefix, []byte(classId)...)
}

// RedemptionKey returns the store key for a pending redemption entry
func RedemptionKey(holder string, unlockTime int64) []byte {
	key := append(RedemptionKeyPrefix, []byte(holder)...)
	key = append(key, 0x00)
	timeBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(timeBytes, uint64(unlockTime))
	return append(key, timeBytes...)
}

// ReentrancyLockKey returns the store key for a reentrancy lock
func ReentrancyLockKey(lockKey string) []byte {
	return append(ReentrancyLockKeyPrefix, []byte(lockKey)...)
}

// parseOfferKey recovers (amount, index) from a full offer store key.
func parseOfferKey(key []byte) (math.Int, uint64, error) {
	body := key[len(OfferKeyPrefix):]
	if len(body) != offerAmountWidth+8 {
		return math.Int{}, 0, fmt.Errorf("malformed offer key of length %d", len(key))
	}
	amount := math.NewIntFromBigInt(new(big.Int).SetBytes(body[:offerAmountWidth]))
	index := binary.BigEndian.Uint64(body[offerAmountWidth:])
	return amount, index, nil
}
