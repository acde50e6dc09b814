package keeper

import (
	"encoding/binary"
)

var (
	// PairKeyPrefix is the prefix for pair slot records
	PairKeyPrefix = []byte{0x01}

	// NextPairKey is the key for the arena slot allocation counter
	NextPairKey = []byte{0x02}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x03}

	// ReentrancyLockKeyPrefix is the prefix for reentrancy protection locks
	ReentrancyLockKeyPrefix = []byte{0x04}
)

// PairKey returns the store key for a pair by id
func PairKey(pairId uint64) []byte {
	idBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(idBytes, pairId)
	return append(PairKeyPrefix, idBytes...)
}

// ReentrancyLockKey returns the store key for a reentrancy lock
func ReentrancyLockKey(lockKey string) []byte {
	return append(ReentrancyLockKeyPrefix, []byte(lockKey)...)
}
