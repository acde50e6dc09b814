package keeper

import (
	"context"

	"github.com/moon-chain/moon/x/amm/types"
)

// moduleLockKey is the single coarse-grained latch for the whole module
// instance: while one state-mutating entry point runs, no nested call into
// any other state-mutating entry point may proceed.
const moduleLockKey = "amm"

// withModuleLock executes fn under the module-wide reentrancy latch. The
// lock lives in the KVStore so it is visible to nested calls sharing the
// same transaction context, and it is released on every exit path.
func (k Keeper) withModuleLock(ctx context.Context, fn func() error) error {
	if err := k.acquireLock(ctx, moduleLockKey); err != nil {
		return err
	}
	defer k.releaseLock(ctx, moduleLockKey)

	return fn()
}

// acquireLock attempts to acquire a named lock from the KVStore
func (k Keeper) acquireLock(ctx context.Context, lockKey string) error {
	store := k.getStore(ctx)
	key := ReentrancyLockKey(lockKey)

	if store.Has(key) {
		return types.ErrReentrancy.Wrapf("operation %s is already locked", lockKey)
	}

	store.Set(key, []byte{0x01})
	return nil
}

// releaseLock releases a named lock
func (k Keeper) releaseLock(ctx context.Context, lockKey string) {
	k.getStore(ctx).Delete(ReentrancyLockKey(lockKey))
}
