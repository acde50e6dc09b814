package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// TestAddress builds a deterministic bech32 account address from a label.
func TestAddress(label string) sdk.AccAddress {
	bz := make([]byte, 20)
	copy(bz, label)
	return sdk.AccAddress(bz)
}

// BankStub is an in-memory bank keeper for tests. Module accounts resolve
// through the standard module address derivation.
type BankStub struct {
	balances map[string]sdk.Coins
}

// NewBankStub creates an empty in-memory bank.
func NewBankStub() *BankStub {
	return &BankStub{balances: make(map[string]sdk.Coins)}
}

// Fund credits an account out of thin air, test setup only.
func (b *BankStub) Fund(addr sdk.AccAddress, coins sdk.Coins) {
	b.balances[addr.String()] = b.balances[addr.String()].Add(coins...)
}

// GetBalance returns the balance of one denom for an account.
func (b *BankStub) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.balances[addr.String()].AmountOf(denom))
}

// SendCoins moves coins between accounts, failing on insufficient balance.
func (b *BankStub) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	from := b.balances[fromAddr.String()]
	if !amt.IsAllLTE(from) {
		return fmt.Errorf("insufficient balance: %s has %s, needs %s", fromAddr, from, amt)
	}
	b.balances[fromAddr.String()] = from.Sub(amt...)
	b.balances[toAddr.String()] = b.balances[toAddr.String()].Add(amt...)
	return nil
}

// SendCoinsFromAccountToModule moves coins into a module account.
func (b *BankStub) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return b.SendCoins(ctx, senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

// SendCoinsFromModuleToAccount moves coins out of a module account.
func (b *BankStub) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.SendCoins(ctx, authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

// NFTStub is an in-memory NFT custody keeper for tests.
type NFTStub struct {
	owners map[string]sdk.AccAddress
}

// NewNFTStub creates an empty in-memory NFT registry.
func NewNFTStub() *NFTStub {
	return &NFTStub{owners: make(map[string]sdk.AccAddress)}
}

func nftKey(classId, nftId string) string {
	return classId + "/" + nftId
}

// MintTo registers an asset under an owner, test setup only.
func (n *NFTStub) MintTo(classId, nftId string, owner sdk.AccAddress) {
	n.owners[nftKey(classId, nftId)] = owner
}

// GetOwner returns the registered owner, or nil for unknown assets.
func (n *NFTStub) GetOwner(_ context.Context, classId, nftId string) sdk.AccAddress {
	return n.owners[nftKey(classId, nftId)]
}

// HasNFT reports whether the asset exists.
func (n *NFTStub) HasNFT(_ context.Context, classId, nftId string) bool {
	_, ok := n.owners[nftKey(classId, nftId)]
	return ok
}

// Transfer reassigns custody, failing on unknown assets.
func (n *NFTStub) Transfer(_ context.Context, classId, nftId string, receiver sdk.AccAddress) error {
	if _, ok := n.owners[nftKey(classId, nftId)]; !ok {
		return fmt.Errorf("asset %s/%s does not exist", classId, nftId)
	}
	n.owners[nftKey(classId, nftId)] = receiver
	return nil
}

// Mint creates a fresh asset, failing on duplicates.
func (n *NFTStub) Mint(_ context.Context, classId, nftId string, receiver sdk.AccAddress) error {
	if _, ok := n.owners[nftKey(classId, nftId)]; ok {
		return fmt.Errorf("asset %s/%s already exists", classId, nftId)
	}
	n.owners[nftKey(classId, nftId)] = receiver
	return nil
}

// RewardsStub records fee deposits and credits half the fee per party.
type RewardsStub struct {
	Deposits []sdk.Coin
}

// NewRewardsStub creates an empty rewards recorder.
func NewRewardsStub() *RewardsStub {
	return &RewardsStub{}
}

// DepositFees records the deposit and returns the per-party reward share.
func (r *RewardsStub) DepositFees(_ context.Context, _, _ sdk.AccAddress, fee sdk.Coin) (math.Int, error) {
	r.Deposits = append(r.Deposits, fee)
	return fee.Amount.Quo(math.NewInt(2)), nil
}
