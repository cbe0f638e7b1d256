package domain

import (
	"math/big"

	"github.com/hinatamarket/goapi/base/ctx"
)

// AssetLedger is the capability surface of the external asset ledger.
// The engine never owns mint/burn semantics; it only moves units between
// accounts and reads balances.
type AssetLedger interface {
	BalanceOf(c ctx.Ctx, chainId ChainId, collection Address, assetId TokenId, owner Address) (*big.Int, error)
	OwnerOf(c ctx.Ctx, chainId ChainId, collection Address, assetId TokenId) (Address, error)
	Transfer(c ctx.Ctx, chainId ChainId, collection Address, from, to Address, assetId TokenId, amount *big.Int) error
	IsAsset(c ctx.Ctx, chainId ChainId, collection Address) (bool, error)
}
