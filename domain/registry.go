package domain

import (
	"github.com/hinatamarket/goapi/base/ctx"
)

// RoyaltyInfo is a collection's royalty configuration as registered in the
// external collection registry. FeeBps is basis points of the post-fee
// settlement amount.
type RoyaltyInfo struct {
	Beneficiary Address
	FeeBps      int64
}

// CollectionRegistry is a read-only lookup into the collection factory.
// Royalty configs are fetched at settlement time so registry updates apply
// to future settlements only.
type CollectionRegistry interface {
	RoyaltyOf(c ctx.Ctx, chainId ChainId, collection Address) (*RoyaltyInfo, error)
	IsRegistered(c ctx.Ctx, chainId ChainId, collection Address) (bool, error)
}
