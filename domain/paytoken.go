package domain

import (
	"math/big"

	"github.com/hinatamarket/goapi/base/ctx"
)

type Id struct {
	ChainId ChainId `bson:"chainId"`
	Address Address `bson:"address"`
}

// PayToken is an ERC-20 accepted (or formerly accepted) for settlement
type PayToken struct {
	Name          string  `bson:"name"`
	Symbol        string  `bson:"symbol"`
	TokenDecimals int32   `bson:"tokenDecimals"`
	ChainId       ChainId `bson:"chainId"`
	Address       Address `bson:"address"`
	Accepted      bool    `bson:"accepted"`
}

func (t *PayToken) ToId() *Id {
	return &Id{
		ChainId: t.ChainId,
		Address: t.Address,
	}
}

type PayTokenRepo interface {
	FindOne(ctx.Ctx, ChainId, Address) (*PayToken, error)
	Create(ctx.Ctx, *PayToken) error
	Upsert(ctx.Ctx, *PayToken) error
}

// PaymentToken moves ERC-20 funds. TransferFrom spends a pre-established
// allowance toward the engine; Transfer spends the engine operator's own
// balance (escrowed funds).
type PaymentToken interface {
	BalanceOf(c ctx.Ctx, chainId ChainId, token, owner Address) (*big.Int, error)
	TransferFrom(c ctx.Ctx, chainId ChainId, token, from, to Address, amount *big.Int) error
	Transfer(c ctx.Ctx, chainId ChainId, token, to Address, amount *big.Int) error
}
