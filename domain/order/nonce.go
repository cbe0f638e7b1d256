package order

import (
	"time"

	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/domain"
)

// UsedNonce marks a signer's nonce as consumed. Insertion is the consuming
// act; a duplicate insert surfaces as domain.ErrConflict.
type UsedNonce struct {
	ChainId   domain.ChainId `json:"chainId" bson:"chainId"`
	Signer    domain.Address `json:"signer" bson:"signer"`
	Nonce     string         `json:"nonce" bson:"nonce"`
	UsedAt    time.Time      `json:"usedAt" bson:"usedAt"`
}

type NonceId struct {
	ChainId domain.ChainId `json:"chainId" bson:"chainId"`
	Signer  domain.Address `json:"signer" bson:"signer"`
	Nonce   string         `json:"nonce" bson:"nonce"`
}

type NonceRepo interface {
	FindOne(c ctx.Ctx, id NonceId) (*UsedNonce, error)
	Insert(c ctx.Ctx, nonce *UsedNonce) error
	Remove(c ctx.Ctx, id NonceId) error
}
