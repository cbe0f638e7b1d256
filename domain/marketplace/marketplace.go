package marketplace

import (
	"time"

	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/escrow"
	"github.com/hinatamarket/goapi/domain/listing"
	"github.com/hinatamarket/goapi/domain/order"
)

// ListingDetail decorates a listing with its live auction state
type ListingDetail struct {
	listing.Listing `bson:",inline"`
	HighestBid      *escrow.Bid `json:"highestBid,omitempty" bson:"-"`
}

// Settings is the per-chain market configuration. MarketFeeBps is taken out
// of every sale price before royalties; LimitCount bounds assets per listing.
type Settings struct {
	ChainId      domain.ChainId `json:"chainId" bson:"chainId"`
	MarketFeeBps int64          `json:"marketFeeBps" bson:"marketFeeBps"`
	Treasury     domain.Address `json:"treasury" bson:"treasury"`
	LimitCount   int32          `json:"limitCount" bson:"limitCount"`
	UpdatedAt    time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type SettingsPatchable struct {
	MarketFeeBps *int64          `json:"marketFeeBps" bson:"marketFeeBps,omitempty"`
	Treasury     *domain.Address `json:"treasury" bson:"treasury,omitempty"`
	LimitCount   *int32          `json:"limitCount" bson:"limitCount,omitempty"`
	UpdatedAt    *time.Time      `json:"updatedAt" bson:"updatedAt,omitempty"`
}

type ConfigRepo interface {
	// FindOne returns domain.ErrNotFound when the chain was never configured
	FindOne(c ctx.Ctx, chainId domain.ChainId) (*Settings, error)
	Upsert(c ctx.Ctx, settings *Settings) error
	Update(c ctx.Ctx, chainId domain.ChainId, patchable SettingsPatchable) error
}

// UseCase is the settlement engine facade. Listing lifecycle calls delegate
// to the listing usecase; the Signed variants verify an off-chain order and
// consume its nonce before acting; admin setters are role gated.
type UseCase interface {
	CreateListing(c ctx.Ctx, l *listing.Listing) error
	CancelListing(c ctx.Ctx, caller domain.Address, id listing.Id) error
	PurchaseListing(c ctx.Ctx, buyer domain.Address, id listing.Id, units int64) error
	Bid(c ctx.Ctx, bidder domain.Address, id listing.Id, amount string) error
	CompleteAuction(c ctx.Ctx, caller domain.Address, id listing.Id) error

	CreateSignedListing(c ctx.Ctx, o *order.ListingOrder) (*listing.Listing, error)
	SettleSignedSale(c ctx.Ctx, lo *order.ListingOrder, bo *order.BidOrder) error

	GetListing(c ctx.Ctx, id listing.Id) (*ListingDetail, error)
	GetListings(c ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*ListingDetail, error)
	GetEvents(c ctx.Ctx, opts ...listing.EventFindAllOptionsFunc) ([]*listing.Event, error)
	GetSettings(c ctx.Ctx, chainId domain.ChainId) (*Settings, error)

	SetAcceptPayToken(c ctx.Ctx, caller domain.Address, token *domain.PayToken, accepted bool) error
	SetMarketFee(c ctx.Ctx, caller domain.Address, chainId domain.ChainId, feeBps int64) error
	SetTreasury(c ctx.Ctx, caller domain.Address, chainId domain.ChainId, treasury domain.Address) error
	SetLimitCount(c ctx.Ctx, caller domain.Address, chainId domain.ChainId, limit int32) error
}
