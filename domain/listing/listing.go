package listing

import (
	"math/big"
	"time"

	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/domain"
)

// Type tags the six listing variants. Guard and settlement behavior is a
// pure function of the tag; there is no per-variant subtype.
type Type int32

const (
	TypeFixedPrice Type = iota
	TypeInventoriedFixedPrice
	TypeTimeLimitedWinnerTakeAllAuction
	TypeTiered1OfNAuction
	TypeTimeLimitedPricePerTicketRaffle
	TypeTimeLimited1OfNWinningTicketsRaffle
)

func (t Type) Valid() bool {
	return t >= TypeFixedPrice && t <= TypeTimeLimited1OfNWinningTicketsRaffle
}

func (t Type) IsAuction() bool {
	return t == TypeTimeLimitedWinnerTakeAllAuction || t == TypeTiered1OfNAuction
}

func (t Type) IsRaffle() bool {
	return t == TypeTimeLimitedPricePerTicketRaffle || t == TypeTimeLimited1OfNWinningTicketsRaffle
}

// IsPurchasable reports whether purchaseListing applies to the variant
func (t Type) IsPurchasable() bool {
	return t == TypeFixedPrice || t == TypeInventoriedFixedPrice
}

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusSettled   Status = "settled"
)

// Id identifies a listing. ListingId is caller-chosen and unique per seller.
type Id struct {
	ChainId   domain.ChainId `json:"chainId" bson:"chainId"`
	Seller    domain.Address `json:"seller" bson:"seller"`
	ListingId string         `json:"listingId" bson:"listingId"`
}

// Listing is a seller's persisted offer. Prices and bid amounts are decimal
// strings of the pay token's smallest unit.
type Listing struct {
	ChainId      domain.ChainId   `json:"chainId" bson:"chainId" validate:"required"`
	ListingId    string           `json:"listingId" bson:"listingId" validate:"required"`
	Seller       domain.Address   `json:"seller" bson:"seller"`
	PayToken     domain.Address   `json:"payToken" bson:"payToken" validate:"required"`
	Price        string           `json:"price" bson:"price" validate:"required"`
	ReservePrice string           `json:"reservePrice" bson:"reservePrice"`
	// unix seconds; 0 means active from creation
	StartTime int64 `json:"startTime" bson:"startTime"`
	// seconds; 0 means no bidding deadline
	Duration int64 `json:"duration" bson:"duration"`
	// unix seconds; 0 means the seller may settle at discretion only
	ExpireTime int64 `json:"expireTime" bson:"expireTime"`
	// remaining inventory for inventoried listings, 0 otherwise
	Quantity     int64            `json:"quantity" bson:"quantity"`
	Type         Type             `json:"type" bson:"type"`
	Collections  []domain.Address `json:"collections" bson:"collections" validate:"required"`
	AssetIds     []domain.TokenId `json:"assetIds" bson:"assetIds" validate:"required"`
	AssetAmounts []int64          `json:"assetAmounts" bson:"assetAmounts"`
	Status       Status           `json:"status" bson:"status"`
	CreatedAt    time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt" bson:"updatedAt"`
}

func (l *Listing) ToId() Id {
	return Id{
		ChainId:   l.ChainId,
		Seller:    l.Seller,
		ListingId: l.ListingId,
	}
}

func (l *Listing) LowerCase() {
	l.Seller = l.Seller.ToLower()
	l.PayToken = l.PayToken.ToLower()
	for i := range l.Collections {
		l.Collections[i] = l.Collections[i].ToLower()
	}
}

// Validate checks creation-time invariants. limitCount bounds the asset
// array length when > 0.
func (l *Listing) Validate(limitCount int32) error {
	if len(l.ListingId) == 0 || l.Seller.IsEmpty() {
		return domain.ErrInvalidListing
	}
	if !l.Type.Valid() {
		return domain.ErrInvalidListing
	}
	n := len(l.Collections)
	if n == 0 || n != len(l.AssetIds) || n != len(l.AssetAmounts) {
		return domain.ErrInvalidListing
	}
	if limitCount > 0 && n > int(limitCount) {
		return domain.ErrInvalidListing
	}
	for _, amount := range l.AssetAmounts {
		if amount <= 0 {
			return domain.ErrInvalidListing
		}
	}
	// inventoried listings must carry inventory, others must not
	if l.Type == TypeInventoriedFixedPrice && l.Quantity <= 0 {
		return domain.ErrInvalidListing
	}
	if l.Type != TypeInventoriedFixedPrice && l.Quantity != 0 {
		return domain.ErrInvalidListing
	}
	nums, err := domain.ToBigInt([]string{l.Price, l.ReservePrice})
	if err != nil {
		return domain.ErrInvalidListing
	}
	if nums[0].Sign() < 0 || nums[1].Sign() < 0 {
		return domain.ErrInvalidListing
	}
	// reserve price is an auction concept only
	if !l.Type.IsAuction() && nums[0].Cmp(nums[1]) != 0 {
		return domain.ErrInvalidListing
	}
	return nil
}

// PriceBig parses the listing price. Validate must have passed.
func (l *Listing) PriceBig() *big.Int {
	p, _ := new(big.Int).SetString(l.Price, 10)
	return p
}

// ReservePriceBig parses the reserve price. Validate must have passed.
func (l *Listing) ReservePriceBig() *big.Int {
	p, _ := new(big.Int).SetString(l.ReservePrice, 10)
	return p
}

// IsActiveAt reports whether the bidding/purchase window covers t.
// StartTime 0 falls back to CreatedAt; Duration 0 leaves the window open
// up to ExpireTime when one is set.
func (l *Listing) IsActiveAt(t time.Time) bool {
	start := l.StartTime
	if start == 0 {
		start = l.CreatedAt.Unix()
	}
	if t.Unix() < start {
		return false
	}
	if l.Duration > 0 && t.Unix() > start+l.Duration {
		return false
	}
	if l.ExpireTime > 0 && t.Unix() >= l.ExpireTime {
		return false
	}
	return true
}

// IsExpiredAt reports whether the auction deadline has passed
func (l *Listing) IsExpiredAt(t time.Time) bool {
	if l.ExpireTime == 0 {
		return l.Duration > 0 && !l.IsActiveAt(t)
	}
	return t.Unix() >= l.ExpireTime
}

// Patchable carries partial updates for a listing
type Patchable struct {
	Quantity  *int64     `bson:"quantity,omitempty"`
	Status    *Status    `bson:"status,omitempty"`
	UpdatedAt *time.Time `bson:"updatedAt,omitempty"`
}

type Repo interface {
	FindOne(ctx.Ctx, Id) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Insert(ctx.Ctx, *Listing) error
	Update(c ctx.Ctx, id Id, patchable Patchable) error
}

// UseCase is the on-chain listing protocol surface
type UseCase interface {
	CreateListing(c ctx.Ctx, l *Listing) error
	CancelListing(c ctx.Ctx, id Id, caller domain.Address) error
	PurchaseListing(c ctx.Ctx, id Id, buyer domain.Address, units int64) error
	Bid(c ctx.Ctx, id Id, bidder domain.Address, amount string) error
	CompleteAuction(c ctx.Ctx, id Id, caller domain.Address) error
}

// RaffleDrawer selects the winning ticket holder for raffle listings.
// Winner selection is not part of the core engine; deployments provide an
// implementation backed by their randomness source.
type RaffleDrawer interface {
	DrawWinner(c ctx.Ctx, l *Listing) (domain.Address, error)
}
