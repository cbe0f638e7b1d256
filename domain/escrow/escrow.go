package escrow

import (
	"math/big"
	"time"

	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/listing"
)

// Bid is the single live escrowed bid for a listing. The ledger never holds
// two live bids for the same listing; a qualifying new bid replaces the old
// one and refunds its funds in the same operation.
type Bid struct {
	ChainId   domain.ChainId `json:"chainId" bson:"chainId"`
	Seller    domain.Address `json:"seller" bson:"seller"`
	ListingId string         `json:"listingId" bson:"listingId"`
	Bidder    domain.Address `json:"bidder" bson:"bidder"`
	PayToken  domain.Address `json:"payToken" bson:"payToken"`
	Amount    string         `json:"amount" bson:"amount"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

func (b *Bid) ToListingId() listing.Id {
	return listing.Id{
		ChainId:   b.ChainId,
		Seller:    b.Seller,
		ListingId: b.ListingId,
	}
}

// AmountBig parses the escrowed amount
func (b *Bid) AmountBig() (*big.Int, error) {
	nums, err := domain.ToBigInt([]string{b.Amount})
	if err != nil {
		return nil, err
	}
	return nums[0], nil
}

type Repo interface {
	// FindOne returns domain.ErrNotFound when no live bid exists
	FindOne(c ctx.Ctx, id listing.Id) (*Bid, error)
	Upsert(c ctx.Ctx, bid *Bid) error
	Remove(c ctx.Ctx, id listing.Id) error
}

// Ledger is the escrow accounting surface. Funds sit on the engine
// operator's payment-token balance while a bid is live.
type Ledger interface {
	// HighestBid returns the live bid or nil
	HighestBid(c ctx.Ctx, id listing.Id) (*Bid, error)
	// Deposit pulls amount from the bidder and refunds any prior bid as
	// part of the same operation
	Deposit(c ctx.Ctx, l *listing.Listing, bidder domain.Address, amount *big.Int) error
	// Refund returns the live bid's funds to its bidder and clears it
	Refund(c ctx.Ctx, id listing.Id) error
	// Release clears the live bid and returns it so the caller can
	// distribute the escrowed amount; funds stay with the operator
	Release(c ctx.Ctx, id listing.Id) (*Bid, error)
}
