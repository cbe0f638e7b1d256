package order

import (
	"math/big"
	"strings"

	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/listing"
)

// ListingOrder is an off-chain listing authorization signed by the seller.
// Settlement consumes the nonce so the same order can never authorize twice.
type ListingOrder struct {
	ChainId      domain.ChainId   `json:"chainId" bson:"chainId"`
	Id           string           `json:"id" bson:"id"`
	Seller       domain.Address   `json:"seller" bson:"seller"`
	PayToken     domain.Address   `json:"payToken" bson:"payToken"`
	Price        string           `json:"price" bson:"price"`
	ReservePrice string           `json:"reservePrice" bson:"reservePrice"`
	StartTime    string           `json:"startTime" bson:"startTime"`
	Duration     string           `json:"duration" bson:"duration"`
	ExpireTime   string           `json:"expireTime" bson:"expireTime"`
	Quantity     string           `json:"quantity" bson:"quantity"`
	ListingType  listing.Type     `json:"listingType" bson:"listingType"`
	Collections  []domain.Address `json:"collections" bson:"collections"`
	AssetIds     []domain.TokenId `json:"assetIds" bson:"assetIds"`
	AssetAmounts []string         `json:"assetAmounts" bson:"assetAmounts"`
	Nonce        string           `json:"nonce" bson:"nonce"`
	V            int              `json:"v" bson:"v"`
	R            string           `json:"r" bson:"r"`
	S            string           `json:"s" bson:"s"`
}

func (o *ListingOrder) LowerCase() {
	o.Seller = o.Seller.ToLower()
	o.PayToken = o.PayToken.ToLower()
	o.R = strings.ToLower(o.R)
	o.S = strings.ToLower(o.S)
	for i := range o.Collections {
		o.Collections[i] = o.Collections[i].ToLower()
	}
}

// ToListing materializes the signed payload as a listing entity. Numeric
// fields arrive as decimal strings and must already be validated.
func (o *ListingOrder) ToListing() (*listing.Listing, error) {
	nums, err := domain.ToBigInt([]string{o.StartTime, o.Duration, o.ExpireTime, o.Quantity})
	if err != nil {
		return nil, err
	}
	amounts := make([]int64, len(o.AssetAmounts))
	if len(o.AssetAmounts) > 0 {
		parsed, err := domain.ToBigInt(o.AssetAmounts)
		if err != nil {
			return nil, err
		}
		for i, p := range parsed {
			amounts[i] = p.Int64()
		}
	}
	return &listing.Listing{
		ChainId:      o.ChainId,
		ListingId:    o.Id,
		Seller:       o.Seller.ToLower(),
		PayToken:     o.PayToken.ToLower(),
		Price:        o.Price,
		ReservePrice: o.ReservePrice,
		StartTime:    nums[0].Int64(),
		Duration:     nums[1].Int64(),
		ExpireTime:   nums[2].Int64(),
		Quantity:     nums[3].Int64(),
		Type:         o.ListingType,
		Collections:  o.Collections,
		AssetIds:     o.AssetIds,
		AssetAmounts: amounts,
	}, nil
}

// BidOrder is an off-chain bid authorization signed by the bidder. The
// listing nonce binds the bid to one specific listing order.
type BidOrder struct {
	ChainId      domain.ChainId `json:"chainId" bson:"chainId"`
	Bidder       domain.Address `json:"bidder" bson:"bidder"`
	ListingNonce string         `json:"listingNonce" bson:"listingNonce"`
	Amount       string         `json:"amount" bson:"amount"`
	Nonce        string         `json:"nonce" bson:"nonce"`
	V            int            `json:"v" bson:"v"`
	R            string         `json:"r" bson:"r"`
	S            string         `json:"s" bson:"s"`
}

func (o *BidOrder) LowerCase() {
	o.Bidder = o.Bidder.ToLower()
	o.R = strings.ToLower(o.R)
	o.S = strings.ToLower(o.S)
}

func (o *BidOrder) AmountBig() (*big.Int, error) {
	nums, err := domain.ToBigInt([]string{o.Amount})
	if err != nil {
		return nil, err
	}
	return nums[0], nil
}

// UseCase verifies order signatures against the settlement domain and
// tracks consumed nonces.
type UseCase interface {
	VerifyListingOrder(c ctx.Ctx, o *ListingOrder) error
	VerifyBidOrder(c ctx.Ctx, o *BidOrder) error
	ConsumeNonce(c ctx.Ctx, chainId domain.ChainId, signer domain.Address, nonce string) error
	// ReleaseNonce undoes a consumption whose settlement never happened
	ReleaseNonce(c ctx.Ctx, chainId domain.ChainId, signer domain.Address, nonce string) error
	IsNonceUsed(c ctx.Ctx, chainId domain.ChainId, signer domain.Address, nonce string) (bool, error)
}
