package order

import (
	"testing"

	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/listing"
	"github.com/stretchr/testify/require"
)

func makeListingOrder() *ListingOrder {
	return &ListingOrder{
		ChainId:      1,
		Id:           "listing-1",
		Seller:       "0xE8E1f0EA88251723D4425B680124d8DaAF26e74f",
		PayToken:     "0x3e2f1a2ca9b8f7e1c5a2dbd0b2ffbbae6b1d8e3c",
		Price:        "1000000000000000000",
		ReservePrice: "1000000000000000000",
		StartTime:    "0",
		Duration:     "0",
		ExpireTime:   "0",
		Quantity:     "0",
		ListingType:  listing.TypeFixedPrice,
		Collections:  []domain.Address{"0x2b1870752208935fda32ab6a016c01a27877cf12"},
		AssetIds:     []domain.TokenId{"1"},
		AssetAmounts: []string{"1"},
		Nonce:        "1",
	}
}

func TestListingOrderHash(t *testing.T) {
	req := require.New(t)

	o := makeListingOrder()
	h1, err := o.Hash()
	req.NoError(err)
	req.Len(h1, 32)

	h2, err := o.Hash()
	req.NoError(err)
	req.Equal(h1, h2)

	o.Nonce = "2"
	h3, err := o.Hash()
	req.NoError(err)
	req.NotEqual(h1, h3)
}

func TestBidOrderHash(t *testing.T) {
	req := require.New(t)

	o := &BidOrder{
		ChainId:      1,
		Bidder:       "0x7f2cb5b17f4e5c6e1f7b3a3c0d4e5f6a7b8c9d0e",
		ListingNonce: "1",
		Amount:       "2000000000000000000",
		Nonce:        "7",
	}
	h1, err := o.Hash()
	req.NoError(err)
	req.Len(h1, 32)

	o.Amount = "3000000000000000000"
	h2, err := o.Hash()
	req.NoError(err)
	req.NotEqual(h1, h2)
}

func TestListingOrderToListing(t *testing.T) {
	req := require.New(t)

	o := makeListingOrder()
	o.StartTime = "1700000000"
	o.Duration = "86400"
	l, err := o.ToListing()
	req.NoError(err)
	req.Equal(o.ChainId, l.ChainId)
	req.Equal(o.Id, l.ListingId)
	req.Equal(o.Seller.ToLower(), l.Seller)
	req.Equal(int64(1700000000), l.StartTime)
	req.Equal(int64(86400), l.Duration)
	req.Equal([]int64{1}, l.AssetAmounts)
	req.NoError(l.Validate(0))

	o.Quantity = "bogus"
	_, err = o.ToListing()
	req.Error(err)
}
